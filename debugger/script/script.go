// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"io"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/joypad"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	lua "github.com/yuin/gopher-lua"
)

// Sentinel errors.
const (
	ScriptError = "script: %v"
)

// Command is called by the command() Lua function.
type Command func(input string) error

// Script is a Lua VM with access to the console.
type Script struct {
	L      *lua.LState
	con    *hardware.Console
	output io.Writer

	// nil if script is not being run from the debugger
	command Command
}

// NewScript is the preferred method of initialisation for the Script type.
// The command argument can be nil.
func NewScript(con *hardware.Console, output io.Writer, command Command) *Script {
	scr := &Script{
		L:       lua.NewState(),
		con:     con,
		output:  output,
		command: command,
	}

	scr.L.SetGlobal("step", scr.L.NewFunction(scr.step))
	scr.L.SetGlobal("frame", scr.L.NewFunction(scr.frame))
	scr.L.SetGlobal("peek", scr.L.NewFunction(scr.peek))
	scr.L.SetGlobal("poke", scr.L.NewFunction(scr.poke))
	scr.L.SetGlobal("reg", scr.L.NewFunction(scr.reg))
	scr.L.SetGlobal("press", scr.L.NewFunction(scr.press))
	scr.L.SetGlobal("release", scr.L.NewFunction(scr.release))
	scr.L.SetGlobal("reset", scr.L.NewFunction(scr.reset))
	scr.L.SetGlobal("command", scr.L.NewFunction(scr.runCommand))
	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))

	return scr
}

// Close the Lua VM.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile loads and runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// optCount returns the optional count argument at the stack position. The
// count must be at least one.
func optCount(L *lua.LState, n int) int {
	c := L.OptInt(n, 1)
	if c < 1 {
		L.ArgError(n, "count must be one or more")
	}
	return c
}

func checkAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(a)
}

func (scr *Script) step(L *lua.LState) int {
	n := optCount(L, 1)

	var total int
	for range n {
		c, err := scr.con.Step()
		if err != nil {
			L.RaiseError("%v", err)
		}
		total += c
	}

	L.Push(lua.LNumber(total))
	return 1
}

func (scr *Script) frame(L *lua.LState) int {
	n := optCount(L, 1)

	err := scr.con.RunForFrameCount(n, nil)
	if err != nil {
		L.RaiseError("%v", err)
	}

	L.Push(lua.LNumber(scr.con.FrameNum))
	return 1
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.con.Mem.Read(checkAddress(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	a := checkAddress(L, 1)
	v := L.CheckInt(2)
	if a == memorymap.DMA && uint8(v) > memory.MaxDMASource {
		L.ArgError(2, "DMA page out of range")
	}
	scr.con.Mem.Write(a, uint8(v))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	name := L.CheckString(1)
	v, ok := scr.con.CPU.ReadRegister(name)
	if !ok {
		L.ArgError(1, "unknown register")
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) key(L *lua.LState) joypad.Key {
	k, ok := joypad.KeyFromString(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown key")
	}
	return k
}

func (scr *Script) press(L *lua.LState) int {
	scr.con.KeyDown(scr.key(L))
	return 0
}

func (scr *Script) release(L *lua.LState) int {
	scr.con.KeyUp(scr.key(L))
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.con.Reset()
	return 0
}

func (scr *Script) runCommand(L *lua.LState) int {
	if scr.command == nil {
		L.RaiseError("command() is not available outside of the debugger")
	}
	if err := scr.command(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	n := L.GetTop()
	s := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	io.WriteString(scr.output, strings.Join(s, "\t"))
	io.WriteString(scr.output, "\n")
	return 0
}
