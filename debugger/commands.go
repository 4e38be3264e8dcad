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

package debugger

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/debugger/govern"
	"github.com/jetsetilly/gopherdmg/debugger/script"
	"github.com/jetsetilly/gopherdmg/debugger/terminal"
	"github.com/jetsetilly/gopherdmg/debugger/terminal/commandline"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/execution"
	"github.com/jetsetilly/gopherdmg/hardware/joypad"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/paths"
	"github.com/jetsetilly/gopherdmg/screenshot"
)

// Sentinel errors.
const (
	UnknownCommand   = "unknown command (%s)"
	MissingArgument  = "%s requires %s"
	InvalidArgument  = "invalid %s (%s)"
	TooManyArguments = "too many arguments for %s (%s)"
	ScriptDepth      = "scripts nested too deeply"
)

// the number of instructions shown by DISASM when no count is given.
const disasmDefault = 10

// the maximum number of nested SCRIPT commands.
const maxScriptDepth = 8

// debuggerCommands is used for tab completion.
var debuggerCommands commandline.Commands

func init() {
	debuggerCommands = commandline.Commands{
		cmdCPU:       {"SET"},
		cmdCartridge: {"HEADER", "BANKS"},
		cmdJoypad:    {"PRESS", "RELEASE"},
		cmdLog:       {"TAIL", "CLEAR"},
		cmdScript:    {"QUIET"},
	}

	names := make([]string, 0, len(help))
	for k := range help {
		names = append(names, k)
		if _, ok := debuggerCommands[k]; !ok {
			debuggerCommands[k] = nil
		}
	}
	slices.Sort(names)
	debuggerCommands[cmdHelp] = names
}

// parseNumber accepts decimal and hexadecimal (with the 0x prefix) numbers.
// the tokeniser normalises other forms of hexadecimal notation.
func parseNumber(s string, bits int) (uint64, bool) {
	v, err := strconv.ParseUint(s, 0, bits)
	return v, err == nil
}

func getAddress(tokens *commandline.Tokens, command string) (uint16, error) {
	s, ok := tokens.Get()
	if !ok {
		return 0, curated.Errorf(MissingArgument, command, "an address")
	}
	a, ok := parseNumber(s, 16)
	if !ok {
		return 0, curated.Errorf(InvalidArgument, "address", s)
	}
	return uint16(a), nil
}

// getCount returns the optional count argument. the default value is
// returned if there are no more tokens.
func getCount(tokens *commandline.Tokens, def int) (int, error) {
	s, ok := tokens.Get()
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, curated.Errorf(InvalidArgument, "count", s)
	}
	return n, nil
}

func endOfArguments(tokens *commandline.Tokens, command string) error {
	if !tokens.IsEnd() {
		return curated.Errorf(TooManyArguments, command, tokens.Remainder())
	}
	return nil
}

// parseInput splits the input into commands and runs each in turn. an error
// stops the sequence.
func (dbg *Debugger) parseInput(input string) error {
	for _, c := range strings.Split(input, ";") {
		dbg.printLine(terminal.StyleEcho, c)
		err := dbg.parseCommand(c)
		if err != nil {
			return err
		}
		if dbg.state == govern.Ending {
			return nil
		}
	}
	return nil
}

func (dbg *Debugger) parseCommand(input string) error {
	tokens := commandline.TokeniseInput(input)

	command, ok := tokens.Get()
	if !ok {
		// empty input is the same as STEP
		return dbg.step(1)
	}
	command = strings.ToUpper(command)

	switch command {
	default:
		return curated.Errorf(UnknownCommand, command)

	case cmdQuit:
		dbg.state = govern.Ending

	case cmdHelp:
		return dbg.commandHelp(tokens)

	case cmdStep:
		n, err := getCount(tokens, 1)
		if err != nil {
			return err
		}
		return dbg.step(n)

	case cmdRun:
		n, err := getCount(tokens, 0)
		if err != nil {
			return err
		}
		return dbg.run(n)

	case cmdReset:
		dbg.con.Reset()
		dbg.halted = false
		dbg.printLine(terminal.StyleFeedback, "console reset")

	case cmdCPU:
		return dbg.commandCPU(tokens)

	case cmdPeek:
		if tokens.IsEnd() {
			return curated.Errorf(MissingArgument, command, "an address")
		}
		for !tokens.IsEnd() {
			a, err := getAddress(tokens, command)
			if err != nil {
				return err
			}
			dbg.printPeek(a)
		}

	case cmdPoke:
		a, err := getAddress(tokens, command)
		if err != nil {
			return err
		}
		s, ok := tokens.Get()
		if !ok {
			return curated.Errorf(MissingArgument, command, "a value")
		}
		v, ok := parseNumber(s, 8)
		if !ok {
			return curated.Errorf(InvalidArgument, "value", s)
		}
		if err := endOfArguments(tokens, command); err != nil {
			return err
		}
		if a == memorymap.DMA && v > memory.MaxDMASource {
			return curated.Errorf(InvalidArgument, "DMA page", s)
		}
		dbg.con.Mem.Write(a, uint8(v))
		dbg.printPeek(a)

	case cmdMemMap:
		if tokens.IsEnd() {
			dbg.printLine(terminal.StyleFeedback, memorymap.Summary())
			return nil
		}
		a, err := getAddress(tokens, command)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%04x -> %s", a, memorymap.MapAddress(a))

	case cmdCartridge:
		option, _ := tokens.Get()
		switch strings.ToUpper(option) {
		case "":
			dbg.printLine(terminal.StyleFeedback, dbg.con.Mem.Cart.Summary())
		case "HEADER":
			if dbg.con.Mem.Cart.IsEjected() {
				dbg.printLine(terminal.StyleFeedback, "ejected")
				return nil
			}
			dbg.printLine(terminal.StyleFeedback, dbg.con.Mem.Cart.Header.String())
		case "BANKS":
			dbg.printLine(terminal.StyleFeedback, dbg.con.Mem.Cart.MappedBanks())
		default:
			return curated.Errorf(InvalidArgument, "option", option)
		}

	case cmdDisasm:
		return dbg.commandDisasm(tokens)

	case cmdBreak:
		a, err := getAddress(tokens, command)
		if err != nil {
			return err
		}
		if err := dbg.breakpoints.add(a); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at %04x", a)

	case cmdList:
		dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.String())

	case cmdClear:
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case cmdJoypad:
		return dbg.commandJoypad(tokens)

	case cmdSerial:
		out := dbg.con.Mem.Serial.Output()
		if len(out) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no serial output")
			return nil
		}
		dbg.printLine(terminal.StyleFeedback, "%s", out)

	case cmdLog:
		return dbg.commandLog(tokens)

	case cmdMemviz:
		return dbg.commandMemviz(tokens)

	case cmdScreenshot:
		return dbg.commandScreenshot(tokens)

	case cmdScript:
		s, ok := tokens.Get()
		if !ok {
			return curated.Errorf(MissingArgument, command, "a filename")
		}
		quiet := false
		if option, ok := tokens.Get(); ok {
			if strings.ToUpper(option) != "QUIET" {
				return curated.Errorf(InvalidArgument, "SCRIPT option", option)
			}
			quiet = true
		}
		if err := endOfArguments(tokens, command); err != nil {
			return err
		}
		if quiet && !dbg.silenced {
			dbg.silenced = true
			dbg.term.Silence(true)
			defer func() {
				dbg.silenced = false
				dbg.term.Silence(false)
			}()
		}
		return dbg.runScript(s)
	}

	return nil
}

func (dbg *Debugger) commandHelp(tokens *commandline.Tokens) error {
	keyword, ok := tokens.Get()
	if !ok {
		dbg.printLine(terminal.StyleHelp, strings.Join(debuggerCommands[cmdHelp], " "))
		return nil
	}

	keyword = strings.ToUpper(keyword)
	txt, ok := help[keyword]
	if !ok {
		dbg.printLine(terminal.StyleHelp, "no help for %s", keyword)
		return nil
	}
	dbg.printLine(terminal.StyleHelp, txt)
	return nil
}

func (dbg *Debugger) commandCPU(tokens *commandline.Tokens) error {
	option, ok := tokens.Get()
	if !ok {
		dbg.printLine(terminal.StyleFeedback, dbg.con.CPU.String())
		return nil
	}

	if strings.ToUpper(option) != "SET" {
		return curated.Errorf(InvalidArgument, "option", option)
	}

	reg, ok := tokens.Get()
	if !ok {
		return curated.Errorf(MissingArgument, cmdCPU+" SET", "a register")
	}
	s, ok := tokens.Get()
	if !ok {
		return curated.Errorf(MissingArgument, cmdCPU+" SET", "a value")
	}
	v, ok := parseNumber(s, 16)
	if !ok {
		return curated.Errorf(InvalidArgument, "value", s)
	}
	if !dbg.con.CPU.WriteRegister(reg, uint16(v)) {
		return curated.Errorf(InvalidArgument, "register", fmt.Sprintf("%s not one of %s", reg, strings.Join(cpu.RegisterNames, ", ")))
	}

	dbg.printLine(terminal.StyleFeedback, dbg.con.CPU.String())
	return nil
}

func (dbg *Debugger) commandDisasm(tokens *commandline.Tokens) error {
	a := dbg.con.CPU.PC.Address()
	if !tokens.IsEnd() {
		var err error
		a, err = getAddress(tokens, cmdDisasm)
		if err != nil {
			return err
		}
	}

	n, err := getCount(tokens, disasmDefault)
	if err != nil {
		return err
	}

	s := strings.Builder{}
	for range n {
		r := execution.Decode(dbg.con.Mem, a)
		s.WriteString(r.String())
		s.WriteString("\n")
		a += uint16(max(r.ByteCount, 1))
	}
	dbg.printLine(terminal.StyleCPUStep, s.String())

	return nil
}

func (dbg *Debugger) commandJoypad(tokens *commandline.Tokens) error {
	action, _ := tokens.Get()
	action = strings.ToUpper(action)
	if action != "PRESS" && action != "RELEASE" {
		return curated.Errorf(MissingArgument, cmdJoypad, "PRESS or RELEASE")
	}

	s, ok := tokens.Get()
	if !ok {
		return curated.Errorf(MissingArgument, cmdJoypad, "a key")
	}
	k, ok := joypad.KeyFromString(s)
	if !ok {
		return curated.Errorf(InvalidArgument, "key", s)
	}

	if action == "PRESS" {
		dbg.con.KeyDown(k)
	} else {
		dbg.con.KeyUp(k)
	}
	dbg.printLine(terminal.StyleFeedback, dbg.con.Mem.Joypad.String())

	return nil
}

func (dbg *Debugger) commandLog(tokens *commandline.Tokens) error {
	option, _ := tokens.Get()
	switch strings.ToUpper(option) {
	case "":
		if !logger.Write(dbg.printStyle(terminal.StyleLog)) {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		}
	case "TAIL":
		n, err := getCount(tokens, 10)
		if err != nil {
			return err
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), n)
	case "CLEAR":
		logger.Clear()
		dbg.printLine(terminal.StyleFeedback, "log cleared")
	default:
		return curated.Errorf(InvalidArgument, "option", option)
	}
	return nil
}

func (dbg *Debugger) commandMemviz(tokens *commandline.Tokens) error {
	filename, ok := tokens.Get()
	if !ok {
		return curated.Errorf(MissingArgument, cmdMemviz, "a filename")
	}

	option, _ := tokens.Get()

	var data any
	switch strings.ToUpper(option) {
	case "", "RESULT":
		data = &dbg.con.CPU.LastResult
	case "HEADER":
		data = &dbg.con.Mem.Cart.Header
	default:
		return curated.Errorf(InvalidArgument, "option", option)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	memviz.Map(f, data)
	dbg.printLine(terminal.StyleFeedback, "memviz written to %s", filename)

	return nil
}

func (dbg *Debugger) commandScreenshot(tokens *commandline.Tokens) error {
	filename := ""
	scale := 1

	for !tokens.IsEnd() {
		s, _ := tokens.Get()
		if n, err := strconv.Atoi(s); err == nil {
			scale = n
		} else {
			filename = s
		}
	}

	if filename == "" {
		filename = fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", dbg.con.CartridgeName()))
	}

	err := screenshot.Save(dbg.con.FrameBuffer(), filename, scale)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "screenshot saved to %s", filename)

	return nil
}

func (dbg *Debugger) runScript(filename string) error {
	if dbg.scriptDepth >= maxScriptDepth {
		return curated.Errorf(ScriptDepth)
	}
	dbg.scriptDepth++
	defer func() { dbg.scriptDepth-- }()

	scr := script.NewScript(dbg.con, dbg.printStyle(terminal.StyleScript), dbg.parseInput)
	defer scr.Close()

	return scr.RunFile(filename)
}

func (dbg *Debugger) printPeek(a uint16) {
	dbg.printLine(terminal.StyleFeedback, "%04x -> %02x [%s]", a, dbg.con.Mem.Read(a), memorymap.MapAddress(a))
}

// step the emulation by n instructions. each instruction is printed.
func (dbg *Debugger) step(n int) error {
	dbg.halted = false
	for range n {
		_, err := dbg.con.Step()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, dbg.con.CPU.LastResult.String())
	}
	return nil
}

// run the emulation until a breakpoint is reached or an interrupt is
// received. if frames is greater than zero the run will also end after that
// many frames.
func (dbg *Debugger) run(frames int) error {
	dbg.state = govern.Running
	defer func() {
		if dbg.state == govern.Running {
			dbg.state = govern.Paused
		}
	}()

	dbg.halted = false
	dbg.breakpoints.resume(dbg.con.CPU.PC.Address())

	interrupted := false
	performanceFilter := 0

	check := func() (govern.State, error) {
		if dbg.breakpoints.check(dbg.con.CPU.PC.Address()) {
			dbg.halted = true
			return govern.Ending, nil
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-dbg.events.IntEvents:
				interrupted = true
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	}

	var err error
	if frames > 0 {
		err = dbg.con.RunForFrameCount(frames, func(_ int) (govern.State, error) {
			return check()
		})
	} else {
		err = dbg.con.Run(check)
	}
	if err != nil {
		return err
	}

	switch {
	case dbg.halted:
		dbg.printLine(terminal.StyleFeedback, "break at %04x", dbg.con.CPU.PC.Address())
	case interrupted:
		dbg.printLine(terminal.StyleFeedback, "interrupted at %04x", dbg.con.CPU.PC.Address())
	default:
		dbg.printLine(terminal.StyleFeedback, "frame %d", dbg.con.FrameNum)
	}

	return nil
}
