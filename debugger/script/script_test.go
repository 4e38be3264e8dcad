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

package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/debugger/script"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/test"
)

// a cartridge that loops forever at the reset address
func newConsole(t *testing.T) *hardware.Console {
	t.Helper()

	d := make([]uint8, 0x8000)
	d[0x0100] = 0x18 // JR -2
	d[0x0101] = 0xfe
	copy(d[0x0134:], "SCRIPT")
	d[0x014d] = cartridge.HeaderChecksum(d)

	con := hardware.NewConsole(nil)
	err := con.AttachCartridge(cartridgeloader.Loader{Filename: "script.gb", Data: d})
	test.DemandEquality(t, err, nil)
	return con
}

func TestScript(t *testing.T) {
	con := newConsole(t)
	out := &test.CompareWriter{}
	scr := script.NewScript(con, out, nil)
	defer scr.Close()

	err := scr.RunString(`print(step(), reg("pc"))`)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("12\t256\n"))

	out.Clear()
	err = scr.RunString(`poke(0xff80, 0x42); print(string.format("%02x", peek(0xff80)))`)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("42\n"))

	out.Clear()
	err = scr.RunString(`print(frame(2))`)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("2\n"))
	test.ExpectEquality(t, con.FrameNum, 2)

	// select the button group and press A
	out.Clear()
	err = scr.RunString(`poke(0xff00, 0x10); press("a"); print(peek(0xff00)); release("a"); print(peek(0xff00))`)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("222\n223\n"))

	err = scr.RunString(`reset(); print(frame())`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.FrameNum, 1)
}

func TestScriptErrors(t *testing.T) {
	con := newConsole(t)
	out := &test.CompareWriter{}
	scr := script.NewScript(con, out, nil)
	defer scr.Close()

	err := scr.RunString(`reg("IX")`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = scr.RunString(`peek(0x10000)`)
	test.ExpectFailure(t, err)

	// DMA from beyond work RAM is refused rather than reaching the memory
	// router
	err = scr.RunString(`poke(0xff46, 0xe0)`)
	test.ExpectFailure(t, err)

	err = scr.RunString(`press("X")`)
	test.ExpectFailure(t, err)

	err = scr.RunString(`step(0)`)
	test.ExpectFailure(t, err)

	// the command function is not available without a debugger
	err = scr.RunString(`command("STEP")`)
	test.ExpectFailure(t, err)

	err = scr.RunString(`this is not lua`)
	test.ExpectFailure(t, err)
}

func TestScriptCommand(t *testing.T) {
	con := newConsole(t)

	var commands []string
	scr := script.NewScript(con, &test.CompareWriter{}, func(input string) error {
		commands = append(commands, input)
		return nil
	})
	defer scr.Close()

	err := scr.RunString(`command("CPU"); command("PEEK 0xff44")`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(commands), 2)
	test.ExpectEquality(t, commands[1], "PEEK 0xff44")
}

func TestScriptFile(t *testing.T) {
	con := newConsole(t)
	out := &test.CompareWriter{}
	scr := script.NewScript(con, out, nil)
	defer scr.Close()

	fn := filepath.Join(t.TempDir(), "test.lua")
	err := os.WriteFile(fn, []byte("for i = 1, 3 do step() end\nprint(reg(\"SP\"))\n"), 0o644)
	test.DemandEquality(t, err, nil)

	err = scr.RunFile(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, out.Compare("65534\n"))

	err = scr.RunFile(filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectFailure(t, err)
}
