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

package debugger_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/debugger"
	"github.com/jetsetilly/gopherdmg/debugger/govern"
	"github.com/jetsetilly/gopherdmg/debugger/terminal"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/test"
)

type line struct {
	style terminal.Style
	s     string
}

// mockTerm supplies a fixed sequence of input lines to the debugger. output
// is grouped by the input that caused it.
type mockTerm struct {
	inputs   []string
	output   [][]line
	prompts  []terminal.Prompt
	silenced bool
}

func newMockTerm(inputs ...string) *mockTerm {
	return &mockTerm{
		inputs: inputs,
		output: [][]line{nil},
	}
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(silenced bool) {
	trm.silenced = silenced
}

func (trm *mockTerm) TermRead(prompt terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if len(trm.inputs) == 0 {
		return "", io.EOF
	}
	s := trm.inputs[0]
	trm.inputs = trm.inputs[1:]
	trm.prompts = append(trm.prompts, prompt)
	trm.output = append(trm.output, nil)
	return s, nil
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	if trm.silenced && sty != terminal.StyleError {
		return
	}
	l := len(trm.output) - 1
	trm.output[l] = append(trm.output[l], line{style: sty, s: s})
}

// cmpOutput compares the string argument with the last line of the output
// caused by the numbered input. the first input is numbered one. output
// before the first input (the cartridge summary) is numbered zero.
func (trm *mockTerm) cmpOutput(t *testing.T, input int, s string) {
	t.Helper()

	out := trm.output[input]
	if len(out) == 0 {
		t.Errorf("unexpected debugger output (nothing) should be (%s)", s)
		return
	}

	if out[len(out)-1].s != s {
		t.Errorf("unexpected debugger output (%s) should be (%s)", out[len(out)-1].s, s)
	}
}

func (trm *mockTerm) lines(input int) []string {
	s := make([]string, 0, len(trm.output[input]))
	for _, l := range trm.output[input] {
		s = append(s, l.s)
	}
	return s
}

// a program that loops over three NOP instructions
func newCartridge() *cartridgeloader.Loader {
	d := make([]uint8, 0x8000)
	copy(d[0x0100:], []uint8{
		0x00,       // NOP
		0x00,       // NOP
		0x00,       // NOP
		0x18, 0xfb, // JR -5
	})
	copy(d[0x0134:], "DEBUGGER")
	d[0x014d] = cartridge.HeaderChecksum(d)
	return &cartridgeloader.Loader{Filename: "debugger.gb", Data: d}
}

func startDebugger(t *testing.T, trm *mockTerm) *debugger.Debugger {
	t.Helper()
	dbg := debugger.NewDebugger(hardware.NewConsole(nil), trm)
	err := dbg.Start(newCartridge())
	test.DemandEquality(t, err, nil)
	return dbg
}

func TestStepping(t *testing.T) {
	trm := newMockTerm(
		"CPU",
		"STEP",
		"",
		"step 2",
		"DISASM 0x0100 4",
		"CPU SET a $12; CPU",
		"CPU SET Q 1",
		"STEP 0",
	)
	dbg := startDebugger(t, trm)
	test.ExpectEquality(t, dbg.State(), govern.Ending)

	trm.cmpOutput(t, 0, "DEBUGGER (ROM ONLY) [ROM 0, 1]")
	test.ExpectSuccess(t, strings.HasPrefix(trm.lines(1)[0], "PC=0100 SP=fffe A=01"))
	trm.cmpOutput(t, 2, "0100 NOP")
	trm.cmpOutput(t, 3, "0101 NOP")
	test.ExpectEquality(t, fmt.Sprint(trm.lines(4)), "[0102 NOP 0103 JR $0100]")
	test.ExpectEquality(t, len(trm.lines(5)), 4)
	trm.cmpOutput(t, 5, "0103 JR $0100")
	test.ExpectSuccess(t, strings.Contains(trm.lines(6)[1], "A=12"))
	test.ExpectEquality(t, trm.output[7][0].style, terminal.StyleError)
	trm.cmpOutput(t, 8, "invalid count (0)")

	// the prompt shows the next instruction
	test.ExpectEquality(t, trm.prompts[0].String(), "[ 0100 NOP ] >> ")
	test.ExpectEquality(t, trm.prompts[4].String(), "[ 0100 NOP ] >> ")
}

func TestMemoryCommands(t *testing.T) {
	trm := newMockTerm(
		"POKE $ff80 $42",
		"PEEK 0xff80 0xffff",
		"PEEK",
		"POKE 0xff80 0x100",
		"MEMMAP 0xc000",
		"CARTRIDGE BANKS",
		"CARTRIDGE HEADER",
		"SERIAL",
		"JOYPAD PRESS start",
		"JOYPAD RELEASE start",
		"POKE 0xff46 0xe0",
		"PEEK 0xff80",
		"POKE 0xff80 0x43 $44 extra",
	)
	startDebugger(t, trm)

	trm.cmpOutput(t, 1, "ff80 -> 42 [High RAM]")
	test.ExpectEquality(t, fmt.Sprint(trm.lines(2)), "[ff80 -> 42 [High RAM] ffff -> 00 [Interrupt enable]]")
	trm.cmpOutput(t, 3, "PEEK requires an address")
	trm.cmpOutput(t, 4, "invalid value (0x100)")
	trm.cmpOutput(t, 5, "c000 -> Work RAM")
	trm.cmpOutput(t, 6, "ROM 0, 1")
	test.ExpectEquality(t, trm.lines(7)[0], "title: DEBUGGER")
	trm.cmpOutput(t, 8, "no serial output")
	trm.cmpOutput(t, 9, "P1=ff START")
	trm.cmpOutput(t, 10, "P1=ff")

	// DMA from an out of range page is refused and the session continues
	trm.cmpOutput(t, 11, "invalid DMA page (0xe0)")
	test.ExpectEquality(t, trm.output[11][0].style, terminal.StyleError)
	trm.cmpOutput(t, 12, "ff80 -> 42 [High RAM]")

	// surplus arguments are named in the error and nothing is written
	trm.cmpOutput(t, 13, "too many arguments for POKE (0x44 extra)")
	test.ExpectEquality(t, trm.output[13][0].style, terminal.StyleError)
}

func TestBreakpoints(t *testing.T) {
	trm := newMockTerm(
		"BREAK 0x0102",
		"BREAK 0x0102",
		"RUN",
		"LIST",
		"RUN",
		"CLEAR",
		"RUN 1",
		"QUIT",
		"CPU",
	)
	dbg := startDebugger(t, trm)
	test.ExpectEquality(t, dbg.State(), govern.Ending)

	trm.cmpOutput(t, 1, "breakpoint added at 0102")
	trm.cmpOutput(t, 2, "breakpoint already exists (0102)")
	trm.cmpOutput(t, 3, "break at 0102")
	trm.cmpOutput(t, 4, " 0: 0102")

	// the prompt after a breakpoint is marked
	test.ExpectSuccess(t, trm.prompts[3].Break)

	// running from a breakpoint will stop at the same breakpoint on the next
	// iteration of the loop
	trm.cmpOutput(t, 5, "break at 0102")
	trm.cmpOutput(t, 6, "breakpoints cleared")
	trm.cmpOutput(t, 7, "frame 1")

	// nothing is read after QUIT
	test.ExpectEquality(t, len(trm.prompts), 8)
}

func TestHelp(t *testing.T) {
	trm := newMockTerm(
		"HELP",
		"help clear",
		"HELP FOO",
		"FOO",
	)
	startDebugger(t, trm)

	test.ExpectSuccess(t, strings.Contains(trm.lines(1)[0], "BREAK"))
	trm.cmpOutput(t, 2, "Clear all breakpoints")
	trm.cmpOutput(t, 3, "no help for FOO")
	trm.cmpOutput(t, 4, "unknown command (FOO)")
}

func TestFileCommands(t *testing.T) {
	dir := t.TempDir()

	scriptFile := filepath.Join(dir, "test.lua")
	err := os.WriteFile(scriptFile, []byte(`command("BREAK 0x0101"); step(2); print(string.format("%04x", reg("PC")))`), 0o644)
	test.DemandEquality(t, err, nil)

	quietFile := filepath.Join(dir, "quiet.lua")
	err = os.WriteFile(quietFile, []byte(`step(1); print("quiet")`), 0o644)
	test.DemandEquality(t, err, nil)

	shotFile := filepath.Join(dir, "shot.png")
	vizFile := filepath.Join(dir, "result.dot")

	trm := newMockTerm(
		fmt.Sprintf("SCRIPT %s", scriptFile),
		"LIST",
		fmt.Sprintf("SCREENSHOT %s 2", shotFile),
		fmt.Sprintf("SCREENSHOT %s", shotFile),
		fmt.Sprintf("MEMVIZ %s", vizFile),
		"SCRIPT",
		fmt.Sprintf("SCRIPT %s QUIET", quietFile),
		"LIST",
		fmt.Sprintf("SCRIPT %s LOUD", quietFile),
	)
	startDebugger(t, trm)

	trm.cmpOutput(t, 1, "0102")
	trm.cmpOutput(t, 2, " 0: 0101")
	trm.cmpOutput(t, 3, fmt.Sprintf("screenshot saved to %s", shotFile))
	test.ExpectEquality(t, trm.output[4][0].style, terminal.StyleError)
	trm.cmpOutput(t, 5, fmt.Sprintf("memviz written to %s", vizFile))
	trm.cmpOutput(t, 6, "SCRIPT requires a filename")
	test.ExpectEquality(t, len(trm.output[7]), 0)
	trm.cmpOutput(t, 8, " 0: 0101")
	trm.cmpOutput(t, 9, "invalid SCRIPT option (LOUD)")
	test.ExpectEquality(t, trm.silenced, false)

	_, err = os.Stat(shotFile)
	test.ExpectSuccess(t, err)
	_, err = os.Stat(vizFile)
	test.ExpectSuccess(t, err)
}
