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

// Package plainterm implements the Terminal interface for the GopherDMG
// debugger. It's as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input      *bufio.Reader
	output     io.Writer
	realInput  bool
	realOutput bool
	silenced   bool
}

// NewPlainTerminal is the preferred method of initialisation when the input
// and output are something other than stdin and stdout.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if pt.input == nil {
		pt.input = bufio.NewReader(os.Stdin)
		pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	}
	if pt.output == nil {
		pt.output = os.Stdout
		pt.realOutput = term.IsTerminal(int(os.Stdout.Fd()))
	}
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion adds an implementation of TabCompletion to the terminal.
func (pt *PlainTerminal) RegisterTabCompletion(terminal.TabCompletion) {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	pt.output.Write([]byte(s))
	pt.output.Write([]byte("\n"))
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	// insert prompt into output stream
	if pt.realInput && !pt.silenced {
		pt.output.Write([]byte(prompt.String()))
	}

	s, err := pt.input.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}

	// while we were waiting for the read to return we may have received an
	// interrupt event. if we have then return a UserInterrupt error to the
	// debugging loop
	if events != nil {
		select {
		case <-events.IntEvents:
			return "", curated.Errorf(terminal.UserInterrupt)
		default:
		}
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput && pt.realOutput
}
