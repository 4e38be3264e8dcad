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

package terminal

import (
	"os"
)

// Errors that TermRead() returns when the user interrupts or aborts input.
// Terminals that cannot see keypresses directly rely on the IntEvents channel
// in ReadEvents instead.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// ReadEvents are the channels a terminal watches while waiting in TermRead().
type ReadEvents struct {
	IntEvents chan os.Signal
}

// Input is the reading half of a terminal.
type Input interface {
	// TermRead blocks until a line is available. The line ending is
	// removed. io.EOF indicates the input is exhausted.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive is false when input comes from a file or a pipe.
	IsInteractive() bool
}

// Output is the writing half of a terminal.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal is the interface between the debugger and the user.
type Terminal interface {
	Input
	Output

	// Initialise is called once before the first TermRead().
	Initialise() error

	// CleanUp returns the terminal to the mode it was in before Initialise().
	CleanUp()

	RegisterTabCompletion(TabCompletion)

	// Silence suppresses everything printed through TermPrintLine() apart
	// from StyleError lines. Used by SCRIPT QUIET.
	Silence(silenced bool)
}

// TabCompletion expands a partial input line. The commandline package
// provides the debugger's implementation.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
