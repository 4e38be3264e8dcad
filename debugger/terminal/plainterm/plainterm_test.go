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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/debugger/terminal"
	"github.com/jetsetilly/gopherdmg/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\npeek 0xff44\nquit"), out)
	test.ExpectSuccess(t, pt.Initialise())
	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	s, err = pt.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "peek 0xff44")

	// final line has no line ending
	s, err = pt.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead(terminal.Prompt{}, nil)
	test.ExpectEquality(t, err, io.EOF)

	// echoed input is never printed
	pt.TermPrintLine(terminal.StyleEcho, "step")
	pt.TermPrintLine(terminal.StyleFeedback, "ok")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, out.Compare("ok\n* bad\n"))

	// only errors get through when silenced
	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "ok")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, out.Compare("* bad\n"))
}
