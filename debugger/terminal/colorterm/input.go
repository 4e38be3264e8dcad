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

package colorterm

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/debugger/terminal"
	"github.com/jetsetilly/gopherdmg/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopherdmg/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.CBreakMode()
	defer ct.CanonicalMode()

	ed := lineEditor{
		in:            ct.reader,
		out:           &ct.EasyTerm,
		history:       &ct.commandHistory,
		tabCompletion: ct.tabCompletion,
	}

	s, err := ed.read(prompt.String())
	if err != nil {
		return "", err
	}

	// an interrupt may have been received while we were waiting for input
	if events != nil {
		select {
		case <-events.IntEvents:
			return "", curated.Errorf(terminal.UserInterrupt)
		default:
		}
	}

	return s, nil
}

// lineEditor reads a single line of input from a terminal in cbreak mode.
// Cursor keys move through the input and the command history.
type lineEditor struct {
	in            io.RuneReader
	out           io.Writer
	history       *[]string
	tabCompletion terminal.TabCompletion
}

func (ed lineEditor) redraw(prompt string, input []rune, cursor int) {
	fmt.Fprintf(ed.out, "\r%s%s%s\r%s", ansi.ClearLine, prompt, string(input),
		ansi.CursorMove(utf8.RuneCountInString(prompt)+cursor))
}

func (ed lineEditor) read(prompt string) (string, error) {
	input := make([]rune, 0, 256)
	cursor := 0
	history := len(*ed.history)

	// the latest input is preserved when we scroll through the history.
	// we don't want to lose what we've typed in case the user wants to
	// resume where we left off
	var scratch []rune

	recall := func(s []rune) {
		input = append(input[:0], s...)
		cursor = len(input)
	}

	for {
		ed.redraw(prompt, input, cursor)

		r, _, err := ed.in.ReadRune()
		if err != nil {
			if err == io.EOF && len(input) > 0 {
				return string(input), nil
			}
			return "", err
		}

		switch r {
		case easyterm.KeyTab:
			if ed.tabCompletion != nil {
				s := []rune(ed.tabCompletion.Complete(string(input[:cursor])))
				s = append(s, input[cursor:]...)
				cursor += len(s) - len(input)
				input = append(input[:0], s...)
			}
			continue

		case easyterm.KeyInterrupt:
			fmt.Fprint(ed.out, "\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if len(input) == 0 {
				fmt.Fprint(ed.out, "\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeySuspend:
			easyterm.SuspendProcess()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			s := string(input)
			h := *ed.history
			if s != "" && (len(h) == 0 || h[len(h)-1] != s) {
				*ed.history = append(h, s)
			}
			fmt.Fprint(ed.out, "\n")
			return s, nil

		case easyterm.KeyEsc:
			r, _, err = ed.in.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor && r != easyterm.EscSS3 {
				continue
			}

			r, _, err = ed.in.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(*ed.history) {
						scratch = append(scratch[:0], input...)
					}
					history--
					recall([]rune((*ed.history)[history]))
				}
			case easyterm.CursorDown:
				if history < len(*ed.history)-1 {
					history++
					recall([]rune((*ed.history)[history]))
				} else if history == len(*ed.history)-1 {
					history++
					recall(scratch)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(input)
			case easyterm.CursorDelete:
				// consume the trailing tilde
				_, _, _ = ed.in.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(*ed.history)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(*ed.history)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, 0)
				copy(input[cursor+1:], input[cursor:])
				input[cursor] = r
				cursor++
				history = len(*ed.history)
			}
		}

		if ed.tabCompletion != nil {
			ed.tabCompletion.Reset()
		}
	}
}
