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
	"github.com/jetsetilly/gopherdmg/debugger/terminal"
	"github.com/jetsetilly/gopherdmg/debugger/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to output normalised input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(pen(style))
	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(ansi.NormalPen)
	ct.EasyTerm.TermPrint("\n")
}

func pen(style terminal.Style) string {
	switch style {
	case terminal.StyleHelp:
		return ansi.DimPens["white"]
	case terminal.StyleFeedback:
		return ansi.DimPens["white"]
	case terminal.StyleCPUStep:
		return ansi.Pens["yellow"]
	case terminal.StyleLog:
		return ansi.DimPens["cyan"]
	case terminal.StyleScript:
		return ansi.Pens["green"]
	case terminal.StyleError:
		return ansi.Pens["red"] + "* "
	}
	return ""
}
