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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("yellow", "blue", "bold", false, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[33;104;1m")

	s, err = ansi.ColorBuild("", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)
	test.ExpectEquality(t, s, "\033[0m")

	_, err = ansi.ColorBuild("mauve", "", "", false, false)
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.DimPens["white"], "\033[37m")
	test.ExpectEquality(t, ansi.PenStyles["bold"], "\033[1m")
}

func TestCursorMove(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorMove(3), "\033[3C")
	test.ExpectEquality(t, ansi.CursorMove(-2), "\033[2D")
	test.ExpectEquality(t, ansi.CursorMove(0), "")
}
