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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/debugger/terminal"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: " 0100 NOP "}
	test.ExpectEquality(t, p.String(), "[ 0100 NOP ] >> ")

	p.Break = true
	test.ExpectEquality(t, p.String(), "[ 0100 NOP ] ! ")
}
