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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/debugger/govern"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestStateString(t *testing.T) {
	test.ExpectEquality(t, govern.Running.String(), "Running")
	test.ExpectEquality(t, govern.Ending.String(), "Ending")
	test.ExpectEquality(t, govern.EmulatorStart.String(), "EmulatorStart")
	test.ExpectEquality(t, govern.State(99).String(), "")
	test.ExpectEquality(t, govern.State(-1).String(), "")
}
