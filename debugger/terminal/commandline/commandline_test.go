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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/debugger/terminal/commandline"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestTokeniser(t *testing.T) {
	tk := commandline.TokeniseInput("  poke   $ff44  &10 ")
	test.ExpectEquality(t, tk.String(), "poke   $ff44  &10")
	test.ExpectEquality(t, tk.Remainder(), "poke 0xff44 0x10")

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "poke")
	test.ExpectEquality(t, tk.Remainder(), "0xff44 0x10")

	s, _ = tk.Get()
	test.ExpectEquality(t, s, "0xff44")
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "0x10")

	test.ExpectSuccess(t, tk.IsEnd())
	test.ExpectEquality(t, tk.Remainder(), "")
	_, ok = tk.Get()
	test.ExpectFailure(t, ok)

	// a lone dollar sign is not a hex number
	tk = commandline.TokeniseInput("$")
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "$")

	// empty input has no tokens
	tk = commandline.TokeniseInput("   ")
	test.ExpectSuccess(t, tk.IsEnd())
}

func TestTabCompletion(t *testing.T) {
	tc := commandline.NewTabCompletion(commandline.Commands{
		"TEST":  nil,
		"TEST1": nil,
		"FOO":   {"BAR", "BAZ"},
	})

	completion := tc.Complete("te")
	test.ExpectEquality(t, completion, "TEST ")

	// next completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "TEST1 ")

	// cycle back to the first completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "TEST ")

	tc.Reset()
	completion = tc.Complete("FOO b")
	test.ExpectEquality(t, completion, "FOO BAR ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "FOO BAZ ")

	// no matches
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("XYZ"), "XYZ")

	// trailing space means there is nothing to complete
	test.ExpectEquality(t, tc.Complete("FOO "), "FOO ")

	// single match doesn't cycle
	tc.Reset()
	completion = tc.Complete("F")
	test.ExpectEquality(t, completion, "FOO ")
	test.ExpectEquality(t, tc.Complete(completion), "FOO ")
}
