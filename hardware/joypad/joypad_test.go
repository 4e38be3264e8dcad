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

package joypad_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/joypad"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestSelection(t *testing.T) {
	joy := joypad.NewJoypad()
	test.ExpectEquality(t, joy.Read(memorymap.P1), 0xff)

	joy.KeyDown(joypad.Start)
	joy.KeyDown(joypad.Left)

	// nothing selected
	test.ExpectEquality(t, joy.Read(memorymap.P1), 0xff)

	// direction pad
	joy.Write(memorymap.P1, 0x20)
	test.ExpectEquality(t, joy.Read(memorymap.P1), 0xed)

	// action buttons
	joy.Write(memorymap.P1, 0x10)
	test.ExpectEquality(t, joy.Read(memorymap.P1), 0xd7)

	// both groups
	joy.Write(memorymap.P1, 0x00)
	test.ExpectEquality(t, joy.Read(memorymap.P1), 0xc5)

	joy.KeyUp(joypad.Start)
	joy.KeyUp(joypad.Left)
	test.ExpectEquality(t, joy.Read(memorymap.P1), 0xcf)
}

func TestJoypadInterrupt(t *testing.T) {
	joy := joypad.NewJoypad()
	test.ExpectEquality(t, joy.PendingInterrupt(), bus.Interrupt(0))

	joy.KeyDown(joypad.A)
	test.ExpectEquality(t, joy.PendingInterrupt(), bus.Joypad)
	test.ExpectEquality(t, joy.PendingInterrupt(), bus.Interrupt(0))

	// holding a key does not request another interrupt
	joy.KeyDown(joypad.A)
	test.ExpectEquality(t, joy.PendingInterrupt(), bus.Interrupt(0))
}

func TestKeyFromString(t *testing.T) {
	k, ok := joypad.KeyFromString("start")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, joypad.Start)

	_, ok = joypad.KeyFromString("turbo")
	test.ExpectFailure(t, ok)
}
