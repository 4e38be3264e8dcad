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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestPriority(t *testing.T) {
	line, vector, ok := (bus.VBlank | bus.LCDStat).Highest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, line, bus.VBlank)
	test.ExpectEquality(t, vector, uint16(0x0040))

	line, vector, ok = (bus.Joypad | bus.Timer).Highest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, line, bus.Timer)
	test.ExpectEquality(t, vector, uint16(0x0050))

	line, vector, ok = bus.Joypad.Highest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, line, bus.Joypad)
	test.ExpectEquality(t, vector, uint16(0x0060))

	// bits above the lower five are not interrupts
	_, _, ok = bus.Interrupt(0xe0).Highest()
	test.ExpectFailure(t, ok)
}

func TestInterruptString(t *testing.T) {
	test.ExpectEquality(t, bus.Interrupt(0).String(), "none")
	test.ExpectEquality(t, (bus.VBlank | bus.Serial).String(), "VBlank|Serial")
	test.ExpectEquality(t, bus.AllInterrupts.String(), "VBlank|LCDStat|Timer|Serial|Joypad")
}
