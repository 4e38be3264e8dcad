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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestDivider(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Write(memorymap.DIV, 0x55)
	test.ExpectEquality(t, tmr.Read(memorymap.DIV), 0x00)

	tmr.Update(255)
	test.ExpectEquality(t, tmr.Read(memorymap.DIV), 0x00)
	tmr.Update(1)
	test.ExpectEquality(t, tmr.Read(memorymap.DIV), 0x01)
	tmr.Update(256 * 4)
	test.ExpectEquality(t, tmr.Read(memorymap.DIV), 0x05)
}

func TestTAC(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Write(memorymap.TAC, 0xff)
	test.ExpectEquality(t, tmr.Read(memorymap.TAC), 0xff)
	tmr.Write(memorymap.TAC, 0x00)
	test.ExpectEquality(t, tmr.Read(memorymap.TAC), 0xf8)
}

func TestTIMA(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Write(memorymap.DIV, 0x00)

	// disabled timer does not count
	tmr.Update(1024)
	test.ExpectEquality(t, tmr.Read(memorymap.TIMA), 0x00)

	// 16 cycle clock
	tmr.Write(memorymap.TAC, 0x05)
	tmr.Update(16)
	test.ExpectEquality(t, tmr.Read(memorymap.TIMA), 0x01)
	tmr.Update(16 * 10)
	test.ExpectEquality(t, tmr.Read(memorymap.TIMA), 0x0b)

	// 1024 cycle clock
	tmr.Write(memorymap.DIV, 0x00)
	tmr.Write(memorymap.TIMA, 0x00)
	tmr.Write(memorymap.TAC, 0x04)
	tmr.Update(1023)
	test.ExpectEquality(t, tmr.Read(memorymap.TIMA), 0x00)
	tmr.Update(1)
	test.ExpectEquality(t, tmr.Read(memorymap.TIMA), 0x01)
}

func TestOverflow(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Write(memorymap.DIV, 0x00)
	tmr.Write(memorymap.TMA, 0x80)
	tmr.Write(memorymap.TIMA, 0xff)
	tmr.Write(memorymap.TAC, 0x05)
	test.ExpectEquality(t, tmr.PendingInterrupt(), bus.Interrupt(0))

	tmr.Update(16)
	test.ExpectEquality(t, tmr.Read(memorymap.TIMA), 0x80)
	test.ExpectEquality(t, tmr.PendingInterrupt(), bus.Timer)

	// the interrupt is only returned once
	test.ExpectEquality(t, tmr.PendingInterrupt(), bus.Interrupt(0))
}

func TestDividerResetEdge(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Write(memorymap.DIV, 0x00)
	tmr.Write(memorymap.TAC, 0x05)

	// bit 3 of the divider is set. resetting the divider is a falling edge
	tmr.Update(8)
	tmr.Write(memorymap.DIV, 0x00)
	test.ExpectEquality(t, tmr.Read(memorymap.TIMA), 0x01)
}
