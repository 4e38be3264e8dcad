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

// Package timer implements the divider and timer registers of the console.
//
// The divider is a sixteen bit counter that increases every clock cycle. The
// DIV register is the upper eight bits of the divider. The TIMA register
// increases when the divider bit selected by the TAC register falls from one
// to zero. When TIMA overflows it is reloaded with the value of TMA and a
// timer interrupt is requested.
package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// the TAC register bit that enables TIMA.
const tacEnable = 0x04

// the divider bit that clocks TIMA for each of the four TAC clock selections.
var clockSelect = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Timer implements the bus.Device and bus.InterruptSource interfaces.
type Timer struct {
	divider uint16

	TIMA uint8
	TMA  uint8
	TAC  uint8

	pending bus.Interrupt
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	tmr := &Timer{}
	tmr.Reset()
	return tmr
}

// Reset the timer to the state it is in after the boot ROM has completed.
func (tmr *Timer) Reset() {
	tmr.divider = 0xabcc
	tmr.TIMA = 0x00
	tmr.TMA = 0x00
	tmr.TAC = 0x00
	tmr.pending = 0
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%02x TIMA=%02x TMA=%02x TAC=%02x", tmr.DIV(), tmr.TIMA, tmr.TMA, tmr.TAC)
}

// DIV returns the value of the DIV register.
func (tmr *Timer) DIV() uint8 {
	return uint8(tmr.divider >> 8)
}

// signal is the input to the TIMA falling edge detector.
func (tmr *Timer) signal() bool {
	return tmr.TAC&tacEnable == tacEnable && tmr.divider&clockSelect[tmr.TAC&0x03] != 0
}

// change the divider or TAC register and increment TIMA if that causes a
// falling edge.
func (tmr *Timer) change(f func()) {
	before := tmr.signal()
	f()
	if before && !tmr.signal() {
		tmr.increment()
	}
}

func (tmr *Timer) increment() {
	tmr.TIMA++
	if tmr.TIMA == 0 {
		tmr.TIMA = tmr.TMA
		tmr.pending |= bus.Timer
	}
}

// Update implements the bus.Device interface.
func (tmr *Timer) Update(cycles int) {
	for range cycles {
		tmr.change(func() {
			tmr.divider++
		})
	}
}

// PendingInterrupt implements the bus.InterruptSource interface.
func (tmr *Timer) PendingInterrupt() bus.Interrupt {
	p := tmr.pending
	tmr.pending = 0
	return p
}

// Read implements the bus.Bus interface.
func (tmr *Timer) Read(address uint16) uint8 {
	switch address {
	case memorymap.DIV:
		return tmr.DIV()
	case memorymap.TIMA:
		return tmr.TIMA
	case memorymap.TMA:
		return tmr.TMA
	case memorymap.TAC:
		return tmr.TAC | 0xf8
	}
	return bus.OpenBus
}

// Write implements the bus.Bus interface.
func (tmr *Timer) Write(address uint16, data uint8) {
	switch address {
	case memorymap.DIV:
		// any write resets the whole of the divider
		tmr.change(func() {
			tmr.divider = 0
		})
	case memorymap.TIMA:
		tmr.TIMA = data
	case memorymap.TMA:
		tmr.TMA = data
	case memorymap.TAC:
		tmr.change(func() {
			tmr.TAC = data & 0x07
		})
	}
}
