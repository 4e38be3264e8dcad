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

// Package joypad implements the P1 register of the console, through which
// the state of the eight buttons is read.
//
// The buttons are arranged in two groups of four. The group is selected by
// clearing bit 4 (the direction pad) or bit 5 (the action buttons) of the P1
// register. A pressed button in a selected group reads as a cleared bit in
// the lower nibble of the register.
package joypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// Key is one of the eight buttons.
type Key int

// List of keys. The first four keys are the direction pad and the second
// four are the action buttons. The order within each group is the order of
// the bits in the P1 register.
const (
	Right Key = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
	numKeys
)

var keyNames = [numKeys]string{"RIGHT", "LEFT", "UP", "DOWN", "A", "B", "SELECT", "START"}

func (k Key) String() string {
	if k >= 0 && k < numKeys {
		return keyNames[k]
	}
	return "unknown key"
}

// KeyFromString returns the Key with the name. The name is not case
// sensitive.
func KeyFromString(s string) (Key, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k, n := range keyNames {
		if n == s {
			return Key(k), true
		}
	}
	return 0, false
}

// group selection bits in the P1 register. a cleared bit selects the group.
const (
	selectDirection = 0x10
	selectAction    = 0x20
	selectMask      = selectDirection | selectAction
)

// Joypad implements the bus.Device and bus.InterruptSource interfaces.
type Joypad struct {
	selection uint8

	// one bit per Key. a set bit means the key is pressed
	pressed uint8

	pending bus.Interrupt
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad() *Joypad {
	joy := &Joypad{}
	joy.Reset()
	return joy
}

// Reset the joypad. All keys are released.
func (joy *Joypad) Reset() {
	joy.selection = selectMask
	joy.pressed = 0
	joy.pending = 0
}

func (joy *Joypad) String() string {
	s := strings.Builder{}
	for k := range numKeys {
		if joy.pressed&(1<<k) != 0 {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(k.String())
		}
	}
	if s.Len() == 0 {
		return fmt.Sprintf("P1=%02x", joy.Read(memorymap.P1))
	}
	return fmt.Sprintf("P1=%02x %s", joy.Read(memorymap.P1), s.String())
}

// KeyDown presses the key. A joypad interrupt is requested if the key was
// not already pressed.
func (joy *Joypad) KeyDown(k Key) {
	if k < 0 || k >= numKeys {
		return
	}
	if joy.pressed&(1<<k) == 0 {
		joy.pressed |= 1 << k
		joy.pending |= bus.Joypad
	}
}

// KeyUp releases the key.
func (joy *Joypad) KeyUp(k Key) {
	if k < 0 || k >= numKeys {
		return
	}
	joy.pressed &^= 1 << k
}

// Update implements the bus.Device interface.
func (joy *Joypad) Update(_ int) {
}

// PendingInterrupt implements the bus.InterruptSource interface.
func (joy *Joypad) PendingInterrupt() bus.Interrupt {
	p := joy.pending
	joy.pending = 0
	return p
}

// Read implements the bus.Bus interface.
func (joy *Joypad) Read(address uint16) uint8 {
	if address != memorymap.P1 {
		return bus.OpenBus
	}

	v := uint8(0x0f)
	if joy.selection&selectDirection == 0 {
		v &^= joy.pressed & 0x0f
	}
	if joy.selection&selectAction == 0 {
		v &^= joy.pressed >> 4
	}

	return 0xc0 | joy.selection | v
}

// Write implements the bus.Bus interface.
func (joy *Joypad) Write(address uint16, data uint8) {
	if address == memorymap.P1 {
		joy.selection = data & selectMask
	}
}
