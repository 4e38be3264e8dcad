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

package bus

import "strings"

// Interrupt is a bit mask of interrupt lines. The bit positions are the same
// as in the interrupt request and interrupt enable registers.
type Interrupt uint8

// List of interrupt lines. The lowest bit has the highest priority.
const (
	VBlank Interrupt = 1 << iota
	LCDStat
	Timer
	Serial
	Joypad

	// only the lower five bits are meaningful
	AllInterrupts Interrupt = 0x1f
)

// the address of the service routine for each interrupt, in priority order.
var vectors = [5]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}

var interruptNames = [5]string{"VBlank", "LCDStat", "Timer", "Serial", "Joypad"}

// Highest returns the interrupt with the highest priority in the mask and
// the address of its service routine. Returns false if no interrupt is in
// the mask.
func (i Interrupt) Highest() (Interrupt, uint16, bool) {
	for b := range len(vectors) {
		line := Interrupt(1 << b)
		if i&line == line {
			return line, vectors[b], true
		}
	}
	return 0, 0, false
}

func (i Interrupt) String() string {
	s := strings.Builder{}
	for b, n := range interruptNames {
		if i&(1<<b) != 0 {
			if s.Len() > 0 {
				s.WriteString("|")
			}
			s.WriteString(n)
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}
