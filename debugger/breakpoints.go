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

package debugger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
)

// Sentinel errors.
const (
	BreakpointExists = "breakpoint already exists (%04x)"
)

// breakpoints halt the emulation when the program counter reaches one of the
// listed addresses.
type breakpoints struct {
	addresses []uint16

	// the address of the most recent match. the emulation will not halt on
	// the same breakpoint twice in succession unless the program counter has
	// moved away and returned
	last    uint16
	matched bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		addresses: make([]uint16, 0, 10),
	}
}

func (bp *breakpoints) add(address uint16) error {
	if slices.Contains(bp.addresses, address) {
		return curated.Errorf(BreakpointExists, address)
	}
	bp.addresses = append(bp.addresses, address)
	return nil
}

func (bp *breakpoints) clear() {
	bp.addresses = bp.addresses[:0]
	bp.matched = false
}

// resume is called whenever the emulation is about to run. a breakpoint at the
// current address will not be matched until the program counter has moved
// away from it.
func (bp *breakpoints) resume(pc uint16) {
	bp.last = pc
	bp.matched = slices.Contains(bp.addresses, pc)
}

// check returns true if the address matches a breakpoint.
func (bp *breakpoints) check(pc uint16) bool {
	if bp.matched && pc == bp.last {
		return false
	}
	bp.matched = false

	if slices.Contains(bp.addresses, pc) {
		bp.last = pc
		bp.matched = true
		return true
	}
	return false
}

func (bp breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, a := range bp.addresses {
		s.WriteString(fmt.Sprintf("%2d: %04x\n", i, a))
	}
	return s.String()
}
