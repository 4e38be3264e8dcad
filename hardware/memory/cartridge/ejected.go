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

package cartridge

import (
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
)

// ejected implements the cartMapper interface. It is used when no cartridge
// is attached.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

// ID implements the cartMapper interface.
func (cart *ejected) ID() string {
	return "-"
}

// Reset implements the cartMapper interface.
func (cart *ejected) Reset() {
}

// Read implements the cartMapper interface.
func (cart *ejected) Read(_ uint16) uint8 {
	return bus.OpenBus
}

// Write implements the cartMapper interface.
func (cart *ejected) Write(_ uint16, _ uint8) {
}

// MappedBanks implements the cartMapper interface.
func (cart *ejected) MappedBanks() string {
	return "ejected"
}

// RAM implements the cartMapper interface.
func (cart *ejected) RAM() []uint8 {
	return nil
}
