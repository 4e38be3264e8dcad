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
	"fmt"
)

// romOnly cartridges have 32KiB of ROM and no bank controller. Some have
// external RAM which is always enabled.
type romOnly struct {
	banks
}

func newROMOnly(rom []uint8, ramSize int) *romOnly {
	// a cartridge without a controller can only address 8KiB of RAM
	return &romOnly{banks: newBanks(rom, min(ramSize, RAMBankSize))}
}

// ID implements the cartMapper interface.
func (cart *romOnly) ID() string {
	return "ROM"
}

// Reset implements the cartMapper interface.
func (cart *romOnly) Reset() {
}

// Read implements the cartMapper interface.
func (cart *romOnly) Read(address uint16) uint8 {
	if address < 0x4000 {
		return cart.readROM(0, address)
	}
	if address < 0x8000 {
		return cart.readROM(1, address)
	}
	return cart.readRAM(0, address)
}

// Write implements the cartMapper interface.
func (cart *romOnly) Write(address uint16, data uint8) {
	if address >= 0xa000 {
		cart.writeRAM(0, address, data)
	}
}

// MappedBanks implements the cartMapper interface.
func (cart *romOnly) MappedBanks() string {
	if len(cart.ram) == 0 {
		return "ROM 0, 1"
	}
	return fmt.Sprintf("ROM 0, 1; RAM %dKB", len(cart.ram)/1024)
}
