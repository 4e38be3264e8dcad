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

// the MBC2 has 512 half-bytes of RAM built into the controller.
const mbc2RAMSize = 0x200

// mbc2 implements the MBC2 bank controller. The ROM bank register and the
// RAM enable register share the lower ROM window and are distinguished by
// bit 8 of the address.
type mbc2 struct {
	banks

	ramEnabled bool
	bank       uint8
}

func newMBC2(rom []uint8) *mbc2 {
	cart := &mbc2{banks: newBanks(rom, mbc2RAMSize)}
	cart.Reset()
	return cart
}

// ID implements the cartMapper interface.
func (cart *mbc2) ID() string {
	return "MBC2"
}

// Reset implements the cartMapper interface.
func (cart *mbc2) Reset() {
	cart.ramEnabled = false
	cart.bank = 0x01
}

// Read implements the cartMapper interface.
func (cart *mbc2) Read(address uint16) uint8 {
	if address < 0x4000 {
		return cart.readROM(0, address)
	}
	if address < 0x8000 {
		return cart.readROM(int(cart.bank), address)
	}
	if !cart.ramEnabled {
		return disabledRAM
	}

	// only the lower nibble of each RAM location exists. the upper nibble
	// is undriven
	return cart.ram[address&(mbc2RAMSize-1)] | 0xf0
}

// Write implements the cartMapper interface.
func (cart *mbc2) Write(address uint16, data uint8) {
	switch {
	case address < 0x4000:
		if address&0x0100 == 0x0000 {
			cart.ramEnabled = ramEnable(data)
		} else {
			cart.bank = data & 0x0f
			if cart.bank == 0 {
				cart.bank = 1
			}
		}
	case address >= 0xa000:
		if cart.ramEnabled {
			cart.ram[address&(mbc2RAMSize-1)] = data & 0x0f
		}
	}
}

// MappedBanks implements the cartMapper interface.
func (cart *mbc2) MappedBanks() string {
	s := fmt.Sprintf("ROM 0, %d", int(cart.bank)&(cart.numROMBanks()-1))
	if !cart.ramEnabled {
		return s + "; RAM disabled"
	}
	return s + "; RAM 512x4"
}
