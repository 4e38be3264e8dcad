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

// mbc1 implements the MBC1 bank controller. The controller has a five bit
// ROM bank register and a two bit register that is used either as the upper
// bits of the ROM bank or as the RAM bank, depending on the banking mode.
type mbc1 struct {
	banks

	ramEnabled bool

	// the five bit and two bit bank registers
	low  uint8
	high uint8

	// false is ROM banking mode and true is RAM banking mode
	ramBanking bool
}

func newMBC1(rom []uint8, ramSize int) *mbc1 {
	cart := &mbc1{banks: newBanks(rom, ramSize)}
	cart.Reset()
	return cart
}

// EffectiveROMBank returns the physical bank mapped into the upper ROM window
// for the value of the combined bank registers. A bank value with the lower
// five bits clear is remapped to the following bank because the controller
// cannot address those banks through the upper window. The result is masked
// by the number of banks in the ROM, which must be a power of two.
func EffectiveROMBank(bank int, numBanks int) int {
	if bank&0x1f == 0 {
		bank++
	}
	return bank & (numBanks - 1)
}

// ID implements the cartMapper interface.
func (cart *mbc1) ID() string {
	return "MBC1"
}

// Reset implements the cartMapper interface.
func (cart *mbc1) Reset() {
	cart.ramEnabled = false
	cart.low = 0x01
	cart.high = 0x00
	cart.ramBanking = false
}

func (cart *mbc1) romBank() int {
	bank := int(cart.low)
	if !cart.ramBanking {
		bank |= int(cart.high) << 5
	}
	return EffectiveROMBank(bank, cart.numROMBanks())
}

func (cart *mbc1) ramBank() int {
	if cart.ramBanking {
		return int(cart.high)
	}
	return 0
}

// Read implements the cartMapper interface.
func (cart *mbc1) Read(address uint16) uint8 {
	if address < 0x4000 {
		return cart.readROM(0, address)
	}
	if address < 0x8000 {
		return cart.readROM(cart.romBank(), address)
	}
	if !cart.ramEnabled {
		return disabledRAM
	}
	return cart.readRAM(cart.ramBank(), address)
}

// Write implements the cartMapper interface.
func (cart *mbc1) Write(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		cart.ramEnabled = ramEnable(data)
	case address < 0x4000:
		cart.low = data & 0x1f
	case address < 0x6000:
		cart.high = data & 0x03
	case address < 0x8000:
		cart.ramBanking = data&0x01 == 0x01
	case address >= 0xa000:
		if cart.ramEnabled {
			cart.writeRAM(cart.ramBank(), address, data)
		}
	}
}

// MappedBanks implements the cartMapper interface.
func (cart *mbc1) MappedBanks() string {
	s := fmt.Sprintf("ROM 0, %d", cart.romBank())
	if len(cart.ram) == 0 {
		return s
	}
	if !cart.ramEnabled {
		return s + "; RAM disabled"
	}
	return fmt.Sprintf("%s; RAM %d", s, cart.ramBank())
}
