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

// mbc5 implements the MBC5 bank controller. The ROM bank register is nine
// bits wide and, unlike the earlier controllers, bank 0 can be mapped into
// the upper ROM window.
type mbc5 struct {
	banks

	ramEnabled bool
	bank       uint16
	ramBank    uint8

	// on rumble cartridges bit 3 of the RAM bank register drives the motor
	rumble      bool
	rumbleMotor bool
	ramBankMask uint8
}

func newMBC5(rom []uint8, ramSize int, rumble bool) *mbc5 {
	cart := &mbc5{
		banks:       newBanks(rom, ramSize),
		rumble:      rumble,
		ramBankMask: 0x0f,
	}
	if rumble {
		cart.ramBankMask = 0x07
	}
	cart.Reset()
	return cart
}

// ID implements the cartMapper interface.
func (cart *mbc5) ID() string {
	return "MBC5"
}

// Reset implements the cartMapper interface.
func (cart *mbc5) Reset() {
	cart.ramEnabled = false
	cart.bank = 0x01
	cart.ramBank = 0x00
	cart.rumbleMotor = false
}

// Read implements the cartMapper interface.
func (cart *mbc5) Read(address uint16) uint8 {
	if address < 0x4000 {
		return cart.readROM(0, address)
	}
	if address < 0x8000 {
		return cart.readROM(int(cart.bank), address)
	}
	if !cart.ramEnabled {
		return disabledRAM
	}
	return cart.readRAM(int(cart.ramBank), address)
}

// Write implements the cartMapper interface.
func (cart *mbc5) Write(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		cart.ramEnabled = ramEnable(data)
	case address < 0x3000:
		cart.bank = cart.bank&0x100 | uint16(data)
	case address < 0x4000:
		cart.bank = cart.bank&0x0ff | uint16(data&0x01)<<8
	case address < 0x6000:
		cart.ramBank = data & cart.ramBankMask
		if cart.rumble {
			cart.rumbleMotor = data&0x08 == 0x08
		}
	case address >= 0xa000:
		if cart.ramEnabled {
			cart.writeRAM(int(cart.ramBank), address, data)
		}
	}
}

// MappedBanks implements the cartMapper interface.
func (cart *mbc5) MappedBanks() string {
	s := fmt.Sprintf("ROM 0, %d", int(cart.bank)&(cart.numROMBanks()-1))
	if cart.rumbleMotor {
		s += "; rumble"
	}
	if len(cart.ram) == 0 {
		return s
	}
	if !cart.ramEnabled {
		return s + "; RAM disabled"
	}
	return fmt.Sprintf("%s; RAM %d", s, cart.ramBank)
}
