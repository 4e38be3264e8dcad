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

// List of real time clock registers. The register is selected by writing
// its number to the RAM bank register.
const (
	rtcSeconds = iota
	rtcMinutes
	rtcHours
	rtcDayLow
	rtcDayHigh
	numRTCRegisters
)

// the value of the RAM bank register that selects the first RTC register.
const rtcSelect = 0x08

// the bits that exist in each RTC register.
var rtcMasks = [numRTCRegisters]uint8{0x3f, 0x3f, 0x1f, 0xff, 0xc1}

// mbc3 implements the MBC3 bank controller. The real time clock registers
// can be selected, written and latched but the clock does not advance.
type mbc3 struct {
	banks

	ramEnabled bool
	bank       uint8

	// RAM bank or RTC register selection
	selected uint8

	rtc     [numRTCRegisters]uint8
	latched [numRTCRegisters]uint8

	// the previous value written to the latch register. the latch happens
	// when a 0 is followed by a 1
	latch uint8
}

func newMBC3(rom []uint8, ramSize int) *mbc3 {
	cart := &mbc3{banks: newBanks(rom, ramSize)}
	cart.Reset()
	return cart
}

// ID implements the cartMapper interface.
func (cart *mbc3) ID() string {
	return "MBC3"
}

// Reset implements the cartMapper interface.
func (cart *mbc3) Reset() {
	cart.ramEnabled = false
	cart.bank = 0x01
	cart.selected = 0x00
	cart.latch = 0xff
}

func (cart *mbc3) rtcRegister() (int, bool) {
	r := int(cart.selected) - rtcSelect
	return r, r >= 0 && r < numRTCRegisters
}

// Read implements the cartMapper interface.
func (cart *mbc3) Read(address uint16) uint8 {
	if address < 0x4000 {
		return cart.readROM(0, address)
	}
	if address < 0x8000 {
		return cart.readROM(int(cart.bank), address)
	}
	if !cart.ramEnabled {
		return disabledRAM
	}
	if r, ok := cart.rtcRegister(); ok {
		return cart.latched[r]
	}
	if cart.selected > 0x03 {
		return disabledRAM
	}
	return cart.readRAM(int(cart.selected), address)
}

// Write implements the cartMapper interface.
func (cart *mbc3) Write(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		cart.ramEnabled = ramEnable(data)
	case address < 0x4000:
		cart.bank = data & 0x7f
		if cart.bank == 0 {
			cart.bank = 1
		}
	case address < 0x6000:
		cart.selected = data
	case address < 0x8000:
		if cart.latch == 0x00 && data == 0x01 {
			cart.latched = cart.rtc
		}
		cart.latch = data
	case address >= 0xa000:
		if !cart.ramEnabled {
			return
		}
		if r, ok := cart.rtcRegister(); ok {
			cart.rtc[r] = data & rtcMasks[r]
			cart.latched[r] = cart.rtc[r]
			return
		}
		if cart.selected <= 0x03 {
			cart.writeRAM(int(cart.selected), address, data)
		}
	}
}

// MappedBanks implements the cartMapper interface.
func (cart *mbc3) MappedBanks() string {
	s := fmt.Sprintf("ROM 0, %d", int(cart.bank)&(cart.numROMBanks()-1))
	if !cart.ramEnabled {
		return s + "; RAM disabled"
	}
	if r, ok := cart.rtcRegister(); ok {
		return fmt.Sprintf("%s; RTC %d", s, r)
	}
	return fmt.Sprintf("%s; RAM %d", s, cart.selected)
}
