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

// Size of a ROM bank and a RAM bank.
const (
	ROMBankSize = 0x4000
	RAMBankSize = 0x2000
)

// cartMapper implementations decode the bank control registers written into
// the ROM window and resolve addresses in the ROM and RAM windows to offsets
// in the cartridge data. addresses are not normalised.
type cartMapper interface {
	ID() string
	Reset()
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// string describing the currently mapped ROM and RAM banks
	MappedBanks() string

	// the RAM on the cartridge. the returned slice is the RAM and not a copy
	RAM() []uint8
}

// banks is embedded by all cartMapper implementations. it holds the cartridge
// data and resolves bank numbers to offsets.
type banks struct {
	rom []uint8
	ram []uint8
}

func newBanks(rom []uint8, ramSize int) banks {
	return banks{
		rom: rom,
		ram: make([]uint8, ramSize),
	}
}

// RAM implements the cartMapper interface.
func (b *banks) RAM() []uint8 {
	return b.ram
}

// numROMBanks is always a power of two.
func (b *banks) numROMBanks() int {
	return len(b.rom) / ROMBankSize
}

func (b *banks) numRAMBanks() int {
	return (len(b.ram) + RAMBankSize - 1) / RAMBankSize
}

// readROM returns the byte at the address in the ROM bank. the bank number
// is masked by the number of banks in the ROM.
func (b *banks) readROM(bank int, address uint16) uint8 {
	bank &= b.numROMBanks() - 1
	return b.rom[bank*ROMBankSize+int(address&(ROMBankSize-1))]
}

// ramOffset returns the offset into the RAM for the address in the RAM bank.
// RAM smaller than a bank is mirrored over the whole bank. returns false if
// there is no RAM.
func (b *banks) ramOffset(bank int, address uint16) (int, bool) {
	if len(b.ram) == 0 {
		return 0, false
	}
	bank %= b.numRAMBanks()
	return (bank*RAMBankSize + int(address&(RAMBankSize-1))) % len(b.ram), true
}

func (b *banks) readRAM(bank int, address uint16) uint8 {
	if idx, ok := b.ramOffset(bank, address); ok {
		return b.ram[idx]
	}
	return bus.OpenBus
}

func (b *banks) writeRAM(bank int, address uint16, data uint8) {
	if idx, ok := b.ramOffset(bank, address); ok {
		b.ram[idx] = data
	}
}

// ramEnableValue is the value written to the RAM enable register that enables
// the cartridge RAM. only the lower nibble is decoded.
const ramEnableValue = 0x0a

func ramEnable(data uint8) bool {
	return data&0x0f == ramEnableValue
}
