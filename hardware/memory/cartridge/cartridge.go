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
	"io"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinel errors.
const (
	ChecksumError  = "cartridge: header checksum mismatch (computed %02x, header %02x)"
	ROMSizeError   = "cartridge: unsupported ROM size code (%#02x)"
	RAMSizeError   = "cartridge: unsupported RAM size code (%#02x)"
	ImageSizeError = "cartridge: image too small (%d bytes)"
	SaveDataError  = "cartridge: save data: %v"
)

// the value read from cartridge RAM when it is disabled.
const disabledRAM = bus.OpenBus

// the smallest ROM image. images are padded to a power of two multiple of
// this size.
const minROMSize = 2 * ROMBankSize

// Cartridge defines the information and operations for a cartridge.
type Cartridge struct {
	Filename string
	Hash     string
	Header   Header

	mapper cartMapper
}

// NewCartridge is the preferred method of initialisation for the cartridge
// type. The cartridge is in the ejected state until Attach() is called.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Summary returns a one line description of the cartridge.
func (cart *Cartridge) Summary() string {
	if cart.IsEjected() {
		return "ejected"
	}
	return fmt.Sprintf("%s (%s) [%s]", cart.Header.Title, cart.Header.Type, cart.mapper.MappedBanks())
}

// ID returns the name of the bank controller.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// MappedBanks returns a string describing the currently mapped ROM and RAM
// banks.
func (cart *Cartridge) MappedBanks() string {
	return cart.mapper.MappedBanks()
}

// Eject removes the cartridge. Reads from the cartridge address space will
// return the open bus value.
func (cart *Cartridge) Eject() {
	cart.Filename = "ejected"
	cart.Hash = ""
	cart.Header = Header{}
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Attach the cartridge data specified by the loader. The cartridge is ejected
// if the data cannot be loaded or the header is invalid.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		cart.Eject()
		return curated.Errorf("cartridge: %v", err)
	}

	hdr, err := NewHeader(cartload.Data)
	if err != nil {
		cart.Eject()
		return curated.Errorf("cartridge: %v", err)
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.Header = hdr

	rom := padROM(cartload.Data, hdr.ROMSize)
	if len(rom) != hdr.ROMSize {
		logger.Logf(logger.Allow, "cartridge", "image size (%d) differs from header ROM size (%d)", len(cartload.Data), hdr.ROMSize)
	}

	switch hdr.Type {
	case ROMOnly, ROMRAM, ROMRAMBattery:
		cart.mapper = newROMOnly(rom, hdr.RAMSize)
	case MBC1, MBC1RAM, MBC1RAMBattery:
		cart.mapper = newMBC1(rom, hdr.RAMSize)
	case MBC2, MBC2Battery:
		cart.mapper = newMBC2(rom)
	case MBC3, MBC3RAM, MBC3RAMBattery, MBC3TimerBattery, MBC3TimerRAMBattery:
		cart.mapper = newMBC3(rom, hdr.RAMSize)
	case MBC5, MBC5RAM, MBC5RAMBattery:
		cart.mapper = newMBC5(rom, hdr.RAMSize, false)
	case MBC5Rumble, MBC5RumbleRAM, MBC5RumbleRAMBattery:
		cart.mapper = newMBC5(rom, hdr.RAMSize, true)
	default:
		if hdr.Type.Known() {
			logger.Logf(logger.Allow, "cartridge", "%s is not supported. using ROM ONLY", hdr.Type)
		} else {
			logger.Logf(logger.Allow, "cartridge", "unknown cartridge type (%02x). using ROM ONLY", uint8(hdr.Type))
		}
		cart.mapper = newROMOnly(rom, hdr.RAMSize)
	}

	return nil
}

// padROM returns a copy of the data that is at least the size given in the
// header and a power of two multiple of the minimum ROM size. padding bytes
// are 0xff.
func padROM(data []uint8, headerSize int) []uint8 {
	sz := minROMSize
	for sz < len(data) || sz < headerSize {
		sz <<= 1
	}

	rom := make([]uint8, sz)
	n := copy(rom, data)
	for i := n; i < sz; i++ {
		rom[i] = 0xff
	}

	return rom
}

// Reset the bank controller registers.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Read implements the bus.Bus interface.
func (cart *Cartridge) Read(address uint16) uint8 {
	return cart.mapper.Read(address)
}

// Write implements the bus.Bus interface.
func (cart *Cartridge) Write(address uint16, data uint8) {
	cart.mapper.Write(address, data)
}

// Update implements the bus.Device interface. None of the supported bank
// controllers change state over time.
func (cart *Cartridge) Update(_ int) {
}

// HasBattery returns true if the cartridge RAM is battery backed and should
// be saved when the emulation ends.
func (cart *Cartridge) HasBattery() bool {
	return cart.Header.Type.HasBattery() && len(cart.mapper.RAM()) > 0
}

// RAMSize returns the size of the cartridge RAM in bytes.
func (cart *Cartridge) RAMSize() int {
	return len(cart.mapper.RAM())
}

// LoadSaveData restores the cartridge RAM from the reader. The reader must
// supply at least as many bytes as there is cartridge RAM. Any additional
// bytes are ignored.
func (cart *Cartridge) LoadSaveData(r io.Reader) error {
	ram := cart.mapper.RAM()
	if len(ram) == 0 {
		return nil
	}

	d := make([]uint8, len(ram))
	_, err := io.ReadFull(r, d)
	if err != nil {
		return curated.Errorf(SaveDataError, err)
	}
	copy(ram, d)

	return nil
}

// SaveData writes the contents of the cartridge RAM to the writer.
func (cart *Cartridge) SaveData(w io.Writer) error {
	ram := cart.mapper.RAM()
	if len(ram) == 0 {
		return nil
	}

	_, err := w.Write(ram)
	if err != nil {
		return curated.Errorf(SaveDataError, err)
	}

	return nil
}
