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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/joypad"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/hardware/serial"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
	"github.com/jetsetilly/gopherdmg/hardware/video"
)

// Sentinel errors.
const (
	DMASourceError = "memory: DMA source out of range (%02x00)"
)

// Sizes of the memories owned by the Memory type.
const (
	WRAMSize = 0x2000
	HRAMSize = 0x7f
)

// MaxDMASource is the highest page that can be the source of a DMA transfer.
const MaxDMASource = 0xdf

// Memory implements the bus.Device interface.
type Memory struct {
	prefs *preferences.Preferences

	Cart   *cartridge.Cartridge
	Video  *video.Video
	Timer  *timer.Timer
	Joypad *joypad.Joypad
	Serial *serial.Serial

	wram [WRAMSize]uint8
	hram [HRAMSize]uint8

	// interrupt request and interrupt enable registers
	requested uint8
	enabled   uint8

	// the value most recently written to the DMA register
	dma uint8

	// the interrupt sources polled on every update
	sources []bus.InterruptSource
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The cartridge is ejected.
func NewMemory(prefs *preferences.Preferences) *Memory {
	if prefs == nil {
		prefs = preferences.NewUnsavedPreferences()
	}

	mem := &Memory{
		prefs:  prefs,
		Cart:   cartridge.NewCartridge(),
		Video:  video.NewVideo(),
		Timer:  timer.NewTimer(),
		Joypad: joypad.NewJoypad(),
		Serial: serial.NewSerial(),
	}

	mem.sources = []bus.InterruptSource{mem.Video, mem.Timer, mem.Serial, mem.Joypad}
	mem.Reset()

	return mem
}

// Reset the memory and all devices. Work RAM and high RAM are cleared or
// randomised depending on the RandomState preference. Cartridge RAM is not
// affected.
func (mem *Memory) Reset() {
	if mem.prefs.RandomState.Get().(bool) {
		for i := range mem.wram {
			mem.wram[i] = uint8(mem.prefs.RandSrc.IntN(0x100))
		}
		for i := range mem.hram {
			mem.hram[i] = uint8(mem.prefs.RandSrc.IntN(0x100))
		}
	} else {
		clear(mem.wram[:])
		clear(mem.hram[:])
	}

	mem.requested = 0x01
	mem.enabled = 0x00
	mem.dma = 0xff

	mem.Cart.Reset()
	mem.Video.Reset()
	mem.Timer.Reset()
	mem.Joypad.Reset()
	mem.Serial.Reset()
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("IF=%02x IE=%02x\n", mem.Read(memorymap.IF), mem.enabled))
	s.WriteString(fmt.Sprintf("cartridge: %s\n", mem.Cart))
	s.WriteString(fmt.Sprintf("video: %s\n", mem.Video))
	s.WriteString(fmt.Sprintf("timer: %s\n", mem.Timer))
	s.WriteString(fmt.Sprintf("joypad: %s\n", mem.Joypad))
	s.WriteString(fmt.Sprintf("serial: %s", mem.Serial))
	return s.String()
}

// Read implements the bus.Bus interface.
func (mem *Memory) Read(address uint16) uint8 {
	switch memorymap.MapAddress(address) {
	case memorymap.ROM0, memorymap.ROMX, memorymap.SRAM:
		return mem.Cart.Read(address)
	case memorymap.VRAM, memorymap.OAM:
		return mem.Video.Read(address)
	case memorymap.WRAM:
		return mem.wram[address-0xc000]
	case memorymap.Echo:
		return mem.wram[address-0xc000-memorymap.EchoOffset]
	case memorymap.Unusable:
		return bus.OpenBus
	case memorymap.IO:
		return mem.readIO(address)
	case memorymap.HRAM:
		return mem.hram[address-0xff80]
	case memorymap.IE:
		return mem.enabled
	}
	return bus.OpenBus
}

func (mem *Memory) readIO(address uint16) uint8 {
	switch {
	case address == memorymap.P1:
		return mem.Joypad.Read(address)
	case address == memorymap.SB || address == memorymap.SC:
		return mem.Serial.Read(address)
	case address >= memorymap.DIV && address <= memorymap.TAC:
		return mem.Timer.Read(address)
	case address == memorymap.IF:
		return mem.requested | 0xe0
	case address == memorymap.DMA:
		return mem.dma
	case address >= memorymap.LCDC && address <= memorymap.WX:
		return mem.Video.Read(address)
	}
	return bus.OpenBus
}

// Write implements the bus.Bus interface.
func (mem *Memory) Write(address uint16, data uint8) {
	switch memorymap.MapAddress(address) {
	case memorymap.ROM0, memorymap.ROMX, memorymap.SRAM:
		mem.Cart.Write(address, data)
	case memorymap.VRAM, memorymap.OAM:
		mem.Video.Write(address, data)
	case memorymap.WRAM:
		mem.wram[address-0xc000] = data
	case memorymap.Echo:
		mem.wram[address-0xc000-memorymap.EchoOffset] = data
	case memorymap.IO:
		mem.writeIO(address, data)
	case memorymap.HRAM:
		mem.hram[address-0xff80] = data
	case memorymap.IE:
		mem.enabled = data
	}
}

func (mem *Memory) writeIO(address uint16, data uint8) {
	switch {
	case address == memorymap.P1:
		mem.Joypad.Write(address, data)
	case address == memorymap.SB || address == memorymap.SC:
		mem.Serial.Write(address, data)
	case address >= memorymap.DIV && address <= memorymap.TAC:
		mem.Timer.Write(address, data)
	case address == memorymap.IF:
		mem.requested = data & uint8(bus.AllInterrupts)
	case address == memorymap.DMA:
		mem.transfer(data)
	case address >= memorymap.LCDC && address <= memorymap.WX:
		mem.Video.Write(address, data)
	}
}

// transfer copies 160 bytes from the page to the object attribute memory. A
// page above the work RAM is an invariant violation and causes a panic.
func (mem *Memory) transfer(page uint8) {
	if page > MaxDMASource {
		panic(curated.Errorf(DMASourceError, page))
	}

	mem.dma = page
	src := uint16(page) << 8
	for i := range uint16(video.OAMSize) {
		mem.Video.DMAWrite(uint8(i), mem.Read(src+i))
	}
}

// Update implements the bus.Device interface. Every device is advanced by the
// number of cycles and then the interrupts requested by the devices are
// added to the interrupt request register.
func (mem *Memory) Update(cycles int) {
	mem.Cart.Update(cycles)
	mem.Video.Update(cycles)
	mem.Timer.Update(cycles)
	mem.Joypad.Update(cycles)
	mem.Serial.Update(cycles)

	for _, s := range mem.sources {
		mem.requested |= uint8(s.PendingInterrupt())
	}
}

// Request adds the interrupt to the interrupt request register.
func (mem *Memory) Request(i bus.Interrupt) {
	mem.requested |= uint8(i & bus.AllInterrupts)
}

// Requested returns the value of the interrupt request register.
func (mem *Memory) Requested() bus.Interrupt {
	return bus.Interrupt(mem.requested) & bus.AllInterrupts
}

// Enabled returns the value of the interrupt enable register.
func (mem *Memory) Enabled() bus.Interrupt {
	return bus.Interrupt(mem.enabled)
}
