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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestEchoRAM(t *testing.T) {
	mem := memory.NewMemory(nil)

	// writes to echo RAM are seen in work RAM
	for k := range uint16(0x1e00) {
		mem.Write(0xe000+k, uint8(k)^0x5a)
	}
	for k := range uint16(0x1e00) {
		if !test.ExpectEquality(t, mem.Read(0xc000+k), uint8(k)^0x5a) {
			break
		}
	}

	// and vice versa
	for k := range uint16(0x1e00) {
		mem.Write(0xc000+k, uint8(k)^0xa5)
	}
	for k := range uint16(0x1e00) {
		if !test.ExpectEquality(t, mem.Read(0xe000+k), uint8(k)^0xa5) {
			break
		}
	}

	// the last part of work RAM is not mirrored. the address that would
	// mirror it is in OAM
	mem.Write(0xde00, 0x42)
	test.ExpectInequality(t, mem.Read(0xfe00), 0x42)
}

func TestHRAM(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.Write(0xff80, 0x01)
	mem.Write(0xfffe, 0x02)
	test.ExpectEquality(t, mem.Read(0xff80), 0x01)
	test.ExpectEquality(t, mem.Read(0xfffe), 0x02)
}

func TestOpenBus(t *testing.T) {
	mem := memory.NewMemory(nil)

	// unusable area
	mem.Write(0xfea0, 0x00)
	test.ExpectEquality(t, mem.Read(0xfea0), bus.OpenBus)
	test.ExpectEquality(t, mem.Read(0xfeff), bus.OpenBus)

	// unmapped IO registers
	mem.Write(0xff10, 0x00)
	test.ExpectEquality(t, mem.Read(0xff10), bus.OpenBus)
	test.ExpectEquality(t, mem.Read(0xff7f), bus.OpenBus)

	// ejected cartridge
	test.ExpectEquality(t, mem.Read(0x0100), bus.OpenBus)
	test.ExpectEquality(t, mem.Read(0xa000), bus.OpenBus)
}

func TestInterruptRegisters(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.Write(memorymap.IF, 0xff)
	test.ExpectEquality(t, mem.Read(memorymap.IF), 0xff)
	test.ExpectEquality(t, mem.Requested(), bus.AllInterrupts)

	mem.Write(memorymap.IF, 0x00)
	test.ExpectEquality(t, mem.Read(memorymap.IF), 0xe0)

	mem.Write(memorymap.IER, 0x1f)
	test.ExpectEquality(t, mem.Read(memorymap.IER), 0x1f)
	test.ExpectEquality(t, mem.Enabled(), bus.AllInterrupts)

	mem.Request(bus.Serial)
	test.ExpectEquality(t, mem.Read(memorymap.IF), 0xe8)
}

func TestDeviceRouting(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.Write(0x8000, 0x11)
	test.ExpectEquality(t, mem.Video.VRAM[0], 0x11)
	mem.Write(0xfe00, 0x22)
	test.ExpectEquality(t, mem.Video.OAM[0], 0x22)
	mem.Write(memorymap.SCX, 0x33)
	test.ExpectEquality(t, mem.Video.SCX, 0x33)

	mem.Write(memorymap.TMA, 0x44)
	test.ExpectEquality(t, mem.Timer.TMA, 0x44)

	mem.Write(memorymap.SB, 0x55)
	test.ExpectEquality(t, mem.Serial.SB, 0x55)

	mem.Write(memorymap.P1, 0x20)
	test.ExpectEquality(t, mem.Read(memorymap.P1), 0xef)
}

func TestUpdateInterrupts(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.Write(memorymap.IF, 0x00)

	mem.Write(memorymap.DIV, 0x00)
	mem.Write(memorymap.TIMA, 0xff)
	mem.Write(memorymap.TAC, 0x05)
	mem.Update(16)
	test.ExpectEquality(t, mem.Requested(), bus.Timer)

	// the device request has been consumed
	mem.Write(memorymap.IF, 0x00)
	mem.Update(4)
	test.ExpectEquality(t, mem.Requested(), bus.Interrupt(0))
}

func TestDMA(t *testing.T) {
	mem := memory.NewMemory(nil)
	for i := range uint16(0xa0) {
		mem.Write(0xc100+i, uint8(i))
	}

	mem.Write(memorymap.DMA, 0xc1)
	test.ExpectEquality(t, mem.Read(memorymap.DMA), 0xc1)
	for i := range uint16(0xa0) {
		if !test.ExpectEquality(t, mem.Read(0xfe00+i), uint8(i)) {
			break
		}
	}

	test.ExpectPanic(t, func() {
		mem.Write(memorymap.DMA, 0xe0)
	})

	defer func() {
		r := recover()
		err, ok := r.(error)
		test.ExpectSuccess(t, ok)
		test.ExpectSuccess(t, curated.Is(err, memory.DMASourceError))
	}()
	mem.Write(memorymap.DMA, 0xfe)
}

func TestRandomState(t *testing.T) {
	prefs := preferences.NewUnsavedPreferences()
	prefs.RandomState.Set(true)
	prefs.Reseed(1)

	mem := memory.NewMemory(prefs)
	nonzero := false
	for a := uint16(0xc000); a < 0xe000; a++ {
		if mem.Read(a) != 0 {
			nonzero = true
			break
		}
	}
	test.ExpectSuccess(t, nonzero)

	prefs.RandomState.Set(false)
	mem.Reset()
	for a := uint16(0xc000); a < 0xe000; a++ {
		if !test.ExpectEquality(t, mem.Read(a), 0x00) {
			break
		}
	}
}
