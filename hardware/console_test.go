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

package hardware_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/debugger/govern"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/joypad"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/test"
)

// newImage creates a 32KiB cartridge image with the program at the entry
// point and optional code at the VBlank interrupt vector.
func newImage(cartType cartridge.Type, ramCode uint8, program []uint8, vblank []uint8) []uint8 {
	d := make([]uint8, 0x8000)
	copy(d[0x0040:], vblank)
	copy(d[0x0100:], program)
	copy(d[0x0134:], "CONSOLE")
	d[0x0147] = uint8(cartType)
	d[0x0149] = ramCode
	d[0x014d] = cartridge.HeaderChecksum(d)
	return d
}

func attach(t *testing.T, con *hardware.Console, filename string, d []uint8) {
	t.Helper()
	err := con.AttachCartridge(cartridgeloader.Loader{Filename: filename, Data: d})
	test.DemandEquality(t, err, nil)
}

func TestNOP(t *testing.T) {
	con := hardware.NewConsole(nil)
	attach(t, con, "nop.gb", newImage(cartridge.ROMOnly, 0x00, []uint8{0x00}, nil))

	test.ExpectEquality(t, con.CPU.PC.Address(), 0x0100)
	cycles, err := con.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 4)
	test.ExpectEquality(t, con.CPU.PC.Address(), 0x0101)
	test.ExpectEquality(t, con.FrameCycles(), 4)
}

func TestChecksumFailure(t *testing.T) {
	con := hardware.NewConsole(nil)
	d := newImage(cartridge.ROMOnly, 0x00, nil, nil)
	d[0x014d]++
	err := con.AttachCartridge(cartridgeloader.Loader{Filename: "bad.gb", Data: d})
	test.ExpectFailure(t, err)
}

func TestCartridgeName(t *testing.T) {
	con := hardware.NewConsole(nil)
	test.ExpectEquality(t, con.CartridgeName(), "")

	// nothing to persist before a cartridge is attached
	test.ExpectSuccess(t, con.PersistSaveData())

	d := newImage(cartridge.ROMRAMBattery, 0x02, nil, nil)
	attach(t, con, filepath.Join(t.TempDir(), "battery.gb"), d)
	test.ExpectEquality(t, con.CartridgeName(), "battery")

	// a failed attachment forgets the previous cartridge
	d = newImage(cartridge.ROMOnly, 0x00, nil, nil)
	d[0x014d]++
	test.ExpectFailure(t, con.AttachCartridge(cartridgeloader.Loader{Filename: "bad.gb", Data: d}))
	test.ExpectEquality(t, con.CartridgeName(), "")
	test.ExpectSuccess(t, con.PersistSaveData())
}

func TestRunForFrameCount(t *testing.T) {
	con := hardware.NewConsole(nil)

	// JR -2
	attach(t, con, "loop.gb", newImage(cartridge.ROMOnly, 0x00, []uint8{0x18, 0xfe}, nil))

	err := con.RunForFrameCount(2, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.FrameNum, 2)
	test.ExpectEquality(t, con.CPU.PC.Address(), 0x0100)
	test.ExpectEquality(t, con.Mem.Video.FrameNum, 2)

	// continue check can end the run early
	err = con.RunForFrameCount(10, func(frame int) (govern.State, error) {
		if frame == 3 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.FrameNum, 3)
}

func TestRun(t *testing.T) {
	con := hardware.NewConsole(nil)
	attach(t, con, "loop.gb", newImage(cartridge.ROMOnly, 0x00, []uint8{0x18, 0xfe}, nil))

	steps := 0
	err := con.Run(func() (govern.State, error) {
		steps++
		if steps == 100 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.FrameCycles(), 100*12)
}

func TestVBlankInterrupt(t *testing.T) {
	program := []uint8{
		0xaf,       // XOR A
		0xe0, 0x0f, // LDH (IF),A
		0x3e, 0x01, // LD A,01
		0xe0, 0xff, // LDH (IE),A
		0xfb,       // EI
		0x76,       // HALT
		0x18, 0xfe, // JR -2
	}
	vblank := []uint8{
		0x3e, 0x42, // LD A,42
		0xe0, 0x80, // LDH (80),A
		0xd9, // RETI
	}

	con := hardware.NewConsole(nil)
	attach(t, con, "vblank.gb", newImage(cartridge.ROMOnly, 0x00, program, vblank))
	test.ExpectEquality(t, con.Mem.Read(0xff80), 0x00)

	err := con.RunForFrameCount(1, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.Mem.Read(0xff80), 0x42)
}

func TestSerialOutput(t *testing.T) {
	program := []uint8{
		0x3e, 0x41, // LD A,'A'
		0xe0, 0x01, // LDH (SB),A
		0x3e, 0x81, // LD A,81
		0xe0, 0x02, // LDH (SC),A
		0x18, 0xfe, // JR -2
	}

	con := hardware.NewConsole(nil)
	attach(t, con, "serial.gb", newImage(cartridge.ROMOnly, 0x00, program, nil))
	err := con.RunForFrameCount(1, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(con.Mem.Serial.Output()), "A")
	test.ExpectEquality(t, con.Mem.Read(memorymap.IF)&0x08, 0x08)
}

func TestKeys(t *testing.T) {
	con := hardware.NewConsole(nil)
	con.Mem.Write(memorymap.P1, 0x10)
	con.KeyDown(joypad.A)
	test.ExpectEquality(t, con.Mem.Read(memorymap.P1), 0xde)
	con.KeyUp(joypad.A)
	test.ExpectEquality(t, con.Mem.Read(memorymap.P1), 0xdf)
}

func TestFrameBuffer(t *testing.T) {
	con := hardware.NewConsole(nil)
	img := con.FrameBuffer()
	test.ExpectEquality(t, img.Bounds().Dx(), 160)
	test.ExpectEquality(t, img.Bounds().Dy(), 144)
}

func TestSaveData(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "battery.gb")
	d := newImage(cartridge.MBC1RAMBattery, 0x02, []uint8{0x18, 0xfe}, nil)

	con := hardware.NewConsole(nil)
	attach(t, con, fn, d)
	con.Mem.Write(0x0000, 0x0a)
	con.Mem.Write(0xa000, 0x42)
	test.ExpectSuccess(t, con.PersistSaveData())

	con = hardware.NewConsole(nil)
	attach(t, con, fn, d)
	con.Mem.Write(0x0000, 0x0a)
	test.ExpectEquality(t, con.Mem.Read(0xa000), 0x42)

	// save data is ignored when the preference is not set
	con = hardware.NewConsole(nil)
	con.Prefs.SaveData.Set(false)
	attach(t, con, fn, d)
	con.Mem.Write(0x0000, 0x0a)
	test.ExpectEquality(t, con.Mem.Read(0xa000), 0x00)
}
