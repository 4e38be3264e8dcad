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

package hardware

import (
	"image"
	"io"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/joypad"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/hardware/video"
	"github.com/jetsetilly/gopherdmg/logger"
)

// CyclesPerFrame is the number of clock cycles in one frame.
const CyclesPerFrame = video.CyclesPerFrame

// Console is the main container for the emulated components of the console.
type Console struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Memory

	// the loader used to attach the current cartridge. used to locate the
	// save data file
	loader cartridgeloader.Loader

	// the number of cycles consumed in the current frame
	frameCycles int

	// the number of completed frames since the last reset
	FrameNum int
}

// NewConsole creates a new console and everything associated with the
// hardware. The prefs argument can be nil, in which case default preferences
// are used.
func NewConsole(prefs *preferences.Preferences) *Console {
	if prefs == nil {
		prefs = preferences.NewUnsavedPreferences()
	}

	con := &Console{Prefs: prefs}
	con.Mem = memory.NewMemory(prefs)
	con.CPU = cpu.NewCPU(prefs, con.Mem)

	return con
}

// AttachCartridge loads the cartridge specified by the loader and resets the
// console. Battery backed cartridge RAM is restored from the save data file
// if the SaveData preference is set.
func (con *Console) AttachCartridge(cartload cartridgeloader.Loader) error {
	con.loader = cartridgeloader.Loader{}

	err := cartload.Load()
	if err != nil {
		con.Mem.Cart.Eject()
		return curated.Errorf("console: %v", err)
	}

	err = con.Mem.Cart.Attach(cartload)
	if err != nil {
		return curated.Errorf("console: %v", err)
	}
	con.loader = cartload

	if con.Prefs.SaveData.Get().(bool) && con.Mem.Cart.HasBattery() {
		err = con.restoreSaveData()
		if err != nil {
			// a bad save file does not prevent the cartridge from running
			logger.Log(logger.Allow, "console", err)
		}
	}

	con.Reset()

	return nil
}

func (con *Console) restoreSaveData() error {
	r, err := con.loader.LoadSaveData()
	if err != nil {
		return err
	}
	if r == nil {
		return nil
	}
	defer r.Close()

	err = con.Mem.Cart.LoadSaveData(r)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "console", "save data restored from %s", con.loader.SaveFilename())

	return nil
}

// CartridgeName returns the short name of the attached cartridge file. The
// empty string is returned if no cartridge has been attached.
func (con *Console) CartridgeName() string {
	if !con.loader.HasLoaded() {
		return ""
	}
	return con.loader.ShortName()
}

// PersistSaveData writes battery backed cartridge RAM to the save data file.
// It does nothing if the SaveData preference is not set, if no cartridge has
// been attached or if the cartridge has no battery.
func (con *Console) PersistSaveData() error {
	if !con.Prefs.SaveData.Get().(bool) || !con.loader.HasLoaded() || !con.Mem.Cart.HasBattery() {
		return nil
	}

	err := con.loader.StoreSaveData(func(w io.Writer) error {
		return con.Mem.Cart.SaveData(w)
	})
	if err != nil {
		return curated.Errorf("console: %v", err)
	}

	return nil
}

// Reset the console to the state it is in after the boot ROM has completed.
func (con *Console) Reset() {
	con.Mem.Reset()
	con.CPU.Reset()
	con.frameCycles = 0
	con.FrameNum = 0
}

// FrameBuffer returns the most recently completed frame.
func (con *Console) FrameBuffer() *image.RGBA {
	return con.Mem.Video.FrameBuffer()
}

// KeyDown forwards a key press to the joypad.
func (con *Console) KeyDown(k joypad.Key) {
	con.Mem.Joypad.KeyDown(k)
}

// KeyUp forwards a key release to the joypad.
func (con *Console) KeyUp(k joypad.Key) {
	con.Mem.Joypad.KeyUp(k)
}
