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

package video

import (
	"fmt"
	"image"

	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// Dimensions of the screen in pixels.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// Timing of the video hardware in clock cycles and scanlines.
const (
	CyclesPerLine  = 456
	LinesPerFrame  = 154
	CyclesPerFrame = CyclesPerLine * LinesPerFrame

	oamCycles      = 80
	transferCycles = 172
)

// Sizes of the video memories.
const (
	VRAMSize = 0x2000
	OAMSize  = 0xa0
)

// Video implements the bus.Device and bus.InterruptSource interfaces.
type Video struct {
	VRAM [VRAMSize]uint8
	OAM  [OAMSize]uint8

	LCDC uint8
	STAT uint8
	SCY  uint8
	SCX  uint8
	LY   uint8
	LYC  uint8
	BGP  uint8
	OBP0 uint8
	OBP1 uint8
	WY   uint8
	WX   uint8

	// clock cycle in the current scanline
	Dot int

	// the number of frames that have been completed
	FrameNum int

	// the internal line counter of the window
	windowLine int

	frame *image.RGBA

	// the frame is copied to the display buffer at the start of the vertical
	// blank. this is the image returned by FrameBuffer()
	display *image.RGBA

	pending bus.Interrupt
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	vid := &Video{
		frame:   image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
		display: image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
	}
	vid.Reset()
	return vid
}

// Reset the video hardware to the state it is in after the boot ROM has
// completed. Video memory is cleared.
func (vid *Video) Reset() {
	clear(vid.VRAM[:])
	clear(vid.OAM[:])
	vid.LCDC = 0x91
	vid.STAT = 0x00
	vid.SCY = 0x00
	vid.SCX = 0x00
	vid.LY = 0x00
	vid.LYC = 0x00
	vid.BGP = 0xfc
	vid.OBP0 = 0xff
	vid.OBP1 = 0xff
	vid.WY = 0x00
	vid.WX = 0x00
	vid.Dot = 0
	vid.FrameNum = 0
	vid.windowLine = 0
	vid.pending = 0
	vid.setMode(OAMSearch)
	vid.compareLY()
	vid.blank(vid.frame)
	vid.blank(vid.display)
}

func (vid *Video) String() string {
	return fmt.Sprintf("LCDC=%02x STAT=%02x LY=%d LYC=%d dot=%d mode=%s frame=%d",
		vid.LCDC, vid.STAT|0x80, vid.LY, vid.LYC, vid.Dot, vid.Mode(), vid.FrameNum)
}

// Mode returns the current video mode.
func (vid *Video) Mode() Mode {
	return Mode(vid.STAT & statModeMask)
}

// FrameBuffer returns the most recently completed frame. The image is owned
// by the Video type and changes at the start of every vertical blank.
func (vid *Video) FrameBuffer() *image.RGBA {
	return vid.display
}

func (vid *Video) enabled() bool {
	return vid.LCDC&lcdcDisplayEnable == lcdcDisplayEnable
}

// setMode changes the mode and requests a STAT interrupt if the interrupt
// for the new mode is selected.
func (vid *Video) setMode(m Mode) {
	vid.STAT = vid.STAT&^statModeMask | uint8(m)
	if vid.STAT&modeInterrupt[m] != 0 {
		vid.pending |= bus.LCDStat
	}
}

// compareLY sets the coincidence flag and requests a STAT interrupt if LY
// equals LYC and the interrupt is selected.
func (vid *Video) compareLY() {
	if vid.LY == vid.LYC {
		vid.STAT |= statCoincidence
		if vid.STAT&statLYCInt == statLYCInt {
			vid.pending |= bus.LCDStat
		}
	} else {
		vid.STAT &^= statCoincidence
	}
}

// Update implements the bus.Device interface.
func (vid *Video) Update(cycles int) {
	if !vid.enabled() {
		return
	}
	for range cycles {
		vid.tick()
	}
}

func (vid *Video) tick() {
	vid.Dot++

	if vid.Dot == CyclesPerLine {
		vid.Dot = 0
		vid.LY++

		switch {
		case vid.LY == LinesPerFrame:
			vid.LY = 0
			vid.windowLine = 0
			vid.setMode(OAMSearch)
		case vid.LY == ScreenHeight:
			vid.setMode(VBlank)
			vid.pending |= bus.VBlank
			vid.FrameNum++
			copy(vid.display.Pix, vid.frame.Pix)
		case vid.LY < ScreenHeight:
			vid.setMode(OAMSearch)
		}

		vid.compareLY()
		return
	}

	if vid.LY >= ScreenHeight {
		return
	}

	switch vid.Dot {
	case oamCycles:
		vid.setMode(Transfer)
	case oamCycles + transferCycles:
		vid.renderScanline()
		vid.setMode(HBlank)
	}
}

// PendingInterrupt implements the bus.InterruptSource interface.
func (vid *Video) PendingInterrupt() bus.Interrupt {
	p := vid.pending
	vid.pending = 0
	return p
}

// DMAWrite writes a byte to the object attribute memory. It is used by the
// DMA transfer, which addresses OAM by offset.
func (vid *Video) DMAWrite(offset uint8, data uint8) {
	if int(offset) < OAMSize {
		vid.OAM[offset] = data
	}
}

// Read implements the bus.Bus interface.
func (vid *Video) Read(address uint16) uint8 {
	switch {
	case address >= 0x8000 && address <= 0x9fff:
		return vid.VRAM[address-0x8000]
	case address >= 0xfe00 && address <= 0xfe9f:
		return vid.OAM[address-0xfe00]
	}

	switch address {
	case memorymap.LCDC:
		return vid.LCDC
	case memorymap.STAT:
		return vid.STAT | 0x80
	case memorymap.SCY:
		return vid.SCY
	case memorymap.SCX:
		return vid.SCX
	case memorymap.LY:
		return vid.LY
	case memorymap.LYC:
		return vid.LYC
	case memorymap.BGP:
		return vid.BGP
	case memorymap.OBP0:
		return vid.OBP0
	case memorymap.OBP1:
		return vid.OBP1
	case memorymap.WY:
		return vid.WY
	case memorymap.WX:
		return vid.WX
	}

	return bus.OpenBus
}

// Write implements the bus.Bus interface.
func (vid *Video) Write(address uint16, data uint8) {
	switch {
	case address >= 0x8000 && address <= 0x9fff:
		vid.VRAM[address-0x8000] = data
		return
	case address >= 0xfe00 && address <= 0xfe9f:
		vid.OAM[address-0xfe00] = data
		return
	}

	switch address {
	case memorymap.LCDC:
		wasEnabled := vid.enabled()
		vid.LCDC = data
		if wasEnabled && !vid.enabled() {
			// the display is blank while the LCD is off
			vid.LY = 0
			vid.Dot = 0
			vid.windowLine = 0
			vid.STAT &^= statModeMask
			vid.blank(vid.display)
		} else if !wasEnabled && vid.enabled() {
			vid.setMode(OAMSearch)
			vid.compareLY()
		}
	case memorymap.STAT:
		vid.STAT = vid.STAT&^statWritable | data&statWritable
	case memorymap.SCY:
		vid.SCY = data
	case memorymap.SCX:
		vid.SCX = data
	case memorymap.LY:
		// read only
	case memorymap.LYC:
		vid.LYC = data
		if vid.enabled() {
			vid.compareLY()
		}
	case memorymap.BGP:
		vid.BGP = data
	case memorymap.OBP0:
		vid.OBP0 = data
	case memorymap.OBP1:
		vid.OBP1 = data
	case memorymap.WY:
		vid.WY = data
	case memorymap.WX:
		vid.WX = data
	}
}
