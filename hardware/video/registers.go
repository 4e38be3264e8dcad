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

// LCDC register bits.
const (
	lcdcBGEnable      = 0x01
	lcdcObjEnable     = 0x02
	lcdcObjSize       = 0x04
	lcdcBGMap         = 0x08
	lcdcTileData      = 0x10
	lcdcWindowEnable  = 0x20
	lcdcWindowMap     = 0x40
	lcdcDisplayEnable = 0x80
)

// STAT register bits. the lower two bits are the current mode.
const (
	statModeMask    = 0x03
	statCoincidence = 0x04
	statHBlankInt   = 0x08
	statVBlankInt   = 0x10
	statOAMInt      = 0x20
	statLYCInt      = 0x40

	// only the interrupt selection bits can be written by the CPU
	statWritable = statHBlankInt | statVBlankInt | statOAMInt | statLYCInt
)

// Mode is the current mode of the video hardware, as reported in the lower
// bits of the STAT register.
type Mode uint8

// List of video modes.
const (
	HBlank Mode = iota
	VBlank
	OAMSearch
	Transfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAMSearch:
		return "OAM"
	case Transfer:
		return "Transfer"
	}
	return "unknown mode"
}

// the STAT interrupt selection bit for each mode.
var modeInterrupt = [4]uint8{statHBlankInt, statVBlankInt, statOAMInt, 0}

// object attribute flags.
const (
	objPalette  = 0x10
	objFlipX    = 0x20
	objFlipY    = 0x40
	objPriority = 0x80
)
