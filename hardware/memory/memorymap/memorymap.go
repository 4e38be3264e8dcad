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

// Package memorymap facilitates the translation of addresses to the areas of
// the console's address space.
package memorymap

import (
	"fmt"
	"strings"
)

// Area represents the different areas of the address space.
type Area int

// List of memory areas.
const (
	ROM0 Area = iota
	ROMX
	VRAM
	SRAM
	WRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	IE
)

// Region of the address space occupied by an area.
type Region struct {
	Area   Area
	Label  string
	Origin uint16
	Memtop uint16
}

// Size returns the number of addresses in the region.
func (r Region) Size() int {
	return int(r.Memtop) - int(r.Origin) + 1
}

// Regions in address order.
var Regions = []Region{
	{ROM0, "ROM bank 0", 0x0000, 0x3fff},
	{ROMX, "ROM bank N", 0x4000, 0x7fff},
	{VRAM, "Video RAM", 0x8000, 0x9fff},
	{SRAM, "External RAM", 0xa000, 0xbfff},
	{WRAM, "Work RAM", 0xc000, 0xdfff},
	{Echo, "Echo RAM", 0xe000, 0xfdff},
	{OAM, "Object attributes", 0xfe00, 0xfe9f},
	{Unusable, "Unusable", 0xfea0, 0xfeff},
	{IO, "I/O registers", 0xff00, 0xff7f},
	{HRAM, "High RAM", 0xff80, 0xfffe},
	{IE, "Interrupt enable", 0xffff, 0xffff},
}

// Addresses of the hardware registers used by more than one package.
const (
	P1   = 0xff00
	SB   = 0xff01
	SC   = 0xff02
	DIV  = 0xff04
	TIMA = 0xff05
	TMA  = 0xff06
	TAC  = 0xff07
	IF   = 0xff0f
	LCDC = 0xff40
	STAT = 0xff41
	SCY  = 0xff42
	SCX  = 0xff43
	LY   = 0xff44
	LYC  = 0xff45
	DMA  = 0xff46
	BGP  = 0xff47
	OBP0 = 0xff48
	OBP1 = 0xff49
	WY   = 0xff4a
	WX   = 0xff4b
	IER  = 0xffff
)

// EchoOffset is the distance between echo RAM and the work RAM it mirrors.
const EchoOffset = 0x2000

// MapAddress returns the area the address belongs to.
func MapAddress(address uint16) Area {
	switch {
	case address <= 0x3fff:
		return ROM0
	case address <= 0x7fff:
		return ROMX
	case address <= 0x9fff:
		return VRAM
	case address <= 0xbfff:
		return SRAM
	case address <= 0xdfff:
		return WRAM
	case address <= 0xfdff:
		return Echo
	case address <= 0xfe9f:
		return OAM
	case address <= 0xfeff:
		return Unusable
	case address <= 0xff7f:
		return IO
	case address <= 0xfffe:
		return HRAM
	}
	return IE
}

func (a Area) String() string {
	if int(a) < len(Regions) {
		return Regions[a].Label
	}
	return "unknown area"
}

// Summary returns a table of the regions in the address space.
func Summary() string {
	s := strings.Builder{}
	for _, r := range Regions {
		s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", r.Origin, r.Memtop, r.Label))
	}
	return s.String()
}
