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
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
)

// Type is the value of the cartridge type field in the header. It describes
// the bank controller and any additional hardware on the cartridge.
type Type uint8

// List of known cartridge types.
const (
	ROMOnly                    Type = 0x00
	MBC1                       Type = 0x01
	MBC1RAM                    Type = 0x02
	MBC1RAMBattery             Type = 0x03
	MBC2                       Type = 0x05
	MBC2Battery                Type = 0x06
	ROMRAM                     Type = 0x08
	ROMRAMBattery              Type = 0x09
	MMM01                      Type = 0x0b
	MMM01RAM                   Type = 0x0c
	MMM01RAMBattery            Type = 0x0d
	MBC3TimerBattery           Type = 0x0f
	MBC3TimerRAMBattery        Type = 0x10
	MBC3                       Type = 0x11
	MBC3RAM                    Type = 0x12
	MBC3RAMBattery             Type = 0x13
	MBC5                       Type = 0x19
	MBC5RAM                    Type = 0x1a
	MBC5RAMBattery             Type = 0x1b
	MBC5Rumble                 Type = 0x1c
	MBC5RumbleRAM              Type = 0x1d
	MBC5RumbleRAMBattery       Type = 0x1e
	MBC6                       Type = 0x20
	MBC7SensorRumbleRAMBattery Type = 0x22
	PocketCamera               Type = 0xfc
	BandaiTAMA5                Type = 0xfd
	HuC3                       Type = 0xfe
	HuC1RAMBattery             Type = 0xff
)

var typeNames = map[Type]string{
	ROMOnly:                    "ROM ONLY",
	MBC1:                       "MBC1",
	MBC1RAM:                    "MBC1+RAM",
	MBC1RAMBattery:             "MBC1+RAM+BATTERY",
	MBC2:                       "MBC2",
	MBC2Battery:                "MBC2+BATTERY",
	ROMRAM:                     "ROM+RAM",
	ROMRAMBattery:              "ROM+RAM+BATTERY",
	MMM01:                      "MMM01",
	MMM01RAM:                   "MMM01+RAM",
	MMM01RAMBattery:            "MMM01+RAM+BATTERY",
	MBC3TimerBattery:           "MBC3+TIMER+BATTERY",
	MBC3TimerRAMBattery:        "MBC3+TIMER+RAM+BATTERY",
	MBC3:                       "MBC3",
	MBC3RAM:                    "MBC3+RAM",
	MBC3RAMBattery:             "MBC3+RAM+BATTERY",
	MBC5:                       "MBC5",
	MBC5RAM:                    "MBC5+RAM",
	MBC5RAMBattery:             "MBC5+RAM+BATTERY",
	MBC5Rumble:                 "MBC5+RUMBLE",
	MBC5RumbleRAM:              "MBC5+RUMBLE+RAM",
	MBC5RumbleRAMBattery:       "MBC5+RUMBLE+RAM+BATTERY",
	MBC6:                       "MBC6",
	MBC7SensorRumbleRAMBattery: "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
	PocketCamera:               "POCKET CAMERA",
	BandaiTAMA5:                "BANDAI TAMA5",
	HuC3:                       "HuC3",
	HuC1RAMBattery:             "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("UNKNOWN (%02x)", uint8(t))
}

// Known returns true if the cartridge type is one of the types recognised by
// the emulation.
func (t Type) Known() bool {
	_, ok := typeNames[t]
	return ok
}

// HasBattery returns true if the cartridge RAM is battery backed.
func (t Type) HasBattery() bool {
	return strings.Contains(t.String(), "BATTERY")
}

// HasTimer returns true if the cartridge has a real time clock.
func (t Type) HasTimer() bool {
	return strings.Contains(t.String(), "TIMER")
}

// Destination is the value of the destination code field in the header.
type Destination uint8

// List of destination codes.
const (
	Japanese    Destination = 0x00
	NonJapanese Destination = 0x01
)

func (d Destination) String() string {
	switch d {
	case Japanese:
		return "Japanese"
	case NonJapanese:
		return "Non-Japanese"
	}
	return "Unknown"
}

// Header field addresses.
const (
	headerEntryPoint     = 0x0100
	headerLogo           = 0x0104
	headerTitle          = 0x0134
	headerManufacturer   = 0x013f
	headerCGBFlag        = 0x0143
	headerNewLicensee    = 0x0144
	headerSGBFlag        = 0x0146
	headerType           = 0x0147
	headerROMSize        = 0x0148
	headerRAMSize        = 0x0149
	headerDestination    = 0x014a
	headerOldLicensee    = 0x014b
	headerMaskROMVersion = 0x014c
	headerChecksum       = 0x014d
	headerGlobalChecksum = 0x014e

	// HeaderEnd is the first address after the header. A cartridge image
	// must be at least this size.
	HeaderEnd = 0x0150
)

// Header contains the information in the cartridge header.
type Header struct {
	EntryPoint       [4]uint8
	Logo             [48]uint8
	Title            string
	ManufacturerCode string
	CGBFlag          uint8
	NewLicensee      string
	SGB              bool
	Type             Type
	ROMSize          int
	RAMSize          int
	Destination      Destination
	OldLicensee      uint8
	MaskROMVersion   uint8
	HeaderChecksum   uint8

	// the global checksum is not verified by the hardware. it is reported
	// for information only
	GlobalChecksum uint16
}

// ramSizes indexed by the RAM size code.
var ramSizes = [...]int{0, 2 * 1024, 8 * 1024, 32 * 1024, 128 * 1024, 64 * 1024}

// the maximum ROM size code. the resulting size is 8MiB
const maxROMSizeCode = 0x08

// HeaderChecksum calculates the header checksum for the cartridge data. The
// data must be at least HeaderEnd bytes long.
func HeaderChecksum(data []uint8) uint8 {
	var x uint8
	for _, b := range data[headerTitle:headerChecksum] {
		x = x - b - 1
	}
	return x
}

// NewHeader parses the header of the cartridge data. Returns an error if the
// data is too short, if the checksum is wrong or if either of the ROM or RAM
// size codes are unsupported.
func NewHeader(data []uint8) (Header, error) {
	var h Header

	if len(data) < HeaderEnd {
		return h, curated.Errorf(ImageSizeError, len(data))
	}

	h.HeaderChecksum = data[headerChecksum]
	if c := HeaderChecksum(data); c != h.HeaderChecksum {
		return h, curated.Errorf(ChecksumError, c, h.HeaderChecksum)
	}

	copy(h.EntryPoint[:], data[headerEntryPoint:])
	copy(h.Logo[:], data[headerLogo:])

	// the title field originally occupied the manufacturer code and CGB flag
	// addresses. later cartridges shortened the title
	h.CGBFlag = data[headerCGBFlag]
	if h.CGBFlag&0x80 == 0x80 {
		h.Title = headerString(data[headerTitle:headerManufacturer])
		h.ManufacturerCode = headerString(data[headerManufacturer:headerCGBFlag])
	} else {
		h.Title = headerString(data[headerTitle:headerNewLicensee])
	}
	h.NewLicensee = headerString(data[headerNewLicensee:headerSGBFlag])
	h.SGB = data[headerSGBFlag] == 0x03
	h.Type = Type(data[headerType])
	h.Destination = Destination(data[headerDestination])
	h.OldLicensee = data[headerOldLicensee]
	h.MaskROMVersion = data[headerMaskROMVersion]
	h.GlobalChecksum = uint16(data[headerGlobalChecksum])<<8 | uint16(data[headerGlobalChecksum+1])

	c := data[headerROMSize]
	if c > maxROMSizeCode {
		return h, curated.Errorf(ROMSizeError, c)
	}
	h.ROMSize = 32 * 1024 << c

	c = data[headerRAMSize]
	if int(c) >= len(ramSizes) {
		return h, curated.Errorf(RAMSizeError, c)
	}
	h.RAMSize = ramSizes[c]

	return h, nil
}

// headerString converts a zero terminated header field to a string. Non
// printable characters are removed.
func headerString(b []uint8) string {
	s := strings.Builder{}
	for _, c := range b {
		if c == 0x00 {
			break
		}
		if c >= 0x20 && c < 0x7f {
			s.WriteByte(c)
		}
	}
	return strings.TrimSpace(s.String())
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("title: %s\n", h.Title))
	s.WriteString(fmt.Sprintf("type: %s\n", h.Type))
	s.WriteString(fmt.Sprintf("ROM size: %dKB\n", h.ROMSize/1024))
	s.WriteString(fmt.Sprintf("RAM size: %dKB\n", h.RAMSize/1024))
	s.WriteString(fmt.Sprintf("destination: %s\n", h.Destination))
	if h.OldLicensee == 0x33 {
		s.WriteString(fmt.Sprintf("licensee: %s\n", h.NewLicensee))
	} else {
		s.WriteString(fmt.Sprintf("licensee: %02x\n", h.OldLicensee))
	}
	if h.ManufacturerCode != "" {
		s.WriteString(fmt.Sprintf("manufacturer: %s\n", h.ManufacturerCode))
	}
	s.WriteString(fmt.Sprintf("SGB: %v\n", h.SGB))
	s.WriteString(fmt.Sprintf("mask ROM version: %d\n", h.MaskROMVersion))
	s.WriteString(fmt.Sprintf("header checksum: %02x\n", h.HeaderChecksum))
	s.WriteString(fmt.Sprintf("global checksum: %04x", h.GlobalChecksum))
	return s.String()
}
