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

// Package serial implements the serial port of the console. There is never a
// device connected to the other end of the link cable so incoming bits are
// always one.
//
// Transferred bytes are recorded and can optionally be echoed to an
// io.Writer. Test programs commonly use the serial port to report their
// results.
package serial

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/logger"
)

// SC register bits.
const (
	transferStart = 0x80
	internalClock = 0x01
)

// the number of clock cycles to shift one bit with the internal clock.
const cyclesPerBit = 512

// the maximum number of bytes kept in the output record.
const maxOutput = 4096

// Serial implements the bus.Device and bus.InterruptSource interfaces.
type Serial struct {
	SB uint8
	SC uint8

	// cycles remaining in the current transfer. zero if there is no
	// transfer in progress
	remaining int

	output []uint8
	echo   io.Writer

	pending bus.Interrupt
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial() *Serial {
	ser := &Serial{}
	ser.Reset()
	return ser
}

// Reset the serial port. The output record is cleared.
func (ser *Serial) Reset() {
	ser.SB = 0x00
	ser.SC = 0x00
	ser.remaining = 0
	ser.output = ser.output[:0]
	ser.pending = 0
}

func (ser *Serial) String() string {
	return fmt.Sprintf("SB=%02x SC=%02x", ser.SB, ser.SC|0x7e)
}

// SetEcho writes every transferred byte to the io.Writer. A nil argument
// stops the echo.
func (ser *Serial) SetEcho(w io.Writer) {
	ser.echo = w
}

// Output returns a copy of the bytes that have been transferred.
func (ser *Serial) Output() []uint8 {
	o := make([]uint8, len(ser.output))
	copy(o, ser.output)
	return o
}

// Update implements the bus.Device interface.
func (ser *Serial) Update(cycles int) {
	if ser.remaining == 0 {
		return
	}

	ser.remaining -= cycles
	if ser.remaining > 0 {
		return
	}
	ser.remaining = 0

	if len(ser.output) >= maxOutput {
		ser.output = ser.output[1:]
	}
	ser.output = append(ser.output, ser.SB)
	if ser.echo != nil {
		if _, err := ser.echo.Write([]uint8{ser.SB}); err != nil {
			logger.Log(logger.Allow, "serial", err)
		}
	}

	// the bits shifted in from the disconnected cable
	ser.SB = 0xff
	ser.SC &^= transferStart
	ser.pending |= bus.Serial
}

// PendingInterrupt implements the bus.InterruptSource interface.
func (ser *Serial) PendingInterrupt() bus.Interrupt {
	p := ser.pending
	ser.pending = 0
	return p
}

// Read implements the bus.Bus interface.
func (ser *Serial) Read(address uint16) uint8 {
	switch address {
	case memorymap.SB:
		return ser.SB
	case memorymap.SC:
		return ser.SC | 0x7e
	}
	return bus.OpenBus
}

// Write implements the bus.Bus interface.
func (ser *Serial) Write(address uint16, data uint8) {
	switch address {
	case memorymap.SB:
		ser.SB = data
	case memorymap.SC:
		ser.SC = data & (transferStart | internalClock)

		// transfers with the external clock never complete because there is
		// nothing on the other end of the cable to drive the clock
		if ser.SC == transferStart|internalClock {
			ser.remaining = cyclesPerBit * 8
		} else {
			ser.remaining = 0
		}
	}
}
