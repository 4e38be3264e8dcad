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

// Package bus defines the memory bus concept. All addressable devices in the
// console implement the Bus interface. It is the only means by which the CPU
// touches memory mapped state.
//
// Devices that change state over time also implement the Device interface.
// Devices that can request an interrupt implement the InterruptSource
// interface.
package bus

// OpenBus is the value returned when reading an address that has no device
// mapped to it.
const OpenBus = 0xff

// Bus defines the read/write operations of an addressable device. Addresses
// are always the full sixteen-bit address. It is up to the device to
// normalise the address if necessary.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Device is a Bus that is advanced by the number of clock cycles that have
// elapsed since the previous call to Update().
type Device interface {
	Bus
	Update(cycles int)
}

// InterruptSource is implemented by devices that can request an interrupt.
// PendingInterrupt() returns the interrupts that have been raised since the
// previous call. The device forgets the request once it has been returned.
type InterruptSource interface {
	PendingInterrupt() Interrupt
}
