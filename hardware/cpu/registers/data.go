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

package registers

import "fmt"

// Data is an eight-bit register.
type Data struct {
	label string
	value uint8
}

// NewData is the preferred method of initialisation for the Data register.
func NewData(val uint8, label string) Data {
	return Data{label: label, value: val}
}

// Label returns the name of the register.
func (r Data) Label() string {
	return r.label
}

func (r Data) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Value returns the current value of the register.
func (r Data) Value() uint8 {
	return r.value
}

// Load a new value into the register.
func (r *Data) Load(v uint8) {
	r.value = v
}

// Pair returns the 16-bit value of two eight-bit values, with hi in the most
// significant byte.
func Pair(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Split returns the most and least significant bytes of a 16-bit value.
func Split(v uint16) (hi, lo uint8) {
	return uint8(v >> 8), uint8(v)
}
