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

// Word is a sixteen-bit register. Used for the program counter and stack
// pointer.
type Word struct {
	label string
	value uint16
}

// NewWord is the preferred method of initialisation for the Word register.
func NewWord(val uint16, label string) Word {
	return Word{label: label, value: val}
}

// Label returns the name of the register.
func (r Word) Label() string {
	return r.label
}

func (r Word) String() string {
	return fmt.Sprintf("%04x", r.value)
}

// Address returns the current value of the register. The name reflects how
// the value is most often used.
func (r Word) Address() uint16 {
	return r.value
}

// Load a new value into the register.
func (r *Word) Load(v uint16) {
	r.value = v
}

// Add a signed value to the register, wrapping at the 16-bit boundary.
func (r *Word) Add(v int) {
	r.value = uint16(int(r.value) + v)
}
