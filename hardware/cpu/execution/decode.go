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

package execution

import "github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"

// Reader is the memory interface required by Decode(). Reads must not have
// side effects.
type Reader interface {
	Read(address uint16) uint8
}

// Decode the instruction at the address without executing it. The Cycles
// field of the Result is taken from the definition and the Final field is
// false.
func Decode(mem Reader, address uint16) Result {
	r := Result{Address: address}

	opcode := mem.Read(address)
	defn := &instructions.Definitions[opcode]
	r.ByteCount = 1

	if opcode == instructions.PrefixOpCode {
		defn = &instructions.PrefixedDefinitions[mem.Read(address+1)]
		r.ByteCount = 2
	}

	r.Defn = defn
	r.Cycles = defn.Cycles

	switch defn.Bytes - r.ByteCount {
	case 1:
		r.InstructionData = uint16(mem.Read(address + 1))
	case 2:
		r.InstructionData = uint16(mem.Read(address+1)) | uint16(mem.Read(address+2))<<8
	}
	r.ByteCount = defn.Bytes

	return r
}
