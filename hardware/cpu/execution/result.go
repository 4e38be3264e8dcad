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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the actual number of cycles taken by the instruction. this includes
	// the cost of any interrupt dispatched after the instruction
	Cycles int

	// the number of bytes read during instruction decode. includes the
	// opcode (and prefix) byte
	ByteCount int

	// the data following the opcode. the size of the data depends on the
	// definition
	InstructionData uint16

	// the interrupt vector serviced after the instruction. zero if no
	// interrupt was serviced
	Interrupt uint16

	// the CPU was halted and no instruction was executed
	Halted bool

	// whether the instruction has completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Halted {
		return fmt.Sprintf("%04x (halted)", r.Address)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%04x ??", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Mnemonic()))
	if r.Interrupt != 0 {
		s.WriteString(fmt.Sprintf(" [interrupt %04x]", r.Interrupt))
	}
	return s.String()
}

// Mnemonic returns the mnemonic of the instruction with the placeholders for
// the instruction data replaced with the data itself.
func (r Result) Mnemonic() string {
	if r.Defn == nil {
		return "??"
	}

	m := r.Defn.Mnemonic

	switch {
	case strings.Contains(m, "n16"):
		m = strings.Replace(m, "n16", fmt.Sprintf("$%04x", r.InstructionData), 1)
	case strings.Contains(m, "a16"):
		m = strings.Replace(m, "a16", fmt.Sprintf("$%04x", r.InstructionData), 1)
	case strings.Contains(m, "n8"):
		m = strings.Replace(m, "n8", fmt.Sprintf("$%02x", r.InstructionData), 1)
	case strings.Contains(m, "a8"):
		m = strings.Replace(m, "a8", fmt.Sprintf("$ff%02x", r.InstructionData), 1)
	case strings.Contains(m, "e8"):
		e := int(int8(r.InstructionData))
		if r.Defn.Operator == instructions.Jr {
			// relative jumps are shown with the target address
			target := uint16(int(r.Address) + r.Defn.Bytes + e)
			m = strings.Replace(m, "e8", fmt.Sprintf("$%04x", target), 1)
		} else {
			m = strings.Replace(m, "e8", fmt.Sprintf("%d", e), 1)
		}
	}

	return m
}
