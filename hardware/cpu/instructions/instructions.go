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

package instructions

import "fmt"

// Operator is the operation performed by an instruction.
type Operator int

// List of operators.
const (
	Illegal Operator = iota
	Nop
	Prefix

	// loads
	Load
	LoadWord
	LoadOffset
	Push
	Pop

	// eight-bit arithmetic and logic
	Add
	Adc
	Sub
	Sbc
	And
	Xor
	Or
	Cp
	Inc
	Dec
	Daa
	Cpl
	Scf
	Ccf

	// sixteen-bit arithmetic
	IncWord
	DecWord
	AddWord
	AddOffset

	// accumulator rotates
	Rlca
	Rrca
	Rla
	Rra

	// prefixed rotates, shifts and bit operations
	Rlc
	Rrc
	Rl
	Rr
	Sla
	Sra
	Swap
	Srl
	Bit
	Res
	Set

	// flow
	Jp
	Jr
	Call
	Ret
	Reti
	Rst

	// processor control
	Halt
	Stop
	Di
	Ei
)

// Operand describes where the operand of an instruction comes from.
type Operand int

// List of operands.
const (
	None Operand = iota

	// fixed registers
	RegA
	RegSP
	RegHL

	// eight-bit register index from bits 0 to 2 of the opcode. index 6
	// indicates the memory location pointed to by HL
	Reg8

	// eight-bit register index from bits 3 to 5 of the opcode
	Reg8Upper

	// sixteen-bit register pair index from bits 4 and 5 of the opcode
	Reg16

	// as Reg16 but with AF in place of SP
	Reg16Stack

	// condition code from bits 3 and 4 of the opcode
	Condition

	// bit number from bits 3 to 5 of the opcode
	BitIndex

	// restart vector from bits 3 to 5 of the opcode
	Vector

	// data following the opcode
	Immediate8
	Immediate16
	Relative
	Absolute
	HighImmediate

	// memory pointed to by register pairs
	HighC
	IndirectBC
	IndirectDE
	IndirectHLInc
	IndirectHLDec
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Prefixed       bool
	Mnemonic       string
	Bytes          int
	Cycles         int
	CyclesNotTaken int
	Operator       Operator
	Operand        Operand
	Source         Operand
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == Illegal {
		return fmt.Sprintf("%02x illegal opcode", defn.OpCode)
	}
	var pfx string
	if defn.Prefixed {
		pfx = "cb "
	}
	if defn.IsConditional() {
		return fmt.Sprintf("%s%02x %s +%dbytes (%d/%d cycles)", pfx, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.CyclesNotTaken)
	}
	return fmt.Sprintf("%s%02x %s +%dbytes (%d cycles)", pfx, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
}

// IsConditional returns true if the instruction only takes effect when a
// condition is met.
func (defn Definition) IsConditional() bool {
	return defn.Operand == Condition
}

// IsFlow returns true if the instruction can change the program counter
// other than by advancing to the next instruction.
func (defn Definition) IsFlow() bool {
	switch defn.Operator {
	case Jp, Jr, Call, Ret, Reti, Rst:
		return true
	}
	return false
}

// Names of the eight-bit registers in index order.
var Reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// Names of the sixteen-bit register pairs in index order.
var Reg16Names = [4]string{"BC", "DE", "HL", "SP"}

// Names of the sixteen-bit register pairs used by PUSH and POP.
var Reg16StackNames = [4]string{"BC", "DE", "HL", "AF"}

// Names of the condition codes in index order.
var ConditionNames = [4]string{"NZ", "Z", "NC", "C"}
