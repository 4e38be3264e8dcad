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

// Package instructions defines the instruction set of the SM83 processor. The
// instruction set is described by two tables of 256 Definitions each. The
// first table describes the primary opcodes and the second table describes
// the opcodes that follow the 0xcb prefix byte.
//
// Each Definition names an Operator (the operation to perform) and up to two
// Operands. An Operand is either a fixed location (for example, the
// accumulator) or a rule for extracting a register index or condition code
// from the opcode. The CPU uses the definition to dispatch the instruction
// and the disassembler uses it to produce a readable mnemonic.
//
// The Cycles field is the number of clock cycles the instruction takes on the
// hardware. For conditional instructions, the Cycles field is the number of
// cycles when the branch is taken and CyclesNotTaken when it is not. The CPU
// does not use these values to count cycles. Cycles are counted by the CPU
// according to the memory accesses and internal delays of the instruction.
// The values in the tables are used to verify that counting.
package instructions
