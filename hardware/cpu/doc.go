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

// Package cpu emulates the SM83 processor found in the DMG handheld console.
//
// The CPU is stepped one instruction at a time with the Step() function. Each
// step fetches, decodes and executes one instruction, advances the devices on
// the memory bus by the number of cycles consumed and then services at most
// one pending interrupt.
//
// Cycles are counted as the instruction accesses memory. Every memory access
// takes four clock cycles (one machine cycle). Some instructions spend
// additional machine cycles on internal operations. For example, PUSH spends
// one machine cycle decrementing the stack pointer before writing to memory.
// The timing of every instruction is the timing of the hardware.
//
// Decoding is driven by the tables in the instructions package. The
// instruction definition selects the operation and the rule for extracting
// the register index or condition code from the opcode. A register index of
// 6 refers to the memory location pointed to by the HL register pair.
//
// Unassigned opcodes are logged and treated as a one byte instruction with no
// effect, unless the StrictOpcodes preference is set. In which case Step()
// returns an IllegalOpcode error.
//
// An out of range register index or condition code causes a panic. This can
// only happen if the instruction tables are wrong.
package cpu
