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

// Package registers implements the registers of the SM83 processor. The
// eight-bit data registers are of type Data, the program counter and stack
// pointer are of type Word and the flags register is of type Flags.
//
// The 16-bit register pairs (AF, BC, DE, HL) are not types in their own right.
// The CPU composes them from two Data registers (or from the accumulator and
// the Flags register in the case of AF) with the Pair() function.
package registers
