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

package alu

import "github.com/jetsetilly/gopherdmg/hardware/cpu/registers"

func shiftFlags(r uint8, carry bool) registers.Flags {
	return registers.Flags{Zero: r == 0, Carry: carry}
}

// RotateLeft moves bit 7 into bit 0 and into the carry flag. RLC.
func RotateLeft(a uint8) (uint8, registers.Flags) {
	r := a<<1 | a>>7
	return r, shiftFlags(r, a&0x80 == 0x80)
}

// RotateRight moves bit 0 into bit 7 and into the carry flag. RRC.
func RotateRight(a uint8) (uint8, registers.Flags) {
	r := a>>1 | a<<7
	return r, shiftFlags(r, a&0x01 == 0x01)
}

// RotateLeftCarry rotates through the carry flag. RL.
func RotateLeftCarry(a uint8, f registers.Flags) (uint8, registers.Flags) {
	r := a<<1 | carryIn(f.Carry)
	return r, shiftFlags(r, a&0x80 == 0x80)
}

// RotateRightCarry rotates through the carry flag. RR.
func RotateRightCarry(a uint8, f registers.Flags) (uint8, registers.Flags) {
	r := a>>1 | carryIn(f.Carry)<<7
	return r, shiftFlags(r, a&0x01 == 0x01)
}

// ShiftLeft shifts left with bit 0 cleared. SLA.
func ShiftLeft(a uint8) (uint8, registers.Flags) {
	r := a << 1
	return r, shiftFlags(r, a&0x80 == 0x80)
}

// ShiftRightArithmetic shifts right with bit 7 unchanged. SRA.
func ShiftRightArithmetic(a uint8) (uint8, registers.Flags) {
	r := a>>1 | a&0x80
	return r, shiftFlags(r, a&0x01 == 0x01)
}

// ShiftRightLogical shifts right with bit 7 cleared. SRL.
func ShiftRightLogical(a uint8) (uint8, registers.Flags) {
	r := a >> 1
	return r, shiftFlags(r, a&0x01 == 0x01)
}

// Swap exchanges the upper and lower nibbles. The carry flag is cleared.
func Swap(a uint8) (uint8, registers.Flags) {
	r := a<<4 | a>>4
	return r, shiftFlags(r, false)
}

// Bit tests bit b of a. The zero flag is set if the bit is clear. Carry is
// unaffected.
func Bit(b uint8, a uint8, f registers.Flags) registers.Flags {
	return registers.Flags{
		Zero:      a&(1<<b) == 0,
		HalfCarry: true,
		Carry:     f.Carry,
	}
}
