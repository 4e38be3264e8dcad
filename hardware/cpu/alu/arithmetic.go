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

func carryIn(c bool) uint8 {
	if c {
		return 1
	}
	return 0
}

// Add returns a+b plus one if carry is true. Used for ADD and ADC.
func Add(a, b uint8, carry bool) (uint8, registers.Flags) {
	c := carryIn(carry)
	r := uint16(a) + uint16(b) + uint16(c)
	return uint8(r), registers.Flags{
		Zero:      uint8(r) == 0,
		HalfCarry: (a&0x0f)+(b&0x0f)+c > 0x0f,
		Carry:     r > 0xff,
	}
}

// Sub returns a-b minus one if carry is true. Used for SUB, SBC and CP.
func Sub(a, b uint8, carry bool) (uint8, registers.Flags) {
	c := carryIn(carry)
	r := uint8(a - b - c)
	return r, registers.Flags{
		Zero:      r == 0,
		Subtract:  true,
		HalfCarry: a&0x0f < (b&0x0f)+c,
		Carry:     uint16(a) < uint16(b)+uint16(c),
	}
}

// And returns a&b.
func And(a, b uint8) (uint8, registers.Flags) {
	r := a & b
	return r, registers.Flags{Zero: r == 0, HalfCarry: true}
}

// Xor returns a^b.
func Xor(a, b uint8) (uint8, registers.Flags) {
	r := a ^ b
	return r, registers.Flags{Zero: r == 0}
}

// Or returns a|b.
func Or(a, b uint8) (uint8, registers.Flags) {
	r := a | b
	return r, registers.Flags{Zero: r == 0}
}

// Inc returns a+1. The carry flag is unaffected.
func Inc(a uint8, f registers.Flags) (uint8, registers.Flags) {
	r := a + 1
	return r, registers.Flags{
		Zero:      r == 0,
		HalfCarry: a&0x0f == 0x0f,
		Carry:     f.Carry,
	}
}

// Dec returns a-1. The carry flag is unaffected.
func Dec(a uint8, f registers.Flags) (uint8, registers.Flags) {
	r := a - 1
	return r, registers.Flags{
		Zero:      r == 0,
		Subtract:  true,
		HalfCarry: a&0x0f == 0x00,
		Carry:     f.Carry,
	}
}

// AddWord returns hl+v. The half-carry flag is the carry out of bit 11 and the
// carry flag is the carry out of bit 15. The zero flag is unaffected.
func AddWord(hl, v uint16, f registers.Flags) (uint16, registers.Flags) {
	r := uint32(hl) + uint32(v)
	return uint16(r), registers.Flags{
		Zero:      f.Zero,
		HalfCarry: (hl&0x0fff)+(v&0x0fff) > 0x0fff,
		Carry:     r > 0xffff,
	}
}

// AddOffset returns sp plus the signed offset e. The half-carry and carry
// flags are computed on the low byte only, as an unsigned addition. The zero
// and subtract flags are always cleared. Used for ADD SP,e and LD HL,SP+e.
func AddOffset(sp uint16, e uint8) (uint16, registers.Flags) {
	r := uint16(int(sp) + int(int8(e)))
	lo := uint8(sp)
	return r, registers.Flags{
		HalfCarry: (lo&0x0f)+(e&0x0f) > 0x0f,
		Carry:     uint16(lo)+uint16(e) > 0xff,
	}
}

// DecimalAdjust corrects the accumulator after a BCD addition or
// subtraction. The subtract flag selects between the two corrections. The
// subtract flag is unaffected and the half-carry flag is always cleared.
func DecimalAdjust(a uint8, f registers.Flags) (uint8, registers.Flags) {
	carry := f.Carry

	if !f.Subtract {
		if f.Carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if f.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if f.Carry {
			a -= 0x60
		}
		if f.HalfCarry {
			a -= 0x06
		}
	}

	return a, registers.Flags{
		Zero:     a == 0,
		Subtract: f.Subtract,
		Carry:    carry,
	}
}

// Complement returns the bitwise inverse of a. Zero and carry are unaffected.
func Complement(a uint8, f registers.Flags) (uint8, registers.Flags) {
	return ^a, registers.Flags{
		Zero:      f.Zero,
		Subtract:  true,
		HalfCarry: true,
		Carry:     f.Carry,
	}
}
