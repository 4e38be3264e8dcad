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

package cpu

import (
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
)

// the register index fields of the opcode.
func lowerIndex(opcode uint8) uint8 {
	return opcode & 0x07
}

func upperIndex(opcode uint8) uint8 {
	return (opcode >> 3) & 0x07
}

func pairIndex(opcode uint8) uint8 {
	return (opcode >> 4) & 0x03
}

func conditionIndex(opcode uint8) uint8 {
	return (opcode >> 3) & 0x03
}

// HL returns the value of the HL register pair.
func (mc *CPU) HL() uint16 {
	return registers.Pair(mc.H.Value(), mc.L.Value())
}

func (mc *CPU) setHL(v uint16) {
	hi, lo := registers.Split(v)
	mc.H.Load(hi)
	mc.L.Load(lo)
}

// BC returns the value of the BC register pair.
func (mc *CPU) BC() uint16 {
	return registers.Pair(mc.B.Value(), mc.C.Value())
}

// DE returns the value of the DE register pair.
func (mc *CPU) DE() uint16 {
	return registers.Pair(mc.D.Value(), mc.E.Value())
}

// AF returns the value of the AF register pair. The low nibble is always zero.
func (mc *CPU) AF() uint16 {
	return registers.Pair(mc.A.Value(), mc.F.Value())
}

// reg8 returns the register for the index. index 6 does not refer to a
// register and must be handled by the caller.
func (mc *CPU) reg8(idx uint8) *registers.Data {
	switch idx {
	case 0:
		return &mc.B
	case 1:
		return &mc.C
	case 2:
		return &mc.D
	case 3:
		return &mc.E
	case 4:
		return &mc.H
	case 5:
		return &mc.L
	case 7:
		return &mc.A
	}
	panic(curated.Errorf(InvalidIndex, "register", idx))
}

// readReg8 returns the value of the eight-bit register for the index. index 6
// reads the memory pointed to by HL.
func (mc *CPU) readReg8(idx uint8) uint8 {
	if idx == 6 {
		return mc.read8(mc.HL())
	}
	return mc.reg8(idx).Value()
}

// writeReg8 sets the value of the eight-bit register for the index. index 6
// writes to the memory pointed to by HL.
func (mc *CPU) writeReg8(idx uint8, v uint8) {
	if idx == 6 {
		mc.write8(mc.HL(), v)
		return
	}
	mc.reg8(idx).Load(v)
}

// readReg16 returns the value of the register pair for the index. index 3 is
// the stack pointer.
func (mc *CPU) readReg16(idx uint8) uint16 {
	switch idx {
	case 0:
		return mc.BC()
	case 1:
		return mc.DE()
	case 2:
		return mc.HL()
	case 3:
		return mc.SP.Address()
	}
	panic(curated.Errorf(InvalidIndex, "register pair", idx))
}

func (mc *CPU) writeReg16(idx uint8, v uint16) {
	hi, lo := registers.Split(v)
	switch idx {
	case 0:
		mc.B.Load(hi)
		mc.C.Load(lo)
	case 1:
		mc.D.Load(hi)
		mc.E.Load(lo)
	case 2:
		mc.H.Load(hi)
		mc.L.Load(lo)
	case 3:
		mc.SP.Load(v)
	default:
		panic(curated.Errorf(InvalidIndex, "register pair", idx))
	}
}

// readReg16Stack is the same as readReg16 except that index 3 is the AF
// register pair.
func (mc *CPU) readReg16Stack(idx uint8) uint16 {
	if idx == 3 {
		return mc.AF()
	}
	return mc.readReg16(idx)
}

func (mc *CPU) writeReg16Stack(idx uint8, v uint16) {
	if idx == 3 {
		hi, lo := registers.Split(v)
		mc.A.Load(hi)
		mc.F.Load(lo)
		return
	}
	mc.writeReg16(idx, v)
}

// condition returns true if the condition for the index is met.
func (mc *CPU) condition(idx uint8) bool {
	switch idx {
	case 0:
		return !mc.F.Zero
	case 1:
		return mc.F.Zero
	case 2:
		return !mc.F.Carry
	case 3:
		return mc.F.Carry
	}
	panic(curated.Errorf(InvalidIndex, "condition", idx))
}

// readOperand returns the eight-bit value of the operand. data following the
// opcode is fetched as required.
func (mc *CPU) readOperand(o instructions.Operand, opcode uint8) uint8 {
	switch o {
	case instructions.RegA:
		return mc.A.Value()
	case instructions.Reg8:
		return mc.readReg8(lowerIndex(opcode))
	case instructions.Reg8Upper:
		return mc.readReg8(upperIndex(opcode))
	case instructions.Immediate8:
		return mc.fetchData8()
	}
	return mc.read8(mc.operandAddress(o))
}

// writeOperand sets the eight-bit value of the operand.
func (mc *CPU) writeOperand(o instructions.Operand, opcode uint8, v uint8) {
	switch o {
	case instructions.RegA:
		mc.A.Load(v)
		return
	case instructions.Reg8:
		mc.writeReg8(lowerIndex(opcode), v)
		return
	case instructions.Reg8Upper:
		mc.writeReg8(upperIndex(opcode), v)
		return
	}
	mc.write8(mc.operandAddress(o), v)
}

// operandAddress returns the memory address of an operand that refers to
// memory. the HL register pair is incremented or decremented as required by
// the operand.
func (mc *CPU) operandAddress(o instructions.Operand) uint16 {
	switch o {
	case instructions.Absolute:
		return mc.fetch16()
	case instructions.HighImmediate:
		return 0xff00 | uint16(mc.fetchData8())
	case instructions.HighC:
		return 0xff00 | uint16(mc.C.Value())
	case instructions.IndirectBC:
		return mc.BC()
	case instructions.IndirectDE:
		return mc.DE()
	case instructions.IndirectHLInc:
		hl := mc.HL()
		mc.setHL(hl + 1)
		return hl
	case instructions.IndirectHLDec:
		hl := mc.HL()
		mc.setHL(hl - 1)
		return hl
	}
	panic(curated.Errorf(InvalidOperand, o, "memory access"))
}
