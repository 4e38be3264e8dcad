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
	"github.com/jetsetilly/gopherdmg/hardware/cpu/alu"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
)

// executePrimary performs the instruction for a primary opcode. the opcode
// has already been fetched.
func (mc *CPU) executePrimary(defn *instructions.Definition, opcode uint8) {
	switch defn.Operator {
	case instructions.Nop:

	case instructions.Load:
		v := mc.readOperand(defn.Source, opcode)
		mc.writeOperand(defn.Operand, opcode, v)

	case instructions.LoadWord:
		switch defn.Operand {
		case instructions.Reg16:
			mc.writeReg16(pairIndex(opcode), mc.fetch16())
		case instructions.Absolute:
			address := mc.fetch16()
			hi, lo := registers.Split(mc.SP.Address())
			mc.write8(address, lo)
			mc.write8(address+1, hi)
		case instructions.RegSP:
			mc.internal()
			mc.SP.Load(mc.HL())
		default:
			panic(curated.Errorf(InvalidOperand, defn.Operand, defn.Mnemonic))
		}

	case instructions.LoadOffset:
		e := mc.fetchData8()
		v, f := alu.AddOffset(mc.SP.Address(), e)
		mc.internal()
		mc.setHL(v)
		mc.F = f

	case instructions.Push:
		v := mc.readReg16Stack(pairIndex(opcode))
		mc.internal()
		mc.push16(v)

	case instructions.Pop:
		mc.writeReg16Stack(pairIndex(opcode), mc.pop16())

	case instructions.Add, instructions.Adc, instructions.Sub, instructions.Sbc,
		instructions.And, instructions.Xor, instructions.Or, instructions.Cp:
		mc.arithmetic(defn.Operator, mc.readOperand(defn.Source, opcode))

	case instructions.Inc:
		idx := upperIndex(opcode)
		v, f := alu.Inc(mc.readReg8(idx), mc.F)
		mc.writeReg8(idx, v)
		mc.F = f

	case instructions.Dec:
		idx := upperIndex(opcode)
		v, f := alu.Dec(mc.readReg8(idx), mc.F)
		mc.writeReg8(idx, v)
		mc.F = f

	case instructions.Daa:
		v, f := alu.DecimalAdjust(mc.A.Value(), mc.F)
		mc.A.Load(v)
		mc.F = f

	case instructions.Cpl:
		v, f := alu.Complement(mc.A.Value(), mc.F)
		mc.A.Load(v)
		mc.F = f

	case instructions.Scf:
		mc.F = registers.Flags{Zero: mc.F.Zero, Carry: true}

	case instructions.Ccf:
		mc.F = registers.Flags{Zero: mc.F.Zero, Carry: !mc.F.Carry}

	case instructions.IncWord:
		idx := pairIndex(opcode)
		mc.writeReg16(idx, mc.readReg16(idx)+1)
		mc.internal()

	case instructions.DecWord:
		idx := pairIndex(opcode)
		mc.writeReg16(idx, mc.readReg16(idx)-1)
		mc.internal()

	case instructions.AddWord:
		v, f := alu.AddWord(mc.HL(), mc.readReg16(pairIndex(opcode)), mc.F)
		mc.internal()
		mc.setHL(v)
		mc.F = f

	case instructions.AddOffset:
		e := mc.fetchData8()
		v, f := alu.AddOffset(mc.SP.Address(), e)
		mc.internal()
		mc.internal()
		mc.SP.Load(v)
		mc.F = f

	case instructions.Rlca:
		v, f := alu.RotateLeft(mc.A.Value())
		mc.rotateAccumulator(v, f)

	case instructions.Rrca:
		v, f := alu.RotateRight(mc.A.Value())
		mc.rotateAccumulator(v, f)

	case instructions.Rla:
		v, f := alu.RotateLeftCarry(mc.A.Value(), mc.F)
		mc.rotateAccumulator(v, f)

	case instructions.Rra:
		v, f := alu.RotateRightCarry(mc.A.Value(), mc.F)
		mc.rotateAccumulator(v, f)

	case instructions.Jp:
		if defn.Source == instructions.RegHL {
			mc.PC.Load(mc.HL())
			break // switch
		}
		address := mc.fetch16()
		if defn.IsConditional() && !mc.condition(conditionIndex(opcode)) {
			break // switch
		}
		mc.internal()
		mc.PC.Load(address)

	case instructions.Jr:
		e := mc.fetchData8()
		if defn.IsConditional() && !mc.condition(conditionIndex(opcode)) {
			break // switch
		}
		mc.internal()
		mc.PC.Add(int(int8(e)))

	case instructions.Call:
		address := mc.fetch16()
		if defn.IsConditional() && !mc.condition(conditionIndex(opcode)) {
			break // switch
		}
		mc.internal()
		mc.push16(mc.PC.Address())
		mc.PC.Load(address)

	case instructions.Ret:
		if defn.IsConditional() {
			mc.internal()
			if !mc.condition(conditionIndex(opcode)) {
				break // switch
			}
		}
		address := mc.pop16()
		mc.internal()
		mc.PC.Load(address)

	case instructions.Reti:
		address := mc.pop16()
		mc.internal()
		mc.PC.Load(address)
		mc.IME = true
		mc.imeDelay = 0

	case instructions.Rst:
		mc.internal()
		mc.push16(mc.PC.Address())
		mc.PC.Load(uint16(opcode & 0x38))

	case instructions.Halt:
		mc.Halted = true

	case instructions.Stop:
		// the second byte of STOP is not read
		mc.PC.Add(1)
		mc.LastResult.ByteCount++
		mc.Halted = true

	case instructions.Di:
		mc.IME = false
		mc.imeDelay = 0

	case instructions.Ei:
		if !mc.IME && mc.imeDelay == 0 {
			mc.imeDelay = 2
		}

	default:
		panic(curated.Errorf(InvalidOperand, defn.Operator, defn.Mnemonic))
	}
}

// arithmetic performs the eight-bit arithmetic and logic operations on the
// accumulator.
func (mc *CPU) arithmetic(operator instructions.Operator, v uint8) {
	a := mc.A.Value()
	var r uint8
	var f registers.Flags

	switch operator {
	case instructions.Add:
		r, f = alu.Add(a, v, false)
	case instructions.Adc:
		r, f = alu.Add(a, v, mc.F.Carry)
	case instructions.Sub:
		r, f = alu.Sub(a, v, false)
	case instructions.Sbc:
		r, f = alu.Sub(a, v, mc.F.Carry)
	case instructions.And:
		r, f = alu.And(a, v)
	case instructions.Xor:
		r, f = alu.Xor(a, v)
	case instructions.Or:
		r, f = alu.Or(a, v)
	case instructions.Cp:
		// compare discards the result
		_, f = alu.Sub(a, v, false)
		r = a
	}

	mc.A.Load(r)
	mc.F = f
}

// the short rotate instructions always clear the zero flag.
func (mc *CPU) rotateAccumulator(v uint8, f registers.Flags) {
	f.Zero = false
	mc.A.Load(v)
	mc.F = f
}

// executePrefixed performs the instruction for an opcode following the prefix
// byte. both bytes have already been fetched.
func (mc *CPU) executePrefixed(defn *instructions.Definition, opcode uint8) {
	idx := lowerIndex(opcode)
	bit := upperIndex(opcode)

	if defn.Operator == instructions.Bit {
		mc.F = alu.Bit(bit, mc.readReg8(idx), mc.F)
		return
	}

	v := mc.readReg8(idx)
	var f registers.Flags

	switch defn.Operator {
	case instructions.Rlc:
		v, f = alu.RotateLeft(v)
	case instructions.Rrc:
		v, f = alu.RotateRight(v)
	case instructions.Rl:
		v, f = alu.RotateLeftCarry(v, mc.F)
	case instructions.Rr:
		v, f = alu.RotateRightCarry(v, mc.F)
	case instructions.Sla:
		v, f = alu.ShiftLeft(v)
	case instructions.Sra:
		v, f = alu.ShiftRightArithmetic(v)
	case instructions.Swap:
		v, f = alu.Swap(v)
	case instructions.Srl:
		v, f = alu.ShiftRightLogical(v)
	case instructions.Res:
		mc.writeReg8(idx, v&^(1<<bit))
		return
	case instructions.Set:
		mc.writeReg8(idx, v|(1<<bit))
		return
	default:
		panic(curated.Errorf(InvalidOperand, defn.Operator, defn.Mnemonic))
	}

	mc.writeReg8(idx, v)
	mc.F = f
}
