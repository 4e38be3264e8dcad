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

// Definitions of the primary opcodes. Indexed by opcode.
var Definitions [256]Definition

// PrefixedDefinitions of the opcodes following the 0xcb prefix. Indexed by
// opcode.
var PrefixedDefinitions [256]Definition

// PrefixOpCode is the opcode that selects the PrefixedDefinitions table for
// the following byte.
const PrefixOpCode = 0xcb

// IllegalOpCodes is the list of primary opcodes with no assigned instruction.
var IllegalOpCodes = []uint8{0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd}

func def(op uint8, mnemonic string, bytes int, cycles int, operator Operator, operand Operand, source Operand) {
	Definitions[op] = Definition{
		OpCode:   op,
		Mnemonic: mnemonic,
		Bytes:    bytes,
		Cycles:   cycles,
		Operator: operator,
		Operand:  operand,
		Source:   source,
	}
}

func cond(op uint8, mnemonic string, bytes int, taken int, notTaken int, operator Operator, source Operand) {
	def(op, mnemonic, bytes, taken, operator, Condition, source)
	Definitions[op].CyclesNotTaken = notTaken
}

func prefixed(op uint8, mnemonic string, cycles int, operator Operator, source Operand) {
	PrefixedDefinitions[op] = Definition{
		OpCode:   op,
		Prefixed: true,
		Mnemonic: mnemonic,
		Bytes:    2,
		Cycles:   cycles,
		Operator: operator,
		Operand:  Reg8,
		Source:   source,
	}
}

// the additional cycles for an eight-bit register index that refers to
// memory rather than a register.
func memoryCost(idx int, cost int) int {
	if idx == 6 {
		return cost
	}
	return 0
}

var aluOperators = [8]struct {
	operator Operator
	mnemonic string
}{
	{Add, "ADD A,"},
	{Adc, "ADC A,"},
	{Sub, "SUB "},
	{Sbc, "SBC A,"},
	{And, "AND "},
	{Xor, "XOR "},
	{Or, "OR "},
	{Cp, "CP "},
}

var shiftOperators = [8]struct {
	operator Operator
	mnemonic string
}{
	{Rlc, "RLC "},
	{Rrc, "RRC "},
	{Rl, "RL "},
	{Rr, "RR "},
	{Sla, "SLA "},
	{Sra, "SRA "},
	{Swap, "SWAP "},
	{Srl, "SRL "},
}

func init() {
	for i := range Definitions {
		Definitions[i] = Definition{OpCode: uint8(i), Mnemonic: "??", Bytes: 1, Cycles: 4, Operator: Illegal}
	}

	def(0x00, "NOP", 1, 4, Nop, None, None)
	def(0x07, "RLCA", 1, 4, Rlca, RegA, None)
	def(0x0f, "RRCA", 1, 4, Rrca, RegA, None)
	def(0x17, "RLA", 1, 4, Rla, RegA, None)
	def(0x1f, "RRA", 1, 4, Rra, RegA, None)
	def(0x08, "LD (a16),SP", 3, 20, LoadWord, Absolute, RegSP)
	def(0x10, "STOP", 2, 4, Stop, None, None)
	def(0x18, "JR e8", 2, 12, Jr, None, Relative)
	def(0x27, "DAA", 1, 4, Daa, RegA, None)
	def(0x2f, "CPL", 1, 4, Cpl, RegA, None)
	def(0x37, "SCF", 1, 4, Scf, None, None)
	def(0x3f, "CCF", 1, 4, Ccf, None, None)
	def(0x76, "HALT", 1, 4, Halt, None, None)

	def(0x02, "LD (BC),A", 1, 8, Load, IndirectBC, RegA)
	def(0x12, "LD (DE),A", 1, 8, Load, IndirectDE, RegA)
	def(0x22, "LD (HL+),A", 1, 8, Load, IndirectHLInc, RegA)
	def(0x32, "LD (HL-),A", 1, 8, Load, IndirectHLDec, RegA)
	def(0x0a, "LD A,(BC)", 1, 8, Load, RegA, IndirectBC)
	def(0x1a, "LD A,(DE)", 1, 8, Load, RegA, IndirectDE)
	def(0x2a, "LD A,(HL+)", 1, 8, Load, RegA, IndirectHLInc)
	def(0x3a, "LD A,(HL-)", 1, 8, Load, RegA, IndirectHLDec)

	for i := range 4 {
		b := uint8(i << 4)
		rr := Reg16Names[i]
		def(0x01|b, "LD "+rr+",n16", 3, 12, LoadWord, Reg16, Immediate16)
		def(0x03|b, "INC "+rr, 1, 8, IncWord, Reg16, None)
		def(0x0b|b, "DEC "+rr, 1, 8, DecWord, Reg16, None)
		def(0x09|b, "ADD HL,"+rr, 1, 8, AddWord, RegHL, Reg16)
		def(0xc1|b, "POP "+Reg16StackNames[i], 1, 12, Pop, Reg16Stack, None)
		def(0xc5|b, "PUSH "+Reg16StackNames[i], 1, 16, Push, Reg16Stack, None)
	}

	for i := range 4 {
		b := uint8(i << 3)
		cc := ConditionNames[i]
		cond(0x20|b, "JR "+cc+",e8", 2, 12, 8, Jr, Relative)
		cond(0xc0|b, "RET "+cc, 1, 20, 8, Ret, None)
		cond(0xc2|b, "JP "+cc+",a16", 3, 16, 12, Jp, Immediate16)
		cond(0xc4|b, "CALL "+cc+",a16", 3, 24, 12, Call, Immediate16)
	}

	for i := range 8 {
		b := uint8(i << 3)
		r := Reg8Names[i]
		def(0x04|b, "INC "+r, 1, 4+memoryCost(i, 8), Inc, Reg8Upper, None)
		def(0x05|b, "DEC "+r, 1, 4+memoryCost(i, 8), Dec, Reg8Upper, None)
		def(0x06|b, "LD "+r+",n8", 2, 8+memoryCost(i, 4), Load, Reg8Upper, Immediate8)
		def(0xc6|b, aluOperators[i].mnemonic+"n8", 2, 8, aluOperators[i].operator, RegA, Immediate8)
		def(0xc7|b, fmt.Sprintf("RST %02XH", i*8), 1, 16, Rst, None, Vector)
	}

	for dst := range 8 {
		for src := range 8 {
			op := uint8(0x40 | dst<<3 | src)
			if op == 0x76 {
				continue
			}
			c := 4 + memoryCost(dst, 4) + memoryCost(src, 4)
			def(op, "LD "+Reg8Names[dst]+","+Reg8Names[src], 1, c, Load, Reg8Upper, Reg8)
		}
	}

	for i, o := range aluOperators {
		for src := range 8 {
			op := uint8(0x80 | i<<3 | src)
			def(op, o.mnemonic+Reg8Names[src], 1, 4+memoryCost(src, 4), o.operator, RegA, Reg8)
		}
	}

	def(0xc3, "JP a16", 3, 16, Jp, None, Immediate16)
	def(0xc9, "RET", 1, 16, Ret, None, None)
	def(0xd9, "RETI", 1, 16, Reti, None, None)
	def(0xcb, "PREFIX", 1, 4, Prefix, None, None)
	def(0xcd, "CALL a16", 3, 24, Call, None, Immediate16)
	def(0xe0, "LDH (a8),A", 2, 12, Load, HighImmediate, RegA)
	def(0xf0, "LDH A,(a8)", 2, 12, Load, RegA, HighImmediate)
	def(0xe2, "LD (C),A", 1, 8, Load, HighC, RegA)
	def(0xf2, "LD A,(C)", 1, 8, Load, RegA, HighC)
	def(0xe8, "ADD SP,e8", 2, 16, AddOffset, RegSP, Relative)
	def(0xe9, "JP HL", 1, 4, Jp, None, RegHL)
	def(0xea, "LD (a16),A", 3, 16, Load, Absolute, RegA)
	def(0xfa, "LD A,(a16)", 3, 16, Load, RegA, Absolute)
	def(0xf3, "DI", 1, 4, Di, None, None)
	def(0xfb, "EI", 1, 4, Ei, None, None)
	def(0xf8, "LD HL,SP+e8", 2, 12, LoadOffset, RegHL, Relative)
	def(0xf9, "LD SP,HL", 1, 8, LoadWord, RegSP, RegHL)

	for i, o := range shiftOperators {
		for r := range 8 {
			op := uint8(i<<3 | r)
			prefixed(op, o.mnemonic+Reg8Names[r], 8+memoryCost(r, 8), o.operator, None)
		}
	}

	for b := range 8 {
		for r := range 8 {
			op := uint8(b<<3 | r)
			arg := fmt.Sprintf("%d,%s", b, Reg8Names[r])
			prefixed(0x40|op, "BIT "+arg, 8+memoryCost(r, 4), Bit, BitIndex)
			prefixed(0x80|op, "RES "+arg, 8+memoryCost(r, 8), Res, BitIndex)
			prefixed(0xc0|op, "SET "+arg, 8+memoryCost(r, 8), Set, BitIndex)
		}
	}
}
