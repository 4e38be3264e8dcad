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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/test"
)

// flatMemory is a simple 64k address space with no memory mapped devices.
type flatMemory struct {
	data    [0x10000]uint8
	updated int
}

func (m *flatMemory) Read(address uint16) uint8 {
	return m.data[address]
}

func (m *flatMemory) Write(address uint16, data uint8) {
	m.data[address] = data
}

func (m *flatMemory) Update(cycles int) {
	m.updated += cycles
}

// load the program into memory at the reset address.
func (m *flatMemory) load(program ...uint8) {
	copy(m.data[0x0100:], program)
}

func newTestCPU(program ...uint8) (*cpu.CPU, *flatMemory) {
	mem := &flatMemory{}
	mem.load(program...)
	return cpu.NewCPU(nil, mem), mem
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.Step()
	test.DemandEquality(t, err, nil)
	return cycles
}

func TestReset(t *testing.T) {
	mc, _ := newTestCPU()
	test.ExpectEquality(t, mc.AF(), uint16(0x01b0))
	test.ExpectEquality(t, mc.BC(), uint16(0x0013))
	test.ExpectEquality(t, mc.DE(), uint16(0x00d8))
	test.ExpectEquality(t, mc.HL(), uint16(0x014d))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xfffe))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0100))
	test.ExpectEquality(t, mc.IME, false)
	test.ExpectEquality(t, mc.String(), "PC=0100 SP=fffe A=01 F=ZnHC BC=0013 DE=00d8 HL=014d IME=false halted=false")
}

func TestNOP(t *testing.T) {
	mc, mem := newTestCPU(0x00)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0101))
	test.ExpectEquality(t, mem.updated, 4)
	test.ExpectEquality(t, mc.LastResult.String(), "0100 NOP")
	test.ExpectSuccess(t, mc.LastResult.Final)
}

// the cycles counted by the CPU must agree with the cycles in the
// instruction definition for every opcode.
func TestCycleCounting(t *testing.T) {
	for _, flags := range []uint8{0x00, 0xf0} {
		for op := range 256 {
			defn := instructions.Definitions[op]
			if defn.Operator == instructions.Illegal || defn.Operator == instructions.Prefix {
				continue
			}

			mc, mem := newTestCPU(uint8(op))
			mc.F.Load(flags)
			cycles := step(t, mc)

			expected := defn.Cycles
			if defn.IsConditional() {
				// with no flags set NZ and NC are met. with all flags set Z
				// and C are met
				taken := (op>>3)&0x01 == 0
				if flags == 0xf0 {
					taken = !taken
				}
				if !taken {
					expected = defn.CyclesNotTaken
				}
			}

			if !test.ExpectEquality(t, cycles, expected) {
				t.Logf("opcode %02x %s (flags %02x)", op, defn.Mnemonic, flags)
			}
			test.ExpectEquality(t, mem.updated, cycles)
			test.ExpectEquality(t, mc.LastResult.ByteCount, defn.Bytes)
		}
	}

	for op := range 256 {
		defn := instructions.PrefixedDefinitions[op]
		mc, _ := newTestCPU(instructions.PrefixOpCode, uint8(op))
		if !test.ExpectEquality(t, step(t, mc), defn.Cycles) {
			t.Logf("opcode cb %02x %s", op, defn.Mnemonic)
		}
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x0102))
	}
}

func TestIllegalOpcode(t *testing.T) {
	for _, op := range instructions.IllegalOpCodes {
		mc, _ := newTestCPU(op)
		test.ExpectEquality(t, step(t, mc), 4)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x0101))
	}

	// strict mode
	prefs := preferences.NewUnsavedPreferences()
	prefs.StrictOpcodes.Set(true)
	mem := &flatMemory{}
	mem.load(0xd3)
	mc := cpu.NewCPU(prefs, mem)
	_, err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.IllegalOpcode))
}

func TestInvalidIndex(t *testing.T) {
	mc, _ := newTestCPU()
	test.ExpectPanic(t, func() { mc.ReadReg8(8) })
	test.ExpectPanic(t, func() { mc.WriteReg8(8, 0) })
	test.ExpectPanic(t, func() { mc.ReadReg16(4) })
	test.ExpectPanic(t, func() { mc.Condition(4) })

	// index 6 is a memory access through HL and does not panic
	test.ExpectEquality(t, mc.ReadReg8(6), uint8(0x00))
}

func TestInterruptPriority(t *testing.T) {
	mc, mem := newTestCPU(0x00)
	mem.data[memorymap.IF] = 0x03
	mem.data[memorymap.IER] = 0x03
	mc.IME = true

	// NOP followed by dispatch of the vblank interrupt
	test.ExpectEquality(t, step(t, mc), 24)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0040))
	test.ExpectEquality(t, mem.data[memorymap.IF], uint8(0x02))
	test.ExpectEquality(t, mc.IME, false)
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xfffc))
	test.ExpectEquality(t, mem.data[0xfffd], uint8(0x01))
	test.ExpectEquality(t, mem.data[0xfffc], uint8(0x01))
	test.ExpectEquality(t, mc.LastResult.Interrupt, uint16(0x0040))
	test.ExpectEquality(t, mem.updated, 24)

	// with IME still false the remaining interrupt is not serviced
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0041))

	mc.IME = true
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0048))
	test.ExpectEquality(t, mem.data[memorymap.IF], uint8(0x00))
}

func TestEnableInterruptDelay(t *testing.T) {
	// EI; NOP
	mc, mem := newTestCPU(0xfb, 0x00)
	mem.data[memorymap.IF] = 0x04
	mem.data[memorymap.IER] = 0x04

	// no interrupt immediately after EI
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.IME, false)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0101))

	// interrupt serviced after the following instruction
	test.ExpectEquality(t, step(t, mc), 24)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0050))

	// EI; DI
	mc, mem = newTestCPU(0xfb, 0xf3, 0x00)
	mem.data[memorymap.IF] = 0x04
	mem.data[memorymap.IER] = 0x04
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.IME, false)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0103))

	// RETI enables interrupts immediately
	mc, mem = newTestCPU(0xd9)
	mem.data[0xfffe] = 0x00
	mem.data[0xffff] = 0x02
	mc.SP.Load(0xfffe)
	step(t, mc)
	test.ExpectEquality(t, mc.IME, true)
}

func TestHalt(t *testing.T) {
	// HALT; INC A
	mc, mem := newTestCPU(0x76, 0x3c)
	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)

	// halted CPU consumes one machine cycle per step
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0101))
	test.ExpectSuccess(t, mc.LastResult.Halted)

	// pending interrupt wakes the CPU even when IME is false
	mem.data[memorymap.IF] = 0x10
	mem.data[memorymap.IER] = 0x10
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0101))

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))

	// with IME true the interrupt is serviced
	mc, mem = newTestCPU(0x76)
	mc.IME = true
	step(t, mc)
	mem.data[memorymap.IF] = 0x01
	mem.data[memorymap.IER] = 0x01
	test.ExpectEquality(t, step(t, mc), 24)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0040))
}

func TestFlagsLowNibble(t *testing.T) {
	// LD BC,$ffff; PUSH BC; POP AF
	mc, _ := newTestCPU(0x01, 0xff, 0xff, 0xc5, 0xf1)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.AF(), uint16(0xfff0))
	test.ExpectEquality(t, mc.F.Value()&0x0f, uint8(0))
}

func TestLoads(t *testing.T) {
	mc, mem := newTestCPU(
		0x21, 0x00, 0xc0, // LD HL,$c000
		0x3e, 0x42, // LD A,$42
		0x22,       // LD (HL+),A
		0x32,       // LD (HL-),A
		0x36, 0x99, // LD (HL),$99
		0x46,             // LD B,(HL)
		0xea, 0x10, 0xc0, // LD (a16),A
		0x08, 0x20, 0xc0, // LD (a16),SP
		0xe0, 0x80, // LDH (a8),A
		0xf9, // LD SP,HL
	)
	for range 10 {
		step(t, mc)
	}
	test.ExpectEquality(t, mem.data[0xc000], uint8(0x99))
	test.ExpectEquality(t, mem.data[0xc001], uint8(0x42))
	test.ExpectEquality(t, mc.HL(), uint16(0xc000))
	test.ExpectEquality(t, mc.B.Value(), uint8(0x99))
	test.ExpectEquality(t, mem.data[0xc010], uint8(0x42))
	test.ExpectEquality(t, mem.data[0xc020], uint8(0xfe))
	test.ExpectEquality(t, mem.data[0xc021], uint8(0xff))
	test.ExpectEquality(t, mem.data[0xff80], uint8(0x42))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xc000))
}

func TestArithmetic(t *testing.T) {
	mc, _ := newTestCPU(
		0x3e, 0x15, // LD A,$15
		0xc6, 0x27, // ADD A,$27
		0x27,       // DAA
		0xd6, 0x42, // SUB $42
		0xb7, // OR A
	)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.F.String(), "ZNhc")
	step(t, mc)
	test.ExpectEquality(t, mc.F.String(), "Znhc")

	// ADD HL,HL and ADD SP,e
	mc, _ = newTestCPU(
		0x21, 0x00, 0x88, // LD HL,$8800
		0x29,       // ADD HL,HL
		0xe8, 0xfe, // ADD SP,-2
		0xf8, 0x01, // LD HL,SP+1
	)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.HL(), uint16(0x1000))
	test.ExpectSuccess(t, mc.F.Carry)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xfffc))
	test.ExpectEquality(t, mc.F.String(), "znHC")
	step(t, mc)
	test.ExpectEquality(t, mc.HL(), uint16(0xfffd))
	test.ExpectEquality(t, mc.F.String(), "znhc")
}

func TestRotateAccumulatorClearsZero(t *testing.T) {
	// XOR A; RLCA
	mc, _ := newTestCPU(0xaf, 0x07)
	step(t, mc)
	test.ExpectSuccess(t, mc.F.Zero)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectFailure(t, mc.F.Zero)

	// XOR A; RLC A
	mc, _ = newTestCPU(0xaf, 0xcb, 0x07)
	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.F.Zero)
}

func TestPrefixed(t *testing.T) {
	mc, mem := newTestCPU(
		0x21, 0x00, 0xc0, // LD HL,$c000
		0xcb, 0x36, // SWAP (HL)
		0xcb, 0xfe, // SET 7,(HL)
		0xcb, 0x7e, // BIT 7,(HL)
		0xcb, 0x86, // RES 0,(HL)
	)
	mem.data[0xc000] = 0x1f
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mem.data[0xc000], uint8(0xf1))
	step(t, mc)
	test.ExpectEquality(t, mem.data[0xc000], uint8(0xf1))
	step(t, mc)
	test.ExpectFailure(t, mc.F.Zero)
	test.ExpectSuccess(t, mc.F.HalfCarry)
	step(t, mc)
	test.ExpectEquality(t, mem.data[0xc000], uint8(0xf0))
}

func TestFlow(t *testing.T) {
	mc, mem := newTestCPU(
		0xcd, 0x00, 0x02, // CALL $0200
		0x18, 0xfe, // JR -2
	)
	mem.data[0x0200] = 0xc9 // RET

	test.ExpectEquality(t, step(t, mc), 24)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0200))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xfffc))

	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0103))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xfffe))

	// JR -2 loops forever
	test.ExpectEquality(t, step(t, mc), 12)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0103))

	// RST 38H
	mc, _ = newTestCPU(0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0038))

	// JP HL
	mc, _ = newTestCPU(0xe9)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x014d))
}
