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
	"fmt"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/execution"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinel errors.
const (
	IllegalOpcode  = "cpu: illegal opcode (%02x) at %04x"
	InvalidIndex   = "cpu: invalid %s index (%d)"
	InvalidOperand = "cpu: invalid operand (%d) for %s"
)

// the number of clock cycles in one machine cycle.
const machineCycle = 4

// CPU implements the SM83 processor.
type CPU struct {
	prefs *preferences.Preferences
	mem   bus.Device

	A registers.Data
	F registers.Flags
	B registers.Data
	C registers.Data
	D registers.Data
	E registers.Data
	H registers.Data
	L registers.Data

	PC registers.Word
	SP registers.Word

	// interrupt master enable
	IME bool

	// EI takes effect after the following instruction. the value counts down
	// at the end of every step and IME is set when it reaches zero
	imeDelay int

	// the CPU has executed a HALT or STOP instruction and is waiting for an
	// interrupt
	Halted bool

	// the number of clock cycles consumed in the current step
	cycles int

	// the result of the most recent step
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The prefs
// argument can be nil, in which case default preferences are used.
func NewCPU(prefs *preferences.Preferences, mem bus.Device) *CPU {
	if prefs == nil {
		prefs = preferences.NewUnsavedPreferences()
	}

	mc := &CPU{
		prefs: prefs,
		mem:   mem,
		A:     registers.NewData(0, "A"),
		B:     registers.NewData(0, "B"),
		C:     registers.NewData(0, "C"),
		D:     registers.NewData(0, "D"),
		E:     registers.NewData(0, "E"),
		H:     registers.NewData(0, "H"),
		L:     registers.NewData(0, "L"),
		PC:    registers.NewWord(0, "PC"),
		SP:    registers.NewWord(0, "SP"),
	}
	mc.Reset()

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s%s %s=%s%s %s=%s%s %s=%v %s=%v",
		mc.PC.Label(), mc.PC, mc.SP.Label(), mc.SP,
		mc.A.Label(), mc.A, mc.F.Label(), mc.F,
		"BC", mc.B, mc.C, "DE", mc.D, mc.E, "HL", mc.H, mc.L,
		"IME", mc.IME, "halted", mc.Halted)
}

// Reset the CPU to the state it is in after the boot ROM has completed.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.A.Load(0x01)
	mc.F.Load(0xb0)
	mc.B.Load(0x00)
	mc.C.Load(0x13)
	mc.D.Load(0x00)
	mc.E.Load(0xd8)
	mc.H.Load(0x01)
	mc.L.Load(0x4d)
	mc.SP.Load(0xfffe)
	mc.PC.Load(0x0100)
	mc.IME = false
	mc.imeDelay = 0
	mc.Halted = false
}

// Step executes a single instruction. Returns the number of clock cycles
// consumed by the instruction and any interrupt dispatched after it.
//
// The only error returned is the IllegalOpcode error when the StrictOpcodes
// preference is set.
func (mc *CPU) Step() (int, error) {
	mc.cycles = 0
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	var err error

	if mc.Halted {
		mc.internal()
		mc.LastResult.Halted = true
	} else {
		err = mc.execute()
	}

	// devices never observe the CPU mid-instruction
	mc.mem.Update(mc.cycles)

	if mc.imeDelay > 0 {
		mc.imeDelay--
		if mc.imeDelay == 0 {
			mc.IME = true
		}
	}

	mc.serviceInterrupt()

	mc.LastResult.Cycles = mc.cycles
	mc.LastResult.Final = true

	return mc.cycles, err
}

// Interrupts returns the interrupts that are both requested and enabled.
func (mc *CPU) Interrupts() bus.Interrupt {
	return bus.Interrupt(mc.mem.Read(memorymap.IF)&mc.mem.Read(memorymap.IER)) & bus.AllInterrupts
}

// serviceInterrupt is called at the end of every step.
func (mc *CPU) serviceInterrupt() {
	pending := mc.Interrupts()
	if pending == 0 {
		return
	}

	// a pending interrupt ends the halted state even if interrupts are
	// disabled
	mc.Halted = false

	if !mc.IME {
		return
	}

	line, vector, _ := pending.Highest()
	mc.mem.Write(memorymap.IF, mc.mem.Read(memorymap.IF)&^uint8(line))
	mc.IME = false
	mc.imeDelay = 0

	start := mc.cycles
	mc.internal()
	mc.internal()
	mc.push16(mc.PC.Address())
	mc.internal()
	mc.PC.Load(vector)

	mc.mem.Update(mc.cycles - start)
	mc.LastResult.Interrupt = vector
}

// execute the instruction at the program counter.
func (mc *CPU) execute() error {
	opcode := mc.fetch8()
	defn := &instructions.Definitions[opcode]
	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = 1

	if defn.Operator == instructions.Illegal {
		if mc.prefs.StrictOpcodes.Get().(bool) {
			return curated.Errorf(IllegalOpcode, opcode, mc.LastResult.Address)
		}
		logger.Logf(logger.Allow, "cpu", "illegal opcode (%02x) at %04x", opcode, mc.LastResult.Address)
		return nil
	}

	if defn.Operator == instructions.Prefix {
		opcode = mc.fetch8()
		defn = &instructions.PrefixedDefinitions[opcode]
		mc.LastResult.Defn = defn
		mc.LastResult.ByteCount = 2
		mc.executePrefixed(defn, opcode)
		return nil
	}

	mc.executePrimary(defn, opcode)
	return nil
}

// read8 reads a byte from memory. +1 machine cycle.
func (mc *CPU) read8(address uint16) uint8 {
	mc.cycles += machineCycle
	return mc.mem.Read(address)
}

// write8 writes a byte to memory. +1 machine cycle.
func (mc *CPU) write8(address uint16, data uint8) {
	mc.cycles += machineCycle
	mc.mem.Write(address, data)
}

// internal operation with no memory access. +1 machine cycle.
func (mc *CPU) internal() {
	mc.cycles += machineCycle
}

// fetch8 reads the byte at the program counter and advances the program
// counter.
func (mc *CPU) fetch8() uint8 {
	v := mc.read8(mc.PC.Address())
	mc.PC.Add(1)
	return v
}

// fetch16 reads the little-endian word at the program counter and advances
// the program counter. the word is recorded as the instruction data.
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch8()
	hi := mc.fetch8()
	v := registers.Pair(hi, lo)
	mc.LastResult.InstructionData = v
	mc.LastResult.ByteCount += 2
	return v
}

// fetchData8 is the same as fetch8 but the byte is recorded as the
// instruction data.
func (mc *CPU) fetchData8() uint8 {
	v := mc.fetch8()
	mc.LastResult.InstructionData = uint16(v)
	mc.LastResult.ByteCount++
	return v
}

func (mc *CPU) push16(v uint16) {
	hi, lo := registers.Split(v)
	mc.SP.Add(-1)
	mc.write8(mc.SP.Address(), hi)
	mc.SP.Add(-1)
	mc.write8(mc.SP.Address(), lo)
}

func (mc *CPU) pop16() uint16 {
	lo := mc.read8(mc.SP.Address())
	mc.SP.Add(1)
	hi := mc.read8(mc.SP.Address())
	mc.SP.Add(1)
	return registers.Pair(hi, lo)
}
