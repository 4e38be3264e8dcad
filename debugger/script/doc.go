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

// Package script runs Lua scripts that drive the emulation. The Lua
// environment is provided by "github.com/yuin/gopher-lua" and the following
// functions are added to the global table:
//
//	step([n])         run n instructions (default 1). returns the clock cycles consumed
//	frame([n])        run n frames (default 1). returns the current frame number
//	peek(addr)        read a byte from the address space
//	poke(addr, v)     write a byte to the address space
//	reg(name)         value of the named CPU register (A, F, BC, HL, SP, PC, etc.)
//	press(key)        press a joypad key (RIGHT, LEFT, UP, DOWN, A, B, SELECT, START)
//	release(key)      release a joypad key
//	reset()           reset the console
//	command(s)        run a debugger command, if the script is running in the debugger
//	print(...)        print to the script output
//
// For example, a script to run a test ROM for sixty frames and report the
// contents of the A register:
//
//	frame(60)
//	print(string.format("A=%02x", reg("A")))
package script
