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

// Package hardware is the base package for the console emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and contains references to
// the CPU and to the address space. Peripherals are reached through the
// address space.
//
// The Step() function runs the emulation for a single CPU instruction.
// RunForFrameCount() and Run() are convenience functions that run the
// emulation until a condition is met. A frame is 70224 clock cycles.
package hardware
