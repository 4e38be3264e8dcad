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

package hardware

// Step the emulation by one CPU instruction. Returns the number of clock
// cycles consumed, including the cycles consumed by any interrupt dispatch.
func (con *Console) Step() (int, error) {
	cycles, err := con.CPU.Step()

	con.frameCycles += cycles
	if con.frameCycles >= CyclesPerFrame {
		con.frameCycles -= CyclesPerFrame
		con.FrameNum++
	}

	return cycles, err
}

// FrameCycles returns the number of clock cycles consumed so far in the
// current frame.
func (con *Console) FrameCycles() int {
	return con.frameCycles
}
