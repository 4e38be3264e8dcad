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

// exported for testing only.

func (mc *CPU) ReadReg8(idx uint8) uint8 {
	return mc.readReg8(idx)
}

func (mc *CPU) WriteReg8(idx uint8, v uint8) {
	mc.writeReg8(idx, v)
}

func (mc *CPU) ReadReg16(idx uint8) uint16 {
	return mc.readReg16(idx)
}

func (mc *CPU) Condition(idx uint8) bool {
	return mc.condition(idx)
}
