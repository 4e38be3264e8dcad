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
	"strings"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
)

// RegisterNames lists the names accepted by ReadRegister() and
// WriteRegister().
var RegisterNames = []string{
	"A", "F", "B", "C", "D", "E", "H", "L",
	"AF", "BC", "DE", "HL", "SP", "PC",
}

// ReadRegister returns the value of the named register or register pair. The
// name is not case sensitive. Returns false if the name is not recognised.
func (mc *CPU) ReadRegister(name string) (uint16, bool) {
	switch strings.ToUpper(name) {
	case "A":
		return uint16(mc.A.Value()), true
	case "F":
		return uint16(mc.F.Value()), true
	case "B":
		return uint16(mc.B.Value()), true
	case "C":
		return uint16(mc.C.Value()), true
	case "D":
		return uint16(mc.D.Value()), true
	case "E":
		return uint16(mc.E.Value()), true
	case "H":
		return uint16(mc.H.Value()), true
	case "L":
		return uint16(mc.L.Value()), true
	case "AF":
		return mc.AF(), true
	case "BC":
		return mc.BC(), true
	case "DE":
		return mc.DE(), true
	case "HL":
		return mc.HL(), true
	case "SP":
		return mc.SP.Address(), true
	case "PC":
		return mc.PC.Address(), true
	}
	return 0, false
}

// WriteRegister sets the value of the named register or register pair. The
// value is truncated to the width of the register. Returns false if the name
// is not recognised.
func (mc *CPU) WriteRegister(name string, v uint16) bool {
	hi, lo := registers.Split(v)

	switch strings.ToUpper(name) {
	case "A":
		mc.A.Load(lo)
	case "F":
		mc.F.Load(lo)
	case "B":
		mc.B.Load(lo)
	case "C":
		mc.C.Load(lo)
	case "D":
		mc.D.Load(lo)
	case "E":
		mc.E.Load(lo)
	case "H":
		mc.H.Load(lo)
	case "L":
		mc.L.Load(lo)
	case "AF":
		mc.A.Load(hi)
		mc.F.Load(lo)
	case "BC":
		mc.writeReg16(0, v)
	case "DE":
		mc.writeReg16(1, v)
	case "HL":
		mc.writeReg16(2, v)
	case "SP":
		mc.SP.Load(v)
	case "PC":
		mc.PC.Load(v)
	default:
		return false
	}

	return true
}
