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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/execution"
	"github.com/jetsetilly/gopherdmg/test"
)

type mem []uint8

func (m mem) Read(address uint16) uint8 {
	if int(address) >= len(m) {
		return 0xff
	}
	return m[address]
}

func TestDecode(t *testing.T) {
	m := mem{
		0x00,       // NOP
		0x3e, 0x42, // LD A,n8
		0xc3, 0x50, 0x01, // JP a16
		0x18, 0xfe, // JR e8
		0xe0, 0x40, // LDH (a8),A
		0xe8, 0xfc, // ADD SP,e8
		0xcb, 0x7c, // BIT 7,H
		0xd3, // illegal
	}

	var addr uint16
	expected := []string{
		"0000 NOP",
		"0001 LD A,$42",
		"0003 JP $0150",
		"0006 JR $0006",
		"0008 LDH ($ff40),A",
		"000a ADD SP,-4",
		"000c BIT 7,H",
		"000e ??",
	}

	for _, e := range expected {
		r := execution.Decode(m, addr)
		test.ExpectEquality(t, r.String(), e)
		addr += uint16(r.ByteCount)
	}

	test.ExpectEquality(t, int(addr), len(m))
}

func TestHaltedResult(t *testing.T) {
	r := execution.Result{Address: 0x0150, Halted: true}
	test.ExpectEquality(t, r.String(), "0150 (halted)")
	r.Reset()
	test.ExpectEquality(t, r.String(), "0000 ??")
}
