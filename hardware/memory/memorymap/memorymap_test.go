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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestRegionsAreContiguous(t *testing.T) {
	var next int
	for _, r := range memorymap.Regions {
		test.ExpectEquality(t, int(r.Origin), next)
		next = int(r.Memtop) + 1
	}
	test.ExpectEquality(t, next, 0x10000)
}

func TestMapAddress(t *testing.T) {
	for _, r := range memorymap.Regions {
		test.ExpectEquality(t, memorymap.MapAddress(r.Origin), r.Area)
		test.ExpectEquality(t, memorymap.MapAddress(r.Memtop), r.Area)
	}
	test.ExpectEquality(t, memorymap.MapAddress(memorymap.IF), memorymap.IO)
	test.ExpectEquality(t, memorymap.MapAddress(memorymap.IER), memorymap.IE)
	test.ExpectEquality(t, memorymap.Regions[memorymap.HRAM].Size(), 0x7f)
	test.ExpectEquality(t, memorymap.Regions[memorymap.Echo].Size(), 0x1e00)
}
