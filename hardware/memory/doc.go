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

// Package memory implements the address space of the console. The Memory
// type routes every address to exactly one owning device by fixed,
// non-overlapping address ranges. It owns the work RAM, the high RAM and the
// interrupt request and interrupt enable registers.
//
// The work RAM is mirrored by the echo RAM area. Both areas address the same
// underlying bytes.
//
// Addresses that are not mapped to any device read as bus.OpenBus and
// writes to them are ignored.
//
// The DMA register starts a transfer of 160 bytes to the object attribute
// memory. The transfer completes immediately.
package memory
