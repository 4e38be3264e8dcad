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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern is retained and can be used to identify the error later with
// the Is() and Has() functions:
//
//	e := curated.Errorf("cartridge: %v", curated.Errorf(cartridge.ChecksumError, 0x01, 0x02))
//
//	curated.Is(e, "cartridge: %v")           // true
//	curated.Is(e, cartridge.ChecksumError)   // false
//	curated.Has(e, cartridge.ChecksumError)  // true
//
// Sentinel errors in GopherDMG are string constants holding the pattern. They
// live alongside the code that raises them.
//
// The Error() implementation normalises the error chain so that adjacent
// duplicate parts are removed. Chains are thought of as parts separated by
// the sub-string ": ". This means that a function can wrap an error with its
// own package name without worrying whether the callee has already done so:
//
//	cartridge: cartridge: unsupported RAM size code (0x09)
//
// is reported as:
//
//	cartridge: unsupported RAM size code (0x09)
package curated
