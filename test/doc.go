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

// Package test contains helper functions to remove common boilerplate from
// the tests of the other packages.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. A nil value is considered a success. This is because
// a nil error indicates that no error occurred.
//
// ExpectEquality() and ExpectInequality() compare values of comparable types.
// DemandEquality() is the same as ExpectEquality() except that the test is
// stopped immediately on failure.
//
// ExpectPanic() runs a function and expects it to panic. Panics are the way
// GopherDMG signals that an emulation invariant has been broken.
//
// CompareWriter implements io.Writer and is used to capture and test output.
package test
