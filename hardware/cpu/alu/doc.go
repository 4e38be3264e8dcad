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

// Package alu implements the arithmetic and logic operations of the SM83
// processor. Each function returns the result of the operation and the
// state of the flags register after the operation.
//
// Operations that leave some flags untouched (for example, INC leaves the
// carry flag as it was) take the current flags as an argument.
//
// The rotate functions set the zero flag according to the result. The short
// accumulator forms of the rotate instructions (RLCA, RRCA, RLA, RRA) always
// clear the zero flag. That is the responsibility of the caller.
package alu
