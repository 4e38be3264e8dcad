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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// A command line such as:
//
//	gopherdmg DEBUG -strict tetris.gb
//
// is parsed in two stages. The first stage finds the mode (DEBUG) from the
// list of sub-modes given with AddSubModes(). The second stage, after a call
// to NewMode(), parses the flags and arguments for the mode:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		...
//	}
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		strict := md.AddBool("strict", false, "illegal opcodes are fatal")
//		...
//	}
//
// The first sub-mode in the list is the default mode and is selected if the
// first argument is not a listed sub-mode. Sub-mode comparisons are case
// insensitive.
//
// Help is printed automatically to the Output writer when the -help flag is
// found. The ParseHelp result indicates that this has happened.
package modalflag
