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

// Package prefs facilitates the storage of preferential values in the
// GopherDMG system. It is intended to be used by other packages to manage
// the preferences of that package.
//
// Values are of one of the types defined in this package: Bool, Int or String.
// Each of these types satisfy the pref interface. A Disk instance collects
// preference values under a key and saves or loads them from a file on disk.
//
//	var strict prefs.Bool
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("hardware.strictopcodes", &strict)
//	dsk.Load()
//
// The file format is a plain text file with one preference per line:
//
//	hardware.strictopcodes :: true
//
// Entries in a prefs file which the Disk instance does not know about are
// preserved when the file is saved. This means that a program which only
// deals with some preferences does not destroy the preferences of another.
//
// The command line stack allows preferences to be overridden for a single
// session. A prefs string of the form "key::value; key::value" is pushed with
// PushCommandLineStack(). When a Disk instance is loaded, values on the top of
// the stack take priority over values in the file.
package prefs
