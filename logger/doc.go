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

// Package logger is the central log repository for GopherDMG. There is a
// single central log which is accessed through the package level functions.
// Log() and Logf() add entries to the central log. Write() and Tail() output
// the log to an io.Writer.
//
// Consecutive entries with the same tag and detail are collapsed into one
// entry with a repeat count. The central log has a maximum number of entries
// after which the oldest entries are discarded.
//
// Every logging request is accompanied by a Permission value. The emulation
// uses this to prevent logging while in states where logging would be
// misleading (for example, while a script is rewinding the machine). The Allow
// value should be used when there is no reason to prohibit logging.
//
// Independent instances of the log can be created with NewLogger(). This is
// used in the test suite of this package.
package logger
