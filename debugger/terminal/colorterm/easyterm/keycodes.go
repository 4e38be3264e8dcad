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

package easyterm

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt      = 3  // end-of-text character
	KeyEndOfFile      = 4  // end-of-transmission character
	KeySuspend        = 26 // substitute character
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 8
	KeyDelete         = 127
)

// list of ASCII code for characters that can follow KeyEsc.
const (
	EscCursor = '['
	EscSS3    = 'O'
)

// list of ASCII code for characters that can follow EscCursor.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	CursorHome     = 'H'
	CursorEnd      = 'F'

	// the delete key is sent as ESC [ 3 ~
	CursorDelete = '3'
	CursorTilde  = '~'
)
