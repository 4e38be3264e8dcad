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

// Package commandline divides debugger input into tokens and offers tab
// completion over a fixed list of commands.
//
// Commands are described with a Commands map. The key is the command name and
// the value is the list of keywords accepted as the first argument. An empty
// list means the command takes no keywords, although it may still take free
// arguments such as addresses or filenames.
//
//	cmds := commandline.Commands{
//		"STEP":  nil,
//		"BREAK": {"LIST", "CLEAR"},
//	}
//	tc := commandline.NewTabCompletion(cmds)
//	tc.Complete("BR")       // "BREAK "
//	tc.Complete("BREAK c")  // "BREAK CLEAR "
package commandline
