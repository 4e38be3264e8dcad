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

// Package debugger implements a command-line debugger for the emulated
// console. The debugger reads commands from a terminal.Terminal
// implementation, one line at a time, and acts on them until the QUIT
// command is given or the input is exhausted. More than one command can be
// given on a single line by separating them with a semi-colon.
//
// The emulation only moves forward in response to the STEP and RUN commands
// (or a script that does the same). The RUN command can be stopped by a
// breakpoint or by an interrupt signal from the operating system (ctrl-c).
//
// The HELP command lists all commands. HELP followed by a command name gives
// a short description of that command.
package debugger
