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

// Package terminal defines the operations required for command-line
// interaction with the debugger.
//
// The Terminal interface is implemented by the plainterm and colorterm
// sub-packages. The plainterm package offers no special features and is
// suitable for use with pipes and redirected input. The colorterm package
// puts the terminal into cbreak mode and offers command history, line
// editing, tab completion and coloured output.
//
// The commandline sub-package contains the tokeniser used by the debugger
// and an implementation of the TabCompletion interface.
package terminal
