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

package govern

// State is the condition of the emulation as seen by the debugger and the
// run loops in the hardware package.
type State int

// EmulatorStart is the zero value and is never returned to. Initialising
// covers the attachment of a cartridge and causes the hardware run loops to
// return.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Running
	Ending
)

var stateNames = [...]string{"EmulatorStart", "Initialising", "Paused", "Running", "Ending"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}
