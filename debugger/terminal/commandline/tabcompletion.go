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

package commandline

import (
	"slices"
	"strings"
)

// Commands lists the command names known to the tab completer, along with
// the keywords accepted as the first argument of each command.
type Commands map[string][]string

// TabCompletion keeps track of the most recent tab completion attempt. It
// implements the terminal.TabCompletion interface.
type TabCompletion struct {
	commands Commands

	options    []string
	lastOption int

	// lastGuess is the last string returned by Complete(). we use it to decide
	// whether to start a new completion session or to cycle through the
	// current options
	lastGuess string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(commands Commands) *TabCompletion {
	return &TabCompletion{
		commands: commands,
		options:  make([]string, 0, len(commands)),
	}
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match in the list of allowed strings. Calling
// Complete() with the string it last returned will cycle through the
// alternative completions.
func (tc *TabCompletion) Complete(input string) string {
	p := tokeniseInput(input)
	if len(p) == 0 {
		return input
	}

	if input == tc.lastGuess {
		// if there was only one option in the option list then there is
		// nothing to cycle through
		if len(tc.options) <= 1 {
			return input
		}

		// shorten the input by one word (getting rid of the last completion
		// effort) and step to the next option
		p = p[:len(p)-1]
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
	} else {
		if strings.HasSuffix(input, " ") {
			return input
		}

		// this is a new completion session
		tc.options = tc.options[:0]
		tc.lastOption = 0

		trigger := strings.ToUpper(p[len(p)-1])

		switch len(p) {
		case 1:
			for k := range tc.commands {
				if strings.HasPrefix(k, trigger) {
					tc.options = append(tc.options, k)
				}
			}
		case 2:
			for _, k := range tc.commands[strings.ToUpper(p[0])] {
				if strings.HasPrefix(k, trigger) {
					tc.options = append(tc.options, k)
				}
			}
		}

		// no completion options. return input unchanged
		if len(tc.options) == 0 {
			return input
		}

		slices.Sort(tc.options)
		p = p[:len(p)-1]
	}

	// add guessed word to end of input-list and rejoin to form the output
	p = append(p, tc.options[tc.lastOption])
	tc.lastGuess = strings.Join(p, " ") + " "

	return tc.lastGuess
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.lastGuess = ""
}
