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
	"fmt"
	"strings"
)

// Tokens is a debugger command line divided into words. Hex values written
// with a $ or & prefix are normalised to the 0x prefix. The tokens are
// consumed in order with Get().
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// IsEnd returns true if every token has been consumed.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remainder returns the unconsumed tokens joined by a single space.
func (tk Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Get returns the next token and advances the traversal. The boolean is false
// once every token has been consumed.
func (tk *Tokens) Get() (string, bool) {
	if tk.IsEnd() {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// TokeniseInput divides the input into Tokens.
func TokeniseInput(input string) *Tokens {
	input = strings.TrimSpace(input)

	words := tokeniseInput(input)
	for i, w := range words {
		if len(w) > 1 && (w[0] == '$' || w[0] == '&') {
			words[i] = fmt.Sprintf("0x%s", w[1:])
		}
	}

	return &Tokens{
		input:  input,
		tokens: words,
	}
}

// tokeniseInput splits on white space without normalising. shared with the
// tab completion.
func tokeniseInput(input string) []string {
	return strings.Fields(input)
}
