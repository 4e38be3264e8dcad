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

package prefs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
)

// MalformedCommandLine is returned by PushCommandLineStack() for an entry
// that is not of the form key::value.
const MalformedCommandLine = "prefs: malformed command line entry (%s)"

// a group of key::value entries taken from one command line string.
type commandLineGroup map[string]Value

// the most recent group is at the end of the stack.
var commandLineStack []commandLineGroup

// PushCommandLineStack parses a prefs string and adds it as a new group.
// Entries are separated by semi-colons and have the form key::value. Empty
// entries are ignored. Nothing is added to the stack if an entry is
// malformed.
func PushCommandLineStack(prefs string) error {
	grp := make(commandLineGroup)
	for _, entry := range strings.Split(prefs, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "::")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return curated.Errorf(MalformedCommandLine, entry)
		}
		grp[key] = strings.TrimSpace(value)
	}
	commandLineStack = append(commandLineStack, grp)
	return nil
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). The entries of the group that were never asked for
// are returned as a prefs string, sorted by key.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	grp := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(grp))
	for k := range grp {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	unused := make([]string, len(keys))
	for i, k := range keys {
		unused[i] = fmt.Sprintf("%s::%v", k, grp[k])
	}

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key in the most recent group.
// A value can only be taken once.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	grp := commandLineStack[len(commandLineStack)-1]
	v, ok := grp[key]
	if ok {
		delete(grp, key)
	}
	return ok, v
}
