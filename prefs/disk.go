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
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// Sentinel errors.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	PrefsFileError = "prefs: %v"
)

// separator between key and value in the prefs file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from disk. The key
// must not contain whitespace or the separator.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.ContainsAny(key, " \t\n") || strings.Contains(key, "::") {
		return curated.Errorf(PrefsFileError, fmt.Errorf("illegal key (%s)", key))
	}
	dsk.entries[key] = p
	return nil
}

// read the prefs file into a map of keys and strings.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(PrefsFileError, err)
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		kv := strings.SplitN(line, separator, 2)
		if len(kv) != 2 {
			continue
		}
		data[strings.TrimSpace(kv[0])] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PrefsFileError, err)
	}

	return data, nil
}

// Save current preference values to disk. Entries in the file which are not
// known to this Disk instance are retained.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsFileError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// priority over values in the file. A missing prefs file is reported with the
// NoPrefsFile error but the command line stack is still applied.
func (dsk *Disk) Load() error {
	data, loadErr := dsk.read()
	if loadErr != nil && !curated.Is(loadErr, NoPrefsFile) {
		return loadErr
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
			continue
		}

		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
		}
	}

	return loadErr
}

// Reset all values known to the Disk instance to their default state.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(PrefsFileError, err)
		}
	}
	return nil
}
