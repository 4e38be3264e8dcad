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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename returns a filename that is unlikely to clash with any other
// file created by the application. The filename has the form:
//
//	<prepend>_<cartname>_<timestamp>
//
// The cartname is omitted if it is empty.
func UniqueFilename(prepend string, cartName string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	cartName = strings.TrimSpace(cartName)
	cartName = strings.ReplaceAll(cartName, " ", "_")

	if cartName == "" {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}
	return fmt.Sprintf("%s_%s_%s", prepend, cartName, timestamp)
}
