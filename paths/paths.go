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

// Package paths should be used whenever a request to the filesystem is made
// for a GopherDMG resource (preferences file, screenshots, etc.). The
// functions make sure that the correct path for the running system is used.
package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. should only be used directly in the
// getBasePath() function.
const baseResourcePath = ".gopherdmg"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
//
// The directory containing the resource is created if it does not exist.
func ResourcePath(resource ...string) (string, error) {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	pth := filepath.Join(p...)

	if err := os.MkdirAll(filepath.Dir(pth), 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

// getBasePath returns baseResourcePath with the user's configuration
// directory prepended, unless baseResourcePath exists in the current
// directory.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cfg, baseResourcePath[1:])
}
