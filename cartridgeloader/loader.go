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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinel errors.
const (
	LoaderError       = "cartridgeloader: %v"
	UnexpectedHash    = "cartridgeloader: unexpected hash value (%s)"
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
)

// SaveExtension is the file extension used for save data files.
const SaveExtension = ".sav"

// Loader is used to specify the cartridge to use when attaching to the
// console.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// FileExtensions is the list of file extensions that are recognised as
// cartridge files.
var FileExtensions = [...]string{".GB", ".DMG", ".BIN", ".ROM"}

// IsRecognised returns true if the Loader filename has one of the
// FileExtensions. The comparison is not case sensitive.
func (cl Loader) IsRecognised() bool {
	ext := strings.ToUpper(filepath.Ext(cl.Filename))
	return slices.Contains(FileExtensions[:], ext)
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

func (cl Loader) scheme() string {
	u, err := url.Parse(cl.Filename)
	if err != nil || len(u.Scheme) <= 1 {
		// a single character scheme is a windows drive letter
		return "file"
	}
	return u.Scheme
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP(S) and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	var err error

	// an unrecognised extension is not fatal. the header checksum decides
	// whether the data is a cartridge
	if !cl.IsRecognised() {
		logger.Logf(logger.Allow, "cartridgeloader", "unrecognised file extension (%s)", filepath.Ext(cl.Filename))
	}

	switch scheme := cl.scheme(); scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		cl.Data, err = os.ReadFile(strings.TrimPrefix(cl.Filename, "file://"))
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Hash = hash

	return nil
}

// SaveFilename returns the name of the file used to store the battery backed
// RAM of the cartridge. Returns the empty string if the cartridge was not
// loaded from a local file.
func (cl Loader) SaveFilename() string {
	if cl.scheme() != "file" {
		return ""
	}
	fn := strings.TrimPrefix(cl.Filename, "file://")
	return strings.TrimSuffix(fn, filepath.Ext(fn)) + SaveExtension
}

// LoadSaveData opens the save data file. A missing save file is not an error,
// in which case the returned io.ReadCloser is nil.
func (cl Loader) LoadSaveData() (io.ReadCloser, error) {
	fn := cl.SaveFilename()
	if fn == "" {
		return nil, nil
	}

	f, err := os.Open(fn)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, curated.Errorf(LoaderError, err)
	}

	return f, nil
}

// StoreSaveData writes the data produced by the save function to the save
// data file.
func (cl Loader) StoreSaveData(save func(io.Writer) error) error {
	fn := cl.SaveFilename()
	if fn == "" {
		return nil
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	err = save(f)
	if err != nil {
		_ = f.Close()
		return curated.Errorf(LoaderError, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	return nil
}
