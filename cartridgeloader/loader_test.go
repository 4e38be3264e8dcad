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

package cartridgeloader_test

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestShortName(t *testing.T) {
	cl := cartridgeloader.NewLoader(" roms/tetris.gb ")
	test.ExpectEquality(t, cl.ShortName(), "tetris")
	test.ExpectEquality(t, cl.SaveFilename(), "roms/tetris.sav")
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.NewLoader("tetris.gb").IsRecognised())
	test.ExpectSuccess(t, cartridgeloader.NewLoader("TETRIS.GB").IsRecognised())
	test.ExpectSuccess(t, cartridgeloader.NewLoader("tetris.dmg").IsRecognised())
	test.ExpectFailure(t, cartridgeloader.NewLoader("tetris.txt").IsRecognised())
	test.ExpectFailure(t, cartridgeloader.NewLoader("tetris").IsRecognised())

	logger.Clear()
	defer logger.Clear()

	// an unrecognised extension is logged but the file still loads
	fn := filepath.Join(t.TempDir(), "test.txt")
	test.DemandEquality(t, os.WriteFile(fn, []byte{0x00}, 0o644), nil)
	cl := cartridgeloader.NewLoader(fn)
	test.ExpectSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())

	log := logger.Copy()
	test.DemandEquality(t, len(log), 1)
	test.ExpectEquality(t, log[0].Tag, "cartridgeloader")
	test.ExpectEquality(t, log[0].Detail, "unrecognised file extension (.txt)")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "test.gb")
	data := []byte{0x00, 0x01, 0x02, 0x03}
	test.DemandEquality(t, os.WriteFile(fn, data, 0o644), nil)

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	// loading with the wrong hash fails
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectedHash))
	test.ExpectFailure(t, cl.HasLoaded())

	// missing file fails
	cl = cartridgeloader.NewLoader(filepath.Join(dir, "missing.gb"))
	test.ExpectFailure(t, cl.Load())
}

func TestLoadHTTP(t *testing.T) {
	data := []byte("cartridge data")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/test.gb")
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), string(data))

	// no save data for remote files
	test.ExpectEquality(t, cl.SaveFilename(), "")
}

func TestUnsupportedScheme(t *testing.T) {
	cl := cartridgeloader.NewLoader("ftp://example.com/test.gb")
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnsupportedScheme))
}

func TestSaveData(t *testing.T) {
	dir := t.TempDir()
	cl := cartridgeloader.NewLoader(filepath.Join(dir, "test.gb"))

	// missing save file is not an error
	r, err := cl.LoadSaveData()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, r == nil)

	ram := []byte{0xde, 0xad, 0xbe, 0xef}
	err = cl.StoreSaveData(func(w io.Writer) error {
		_, err := w.Write(ram)
		return err
	})
	test.ExpectSuccess(t, err)

	r, err = cl.LoadSaveData()
	test.DemandEquality(t, err, nil)
	defer r.Close()

	b, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(b, ram))
}
