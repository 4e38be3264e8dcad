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

// Package screenshot saves images of the frame buffer to disk as PNG files.
// Images can be scaled by an integer factor, in which case nearest-neighbour
// scaling is used so that pixels remain sharp.
package screenshot

import (
	"image"
	"image/png"
	"os"

	"github.com/jetsetilly/gopherdmg/curated"
	"golang.org/x/image/draw"
)

// Sentinel errors.
const (
	ScreenshotError = "screenshot: %v"
	FileExists      = "file (%s) already exists"
	InvalidScale    = "invalid scale (%d)"
)

// MaxScale is the largest scaling factor accepted by Save().
const MaxScale = 16

// Scale returns a copy of the image scaled by the factor.
func Scale(img image.Image, scale int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Save the image to the named file in PNG format. The file must not already
// exist.
func Save(img image.Image, filename string, scale int) error {
	if scale < 1 || scale > MaxScale {
		return curated.Errorf(ScreenshotError, curated.Errorf(InvalidScale, scale))
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return curated.Errorf(ScreenshotError, curated.Errorf(FileExists, filename))
		}
		return curated.Errorf(ScreenshotError, err)
	}
	defer f.Close()

	if scale > 1 {
		img = Scale(img, scale)
	}

	err = png.Encode(f, img)
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}

	return nil
}
