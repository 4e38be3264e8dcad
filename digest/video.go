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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/jetsetilly/gopherdmg/curated"
)

// DigestError is returned when a frame cannot be added to the digest.
const DigestError = "digest: %v"

// Video is a chained SHA1 digest of the frame buffer.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

const pixelDepth = 3

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum returns the number of the frame most recently added to the digest.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame adds the contents of the image to the digest. The alpha channel is
// ignored.
func (dig *Video) NewFrame(frameNum int, img *image.RGBA) error {
	if img == nil {
		return curated.Errorf(DigestError, "no image for frame")
	}

	b := img.Bounds()

	// length of pixels array contains enough room for the previous frame's
	// digest value
	l := len(dig.digest) + b.Dx()*b.Dy()*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	i := copy(dig.pixels, dig.digest[:])

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			o := img.PixOffset(x, y)
			dig.pixels[i] = img.Pix[o]
			dig.pixels[i+1] = img.Pix[o+1]
			dig.pixels[i+2] = img.Pix[o+2]
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum

	return nil
}
