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

package digest_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/gopherdmg/digest"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestVideoDigest(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	a := digest.NewVideo()
	b := digest.NewVideo()
	test.ExpectEquality(t, a.Hash(), b.Hash())

	test.ExpectSuccess(t, a.NewFrame(1, img))
	test.ExpectSuccess(t, b.NewFrame(1, img))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.FrameNum(), 1)

	// same image again changes the hash because the digest is chained
	h := a.Hash()
	test.ExpectSuccess(t, a.NewFrame(2, img))
	test.ExpectInequality(t, a.Hash(), h)

	// a change in pixel colour changes the hash
	img.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
	test.ExpectSuccess(t, b.NewFrame(2, img))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	// alpha is not part of the digest
	a.ResetDigest()
	b.ResetDigest()
	c := image.NewRGBA(image.Rect(0, 0, 4, 4))
	c.Set(0, 0, color.RGBA{A: 0x80})
	d := image.NewRGBA(image.Rect(0, 0, 4, 4))
	test.ExpectSuccess(t, a.NewFrame(1, c))
	test.ExpectSuccess(t, b.NewFrame(1, d))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	test.ExpectFailure(t, a.NewFrame(2, nil))
}
