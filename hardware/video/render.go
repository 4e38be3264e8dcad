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

package video

import (
	"image"
	"image/color"
	"slices"
)

// Palette is the four shades of the LCD, from lightest to darkest.
var Palette = [4]color.RGBA{
	{R: 0xe0, G: 0xf8, B: 0xd0, A: 0xff},
	{R: 0x88, G: 0xc0, B: 0x70, A: 0xff},
	{R: 0x34, G: 0x68, B: 0x56, A: 0xff},
	{R: 0x08, G: 0x18, B: 0x20, A: 0xff},
}

// the maximum number of objects on one scanline.
const maxLineObjects = 10

// offsets into VRAM.
const (
	tileDataUnsigned = 0x0000
	tileDataSigned   = 0x1000
	tileMapLow       = 0x1800
	tileMapHigh      = 0x1c00
)

func (vid *Video) blank(img *image.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = Palette[0].R
		img.Pix[i+1] = Palette[0].G
		img.Pix[i+2] = Palette[0].B
		img.Pix[i+3] = Palette[0].A
	}
}

func (vid *Video) plot(x int, y int, c color.RGBA) {
	i := vid.frame.PixOffset(x, y)
	vid.frame.Pix[i] = c.R
	vid.frame.Pix[i+1] = c.G
	vid.frame.Pix[i+2] = c.B
	vid.frame.Pix[i+3] = c.A
}

// shade applies a palette register to the colour number.
func shade(palette uint8, colour uint8) color.RGBA {
	return Palette[(palette>>(colour*2))&0x03]
}

// tilePixel returns the colour number of the pixel in the tile data at the
// VRAM offset.
func (vid *Video) tilePixel(offset int, row int, col int) uint8 {
	lo := vid.VRAM[offset+row*2]
	hi := vid.VRAM[offset+row*2+1]
	bit := 7 - col
	return (hi>>bit)&0x01<<1 | (lo>>bit)&0x01
}

// tileOffset returns the VRAM offset of the tile data for a background or
// window tile number.
func (vid *Video) tileOffset(tile uint8) int {
	if vid.LCDC&lcdcTileData == lcdcTileData {
		return tileDataUnsigned + int(tile)*16
	}
	return tileDataSigned + int(int8(tile))*16
}

func (vid *Video) renderScanline() {
	y := int(vid.LY)

	// colour numbers of the background and window. used to decide object
	// priority
	var bg [ScreenWidth]uint8

	if vid.LCDC&lcdcBGEnable == lcdcBGEnable {
		bgMap := tileMapLow
		if vid.LCDC&lcdcBGMap == lcdcBGMap {
			bgMap = tileMapHigh
		}
		winMap := tileMapLow
		if vid.LCDC&lcdcWindowMap == lcdcWindowMap {
			winMap = tileMapHigh
		}

		window := vid.LCDC&lcdcWindowEnable == lcdcWindowEnable && y >= int(vid.WY) && vid.WX <= 166
		wx := int(vid.WX) - 7

		for x := range ScreenWidth {
			var m, tx, ty int
			if window && x >= wx {
				m = winMap
				tx = x - wx
				ty = vid.windowLine
			} else {
				m = bgMap
				tx = (x + int(vid.SCX)) & 0xff
				ty = (y + int(vid.SCY)) & 0xff
			}

			tile := vid.VRAM[m+(ty/8)*32+tx/8]
			bg[x] = vid.tilePixel(vid.tileOffset(tile), ty%8, tx%8)
			vid.plot(x, y, shade(vid.BGP, bg[x]))
		}

		if window && wx < ScreenWidth {
			vid.windowLine++
		}
	} else {
		for x := range ScreenWidth {
			vid.plot(x, y, Palette[0])
		}
	}

	if vid.LCDC&lcdcObjEnable == lcdcObjEnable {
		vid.renderObjects(y, &bg)
	}
}

type object struct {
	y    int
	x    int
	tile uint8
	attr uint8
}

func (vid *Video) renderObjects(y int, bg *[ScreenWidth]uint8) {
	height := 8
	if vid.LCDC&lcdcObjSize == lcdcObjSize {
		height = 16
	}

	// select the first ten objects in OAM that are on the scanline
	objs := make([]object, 0, maxLineObjects)
	for i := 0; i < OAMSize && len(objs) < maxLineObjects; i += 4 {
		o := object{
			y:    int(vid.OAM[i]) - 16,
			x:    int(vid.OAM[i+1]) - 8,
			tile: vid.OAM[i+2],
			attr: vid.OAM[i+3],
		}
		if y >= o.y && y < o.y+height {
			objs = append(objs, o)
		}
	}

	// objects with a smaller x coordinate are drawn on top. objects with
	// the same x coordinate are ordered by their position in OAM
	slices.SortStableFunc(objs, func(a, b object) int {
		return a.x - b.x
	})

	for i := len(objs) - 1; i >= 0; i-- {
		o := objs[i]

		row := y - o.y
		if o.attr&objFlipY == objFlipY {
			row = height - 1 - row
		}

		tile := o.tile
		if height == 16 {
			tile &= 0xfe
		}

		palette := vid.OBP0
		if o.attr&objPalette == objPalette {
			palette = vid.OBP1
		}

		for col := range 8 {
			x := o.x + col
			if x < 0 || x >= ScreenWidth {
				continue
			}

			c := col
			if o.attr&objFlipX == objFlipX {
				c = 7 - col
			}

			// objects always use unsigned tile addressing. the second tile
			// of a tall object follows the first
			colour := vid.tilePixel(tileDataUnsigned+int(tile)*16, row, c)
			if colour == 0 {
				continue
			}
			if o.attr&objPriority == objPriority && bg[x] != 0 {
				continue
			}

			vid.plot(x, y, shade(palette, colour))
		}
	}
}
