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

// Package video implements the picture processing unit of the console. It
// owns the video RAM, the object attribute memory and the LCD registers.
//
// Timing is scanline accurate. Each scanline lasts 456 clock cycles and
// there are 154 scanlines in a frame, the last ten of which are the vertical
// blank. The visible part of each scanline is rendered in one go at the end
// of the pixel transfer mode. The frame buffer is an image.RGBA that is
// ScreenWidth by ScreenHeight pixels.
package video
