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

// Package ansi defines ANSI control codes for styles, colours and cursor
// movement.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
var colors = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    9,
}

// Pens is the table of colors to be used for text.
var Pens = make(map[string]string)

// DimPens is the table of pastel colors to be used for text.
var DimPens = make(map[string]string)

// PenStyles is the table of styles to be used for text.
var PenStyles = make(map[string]string)

// NormalPen is the CSI sequence for regular text.
var NormalPen string

// Cursor and line control sequences.
const (
	ClearLine         = "\033[2K"
	CursorStore       = "\0337"
	CursorRestore     = "\0338"
	CursorForwardOne  = "\033[1C"
	CursorBackwardOne = "\033[1D"
)

func init() {
	NormalPen, _ = ColorBuild("", "", "", false, false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", "", true, false)
		DimPens[c], _ = ColorBuild(c, "", "", false, false)
	}

	PenStyles["bold"], _ = ColorBuild("", "", "bold", false, false)
	PenStyles["underline"], _ = ColorBuild("", "", "underline", false, false)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	parts := make([]string, 0, 3)

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		parts = append(parts, fmt.Sprintf("%d%d", t, c))
	}

	if paper != "" {
		c, ok := colors[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		parts = append(parts, fmt.Sprintf("%d%d", t, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		parts = append(parts, fmt.Sprintf("%d", a))
	}

	// an empty sequence resets all attributes
	if len(parts) == 0 {
		parts = append(parts, "0")
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}

// CursorMove returns the sequence to move the cursor horizontally by the
// specified number of columns. Negative values move the cursor backwards.
func CursorMove(columns int) string {
	switch {
	case columns > 0:
		return fmt.Sprintf("\033[%dC", columns)
	case columns < 0:
		return fmt.Sprintf("\033[%dD", -columns)
	}
	return ""
}
