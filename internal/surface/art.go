package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/seg7/internal/glyph"
	"github.com/fchimpan/seg7/internal/palette"
)

// ArtRows is the height of a rendered digit.
const ArtRows = 5

// ArtCols is the width of a rendered digit, without the gap.
const ArtCols = 5

const (
	barH = "━━━"
	barV = "┃"
)

// DimColor is used for unlit segments when Art draws them.
const DimColor palette.Color = "#1c2b24"

// Art draws frames as block glyphs:
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
//
// Art caches styles and is not safe for concurrent use.
type Art struct {
	// Color enables ANSI colors. Without it lit segments are drawn plain
	// and unlit segments are blank.
	Color bool
	// ShowOff draws unlit segments in DimColor (color mode only).
	ShowOff bool
	// Gap is the number of columns between digits.
	Gap int

	styles map[palette.Color]lipgloss.Style
}

func NewArt(color bool) *Art {
	return &Art{Color: color, ShowOff: color, Gap: 1}
}

// Render returns ArtRows lines joined by "\n" (no trailing newline).
func (a *Art) Render(digits []Digit) string {
	var rows [ArtRows]strings.Builder
	gap := ""
	if a.Gap > 0 {
		gap = strings.Repeat(" ", a.Gap)
	}
	for i, d := range digits {
		if i > 0 {
			for r := range rows {
				rows[r].WriteString(gap)
			}
		}
		rows[0].WriteString(" " + a.seg(d, glyph.A, barH) + " ")
		rows[1].WriteString(a.seg(d, glyph.F, barV) + "   " + a.seg(d, glyph.B, barV))
		rows[2].WriteString(" " + a.seg(d, glyph.G, barH) + " ")
		rows[3].WriteString(a.seg(d, glyph.E, barV) + "   " + a.seg(d, glyph.C, barV))
		rows[4].WriteString(" " + a.seg(d, glyph.D, barH) + " ")
	}

	lines := make([]string, ArtRows)
	for r := range rows {
		lines[r] = rows[r].String()
	}
	return strings.Join(lines, "\n")
}

func (a *Art) seg(d Digit, seg glyph.Segment, shape string) string {
	l := d[seg]
	if !l.On {
		if a.Color && a.ShowOff {
			return a.style(DimColor).Render(shape)
		}
		return strings.Repeat(" ", lipgloss.Width(shape))
	}
	if !a.Color {
		return shape
	}
	return a.style(l.Color).Render(shape)
}

func (a *Art) style(c palette.Color) lipgloss.Style {
	if st, ok := a.styles[c]; ok {
		return st
	}
	if a.styles == nil {
		a.styles = map[palette.Color]lipgloss.Style{}
	}
	hex, err := palette.ToHex(c)
	if err != nil {
		hex = string(palette.DefaultOn)
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	a.styles[c] = st
	return st
}
