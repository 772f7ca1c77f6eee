package palette

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/fchimpan/seg7/internal/glyph"
)

// Color is a CSS-like color value ("#00ff88", "hsl(120, 80%, 60%)", "red").
// The empty Color means "not set".
type Color string

// DefaultOn is used for lit segments when nothing else picks a color.
const DefaultOn Color = "#00ff88"

// Generated colors share one saturation and lightness so they read as a set.
const (
	Saturation = 0.8
	Lightness  = 0.6
)

// HSL returns the generated color for hue (degrees).
func HSL(hue float64) Color {
	return Color(colorful.Hsl(hue, Saturation, Lightness).Clamped().Hex())
}

// Rainbow returns the hue for position index out of total, spread over 360
// degrees.
func Rainbow(index, total int) Color {
	if total <= 0 {
		total = 1
	}
	return HSL(float64(index) / float64(total) * 360)
}

// Random returns a color with a uniformly random integer hue in [0,360).
func Random(rng *rand.Rand) Color {
	return HSL(float64(rng.IntN(360)))
}

// RandomDigit returns a full set of random colors for one digit.
func RandomDigit(rng *rand.Rand) map[glyph.Segment]Color {
	m := make(map[glyph.Segment]Color, glyph.Count)
	for _, seg := range glyph.Segments {
		m[seg] = Random(rng)
	}
	return m
}

// Scheme holds what the resolver needs to color one render pass.
type Scheme struct {
	Rainbow  bool
	Digits   int
	PerDigit []map[glyph.Segment]Color
	Default  Color
}

// ColorFor picks the color of a lit segment. Rainbow mode wins over
// per-digit colors, which win over the default color, which wins over
// DefaultOn.
func (s Scheme) ColorFor(digit int, seg glyph.Segment) Color {
	if s.Rainbow {
		return Rainbow(digit*glyph.Count+int(seg), s.Digits*glyph.Count)
	}
	if digit >= 0 && digit < len(s.PerDigit) {
		if c, ok := s.PerDigit[digit][seg]; ok && c != "" {
			return c
		}
	}
	if s.Default != "" {
		return s.Default
	}
	return DefaultOn
}
