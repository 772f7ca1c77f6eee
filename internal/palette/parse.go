package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var named = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"gray":    "#808080",
	"grey":    "#808080",
}

// ToHex resolves c into "#rrggbb". It understands hex, hsl(), rgb() and a
// handful of named colors.
func ToHex(c Color) (string, error) {
	col, err := Parse(c)
	if err != nil {
		return "", err
	}
	return col.Clamped().Hex(), nil
}

// Parse resolves c into an RGB color.
func Parse(c Color) (colorful.Color, error) {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	if s == "" {
		return colorful.Color{}, fmt.Errorf("empty color")
	}
	if hex, ok := named[s]; ok {
		s = hex
	}

	switch {
	case strings.HasPrefix(s, "#"):
		col, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", c, err)
		}
		return col, nil
	case strings.HasPrefix(s, "hsl(") || strings.HasPrefix(s, "hsla("):
		args, err := funcArgs(s)
		if err != nil || len(args) < 3 {
			return colorful.Color{}, fmt.Errorf("invalid hsl color %q", c)
		}
		h, err1 := parseNumber(strings.TrimSuffix(args[0], "deg"))
		sat, err2 := parsePercent(args[1])
		l, err3 := parsePercent(args[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return colorful.Color{}, fmt.Errorf("invalid hsl color %q", c)
		}
		return colorful.Hsl(h, sat, l), nil
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		args, err := funcArgs(s)
		if err != nil || len(args) < 3 {
			return colorful.Color{}, fmt.Errorf("invalid rgb color %q", c)
		}
		var ch [3]float64
		for i := 0; i < 3; i++ {
			v, err := parseNumber(args[i])
			if err != nil {
				return colorful.Color{}, fmt.Errorf("invalid rgb color %q", c)
			}
			ch[i] = v / 255
		}
		return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
	}
	return colorful.Color{}, fmt.Errorf("unsupported color %q", c)
}

func funcArgs(s string) ([]string, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("malformed")
	}
	inner := s[open+1 : len(s)-1]
	inner = strings.ReplaceAll(inner, ",", " ")
	inner = strings.ReplaceAll(inner, "/", " ")
	return strings.Fields(inner), nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parsePercent(s string) (float64, error) {
	v, err := parseNumber(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}
