package page

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" or the space separated float
// triple "r g b" with channels in [0,1].
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	parts := strings.Fields(s)
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	var ch [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		ch[i] = uint8(v*255 + 0.5)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}

// ColorOr parses s and falls back on error.
func ColorOr(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

func parseHex(h string) (color.RGBA, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color #%s", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color #%s: %w", h, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
