package props

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a parsed RGBA color. The zero value is "no color" (transparent),
// which is also what every malformed input parses to.
type Color struct {
	R, G, B, A uint8
	Valid      bool
}

// Hex renders the color as a #rrggbb string for the terminal styling layer,
// which has no alpha channel of its own.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses hex color strings with or without a leading #: RGB,
// RRGGBB, and RRGGBBAA forms. The 3- and 6-digit forms get an implicit FF
// alpha. Malformed input returns the transparent zero value, never an error.
func ParseColor(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		s = b.String()
	}

	alpha := uint8(0xFF)
	switch len(s) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return Color{}
		}
		alpha = uint8(a)
		s = s[:6]
	default:
		return Color{}
	}

	col, err := colorful.Hex("#" + s)
	if err != nil {
		return Color{}
	}
	r, g, b := col.RGB255()
	return Color{R: r, G: g, B: b, A: alpha, Valid: true}
}

// Color parses the named prop as a hex color. Absent, non-string, or
// malformed values yield the transparent zero value.
func (b Bag) Color(key string) Color {
	v, ok := b[key].(string)
	if !ok {
		return Color{}
	}
	return ParseColor(v)
}
