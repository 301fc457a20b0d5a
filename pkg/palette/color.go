package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hex color of the form #RRGGBB.
type Color string

// Black is the stroke color used when no colors are configured.
const Black Color = "#000000"

// ErrInvalidColor is returned for strings that are not 6-digit hex colors.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor normalizes s into a Color. A bare 6-digit hex string gets a
// leading '#'. Letter case is preserved.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	hex := raw
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 || !isHex(hex[1:]) {
		return "", fmt.Errorf("%w: %q (want #RRGGBB)", ErrInvalidColor, s)
	}
	if _, err := colorful.Hex(strings.ToLower(hex)); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return Color(hex), nil
}

// ParseColors normalizes every entry of ss. It fails on the first invalid one.
func ParseColors(ss []string) ([]Color, error) {
	out := make([]Color, 0, len(ss))
	for _, s := range ss {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Colorful converts c for use with image/color based APIs.
// Invalid colors convert to black.
func (c Color) Colorful() colorful.Color {
	cc, err := colorful.Hex(strings.ToLower(string(c)))
	if err != nil {
		return colorful.Color{}
	}
	return cc
}

// IsDark reports whether c is dark enough that light text reads better on it.
func (c Color) IsDark() bool {
	l, _, _ := c.Colorful().Lab()
	return l < 0.5
}

func (c Color) String() string { return string(c) }

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Strings converts colors back to plain strings.
func Strings(cs []Color) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}
