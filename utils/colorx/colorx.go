// File: colorx.go
// Title: Hex and RGB Colour Conversion
// Description: Converts between #rgb / #rrggbb notation and RGB triples
//              with nullable channels. Invalid input maps to fixed sentinel
//              values instead of errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation on go-colorful

package colorx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel is a single colour component that may be absent
type Channel struct {
	Value int
	Valid bool
}

// Some returns a present channel holding v
func Some(v int) Channel {
	return Channel{Value: v, Valid: true}
}

// String renders the channel value or "null"
func (c Channel) String() string {
	if !c.Valid {
		return "null"
	}
	return strconv.Itoa(c.Value)
}

// RGB is a red, green, blue triple
type RGB [3]Channel

// Null is the all-null triple returned for undecodable colours
var Null RGB

// NewRGB returns a triple with all three channels present
func NewRGB(r, g, b int) RGB {
	return RGB{Some(r), Some(g), Some(b)}
}

// FromColor converts a colorful.Color to a triple, clamping out-of-gamut
// colours first
func FromColor(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return NewRGB(int(r), int(g), int(b))
}

// IsNull reports whether every channel is absent
func (c RGB) IsNull() bool {
	return !c[0].Valid && !c[1].Valid && !c[2].Valid
}

// Ints returns the channel values; ok is false if any channel is absent
func (c RGB) Ints() (r, g, b int, ok bool) {
	if !c[0].Valid || !c[1].Valid || !c[2].Valid {
		return 0, 0, 0, false
	}
	return c[0].Value, c[1].Value, c[2].Value, true
}

// Color converts the triple to a colorful.Color. ok is false when a channel
// is absent or outside 0..255.
func (c RGB) Color() (colorful.Color, bool) {
	r, g, b, ok := c.Ints()
	if !ok || !inByteRange(r) || !inByteRange(g) || !inByteRange(b) {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}, true
}

// String renders the triple as [r g b]
func (c RGB) String() string {
	return fmt.Sprintf("[%s %s %s]", c[0], c[1], c[2])
}

func inByteRange(v int) bool {
	return v >= 0 && v <= 255
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Hex2RGB parses a 3- or 6-digit hex colour with optional leading #.
// Three-digit notation duplicates each digit (#abc is #aabbcc). Any other
// length, or any non-hex digit, yields Null.
func Hex2RGB(hex string) RGB {
	hex = strings.TrimLeft(hex, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return Null
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return Null
		}
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Null
	}
	return FromColor(c)
}

// RGB2Hex formats a triple as lowercase rrggbb, prefixed with # when
// hashPrefix is set. Negative channels are raised to 0. If any channel is
// absent or above 255 the result is black.
func RGB2Hex(rgb RGB, hashPrefix bool) string {
	prefix := ""
	if hashPrefix {
		prefix = "#"
	}
	r, g, b, ok := rgb.Ints()
	if !ok || r > 255 || g > 255 || b > 255 {
		return prefix + "000000"
	}
	return fmt.Sprintf("%s%02x%02x%02x", prefix, max(r, 0), max(g, 0), max(b, 0))
}
