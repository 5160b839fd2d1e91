package colorutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// RGBWhite is the brightest color reachable by Lighten
var RGBWhite = RGB{255, 255, 255}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex renders the color in canonical "#rrggbb" form
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Packed returns the color as a 0xRRGGBB integer
func (c RGB) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromPacked splits a 0xRRGGBB integer into channels, bits above 23 are ignored
func FromPacked(n uint32) RGB {
	return RGB{
		R: uint8(n >> 16),
		G: uint8((n >> 8) & 0xff),
		B: uint8(n & 0xff),
	}
}

// ParseHex parses "rrggbb" or "#rrggbb" in either case
func ParseHex(s string) (RGB, error) {
	if !hexPattern.MatchString(s) {
		return RGB{}, errors.Wrapf(ErrInvalidInput, "hex color %q", s)
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		return RGB{}, errors.Wrapf(ErrInvalidInput, "hex color %q: %v", s, err)
	}
	return FromPacked(uint32(n)), nil
}

// String implements fmt.Stringer
func (c RGB) String() string {
	return c.Hex()
}
