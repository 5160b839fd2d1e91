package colorutil

import (
	"math"
	"regexp"

	"github.com/pkg/errors"
)

// ErrInvalidInput is returned, wrapped, for out-of-range channels and malformed hex strings
var ErrInvalidInput = errors.New("colorutil: invalid input")

// hexPattern accepts exactly 6 hex digits with an optional leading '#'
var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Channel is any numeric type a caller may hold a color channel in
// Floats are accepted so non-integral values can be rejected rather than truncated
type Channel interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// RGBToHex encodes three channels as "#rrggbb"
// Every channel must be an integer in [0,255], otherwise the whole call fails
func RGBToHex[T Channel](r, g, b T) (string, error) {
	rgb, err := toRGB(r, g, b)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// IsHex reports whether s is a 6-digit hex color with optional '#'
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

func toRGB[T Channel](r, g, b T) (RGB, error) {
	var out [3]uint8
	for i, v := range [3]T{r, g, b} {
		c, ok := channelValue(v)
		if !ok {
			return RGB{}, errors.Wrapf(ErrInvalidInput, "rgb channel %s = %v", channelNames[i], v)
		}
		out[i] = c
	}
	return RGB{out[0], out[1], out[2]}, nil
}

var channelNames = [3]string{"r", "g", "b"}

// channelValue narrows v to uint8 if it is integral and in [0,255]
func channelValue[T Channel](v T) (uint8, bool) {
	f := float64(v)
	// NaN fails every comparison, Inf fails the range check
	if !(f >= 0 && f <= 255) {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return uint8(f), true
}
