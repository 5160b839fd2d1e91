package colorutil

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// percentStep is the channel delta for one percent of the 0-255 range
const percentStep = 2.55

// Lighten adds round(2.55*percent) to each channel of hex and clamps to [0,255]
// Percent is not range checked; negative values darken and extreme values saturate
// Encoding goes through RGBToHex so both functions agree on the output form
func Lighten(hex string, percent float64) (string, error) {
	if !hexPattern.MatchString(hex) {
		return "", errors.Wrapf(ErrInvalidInput, "lighten: hex color %q", hex)
	}

	n, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidInput, "lighten: hex color %q: %v", hex, err)
	}

	r, g, b := shiftChannels(uint32(n), percent)

	out, err := RGBToHex(r, g, b)
	if err != nil {
		return "", errors.WithMessage(err, "lighten")
	}
	return out, nil
}

// Lighten applies the same channel shift as the package Lighten
// A NaN percent leaves the color unchanged since there is no error path
func (c RGB) Lighten(percent float64) RGB {
	r, g, b := shiftChannels(c.Packed(), percent)
	rgb, err := toRGB(r, g, b)
	if err != nil {
		return c
	}
	return rgb
}

// shiftChannels extracts channels from a packed color, adds the rounded delta, then clamps
// NaN propagates through min/max so the caller's validation rejects it
func shiftChannels(n uint32, percent float64) (r, g, b float64) {
	// Ties round toward +Inf, so -25.5 becomes -25
	delta := math.Floor(percentStep*percent + 0.5)

	r = clampChannel(float64(n>>16) + delta)
	g = clampChannel(float64((n>>8)&0xff) + delta)
	b = clampChannel(float64(n&0xff) + delta)
	return r, g, b
}

func clampChannel(v float64) float64 {
	return min(255, max(0, v))
}
