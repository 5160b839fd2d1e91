package colorutil

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// TCell returns the color as a 24-bit tcell color
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTCell resolves a tcell color (RGB or palette) to its RGB value
// Colors without an RGB value, such as tcell.ColorDefault, are rejected
func FromTCell(tc tcell.Color) (RGB, error) {
	r, g, b := tc.RGB()
	if r < 0 || g < 0 || b < 0 {
		return RGB{}, errors.Wrapf(ErrInvalidInput, "tcell color %v has no rgb value", tc)
	}
	return RGB{uint8(r), uint8(g), uint8(b)}, nil
}

// Colorful returns the color in go-colorful's [0,1] float space
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful clamps out-of-gamut values and rounds to 8-bit channels
func FromColorful(cc colorful.Color) RGB {
	r, g, b := cc.Clamped().RGB255()
	return RGB{r, g, b}
}
