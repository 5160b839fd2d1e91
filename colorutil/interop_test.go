package colorutil

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

func TestTCell_RoundTrip(t *testing.T) {
	for _, c := range []RGB{RGBBlack, RGBWhite, {255, 100, 50}, {0x33, 0x66, 0x99}} {
		tc := c.TCell()
		if !tc.IsRGB() {
			t.Errorf("%v: expected RGB tcell color", c)
		}
		back, err := FromTCell(tc)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", c, err)
		}
		if !back.Equal(c) {
			t.Errorf("Expected %v, got %v", c, back)
		}
	}
}

func TestFromTCell_Palette(t *testing.T) {
	got, err := FromTCell(tcell.ColorRed)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	r, g, b := tcell.ColorRed.RGB()
	if !got.Equal(RGB{uint8(r), uint8(g), uint8(b)}) {
		t.Errorf("Expected palette value, got %v", got)
	}
}

func TestFromTCell_Default(t *testing.T) {
	if _, err := FromTCell(tcell.ColorDefault); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestColorful_RoundTrip(t *testing.T) {
	for _, c := range []RGB{RGBBlack, RGBWhite, {255, 100, 50}, {1, 2, 3}, {128, 127, 129}} {
		if back := FromColorful(c.Colorful()); !back.Equal(c) {
			t.Errorf("Expected %v, got %v", c, back)
		}
	}
}

func TestFromColorful_Clamps(t *testing.T) {
	got := FromColorful(colorful.Color{R: 1.5, G: -0.2, B: 0.5})
	if got.R != 255 || got.G != 0 {
		t.Errorf("Expected clamped channels, got %v", got)
	}
}

// TestHex_AgreesWithColorful cross-checks encoding against go-colorful's parser
func TestHex_AgreesWithColorful(t *testing.T) {
	src := NewFastRand(99)
	for i := 0; i < 500; i++ {
		h := RandomHex(src)
		cc, err := colorful.Hex(h)
		if err != nil {
			t.Fatalf("colorful.Hex(%q): %v", h, err)
		}
		if cc.Hex() != h {
			t.Fatalf("Expected %s, colorful renders %s", h, cc.Hex())
		}

		lit, err := Lighten(h, 15)
		if err != nil {
			t.Fatalf("Lighten(%q): %v", h, err)
		}
		want, _ := ParseHex(h)
		want = want.Lighten(15)
		if FromColorful(mustColorful(t, lit)) != want {
			t.Fatalf("Lighten(%q) = %s, expected %s", h, lit, want)
		}
	}
}

func mustColorful(t *testing.T, s string) colorful.Color {
	t.Helper()
	cc, err := colorful.Hex(s)
	if err != nil {
		t.Fatalf("colorful.Hex(%q): %v", s, err)
	}
	return cc
}
