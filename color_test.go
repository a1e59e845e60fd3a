package img2ascii

import (
	"testing"

	"github.com/simonzhou0372/SimpleImage2ASCII/imageutil"
)

func TestTruecolorEscapes(t *testing.T) {
	t.Parallel()

	red := imageutil.RGB{R: 255, G: 0, B: 0}
	if got := TruecolorForeground(red); got != "\x1b[38;2;255;0;0m" {
		t.Errorf("foreground escape = %q, want \\x1b[38;2;255;0;0m", got)
	}
	if got := TruecolorBackground(red); got != "\x1b[48;2;255;0;0m" {
		t.Errorf("background escape = %q, want \\x1b[48;2;255;0;0m", got)
	}
	if Reset != "\x1b[0m" {
		t.Errorf("Reset = %q, want \\x1b[0m", Reset)
	}
}

func TestAverageColorSolid(t *testing.T) {
	t.Parallel()

	want := imageutil.RGB{R: 10, G: 200, B: 30}
	tile := imageutil.CreateSolidImage(8, 8, want)
	got := AverageColor(tile)

	if delta(got.R, want.R) > 1 || delta(got.G, want.G) > 1 || delta(got.B, want.B) > 1 {
		t.Errorf("AverageColor = %v, want ~%v", got, want)
	}
}

func TestAverageColorZeroArea(t *testing.T) {
	t.Parallel()

	if got := AverageColor(imageutil.NewRGBAImage(0, 4)); got != (imageutil.RGB{}) {
		t.Errorf("zero-area average = %v, want black", got)
	}
	if got := AverageColor(nil); got != (imageutil.RGB{}) {
		t.Errorf("nil tile average = %v, want black", got)
	}
}

func TestAnsi256Index(t *testing.T) {
	t.Parallel()

	cases := []struct {
		c    imageutil.RGB
		want uint8
	}{
		{imageutil.RGB{R: 0, G: 0, B: 0}, 16},        // cube black
		{imageutil.RGB{R: 255, G: 255, B: 255}, 231}, // cube white
		{imageutil.RGB{R: 255, G: 0, B: 0}, 196},     // pure red
		{imageutil.RGB{R: 0, G: 255, B: 0}, 46},      // pure green
		{imageutil.RGB{R: 0, G: 0, B: 255}, 21},      // pure blue
		{imageutil.RGB{R: 128, G: 128, B: 128}, 244}, // mid gray, ramp wins
	}
	for _, tc := range cases {
		if got := Ansi256Index(tc.c); got != tc.want {
			t.Errorf("Ansi256Index(%v) = %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestAnsi256Escapes(t *testing.T) {
	t.Parallel()

	red := imageutil.RGB{R: 255, G: 0, B: 0}
	if got := Ansi256Foreground(red); got != "\x1b[38;5;196m" {
		t.Errorf("indexed foreground = %q, want \\x1b[38;5;196m", got)
	}
	if got := Ansi256Background(red); got != "\x1b[48;5;196m" {
		t.Errorf("indexed background = %q, want \\x1b[48;5;196m", got)
	}
}

func delta(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
