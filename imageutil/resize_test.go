package imageutil

import (
	"path/filepath"
	"testing"
)

func TestResizeDimensions(t *testing.T) {
	t.Parallel()

	img := CreateGradientImage(40, 20)
	for _, interp := range []Interpolation{
		InterpolationArea, InterpolationLinear, InterpolationNearest,
	} {
		out := Resize(img, 10, 5, interp)
		if out.Width() != 10 || out.Height() != 5 {
			t.Errorf("Resize interp=%d gave %dx%d, want 10x5",
				interp, out.Width(), out.Height())
		}
	}
}

func TestResizeZeroAreaSource(t *testing.T) {
	t.Parallel()

	out := Resize(NewRGBAImage(0, 10), 4, 4, InterpolationArea)
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("resize of empty source is %dx%d, want 4x4",
			out.Width(), out.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if out.GetRGB(x, y) != (RGB{}) {
				t.Fatalf("pixel (%d,%d) = %v, want blank", x, y, out.GetRGB(x, y))
			}
		}
	}
}

func TestCoverResizeExactDimensions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		srcW, srcH, dstW, dstH int
	}{
		{100, 50, 8, 16},  // wide source, tall target
		{50, 100, 16, 8},  // tall source, wide target
		{13, 9, 8, 16},    // awkward odd sizes
		{8, 16, 8, 16},    // already matching
		{3, 3, 1, 1},      // collapse to a single pixel
	}
	for _, tc := range cases {
		img := CreateGradientImage(tc.srcW, tc.srcH)
		out := CoverResize(img, tc.dstW, tc.dstH, InterpolationArea)
		if out.Width() != tc.dstW || out.Height() != tc.dstH {
			t.Errorf("CoverResize(%dx%d -> %dx%d) gave %dx%d",
				tc.srcW, tc.srcH, tc.dstW, tc.dstH, out.Width(), out.Height())
		}
	}
}

func TestCoverResizeSolidStaysSolid(t *testing.T) {
	t.Parallel()

	want := RGB{R: 40, G: 90, B: 160}
	img := CreateSolidImage(20, 10, want)
	out := CoverResize(img, 8, 16, InterpolationArea)

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			got := out.GetRGB(x, y)
			if absDiff(got.R, want.R) > 1 ||
				absDiff(got.G, want.G) > 1 ||
				absDiff(got.B, want.B) > 1 {
				t.Fatalf("pixel (%d,%d) = %v, want ~%v", x, y, got, want)
			}
		}
	}
}

func TestCoverResizeZeroAreaSource(t *testing.T) {
	t.Parallel()

	out := CoverResize(NewRGBAImage(5, 0), 8, 16, InterpolationArea)
	if out.Width() != 8 || out.Height() != 16 {
		t.Fatalf("cover resize of empty source is %dx%d, want 8x16",
			out.Width(), out.Height())
	}
	if out.GetRGB(4, 8) != (RGB{}) {
		t.Error("cover resize of empty source should be blank")
	}
}

func TestCoverResizeCropsCenter(t *testing.T) {
	t.Parallel()

	// Left half black, right half white, squashed to a square target.
	// The crop keeps the middle, so both halves must survive.
	img := NewRGBAImage(40, 10)
	for y := 0; y < 10; y++ {
		for x := 20; x < 40; x++ {
			img.SetRGB(x, y, RGB{R: 255, G: 255, B: 255})
		}
	}
	out := CoverResize(img, 10, 10, InterpolationNearest)

	if got := out.GetRGB(1, 5); got != (RGB{}) {
		t.Errorf("left edge = %v, want black", got)
	}
	if got := out.GetRGB(8, 5); got != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("right edge = %v, want white", got)
	}
}

func TestResizeToWidth(t *testing.T) {
	t.Parallel()

	img := CreateGradientImage(40, 20)
	out := ResizeToWidth(img, 10, InterpolationLinear)
	if out.Width() != 10 || out.Height() != 5 {
		t.Errorf("ResizeToWidth gave %dx%d, want 10x5", out.Width(), out.Height())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	img := CreateCheckerboardImage(8, 8, 2)
	path := filepath.Join(t.TempDir(), "board.png")
	if err := SaveImage(img, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Width() != 8 || loaded.Height() != 8 {
		t.Fatalf("loaded image is %dx%d, want 8x8", loaded.Width(), loaded.Height())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if loaded.GetRGB(x, y) != img.GetRGB(x, y) {
				t.Fatalf("pixel (%d,%d) changed across PNG round trip", x, y)
			}
		}
	}
}

func TestLoadImageMissing(t *testing.T) {
	t.Parallel()

	if _, err := LoadImage("/no/such/file.png"); err == nil {
		t.Error("loading a missing file must fail")
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
