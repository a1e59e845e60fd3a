package img2ascii

import (
	"fmt"

	"github.com/simonzhou0372/SimpleImage2ASCII/imageutil"
)

// AverageColor reduces a tile to one representative RGB triple by
// cover-resampling it to a single pixel with the same area filter the
// matcher uses. A nil or zero-area tile averages to black.
func AverageColor(img *imageutil.RGBAImage) imageutil.RGB {
	if img == nil || img.Area() == 0 {
		return imageutil.RGB{}
	}
	tiny := imageutil.CoverResize(img, 1, 1, imageutil.InterpolationArea)
	return tiny.GetRGB(0, 0)
}

// TruecolorForeground returns the 24-bit foreground escape for c:
// ESC[38;2;R;G;Bm.
func TruecolorForeground(c imageutil.RGB) string {
	return fmt.Sprintf("%s[38;2;%d;%d;%dm", ESC, c.R, c.G, c.B)
}

// TruecolorBackground returns the 24-bit background escape for c:
// ESC[48;2;R;G;Bm.
func TruecolorBackground(c imageutil.RGB) string {
	return fmt.Sprintf("%s[48;2;%d;%d;%dm", ESC, c.R, c.G, c.B)
}

// Ansi256Foreground returns the indexed foreground escape for the
// xterm-256 color nearest to c: ESC[38;5;Nm.
func Ansi256Foreground(c imageutil.RGB) string {
	return fmt.Sprintf("%s[38;5;%dm", ESC, Ansi256Index(c))
}

// Ansi256Background returns the indexed background escape for the
// xterm-256 color nearest to c: ESC[48;5;Nm.
func Ansi256Background(c imageutil.RGB) string {
	return fmt.Sprintf("%s[48;5;%dm", ESC, Ansi256Index(c))
}

// cubeLevels are the channel intensities of the xterm 6x6x6 color cube
// (indices 16-231). The gray ramp (232-255) runs 8..238 in steps of 10.
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

func nearestCubeLevel(v int) int {
	best := 0
	bestDist := 1 << 30
	for i, level := range cubeLevels {
		d := (v - level) * (v - level)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// Ansi256Index maps an RGB color to the nearest xterm-256 palette
// index, considering both the 6x6x6 cube and the grayscale ramp and
// picking whichever is closer in squared RGB distance. The mapping is
// closed-form; no palette search structure is needed for a fixed cube.
func Ansi256Index(c imageutil.RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)

	ri, gi, bi := nearestCubeLevel(r), nearestCubeLevel(g), nearestCubeLevel(b)
	cubeDist := sq(r-cubeLevels[ri]) + sq(g-cubeLevels[gi]) + sq(b-cubeLevels[bi])
	cubeIdx := 16 + 36*ri + 6*gi + bi

	// Nearest gray ramp entry for the mean intensity.
	mean := (r + g + b) / 3
	grayStep := (mean - 8 + 5) / 10
	if grayStep < 0 {
		grayStep = 0
	}
	if grayStep > 23 {
		grayStep = 23
	}
	grayVal := 8 + grayStep*10
	grayDist := sq(r-grayVal) + sq(g-grayVal) + sq(b-grayVal)
	grayIdx := 232 + grayStep

	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return uint8(cubeIdx)
}

func sq(v int) int { return v * v }
