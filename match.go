package img2ascii

import (
	"math"

	"github.com/simonzhou0372/SimpleImage2ASCII/imageutil"
)

// MatchResult is the outcome of comparing one tile against a template
// set: the winning character and its mean-squared-error score (lower
// is better). A tile no template could be compared against carries a
// space character and an infinite score.
type MatchResult struct {
	Char  rune
	Score float64
}

// TileDensity resamples a tile image to exactly width x height with
// cover semantics and converts it to ink densities. A nil or zero-area
// tile is all background: its density map is uniformly zero.
func TileDensity(img *imageutil.RGBAImage, width, height int) *DensityMap {
	if img == nil || img.Area() == 0 {
		return NewDensityMap(width, height)
	}
	resized := imageutil.CoverResize(img, width, height, imageutil.InterpolationArea)
	return DensityFromImage(resized)
}

// MatchDensity scans every template whose dimensions equal the query's
// and returns the one with minimum MSE. Ties keep the first candidate
// in alphabet order; the strict comparison below is what makes the
// tie-break stable across runs. With no dimension-compatible template
// the blank sentinel (' ', +Inf) is returned, never an error.
func (ts *TemplateSet) MatchDensity(d *DensityMap) MatchResult {
	best := MatchResult{Char: ' ', Score: math.Inf(1)}
	matched := false
	for _, g := range ts.glyphs {
		score, ok := g.Density.MSE(d)
		if !ok {
			continue
		}
		if !matched || score < best.Score {
			best = MatchResult{Char: g.Char, Score: score}
			matched = true
		}
	}
	return best
}

// MatchTile resamples the tile to the template size and matches its
// density map. Pure and side-effect free; safe to call concurrently
// for different tiles.
func (ts *TemplateSet) MatchTile(tile *Tile) MatchResult {
	return ts.MatchDensity(TileDensity(tile.Image, ts.width, ts.height))
}
