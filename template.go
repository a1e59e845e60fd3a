package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pbnjay/pixfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/simonzhou0372/SimpleImage2ASCII/imageutil"
)

// DensityMap is a fixed-size grid of ink densities in [0,1], where 1.0
// is maximum ink (dark stroke) and 0.0 is background. Both rendered
// glyph templates and resampled tiles live in this space so they can
// be compared directly.
type DensityMap struct {
	Width, Height int
	Pix           []float64 // row-major, len Width*Height
}

// NewDensityMap creates an all-background density map.
func NewDensityMap(width, height int) *DensityMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &DensityMap{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

// At returns the density at (x, y).
func (d *DensityMap) At(x, y int) float64 {
	return d.Pix[y*d.Width+x]
}

// Set stores the density at (x, y).
func (d *DensityMap) Set(x, y int, v float64) {
	d.Pix[y*d.Width+x] = v
}

// Mean returns the average density; 0 for a zero-area map.
func (d *DensityMap) Mean() float64 {
	if len(d.Pix) == 0 {
		return 0
	}
	var sum float64
	for _, v := range d.Pix {
		sum += v
	}
	return sum / float64(len(d.Pix))
}

// MSE returns the mean squared error between two density maps. The
// second result is false when the dimensions differ, in which case the
// maps are not comparable.
func (d *DensityMap) MSE(other *DensityMap) (float64, bool) {
	if d.Width != other.Width || d.Height != other.Height {
		return 0, false
	}
	if len(d.Pix) == 0 {
		return 0, true
	}
	var sum float64
	for i, v := range d.Pix {
		diff := v - other.Pix[i]
		sum += diff * diff
	}
	return sum / float64(len(d.Pix)), true
}

// DensityFromImage converts an image to ink densities: grayscale via
// BT.601 luminance, normalized to [0,1], then inverted so dark pixels
// score high. Ordinary text renders dark-on-light, so the inversion
// puts tiles and glyph templates in the same orientation.
func DensityFromImage(img *imageutil.RGBAImage) *DensityMap {
	gray := imageutil.ToGrayscale(img)
	w, h := gray.Width(), gray.Height()
	d := NewDensityMap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d.Set(x, y, 1.0-float64(gray.GetGray(x, y))/255.0)
		}
	}
	return d
}

// GlyphTemplate pairs a character with its pre-rendered density map.
type GlyphTemplate struct {
	Char    rune
	Density *DensityMap
}

// TemplateSet holds the rendered templates for one alphabet at one
// tile size. The glyph order is the alphabet's canonical order and
// drives the matcher's tie-break, so it is fixed at build time and the
// set is immutable afterwards; it is safe to share across goroutines.
type TemplateSet struct {
	alphabet   Alphabet
	width      int
	height     int
	fontSource string
	glyphs     []GlyphTemplate
	byChar     map[rune]*DensityMap
}

// BuildTemplates renders every character of the alphabet into a
// width x height density map. When fontSource names a readable
// TrueType file it is used; otherwise the embedded Go Regular face is.
// A glyph the TrueType path cannot rasterize falls back to the
// built-in bitmap font, so building never fails for font reasons.
// Identical (alphabet, size, fontSource) inputs always produce
// identical templates.
func BuildTemplates(alphabet Alphabet, tileWidth, tileHeight int, fontSource string) (*TemplateSet, error) {
	if tileWidth < 1 || tileHeight < 1 {
		return nil, fmt.Errorf("%w: tile size %dx%d",
			ErrInvalidDimensions, tileWidth, tileHeight)
	}

	ttf := loadTemplateFont(fontSource)
	ts := &TemplateSet{
		alphabet:   alphabet,
		width:      tileWidth,
		height:     tileHeight,
		fontSource: fontSource,
		byChar:     make(map[rune]*DensityMap),
	}

	for _, ch := range alphabet.Runes() {
		var d *DensityMap
		var err error
		if ttf != nil {
			d, err = renderTemplate(ch, tileWidth, tileHeight, ttf)
		}
		if ttf == nil || err != nil {
			// TemplateRenderFailure recovery: built-in bitmap font.
			d = renderTemplateBitmap(ch, tileWidth, tileHeight)
		}
		ts.glyphs = append(ts.glyphs, GlyphTemplate{Char: ch, Density: d})
		if _, dup := ts.byChar[ch]; !dup {
			ts.byChar[ch] = d
		}
	}

	return ts, nil
}

// Alphabet returns the alphabet the set was built from.
func (ts *TemplateSet) Alphabet() Alphabet { return ts.alphabet }

// Width returns the template pixel width.
func (ts *TemplateSet) Width() int { return ts.width }

// Height returns the template pixel height.
func (ts *TemplateSet) Height() int { return ts.height }

// Len returns the number of templates.
func (ts *TemplateSet) Len() int { return len(ts.glyphs) }

// Glyphs returns the templates in canonical alphabet order. The slice
// and the maps it references are read-only.
func (ts *TemplateSet) Glyphs() []GlyphTemplate { return ts.glyphs }

// Lookup returns the density map rendered for ch.
func (ts *TemplateSet) Lookup(ch rune) (*DensityMap, bool) {
	d, ok := ts.byChar[ch]
	return d, ok
}

// loadTemplateFont parses the TrueType source for template rendering.
// An unreadable or unparsable path falls back to the embedded Go
// Regular face; nil is returned only if that face fails to parse, in
// which case callers use the bitmap renderer.
func loadTemplateFont(fontSource string) *truetype.Font {
	if fontSource != "" {
		if data, err := os.ReadFile(fontSource); err == nil {
			if f, err := freetype.ParseFont(data); err == nil {
				return f
			}
		}
	}
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil
	}
	return f
}

// renderTemplate rasterizes ch through freetype onto an alpha scratch
// canvas and centers the ink into a w x h density map. The alpha
// channel is pixel coverage, which equals the grayscale-normalize-
// invert of dark-on-light text, so densities come straight from alpha.
func renderTemplate(ch rune, w, h int, ttf *truetype.Font) (*DensityMap, error) {
	fontSize := w
	if h < fontSize {
		fontSize = h
	}
	if fontSize < 10 {
		fontSize = 10
	}

	// Generous padding so ascenders, descenders and overshoot all land
	// on the canvas regardless of the face's metrics.
	pad := 2 * fontSize
	scratch := image.NewAlpha(image.Rect(0, 0, w+2*pad, h+2*pad))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(float64(fontSize))
	ctx.SetClip(scratch.Bounds())
	ctx.SetDst(scratch)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	if _, err := ctx.DrawString(string(ch), freetype.Pt(pad, pad+fontSize)); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrTemplateRender, ch, err)
	}

	return centerInk(scratch, w, h), nil
}

// renderTemplateBitmap renders ch with the built-in 8px bitmap font.
// It cannot fail, which makes it the recovery path for glyphs the
// TrueType rasterizer rejects.
func renderTemplateBitmap(ch rune, w, h int) *DensityMap {
	scratchW, scratchH := w+32, h+32
	scratch := image.NewAlpha(image.Rect(0, 0, scratchW, scratchH))
	pixfont.DrawString(scratch, 8, 8, string(ch), color.White)
	return centerInk(scratch, w, h)
}

// centerInk locates the ink bounding box on the scratch canvas and
// copies it into a w x h density map so the box center coincides with
// the canvas center (integer floor offsets). Ink larger than the
// canvas is clipped symmetrically; a glyph with no ink (the space
// character) yields an all-background map.
func centerInk(scratch *image.Alpha, w, h int) *DensityMap {
	d := NewDensityMap(w, h)

	b := scratch.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if scratch.AlphaAt(x, y).A > 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if maxX < minX {
		return d
	}

	inkW, inkH := maxX-minX+1, maxY-minY+1
	offX := (w - inkW) / 2
	offY := (h - inkH) / 2
	for sy := 0; sy < inkH; sy++ {
		ty := offY + sy
		if ty < 0 || ty >= h {
			continue
		}
		for sx := 0; sx < inkW; sx++ {
			tx := offX + sx
			if tx < 0 || tx >= w {
				continue
			}
			a := scratch.AlphaAt(minX+sx, minY+sy).A
			d.Set(tx, ty, float64(a)/255.0)
		}
	}
	return d
}
