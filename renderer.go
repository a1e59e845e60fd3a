package img2ascii

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/simonzhou0372/SimpleImage2ASCII/imageutil"
)

// FullBlock is the glyph used for solid-color cells.
const FullBlock = '█'

// Renderer converts images to character art. Configuration fields are
// set through functional options before the first Render call. The
// rendered output is a pure function of the configuration and the
// input image; template sets are cached per (alphabet, tile size,
// font source) key across renders. A Renderer keeps timing counters,
// so one instance should not run concurrent Render calls; independent
// Renderers are cheap and fully isolated.
type Renderer struct {
	// Grid shape
	Columns    int
	Rows       int  // used only when LockAspect is false; 0 means Columns
	LockAspect bool // derive Rows from the image aspect ratio

	// Color output
	Color      bool // emit ANSI color escapes
	Background bool // paint the tile color as background, not foreground
	UseBlock   bool // always emit FullBlock as the colored glyph
	DotAsBlock bool // swap a matched '.' for FullBlock in color mode
	Palette256 bool // xterm-256 indexed escapes instead of truecolor

	// Template shape
	TileWidth  int
	TileHeight int
	Alphabet   Alphabet
	FontSource string

	// Side channels
	ExportTiles bool
	TileDir     string

	// Workers bounds the tile-evaluation pool; <1 means NumCPU.
	Workers int

	// Progress, when set, is called once per completed tile with the
	// running count and the total. It must be safe for concurrent use.
	Progress func(done, total int)

	cache        *templateCache
	buildTime    time.Duration
	matchTime    time.Duration
	tilesMatched int
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer with the given options. Defaults:
// Columns=80, LockAspect=true, TileWidth=8, TileHeight=16,
// Alphabet=AlphabetCompact, TileDir="output_tiles", Workers=NumCPU.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		Columns:    80,
		LockAspect: true,
		TileWidth:  8,
		TileHeight: 16,
		Alphabet:   AlphabetCompact,
		TileDir:    "output_tiles",
		Workers:    runtime.NumCPU(),
		cache:      newTemplateCache(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithColumns sets the number of character columns.
func WithColumns(columns int) RendererOption {
	return func(r *Renderer) { r.Columns = columns }
}

// WithRows sets an explicit row count and disables aspect locking.
func WithRows(rows int) RendererOption {
	return func(r *Renderer) {
		r.Rows = rows
		r.LockAspect = false
	}
}

// WithLockAspect controls deriving the row count from the source
// aspect ratio and the tile pixel aspect.
func WithLockAspect(lock bool) RendererOption {
	return func(r *Renderer) { r.LockAspect = lock }
}

// WithColor enables ANSI-colored output.
func WithColor(color bool) RendererOption {
	return func(r *Renderer) { r.Color = color }
}

// WithBackground paints the tile color as background behind a space
// (or FullBlock when combined with WithBlockGlyph).
func WithBackground(background bool) RendererOption {
	return func(r *Renderer) { r.Background = background }
}

// WithBlockGlyph forces FullBlock as the glyph for every colored cell.
func WithBlockGlyph(block bool) RendererOption {
	return func(r *Renderer) { r.UseBlock = block }
}

// WithDotAsBlock swaps a matched '.' for FullBlock in color mode,
// which reads better on terminals with thin dot glyphs.
func WithDotAsBlock(swap bool) RendererOption {
	return func(r *Renderer) { r.DotAsBlock = swap }
}

// WithPalette256 emits xterm-256 indexed escapes instead of truecolor.
func WithPalette256(indexed bool) RendererOption {
	return func(r *Renderer) { r.Palette256 = indexed }
}

// WithTileSize sets the template pixel dimensions.
func WithTileSize(width, height int) RendererOption {
	return func(r *Renderer) {
		r.TileWidth = width
		r.TileHeight = height
	}
}

// WithAlphabet selects the candidate character set.
func WithAlphabet(a Alphabet) RendererOption {
	return func(r *Renderer) { r.Alphabet = a }
}

// WithFontSource sets a TrueType file used to render templates. An
// empty or unusable path falls back to the embedded default face.
func WithFontSource(path string) RendererOption {
	return func(r *Renderer) { r.FontSource = path }
}

// WithExportTiles enables writing each tile image under dir; an empty
// dir keeps the default.
func WithExportTiles(dir string) RendererOption {
	return func(r *Renderer) {
		r.ExportTiles = true
		if dir != "" {
			r.TileDir = dir
		}
	}
}

// WithWorkers bounds the tile-evaluation worker pool.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) { r.Workers = n }
}

// WithProgress installs a per-tile completion callback.
func WithProgress(fn func(done, total int)) RendererOption {
	return func(r *Renderer) { r.Progress = fn }
}

// GridRows returns the row count for a source of the given pixel
// dimensions. With aspect lock the grid approximates the image's
// visual aspect ratio, corrected for the tile pixel aspect:
// rows = round((H*columns*tileW)/(W*tileH)), floored at 1.
func (r *Renderer) GridRows(imageWidth, imageHeight int) int {
	if !r.LockAspect {
		if r.Rows >= 1 {
			return r.Rows
		}
		return r.Columns
	}
	if imageWidth < 1 || r.TileHeight < 1 {
		return 1
	}
	rows := int(math.Round(
		float64(imageHeight*r.Columns*r.TileWidth) /
			float64(imageWidth*r.TileHeight)))
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Render converts img to a multi-line text artifact: one line per grid
// row, rows joined by newline. In color mode every cell is wrapped in
// an ANSI color escape and followed by exactly one reset.
func (r *Renderer) Render(img *imageutil.RGBAImage) (string, error) {
	rows := r.GridRows(img.Width(), img.Height())
	grid, err := Partition(img, r.Columns, rows)
	if err != nil {
		return "", err
	}

	if r.ExportTiles {
		if _, err := grid.Export(r.TileDir); err != nil {
			return "", err
		}
	}

	ts, err := r.templates()
	if err != nil {
		return "", err
	}

	return r.assemble(r.renderGrid(grid, ts)), nil
}

// RenderFile loads the image at path and renders it.
func (r *Renderer) RenderFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %q", ErrImageNotFound, path)
	}
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return "", err
	}
	return r.Render(img)
}

// templates returns the template set for the current configuration,
// building it on first use and reusing it afterwards.
func (r *Renderer) templates() (*TemplateSet, error) {
	key := templateKey{
		alphabet:   r.Alphabet,
		width:      r.TileWidth,
		height:     r.TileHeight,
		fontSource: r.FontSource,
	}
	start := time.Now()
	ts, err := r.cache.fetch(key)
	r.buildTime += time.Since(start)
	return ts, err
}

// renderedCell is one evaluated tile: the matched character and, in
// color mode, the tile's representative color.
type renderedCell struct {
	char  rune
	color imageutil.RGB
}

// renderGrid evaluates every tile through a bounded worker pool.
// Workers write to disjoint indices of a preallocated row-major slice,
// so the output order is independent of completion order.
func (r *Renderer) renderGrid(grid *Grid, ts *TemplateSet) [][]renderedCell {
	start := time.Now()

	cells := make([][]renderedCell, grid.Rows)
	for i := range cells {
		cells[i] = make([]renderedCell, grid.Cols)
	}

	total := grid.Rows * grid.Cols
	workers := r.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}

	jobs := make(chan int, workers)
	var completed int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				row, col := idx/grid.Cols, idx%grid.Cols
				tile := &grid.Tiles[row][col]
				cell := renderedCell{char: ts.MatchTile(tile).Char}
				if r.Color {
					cell.color = AverageColor(tile.Image)
				}
				cells[row][col] = cell
				if r.Progress != nil {
					r.Progress(int(atomic.AddInt64(&completed, 1)), total)
				}
			}
		}()
	}
	for idx := 0; idx < total; idx++ {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	r.matchTime += time.Since(start)
	r.tilesMatched += total
	return cells
}

// assemble joins evaluated cells into the final text.
func (r *Renderer) assemble(cells [][]renderedCell) string {
	var sb strings.Builder
	for i, row := range cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if !r.Color {
				sb.WriteRune(cell.char)
				continue
			}

			ch := cell.char
			if r.DotAsBlock && ch == '.' {
				ch = FullBlock
			}
			if r.Background {
				sb.WriteString(r.backgroundEscape(cell.color))
				if r.UseBlock {
					sb.WriteRune(FullBlock)
				} else {
					sb.WriteByte(' ')
				}
			} else {
				sb.WriteString(r.foregroundEscape(cell.color))
				if r.UseBlock {
					sb.WriteRune(FullBlock)
				} else {
					sb.WriteRune(ch)
				}
			}
			sb.WriteString(Reset)
		}
	}
	return sb.String()
}

func (r *Renderer) foregroundEscape(c imageutil.RGB) string {
	if r.Palette256 {
		return Ansi256Foreground(c)
	}
	return TruecolorForeground(c)
}

func (r *Renderer) backgroundEscape(c imageutil.RGB) string {
	if r.Palette256 {
		return Ansi256Background(c)
	}
	return TruecolorBackground(c)
}

// BuildTime returns the cumulative time spent building or fetching
// template sets.
func (r *Renderer) BuildTime() time.Duration { return r.buildTime }

// MatchTime returns the cumulative time spent evaluating tiles.
func (r *Renderer) MatchTime() time.Duration { return r.matchTime }

// TilesMatched returns the total number of tiles evaluated.
func (r *Renderer) TilesMatched() int { return r.tilesMatched }

// TemplateCacheStats returns template cache hit/miss counters.
func (r *Renderer) TemplateCacheStats() (hits, misses int) {
	return r.cache.stats()
}
