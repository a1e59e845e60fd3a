package img2ascii

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/simonzhou0372/SimpleImage2ASCII/imageutil"
)

// Tile is one rectangular region of the source image, destined to
// become a single output character cell. Box is in source-image pixel
// coordinates; Image is an owned copy of the covered pixels and may be
// zero-sized when the grid is finer than the image.
type Tile struct {
	Row, Col int
	Box      image.Rectangle
	Image    *imageutil.RGBAImage
}

// Grid is the row-major result of partitioning an image. Tiles[r][c]
// covers row r, column c.
type Grid struct {
	Rows, Cols int
	Tiles      [][]Tile
}

// Partition splits img into rows x columns tiles with exact coverage:
// width W is divided so the first W%columns columns are one pixel
// wider than the rest, and symmetrically for rows. The union of all
// tile boxes covers [0,W) x [0,H) with no overlap and no gaps, for any
// combination of dimensions, including columns > W or rows > H (those
// grids contain zero-area tiles).
func Partition(img *imageutil.RGBAImage, columns, rows int) (*Grid, error) {
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: columns=%d rows=%d",
			ErrInvalidDimensions, columns, rows)
	}

	w, h := img.Width(), img.Height()
	colBase, colRem := w/columns, w%columns
	rowBase, rowRem := h/rows, h%rows

	grid := &Grid{
		Rows:  rows,
		Cols:  columns,
		Tiles: make([][]Tile, rows),
	}

	y := 0
	for r := 0; r < rows; r++ {
		rowHeight := rowBase
		if r < rowRem {
			rowHeight++
		}
		grid.Tiles[r] = make([]Tile, columns)

		x := 0
		for c := 0; c < columns; c++ {
			colWidth := colBase
			if c < colRem {
				colWidth++
			}
			box := image.Rect(x, y, x+colWidth, y+rowHeight)
			grid.Tiles[r][c] = Tile{
				Row:   r,
				Col:   c,
				Box:   box,
				Image: imageutil.Crop(img, box),
			}
			x += colWidth
		}
		y += rowHeight
	}

	return grid, nil
}

// Export writes every tile to dir as PNG, creating dir if absent.
// Filenames are 1-based: tile_r<row+1>c<col+1>.png. Zero-area tiles
// have no pixels to encode and are skipped. Returns the written paths;
// on error, files already written remain on disk.
func (g *Grid) Export(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create tile directory %q: %w", dir, err)
	}

	var paths []string
	for _, row := range g.Tiles {
		for _, tile := range row {
			if tile.Image.Area() == 0 {
				continue
			}
			name := fmt.Sprintf("tile_r%dc%d.png", tile.Row+1, tile.Col+1)
			path := filepath.Join(dir, name)
			if err := imageutil.SavePNG(tile.Image, path); err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}
