package img2ascii

import "errors"

var (
	// ErrImageNotFound indicates the source image path does not exist
	// or cannot be opened. Fatal; wrapped with the offending path.
	ErrImageNotFound = errors.New("img2ascii: image not found")

	// ErrInvalidDimensions indicates a grid or tile dimension below 1.
	// Fatal; surfaced before any pixel work begins.
	ErrInvalidDimensions = errors.New("img2ascii: dimensions must be >= 1")

	// ErrTemplateRender indicates a glyph could not be rasterized with
	// the configured TrueType source. It is recovered internally by the
	// built-in bitmap-font renderer and never escapes the package.
	ErrTemplateRender = errors.New("img2ascii: glyph could not be rasterized")

	// ErrNoMatchingTemplate indicates no template shares the tile's
	// density-map dimensions. It is recovered internally by the
	// blank-glyph sentinel and never escapes the package.
	ErrNoMatchingTemplate = errors.New("img2ascii: no template matches tile dimensions")
)
