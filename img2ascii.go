// Package img2ascii converts raster images into character art. An
// image is partitioned into a grid of pixel tiles, every character of
// a chosen alphabet is pre-rendered into a normalized ink-density map
// at the tile size, and each tile is assigned the character whose
// density map matches it with the lowest mean squared error. Output is
// plain text or ANSI-colored text (truecolor or xterm-256).
package img2ascii

// ESC is the ANSI escape character used in all emitted sequences.
const ESC = "\x1b"

// Reset clears any active ANSI color attributes. Every colored cell in
// the output is followed by one Reset so color never bleeds into the
// neighboring cell.
const Reset = ESC + "[0m"
