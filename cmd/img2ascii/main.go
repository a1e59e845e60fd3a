// Command img2ascii converts an image file into character art, printed
// to stdout or written to a text file.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	pb "github.com/cheggaaa/pb/v3"

	img2ascii "github.com/simonzhou0372/SimpleImage2ASCII"
)

func main() {
	cols := flag.Int("cols", 80,
		"Number of character columns")
	rows := flag.Int("rows", 0,
		"Number of character rows (only used with -lock-aspect=false; 0 = same as cols)")
	lockAspect := flag.Bool("lock-aspect", true,
		"Derive rows from cols and the image aspect ratio")
	color := flag.Bool("color", false,
		"Emit ANSI truecolor output")
	background := flag.Bool("bg", false,
		"Paint tile color as background instead of foreground")
	block := flag.Bool("block", false,
		"Use the full block glyph for every colored cell")
	dotBlock := flag.Bool("dot-block", false,
		"Swap matched '.' cells for the full block glyph in color mode")
	palette256 := flag.Bool("palette256", false,
		"Use xterm-256 indexed colors instead of truecolor")
	exportTiles := flag.Bool("export-tiles", false,
		"Export the split tiles as PNG files")
	tileDir := flag.String("tile-dir", "output_tiles",
		"Directory for exported tiles")
	outTxt := flag.String("out-txt", "",
		"Write the output to this file instead of stdout")
	tileW := flag.Int("tile-w", 8,
		"Template tile width in pixels")
	tileH := flag.Int("tile-h", 16,
		"Template tile height in pixels")
	chars := flag.Int("chars", 0,
		"Charset index: 0 = compact, 1 = extended")
	fontPath := flag.String("font", "",
		"Path to a TTF font for glyph templates (default: embedded)")
	workers := flag.Int("workers", 0,
		"Tile evaluation workers (0 = number of CPUs)")
	stats := flag.Bool("stats", false,
		"Print timing statistics to stderr")
	flag.Parse()

	imagePath := flag.Arg(0)
	if imagePath == "" {
		imagePath = "input.png"
	}

	opts := []img2ascii.RendererOption{
		img2ascii.WithColumns(*cols),
		img2ascii.WithLockAspect(*lockAspect),
		img2ascii.WithColor(*color),
		img2ascii.WithBackground(*background),
		img2ascii.WithBlockGlyph(*block),
		img2ascii.WithDotAsBlock(*dotBlock),
		img2ascii.WithPalette256(*palette256),
		img2ascii.WithTileSize(*tileW, *tileH),
		img2ascii.WithFontSource(*fontPath),
		img2ascii.WithWorkers(*workers),
	}
	if !*lockAspect && *rows > 0 {
		opts = append(opts, img2ascii.WithRows(*rows))
	}
	if *chars == 1 {
		opts = append(opts, img2ascii.WithAlphabet(img2ascii.AlphabetExtended))
	}
	if *exportTiles {
		opts = append(opts, img2ascii.WithExportTiles(*tileDir))
	}

	// A progress bar is only useful when the art is not going to the
	// terminal; it draws on stderr while tiles are evaluated.
	var bar *pb.ProgressBar
	if *outTxt != "" {
		var once sync.Once
		opts = append(opts, img2ascii.WithProgress(func(done, total int) {
			once.Do(func() {
				bar = pb.New(total).SetWriter(os.Stderr).Start()
			})
			bar.Increment()
		}))
	}

	r := img2ascii.NewRenderer(opts...)

	text, err := r.RenderFile(imagePath)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2ascii: %v\n", err)
		os.Exit(1)
	}

	if *outTxt != "" {
		if err := os.WriteFile(*outTxt, []byte(text), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "img2ascii: writing %q: %v\n", *outTxt, err)
			os.Exit(1)
		}
		fmt.Printf("Output written to %s\n", *outTxt)
	} else {
		fmt.Println(text)
	}

	if *stats {
		hits, misses := r.TemplateCacheStats()
		fmt.Fprintf(os.Stderr,
			"Template build time: %v\nMatch time: %v\nTiles: %d\n"+
				"Template cache: %d hits, %d misses\n",
			r.BuildTime(), r.MatchTime(), r.TilesMatched(), hits, misses)
	}
}
