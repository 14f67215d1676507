// Command vectorize converts a raster image file into an SVG on disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/imagetrace/vectorize"
)

func main() {
	var (
		input      = flag.String("input", "", "path to the source raster image")
		output     = flag.String("output", "out.svg", "path to write the resulting SVG")
		mode       = flag.String("mode", "auto", "auto, photo, logo, line_art, or pixel_art")
		nColors    = flag.Int("colors", 16, "target palette size (0 = auto)")
		method     = flag.String("method", "kmeans", "kmeans, median_cut, or octree")
		detail     = flag.String("detail", "medium", "low, medium, high, or ultra")
		background = flag.String("background", "none", "hex background color, or none")
		quiet      = flag.Bool("quiet", false, "suppress progress output")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("missing required -input flag")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *input, err)
	}

	settings := vectorize.DefaultSettings()
	settings.Mode = vectorize.ParseMode(*mode)
	settings.NColors = *nColors
	settings.QuantizeMethod = vectorize.ParseQuantizeMethod(*method)
	settings.Detail = vectorize.ParseDetail(*detail)
	settings.Background = *background

	var progress vectorize.ProgressFunc
	if !*quiet {
		progress = func(percent int, stage string) {
			fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", percent, stage)
		}
	}

	result, err := vectorize.Vectorize(data, settings, progress)
	if err != nil {
		log.Fatalf("vectorize failed: %v", err)
	}

	if err := os.WriteFile(*output, []byte(result.SVG), 0644); err != nil {
		log.Fatalf("failed to write %s: %v", *output, err)
	}

	log.Printf("wrote %s (%dx%d, %d colors)\n", *output, result.Width, result.Height, len(result.Palette))
}
