package vectorize

import "github.com/imagetrace/vectorize/internal/rasterimg"

// Result is the bundle returned by a successful Vectorize call.
// Ownership of every field transfers to the caller; nothing is retained
// or cached by the package across invocations.
type Result struct {
	// SVG is the final (optionally optimized) SVG document.
	SVG string

	// QuantizedImage holds the post-quantization BGR pixels: every
	// pixel replaced by its palette color.
	QuantizedImage *rasterimg.Image

	// Palette is the ordered list of "#rrggbb" colors, 1 to 64 entries.
	Palette []string

	// Masks holds one binary mask per Palette entry, in the same order.
	Masks []*rasterimg.Mask

	// Width and Height are the image's dimensions after preprocessing
	// (i.e. after any upscale), matching the SVG's viewBox.
	Width, Height int
}
