// Package vectorize converts a raster image into a compact SVG document
// of filled color regions.
//
// # Overview
//
// vectorize implements the raster-to-vector CORE: decode, mode detection,
// adaptive preprocessing, color quantization, per-color contour tracing,
// and SVG assembly/optimization.
//
// # Quick Start
//
//	import "github.com/imagetrace/vectorize"
//
//	result, err := vectorize.Vectorize(imageBytes, vectorize.DefaultSettings(), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("out.svg", []byte(result.SVG), 0o644)
//
// # Architecture
//
// The package is organized into:
//   - Public API: Settings, Result, Vectorize, Error
//   - internal/rasterimg: BGR(A) pixel buffers, alpha planes, masks
//   - internal/decode: byte blob to rasterimg.Image
//   - internal/modedetect: photo/logo/line_art/pixel_art classification
//   - internal/preprocess: upscale, denoise, bilateral, CLAHE, sharpen
//   - internal/quantize: palette construction, assignment, refinement
//   - internal/trace: contour extraction, simplification, curve fitting
//   - internal/svgopt: SVG coordinate rounding and structural optimization
//
// # Scope
//
// This package is the CORE pipeline only. An HTTP facade, job lifecycle
// bookkeeping, batch concurrency control, multi-format rasterization
// export, and a segmentation editor for already-produced layers are
// expected to be built on top of Vectorize by callers; they are not part
// of this module.
//
// # Determinism
//
// For identical input bytes and Settings, Vectorize produces
// byte-identical SVG output: every source of randomness (k-means pixel
// sampling, unique-color sampling in mode detection) is seeded from the
// fixed constant 42.
package vectorize
