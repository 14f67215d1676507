package vectorize

import (
	"log/slog"

	"github.com/imagetrace/vectorize/internal/decode"
	"github.com/imagetrace/vectorize/internal/modedetect"
	"github.com/imagetrace/vectorize/internal/preprocess"
	"github.com/imagetrace/vectorize/internal/quantize"
	"github.com/imagetrace/vectorize/internal/rasterimg"
	"github.com/imagetrace/vectorize/internal/svgopt"
	"github.com/imagetrace/vectorize/internal/trace"
)

// Vectorize runs the full decode -> mode-detect -> preprocess -> quantize
// -> trace -> assemble -> optimize pipeline over image bytes, returning
// the assembled SVG plus the intermediate quantized image, palette, and
// masks. progress, if non-nil, is called at seven fixed boundaries: 0
// (loading), 10 (preprocessing), 30 (quantizing), 55 (tracing), 80
// (assembling), 90 (optimizing), 100 (done).
func Vectorize(data []byte, settings Settings, progress ProgressFunc) (Result, error) {
	s := settings.normalize()

	reportProgress(progress, 0, "loading")
	img, err := decode.Decode(data)
	if err != nil {
		return Result{}, newError(KindDecode, "failed to decode image", err)
	}
	if img.Width() == 0 || img.Height() == 0 {
		return Result{}, newError(KindEmptyInput, "decoded image has zero pixels", nil)
	}
	img = img.EnsureColor()

	mode := s.Mode
	if mode == ModeAuto {
		mode = ParseMode(modedetect.Detect(img))
	}

	reportProgress(progress, 10, "preprocessing")
	toggles := preprocess.Toggles(s.Upscale, s.Denoise, s.Bilateral, s.CLAHE, s.Sharpen)
	processed := preprocess.Apply(img, mode.String(), toggles)

	var alphaPlane *rasterimg.Image
	colorOnly := processed
	if processed.HasAlpha() {
		colorOnly, alphaPlane = processed.SplitAlpha()
	}

	reportProgress(progress, 30, "quantizing")
	qMethod := quantize.Method(s.QuantizeMethod)
	qResult := quantize.Quantize(colorOnly, s.NColors, qMethod, alphaPlane)
	if len(qResult.Palette) == 0 {
		return Result{}, newError(KindQuantization, "quantizer produced an empty palette", nil)
	}

	reportProgress(progress, 55, "tracing")
	layerPaths := make([]trace.LayerPath, 0, len(qResult.Masks))
	for i, mask := range qResult.Masks {
		boolMask := toBoolMask(mask)
		layers := safeExtractContours(boolMask, mask.Width(), mask.Height(), float64(s.MinArea))
		if len(layers) == 0 {
			continue
		}
		layerPaths = append(layerPaths, trace.LayerPath{FillHex: qResult.Palette[i], Layers: layers})
	}

	reportProgress(progress, 80, "assembling")
	svg := trace.AssembleSVG(colorOnly.Width(), colorOnly.Height(), s.Background, layerPaths, s.Detail.String(), s.Smooth)

	reportProgress(progress, 90, "optimizing")
	if s.Optimize {
		svg = safeOptimize(svg, svgopt.Settings{
			RemoveComments:  s.RemoveComments,
			RoundCoords:     s.RoundCoords,
			CollapseGroups:  s.CollapseGroups,
			MergePaths:      s.MergePaths,
			OptimizeViewBox: s.OptimizeViewBox,
			Minify:          s.Minify,
		})
	}

	reportProgress(progress, 100, "done")
	return Result{
		SVG:            svg,
		QuantizedImage: qResult.QuantizedImage,
		Palette:        qResult.Palette,
		Masks:          qResult.Masks,
		Width:          colorOnly.Width(),
		Height:         colorOnly.Height(),
	}, nil
}

func toBoolMask(mask *rasterimg.Mask) []bool {
	data := mask.Data()
	out := make([]bool, len(data))
	for i, v := range data {
		out[i] = v != 0
	}
	return out
}

// safeExtractContours degrades a layer to "no contours" (StageDegraded)
// rather than failing the whole pipeline if contour tracing panics on a
// pathological mask.
func safeExtractContours(mask []bool, w, h int, minArea float64) (layers []trace.Layer) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("contour tracing degraded", slog.Any("panic", r))
			layers = nil
		}
	}()
	return trace.ExtractContours(mask, w, h, minArea)
}

// safeOptimize degrades the optimizer to identity (StageDegraded): if it
// panics, the unoptimized SVG is returned instead.
func safeOptimize(svg string, s svgopt.Settings) (out string) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("svg optimization degraded", slog.Any("panic", r))
			out = svg
		}
	}()
	return svgopt.Optimize(svg, s)
}
