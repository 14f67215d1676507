package vectorize

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int, fill func(x, y int) color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, fill(x, y))
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode PNG: %v", err)
	}
	return buf.Bytes()
}

func solidRed(int, int) color.NRGBA { return color.NRGBA{R: 255, A: 255} }

func TestVectorizeSolidColorProducesOnePath(t *testing.T) {
	data := encodePNG(t, 10, 10, solidRed)
	settings := DefaultSettings()
	settings.Upscale = false

	result, err := Vectorize(data, settings, nil)
	if err != nil {
		t.Fatalf("Vectorize: %v", err)
	}
	if strings.Count(result.SVG, "<path") != 1 {
		t.Fatalf("expected exactly one <path>, got: %s", result.SVG)
	}
	if !strings.Contains(result.SVG, `fill="#ff0000"`) {
		t.Fatalf("expected fill=#ff0000, got: %s", result.SVG)
	}
	if !strings.Contains(result.SVG, `viewBox="0 0 10 10"`) {
		t.Fatalf("expected viewBox 0 0 10 10, got: %s", result.SVG)
	}
}

func TestVectorizeTwoHalvesProducesTwoLayers(t *testing.T) {
	fill := func(x, y int) color.NRGBA {
		if x < 16 {
			return color.NRGBA{A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	data := encodePNG(t, 32, 32, fill)

	settings := DefaultSettings()
	settings.NColors = 2
	settings.Detail = DetailMedium
	settings.Upscale = false

	result, err := Vectorize(data, settings, nil)
	if err != nil {
		t.Fatalf("Vectorize: %v", err)
	}
	if len(result.Palette) != 2 {
		t.Fatalf("Palette len = %d, want 2", len(result.Palette))
	}
	if strings.Count(result.SVG, "<path") != 2 {
		t.Fatalf("expected two paths, got: %s", result.SVG)
	}
}

func TestVectorizeIsDeterministic(t *testing.T) {
	fill := func(x, y int) color.NRGBA {
		if x < 16 {
			return color.NRGBA{A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	data := encodePNG(t, 32, 32, fill)
	settings := DefaultSettings()
	settings.Upscale = false

	first, err := Vectorize(data, settings, nil)
	if err != nil {
		t.Fatalf("Vectorize: %v", err)
	}
	second, err := Vectorize(data, settings, nil)
	if err != nil {
		t.Fatalf("Vectorize: %v", err)
	}
	if first.SVG != second.SVG {
		t.Fatalf("repeated Vectorize calls produced different SVGs")
	}
}

func TestVectorizePixelArtModeSkipsDenoise(t *testing.T) {
	colors := []color.NRGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	fill := func(x, y int) color.NRGBA { return colors[(x+y)%len(colors)] }
	data := encodePNG(t, 4, 4, fill)

	settings := DefaultSettings()
	settings.Mode = ModePixelArt
	settings.NColors = 3

	result, err := Vectorize(data, settings, nil)
	if err != nil {
		t.Fatalf("Vectorize: %v", err)
	}
	if len(result.Palette) != 3 {
		t.Fatalf("Palette len = %d, want 3", len(result.Palette))
	}
	// Without denoising the palette is exactly the three source colors;
	// any blur would blend them into off-primary cluster centers.
	want := map[string]bool{"#ff0000": true, "#00ff00": true, "#0000ff": true}
	for _, p := range result.Palette {
		if !want[p] {
			t.Fatalf("Palette = %v, want exactly the source colors", result.Palette)
		}
	}
}

func TestVectorizeRejectsUndecodableInput(t *testing.T) {
	_, err := Vectorize([]byte("not an image"), DefaultSettings(), nil)
	if err == nil {
		t.Fatal("expected an error for undecodable input")
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if verr.Kind != KindDecode {
		t.Fatalf("Kind = %v, want KindDecode", verr.Kind)
	}
}

func TestVectorizeReportsProgressBoundaries(t *testing.T) {
	data := encodePNG(t, 10, 10, solidRed)
	var stages []string
	progress := func(percent int, stage string) {
		stages = append(stages, stage)
	}
	if _, err := Vectorize(data, DefaultSettings(), progress); err != nil {
		t.Fatalf("Vectorize: %v", err)
	}
	if len(stages) == 0 {
		t.Fatal("expected at least one progress callback")
	}
	if stages[0] != "loading" || stages[len(stages)-1] != "done" {
		t.Fatalf("stages = %v, want to start with loading and end with done", stages)
	}
}
