package modedetect

import (
	"testing"

	"github.com/imagetrace/vectorize/internal/rasterimg"
)

func solidImage(t *testing.T, w, h int, b, g, r uint8) *rasterimg.Image {
	t.Helper()
	img, err := rasterimg.New(w, h, rasterimg.FormatBGR8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetBGR(x, y, b, g, r)
		}
	}
	return img
}

func TestDetectGrayscaleIsLineArt(t *testing.T) {
	img, _ := rasterimg.New(8, 8, rasterimg.FormatGray8)
	if got := Detect(img); got != "line_art" {
		t.Fatalf("Detect = %q, want line_art", got)
	}
}

func TestDetectSolidColorIsLogo(t *testing.T) {
	img := solidImage(t, 100, 100, 0, 0, 255)
	if got := Detect(img); got != "logo" {
		t.Fatalf("Detect = %q, want logo", got)
	}
}
