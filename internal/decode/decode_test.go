package decode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int, fill color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	data := encodePNG(t, 10, 10, color.NRGBA{R: 255, A: 255})

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width() != 10 || img.Height() != 10 {
		t.Fatalf("got %dx%d, want 10x10", img.Width(), img.Height())
	}
	b, g, r, a := img.At(0, 0)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Fatalf("At(0,0) = (%d,%d,%d,%d), want (0,0,255,255) BGRA", b, g, r, a)
	}
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := Decode([]byte("not an image"))
	if err != ErrUnsupported {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}
