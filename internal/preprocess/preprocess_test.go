package preprocess

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

func TestUpscaleFactor(t *testing.T) {
	cases := []struct {
		side int
		want int
	}{
		{50, 4},
		{199, 4},
		{200, 3},
		{499, 3},
		{500, 2},
		{999, 2},
		{1000, 1},
		{4000, 1},
	}
	for _, c := range cases {
		if got := upscaleFactor(c.side, c.side); got != c.want {
			t.Errorf("upscaleFactor(%d) = %d, want %d", c.side, got, c.want)
		}
	}
}

func TestApplyPixelArtIsIdentity(t *testing.T) {
	img := solidImage(t, 300, 300, 10, 20, 30)
	out := Apply(img, "pixel_art", Toggles(false, true, true, true, true))
	if out.Width() != 300 || out.Height() != 300 {
		t.Fatalf("pixel_art stage should not resize when upscale disabled")
	}
	b, g, r, _ := out.At(0, 0)
	if b != 10 || g != 20 || r != 30 {
		t.Fatalf("pixel_art preprocessing should be a no-op, got (%d,%d,%d)", b, g, r)
	}
}

func TestApplySolidColorStaysUniform(t *testing.T) {
	img := solidImage(t, 64, 64, 100, 150, 200)
	out := Apply(img, "logo", Toggles(false, true, true, true, true))
	b0, g0, r0, _ := out.At(0, 0)
	b1, g1, r1, _ := out.At(32, 32)
	if b0 != b1 || g0 != g1 || r0 != r1 {
		t.Fatalf("solid-color image should remain uniform after preprocessing")
	}
}

func TestSafeStageRecoversFromPanic(t *testing.T) {
	img := solidImage(t, 4, 4, 1, 2, 3)
	out := safeStage(img, func(*rasterimg.Image) *rasterimg.Image {
		panic("boom")
	})
	if out != img {
		t.Fatalf("safeStage should degrade to the unmodified input on panic")
	}
}

func TestLaplacianVarianceZeroOnSolidImage(t *testing.T) {
	img := solidImage(t, 16, 16, 5, 5, 5)
	if v := laplacianVariance(img); v != 0 {
		t.Fatalf("laplacianVariance of a solid image = %f, want 0", v)
	}
}
