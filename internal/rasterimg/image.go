package rasterimg

// Image is a dense BGR or BGRA 8-bit-per-channel pixel buffer.
//
// Channel order is fixed at BGR(A) for the lifetime of the buffer;
// conversions to/from other orders (e.g. the RGBA used by Go's standard
// image package) happen only at the decode and export boundaries, never
// inside the pipeline.
type Image struct {
	data   []byte
	width  int
	height int
	format Format
}

// New creates a zeroed image of the given format and dimensions.
func New(width, height int, format Format) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Image{
		data:   make([]byte, format.RowBytes(width)*height),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// NewFromData wraps existing pixel data. data must hold at least
// format.RowBytes(width)*height bytes; a shorter buffer is rejected.
func NewFromData(width, height int, format Format, data []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) < format.RowBytes(width)*height {
		return nil, ErrDataTooSmall
	}
	return &Image{data: data, width: width, height: height, format: format}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Format returns the pixel format.
func (img *Image) Format() Format { return img.format }

// Data returns the raw pixel bytes, in row-major order.
func (img *Image) Data() []byte { return img.data }

// HasAlpha reports whether this image carries an alpha channel.
func (img *Image) HasAlpha() bool { return img.format.HasAlpha() }

// At returns the BGR (and alpha, if present) bytes at (x, y).
// Returns zero values for out-of-bounds coordinates.
func (img *Image) At(x, y int) (b, g, r, a uint8) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return 0, 0, 0, 0
	}
	n := img.format.Channels()
	i := (y*img.width + x) * n
	switch img.format {
	case FormatGray8:
		v := img.data[i]
		return v, v, v, 255
	case FormatBGR8:
		return img.data[i], img.data[i+1], img.data[i+2], 255
	case FormatBGRA8:
		return img.data[i], img.data[i+1], img.data[i+2], img.data[i+3]
	default:
		return 0, 0, 0, 0
	}
}

// SetBGR sets the BGR bytes at (x, y). No-op for out-of-bounds coordinates
// or grayscale images.
func (img *Image) SetBGR(x, y int, b, g, r uint8) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	n := img.format.Channels()
	i := (y*img.width + x) * n
	switch img.format {
	case FormatBGR8:
		img.data[i], img.data[i+1], img.data[i+2] = b, g, r
	case FormatBGRA8:
		img.data[i], img.data[i+1], img.data[i+2] = b, g, r
	}
}

// SetAlpha sets the alpha byte at (x, y). No-op for formats without alpha.
func (img *Image) SetAlpha(x, y int, a uint8) {
	if !img.HasAlpha() || x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	i := (y*img.width+x)*4 + 3
	img.data[i] = a
}

// EnsureColor returns img unchanged if it already has BGR(A) color
// channels, or a 3-channel BGR copy if img is grayscale. Mirrors the
// original engine's GRAY2BGR promotion before quantization.
func (img *Image) EnsureColor() *Image {
	if img.format != FormatGray8 {
		return img
	}
	out, _ := New(img.width, img.height, FormatBGR8)
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			v := img.data[y*img.width+x]
			out.SetBGR(x, y, v, v, v)
		}
	}
	return out
}

// SplitAlpha separates the alpha channel from a BGRA image, returning a
// BGR-only copy of the color planes and the alpha plane as a standalone
// single-channel image. If img has no alpha channel, it returns img
// itself and a nil alpha plane.
func (img *Image) SplitAlpha() (color *Image, alpha *Image) {
	if !img.HasAlpha() {
		return img, nil
	}
	color, _ = New(img.width, img.height, FormatBGR8)
	alpha, _ = New(img.width, img.height, FormatGray8)
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			b, g, r, a := img.At(x, y)
			color.SetBGR(x, y, b, g, r)
			alpha.data[y*img.width+x] = a
		}
	}
	return color, alpha
}

// MergeAlpha combines a BGR color image with an alpha plane (already
// resized to match color's dimensions) into a BGRA image.
func MergeAlpha(color, alpha *Image) *Image {
	out, _ := New(color.width, color.height, FormatBGRA8)
	for y := 0; y < color.height; y++ {
		for x := 0; x < color.width; x++ {
			b, g, r, _ := color.At(x, y)
			a := alpha.data[y*alpha.width+x]
			i := (y*out.width + x) * 4
			out.data[i], out.data[i+1], out.data[i+2], out.data[i+3] = b, g, r, a
		}
	}
	return out
}

// GrayscaleValue returns the luma-weighted grayscale value at (x, y).
func (img *Image) GrayscaleValue(x, y int) uint8 {
	b, g, r, _ := img.At(x, y)
	return uint8((299*int(r) + 587*int(g) + 114*int(b)) / 1000)
}

// ToGray returns a single-channel grayscale copy of img.
func (img *Image) ToGray() *Image {
	out, _ := New(img.width, img.height, FormatGray8)
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			out.data[y*img.width+x] = img.GrayscaleValue(x, y)
		}
	}
	return out
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	data := make([]byte, len(img.data))
	copy(data, img.data)
	return &Image{data: data, width: img.width, height: img.height, format: img.format}
}
