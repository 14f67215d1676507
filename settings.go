package vectorize

// QuantizeMethod selects the palette-construction algorithm.
type QuantizeMethod uint8

const (
	// MethodKMeans is MiniBatch-style k-means (the default).
	MethodKMeans QuantizeMethod = iota
	// MethodMedianCut is classical Heckbert median-cut.
	MethodMedianCut
	// MethodOctree is k-means-backed; see SPEC_FULL.md's Open Question
	// resolution for why the name is preserved without a true octree.
	MethodOctree
)

func (m QuantizeMethod) String() string {
	switch m {
	case MethodMedianCut:
		return "median_cut"
	case MethodOctree:
		return "octree"
	default:
		return "kmeans"
	}
}

// ParseQuantizeMethod parses a settings-key method string, defaulting to
// MethodKMeans for unrecognized values.
func ParseQuantizeMethod(s string) QuantizeMethod {
	switch s {
	case "median_cut":
		return MethodMedianCut
	case "octree":
		return MethodOctree
	default:
		return MethodKMeans
	}
}

// Detail selects the RDP epsilon and Chaikin iteration count used by the
// tracer. Higher detail keeps more geometry at the cost of larger paths.
type Detail uint8

const (
	DetailLow Detail = iota
	DetailMedium
	DetailHigh
	DetailUltra
)

func (d Detail) String() string {
	switch d {
	case DetailLow:
		return "low"
	case DetailHigh:
		return "high"
	case DetailUltra:
		return "ultra"
	default:
		return "medium"
	}
}

// ParseDetail parses a settings-key detail string, defaulting to
// DetailMedium for unrecognized values.
func ParseDetail(s string) Detail {
	switch s {
	case "low":
		return DetailLow
	case "high":
		return DetailHigh
	case "ultra":
		return DetailUltra
	default:
		return DetailMedium
	}
}

// Settings configures one Vectorize call. Unlike the original engine's
// mixed string/int/bool settings map, every field here is typed and
// defaults are applied once, by DefaultSettings, rather than at each
// lookup site.
type Settings struct {
	// Mode selects the preprocessing/quantization parameter profile.
	// ModeAuto runs mode detection on the decoded image.
	Mode Mode

	// NColors is the target palette size, clamped to [2, 64]. Zero
	// requests auto-K from the grayscale histogram.
	NColors int

	// QuantizeMethod selects the palette-construction algorithm.
	QuantizeMethod QuantizeMethod

	// Detail selects the simplification/smoothing aggressiveness.
	Detail Detail

	// Smooth enables Chaikin corner-cutting and Catmull-Rom-to-Bezier
	// curve fitting. When false, contours are emitted as straight lines.
	Smooth bool

	// Upscale, Denoise, Bilateral, CLAHE, Sharpen toggle the
	// corresponding preprocessor sub-stage. Each is additionally gated
	// by the mode-indexed parameter matrix (e.g. pixel_art always skips
	// denoise regardless of this flag).
	Upscale   bool
	Denoise   bool
	Bilateral bool
	CLAHE     bool
	Sharpen   bool

	// Background is a hex color ("#rrggbb") for an opaque background
	// rect, or "none" to omit it.
	Background string

	// Optimize enables the SVG optimizer pass.
	Optimize bool

	// MinArea is the minimum enclosed contour area, in px^2, below which
	// a contour is discarded.
	MinArea int

	// RoundCoords, RemoveComments, Minify, MergePaths, CollapseGroups,
	// OptimizeViewBox gate the optimizer's individual sub-transforms.
	// They have no effect when Optimize is false.
	RoundCoords     bool
	RemoveComments  bool
	Minify          bool
	MergePaths      bool
	CollapseGroups  bool
	OptimizeViewBox bool
}

// DefaultSettings returns the default value of every setting.
func DefaultSettings() Settings {
	return Settings{
		Mode:            ModeAuto,
		NColors:         16,
		QuantizeMethod:  MethodKMeans,
		Detail:          DetailMedium,
		Smooth:          true,
		Upscale:         true,
		Denoise:         true,
		Bilateral:       true,
		CLAHE:           true,
		Sharpen:         true,
		Background:      "none",
		Optimize:        true,
		MinArea:         4,
		RoundCoords:     true,
		RemoveComments:  true,
		Minify:          true,
		MergePaths:      true,
		CollapseGroups:  true,
		OptimizeViewBox: true,
	}
}

// normalize applies the settings-wide clamps once, at pipeline entry:
// NColors to [2, 64] (0 left as a sentinel for auto-K), and MinArea to
// a non-negative value.
func (s Settings) normalize() Settings {
	if s.NColors != 0 {
		if s.NColors < 2 {
			s.NColors = 2
		}
		if s.NColors > 64 {
			s.NColors = 64
		}
	}
	if s.MinArea < 0 {
		s.MinArea = 0
	}
	return s
}
