package vectorize

// ProgressFunc receives percent-complete and a stage name at the seven
// fixed pipeline boundaries: loading(0), preprocessing(10),
// quantizing(30), tracing(55), assembling(80), optimizing(90), done(100).
//
// A panic from a ProgressFunc is recovered and discarded: progress
// reporting is advisory and must never affect pipeline state.
type ProgressFunc func(percent int, stage string)

// reportProgress invokes fn if non-nil, trapping any panic.
func reportProgress(fn ProgressFunc, percent int, stage string) {
	if fn == nil {
		return
	}
	defer func() { _ = recover() }()
	fn(percent, stage)
}
