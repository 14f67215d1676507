package svgopt

import (
	"strings"
	"testing"
)

func defaultSettings() Settings {
	return Settings{
		RemoveComments:  true,
		RoundCoords:     true,
		CollapseGroups:  true,
		MergePaths:      true,
		OptimizeViewBox: true,
		Minify:          true,
	}
}

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
<!-- a comment -->
<g id="layer1">
<path fill="#ff0000" fill-rule="evenodd" d="M 0.123456 0.000001 L 10.000000 0.0 Z"/>
<path fill="#ff0000" fill-rule="evenodd" d="M 1 1 L 2 2 Z"/>
</g>
<path fill="#00ff00" fill-rule="evenodd" d="M 3 3 L 4 4 Z"/>
</svg>`

func TestOptimizeRoundsCoordinates(t *testing.T) {
	out := Optimize(sampleSVG, defaultSettings())
	if strings.Contains(out, "0.123456") {
		t.Fatalf("coordinates were not rounded: %s", out)
	}
	if !strings.Contains(out, "0.12") {
		t.Fatalf("rounded coordinate missing: %s", out)
	}
}

func TestOptimizeCollapsesIDOnlyGroup(t *testing.T) {
	out := Optimize(sampleSVG, defaultSettings())
	if strings.Contains(out, "<g") {
		t.Fatalf("id-only group should have been collapsed: %s", out)
	}
}

func TestOptimizeMergesAdjacentSameFillPaths(t *testing.T) {
	out := Optimize(sampleSVG, defaultSettings())
	if strings.Count(out, "<path") != 2 {
		t.Fatalf("expected 2 paths after merging same-fill siblings, got: %s", out)
	}
}

func TestOptimizeBackfillsViewBox(t *testing.T) {
	out := Optimize(sampleSVG, defaultSettings())
	if !strings.Contains(out, `viewBox="0 0 10 10"`) {
		t.Fatalf("viewBox was not backfilled: %s", out)
	}
}

func TestOptimizeStripsComments(t *testing.T) {
	out := Optimize(sampleSVG, defaultSettings())
	if strings.Contains(out, "a comment") {
		t.Fatalf("comment was not stripped: %s", out)
	}
}

func TestOptimizeIsIdempotent(t *testing.T) {
	once := Optimize(sampleSVG, defaultSettings())
	twice := Optimize(once, defaultSettings())
	if once != twice {
		t.Fatalf("optimize is not idempotent:\nonce:  %s\ntwice: %s", once, twice)
	}
}

func TestOptimizeFallsBackToMinifyOnParseFailure(t *testing.T) {
	broken := "<svg><path d=\"M 0 0\"></svg" // unterminated/unbalanced
	out := Optimize(broken, defaultSettings())
	if out == "" {
		t.Fatalf("fallback minify should still return something")
	}
}
