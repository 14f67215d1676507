package svgopt

import (
	"errors"
	"regexp"
	"strings"
)

var errNoRoot = errors.New("svgopt: no root element found")

var commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// Settings is the subset of pipeline settings the optimizer consults.
// Each step is independently gated by its own flag, all defaulting on.
type Settings struct {
	RemoveComments  bool
	RoundCoords     bool
	CollapseGroups  bool
	MergePaths      bool
	OptimizeViewBox bool
	Minify          bool
}

// Optimize runs the assembled SVG string through the seven ordered
// steps: strip comments, parse (falling back straight to minify on
// parse failure), round coordinates, collapse groups, merge paths,
// backfill viewBox, then minify.
func Optimize(svg string, s Settings) string {
	if s.RemoveComments {
		svg = commentPattern.ReplaceAllString(svg, "")
	}

	prolog, root, err := parseDocument(svg)
	if err != nil {
		if s.Minify {
			return minify(svg)
		}
		return svg
	}

	if s.RoundCoords {
		roundCoords(root)
	}
	if s.CollapseGroups {
		collapseGroups(root)
	}
	if s.MergePaths {
		mergePaths(root)
	}
	if s.OptimizeViewBox {
		optimizeViewBox(root)
	}

	out := serialize(prolog, root)
	if s.Minify {
		out = minify(out)
	}
	return out
}

var whitespaceBetweenTags = regexp.MustCompile(`>\s+<`)
var whitespaceAroundEquals = regexp.MustCompile(`\s*=\s*`)
var collapseWhitespace = regexp.MustCompile(`\s+`)

// minify collapses whitespace and strips spacing around <, >, =.
func minify(svg string) string {
	svg = strings.TrimSpace(svg)
	svg = whitespaceBetweenTags.ReplaceAllString(svg, "><")
	svg = whitespaceAroundEquals.ReplaceAllString(svg, "=")
	svg = collapseWhitespace.ReplaceAllString(svg, " ")
	return svg
}
