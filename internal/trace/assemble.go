package trace

import (
	"fmt"
	"strings"
)

// LayerPath is one color layer's assembled path data, ready to embed
// in the document.
type LayerPath struct {
	FillHex string
	Layers  []Layer
}

// AssembleSVG builds the final document: XML declaration, <svg> root
// with viewBox/width/height, an optional background rect, then one
// <path> per layer.
func AssembleSVG(width, height int, background string, paths []LayerPath, detail string, smooth bool) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		width, height, width, height)
	b.WriteString("\n")

	if background != "" && background != "none" {
		fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, width, height, background)
		b.WriteString("\n")
	}

	for _, p := range paths {
		b.WriteString(AssembleLayerPath(p.Layers, p.FillHex, detail, smooth))
		b.WriteString("\n")
	}

	b.WriteString("</svg>")
	return b.String()
}
