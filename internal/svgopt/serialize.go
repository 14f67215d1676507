package svgopt

import (
	"fmt"
	"strings"
)

// serialize renders a node tree back to an XML string.
func serialize(prolog string, root *node) string {
	var b strings.Builder
	if prolog != "" {
		b.WriteString(prolog)
		b.WriteString("\n")
	}
	writeNode(&b, root)
	return b.String()
}

func writeNode(b *strings.Builder, n *node) {
	b.WriteString("<")
	b.WriteString(n.name.Local)
	for _, a := range n.attrs {
		fmt.Fprintf(b, ` %s="%s"`, a.Name.Local, escapeAttr(a.Value))
	}
	if len(n.children) == 0 && n.selfText == "" {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	b.WriteString(n.selfText)
	for _, c := range n.children {
		writeNode(b, c)
	}
	b.WriteString("</")
	b.WriteString(n.name.Local)
	b.WriteString(">")
}

func escapeAttr(v string) string {
	v = strings.ReplaceAll(v, "&", "&amp;")
	v = strings.ReplaceAll(v, `"`, "&quot;")
	v = strings.ReplaceAll(v, "<", "&lt;")
	v = strings.ReplaceAll(v, ">", "&gt;")
	return v
}
