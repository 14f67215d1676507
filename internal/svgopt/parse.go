package svgopt

import (
	"encoding/xml"
	"io"
	"strings"
)

// parseDocument parses svg into a node tree, returning the root element
// and the XML declaration/prolog text that preceded it (preserved
// verbatim on re-serialization).
func parseDocument(svg string) (prolog string, root *node, err error) {
	dec := xml.NewDecoder(strings.NewReader(svg))

	var stack []*node
	for {
		tok, terr := dec.Token()
		if terr == io.EOF {
			break
		}
		if terr != nil {
			return prolog, nil, terr
		}
		switch t := tok.(type) {
		case xml.ProcInst:
			if root == nil {
				prolog = "<?" + t.Target + " " + string(t.Inst) + "?>"
			}
		case xml.StartElement:
			n := &node{name: t.Name, attrs: append([]xml.Attr{}, t.Attr...)}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
			if root == nil {
				root = n
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text != "" && len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.selfText += text
			}
		}
	}

	if root == nil {
		return prolog, nil, errNoRoot
	}
	return prolog, root, nil
}
