package svgopt

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`-?\d+\.?\d*(?:[eE][-+]?\d+)?`)

var roundedAttrs = map[string]bool{
	"x": true, "y": true, "x1": true, "y1": true, "x2": true, "y2": true,
	"cx": true, "cy": true, "r": true, "rx": true, "ry": true,
	"width": true, "height": true,
}

// roundCoords rounds the "d" attribute's path numerics and the named
// numeric attributes to 2 decimal places, stripping trailing zeros.
func roundCoords(n *node) {
	for i, a := range n.attrs {
		if a.Name.Local == "d" {
			n.attrs[i].Value = roundNumbersIn(a.Value)
		} else if roundedAttrs[a.Name.Local] {
			n.attrs[i].Value = roundOne(a.Value)
		}
	}
	for _, c := range n.children {
		roundCoords(c)
	}
}

func roundNumbersIn(s string) string {
	return numberPattern.ReplaceAllStringFunc(s, roundOne)
}

func roundOne(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	rounded := strconv.FormatFloat(v, 'f', 2, 64)
	rounded = strings.TrimRight(rounded, "0")
	rounded = strings.TrimSuffix(rounded, ".")
	if rounded == "" || rounded == "-0" {
		rounded = "0"
	}
	return rounded
}

// collapseGroups repeatedly removes <g> elements whose only attribute
// (if any) is "id": childless groups are deleted outright, groups with
// children have their children spliced into the parent at the group's
// position. Iterates to a fixed point.
func collapseGroups(n *node) {
	for collapseGroupsOnce(n) {
	}
}

func collapseGroupsOnce(n *node) bool {
	changed := false
	var newChildren []*node
	for _, c := range n.children {
		if c.name.Local == "g" && c.onlyAttrIsID() {
			changed = true
			if len(c.children) > 0 {
				newChildren = append(newChildren, c.children...)
			}
			continue
		}
		newChildren = append(newChildren, c)
	}
	n.children = newChildren

	for _, c := range n.children {
		if collapseGroupsOnce(c) {
			changed = true
		}
	}
	return changed
}

// mergePaths walks siblings and concatenates the "d" attribute of
// consecutive <path> elements sharing identical "fill" and "fill-rule",
// deleting the second. Re-checks the same position after each merge.
func mergePaths(n *node) {
	for i := 0; i < len(n.children); {
		cur := n.children[i]
		if i+1 < len(n.children) {
			next := n.children[i+1]
			if cur.name.Local == "path" && next.name.Local == "path" && samePaintStyle(cur, next) {
				curD, _ := cur.attr("d")
				nextD, _ := next.attr("d")
				cur.setAttr("d", curD+" "+nextD)
				n.children = append(n.children[:i+1], n.children[i+2:]...)
				continue // re-check position i
			}
		}
		i++
	}
	for _, c := range n.children {
		mergePaths(c)
	}
}

func samePaintStyle(a, b *node) bool {
	af, _ := a.attr("fill")
	bf, _ := b.attr("fill")
	ar, _ := a.attr("fill-rule")
	br, _ := b.attr("fill-rule")
	return af == bf && ar == br
}

// optimizeViewBox backfills viewBox="0 0 width height" on the root
// element when both width and height are present but viewBox is not.
func optimizeViewBox(root *node) {
	if root.name.Local != "svg" {
		return
	}
	if _, has := root.attr("viewBox"); has {
		return
	}
	w, okW := root.attr("width")
	h, okH := root.attr("height")
	if okW && okH {
		root.setAttr("viewBox", "0 0 "+w+" "+h)
	}
}
