package ariadom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// inlineStyle parses the `style="k: v; k2: v2"` attribute into a map. There
// is no cascade, no stylesheet, and no box model in this bridge — fixtures
// express layout and paint facts directly via `style` and the `data-bounds`
// attribute convention documented in htmlbridge.go.
func inlineStyle(n *html.Node) map[string]string {
	raw, ok := attrOK(n, "style")
	if !ok || raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, decl := range strings.Split(raw, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// defaultDisplayBlock lists tags whose UA-stylesheet display is block-level
// (anything not inline). Used by the tree builder to decide whether to
// insert a word-boundary space token around an element (spec.md §4.1 step 3).
var defaultDisplayBlock = roleSet(
	"address", "article", "aside", "blockquote", "body", "details", "dd",
	"div", "dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "header", "hr", "html", "li", "main",
	"nav", "ol", "p", "pre", "section", "table", "tbody", "td", "tfoot",
	"th", "thead", "tr", "ul", "br",
)

func computedDisplay(n *html.Node) string {
	if style := inlineStyle(n); style != nil {
		if d, ok := style["display"]; ok {
			return d
		}
	}
	if n.Data == "br" {
		return "br"
	}
	if defaultDisplayBlock[n.Data] {
		return "block"
	}
	return "inline"
}

// defaultCursorPointer lists tags the UA stylesheet gives a pointer cursor
// by default (links, buttons, labels wired to a control).
func defaultCursorPointer(n *html.Node) bool {
	switch n.Data {
	case "button":
		return true
	case "a":
		_, hasHref := attrOK(n, "href")
		return hasHref
	case "label":
		_, hasFor := attrOK(n, "for")
		return hasFor
	case "input":
		switch attr(n, "type") {
		case "button", "submit", "reset", "checkbox", "radio", "image":
			return true
		}
	case "select":
		return true
	}
	return false
}

func computedCursor(n *html.Node) string {
	if style := inlineStyle(n); style != nil {
		if c, ok := style["cursor"]; ok {
			return c
		}
	}
	if defaultCursorPointer(n) {
		return "pointer"
	}
	return "default"
}

// parseBounds reads the `data-bounds="x,y,w,h"` fixture convention used in
// place of real layout geometry.
func parseBounds(n *html.Node) (x, y, w, h float64, ok bool) {
	raw, has := attrOK(n, "data-bounds")
	if !has {
		return 0, 0, 0, 0, false
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, false
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, 0, false
		}
		vals[i] = f
	}
	return vals[0], vals[1], vals[2], vals[3], true
}

func isStyleHidden(n *html.Node) bool {
	if style := inlineStyle(n); style != nil {
		if strings.EqualFold(strings.TrimSpace(style["display"]), "none") {
			return true
		}
		if strings.EqualFold(strings.TrimSpace(style["visibility"]), "hidden") {
			return true
		}
	}
	_, hidden := attrOK(n, "hidden")
	return hidden
}

func isPointerEventsNone(n *html.Node) bool {
	if style := inlineStyle(n); style != nil {
		return strings.EqualFold(strings.TrimSpace(style["pointer-events"]), "none")
	}
	return false
}
