package ariadom

import (
	"strings"

	"golang.org/x/net/html"
)

// computeAccessibleName implements a simplified version of the standard
// accessible-name algorithm: aria-label wins outright, then
// aria-labelledby (space-separated ids resolved against the owning
// document), then role-specific native sources (img alt; for inputs and
// textareas a <label for> then placeholder, and nothing else), then subtree
// text content, then title.
func computeAccessibleName(n *html.Node, includeHidden bool) string {
	if v, ok := attrOK(n, "aria-label"); ok && strings.TrimSpace(v) != "" {
		return normalizeWhiteSpace(v)
	}

	if ids, ok := attrOK(n, "aria-labelledby"); ok && strings.TrimSpace(ids) != "" {
		doc := ownerDocument(n)
		var parts []string
		for _, id := range splitFields(ids) {
			if target := findByID(doc, id); target != nil {
				if t := subtreeText(target, includeHidden); t != "" {
					parts = append(parts, t)
				}
			}
		}
		if len(parts) > 0 {
			return normalizeWhiteSpace(strings.Join(parts, " "))
		}
	}

	switch n.Data {
	case "img":
		if v, ok := attrOK(n, "alt"); ok {
			return normalizeWhiteSpace(v)
		}
	case "input", "textarea":
		if v, ok := attrOK(n, "aria-label"); ok {
			return normalizeWhiteSpace(v)
		}
		if id, ok := attrOK(n, "id"); ok {
			if lbl := findLabelFor(ownerDocument(n), id); lbl != nil {
				if t := subtreeText(lbl, includeHidden); t != "" {
					return normalizeWhiteSpace(t)
				}
			}
		}
		if v, ok := attrOK(n, "placeholder"); ok {
			return normalizeWhiteSpace(v)
		}
		return ""
	}

	if t := subtreeText(n, includeHidden); t != "" {
		return normalizeWhiteSpace(t)
	}

	if v, ok := attrOK(n, "title"); ok {
		return normalizeWhiteSpace(v)
	}

	return ""
}

func subtreeText(n *html.Node, includeHidden bool) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			return
		}
		if cur.Type == html.ElementNode {
			if !includeHidden && isAriaHiddenAttr(cur) {
				return
			}
			if cur.Data == "script" || cur.Data == "style" {
				return
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func isAriaHiddenAttr(n *html.Node) bool {
	v, ok := attrOK(n, "aria-hidden")
	return ok && (v == "" || v == "true")
}

func ownerDocument(n *html.Node) *html.Node {
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

func findByID(root *html.Node, id string) *html.Node {
	if root == nil || id == "" {
		return nil
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			if v, ok := attrOK(n, "id"); ok && v == id {
				found = n
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
			if found != nil {
				return
			}
		}
	}
	walk(root)
	return found
}

func findLabelFor(root *html.Node, id string) *html.Node {
	if root == nil || id == "" {
		return nil
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "label" {
			if v, ok := attrOK(n, "for"); ok && v == id {
				found = n
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
			if found != nil {
				return
			}
		}
	}
	walk(root)
	return found
}

// normalizeWhiteSpace collapses runs of whitespace into single spaces and
// trims the ends. It is a local copy of ariastr.NormalizeWhiteSpace, except
// that only space, tab, newline and carriage return count as whitespace here
// (ariastr also collapses form feed and vertical tab).
func normalizeWhiteSpace(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}
