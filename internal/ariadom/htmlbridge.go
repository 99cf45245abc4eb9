package ariadom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// HTMLBridge implements Bridge over a parsed golang.org/x/net/html document.
// It is the one production implementation this repository ships — grounded
// in how hazyhaar-chrc's extract/css.go and docpipe/html.go walk *html.Node
// trees directly rather than reaching for a higher-level DOM library.
//
// Layout has no real box model here, so geometry and paint facts are read
// from fixture conventions instead of being computed:
//
//	data-bounds="x,y,w,h"   explicit bounding box (defaults to an empty box)
//	data-before="text"      ::before generated content
//	data-after="text"       ::after generated content
//	data-no-pointer-events  equivalent to CSS `pointer-events: none`
type HTMLBridge struct {
	opts GlobalOptions
}

// NewHTMLBridge creates a bridge with the given global options.
func NewHTMLBridge(opts GlobalOptions) *HTMLBridge {
	return &HTMLBridge{opts: opts}
}

func (b *HTMLBridge) GlobalOptions() GlobalOptions { return b.opts }

func (b *HTMLBridge) AriaRole(n *html.Node) (string, bool) {
	if n.Type != html.ElementNode {
		return "", false
	}
	if n.Data == "iframe" {
		return RoleIframe, true
	}
	if role, ok := ExplicitRole(n); ok {
		return role, true
	}
	return ImplicitRole(n)
}

func (b *HTMLBridge) AccessibleName(n *html.Node, includeHidden bool) string {
	return computeAccessibleName(n, includeHidden)
}

func (b *HTMLBridge) IsHiddenForAria(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if isAriaHiddenAttr(n) {
		return true
	}
	if _, ok := attrOK(n, "aria-hidden"); ok {
		// aria-hidden="false" explicitly un-hides.
		if attr(n, "aria-hidden") == "false" {
			return false
		}
	}
	return isStyleHidden(n)
}

func (b *HTMLBridge) IsVisible(n *html.Node) bool {
	return b.Box(n).Visible
}

func (b *HTMLBridge) ComputedStyle(n *html.Node) *ComputedStyle {
	if n.Type != html.ElementNode {
		return nil
	}
	return &ComputedStyle{
		Display: computedDisplay(n),
		Cursor:  computedCursor(n),
	}
}

func (b *HTMLBridge) CSSContent(n *html.Node, pseudo Pseudo) string {
	switch pseudo {
	case PseudoBefore:
		return attr(n, "data-before")
	case PseudoAfter:
		return attr(n, "data-after")
	default:
		return ""
	}
}

func (b *HTMLBridge) Box(n *html.Node) Box {
	x, y, w, h, ok := parseBounds(n)
	visible := !isStyleHidden(n)
	if !ok {
		return Box{Visible: visible, Cursor: computedCursor(n)}
	}
	if w <= 0 || h <= 0 {
		visible = false
	}
	return Box{X: x, Y: y, W: w, H: h, Visible: visible, Cursor: computedCursor(n)}
}

func (b *HTMLBridge) ReceivesPointerEvents(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if isPointerEventsNone(n) {
		return false
	}
	if _, ok := attrOK(n, "data-no-pointer-events"); ok {
		return false
	}
	return !isStyleHidden(n)
}

func (b *HTMLBridge) Checked(n *html.Node) (Tri, bool) {
	role, ok := b.AriaRole(n)
	if !ok || !CheckedRoles[role] {
		return "", false
	}
	if v, ok := attrOK(n, "aria-checked"); ok {
		return parseTri(v)
	}
	if n.Data == "input" {
		_, checked := attrOK(n, "checked")
		if checked {
			return TriTrue, true
		}
		return TriFalse, true
	}
	return TriFalse, true
}

func (b *HTMLBridge) Disabled(n *html.Node) (bool, bool) {
	role, ok := b.AriaRole(n)
	if !ok || !DisabledRoles[role] {
		return false, false
	}
	if _, has := attrOK(n, "disabled"); has {
		return true, true
	}
	if v, ok := attrOK(n, "aria-disabled"); ok {
		return v == "true", true
	}
	return false, true
}

func (b *HTMLBridge) Expanded(n *html.Node) (bool, bool) {
	role, ok := b.AriaRole(n)
	if !ok || !ExpandedRoles[role] {
		return false, false
	}
	v, has := attrOK(n, "aria-expanded")
	if !has {
		return false, false
	}
	return v == "true", true
}

func (b *HTMLBridge) Level(n *html.Node) (int, bool) {
	role, ok := b.AriaRole(n)
	if !ok || !LevelRoles[role] {
		return 0, false
	}
	if v, has := attrOK(n, "aria-level"); has {
		if lvl, err := strconv.Atoi(v); err == nil {
			return lvl, true
		}
	}
	if len(n.Data) == 2 && n.Data[0] == 'h' && n.Data[1] >= '1' && n.Data[1] <= '6' {
		return int(n.Data[1] - '0'), true
	}
	return 0, false
}

func (b *HTMLBridge) Pressed(n *html.Node) (Tri, bool) {
	role, ok := b.AriaRole(n)
	if !ok || !PressedRoles[role] {
		return "", false
	}
	v, has := attrOK(n, "aria-pressed")
	if !has {
		return "", false
	}
	return parseTri(v)
}

func (b *HTMLBridge) Selected(n *html.Node) (bool, bool) {
	role, ok := b.AriaRole(n)
	if !ok || !SelectedRoles[role] {
		return false, false
	}
	if v, has := attrOK(n, "aria-selected"); has {
		return v == "true", true
	}
	if n.Data == "option" {
		_, selected := attrOK(n, "selected")
		return selected, true
	}
	return false, true
}

func parseTri(v string) (Tri, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true":
		return TriTrue, true
	case "false":
		return TriFalse, true
	case "mixed":
		return TriMixed, true
	default:
		return "", false
	}
}
