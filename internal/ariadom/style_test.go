package ariadom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func firstElement(t *testing.T, src, tag string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == tag {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if found == nil {
		t.Fatalf("no <%s> found in fixture", tag)
	}
	return found
}

func TestInlineStyle_ParsesDeclarations(t *testing.T) {
	n := firstElement(t, `<div style="display: none; cursor: pointer;">x</div>`, "div")
	style := inlineStyle(n)
	if style["display"] != "none" {
		t.Errorf("display = %q, want none", style["display"])
	}
	if style["cursor"] != "pointer" {
		t.Errorf("cursor = %q, want pointer", style["cursor"])
	}
}

func TestInlineStyle_NoAttributeReturnsNil(t *testing.T) {
	n := firstElement(t, `<div>x</div>`, "div")
	if inlineStyle(n) != nil {
		t.Error("expected a nil style map when there is no style attribute")
	}
}

func TestComputedDisplay_StyleOverridesTagDefault(t *testing.T) {
	n := firstElement(t, `<div style="display: inline;">x</div>`, "div")
	if got := computedDisplay(n); got != "inline" {
		t.Errorf("got %q, want inline", got)
	}
}

func TestComputedDisplay_TagDefaultsToBlock(t *testing.T) {
	n := firstElement(t, `<p>x</p>`, "p")
	if got := computedDisplay(n); got != "block" {
		t.Errorf("got %q, want block", got)
	}
}

func TestComputedDisplay_UnknownTagDefaultsToInline(t *testing.T) {
	n := firstElement(t, `<span>x</span>`, "span")
	if got := computedDisplay(n); got != "inline" {
		t.Errorf("got %q, want inline", got)
	}
}

func TestComputedCursor_LinkWithHrefIsPointer(t *testing.T) {
	n := firstElement(t, `<a href="/x">go</a>`, "a")
	if got := computedCursor(n); got != "pointer" {
		t.Errorf("got %q, want pointer", got)
	}
}

func TestComputedCursor_LinkWithoutHrefIsDefault(t *testing.T) {
	n := firstElement(t, `<a>go</a>`, "a")
	if got := computedCursor(n); got != "default" {
		t.Errorf("got %q, want default", got)
	}
}

func TestComputedCursor_StyleOverridesTagDefault(t *testing.T) {
	n := firstElement(t, `<button style="cursor: not-allowed;">go</button>`, "button")
	if got := computedCursor(n); got != "not-allowed" {
		t.Errorf("got %q, want not-allowed", got)
	}
}

func TestParseBounds_ValidCommaSeparatedValues(t *testing.T) {
	n := firstElement(t, `<div data-bounds="1,2,30,40">x</div>`, "div")
	x, y, w, h, ok := parseBounds(n)
	if !ok {
		t.Fatal("expected parseBounds to succeed")
	}
	if x != 1 || y != 2 || w != 30 || h != 40 {
		t.Errorf("got (%v,%v,%v,%v), want (1,2,30,40)", x, y, w, h)
	}
}

func TestParseBounds_MissingAttributeIsNotOK(t *testing.T) {
	n := firstElement(t, `<div>x</div>`, "div")
	if _, _, _, _, ok := parseBounds(n); ok {
		t.Error("expected parseBounds to fail without data-bounds")
	}
}

func TestParseBounds_WrongFieldCountIsNotOK(t *testing.T) {
	n := firstElement(t, `<div data-bounds="1,2,3">x</div>`, "div")
	if _, _, _, _, ok := parseBounds(n); ok {
		t.Error("expected parseBounds to fail with the wrong field count")
	}
}

func TestIsStyleHidden_DisplayNone(t *testing.T) {
	n := firstElement(t, `<div style="display: none;">x</div>`, "div")
	if !isStyleHidden(n) {
		t.Error("expected display:none to be hidden")
	}
}

func TestIsStyleHidden_VisibilityHidden(t *testing.T) {
	n := firstElement(t, `<div style="visibility: hidden;">x</div>`, "div")
	if !isStyleHidden(n) {
		t.Error("expected visibility:hidden to be hidden")
	}
}

func TestIsStyleHidden_HiddenAttribute(t *testing.T) {
	n := firstElement(t, `<div hidden>x</div>`, "div")
	if !isStyleHidden(n) {
		t.Error("expected the hidden attribute to be hidden")
	}
}

func TestIsStyleHidden_VisibleElementIsNotHidden(t *testing.T) {
	n := firstElement(t, `<div>x</div>`, "div")
	if isStyleHidden(n) {
		t.Error("expected a plain div to not be hidden")
	}
}

func TestIsPointerEventsNone(t *testing.T) {
	n := firstElement(t, `<div style="pointer-events: none;">x</div>`, "div")
	if !isPointerEventsNone(n) {
		t.Error("expected pointer-events:none to be detected")
	}
}

func TestIsPointerEventsNone_DefaultIsFalse(t *testing.T) {
	n := firstElement(t, `<div>x</div>`, "div")
	if isPointerEventsNone(n) {
		t.Error("expected the default to allow pointer events")
	}
}
