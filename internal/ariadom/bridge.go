// Package ariadom defines the external collaborator the accessibility-tree
// builder depends on: role, name, and state computation over a DOM element,
// plus the handful of layout and pointer-event facts the builder needs but
// never computes itself.
//
// The contract is deliberately narrow. A browser-hosted caller would satisfy
// it with real computed-role/computed-style lookups; this module's own
// HTMLBridge satisfies it over a parsed golang.org/x/net/html document so the
// rest of the repository has something concrete to build, match, and render
// against.
package ariadom

import "golang.org/x/net/html"

// Tri is a tri-state value used for "checked" and "pressed", which ARIA
// allows to be true, false, or "mixed".
type Tri string

const (
	TriTrue  Tri = "true"
	TriFalse Tri = "false"
	TriMixed Tri = "mixed"
)

// Pseudo identifies a CSS pseudo-element.
type Pseudo string

const (
	PseudoBefore Pseudo = "before"
	PseudoAfter  Pseudo = "after"
)

// ComputedStyle carries the subset of computed style the builder and
// renderer need.
type ComputedStyle struct {
	Display string // "" (unset/inline), "none", "block", "inline-block", ...
	Cursor  string
}

// Box is a bounding box plus the layout facts that feed visibility and
// cursor rendering decisions.
type Box struct {
	X, Y, W, H float64
	Visible    bool
	Cursor     string
}

// GlobalOptions mirrors the host application's aria-snapshot options.
type GlobalOptions struct {
	// InputFileRoleTextbox, when true, excludes <input type="file"> from the
	// "take the field value as the sole text child" special case (§4.1
	// step 3 of SPEC_FULL.md / spec.md).
	InputFileRoleTextbox bool
}

// Bridge is the DomBridge contract from spec.md §6.
type Bridge interface {
	// AriaRole returns the computed ARIA role for n, and whether the role
	// was explicit (via the role="..." attribute or an unambiguous implicit
	// mapping) as opposed to absent.
	AriaRole(n *html.Node) (role string, ok bool)

	// AccessibleName computes the accessible name per the standard name
	// computation algorithm (aria-label, aria-labelledby, native
	// label/alt/placeholder, then content, then title). includeHidden controls whether
	// aria-hidden descendants still contribute to the name text.
	AccessibleName(n *html.Node, includeHidden bool) string

	// IsHiddenForAria reports whether n is pruned from the accessibility
	// tree regardless of visibility (aria-hidden, display:none, etc.).
	IsHiddenForAria(n *html.Node) bool

	// IsVisible reports whether n is visible under the "forAI" geometric
	// visibility heuristic.
	IsVisible(n *html.Node) bool

	// ComputedStyle returns the subset of computed style the builder and
	// renderer consume, or nil if n carries no style information.
	ComputedStyle(n *html.Node) *ComputedStyle

	// CSSContent returns the generated text content of n's ::before or
	// ::after pseudo-element (the `content` declaration), or "" if none.
	CSSContent(n *html.Node, pseudo Pseudo) string

	// Checked, Expanded, Pressed, Selected, Level, Disabled return the
	// state attribute value and whether it applies to n's role at all (the
	// role-set membership test from spec.md §4.1 step 2's "include each
	// only for roles in its defined role-set").
	Checked(n *html.Node) (Tri, bool)
	Disabled(n *html.Node) (bool, bool)
	Expanded(n *html.Node) (bool, bool)
	Level(n *html.Node) (int, bool)
	Pressed(n *html.Node) (Tri, bool)
	Selected(n *html.Node) (bool, bool)

	// ReceivesPointerEvents reports whether n is currently hit-testable
	// (not covered, not pointer-events:none).
	ReceivesPointerEvents(n *html.Node) bool

	// Box returns n's bounding box and visibility/cursor snapshot.
	Box(n *html.Node) Box

	// GlobalOptions returns the host application's aria-snapshot options.
	GlobalOptions() GlobalOptions
}
