// Package ariatree builds normalized accessibility trees from a DOM subtree,
// the way mj1618-desktop-cli's internal/model package builds its Element
// tree from a macOS accessibility snapshot — same build/normalize split,
// aimed at a browser DOM instead of AXUIElement.
package ariatree

import (
	"golang.org/x/net/html"

	"github.com/kitetree/ariascope/internal/ariadom"
)

// Sentinel roles a template or renderer needs to recognize by name.
const (
	RoleFragment    = ariadom.RoleFragment
	RoleIframe      = ariadom.RoleIframe
	RoleGeneric     = ariadom.RoleGeneric
	RolePresentation = "presentation"
	RoleNone        = "none"
)

// AriaNode is one accessibility element (spec.md §3.1). Children is an
// ordered mix of *AriaNode and string — a string entry is a text child.
type AriaNode struct {
	Role     string
	Name     string
	Ref      string
	Children []any
	Props    map[string]string

	Checked  *ariadom.Tri
	Disabled *bool
	Expanded *bool
	Level    *int
	Pressed  *ariadom.Tri
	Selected *bool

	Element               *html.Node
	Box                   ariadom.Box
	ReceivesPointerEvents bool
}

// AriaSnapshot is the output of a build: the normalized tree plus, in forAI
// mode, the ref -> DOM element map (spec.md §3.2).
type AriaSnapshot struct {
	Root     *AriaNode
	Elements map[string]*html.Node
}

// Options configures a build (spec.md §4.1).
type Options struct {
	ForAI                bool
	RefPrefix            string
	InputFileRoleTextbox bool
}

// AsText reports whether a child is a text entry and returns it.
func AsText(child any) (string, bool) {
	s, ok := child.(string)
	return s, ok
}

// AsNode reports whether a child is a node entry and returns it.
func AsNode(child any) (*AriaNode, bool) {
	n, ok := child.(*AriaNode)
	return n, ok
}

func newNode(role string) *AriaNode {
	return &AriaNode{Role: role}
}
