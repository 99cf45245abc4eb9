package ariamatch

import (
	"golang.org/x/net/html"

	"github.com/kitetree/ariascope/internal/ariatemplate"
	"github.com/kitetree/ariascope/internal/ariatree"
)

// GetAllByAria collects the DOM elements of every matching subtree
// (spec.md §4.6's getAllByAria).
func GetAllByAria(root *ariatree.AriaNode, template *ariatemplate.TemplateNode) []*html.Node {
	matches := FindMatches(root, template, true)
	elements := make([]*html.Node, 0, len(matches))
	for _, m := range matches {
		if m.Element != nil {
			elements = append(elements, m.Element)
		}
	}
	return elements
}
