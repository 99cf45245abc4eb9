// Package ariaapi is the public matching API spec.md §4.6 describes:
// matchesAriaTree, getAllByAria, and renderAriaTree, composed from the tree
// builder, matcher, scorer, and renderer.
package ariaapi

import (
	"golang.org/x/net/html"

	"github.com/kitetree/ariascope/internal/ariadom"
	"github.com/kitetree/ariascope/internal/ariamatch"
	"github.com/kitetree/ariascope/internal/ariarender"
	"github.com/kitetree/ariascope/internal/ariascore"
	"github.com/kitetree/ariascope/internal/ariatemplate"
	"github.com/kitetree/ariascope/internal/ariatree"
)

// Received holds the two rendered forms of the snapshot plus, on a miss,
// the best-candidate diff target.
type Received struct {
	Raw        string
	Regex      string
	DiffTarget *string
}

// Result is matchesAriaTree's return value.
type Result struct {
	Matches  []*ariatree.AriaNode
	Received Received
}

// MatchesAriaTree builds the snapshot rooted at domRoot and reports every
// subtree matching template, along with rendered snapshots for diffing.
func MatchesAriaTree(bridge ariadom.Bridge, cache *ariadom.Cache, domRoot *html.Node, template *ariatemplate.TemplateNode, opts ariatree.Options) Result {
	snapshot := ariatree.Build(bridge, cache, domRoot, opts)

	matches := ariamatch.FindMatches(snapshot.Root, template, true)

	raw := ariarender.Render(snapshot.Root, ariarender.Options{Mode: ariarender.ModeRaw, ForAI: opts.ForAI})
	regex := ariarender.Render(snapshot.Root, ariarender.Options{Mode: ariarender.ModeRegex, ForAI: opts.ForAI})

	var diffTarget *string
	if len(matches) == 0 {
		if candidate := ariascore.FindBestStructuralMatch(snapshot.Root, template); candidate != nil {
			target := candidate.Node
			if candidate.FragmentChildren != nil {
				frag := &ariatree.AriaNode{Role: ariatree.RoleFragment}
				for _, c := range candidate.FragmentChildren {
					frag.Children = append(frag.Children, c)
				}
				target = frag
			}
			rendered := ariarender.Render(target, ariarender.Options{Mode: ariarender.ModeRaw, ForAI: opts.ForAI})
			diffTarget = &rendered
		}
	}

	return Result{
		Matches: matches,
		Received: Received{
			Raw:        raw,
			Regex:      regex,
			DiffTarget: diffTarget,
		},
	}
}

// GetAllByAria builds the snapshot rooted at domRoot and returns the DOM
// elements of every subtree matching template.
func GetAllByAria(bridge ariadom.Bridge, cache *ariadom.Cache, domRoot *html.Node, template *ariatemplate.TemplateNode, opts ariatree.Options) []*html.Node {
	snapshot := ariatree.Build(bridge, cache, domRoot, opts)
	return ariamatch.GetAllByAria(snapshot.Root, template)
}

// RenderAriaTree builds the snapshot rooted at domRoot and renders it in the
// requested mode.
func RenderAriaTree(bridge ariadom.Bridge, cache *ariadom.Cache, domRoot *html.Node, opts ariatree.Options, renderOpts ariarender.Options) string {
	snapshot := ariatree.Build(bridge, cache, domRoot, opts)
	return ariarender.Render(snapshot.Root, renderOpts)
}
