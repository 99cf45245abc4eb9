package ariascore

import (
	"github.com/kitetree/ariascope/internal/ariatemplate"
	"github.com/kitetree/ariascope/internal/ariatree"
)

// Candidate is the winner of a findBestStructuralMatch traversal. When
// FragmentChildren is non-nil the diff should be rendered as a synthetic
// fragment wrapping exactly those children (spec.md §4.4 "fragment
// wrapping"), not the whole of Node.
type Candidate struct {
	Node             *ariatree.AriaNode
	Score            int
	Depth            int
	FragmentChildren []*ariatree.AriaNode
}

// FindBestStructuralMatch is findBestStructuralMatch from spec.md §4.4: a
// full-tree DFS keeping the highest-scoring node, with a depth bonus that
// prefers deeper, more specific matches when base scores tie.
func FindBestStructuralMatch(root *ariatree.AriaNode, template *ariatemplate.TemplateNode) *Candidate {
	var best *Candidate

	var walk func(n *ariatree.AriaNode, depth int)
	walk = func(n *ariatree.AriaNode, depth int) {
		var score int
		var fragChildren []*ariatree.AriaNode

		if template.IsFragment() && len(template.Children) > 1 {
			s, _ := FindBestChildrenMatches(n.Children, template.Children, true)
			_, chosenNoPos := FindBestChildrenMatches(n.Children, template.Children, false)
			score = s
			for _, idx := range chosenNoPos {
				if idx >= 0 && idx < len(n.Children) {
					if cn, ok := ariatree.AsNode(n.Children[idx]); ok {
						fragChildren = append(fragChildren, cn)
					}
				}
			}
		} else {
			score = ScoreNode(n, template)
		}

		score += DepthBonus * depth

		if best == nil || score > best.Score {
			best = &Candidate{Node: n, Score: score, Depth: depth, FragmentChildren: fragChildren}
		}

		for _, c := range n.Children {
			if cn, ok := ariatree.AsNode(c); ok {
				walk(cn, depth+1)
			}
		}
	}

	walk(root, 0)
	return best
}
