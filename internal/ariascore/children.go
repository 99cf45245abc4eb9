package ariascore

import (
	"sort"

	"github.com/kitetree/ariascope/internal/ariatemplate"
)

// FindBestChildrenMatches is findBestChildrenMatches(children, templateChildren,
// includePositionBonus) from spec.md §4.4: a greedy assignment of template
// children to actual children, ties going to the lower actual index.
//
// With includePositionBonus (score mode) it adds the position bonus/penalty
// and the all-matched bonus, for use as a node's children contribution.
// Without it (subsequence mode) it adds no bonus, and the chosen actual
// indices are used to pick which siblings a fragment diff should show.
func FindBestChildrenMatches(children []any, templateChildren []*ariatemplate.TemplateNode, includePositionBonus bool) (int, []int) {
	if len(templateChildren) == 0 {
		return 0, nil
	}
	if len(children) == 0 {
		return len(templateChildren) * NoMatchPenalty, nil
	}

	used := make([]bool, len(children))
	var chosen []int
	total := 0

	for ti, t := range templateChildren {
		bestScore := 0
		bestIdx := -1
		haveCandidate := false
		for ai, c := range children {
			if used[ai] {
				continue
			}
			s := ScoreChild(c, t)
			if !haveCandidate || s > bestScore {
				bestScore = s
				bestIdx = ai
				haveCandidate = true
			}
		}
		if bestIdx == -1 {
			if includePositionBonus {
				total += NoMatchPenalty
			}
			continue
		}
		used[bestIdx] = true
		chosen = append(chosen, bestIdx)
		total += bestScore
		if includePositionBonus && bestIdx == ti {
			total += PositionBonus
		}
	}

	if includePositionBonus && len(chosen) == len(templateChildren) {
		total += AllChildrenBonus
	}

	// Subsequence mode (no position bonus) is used to pick a fragment's
	// diff-target children, which spec.md §4.4 requires to be shown "in
	// original order" — but chosen is built in template-iteration order,
	// which can pick actual indices out of document order. Score mode
	// keeps template order since its caller (the position bonus itself)
	// depends on ti/bestIdx alignment.
	if !includePositionBonus {
		sort.Ints(chosen)
	}

	return total, chosen
}
