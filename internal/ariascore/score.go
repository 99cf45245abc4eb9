// Package ariascore picks the subtree that is structurally closest to a
// template when the matcher finds no exact hit, so the CLI/MCP diff output
// has something concrete to compare against (spec.md §4.4).
package ariascore

import (
	"math"

	"github.com/kitetree/ariascope/internal/ariadom"
	"github.com/kitetree/ariascope/internal/ariamatch"
	"github.com/kitetree/ariascope/internal/ariastr"
	"github.com/kitetree/ariascope/internal/ariatemplate"
	"github.com/kitetree/ariascope/internal/ariatree"
)

const (
	ExactScore       = 1000
	RoleMatchScore   = 500
	NameMatchScore   = 400
	StateFieldScore  = 100
	AllStateBonus    = 500
	URLMatchScore    = 100
	NoMatchFloor     = -200
	PositionBonus    = 200
	NoMatchPenalty   = -50
	AllChildrenBonus = 300
	DepthBonus       = 20
)

// ScoreChild is scoreNodeMatch(node, template) applied to one child entry
// (text or AriaNode), spec.md §4.4's per-node score.
func ScoreChild(child any, template *ariatemplate.TemplateNode) int {
	switch template.Kind {
	case ariatemplate.KindText:
		s, ok := ariatree.AsText(child)
		if !ok {
			return NoMatchFloor
		}
		literal := template.Text.Literal
		if template.Text.IsRegex() {
			literal = template.Text.Regex.Pattern
		}
		if !template.Text.IsRegex() && s == literal {
			return ExactScore
		}
		return stringSimilarity(s, literal, NameMatchScore)
	case ariatemplate.KindRole:
		node, ok := ariatree.AsNode(child)
		if !ok {
			return NoMatchFloor
		}
		return ScoreNode(node, template)
	default:
		return NoMatchFloor
	}
}

// ScoreNode is scoreNodeMatch(node, template) for a role template against an
// actual AriaNode.
func ScoreNode(node *ariatree.AriaNode, template *ariatemplate.TemplateNode) int {
	score := 0

	if template.IsFragment() || node.Role == template.Role {
		score += RoleMatchScore
	}

	if template.Name != nil {
		if !template.Name.IsRegex() {
			if node.Name == template.Name.Literal {
				score += NameMatchScore
			} else {
				score += stringSimilarity(node.Name, template.Name.Literal, NameMatchScore)
			}
		} else if ariamatch.MatchesText(node.Name, *template.Name) {
			score += NameMatchScore
		}
	}

	specified, matched := 0, 0
	tally := func(want bool, ok bool) {
		if !want {
			return
		}
		specified++
		if ok {
			matched++
			score += StateFieldScore
		}
	}
	tally(template.Checked != nil, template.Checked != nil && node.Checked != nil && triConstraint(*node.Checked) == *template.Checked)
	tally(template.Disabled != nil, template.Disabled != nil && node.Disabled != nil && *node.Disabled == *template.Disabled)
	tally(template.Expanded != nil, template.Expanded != nil && node.Expanded != nil && *node.Expanded == *template.Expanded)
	tally(template.Level != nil, template.Level != nil && node.Level != nil && *node.Level == *template.Level)
	tally(template.Pressed != nil, template.Pressed != nil && node.Pressed != nil && triConstraint(*node.Pressed) == *template.Pressed)
	tally(template.Selected != nil, template.Selected != nil && node.Selected != nil && *node.Selected == *template.Selected)
	if specified > 0 && matched == specified {
		score += AllStateBonus
	}

	if urlConstraint, ok := template.Props["url"]; ok {
		nodeURL := ""
		if node.Props != nil {
			nodeURL = node.Props["url"]
		}
		if ariamatch.MatchesText(nodeURL, urlConstraint) {
			score += URLMatchScore
		}
	}

	childScore, _ := FindBestChildrenMatches(node.Children, template.Children, true)
	score += childScore

	return score
}

// stringSimilarity is floor(|lcs(a,b)| / max(|a|,|b|) * scale).
func stringSimilarity(a, b string, scale int) int {
	if a == "" || b == "" {
		return 0
	}
	lcs := ariastr.LongestCommonSubstring(a, b)
	maxLen := len([]rune(a))
	if bl := len([]rune(b)); bl > maxLen {
		maxLen = bl
	}
	if maxLen == 0 {
		return 0
	}
	return int(math.Floor(float64(len([]rune(lcs))) / float64(maxLen) * float64(scale)))
}

func triConstraint(t ariadom.Tri) ariatemplate.TriConstraint {
	switch t {
	case ariadom.TriTrue:
		return ariatemplate.TriTrue
	case ariadom.TriFalse:
		return ariatemplate.TriFalse
	case ariadom.TriMixed:
		return ariatemplate.TriMixed
	default:
		return ariatemplate.TriFalse
	}
}
