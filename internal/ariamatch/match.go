// Package ariamatch implements the recursive structural matcher (spec.md
// §4.3): does an AriaSnapshot contain a subtree shaped like a TemplateNode.
package ariamatch

import (
	"regexp"

	"github.com/kitetree/ariascope/internal/ariadom"
	"github.com/kitetree/ariascope/internal/ariaerr"
	"github.com/kitetree/ariascope/internal/ariatemplate"
	"github.com/kitetree/ariascope/internal/ariatree"
)

// FindMatches performs matchesNodeDeep: a DFS over every AriaNode in root
// that attempts a full match of that subtree against template. collectAll
// keeps searching after each hit and returns every match (both
// getAllByAria and matchesAriaTree pass true); otherwise the search stops
// at the first hit and returns just that one.
func FindMatches(root *ariatree.AriaNode, template *ariatemplate.TemplateNode, collectAll bool) []*ariatree.AriaNode {
	var matches []*ariatree.AriaNode
	var walk func(n *ariatree.AriaNode) bool
	walk = func(n *ariatree.AriaNode) bool {
		if MatchesNode(n, template, false) {
			matches = append(matches, n)
			if !collectAll {
				return true
			}
		}
		for _, c := range n.Children {
			if cn, ok := ariatree.AsNode(c); ok {
				if walk(cn) {
					return true
				}
			}
		}
		return false
	}
	walk(root)
	return matches
}

// MatchesNode is matchesNode(node, template, isDeepEqual) from spec.md
// §4.3, exported for the scorer and CLI to reuse the boolean primitive
// directly instead of going through the DFS.
func MatchesNode(node *ariatree.AriaNode, template *ariatemplate.TemplateNode, isDeepEqual bool) bool {
	if template.Kind != ariatemplate.KindRole {
		ariaerr.Raise("matchesNode: template root must be a role node, got a text node")
	}

	if !template.IsFragment() && node.Role != template.Role {
		return false
	}

	if template.Checked != nil {
		if node.Checked == nil || triConstraint(*node.Checked) != *template.Checked {
			return false
		}
	}
	if template.Disabled != nil {
		if node.Disabled == nil || *node.Disabled != *template.Disabled {
			return false
		}
	}
	if template.Expanded != nil {
		if node.Expanded == nil || *node.Expanded != *template.Expanded {
			return false
		}
	}
	if template.Level != nil {
		if node.Level == nil || *node.Level != *template.Level {
			return false
		}
	}
	if template.Pressed != nil {
		if node.Pressed == nil || triConstraint(*node.Pressed) != *template.Pressed {
			return false
		}
	}
	if template.Selected != nil {
		if node.Selected == nil || *node.Selected != *template.Selected {
			return false
		}
	}

	if template.Name != nil && !matchesText(node.Name, *template.Name) {
		return false
	}

	if urlConstraint, ok := template.Props["url"]; ok {
		nodeURL := ""
		if node.Props != nil {
			nodeURL = node.Props["url"]
		}
		if !matchesText(nodeURL, urlConstraint) {
			return false
		}
	}

	mode := template.EffectiveContainerMode()
	deepPropagate := isDeepEqual
	switch {
	case template.ContainerMode == ariatemplate.ContainModeDeepEqual:
		mode = ariatemplate.ContainModeEqual
		deepPropagate = true
	case isDeepEqual:
		mode = ariatemplate.ContainModeEqual
	}

	if mode == ariatemplate.ContainModeEqual {
		return matchChildrenEqual(node.Children, template.Children, deepPropagate)
	}
	return matchChildrenContain(node.Children, template.Children, deepPropagate)
}

func matchesChild(child any, template *ariatemplate.TemplateNode, isDeepEqual bool) bool {
	switch template.Kind {
	case ariatemplate.KindText:
		s, ok := ariatree.AsText(child)
		if !ok {
			return false
		}
		return matchesText(s, template.Text)
	case ariatemplate.KindRole:
		node, ok := ariatree.AsNode(child)
		if !ok {
			return false
		}
		return MatchesNode(node, template, isDeepEqual)
	default:
		return false
	}
}

// matchChildrenContain implements the default "contain" container mode: the
// template children must appear as an in-order subsequence of the actual
// children.
func matchChildrenContain(children []any, templateChildren []*ariatemplate.TemplateNode, isDeepEqual bool) bool {
	ci := 0
	for _, t := range templateChildren {
		found := false
		for ci < len(children) {
			if matchesChild(children[ci], t, isDeepEqual) {
				ci++
				found = true
				break
			}
			ci++
		}
		if !found {
			return false
		}
	}
	return true
}

// matchChildrenEqual implements "equal" (and, via the deepPropagate flag
// passed down from MatchesNode, "deep-equal"): both lists must have the same
// length and match pairwise, in order.
func matchChildrenEqual(children []any, templateChildren []*ariatemplate.TemplateNode, isDeepEqual bool) bool {
	if len(children) != len(templateChildren) {
		return false
	}
	for i, t := range templateChildren {
		if !matchesChild(children[i], t, isDeepEqual) {
			return false
		}
	}
	return true
}

// matchesText is matchesText(text, template) from spec.md §4.3: empty
// template matches unconditionally, empty text never matches, a literal
// template requires equality, a regex template requires an unanchored
// substring search. An invalid regex is a caller error (spec.md §7) so it
// raises a Fault rather than returning false.
// MatchesText exports matchesText for the scorer, which needs the same
// literal/regex comparison when deciding whether a name or url prop
// contributes its match bonus.
func MatchesText(text string, template ariatemplate.StringOrRegex) bool {
	return matchesText(text, template)
}

func matchesText(text string, template ariatemplate.StringOrRegex) bool {
	if !template.IsRegex() && template.Literal == "" {
		return true
	}
	if text == "" {
		return false
	}
	if template.IsRegex() {
		re, err := regexp.Compile(template.Regex.Pattern)
		if err != nil {
			ariaerr.Raise("invalid template regex %q: %v", template.Regex.Pattern, err)
		}
		return re.MatchString(text)
	}
	return text == template.Literal
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
