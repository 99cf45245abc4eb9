package ariatree

import "github.com/kitetree/ariascope/internal/ariastr"

// normalizeStringChildren coalesces adjacent string children into one
// whitespace-normalized text node, drops empties, and then applies the
// name/child de-duplication rule: a lone remaining string child equal to the
// node's own name is redundant and is dropped (spec.md §4.2).
func normalizeStringChildren(root *AriaNode) {
	var walk func(n *AriaNode)
	walk = func(n *AriaNode) {
		for _, c := range n.Children {
			if cn, ok := AsNode(c); ok {
				walk(cn)
			}
		}

		var coalesced []any
		for _, c := range n.Children {
			if s, ok := AsText(c); ok {
				if len(coalesced) > 0 {
					if prev, ok2 := AsText(coalesced[len(coalesced)-1]); ok2 {
						coalesced[len(coalesced)-1] = prev + s
						continue
					}
				}
				coalesced = append(coalesced, s)
			} else {
				coalesced = append(coalesced, c)
			}
		}

		var cleaned []any
		for _, c := range coalesced {
			if s, ok := AsText(c); ok {
				norm := ariastr.NormalizeWhiteSpace(s)
				if norm == "" {
					continue
				}
				cleaned = append(cleaned, norm)
			} else {
				cleaned = append(cleaned, c)
			}
		}
		n.Children = cleaned

		if len(n.Children) == 1 {
			if s, ok := AsText(n.Children[0]); ok && s == n.Name {
				n.Children = nil
			}
		}
	}
	walk(root)
}

// normalizeGenericRoles elides `generic` nodes that add no structure: a
// generic node with at most one child, where that child (if present) is an
// AriaNode currently receiving pointer events, is replaced by its own
// children spliced into the parent (spec.md §4.2). Runs depth-first
// post-order so elision bubbles correctly from the leaves up.
func normalizeGenericRoles(root *AriaNode) {
	var walk func(n *AriaNode)
	walk = func(n *AriaNode) {
		for _, c := range n.Children {
			if cn, ok := AsNode(c); ok {
				walk(cn)
			}
		}

		out := make([]any, 0, len(n.Children))
		for _, c := range n.Children {
			if cn, ok := AsNode(c); ok && isElidableGeneric(cn) {
				out = append(out, cn.Children...)
				continue
			}
			out = append(out, c)
		}
		n.Children = out
	}
	walk(root)
}

func isElidableGeneric(n *AriaNode) bool {
	if n.Role != RoleGeneric {
		return false
	}
	switch len(n.Children) {
	case 0:
		return true
	case 1:
		cn, ok := AsNode(n.Children[0])
		return ok && cn.ReceivesPointerEvents
	default:
		return false
	}
}
