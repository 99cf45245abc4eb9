// Package ariarender renders an AriaSnapshot back to the canonical
// two-space-indented YAML-sequence text spec.md §4.5 describes, in either
// raw or regex-generalized form.
package ariarender

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kitetree/ariascope/internal/ariadom"
	"github.com/kitetree/ariascope/internal/ariatree"
)

// Mode selects between literal ("raw") and regex-generalized ("regex")
// rendering.
type Mode string

const (
	ModeRaw   Mode = "raw"
	ModeRegex Mode = "regex"
)

const maxNameLength = 900

// Options configures a render.
type Options struct {
	Mode  Mode
	ForAI bool
}

// Render turns snapshot's root into canonical text. A fragment root emits
// only its children, with no key line of its own (spec.md §4.5 "Fragment
// root"). Any other root is a real node in its own right and gets its
// own key line, the same as if it were rendered as someone else's child.
func Render(root *ariatree.AriaNode, opts Options) string {
	var lines []string
	if root.Role == ariatree.RoleFragment {
		renderChildren(root.Children, root.Name, 0, opts, &lines)
	} else {
		renderNode(root, 0, opts, &lines)
	}
	return strings.Join(lines, "\n")
}

func renderChildren(children []any, parentName string, indent int, opts Options, out *[]string) {
	for _, c := range children {
		if s, ok := ariatree.AsText(c); ok {
			if opts.Mode == ModeRegex && !textContributesInfo(parentName, s) {
				continue
			}
			*out = append(*out, pad(indent)+"- text: "+renderTextValue(s, opts.Mode))
			continue
		}
		if node, ok := ariatree.AsNode(c); ok {
			renderNode(node, indent, opts, out)
		}
	}
}

func renderNode(n *ariatree.AriaNode, indent int, opts Options, out *[]string) {
	key := renderKey(n, opts.ForAI)
	props := renderProps(n.Props)

	var visibleChildren []any
	for _, c := range n.Children {
		if s, ok := ariatree.AsText(c); ok {
			if opts.Mode == ModeRegex && !textContributesInfo(n.Name, s) {
				continue
			}
		}
		visibleChildren = append(visibleChildren, c)
	}

	if len(props) == 0 && len(visibleChildren) == 0 {
		*out = append(*out, pad(indent)+key)
		return
	}

	if len(props) == 0 && len(visibleChildren) == 1 {
		if s, ok := ariatree.AsText(visibleChildren[0]); ok {
			*out = append(*out, pad(indent)+key+": "+renderTextValue(s, opts.Mode))
			return
		}
	}

	*out = append(*out, pad(indent)+key+":")
	for _, p := range props {
		*out = append(*out, pad(indent+1)+p)
	}
	renderChildren(visibleChildren, n.Name, indent+1, opts, out)
}

func renderTextValue(s string, mode Mode) string {
	if mode == ModeRegex {
		return convertToBestGuessRegex(s)
	}
	return jsonQuoteName(s)
}

func renderKey(n *ariatree.AriaNode, forAI bool) string {
	parts := []string{n.Role}

	if n.Name != "" && len(n.Name) <= maxNameLength {
		parts = append(parts, renderName(n.Name))
	}

	parts = append(parts, stateBrackets(n)...)

	if forAI && n.ReceivesPointerEvents && n.Ref != "" {
		parts = append(parts, fmt.Sprintf("[ref=%s]", n.Ref))
		if n.Box.Cursor == "pointer" {
			parts = append(parts, "[cursor=pointer]")
		}
	}

	return "- " + strings.Join(parts, " ")
}

func renderName(name string) string {
	if len(name) >= 2 && strings.HasPrefix(name, "/") && strings.HasSuffix(name, "/") {
		return name
	}
	return jsonQuoteName(name)
}

// stateBrackets emits the fixed-order state markers from spec.md §4.5. Only
// the "on" states render explicitly; false/unset attributes stay silent.
func stateBrackets(n *ariatree.AriaNode) []string {
	var out []string
	if n.Checked != nil {
		switch *n.Checked {
		case ariadom.TriMixed:
			out = append(out, "[checked=mixed]")
		case ariadom.TriTrue:
			out = append(out, "[checked]")
		}
	}
	if n.Disabled != nil && *n.Disabled {
		out = append(out, "[disabled]")
	}
	if n.Expanded != nil && *n.Expanded {
		out = append(out, "[expanded]")
	}
	if n.Level != nil {
		out = append(out, fmt.Sprintf("[level=%d]", *n.Level))
	}
	if n.Pressed != nil {
		switch *n.Pressed {
		case ariadom.TriMixed:
			out = append(out, "[pressed=mixed]")
		case ariadom.TriTrue:
			out = append(out, "[pressed]")
		}
	}
	if n.Selected != nil && *n.Selected {
		out = append(out, "[selected]")
	}
	return out
}

func renderProps(props map[string]string) []string {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("- /%s: %s", yamlEscapeKeyIfNeeded(k), yamlEscapeValueIfNeeded(props[k])))
	}
	return out
}

func pad(indent int) string {
	return strings.Repeat("  ", indent)
}
