package ariatree

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/kitetree/ariascope/internal/ariadom"
)

// Build walks rootElement and produces a normalized AriaSnapshot (spec.md
// §4.1). cache may be nil when opts.ForAI is false; a nil cache in forAI
// mode gets a private one so callers that don't care about ref stability
// across builds don't have to construct one.
func Build(bridge ariadom.Bridge, cache *ariadom.Cache, rootElement *html.Node, opts Options) *AriaSnapshot {
	if opts.ForAI && cache == nil {
		cache = ariadom.NewCache()
	}
	if cache != nil {
		cache.BeginAriaCaches()
		defer cache.EndAriaCaches()
	}

	b := &builder{
		bridge:   bridge,
		cache:    cache,
		opts:     opts,
		visited:  make(map[*html.Node]bool),
		elements: make(map[string]*html.Node),
	}

	root := newNode(RoleFragment)
	root.Element = rootElement
	root.Box = bridge.Box(rootElement)
	b.visitChildren(rootElement, root)

	normalizeStringChildren(root)
	normalizeGenericRoles(root)

	return &AriaSnapshot{Root: root, Elements: b.elements}
}

type builder struct {
	bridge   ariadom.Bridge
	cache    *ariadom.Cache
	opts     Options
	visited  map[*html.Node]bool
	elements map[string]*html.Node
}

func appendChild(parent *AriaNode, child any) {
	parent.Children = append(parent.Children, child)
}

// visitWithSpacing wraps visit with the word-boundary space token spec.md
// §4.1 step 3 calls for around any non-inline element (or <br>).
func (b *builder) visitWithSpacing(n *html.Node, parent *AriaNode) {
	spacer := n.Type == html.ElementNode && b.isBlockLike(n)
	if spacer {
		appendChild(parent, " ")
	}
	b.visit(n, parent)
	if spacer {
		appendChild(parent, " ")
	}
}

func (b *builder) isBlockLike(n *html.Node) bool {
	if n.Data == "br" {
		return true
	}
	style := b.bridge.ComputedStyle(n)
	return style != nil && style.Display != "inline"
}

func (b *builder) visit(n *html.Node, parent *AriaNode) {
	switch n.Type {
	case html.TextNode:
		if parent.Role != "textbox" {
			appendChild(parent, n.Data)
		}
		return
	case html.ElementNode:
		// fall through
	default:
		return
	}

	if b.visited[n] {
		return
	}
	b.visited[n] = true

	visible := !b.bridge.IsHiddenForAria(n)
	if b.opts.ForAI && b.bridge.IsVisible(n) {
		visible = true
	}
	if !visible {
		return
	}

	if n.Data == "iframe" {
		node := newNode(RoleIframe)
		node.Name = b.bridge.AccessibleName(n, false)
		b.finalize(node, n, parent)
		return
	}

	role, roleOK := b.bridge.AriaRole(n)
	transparent := false
	if roleOK && (role == RolePresentation || role == RoleNone) {
		transparent = true
	} else if !roleOK {
		if b.opts.ForAI {
			role = RoleGeneric
		} else {
			transparent = true
		}
	}

	effectiveParent := parent
	if !transparent {
		node := newNode(role)
		node.Name = b.bridge.AccessibleName(n, false)
		b.applyStateAttrs(node, n)
		if n.Data == "a" {
			if href, ok := attrVal(n, "href"); ok {
				node.Props = map[string]string{"url": href}
			}
		}
		b.finalize(node, n, parent)
		effectiveParent = node
	}

	if isTextValueField(n, b.opts.InputFileRoleTextbox) {
		appendChild(effectiveParent, fieldValue(n))
		return
	}

	b.visitChildren(n, effectiveParent)
}

// finalize sets the geometry/pointer-event facts common to every created
// AriaNode, mints a ref when running in forAI mode, and links it into its
// parent's children.
func (b *builder) finalize(node *AriaNode, n *html.Node, parent *AriaNode) {
	node.Element = n
	node.Box = b.bridge.Box(n)
	node.ReceivesPointerEvents = b.bridge.ReceivesPointerEvents(n)
	if b.opts.ForAI {
		ref := b.cache.RefFor(n, b.opts.RefPrefix, node.Role, node.Name)
		node.Ref = ref
		b.elements[ref] = n
	}
	appendChild(parent, node)
}

func (b *builder) applyStateAttrs(node *AriaNode, n *html.Node) {
	if v, ok := b.bridge.Checked(n); ok {
		vv := v
		node.Checked = &vv
	}
	if v, ok := b.bridge.Disabled(n); ok {
		vv := v
		node.Disabled = &vv
	}
	if v, ok := b.bridge.Expanded(n); ok {
		vv := v
		node.Expanded = &vv
	}
	if v, ok := b.bridge.Level(n); ok {
		vv := v
		node.Level = &vv
	}
	if v, ok := b.bridge.Pressed(n); ok {
		vv := v
		node.Pressed = &vv
	}
	if v, ok := b.bridge.Selected(n); ok {
		vv := v
		node.Selected = &vv
	}
}

// visitChildren walks n's descendants in the order spec.md §4.1 step 3
// prescribes: ::before content, then assigned-slot-or-natural children (with
// a light shadow-DOM/slot approximation, see shadow.go), then aria-owns
// children, then ::after content.
func (b *builder) visitChildren(n *html.Node, parent *AriaNode) {
	if before := b.bridge.CSSContent(n, ariadom.PseudoBefore); before != "" {
		appendChild(parent, before)
	}

	if shadow := findShadowTemplate(n); shadow != nil {
		b.visitShadowChildren(shadow, n, parent)
	} else {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.visitWithSpacing(c, parent)
		}
	}

	if owns, ok := attrVal(n, "aria-owns"); ok {
		doc := ownerDocument(n)
		for _, id := range splitFields(owns) {
			if target := findByID(doc, id); target != nil {
				b.visitWithSpacing(target, parent)
			}
		}
	}

	if after := b.bridge.CSSContent(n, ariadom.PseudoAfter); after != "" {
		appendChild(parent, after)
	}
}

func isTextValueField(n *html.Node, inputFileRoleTextbox bool) bool {
	if n.Data != "input" && n.Data != "textarea" {
		return false
	}
	if n.Data == "input" {
		typ := attrValOr(n, "type", "text")
		if typ == "checkbox" || typ == "radio" {
			return false
		}
		if typ == "file" && inputFileRoleTextbox {
			return false
		}
	}
	return true
}

func fieldValue(n *html.Node) string {
	if n.Data == "input" {
		return attrValOr(n, "value", "")
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	if b.Len() == 0 {
		return attrValOr(n, "value", "")
	}
	return b.String()
}

func attrVal(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attrValOr(n *html.Node, key, fallback string) string {
	if v, ok := attrVal(n, key); ok {
		return v
	}
	return fallback
}

func splitFields(s string) []string {
	return strings.Fields(s)
}

func ownerDocument(n *html.Node) *html.Node {
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

func findByID(root *html.Node, id string) *html.Node {
	if root == nil || id == "" {
		return nil
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			if v, ok := attrVal(n, "id"); ok && v == id {
				found = n
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
			if found != nil {
				return
			}
		}
	}
	walk(root)
	return found
}
