package ariadom

import "golang.org/x/net/html"

// TagRoleMap maps HTML tag names to their implicit ARIA role, mirroring the
// teacher's RoleMap (internal/model/roles.go in mj1618-desktop-cli) that maps
// macOS AXRole values to compact codes — same idea, different vocabulary.
var TagRoleMap = map[string]string{
	"a":        "link",
	"article":  "article",
	"aside":    "complementary",
	"button":   "button",
	"code":     "code",
	"em":       "emphasis",
	"footer":   "contentinfo",
	"form":     "form",
	"h1":       "heading",
	"h2":       "heading",
	"h3":       "heading",
	"h4":       "heading",
	"h5":       "heading",
	"h6":       "heading",
	"header":   "banner",
	"hr":       "separator",
	"html":     "document",
	"img":      "img",
	"li":       "listitem",
	"main":     "main",
	"nav":      "navigation",
	"ol":       "list",
	"option":   "option",
	"p":        "paragraph",
	"pre":      "code",
	"progress": "progressbar",
	"section":  "region",
	"select":   "combobox",
	"strong":   "strong",
	"table":    "table",
	"tbody":    "rowgroup",
	"td":       "cell",
	"textarea": "textbox",
	"tfoot":    "rowgroup",
	"th":       "columnheader",
	"thead":    "rowgroup",
	"tr":       "row",
	"ul":       "list",
}

// InputTypeRoleMap maps <input type="..."> to its implicit role.
var InputTypeRoleMap = map[string]string{
	"button":   "button",
	"checkbox": "checkbox",
	"email":    "textbox",
	"image":    "button",
	"number":   "spinbutton",
	"password": "textbox",
	"radio":    "radio",
	"range":    "slider",
	"reset":    "button",
	"search":   "searchbox",
	"submit":   "button",
	"tel":      "textbox",
	"text":     "textbox",
	"url":      "textbox",
	"file":     "button",
}

// RoleFragment and RoleIframe are the sentinel roles from spec.md §3.1: the
// synthetic snapshot root / wildcard template role, and the always-leaf
// iframe role.
const (
	RoleFragment = "fragment"
	RoleIframe   = "iframe"
	RoleGeneric  = "generic"
)

// State-attribute role sets, the "role-set constants" spec.md §6 calls out
// as part of the DomBridge contract. Exported so the list-roles command
// (cmd/list_roles.go) can print them without duplicating the table.
var (
	CheckedRoles = roleSet("checkbox", "radio", "menuitemcheckbox", "menuitemradio", "switch", "option")

	DisabledRoles = roleSet(
		"button", "checkbox", "combobox", "gridcell", "link", "menuitem",
		"menuitemcheckbox", "menuitemradio", "option", "radio", "searchbox",
		"slider", "spinbutton", "switch", "tab", "textbox", "treeitem",
	)

	ExpandedRoles = roleSet(
		"button", "combobox", "link", "menuitem", "row", "rowheader",
		"columnheader", "gridcell", "tab", "treeitem", "application",
	)

	LevelRoles = roleSet("heading", "listitem", "row", "treeitem", "comment")

	PressedRoles = roleSet("button")

	SelectedRoles = roleSet("option", "row", "tab", "treeitem", "gridcell", "columnheader", "rowheader")
)

func roleSet(roles ...string) map[string]bool {
	m := make(map[string]bool, len(roles))
	for _, r := range roles {
		m[r] = true
	}
	return m
}

// ExplicitRole returns the value of an explicit role="..." attribute, if
// present and non-empty. The first token is used when multiple
// space-separated fallback roles are listed, matching how browsers resolve
// the ARIA role attribute.
func ExplicitRole(n *html.Node) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == "role" {
			for _, tok := range splitFields(a.Val) {
				if tok != "" {
					return tok, true
				}
			}
			return "", false
		}
	}
	return "", false
}

func splitFields(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

// ImplicitRole resolves the implicit role for an element by tag, consulting
// input type where relevant. ok is false when no implicit role is defined
// (e.g. <div>, <span>), matching the "no explicit role -> generic" fallback
// spec.md §4.1 step 2 assigns only in forAI mode.
func ImplicitRole(n *html.Node) (string, bool) {
	if n.Data == "input" {
		typ := attr(n, "type")
		if typ == "" {
			typ = "text"
		}
		if role, ok := InputTypeRoleMap[typ]; ok {
			return role, true
		}
		return "textbox", true
	}
	if n.Data == "a" {
		if _, hasHref := attrOK(n, "href"); !hasHref {
			return "", false
		}
	}
	if role, ok := TagRoleMap[n.Data]; ok {
		return role, true
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := attrOK(n, key)
	return v
}

func attrOK(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
