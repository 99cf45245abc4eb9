// Package ariatemplate defines the tagged-variant tree the matcher consumes
// (spec.md §3.3). The text that becomes a TemplateNode is parsed elsewhere —
// this package only owns the shape a parser must produce.
package ariatemplate

// ContainerMode is the child-list comparison policy on a role template.
type ContainerMode string

const (
	ContainModeContain   ContainerMode = "contain"
	ContainModeEqual     ContainerMode = "equal"
	ContainModeDeepEqual ContainerMode = "deep-equal"
)

// RegexPattern is a template string interpreted as an un-anchored regular
// expression by the matcher.
type RegexPattern struct {
	Pattern string
}

// StringOrRegex holds either a literal string or a RegexPattern constraint —
// the "string | RegexPattern" union spec.md §3.3 uses for text, name, and
// the url prop.
type StringOrRegex struct {
	Literal string
	Regex   *RegexPattern
}

// IsRegex reports whether this value is a regex constraint rather than a
// literal string.
func (s StringOrRegex) IsRegex() bool { return s.Regex != nil }

// Lit constructs a literal string constraint.
func Lit(s string) StringOrRegex { return StringOrRegex{Literal: s} }

// Rx constructs a regex constraint.
func Rx(pattern string) StringOrRegex { return StringOrRegex{Regex: &RegexPattern{Pattern: pattern}} }

// Kind tags a TemplateNode as either a text-match leaf or a role node.
type Kind int

const (
	KindText Kind = iota
	KindRole
)

// TemplateNode is spec.md §3.3's tagged variant. Text-kind nodes populate
// Text/LineNumber only; role-kind nodes populate the rest.
type TemplateNode struct {
	Kind Kind

	// KindText fields.
	Text StringOrRegex

	// KindRole fields.
	Role          string
	Name          *StringOrRegex
	Props         map[string]StringOrRegex
	Checked       *TriConstraint
	Disabled      *bool
	Expanded      *bool
	Level         *int
	Pressed       *TriConstraint
	Selected      *bool
	ContainerMode ContainerMode
	Children      []*TemplateNode

	LineNumber int
}

// TriConstraint mirrors ariadom.Tri without importing it — the template
// package has no business depending on the DOM bridge contract, only on the
// three-valued vocabulary it shares with it.
type TriConstraint string

const (
	TriTrue  TriConstraint = "true"
	TriFalse TriConstraint = "false"
	TriMixed TriConstraint = "mixed"
)

// NewText builds a text-kind leaf.
func NewText(value StringOrRegex, lineNumber int) *TemplateNode {
	return &TemplateNode{Kind: KindText, Text: value, LineNumber: lineNumber}
}

// NewRole builds a role-kind node with the default (contain) container mode.
func NewRole(role string, lineNumber int) *TemplateNode {
	return &TemplateNode{Kind: KindRole, Role: role, ContainerMode: ContainModeContain, LineNumber: lineNumber}
}

// IsFragment reports whether this role node is the wildcard fragment role.
func (t *TemplateNode) IsFragment() bool {
	return t.Kind == KindRole && t.Role == "fragment"
}

// EffectiveContainerMode returns the node's container mode, defaulting to
// contain when unset.
func (t *TemplateNode) EffectiveContainerMode() ContainerMode {
	if t.ContainerMode == "" {
		return ContainModeContain
	}
	return t.ContainerMode
}
