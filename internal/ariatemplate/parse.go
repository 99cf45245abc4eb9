package ariatemplate

import (
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Parse reads a structured YAML template document and produces the
// TemplateNode tree the matcher consumes. spec.md §1 treats the
// human-authored template syntax as an external parser's concern — this is
// this repository's own reader for its fixture and CLI `--template` files,
// not a re-implementation of any particular upstream DSL.
//
// A regex field ("regex: ..." under text/name/props) is compiled eagerly so
// a malformed pattern is rejected here, at parse time, rather than reaching
// the matcher (spec.md §7: an invalid pattern is a caller error the parser
// should catch).
func Parse(r io.Reader) (*TemplateNode, error) {
	var raw yamlTemplate
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("ariatemplate: decode: %w", err)
	}
	line := 0
	return convert(&raw, &line)
}

type yamlScalarOrRegex struct {
	literal string
	regex   string
	isRegex bool
}

func (s *yamlScalarOrRegex) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		var m struct {
			Regex string `yaml:"regex"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		s.regex = m.Regex
		s.isRegex = true
		return nil
	}
	return value.Decode(&s.literal)
}

func (s yamlScalarOrRegex) toStringOrRegex() (StringOrRegex, error) {
	if !s.isRegex {
		return Lit(s.literal), nil
	}
	if _, err := regexp.Compile(s.regex); err != nil {
		return StringOrRegex{}, fmt.Errorf("ariatemplate: invalid regex %q: %w", s.regex, err)
	}
	return Rx(s.regex), nil
}

type yamlTemplate struct {
	Role          string                       `yaml:"role,omitempty"`
	Text          *yamlScalarOrRegex           `yaml:"text,omitempty"`
	Name          *yamlScalarOrRegex           `yaml:"name,omitempty"`
	Props         map[string]yamlScalarOrRegex `yaml:"props,omitempty"`
	Checked       *string                      `yaml:"checked,omitempty"`
	Disabled      *bool                        `yaml:"disabled,omitempty"`
	Expanded      *bool                        `yaml:"expanded,omitempty"`
	Level         *int                         `yaml:"level,omitempty"`
	Pressed       *string                      `yaml:"pressed,omitempty"`
	Selected      *bool                        `yaml:"selected,omitempty"`
	ContainerMode string                       `yaml:"containerMode,omitempty"`
	Children      []yamlTemplate               `yaml:"children,omitempty"`
}

func convert(raw *yamlTemplate, line *int) (*TemplateNode, error) {
	*line++
	lineNumber := *line

	if raw.Text != nil {
		text, err := raw.Text.toStringOrRegex()
		if err != nil {
			return nil, err
		}
		return NewText(text, lineNumber), nil
	}

	if raw.Role == "" {
		return nil, fmt.Errorf("ariatemplate: node at line %d has neither role nor text", lineNumber)
	}

	node := NewRole(raw.Role, lineNumber)

	if raw.Name != nil {
		name, err := raw.Name.toStringOrRegex()
		if err != nil {
			return nil, err
		}
		node.Name = &name
	}

	if len(raw.Props) > 0 {
		node.Props = make(map[string]StringOrRegex, len(raw.Props))
		for k, v := range raw.Props {
			sv, err := v.toStringOrRegex()
			if err != nil {
				return nil, err
			}
			node.Props[k] = sv
		}
	}

	if raw.Checked != nil {
		c, err := parseTri(*raw.Checked)
		if err != nil {
			return nil, err
		}
		node.Checked = &c
	}
	if raw.Pressed != nil {
		p, err := parseTri(*raw.Pressed)
		if err != nil {
			return nil, err
		}
		node.Pressed = &p
	}
	node.Disabled = raw.Disabled
	node.Expanded = raw.Expanded
	node.Level = raw.Level
	node.Selected = raw.Selected

	if raw.ContainerMode != "" {
		node.ContainerMode = ContainerMode(raw.ContainerMode)
	}

	for i := range raw.Children {
		child, err := convert(&raw.Children[i], line)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

func parseTri(s string) (TriConstraint, error) {
	switch s {
	case "true":
		return TriTrue, nil
	case "false":
		return TriFalse, nil
	case "mixed":
		return TriMixed, nil
	default:
		return "", fmt.Errorf("ariatemplate: invalid tri-state value %q (want true, false, or mixed)", s)
	}
}
