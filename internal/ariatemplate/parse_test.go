package ariatemplate

import (
	"strings"
	"testing"
)

func TestParse_SimpleRoleWithNameAndChildren(t *testing.T) {
	src := `
role: button
name: Submit
children:
  - text: Submit
`
	node, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if node.Kind != KindRole || node.Role != "button" {
		t.Fatalf("got %+v", node)
	}
	if node.Name == nil || node.Name.Literal != "Submit" {
		t.Fatalf("want literal name Submit, got %+v", node.Name)
	}
	if node.EffectiveContainerMode() != ContainModeContain {
		t.Errorf("want default contain mode, got %v", node.EffectiveContainerMode())
	}
	if len(node.Children) != 1 || node.Children[0].Kind != KindText {
		t.Fatalf("want one text child, got %+v", node.Children)
	}
	if node.Children[0].Text.Literal != "Submit" {
		t.Errorf("want text literal Submit, got %+v", node.Children[0].Text)
	}
}

func TestParse_RegexName(t *testing.T) {
	src := `
role: heading
name:
  regex: "^Order #\\d+$"
`
	node, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if node.Name == nil || !node.Name.IsRegex() {
		t.Fatalf("want a regex name constraint, got %+v", node.Name)
	}
	if node.Name.Regex.Pattern != `^Order #\d+$` {
		t.Errorf("got pattern %q", node.Name.Regex.Pattern)
	}
}

func TestParse_InvalidRegexRejectedAtParseTime(t *testing.T) {
	src := `
role: heading
name:
  regex: "(unclosed"
`
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for an invalid regex pattern")
	}
}

func TestParse_MissingRoleAndText(t *testing.T) {
	src := `
containerMode: equal
`
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for a node with neither role nor text")
	}
}

func TestParse_ContainerModeAndProps(t *testing.T) {
	src := `
role: link
containerMode: deep-equal
props:
  url: /docs
`
	node, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if node.ContainerMode != ContainModeDeepEqual {
		t.Errorf("got containerMode %q", node.ContainerMode)
	}
	if node.Props["url"].Literal != "/docs" {
		t.Errorf("got props %+v", node.Props)
	}
}

func TestParse_StateConstraints(t *testing.T) {
	src := `
role: checkbox
checked: mixed
disabled: false
level: 2
`
	node, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if node.Checked == nil || *node.Checked != TriMixed {
		t.Fatalf("got checked %+v", node.Checked)
	}
	if node.Disabled == nil || *node.Disabled != false {
		t.Fatalf("got disabled %+v", node.Disabled)
	}
	if node.Level == nil || *node.Level != 2 {
		t.Fatalf("got level %+v", node.Level)
	}
}

func TestParse_InvalidTriState(t *testing.T) {
	src := `
role: checkbox
checked: maybe
`
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for an invalid tri-state value")
	}
}

func TestParse_LineNumbersIncreasePerNode(t *testing.T) {
	src := `
role: list
children:
  - role: listitem
    children:
      - text: One
  - role: listitem
    children:
      - text: Two
`
	node, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if node.LineNumber != 1 {
		t.Fatalf("root line number = %d, want 1", node.LineNumber)
	}
	if node.Children[0].LineNumber == node.Children[1].LineNumber {
		t.Errorf("siblings should not share a line number: %d vs %d", node.Children[0].LineNumber, node.Children[1].LineNumber)
	}
}
