package ariascore

import (
	"testing"

	"github.com/kitetree/ariascope/internal/ariatemplate"
	"github.com/kitetree/ariascope/internal/ariatree"
)

func TestScoreNode_ExactRoleAndNameEarnsBothBonuses(t *testing.T) {
	node := &ariatree.AriaNode{Role: "button", Name: "Submit"}
	tmpl := ariatemplate.NewRole("button", 1)
	name := ariatemplate.Lit("Submit")
	tmpl.Name = &name

	got := ScoreNode(node, tmpl)
	want := RoleMatchScore + NameMatchScore
	if got != want {
		t.Errorf("ScoreNode = %d, want %d", got, want)
	}
}

func TestScoreNode_RoleMismatchScoresZeroForRole(t *testing.T) {
	node := &ariatree.AriaNode{Role: "link", Name: "Submit"}
	tmpl := ariatemplate.NewRole("button", 1)
	name := ariatemplate.Lit("Submit")
	tmpl.Name = &name

	got := ScoreNode(node, tmpl)
	if got != NameMatchScore {
		t.Errorf("ScoreNode = %d, want %d (name only)", got, NameMatchScore)
	}
}

func TestScoreNode_PartialNameSimilarityIsPartialCredit(t *testing.T) {
	node := &ariatree.AriaNode{Role: "button", Name: "Submit Order"}
	tmpl := ariatemplate.NewRole("button", 1)
	name := ariatemplate.Lit("Submit")
	tmpl.Name = &name

	got := ScoreNode(node, tmpl)
	if got <= RoleMatchScore || got >= RoleMatchScore+NameMatchScore {
		t.Errorf("ScoreNode = %d, want strictly between role-only and exact-name scores", got)
	}
}

func TestScoreNode_FragmentAlwaysEarnsRoleBonus(t *testing.T) {
	node := &ariatree.AriaNode{Role: "anything"}
	tmpl := ariatemplate.NewRole("fragment", 1)

	if got := ScoreNode(node, tmpl); got != RoleMatchScore {
		t.Errorf("ScoreNode(fragment) = %d, want %d", got, RoleMatchScore)
	}
}

func TestScoreNode_AllStateBonusRequiresEverySpecifiedStateToMatch(t *testing.T) {
	trueVal := true
	node := &ariatree.AriaNode{Role: "checkbox", Disabled: &trueVal, Expanded: &trueVal}
	tmpl := ariatemplate.NewRole("checkbox", 1)
	tmpl.Disabled = &trueVal
	tmpl.Expanded = &trueVal

	full := ScoreNode(node, tmpl)

	falseVal := false
	tmpl.Expanded = &falseVal
	partial := ScoreNode(node, tmpl)

	if full <= partial {
		t.Errorf("expected the all-state bonus to make a full match score higher: full=%d partial=%d", full, partial)
	}
	if full != RoleMatchScore+2*StateFieldScore+AllStateBonus {
		t.Errorf("full score = %d, want %d", full, RoleMatchScore+2*StateFieldScore+AllStateBonus)
	}
}

func TestScoreChild_TextExactVsSimilar(t *testing.T) {
	exactTmpl := ariatemplate.NewText(ariatemplate.Lit("Total: $10"), 1)
	if got := ScoreChild("Total: $10", exactTmpl); got != ExactScore {
		t.Errorf("exact text score = %d, want %d", got, ExactScore)
	}

	if got := ScoreChild("Total: $12", exactTmpl); got <= 0 || got >= ExactScore {
		t.Errorf("near-miss text score = %d, want strictly between 0 and %d", got, ExactScore)
	}
}

func TestScoreChild_WrongKindScoresFloor(t *testing.T) {
	tmpl := ariatemplate.NewRole("button", 1)
	if got := ScoreChild("not a node", tmpl); got != NoMatchFloor {
		t.Errorf("ScoreChild(text against role template) = %d, want %d", got, NoMatchFloor)
	}

	textTmpl := ariatemplate.NewText(ariatemplate.Lit("x"), 1)
	if got := ScoreChild(&ariatree.AriaNode{Role: "button"}, textTmpl); got != NoMatchFloor {
		t.Errorf("ScoreChild(node against text template) = %d, want %d", got, NoMatchFloor)
	}
}

func TestFindBestChildrenMatches_PositionBonusAndAllChildrenBonus(t *testing.T) {
	children := []any{
		&ariatree.AriaNode{Role: "listitem", Name: "One"},
		&ariatree.AriaNode{Role: "listitem", Name: "Two"},
	}
	templateChildren := []*ariatemplate.TemplateNode{
		roleTemplateNamed("listitem", "One"),
		roleTemplateNamed("listitem", "Two"),
	}

	total, chosen := FindBestChildrenMatches(children, templateChildren, true)
	if len(chosen) != 2 {
		t.Fatalf("want 2 chosen indices, got %+v", chosen)
	}
	want := 2*(RoleMatchScore+NameMatchScore) + 2*PositionBonus + AllChildrenBonus
	if total != want {
		t.Errorf("total = %d, want %d", total, want)
	}
}

func TestFindBestChildrenMatches_NoChildrenIncursPenaltyPerTemplateChild(t *testing.T) {
	templateChildren := []*ariatemplate.TemplateNode{
		roleTemplateNamed("listitem", "One"),
		roleTemplateNamed("listitem", "Two"),
	}
	total, chosen := FindBestChildrenMatches(nil, templateChildren, true)
	if chosen != nil {
		t.Errorf("want no chosen indices, got %+v", chosen)
	}
	if total != 2*NoMatchPenalty {
		t.Errorf("total = %d, want %d", total, 2*NoMatchPenalty)
	}
}

func TestFindBestChildrenMatches_SubsequenceModeOmitsBonuses(t *testing.T) {
	children := []any{&ariatree.AriaNode{Role: "listitem", Name: "One"}}
	templateChildren := []*ariatemplate.TemplateNode{roleTemplateNamed("listitem", "One")}

	total, chosen := FindBestChildrenMatches(children, templateChildren, false)
	if len(chosen) != 1 {
		t.Fatalf("want 1 chosen index, got %+v", chosen)
	}
	if total != RoleMatchScore+NameMatchScore {
		t.Errorf("total = %d, want %d (no position/all-children bonus)", total, RoleMatchScore+NameMatchScore)
	}
}

func TestFindBestStructuralMatch_PicksHighestScoringNode(t *testing.T) {
	root := &ariatree.AriaNode{
		Role: ariatree.RoleFragment,
		Children: []any{
			&ariatree.AriaNode{Role: "button", Name: "Cancel"},
			&ariatree.AriaNode{Role: "button", Name: "Submit"},
		},
	}
	tmpl := ariatemplate.NewRole("button", 1)
	name := ariatemplate.Lit("Submit")
	tmpl.Name = &name

	best := FindBestStructuralMatch(root, tmpl)
	if best == nil || best.Node.Name != "Submit" {
		t.Fatalf("want the Submit button as the best candidate, got %+v", best)
	}
}

func TestFindBestStructuralMatch_DepthBonusBreaksTies(t *testing.T) {
	root := &ariatree.AriaNode{
		Role: ariatree.RoleFragment,
		Children: []any{
			&ariatree.AriaNode{Role: "button"},
			&ariatree.AriaNode{Role: "generic", Children: []any{
				&ariatree.AriaNode{Role: "button"},
			}},
		},
	}
	tmpl := ariatemplate.NewRole("button", 1)

	best := FindBestStructuralMatch(root, tmpl)
	if best == nil || best.Node.Role != "button" {
		t.Fatalf("want the deeper button node preferred via the depth bonus, got %+v", best)
	}
	if best.Depth != 2 {
		t.Errorf("depth = %d, want 2", best.Depth)
	}
}

func TestFindBestStructuralMatch_FragmentTemplatePicksBestChildSubset(t *testing.T) {
	root := &ariatree.AriaNode{
		Role: ariatree.RoleFragment,
		Children: []any{
			&ariatree.AriaNode{Role: "listitem", Name: "One"},
			&ariatree.AriaNode{Role: "listitem", Name: "Two"},
			&ariatree.AriaNode{Role: "banner", Name: "Ignore me"},
		},
	}
	fragTmpl := ariatemplate.NewRole("fragment", 1)
	fragTmpl.Children = []*ariatemplate.TemplateNode{
		roleTemplateNamed("listitem", "One"),
		roleTemplateNamed("listitem", "Two"),
	}

	best := FindBestStructuralMatch(root, fragTmpl)
	if best == nil {
		t.Fatal("expected a candidate")
	}
	if len(best.FragmentChildren) != 2 {
		t.Fatalf("want 2 fragment children chosen, got %+v", best.FragmentChildren)
	}
	for _, c := range best.FragmentChildren {
		if c.Role != "listitem" {
			t.Errorf("fragment child %+v should be a listitem, not the unrelated banner", c)
		}
	}
}

func TestFindBestStructuralMatch_FragmentChildrenKeepDocumentOrder(t *testing.T) {
	// Template children are listed in the opposite order to the actual
	// children, so the greedy per-template-child assignment claims actual
	// indices out of order (ti=0 claims idx 1, ti=1 claims idx 0). The
	// fragment must still be reported in original document order.
	root := &ariatree.AriaNode{
		Role: ariatree.RoleFragment,
		Children: []any{
			&ariatree.AriaNode{Role: "text", Name: "Cat"},
			&ariatree.AriaNode{Role: "text", Name: "Dog"},
		},
	}
	fragTmpl := ariatemplate.NewRole("fragment", 1)
	fragTmpl.Children = []*ariatemplate.TemplateNode{
		roleTemplateNamed("text", "Dog"),
		roleTemplateNamed("text", "Cat"),
	}

	best := FindBestStructuralMatch(root, fragTmpl)
	if best == nil {
		t.Fatal("expected a candidate")
	}
	if len(best.FragmentChildren) != 2 {
		t.Fatalf("want 2 fragment children chosen, got %+v", best.FragmentChildren)
	}
	if best.FragmentChildren[0].Name != "Cat" || best.FragmentChildren[1].Name != "Dog" {
		t.Errorf("fragment children out of document order: got [%s, %s], want [Cat, Dog]",
			best.FragmentChildren[0].Name, best.FragmentChildren[1].Name)
	}
}

func roleTemplateNamed(role, name string) *ariatemplate.TemplateNode {
	tmpl := ariatemplate.NewRole(role, 1)
	n := ariatemplate.Lit(name)
	tmpl.Name = &n
	return tmpl
}
