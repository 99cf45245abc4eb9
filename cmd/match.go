package cmd

import (
	"fmt"

	"github.com/kitetree/ariascope/internal/ariaapi"
	"github.com/kitetree/ariascope/internal/ariaerr"
	"github.com/kitetree/ariascope/internal/output"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match an HTML fixture's accessibility tree against a YAML template",
	Long: `Build the accessibility tree for an HTML fixture and check whether
any subtree matches the given template. Exits 0 with matched: true when at
least one subtree matches, exits 1 with matched: false otherwise. On a
miss, the output includes a diffTarget: the best-scoring candidate subtree,
rendered the same way, to compare by eye against the template.`,
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	addFixtureFlags(matchCmd)
	matchCmd.Flags().String("template", "", "Path to a YAML template file")
	matchCmd.Flags().String("scope-id", "", "Match only within the subtree rooted at the element with this HTML id")
}

func runMatch(cmd *cobra.Command, args []string) (err error) {
	defer ariaerr.Recover(&err)

	doc, err := loadFixture(cmd)
	if err != nil {
		return err
	}
	fixture, _ := cmd.Flags().GetString("fixture")
	templatePath, _ := cmd.Flags().GetString("template")
	scopeID, _ := cmd.Flags().GetString("scope-id")

	template, err := loadTemplate(cmd)
	if err != nil {
		return err
	}

	root := findElementNode(doc, scopeID)
	if root == nil {
		return fmt.Errorf("scope element %q not found in fixture", scopeID)
	}

	opts := buildOptions(cmd)
	bridge := newBridge(opts)

	result := ariaapi.MatchesAriaTree(bridge, nil, root, template, opts)

	matched := len(result.Matches) > 0
	out := output.MatchResult{
		Fixture:    fixture,
		Template:   templatePath,
		Matched:    matched,
		MatchCount: len(result.Matches),
		Raw:        result.Received.Raw,
		Regex:      result.Received.Regex,
	}
	if result.Received.DiffTarget != nil {
		out.DiffTarget = *result.Received.DiffTarget
	}

	if printErr := output.Print(out); printErr != nil {
		return printErr
	}
	if !matched {
		return fmt.Errorf("no subtree matched template %s", templatePath)
	}
	return nil
}
