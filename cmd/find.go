package cmd

import (
	"fmt"

	"github.com/kitetree/ariascope/internal/ariaapi"
	"github.com/kitetree/ariascope/internal/ariaerr"
	"github.com/kitetree/ariascope/internal/output"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find every accessibility-tree subtree matching a template",
	Long:  "Build the accessibility tree for an HTML fixture and list every subtree matching a YAML template, along with its ref, role, and accessible name.",
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	addFixtureFlags(findCmd)
	findCmd.Flags().String("template", "", "Path to a YAML template file")
	findCmd.Flags().String("scope-id", "", "Search only within the subtree rooted at the element with this HTML id")
}

func runFind(cmd *cobra.Command, args []string) (err error) {
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

	entries := make([]output.FindEntry, 0, len(result.Matches))
	for _, m := range result.Matches {
		entries = append(entries, output.FindEntry{
			Ref:  m.Ref,
			Role: m.Role,
			Name: m.Name,
		})
	}

	return output.Print(output.FindResult{
		Fixture:  fixture,
		Template: templatePath,
		Count:    len(entries),
		Matches:  entries,
	})
}
