package cmd

import (
	"fmt"

	"github.com/kitetree/ariascope/internal/ariaapi"
	"github.com/kitetree/ariascope/internal/ariaerr"
	"github.com/kitetree/ariascope/internal/ariarender"
	"github.com/kitetree/ariascope/internal/output"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Build an ARIA accessibility tree from an HTML fixture and render it as YAML",
	Long: `Read an HTML fixture, build its accessibility tree, and print the
canonical YAML-sequence snapshot. Renders in "regex" mode by default,
generalizing dynamic-looking text (numbers, units, dates) into regex
patterns; pass --raw for the literal text.`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addFixtureFlags(renderCmd)
	renderCmd.Flags().String("scope-id", "", "Render only the subtree rooted at the element with this HTML id")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	defer ariaerr.Recover(&err)

	doc, err := loadFixture(cmd)
	if err != nil {
		return err
	}
	fixture, _ := cmd.Flags().GetString("fixture")
	scopeID, _ := cmd.Flags().GetString("scope-id")

	root := findElementNode(doc, scopeID)
	if root == nil {
		return fmt.Errorf("scope element %q not found in fixture", scopeID)
	}

	opts := buildOptions(cmd)
	bridge := newBridge(opts)

	mode := ariarender.ModeRegex
	if output.RawMode {
		mode = ariarender.ModeRaw
	}

	tree := ariaapi.RenderAriaTree(bridge, nil, root, opts, ariarender.Options{Mode: mode, ForAI: opts.ForAI})

	return output.Print(output.RenderResult{
		Fixture: fixture,
		Mode:    string(mode),
		ForAI:   opts.ForAI,
		Tree:    tree,
	})
}
