package cmd

import (
	"fmt"
	"os"

	"golang.org/x/net/html"

	"github.com/kitetree/ariascope/internal/ariadom"
	"github.com/kitetree/ariascope/internal/ariatemplate"
	"github.com/kitetree/ariascope/internal/ariatree"
	"github.com/spf13/cobra"
)

// addFixtureFlags registers the flags every subcommand that reads an HTML
// fixture shares.
func addFixtureFlags(cmd *cobra.Command) {
	cmd.Flags().String("fixture", "", "Path to an HTML fixture file")
	cmd.Flags().Bool("for-ai", true, "Build the AI-oriented tree: assign refs, keep role-less elements as generic nodes")
	cmd.Flags().String("ref-prefix", "", "Prefix for minted refs (e.g. \"s1\" -> \"s1e3\")")
	cmd.Flags().Bool("input-file-role-textbox", false, "Do not take the value of <input type=file> as its text content (its role stays button)")
}

// loadFixture reads and parses the HTML fixture named by the --fixture flag.
func loadFixture(cmd *cobra.Command) (*html.Node, error) {
	path, _ := cmd.Flags().GetString("fixture")
	if path == "" {
		return nil, fmt.Errorf("--fixture is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return doc, nil
}

// buildOptions reads the shared fixture flags into a tree-build Options.
func buildOptions(cmd *cobra.Command) ariatree.Options {
	forAI, _ := cmd.Flags().GetBool("for-ai")
	refPrefix, _ := cmd.Flags().GetString("ref-prefix")
	inputFileRoleTextbox, _ := cmd.Flags().GetBool("input-file-role-textbox")
	return ariatree.Options{
		ForAI:                forAI,
		RefPrefix:            refPrefix,
		InputFileRoleTextbox: inputFileRoleTextbox,
	}
}

// newBridge builds the one production DomBridge this repository ships,
// configured from the same flags buildOptions reads.
func newBridge(opts ariatree.Options) *ariadom.HTMLBridge {
	return ariadom.NewHTMLBridge(ariadom.GlobalOptions{InputFileRoleTextbox: opts.InputFileRoleTextbox})
}

// loadTemplate reads and parses the YAML template file named by the
// --template flag.
func loadTemplate(cmd *cobra.Command) (*ariatemplate.TemplateNode, error) {
	path, _ := cmd.Flags().GetString("template")
	if path == "" {
		return nil, fmt.Errorf("--template is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	tmpl, err := ariatemplate.Parse(f)
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

// findElementNode locates the *html.Node in root's subtree with the given
// id attribute. Used to scope commands to a specific element.
func findElementNode(root *html.Node, id string) *html.Node {
	if id == "" {
		return root
	}
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					found = n
					return
				}
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
