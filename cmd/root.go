package cmd

import (
	"fmt"
	"os"

	"github.com/kitetree/ariascope/internal/output"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ariascope",
	Short: "Build, match, and render ARIA accessibility-tree snapshots",
	Long:  "A CLI tool that builds ARIA accessibility trees from HTML fixtures, matches them against YAML templates, and renders them as canonical YAML snapshots for AI agents and tests.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("raw", false, "Render text values raw instead of guessing regexes for dynamic content")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		raw, _ := rootCmd.PersistentFlags().GetBool("raw")
		output.RawMode = raw

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		if pretty, err := rootCmd.PersistentFlags().GetBool("pretty"); err == nil && pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
