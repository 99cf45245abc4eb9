// Package output prints command results in the format the root command
// selected, adapted line-for-line from the teacher's internal/output
// package (same Format type, same Print/PrintYAML/PrintJSON split) but
// re-pointed at this repository's own result types instead of
// model.Element.
package output

import (
	"fmt"
	"os"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's
// --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// RawMode disables smart defaults when set via --raw.
var RawMode bool

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintJSON(v, PrettyOutput)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return errUnsupportedFormat(OutputFormat)
	}
}

// IsOutputPiped reports whether stdout is connected to a pipe rather than a
// terminal, the same heuristic the teacher's root command uses to pick a
// smart default format.
func IsOutputPiped() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) == 0
}

func errUnsupportedFormat(f Format) error {
	return fmt.Errorf("unsupported output format: %s", f)
}
