package cmd

import (
	"bytes"
	"testing"

	"github.com/kitetree/ariascope/internal/output"
	"github.com/spf13/cobra"
)

func newTestRenderCmd() *cobra.Command {
	c := &cobra.Command{Use: "render", RunE: runRender}
	addFixtureFlags(c)
	c.Flags().String("scope-id", "", "")
	return c
}

func TestRunRender_RegexModeIsDefault(t *testing.T) {
	prevFormat, prevRaw := output.OutputFormat, output.RawMode
	output.OutputFormat = output.FormatYAML
	output.RawMode = false
	defer func() { output.OutputFormat, output.RawMode = prevFormat, prevRaw }()

	fixture := writeTempFile(t, "fixture.html", `<input type="text" value="Uploaded 42 files">`)
	c := newTestRenderCmd()
	c.Flags().Set("fixture", fixture)

	out, err := captureStdout(t, func() error { return runRender(c, nil) })
	if err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("mode: regex")) {
		t.Errorf("expected mode: regex, got:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte(`\d+`)) {
		t.Errorf("expected the digit run to be generalized, got:\n%s", out)
	}
}

func TestRunRender_RawModeKeepsLiteralText(t *testing.T) {
	prevFormat, prevRaw := output.OutputFormat, output.RawMode
	output.OutputFormat = output.FormatYAML
	output.RawMode = true
	defer func() { output.OutputFormat, output.RawMode = prevFormat, prevRaw }()

	fixture := writeTempFile(t, "fixture.html", `<input type="text" value="Uploaded 42 files">`)
	c := newTestRenderCmd()
	c.Flags().Set("fixture", fixture)

	out, err := captureStdout(t, func() error { return runRender(c, nil) })
	if err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("mode: raw")) {
		t.Errorf("expected mode: raw, got:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("Uploaded 42 files")) {
		t.Errorf("expected the literal text preserved, got:\n%s", out)
	}
}

func TestRunRender_UnknownScopeIDIsAnError(t *testing.T) {
	fixture := writeTempFile(t, "fixture.html", `<button>Go</button>`)
	c := newTestRenderCmd()
	c.Flags().Set("fixture", fixture)
	c.Flags().Set("scope-id", "missing")

	if err := runRender(c, nil); err == nil {
		t.Error("expected an error for an unknown --scope-id")
	}
}
