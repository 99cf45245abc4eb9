package cmd

import "testing"

func TestStringParam_FallsBackToDefault(t *testing.T) {
	params := map[string]interface{}{"fixture": "a.html"}
	if got := stringParam(params, "fixture", ""); got != "a.html" {
		t.Errorf("got %q, want a.html", got)
	}
	if got := stringParam(params, "missing", "def"); got != "def" {
		t.Errorf("got %q, want def", got)
	}
	if got := stringParam(params, "fixture", ""); got == "" {
		t.Error("present string param should not fall back")
	}
}

func TestStringParam_WrongTypeFallsBackToDefault(t *testing.T) {
	params := map[string]interface{}{"fixture": 42}
	if got := stringParam(params, "fixture", "def"); got != "def" {
		t.Errorf("got %q, want def for a non-string value", got)
	}
}

func TestBoolParam_FallsBackToDefault(t *testing.T) {
	params := map[string]interface{}{"raw": true}
	if got := boolParam(params, "raw", false); !got {
		t.Error("expected true from a present bool param")
	}
	if got := boolParam(params, "missing", true); !got {
		t.Error("expected the default true when the param is absent")
	}
}

func TestMCPOptions_ForAIDefaultsTrue(t *testing.T) {
	opts := mcpOptions(map[string]interface{}{})
	if !opts.ForAI {
		t.Error("expected for_ai to default to true")
	}
	opts = mcpOptions(map[string]interface{}{"for_ai": false})
	if opts.ForAI {
		t.Error("expected for_ai: false to be honored")
	}
}

func TestLoadTemplateFromPath_EmptyPathIsAnError(t *testing.T) {
	if _, err := loadTemplateFromPath(""); err == nil {
		t.Error("expected an error for an empty template path")
	}
}

func TestLoadTemplateFromPath_ParsesFile(t *testing.T) {
	path := writeTempFile(t, "tmpl.yaml", "role: button\n")
	tmpl, err := loadTemplateFromPath(path)
	if err != nil {
		t.Fatalf("loadTemplateFromPath: %v", err)
	}
	if tmpl.Role != "button" {
		t.Errorf("got role %q, want button", tmpl.Role)
	}
}

func TestNewMCPServer_RegistersTools(t *testing.T) {
	s, err := newMCPServer(MCPConfig{Transport: "stdio"})
	if err != nil {
		t.Fatalf("newMCPServer: %v", err)
	}
	if s.mcp == nil {
		t.Error("expected an initialized MCP server")
	}
}

func TestMCPServer_Serve_RejectsUnknownTransport(t *testing.T) {
	s, err := newMCPServer(MCPConfig{Transport: "carrier-pigeon"})
	if err != nil {
		t.Fatalf("newMCPServer: %v", err)
	}
	if err := s.serve(MCPConfig{Transport: "carrier-pigeon"}); err == nil {
		t.Error("expected an error for an unsupported transport")
	}
}
