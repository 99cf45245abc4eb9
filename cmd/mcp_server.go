package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/kitetree/ariascope/internal/ariaapi"
	"github.com/kitetree/ariascope/internal/ariadom"
	"github.com/kitetree/ariascope/internal/ariaerr"
	"github.com/kitetree/ariascope/internal/ariamatch"
	"github.com/kitetree/ariascope/internal/ariarender"
	"github.com/kitetree/ariascope/internal/ariatemplate"
	"github.com/kitetree/ariascope/internal/ariatree"
)

// mcpServer wraps the MCP server with the fixture cache, adapted from the
// teacher's mcpServer (cmd/mcp_server.go) — same shape, minus the platform
// provider this repository has no equivalent of.
type mcpServer struct {
	cache *mcpFixtureCache
	mcp   *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	s := &mcpServer{
		cache: newMCPFixtureCache(cfg.CacheTTL),
	}
	s.mcp = mcpserver.NewMCPServer("ariascope", "0.1.0")
	s.registerTools()
	return s, nil
}

func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("render_aria_tree",
			mcp.WithDescription("Build the ARIA accessibility tree for an HTML fixture and render it as canonical YAML"),
			mcp.WithString("fixture", mcp.Description("Path to an HTML fixture file"), mcp.Required()),
			mcp.WithString("scope_id", mcp.Description("Render only the subtree rooted at this HTML element id")),
			mcp.WithBoolean("for_ai", mcp.Description("Build the AI-oriented tree (default true)")),
			mcp.WithBoolean("raw", mcp.Description("Render literal text instead of regex-generalizing dynamic content")),
		),
		s.handleRenderAriaTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("match_aria_tree",
			mcp.WithDescription("Check whether any subtree of an HTML fixture's accessibility tree matches a YAML template"),
			mcp.WithString("fixture", mcp.Description("Path to an HTML fixture file"), mcp.Required()),
			mcp.WithString("template", mcp.Description("Path to a YAML template file"), mcp.Required()),
			mcp.WithString("scope_id", mcp.Description("Match only within this HTML element id's subtree")),
		),
		s.handleMatchAriaTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("find_aria_matches",
			mcp.WithDescription("List every subtree of an HTML fixture's accessibility tree matching a YAML template"),
			mcp.WithString("fixture", mcp.Description("Path to an HTML fixture file"), mcp.Required()),
			mcp.WithString("template", mcp.Description("Path to a YAML template file"), mcp.Required()),
			mcp.WithString("scope_id", mcp.Description("Search only within this HTML element id's subtree")),
		),
		s.handleFindAriaMatches,
	)
}

func (s *mcpServer) loadRoot(params map[string]interface{}) (*html.Node, error) {
	fixture := stringParam(params, "fixture", "")
	if fixture == "" {
		return nil, fmt.Errorf("fixture is required")
	}
	doc, err := s.cache.loadFixtureDoc(fixture)
	if err != nil {
		return nil, fmt.Errorf("load fixture %s: %w", fixture, err)
	}
	scopeID := stringParam(params, "scope_id", "")
	root := findElementNode(doc, scopeID)
	if root == nil {
		return nil, fmt.Errorf("scope element %q not found in fixture", scopeID)
	}
	return root, nil
}

func mcpOptions(params map[string]interface{}) ariatree.Options {
	return ariatree.Options{
		ForAI: boolParam(params, "for_ai", true),
	}
}

func (s *mcpServer) handleRenderAriaTree(_ context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
	defer ariaerr.Recover(&err)

	params := request.GetArguments()
	root, err := s.loadRoot(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := mcpOptions(params)
	bridge := ariadom.NewHTMLBridge(ariadom.GlobalOptions{})

	mode := ariarender.ModeRegex
	if boolParam(params, "raw", false) {
		mode = ariarender.ModeRaw
	}

	tree := ariaapi.RenderAriaTree(bridge, nil, root, opts, ariarender.Options{Mode: mode, ForAI: opts.ForAI})
	return mcp.NewToolResultText(tree), nil
}

func (s *mcpServer) handleMatchAriaTree(_ context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
	defer ariaerr.Recover(&err)

	params := request.GetArguments()
	root, err := s.loadRoot(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	template, err := loadTemplateFromPath(stringParam(params, "template", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := mcpOptions(params)
	bridge := ariadom.NewHTMLBridge(ariadom.GlobalOptions{})

	res := ariaapi.MatchesAriaTree(bridge, nil, root, template, opts)

	out := struct {
		Matched    bool    `yaml:"matched"`
		MatchCount int     `yaml:"matchCount"`
		Raw        string  `yaml:"raw"`
		Regex      string  `yaml:"regex"`
		DiffTarget *string `yaml:"diffTarget,omitempty"`
	}{
		Matched:    len(res.Matches) > 0,
		MatchCount: len(res.Matches),
		Raw:        res.Received.Raw,
		Regex:      res.Received.Regex,
		DiffTarget: res.Received.DiffTarget,
	}
	b, _ := yaml.Marshal(out)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleFindAriaMatches(_ context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
	defer ariaerr.Recover(&err)

	params := request.GetArguments()
	root, err := s.loadRoot(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	template, err := loadTemplateFromPath(stringParam(params, "template", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := mcpOptions(params)
	bridge := ariadom.NewHTMLBridge(ariadom.GlobalOptions{})
	snapshot := ariatree.Build(bridge, nil, root, opts)
	matches := ariamatch.FindMatches(snapshot.Root, template, true)

	type entry struct {
		Ref  string `yaml:"ref,omitempty"`
		Role string `yaml:"role"`
		Name string `yaml:"name,omitempty"`
	}
	entries := make([]entry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, entry{Ref: m.Ref, Role: m.Role, Name: m.Name})
	}
	b, _ := yaml.Marshal(entries)
	return mcp.NewToolResultText(string(b)), nil
}

func loadTemplateFromPath(path string) (*ariatemplate.TemplateNode, error) {
	if path == "" {
		return nil, fmt.Errorf("template is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()
	return ariatemplate.Parse(f)
}

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}
