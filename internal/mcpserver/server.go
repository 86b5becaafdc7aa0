// Package mcpserver exposes the purity engine as a single Model
// Context Protocol tool, classify_purity, grounded on the teacher's
// internal/mcp package: an *mcp.Server wrapping one long-lived
// analysis surface, tools registered via AddTool with a declarative
// jsonschema.Schema input, and JSON-marshaled mcp.TextContent results
// built through the same createJSONResponse / createErrorResponse
// shape server.go and response.go use.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/singleflight"

	"github.com/purityeng/purity/internal/config"
	"github.com/purityeng/purity/internal/errors"
	"github.com/purityeng/purity/internal/langsupport"
	"github.com/purityeng/purity/internal/purity"
	"github.com/purityeng/purity/internal/report"
)

// Server wraps the MCP server instance and the single-flight group
// that coalesces concurrent identical requests, per §11: "Concurrent
// requests for byte-identical source text and language are coalesced
// into a single in-flight Analyze call."
type Server struct {
	server     *mcp.Server
	tables     map[string]*purity.PriorKnowledgeTable
	group      singleflight.Group
	strictMode bool
}

// New builds the server and registers classify_purity. cfg supplies
// project-level prior-knowledge overrides (§10), layered onto both
// languages' built-in tables once at startup, and the strict-mode
// flag that turns semantic uncertainty into a stderr warning (§10).
func New(cfg *config.Config) *Server {
	s := &Server{
		tables: map[string]*purity.PriorKnowledgeTable{
			string(langsupport.CSharp): cfg.ApplyOverrides(purity.BuiltinCSharp()),
			string(langsupport.Java):   cfg.ApplyOverrides(purity.BuiltinJava()),
		},
		strictMode: cfg != nil && cfg.StrictMode,
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "purity-mcp-server",
		Version: "0.1.0",
	}, nil)

	s.server.AddTool(&mcp.Tool{
		Name:        "classify_purity",
		Description: "Classify the purity (Pure, Impure, ParametricallyImpure, Unknown) of every method in a source snippet.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"source": {
					Type:        "string",
					Description: "Source text to analyze.",
				},
				"lang": {
					Type:        "string",
					Description: "Language of the source: \"csharp\" or \"java\".",
				},
			},
			Required: []string{"source", "lang"},
		},
	}, s.handleClassifyPurity)

	return s
}

// Run starts the server on stdio and blocks until ctx is canceled or
// the transport closes, mirroring the teacher's Server.Start.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

type classifyPurityParams struct {
	Source string `json:"source"`
	Lang   string `json:"lang"`
}

func (s *Server) handleClassifyPurity(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params classifyPurityParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult(fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Source == "" {
		return errorResult(fmt.Errorf("classify_purity requires 'source'"))
	}

	lang := langsupport.Name(params.Lang)
	table, ok := s.tables[string(lang)]
	if !ok {
		return errorResult(fmt.Errorf("unsupported language: %q (valid: csharp, java)", params.Lang))
	}

	// Hash the source instead of using it as the map key directly, per
	// the teacher's FastHash convention (internal/core/file_content_store.go):
	// a request body can be large, xxhash.Sum64String is not.
	key := fmt.Sprintf("%s\x00%x", params.Lang, xxhash.Sum64String(params.Source))
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.analyze(lang, table, params.Source)
	})
	if err != nil {
		return errorResult(err)
	}
	return textResult(v.(string)), nil
}

func (s *Server) analyze(lang langsupport.Name, table *purity.PriorKnowledgeTable, source string) (string, error) {
	unit, resolver, err := langsupport.ParseString(lang, []byte(source))
	if err != nil {
		return "", errors.NewParseError("", string(lang), err)
	}
	eng := purity.NewEngine(table)
	result := eng.Analyze(unit, resolver)

	if s.strictMode {
		for _, w := range report.Warnings(result) {
			fmt.Fprintln(os.Stderr, w)
		}
	}

	out := report.Render(result, false)
	for _, hint := range report.Suggestions(result, table) {
		out += hint + "\n"
	}
	return out, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}
}

func errorResult(err error) (*mcp.CallToolResult, error) {
	res := textResult(err.Error())
	res.IsError = true
	return res, nil
}
