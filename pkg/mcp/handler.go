// Package mcp exposes the contract analysis as MCP tools so agent
// frontends can score documents without going through the upload API.
package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/avsouza/leaseguard/internal/llm"
	"github.com/avsouza/leaseguard/internal/service"
)

type Handler struct {
	analyzer *service.Analyzer
	narrator *llm.Client
	server   *mcp.Server
	httpH    http.Handler
}

func NewHandler(analyzer *service.Analyzer, narrator *llm.Client) *Handler {
	h := &Handler{
		analyzer: analyzer,
		narrator: narrator,
	}
	h.initMCPServer()
	return h
}

type AnalyzeTextInput struct {
	Text   string `json:"text" jsonschema:"the contract text to analyze"`
	WithAI bool   `json:"with_ai,omitempty" jsonschema:"also produce the AI legal narrative"`
}

type AnalyzeAmendmentInput struct {
	Amendment string `json:"amendment" jsonschema:"the amendment text to review"`
	Original  string `json:"original,omitempty" jsonschema:"the original contract to compare against"`
}

type RecentAnalysesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return"`
}

func (h *Handler) initMCPServer() {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "LeaseGuard",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Score lease contract text against the clause risk battery",
	}, h.analyzeText)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_amendment",
		Description: "AI legal review of a contract amendment, optionally against the original contract",
	}, h.analyzeAmendment)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_analyses",
		Description: "List recently analyzed contracts from the cache",
	}, h.recentAnalyses)

	h.server = server
	h.httpH = mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
}

func (h *Handler) analyzeText(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeTextInput) (*mcp.CallToolResult, any, error) {
	res, err := h.analyzer.AnalyzeText(ctx, input.Text, input.WithAI)
	if err != nil {
		return errorResult(err), nil, nil
	}
	out, err := json.Marshal(res)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(string(out)), nil, nil
}

func (h *Handler) analyzeAmendment(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeAmendmentInput) (*mcp.CallToolResult, any, error) {
	if h.narrator == nil || !h.narrator.Configured() {
		return textResult("API de IA não configurada."), nil, nil
	}
	out, err := h.narrator.AnalyzeAmendment(ctx, input.Amendment, input.Original)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(out), nil, nil
}

func (h *Handler) recentAnalyses(ctx context.Context, req *mcp.CallToolRequest, input RecentAnalysesInput) (*mcp.CallToolResult, any, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	entries, err := h.analyzer.Recent(ctx, limit)
	if err != nil {
		return errorResult(err), nil, nil
	}
	out, err := json.Marshal(entries)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(string(out)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: err.Error()},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.httpH == nil {
		http.Error(w, "MCP server not initialized", http.StatusInternalServerError)
		return
	}
	h.httpH.ServeHTTP(w, r)
}
