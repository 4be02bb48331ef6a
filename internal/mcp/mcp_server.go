// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/stackrank/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Stackrank MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.SnapshotStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Stackrank Pipeline Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: analyze_pipeline ---
	s.AddTool(mcp.NewTool("analyze_pipeline",
		mcp.WithDescription("Analyze the sales pipeline CSV and return the full metrics snapshot."),
		mcp.WithString("input_path", mcp.Description("Path to the opportunity CSV (defaults to the configured dataset).")),
		mcp.WithString("region", mcp.Description("Comma-separated region allowlist, e.g. 'AMER,EMEA'.")),
		mcp.WithString("start", mcp.Description("CreatedDate lower bound, YYYY-MM-DD.")),
		mcp.WithString("end", mcp.Description("CreatedDate upper bound, YYYY-MM-DD.")),
		mcp.WithString("as_of", mcp.Description("Reference date for quarter-to-date figures, YYYY-MM-DD. Defaults to today.")),
	), h.handleAnalyzePipeline)

	// --- 2. Tool: get_rep_rankings ---
	s.AddTool(mcp.NewTool("get_rep_rankings",
		mcp.WithDescription("Rank reps by total open pipeline, with attainment against quarterly targets."),
		mcp.WithString("input_path", mcp.Description("Path to the opportunity CSV.")),
		mcp.WithString("region", mcp.Description("Comma-separated region allowlist.")),
		mcp.WithString("as_of", mcp.Description("Reference date for quarter-to-date figures, YYYY-MM-DD.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of reps returned.")),
	), h.handleGetRepRankings)

	// --- 3. Tool: get_source_breakdown ---
	s.AddTool(mcp.NewTool("get_source_breakdown",
		mcp.WithDescription("Break down open pipeline by lead source."),
		mcp.WithString("input_path", mcp.Description("Path to the opportunity CSV.")),
		mcp.WithString("region", mcp.Description("Comma-separated region allowlist.")),
		mcp.WithString("as_of", mcp.Description("Reference date, YYYY-MM-DD.")),
	), h.handleGetSourceBreakdown)

	return s
}

// StartMCPServer starts the Stackrank MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.SnapshotStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
