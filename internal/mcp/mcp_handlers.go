package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/stackrank/core"
	"github.com/huangsam/stackrank/internal/contract"
	"github.com/huangsam/stackrank/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.SnapshotStore
}

// applyCommonParams copies the shared request parameters onto a cloned config.
// Date parameters are validated here since they arrive as raw strings.
func applyCommonParams(cfg *contract.Config, request mcp.CallToolRequest) error {
	if p := request.GetString("input_path", ""); p != "" {
		cfg.InputPath = p
	}
	if r := request.GetString("region", ""); r != "" {
		cfg.Regions = nil
		for part := range strings.SplitSeq(r, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				cfg.Regions = append(cfg.Regions, trimmed)
			}
		}
	}
	for _, p := range []struct {
		name string
		dst  *time.Time
	}{
		{"start", &cfg.StartDate},
		{"end", &cfg.EndDate},
		{"as_of", &cfg.AsOf},
	} {
		raw := request.GetString(p.name, "")
		if raw == "" {
			continue
		}
		t, err := time.Parse(schema.DateFormat, raw)
		if err != nil {
			return fmt.Errorf("invalid %s date %q, must be YYYY-MM-DD", p.name, raw)
		}
		*p.dst = t
	}
	return nil
}

func (h *toolHandler) handleAnalyzePipeline(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyCommonParams(cfg, request); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	metrics, _, err := core.GetMetricsResult(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(metrics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRepRankings(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyCommonParams(cfg, request); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	metrics, _, err := core.GetMetricsResult(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	payload := struct {
		Rankings []schema.RepResult    `json:"rankings"`
		Team     schema.TeamAttainment `json:"team"`
	}{
		Rankings: core.RankReps(metrics.RepRankings, cfg.ResultLimit),
		Team:     core.SummarizeAttainment(metrics.RepRankings),
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSourceBreakdown(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyCommonParams(cfg, request); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	metrics, _, err := core.GetMetricsResult(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	payload := struct {
		PipelineBySource map[string]float64 `json:"pipeline_by_source"`
		TotalPipeline    float64            `json:"total_pipeline"`
	}{
		PipelineBySource: metrics.PipelineBySource,
		TotalPipeline:    metrics.TotalPipeline,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
