package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huangsam/prospect/core"
	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.RepoClient
}

func (h *toolHandler) handleDiscoverBusinesses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Industry = request.GetString("industry", cfg.Industry)
	cfg.Technology = request.GetString("technology", cfg.Technology)
	cfg.Location = request.GetString("location", cfg.Location)
	cfg.Company = request.GetString("company", cfg.Company)
	if s := request.GetInt("min_stars", 0); s > 0 {
		cfg.MinStars = s
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if cfg.ResultLimit > contract.MaxResultLimit {
		return mcp.NewToolResultError(fmt.Sprintf("limit %d exceeds maximum of %d", cfg.ResultLimit, contract.MaxResultLimit)), nil
	}

	profiles, err := core.GetBusinessResults(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("discovery failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(profiles, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAnalyzeRepository(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	owner, err := request.RequireString("owner")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid owner: %v", err)), nil
	}
	repo, err := request.RequireString("repo")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid repo: %v", err)), nil
	}

	analysis, err := core.GetAnalysisResult(ctx, cfg, h.client, owner, repo)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(analysis, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTrendingRepos(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Language = request.GetString("language", cfg.Language)
	if w := request.GetString("window", ""); w != "" {
		cfg.Window = schema.TrendWindow(w)
	}

	repos, err := core.GetTrendingResults(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trending search failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(repos, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListRepoFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	owner, err := request.RequireString("owner")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid owner: %v", err)), nil
	}
	repo, err := request.RequireString("repo")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid repo: %v", err)), nil
	}
	cfg.TreePath = request.GetString("path", cfg.TreePath)
	cfg.Ref = request.GetString("ref", cfg.Ref)
	if ext := request.GetString("extensions", ""); ext != "" {
		cfg.Extensions = contract.ParseExtensions(ext)
	}

	files, err := core.GetFileResults(ctx, cfg, h.client, owner, repo)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(files, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
