// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/huangsam/prospect/internal/contract"
)

// NewMCPServer initializes and configures the Prospect MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.RepoClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Prospect Discovery Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: discover_businesses ---
	s.AddTool(mcp.NewTool("discover_businesses",
		mcp.WithDescription("Search the code host for business/organization profiles matching discovery criteria, ranked by aggregate stars."),
		mcp.WithString("industry", mcp.Description("Industry topic filter (e.g. fintech).")),
		mcp.WithString("technology", mcp.Description("Primary language filter (e.g. Go).")),
		mcp.WithString("location", mcp.Description("Owner location filter.")),
		mcp.WithString("company", mcp.Description("Name/description substring filter.")),
		mcp.WithNumber("min_stars", mcp.Description("Lower bound on repository stars.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of repositories considered (default 50).")),
	), h.handleDiscoverBusinesses)

	// --- 2. Tool: analyze_repository ---
	s.AddTool(mcp.NewTool("analyze_repository",
		mcp.WithDescription("Score a single repository for business likelihood from its metadata and README."),
		mcp.WithString("owner", mcp.Description("Repository owner login."), mcp.Required()),
		mcp.WithString("repo", mcp.Description("Repository name."), mcp.Required()),
	), h.handleAnalyzeRepository)

	// --- 3. Tool: get_trending_repos ---
	s.AddTool(mcp.NewTool("get_trending_repos",
		mcp.WithDescription("List repositories created within a recent window, ranked by stars."),
		mcp.WithString("language", mcp.Description("Optional language filter.")),
		mcp.WithString("window", mcp.Description("Window keyword (daily, weekly, monthly). Defaults to weekly."), mcp.Enum("daily", "weekly", "monthly")),
	), h.handleGetTrendingRepos)

	// --- 4. Tool: list_repo_files ---
	s.AddTool(mcp.NewTool("list_repo_files",
		mcp.WithDescription("Recursively list all files of a remote repository tree, optionally filtered by extension."),
		mcp.WithString("owner", mcp.Description("Repository owner login."), mcp.Required()),
		mcp.WithString("repo", mcp.Description("Repository name."), mcp.Required()),
		mcp.WithString("path", mcp.Description("Root path to start from (defaults to the repository root).")),
		mcp.WithString("ref", mcp.Description("Git reference (defaults to the default branch).")),
		mcp.WithString("extensions", mcp.Description("Comma-separated extension filter (e.g. '.go,.md').")),
	), h.handleListRepoFiles)

	return s
}

// StartMCPServer starts the Prospect MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	client := contract.NewGitHubClient(baseCfg.Token)
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
