// Package core has core logic for crawling, discovery, scoring and ranking.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/internal/outwriter"
	"github.com/huangsam/prospect/schema"
)

// CriteriaFromConfig builds discovery criteria from the validated config.
func CriteriaFromConfig(cfg *contract.Config) Criteria {
	return Criteria{
		Industry:   cfg.Industry,
		Technology: cfg.Technology,
		Location:   cfg.Location,
		Company:    cfg.Company,
		MinStars:   cfg.MinStars,
		Limit:      cfg.ResultLimit,
	}
}

// GetBusinessResults runs business discovery against the given client and
// returns ranked profiles without printing.
func GetBusinessResults(ctx context.Context, cfg *contract.Config, client contract.RepoClient) ([]schema.BusinessProfile, error) {
	aggregator := NewBusinessAggregator(client, cfg.Workers)
	return aggregator.FindBusinesses(ctx, CriteriaFromConfig(cfg))
}

// GetAnalysisResult analyzes a single repository without printing.
func GetAnalysisResult(ctx context.Context, cfg *contract.Config, client contract.RepoClient, owner, repo string) (*schema.RepoAnalysis, error) {
	analyzer := NewRepoAnalyzer(client)
	return analyzer.AnalyzeRepository(ctx, owner, repo)
}

// GetTrendingResults runs the trending search without printing.
func GetTrendingResults(ctx context.Context, cfg *contract.Config, client contract.RepoClient) ([]schema.RepoSummary, error) {
	finder := NewTrendFinder(client)
	return finder.TrendingRepos(ctx, cfg.Language, cfg.Window)
}

// GetFileResults lists a repository tree without printing.
func GetFileResults(ctx context.Context, cfg *contract.Config, client contract.RepoClient, owner, repo string) ([]schema.FileEntry, error) {
	walker := NewTreeWalker(client, cfg.Workers)
	return walker.ListFiles(ctx, owner, repo, cfg.TreePath, cfg.Ref, cfg.Extensions)
}

// ExecuteDiscover runs business discovery and prints ranked profiles.
// It serves as the main entry point for the 'discover' command.
func ExecuteDiscover(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	logHeader(cfg, fmt.Sprintf("Discovering businesses (limit %d)", cfg.ResultLimit))
	client := contract.NewGitHubClient(cfg.Token)
	profiles, err := GetBusinessResults(ctx, cfg, client)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteBusinesses(profiles, cfg, duration)
}

// ExecuteAnalyze scores a single repository and prints the result.
// It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, owner, repo string) error {
	logHeader(cfg, fmt.Sprintf("Analyzing %s/%s", owner, repo))
	client := contract.NewGitHubClient(cfg.Token)
	analysis, err := GetAnalysisResult(ctx, cfg, client, owner, repo)
	if err != nil {
		return err
	}
	return outwriter.WriteAnalysis(analysis, cfg)
}

// ExecuteTrending prints repositories created within the configured window.
// It serves as the main entry point for the 'trending' command.
func ExecuteTrending(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	logHeader(cfg, fmt.Sprintf("Trending window: %s", cfg.Window))
	client := contract.NewGitHubClient(cfg.Token)
	repos, err := GetTrendingResults(ctx, cfg, client)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteTrending(repos, cfg, duration)
}

// ExecuteFiles lists a repository tree and prints the entries.
// It serves as the main entry point for the 'files' command.
func ExecuteFiles(ctx context.Context, cfg *contract.Config, owner, repo string) error {
	start := time.Now()
	logHeader(cfg, fmt.Sprintf("Listing %s/%s at %q", owner, repo, cfg.TreePath))
	client := contract.NewGitHubClient(cfg.Token)
	files, err := GetFileResults(ctx, cfg, client, owner, repo)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteFiles(files, cfg, duration)
}

// ExecuteFetch retrieves one file and prints its decoded content.
// It serves as the main entry point for the 'fetch' command.
func ExecuteFetch(ctx context.Context, cfg *contract.Config, owner, repo, filePath string) error {
	client := contract.NewGitHubClient(cfg.Token)
	fetcher := NewContentFetcher(client)
	content, err := fetcher.FetchFile(ctx, owner, repo, filePath, cfg.Ref)
	if err != nil {
		return err
	}
	if content == nil {
		return fmt.Errorf("file %s/%s %q: %w", owner, repo, filePath, contract.ErrNotFound)
	}
	return outwriter.WriteContent(content, cfg)
}

// logHeader prints a concise header for each command phase.
func logHeader(cfg *contract.Config, summary string) {
	if cfg.UseEmojis {
		fmt.Printf("🔎 %s\n", summary)
		return
	}
	fmt.Printf("%s\n", summary)
}
