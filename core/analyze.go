package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
)

// Indicator thresholds.
const (
	highStarsFloor       = 100
	contributorForkFloor = 10
	activeWindow         = 90 * 24 * time.Hour
)

// RepoAnalyzer scores a single repository for business likelihood from its
// metadata and README text.
type RepoAnalyzer struct {
	client  contract.RepoClient
	fetcher *ContentFetcher

	// Now supplies the evaluation time; overridable for testing.
	Now func() time.Time
}

// NewRepoAnalyzer creates a new repository analyzer.
func NewRepoAnalyzer(client contract.RepoClient) *RepoAnalyzer {
	return &RepoAnalyzer{
		client:  client,
		fetcher: NewContentFetcher(client),
		Now:     time.Now,
	}
}

// AnalyzeRepository computes the business indicators and keyword matches for
// owner/repo. A repository that cannot be resolved is a hard failure; a
// missing README is not, and simply yields zero keyword matches.
func (a *RepoAnalyzer) AnalyzeRepository(ctx context.Context, owner, repo string) (*schema.RepoAnalysis, error) {
	// Metadata rides the search surface so the transport contract stays at
	// exactly three calls.
	query := fmt.Sprintf("repo:%s/%s", owner, repo)
	repos, err := a.client.SearchRepositories(ctx, query, contract.SearchOptions{PerPage: 1, Page: 1})
	if err != nil {
		return nil, fmt.Errorf("repository lookup for %s/%s: %w", owner, repo, err)
	}
	if len(repos) == 0 {
		return nil, fmt.Errorf("repository %s/%s: %w", owner, repo, contract.ErrNotFound)
	}
	summary := repos[0]

	readme, err := a.fetchReadme(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	now := a.Now()
	indicators := map[schema.IndicatorKey]bool{
		schema.IndicatorLicense:      summary.LicenseName != "",
		schema.IndicatorDescription:  summary.Description != "",
		schema.IndicatorWebsite:      summary.Homepage != "",
		schema.IndicatorHighStars:    summary.StarCount > highStarsFloor,
		schema.IndicatorActive:       summary.UpdatedAt.After(now.Add(-activeWindow)),
		schema.IndicatorTopics:       len(summary.Topics) > 0,
		schema.IndicatorContributors: summary.ForkCount > contributorForkFloor,
	}

	matched := matchKeywords(readme)

	score := len(matched)
	for _, hit := range indicators {
		if hit {
			score++
		}
	}

	return &schema.RepoAnalysis{
		Repository:      summary,
		Indicators:      indicators,
		MatchedKeywords: matched,
		BusinessScore:   score,
	}, nil
}

// fetchReadme tries the primary README filename and then the ordered
// fallback list, stopping at the first hit. No hit yields an empty string;
// only cancellation aborts.
func (a *RepoAnalyzer) fetchReadme(ctx context.Context, owner, repo string) (string, error) {
	for _, name := range schema.ReadmeCandidates {
		content, err := a.fetcher.FetchFile(ctx, owner, repo, name, "")
		if err != nil {
			if ctx.Err() != nil {
				return "", err
			}
			// Decode failure on one candidate; try the next name.
			contract.LogWarn(fmt.Sprintf("README candidate %q unusable", name), err)
			continue
		}
		if content != nil {
			return content.Content, nil
		}
	}
	return "", nil
}

// matchKeywords returns the commercial-indicator terms contained in text.
// Matching is case-insensitive and each keyword counts at most once no
// matter how often it occurs.
func matchKeywords(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var matched []string
	for _, keyword := range schema.BusinessKeywords {
		if strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
