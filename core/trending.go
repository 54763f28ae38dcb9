package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
)

// TrendFinder surfaces repositories created within a recent window.
type TrendFinder struct {
	client contract.RepoClient

	// Now supplies the evaluation time; overridable for testing.
	Now func() time.Time
}

// NewTrendFinder creates a new trend finder.
func NewTrendFinder(client contract.RepoClient) *TrendFinder {
	return &TrendFinder{client: client, Now: time.Now}
}

// TrendingRepos returns up to 30 repositories created within the window,
// ranked by stars descending. Unrecognized window keywords fall back to
// weekly.
func (t *TrendFinder) TrendingRepos(ctx context.Context, language string, window schema.TrendWindow) ([]schema.RepoSummary, error) {
	days, ok := schema.TrendWindowDays[window]
	if !ok {
		days = schema.TrendWindowDays[schema.WeeklyWindow]
	}
	windowStart := t.Now().AddDate(0, 0, -days)

	query := BuildTrendQuery(language, windowStart)
	repos, err := t.client.SearchRepositories(ctx, query, contract.SearchOptions{
		Sort:    "stars",
		Order:   "desc",
		PerPage: contract.TrendResultLimit,
		Page:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("trending search for %q: %w", query, err)
	}

	return rankRepos(repos, contract.TrendResultLimit), nil
}
