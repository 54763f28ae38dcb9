package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
)

var trendNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func newTrendFinder(client contract.RepoClient) *TrendFinder {
	finder := NewTrendFinder(client)
	finder.Now = func() time.Time { return trendNow }
	return finder
}

func TestTrendingRepos(t *testing.T) {
	t.Run("daily window looks back one day", func(t *testing.T) {
		client := &stubRepoClient{}
		finder := newTrendFinder(client)

		_, err := finder.TrendingRepos(context.Background(), "", schema.DailyWindow)
		require.NoError(t, err)
		assert.Equal(t, "created:>2026-08-28", client.lastQuery)
	})

	t.Run("monthly window looks back thirty days", func(t *testing.T) {
		client := &stubRepoClient{}
		finder := newTrendFinder(client)

		_, err := finder.TrendingRepos(context.Background(), "Go", schema.MonthlyWindow)
		require.NoError(t, err)
		assert.Equal(t, "created:>2026-07-30 language:Go", client.lastQuery)
	})

	t.Run("unrecognized window falls back to weekly", func(t *testing.T) {
		client := &stubRepoClient{}
		finder := newTrendFinder(client)

		_, err := finder.TrendingRepos(context.Background(), "", schema.TrendWindow("fortnight"))
		require.NoError(t, err)
		assert.Equal(t, "created:>2026-08-22", client.lastQuery)
	})

	t.Run("results are ranked by stars descending", func(t *testing.T) {
		client := &stubRepoClient{
			searchFn: func(_ string, _ contract.SearchOptions) ([]schema.RepoSummary, error) {
				return []schema.RepoSummary{
					{Name: "mid", StarCount: 50},
					{Name: "top", StarCount: 900},
					{Name: "low", StarCount: 5},
				}, nil
			},
		}
		finder := newTrendFinder(client)

		repos, err := finder.TrendingRepos(context.Background(), "", schema.WeeklyWindow)
		require.NoError(t, err)
		require.Len(t, repos, 3)
		assert.Equal(t, "top", repos[0].Name)
		assert.Equal(t, "mid", repos[1].Name)
		assert.Equal(t, "low", repos[2].Name)
	})

	t.Run("search failure aborts", func(t *testing.T) {
		client := &stubRepoClient{
			searchFn: func(_ string, _ contract.SearchOptions) ([]schema.RepoSummary, error) {
				return nil, errors.New("index unavailable")
			},
		}
		finder := newTrendFinder(client)

		repos, err := finder.TrendingRepos(context.Background(), "", schema.WeeklyWindow)
		assert.Error(t, err)
		assert.Nil(t, repos)
	})
}
