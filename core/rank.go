package core

import (
	"sort"

	"github.com/huangsam/prospect/schema"
)

// rankProfiles sorts profiles by their summed repository star count in
// descending order and returns the top 'limit' profiles. The sort is stable
// so ties keep their pre-sort order, which makes output reproducible.
func rankProfiles(profiles []schema.BusinessProfile, limit int) []schema.BusinessProfile {
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].StarTotal() > profiles[j].StarTotal()
	})
	if len(profiles) > limit {
		return profiles[:limit]
	}
	return profiles
}

// rankRepos sorts repositories by star count in descending order and returns
// the top 'limit' entries. Stable for the same reason as rankProfiles.
func rankRepos(repos []schema.RepoSummary, limit int) []schema.RepoSummary {
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].StarCount > repos[j].StarCount
	})
	if len(repos) > limit {
		return repos[:limit]
	}
	return repos
}
