package core

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
)

// Accounts below this public repository count are treated as casual personal
// accounts unless they are organizations.
const minPublicFootprint = 5

// BusinessAggregator runs a discovery search, groups the resulting
// repositories by owner, enriches each owner with profile data and ranks the
// result set. All aggregation state lives inside one FindBusinesses call;
// nothing is shared across invocations.
type BusinessAggregator struct {
	client  contract.RepoClient
	workers int
}

// NewBusinessAggregator creates an aggregator issuing at most workers
// concurrent owner lookups.
func NewBusinessAggregator(client contract.RepoClient, workers int) *BusinessAggregator {
	if workers <= 0 {
		workers = contract.DefaultWorkers
	}
	return &BusinessAggregator{client: client, workers: workers}
}

// FindBusinesses returns business profiles matching the criteria, ranked
// descending by the summed star count of each owner's matched repositories.
// An owner whose profile lookup fails still yields a profile with account
// type "unknown" instead of dropping their repositories; a cancelled context
// is the only failure that discards the run.
func (a *BusinessAggregator) FindBusinesses(ctx context.Context, criteria Criteria) ([]schema.BusinessProfile, error) {
	// --- 1. Query Building ---
	query, err := BuildBusinessQuery(criteria)
	if err != nil {
		return nil, err
	}

	// --- 2. Ranked Search ---
	limit := criteria.EffectiveLimit()
	repos, err := a.client.SearchRepositories(ctx, query, contract.SearchOptions{
		Sort:    "stars",
		Order:   "desc",
		PerPage: limit,
		Page:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("discovery search for %q: %w", query, err)
	}
	if len(repos) > limit {
		repos = repos[:limit]
	}

	// --- 3. Owner Profile Resolution (deduplicated, bounded concurrency) ---
	owners := distinctOwners(repos)
	profiles := make([]schema.BusinessProfile, len(owners))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, login := range owners {
		g.Go(func() error {
			// Each goroutine writes to a unique index, so no further
			// synchronization is needed on the profiles slice.
			account, err := a.client.GetAccount(gctx, login)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				contract.LogWarn(fmt.Sprintf("Owner lookup failed for %q", login), err)
				profiles[i] = synthesizeProfile(login)
				return nil
			}
			profiles[i] = profileFromAccount(account)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// --- 4. Repository Attachment (search order) ---
	byOwner := make(map[string]*schema.BusinessProfile, len(profiles))
	for i := range profiles {
		byOwner[profiles[i].OwnerLogin] = &profiles[i]
	}
	for _, r := range repos {
		profile := byOwner[r.OwnerLogin]
		profile.Repositories = append(profile.Repositories, schema.RepoCondensed{
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			StarCount:   r.StarCount,
			URL:         r.URL,
		})
	}

	// --- 5. Footprint Filter ---
	// Organizations always pass; personal and unknown accounts need a
	// sufficiently large public footprint.
	kept := make([]schema.BusinessProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.AccountType == schema.OrganizationAccount || p.PublicRepoCount > minPublicFootprint {
			kept = append(kept, p)
		}
	}

	// --- 6. Ranking ---
	return rankProfiles(kept, len(kept)), nil
}

// distinctOwners returns owner logins in first-seen order. Profile fetches
// happen at most once per distinct owner regardless of how many matching
// repositories that owner has.
func distinctOwners(repos []schema.RepoSummary) []string {
	seen := make(map[string]struct{}, len(repos))
	var owners []string
	for _, r := range repos {
		if _, ok := seen[r.OwnerLogin]; ok {
			continue
		}
		seen[r.OwnerLogin] = struct{}{}
		owners = append(owners, r.OwnerLogin)
	}
	return owners
}

// profileFromAccount converts a remote account into a business profile.
func profileFromAccount(account *contract.Account) schema.BusinessProfile {
	return schema.BusinessProfile{
		OwnerLogin:      account.Login,
		DisplayName:     account.Name,
		AccountType:     accountTypeOf(account.Type),
		Bio:             account.Bio,
		Location:        account.Location,
		Website:         account.Blog,
		URL:             account.HTMLURL,
		AvatarURL:       account.AvatarURL,
		PublicRepoCount: account.PublicRepos,
		FollowerCount:   account.Followers,
		FollowingCount:  account.Following,
		CreatedAt:       account.CreatedAt,
	}
}

// synthesizeProfile builds the minimal profile used when an owner lookup
// fails. Such profiles carry account type "unknown" and never pass the
// footprint filter.
func synthesizeProfile(login string) schema.BusinessProfile {
	return schema.BusinessProfile{
		OwnerLogin:  login,
		AccountType: schema.UnknownAccount,
	}
}

// accountTypeOf maps the remote account type string onto the schema enum.
func accountTypeOf(remoteType string) schema.AccountType {
	switch remoteType {
	case "Organization":
		return schema.OrganizationAccount
	case "User":
		return schema.UserAccount
	default:
		return schema.UnknownAccount
	}
}
