// Package schema has configs, models and constants for all parts of prospect.
package schema

import "time"

// FileEntry represents a single file discovered during tree traversal.
// Entries are immutable once emitted; Extension is the lower-cased suffix
// of Name including the leading dot, or empty when the name has none.
type FileEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SizeBytes   int64  `json:"size_bytes"`
	DownloadURL string `json:"download_url"`
	Extension   string `json:"extension"`
}

// FileContent represents a fully decoded file retrieved from a repository.
// Content is always normalized to text regardless of the transport encoding.
type FileContent struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SizeBytes   int64  `json:"size_bytes"`
	Content     string `json:"content"`
	Encoding    string `json:"encoding"`
	ContentHash string `json:"content_hash"`
	DownloadURL string `json:"download_url"`
}

// RepoSummary represents a repository as returned by the remote search index.
type RepoSummary struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	FullName       string    `json:"full_name"`
	OwnerLogin     string    `json:"owner_login"`
	Description    string    `json:"description"`
	URL            string    `json:"url"`
	CloneURL       string    `json:"clone_url"`
	Homepage       string    `json:"homepage"`
	Language       string    `json:"language"`
	StarCount      int       `json:"star_count"`
	ForkCount      int       `json:"fork_count"`
	OpenIssueCount int       `json:"open_issue_count"`
	Topics         []string  `json:"topics"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	LicenseName    string    `json:"license_name"`
}

// RepoCondensed is the per-repository subset carried inside a BusinessProfile.
type RepoCondensed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	StarCount   int    `json:"star_count"`
	URL         string `json:"url"`
}

// BusinessProfile aggregates one owner plus the repositories matched for that
// owner within a single discovery run. Keyed by OwnerLogin; profiles live for
// the duration of one aggregation call and are never persisted.
type BusinessProfile struct {
	OwnerLogin      string          `json:"owner_login"`
	DisplayName     string          `json:"display_name"`
	AccountType     AccountType     `json:"account_type"`
	Bio             string          `json:"bio"`
	Location        string          `json:"location"`
	Website         string          `json:"website"`
	URL             string          `json:"url"`
	AvatarURL       string          `json:"avatar_url"`
	PublicRepoCount int             `json:"public_repo_count"`
	FollowerCount   int             `json:"follower_count"`
	FollowingCount  int             `json:"following_count"`
	CreatedAt       time.Time       `json:"created_at"`
	Repositories    []RepoCondensed `json:"repositories"`
}

// StarTotal returns the sum of stars across the profile's matched repositories.
// It is the quantity business profiles are ranked by.
func (p *BusinessProfile) StarTotal() int {
	total := 0
	for _, r := range p.Repositories {
		total += r.StarCount
	}
	return total
}

// RepoAnalysis holds the business-likelihood assessment of a single repository.
// BusinessScore is the count of true indicators plus the count of matched
// keywords, so it is always >= 0 and bounded by both vocabularies.
type RepoAnalysis struct {
	Repository      RepoSummary           `json:"repository"`
	Indicators      map[IndicatorKey]bool `json:"indicators"`
	MatchedKeywords []string              `json:"matched_keywords"`
	BusinessScore   int                   `json:"business_score"`
}
