package contract

import (
	"context"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v66/github"

	"github.com/huangsam/prospect/schema"
)

// GitHubClient implements the RepoClient interface on top of the GitHub
// REST API.
type GitHubClient struct {
	client *gh.Client
}

var _ RepoClient = &GitHubClient{} // Compile-time check

// NewGitHubClient creates a new GitHub-backed client. An empty token yields
// an anonymous client with lower rate limits.
func NewGitHubClient(token string) *GitHubClient {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubClient{client: client}
}

// GetContents implements the RepoClient interface.
func (c *GitHubClient) GetContents(ctx context.Context, owner, repo, path, ref string) ([]Entry, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	file, dir, resp, err := c.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, fmt.Errorf("contents of %s/%s at %q: %w", owner, repo, path, ErrNotFound)
		}
		return nil, fmt.Errorf("get contents of %s/%s at %q: %w", owner, repo, path, err)
	}

	if file != nil {
		return []Entry{convertContent(file)}, nil
	}

	entries := make([]Entry, 0, len(dir))
	for _, item := range dir {
		entries = append(entries, convertContent(item))
	}
	return entries, nil
}

// SearchRepositories implements the RepoClient interface.
func (c *GitHubClient) SearchRepositories(ctx context.Context, query string, opts SearchOptions) ([]schema.RepoSummary, error) {
	searchOpts := &gh.SearchOptions{
		Sort:        opts.Sort,
		Order:       opts.Order,
		ListOptions: gh.ListOptions{PerPage: opts.PerPage, Page: opts.Page},
	}
	result, _, err := c.client.Search.Repositories(ctx, query, searchOpts)
	if err != nil {
		return nil, fmt.Errorf("search repositories for %q: %w", query, err)
	}

	repos := make([]schema.RepoSummary, 0, len(result.Repositories))
	for _, r := range result.Repositories {
		repos = append(repos, schema.RepoSummary{
			ID:             r.GetID(),
			Name:           r.GetName(),
			FullName:       r.GetFullName(),
			OwnerLogin:     r.GetOwner().GetLogin(),
			Description:    r.GetDescription(),
			URL:            r.GetHTMLURL(),
			CloneURL:       r.GetCloneURL(),
			Homepage:       r.GetHomepage(),
			Language:       r.GetLanguage(),
			StarCount:      r.GetStargazersCount(),
			ForkCount:      r.GetForksCount(),
			OpenIssueCount: r.GetOpenIssuesCount(),
			Topics:         r.Topics,
			CreatedAt:      r.GetCreatedAt().Time,
			UpdatedAt:      r.GetUpdatedAt().Time,
			LicenseName:    r.GetLicense().GetName(),
		})
	}
	return repos, nil
}

// GetAccount implements the RepoClient interface.
func (c *GitHubClient) GetAccount(ctx context.Context, username string) (*Account, error) {
	user, resp, err := c.client.Users.Get(ctx, username)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, fmt.Errorf("account %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("get account %q: %w", username, err)
	}

	return &Account{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		Type:        user.GetType(),
		Bio:         user.GetBio(),
		Location:    user.GetLocation(),
		Blog:        user.GetBlog(),
		HTMLURL:     user.GetHTMLURL(),
		AvatarURL:   user.GetAvatarURL(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		CreatedAt:   user.GetCreatedAt().Time,
	}, nil
}

// IsNotFound reports whether err represents a missing remote object.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// convertContent maps a GitHub contents item onto the transport-neutral Entry.
func convertContent(item *gh.RepositoryContent) Entry {
	entryType := FileEntryType
	if item.GetType() == "dir" {
		entryType = DirEntryType
	}
	content := ""
	if item.Content != nil {
		content = *item.Content
	}
	return Entry{
		Type:        entryType,
		Name:        item.GetName(),
		Path:        item.GetPath(),
		Size:        int64(item.GetSize()),
		Encoding:    item.GetEncoding(),
		Content:     content,
		DownloadURL: item.GetDownloadURL(),
	}
}
