// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"
	"time"

	"github.com/huangsam/prospect/schema"
)

// ErrNotFound reports that a remote object does not exist. Callers treat it
// as a valid "absent" outcome, distinct from transport failures.
var ErrNotFound = errors.New("remote object not found")

// EntryType distinguishes files from directories in a contents listing.
type EntryType string

// Entry types returned by GetContents.
const (
	FileEntryType EntryType = "file"
	DirEntryType  EntryType = "dir"
)

// Entry is one item of a repository contents listing. For file entries
// retrieved directly, Content holds the raw payload and Encoding names the
// transport encoding ("base64" or empty for plain text). Directory listings
// leave both blank.
type Entry struct {
	Type        EntryType
	Name        string
	Path        string
	Size        int64
	Encoding    string
	Content     string
	DownloadURL string
}

// Account is an owner profile as returned by the remote account lookup.
type Account struct {
	Login       string
	Name        string
	Type        string
	Bio         string
	Location    string
	Blog        string
	HTMLURL     string
	AvatarURL   string
	PublicRepos int
	Followers   int
	Following   int
	CreatedAt   time.Time
}

// SearchOptions control sorting and paging of repository searches.
type SearchOptions struct {
	Sort    string
	Order   string
	PerPage int
	Page    int
}

// RepoClient defines the necessary operations against the remote code host.
// This is the only transport surface the engine consumes, and it allows the
// core logic to be tested without network access.
type RepoClient interface {
	// GetContents returns the entry at path, or the directory listing when
	// path is a directory. A missing object yields ErrNotFound.
	GetContents(ctx context.Context, owner, repo, path, ref string) ([]Entry, error)

	// SearchRepositories runs a query against the remote repository index.
	SearchRepositories(ctx context.Context, query string, opts SearchOptions) ([]schema.RepoSummary, error)

	// GetAccount returns the profile for a username. A missing account
	// yields ErrNotFound.
	GetAccount(ctx context.Context, username string) (*Account, error)
}
