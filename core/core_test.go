package core

import (
	"context"
	"sync"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
)

// stubRepoClient is an in-memory RepoClient for unit tests. Content listings
// are keyed by path, accounts by login. Call counters track remote traffic
// so tests can assert on deduplication and fan-out behavior.
type stubRepoClient struct {
	mu sync.Mutex

	contents    map[string][]contract.Entry
	contentsErr map[string]error
	accounts    map[string]*contract.Account
	accountErr  map[string]error
	searchFn    func(query string, opts contract.SearchOptions) ([]schema.RepoSummary, error)

	contentCalls int
	searchCalls  int
	accountCalls int
	lastQuery    string
}

func (s *stubRepoClient) GetContents(ctx context.Context, _, _, path, _ string) ([]contract.Entry, error) {
	s.mu.Lock()
	s.contentCalls++
	s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := s.contentsErr[path]; ok {
		return nil, err
	}
	entries, ok := s.contents[path]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return entries, nil
}

func (s *stubRepoClient) SearchRepositories(ctx context.Context, query string, opts contract.SearchOptions) ([]schema.RepoSummary, error) {
	s.mu.Lock()
	s.searchCalls++
	s.lastQuery = query
	s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.searchFn == nil {
		return nil, nil
	}
	return s.searchFn(query, opts)
}

func (s *stubRepoClient) GetAccount(ctx context.Context, username string) (*contract.Account, error) {
	s.mu.Lock()
	s.accountCalls++
	s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := s.accountErr[username]; ok {
		return nil, err
	}
	account, ok := s.accounts[username]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return account, nil
}

// fileEntry builds a plain file entry for contents listings.
func fileEntry(name, path string, size int64) contract.Entry {
	return contract.Entry{
		Type: contract.FileEntryType,
		Name: name,
		Path: path,
		Size: size,
	}
}

// dirEntry builds a directory entry for contents listings.
func dirEntry(name, path string) contract.Entry {
	return contract.Entry{
		Type: contract.DirEntryType,
		Name: name,
		Path: path,
	}
}
