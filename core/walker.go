package core

import (
	"context"
	"fmt"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
)

// TreeWalker recursively lists all files under a path of a remote repository.
// Traversal is breadth-first over an explicit frontier so deep trees cannot
// exhaust the call stack, and each frontier level is fetched with bounded
// concurrency. The emitted order is deterministic for a fixed tree snapshot:
// directories are expanded in discovery order regardless of which remote call
// completes first.
type TreeWalker struct {
	client  contract.RepoClient
	workers int
	maxDirs int
}

// NewTreeWalker creates a walker issuing at most workers concurrent calls.
func NewTreeWalker(client contract.RepoClient, workers int) *TreeWalker {
	if workers <= 0 {
		workers = contract.DefaultWorkers
	}
	return &TreeWalker{
		client:  client,
		workers: workers,
		maxDirs: contract.MaxTreeDirectories,
	}
}

// dirListing holds the outcome of one directory fetch. A failed subtree is
// recorded rather than aborting the traversal.
type dirListing struct {
	entries []contract.Entry
	err     error
}

// ListFiles walks the tree rooted at rootPath and returns every file whose
// extension matches extFilter (all files when the filter is empty; matching
// is case-insensitive). Subtree failures degrade to partial results; only a
// cancelled context aborts the whole call.
func (w *TreeWalker) ListFiles(ctx context.Context, owner, repo, rootPath, ref string, extFilter []string) ([]schema.FileEntry, error) {
	filter := normalizeFilter(extFilter)

	var files []schema.FileEntry
	frontier := []string{rootPath}
	visited := 0

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Resource guard: stop dispatching new directories past the cap and
		// return what was accumulated, same contract as a subtree failure.
		if visited+len(frontier) > w.maxDirs {
			keep := w.maxDirs - visited
			if keep <= 0 {
				contract.LogWarn("Tree traversal stopped", fmt.Errorf("directory cap of %d reached", w.maxDirs))
				break
			}
			contract.LogWarn("Tree traversal truncated", fmt.Errorf("directory cap of %d reached", w.maxDirs))
			frontier = frontier[:keep]
		}

		// Fetch the whole frontier level concurrently. Each goroutine writes
		// to a unique index, so the merge below stays in discovery order.
		listings := make([]dirListing, len(frontier))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(w.workers)
		for i, dir := range frontier {
			g.Go(func() error {
				entries, err := w.client.GetContents(gctx, owner, repo, dir, ref)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					listings[i] = dirListing{err: err}
					return nil
				}
				listings[i] = dirListing{entries: entries}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		var next []string
		for i, listing := range listings {
			if listing.err != nil {
				contract.LogWarn(fmt.Sprintf("Skipping subtree %q", frontier[i]), listing.err)
				continue
			}
			for _, entry := range listing.entries {
				switch entry.Type {
				case contract.DirEntryType:
					next = append(next, entry.Path)
				case contract.FileEntryType:
					if fe, ok := makeFileEntry(entry, filter); ok {
						files = append(files, fe)
					}
				}
			}
		}

		visited += len(frontier)
		frontier = next
	}

	return files, nil
}

// normalizeFilter lower-cases filter entries and guarantees the leading dot.
func normalizeFilter(extFilter []string) map[string]struct{} {
	if len(extFilter) == 0 {
		return nil
	}
	filter := make(map[string]struct{}, len(extFilter))
	for _, ext := range extFilter {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		filter[ext] = struct{}{}
	}
	if len(filter) == 0 {
		return nil
	}
	return filter
}

// makeFileEntry converts a transport entry into a FileEntry, applying the
// extension filter. A nil filter passes everything through.
func makeFileEntry(entry contract.Entry, filter map[string]struct{}) (schema.FileEntry, bool) {
	ext := strings.ToLower(path.Ext(entry.Name))
	if filter != nil {
		if _, ok := filter[ext]; !ok {
			return schema.FileEntry{}, false
		}
	}
	return schema.FileEntry{
		Name:        entry.Name,
		Path:        entry.Path,
		SizeBytes:   entry.Size,
		DownloadURL: entry.DownloadURL,
		Extension:   ext,
	}, true
}
