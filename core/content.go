package core

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
)

// ContentFetcher retrieves and decodes a single file's content.
type ContentFetcher struct {
	client contract.RepoClient
}

// NewContentFetcher creates a new content fetcher.
func NewContentFetcher(client contract.RepoClient) *ContentFetcher {
	return &ContentFetcher{client: client}
}

// FetchFile retrieves filePath at ref and decodes it to text. A missing
// object or a failed retrieval yields (nil, nil); the caller decides whether
// absence is significant. Decoding is all-or-nothing: a payload that cannot
// be converted to text is a DecodeFailure, never a partial result. Only a
// cancelled context surfaces as a hard failure.
func (f *ContentFetcher) FetchFile(ctx context.Context, owner, repo, filePath, ref string) (*schema.FileContent, error) {
	entries, err := f.client.GetContents(ctx, owner, repo, filePath, ref)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !contract.IsNotFound(err) {
			contract.LogWarn(fmt.Sprintf("Retrieval failed for %q", filePath), err)
		}
		return nil, nil
	}
	if len(entries) != 1 || entries[0].Type != contract.FileEntryType {
		// Path resolved to a directory; treat as absent.
		return nil, nil
	}
	entry := entries[0]

	text, err := decodeContent(entry)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", filePath, err)
	}

	hash := sha256.Sum256([]byte(text))
	return &schema.FileContent{
		Name:        entry.Name,
		Path:        entry.Path,
		SizeBytes:   entry.Size,
		Content:     text,
		Encoding:    entry.Encoding,
		ContentHash: hex.EncodeToString(hash[:]),
		DownloadURL: entry.DownloadURL,
	}, nil
}

// decodeContent normalizes the transport payload to text. Base64 payloads
// arrive newline-wrapped from the remote API.
func decodeContent(entry contract.Entry) (string, error) {
	switch entry.Encoding {
	case "base64":
		compact := strings.ReplaceAll(entry.Content, "\n", "")
		raw, err := base64.StdEncoding.DecodeString(compact)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	default:
		// Already-text payload passes through unchanged.
		return entry.Content, nil
	}
}
