package core

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/prospect/internal/contract"
)

func TestFetchFile(t *testing.T) {
	t.Run("decodes base64 payload with newline wrapping", func(t *testing.T) {
		plain := "# Widget\n\nThe official widget platform."
		encoded := base64.StdEncoding.EncodeToString([]byte(plain))
		wrapped := encoded[:10] + "\n" + encoded[10:] + "\n"

		client := &stubRepoClient{
			contents: map[string][]contract.Entry{
				"README.md": {{
					Type:     contract.FileEntryType,
					Name:     "README.md",
					Path:     "README.md",
					Size:     int64(len(plain)),
					Encoding: "base64",
					Content:  wrapped,
				}},
			},
		}
		fetcher := NewContentFetcher(client)

		content, err := fetcher.FetchFile(context.Background(), "acme", "widget", "README.md", "")
		require.NoError(t, err)
		require.NotNil(t, content)

		assert.Equal(t, plain, content.Content)
		assert.Equal(t, "base64", content.Encoding)

		hash := sha256.Sum256([]byte(plain))
		assert.Equal(t, hex.EncodeToString(hash[:]), content.ContentHash)
	})

	t.Run("plain payload passes through unchanged", func(t *testing.T) {
		client := &stubRepoClient{
			contents: map[string][]contract.Entry{
				"LICENSE": {{
					Type:    contract.FileEntryType,
					Name:    "LICENSE",
					Path:    "LICENSE",
					Content: "MIT License",
				}},
			},
		}
		fetcher := NewContentFetcher(client)

		content, err := fetcher.FetchFile(context.Background(), "acme", "widget", "LICENSE", "")
		require.NoError(t, err)
		require.NotNil(t, content)
		assert.Equal(t, "MIT License", content.Content)
	})

	t.Run("missing file yields nil without error", func(t *testing.T) {
		client := &stubRepoClient{contents: map[string][]contract.Entry{}}
		fetcher := NewContentFetcher(client)

		content, err := fetcher.FetchFile(context.Background(), "acme", "widget", "nope.txt", "")
		assert.NoError(t, err)
		assert.Nil(t, content)
	})

	t.Run("directory path yields nil without error", func(t *testing.T) {
		client := &stubRepoClient{
			contents: map[string][]contract.Entry{
				"src": {
					fileEntry("a.go", "src/a.go", 1),
					fileEntry("b.go", "src/b.go", 1),
				},
			},
		}
		fetcher := NewContentFetcher(client)

		content, err := fetcher.FetchFile(context.Background(), "acme", "widget", "src", "")
		assert.NoError(t, err)
		assert.Nil(t, content)
	})

	t.Run("corrupt base64 is a decode failure", func(t *testing.T) {
		client := &stubRepoClient{
			contents: map[string][]contract.Entry{
				"bin.dat": {{
					Type:     contract.FileEntryType,
					Name:     "bin.dat",
					Path:     "bin.dat",
					Encoding: "base64",
					Content:  "!!! not base64 !!!",
				}},
			},
		}
		fetcher := NewContentFetcher(client)

		content, err := fetcher.FetchFile(context.Background(), "acme", "widget", "bin.dat", "")
		assert.Error(t, err)
		assert.Nil(t, content)
	})

	t.Run("cancelled context is a hard failure", func(t *testing.T) {
		client := &stubRepoClient{contents: map[string][]contract.Entry{}}
		fetcher := NewContentFetcher(client)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		content, err := fetcher.FetchFile(ctx, "acme", "widget", "README.md", "")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, content)
	})
}
