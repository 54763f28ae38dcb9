// Package parquet provides data structures and functions for exporting
// prospect discovery data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/prospect/schema"
)

// BusinessRecord is the flattened per-owner row written by discovery exports.
type BusinessRecord struct {
	// Rank is the 1-based position in the ranked result set
	Rank int32 `parquet:"rank,snappy"`

	// OwnerLogin is the unique owner key within one discovery run
	OwnerLogin string `parquet:"owner_login,snappy"`

	// DisplayName is the owner's display name (nullable)
	DisplayName *string `parquet:"display_name,optional,snappy"`

	// AccountType is organization, user or unknown
	AccountType string `parquet:"account_type,snappy"`

	// Location is the owner's self-reported location (nullable)
	Location *string `parquet:"location,optional,snappy"`

	// Website is the owner's homepage URL (nullable)
	Website *string `parquet:"website,optional,snappy"`

	// PublicRepoCount is the owner's public repository count
	PublicRepoCount int32 `parquet:"public_repo_count,snappy"`

	// FollowerCount is the owner's follower count
	FollowerCount int32 `parquet:"follower_count,snappy"`

	// MatchedRepoCount is the number of repositories matched for this owner
	MatchedRepoCount int32 `parquet:"matched_repo_count,snappy"`

	// StarTotal is the summed star count across matched repositories
	StarTotal int64 `parquet:"star_total,snappy"`

	// RepositoryNames is a pipe-joined list of matched repository names
	RepositoryNames string `parquet:"repository_names,snappy"`
}

// TrendingRecord is the flattened per-repository row written by trending exports.
type TrendingRecord struct {
	// Rank is the 1-based position in the ranked result set
	Rank int32 `parquet:"rank,snappy"`

	// FullName is the owner/name repository identifier
	FullName string `parquet:"full_name,snappy"`

	// Language is the primary language (nullable)
	Language *string `parquet:"language,optional,snappy"`

	// StarCount is the repository star count
	StarCount int64 `parquet:"star_count,snappy"`

	// ForkCount is the repository fork count
	ForkCount int64 `parquet:"fork_count,snappy"`

	// CreatedAt is when the repository was created
	CreatedAt time.Time `parquet:"created_at,snappy"`

	// URL is the repository page URL
	URL string `parquet:"url,snappy"`
}

// FileRecord is the per-file row written by tree listing exports.
type FileRecord struct {
	// Path is the file path relative to the repository root
	Path string `parquet:"path,snappy"`

	// Name is the base filename
	Name string `parquet:"name,snappy"`

	// Extension is the lower-cased file extension including the dot
	Extension string `parquet:"extension,snappy"`

	// SizeBytes is the file size in bytes
	SizeBytes int64 `parquet:"size_bytes,snappy"`

	// DownloadURL points at the raw file content
	DownloadURL string `parquet:"download_url,snappy"`
}

// BusinessRecordsFromProfiles flattens ranked profiles into export rows.
func BusinessRecordsFromProfiles(profiles []schema.BusinessProfile) []BusinessRecord {
	records := make([]BusinessRecord, 0, len(profiles))
	for i, p := range profiles {
		names := make([]string, 0, len(p.Repositories))
		for _, r := range p.Repositories {
			names = append(names, r.Name)
		}
		records = append(records, BusinessRecord{
			Rank:             int32(i + 1),
			OwnerLogin:       p.OwnerLogin,
			DisplayName:      optionalString(p.DisplayName),
			AccountType:      string(p.AccountType),
			Location:         optionalString(p.Location),
			Website:          optionalString(p.Website),
			PublicRepoCount:  int32(p.PublicRepoCount),
			FollowerCount:    int32(p.FollowerCount),
			MatchedRepoCount: int32(len(p.Repositories)),
			StarTotal:        int64(p.StarTotal()),
			RepositoryNames:  strings.Join(names, "|"),
		})
	}
	return records
}

// TrendingRecordsFromRepos flattens ranked repositories into export rows.
func TrendingRecordsFromRepos(repos []schema.RepoSummary) []TrendingRecord {
	records := make([]TrendingRecord, 0, len(repos))
	for i, r := range repos {
		records = append(records, TrendingRecord{
			Rank:      int32(i + 1),
			FullName:  r.FullName,
			Language:  optionalString(r.Language),
			StarCount: int64(r.StarCount),
			ForkCount: int64(r.ForkCount),
			CreatedAt: r.CreatedAt,
			URL:       r.URL,
		})
	}
	return records
}

// FileRecordsFromEntries flattens tree entries into export rows.
func FileRecordsFromEntries(files []schema.FileEntry) []FileRecord {
	records := make([]FileRecord, 0, len(files))
	for _, f := range files {
		records = append(records, FileRecord{
			Path:        f.Path,
			Name:        f.Name,
			Extension:   f.Extension,
			SizeBytes:   f.SizeBytes,
			DownloadURL: f.DownloadURL,
		})
	}
	return records
}

// WriteBusinessRecordsParquet writes discovery rows to a Parquet file.
func WriteBusinessRecordsParquet(data []BusinessRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteTrendingRecordsParquet writes trending rows to a Parquet file.
func WriteTrendingRecordsParquet(data []TrendingRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteFileRecordsParquet writes tree listing rows to a Parquet file.
func WriteFileRecordsParquet(data []FileRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes records to outputPath using struct schema inference.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// optionalString maps empty strings onto nil for nullable columns.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
