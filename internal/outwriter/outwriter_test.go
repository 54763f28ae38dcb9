package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/prospect/internal/contract"
	"github.com/huangsam/prospect/schema"
)

func sampleProfiles() []schema.BusinessProfile {
	return []schema.BusinessProfile{
		{
			OwnerLogin:      "acme",
			DisplayName:     "Acme Corp",
			AccountType:     schema.OrganizationAccount,
			Location:        "Berlin",
			Website:         "https://acme.example",
			PublicRepoCount: 40,
			FollowerCount:   1200,
			Repositories: []schema.RepoCondensed{
				{Name: "api", StarCount: 900},
				{Name: "cli", StarCount: 100},
			},
		},
	}
}

func TestWriteBusinessCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeBusinessCSV(&buf, sampleProfiles())
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"rank", "owner", "name", "type", "location", "website", "public_repos", "followers", "matched_repos", "star_total"}, records[0])
	assert.Equal(t, []string{"1", "acme", "Acme Corp", "organization", "Berlin", "https://acme.example", "40", "1200", "2", "1000"}, records[1])
}

func TestWriteBusinessTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Width: 120}
	err := writeBusinessTable(sampleProfiles(), cfg, 2*time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "acme")
	assert.Contains(t, out, "1000")
	assert.Contains(t, out, "Found 1 businesses in 2.00s")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, sampleProfiles())
	require.NoError(t, err)

	var decoded []schema.BusinessProfile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "acme", decoded[0].OwnerLogin)
	assert.Equal(t, 1000, decoded[0].StarTotal())
}

func TestWriteTrendingCSV(t *testing.T) {
	repos := []schema.RepoSummary{
		{
			FullName:  "acme/api",
			Language:  "Go",
			StarCount: 900,
			ForkCount: 50,
			CreatedAt: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
			URL:       "https://example.com/acme/api",
		},
	}

	var buf bytes.Buffer
	err := writeTrendingCSV(&buf, repos)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"1", "acme/api", "Go", "900", "50", "2026-08-25T00:00:00Z", "https://example.com/acme/api"}, records[1])
}

func TestWriteFilesCSV(t *testing.T) {
	files := []schema.FileEntry{
		{Name: "main.go", Path: "src/main.go", SizeBytes: 300, Extension: ".go"},
	}

	var buf bytes.Buffer
	err := writeFilesCSV(&buf, files)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"src/main.go", "main.go", ".go", "300", ""}, records[1])
}

func TestWriteFilesTable(t *testing.T) {
	files := []schema.FileEntry{
		{Name: "main.go", Path: "src/main.go", SizeBytes: 300, Extension: ".go"},
		{Name: "guide.md", Path: "docs/guide.md", SizeBytes: 200, Extension: ".md"},
	}

	var buf bytes.Buffer
	cfg := &contract.Config{Width: 120}
	err := writeFilesTable(files, cfg, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "src/main.go")
	assert.Contains(t, out, "Listed 2 files (500 bytes) in 1.00s")
}

func TestWriteAnalysisCSV(t *testing.T) {
	analysis := &schema.RepoAnalysis{
		Repository: schema.RepoSummary{FullName: "acme/widget"},
		Indicators: map[schema.IndicatorKey]bool{
			schema.IndicatorLicense: true,
		},
		MatchedKeywords: []string{"saas", "platform"},
		BusinessScore:   3,
	}

	var buf bytes.Buffer
	err := writeAnalysisCSV(&buf, analysis)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header, one row per indicator, keywords row, score row.
	require.Len(t, records, 1+len(schema.AllIndicatorKeys)+2)
	assert.Equal(t, []string{"acme/widget", "has_license", "true"}, records[1])
	assert.Equal(t, []string{"acme/widget", "matched_keywords", "saas|platform"}, records[len(records)-2])
	assert.Equal(t, []string{"acme/widget", "business_score", "3"}, records[len(records)-1])
}

func TestWriteAnalysisTable(t *testing.T) {
	analysis := &schema.RepoAnalysis{
		Repository: schema.RepoSummary{
			FullName:    "acme/widget",
			Description: "Widget engine",
			StarCount:   500,
			ForkCount:   50,
		},
		Indicators: map[schema.IndicatorKey]bool{
			schema.IndicatorLicense: true,
		},
		MatchedKeywords: []string{"saas"},
		BusinessScore:   2,
	}

	var buf bytes.Buffer
	cfg := &contract.Config{Width: 120}
	err := writeAnalysisTable(analysis, cfg, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Repository: acme/widget (500 stars, 50 forks)")
	assert.Contains(t, out, "Matched keywords: saas")
	assert.Contains(t, out, "Business score: 2 (Weak)")
}

func TestWriteContentUnsupportedMode(t *testing.T) {
	content := &schema.FileContent{Content: "hello"}
	cfg := &contract.Config{Output: schema.CSVOut}
	err := WriteContent(content, cfg)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not supported"))
}

func TestRequireOutputFile(t *testing.T) {
	t.Run("missing file is rejected", func(t *testing.T) {
		cfg := &contract.Config{Output: schema.ParquetOut}
		assert.Error(t, requireOutputFile(cfg))
	})

	t.Run("present file passes", func(t *testing.T) {
		cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: "out.parquet"}
		assert.NoError(t, requireOutputFile(cfg))
	})
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{"narrow terminal clamps to minimum", 50, 15},
		{"wide terminal clamps to maximum", 200, 60},
		{"mid-range passes through", 90, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, getMaxTableNameWidth(cfg))
		})
	}
}
