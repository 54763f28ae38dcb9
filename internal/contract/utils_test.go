package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{
			name:     "smallest value possible",
			input:    0,
			expected: WeakValue,
		},
		{
			name:     "just before possible",
			input:    2,
			expected: WeakValue,
		},
		{
			name:     "exactly possible",
			input:    3,
			expected: PossibleValue,
		},
		{
			name:     "just before likely",
			input:    5,
			expected: PossibleValue,
		},
		{
			name:     "exactly likely",
			input:    6,
			expected: LikelyValue,
		},
		{
			name:     "just before strong",
			input:    9,
			expected: LikelyValue,
		},
		{
			name:     "exactly strong",
			input:    10,
			expected: StrongValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		score int
		label string
	}{
		{"weak", 1, WeakValue},
		{"possible", 4, PossibleValue},
		{"likely", 7, LikelyValue},
		{"strong", 12, StrongValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.score)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		expected string
	}{
		{
			name:     "short path unchanged",
			path:     "src/main.go",
			maxWidth: 20,
			expected: "src/main.go",
		},
		{
			name:     "long path gets ellipsis prefix",
			path:     "internal/contract/configs.go",
			maxWidth: 15,
			expected: "...t/configs.go",
		},
		{
			name:     "exact width unchanged",
			path:     "abcde",
			maxWidth: 5,
			expected: "abcde",
		},
		{
			name:     "tiny width is left alone",
			path:     "abcdef",
			maxWidth: 3,
			expected: "abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncatePath(tt.path, tt.maxWidth)
			assert.Equal(t, tt.expected, result)
			if len(tt.path) > tt.maxWidth && tt.maxWidth > 3 {
				assert.Len(t, result, tt.maxWidth)
			}
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", "yes", true, false},
		{"true", "true", true, false},
		{"one", "1", true, false},
		{"no", "no", false, false},
		{"false", "false", false, false},
		{"zero", "0", false, false},
		{"upper case", "YES", true, false},
		{"invalid", "maybe", false, true},
		{"empty", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
