package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarTotal(t *testing.T) {
	t.Run("empty profile", func(t *testing.T) {
		p := &BusinessProfile{}
		assert.Equal(t, 0, p.StarTotal())
	})

	t.Run("sums across repositories", func(t *testing.T) {
		p := &BusinessProfile{
			Repositories: []RepoCondensed{
				{Name: "api", StarCount: 900},
				{Name: "cli", StarCount: 100},
				{Name: "docs", StarCount: 0},
			},
		}
		assert.Equal(t, 1000, p.StarTotal())
	})
}

func TestTrendWindowDays(t *testing.T) {
	tests := []struct {
		name   string
		window TrendWindow
		days   int
	}{
		{"daily", DailyWindow, 1},
		{"weekly", WeeklyWindow, 7},
		{"monthly", MonthlyWindow, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, TrendWindowDays[tt.window])
		})
	}
}

func TestAllIndicatorKeys(t *testing.T) {
	// Display order is part of the output contract.
	assert.Equal(t, IndicatorLicense, AllIndicatorKeys[0])
	assert.Len(t, AllIndicatorKeys, 7)
}

func TestValidOutputModes(t *testing.T) {
	for _, mode := range []OutputMode{TextOut, CSVOut, JSONOut, ParquetOut} {
		assert.Contains(t, ValidOutputModes, mode)
	}
	assert.NotContains(t, ValidOutputModes, OutputMode("yaml"))
}
