// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/news-sentiment/pkg/types"
)

const testTemplate = "https://news.example/archive.php?date={date}"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDateURLs_Lengths(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single day", day(2024, 3, 5), day(2024, 3, 5), 1},
		{"one week", day(2024, 3, 1), day(2024, 3, 7), 7},
		{"leap february", day(2024, 2, 1), day(2024, 3, 1), 30},
		{"across year end", day(2023, 12, 30), day(2024, 1, 2), 4},
		{"full year", day(2015, 1, 1), day(2015, 12, 31), 365},
		{"reversed", day(2024, 3, 5), day(2024, 3, 4), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateDateURLs(tt.start, tt.end, testTemplate)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestGenerateDateURLs_AscendingAndKeyedOnce(t *testing.T) {
	got := GenerateDateURLs(day(2023, 12, 28), day(2024, 3, 2), testTemplate)
	require.NotEmpty(t, got)

	assert.Equal(t, types.DateKey("20231228"), got[0].Date)
	assert.Equal(t, types.DateKey("20240302"), got[len(got)-1].Date)

	for i, du := range got {
		assert.Len(t, string(du.Date), 8)
		assert.Equal(t, 1, strings.Count(du.URL, string(du.Date)), du.URL)
		assert.NotContains(t, du.URL, types.DatePlaceholder)
		if i == 0 {
			continue
		}
		prev, err := got[i-1].Date.Time()
		require.NoError(t, err)
		cur, err := du.Date.Time()
		require.NoError(t, err)
		assert.Equal(t, prev.AddDate(0, 0, 1), cur, "gap or duplicate at %s", du.Date)
	}
}

func TestGenerateDateURLs_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 5, 3, 0, 1, 0, 0, time.UTC)

	got := GenerateDateURLs(start, end, testTemplate)
	require.Len(t, got, 3)
	assert.Equal(t, "https://news.example/archive.php?date=20240501", got[0].URL)
}

func TestGenerateDateURLs_DefaultSite(t *testing.T) {
	got := GenerateDateURLs(day(2015, 1, 1), day(2015, 1, 1), types.DefaultSite().ListingURLTemplate)
	require.Len(t, got, 1)
	assert.Equal(t,
		"https://www.ghanaweb.com/GhanaHomePage/business/browse.archive.php?date=20150101",
		got[0].URL)
}
