// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/news-sentiment/pkg/types"
)

func samplePoints() []types.SeriesPoint {
	return []types.SeriesPoint{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Score: 0.5},
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Score: -0.25},
		{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Score: 0},
	}
}

func TestWrite_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", DefaultPath)
	require.NoError(t, Write(path, FormatCSV, samplePoints()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,sentiment_score\n2024-01-01,0.5\n2024-01-01,-0.25\n2024-01-03,0\n", string(data))
}

func TestWrite_CSVEmptyHasHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, Write(path, FormatCSV, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,sentiment_score\n", string(data))
}

func TestWrite_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "series.json")
	require.NoError(t, Write(jsonPath, FormatJSON, samplePoints()))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON []Row
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Len(t, fromJSON, 3)
	assert.Equal(t, Row{Date: "2024-01-03", SentimentScore: 0}, fromJSON[2])

	yamlPath := filepath.Join(dir, "series.yaml")
	require.NoError(t, Write(yamlPath, FormatYAML, samplePoints()))
	data, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML []Row
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, fromJSON, fromYAML)
}

func TestWrite_SQLiteReplacesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.db")
	require.NoError(t, Write(path, FormatSQLite, samplePoints()))
	require.NoError(t, Write(path, FormatSQLite, samplePoints()[:1]))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM sentiment`).Scan(&count))
	assert.Equal(t, 1, count)

	var date string
	var score float64
	require.NoError(t, db.QueryRow(`SELECT date, sentiment_score FROM sentiment`).Scan(&date, &score))
	assert.Equal(t, "2024-01-01", date)
	assert.Equal(t, 0.5, score)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatCSV, "csv": FormatCSV, "json": FormatJSON, "yaml": FormatYAML, "sqlite": FormatSQLite} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestDailyMean(t *testing.T) {
	got := DailyMean(samplePoints())
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-01", got[0].Date.Format(types.ISODate))
	assert.InDelta(t, 0.125, got[0].Score, 1e-9)
	assert.Equal(t, "2024-01-03", got[1].Date.Format(types.ISODate))
	assert.Empty(t, DailyMean(nil))
}

func TestWriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	records := []types.ArticleRecord{{
		ArticleRef:     types.ArticleRef{Date: "20240101", Title: "Cocoa Rises", URL: "https://x/1"},
		Status:         types.FetchOK,
		CleanTitle:     "cocoa rises",
		CleanContent:   "cocoa prices rose",
		SentimentScore: 0.3,
		Scored:         true,
	}}
	require.NoError(t, WriteRecords(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []RecordEntry
	require.NoError(t, yaml.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "2024-01-01", entries[0].Date)
	assert.Equal(t, "cocoa rises", entries[0].Title)
	assert.Equal(t, "ok", entries[0].Status)
}
