// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the sentiment time series as a flat table in CSV,
// JSON, YAML or SQLite form, and optionally the full article table as YAML.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/news-sentiment/pkg/types"
)

// DefaultPath is the series file written when no output path is given.
const DefaultPath = "sentiment_data.csv"

// Format selects the series file encoding.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// ParseFormat validates a format name. An empty name means CSV.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatJSON, FormatYAML, FormatSQLite:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q: use csv, json, yaml or sqlite", s)
}

// Row is the serialized form of a series point.
type Row struct {
	Date           string  `json:"date" yaml:"date"`
	SentimentScore float64 `json:"sentiment_score" yaml:"sentiment_score"`
}

func rows(points []types.SeriesPoint) []Row {
	out := make([]Row, len(points))
	for i, p := range points {
		out[i] = Row{Date: p.Date.Format(types.ISODate), SentimentScore: p.Score}
	}
	return out
}

// DailyMean collapses points to one mean score per calendar date, in
// ascending date order.
func DailyMean(points []types.SeriesPoint) []types.SeriesPoint {
	type acc struct {
		date  time.Time
		sum   float64
		count int
	}
	byDay := make(map[string]*acc)
	for _, p := range points {
		key := p.Date.Format(types.ISODate)
		a, ok := byDay[key]
		if !ok {
			a = &acc{date: p.Date}
			byDay[key] = a
		}
		a.sum += p.Score
		a.count++
	}

	out := make([]types.SeriesPoint, 0, len(byDay))
	for _, a := range byDay {
		out = append(out, types.SeriesPoint{Date: a.date, Score: a.sum / float64(a.count)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Write saves points to path in the given format.
func Write(path string, format Format, points []types.SeriesPoint) error {
	switch format {
	case FormatCSV, "":
		data, err := encodeCSV(points)
		if err != nil {
			return err
		}
		return writeAtomic(path, data)
	case FormatJSON:
		data, err := json.MarshalIndent(rows(points), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return writeAtomic(path, append(data, '\n'))
	case FormatYAML:
		data, err := yaml.Marshal(rows(points))
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return writeAtomic(path, data)
	case FormatSQLite:
		return writeSQLite(path, rows(points))
	}
	return fmt.Errorf("unsupported format %q", format)
}

func encodeCSV(points []types.SeriesPoint) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write([]string{"date", "sentiment_score"}); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows(points) {
		score := strconv.FormatFloat(r.SentimentScore, 'f', -1, 64)
		if err := cw.Write([]string{r.Date, score}); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// RecordEntry is one row of the full article table export.
type RecordEntry struct {
	Date           string  `yaml:"date"`
	Title          string  `yaml:"title"`
	URL            string  `yaml:"url"`
	Status         string  `yaml:"status"`
	Error          string  `yaml:"error,omitempty"`
	Content        string  `yaml:"content"`
	SentimentScore float64 `yaml:"sentiment_score"`
	Scored         bool    `yaml:"scored"`
}

// WriteRecords saves the full table as YAML, one entry per row with the
// cleaned title and content.
func WriteRecords(path string, records []types.ArticleRecord) error {
	entries := make([]RecordEntry, len(records))
	for i, r := range records {
		entries[i] = RecordEntry{
			Date:           r.Date.ISO(),
			Title:          r.CleanTitle,
			URL:            r.URL,
			Status:         string(r.Status),
			Error:          r.Err,
			Content:        r.CleanContent,
			SentimentScore: r.SentimentScore,
			Scored:         r.Scored,
		}
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	return writeAtomic(path, data)
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
