// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"github.com/pdiddy/news-sentiment/internal/sentiment"
	"github.com/pdiddy/news-sentiment/internal/textclean"
	"github.com/pdiddy/news-sentiment/pkg/types"
)

// Table is the cleaned, scored result of a run. Rows keep discovery order
// (by date, then position on the listing page). Row positions are not
// stable across BuildTable because empty rows are removed.
type Table struct {
	Rows    []types.ArticleRecord
	Dropped int
}

// BuildTable cleans titles and content, drops rows whose cleaned content is
// empty, and scores the rows whose content was actually fetched. Sentinel
// rows stay in the table unscored.
func BuildTable(records []types.ArticleRecord, scorer sentiment.Scorer) Table {
	var t Table
	for _, rec := range records {
		rec.CleanTitle = textclean.Clean(rec.Title)
		rec.CleanContent = textclean.Clean(rec.Content)
		if rec.CleanContent == "" {
			t.Dropped++
			continue
		}
		if rec.Status == types.FetchOK {
			rec.SentimentScore = scorer.Score(rec.CleanContent)
			rec.Scored = true
		}
		t.Rows = append(t.Rows, rec)
	}
	return t
}

// ScoredCount returns the number of scored rows.
func (t Table) ScoredCount() int {
	n := 0
	for _, r := range t.Rows {
		if r.Scored {
			n++
		}
	}
	return n
}

// Series projects the scored rows to (date, sentiment_score) points.
func (t Table) Series() []types.SeriesPoint {
	points := make([]types.SeriesPoint, 0, len(t.Rows))
	for _, r := range t.Rows {
		if !r.Scored {
			continue
		}
		d, err := r.Date.Time()
		if err != nil {
			continue
		}
		points = append(points, types.SeriesPoint{Date: d, Score: r.SentimentScore})
	}
	return points
}
