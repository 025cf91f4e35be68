// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive enumerates the per-day listing pages of a news archive
// and extracts the keyword-matching article links from them.
package archive

import (
	"strings"
	"time"

	"github.com/pdiddy/news-sentiment/pkg/types"
)

// DateURL pairs a calendar day with its listing page.
type DateURL struct {
	Date types.DateKey
	URL  string
}

// GenerateDateURLs returns one listing URL per calendar day from start to
// end, both inclusive, in ascending order. Times of day are ignored. An end
// before start yields nil.
func GenerateDateURLs(start, end time.Time, template string) []DateURL {
	first := calendarDay(start)
	last := calendarDay(end)
	if last.Before(first) {
		return nil
	}

	out := make([]DateURL, 0, int(last.Sub(first).Hours()/24)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := types.NewDateKey(d)
		out = append(out, DateURL{
			Date: key,
			URL:  strings.Replace(template, types.DatePlaceholder, string(key), 1),
		})
	}
	return out
}

// calendarDay drops the time of day, keeping the date as seen in t's location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
