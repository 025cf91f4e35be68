// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the news-sentiment pipeline:
// date keys, article references and records, harvest configuration, and the
// exported time series.
package types

import (
	"fmt"
	"time"
)

const (
	// DateKeyLayout is the YYYYMMDD layout used in archive URLs.
	DateKeyLayout = "20060102"

	// ISODate is the layout used for configuration and exported dates.
	ISODate = "2006-01-02"
)

// DateKey is a calendar date serialized as YYYYMMDD.
type DateKey string

// NewDateKey formats t as a DateKey.
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

// Time parses the key as a UTC calendar date.
func (k DateKey) Time() (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, string(k))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date key %q: %w", k, err)
	}
	return t, nil
}

// ISO returns the key as YYYY-MM-DD, or the raw key if it does not parse.
func (k DateKey) ISO() string {
	t, err := k.Time()
	if err != nil {
		return string(k)
	}
	return t.Format(ISODate)
}

// ArticleRef is a listing entry whose title matched the keyword filter.
type ArticleRef struct {
	Date  DateKey `json:"date" yaml:"date"`
	Title string  `json:"title" yaml:"title"`

	// URL is always absolute.
	URL string `json:"url" yaml:"url"`
}

// FetchStatus records how article content was obtained.
type FetchStatus string

const (
	FetchOK       FetchStatus = "ok"
	FetchNotFound FetchStatus = "not_found"
	FetchError    FetchStatus = "error"
)

// ContentNotFound is the content sentinel used when no selector matched.
const ContentNotFound = "Content not found"

// ErrorContent builds the content sentinel for a failed fetch.
func ErrorContent(err error) string {
	return "Error: " + err.Error()
}

// ArticleRecord is an ArticleRef with its fetched content and, once the
// result table is built, its cleaned text and sentiment.
type ArticleRecord struct {
	ArticleRef `yaml:",inline"`

	// Content is the extracted text or a sentinel (ContentNotFound, ErrorContent).
	Content string      `json:"content" yaml:"content"`
	Status  FetchStatus `json:"status" yaml:"status"`
	Err     string      `json:"error,omitempty" yaml:"error,omitempty"`

	CleanTitle   string `json:"clean_title" yaml:"clean_title"`
	CleanContent string `json:"clean_content" yaml:"clean_content"`

	SentimentScore float64 `json:"sentiment_score" yaml:"sentiment_score"`

	// Scored is false for rows whose content is a sentinel.
	Scored bool `json:"scored" yaml:"scored"`
}

// SeriesPoint is one (date, score) row of the exported time series.
type SeriesPoint struct {
	Date  time.Time `json:"date" yaml:"date"`
	Score float64   `json:"sentiment_score" yaml:"sentiment_score"`
}
