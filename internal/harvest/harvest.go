// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest drives a crawl over a date range: list each day's archive
// page, fetch every matching article, then clean and score the results into
// a table.
package harvest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/news-sentiment/internal/archive"
	"github.com/pdiddy/news-sentiment/internal/article"
	"github.com/pdiddy/news-sentiment/internal/httputil"
	"github.com/pdiddy/news-sentiment/internal/sentiment"
	"github.com/pdiddy/news-sentiment/pkg/types"
)

// Lister returns the matching articles of one day's listing page.
type Lister interface {
	List(ctx context.Context, d archive.DateURL) archive.ListingResult
}

// Fetcher fills in the content of one article.
type Fetcher interface {
	Fetch(ctx context.Context, ref types.ArticleRef) types.ArticleRecord
}

// Deps are the capabilities a run consumes. Sleep defaults to a
// context-aware time.Sleep.
type Deps struct {
	Lister  Lister
	Fetcher Fetcher
	Scorer  sentiment.Scorer
	Sleep   func(ctx context.Context, d time.Duration) error
}

// NewDeps wires the production listing, article and scoring stages for cfg.
func NewDeps(getter httputil.Getter, cfg types.HarvestConfig, w io.Writer) (Deps, error) {
	filter, err := cfg.KeywordFilter()
	if err != nil {
		return Deps{}, err
	}
	return Deps{
		Lister:  archive.NewLister(getter, cfg.Site, filter),
		Fetcher: article.NewFetcher(getter, cfg.Site, w),
		Scorer:  sentiment.NewVader(),
		Sleep:   httputil.SleepContext,
	}, nil
}

// Summary holds counts from a harvest run.
type Summary struct {
	Dates          int
	ListingsFailed int
	Articles       int
	FetchedOK      int
	NotFound       int
	FetchErrors    int
	Dropped        int
	Scored         int
}

// HasFailures reports whether any listing or article fetch failed.
func (s Summary) HasFailures() bool {
	return s.ListingsFailed > 0 || s.FetchErrors > 0
}

// Result is the outcome of a run. Records holds every fetched article in
// discovery order; Table is empty when nothing was found.
type Result struct {
	Records []types.ArticleRecord
	Table   Table
	Summary Summary
}

// Found reports whether any article matched the keyword.
func (r Result) Found() bool {
	return len(r.Records) > 0
}

// Run processes every day from cfg.Start to cfg.End in order, one request at
// a time. Listing and article failures are reported on w and the run
// continues. The only returned error is ctx's; the Result then holds the
// table built from what was gathered before the interruption.
func Run(ctx context.Context, cfg types.HarvestConfig, deps Deps, w io.Writer) (Result, error) {
	dates := archive.GenerateDateURLs(cfg.Start, cfg.End, cfg.Site.ListingURLTemplate)
	fmt.Fprintf(w, "Generated %d date URLs to process\n", len(dates))

	var res Result
	runErr := crawl(ctx, cfg, deps, dates, &res, w)

	if !res.Found() {
		if runErr == nil {
			fmt.Fprintf(w, "No %s-related articles found\n", cfg.Keyword)
		}
		return res, runErr
	}

	res.Table = BuildTable(res.Records, deps.Scorer)
	res.Summary.Dropped = res.Table.Dropped
	res.Summary.Scored = res.Table.ScoredCount()

	fmt.Fprintf(w, "\nHarvest summary: %d dates, %d listing failures, %d articles (%d ok, %d not found, %d errors), %d rows dropped, %d scored\n",
		res.Summary.Dates, res.Summary.ListingsFailed, res.Summary.Articles,
		res.Summary.FetchedOK, res.Summary.NotFound, res.Summary.FetchErrors,
		res.Summary.Dropped, res.Summary.Scored)
	return res, runErr
}

// crawl lists and fetches every date into res, stopping at the first
// context error.
func crawl(ctx context.Context, cfg types.HarvestConfig, deps Deps, dates []archive.DateURL, res *Result, w io.Writer) error {
	sleep := deps.Sleep
	if sleep == nil {
		sleep = httputil.SleepContext
	}

	for i, d := range dates {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Processing %s (%d/%d)\n", d.Date, i+1, len(dates))
		res.Summary.Dates++

		listing := deps.Lister.List(ctx, d)
		switch listing.Outcome {
		case archive.ListingFailed:
			res.Summary.ListingsFailed++
			fmt.Fprintf(w, "Error processing %s: %v\n", d.URL, listing.Err)
		case archive.ListingOK:
			fmt.Fprintf(w, "Found %d %s-related articles on %s\n", len(listing.Articles), cfg.Keyword, d.Date)
			for _, ref := range listing.Articles {
				rec := deps.Fetcher.Fetch(ctx, ref)
				res.Records = append(res.Records, rec)
				res.Summary.count(rec.Status)

				if err := sleep(ctx, cfg.ArticleDelay); err != nil {
					return err
				}
			}
		}

		if err := sleep(ctx, cfg.DateDelay); err != nil {
			return err
		}
	}
	return nil
}

func (s *Summary) count(status types.FetchStatus) {
	s.Articles++
	switch status {
	case types.FetchOK:
		s.FetchedOK++
	case types.FetchNotFound:
		s.NotFound++
	case types.FetchError:
		s.FetchErrors++
	}
}
