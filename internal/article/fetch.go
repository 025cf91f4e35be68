// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package article fetches article pages and extracts their body text using
// a primary selector with a paragraph-joining fallback.
package article

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/news-sentiment/internal/httputil"
	"github.com/pdiddy/news-sentiment/pkg/types"
)

// ExtractContent returns the article text from markup and whether any
// content selector matched. The primary selector's trimmed text wins; when
// it is absent the trimmed text of every paragraph in the fallback
// container is joined with single spaces.
func ExtractContent(markup io.Reader, site types.Site) (string, bool, error) {
	doc, err := goquery.NewDocumentFromReader(markup)
	if err != nil {
		return "", false, fmt.Errorf("parsing article page: %w", err)
	}

	if primary := doc.Find(site.ContentSelector).First(); primary.Length() > 0 {
		return strings.TrimSpace(primary.Text()), true, nil
	}

	paragraphs := doc.Find(site.FallbackContainer).First().Find("p")
	if paragraphs.Length() == 0 {
		return "", false, nil
	}
	parts := make([]string, 0, paragraphs.Length())
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(p.Text()))
	})
	return strings.Join(parts, " "), true, nil
}

// Fetcher retrieves article pages.
type Fetcher struct {
	getter httputil.Getter
	site   types.Site
	w      io.Writer
}

// NewFetcher returns a Fetcher that writes diagnostics to w.
func NewFetcher(getter httputil.Getter, site types.Site, w io.Writer) *Fetcher {
	if w == nil {
		w = io.Discard
	}
	return &Fetcher{getter: getter, site: site, w: w}
}

// Fetch downloads ref and returns it with content filled in. Failures are
// recorded in the record's Status and Content, never returned.
func (f *Fetcher) Fetch(ctx context.Context, ref types.ArticleRef) types.ArticleRecord {
	rec := types.ArticleRecord{ArticleRef: ref}

	body, err := f.getter.Get(ctx, ref.URL)
	if err != nil {
		return failed(f.w, rec, err)
	}

	content, found, err := ExtractContent(bytes.NewReader(body), f.site)
	if err != nil {
		return failed(f.w, rec, err)
	}
	if !found {
		fmt.Fprintf(f.w, "  no content found for %s\n", ref.URL)
		rec.Content = types.ContentNotFound
		rec.Status = types.FetchNotFound
		return rec
	}

	rec.Content = content
	rec.Status = types.FetchOK
	return rec
}

func failed(w io.Writer, rec types.ArticleRecord, err error) types.ArticleRecord {
	fmt.Fprintf(w, "  error fetching article %s: %v\n", rec.URL, err)
	rec.Content = types.ErrorContent(err)
	rec.Status = types.FetchError
	rec.Err = err.Error()
	return rec
}
