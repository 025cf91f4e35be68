// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/news-sentiment/internal/httputil"
	"github.com/pdiddy/news-sentiment/pkg/types"
)

// ExtractArticles parses a listing page and returns the articles whose
// title matches filter, in page order. A page without the expected
// container, section or list has no articles; that is not an error.
func ExtractArticles(markup io.Reader, date types.DateKey, site types.Site, filter *regexp.Regexp) ([]types.ArticleRef, error) {
	doc, err := goquery.NewDocumentFromReader(markup)
	if err != nil {
		return nil, fmt.Errorf("parsing listing page: %w", err)
	}

	list := doc.Find(site.ListingContainer).First().
		Find(site.ListingSection).First().
		Find(site.ListingList).First()
	if list.Length() == 0 {
		return nil, nil
	}

	var refs []types.ArticleRef
	list.Find("li").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a").First()
		title, hasTitle := link.Attr("title")
		href, hasHref := link.Attr("href")
		if !hasTitle || !hasHref {
			return
		}
		if !filter.MatchString(title) {
			return
		}
		abs, err := absoluteURL(site.Origin, href)
		if err != nil {
			return
		}
		refs = append(refs, types.ArticleRef{Date: date, Title: title, URL: abs})
	})
	return refs, nil
}

// absoluteURL keeps href when it already carries a scheme, otherwise
// resolves it against origin. A protocol-relative href ("//host/path")
// names its own host and only borrows the origin's scheme.
func absoluteURL(origin, href string) (string, error) {
	href = strings.TrimSpace(href)
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parsing href %q: %w", href, err)
	}
	if ref.IsAbs() {
		return href, nil
	}
	base, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("parsing origin %q: %w", origin, err)
	}
	return base.ResolveReference(ref).String(), nil
}

// ListingOutcome tags what happened to one day's listing page.
type ListingOutcome string

const (
	ListingOK     ListingOutcome = "ok"
	ListingEmpty  ListingOutcome = "empty"
	ListingFailed ListingOutcome = "failed"
)

// ListingResult is the outcome of listing one day.
type ListingResult struct {
	Date     types.DateKey
	URL      string
	Outcome  ListingOutcome
	Articles []types.ArticleRef
	Err      error
}

// Lister fetches and extracts listing pages.
type Lister struct {
	getter httputil.Getter
	site   types.Site
	filter *regexp.Regexp
}

// NewLister returns a Lister matching titles against filter.
func NewLister(getter httputil.Getter, site types.Site, filter *regexp.Regexp) *Lister {
	return &Lister{getter: getter, site: site, filter: filter}
}

// List fetches d's listing page. Transport, status and parse failures are
// reported in the result, never returned.
func (l *Lister) List(ctx context.Context, d DateURL) ListingResult {
	res := ListingResult{Date: d.Date, URL: d.URL}

	body, err := l.getter.Get(ctx, d.URL)
	if err != nil {
		res.Outcome = ListingFailed
		res.Err = err
		return res
	}

	refs, err := ExtractArticles(bytes.NewReader(body), d.Date, l.site, l.filter)
	if err != nil {
		res.Outcome = ListingFailed
		res.Err = err
		return res
	}

	res.Articles = refs
	if len(refs) == 0 {
		res.Outcome = ListingEmpty
	} else {
		res.Outcome = ListingOK
	}
	return res
}
