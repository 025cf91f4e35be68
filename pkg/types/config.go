// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DatePlaceholder is replaced by a DateKey when building listing URLs.
const DatePlaceholder = "{date}"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "news-sentiment/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429. Zero disables retries.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MinHostInterval is the minimum spacing between two requests to the
	// same origin.
	MinHostInterval time.Duration `json:"min_host_interval" yaml:"min_host_interval"`
}

// Site describes the archive being harvested: where the daily listing pages
// live and which elements hold the listing and the article body.
type Site struct {
	// Origin is the scheme and host that relative links are resolved against.
	Origin string `json:"origin" yaml:"origin" mapstructure:"origin"`

	// ListingURLTemplate is the per-day listing URL; it must contain
	// DatePlaceholder exactly once.
	ListingURLTemplate string `json:"listing_url_template" yaml:"listing_url_template" mapstructure:"listing_url_template"`

	// ListingContainer, ListingSection and ListingList select the nested
	// container, sub-container and list that hold the day's articles.
	ListingContainer string `json:"listing_container" yaml:"listing_container" mapstructure:"listing_container"`
	ListingSection   string `json:"listing_section" yaml:"listing_section" mapstructure:"listing_section"`
	ListingList      string `json:"listing_list" yaml:"listing_list" mapstructure:"listing_list"`

	// ContentSelector selects the primary article body element.
	ContentSelector string `json:"content_selector" yaml:"content_selector" mapstructure:"content_selector"`

	// FallbackContainer selects the content area whose paragraphs are joined
	// when ContentSelector matches nothing.
	FallbackContainer string `json:"fallback_container" yaml:"fallback_container" mapstructure:"fallback_container"`
}

// DefaultSite returns the GhanaWeb business archive layout.
func DefaultSite() Site {
	return Site{
		Origin:             "https://www.ghanaweb.com",
		ListingURLTemplate: "https://www.ghanaweb.com/GhanaHomePage/business/browse.archive.php?date=" + DatePlaceholder,
		ListingContainer:   "div.left_artl_list.more_news",
		ListingSection:     "div.upper",
		ListingList:        "ul",
		ContentSelector:    "p#article-123",
		FallbackContainer:  "div.article-content-area",
	}
}

// HarvestConfig holds settings for a harvest run.
type HarvestConfig struct {
	HTTPConfig `yaml:",inline"`

	Site Site `json:"site" yaml:"site"`

	// Start and End bound the harvested calendar days, both inclusive.
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`

	// Keyword is a case-insensitive regular expression matched against
	// listing titles.
	Keyword string `json:"keyword" yaml:"keyword"`

	// ArticleDelay is the pause after each article fetch (default 1s).
	ArticleDelay time.Duration `json:"article_delay" yaml:"article_delay"`

	// DateDelay is the pause after each listing page, including empty ones (default 2s).
	DateDelay time.Duration `json:"date_delay" yaml:"date_delay"`
}

// Validate reports the first configuration problem that would make the run
// meaningless.
func (c HarvestConfig) Validate() error {
	if c.Start.IsZero() || c.End.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if c.End.Before(c.Start) {
		return fmt.Errorf("end date %s is before start date %s",
			c.End.Format(ISODate), c.Start.Format(ISODate))
	}
	if strings.TrimSpace(c.Keyword) == "" {
		return fmt.Errorf("keyword is required")
	}
	if _, err := c.KeywordFilter(); err != nil {
		return err
	}
	if n := strings.Count(c.Site.ListingURLTemplate, DatePlaceholder); n != 1 {
		return fmt.Errorf("listing URL template must contain %s exactly once (found %d)", DatePlaceholder, n)
	}
	if c.Site.Origin == "" {
		return fmt.Errorf("site origin is required")
	}
	if c.ArticleDelay < 0 || c.DateDelay < 0 || c.MinHostInterval < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("retries must not be negative")
	}
	return nil
}

// KeywordFilter compiles Keyword as a case-insensitive pattern.
func (c HarvestConfig) KeywordFilter() (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + c.Keyword)
	if err != nil {
		return nil, fmt.Errorf("invalid keyword pattern %q: %w", c.Keyword, err)
	}
	return re, nil
}
