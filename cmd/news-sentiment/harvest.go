// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/news-sentiment/internal/export"
	"github.com/pdiddy/news-sentiment/internal/harvest"
	"github.com/pdiddy/news-sentiment/internal/httputil"
	"github.com/pdiddy/news-sentiment/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "news-sentiment/0.1"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Crawl the archive over a date range and export sentiment scores",
	Long: `Harvest visits one archive listing page per day from --start to --end,
fetches every article whose title matches --keyword, cleans the text, scores
it, and writes date,sentiment_score rows to --output.

Requests are strictly sequential: --rate-limit milliseconds after each article
and --date-delay milliseconds after each listing page. Failed pages are
reported and skipped. No file is written when nothing matches.

Every flag can also be set in the config file or as NEWS_SENTIMENT_<FLAG>.`,
	RunE: runHarvest,
}

func init() {
	f := harvestCmd.Flags()
	f.String("start", "", "first day to harvest (YYYY-MM-DD)")
	f.String("end", "", "last day to harvest, inclusive (YYYY-MM-DD)")
	f.String("keyword", "cocoa", "case-insensitive title pattern")
	f.String("output", export.DefaultPath, "series output path")
	f.String("format", "csv", "series format: csv, json, yaml, or sqlite")
	f.String("aggregate", "none", "series aggregation: none or daily")
	f.String("records", "", "also write the full article table as YAML to this path")
	f.Int("rate-limit", 1000, "delay after each article fetch, in milliseconds")
	f.Int("date-delay", 2000, "delay after each listing page, in milliseconds")
	f.Duration("timeout", defaultTimeout, "HTTP request timeout")
	f.Int("retries", 0, "retries on HTTP 429 (0 = none)")
	f.String("user-agent", defaultUserAgent, "User-Agent header")

	for _, name := range []string{
		"start", "end", "keyword", "output", "format", "aggregate", "records",
		"rate-limit", "date-delay", "timeout", "retries", "user-agent",
	} {
		if err := viper.BindPFlag(name, f.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return harvestAndExport(ctx, cmd.OutOrStdout())
}

// harvestAndExport runs a harvest from the resolved configuration and
// writes its outputs. An interrupted run still exports what it gathered
// before returning the interruption.
func harvestAndExport(ctx context.Context, out io.Writer) error {
	cfg, err := harvestConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := export.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	aggregate := viper.GetString("aggregate")
	if aggregate != "none" && aggregate != "daily" {
		return fmt.Errorf("unsupported aggregation %q: use none or daily", aggregate)
	}

	client := httputil.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.HTTPConfig)
	deps, err := harvest.NewDeps(client, cfg, out)
	if err != nil {
		return err
	}

	result, runErr := harvest.Run(ctx, cfg, deps, out)
	if runErr != nil && result.Found() {
		fmt.Fprintf(out, "Interrupted after %d dates; saving %d articles gathered so far\n",
			result.Summary.Dates, len(result.Records))
	}
	if err := exportResult(result, format, aggregate, out); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("harvest interrupted after %d dates: %w", result.Summary.Dates, runErr)
	}
	return nil
}

// exportResult writes the records dump and the series file. Nothing is
// written when no article was found, and no series file when no row could
// be scored.
func exportResult(result harvest.Result, format export.Format, aggregate string, out io.Writer) error {
	if !result.Found() {
		return nil
	}

	if path := viper.GetString("records"); path != "" {
		if err := export.WriteRecords(path, result.Table.Rows); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved records to %s\n", path)
	}

	points := result.Table.Series()
	if len(points) == 0 {
		fmt.Fprintln(out, "No article content could be scored; nothing exported")
		return nil
	}
	if aggregate == "daily" {
		points = export.DailyMean(points)
	}

	output := viper.GetString("output")
	if err := export.Write(output, format, points); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved to %s\n", output)
	return nil
}

// harvestConfig resolves flags, config file and environment into a
// HarvestConfig. A "site" section in the config file overrides the
// default archive layout field by field.
func harvestConfig() (types.HarvestConfig, error) {
	start, err := parseDay("start")
	if err != nil {
		return types.HarvestConfig{}, err
	}
	end, err := parseDay("end")
	if err != nil {
		return types.HarvestConfig{}, err
	}

	site := types.DefaultSite()
	if viper.IsSet("site") {
		if err := viper.UnmarshalKey("site", &site); err != nil {
			return types.HarvestConfig{}, fmt.Errorf("reading site config: %w", err)
		}
	}

	articleDelay := time.Duration(viper.GetInt("rate-limit")) * time.Millisecond
	return types.HarvestConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:         viper.GetDuration("timeout"),
			UserAgent:       viper.GetString("user-agent"),
			MaxRetries:      viper.GetInt("retries"),
			MinHostInterval: articleDelay,
		},
		Site:         site,
		Start:        start,
		End:          end,
		Keyword:      viper.GetString("keyword"),
		ArticleDelay: articleDelay,
		DateDelay:    time.Duration(viper.GetInt("date-delay")) * time.Millisecond,
	}, nil
}

func parseDay(key string) (time.Time, error) {
	s := viper.GetString(key)
	if s == "" {
		return time.Time{}, fmt.Errorf("--%s is required (YYYY-MM-DD)", key)
	}
	t, err := time.Parse(types.ISODate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: want YYYY-MM-DD", key, s)
	}
	return t, nil
}
