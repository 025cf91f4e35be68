//go:build mage

package main

import (
	"os"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Harvest builds the CLI and runs a harvest over the last 7 days, or over
// START..END when those environment variables are set (YYYY-MM-DD).
func Harvest() error {
	mg.Deps(Build)

	end := os.Getenv("END")
	if end == "" {
		end = time.Now().Format("2006-01-02")
	}
	start := os.Getenv("START")
	if start == "" {
		start = time.Now().AddDate(0, 0, -6).Format("2006-01-02")
	}
	return sh.RunV("./bin/news-sentiment", "harvest", "--start", start, "--end", end)
}
