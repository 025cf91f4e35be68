// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the news-sentiment CLI.
// It harvests keyword-matching articles from a dated news archive and
// exports a sentiment time series.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the news-sentiment CLI.
var rootCmd = &cobra.Command{
	Use:   "news-sentiment",
	Short: "Build a sentiment time series from a news archive",
	Long: `news-sentiment walks a news site's daily archive pages over a date range,
collects the articles whose titles match a keyword, extracts and cleans their
text, scores it with VADER, and writes a date,sentiment_score table.

Use harvest for a full run; clean and score expose the text normalizer and
scorer on their own.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./news-sentiment.yaml or ~/.config/news-sentiment/news-sentiment.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("news-sentiment")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "news-sentiment"))
		}
	}

	viper.SetEnvPrefix("NEWS_SENTIMENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
