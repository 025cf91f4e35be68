// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/news-sentiment/internal/sentiment"
	"github.com/pdiddy/news-sentiment/internal/textclean"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [text...]",
	Short: "Print text in the normalized form used for scoring",
	Long: `Clean applies the harvest text normalizer: Unicode decomposition, entity
and URL removal, ASCII letters and digits only, collapsed whitespace,
lowercase. Reads stdin when no text is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := inputText(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), textclean.Clean(text))
		return nil
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score [text...]",
	Short: "Print the compound sentiment score of text",
	Long: `Score cleans the text exactly as harvest does and prints its VADER
compound score in [-1, 1]. Reads stdin when no text is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := inputText(args)
		if err != nil {
			return err
		}
		cleaned := textclean.Clean(text)
		score := sentiment.NewVader().Score(cleaned)

		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "text:  %s\n", cleaned)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", score)
		return nil
	},
}

func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	scoreCmd.Flags().BoolP("verbose", "v", false, "also print the cleaned text")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(scoreCmd)
}
