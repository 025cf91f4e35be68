// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textclean normalizes article text into lowercase ASCII words
// separated by single spaces.
package textclean

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	entityPattern     = regexp.MustCompile(`&[a-zA-Z]+;`)
	urlPattern        = regexp.MustCompile(`(?i)http\S+|www\.\S+`)
	nonWordPattern    = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean maps text to its canonical form. The steps run in a fixed order:
// URLs are removed before punctuation so no bare domain survives as words.
// The result contains only [a-z0-9 ] and Clean(Clean(x)) == Clean(x).
func Clean(text string) string {
	text = norm.NFKD.String(text)
	text = entityPattern.ReplaceAllString(text, " ")
	text = urlPattern.ReplaceAllString(text, "")
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.ToLower(text)
	return strings.TrimSpace(text)
}

// CleanValue cleans v when it is a string and returns "" for anything else.
func CleanValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Clean(s)
}
