// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sentiment scores cleaned text with a lexicon-based polarity model.
package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

// Scorer maps cleaned text to a compound polarity in [-1, 1].
type Scorer interface {
	Score(text string) float64
}

// Vader scores text with the VADER lexicon and rules.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader loads the VADER lexicon.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the VADER compound score for text. Blank text is neutral.
func (v *Vader) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return Clamp(v.analyzer.PolarityScores(text).Compound)
}

// Clamp bounds score to [-1, 1]; NaN becomes 0.
func Clamp(score float64) float64 {
	switch {
	case math.IsNaN(score):
		return 0
	case score > 1:
		return 1
	case score < -1:
		return -1
	}
	return score
}
