// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVader_ScoreInRange(t *testing.T) {
	v := NewVader()
	texts := []string{
		"",
		"cocoa prices rose 5 today",
		"farmers are happy and the harvest is excellent great wonderful",
		"the crop failed and prices collapsed terrible awful disaster",
		"content not found",
		"good good good good good good good good good good good good",
	}
	for _, text := range texts {
		got := v.Score(text)
		assert.GreaterOrEqual(t, got, -1.0, text)
		assert.LessOrEqual(t, got, 1.0, text)
	}
}

func TestVader_Polarity(t *testing.T) {
	v := NewVader()
	assert.Greater(t, v.Score("farmers are happy and the harvest is excellent"), 0.0)
	assert.Less(t, v.Score("the crop failed and it was a terrible disaster"), 0.0)
	assert.Equal(t, 0.0, v.Score(""))
}

func TestVader_Deterministic(t *testing.T) {
	v := NewVader()
	text := "cocoa board announces better prices for farmers"
	assert.Equal(t, v.Score(text), v.Score(text))
	assert.Equal(t, v.Score(text), NewVader().Score(text))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(1.7))
	assert.Equal(t, -1.0, Clamp(-3))
	assert.Equal(t, 0.25, Clamp(0.25))
	assert.Equal(t, 0.0, Clamp(math.NaN()))
}
