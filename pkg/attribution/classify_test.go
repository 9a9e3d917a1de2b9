package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPrompt_ActivatesStrongMatch(t *testing.T) {
	candidates := []PromptCandidate{
		{FeatureID: "auth", Description: "login authentication tokens", Status: "in_progress"},
		{FeatureID: "docs", Description: "rewrite contributor documentation", Status: "pending"},
	}

	result := ClassifyPrompt("let's continue the login authentication work", candidates)
	assert.Equal(t, "auth", result.FeatureID)
	assert.True(t, result.Activate)
	assert.GreaterOrEqual(t, result.Confidence, classifyMinScore)
}

func TestClassifyPrompt_BoostsIncomplete(t *testing.T) {
	candidates := []PromptCandidate{
		{FeatureID: "done", Description: "caching layer redis", Status: "complete"},
		{FeatureID: "open", Description: "caching layer redis", Status: "pending"},
	}

	result := ClassifyPrompt("tune the caching layer with redis", candidates)
	assert.Equal(t, "open", result.FeatureID)
}

func TestClassifyPrompt_NoMatchBelowThreshold(t *testing.T) {
	candidates := []PromptCandidate{
		{FeatureID: "auth", Description: "login authentication tokens", Status: "pending"},
	}

	result := ClassifyPrompt("what's the weather like", candidates)
	assert.False(t, result.Activate)
	assert.Empty(t, result.FeatureID)
}

func TestClassifyPrompt_EmptyPrompt(t *testing.T) {
	result := ClassifyPrompt("", []PromptCandidate{{FeatureID: "f", Description: "x"}})
	assert.False(t, result.Activate)
}

func TestTruncatePrompt(t *testing.T) {
	assert.Equal(t, "abc", TruncatePrompt("abc", 500))
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, TruncatePrompt(string(long), promptCacheMaxChars), 500)
}
