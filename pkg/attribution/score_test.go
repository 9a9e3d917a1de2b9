package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_OnlyActive(t *testing.T) {
	result := Score(
		EventContext{ToolName: "Edit", FilePath: "/p/main.go"},
		[]Candidate{{FeatureID: "f1", Description: "anything at all", Type: "feature"}},
	)

	assert.Equal(t, "f1", result.FeatureID)
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, "only_active", result.Reason)
}

func TestScore_NoCandidates(t *testing.T) {
	result := Score(EventContext{ToolName: "Edit"}, nil)
	assert.Empty(t, result.FeatureID)
	assert.Equal(t, "no_candidates", result.Reason)
}

func TestScore_FilePatternWins(t *testing.T) {
	candidates := []Candidate{
		{FeatureID: "auth", Description: "authentication flow", FilePatterns: []string{"*auth*"}, Type: "feature"},
		{FeatureID: "docs", Description: "documentation pass", FilePatterns: []string{"*.md"}, Type: "feature"},
	}

	result := Score(EventContext{ToolName: "Edit", FilePath: "/p/internal/auth/login.go"}, candidates)
	assert.Equal(t, "auth", result.FeatureID)
	assert.Equal(t, "scored", result.Reason)
	assert.GreaterOrEqual(t, result.Score, filePatternWeight)
}

func TestScore_KeywordOverlap(t *testing.T) {
	candidates := []Candidate{
		{FeatureID: "parser", Description: "streaming parser rewrite", Type: "feature"},
		{FeatureID: "ui", Description: "settings dialog layout", Type: "feature"},
	}

	result := Score(EventContext{
		ToolName: "Bash",
		Text:     "go test ./parser -run TestStreaming",
	}, candidates)
	assert.Equal(t, "parser", result.FeatureID)
}

func TestScore_TypePriorityBreaksTies(t *testing.T) {
	// Identical descriptions and patterns: the hotfix outranks the chore.
	candidates := []Candidate{
		{FeatureID: "chore", Description: "shared work", Type: "chore"},
		{FeatureID: "hotfix", Description: "shared work", Type: "hotfix"},
	}

	result := Score(EventContext{ToolName: "Edit", Text: "shared work"}, candidates)
	assert.Equal(t, "hotfix", result.FeatureID)
}

func TestScore_PrimaryBonusBreaksTies(t *testing.T) {
	candidates := []Candidate{
		{FeatureID: "plain", Description: "shared work", Type: "feature"},
		{FeatureID: "primary", Description: "shared work", Type: "feature", IsPrimary: true},
	}

	result := Score(EventContext{ToolName: "Edit", Text: "shared work"}, candidates)
	assert.Equal(t, "primary", result.FeatureID)
}

func TestScore_BelowThreshold(t *testing.T) {
	// Two candidates with zero signal: epic type weight alone (0.2*0.2=0.04)
	// stays under the threshold.
	candidates := []Candidate{
		{FeatureID: "e1", Description: "zzz", Type: "epic"},
		{FeatureID: "e2", Description: "yyy", Type: "epic"},
	}

	result := Score(EventContext{ToolName: "Edit", FilePath: "/p/main.go", Text: "unrelated"}, candidates)
	assert.Empty(t, result.FeatureID)
	assert.Equal(t, "below_threshold", result.Reason)
}

func TestMatchesAnyPattern(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		patterns []string
		want     bool
	}{
		{"glob on base name", "/p/src/login.go", []string{"*.go"}, true},
		{"glob on full path", "/p/src/login.go", []string{"/p/src/*.go"}, true},
		{"substring fallback", "/p/src/auth/token.go", []string{"*auth*"}, true},
		{"no match", "/p/README.md", []string{"*.go"}, false},
		{"empty patterns", "/p/README.md", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesAnyPattern(tt.filePath, tt.patterns))
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Fix the streaming parser, add tests for EOF handling")
	// "fix", "the", "add", "for" are stop words; "eof" survives via length 3.
	assert.ElementsMatch(t, []string{"streaming", "parser", "tests", "eof", "handling"}, tokens)
}
