package attribution

import (
	"path"
	"strings"
)

// Scoring weights and threshold.
const (
	filePatternWeight   = 0.4
	keywordWeight       = 0.3
	typePriorityWeight  = 0.2
	primaryBonus        = 0.1
	attributionMinScore = 0.15
)

// typePriority weights work-item types: urgent types win ties.
var typePriority = map[string]float64{
	"hotfix":  1.0,
	"bug":     0.8,
	"feature": 0.6,
	"spike":   0.4,
	"chore":   0.3,
	"epic":    0.2,
}

// Candidate is a snapshot of one in-progress feature for scoring.
type Candidate struct {
	FeatureID    string
	Description  string
	FilePatterns []string
	Type         string
	IsPrimary    bool
}

// EventContext carries the attributable parts of one hook event.
type EventContext struct {
	ToolName string
	FilePath string
	// Text is the concatenated free-text tool input (command, pattern,
	// old/new strings, prompt) used for keyword matching.
	Text string
}

// Result is a scoring decision. FeatureID is empty when no candidate
// reached the threshold.
type Result struct {
	FeatureID string
	Score     float64
	Reason    string
}

// Score picks the best candidate for the event, or none.
//
// A single in-progress feature wins outright (reason "only_active").
// Otherwise each candidate scores: +0.4 on the first file pattern hit,
// +0.3 scaled by keyword overlap, +0.2 scaled by type priority, +0.1 if
// primary. Below 0.15 the event stays unattributed
// (reason "below_threshold").
func Score(event EventContext, candidates []Candidate) Result {
	if len(candidates) == 0 {
		return Result{Reason: "no_candidates"}
	}
	if len(candidates) == 1 {
		return Result{FeatureID: candidates[0].FeatureID, Score: 1.0, Reason: "only_active"}
	}

	eventTokens := TokenSet(event.Text)

	best := Result{Reason: "below_threshold"}
	for _, cand := range candidates {
		score := 0.0

		if event.FilePath != "" && matchesAnyPattern(event.FilePath, cand.FilePatterns) {
			score += filePatternWeight
		}

		featureTokens := TokenSet(cand.Description)
		denom := len(featureTokens)
		if denom < 1 {
			denom = 1
		}
		score += keywordWeight * float64(overlapCount(eventTokens, featureTokens)) / float64(denom)

		score += typePriorityWeight * typePriority[cand.Type]

		if cand.IsPrimary {
			score += primaryBonus
		}

		if score > best.Score {
			best.FeatureID = cand.FeatureID
			best.Score = score
			best.Reason = "scored"
		}
	}

	if best.Score < attributionMinScore {
		return Result{Score: best.Score, Reason: "below_threshold"}
	}
	return best
}

// matchesAnyPattern reports whether filePath matches any glob in patterns,
// trying the full path, the base name, and plain substring containment of
// the pattern stripped of glob characters.
func matchesAnyPattern(filePath string, patterns []string) bool {
	base := path.Base(filePath)
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if ok, err := path.Match(pattern, filePath); err == nil && ok {
			return true
		}
		if ok, err := path.Match(pattern, base); err == nil && ok {
			return true
		}
		if literal := strings.Trim(pattern, "*"); literal != "" && strings.Contains(filePath, literal) {
			return true
		}
	}
	return false
}
