package attribution

// Prompt classification boosts and threshold.
const (
	incompleteBoost     = 1.3
	inProgressBoost     = 1.2
	classifyMinScore    = 0.40
	promptCacheMaxChars = 500
	reasonCacheMaxChars = 200
)

// PromptCandidate is a snapshot of one feature for prompt classification.
// Unlike Score, prompt classification considers ALL features, not just
// in-progress ones.
type PromptCandidate struct {
	FeatureID   string
	Description string
	Status      string
}

// PromptResult is the outcome of classifying a user prompt.
type PromptResult struct {
	FeatureID  string
	Confidence float64
	// Activate is set when confidence reached the threshold; callers
	// cache FeatureID as the session's active feature.
	Activate bool
}

// ClassifyPrompt scores a user prompt against every feature by keyword
// overlap, boosting not-yet-complete features (the user is probably
// talking about open work) and in-progress ones (probably continuing).
func ClassifyPrompt(prompt string, candidates []PromptCandidate) PromptResult {
	promptTokens := TokenSet(prompt)
	if len(promptTokens) == 0 {
		return PromptResult{}
	}

	var best PromptResult
	for _, cand := range candidates {
		featureTokens := TokenSet(cand.Description)
		denom := len(featureTokens)
		if denom < 1 {
			denom = 1
		}
		score := float64(overlapCount(promptTokens, featureTokens)) / float64(denom)

		if cand.Status != "complete" {
			score *= incompleteBoost
		}
		if cand.Status == "in_progress" {
			score *= inProgressBoost
		}

		if score > best.Confidence {
			best.FeatureID = cand.FeatureID
			best.Confidence = score
		}
	}

	if best.Confidence >= classifyMinScore {
		best.Activate = true
	} else {
		best.FeatureID = ""
	}
	return best
}

// TruncatePrompt caps a prompt for storage on the session node.
func TruncatePrompt(prompt string, max int) string {
	if len(prompt) <= max {
		return prompt
	}
	return prompt[:max]
}
