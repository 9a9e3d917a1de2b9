package models

// CreateInsightRequest contains fields for recording an insight
type CreateInsightRequest struct {
	Description string   `json:"description"`
	PatternType string   `json:"pattern_type"`
	Tags        []string `json:"tags,omitempty"`
	FeatureID   string   `json:"feature_id,omitempty"`
}

// InsightFeedbackRequest records whether an insight helped
type InsightFeedbackRequest struct {
	InsightID string `json:"insight_id"`
	Helpful   bool   `json:"helpful"`
	Comment   string `json:"comment,omitempty"`
}
