// Package models contains request/response models shared by the HTTP API,
// the CLI, and the hook adapter.
package models

// CreateFeatureRequest contains fields for creating a feature
type CreateFeatureRequest struct {
	Description        string                 `json:"description"`
	Category           string                 `json:"category"`
	Type               string                 `json:"type,omitempty"`
	Priority           int                    `json:"priority,omitempty"`
	Steps              []string               `json:"steps,omitempty"`
	BranchHint         string                 `json:"branch_hint,omitempty"`
	FilePatterns       []string               `json:"file_patterns,omitempty"`
	ParentID           string                 `json:"parent_id,omitempty"`
	IsPrimary          bool                   `json:"is_primary,omitempty"`
	CompletionCriteria map[string]interface{} `json:"completion_criteria,omitempty"`
}

// UpdateFeatureRequest contains optional fields for PATCH /features/{id}
type UpdateFeatureRequest struct {
	Description        *string                `json:"description,omitempty"`
	Category           *string                `json:"category,omitempty"`
	Priority           *int                   `json:"priority,omitempty"`
	BranchHint         *string                `json:"branch_hint,omitempty"`
	FilePatterns       []string               `json:"file_patterns,omitempty"`
	IsPrimary          *bool                  `json:"is_primary,omitempty"`
	CompletionCriteria map[string]interface{} `json:"completion_criteria,omitempty"`
}

// BlockFeatureRequest contains fields for blocking a feature
type BlockFeatureRequest struct {
	Reason            string `json:"reason"`
	BlockingFeatureID string `json:"blocking_feature_id,omitempty"`
}

// DiscoverFeatureRequest creates a feature retroactively and re-attributes
// recent session-work events to it
type DiscoverFeatureRequest struct {
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Type            string   `json:"type,omitempty"`
	Priority        int      `json:"priority,omitempty"`
	Steps           []string `json:"steps,omitempty"`
	LookbackMinutes int      `json:"lookback_minutes,omitempty"`
	MarkComplete    bool     `json:"mark_complete,omitempty"`
	BranchHint      string   `json:"branch_hint,omitempty"`
}

// StartFeatureRequest carries the claim parameters for starting a feature
type StartFeatureRequest struct {
	Agent         string `json:"agent"`
	SessionID     string `json:"session_id,omitempty"`
	ForceOverride bool   `json:"force_override,omitempty"`
}

// FeatureStats summarises feature counts by status
type FeatureStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Blocked    int `json:"blocked"`
	Complete   int `json:"complete"`
}

// DiscoverResult is the outcome of a discover call
type DiscoverResult struct {
	FeatureID         string `json:"feature_id"`
	ReattributedCount int    `json:"reattributed_count"`
}
