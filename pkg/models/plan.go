package models

// SetPlanRequest replaces a feature's step list
type SetPlanRequest struct {
	Steps []string `json:"steps"`
}

// CheckpointRequest reports plan progress from the agent
type CheckpointRequest struct {
	StepCompleted   string `json:"step_completed,omitempty"`
	CurrentActivity string `json:"current_activity,omitempty"`
}

// PlanProgress summarises step completion within a feature
type PlanProgress struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// StepView is the API shape of one step
type StepView struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StepOrder   int    `json:"step_order"`
}

// PlanResponse is the API shape of a feature's plan
type PlanResponse struct {
	FeatureID  string       `json:"feature_id"`
	Steps      []StepView   `json:"steps"`
	ActiveStep *StepView    `json:"active_step,omitempty"`
	Progress   PlanProgress `json:"progress"`
}

// CheckpointResponse reports the plan state after a checkpoint plus any
// warnings (drift, stuckness)
type CheckpointResponse struct {
	FeatureID  string       `json:"feature_id,omitempty"`
	ActiveStep *StepView    `json:"active_step,omitempty"`
	Progress   PlanProgress `json:"progress"`
	Warnings   []string     `json:"warnings"`
}
