package models

// FeatureCluster groups features sharing a category
type FeatureCluster struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Size     int      `json:"size"`
	Features []string `json:"features"`
}

// Workflow is a recurring ordered step sequence across complete features
type Workflow struct {
	Steps     []string `json:"steps"`
	Frequency int      `json:"frequency"`
}

// Bottleneck is a blocked feature with a derived severity
type Bottleneck struct {
	FeatureID    string  `json:"feature_id"`
	Description  string  `json:"description"`
	Reason       string  `json:"reason,omitempty"`
	HoursBlocked float64 `json:"hours_blocked"`
	Severity     string  `json:"severity"`
}

// PatternsResponse bundles the pattern views
type PatternsResponse struct {
	Clusters    []FeatureCluster `json:"clusters"`
	Workflows   []Workflow       `json:"workflows"`
	Bottlenecks []Bottleneck     `json:"bottlenecks"`
}

// VelocityWindow summarises one measurement window
type VelocityWindow struct {
	WindowDays     int     `json:"window_days"`
	Started        int     `json:"started"`
	Completed      int     `json:"completed"`
	AvgCycleHours  float64 `json:"avg_cycle_hours"`
	FeaturesPerDay float64 `json:"features_per_day"`
}

// VelocityResponse adds trend warnings against the prior window
type VelocityResponse struct {
	Current       VelocityWindow `json:"current"`
	DriftWarnings []string       `json:"drift_warnings"`
}

// AgentProfile summarises one agent's work history
type AgentProfile struct {
	Agent               string   `json:"agent"`
	TotalFeatures       int      `json:"total_features"`
	CompletedFeatures   int      `json:"completed_features"`
	CompletionRate      float64  `json:"completion_rate"`
	AvgHoursToComplete  float64  `json:"avg_hours_to_complete"`
	PreferredCategories []string `json:"preferred_categories"`
}

// DigestInsight is one ranked entry of the daily digest
type DigestInsight struct {
	Kind        string  `json:"kind"`
	Title       string  `json:"title"`
	Detail      string  `json:"detail"`
	ImpactScore float64 `json:"impact_score"`
	Confidence  float64 `json:"confidence"`
}

// DigestResponse is the daily digest
type DigestResponse struct {
	Date              string          `json:"date"`
	TopInsights       []DigestInsight `json:"top_insights"`
	Velocity          VelocityWindow  `json:"velocity"`
	ActiveBottlenecks []Bottleneck    `json:"active_bottlenecks"`
}

// QueryRequest is a natural-language analytics question
type QueryRequest struct {
	Question string `json:"question"`
}

// QueryResponse carries the routed view's data
type QueryResponse struct {
	QueryType string      `json:"query_type"`
	Data      interface{} `json:"data"`
	Insights  []string    `json:"insights"`
}

// StatusResponse is GET /status
type StatusResponse struct {
	Project        string       `json:"project"`
	Stats          FeatureStats `json:"stats"`
	CurrentFeature interface{}  `json:"current_feature,omitempty"`
}
