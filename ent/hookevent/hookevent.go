// Code generated by ent, DO NOT EDIT.

package hookevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the hookevent type in the database.
	Label = "hook_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSourceAgent holds the string denoting the source_agent field in the database.
	FieldSourceAgent = "source_agent"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeStep holds the string denoting the step edge name in mutations.
	EdgeStep = "step"
	// EdgeFeatures holds the string denoting the features edge name in mutations.
	EdgeFeatures = "features"
	// AgentSessionFieldID holds the string denoting the ID field of the AgentSession.
	AgentSessionFieldID = "session_id"
	// StepFieldID holds the string denoting the ID field of the Step.
	StepFieldID = "step_id"
	// FeatureFieldID holds the string denoting the ID field of the Feature.
	FeatureFieldID = "feature_id"
	// Table holds the table name of the hookevent in the database.
	Table = "hook_events"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "hook_events"
	// SessionInverseTable is the table name for the AgentSession entity.
	// It exists in this package in order to avoid circular dependency with the "agentsession" package.
	SessionInverseTable = "agent_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// StepTable is the table that holds the step relation/edge.
	StepTable = "hook_events"
	// StepInverseTable is the table name for the Step entity.
	// It exists in this package in order to avoid circular dependency with the "step" package.
	StepInverseTable = "steps"
	// StepColumn is the table column denoting the step relation/edge.
	StepColumn = "step_id"
	// FeaturesTable is the table that holds the features relation/edge. The primary key declared below.
	FeaturesTable = "hook_event_features"
	// FeaturesInverseTable is the table name for the Feature entity.
	// It exists in this package in order to avoid circular dependency with the "feature" package.
	FeaturesInverseTable = "features"
)

// Columns holds all SQL columns for hookevent fields.
var Columns = []string{
	FieldID,
	FieldEventType,
	FieldToolName,
	FieldPayload,
	FieldTimestamp,
	FieldSourceAgent,
	FieldSessionID,
	FieldSuccess,
	FieldSummary,
	FieldStepID,
}

var (
	// FeaturesPrimaryKey and FeaturesColumn2 are the table columns denoting the
	// primary key for the features relation (M2M).
	FeaturesPrimaryKey = []string{"hook_event_id", "feature_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	SummaryValidator func(string) error
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeToolCall         EventType = "ToolCall"
	EventTypeUserQuery        EventType = "UserQuery"
	EventTypeAgentStop        EventType = "AgentStop"
	EventTypeSubagentStop     EventType = "SubagentStop"
	EventTypePlanUpdate       EventType = "PlanUpdate"
	EventTypeFeatureCompleted EventType = "FeatureCompleted"
	EventTypeSessionStart     EventType = "SessionStart"
	EventTypeSessionEnd       EventType = "SessionEnd"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeToolCall, EventTypeUserQuery, EventTypeAgentStop, EventTypeSubagentStop, EventTypePlanUpdate, EventTypeFeatureCompleted, EventTypeSessionStart, EventTypeSessionEnd:
		return nil
	default:
		return fmt.Errorf("hookevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the HookEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySourceAgent orders the results by the source_agent field.
func BySourceAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceAgent, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepField orders the results by step field.
func ByStepField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepStep(), sql.OrderByField(field, opts...))
	}
}

// ByFeaturesCount orders the results by features count.
func ByFeaturesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeaturesStep(), opts...)
	}
}

// ByFeatures orders the results by features terms.
func ByFeatures(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeaturesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, AgentSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newStepStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepInverseTable, StepFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
	)
}
func newFeaturesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeaturesInverseTable, FeatureFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, FeaturesTable, FeaturesPrimaryKey...),
	)
}
