// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentsession type in the database.
	Label = "agent_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldLastActivity holds the string denoting the last_activity field in the database.
	FieldLastActivity = "last_activity"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldEventCount holds the string denoting the event_count field in the database.
	FieldEventCount = "event_count"
	// FieldIsSubagent holds the string denoting the is_subagent field in the database.
	FieldIsSubagent = "is_subagent"
	// FieldStartCommit holds the string denoting the start_commit field in the database.
	FieldStartCommit = "start_commit"
	// FieldActiveFeatureID holds the string denoting the active_feature_id field in the database.
	FieldActiveFeatureID = "active_feature_id"
	// FieldClassifiedAt holds the string denoting the classified_at field in the database.
	FieldClassifiedAt = "classified_at"
	// FieldClassificationSource holds the string denoting the classification_source field in the database.
	FieldClassificationSource = "classification_source"
	// FieldLastPrompt holds the string denoting the last_prompt field in the database.
	FieldLastPrompt = "last_prompt"
	// FieldNudgesShown holds the string denoting the nudges_shown field in the database.
	FieldNudgesShown = "nudges_shown"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldContinuedFromID holds the string denoting the continued_from_id field in the database.
	FieldContinuedFromID = "continued_from_id"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeContinuedFrom holds the string denoting the continued_from edge name in mutations.
	EdgeContinuedFrom = "continued_from"
	// EdgeContinuations holds the string denoting the continuations edge name in mutations.
	EdgeContinuations = "continuations"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeCommits holds the string denoting the commits edge name in mutations.
	EdgeCommits = "commits"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// HookEventFieldID holds the string denoting the ID field of the HookEvent.
	HookEventFieldID = "event_id"
	// CommitFieldID holds the string denoting the ID field of the Commit.
	CommitFieldID = "commit_hash"
	// Table holds the table name of the agentsession in the database.
	Table = "agent_sessions"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "agent_sessions"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// ContinuedFromTable is the table that holds the continued_from relation/edge.
	ContinuedFromTable = "agent_sessions"
	// ContinuedFromColumn is the table column denoting the continued_from relation/edge.
	ContinuedFromColumn = "continued_from_id"
	// ContinuationsTable is the table that holds the continuations relation/edge.
	ContinuationsTable = "agent_sessions"
	// ContinuationsColumn is the table column denoting the continuations relation/edge.
	ContinuationsColumn = "continued_from_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "hook_events"
	// EventsInverseTable is the table name for the HookEvent entity.
	// It exists in this package in order to avoid circular dependency with the "hookevent" package.
	EventsInverseTable = "hook_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "session_id"
	// CommitsTable is the table that holds the commits relation/edge.
	CommitsTable = "commits"
	// CommitsInverseTable is the table name for the Commit entity.
	// It exists in this package in order to avoid circular dependency with the "commit" package.
	CommitsInverseTable = "commits"
	// CommitsColumn is the table column denoting the commits relation/edge.
	CommitsColumn = "session_id"
)

// Columns holds all SQL columns for agentsession fields.
var Columns = []string{
	FieldID,
	FieldAgent,
	FieldStatus,
	FieldStartedAt,
	FieldLastActivity,
	FieldEndedAt,
	FieldEventCount,
	FieldIsSubagent,
	FieldStartCommit,
	FieldActiveFeatureID,
	FieldClassifiedAt,
	FieldClassificationSource,
	FieldLastPrompt,
	FieldNudgesShown,
	FieldProjectID,
	FieldContinuedFromID,
}

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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultLastActivity holds the default value on creation for the "last_activity" field.
	DefaultLastActivity func() time.Time
	// DefaultEventCount holds the default value on creation for the "event_count" field.
	DefaultEventCount int
	// DefaultIsSubagent holds the default value on creation for the "is_subagent" field.
	DefaultIsSubagent bool
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
	StatusStale  Status = "stale"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusEnded, StatusStale:
		return nil
	default:
		return fmt.Errorf("agentsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByLastActivity orders the results by the last_activity field.
func ByLastActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivity, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByEventCount orders the results by the event_count field.
func ByEventCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventCount, opts...).ToFunc()
}

// ByIsSubagent orders the results by the is_subagent field.
func ByIsSubagent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSubagent, opts...).ToFunc()
}

// ByStartCommit orders the results by the start_commit field.
func ByStartCommit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartCommit, opts...).ToFunc()
}

// ByActiveFeatureID orders the results by the active_feature_id field.
func ByActiveFeatureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveFeatureID, opts...).ToFunc()
}

// ByClassifiedAt orders the results by the classified_at field.
func ByClassifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassifiedAt, opts...).ToFunc()
}

// ByClassificationSource orders the results by the classification_source field.
func ByClassificationSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassificationSource, opts...).ToFunc()
}

// ByLastPrompt orders the results by the last_prompt field.
func ByLastPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPrompt, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByContinuedFromID orders the results by the continued_from_id field.
func ByContinuedFromID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContinuedFromID, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByContinuedFromField orders the results by continued_from field.
func ByContinuedFromField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContinuedFromStep(), sql.OrderByField(field, opts...))
	}
}

// ByContinuationsCount orders the results by continuations count.
func ByContinuationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContinuationsStep(), opts...)
	}
}

// ByContinuations orders the results by continuations terms.
func ByContinuations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContinuationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCommitsCount orders the results by commits count.
func ByCommitsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCommitsStep(), opts...)
	}
}

// ByCommits orders the results by commits terms.
func ByCommits(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommitsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newContinuedFromStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContinuedFromTable, ContinuedFromColumn),
	)
}
func newContinuationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContinuationsTable, ContinuationsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, HookEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newCommitsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommitsInverseTable, CommitFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommitsTable, CommitsColumn),
	)
}
