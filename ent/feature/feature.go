// Code generated by ent, DO NOT EDIT.

package feature

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the feature type in the database.
	Label = "feature"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "feature_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldFilePatterns holds the string denoting the file_patterns field in the database.
	FieldFilePatterns = "file_patterns"
	// FieldBranchHint holds the string denoting the branch_hint field in the database.
	FieldBranchHint = "branch_hint"
	// FieldWorkCount holds the string denoting the work_count field in the database.
	FieldWorkCount = "work_count"
	// FieldAssignedAgent holds the string denoting the assigned_agent field in the database.
	FieldAssignedAgent = "assigned_agent"
	// FieldClaimingSessionID holds the string denoting the claiming_session_id field in the database.
	FieldClaimingSessionID = "claiming_session_id"
	// FieldClaimingAgent holds the string denoting the claiming_agent field in the database.
	FieldClaimingAgent = "claiming_agent"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldBlockReason holds the string denoting the block_reason field in the database.
	FieldBlockReason = "block_reason"
	// FieldIsPrimary holds the string denoting the is_primary field in the database.
	FieldIsPrimary = "is_primary"
	// FieldIsSessionWork holds the string denoting the is_session_work field in the database.
	FieldIsSessionWork = "is_session_work"
	// FieldCompletionCriteria holds the string denoting the completion_criteria field in the database.
	FieldCompletionCriteria = "completion_criteria"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeStatusEvents holds the string denoting the status_events edge name in mutations.
	EdgeStatusEvents = "status_events"
	// EdgeInsights holds the string denoting the insights edge name in mutations.
	EdgeInsights = "insights"
	// EdgeCommits holds the string denoting the commits edge name in mutations.
	EdgeCommits = "commits"
	// EdgeOutgoingDeps holds the string denoting the outgoing_deps edge name in mutations.
	EdgeOutgoingDeps = "outgoing_deps"
	// EdgeIncomingDeps holds the string denoting the incoming_deps edge name in mutations.
	EdgeIncomingDeps = "incoming_deps"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// StepFieldID holds the string denoting the ID field of the Step.
	StepFieldID = "step_id"
	// StatusEventFieldID holds the string denoting the ID field of the StatusEvent.
	StatusEventFieldID = "status_event_id"
	// InsightFieldID holds the string denoting the ID field of the Insight.
	InsightFieldID = "insight_id"
	// CommitFieldID holds the string denoting the ID field of the Commit.
	CommitFieldID = "commit_hash"
	// FeatureDependencyFieldID holds the string denoting the ID field of the FeatureDependency.
	FeatureDependencyFieldID = "dependency_id"
	// HookEventFieldID holds the string denoting the ID field of the HookEvent.
	HookEventFieldID = "event_id"
	// Table holds the table name of the feature in the database.
	Table = "features"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "features"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "features"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "features"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "steps"
	// StepsInverseTable is the table name for the Step entity.
	// It exists in this package in order to avoid circular dependency with the "step" package.
	StepsInverseTable = "steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "feature_id"
	// StatusEventsTable is the table that holds the status_events relation/edge.
	StatusEventsTable = "status_events"
	// StatusEventsInverseTable is the table name for the StatusEvent entity.
	// It exists in this package in order to avoid circular dependency with the "statusevent" package.
	StatusEventsInverseTable = "status_events"
	// StatusEventsColumn is the table column denoting the status_events relation/edge.
	StatusEventsColumn = "feature_id"
	// InsightsTable is the table that holds the insights relation/edge.
	InsightsTable = "insights"
	// InsightsInverseTable is the table name for the Insight entity.
	// It exists in this package in order to avoid circular dependency with the "insight" package.
	InsightsInverseTable = "insights"
	// InsightsColumn is the table column denoting the insights relation/edge.
	InsightsColumn = "feature_id"
	// CommitsTable is the table that holds the commits relation/edge.
	CommitsTable = "commits"
	// CommitsInverseTable is the table name for the Commit entity.
	// It exists in this package in order to avoid circular dependency with the "commit" package.
	CommitsInverseTable = "commits"
	// CommitsColumn is the table column denoting the commits relation/edge.
	CommitsColumn = "feature_id"
	// OutgoingDepsTable is the table that holds the outgoing_deps relation/edge.
	OutgoingDepsTable = "feature_dependencies"
	// OutgoingDepsInverseTable is the table name for the FeatureDependency entity.
	// It exists in this package in order to avoid circular dependency with the "featuredependency" package.
	OutgoingDepsInverseTable = "feature_dependencies"
	// OutgoingDepsColumn is the table column denoting the outgoing_deps relation/edge.
	OutgoingDepsColumn = "source_id"
	// IncomingDepsTable is the table that holds the incoming_deps relation/edge.
	IncomingDepsTable = "feature_dependencies"
	// IncomingDepsInverseTable is the table name for the FeatureDependency entity.
	// It exists in this package in order to avoid circular dependency with the "featuredependency" package.
	IncomingDepsInverseTable = "feature_dependencies"
	// IncomingDepsColumn is the table column denoting the incoming_deps relation/edge.
	IncomingDepsColumn = "target_id"
	// EventsTable is the table that holds the events relation/edge. The primary key declared below.
	EventsTable = "hook_event_features"
	// EventsInverseTable is the table name for the HookEvent entity.
	// It exists in this package in order to avoid circular dependency with the "hookevent" package.
	EventsInverseTable = "hook_events"
)

// Columns holds all SQL columns for feature fields.
var Columns = []string{
	FieldID,
	FieldDescription,
	FieldCategory,
	FieldType,
	FieldStatus,
	FieldPriority,
	FieldFilePatterns,
	FieldBranchHint,
	FieldWorkCount,
	FieldAssignedAgent,
	FieldClaimingSessionID,
	FieldClaimingAgent,
	FieldClaimedAt,
	FieldBlockReason,
	FieldIsPrimary,
	FieldIsSessionWork,
	FieldCompletionCriteria,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
	FieldProjectID,
	FieldParentID,
}

var (
	// EventsPrimaryKey and EventsColumn2 are the table columns denoting the
	// primary key for the events relation (M2M).
	EventsPrimaryKey = []string{"hook_event_id", "feature_id"}
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultWorkCount holds the default value on creation for the "work_count" field.
	DefaultWorkCount int
	// DefaultIsPrimary holds the default value on creation for the "is_primary" field.
	DefaultIsPrimary bool
	// DefaultIsSessionWork holds the default value on creation for the "is_session_work" field.
	DefaultIsSessionWork bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// TypeFeature is the default value of the Type enum.
const DefaultType = TypeFeature

// Type values.
const (
	TypeFeature Type = "feature"
	TypeBug     Type = "bug"
	TypeSpike   Type = "spike"
	TypeChore   Type = "chore"
	TypeHotfix  Type = "hotfix"
	TypeEpic    Type = "epic"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeFeature, TypeBug, TypeSpike, TypeChore, TypeHotfix, TypeEpic:
		return nil
	default:
		return fmt.Errorf("feature: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusComplete   Status = "complete"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusBlocked, StatusComplete:
		return nil
	default:
		return fmt.Errorf("feature: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Feature queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByBranchHint orders the results by the branch_hint field.
func ByBranchHint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchHint, opts...).ToFunc()
}

// ByWorkCount orders the results by the work_count field.
func ByWorkCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkCount, opts...).ToFunc()
}

// ByAssignedAgent orders the results by the assigned_agent field.
func ByAssignedAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAgent, opts...).ToFunc()
}

// ByClaimingSessionID orders the results by the claiming_session_id field.
func ByClaimingSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimingSessionID, opts...).ToFunc()
}

// ByClaimingAgent orders the results by the claiming_agent field.
func ByClaimingAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimingAgent, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByBlockReason orders the results by the block_reason field.
func ByBlockReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockReason, opts...).ToFunc()
}

// ByIsPrimary orders the results by the is_primary field.
func ByIsPrimary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPrimary, opts...).ToFunc()
}

// ByIsSessionWork orders the results by the is_session_work field.
func ByIsSessionWork(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSessionWork, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStatusEventsCount orders the results by status_events count.
func ByStatusEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatusEventsStep(), opts...)
	}
}

// ByStatusEvents orders the results by status_events terms.
func ByStatusEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInsightsCount orders the results by insights count.
func ByInsightsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInsightsStep(), opts...)
	}
}

// ByInsights orders the results by insights terms.
func ByInsights(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInsightsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByOutgoingDepsCount orders the results by outgoing_deps count.
func ByOutgoingDepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutgoingDepsStep(), opts...)
	}
}

// ByOutgoingDeps orders the results by outgoing_deps terms.
func ByOutgoingDeps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutgoingDepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByIncomingDepsCount orders the results by incoming_deps count.
func ByIncomingDepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIncomingDepsStep(), opts...)
	}
}

// ByIncomingDeps orders the results by incoming_deps terms.
func ByIncomingDeps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIncomingDepsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, StepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newStatusEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusEventsInverseTable, StatusEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatusEventsTable, StatusEventsColumn),
	)
}
func newInsightsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InsightsInverseTable, InsightFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InsightsTable, InsightsColumn),
	)
}
func newCommitsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommitsInverseTable, CommitFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommitsTable, CommitsColumn),
	)
}
func newOutgoingDepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutgoingDepsInverseTable, FeatureDependencyFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutgoingDepsTable, OutgoingDepsColumn),
	)
}
func newIncomingDepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IncomingDepsInverseTable, FeatureDependencyFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IncomingDepsTable, IncomingDepsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, HookEventFieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, EventsTable, EventsPrimaryKey...),
	)
}
