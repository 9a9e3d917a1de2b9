// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/project"
)

// Feature is the model entity for the Feature schema.
type Feature struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Free-form grouping (e.g. 'authentication', 'infrastructure')
	Category string `json:"category,omitempty"`
	// Type holds the value of the "type" field.
	Type feature.Type `json:"type,omitempty"`
	// Status holds the value of the "status" field.
	Status feature.Status `json:"status,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// Globs matched against event file paths during attribution
	FilePatterns []string `json:"file_patterns,omitempty"`
	// BranchHint holds the value of the "branch_hint" field.
	BranchHint *string `json:"branch_hint,omitempty"`
	// Number of events linked to this feature
	WorkCount int `json:"work_count,omitempty"`
	// AssignedAgent holds the value of the "assigned_agent" field.
	AssignedAgent *string `json:"assigned_agent,omitempty"`
	// ClaimingSessionID holds the value of the "claiming_session_id" field.
	ClaimingSessionID *string `json:"claiming_session_id,omitempty"`
	// ClaimingAgent holds the value of the "claiming_agent" field.
	ClaimingAgent *string `json:"claiming_agent,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// BlockReason holds the value of the "block_reason" field.
	BlockReason *string `json:"block_reason,omitempty"`
	// Default attribution target on scoring ties; at most one per project
	IsPrimary bool `json:"is_primary,omitempty"`
	// Sentinel feature receiving unattributed events; at most one per project
	IsSessionWork bool `json:"is_session_work,omitempty"`
	// Auto-completion rule: {type: build|test|lint|any_success|work_count|manual, count?, command_pattern?}
	CompletionCriteria map[string]interface{} `json:"completion_criteria,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// ParentID holds the value of the "parent_id" field.
	ParentID *string `json:"parent_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FeatureQuery when eager-loading is set.
	Edges        FeatureEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FeatureEdges holds the relations/edges for other nodes in the graph.
type FeatureEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Parent holds the value of the parent edge.
	Parent *Feature `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*Feature `json:"children,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*Step `json:"steps,omitempty"`
	// StatusEvents holds the value of the status_events edge.
	StatusEvents []*StatusEvent `json:"status_events,omitempty"`
	// Insights holds the value of the insights edge.
	Insights []*Insight `json:"insights,omitempty"`
	// Commits holds the value of the commits edge.
	Commits []*Commit `json:"commits,omitempty"`
	// OutgoingDeps holds the value of the outgoing_deps edge.
	OutgoingDeps []*FeatureDependency `json:"outgoing_deps,omitempty"`
	// IncomingDeps holds the value of the incoming_deps edge.
	IncomingDeps []*FeatureDependency `json:"incoming_deps,omitempty"`
	// Events holds the value of the events edge.
	Events []*HookEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [10]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeatureEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeatureEdges) ParentOrErr() (*Feature, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: feature.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) ChildrenOrErr() ([]*Feature, error) {
	if e.loadedTypes[2] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) StepsOrErr() ([]*Step, error) {
	if e.loadedTypes[3] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// StatusEventsOrErr returns the StatusEvents value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) StatusEventsOrErr() ([]*StatusEvent, error) {
	if e.loadedTypes[4] {
		return e.StatusEvents, nil
	}
	return nil, &NotLoadedError{edge: "status_events"}
}

// InsightsOrErr returns the Insights value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) InsightsOrErr() ([]*Insight, error) {
	if e.loadedTypes[5] {
		return e.Insights, nil
	}
	return nil, &NotLoadedError{edge: "insights"}
}

// CommitsOrErr returns the Commits value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) CommitsOrErr() ([]*Commit, error) {
	if e.loadedTypes[6] {
		return e.Commits, nil
	}
	return nil, &NotLoadedError{edge: "commits"}
}

// OutgoingDepsOrErr returns the OutgoingDeps value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) OutgoingDepsOrErr() ([]*FeatureDependency, error) {
	if e.loadedTypes[7] {
		return e.OutgoingDeps, nil
	}
	return nil, &NotLoadedError{edge: "outgoing_deps"}
}

// IncomingDepsOrErr returns the IncomingDeps value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) IncomingDepsOrErr() ([]*FeatureDependency, error) {
	if e.loadedTypes[8] {
		return e.IncomingDeps, nil
	}
	return nil, &NotLoadedError{edge: "incoming_deps"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e FeatureEdges) EventsOrErr() ([]*HookEvent, error) {
	if e.loadedTypes[9] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Feature) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case feature.FieldFilePatterns, feature.FieldCompletionCriteria:
			values[i] = new([]byte)
		case feature.FieldIsPrimary, feature.FieldIsSessionWork:
			values[i] = new(sql.NullBool)
		case feature.FieldPriority, feature.FieldWorkCount:
			values[i] = new(sql.NullInt64)
		case feature.FieldID, feature.FieldDescription, feature.FieldCategory, feature.FieldType, feature.FieldStatus, feature.FieldBranchHint, feature.FieldAssignedAgent, feature.FieldClaimingSessionID, feature.FieldClaimingAgent, feature.FieldBlockReason, feature.FieldProjectID, feature.FieldParentID:
			values[i] = new(sql.NullString)
		case feature.FieldClaimedAt, feature.FieldCreatedAt, feature.FieldUpdatedAt, feature.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Feature fields.
func (_m *Feature) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case feature.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case feature.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case feature.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case feature.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = feature.Type(value.String)
			}
		case feature.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = feature.Status(value.String)
			}
		case feature.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case feature.FieldFilePatterns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field file_patterns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FilePatterns); err != nil {
					return fmt.Errorf("unmarshal field file_patterns: %w", err)
				}
			}
		case feature.FieldBranchHint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_hint", values[i])
			} else if value.Valid {
				_m.BranchHint = new(string)
				*_m.BranchHint = value.String
			}
		case feature.FieldWorkCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field work_count", values[i])
			} else if value.Valid {
				_m.WorkCount = int(value.Int64)
			}
		case feature.FieldAssignedAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_agent", values[i])
			} else if value.Valid {
				_m.AssignedAgent = new(string)
				*_m.AssignedAgent = value.String
			}
		case feature.FieldClaimingSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claiming_session_id", values[i])
			} else if value.Valid {
				_m.ClaimingSessionID = new(string)
				*_m.ClaimingSessionID = value.String
			}
		case feature.FieldClaimingAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claiming_agent", values[i])
			} else if value.Valid {
				_m.ClaimingAgent = new(string)
				*_m.ClaimingAgent = value.String
			}
		case feature.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case feature.FieldBlockReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field block_reason", values[i])
			} else if value.Valid {
				_m.BlockReason = new(string)
				*_m.BlockReason = value.String
			}
		case feature.FieldIsPrimary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_primary", values[i])
			} else if value.Valid {
				_m.IsPrimary = value.Bool
			}
		case feature.FieldIsSessionWork:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_session_work", values[i])
			} else if value.Valid {
				_m.IsSessionWork = value.Bool
			}
		case feature.FieldCompletionCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completion_criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletionCriteria); err != nil {
					return fmt.Errorf("unmarshal field completion_criteria: %w", err)
				}
			}
		case feature.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case feature.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case feature.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case feature.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case feature.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Feature.
// This includes values selected through modifiers, order, etc.
func (_m *Feature) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Feature entity.
func (_m *Feature) QueryProject() *ProjectQuery {
	return NewFeatureClient(_m.config).QueryProject(_m)
}

// QueryParent queries the "parent" edge of the Feature entity.
func (_m *Feature) QueryParent() *FeatureQuery {
	return NewFeatureClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the Feature entity.
func (_m *Feature) QueryChildren() *FeatureQuery {
	return NewFeatureClient(_m.config).QueryChildren(_m)
}

// QuerySteps queries the "steps" edge of the Feature entity.
func (_m *Feature) QuerySteps() *StepQuery {
	return NewFeatureClient(_m.config).QuerySteps(_m)
}

// QueryStatusEvents queries the "status_events" edge of the Feature entity.
func (_m *Feature) QueryStatusEvents() *StatusEventQuery {
	return NewFeatureClient(_m.config).QueryStatusEvents(_m)
}

// QueryInsights queries the "insights" edge of the Feature entity.
func (_m *Feature) QueryInsights() *InsightQuery {
	return NewFeatureClient(_m.config).QueryInsights(_m)
}

// QueryCommits queries the "commits" edge of the Feature entity.
func (_m *Feature) QueryCommits() *CommitQuery {
	return NewFeatureClient(_m.config).QueryCommits(_m)
}

// QueryOutgoingDeps queries the "outgoing_deps" edge of the Feature entity.
func (_m *Feature) QueryOutgoingDeps() *FeatureDependencyQuery {
	return NewFeatureClient(_m.config).QueryOutgoingDeps(_m)
}

// QueryIncomingDeps queries the "incoming_deps" edge of the Feature entity.
func (_m *Feature) QueryIncomingDeps() *FeatureDependencyQuery {
	return NewFeatureClient(_m.config).QueryIncomingDeps(_m)
}

// QueryEvents queries the "events" edge of the Feature entity.
func (_m *Feature) QueryEvents() *HookEventQuery {
	return NewFeatureClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Feature.
// Note that you need to call Feature.Unwrap() before calling this method if this Feature
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Feature) Update() *FeatureUpdateOne {
	return NewFeatureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Feature entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Feature) Unwrap() *Feature {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Feature is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Feature) String() string {
	var builder strings.Builder
	builder.WriteString("Feature(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("file_patterns=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilePatterns))
	builder.WriteString(", ")
	if v := _m.BranchHint; v != nil {
		builder.WriteString("branch_hint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("work_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkCount))
	builder.WriteString(", ")
	if v := _m.AssignedAgent; v != nil {
		builder.WriteString("assigned_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimingSessionID; v != nil {
		builder.WriteString("claiming_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimingAgent; v != nil {
		builder.WriteString("claiming_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BlockReason; v != nil {
		builder.WriteString("block_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_primary=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrimary))
	builder.WriteString(", ")
	builder.WriteString("is_session_work=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSessionWork))
	builder.WriteString(", ")
	builder.WriteString("completion_criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionCriteria))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Features is a parsable slice of Feature.
type Features []*Feature
