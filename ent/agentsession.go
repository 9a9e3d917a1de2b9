// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/ent/project"
)

// AgentSession is the model entity for the AgentSession schema.
type AgentSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Agent identifier (e.g. 'claude-code')
	Agent string `json:"agent,omitempty"`
	// Status holds the value of the "status" field.
	Status agentsession.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// Refreshed on every ingested event; drives staleness checks
	LastActivity time.Time `json:"last_activity,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// EventCount holds the value of the "event_count" field.
	EventCount int `json:"event_count,omitempty"`
	// IsSubagent holds the value of the "is_subagent" field.
	IsSubagent bool `json:"is_subagent,omitempty"`
	// Short hash of HEAD when the session started
	StartCommit *string `json:"start_commit,omitempty"`
	// ActiveFeatureID holds the value of the "active_feature_id" field.
	ActiveFeatureID *string `json:"active_feature_id,omitempty"`
	// ClassifiedAt holds the value of the "classified_at" field.
	ClassifiedAt *time.Time `json:"classified_at,omitempty"`
	// How active_feature_id was chosen (prompt_classification, manual_start, ...)
	ClassificationSource *string `json:"classification_source,omitempty"`
	// LastPrompt holds the value of the "last_prompt" field.
	LastPrompt *string `json:"last_prompt,omitempty"`
	// Nudge keys already surfaced in this session (idempotence)
	NudgesShown []string `json:"nudges_shown,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// ContinuedFromID holds the value of the "continued_from_id" field.
	ContinuedFromID *string `json:"continued_from_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentSessionQuery when eager-loading is set.
	Edges        AgentSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentSessionEdges holds the relations/edges for other nodes in the graph.
type AgentSessionEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// ContinuedFrom holds the value of the continued_from edge.
	ContinuedFrom *AgentSession `json:"continued_from,omitempty"`
	// Continuations holds the value of the continuations edge.
	Continuations []*AgentSession `json:"continuations,omitempty"`
	// Events holds the value of the events edge.
	Events []*HookEvent `json:"events,omitempty"`
	// Commits holds the value of the commits edge.
	Commits []*Commit `json:"commits,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentSessionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// ContinuedFromOrErr returns the ContinuedFrom value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentSessionEdges) ContinuedFromOrErr() (*AgentSession, error) {
	if e.ContinuedFrom != nil {
		return e.ContinuedFrom, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agentsession.Label}
	}
	return nil, &NotLoadedError{edge: "continued_from"}
}

// ContinuationsOrErr returns the Continuations value or an error if the edge
// was not loaded in eager-loading.
func (e AgentSessionEdges) ContinuationsOrErr() ([]*AgentSession, error) {
	if e.loadedTypes[2] {
		return e.Continuations, nil
	}
	return nil, &NotLoadedError{edge: "continuations"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e AgentSessionEdges) EventsOrErr() ([]*HookEvent, error) {
	if e.loadedTypes[3] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// CommitsOrErr returns the Commits value or an error if the edge
// was not loaded in eager-loading.
func (e AgentSessionEdges) CommitsOrErr() ([]*Commit, error) {
	if e.loadedTypes[4] {
		return e.Commits, nil
	}
	return nil, &NotLoadedError{edge: "commits"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentsession.FieldNudgesShown:
			values[i] = new([]byte)
		case agentsession.FieldIsSubagent:
			values[i] = new(sql.NullBool)
		case agentsession.FieldEventCount:
			values[i] = new(sql.NullInt64)
		case agentsession.FieldID, agentsession.FieldAgent, agentsession.FieldStatus, agentsession.FieldStartCommit, agentsession.FieldActiveFeatureID, agentsession.FieldClassificationSource, agentsession.FieldLastPrompt, agentsession.FieldProjectID, agentsession.FieldContinuedFromID:
			values[i] = new(sql.NullString)
		case agentsession.FieldStartedAt, agentsession.FieldLastActivity, agentsession.FieldEndedAt, agentsession.FieldClassifiedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentSession fields.
func (_m *AgentSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentsession.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = value.String
			}
		case agentsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentsession.Status(value.String)
			}
		case agentsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case agentsession.FieldLastActivity:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity", values[i])
			} else if value.Valid {
				_m.LastActivity = value.Time
			}
		case agentsession.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case agentsession.FieldEventCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_count", values[i])
			} else if value.Valid {
				_m.EventCount = int(value.Int64)
			}
		case agentsession.FieldIsSubagent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_subagent", values[i])
			} else if value.Valid {
				_m.IsSubagent = value.Bool
			}
		case agentsession.FieldStartCommit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_commit", values[i])
			} else if value.Valid {
				_m.StartCommit = new(string)
				*_m.StartCommit = value.String
			}
		case agentsession.FieldActiveFeatureID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_feature_id", values[i])
			} else if value.Valid {
				_m.ActiveFeatureID = new(string)
				*_m.ActiveFeatureID = value.String
			}
		case agentsession.FieldClassifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field classified_at", values[i])
			} else if value.Valid {
				_m.ClassifiedAt = new(time.Time)
				*_m.ClassifiedAt = value.Time
			}
		case agentsession.FieldClassificationSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification_source", values[i])
			} else if value.Valid {
				_m.ClassificationSource = new(string)
				*_m.ClassificationSource = value.String
			}
		case agentsession.FieldLastPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_prompt", values[i])
			} else if value.Valid {
				_m.LastPrompt = new(string)
				*_m.LastPrompt = value.String
			}
		case agentsession.FieldNudgesShown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field nudges_shown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NudgesShown); err != nil {
					return fmt.Errorf("unmarshal field nudges_shown: %w", err)
				}
			}
		case agentsession.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case agentsession.FieldContinuedFromID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field continued_from_id", values[i])
			} else if value.Valid {
				_m.ContinuedFromID = new(string)
				*_m.ContinuedFromID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentSession.
// This includes values selected through modifiers, order, etc.
func (_m *AgentSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the AgentSession entity.
func (_m *AgentSession) QueryProject() *ProjectQuery {
	return NewAgentSessionClient(_m.config).QueryProject(_m)
}

// QueryContinuedFrom queries the "continued_from" edge of the AgentSession entity.
func (_m *AgentSession) QueryContinuedFrom() *AgentSessionQuery {
	return NewAgentSessionClient(_m.config).QueryContinuedFrom(_m)
}

// QueryContinuations queries the "continuations" edge of the AgentSession entity.
func (_m *AgentSession) QueryContinuations() *AgentSessionQuery {
	return NewAgentSessionClient(_m.config).QueryContinuations(_m)
}

// QueryEvents queries the "events" edge of the AgentSession entity.
func (_m *AgentSession) QueryEvents() *HookEventQuery {
	return NewAgentSessionClient(_m.config).QueryEvents(_m)
}

// QueryCommits queries the "commits" edge of the AgentSession entity.
func (_m *AgentSession) QueryCommits() *CommitQuery {
	return NewAgentSessionClient(_m.config).QueryCommits(_m)
}

// Update returns a builder for updating this AgentSession.
// Note that you need to call AgentSession.Unwrap() before calling this method if this AgentSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentSession) Update() *AgentSessionUpdateOne {
	return NewAgentSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentSession) Unwrap() *AgentSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentSession) String() string {
	var builder strings.Builder
	builder.WriteString("AgentSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent=")
	builder.WriteString(_m.Agent)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_activity=")
	builder.WriteString(_m.LastActivity.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("event_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventCount))
	builder.WriteString(", ")
	builder.WriteString("is_subagent=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSubagent))
	builder.WriteString(", ")
	if v := _m.StartCommit; v != nil {
		builder.WriteString("start_commit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActiveFeatureID; v != nil {
		builder.WriteString("active_feature_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClassifiedAt; v != nil {
		builder.WriteString("classified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClassificationSource; v != nil {
		builder.WriteString("classification_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastPrompt; v != nil {
		builder.WriteString("last_prompt=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("nudges_shown=")
	builder.WriteString(fmt.Sprintf("%v", _m.NudgesShown))
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	if v := _m.ContinuedFromID; v != nil {
		builder.WriteString("continued_from_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AgentSessions is a parsable slice of AgentSession.
type AgentSessions []*AgentSession
