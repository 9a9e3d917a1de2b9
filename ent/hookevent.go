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
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/step"
)

// HookEvent is the model entity for the HookEvent schema.
type HookEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType hookevent.EventType `json:"event_type,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// Opaque tool input/response excerpt, capped at ~10 KB on ingress
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SourceAgent holds the value of the "source_agent" field.
	SourceAgent string `json:"source_agent,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID *string `json:"step_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HookEventQuery when eager-loading is set.
	Edges        HookEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HookEventEdges holds the relations/edges for other nodes in the graph.
type HookEventEdges struct {
	// Session holds the value of the session edge.
	Session *AgentSession `json:"session,omitempty"`
	// Step holds the value of the step edge.
	Step *Step `json:"step,omitempty"`
	// Features holds the value of the features edge.
	Features []*Feature `json:"features,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HookEventEdges) SessionOrErr() (*AgentSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// StepOrErr returns the Step value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HookEventEdges) StepOrErr() (*Step, error) {
	if e.Step != nil {
		return e.Step, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: step.Label}
	}
	return nil, &NotLoadedError{edge: "step"}
}

// FeaturesOrErr returns the Features value or an error if the edge
// was not loaded in eager-loading.
func (e HookEventEdges) FeaturesOrErr() ([]*Feature, error) {
	if e.loadedTypes[2] {
		return e.Features, nil
	}
	return nil, &NotLoadedError{edge: "features"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HookEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hookevent.FieldPayload:
			values[i] = new([]byte)
		case hookevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case hookevent.FieldID, hookevent.FieldEventType, hookevent.FieldToolName, hookevent.FieldSourceAgent, hookevent.FieldSessionID, hookevent.FieldSummary, hookevent.FieldStepID:
			values[i] = new(sql.NullString)
		case hookevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HookEvent fields.
func (_m *HookEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hookevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case hookevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = hookevent.EventType(value.String)
			}
		case hookevent.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case hookevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case hookevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case hookevent.FieldSourceAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_agent", values[i])
			} else if value.Valid {
				_m.SourceAgent = value.String
			}
		case hookevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case hookevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case hookevent.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case hookevent.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = new(string)
				*_m.StepID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HookEvent.
// This includes values selected through modifiers, order, etc.
func (_m *HookEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the HookEvent entity.
func (_m *HookEvent) QuerySession() *AgentSessionQuery {
	return NewHookEventClient(_m.config).QuerySession(_m)
}

// QueryStep queries the "step" edge of the HookEvent entity.
func (_m *HookEvent) QueryStep() *StepQuery {
	return NewHookEventClient(_m.config).QueryStep(_m)
}

// QueryFeatures queries the "features" edge of the HookEvent entity.
func (_m *HookEvent) QueryFeatures() *FeatureQuery {
	return NewHookEventClient(_m.config).QueryFeatures(_m)
}

// Update returns a builder for updating this HookEvent.
// Note that you need to call HookEvent.Unwrap() before calling this method if this HookEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HookEvent) Update() *HookEventUpdateOne {
	return NewHookEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HookEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HookEvent) Unwrap() *HookEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HookEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HookEvent) String() string {
	var builder strings.Builder
	builder.WriteString("HookEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source_agent=")
	builder.WriteString(_m.SourceAgent)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	if v := _m.StepID; v != nil {
		builder.WriteString("step_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// HookEvents is a parsable slice of HookEvent.
type HookEvents []*HookEvent
