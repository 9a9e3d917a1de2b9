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
	"github.com/ijoka-ai/ijoka/ent/insight"
)

// Insight is the model entity for the Insight schema.
type Insight struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// PatternType holds the value of the "pattern_type" field.
	PatternType insight.PatternType `json:"pattern_type,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// UsageCount holds the value of the "usage_count" field.
	UsageCount int `json:"usage_count,omitempty"`
	// EffectivenessScore holds the value of the "effectiveness_score" field.
	EffectivenessScore *float64 `json:"effectiveness_score,omitempty"`
	// FeedbackCount holds the value of the "feedback_count" field.
	FeedbackCount int `json:"feedback_count,omitempty"`
	// HelpfulCount holds the value of the "helpful_count" field.
	HelpfulCount int `json:"helpful_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FeatureID holds the value of the "feature_id" field.
	FeatureID *string `json:"feature_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InsightQuery when eager-loading is set.
	Edges        InsightEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InsightEdges holds the relations/edges for other nodes in the graph.
type InsightEdges struct {
	// Feature holds the value of the feature edge.
	Feature *Feature `json:"feature,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FeatureOrErr returns the Feature value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InsightEdges) FeatureOrErr() (*Feature, error) {
	if e.Feature != nil {
		return e.Feature, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: feature.Label}
	}
	return nil, &NotLoadedError{edge: "feature"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Insight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insight.FieldTags:
			values[i] = new([]byte)
		case insight.FieldEffectivenessScore:
			values[i] = new(sql.NullFloat64)
		case insight.FieldUsageCount, insight.FieldFeedbackCount, insight.FieldHelpfulCount:
			values[i] = new(sql.NullInt64)
		case insight.FieldID, insight.FieldDescription, insight.FieldPatternType, insight.FieldFeatureID:
			values[i] = new(sql.NullString)
		case insight.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Insight fields.
func (_m *Insight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case insight.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case insight.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case insight.FieldPatternType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_type", values[i])
			} else if value.Valid {
				_m.PatternType = insight.PatternType(value.String)
			}
		case insight.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case insight.FieldUsageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field usage_count", values[i])
			} else if value.Valid {
				_m.UsageCount = int(value.Int64)
			}
		case insight.FieldEffectivenessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field effectiveness_score", values[i])
			} else if value.Valid {
				_m.EffectivenessScore = new(float64)
				*_m.EffectivenessScore = value.Float64
			}
		case insight.FieldFeedbackCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_count", values[i])
			} else if value.Valid {
				_m.FeedbackCount = int(value.Int64)
			}
		case insight.FieldHelpfulCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field helpful_count", values[i])
			} else if value.Valid {
				_m.HelpfulCount = int(value.Int64)
			}
		case insight.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case insight.FieldFeatureID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature_id", values[i])
			} else if value.Valid {
				_m.FeatureID = new(string)
				*_m.FeatureID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Insight.
// This includes values selected through modifiers, order, etc.
func (_m *Insight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFeature queries the "feature" edge of the Insight entity.
func (_m *Insight) QueryFeature() *FeatureQuery {
	return NewInsightClient(_m.config).QueryFeature(_m)
}

// Update returns a builder for updating this Insight.
// Note that you need to call Insight.Unwrap() before calling this method if this Insight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Insight) Update() *InsightUpdateOne {
	return NewInsightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Insight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Insight) Unwrap() *Insight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Insight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Insight) String() string {
	var builder strings.Builder
	builder.WriteString("Insight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("pattern_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatternType))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("usage_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageCount))
	builder.WriteString(", ")
	if v := _m.EffectivenessScore; v != nil {
		builder.WriteString("effectiveness_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("feedback_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedbackCount))
	builder.WriteString(", ")
	builder.WriteString("helpful_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.HelpfulCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FeatureID; v != nil {
		builder.WriteString("feature_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Insights is a parsable slice of Insight.
type Insights []*Insight
