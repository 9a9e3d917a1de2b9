// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
)

// FeatureDependency is the model entity for the FeatureDependency schema.
type FeatureDependency struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind featuredependency.Kind `json:"kind,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// The dependent feature
	SourceID string `json:"source_id,omitempty"`
	// The feature depended upon
	TargetID string `json:"target_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FeatureDependencyQuery when eager-loading is set.
	Edges        FeatureDependencyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FeatureDependencyEdges holds the relations/edges for other nodes in the graph.
type FeatureDependencyEdges struct {
	// Source holds the value of the source edge.
	Source *Feature `json:"source,omitempty"`
	// Target holds the value of the target edge.
	Target *Feature `json:"target,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SourceOrErr returns the Source value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeatureDependencyEdges) SourceOrErr() (*Feature, error) {
	if e.Source != nil {
		return e.Source, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: feature.Label}
	}
	return nil, &NotLoadedError{edge: "source"}
}

// TargetOrErr returns the Target value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeatureDependencyEdges) TargetOrErr() (*Feature, error) {
	if e.Target != nil {
		return e.Target, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: feature.Label}
	}
	return nil, &NotLoadedError{edge: "target"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FeatureDependency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case featuredependency.FieldID, featuredependency.FieldKind, featuredependency.FieldSourceID, featuredependency.FieldTargetID:
			values[i] = new(sql.NullString)
		case featuredependency.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FeatureDependency fields.
func (_m *FeatureDependency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case featuredependency.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case featuredependency.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = featuredependency.Kind(value.String)
			}
		case featuredependency.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case featuredependency.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case featuredependency.FieldTargetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_id", values[i])
			} else if value.Valid {
				_m.TargetID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FeatureDependency.
// This includes values selected through modifiers, order, etc.
func (_m *FeatureDependency) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySource queries the "source" edge of the FeatureDependency entity.
func (_m *FeatureDependency) QuerySource() *FeatureQuery {
	return NewFeatureDependencyClient(_m.config).QuerySource(_m)
}

// QueryTarget queries the "target" edge of the FeatureDependency entity.
func (_m *FeatureDependency) QueryTarget() *FeatureQuery {
	return NewFeatureDependencyClient(_m.config).QueryTarget(_m)
}

// Update returns a builder for updating this FeatureDependency.
// Note that you need to call FeatureDependency.Unwrap() before calling this method if this FeatureDependency
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FeatureDependency) Update() *FeatureDependencyUpdateOne {
	return NewFeatureDependencyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FeatureDependency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FeatureDependency) Unwrap() *FeatureDependency {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FeatureDependency is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FeatureDependency) String() string {
	var builder strings.Builder
	builder.WriteString("FeatureDependency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("target_id=")
	builder.WriteString(_m.TargetID)
	builder.WriteByte(')')
	return builder.String()
}

// FeatureDependencies is a parsable slice of FeatureDependency.
type FeatureDependencies []*FeatureDependency
