package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StatusEvent holds the schema definition for the StatusEvent entity.
// Append-only audit trail of feature status transitions; the feature's
// status column mirrors the most recent row.
type StatusEvent struct {
	ent.Schema
}

// Fields of the StatusEvent.
func (StatusEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("status_event_id").
			Unique().
			Immutable(),
		field.String("from_status").
			Immutable(),
		field.String("to_status").
			Immutable(),
		field.Time("at").
			Default(time.Now).
			Immutable(),
		field.String("by").
			Immutable().
			Comment("Actor token, e.g. 'start:claude-code' or 'auto:first_activity:<event-id>'"),
		field.String("session_id").
			Optional().
			Nillable().
			Immutable(),
		field.Text("reason").
			Optional().
			Nillable().
			Immutable(),
		field.String("feature_id").
			Immutable(),
	}
}

// Edges of the StatusEvent.
func (StatusEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("feature", Feature.Type).
			Ref("status_events").
			Field("feature_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StatusEvent.
func (StatusEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("feature_id", "at"),
	}
}
