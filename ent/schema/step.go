package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Step holds the schema definition for the Step entity.
// Steps form the ordered execution plan inside one feature; step_order
// values are a permutation of 0..N-1 after any plan sync.
type Step struct {
	ent.Schema
}

// Fields of the Step.
func (Step) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.Text("description"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "skipped").
			Default("pending"),
		field.Int("step_order"),
		field.JSON("expected_tools", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("feature_id").
			Immutable(),
	}
}

// Edges of the Step.
func (Step) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("feature", Feature.Type).
			Ref("steps").
			Field("feature_id").
			Unique().
			Required().
			Immutable(),
		edge.To("events", HookEvent.Type),
	}
}

// Indexes of the Step.
func (Step) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("feature_id", "step_order"),
		index.Fields("feature_id", "status"),
	}
}
