package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Insight holds the schema definition for the Insight entity.
// Long-lived learnings surfaced during work; effectiveness_score is
// helpful_count/feedback_count, recomputed on every feedback write.
type Insight struct {
	ent.Schema
}

// Fields of the Insight.
func (Insight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("insight_id").
			Unique().
			Immutable(),
		field.Text("description"),
		field.Enum("pattern_type").
			Values("solution", "anti_pattern", "best_practice", "tool_usage"),
		field.JSON("tags", []string{}).
			Optional(),
		field.Int("usage_count").
			Default(0),
		field.Float("effectiveness_score").
			Optional().
			Nillable().
			Min(0).
			Max(1),
		field.Int("feedback_count").
			Default(0),
		field.Int("helpful_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("feature_id").
			Optional().
			Nillable(),
	}
}

// Edges of the Insight.
func (Insight) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("feature", Feature.Type).
			Ref("insights").
			Field("feature_id").
			Unique(),
	}
}

// Indexes of the Insight.
func (Insight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pattern_type"),
		index.Fields("created_at"),
	}
}
