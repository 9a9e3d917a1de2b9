package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeatureDependency holds the schema definition for a directed dependency
// between two features. kind=blocks gates claim ordering (a pending feature
// with incomplete blocking dependencies is skipped by next-feature
// selection); kind=related is informational only.
type FeatureDependency struct {
	ent.Schema
}

// Fields of the FeatureDependency.
func (FeatureDependency) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dependency_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("blocks", "related").
			Default("blocks"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("source_id").
			Immutable().
			Comment("The dependent feature"),
		field.String("target_id").
			Immutable().
			Comment("The feature depended upon"),
	}
}

// Edges of the FeatureDependency.
func (FeatureDependency) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Feature.Type).
			Ref("outgoing_deps").
			Field("source_id").
			Unique().
			Required().
			Immutable(),
		edge.From("target", Feature.Type).
			Ref("incoming_deps").
			Field("target_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FeatureDependency.
func (FeatureDependency) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id", "target_id", "kind").
			Unique(),
	}
}
