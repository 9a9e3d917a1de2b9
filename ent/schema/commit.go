package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Commit holds the schema definition for the Commit entity.
// Captured at session end; the ID is the commit hash.
type Commit struct {
	ent.Schema
}

// Fields of the Commit.
func (Commit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("commit_hash").
			Unique().
			Immutable(),
		field.Text("message"),
		field.String("author").
			Optional().
			Nillable(),
		field.Time("timestamp").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("feature_id").
			Optional().
			Nillable().
			Comment("Feature the commit implements, when the session had one active"),
	}
}

// Edges of the Commit.
func (Commit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AgentSession.Type).
			Ref("commits").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("feature", Feature.Type).
			Ref("commits").
			Field("feature_id").
			Unique(),
	}
}

// Indexes of the Commit.
func (Commit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("feature_id"),
	}
}
