package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// One row per agent session (coding agent process). The classification
// cache fields (active_feature_id, classified_at, classification_source,
// last_prompt) are soft state: last writer wins, readers tolerate absence.
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("agent").
			Comment("Agent identifier (e.g. 'claude-code')"),
		field.Enum("status").
			Values("active", "ended", "stale").
			Default("active"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity").
			Default(time.Now).
			Comment("Refreshed on every ingested event; drives staleness checks"),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("event_count").
			Default(0),
		field.Bool("is_subagent").
			Default(false),
		field.String("start_commit").
			Optional().
			Nillable().
			Comment("Short hash of HEAD when the session started"),

		// Classification cache (soft state)
		field.String("active_feature_id").
			Optional().
			Nillable(),
		field.Time("classified_at").
			Optional().
			Nillable(),
		field.String("classification_source").
			Optional().
			Nillable().
			Comment("How active_feature_id was chosen (prompt_classification, manual_start, ...)"),
		field.Text("last_prompt").
			Optional().
			Nillable(),

		field.JSON("nudges_shown", []string{}).
			Optional().
			Comment("Nudge keys already surfaced in this session (idempotence)"),

		field.String("project_id").
			Immutable(),
		field.String("continued_from_id").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentSession.
func (AgentSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("sessions").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("continuations", AgentSession.Type).
			From("continued_from").
			Field("continued_from_id").
			Unique(),
		edge.To("events", HookEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("commits", Commit.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "started_at"),
		index.Fields("status", "last_activity"),
	}
}
