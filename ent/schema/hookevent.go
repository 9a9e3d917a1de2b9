package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HookEvent holds the schema definition for the HookEvent entity.
// One row per ingested agent hook event. IDs are deterministic
// (tool_use_id, or derived from session + event type + content hash)
// so re-delivery of the same hook event is idempotent.
//
// Event types:
//   ToolCall         - PostToolUse for any tool
//   UserQuery        - UserPromptSubmit
//   AgentStop        - Stop (main agent finished responding)
//   SubagentStop     - a Task sub-agent finished
//   PlanUpdate       - TodoWrite plan change
//   FeatureCompleted - feature completion marker
//   SessionStart     - session began
//   SessionEnd       - session ended
type HookEvent struct {
	ent.Schema
}

// Fields of the HookEvent.
func (HookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.Enum("event_type").
			Values(
				"ToolCall",
				"UserQuery",
				"AgentStop",
				"SubagentStop",
				"PlanUpdate",
				"FeatureCompleted",
				"SessionStart",
				"SessionEnd",
			),
		field.String("tool_name").
			Optional(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Opaque tool input/response excerpt, capped at ~10 KB on ingress"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("source_agent"),
		field.String("session_id").
			Immutable(),
		field.Bool("success").
			Default(true),
		field.String("summary").
			Optional().
			MaxLen(200),
		field.String("step_id").
			Optional().
			Nillable(),
	}
}

// Edges of the HookEvent.
func (HookEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AgentSession.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step", Step.Type).
			Ref("events").
			Field("step_id").
			Unique(),
		// Many-to-many: an event keeps its Session-Work link forever and
		// gains additional links during discover re-attribution.
		edge.To("features", Feature.Type),
	}
}

// Indexes of the HookEvent.
func (HookEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp"),
		index.Fields("timestamp"),
		index.Fields("tool_name"),
	}
}
