package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Feature holds the schema definition for the Feature entity.
// A feature is any unit of user-visible work: not only features proper,
// but also bugs, spikes, chores, hotfixes and epics. Its current status
// is a materialised view of the most recent StatusEvent; every status
// write goes through the services layer's recordStatus helper so the two
// never diverge.
type Feature struct {
	ent.Schema
}

// Fields of the Feature.
func (Feature) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feature_id").
			Unique().
			Immutable(),
		field.Text("description"),
		field.String("category").
			Comment("Free-form grouping (e.g. 'authentication', 'infrastructure')"),
		field.Enum("type").
			Values("feature", "bug", "spike", "chore", "hotfix", "epic").
			Default("feature"),
		field.Enum("status").
			Values("pending", "in_progress", "blocked", "complete").
			Default("pending"),
		field.Int("priority").
			Default(0).
			Min(-100).
			Max(100),
		field.JSON("file_patterns", []string{}).
			Optional().
			Comment("Globs matched against event file paths during attribution"),
		field.String("branch_hint").
			Optional().
			Nillable(),
		field.Int("work_count").
			Default(0).
			Comment("Number of events linked to this feature"),
		field.String("assigned_agent").
			Optional().
			Nillable(),

		// Claim triple: either all three are set or none
		field.String("claiming_session_id").
			Optional().
			Nillable(),
		field.String("claiming_agent").
			Optional().
			Nillable(),
		field.Time("claimed_at").
			Optional().
			Nillable(),

		field.Text("block_reason").
			Optional().
			Nillable(),
		field.Bool("is_primary").
			Default(false).
			Comment("Default attribution target on scoring ties; at most one per project"),
		field.Bool("is_session_work").
			Default(false).
			Comment("Sentinel feature receiving unattributed events; at most one per project"),
		field.JSON("completion_criteria", map[string]interface{}{}).
			Optional().
			Comment("Auto-completion rule: {type: build|test|lint|any_success|work_count|manual, count?, command_pattern?}"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),

		field.String("project_id").
			Immutable(),
		field.String("parent_id").
			Optional().
			Nillable(),
	}
}

// Edges of the Feature.
func (Feature) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("features").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("children", Feature.Type).
			From("parent").
			Field("parent_id").
			Unique(),
		edge.To("steps", Step.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("status_events", StatusEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("insights", Insight.Type),
		edge.To("commits", Commit.Type),
		edge.To("outgoing_deps", FeatureDependency.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("incoming_deps", FeatureDependency.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("events", HookEvent.Type).
			Ref("features"),
	}
}

// Indexes of the Feature.
func (Feature) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
		index.Fields("project_id", "is_session_work"),
		index.Fields("status", "claimed_at"),
		index.Fields("category"),
	}
}
