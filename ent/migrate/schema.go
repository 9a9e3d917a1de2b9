// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "agent", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "ended", "stale"}, Default: "active"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "last_activity", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "event_count", Type: field.TypeInt, Default: 0},
		{Name: "is_subagent", Type: field.TypeBool, Default: false},
		{Name: "start_commit", Type: field.TypeString, Nullable: true},
		{Name: "active_feature_id", Type: field.TypeString, Nullable: true},
		{Name: "classified_at", Type: field.TypeTime, Nullable: true},
		{Name: "classification_source", Type: field.TypeString, Nullable: true},
		{Name: "last_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "nudges_shown", Type: field.TypeJSON, Nullable: true},
		{Name: "continued_from_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_sessions_agent_sessions_continuations",
				Columns:    []*schema.Column{AgentSessionsColumns[14]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "agent_sessions_projects_sessions",
				Columns:    []*schema.Column{AgentSessionsColumns[15]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_project_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[15], AgentSessionsColumns[3]},
			},
			{
				Name:    "agentsession_status_last_activity",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[2], AgentSessionsColumns[4]},
			},
		},
	}
	// CommitsColumns holds the columns for the "commits" table.
	CommitsColumns = []*schema.Column{
		{Name: "commit_hash", Type: field.TypeString, Unique: true},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "feature_id", Type: field.TypeString, Nullable: true},
	}
	// CommitsTable holds the schema information for the "commits" table.
	CommitsTable = &schema.Table{
		Name:       "commits",
		Columns:    CommitsColumns,
		PrimaryKey: []*schema.Column{CommitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "commits_agent_sessions_commits",
				Columns:    []*schema.Column{CommitsColumns[4]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "commits_features_commits",
				Columns:    []*schema.Column{CommitsColumns[5]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "commit_session_id",
				Unique:  false,
				Columns: []*schema.Column{CommitsColumns[4]},
			},
			{
				Name:    "commit_feature_id",
				Unique:  false,
				Columns: []*schema.Column{CommitsColumns[5]},
			},
		},
	}
	// FeaturesColumns holds the columns for the "features" table.
	FeaturesColumns = []*schema.Column{
		{Name: "feature_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"feature", "bug", "spike", "chore", "hotfix", "epic"}, Default: "feature"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "blocked", "complete"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "file_patterns", Type: field.TypeJSON, Nullable: true},
		{Name: "branch_hint", Type: field.TypeString, Nullable: true},
		{Name: "work_count", Type: field.TypeInt, Default: 0},
		{Name: "assigned_agent", Type: field.TypeString, Nullable: true},
		{Name: "claiming_session_id", Type: field.TypeString, Nullable: true},
		{Name: "claiming_agent", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "block_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
		{Name: "is_session_work", Type: field.TypeBool, Default: false},
		{Name: "completion_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// FeaturesTable holds the schema information for the "features" table.
	FeaturesTable = &schema.Table{
		Name:       "features",
		Columns:    FeaturesColumns,
		PrimaryKey: []*schema.Column{FeaturesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "features_features_children",
				Columns:    []*schema.Column{FeaturesColumns[20]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "features_projects_features",
				Columns:    []*schema.Column{FeaturesColumns[21]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feature_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{FeaturesColumns[21], FeaturesColumns[4]},
			},
			{
				Name:    "feature_project_id_is_session_work",
				Unique:  false,
				Columns: []*schema.Column{FeaturesColumns[21], FeaturesColumns[15]},
			},
			{
				Name:    "feature_status_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{FeaturesColumns[4], FeaturesColumns[12]},
			},
			{
				Name:    "feature_category",
				Unique:  false,
				Columns: []*schema.Column{FeaturesColumns[2]},
			},
		},
	}
	// FeatureDependenciesColumns holds the columns for the "feature_dependencies" table.
	FeatureDependenciesColumns = []*schema.Column{
		{Name: "dependency_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"blocks", "related"}, Default: "blocks"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source_id", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
	}
	// FeatureDependenciesTable holds the schema information for the "feature_dependencies" table.
	FeatureDependenciesTable = &schema.Table{
		Name:       "feature_dependencies",
		Columns:    FeatureDependenciesColumns,
		PrimaryKey: []*schema.Column{FeatureDependenciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feature_dependencies_features_outgoing_deps",
				Columns:    []*schema.Column{FeatureDependenciesColumns[3]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "feature_dependencies_features_incoming_deps",
				Columns:    []*schema.Column{FeatureDependenciesColumns[4]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "featuredependency_source_id_target_id_kind",
				Unique:  true,
				Columns: []*schema.Column{FeatureDependenciesColumns[3], FeatureDependenciesColumns[4], FeatureDependenciesColumns[1]},
			},
		},
	}
	// HookEventsColumns holds the columns for the "hook_events" table.
	HookEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"ToolCall", "UserQuery", "AgentStop", "SubagentStop", "PlanUpdate", "FeatureCompleted", "SessionStart", "SessionEnd"}},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "source_agent", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "session_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
	}
	// HookEventsTable holds the schema information for the "hook_events" table.
	HookEventsTable = &schema.Table{
		Name:       "hook_events",
		Columns:    HookEventsColumns,
		PrimaryKey: []*schema.Column{HookEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hook_events_agent_sessions_events",
				Columns:    []*schema.Column{HookEventsColumns[8]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "hook_events_steps_events",
				Columns:    []*schema.Column{HookEventsColumns[9]},
				RefColumns: []*schema.Column{StepsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hookevent_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HookEventsColumns[8], HookEventsColumns[4]},
			},
			{
				Name:    "hookevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HookEventsColumns[4]},
			},
			{
				Name:    "hookevent_tool_name",
				Unique:  false,
				Columns: []*schema.Column{HookEventsColumns[2]},
			},
		},
	}
	// InsightsColumns holds the columns for the "insights" table.
	InsightsColumns = []*schema.Column{
		{Name: "insight_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "pattern_type", Type: field.TypeEnum, Enums: []string{"solution", "anti_pattern", "best_practice", "tool_usage"}},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "effectiveness_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "feedback_count", Type: field.TypeInt, Default: 0},
		{Name: "helpful_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "feature_id", Type: field.TypeString, Nullable: true},
	}
	// InsightsTable holds the schema information for the "insights" table.
	InsightsTable = &schema.Table{
		Name:       "insights",
		Columns:    InsightsColumns,
		PrimaryKey: []*schema.Column{InsightsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "insights_features_insights",
				Columns:    []*schema.Column{InsightsColumns[9]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "insight_pattern_type",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[2]},
			},
			{
				Name:    "insight_created_at",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[8]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "path", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_path",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// StatusEventsColumns holds the columns for the "status_events" table.
	StatusEventsColumns = []*schema.Column{
		{Name: "status_event_id", Type: field.TypeString, Unique: true},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "at", Type: field.TypeTime},
		{Name: "by", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "feature_id", Type: field.TypeString},
	}
	// StatusEventsTable holds the schema information for the "status_events" table.
	StatusEventsTable = &schema.Table{
		Name:       "status_events",
		Columns:    StatusEventsColumns,
		PrimaryKey: []*schema.Column{StatusEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "status_events_features_status_events",
				Columns:    []*schema.Column{StatusEventsColumns[7]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "statusevent_feature_id_at",
				Unique:  false,
				Columns: []*schema.Column{StatusEventsColumns[7], StatusEventsColumns[3]},
			},
		},
	}
	// StepsColumns holds the columns for the "steps" table.
	StepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "skipped"}, Default: "pending"},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "expected_tools", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "feature_id", Type: field.TypeString},
	}
	// StepsTable holds the schema information for the "steps" table.
	StepsTable = &schema.Table{
		Name:       "steps",
		Columns:    StepsColumns,
		PrimaryKey: []*schema.Column{StepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "steps_features_steps",
				Columns:    []*schema.Column{StepsColumns[8]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "step_feature_id_step_order",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[8], StepsColumns[3]},
			},
			{
				Name:    "step_feature_id_status",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[8], StepsColumns[2]},
			},
		},
	}
	// HookEventFeaturesColumns holds the columns for the "hook_event_features" table.
	HookEventFeaturesColumns = []*schema.Column{
		{Name: "hook_event_id", Type: field.TypeString},
		{Name: "feature_id", Type: field.TypeString},
	}
	// HookEventFeaturesTable holds the schema information for the "hook_event_features" table.
	HookEventFeaturesTable = &schema.Table{
		Name:       "hook_event_features",
		Columns:    HookEventFeaturesColumns,
		PrimaryKey: []*schema.Column{HookEventFeaturesColumns[0], HookEventFeaturesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hook_event_features_hook_event_id",
				Columns:    []*schema.Column{HookEventFeaturesColumns[0]},
				RefColumns: []*schema.Column{HookEventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "hook_event_features_feature_id",
				Columns:    []*schema.Column{HookEventFeaturesColumns[1]},
				RefColumns: []*schema.Column{FeaturesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentSessionsTable,
		CommitsTable,
		FeaturesTable,
		FeatureDependenciesTable,
		HookEventsTable,
		InsightsTable,
		ProjectsTable,
		StatusEventsTable,
		StepsTable,
		HookEventFeaturesTable,
	}
)

func init() {
	AgentSessionsTable.ForeignKeys[0].RefTable = AgentSessionsTable
	AgentSessionsTable.ForeignKeys[1].RefTable = ProjectsTable
	CommitsTable.ForeignKeys[0].RefTable = AgentSessionsTable
	CommitsTable.ForeignKeys[1].RefTable = FeaturesTable
	FeaturesTable.ForeignKeys[0].RefTable = FeaturesTable
	FeaturesTable.ForeignKeys[1].RefTable = ProjectsTable
	FeatureDependenciesTable.ForeignKeys[0].RefTable = FeaturesTable
	FeatureDependenciesTable.ForeignKeys[1].RefTable = FeaturesTable
	HookEventsTable.ForeignKeys[0].RefTable = AgentSessionsTable
	HookEventsTable.ForeignKeys[1].RefTable = StepsTable
	InsightsTable.ForeignKeys[0].RefTable = FeaturesTable
	StatusEventsTable.ForeignKeys[0].RefTable = FeaturesTable
	StepsTable.ForeignKeys[0].RefTable = FeaturesTable
	HookEventFeaturesTable.ForeignKeys[0].RefTable = HookEventsTable
	HookEventFeaturesTable.ForeignKeys[1].RefTable = FeaturesTable
}
