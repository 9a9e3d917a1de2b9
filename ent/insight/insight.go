// Code generated by ent, DO NOT EDIT.

package insight

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the insight type in the database.
	Label = "insight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "insight_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPatternType holds the string denoting the pattern_type field in the database.
	FieldPatternType = "pattern_type"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldUsageCount holds the string denoting the usage_count field in the database.
	FieldUsageCount = "usage_count"
	// FieldEffectivenessScore holds the string denoting the effectiveness_score field in the database.
	FieldEffectivenessScore = "effectiveness_score"
	// FieldFeedbackCount holds the string denoting the feedback_count field in the database.
	FieldFeedbackCount = "feedback_count"
	// FieldHelpfulCount holds the string denoting the helpful_count field in the database.
	FieldHelpfulCount = "helpful_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldFeatureID holds the string denoting the feature_id field in the database.
	FieldFeatureID = "feature_id"
	// EdgeFeature holds the string denoting the feature edge name in mutations.
	EdgeFeature = "feature"
	// FeatureFieldID holds the string denoting the ID field of the Feature.
	FeatureFieldID = "feature_id"
	// Table holds the table name of the insight in the database.
	Table = "insights"
	// FeatureTable is the table that holds the feature relation/edge.
	FeatureTable = "insights"
	// FeatureInverseTable is the table name for the Feature entity.
	// It exists in this package in order to avoid circular dependency with the "feature" package.
	FeatureInverseTable = "features"
	// FeatureColumn is the table column denoting the feature relation/edge.
	FeatureColumn = "feature_id"
)

// Columns holds all SQL columns for insight fields.
var Columns = []string{
	FieldID,
	FieldDescription,
	FieldPatternType,
	FieldTags,
	FieldUsageCount,
	FieldEffectivenessScore,
	FieldFeedbackCount,
	FieldHelpfulCount,
	FieldCreatedAt,
	FieldFeatureID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUsageCount holds the default value on creation for the "usage_count" field.
	DefaultUsageCount int
	// EffectivenessScoreValidator is a validator for the "effectiveness_score" field. It is called by the builders before save.
	EffectivenessScoreValidator func(float64) error
	// DefaultFeedbackCount holds the default value on creation for the "feedback_count" field.
	DefaultFeedbackCount int
	// DefaultHelpfulCount holds the default value on creation for the "helpful_count" field.
	DefaultHelpfulCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// PatternType defines the type for the "pattern_type" enum field.
type PatternType string

// PatternType values.
const (
	PatternTypeSolution     PatternType = "solution"
	PatternTypeAntiPattern  PatternType = "anti_pattern"
	PatternTypeBestPractice PatternType = "best_practice"
	PatternTypeToolUsage    PatternType = "tool_usage"
)

func (pt PatternType) String() string {
	return string(pt)
}

// PatternTypeValidator is a validator for the "pattern_type" field enum values. It is called by the builders before save.
func PatternTypeValidator(pt PatternType) error {
	switch pt {
	case PatternTypeSolution, PatternTypeAntiPattern, PatternTypeBestPractice, PatternTypeToolUsage:
		return nil
	default:
		return fmt.Errorf("insight: invalid enum value for pattern_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the Insight queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPatternType orders the results by the pattern_type field.
func ByPatternType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternType, opts...).ToFunc()
}

// ByUsageCount orders the results by the usage_count field.
func ByUsageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsageCount, opts...).ToFunc()
}

// ByEffectivenessScore orders the results by the effectiveness_score field.
func ByEffectivenessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectivenessScore, opts...).ToFunc()
}

// ByFeedbackCount orders the results by the feedback_count field.
func ByFeedbackCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackCount, opts...).ToFunc()
}

// ByHelpfulCount orders the results by the helpful_count field.
func ByHelpfulCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHelpfulCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFeatureID orders the results by the feature_id field.
func ByFeatureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureID, opts...).ToFunc()
}

// ByFeatureField orders the results by feature field.
func ByFeatureField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeatureStep(), sql.OrderByField(field, opts...))
	}
}
func newFeatureStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeatureInverseTable, FeatureFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FeatureTable, FeatureColumn),
	)
}
