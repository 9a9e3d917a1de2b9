// Code generated by ent, DO NOT EDIT.

package insight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ijoka-ai/ijoka/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldID, id))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldDescription, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldUsageCount, v))
}

// EffectivenessScore applies equality check predicate on the "effectiveness_score" field. It's identical to EffectivenessScoreEQ.
func EffectivenessScore(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldEffectivenessScore, v))
}

// FeedbackCount applies equality check predicate on the "feedback_count" field. It's identical to FeedbackCountEQ.
func FeedbackCount(v int) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldFeedbackCount, v))
}

// HelpfulCount applies equality check predicate on the "helpful_count" field. It's identical to HelpfulCountEQ.
func HelpfulCount(v int) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldHelpfulCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldCreatedAt, v))
}

// FeatureID applies equality check predicate on the "feature_id" field. It's identical to FeatureIDEQ.
func FeatureID(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldFeatureID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldDescription, v))
}

// PatternTypeEQ applies the EQ predicate on the "pattern_type" field.
func PatternTypeEQ(v PatternType) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldPatternType, v))
}

// PatternTypeNEQ applies the NEQ predicate on the "pattern_type" field.
func PatternTypeNEQ(v PatternType) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldPatternType, v))
}

// PatternTypeIn applies the In predicate on the "pattern_type" field.
func PatternTypeIn(vs ...PatternType) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldPatternType, vs...))
}

// PatternTypeNotIn applies the NotIn predicate on the "pattern_type" field.
func PatternTypeNotIn(vs ...PatternType) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldPatternType, vs...))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldTags))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldUsageCount, v))
}

// EffectivenessScoreEQ applies the EQ predicate on the "effectiveness_score" field.
func EffectivenessScoreEQ(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldEffectivenessScore, v))
}

// EffectivenessScoreNEQ applies the NEQ predicate on the "effectiveness_score" field.
func EffectivenessScoreNEQ(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldEffectivenessScore, v))
}

// EffectivenessScoreIn applies the In predicate on the "effectiveness_score" field.
func EffectivenessScoreIn(vs ...float64) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldEffectivenessScore, vs...))
}

// EffectivenessScoreNotIn applies the NotIn predicate on the "effectiveness_score" field.
func EffectivenessScoreNotIn(vs ...float64) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldEffectivenessScore, vs...))
}

// EffectivenessScoreGT applies the GT predicate on the "effectiveness_score" field.
func EffectivenessScoreGT(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldEffectivenessScore, v))
}

// EffectivenessScoreGTE applies the GTE predicate on the "effectiveness_score" field.
func EffectivenessScoreGTE(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldEffectivenessScore, v))
}

// EffectivenessScoreLT applies the LT predicate on the "effectiveness_score" field.
func EffectivenessScoreLT(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldEffectivenessScore, v))
}

// EffectivenessScoreLTE applies the LTE predicate on the "effectiveness_score" field.
func EffectivenessScoreLTE(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldEffectivenessScore, v))
}

// EffectivenessScoreIsNil applies the IsNil predicate on the "effectiveness_score" field.
func EffectivenessScoreIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldEffectivenessScore))
}

// EffectivenessScoreNotNil applies the NotNil predicate on the "effectiveness_score" field.
func EffectivenessScoreNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldEffectivenessScore))
}

// FeedbackCountEQ applies the EQ predicate on the "feedback_count" field.
func FeedbackCountEQ(v int) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldFeedbackCount, v))
}

// FeedbackCountNEQ applies the NEQ predicate on the "feedback_count" field.
func FeedbackCountNEQ(v int) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldFeedbackCount, v))
}

// FeedbackCountIn applies the In predicate on the "feedback_count" field.
func FeedbackCountIn(vs ...int) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldFeedbackCount, vs...))
}

// FeedbackCountNotIn applies the NotIn predicate on the "feedback_count" field.
func FeedbackCountNotIn(vs ...int) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldFeedbackCount, vs...))
}

// FeedbackCountGT applies the GT predicate on the "feedback_count" field.
func FeedbackCountGT(v int) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldFeedbackCount, v))
}

// FeedbackCountGTE applies the GTE predicate on the "feedback_count" field.
func FeedbackCountGTE(v int) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldFeedbackCount, v))
}

// FeedbackCountLT applies the LT predicate on the "feedback_count" field.
func FeedbackCountLT(v int) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldFeedbackCount, v))
}

// FeedbackCountLTE applies the LTE predicate on the "feedback_count" field.
func FeedbackCountLTE(v int) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldFeedbackCount, v))
}

// HelpfulCountEQ applies the EQ predicate on the "helpful_count" field.
func HelpfulCountEQ(v int) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldHelpfulCount, v))
}

// HelpfulCountNEQ applies the NEQ predicate on the "helpful_count" field.
func HelpfulCountNEQ(v int) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldHelpfulCount, v))
}

// HelpfulCountIn applies the In predicate on the "helpful_count" field.
func HelpfulCountIn(vs ...int) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldHelpfulCount, vs...))
}

// HelpfulCountNotIn applies the NotIn predicate on the "helpful_count" field.
func HelpfulCountNotIn(vs ...int) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldHelpfulCount, vs...))
}

// HelpfulCountGT applies the GT predicate on the "helpful_count" field.
func HelpfulCountGT(v int) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldHelpfulCount, v))
}

// HelpfulCountGTE applies the GTE predicate on the "helpful_count" field.
func HelpfulCountGTE(v int) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldHelpfulCount, v))
}

// HelpfulCountLT applies the LT predicate on the "helpful_count" field.
func HelpfulCountLT(v int) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldHelpfulCount, v))
}

// HelpfulCountLTE applies the LTE predicate on the "helpful_count" field.
func HelpfulCountLTE(v int) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldHelpfulCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldCreatedAt, v))
}

// FeatureIDEQ applies the EQ predicate on the "feature_id" field.
func FeatureIDEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldFeatureID, v))
}

// FeatureIDNEQ applies the NEQ predicate on the "feature_id" field.
func FeatureIDNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldFeatureID, v))
}

// FeatureIDIn applies the In predicate on the "feature_id" field.
func FeatureIDIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldFeatureID, vs...))
}

// FeatureIDNotIn applies the NotIn predicate on the "feature_id" field.
func FeatureIDNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldFeatureID, vs...))
}

// FeatureIDGT applies the GT predicate on the "feature_id" field.
func FeatureIDGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldFeatureID, v))
}

// FeatureIDGTE applies the GTE predicate on the "feature_id" field.
func FeatureIDGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldFeatureID, v))
}

// FeatureIDLT applies the LT predicate on the "feature_id" field.
func FeatureIDLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldFeatureID, v))
}

// FeatureIDLTE applies the LTE predicate on the "feature_id" field.
func FeatureIDLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldFeatureID, v))
}

// FeatureIDContains applies the Contains predicate on the "feature_id" field.
func FeatureIDContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldFeatureID, v))
}

// FeatureIDHasPrefix applies the HasPrefix predicate on the "feature_id" field.
func FeatureIDHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldFeatureID, v))
}

// FeatureIDHasSuffix applies the HasSuffix predicate on the "feature_id" field.
func FeatureIDHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldFeatureID, v))
}

// FeatureIDIsNil applies the IsNil predicate on the "feature_id" field.
func FeatureIDIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldFeatureID))
}

// FeatureIDNotNil applies the NotNil predicate on the "feature_id" field.
func FeatureIDNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldFeatureID))
}

// FeatureIDEqualFold applies the EqualFold predicate on the "feature_id" field.
func FeatureIDEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldFeatureID, v))
}

// FeatureIDContainsFold applies the ContainsFold predicate on the "feature_id" field.
func FeatureIDContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldFeatureID, v))
}

// HasFeature applies the HasEdge predicate on the "feature" edge.
func HasFeature() predicate.Insight {
	return predicate.Insight(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FeatureTable, FeatureColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeatureWith applies the HasEdge predicate on the "feature" edge with a given conditions (other predicates).
func HasFeatureWith(preds ...predicate.Feature) predicate.Insight {
	return predicate.Insight(func(s *sql.Selector) {
		step := newFeatureStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.NotPredicates(p))
}
