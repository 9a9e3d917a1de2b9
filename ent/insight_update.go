// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/insight"
	"github.com/ijoka-ai/ijoka/ent/predicate"
)

// InsightUpdate is the builder for updating Insight entities.
type InsightUpdate struct {
	config
	hooks    []Hook
	mutation *InsightMutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdate) Where(ps ...predicate.Insight) *InsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *InsightUpdate) SetDescription(v string) *InsightUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableDescription(v *string) *InsightUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *InsightUpdate) SetPatternType(v insight.PatternType) *InsightUpdate {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *InsightUpdate) SetNillablePatternType(v *insight.PatternType) *InsightUpdate {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *InsightUpdate) SetTags(v []string) *InsightUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *InsightUpdate) AppendTags(v []string) *InsightUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *InsightUpdate) ClearTags() *InsightUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *InsightUpdate) SetUsageCount(v int) *InsightUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableUsageCount(v *int) *InsightUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *InsightUpdate) AddUsageCount(v int) *InsightUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (_u *InsightUpdate) SetEffectivenessScore(v float64) *InsightUpdate {
	_u.mutation.ResetEffectivenessScore()
	_u.mutation.SetEffectivenessScore(v)
	return _u
}

// SetNillableEffectivenessScore sets the "effectiveness_score" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableEffectivenessScore(v *float64) *InsightUpdate {
	if v != nil {
		_u.SetEffectivenessScore(*v)
	}
	return _u
}

// AddEffectivenessScore adds value to the "effectiveness_score" field.
func (_u *InsightUpdate) AddEffectivenessScore(v float64) *InsightUpdate {
	_u.mutation.AddEffectivenessScore(v)
	return _u
}

// ClearEffectivenessScore clears the value of the "effectiveness_score" field.
func (_u *InsightUpdate) ClearEffectivenessScore() *InsightUpdate {
	_u.mutation.ClearEffectivenessScore()
	return _u
}

// SetFeedbackCount sets the "feedback_count" field.
func (_u *InsightUpdate) SetFeedbackCount(v int) *InsightUpdate {
	_u.mutation.ResetFeedbackCount()
	_u.mutation.SetFeedbackCount(v)
	return _u
}

// SetNillableFeedbackCount sets the "feedback_count" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableFeedbackCount(v *int) *InsightUpdate {
	if v != nil {
		_u.SetFeedbackCount(*v)
	}
	return _u
}

// AddFeedbackCount adds value to the "feedback_count" field.
func (_u *InsightUpdate) AddFeedbackCount(v int) *InsightUpdate {
	_u.mutation.AddFeedbackCount(v)
	return _u
}

// SetHelpfulCount sets the "helpful_count" field.
func (_u *InsightUpdate) SetHelpfulCount(v int) *InsightUpdate {
	_u.mutation.ResetHelpfulCount()
	_u.mutation.SetHelpfulCount(v)
	return _u
}

// SetNillableHelpfulCount sets the "helpful_count" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableHelpfulCount(v *int) *InsightUpdate {
	if v != nil {
		_u.SetHelpfulCount(*v)
	}
	return _u
}

// AddHelpfulCount adds value to the "helpful_count" field.
func (_u *InsightUpdate) AddHelpfulCount(v int) *InsightUpdate {
	_u.mutation.AddHelpfulCount(v)
	return _u
}

// SetFeatureID sets the "feature_id" field.
func (_u *InsightUpdate) SetFeatureID(v string) *InsightUpdate {
	_u.mutation.SetFeatureID(v)
	return _u
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableFeatureID(v *string) *InsightUpdate {
	if v != nil {
		_u.SetFeatureID(*v)
	}
	return _u
}

// ClearFeatureID clears the value of the "feature_id" field.
func (_u *InsightUpdate) ClearFeatureID() *InsightUpdate {
	_u.mutation.ClearFeatureID()
	return _u
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_u *InsightUpdate) SetFeature(v *Feature) *InsightUpdate {
	return _u.SetFeatureID(v.ID)
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdate) Mutation() *InsightMutation {
	return _u.mutation
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (_u *InsightUpdate) ClearFeature() *InsightUpdate {
	_u.mutation.ClearFeature()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdate) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := insight.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "Insight.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EffectivenessScore(); ok {
		if err := insight.EffectivenessScoreValidator(v); err != nil {
			return &ValidationError{Name: "effectiveness_score", err: fmt.Errorf(`ent: validator failed for field "Insight.effectiveness_score": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(insight.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(insight.FieldPatternType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(insight.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(insight.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(insight.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(insight.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EffectivenessScore(); ok {
		_spec.SetField(insight.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectivenessScore(); ok {
		_spec.AddField(insight.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.EffectivenessScoreCleared() {
		_spec.ClearField(insight.FieldEffectivenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FeedbackCount(); ok {
		_spec.SetField(insight.FieldFeedbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeedbackCount(); ok {
		_spec.AddField(insight.FieldFeedbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HelpfulCount(); ok {
		_spec.SetField(insight.FieldHelpfulCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHelpfulCount(); ok {
		_spec.AddField(insight.FieldHelpfulCount, field.TypeInt, value)
	}
	if _u.mutation.FeatureCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insight.FeatureTable,
			Columns: []string{insight.FeatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeatureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insight.FeatureTable,
			Columns: []string{insight.FeatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightUpdateOne is the builder for updating a single Insight entity.
type InsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightMutation
}

// SetDescription sets the "description" field.
func (_u *InsightUpdateOne) SetDescription(v string) *InsightUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableDescription(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *InsightUpdateOne) SetPatternType(v insight.PatternType) *InsightUpdateOne {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillablePatternType(v *insight.PatternType) *InsightUpdateOne {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *InsightUpdateOne) SetTags(v []string) *InsightUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *InsightUpdateOne) AppendTags(v []string) *InsightUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *InsightUpdateOne) ClearTags() *InsightUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *InsightUpdateOne) SetUsageCount(v int) *InsightUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableUsageCount(v *int) *InsightUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *InsightUpdateOne) AddUsageCount(v int) *InsightUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (_u *InsightUpdateOne) SetEffectivenessScore(v float64) *InsightUpdateOne {
	_u.mutation.ResetEffectivenessScore()
	_u.mutation.SetEffectivenessScore(v)
	return _u
}

// SetNillableEffectivenessScore sets the "effectiveness_score" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableEffectivenessScore(v *float64) *InsightUpdateOne {
	if v != nil {
		_u.SetEffectivenessScore(*v)
	}
	return _u
}

// AddEffectivenessScore adds value to the "effectiveness_score" field.
func (_u *InsightUpdateOne) AddEffectivenessScore(v float64) *InsightUpdateOne {
	_u.mutation.AddEffectivenessScore(v)
	return _u
}

// ClearEffectivenessScore clears the value of the "effectiveness_score" field.
func (_u *InsightUpdateOne) ClearEffectivenessScore() *InsightUpdateOne {
	_u.mutation.ClearEffectivenessScore()
	return _u
}

// SetFeedbackCount sets the "feedback_count" field.
func (_u *InsightUpdateOne) SetFeedbackCount(v int) *InsightUpdateOne {
	_u.mutation.ResetFeedbackCount()
	_u.mutation.SetFeedbackCount(v)
	return _u
}

// SetNillableFeedbackCount sets the "feedback_count" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableFeedbackCount(v *int) *InsightUpdateOne {
	if v != nil {
		_u.SetFeedbackCount(*v)
	}
	return _u
}

// AddFeedbackCount adds value to the "feedback_count" field.
func (_u *InsightUpdateOne) AddFeedbackCount(v int) *InsightUpdateOne {
	_u.mutation.AddFeedbackCount(v)
	return _u
}

// SetHelpfulCount sets the "helpful_count" field.
func (_u *InsightUpdateOne) SetHelpfulCount(v int) *InsightUpdateOne {
	_u.mutation.ResetHelpfulCount()
	_u.mutation.SetHelpfulCount(v)
	return _u
}

// SetNillableHelpfulCount sets the "helpful_count" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableHelpfulCount(v *int) *InsightUpdateOne {
	if v != nil {
		_u.SetHelpfulCount(*v)
	}
	return _u
}

// AddHelpfulCount adds value to the "helpful_count" field.
func (_u *InsightUpdateOne) AddHelpfulCount(v int) *InsightUpdateOne {
	_u.mutation.AddHelpfulCount(v)
	return _u
}

// SetFeatureID sets the "feature_id" field.
func (_u *InsightUpdateOne) SetFeatureID(v string) *InsightUpdateOne {
	_u.mutation.SetFeatureID(v)
	return _u
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableFeatureID(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetFeatureID(*v)
	}
	return _u
}

// ClearFeatureID clears the value of the "feature_id" field.
func (_u *InsightUpdateOne) ClearFeatureID() *InsightUpdateOne {
	_u.mutation.ClearFeatureID()
	return _u
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_u *InsightUpdateOne) SetFeature(v *Feature) *InsightUpdateOne {
	return _u.SetFeatureID(v.ID)
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdateOne) Mutation() *InsightMutation {
	return _u.mutation
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (_u *InsightUpdateOne) ClearFeature() *InsightUpdateOne {
	_u.mutation.ClearFeature()
	return _u
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdateOne) Where(ps ...predicate.Insight) *InsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightUpdateOne) Select(field string, fields ...string) *InsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Insight entity.
func (_u *InsightUpdateOne) Save(ctx context.Context) (*Insight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdateOne) SaveX(ctx context.Context) *Insight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdateOne) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := insight.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "Insight.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EffectivenessScore(); ok {
		if err := insight.EffectivenessScoreValidator(v); err != nil {
			return &ValidationError{Name: "effectiveness_score", err: fmt.Errorf(`ent: validator failed for field "Insight.effectiveness_score": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightUpdateOne) sqlSave(ctx context.Context) (_node *Insight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Insight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insight.FieldID)
		for _, f := range fields {
			if !insight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insight.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(insight.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(insight.FieldPatternType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(insight.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(insight.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(insight.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(insight.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EffectivenessScore(); ok {
		_spec.SetField(insight.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectivenessScore(); ok {
		_spec.AddField(insight.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.EffectivenessScoreCleared() {
		_spec.ClearField(insight.FieldEffectivenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FeedbackCount(); ok {
		_spec.SetField(insight.FieldFeedbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeedbackCount(); ok {
		_spec.AddField(insight.FieldFeedbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HelpfulCount(); ok {
		_spec.SetField(insight.FieldHelpfulCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHelpfulCount(); ok {
		_spec.AddField(insight.FieldHelpfulCount, field.TypeInt, value)
	}
	if _u.mutation.FeatureCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insight.FeatureTable,
			Columns: []string{insight.FeatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeatureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insight.FeatureTable,
			Columns: []string{insight.FeatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Insight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
