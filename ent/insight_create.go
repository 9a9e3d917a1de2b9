// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/insight"
)

// InsightCreate is the builder for creating a Insight entity.
type InsightCreate struct {
	config
	mutation *InsightMutation
	hooks    []Hook
}

// SetDescription sets the "description" field.
func (_c *InsightCreate) SetDescription(v string) *InsightCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetPatternType sets the "pattern_type" field.
func (_c *InsightCreate) SetPatternType(v insight.PatternType) *InsightCreate {
	_c.mutation.SetPatternType(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *InsightCreate) SetTags(v []string) *InsightCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *InsightCreate) SetUsageCount(v int) *InsightCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *InsightCreate) SetNillableUsageCount(v *int) *InsightCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (_c *InsightCreate) SetEffectivenessScore(v float64) *InsightCreate {
	_c.mutation.SetEffectivenessScore(v)
	return _c
}

// SetNillableEffectivenessScore sets the "effectiveness_score" field if the given value is not nil.
func (_c *InsightCreate) SetNillableEffectivenessScore(v *float64) *InsightCreate {
	if v != nil {
		_c.SetEffectivenessScore(*v)
	}
	return _c
}

// SetFeedbackCount sets the "feedback_count" field.
func (_c *InsightCreate) SetFeedbackCount(v int) *InsightCreate {
	_c.mutation.SetFeedbackCount(v)
	return _c
}

// SetNillableFeedbackCount sets the "feedback_count" field if the given value is not nil.
func (_c *InsightCreate) SetNillableFeedbackCount(v *int) *InsightCreate {
	if v != nil {
		_c.SetFeedbackCount(*v)
	}
	return _c
}

// SetHelpfulCount sets the "helpful_count" field.
func (_c *InsightCreate) SetHelpfulCount(v int) *InsightCreate {
	_c.mutation.SetHelpfulCount(v)
	return _c
}

// SetNillableHelpfulCount sets the "helpful_count" field if the given value is not nil.
func (_c *InsightCreate) SetNillableHelpfulCount(v *int) *InsightCreate {
	if v != nil {
		_c.SetHelpfulCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsightCreate) SetCreatedAt(v time.Time) *InsightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsightCreate) SetNillableCreatedAt(v *time.Time) *InsightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFeatureID sets the "feature_id" field.
func (_c *InsightCreate) SetFeatureID(v string) *InsightCreate {
	_c.mutation.SetFeatureID(v)
	return _c
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_c *InsightCreate) SetNillableFeatureID(v *string) *InsightCreate {
	if v != nil {
		_c.SetFeatureID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsightCreate) SetID(v string) *InsightCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_c *InsightCreate) SetFeature(v *Feature) *InsightCreate {
	return _c.SetFeatureID(v.ID)
}

// Mutation returns the InsightMutation object of the builder.
func (_c *InsightCreate) Mutation() *InsightMutation {
	return _c.mutation
}

// Save creates the Insight in the database.
func (_c *InsightCreate) Save(ctx context.Context) (*Insight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightCreate) SaveX(ctx context.Context) *Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightCreate) defaults() {
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := insight.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.FeedbackCount(); !ok {
		v := insight.DefaultFeedbackCount
		_c.mutation.SetFeedbackCount(v)
	}
	if _, ok := _c.mutation.HelpfulCount(); !ok {
		v := insight.DefaultHelpfulCount
		_c.mutation.SetHelpfulCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightCreate) check() error {
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Insight.description"`)}
	}
	if _, ok := _c.mutation.PatternType(); !ok {
		return &ValidationError{Name: "pattern_type", err: errors.New(`ent: missing required field "Insight.pattern_type"`)}
	}
	if v, ok := _c.mutation.PatternType(); ok {
		if err := insight.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "Insight.pattern_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "Insight.usage_count"`)}
	}
	if v, ok := _c.mutation.EffectivenessScore(); ok {
		if err := insight.EffectivenessScoreValidator(v); err != nil {
			return &ValidationError{Name: "effectiveness_score", err: fmt.Errorf(`ent: validator failed for field "Insight.effectiveness_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeedbackCount(); !ok {
		return &ValidationError{Name: "feedback_count", err: errors.New(`ent: missing required field "Insight.feedback_count"`)}
	}
	if _, ok := _c.mutation.HelpfulCount(); !ok {
		return &ValidationError{Name: "helpful_count", err: errors.New(`ent: missing required field "Insight.helpful_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Insight.created_at"`)}
	}
	return nil
}

func (_c *InsightCreate) sqlSave(ctx context.Context) (*Insight, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Insight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsightCreate) createSpec() (*Insight, *sqlgraph.CreateSpec) {
	var (
		_node = &Insight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insight.Table, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(insight.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.PatternType(); ok {
		_spec.SetField(insight.FieldPatternType, field.TypeEnum, value)
		_node.PatternType = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(insight.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(insight.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.EffectivenessScore(); ok {
		_spec.SetField(insight.FieldEffectivenessScore, field.TypeFloat64, value)
		_node.EffectivenessScore = &value
	}
	if value, ok := _c.mutation.FeedbackCount(); ok {
		_spec.SetField(insight.FieldFeedbackCount, field.TypeInt, value)
		_node.FeedbackCount = value
	}
	if value, ok := _c.mutation.HelpfulCount(); ok {
		_spec.SetField(insight.FieldHelpfulCount, field.TypeInt, value)
		_node.HelpfulCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FeatureIDs(); len(nodes) > 0 {
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
		_node.FeatureID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InsightCreateBulk is the builder for creating many Insight entities in bulk.
type InsightCreateBulk struct {
	config
	err      error
	builders []*InsightCreate
}

// Save creates the Insight entities in the database.
func (_c *InsightCreateBulk) Save(ctx context.Context) ([]*Insight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Insight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InsightCreateBulk) SaveX(ctx context.Context) []*Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
