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
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
)

// FeatureDependencyCreate is the builder for creating a FeatureDependency entity.
type FeatureDependencyCreate struct {
	config
	mutation *FeatureDependencyMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *FeatureDependencyCreate) SetKind(v featuredependency.Kind) *FeatureDependencyCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *FeatureDependencyCreate) SetNillableKind(v *featuredependency.Kind) *FeatureDependencyCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeatureDependencyCreate) SetCreatedAt(v time.Time) *FeatureDependencyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeatureDependencyCreate) SetNillableCreatedAt(v *time.Time) *FeatureDependencyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *FeatureDependencyCreate) SetSourceID(v string) *FeatureDependencyCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *FeatureDependencyCreate) SetTargetID(v string) *FeatureDependencyCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FeatureDependencyCreate) SetID(v string) *FeatureDependencyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSource sets the "source" edge to the Feature entity.
func (_c *FeatureDependencyCreate) SetSource(v *Feature) *FeatureDependencyCreate {
	return _c.SetSourceID(v.ID)
}

// SetTarget sets the "target" edge to the Feature entity.
func (_c *FeatureDependencyCreate) SetTarget(v *Feature) *FeatureDependencyCreate {
	return _c.SetTargetID(v.ID)
}

// Mutation returns the FeatureDependencyMutation object of the builder.
func (_c *FeatureDependencyCreate) Mutation() *FeatureDependencyMutation {
	return _c.mutation
}

// Save creates the FeatureDependency in the database.
func (_c *FeatureDependencyCreate) Save(ctx context.Context) (*FeatureDependency, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeatureDependencyCreate) SaveX(ctx context.Context) *FeatureDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureDependencyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureDependencyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeatureDependencyCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := featuredependency.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := featuredependency.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeatureDependencyCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "FeatureDependency.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := featuredependency.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "FeatureDependency.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeatureDependency.created_at"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "FeatureDependency.source_id"`)}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "FeatureDependency.target_id"`)}
	}
	if len(_c.mutation.SourceIDs()) == 0 {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "FeatureDependency.source"`)}
	}
	if len(_c.mutation.TargetIDs()) == 0 {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required edge "FeatureDependency.target"`)}
	}
	return nil
}

func (_c *FeatureDependencyCreate) sqlSave(ctx context.Context) (*FeatureDependency, error) {
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
			return nil, fmt.Errorf("unexpected FeatureDependency.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeatureDependencyCreate) createSpec() (*FeatureDependency, *sqlgraph.CreateSpec) {
	var (
		_node = &FeatureDependency{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(featuredependency.Table, sqlgraph.NewFieldSpec(featuredependency.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(featuredependency.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(featuredependency.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   featuredependency.SourceTable,
			Columns: []string{featuredependency.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TargetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   featuredependency.TargetTable,
			Columns: []string{featuredependency.TargetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TargetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FeatureDependencyCreateBulk is the builder for creating many FeatureDependency entities in bulk.
type FeatureDependencyCreateBulk struct {
	config
	err      error
	builders []*FeatureDependencyCreate
}

// Save creates the FeatureDependency entities in the database.
func (_c *FeatureDependencyCreateBulk) Save(ctx context.Context) ([]*FeatureDependency, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeatureDependency, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeatureDependencyMutation)
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
func (_c *FeatureDependencyCreateBulk) SaveX(ctx context.Context) []*FeatureDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureDependencyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureDependencyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
