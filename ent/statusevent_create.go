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
	"github.com/ijoka-ai/ijoka/ent/statusevent"
)

// StatusEventCreate is the builder for creating a StatusEvent entity.
type StatusEventCreate struct {
	config
	mutation *StatusEventMutation
	hooks    []Hook
}

// SetFromStatus sets the "from_status" field.
func (_c *StatusEventCreate) SetFromStatus(v string) *StatusEventCreate {
	_c.mutation.SetFromStatus(v)
	return _c
}

// SetToStatus sets the "to_status" field.
func (_c *StatusEventCreate) SetToStatus(v string) *StatusEventCreate {
	_c.mutation.SetToStatus(v)
	return _c
}

// SetAt sets the "at" field.
func (_c *StatusEventCreate) SetAt(v time.Time) *StatusEventCreate {
	_c.mutation.SetAt(v)
	return _c
}

// SetNillableAt sets the "at" field if the given value is not nil.
func (_c *StatusEventCreate) SetNillableAt(v *time.Time) *StatusEventCreate {
	if v != nil {
		_c.SetAt(*v)
	}
	return _c
}

// SetBy sets the "by" field.
func (_c *StatusEventCreate) SetBy(v string) *StatusEventCreate {
	_c.mutation.SetBy(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *StatusEventCreate) SetSessionID(v string) *StatusEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *StatusEventCreate) SetNillableSessionID(v *string) *StatusEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *StatusEventCreate) SetReason(v string) *StatusEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *StatusEventCreate) SetNillableReason(v *string) *StatusEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetFeatureID sets the "feature_id" field.
func (_c *StatusEventCreate) SetFeatureID(v string) *StatusEventCreate {
	_c.mutation.SetFeatureID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StatusEventCreate) SetID(v string) *StatusEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_c *StatusEventCreate) SetFeature(v *Feature) *StatusEventCreate {
	return _c.SetFeatureID(v.ID)
}

// Mutation returns the StatusEventMutation object of the builder.
func (_c *StatusEventCreate) Mutation() *StatusEventMutation {
	return _c.mutation
}

// Save creates the StatusEvent in the database.
func (_c *StatusEventCreate) Save(ctx context.Context) (*StatusEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StatusEventCreate) SaveX(ctx context.Context) *StatusEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StatusEventCreate) defaults() {
	if _, ok := _c.mutation.At(); !ok {
		v := statusevent.DefaultAt()
		_c.mutation.SetAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StatusEventCreate) check() error {
	if _, ok := _c.mutation.FromStatus(); !ok {
		return &ValidationError{Name: "from_status", err: errors.New(`ent: missing required field "StatusEvent.from_status"`)}
	}
	if _, ok := _c.mutation.ToStatus(); !ok {
		return &ValidationError{Name: "to_status", err: errors.New(`ent: missing required field "StatusEvent.to_status"`)}
	}
	if _, ok := _c.mutation.At(); !ok {
		return &ValidationError{Name: "at", err: errors.New(`ent: missing required field "StatusEvent.at"`)}
	}
	if _, ok := _c.mutation.By(); !ok {
		return &ValidationError{Name: "by", err: errors.New(`ent: missing required field "StatusEvent.by"`)}
	}
	if _, ok := _c.mutation.FeatureID(); !ok {
		return &ValidationError{Name: "feature_id", err: errors.New(`ent: missing required field "StatusEvent.feature_id"`)}
	}
	if len(_c.mutation.FeatureIDs()) == 0 {
		return &ValidationError{Name: "feature", err: errors.New(`ent: missing required edge "StatusEvent.feature"`)}
	}
	return nil
}

func (_c *StatusEventCreate) sqlSave(ctx context.Context) (*StatusEvent, error) {
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
			return nil, fmt.Errorf("unexpected StatusEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StatusEventCreate) createSpec() (*StatusEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StatusEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statusevent.Table, sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FromStatus(); ok {
		_spec.SetField(statusevent.FieldFromStatus, field.TypeString, value)
		_node.FromStatus = value
	}
	if value, ok := _c.mutation.ToStatus(); ok {
		_spec.SetField(statusevent.FieldToStatus, field.TypeString, value)
		_node.ToStatus = value
	}
	if value, ok := _c.mutation.At(); ok {
		_spec.SetField(statusevent.FieldAt, field.TypeTime, value)
		_node.At = value
	}
	if value, ok := _c.mutation.By(); ok {
		_spec.SetField(statusevent.FieldBy, field.TypeString, value)
		_node.By = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(statusevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(statusevent.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if nodes := _c.mutation.FeatureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   statusevent.FeatureTable,
			Columns: []string{statusevent.FeatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FeatureID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StatusEventCreateBulk is the builder for creating many StatusEvent entities in bulk.
type StatusEventCreateBulk struct {
	config
	err      error
	builders []*StatusEventCreate
}

// Save creates the StatusEvent entities in the database.
func (_c *StatusEventCreateBulk) Save(ctx context.Context) ([]*StatusEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StatusEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatusEventMutation)
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
func (_c *StatusEventCreateBulk) SaveX(ctx context.Context) []*StatusEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
