// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/ent/commit"
	"github.com/ijoka-ai/ijoka/ent/feature"
)

// CommitCreate is the builder for creating a Commit entity.
type CommitCreate struct {
	config
	mutation *CommitMutation
	hooks    []Hook
}

// SetMessage sets the "message" field.
func (_c *CommitCreate) SetMessage(v string) *CommitCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *CommitCreate) SetAuthor(v string) *CommitCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *CommitCreate) SetNillableAuthor(v *string) *CommitCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CommitCreate) SetTimestamp(v time.Time) *CommitCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CommitCreate) SetSessionID(v string) *CommitCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFeatureID sets the "feature_id" field.
func (_c *CommitCreate) SetFeatureID(v string) *CommitCreate {
	_c.mutation.SetFeatureID(v)
	return _c
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_c *CommitCreate) SetNillableFeatureID(v *string) *CommitCreate {
	if v != nil {
		_c.SetFeatureID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommitCreate) SetID(v string) *CommitCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AgentSession entity.
func (_c *CommitCreate) SetSession(v *AgentSession) *CommitCreate {
	return _c.SetSessionID(v.ID)
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_c *CommitCreate) SetFeature(v *Feature) *CommitCreate {
	return _c.SetFeatureID(v.ID)
}

// Mutation returns the CommitMutation object of the builder.
func (_c *CommitCreate) Mutation() *CommitMutation {
	return _c.mutation
}

// Save creates the Commit in the database.
func (_c *CommitCreate) Save(ctx context.Context) (*Commit, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommitCreate) SaveX(ctx context.Context) *Commit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommitCreate) check() error {
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "Commit.message"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Commit.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Commit.session_id"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Commit.session"`)}
	}
	return nil
}

func (_c *CommitCreate) sqlSave(ctx context.Context) (*Commit, error) {
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
			return nil, fmt.Errorf("unexpected Commit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommitCreate) createSpec() (*Commit, *sqlgraph.CreateSpec) {
	var (
		_node = &Commit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commit.Table, sqlgraph.NewFieldSpec(commit.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(commit.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(commit.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(commit.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commit.SessionTable,
			Columns: []string{commit.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeatureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commit.FeatureTable,
			Columns: []string{commit.FeatureColumn},
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

// CommitCreateBulk is the builder for creating many Commit entities in bulk.
type CommitCreateBulk struct {
	config
	err      error
	builders []*CommitCreate
}

// Save creates the Commit entities in the database.
func (_c *CommitCreateBulk) Save(ctx context.Context) ([]*Commit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Commit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommitMutation)
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
func (_c *CommitCreateBulk) SaveX(ctx context.Context) []*Commit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
