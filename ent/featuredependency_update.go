// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
	"github.com/ijoka-ai/ijoka/ent/predicate"
)

// FeatureDependencyUpdate is the builder for updating FeatureDependency entities.
type FeatureDependencyUpdate struct {
	config
	hooks    []Hook
	mutation *FeatureDependencyMutation
}

// Where appends a list predicates to the FeatureDependencyUpdate builder.
func (_u *FeatureDependencyUpdate) Where(ps ...predicate.FeatureDependency) *FeatureDependencyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *FeatureDependencyUpdate) SetKind(v featuredependency.Kind) *FeatureDependencyUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *FeatureDependencyUpdate) SetNillableKind(v *featuredependency.Kind) *FeatureDependencyUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the FeatureDependencyMutation object of the builder.
func (_u *FeatureDependencyUpdate) Mutation() *FeatureDependencyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeatureDependencyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureDependencyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeatureDependencyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureDependencyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureDependencyUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := featuredependency.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "FeatureDependency.kind": %w`, err)}
		}
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeatureDependency.source"`)
	}
	if _u.mutation.TargetCleared() && len(_u.mutation.TargetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeatureDependency.target"`)
	}
	return nil
}

func (_u *FeatureDependencyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(featuredependency.Table, featuredependency.Columns, sqlgraph.NewFieldSpec(featuredependency.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(featuredependency.FieldKind, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{featuredependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeatureDependencyUpdateOne is the builder for updating a single FeatureDependency entity.
type FeatureDependencyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeatureDependencyMutation
}

// SetKind sets the "kind" field.
func (_u *FeatureDependencyUpdateOne) SetKind(v featuredependency.Kind) *FeatureDependencyUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *FeatureDependencyUpdateOne) SetNillableKind(v *featuredependency.Kind) *FeatureDependencyUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the FeatureDependencyMutation object of the builder.
func (_u *FeatureDependencyUpdateOne) Mutation() *FeatureDependencyMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeatureDependencyUpdate builder.
func (_u *FeatureDependencyUpdateOne) Where(ps ...predicate.FeatureDependency) *FeatureDependencyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeatureDependencyUpdateOne) Select(field string, fields ...string) *FeatureDependencyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeatureDependency entity.
func (_u *FeatureDependencyUpdateOne) Save(ctx context.Context) (*FeatureDependency, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureDependencyUpdateOne) SaveX(ctx context.Context) *FeatureDependency {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeatureDependencyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureDependencyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureDependencyUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := featuredependency.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "FeatureDependency.kind": %w`, err)}
		}
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeatureDependency.source"`)
	}
	if _u.mutation.TargetCleared() && len(_u.mutation.TargetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeatureDependency.target"`)
	}
	return nil
}

func (_u *FeatureDependencyUpdateOne) sqlSave(ctx context.Context) (_node *FeatureDependency, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(featuredependency.Table, featuredependency.Columns, sqlgraph.NewFieldSpec(featuredependency.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeatureDependency.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, featuredependency.FieldID)
		for _, f := range fields {
			if !featuredependency.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != featuredependency.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(featuredependency.FieldKind, field.TypeEnum, value)
	}
	_node = &FeatureDependency{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{featuredependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
