// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/predicate"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
)

// StatusEventUpdate is the builder for updating StatusEvent entities.
type StatusEventUpdate struct {
	config
	hooks    []Hook
	mutation *StatusEventMutation
}

// Where appends a list predicates to the StatusEventUpdate builder.
func (_u *StatusEventUpdate) Where(ps ...predicate.StatusEvent) *StatusEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the StatusEventMutation object of the builder.
func (_u *StatusEventUpdate) Mutation() *StatusEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StatusEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatusEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StatusEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatusEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StatusEventUpdate) check() error {
	if _u.mutation.FeatureCleared() && len(_u.mutation.FeatureIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StatusEvent.feature"`)
	}
	return nil
}

func (_u *StatusEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(statusevent.Table, statusevent.Columns, sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(statusevent.FieldSessionID, field.TypeString)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(statusevent.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statusevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StatusEventUpdateOne is the builder for updating a single StatusEvent entity.
type StatusEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StatusEventMutation
}

// Mutation returns the StatusEventMutation object of the builder.
func (_u *StatusEventUpdateOne) Mutation() *StatusEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StatusEventUpdate builder.
func (_u *StatusEventUpdateOne) Where(ps ...predicate.StatusEvent) *StatusEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StatusEventUpdateOne) Select(field string, fields ...string) *StatusEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StatusEvent entity.
func (_u *StatusEventUpdateOne) Save(ctx context.Context) (*StatusEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatusEventUpdateOne) SaveX(ctx context.Context) *StatusEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StatusEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatusEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StatusEventUpdateOne) check() error {
	if _u.mutation.FeatureCleared() && len(_u.mutation.FeatureIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StatusEvent.feature"`)
	}
	return nil
}

func (_u *StatusEventUpdateOne) sqlSave(ctx context.Context) (_node *StatusEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(statusevent.Table, statusevent.Columns, sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StatusEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, statusevent.FieldID)
		for _, f := range fields {
			if !statusevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != statusevent.FieldID {
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
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(statusevent.FieldSessionID, field.TypeString)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(statusevent.FieldReason, field.TypeString)
	}
	_node = &StatusEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statusevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
