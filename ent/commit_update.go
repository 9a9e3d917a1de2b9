// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/commit"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/predicate"
)

// CommitUpdate is the builder for updating Commit entities.
type CommitUpdate struct {
	config
	hooks    []Hook
	mutation *CommitMutation
}

// Where appends a list predicates to the CommitUpdate builder.
func (_u *CommitUpdate) Where(ps ...predicate.Commit) *CommitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessage sets the "message" field.
func (_u *CommitUpdate) SetMessage(v string) *CommitUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *CommitUpdate) SetNillableMessage(v *string) *CommitUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *CommitUpdate) SetAuthor(v string) *CommitUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *CommitUpdate) SetNillableAuthor(v *string) *CommitUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *CommitUpdate) ClearAuthor() *CommitUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetFeatureID sets the "feature_id" field.
func (_u *CommitUpdate) SetFeatureID(v string) *CommitUpdate {
	_u.mutation.SetFeatureID(v)
	return _u
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_u *CommitUpdate) SetNillableFeatureID(v *string) *CommitUpdate {
	if v != nil {
		_u.SetFeatureID(*v)
	}
	return _u
}

// ClearFeatureID clears the value of the "feature_id" field.
func (_u *CommitUpdate) ClearFeatureID() *CommitUpdate {
	_u.mutation.ClearFeatureID()
	return _u
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_u *CommitUpdate) SetFeature(v *Feature) *CommitUpdate {
	return _u.SetFeatureID(v.ID)
}

// Mutation returns the CommitMutation object of the builder.
func (_u *CommitUpdate) Mutation() *CommitMutation {
	return _u.mutation
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (_u *CommitUpdate) ClearFeature() *CommitUpdate {
	_u.mutation.ClearFeature()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Commit.session"`)
	}
	return nil
}

func (_u *CommitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commit.Table, commit.Columns, sqlgraph.NewFieldSpec(commit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(commit.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(commit.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(commit.FieldAuthor, field.TypeString)
	}
	if _u.mutation.FeatureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeatureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommitUpdateOne is the builder for updating a single Commit entity.
type CommitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommitMutation
}

// SetMessage sets the "message" field.
func (_u *CommitUpdateOne) SetMessage(v string) *CommitUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *CommitUpdateOne) SetNillableMessage(v *string) *CommitUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *CommitUpdateOne) SetAuthor(v string) *CommitUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *CommitUpdateOne) SetNillableAuthor(v *string) *CommitUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *CommitUpdateOne) ClearAuthor() *CommitUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetFeatureID sets the "feature_id" field.
func (_u *CommitUpdateOne) SetFeatureID(v string) *CommitUpdateOne {
	_u.mutation.SetFeatureID(v)
	return _u
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_u *CommitUpdateOne) SetNillableFeatureID(v *string) *CommitUpdateOne {
	if v != nil {
		_u.SetFeatureID(*v)
	}
	return _u
}

// ClearFeatureID clears the value of the "feature_id" field.
func (_u *CommitUpdateOne) ClearFeatureID() *CommitUpdateOne {
	_u.mutation.ClearFeatureID()
	return _u
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_u *CommitUpdateOne) SetFeature(v *Feature) *CommitUpdateOne {
	return _u.SetFeatureID(v.ID)
}

// Mutation returns the CommitMutation object of the builder.
func (_u *CommitUpdateOne) Mutation() *CommitMutation {
	return _u.mutation
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (_u *CommitUpdateOne) ClearFeature() *CommitUpdateOne {
	_u.mutation.ClearFeature()
	return _u
}

// Where appends a list predicates to the CommitUpdate builder.
func (_u *CommitUpdateOne) Where(ps ...predicate.Commit) *CommitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommitUpdateOne) Select(field string, fields ...string) *CommitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Commit entity.
func (_u *CommitUpdateOne) Save(ctx context.Context) (*Commit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitUpdateOne) SaveX(ctx context.Context) *Commit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Commit.session"`)
	}
	return nil
}

func (_u *CommitUpdateOne) sqlSave(ctx context.Context) (_node *Commit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commit.Table, commit.Columns, sqlgraph.NewFieldSpec(commit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Commit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commit.FieldID)
		for _, f := range fields {
			if !commit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commit.FieldID {
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
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(commit.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(commit.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(commit.FieldAuthor, field.TypeString)
	}
	if _u.mutation.FeatureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeatureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Commit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
