// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/ent/commit"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/predicate"
)

// AgentSessionUpdate is the builder for updating AgentSession entities.
type AgentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSessionMutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdate) Where(ps ...predicate.AgentSession) *AgentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgent sets the "agent" field.
func (_u *AgentSessionUpdate) SetAgent(v string) *AgentSessionUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableAgent(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdate) SetStatus(v agentsession.Status) *AgentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *AgentSessionUpdate) SetLastActivity(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableLastActivity(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentSessionUpdate) SetEndedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableEndedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentSessionUpdate) ClearEndedAt() *AgentSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetEventCount sets the "event_count" field.
func (_u *AgentSessionUpdate) SetEventCount(v int) *AgentSessionUpdate {
	_u.mutation.ResetEventCount()
	_u.mutation.SetEventCount(v)
	return _u
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableEventCount(v *int) *AgentSessionUpdate {
	if v != nil {
		_u.SetEventCount(*v)
	}
	return _u
}

// AddEventCount adds value to the "event_count" field.
func (_u *AgentSessionUpdate) AddEventCount(v int) *AgentSessionUpdate {
	_u.mutation.AddEventCount(v)
	return _u
}

// SetIsSubagent sets the "is_subagent" field.
func (_u *AgentSessionUpdate) SetIsSubagent(v bool) *AgentSessionUpdate {
	_u.mutation.SetIsSubagent(v)
	return _u
}

// SetNillableIsSubagent sets the "is_subagent" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableIsSubagent(v *bool) *AgentSessionUpdate {
	if v != nil {
		_u.SetIsSubagent(*v)
	}
	return _u
}

// SetStartCommit sets the "start_commit" field.
func (_u *AgentSessionUpdate) SetStartCommit(v string) *AgentSessionUpdate {
	_u.mutation.SetStartCommit(v)
	return _u
}

// SetNillableStartCommit sets the "start_commit" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStartCommit(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetStartCommit(*v)
	}
	return _u
}

// ClearStartCommit clears the value of the "start_commit" field.
func (_u *AgentSessionUpdate) ClearStartCommit() *AgentSessionUpdate {
	_u.mutation.ClearStartCommit()
	return _u
}

// SetActiveFeatureID sets the "active_feature_id" field.
func (_u *AgentSessionUpdate) SetActiveFeatureID(v string) *AgentSessionUpdate {
	_u.mutation.SetActiveFeatureID(v)
	return _u
}

// SetNillableActiveFeatureID sets the "active_feature_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableActiveFeatureID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetActiveFeatureID(*v)
	}
	return _u
}

// ClearActiveFeatureID clears the value of the "active_feature_id" field.
func (_u *AgentSessionUpdate) ClearActiveFeatureID() *AgentSessionUpdate {
	_u.mutation.ClearActiveFeatureID()
	return _u
}

// SetClassifiedAt sets the "classified_at" field.
func (_u *AgentSessionUpdate) SetClassifiedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetClassifiedAt(v)
	return _u
}

// SetNillableClassifiedAt sets the "classified_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableClassifiedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetClassifiedAt(*v)
	}
	return _u
}

// ClearClassifiedAt clears the value of the "classified_at" field.
func (_u *AgentSessionUpdate) ClearClassifiedAt() *AgentSessionUpdate {
	_u.mutation.ClearClassifiedAt()
	return _u
}

// SetClassificationSource sets the "classification_source" field.
func (_u *AgentSessionUpdate) SetClassificationSource(v string) *AgentSessionUpdate {
	_u.mutation.SetClassificationSource(v)
	return _u
}

// SetNillableClassificationSource sets the "classification_source" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableClassificationSource(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetClassificationSource(*v)
	}
	return _u
}

// ClearClassificationSource clears the value of the "classification_source" field.
func (_u *AgentSessionUpdate) ClearClassificationSource() *AgentSessionUpdate {
	_u.mutation.ClearClassificationSource()
	return _u
}

// SetLastPrompt sets the "last_prompt" field.
func (_u *AgentSessionUpdate) SetLastPrompt(v string) *AgentSessionUpdate {
	_u.mutation.SetLastPrompt(v)
	return _u
}

// SetNillableLastPrompt sets the "last_prompt" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableLastPrompt(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetLastPrompt(*v)
	}
	return _u
}

// ClearLastPrompt clears the value of the "last_prompt" field.
func (_u *AgentSessionUpdate) ClearLastPrompt() *AgentSessionUpdate {
	_u.mutation.ClearLastPrompt()
	return _u
}

// SetNudgesShown sets the "nudges_shown" field.
func (_u *AgentSessionUpdate) SetNudgesShown(v []string) *AgentSessionUpdate {
	_u.mutation.SetNudgesShown(v)
	return _u
}

// AppendNudgesShown appends value to the "nudges_shown" field.
func (_u *AgentSessionUpdate) AppendNudgesShown(v []string) *AgentSessionUpdate {
	_u.mutation.AppendNudgesShown(v)
	return _u
}

// ClearNudgesShown clears the value of the "nudges_shown" field.
func (_u *AgentSessionUpdate) ClearNudgesShown() *AgentSessionUpdate {
	_u.mutation.ClearNudgesShown()
	return _u
}

// SetContinuedFromID sets the "continued_from_id" field.
func (_u *AgentSessionUpdate) SetContinuedFromID(v string) *AgentSessionUpdate {
	_u.mutation.SetContinuedFromID(v)
	return _u
}

// SetNillableContinuedFromID sets the "continued_from_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableContinuedFromID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetContinuedFromID(*v)
	}
	return _u
}

// ClearContinuedFromID clears the value of the "continued_from_id" field.
func (_u *AgentSessionUpdate) ClearContinuedFromID() *AgentSessionUpdate {
	_u.mutation.ClearContinuedFromID()
	return _u
}

// SetContinuedFrom sets the "continued_from" edge to the AgentSession entity.
func (_u *AgentSessionUpdate) SetContinuedFrom(v *AgentSession) *AgentSessionUpdate {
	return _u.SetContinuedFromID(v.ID)
}

// AddContinuationIDs adds the "continuations" edge to the AgentSession entity by IDs.
func (_u *AgentSessionUpdate) AddContinuationIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.AddContinuationIDs(ids...)
	return _u
}

// AddContinuations adds the "continuations" edges to the AgentSession entity.
func (_u *AgentSessionUpdate) AddContinuations(v ...*AgentSession) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContinuationIDs(ids...)
}

// AddEventIDs adds the "events" edge to the HookEvent entity by IDs.
func (_u *AgentSessionUpdate) AddEventIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the HookEvent entity.
func (_u *AgentSessionUpdate) AddEvents(v ...*HookEvent) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddCommitIDs adds the "commits" edge to the Commit entity by IDs.
func (_u *AgentSessionUpdate) AddCommitIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.AddCommitIDs(ids...)
	return _u
}

// AddCommits adds the "commits" edges to the Commit entity.
func (_u *AgentSessionUpdate) AddCommits(v ...*Commit) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommitIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdate) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearContinuedFrom clears the "continued_from" edge to the AgentSession entity.
func (_u *AgentSessionUpdate) ClearContinuedFrom() *AgentSessionUpdate {
	_u.mutation.ClearContinuedFrom()
	return _u
}

// ClearContinuations clears all "continuations" edges to the AgentSession entity.
func (_u *AgentSessionUpdate) ClearContinuations() *AgentSessionUpdate {
	_u.mutation.ClearContinuations()
	return _u
}

// RemoveContinuationIDs removes the "continuations" edge to AgentSession entities by IDs.
func (_u *AgentSessionUpdate) RemoveContinuationIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.RemoveContinuationIDs(ids...)
	return _u
}

// RemoveContinuations removes "continuations" edges to AgentSession entities.
func (_u *AgentSessionUpdate) RemoveContinuations(v ...*AgentSession) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContinuationIDs(ids...)
}

// ClearEvents clears all "events" edges to the HookEvent entity.
func (_u *AgentSessionUpdate) ClearEvents() *AgentSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to HookEvent entities by IDs.
func (_u *AgentSessionUpdate) RemoveEventIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to HookEvent entities.
func (_u *AgentSessionUpdate) RemoveEvents(v ...*HookEvent) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearCommits clears all "commits" edges to the Commit entity.
func (_u *AgentSessionUpdate) ClearCommits() *AgentSessionUpdate {
	_u.mutation.ClearCommits()
	return _u
}

// RemoveCommitIDs removes the "commits" edge to Commit entities by IDs.
func (_u *AgentSessionUpdate) RemoveCommitIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.RemoveCommitIDs(ids...)
	return _u
}

// RemoveCommits removes "commits" edges to Commit entities.
func (_u *AgentSessionUpdate) RemoveCommits(v ...*Commit) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommitIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSession.project"`)
	}
	return nil
}

func (_u *AgentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(agentsession.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(agentsession.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agentsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EventCount(); ok {
		_spec.SetField(agentsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventCount(); ok {
		_spec.AddField(agentsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsSubagent(); ok {
		_spec.SetField(agentsession.FieldIsSubagent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartCommit(); ok {
		_spec.SetField(agentsession.FieldStartCommit, field.TypeString, value)
	}
	if _u.mutation.StartCommitCleared() {
		_spec.ClearField(agentsession.FieldStartCommit, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveFeatureID(); ok {
		_spec.SetField(agentsession.FieldActiveFeatureID, field.TypeString, value)
	}
	if _u.mutation.ActiveFeatureIDCleared() {
		_spec.ClearField(agentsession.FieldActiveFeatureID, field.TypeString)
	}
	if value, ok := _u.mutation.ClassifiedAt(); ok {
		_spec.SetField(agentsession.FieldClassifiedAt, field.TypeTime, value)
	}
	if _u.mutation.ClassifiedAtCleared() {
		_spec.ClearField(agentsession.FieldClassifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClassificationSource(); ok {
		_spec.SetField(agentsession.FieldClassificationSource, field.TypeString, value)
	}
	if _u.mutation.ClassificationSourceCleared() {
		_spec.ClearField(agentsession.FieldClassificationSource, field.TypeString)
	}
	if value, ok := _u.mutation.LastPrompt(); ok {
		_spec.SetField(agentsession.FieldLastPrompt, field.TypeString, value)
	}
	if _u.mutation.LastPromptCleared() {
		_spec.ClearField(agentsession.FieldLastPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.NudgesShown(); ok {
		_spec.SetField(agentsession.FieldNudgesShown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNudgesShown(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentsession.FieldNudgesShown, value)
		})
	}
	if _u.mutation.NudgesShownCleared() {
		_spec.ClearField(agentsession.FieldNudgesShown, field.TypeJSON)
	}
	if _u.mutation.ContinuedFromCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ContinuedFromTable,
			Columns: []string{agentsession.ContinuedFromColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContinuedFromIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ContinuedFromTable,
			Columns: []string{agentsession.ContinuedFromColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContinuationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ContinuationsTable,
			Columns: []string{agentsession.ContinuationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContinuationsIDs(); len(nodes) > 0 && !_u.mutation.ContinuationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ContinuationsTable,
			Columns: []string{agentsession.ContinuationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContinuationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ContinuationsTable,
			Columns: []string{agentsession.ContinuationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.EventsTable,
			Columns: []string{agentsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hookevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.EventsTable,
			Columns: []string{agentsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hookevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.EventsTable,
			Columns: []string{agentsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hookevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.CommitsTable,
			Columns: []string{agentsession.CommitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commit.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommitsIDs(); len(nodes) > 0 && !_u.mutation.CommitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.CommitsTable,
			Columns: []string{agentsession.CommitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.CommitsTable,
			Columns: []string{agentsession.CommitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSessionUpdateOne is the builder for updating a single AgentSession entity.
type AgentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSessionMutation
}

// SetAgent sets the "agent" field.
func (_u *AgentSessionUpdateOne) SetAgent(v string) *AgentSessionUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableAgent(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdateOne) SetStatus(v agentsession.Status) *AgentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *AgentSessionUpdateOne) SetLastActivity(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableLastActivity(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentSessionUpdateOne) SetEndedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableEndedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentSessionUpdateOne) ClearEndedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetEventCount sets the "event_count" field.
func (_u *AgentSessionUpdateOne) SetEventCount(v int) *AgentSessionUpdateOne {
	_u.mutation.ResetEventCount()
	_u.mutation.SetEventCount(v)
	return _u
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableEventCount(v *int) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetEventCount(*v)
	}
	return _u
}

// AddEventCount adds value to the "event_count" field.
func (_u *AgentSessionUpdateOne) AddEventCount(v int) *AgentSessionUpdateOne {
	_u.mutation.AddEventCount(v)
	return _u
}

// SetIsSubagent sets the "is_subagent" field.
func (_u *AgentSessionUpdateOne) SetIsSubagent(v bool) *AgentSessionUpdateOne {
	_u.mutation.SetIsSubagent(v)
	return _u
}

// SetNillableIsSubagent sets the "is_subagent" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableIsSubagent(v *bool) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetIsSubagent(*v)
	}
	return _u
}

// SetStartCommit sets the "start_commit" field.
func (_u *AgentSessionUpdateOne) SetStartCommit(v string) *AgentSessionUpdateOne {
	_u.mutation.SetStartCommit(v)
	return _u
}

// SetNillableStartCommit sets the "start_commit" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStartCommit(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStartCommit(*v)
	}
	return _u
}

// ClearStartCommit clears the value of the "start_commit" field.
func (_u *AgentSessionUpdateOne) ClearStartCommit() *AgentSessionUpdateOne {
	_u.mutation.ClearStartCommit()
	return _u
}

// SetActiveFeatureID sets the "active_feature_id" field.
func (_u *AgentSessionUpdateOne) SetActiveFeatureID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetActiveFeatureID(v)
	return _u
}

// SetNillableActiveFeatureID sets the "active_feature_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableActiveFeatureID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetActiveFeatureID(*v)
	}
	return _u
}

// ClearActiveFeatureID clears the value of the "active_feature_id" field.
func (_u *AgentSessionUpdateOne) ClearActiveFeatureID() *AgentSessionUpdateOne {
	_u.mutation.ClearActiveFeatureID()
	return _u
}

// SetClassifiedAt sets the "classified_at" field.
func (_u *AgentSessionUpdateOne) SetClassifiedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetClassifiedAt(v)
	return _u
}

// SetNillableClassifiedAt sets the "classified_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableClassifiedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetClassifiedAt(*v)
	}
	return _u
}

// ClearClassifiedAt clears the value of the "classified_at" field.
func (_u *AgentSessionUpdateOne) ClearClassifiedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearClassifiedAt()
	return _u
}

// SetClassificationSource sets the "classification_source" field.
func (_u *AgentSessionUpdateOne) SetClassificationSource(v string) *AgentSessionUpdateOne {
	_u.mutation.SetClassificationSource(v)
	return _u
}

// SetNillableClassificationSource sets the "classification_source" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableClassificationSource(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetClassificationSource(*v)
	}
	return _u
}

// ClearClassificationSource clears the value of the "classification_source" field.
func (_u *AgentSessionUpdateOne) ClearClassificationSource() *AgentSessionUpdateOne {
	_u.mutation.ClearClassificationSource()
	return _u
}

// SetLastPrompt sets the "last_prompt" field.
func (_u *AgentSessionUpdateOne) SetLastPrompt(v string) *AgentSessionUpdateOne {
	_u.mutation.SetLastPrompt(v)
	return _u
}

// SetNillableLastPrompt sets the "last_prompt" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableLastPrompt(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetLastPrompt(*v)
	}
	return _u
}

// ClearLastPrompt clears the value of the "last_prompt" field.
func (_u *AgentSessionUpdateOne) ClearLastPrompt() *AgentSessionUpdateOne {
	_u.mutation.ClearLastPrompt()
	return _u
}

// SetNudgesShown sets the "nudges_shown" field.
func (_u *AgentSessionUpdateOne) SetNudgesShown(v []string) *AgentSessionUpdateOne {
	_u.mutation.SetNudgesShown(v)
	return _u
}

// AppendNudgesShown appends value to the "nudges_shown" field.
func (_u *AgentSessionUpdateOne) AppendNudgesShown(v []string) *AgentSessionUpdateOne {
	_u.mutation.AppendNudgesShown(v)
	return _u
}

// ClearNudgesShown clears the value of the "nudges_shown" field.
func (_u *AgentSessionUpdateOne) ClearNudgesShown() *AgentSessionUpdateOne {
	_u.mutation.ClearNudgesShown()
	return _u
}

// SetContinuedFromID sets the "continued_from_id" field.
func (_u *AgentSessionUpdateOne) SetContinuedFromID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetContinuedFromID(v)
	return _u
}

// SetNillableContinuedFromID sets the "continued_from_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableContinuedFromID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetContinuedFromID(*v)
	}
	return _u
}

// ClearContinuedFromID clears the value of the "continued_from_id" field.
func (_u *AgentSessionUpdateOne) ClearContinuedFromID() *AgentSessionUpdateOne {
	_u.mutation.ClearContinuedFromID()
	return _u
}

// SetContinuedFrom sets the "continued_from" edge to the AgentSession entity.
func (_u *AgentSessionUpdateOne) SetContinuedFrom(v *AgentSession) *AgentSessionUpdateOne {
	return _u.SetContinuedFromID(v.ID)
}

// AddContinuationIDs adds the "continuations" edge to the AgentSession entity by IDs.
func (_u *AgentSessionUpdateOne) AddContinuationIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.AddContinuationIDs(ids...)
	return _u
}

// AddContinuations adds the "continuations" edges to the AgentSession entity.
func (_u *AgentSessionUpdateOne) AddContinuations(v ...*AgentSession) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContinuationIDs(ids...)
}

// AddEventIDs adds the "events" edge to the HookEvent entity by IDs.
func (_u *AgentSessionUpdateOne) AddEventIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the HookEvent entity.
func (_u *AgentSessionUpdateOne) AddEvents(v ...*HookEvent) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddCommitIDs adds the "commits" edge to the Commit entity by IDs.
func (_u *AgentSessionUpdateOne) AddCommitIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.AddCommitIDs(ids...)
	return _u
}

// AddCommits adds the "commits" edges to the Commit entity.
func (_u *AgentSessionUpdateOne) AddCommits(v ...*Commit) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommitIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdateOne) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearContinuedFrom clears the "continued_from" edge to the AgentSession entity.
func (_u *AgentSessionUpdateOne) ClearContinuedFrom() *AgentSessionUpdateOne {
	_u.mutation.ClearContinuedFrom()
	return _u
}

// ClearContinuations clears all "continuations" edges to the AgentSession entity.
func (_u *AgentSessionUpdateOne) ClearContinuations() *AgentSessionUpdateOne {
	_u.mutation.ClearContinuations()
	return _u
}

// RemoveContinuationIDs removes the "continuations" edge to AgentSession entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveContinuationIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.RemoveContinuationIDs(ids...)
	return _u
}

// RemoveContinuations removes "continuations" edges to AgentSession entities.
func (_u *AgentSessionUpdateOne) RemoveContinuations(v ...*AgentSession) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContinuationIDs(ids...)
}

// ClearEvents clears all "events" edges to the HookEvent entity.
func (_u *AgentSessionUpdateOne) ClearEvents() *AgentSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to HookEvent entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveEventIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to HookEvent entities.
func (_u *AgentSessionUpdateOne) RemoveEvents(v ...*HookEvent) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearCommits clears all "commits" edges to the Commit entity.
func (_u *AgentSessionUpdateOne) ClearCommits() *AgentSessionUpdateOne {
	_u.mutation.ClearCommits()
	return _u
}

// RemoveCommitIDs removes the "commits" edge to Commit entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveCommitIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.RemoveCommitIDs(ids...)
	return _u
}

// RemoveCommits removes "commits" edges to Commit entities.
func (_u *AgentSessionUpdateOne) RemoveCommits(v ...*Commit) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommitIDs(ids...)
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdateOne) Where(ps ...predicate.AgentSession) *AgentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSessionUpdateOne) Select(field string, fields ...string) *AgentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSession entity.
func (_u *AgentSessionUpdateOne) Save(ctx context.Context) (*AgentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) SaveX(ctx context.Context) *AgentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSession.project"`)
	}
	return nil
}

func (_u *AgentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for _, f := range fields {
			if !agentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsession.FieldID {
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
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(agentsession.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(agentsession.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agentsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EventCount(); ok {
		_spec.SetField(agentsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventCount(); ok {
		_spec.AddField(agentsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsSubagent(); ok {
		_spec.SetField(agentsession.FieldIsSubagent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartCommit(); ok {
		_spec.SetField(agentsession.FieldStartCommit, field.TypeString, value)
	}
	if _u.mutation.StartCommitCleared() {
		_spec.ClearField(agentsession.FieldStartCommit, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveFeatureID(); ok {
		_spec.SetField(agentsession.FieldActiveFeatureID, field.TypeString, value)
	}
	if _u.mutation.ActiveFeatureIDCleared() {
		_spec.ClearField(agentsession.FieldActiveFeatureID, field.TypeString)
	}
	if value, ok := _u.mutation.ClassifiedAt(); ok {
		_spec.SetField(agentsession.FieldClassifiedAt, field.TypeTime, value)
	}
	if _u.mutation.ClassifiedAtCleared() {
		_spec.ClearField(agentsession.FieldClassifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClassificationSource(); ok {
		_spec.SetField(agentsession.FieldClassificationSource, field.TypeString, value)
	}
	if _u.mutation.ClassificationSourceCleared() {
		_spec.ClearField(agentsession.FieldClassificationSource, field.TypeString)
	}
	if value, ok := _u.mutation.LastPrompt(); ok {
		_spec.SetField(agentsession.FieldLastPrompt, field.TypeString, value)
	}
	if _u.mutation.LastPromptCleared() {
		_spec.ClearField(agentsession.FieldLastPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.NudgesShown(); ok {
		_spec.SetField(agentsession.FieldNudgesShown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNudgesShown(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentsession.FieldNudgesShown, value)
		})
	}
	if _u.mutation.NudgesShownCleared() {
		_spec.ClearField(agentsession.FieldNudgesShown, field.TypeJSON)
	}
	if _u.mutation.ContinuedFromCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ContinuedFromTable,
			Columns: []string{agentsession.ContinuedFromColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContinuedFromIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ContinuedFromTable,
			Columns: []string{agentsession.ContinuedFromColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContinuationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ContinuationsTable,
			Columns: []string{agentsession.ContinuationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContinuationsIDs(); len(nodes) > 0 && !_u.mutation.ContinuationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ContinuationsTable,
			Columns: []string{agentsession.ContinuationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContinuationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.ContinuationsTable,
			Columns: []string{agentsession.ContinuationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.EventsTable,
			Columns: []string{agentsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hookevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.EventsTable,
			Columns: []string{agentsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hookevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.EventsTable,
			Columns: []string{agentsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hookevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.CommitsTable,
			Columns: []string{agentsession.CommitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commit.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommitsIDs(); len(nodes) > 0 && !_u.mutation.CommitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.CommitsTable,
			Columns: []string{agentsession.CommitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.CommitsTable,
			Columns: []string{agentsession.CommitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
