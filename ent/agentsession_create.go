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
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/project"
)

// AgentSessionCreate is the builder for creating a AgentSession entity.
type AgentSessionCreate struct {
	config
	mutation *AgentSessionMutation
	hooks    []Hook
}

// SetAgent sets the "agent" field.
func (_c *AgentSessionCreate) SetAgent(v string) *AgentSessionCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentSessionCreate) SetStatus(v agentsession.Status) *AgentSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableStatus(v *agentsession.Status) *AgentSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentSessionCreate) SetStartedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableStartedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastActivity sets the "last_activity" field.
func (_c *AgentSessionCreate) SetLastActivity(v time.Time) *AgentSessionCreate {
	_c.mutation.SetLastActivity(v)
	return _c
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableLastActivity(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetLastActivity(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *AgentSessionCreate) SetEndedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableEndedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetEventCount sets the "event_count" field.
func (_c *AgentSessionCreate) SetEventCount(v int) *AgentSessionCreate {
	_c.mutation.SetEventCount(v)
	return _c
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableEventCount(v *int) *AgentSessionCreate {
	if v != nil {
		_c.SetEventCount(*v)
	}
	return _c
}

// SetIsSubagent sets the "is_subagent" field.
func (_c *AgentSessionCreate) SetIsSubagent(v bool) *AgentSessionCreate {
	_c.mutation.SetIsSubagent(v)
	return _c
}

// SetNillableIsSubagent sets the "is_subagent" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableIsSubagent(v *bool) *AgentSessionCreate {
	if v != nil {
		_c.SetIsSubagent(*v)
	}
	return _c
}

// SetStartCommit sets the "start_commit" field.
func (_c *AgentSessionCreate) SetStartCommit(v string) *AgentSessionCreate {
	_c.mutation.SetStartCommit(v)
	return _c
}

// SetNillableStartCommit sets the "start_commit" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableStartCommit(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetStartCommit(*v)
	}
	return _c
}

// SetActiveFeatureID sets the "active_feature_id" field.
func (_c *AgentSessionCreate) SetActiveFeatureID(v string) *AgentSessionCreate {
	_c.mutation.SetActiveFeatureID(v)
	return _c
}

// SetNillableActiveFeatureID sets the "active_feature_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableActiveFeatureID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetActiveFeatureID(*v)
	}
	return _c
}

// SetClassifiedAt sets the "classified_at" field.
func (_c *AgentSessionCreate) SetClassifiedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetClassifiedAt(v)
	return _c
}

// SetNillableClassifiedAt sets the "classified_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableClassifiedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetClassifiedAt(*v)
	}
	return _c
}

// SetClassificationSource sets the "classification_source" field.
func (_c *AgentSessionCreate) SetClassificationSource(v string) *AgentSessionCreate {
	_c.mutation.SetClassificationSource(v)
	return _c
}

// SetNillableClassificationSource sets the "classification_source" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableClassificationSource(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetClassificationSource(*v)
	}
	return _c
}

// SetLastPrompt sets the "last_prompt" field.
func (_c *AgentSessionCreate) SetLastPrompt(v string) *AgentSessionCreate {
	_c.mutation.SetLastPrompt(v)
	return _c
}

// SetNillableLastPrompt sets the "last_prompt" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableLastPrompt(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetLastPrompt(*v)
	}
	return _c
}

// SetNudgesShown sets the "nudges_shown" field.
func (_c *AgentSessionCreate) SetNudgesShown(v []string) *AgentSessionCreate {
	_c.mutation.SetNudgesShown(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *AgentSessionCreate) SetProjectID(v string) *AgentSessionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetContinuedFromID sets the "continued_from_id" field.
func (_c *AgentSessionCreate) SetContinuedFromID(v string) *AgentSessionCreate {
	_c.mutation.SetContinuedFromID(v)
	return _c
}

// SetNillableContinuedFromID sets the "continued_from_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableContinuedFromID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetContinuedFromID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSessionCreate) SetID(v string) *AgentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *AgentSessionCreate) SetProject(v *Project) *AgentSessionCreate {
	return _c.SetProjectID(v.ID)
}

// SetContinuedFrom sets the "continued_from" edge to the AgentSession entity.
func (_c *AgentSessionCreate) SetContinuedFrom(v *AgentSession) *AgentSessionCreate {
	return _c.SetContinuedFromID(v.ID)
}

// AddContinuationIDs adds the "continuations" edge to the AgentSession entity by IDs.
func (_c *AgentSessionCreate) AddContinuationIDs(ids ...string) *AgentSessionCreate {
	_c.mutation.AddContinuationIDs(ids...)
	return _c
}

// AddContinuations adds the "continuations" edges to the AgentSession entity.
func (_c *AgentSessionCreate) AddContinuations(v ...*AgentSession) *AgentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContinuationIDs(ids...)
}

// AddEventIDs adds the "events" edge to the HookEvent entity by IDs.
func (_c *AgentSessionCreate) AddEventIDs(ids ...string) *AgentSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the HookEvent entity.
func (_c *AgentSessionCreate) AddEvents(v ...*HookEvent) *AgentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddCommitIDs adds the "commits" edge to the Commit entity by IDs.
func (_c *AgentSessionCreate) AddCommitIDs(ids ...string) *AgentSessionCreate {
	_c.mutation.AddCommitIDs(ids...)
	return _c
}

// AddCommits adds the "commits" edges to the Commit entity.
func (_c *AgentSessionCreate) AddCommits(v ...*Commit) *AgentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommitIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_c *AgentSessionCreate) Mutation() *AgentSessionMutation {
	return _c.mutation
}

// Save creates the AgentSession in the database.
func (_c *AgentSessionCreate) Save(ctx context.Context) (*AgentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSessionCreate) SaveX(ctx context.Context) *AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := agentsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		v := agentsession.DefaultLastActivity()
		_c.mutation.SetLastActivity(v)
	}
	if _, ok := _c.mutation.EventCount(); !ok {
		v := agentsession.DefaultEventCount
		_c.mutation.SetEventCount(v)
	}
	if _, ok := _c.mutation.IsSubagent(); !ok {
		v := agentsession.DefaultIsSubagent
		_c.mutation.SetIsSubagent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSessionCreate) check() error {
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "AgentSession.agent"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AgentSession.started_at"`)}
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		return &ValidationError{Name: "last_activity", err: errors.New(`ent: missing required field "AgentSession.last_activity"`)}
	}
	if _, ok := _c.mutation.EventCount(); !ok {
		return &ValidationError{Name: "event_count", err: errors.New(`ent: missing required field "AgentSession.event_count"`)}
	}
	if _, ok := _c.mutation.IsSubagent(); !ok {
		return &ValidationError{Name: "is_subagent", err: errors.New(`ent: missing required field "AgentSession.is_subagent"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "AgentSession.project_id"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "AgentSession.project"`)}
	}
	return nil
}

func (_c *AgentSessionCreate) sqlSave(ctx context.Context) (*AgentSession, error) {
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
			return nil, fmt.Errorf("unexpected AgentSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSessionCreate) createSpec() (*AgentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsession.Table, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(agentsession.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.LastActivity(); ok {
		_spec.SetField(agentsession.FieldLastActivity, field.TypeTime, value)
		_node.LastActivity = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(agentsession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.EventCount(); ok {
		_spec.SetField(agentsession.FieldEventCount, field.TypeInt, value)
		_node.EventCount = value
	}
	if value, ok := _c.mutation.IsSubagent(); ok {
		_spec.SetField(agentsession.FieldIsSubagent, field.TypeBool, value)
		_node.IsSubagent = value
	}
	if value, ok := _c.mutation.StartCommit(); ok {
		_spec.SetField(agentsession.FieldStartCommit, field.TypeString, value)
		_node.StartCommit = &value
	}
	if value, ok := _c.mutation.ActiveFeatureID(); ok {
		_spec.SetField(agentsession.FieldActiveFeatureID, field.TypeString, value)
		_node.ActiveFeatureID = &value
	}
	if value, ok := _c.mutation.ClassifiedAt(); ok {
		_spec.SetField(agentsession.FieldClassifiedAt, field.TypeTime, value)
		_node.ClassifiedAt = &value
	}
	if value, ok := _c.mutation.ClassificationSource(); ok {
		_spec.SetField(agentsession.FieldClassificationSource, field.TypeString, value)
		_node.ClassificationSource = &value
	}
	if value, ok := _c.mutation.LastPrompt(); ok {
		_spec.SetField(agentsession.FieldLastPrompt, field.TypeString, value)
		_node.LastPrompt = &value
	}
	if value, ok := _c.mutation.NudgesShown(); ok {
		_spec.SetField(agentsession.FieldNudgesShown, field.TypeJSON, value)
		_node.NudgesShown = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ProjectTable,
			Columns: []string{agentsession.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContinuedFromIDs(); len(nodes) > 0 {
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
		_node.ContinuedFromID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContinuationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CommitsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentSessionCreateBulk is the builder for creating many AgentSession entities in bulk.
type AgentSessionCreateBulk struct {
	config
	err      error
	builders []*AgentSessionCreate
}

// Save creates the AgentSession entities in the database.
func (_c *AgentSessionCreateBulk) Save(ctx context.Context) ([]*AgentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSessionMutation)
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
func (_c *AgentSessionCreateBulk) SaveX(ctx context.Context) []*AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
