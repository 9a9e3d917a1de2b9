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
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/step"
)

// HookEventCreate is the builder for creating a HookEvent entity.
type HookEventCreate struct {
	config
	mutation *HookEventMutation
	hooks    []Hook
}

// SetEventType sets the "event_type" field.
func (_c *HookEventCreate) SetEventType(v hookevent.EventType) *HookEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *HookEventCreate) SetToolName(v string) *HookEventCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_c *HookEventCreate) SetNillableToolName(v *string) *HookEventCreate {
	if v != nil {
		_c.SetToolName(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *HookEventCreate) SetPayload(v map[string]interface{}) *HookEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *HookEventCreate) SetTimestamp(v time.Time) *HookEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *HookEventCreate) SetNillableTimestamp(v *time.Time) *HookEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSourceAgent sets the "source_agent" field.
func (_c *HookEventCreate) SetSourceAgent(v string) *HookEventCreate {
	_c.mutation.SetSourceAgent(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *HookEventCreate) SetSessionID(v string) *HookEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *HookEventCreate) SetSuccess(v bool) *HookEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *HookEventCreate) SetNillableSuccess(v *bool) *HookEventCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *HookEventCreate) SetSummary(v string) *HookEventCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *HookEventCreate) SetNillableSummary(v *string) *HookEventCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *HookEventCreate) SetStepID(v string) *HookEventCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *HookEventCreate) SetNillableStepID(v *string) *HookEventCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HookEventCreate) SetID(v string) *HookEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AgentSession entity.
func (_c *HookEventCreate) SetSession(v *AgentSession) *HookEventCreate {
	return _c.SetSessionID(v.ID)
}

// SetStep sets the "step" edge to the Step entity.
func (_c *HookEventCreate) SetStep(v *Step) *HookEventCreate {
	return _c.SetStepID(v.ID)
}

// AddFeatureIDs adds the "features" edge to the Feature entity by IDs.
func (_c *HookEventCreate) AddFeatureIDs(ids ...string) *HookEventCreate {
	_c.mutation.AddFeatureIDs(ids...)
	return _c
}

// AddFeatures adds the "features" edges to the Feature entity.
func (_c *HookEventCreate) AddFeatures(v ...*Feature) *HookEventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeatureIDs(ids...)
}

// Mutation returns the HookEventMutation object of the builder.
func (_c *HookEventCreate) Mutation() *HookEventMutation {
	return _c.mutation
}

// Save creates the HookEvent in the database.
func (_c *HookEventCreate) Save(ctx context.Context) (*HookEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HookEventCreate) SaveX(ctx context.Context) *HookEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HookEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HookEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HookEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := hookevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := hookevent.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HookEventCreate) check() error {
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "HookEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := hookevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "HookEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "HookEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SourceAgent(); !ok {
		return &ValidationError{Name: "source_agent", err: errors.New(`ent: missing required field "HookEvent.source_agent"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "HookEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "HookEvent.success"`)}
	}
	if v, ok := _c.mutation.Summary(); ok {
		if err := hookevent.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "HookEvent.summary": %w`, err)}
		}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "HookEvent.session"`)}
	}
	return nil
}

func (_c *HookEventCreate) sqlSave(ctx context.Context) (*HookEvent, error) {
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
			return nil, fmt.Errorf("unexpected HookEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HookEventCreate) createSpec() (*HookEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &HookEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hookevent.Table, sqlgraph.NewFieldSpec(hookevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(hookevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(hookevent.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(hookevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(hookevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SourceAgent(); ok {
		_spec.SetField(hookevent.FieldSourceAgent, field.TypeString, value)
		_node.SourceAgent = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(hookevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(hookevent.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hookevent.SessionTable,
			Columns: []string{hookevent.SessionColumn},
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
	if nodes := _c.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hookevent.StepTable,
			Columns: []string{hookevent.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StepID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeaturesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   hookevent.FeaturesTable,
			Columns: hookevent.FeaturesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HookEventCreateBulk is the builder for creating many HookEvent entities in bulk.
type HookEventCreateBulk struct {
	config
	err      error
	builders []*HookEventCreate
}

// Save creates the HookEvent entities in the database.
func (_c *HookEventCreateBulk) Save(ctx context.Context) ([]*HookEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HookEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HookEventMutation)
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
func (_c *HookEventCreateBulk) SaveX(ctx context.Context) []*HookEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HookEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HookEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
