// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/predicate"
	"github.com/ijoka-ai/ijoka/ent/step"
)

// HookEventUpdate is the builder for updating HookEvent entities.
type HookEventUpdate struct {
	config
	hooks    []Hook
	mutation *HookEventMutation
}

// Where appends a list predicates to the HookEventUpdate builder.
func (_u *HookEventUpdate) Where(ps ...predicate.HookEvent) *HookEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *HookEventUpdate) SetEventType(v hookevent.EventType) *HookEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *HookEventUpdate) SetNillableEventType(v *hookevent.EventType) *HookEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *HookEventUpdate) SetToolName(v string) *HookEventUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *HookEventUpdate) SetNillableToolName(v *string) *HookEventUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *HookEventUpdate) ClearToolName() *HookEventUpdate {
	_u.mutation.ClearToolName()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *HookEventUpdate) SetPayload(v map[string]interface{}) *HookEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *HookEventUpdate) ClearPayload() *HookEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetSourceAgent sets the "source_agent" field.
func (_u *HookEventUpdate) SetSourceAgent(v string) *HookEventUpdate {
	_u.mutation.SetSourceAgent(v)
	return _u
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_u *HookEventUpdate) SetNillableSourceAgent(v *string) *HookEventUpdate {
	if v != nil {
		_u.SetSourceAgent(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *HookEventUpdate) SetSuccess(v bool) *HookEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *HookEventUpdate) SetNillableSuccess(v *bool) *HookEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *HookEventUpdate) SetSummary(v string) *HookEventUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *HookEventUpdate) SetNillableSummary(v *string) *HookEventUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *HookEventUpdate) ClearSummary() *HookEventUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *HookEventUpdate) SetStepID(v string) *HookEventUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *HookEventUpdate) SetNillableStepID(v *string) *HookEventUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *HookEventUpdate) ClearStepID() *HookEventUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetStep sets the "step" edge to the Step entity.
func (_u *HookEventUpdate) SetStep(v *Step) *HookEventUpdate {
	return _u.SetStepID(v.ID)
}

// AddFeatureIDs adds the "features" edge to the Feature entity by IDs.
func (_u *HookEventUpdate) AddFeatureIDs(ids ...string) *HookEventUpdate {
	_u.mutation.AddFeatureIDs(ids...)
	return _u
}

// AddFeatures adds the "features" edges to the Feature entity.
func (_u *HookEventUpdate) AddFeatures(v ...*Feature) *HookEventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeatureIDs(ids...)
}

// Mutation returns the HookEventMutation object of the builder.
func (_u *HookEventUpdate) Mutation() *HookEventMutation {
	return _u.mutation
}

// ClearStep clears the "step" edge to the Step entity.
func (_u *HookEventUpdate) ClearStep() *HookEventUpdate {
	_u.mutation.ClearStep()
	return _u
}

// ClearFeatures clears all "features" edges to the Feature entity.
func (_u *HookEventUpdate) ClearFeatures() *HookEventUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// RemoveFeatureIDs removes the "features" edge to Feature entities by IDs.
func (_u *HookEventUpdate) RemoveFeatureIDs(ids ...string) *HookEventUpdate {
	_u.mutation.RemoveFeatureIDs(ids...)
	return _u
}

// RemoveFeatures removes "features" edges to Feature entities.
func (_u *HookEventUpdate) RemoveFeatures(v ...*Feature) *HookEventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeatureIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HookEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HookEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HookEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HookEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HookEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := hookevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "HookEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := hookevent.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "HookEvent.summary": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HookEvent.session"`)
	}
	return nil
}

func (_u *HookEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hookevent.Table, hookevent.Columns, sqlgraph.NewFieldSpec(hookevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(hookevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(hookevent.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(hookevent.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(hookevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(hookevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceAgent(); ok {
		_spec.SetField(hookevent.FieldSourceAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(hookevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(hookevent.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(hookevent.FieldSummary, field.TypeString)
	}
	if _u.mutation.StepCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeaturesIDs(); len(nodes) > 0 && !_u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeaturesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HookEventUpdateOne is the builder for updating a single HookEvent entity.
type HookEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HookEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *HookEventUpdateOne) SetEventType(v hookevent.EventType) *HookEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *HookEventUpdateOne) SetNillableEventType(v *hookevent.EventType) *HookEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *HookEventUpdateOne) SetToolName(v string) *HookEventUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *HookEventUpdateOne) SetNillableToolName(v *string) *HookEventUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *HookEventUpdateOne) ClearToolName() *HookEventUpdateOne {
	_u.mutation.ClearToolName()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *HookEventUpdateOne) SetPayload(v map[string]interface{}) *HookEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *HookEventUpdateOne) ClearPayload() *HookEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetSourceAgent sets the "source_agent" field.
func (_u *HookEventUpdateOne) SetSourceAgent(v string) *HookEventUpdateOne {
	_u.mutation.SetSourceAgent(v)
	return _u
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_u *HookEventUpdateOne) SetNillableSourceAgent(v *string) *HookEventUpdateOne {
	if v != nil {
		_u.SetSourceAgent(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *HookEventUpdateOne) SetSuccess(v bool) *HookEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *HookEventUpdateOne) SetNillableSuccess(v *bool) *HookEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *HookEventUpdateOne) SetSummary(v string) *HookEventUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *HookEventUpdateOne) SetNillableSummary(v *string) *HookEventUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *HookEventUpdateOne) ClearSummary() *HookEventUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *HookEventUpdateOne) SetStepID(v string) *HookEventUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *HookEventUpdateOne) SetNillableStepID(v *string) *HookEventUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *HookEventUpdateOne) ClearStepID() *HookEventUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetStep sets the "step" edge to the Step entity.
func (_u *HookEventUpdateOne) SetStep(v *Step) *HookEventUpdateOne {
	return _u.SetStepID(v.ID)
}

// AddFeatureIDs adds the "features" edge to the Feature entity by IDs.
func (_u *HookEventUpdateOne) AddFeatureIDs(ids ...string) *HookEventUpdateOne {
	_u.mutation.AddFeatureIDs(ids...)
	return _u
}

// AddFeatures adds the "features" edges to the Feature entity.
func (_u *HookEventUpdateOne) AddFeatures(v ...*Feature) *HookEventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeatureIDs(ids...)
}

// Mutation returns the HookEventMutation object of the builder.
func (_u *HookEventUpdateOne) Mutation() *HookEventMutation {
	return _u.mutation
}

// ClearStep clears the "step" edge to the Step entity.
func (_u *HookEventUpdateOne) ClearStep() *HookEventUpdateOne {
	_u.mutation.ClearStep()
	return _u
}

// ClearFeatures clears all "features" edges to the Feature entity.
func (_u *HookEventUpdateOne) ClearFeatures() *HookEventUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// RemoveFeatureIDs removes the "features" edge to Feature entities by IDs.
func (_u *HookEventUpdateOne) RemoveFeatureIDs(ids ...string) *HookEventUpdateOne {
	_u.mutation.RemoveFeatureIDs(ids...)
	return _u
}

// RemoveFeatures removes "features" edges to Feature entities.
func (_u *HookEventUpdateOne) RemoveFeatures(v ...*Feature) *HookEventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeatureIDs(ids...)
}

// Where appends a list predicates to the HookEventUpdate builder.
func (_u *HookEventUpdateOne) Where(ps ...predicate.HookEvent) *HookEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HookEventUpdateOne) Select(field string, fields ...string) *HookEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HookEvent entity.
func (_u *HookEventUpdateOne) Save(ctx context.Context) (*HookEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HookEventUpdateOne) SaveX(ctx context.Context) *HookEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HookEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HookEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HookEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := hookevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "HookEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := hookevent.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "HookEvent.summary": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HookEvent.session"`)
	}
	return nil
}

func (_u *HookEventUpdateOne) sqlSave(ctx context.Context) (_node *HookEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hookevent.Table, hookevent.Columns, sqlgraph.NewFieldSpec(hookevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HookEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hookevent.FieldID)
		for _, f := range fields {
			if !hookevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hookevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(hookevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(hookevent.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(hookevent.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(hookevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(hookevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceAgent(); ok {
		_spec.SetField(hookevent.FieldSourceAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(hookevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(hookevent.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(hookevent.FieldSummary, field.TypeString)
	}
	if _u.mutation.StepCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeaturesIDs(); len(nodes) > 0 && !_u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeaturesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HookEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
