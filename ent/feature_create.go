// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ijoka-ai/ijoka/ent/commit"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/insight"
	"github.com/ijoka-ai/ijoka/ent/project"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
	"github.com/ijoka-ai/ijoka/ent/step"
)

// FeatureCreate is the builder for creating a Feature entity.
type FeatureCreate struct {
	config
	mutation *FeatureMutation
	hooks    []Hook
}

// SetDescription sets the "description" field.
func (_c *FeatureCreate) SetDescription(v string) *FeatureCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *FeatureCreate) SetCategory(v string) *FeatureCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetType sets the "type" field.
func (_c *FeatureCreate) SetType(v feature.Type) *FeatureCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableType(v *feature.Type) *FeatureCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FeatureCreate) SetStatus(v feature.Status) *FeatureCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableStatus(v *feature.Status) *FeatureCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *FeatureCreate) SetPriority(v int) *FeatureCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *FeatureCreate) SetNillablePriority(v *int) *FeatureCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetFilePatterns sets the "file_patterns" field.
func (_c *FeatureCreate) SetFilePatterns(v []string) *FeatureCreate {
	_c.mutation.SetFilePatterns(v)
	return _c
}

// SetBranchHint sets the "branch_hint" field.
func (_c *FeatureCreate) SetBranchHint(v string) *FeatureCreate {
	_c.mutation.SetBranchHint(v)
	return _c
}

// SetNillableBranchHint sets the "branch_hint" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableBranchHint(v *string) *FeatureCreate {
	if v != nil {
		_c.SetBranchHint(*v)
	}
	return _c
}

// SetWorkCount sets the "work_count" field.
func (_c *FeatureCreate) SetWorkCount(v int) *FeatureCreate {
	_c.mutation.SetWorkCount(v)
	return _c
}

// SetNillableWorkCount sets the "work_count" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableWorkCount(v *int) *FeatureCreate {
	if v != nil {
		_c.SetWorkCount(*v)
	}
	return _c
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_c *FeatureCreate) SetAssignedAgent(v string) *FeatureCreate {
	_c.mutation.SetAssignedAgent(v)
	return _c
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableAssignedAgent(v *string) *FeatureCreate {
	if v != nil {
		_c.SetAssignedAgent(*v)
	}
	return _c
}

// SetClaimingSessionID sets the "claiming_session_id" field.
func (_c *FeatureCreate) SetClaimingSessionID(v string) *FeatureCreate {
	_c.mutation.SetClaimingSessionID(v)
	return _c
}

// SetNillableClaimingSessionID sets the "claiming_session_id" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableClaimingSessionID(v *string) *FeatureCreate {
	if v != nil {
		_c.SetClaimingSessionID(*v)
	}
	return _c
}

// SetClaimingAgent sets the "claiming_agent" field.
func (_c *FeatureCreate) SetClaimingAgent(v string) *FeatureCreate {
	_c.mutation.SetClaimingAgent(v)
	return _c
}

// SetNillableClaimingAgent sets the "claiming_agent" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableClaimingAgent(v *string) *FeatureCreate {
	if v != nil {
		_c.SetClaimingAgent(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *FeatureCreate) SetClaimedAt(v time.Time) *FeatureCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableClaimedAt(v *time.Time) *FeatureCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetBlockReason sets the "block_reason" field.
func (_c *FeatureCreate) SetBlockReason(v string) *FeatureCreate {
	_c.mutation.SetBlockReason(v)
	return _c
}

// SetNillableBlockReason sets the "block_reason" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableBlockReason(v *string) *FeatureCreate {
	if v != nil {
		_c.SetBlockReason(*v)
	}
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *FeatureCreate) SetIsPrimary(v bool) *FeatureCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableIsPrimary(v *bool) *FeatureCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// SetIsSessionWork sets the "is_session_work" field.
func (_c *FeatureCreate) SetIsSessionWork(v bool) *FeatureCreate {
	_c.mutation.SetIsSessionWork(v)
	return _c
}

// SetNillableIsSessionWork sets the "is_session_work" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableIsSessionWork(v *bool) *FeatureCreate {
	if v != nil {
		_c.SetIsSessionWork(*v)
	}
	return _c
}

// SetCompletionCriteria sets the "completion_criteria" field.
func (_c *FeatureCreate) SetCompletionCriteria(v map[string]interface{}) *FeatureCreate {
	_c.mutation.SetCompletionCriteria(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeatureCreate) SetCreatedAt(v time.Time) *FeatureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableCreatedAt(v *time.Time) *FeatureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FeatureCreate) SetUpdatedAt(v time.Time) *FeatureCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableUpdatedAt(v *time.Time) *FeatureCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *FeatureCreate) SetCompletedAt(v time.Time) *FeatureCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableCompletedAt(v *time.Time) *FeatureCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *FeatureCreate) SetProjectID(v string) *FeatureCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *FeatureCreate) SetParentID(v string) *FeatureCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableParentID(v *string) *FeatureCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeatureCreate) SetID(v string) *FeatureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *FeatureCreate) SetProject(v *Project) *FeatureCreate {
	return _c.SetProjectID(v.ID)
}

// SetParent sets the "parent" edge to the Feature entity.
func (_c *FeatureCreate) SetParent(v *Feature) *FeatureCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Feature entity by IDs.
func (_c *FeatureCreate) AddChildIDs(ids ...string) *FeatureCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the Feature entity.
func (_c *FeatureCreate) AddChildren(v ...*Feature) *FeatureCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_c *FeatureCreate) AddStepIDs(ids ...string) *FeatureCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the Step entity.
func (_c *FeatureCreate) AddSteps(v ...*Step) *FeatureCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddStatusEventIDs adds the "status_events" edge to the StatusEvent entity by IDs.
func (_c *FeatureCreate) AddStatusEventIDs(ids ...string) *FeatureCreate {
	_c.mutation.AddStatusEventIDs(ids...)
	return _c
}

// AddStatusEvents adds the "status_events" edges to the StatusEvent entity.
func (_c *FeatureCreate) AddStatusEvents(v ...*StatusEvent) *FeatureCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatusEventIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_c *FeatureCreate) AddInsightIDs(ids ...string) *FeatureCreate {
	_c.mutation.AddInsightIDs(ids...)
	return _c
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_c *FeatureCreate) AddInsights(v ...*Insight) *FeatureCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInsightIDs(ids...)
}

// AddCommitIDs adds the "commits" edge to the Commit entity by IDs.
func (_c *FeatureCreate) AddCommitIDs(ids ...string) *FeatureCreate {
	_c.mutation.AddCommitIDs(ids...)
	return _c
}

// AddCommits adds the "commits" edges to the Commit entity.
func (_c *FeatureCreate) AddCommits(v ...*Commit) *FeatureCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommitIDs(ids...)
}

// AddOutgoingDepIDs adds the "outgoing_deps" edge to the FeatureDependency entity by IDs.
func (_c *FeatureCreate) AddOutgoingDepIDs(ids ...string) *FeatureCreate {
	_c.mutation.AddOutgoingDepIDs(ids...)
	return _c
}

// AddOutgoingDeps adds the "outgoing_deps" edges to the FeatureDependency entity.
func (_c *FeatureCreate) AddOutgoingDeps(v ...*FeatureDependency) *FeatureCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutgoingDepIDs(ids...)
}

// AddIncomingDepIDs adds the "incoming_deps" edge to the FeatureDependency entity by IDs.
func (_c *FeatureCreate) AddIncomingDepIDs(ids ...string) *FeatureCreate {
	_c.mutation.AddIncomingDepIDs(ids...)
	return _c
}

// AddIncomingDeps adds the "incoming_deps" edges to the FeatureDependency entity.
func (_c *FeatureCreate) AddIncomingDeps(v ...*FeatureDependency) *FeatureCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIncomingDepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the HookEvent entity by IDs.
func (_c *FeatureCreate) AddEventIDs(ids ...string) *FeatureCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the HookEvent entity.
func (_c *FeatureCreate) AddEvents(v ...*HookEvent) *FeatureCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the FeatureMutation object of the builder.
func (_c *FeatureCreate) Mutation() *FeatureMutation {
	return _c.mutation
}

// Save creates the Feature in the database.
func (_c *FeatureCreate) Save(ctx context.Context) (*Feature, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeatureCreate) SaveX(ctx context.Context) *Feature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeatureCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := feature.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := feature.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := feature.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.WorkCount(); !ok {
		v := feature.DefaultWorkCount
		_c.mutation.SetWorkCount(v)
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := feature.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
	if _, ok := _c.mutation.IsSessionWork(); !ok {
		v := feature.DefaultIsSessionWork
		_c.mutation.SetIsSessionWork(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feature.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := feature.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeatureCreate) check() error {
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Feature.description"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Feature.category"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Feature.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := feature.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Feature.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Feature.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := feature.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Feature.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Feature.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := feature.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Feature.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorkCount(); !ok {
		return &ValidationError{Name: "work_count", err: errors.New(`ent: missing required field "Feature.work_count"`)}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "Feature.is_primary"`)}
	}
	if _, ok := _c.mutation.IsSessionWork(); !ok {
		return &ValidationError{Name: "is_session_work", err: errors.New(`ent: missing required field "Feature.is_session_work"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Feature.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Feature.updated_at"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Feature.project_id"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Feature.project"`)}
	}
	return nil
}

func (_c *FeatureCreate) sqlSave(ctx context.Context) (*Feature, error) {
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
			return nil, fmt.Errorf("unexpected Feature.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeatureCreate) createSpec() (*Feature, *sqlgraph.CreateSpec) {
	var (
		_node = &Feature{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feature.Table, sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(feature.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(feature.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(feature.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(feature.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(feature.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.FilePatterns(); ok {
		_spec.SetField(feature.FieldFilePatterns, field.TypeJSON, value)
		_node.FilePatterns = value
	}
	if value, ok := _c.mutation.BranchHint(); ok {
		_spec.SetField(feature.FieldBranchHint, field.TypeString, value)
		_node.BranchHint = &value
	}
	if value, ok := _c.mutation.WorkCount(); ok {
		_spec.SetField(feature.FieldWorkCount, field.TypeInt, value)
		_node.WorkCount = value
	}
	if value, ok := _c.mutation.AssignedAgent(); ok {
		_spec.SetField(feature.FieldAssignedAgent, field.TypeString, value)
		_node.AssignedAgent = &value
	}
	if value, ok := _c.mutation.ClaimingSessionID(); ok {
		_spec.SetField(feature.FieldClaimingSessionID, field.TypeString, value)
		_node.ClaimingSessionID = &value
	}
	if value, ok := _c.mutation.ClaimingAgent(); ok {
		_spec.SetField(feature.FieldClaimingAgent, field.TypeString, value)
		_node.ClaimingAgent = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(feature.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.BlockReason(); ok {
		_spec.SetField(feature.FieldBlockReason, field.TypeString, value)
		_node.BlockReason = &value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(feature.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	if value, ok := _c.mutation.IsSessionWork(); ok {
		_spec.SetField(feature.FieldIsSessionWork, field.TypeBool, value)
		_node.IsSessionWork = value
	}
	if value, ok := _c.mutation.CompletionCriteria(); ok {
		_spec.SetField(feature.FieldCompletionCriteria, field.TypeJSON, value)
		_node.CompletionCriteria = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feature.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(feature.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(feature.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feature.ProjectTable,
			Columns: []string{feature.ProjectColumn},
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
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feature.ParentTable,
			Columns: []string{feature.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   feature.ChildrenTable,
			Columns: []string{feature.ChildrenColumn},
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
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   feature.StepsTable,
			Columns: []string{feature.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatusEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   feature.StatusEventsTable,
			Columns: []string{feature.StatusEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InsightsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   feature.InsightsTable,
			Columns: []string{feature.InsightsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
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
			Table:   feature.CommitsTable,
			Columns: []string{feature.CommitsColumn},
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
	if nodes := _c.mutation.OutgoingDepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   feature.OutgoingDepsTable,
			Columns: []string{feature.OutgoingDepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(featuredependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IncomingDepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   feature.IncomingDepsTable,
			Columns: []string{feature.IncomingDepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(featuredependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   feature.EventsTable,
			Columns: feature.EventsPrimaryKey,
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
	return _node, _spec
}

// FeatureCreateBulk is the builder for creating many Feature entities in bulk.
type FeatureCreateBulk struct {
	config
	err      error
	builders []*FeatureCreate
}

// Save creates the Feature entities in the database.
func (_c *FeatureCreateBulk) Save(ctx context.Context) ([]*Feature, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Feature, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeatureMutation)
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
func (_c *FeatureCreateBulk) SaveX(ctx context.Context) []*Feature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
