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
	"github.com/ijoka-ai/ijoka/ent/commit"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/insight"
	"github.com/ijoka-ai/ijoka/ent/predicate"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
	"github.com/ijoka-ai/ijoka/ent/step"
)

// FeatureUpdate is the builder for updating Feature entities.
type FeatureUpdate struct {
	config
	hooks    []Hook
	mutation *FeatureMutation
}

// Where appends a list predicates to the FeatureUpdate builder.
func (_u *FeatureUpdate) Where(ps ...predicate.Feature) *FeatureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *FeatureUpdate) SetDescription(v string) *FeatureUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableDescription(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *FeatureUpdate) SetCategory(v string) *FeatureUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableCategory(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *FeatureUpdate) SetType(v feature.Type) *FeatureUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableType(v *feature.Type) *FeatureUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FeatureUpdate) SetStatus(v feature.Status) *FeatureUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableStatus(v *feature.Status) *FeatureUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *FeatureUpdate) SetPriority(v int) *FeatureUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillablePriority(v *int) *FeatureUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *FeatureUpdate) AddPriority(v int) *FeatureUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetFilePatterns sets the "file_patterns" field.
func (_u *FeatureUpdate) SetFilePatterns(v []string) *FeatureUpdate {
	_u.mutation.SetFilePatterns(v)
	return _u
}

// AppendFilePatterns appends value to the "file_patterns" field.
func (_u *FeatureUpdate) AppendFilePatterns(v []string) *FeatureUpdate {
	_u.mutation.AppendFilePatterns(v)
	return _u
}

// ClearFilePatterns clears the value of the "file_patterns" field.
func (_u *FeatureUpdate) ClearFilePatterns() *FeatureUpdate {
	_u.mutation.ClearFilePatterns()
	return _u
}

// SetBranchHint sets the "branch_hint" field.
func (_u *FeatureUpdate) SetBranchHint(v string) *FeatureUpdate {
	_u.mutation.SetBranchHint(v)
	return _u
}

// SetNillableBranchHint sets the "branch_hint" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableBranchHint(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetBranchHint(*v)
	}
	return _u
}

// ClearBranchHint clears the value of the "branch_hint" field.
func (_u *FeatureUpdate) ClearBranchHint() *FeatureUpdate {
	_u.mutation.ClearBranchHint()
	return _u
}

// SetWorkCount sets the "work_count" field.
func (_u *FeatureUpdate) SetWorkCount(v int) *FeatureUpdate {
	_u.mutation.ResetWorkCount()
	_u.mutation.SetWorkCount(v)
	return _u
}

// SetNillableWorkCount sets the "work_count" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableWorkCount(v *int) *FeatureUpdate {
	if v != nil {
		_u.SetWorkCount(*v)
	}
	return _u
}

// AddWorkCount adds value to the "work_count" field.
func (_u *FeatureUpdate) AddWorkCount(v int) *FeatureUpdate {
	_u.mutation.AddWorkCount(v)
	return _u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_u *FeatureUpdate) SetAssignedAgent(v string) *FeatureUpdate {
	_u.mutation.SetAssignedAgent(v)
	return _u
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableAssignedAgent(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetAssignedAgent(*v)
	}
	return _u
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (_u *FeatureUpdate) ClearAssignedAgent() *FeatureUpdate {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// SetClaimingSessionID sets the "claiming_session_id" field.
func (_u *FeatureUpdate) SetClaimingSessionID(v string) *FeatureUpdate {
	_u.mutation.SetClaimingSessionID(v)
	return _u
}

// SetNillableClaimingSessionID sets the "claiming_session_id" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableClaimingSessionID(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetClaimingSessionID(*v)
	}
	return _u
}

// ClearClaimingSessionID clears the value of the "claiming_session_id" field.
func (_u *FeatureUpdate) ClearClaimingSessionID() *FeatureUpdate {
	_u.mutation.ClearClaimingSessionID()
	return _u
}

// SetClaimingAgent sets the "claiming_agent" field.
func (_u *FeatureUpdate) SetClaimingAgent(v string) *FeatureUpdate {
	_u.mutation.SetClaimingAgent(v)
	return _u
}

// SetNillableClaimingAgent sets the "claiming_agent" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableClaimingAgent(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetClaimingAgent(*v)
	}
	return _u
}

// ClearClaimingAgent clears the value of the "claiming_agent" field.
func (_u *FeatureUpdate) ClearClaimingAgent() *FeatureUpdate {
	_u.mutation.ClearClaimingAgent()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *FeatureUpdate) SetClaimedAt(v time.Time) *FeatureUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableClaimedAt(v *time.Time) *FeatureUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *FeatureUpdate) ClearClaimedAt() *FeatureUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetBlockReason sets the "block_reason" field.
func (_u *FeatureUpdate) SetBlockReason(v string) *FeatureUpdate {
	_u.mutation.SetBlockReason(v)
	return _u
}

// SetNillableBlockReason sets the "block_reason" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableBlockReason(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetBlockReason(*v)
	}
	return _u
}

// ClearBlockReason clears the value of the "block_reason" field.
func (_u *FeatureUpdate) ClearBlockReason() *FeatureUpdate {
	_u.mutation.ClearBlockReason()
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *FeatureUpdate) SetIsPrimary(v bool) *FeatureUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableIsPrimary(v *bool) *FeatureUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetIsSessionWork sets the "is_session_work" field.
func (_u *FeatureUpdate) SetIsSessionWork(v bool) *FeatureUpdate {
	_u.mutation.SetIsSessionWork(v)
	return _u
}

// SetNillableIsSessionWork sets the "is_session_work" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableIsSessionWork(v *bool) *FeatureUpdate {
	if v != nil {
		_u.SetIsSessionWork(*v)
	}
	return _u
}

// SetCompletionCriteria sets the "completion_criteria" field.
func (_u *FeatureUpdate) SetCompletionCriteria(v map[string]interface{}) *FeatureUpdate {
	_u.mutation.SetCompletionCriteria(v)
	return _u
}

// ClearCompletionCriteria clears the value of the "completion_criteria" field.
func (_u *FeatureUpdate) ClearCompletionCriteria() *FeatureUpdate {
	_u.mutation.ClearCompletionCriteria()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeatureUpdate) SetUpdatedAt(v time.Time) *FeatureUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FeatureUpdate) SetCompletedAt(v time.Time) *FeatureUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableCompletedAt(v *time.Time) *FeatureUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FeatureUpdate) ClearCompletedAt() *FeatureUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *FeatureUpdate) SetParentID(v string) *FeatureUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableParentID(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *FeatureUpdate) ClearParentID() *FeatureUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetParent sets the "parent" edge to the Feature entity.
func (_u *FeatureUpdate) SetParent(v *Feature) *FeatureUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Feature entity by IDs.
func (_u *FeatureUpdate) AddChildIDs(ids ...string) *FeatureUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Feature entity.
func (_u *FeatureUpdate) AddChildren(v ...*Feature) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *FeatureUpdate) AddStepIDs(ids ...string) *FeatureUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *FeatureUpdate) AddSteps(v ...*Step) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddStatusEventIDs adds the "status_events" edge to the StatusEvent entity by IDs.
func (_u *FeatureUpdate) AddStatusEventIDs(ids ...string) *FeatureUpdate {
	_u.mutation.AddStatusEventIDs(ids...)
	return _u
}

// AddStatusEvents adds the "status_events" edges to the StatusEvent entity.
func (_u *FeatureUpdate) AddStatusEvents(v ...*StatusEvent) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusEventIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_u *FeatureUpdate) AddInsightIDs(ids ...string) *FeatureUpdate {
	_u.mutation.AddInsightIDs(ids...)
	return _u
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_u *FeatureUpdate) AddInsights(v ...*Insight) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInsightIDs(ids...)
}

// AddCommitIDs adds the "commits" edge to the Commit entity by IDs.
func (_u *FeatureUpdate) AddCommitIDs(ids ...string) *FeatureUpdate {
	_u.mutation.AddCommitIDs(ids...)
	return _u
}

// AddCommits adds the "commits" edges to the Commit entity.
func (_u *FeatureUpdate) AddCommits(v ...*Commit) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommitIDs(ids...)
}

// AddOutgoingDepIDs adds the "outgoing_deps" edge to the FeatureDependency entity by IDs.
func (_u *FeatureUpdate) AddOutgoingDepIDs(ids ...string) *FeatureUpdate {
	_u.mutation.AddOutgoingDepIDs(ids...)
	return _u
}

// AddOutgoingDeps adds the "outgoing_deps" edges to the FeatureDependency entity.
func (_u *FeatureUpdate) AddOutgoingDeps(v ...*FeatureDependency) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutgoingDepIDs(ids...)
}

// AddIncomingDepIDs adds the "incoming_deps" edge to the FeatureDependency entity by IDs.
func (_u *FeatureUpdate) AddIncomingDepIDs(ids ...string) *FeatureUpdate {
	_u.mutation.AddIncomingDepIDs(ids...)
	return _u
}

// AddIncomingDeps adds the "incoming_deps" edges to the FeatureDependency entity.
func (_u *FeatureUpdate) AddIncomingDeps(v ...*FeatureDependency) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIncomingDepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the HookEvent entity by IDs.
func (_u *FeatureUpdate) AddEventIDs(ids ...string) *FeatureUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the HookEvent entity.
func (_u *FeatureUpdate) AddEvents(v ...*HookEvent) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the FeatureMutation object of the builder.
func (_u *FeatureUpdate) Mutation() *FeatureMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the Feature entity.
func (_u *FeatureUpdate) ClearParent() *FeatureUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Feature entity.
func (_u *FeatureUpdate) ClearChildren() *FeatureUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Feature entities by IDs.
func (_u *FeatureUpdate) RemoveChildIDs(ids ...string) *FeatureUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Feature entities.
func (_u *FeatureUpdate) RemoveChildren(v ...*Feature) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *FeatureUpdate) ClearSteps() *FeatureUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *FeatureUpdate) RemoveStepIDs(ids ...string) *FeatureUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *FeatureUpdate) RemoveSteps(v ...*Step) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearStatusEvents clears all "status_events" edges to the StatusEvent entity.
func (_u *FeatureUpdate) ClearStatusEvents() *FeatureUpdate {
	_u.mutation.ClearStatusEvents()
	return _u
}

// RemoveStatusEventIDs removes the "status_events" edge to StatusEvent entities by IDs.
func (_u *FeatureUpdate) RemoveStatusEventIDs(ids ...string) *FeatureUpdate {
	_u.mutation.RemoveStatusEventIDs(ids...)
	return _u
}

// RemoveStatusEvents removes "status_events" edges to StatusEvent entities.
func (_u *FeatureUpdate) RemoveStatusEvents(v ...*StatusEvent) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusEventIDs(ids...)
}

// ClearInsights clears all "insights" edges to the Insight entity.
func (_u *FeatureUpdate) ClearInsights() *FeatureUpdate {
	_u.mutation.ClearInsights()
	return _u
}

// RemoveInsightIDs removes the "insights" edge to Insight entities by IDs.
func (_u *FeatureUpdate) RemoveInsightIDs(ids ...string) *FeatureUpdate {
	_u.mutation.RemoveInsightIDs(ids...)
	return _u
}

// RemoveInsights removes "insights" edges to Insight entities.
func (_u *FeatureUpdate) RemoveInsights(v ...*Insight) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInsightIDs(ids...)
}

// ClearCommits clears all "commits" edges to the Commit entity.
func (_u *FeatureUpdate) ClearCommits() *FeatureUpdate {
	_u.mutation.ClearCommits()
	return _u
}

// RemoveCommitIDs removes the "commits" edge to Commit entities by IDs.
func (_u *FeatureUpdate) RemoveCommitIDs(ids ...string) *FeatureUpdate {
	_u.mutation.RemoveCommitIDs(ids...)
	return _u
}

// RemoveCommits removes "commits" edges to Commit entities.
func (_u *FeatureUpdate) RemoveCommits(v ...*Commit) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommitIDs(ids...)
}

// ClearOutgoingDeps clears all "outgoing_deps" edges to the FeatureDependency entity.
func (_u *FeatureUpdate) ClearOutgoingDeps() *FeatureUpdate {
	_u.mutation.ClearOutgoingDeps()
	return _u
}

// RemoveOutgoingDepIDs removes the "outgoing_deps" edge to FeatureDependency entities by IDs.
func (_u *FeatureUpdate) RemoveOutgoingDepIDs(ids ...string) *FeatureUpdate {
	_u.mutation.RemoveOutgoingDepIDs(ids...)
	return _u
}

// RemoveOutgoingDeps removes "outgoing_deps" edges to FeatureDependency entities.
func (_u *FeatureUpdate) RemoveOutgoingDeps(v ...*FeatureDependency) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutgoingDepIDs(ids...)
}

// ClearIncomingDeps clears all "incoming_deps" edges to the FeatureDependency entity.
func (_u *FeatureUpdate) ClearIncomingDeps() *FeatureUpdate {
	_u.mutation.ClearIncomingDeps()
	return _u
}

// RemoveIncomingDepIDs removes the "incoming_deps" edge to FeatureDependency entities by IDs.
func (_u *FeatureUpdate) RemoveIncomingDepIDs(ids ...string) *FeatureUpdate {
	_u.mutation.RemoveIncomingDepIDs(ids...)
	return _u
}

// RemoveIncomingDeps removes "incoming_deps" edges to FeatureDependency entities.
func (_u *FeatureUpdate) RemoveIncomingDeps(v ...*FeatureDependency) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIncomingDepIDs(ids...)
}

// ClearEvents clears all "events" edges to the HookEvent entity.
func (_u *FeatureUpdate) ClearEvents() *FeatureUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to HookEvent entities by IDs.
func (_u *FeatureUpdate) RemoveEventIDs(ids ...string) *FeatureUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to HookEvent entities.
func (_u *FeatureUpdate) RemoveEvents(v ...*HookEvent) *FeatureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeatureUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeatureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeatureUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feature.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := feature.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Feature.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := feature.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Feature.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := feature.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Feature.priority": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feature.project"`)
	}
	return nil
}

func (_u *FeatureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feature.Table, feature.Columns, sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(feature.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(feature.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(feature.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(feature.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(feature.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(feature.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilePatterns(); ok {
		_spec.SetField(feature.FieldFilePatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilePatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, feature.FieldFilePatterns, value)
		})
	}
	if _u.mutation.FilePatternsCleared() {
		_spec.ClearField(feature.FieldFilePatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.BranchHint(); ok {
		_spec.SetField(feature.FieldBranchHint, field.TypeString, value)
	}
	if _u.mutation.BranchHintCleared() {
		_spec.ClearField(feature.FieldBranchHint, field.TypeString)
	}
	if value, ok := _u.mutation.WorkCount(); ok {
		_spec.SetField(feature.FieldWorkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkCount(); ok {
		_spec.AddField(feature.FieldWorkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedAgent(); ok {
		_spec.SetField(feature.FieldAssignedAgent, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentCleared() {
		_spec.ClearField(feature.FieldAssignedAgent, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimingSessionID(); ok {
		_spec.SetField(feature.FieldClaimingSessionID, field.TypeString, value)
	}
	if _u.mutation.ClaimingSessionIDCleared() {
		_spec.ClearField(feature.FieldClaimingSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimingAgent(); ok {
		_spec.SetField(feature.FieldClaimingAgent, field.TypeString, value)
	}
	if _u.mutation.ClaimingAgentCleared() {
		_spec.ClearField(feature.FieldClaimingAgent, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(feature.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(feature.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BlockReason(); ok {
		_spec.SetField(feature.FieldBlockReason, field.TypeString, value)
	}
	if _u.mutation.BlockReasonCleared() {
		_spec.ClearField(feature.FieldBlockReason, field.TypeString)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(feature.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSessionWork(); ok {
		_spec.SetField(feature.FieldIsSessionWork, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletionCriteria(); ok {
		_spec.SetField(feature.FieldCompletionCriteria, field.TypeJSON, value)
	}
	if _u.mutation.CompletionCriteriaCleared() {
		_spec.ClearField(feature.FieldCompletionCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feature.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(feature.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(feature.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusEventsIDs(); len(nodes) > 0 && !_u.mutation.StatusEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInsightsIDs(); len(nodes) > 0 && !_u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsightsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommitsIDs(); len(nodes) > 0 && !_u.mutation.CommitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutgoingDepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutgoingDepsIDs(); len(nodes) > 0 && !_u.mutation.OutgoingDepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutgoingDepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IncomingDepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIncomingDepsIDs(); len(nodes) > 0 && !_u.mutation.IncomingDepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncomingDepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeatureUpdateOne is the builder for updating a single Feature entity.
type FeatureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeatureMutation
}

// SetDescription sets the "description" field.
func (_u *FeatureUpdateOne) SetDescription(v string) *FeatureUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableDescription(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *FeatureUpdateOne) SetCategory(v string) *FeatureUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableCategory(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *FeatureUpdateOne) SetType(v feature.Type) *FeatureUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableType(v *feature.Type) *FeatureUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FeatureUpdateOne) SetStatus(v feature.Status) *FeatureUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableStatus(v *feature.Status) *FeatureUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *FeatureUpdateOne) SetPriority(v int) *FeatureUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillablePriority(v *int) *FeatureUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *FeatureUpdateOne) AddPriority(v int) *FeatureUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetFilePatterns sets the "file_patterns" field.
func (_u *FeatureUpdateOne) SetFilePatterns(v []string) *FeatureUpdateOne {
	_u.mutation.SetFilePatterns(v)
	return _u
}

// AppendFilePatterns appends value to the "file_patterns" field.
func (_u *FeatureUpdateOne) AppendFilePatterns(v []string) *FeatureUpdateOne {
	_u.mutation.AppendFilePatterns(v)
	return _u
}

// ClearFilePatterns clears the value of the "file_patterns" field.
func (_u *FeatureUpdateOne) ClearFilePatterns() *FeatureUpdateOne {
	_u.mutation.ClearFilePatterns()
	return _u
}

// SetBranchHint sets the "branch_hint" field.
func (_u *FeatureUpdateOne) SetBranchHint(v string) *FeatureUpdateOne {
	_u.mutation.SetBranchHint(v)
	return _u
}

// SetNillableBranchHint sets the "branch_hint" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableBranchHint(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetBranchHint(*v)
	}
	return _u
}

// ClearBranchHint clears the value of the "branch_hint" field.
func (_u *FeatureUpdateOne) ClearBranchHint() *FeatureUpdateOne {
	_u.mutation.ClearBranchHint()
	return _u
}

// SetWorkCount sets the "work_count" field.
func (_u *FeatureUpdateOne) SetWorkCount(v int) *FeatureUpdateOne {
	_u.mutation.ResetWorkCount()
	_u.mutation.SetWorkCount(v)
	return _u
}

// SetNillableWorkCount sets the "work_count" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableWorkCount(v *int) *FeatureUpdateOne {
	if v != nil {
		_u.SetWorkCount(*v)
	}
	return _u
}

// AddWorkCount adds value to the "work_count" field.
func (_u *FeatureUpdateOne) AddWorkCount(v int) *FeatureUpdateOne {
	_u.mutation.AddWorkCount(v)
	return _u
}

// SetAssignedAgent sets the "assigned_agent" field.
func (_u *FeatureUpdateOne) SetAssignedAgent(v string) *FeatureUpdateOne {
	_u.mutation.SetAssignedAgent(v)
	return _u
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableAssignedAgent(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetAssignedAgent(*v)
	}
	return _u
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (_u *FeatureUpdateOne) ClearAssignedAgent() *FeatureUpdateOne {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// SetClaimingSessionID sets the "claiming_session_id" field.
func (_u *FeatureUpdateOne) SetClaimingSessionID(v string) *FeatureUpdateOne {
	_u.mutation.SetClaimingSessionID(v)
	return _u
}

// SetNillableClaimingSessionID sets the "claiming_session_id" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableClaimingSessionID(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetClaimingSessionID(*v)
	}
	return _u
}

// ClearClaimingSessionID clears the value of the "claiming_session_id" field.
func (_u *FeatureUpdateOne) ClearClaimingSessionID() *FeatureUpdateOne {
	_u.mutation.ClearClaimingSessionID()
	return _u
}

// SetClaimingAgent sets the "claiming_agent" field.
func (_u *FeatureUpdateOne) SetClaimingAgent(v string) *FeatureUpdateOne {
	_u.mutation.SetClaimingAgent(v)
	return _u
}

// SetNillableClaimingAgent sets the "claiming_agent" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableClaimingAgent(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetClaimingAgent(*v)
	}
	return _u
}

// ClearClaimingAgent clears the value of the "claiming_agent" field.
func (_u *FeatureUpdateOne) ClearClaimingAgent() *FeatureUpdateOne {
	_u.mutation.ClearClaimingAgent()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *FeatureUpdateOne) SetClaimedAt(v time.Time) *FeatureUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableClaimedAt(v *time.Time) *FeatureUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *FeatureUpdateOne) ClearClaimedAt() *FeatureUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetBlockReason sets the "block_reason" field.
func (_u *FeatureUpdateOne) SetBlockReason(v string) *FeatureUpdateOne {
	_u.mutation.SetBlockReason(v)
	return _u
}

// SetNillableBlockReason sets the "block_reason" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableBlockReason(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetBlockReason(*v)
	}
	return _u
}

// ClearBlockReason clears the value of the "block_reason" field.
func (_u *FeatureUpdateOne) ClearBlockReason() *FeatureUpdateOne {
	_u.mutation.ClearBlockReason()
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *FeatureUpdateOne) SetIsPrimary(v bool) *FeatureUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableIsPrimary(v *bool) *FeatureUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetIsSessionWork sets the "is_session_work" field.
func (_u *FeatureUpdateOne) SetIsSessionWork(v bool) *FeatureUpdateOne {
	_u.mutation.SetIsSessionWork(v)
	return _u
}

// SetNillableIsSessionWork sets the "is_session_work" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableIsSessionWork(v *bool) *FeatureUpdateOne {
	if v != nil {
		_u.SetIsSessionWork(*v)
	}
	return _u
}

// SetCompletionCriteria sets the "completion_criteria" field.
func (_u *FeatureUpdateOne) SetCompletionCriteria(v map[string]interface{}) *FeatureUpdateOne {
	_u.mutation.SetCompletionCriteria(v)
	return _u
}

// ClearCompletionCriteria clears the value of the "completion_criteria" field.
func (_u *FeatureUpdateOne) ClearCompletionCriteria() *FeatureUpdateOne {
	_u.mutation.ClearCompletionCriteria()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeatureUpdateOne) SetUpdatedAt(v time.Time) *FeatureUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FeatureUpdateOne) SetCompletedAt(v time.Time) *FeatureUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableCompletedAt(v *time.Time) *FeatureUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FeatureUpdateOne) ClearCompletedAt() *FeatureUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *FeatureUpdateOne) SetParentID(v string) *FeatureUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableParentID(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *FeatureUpdateOne) ClearParentID() *FeatureUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetParent sets the "parent" edge to the Feature entity.
func (_u *FeatureUpdateOne) SetParent(v *Feature) *FeatureUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Feature entity by IDs.
func (_u *FeatureUpdateOne) AddChildIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Feature entity.
func (_u *FeatureUpdateOne) AddChildren(v ...*Feature) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *FeatureUpdateOne) AddStepIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *FeatureUpdateOne) AddSteps(v ...*Step) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddStatusEventIDs adds the "status_events" edge to the StatusEvent entity by IDs.
func (_u *FeatureUpdateOne) AddStatusEventIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.AddStatusEventIDs(ids...)
	return _u
}

// AddStatusEvents adds the "status_events" edges to the StatusEvent entity.
func (_u *FeatureUpdateOne) AddStatusEvents(v ...*StatusEvent) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusEventIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_u *FeatureUpdateOne) AddInsightIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.AddInsightIDs(ids...)
	return _u
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_u *FeatureUpdateOne) AddInsights(v ...*Insight) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInsightIDs(ids...)
}

// AddCommitIDs adds the "commits" edge to the Commit entity by IDs.
func (_u *FeatureUpdateOne) AddCommitIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.AddCommitIDs(ids...)
	return _u
}

// AddCommits adds the "commits" edges to the Commit entity.
func (_u *FeatureUpdateOne) AddCommits(v ...*Commit) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommitIDs(ids...)
}

// AddOutgoingDepIDs adds the "outgoing_deps" edge to the FeatureDependency entity by IDs.
func (_u *FeatureUpdateOne) AddOutgoingDepIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.AddOutgoingDepIDs(ids...)
	return _u
}

// AddOutgoingDeps adds the "outgoing_deps" edges to the FeatureDependency entity.
func (_u *FeatureUpdateOne) AddOutgoingDeps(v ...*FeatureDependency) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutgoingDepIDs(ids...)
}

// AddIncomingDepIDs adds the "incoming_deps" edge to the FeatureDependency entity by IDs.
func (_u *FeatureUpdateOne) AddIncomingDepIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.AddIncomingDepIDs(ids...)
	return _u
}

// AddIncomingDeps adds the "incoming_deps" edges to the FeatureDependency entity.
func (_u *FeatureUpdateOne) AddIncomingDeps(v ...*FeatureDependency) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIncomingDepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the HookEvent entity by IDs.
func (_u *FeatureUpdateOne) AddEventIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the HookEvent entity.
func (_u *FeatureUpdateOne) AddEvents(v ...*HookEvent) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the FeatureMutation object of the builder.
func (_u *FeatureUpdateOne) Mutation() *FeatureMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the Feature entity.
func (_u *FeatureUpdateOne) ClearParent() *FeatureUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Feature entity.
func (_u *FeatureUpdateOne) ClearChildren() *FeatureUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Feature entities by IDs.
func (_u *FeatureUpdateOne) RemoveChildIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Feature entities.
func (_u *FeatureUpdateOne) RemoveChildren(v ...*Feature) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *FeatureUpdateOne) ClearSteps() *FeatureUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *FeatureUpdateOne) RemoveStepIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *FeatureUpdateOne) RemoveSteps(v ...*Step) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearStatusEvents clears all "status_events" edges to the StatusEvent entity.
func (_u *FeatureUpdateOne) ClearStatusEvents() *FeatureUpdateOne {
	_u.mutation.ClearStatusEvents()
	return _u
}

// RemoveStatusEventIDs removes the "status_events" edge to StatusEvent entities by IDs.
func (_u *FeatureUpdateOne) RemoveStatusEventIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.RemoveStatusEventIDs(ids...)
	return _u
}

// RemoveStatusEvents removes "status_events" edges to StatusEvent entities.
func (_u *FeatureUpdateOne) RemoveStatusEvents(v ...*StatusEvent) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusEventIDs(ids...)
}

// ClearInsights clears all "insights" edges to the Insight entity.
func (_u *FeatureUpdateOne) ClearInsights() *FeatureUpdateOne {
	_u.mutation.ClearInsights()
	return _u
}

// RemoveInsightIDs removes the "insights" edge to Insight entities by IDs.
func (_u *FeatureUpdateOne) RemoveInsightIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.RemoveInsightIDs(ids...)
	return _u
}

// RemoveInsights removes "insights" edges to Insight entities.
func (_u *FeatureUpdateOne) RemoveInsights(v ...*Insight) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInsightIDs(ids...)
}

// ClearCommits clears all "commits" edges to the Commit entity.
func (_u *FeatureUpdateOne) ClearCommits() *FeatureUpdateOne {
	_u.mutation.ClearCommits()
	return _u
}

// RemoveCommitIDs removes the "commits" edge to Commit entities by IDs.
func (_u *FeatureUpdateOne) RemoveCommitIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.RemoveCommitIDs(ids...)
	return _u
}

// RemoveCommits removes "commits" edges to Commit entities.
func (_u *FeatureUpdateOne) RemoveCommits(v ...*Commit) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommitIDs(ids...)
}

// ClearOutgoingDeps clears all "outgoing_deps" edges to the FeatureDependency entity.
func (_u *FeatureUpdateOne) ClearOutgoingDeps() *FeatureUpdateOne {
	_u.mutation.ClearOutgoingDeps()
	return _u
}

// RemoveOutgoingDepIDs removes the "outgoing_deps" edge to FeatureDependency entities by IDs.
func (_u *FeatureUpdateOne) RemoveOutgoingDepIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.RemoveOutgoingDepIDs(ids...)
	return _u
}

// RemoveOutgoingDeps removes "outgoing_deps" edges to FeatureDependency entities.
func (_u *FeatureUpdateOne) RemoveOutgoingDeps(v ...*FeatureDependency) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutgoingDepIDs(ids...)
}

// ClearIncomingDeps clears all "incoming_deps" edges to the FeatureDependency entity.
func (_u *FeatureUpdateOne) ClearIncomingDeps() *FeatureUpdateOne {
	_u.mutation.ClearIncomingDeps()
	return _u
}

// RemoveIncomingDepIDs removes the "incoming_deps" edge to FeatureDependency entities by IDs.
func (_u *FeatureUpdateOne) RemoveIncomingDepIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.RemoveIncomingDepIDs(ids...)
	return _u
}

// RemoveIncomingDeps removes "incoming_deps" edges to FeatureDependency entities.
func (_u *FeatureUpdateOne) RemoveIncomingDeps(v ...*FeatureDependency) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIncomingDepIDs(ids...)
}

// ClearEvents clears all "events" edges to the HookEvent entity.
func (_u *FeatureUpdateOne) ClearEvents() *FeatureUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to HookEvent entities by IDs.
func (_u *FeatureUpdateOne) RemoveEventIDs(ids ...string) *FeatureUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to HookEvent entities.
func (_u *FeatureUpdateOne) RemoveEvents(v ...*HookEvent) *FeatureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the FeatureUpdate builder.
func (_u *FeatureUpdateOne) Where(ps ...predicate.Feature) *FeatureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeatureUpdateOne) Select(field string, fields ...string) *FeatureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Feature entity.
func (_u *FeatureUpdateOne) Save(ctx context.Context) (*Feature, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureUpdateOne) SaveX(ctx context.Context) *Feature {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeatureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeatureUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feature.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := feature.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Feature.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := feature.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Feature.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := feature.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Feature.priority": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feature.project"`)
	}
	return nil
}

func (_u *FeatureUpdateOne) sqlSave(ctx context.Context) (_node *Feature, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feature.Table, feature.Columns, sqlgraph.NewFieldSpec(feature.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Feature.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feature.FieldID)
		for _, f := range fields {
			if !feature.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feature.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(feature.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(feature.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(feature.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(feature.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(feature.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(feature.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilePatterns(); ok {
		_spec.SetField(feature.FieldFilePatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilePatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, feature.FieldFilePatterns, value)
		})
	}
	if _u.mutation.FilePatternsCleared() {
		_spec.ClearField(feature.FieldFilePatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.BranchHint(); ok {
		_spec.SetField(feature.FieldBranchHint, field.TypeString, value)
	}
	if _u.mutation.BranchHintCleared() {
		_spec.ClearField(feature.FieldBranchHint, field.TypeString)
	}
	if value, ok := _u.mutation.WorkCount(); ok {
		_spec.SetField(feature.FieldWorkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkCount(); ok {
		_spec.AddField(feature.FieldWorkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedAgent(); ok {
		_spec.SetField(feature.FieldAssignedAgent, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentCleared() {
		_spec.ClearField(feature.FieldAssignedAgent, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimingSessionID(); ok {
		_spec.SetField(feature.FieldClaimingSessionID, field.TypeString, value)
	}
	if _u.mutation.ClaimingSessionIDCleared() {
		_spec.ClearField(feature.FieldClaimingSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimingAgent(); ok {
		_spec.SetField(feature.FieldClaimingAgent, field.TypeString, value)
	}
	if _u.mutation.ClaimingAgentCleared() {
		_spec.ClearField(feature.FieldClaimingAgent, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(feature.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(feature.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BlockReason(); ok {
		_spec.SetField(feature.FieldBlockReason, field.TypeString, value)
	}
	if _u.mutation.BlockReasonCleared() {
		_spec.ClearField(feature.FieldBlockReason, field.TypeString)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(feature.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSessionWork(); ok {
		_spec.SetField(feature.FieldIsSessionWork, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletionCriteria(); ok {
		_spec.SetField(feature.FieldCompletionCriteria, field.TypeJSON, value)
	}
	if _u.mutation.CompletionCriteriaCleared() {
		_spec.ClearField(feature.FieldCompletionCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feature.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(feature.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(feature.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusEventsIDs(); len(nodes) > 0 && !_u.mutation.StatusEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInsightsIDs(); len(nodes) > 0 && !_u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsightsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommitsIDs(); len(nodes) > 0 && !_u.mutation.CommitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutgoingDepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutgoingDepsIDs(); len(nodes) > 0 && !_u.mutation.OutgoingDepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutgoingDepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IncomingDepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIncomingDepsIDs(); len(nodes) > 0 && !_u.mutation.IncomingDepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncomingDepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Feature{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
