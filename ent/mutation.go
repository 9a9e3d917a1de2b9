// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/ent/commit"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/insight"
	"github.com/ijoka-ai/ijoka/ent/predicate"
	"github.com/ijoka-ai/ijoka/ent/project"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
	"github.com/ijoka-ai/ijoka/ent/step"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentSession      = "AgentSession"
	TypeCommit            = "Commit"
	TypeFeature           = "Feature"
	TypeFeatureDependency = "FeatureDependency"
	TypeHookEvent         = "HookEvent"
	TypeInsight           = "Insight"
	TypeProject           = "Project"
	TypeStatusEvent       = "StatusEvent"
	TypeStep              = "Step"
)

// AgentSessionMutation represents an operation that mutates the AgentSession nodes in the graph.
type AgentSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	agent                 *string
	status                *agentsession.Status
	started_at            *time.Time
	last_activity         *time.Time
	ended_at              *time.Time
	event_count           *int
	addevent_count        *int
	is_subagent           *bool
	start_commit          *string
	active_feature_id     *string
	classified_at         *time.Time
	classification_source *string
	last_prompt           *string
	nudges_shown          *[]string
	appendnudges_shown    []string
	clearedFields         map[string]struct{}
	project               *string
	clearedproject        bool
	continued_from        *string
	clearedcontinued_from bool
	continuations         map[string]struct{}
	removedcontinuations  map[string]struct{}
	clearedcontinuations  bool
	events                map[string]struct{}
	removedevents         map[string]struct{}
	clearedevents         bool
	commits               map[string]struct{}
	removedcommits        map[string]struct{}
	clearedcommits        bool
	done                  bool
	oldValue              func(context.Context) (*AgentSession, error)
	predicates            []predicate.AgentSession
}

var _ ent.Mutation = (*AgentSessionMutation)(nil)

// agentsessionOption allows management of the mutation configuration using functional options.
type agentsessionOption func(*AgentSessionMutation)

// newAgentSessionMutation creates new mutation for the AgentSession entity.
func newAgentSessionMutation(c config, op Op, opts ...agentsessionOption) *AgentSessionMutation {
	m := &AgentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSessionID sets the ID field of the mutation.
func withAgentSessionID(id string) agentsessionOption {
	return func(m *AgentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSession
		)
		m.oldValue = func(ctx context.Context) (*AgentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSession sets the old AgentSession of the mutation.
func withAgentSession(node *AgentSession) agentsessionOption {
	return func(m *AgentSessionMutation) {
		m.oldValue = func(context.Context) (*AgentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSession entities.
func (m *AgentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgent sets the "agent" field.
func (m *AgentSessionMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *AgentSessionMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *AgentSessionMutation) ResetAgent() {
	m.agent = nil
}

// SetStatus sets the "status" field.
func (m *AgentSessionMutation) SetStatus(a agentsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentSessionMutation) Status() (r agentsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStatus(ctx context.Context) (v agentsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentSessionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetLastActivity sets the "last_activity" field.
func (m *AgentSessionMutation) SetLastActivity(t time.Time) {
	m.last_activity = &t
}

// LastActivity returns the value of the "last_activity" field in the mutation.
func (m *AgentSessionMutation) LastActivity() (r time.Time, exists bool) {
	v := m.last_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivity returns the old "last_activity" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldLastActivity(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivity: %w", err)
	}
	return oldValue.LastActivity, nil
}

// ResetLastActivity resets all changes to the "last_activity" field.
func (m *AgentSessionMutation) ResetLastActivity() {
	m.last_activity = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *AgentSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AgentSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *AgentSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[agentsession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *AgentSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AgentSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, agentsession.FieldEndedAt)
}

// SetEventCount sets the "event_count" field.
func (m *AgentSessionMutation) SetEventCount(i int) {
	m.event_count = &i
	m.addevent_count = nil
}

// EventCount returns the value of the "event_count" field in the mutation.
func (m *AgentSessionMutation) EventCount() (r int, exists bool) {
	v := m.event_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEventCount returns the old "event_count" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldEventCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventCount: %w", err)
	}
	return oldValue.EventCount, nil
}

// AddEventCount adds i to the "event_count" field.
func (m *AgentSessionMutation) AddEventCount(i int) {
	if m.addevent_count != nil {
		*m.addevent_count += i
	} else {
		m.addevent_count = &i
	}
}

// AddedEventCount returns the value that was added to the "event_count" field in this mutation.
func (m *AgentSessionMutation) AddedEventCount() (r int, exists bool) {
	v := m.addevent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventCount resets all changes to the "event_count" field.
func (m *AgentSessionMutation) ResetEventCount() {
	m.event_count = nil
	m.addevent_count = nil
}

// SetIsSubagent sets the "is_subagent" field.
func (m *AgentSessionMutation) SetIsSubagent(b bool) {
	m.is_subagent = &b
}

// IsSubagent returns the value of the "is_subagent" field in the mutation.
func (m *AgentSessionMutation) IsSubagent() (r bool, exists bool) {
	v := m.is_subagent
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSubagent returns the old "is_subagent" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldIsSubagent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSubagent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSubagent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSubagent: %w", err)
	}
	return oldValue.IsSubagent, nil
}

// ResetIsSubagent resets all changes to the "is_subagent" field.
func (m *AgentSessionMutation) ResetIsSubagent() {
	m.is_subagent = nil
}

// SetStartCommit sets the "start_commit" field.
func (m *AgentSessionMutation) SetStartCommit(s string) {
	m.start_commit = &s
}

// StartCommit returns the value of the "start_commit" field in the mutation.
func (m *AgentSessionMutation) StartCommit() (r string, exists bool) {
	v := m.start_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldStartCommit returns the old "start_commit" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStartCommit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartCommit: %w", err)
	}
	return oldValue.StartCommit, nil
}

// ClearStartCommit clears the value of the "start_commit" field.
func (m *AgentSessionMutation) ClearStartCommit() {
	m.start_commit = nil
	m.clearedFields[agentsession.FieldStartCommit] = struct{}{}
}

// StartCommitCleared returns if the "start_commit" field was cleared in this mutation.
func (m *AgentSessionMutation) StartCommitCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldStartCommit]
	return ok
}

// ResetStartCommit resets all changes to the "start_commit" field.
func (m *AgentSessionMutation) ResetStartCommit() {
	m.start_commit = nil
	delete(m.clearedFields, agentsession.FieldStartCommit)
}

// SetActiveFeatureID sets the "active_feature_id" field.
func (m *AgentSessionMutation) SetActiveFeatureID(s string) {
	m.active_feature_id = &s
}

// ActiveFeatureID returns the value of the "active_feature_id" field in the mutation.
func (m *AgentSessionMutation) ActiveFeatureID() (r string, exists bool) {
	v := m.active_feature_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveFeatureID returns the old "active_feature_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldActiveFeatureID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveFeatureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveFeatureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveFeatureID: %w", err)
	}
	return oldValue.ActiveFeatureID, nil
}

// ClearActiveFeatureID clears the value of the "active_feature_id" field.
func (m *AgentSessionMutation) ClearActiveFeatureID() {
	m.active_feature_id = nil
	m.clearedFields[agentsession.FieldActiveFeatureID] = struct{}{}
}

// ActiveFeatureIDCleared returns if the "active_feature_id" field was cleared in this mutation.
func (m *AgentSessionMutation) ActiveFeatureIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldActiveFeatureID]
	return ok
}

// ResetActiveFeatureID resets all changes to the "active_feature_id" field.
func (m *AgentSessionMutation) ResetActiveFeatureID() {
	m.active_feature_id = nil
	delete(m.clearedFields, agentsession.FieldActiveFeatureID)
}

// SetClassifiedAt sets the "classified_at" field.
func (m *AgentSessionMutation) SetClassifiedAt(t time.Time) {
	m.classified_at = &t
}

// ClassifiedAt returns the value of the "classified_at" field in the mutation.
func (m *AgentSessionMutation) ClassifiedAt() (r time.Time, exists bool) {
	v := m.classified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClassifiedAt returns the old "classified_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldClassifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassifiedAt: %w", err)
	}
	return oldValue.ClassifiedAt, nil
}

// ClearClassifiedAt clears the value of the "classified_at" field.
func (m *AgentSessionMutation) ClearClassifiedAt() {
	m.classified_at = nil
	m.clearedFields[agentsession.FieldClassifiedAt] = struct{}{}
}

// ClassifiedAtCleared returns if the "classified_at" field was cleared in this mutation.
func (m *AgentSessionMutation) ClassifiedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldClassifiedAt]
	return ok
}

// ResetClassifiedAt resets all changes to the "classified_at" field.
func (m *AgentSessionMutation) ResetClassifiedAt() {
	m.classified_at = nil
	delete(m.clearedFields, agentsession.FieldClassifiedAt)
}

// SetClassificationSource sets the "classification_source" field.
func (m *AgentSessionMutation) SetClassificationSource(s string) {
	m.classification_source = &s
}

// ClassificationSource returns the value of the "classification_source" field in the mutation.
func (m *AgentSessionMutation) ClassificationSource() (r string, exists bool) {
	v := m.classification_source
	if v == nil {
		return
	}
	return *v, true
}

// OldClassificationSource returns the old "classification_source" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldClassificationSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassificationSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassificationSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassificationSource: %w", err)
	}
	return oldValue.ClassificationSource, nil
}

// ClearClassificationSource clears the value of the "classification_source" field.
func (m *AgentSessionMutation) ClearClassificationSource() {
	m.classification_source = nil
	m.clearedFields[agentsession.FieldClassificationSource] = struct{}{}
}

// ClassificationSourceCleared returns if the "classification_source" field was cleared in this mutation.
func (m *AgentSessionMutation) ClassificationSourceCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldClassificationSource]
	return ok
}

// ResetClassificationSource resets all changes to the "classification_source" field.
func (m *AgentSessionMutation) ResetClassificationSource() {
	m.classification_source = nil
	delete(m.clearedFields, agentsession.FieldClassificationSource)
}

// SetLastPrompt sets the "last_prompt" field.
func (m *AgentSessionMutation) SetLastPrompt(s string) {
	m.last_prompt = &s
}

// LastPrompt returns the value of the "last_prompt" field in the mutation.
func (m *AgentSessionMutation) LastPrompt() (r string, exists bool) {
	v := m.last_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPrompt returns the old "last_prompt" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldLastPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPrompt: %w", err)
	}
	return oldValue.LastPrompt, nil
}

// ClearLastPrompt clears the value of the "last_prompt" field.
func (m *AgentSessionMutation) ClearLastPrompt() {
	m.last_prompt = nil
	m.clearedFields[agentsession.FieldLastPrompt] = struct{}{}
}

// LastPromptCleared returns if the "last_prompt" field was cleared in this mutation.
func (m *AgentSessionMutation) LastPromptCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldLastPrompt]
	return ok
}

// ResetLastPrompt resets all changes to the "last_prompt" field.
func (m *AgentSessionMutation) ResetLastPrompt() {
	m.last_prompt = nil
	delete(m.clearedFields, agentsession.FieldLastPrompt)
}

// SetNudgesShown sets the "nudges_shown" field.
func (m *AgentSessionMutation) SetNudgesShown(s []string) {
	m.nudges_shown = &s
	m.appendnudges_shown = nil
}

// NudgesShown returns the value of the "nudges_shown" field in the mutation.
func (m *AgentSessionMutation) NudgesShown() (r []string, exists bool) {
	v := m.nudges_shown
	if v == nil {
		return
	}
	return *v, true
}

// OldNudgesShown returns the old "nudges_shown" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldNudgesShown(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNudgesShown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNudgesShown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNudgesShown: %w", err)
	}
	return oldValue.NudgesShown, nil
}

// AppendNudgesShown adds s to the "nudges_shown" field.
func (m *AgentSessionMutation) AppendNudgesShown(s []string) {
	m.appendnudges_shown = append(m.appendnudges_shown, s...)
}

// AppendedNudgesShown returns the list of values that were appended to the "nudges_shown" field in this mutation.
func (m *AgentSessionMutation) AppendedNudgesShown() ([]string, bool) {
	if len(m.appendnudges_shown) == 0 {
		return nil, false
	}
	return m.appendnudges_shown, true
}

// ClearNudgesShown clears the value of the "nudges_shown" field.
func (m *AgentSessionMutation) ClearNudgesShown() {
	m.nudges_shown = nil
	m.appendnudges_shown = nil
	m.clearedFields[agentsession.FieldNudgesShown] = struct{}{}
}

// NudgesShownCleared returns if the "nudges_shown" field was cleared in this mutation.
func (m *AgentSessionMutation) NudgesShownCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldNudgesShown]
	return ok
}

// ResetNudgesShown resets all changes to the "nudges_shown" field.
func (m *AgentSessionMutation) ResetNudgesShown() {
	m.nudges_shown = nil
	m.appendnudges_shown = nil
	delete(m.clearedFields, agentsession.FieldNudgesShown)
}

// SetProjectID sets the "project_id" field.
func (m *AgentSessionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AgentSessionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AgentSessionMutation) ResetProjectID() {
	m.project = nil
}

// SetContinuedFromID sets the "continued_from_id" field.
func (m *AgentSessionMutation) SetContinuedFromID(s string) {
	m.continued_from = &s
}

// ContinuedFromID returns the value of the "continued_from_id" field in the mutation.
func (m *AgentSessionMutation) ContinuedFromID() (r string, exists bool) {
	v := m.continued_from
	if v == nil {
		return
	}
	return *v, true
}

// OldContinuedFromID returns the old "continued_from_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldContinuedFromID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContinuedFromID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContinuedFromID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContinuedFromID: %w", err)
	}
	return oldValue.ContinuedFromID, nil
}

// ClearContinuedFromID clears the value of the "continued_from_id" field.
func (m *AgentSessionMutation) ClearContinuedFromID() {
	m.continued_from = nil
	m.clearedFields[agentsession.FieldContinuedFromID] = struct{}{}
}

// ContinuedFromIDCleared returns if the "continued_from_id" field was cleared in this mutation.
func (m *AgentSessionMutation) ContinuedFromIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldContinuedFromID]
	return ok
}

// ResetContinuedFromID resets all changes to the "continued_from_id" field.
func (m *AgentSessionMutation) ResetContinuedFromID() {
	m.continued_from = nil
	delete(m.clearedFields, agentsession.FieldContinuedFromID)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *AgentSessionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[agentsession.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *AgentSessionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *AgentSessionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *AgentSessionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearContinuedFrom clears the "continued_from" edge to the AgentSession entity.
func (m *AgentSessionMutation) ClearContinuedFrom() {
	m.clearedcontinued_from = true
	m.clearedFields[agentsession.FieldContinuedFromID] = struct{}{}
}

// ContinuedFromCleared reports if the "continued_from" edge to the AgentSession entity was cleared.
func (m *AgentSessionMutation) ContinuedFromCleared() bool {
	return m.ContinuedFromIDCleared() || m.clearedcontinued_from
}

// ContinuedFromIDs returns the "continued_from" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContinuedFromID instead. It exists only for internal usage by the builders.
func (m *AgentSessionMutation) ContinuedFromIDs() (ids []string) {
	if id := m.continued_from; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContinuedFrom resets all changes to the "continued_from" edge.
func (m *AgentSessionMutation) ResetContinuedFrom() {
	m.continued_from = nil
	m.clearedcontinued_from = false
}

// AddContinuationIDs adds the "continuations" edge to the AgentSession entity by ids.
func (m *AgentSessionMutation) AddContinuationIDs(ids ...string) {
	if m.continuations == nil {
		m.continuations = make(map[string]struct{})
	}
	for i := range ids {
		m.continuations[ids[i]] = struct{}{}
	}
}

// ClearContinuations clears the "continuations" edge to the AgentSession entity.
func (m *AgentSessionMutation) ClearContinuations() {
	m.clearedcontinuations = true
}

// ContinuationsCleared reports if the "continuations" edge to the AgentSession entity was cleared.
func (m *AgentSessionMutation) ContinuationsCleared() bool {
	return m.clearedcontinuations
}

// RemoveContinuationIDs removes the "continuations" edge to the AgentSession entity by IDs.
func (m *AgentSessionMutation) RemoveContinuationIDs(ids ...string) {
	if m.removedcontinuations == nil {
		m.removedcontinuations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.continuations, ids[i])
		m.removedcontinuations[ids[i]] = struct{}{}
	}
}

// RemovedContinuations returns the removed IDs of the "continuations" edge to the AgentSession entity.
func (m *AgentSessionMutation) RemovedContinuationsIDs() (ids []string) {
	for id := range m.removedcontinuations {
		ids = append(ids, id)
	}
	return
}

// ContinuationsIDs returns the "continuations" edge IDs in the mutation.
func (m *AgentSessionMutation) ContinuationsIDs() (ids []string) {
	for id := range m.continuations {
		ids = append(ids, id)
	}
	return
}

// ResetContinuations resets all changes to the "continuations" edge.
func (m *AgentSessionMutation) ResetContinuations() {
	m.continuations = nil
	m.clearedcontinuations = false
	m.removedcontinuations = nil
}

// AddEventIDs adds the "events" edge to the HookEvent entity by ids.
func (m *AgentSessionMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the HookEvent entity.
func (m *AgentSessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the HookEvent entity was cleared.
func (m *AgentSessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the HookEvent entity by IDs.
func (m *AgentSessionMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the HookEvent entity.
func (m *AgentSessionMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *AgentSessionMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *AgentSessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddCommitIDs adds the "commits" edge to the Commit entity by ids.
func (m *AgentSessionMutation) AddCommitIDs(ids ...string) {
	if m.commits == nil {
		m.commits = make(map[string]struct{})
	}
	for i := range ids {
		m.commits[ids[i]] = struct{}{}
	}
}

// ClearCommits clears the "commits" edge to the Commit entity.
func (m *AgentSessionMutation) ClearCommits() {
	m.clearedcommits = true
}

// CommitsCleared reports if the "commits" edge to the Commit entity was cleared.
func (m *AgentSessionMutation) CommitsCleared() bool {
	return m.clearedcommits
}

// RemoveCommitIDs removes the "commits" edge to the Commit entity by IDs.
func (m *AgentSessionMutation) RemoveCommitIDs(ids ...string) {
	if m.removedcommits == nil {
		m.removedcommits = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.commits, ids[i])
		m.removedcommits[ids[i]] = struct{}{}
	}
}

// RemovedCommits returns the removed IDs of the "commits" edge to the Commit entity.
func (m *AgentSessionMutation) RemovedCommitsIDs() (ids []string) {
	for id := range m.removedcommits {
		ids = append(ids, id)
	}
	return
}

// CommitsIDs returns the "commits" edge IDs in the mutation.
func (m *AgentSessionMutation) CommitsIDs() (ids []string) {
	for id := range m.commits {
		ids = append(ids, id)
	}
	return
}

// ResetCommits resets all changes to the "commits" edge.
func (m *AgentSessionMutation) ResetCommits() {
	m.commits = nil
	m.clearedcommits = false
	m.removedcommits = nil
}

// Where appends a list predicates to the AgentSessionMutation builder.
func (m *AgentSessionMutation) Where(ps ...predicate.AgentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSession).
func (m *AgentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSessionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.agent != nil {
		fields = append(fields, agentsession.FieldAgent)
	}
	if m.status != nil {
		fields = append(fields, agentsession.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, agentsession.FieldStartedAt)
	}
	if m.last_activity != nil {
		fields = append(fields, agentsession.FieldLastActivity)
	}
	if m.ended_at != nil {
		fields = append(fields, agentsession.FieldEndedAt)
	}
	if m.event_count != nil {
		fields = append(fields, agentsession.FieldEventCount)
	}
	if m.is_subagent != nil {
		fields = append(fields, agentsession.FieldIsSubagent)
	}
	if m.start_commit != nil {
		fields = append(fields, agentsession.FieldStartCommit)
	}
	if m.active_feature_id != nil {
		fields = append(fields, agentsession.FieldActiveFeatureID)
	}
	if m.classified_at != nil {
		fields = append(fields, agentsession.FieldClassifiedAt)
	}
	if m.classification_source != nil {
		fields = append(fields, agentsession.FieldClassificationSource)
	}
	if m.last_prompt != nil {
		fields = append(fields, agentsession.FieldLastPrompt)
	}
	if m.nudges_shown != nil {
		fields = append(fields, agentsession.FieldNudgesShown)
	}
	if m.project != nil {
		fields = append(fields, agentsession.FieldProjectID)
	}
	if m.continued_from != nil {
		fields = append(fields, agentsession.FieldContinuedFromID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldAgent:
		return m.Agent()
	case agentsession.FieldStatus:
		return m.Status()
	case agentsession.FieldStartedAt:
		return m.StartedAt()
	case agentsession.FieldLastActivity:
		return m.LastActivity()
	case agentsession.FieldEndedAt:
		return m.EndedAt()
	case agentsession.FieldEventCount:
		return m.EventCount()
	case agentsession.FieldIsSubagent:
		return m.IsSubagent()
	case agentsession.FieldStartCommit:
		return m.StartCommit()
	case agentsession.FieldActiveFeatureID:
		return m.ActiveFeatureID()
	case agentsession.FieldClassifiedAt:
		return m.ClassifiedAt()
	case agentsession.FieldClassificationSource:
		return m.ClassificationSource()
	case agentsession.FieldLastPrompt:
		return m.LastPrompt()
	case agentsession.FieldNudgesShown:
		return m.NudgesShown()
	case agentsession.FieldProjectID:
		return m.ProjectID()
	case agentsession.FieldContinuedFromID:
		return m.ContinuedFromID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsession.FieldAgent:
		return m.OldAgent(ctx)
	case agentsession.FieldStatus:
		return m.OldStatus(ctx)
	case agentsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentsession.FieldLastActivity:
		return m.OldLastActivity(ctx)
	case agentsession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case agentsession.FieldEventCount:
		return m.OldEventCount(ctx)
	case agentsession.FieldIsSubagent:
		return m.OldIsSubagent(ctx)
	case agentsession.FieldStartCommit:
		return m.OldStartCommit(ctx)
	case agentsession.FieldActiveFeatureID:
		return m.OldActiveFeatureID(ctx)
	case agentsession.FieldClassifiedAt:
		return m.OldClassifiedAt(ctx)
	case agentsession.FieldClassificationSource:
		return m.OldClassificationSource(ctx)
	case agentsession.FieldLastPrompt:
		return m.OldLastPrompt(ctx)
	case agentsession.FieldNudgesShown:
		return m.OldNudgesShown(ctx)
	case agentsession.FieldProjectID:
		return m.OldProjectID(ctx)
	case agentsession.FieldContinuedFromID:
		return m.OldContinuedFromID(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case agentsession.FieldStatus:
		v, ok := value.(agentsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentsession.FieldLastActivity:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivity(v)
		return nil
	case agentsession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case agentsession.FieldEventCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventCount(v)
		return nil
	case agentsession.FieldIsSubagent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSubagent(v)
		return nil
	case agentsession.FieldStartCommit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartCommit(v)
		return nil
	case agentsession.FieldActiveFeatureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveFeatureID(v)
		return nil
	case agentsession.FieldClassifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassifiedAt(v)
		return nil
	case agentsession.FieldClassificationSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassificationSource(v)
		return nil
	case agentsession.FieldLastPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPrompt(v)
		return nil
	case agentsession.FieldNudgesShown:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNudgesShown(v)
		return nil
	case agentsession.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case agentsession.FieldContinuedFromID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContinuedFromID(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSessionMutation) AddedFields() []string {
	var fields []string
	if m.addevent_count != nil {
		fields = append(fields, agentsession.FieldEventCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldEventCount:
		return m.AddedEventCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldEventCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventCount(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsession.FieldEndedAt) {
		fields = append(fields, agentsession.FieldEndedAt)
	}
	if m.FieldCleared(agentsession.FieldStartCommit) {
		fields = append(fields, agentsession.FieldStartCommit)
	}
	if m.FieldCleared(agentsession.FieldActiveFeatureID) {
		fields = append(fields, agentsession.FieldActiveFeatureID)
	}
	if m.FieldCleared(agentsession.FieldClassifiedAt) {
		fields = append(fields, agentsession.FieldClassifiedAt)
	}
	if m.FieldCleared(agentsession.FieldClassificationSource) {
		fields = append(fields, agentsession.FieldClassificationSource)
	}
	if m.FieldCleared(agentsession.FieldLastPrompt) {
		fields = append(fields, agentsession.FieldLastPrompt)
	}
	if m.FieldCleared(agentsession.FieldNudgesShown) {
		fields = append(fields, agentsession.FieldNudgesShown)
	}
	if m.FieldCleared(agentsession.FieldContinuedFromID) {
		fields = append(fields, agentsession.FieldContinuedFromID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSessionMutation) ClearField(name string) error {
	switch name {
	case agentsession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case agentsession.FieldStartCommit:
		m.ClearStartCommit()
		return nil
	case agentsession.FieldActiveFeatureID:
		m.ClearActiveFeatureID()
		return nil
	case agentsession.FieldClassifiedAt:
		m.ClearClassifiedAt()
		return nil
	case agentsession.FieldClassificationSource:
		m.ClearClassificationSource()
		return nil
	case agentsession.FieldLastPrompt:
		m.ClearLastPrompt()
		return nil
	case agentsession.FieldNudgesShown:
		m.ClearNudgesShown()
		return nil
	case agentsession.FieldContinuedFromID:
		m.ClearContinuedFromID()
		return nil
	}
	return fmt.Errorf("unknown AgentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSessionMutation) ResetField(name string) error {
	switch name {
	case agentsession.FieldAgent:
		m.ResetAgent()
		return nil
	case agentsession.FieldStatus:
		m.ResetStatus()
		return nil
	case agentsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentsession.FieldLastActivity:
		m.ResetLastActivity()
		return nil
	case agentsession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case agentsession.FieldEventCount:
		m.ResetEventCount()
		return nil
	case agentsession.FieldIsSubagent:
		m.ResetIsSubagent()
		return nil
	case agentsession.FieldStartCommit:
		m.ResetStartCommit()
		return nil
	case agentsession.FieldActiveFeatureID:
		m.ResetActiveFeatureID()
		return nil
	case agentsession.FieldClassifiedAt:
		m.ResetClassifiedAt()
		return nil
	case agentsession.FieldClassificationSource:
		m.ResetClassificationSource()
		return nil
	case agentsession.FieldLastPrompt:
		m.ResetLastPrompt()
		return nil
	case agentsession.FieldNudgesShown:
		m.ResetNudgesShown()
		return nil
	case agentsession.FieldProjectID:
		m.ResetProjectID()
		return nil
	case agentsession.FieldContinuedFromID:
		m.ResetContinuedFromID()
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.project != nil {
		edges = append(edges, agentsession.EdgeProject)
	}
	if m.continued_from != nil {
		edges = append(edges, agentsession.EdgeContinuedFrom)
	}
	if m.continuations != nil {
		edges = append(edges, agentsession.EdgeContinuations)
	}
	if m.events != nil {
		edges = append(edges, agentsession.EdgeEvents)
	}
	if m.commits != nil {
		edges = append(edges, agentsession.EdgeCommits)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case agentsession.EdgeContinuedFrom:
		if id := m.continued_from; id != nil {
			return []ent.Value{*id}
		}
	case agentsession.EdgeContinuations:
		ids := make([]ent.Value, 0, len(m.continuations))
		for id := range m.continuations {
			ids = append(ids, id)
		}
		return ids
	case agentsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case agentsession.EdgeCommits:
		ids := make([]ent.Value, 0, len(m.commits))
		for id := range m.commits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedcontinuations != nil {
		edges = append(edges, agentsession.EdgeContinuations)
	}
	if m.removedevents != nil {
		edges = append(edges, agentsession.EdgeEvents)
	}
	if m.removedcommits != nil {
		edges = append(edges, agentsession.EdgeCommits)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeContinuations:
		ids := make([]ent.Value, 0, len(m.removedcontinuations))
		for id := range m.removedcontinuations {
			ids = append(ids, id)
		}
		return ids
	case agentsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case agentsession.EdgeCommits:
		ids := make([]ent.Value, 0, len(m.removedcommits))
		for id := range m.removedcommits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedproject {
		edges = append(edges, agentsession.EdgeProject)
	}
	if m.clearedcontinued_from {
		edges = append(edges, agentsession.EdgeContinuedFrom)
	}
	if m.clearedcontinuations {
		edges = append(edges, agentsession.EdgeContinuations)
	}
	if m.clearedevents {
		edges = append(edges, agentsession.EdgeEvents)
	}
	if m.clearedcommits {
		edges = append(edges, agentsession.EdgeCommits)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentsession.EdgeProject:
		return m.clearedproject
	case agentsession.EdgeContinuedFrom:
		return m.clearedcontinued_from
	case agentsession.EdgeContinuations:
		return m.clearedcontinuations
	case agentsession.EdgeEvents:
		return m.clearedevents
	case agentsession.EdgeCommits:
		return m.clearedcommits
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSessionMutation) ClearEdge(name string) error {
	switch name {
	case agentsession.EdgeProject:
		m.ClearProject()
		return nil
	case agentsession.EdgeContinuedFrom:
		m.ClearContinuedFrom()
		return nil
	}
	return fmt.Errorf("unknown AgentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSessionMutation) ResetEdge(name string) error {
	switch name {
	case agentsession.EdgeProject:
		m.ResetProject()
		return nil
	case agentsession.EdgeContinuedFrom:
		m.ResetContinuedFrom()
		return nil
	case agentsession.EdgeContinuations:
		m.ResetContinuations()
		return nil
	case agentsession.EdgeEvents:
		m.ResetEvents()
		return nil
	case agentsession.EdgeCommits:
		m.ResetCommits()
		return nil
	}
	return fmt.Errorf("unknown AgentSession edge %s", name)
}

// CommitMutation represents an operation that mutates the Commit nodes in the graph.
type CommitMutation struct {
	config
	op             Op
	typ            string
	id             *string
	message        *string
	author         *string
	timestamp      *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	feature        *string
	clearedfeature bool
	done           bool
	oldValue       func(context.Context) (*Commit, error)
	predicates     []predicate.Commit
}

var _ ent.Mutation = (*CommitMutation)(nil)

// commitOption allows management of the mutation configuration using functional options.
type commitOption func(*CommitMutation)

// newCommitMutation creates new mutation for the Commit entity.
func newCommitMutation(c config, op Op, opts ...commitOption) *CommitMutation {
	m := &CommitMutation{
		config:        c,
		op:            op,
		typ:           TypeCommit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommitID sets the ID field of the mutation.
func withCommitID(id string) commitOption {
	return func(m *CommitMutation) {
		var (
			err   error
			once  sync.Once
			value *Commit
		)
		m.oldValue = func(ctx context.Context) (*Commit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Commit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommit sets the old Commit of the mutation.
func withCommit(node *Commit) commitOption {
	return func(m *CommitMutation) {
		m.oldValue = func(context.Context) (*Commit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Commit entities.
func (m *CommitMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommitMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommitMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Commit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessage sets the "message" field.
func (m *CommitMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *CommitMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Commit entity.
// If the Commit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *CommitMutation) ResetMessage() {
	m.message = nil
}

// SetAuthor sets the "author" field.
func (m *CommitMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *CommitMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Commit entity.
// If the Commit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *CommitMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[commit.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *CommitMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[commit.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *CommitMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, commit.FieldAuthor)
}

// SetTimestamp sets the "timestamp" field.
func (m *CommitMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CommitMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Commit entity.
// If the Commit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CommitMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *CommitMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CommitMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Commit entity.
// If the Commit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CommitMutation) ResetSessionID() {
	m.session = nil
}

// SetFeatureID sets the "feature_id" field.
func (m *CommitMutation) SetFeatureID(s string) {
	m.feature = &s
}

// FeatureID returns the value of the "feature_id" field in the mutation.
func (m *CommitMutation) FeatureID() (r string, exists bool) {
	v := m.feature
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureID returns the old "feature_id" field's value of the Commit entity.
// If the Commit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitMutation) OldFeatureID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureID: %w", err)
	}
	return oldValue.FeatureID, nil
}

// ClearFeatureID clears the value of the "feature_id" field.
func (m *CommitMutation) ClearFeatureID() {
	m.feature = nil
	m.clearedFields[commit.FieldFeatureID] = struct{}{}
}

// FeatureIDCleared returns if the "feature_id" field was cleared in this mutation.
func (m *CommitMutation) FeatureIDCleared() bool {
	_, ok := m.clearedFields[commit.FieldFeatureID]
	return ok
}

// ResetFeatureID resets all changes to the "feature_id" field.
func (m *CommitMutation) ResetFeatureID() {
	m.feature = nil
	delete(m.clearedFields, commit.FieldFeatureID)
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (m *CommitMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[commit.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AgentSession entity was cleared.
func (m *CommitMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *CommitMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *CommitMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (m *CommitMutation) ClearFeature() {
	m.clearedfeature = true
	m.clearedFields[commit.FieldFeatureID] = struct{}{}
}

// FeatureCleared reports if the "feature" edge to the Feature entity was cleared.
func (m *CommitMutation) FeatureCleared() bool {
	return m.FeatureIDCleared() || m.clearedfeature
}

// FeatureIDs returns the "feature" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FeatureID instead. It exists only for internal usage by the builders.
func (m *CommitMutation) FeatureIDs() (ids []string) {
	if id := m.feature; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFeature resets all changes to the "feature" edge.
func (m *CommitMutation) ResetFeature() {
	m.feature = nil
	m.clearedfeature = false
}

// Where appends a list predicates to the CommitMutation builder.
func (m *CommitMutation) Where(ps ...predicate.Commit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Commit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Commit).
func (m *CommitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommitMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.message != nil {
		fields = append(fields, commit.FieldMessage)
	}
	if m.author != nil {
		fields = append(fields, commit.FieldAuthor)
	}
	if m.timestamp != nil {
		fields = append(fields, commit.FieldTimestamp)
	}
	if m.session != nil {
		fields = append(fields, commit.FieldSessionID)
	}
	if m.feature != nil {
		fields = append(fields, commit.FieldFeatureID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commit.FieldMessage:
		return m.Message()
	case commit.FieldAuthor:
		return m.Author()
	case commit.FieldTimestamp:
		return m.Timestamp()
	case commit.FieldSessionID:
		return m.SessionID()
	case commit.FieldFeatureID:
		return m.FeatureID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commit.FieldMessage:
		return m.OldMessage(ctx)
	case commit.FieldAuthor:
		return m.OldAuthor(ctx)
	case commit.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case commit.FieldSessionID:
		return m.OldSessionID(ctx)
	case commit.FieldFeatureID:
		return m.OldFeatureID(ctx)
	}
	return nil, fmt.Errorf("unknown Commit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commit.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case commit.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case commit.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case commit.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case commit.FieldFeatureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureID(v)
		return nil
	}
	return fmt.Errorf("unknown Commit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommitMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommitMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Commit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commit.FieldAuthor) {
		fields = append(fields, commit.FieldAuthor)
	}
	if m.FieldCleared(commit.FieldFeatureID) {
		fields = append(fields, commit.FieldFeatureID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommitMutation) ClearField(name string) error {
	switch name {
	case commit.FieldAuthor:
		m.ClearAuthor()
		return nil
	case commit.FieldFeatureID:
		m.ClearFeatureID()
		return nil
	}
	return fmt.Errorf("unknown Commit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommitMutation) ResetField(name string) error {
	switch name {
	case commit.FieldMessage:
		m.ResetMessage()
		return nil
	case commit.FieldAuthor:
		m.ResetAuthor()
		return nil
	case commit.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case commit.FieldSessionID:
		m.ResetSessionID()
		return nil
	case commit.FieldFeatureID:
		m.ResetFeatureID()
		return nil
	}
	return fmt.Errorf("unknown Commit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommitMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, commit.EdgeSession)
	}
	if m.feature != nil {
		edges = append(edges, commit.EdgeFeature)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommitMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case commit.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case commit.EdgeFeature:
		if id := m.feature; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, commit.EdgeSession)
	}
	if m.clearedfeature {
		edges = append(edges, commit.EdgeFeature)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommitMutation) EdgeCleared(name string) bool {
	switch name {
	case commit.EdgeSession:
		return m.clearedsession
	case commit.EdgeFeature:
		return m.clearedfeature
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommitMutation) ClearEdge(name string) error {
	switch name {
	case commit.EdgeSession:
		m.ClearSession()
		return nil
	case commit.EdgeFeature:
		m.ClearFeature()
		return nil
	}
	return fmt.Errorf("unknown Commit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommitMutation) ResetEdge(name string) error {
	switch name {
	case commit.EdgeSession:
		m.ResetSession()
		return nil
	case commit.EdgeFeature:
		m.ResetFeature()
		return nil
	}
	return fmt.Errorf("unknown Commit edge %s", name)
}

// FeatureMutation represents an operation that mutates the Feature nodes in the graph.
type FeatureMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	description          *string
	category             *string
	_type                *feature.Type
	status               *feature.Status
	priority             *int
	addpriority          *int
	file_patterns        *[]string
	appendfile_patterns  []string
	branch_hint          *string
	work_count           *int
	addwork_count        *int
	assigned_agent       *string
	claiming_session_id  *string
	claiming_agent       *string
	claimed_at           *time.Time
	block_reason         *string
	is_primary           *bool
	is_session_work      *bool
	completion_criteria  *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	completed_at         *time.Time
	clearedFields        map[string]struct{}
	project              *string
	clearedproject       bool
	parent               *string
	clearedparent        bool
	children             map[string]struct{}
	removedchildren      map[string]struct{}
	clearedchildren      bool
	steps                map[string]struct{}
	removedsteps         map[string]struct{}
	clearedsteps         bool
	status_events        map[string]struct{}
	removedstatus_events map[string]struct{}
	clearedstatus_events bool
	insights             map[string]struct{}
	removedinsights      map[string]struct{}
	clearedinsights      bool
	commits              map[string]struct{}
	removedcommits       map[string]struct{}
	clearedcommits       bool
	outgoing_deps        map[string]struct{}
	removedoutgoing_deps map[string]struct{}
	clearedoutgoing_deps bool
	incoming_deps        map[string]struct{}
	removedincoming_deps map[string]struct{}
	clearedincoming_deps bool
	events               map[string]struct{}
	removedevents        map[string]struct{}
	clearedevents        bool
	done                 bool
	oldValue             func(context.Context) (*Feature, error)
	predicates           []predicate.Feature
}

var _ ent.Mutation = (*FeatureMutation)(nil)

// featureOption allows management of the mutation configuration using functional options.
type featureOption func(*FeatureMutation)

// newFeatureMutation creates new mutation for the Feature entity.
func newFeatureMutation(c config, op Op, opts ...featureOption) *FeatureMutation {
	m := &FeatureMutation{
		config:        c,
		op:            op,
		typ:           TypeFeature,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeatureID sets the ID field of the mutation.
func withFeatureID(id string) featureOption {
	return func(m *FeatureMutation) {
		var (
			err   error
			once  sync.Once
			value *Feature
		)
		m.oldValue = func(ctx context.Context) (*Feature, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Feature.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeature sets the old Feature of the mutation.
func withFeature(node *Feature) featureOption {
	return func(m *FeatureMutation) {
		m.oldValue = func(context.Context) (*Feature, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeatureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeatureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Feature entities.
func (m *FeatureMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeatureMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeatureMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Feature.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDescription sets the "description" field.
func (m *FeatureMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *FeatureMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *FeatureMutation) ResetDescription() {
	m.description = nil
}

// SetCategory sets the "category" field.
func (m *FeatureMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *FeatureMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *FeatureMutation) ResetCategory() {
	m.category = nil
}

// SetType sets the "type" field.
func (m *FeatureMutation) SetType(f feature.Type) {
	m._type = &f
}

// GetType returns the value of the "type" field in the mutation.
func (m *FeatureMutation) GetType() (r feature.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldType(ctx context.Context) (v feature.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *FeatureMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *FeatureMutation) SetStatus(f feature.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FeatureMutation) Status() (r feature.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldStatus(ctx context.Context) (v feature.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FeatureMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *FeatureMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *FeatureMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *FeatureMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *FeatureMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *FeatureMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetFilePatterns sets the "file_patterns" field.
func (m *FeatureMutation) SetFilePatterns(s []string) {
	m.file_patterns = &s
	m.appendfile_patterns = nil
}

// FilePatterns returns the value of the "file_patterns" field in the mutation.
func (m *FeatureMutation) FilePatterns() (r []string, exists bool) {
	v := m.file_patterns
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePatterns returns the old "file_patterns" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldFilePatterns(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePatterns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePatterns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePatterns: %w", err)
	}
	return oldValue.FilePatterns, nil
}

// AppendFilePatterns adds s to the "file_patterns" field.
func (m *FeatureMutation) AppendFilePatterns(s []string) {
	m.appendfile_patterns = append(m.appendfile_patterns, s...)
}

// AppendedFilePatterns returns the list of values that were appended to the "file_patterns" field in this mutation.
func (m *FeatureMutation) AppendedFilePatterns() ([]string, bool) {
	if len(m.appendfile_patterns) == 0 {
		return nil, false
	}
	return m.appendfile_patterns, true
}

// ClearFilePatterns clears the value of the "file_patterns" field.
func (m *FeatureMutation) ClearFilePatterns() {
	m.file_patterns = nil
	m.appendfile_patterns = nil
	m.clearedFields[feature.FieldFilePatterns] = struct{}{}
}

// FilePatternsCleared returns if the "file_patterns" field was cleared in this mutation.
func (m *FeatureMutation) FilePatternsCleared() bool {
	_, ok := m.clearedFields[feature.FieldFilePatterns]
	return ok
}

// ResetFilePatterns resets all changes to the "file_patterns" field.
func (m *FeatureMutation) ResetFilePatterns() {
	m.file_patterns = nil
	m.appendfile_patterns = nil
	delete(m.clearedFields, feature.FieldFilePatterns)
}

// SetBranchHint sets the "branch_hint" field.
func (m *FeatureMutation) SetBranchHint(s string) {
	m.branch_hint = &s
}

// BranchHint returns the value of the "branch_hint" field in the mutation.
func (m *FeatureMutation) BranchHint() (r string, exists bool) {
	v := m.branch_hint
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchHint returns the old "branch_hint" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldBranchHint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchHint: %w", err)
	}
	return oldValue.BranchHint, nil
}

// ClearBranchHint clears the value of the "branch_hint" field.
func (m *FeatureMutation) ClearBranchHint() {
	m.branch_hint = nil
	m.clearedFields[feature.FieldBranchHint] = struct{}{}
}

// BranchHintCleared returns if the "branch_hint" field was cleared in this mutation.
func (m *FeatureMutation) BranchHintCleared() bool {
	_, ok := m.clearedFields[feature.FieldBranchHint]
	return ok
}

// ResetBranchHint resets all changes to the "branch_hint" field.
func (m *FeatureMutation) ResetBranchHint() {
	m.branch_hint = nil
	delete(m.clearedFields, feature.FieldBranchHint)
}

// SetWorkCount sets the "work_count" field.
func (m *FeatureMutation) SetWorkCount(i int) {
	m.work_count = &i
	m.addwork_count = nil
}

// WorkCount returns the value of the "work_count" field in the mutation.
func (m *FeatureMutation) WorkCount() (r int, exists bool) {
	v := m.work_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkCount returns the old "work_count" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldWorkCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkCount: %w", err)
	}
	return oldValue.WorkCount, nil
}

// AddWorkCount adds i to the "work_count" field.
func (m *FeatureMutation) AddWorkCount(i int) {
	if m.addwork_count != nil {
		*m.addwork_count += i
	} else {
		m.addwork_count = &i
	}
}

// AddedWorkCount returns the value that was added to the "work_count" field in this mutation.
func (m *FeatureMutation) AddedWorkCount() (r int, exists bool) {
	v := m.addwork_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWorkCount resets all changes to the "work_count" field.
func (m *FeatureMutation) ResetWorkCount() {
	m.work_count = nil
	m.addwork_count = nil
}

// SetAssignedAgent sets the "assigned_agent" field.
func (m *FeatureMutation) SetAssignedAgent(s string) {
	m.assigned_agent = &s
}

// AssignedAgent returns the value of the "assigned_agent" field in the mutation.
func (m *FeatureMutation) AssignedAgent() (r string, exists bool) {
	v := m.assigned_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgent returns the old "assigned_agent" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldAssignedAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgent: %w", err)
	}
	return oldValue.AssignedAgent, nil
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (m *FeatureMutation) ClearAssignedAgent() {
	m.assigned_agent = nil
	m.clearedFields[feature.FieldAssignedAgent] = struct{}{}
}

// AssignedAgentCleared returns if the "assigned_agent" field was cleared in this mutation.
func (m *FeatureMutation) AssignedAgentCleared() bool {
	_, ok := m.clearedFields[feature.FieldAssignedAgent]
	return ok
}

// ResetAssignedAgent resets all changes to the "assigned_agent" field.
func (m *FeatureMutation) ResetAssignedAgent() {
	m.assigned_agent = nil
	delete(m.clearedFields, feature.FieldAssignedAgent)
}

// SetClaimingSessionID sets the "claiming_session_id" field.
func (m *FeatureMutation) SetClaimingSessionID(s string) {
	m.claiming_session_id = &s
}

// ClaimingSessionID returns the value of the "claiming_session_id" field in the mutation.
func (m *FeatureMutation) ClaimingSessionID() (r string, exists bool) {
	v := m.claiming_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimingSessionID returns the old "claiming_session_id" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldClaimingSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimingSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimingSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimingSessionID: %w", err)
	}
	return oldValue.ClaimingSessionID, nil
}

// ClearClaimingSessionID clears the value of the "claiming_session_id" field.
func (m *FeatureMutation) ClearClaimingSessionID() {
	m.claiming_session_id = nil
	m.clearedFields[feature.FieldClaimingSessionID] = struct{}{}
}

// ClaimingSessionIDCleared returns if the "claiming_session_id" field was cleared in this mutation.
func (m *FeatureMutation) ClaimingSessionIDCleared() bool {
	_, ok := m.clearedFields[feature.FieldClaimingSessionID]
	return ok
}

// ResetClaimingSessionID resets all changes to the "claiming_session_id" field.
func (m *FeatureMutation) ResetClaimingSessionID() {
	m.claiming_session_id = nil
	delete(m.clearedFields, feature.FieldClaimingSessionID)
}

// SetClaimingAgent sets the "claiming_agent" field.
func (m *FeatureMutation) SetClaimingAgent(s string) {
	m.claiming_agent = &s
}

// ClaimingAgent returns the value of the "claiming_agent" field in the mutation.
func (m *FeatureMutation) ClaimingAgent() (r string, exists bool) {
	v := m.claiming_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimingAgent returns the old "claiming_agent" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldClaimingAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimingAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimingAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimingAgent: %w", err)
	}
	return oldValue.ClaimingAgent, nil
}

// ClearClaimingAgent clears the value of the "claiming_agent" field.
func (m *FeatureMutation) ClearClaimingAgent() {
	m.claiming_agent = nil
	m.clearedFields[feature.FieldClaimingAgent] = struct{}{}
}

// ClaimingAgentCleared returns if the "claiming_agent" field was cleared in this mutation.
func (m *FeatureMutation) ClaimingAgentCleared() bool {
	_, ok := m.clearedFields[feature.FieldClaimingAgent]
	return ok
}

// ResetClaimingAgent resets all changes to the "claiming_agent" field.
func (m *FeatureMutation) ResetClaimingAgent() {
	m.claiming_agent = nil
	delete(m.clearedFields, feature.FieldClaimingAgent)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *FeatureMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *FeatureMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *FeatureMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[feature.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *FeatureMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[feature.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *FeatureMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, feature.FieldClaimedAt)
}

// SetBlockReason sets the "block_reason" field.
func (m *FeatureMutation) SetBlockReason(s string) {
	m.block_reason = &s
}

// BlockReason returns the value of the "block_reason" field in the mutation.
func (m *FeatureMutation) BlockReason() (r string, exists bool) {
	v := m.block_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockReason returns the old "block_reason" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldBlockReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockReason: %w", err)
	}
	return oldValue.BlockReason, nil
}

// ClearBlockReason clears the value of the "block_reason" field.
func (m *FeatureMutation) ClearBlockReason() {
	m.block_reason = nil
	m.clearedFields[feature.FieldBlockReason] = struct{}{}
}

// BlockReasonCleared returns if the "block_reason" field was cleared in this mutation.
func (m *FeatureMutation) BlockReasonCleared() bool {
	_, ok := m.clearedFields[feature.FieldBlockReason]
	return ok
}

// ResetBlockReason resets all changes to the "block_reason" field.
func (m *FeatureMutation) ResetBlockReason() {
	m.block_reason = nil
	delete(m.clearedFields, feature.FieldBlockReason)
}

// SetIsPrimary sets the "is_primary" field.
func (m *FeatureMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *FeatureMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *FeatureMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// SetIsSessionWork sets the "is_session_work" field.
func (m *FeatureMutation) SetIsSessionWork(b bool) {
	m.is_session_work = &b
}

// IsSessionWork returns the value of the "is_session_work" field in the mutation.
func (m *FeatureMutation) IsSessionWork() (r bool, exists bool) {
	v := m.is_session_work
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSessionWork returns the old "is_session_work" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldIsSessionWork(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSessionWork is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSessionWork requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSessionWork: %w", err)
	}
	return oldValue.IsSessionWork, nil
}

// ResetIsSessionWork resets all changes to the "is_session_work" field.
func (m *FeatureMutation) ResetIsSessionWork() {
	m.is_session_work = nil
}

// SetCompletionCriteria sets the "completion_criteria" field.
func (m *FeatureMutation) SetCompletionCriteria(value map[string]interface{}) {
	m.completion_criteria = &value
}

// CompletionCriteria returns the value of the "completion_criteria" field in the mutation.
func (m *FeatureMutation) CompletionCriteria() (r map[string]interface{}, exists bool) {
	v := m.completion_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionCriteria returns the old "completion_criteria" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldCompletionCriteria(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionCriteria: %w", err)
	}
	return oldValue.CompletionCriteria, nil
}

// ClearCompletionCriteria clears the value of the "completion_criteria" field.
func (m *FeatureMutation) ClearCompletionCriteria() {
	m.completion_criteria = nil
	m.clearedFields[feature.FieldCompletionCriteria] = struct{}{}
}

// CompletionCriteriaCleared returns if the "completion_criteria" field was cleared in this mutation.
func (m *FeatureMutation) CompletionCriteriaCleared() bool {
	_, ok := m.clearedFields[feature.FieldCompletionCriteria]
	return ok
}

// ResetCompletionCriteria resets all changes to the "completion_criteria" field.
func (m *FeatureMutation) ResetCompletionCriteria() {
	m.completion_criteria = nil
	delete(m.clearedFields, feature.FieldCompletionCriteria)
}

// SetCreatedAt sets the "created_at" field.
func (m *FeatureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeatureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeatureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FeatureMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FeatureMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FeatureMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *FeatureMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *FeatureMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *FeatureMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[feature.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *FeatureMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[feature.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *FeatureMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, feature.FieldCompletedAt)
}

// SetProjectID sets the "project_id" field.
func (m *FeatureMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *FeatureMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *FeatureMutation) ResetProjectID() {
	m.project = nil
}

// SetParentID sets the "parent_id" field.
func (m *FeatureMutation) SetParentID(s string) {
	m.parent = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *FeatureMutation) ParentID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Feature entity.
// If the Feature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *FeatureMutation) ClearParentID() {
	m.parent = nil
	m.clearedFields[feature.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *FeatureMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[feature.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *FeatureMutation) ResetParentID() {
	m.parent = nil
	delete(m.clearedFields, feature.FieldParentID)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *FeatureMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[feature.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *FeatureMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *FeatureMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *FeatureMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearParent clears the "parent" edge to the Feature entity.
func (m *FeatureMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[feature.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Feature entity was cleared.
func (m *FeatureMutation) ParentCleared() bool {
	return m.ParentIDCleared() || m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *FeatureMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *FeatureMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the Feature entity by ids.
func (m *FeatureMutation) AddChildIDs(ids ...string) {
	if m.children == nil {
		m.children = make(map[string]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Feature entity.
func (m *FeatureMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Feature entity was cleared.
func (m *FeatureMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Feature entity by IDs.
func (m *FeatureMutation) RemoveChildIDs(ids ...string) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Feature entity.
func (m *FeatureMutation) RemovedChildrenIDs() (ids []string) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *FeatureMutation) ChildrenIDs() (ids []string) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *FeatureMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddStepIDs adds the "steps" edge to the Step entity by ids.
func (m *FeatureMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the Step entity.
func (m *FeatureMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the Step entity was cleared.
func (m *FeatureMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the Step entity by IDs.
func (m *FeatureMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the Step entity.
func (m *FeatureMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *FeatureMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *FeatureMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddStatusEventIDs adds the "status_events" edge to the StatusEvent entity by ids.
func (m *FeatureMutation) AddStatusEventIDs(ids ...string) {
	if m.status_events == nil {
		m.status_events = make(map[string]struct{})
	}
	for i := range ids {
		m.status_events[ids[i]] = struct{}{}
	}
}

// ClearStatusEvents clears the "status_events" edge to the StatusEvent entity.
func (m *FeatureMutation) ClearStatusEvents() {
	m.clearedstatus_events = true
}

// StatusEventsCleared reports if the "status_events" edge to the StatusEvent entity was cleared.
func (m *FeatureMutation) StatusEventsCleared() bool {
	return m.clearedstatus_events
}

// RemoveStatusEventIDs removes the "status_events" edge to the StatusEvent entity by IDs.
func (m *FeatureMutation) RemoveStatusEventIDs(ids ...string) {
	if m.removedstatus_events == nil {
		m.removedstatus_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.status_events, ids[i])
		m.removedstatus_events[ids[i]] = struct{}{}
	}
}

// RemovedStatusEvents returns the removed IDs of the "status_events" edge to the StatusEvent entity.
func (m *FeatureMutation) RemovedStatusEventsIDs() (ids []string) {
	for id := range m.removedstatus_events {
		ids = append(ids, id)
	}
	return
}

// StatusEventsIDs returns the "status_events" edge IDs in the mutation.
func (m *FeatureMutation) StatusEventsIDs() (ids []string) {
	for id := range m.status_events {
		ids = append(ids, id)
	}
	return
}

// ResetStatusEvents resets all changes to the "status_events" edge.
func (m *FeatureMutation) ResetStatusEvents() {
	m.status_events = nil
	m.clearedstatus_events = false
	m.removedstatus_events = nil
}

// AddInsightIDs adds the "insights" edge to the Insight entity by ids.
func (m *FeatureMutation) AddInsightIDs(ids ...string) {
	if m.insights == nil {
		m.insights = make(map[string]struct{})
	}
	for i := range ids {
		m.insights[ids[i]] = struct{}{}
	}
}

// ClearInsights clears the "insights" edge to the Insight entity.
func (m *FeatureMutation) ClearInsights() {
	m.clearedinsights = true
}

// InsightsCleared reports if the "insights" edge to the Insight entity was cleared.
func (m *FeatureMutation) InsightsCleared() bool {
	return m.clearedinsights
}

// RemoveInsightIDs removes the "insights" edge to the Insight entity by IDs.
func (m *FeatureMutation) RemoveInsightIDs(ids ...string) {
	if m.removedinsights == nil {
		m.removedinsights = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.insights, ids[i])
		m.removedinsights[ids[i]] = struct{}{}
	}
}

// RemovedInsights returns the removed IDs of the "insights" edge to the Insight entity.
func (m *FeatureMutation) RemovedInsightsIDs() (ids []string) {
	for id := range m.removedinsights {
		ids = append(ids, id)
	}
	return
}

// InsightsIDs returns the "insights" edge IDs in the mutation.
func (m *FeatureMutation) InsightsIDs() (ids []string) {
	for id := range m.insights {
		ids = append(ids, id)
	}
	return
}

// ResetInsights resets all changes to the "insights" edge.
func (m *FeatureMutation) ResetInsights() {
	m.insights = nil
	m.clearedinsights = false
	m.removedinsights = nil
}

// AddCommitIDs adds the "commits" edge to the Commit entity by ids.
func (m *FeatureMutation) AddCommitIDs(ids ...string) {
	if m.commits == nil {
		m.commits = make(map[string]struct{})
	}
	for i := range ids {
		m.commits[ids[i]] = struct{}{}
	}
}

// ClearCommits clears the "commits" edge to the Commit entity.
func (m *FeatureMutation) ClearCommits() {
	m.clearedcommits = true
}

// CommitsCleared reports if the "commits" edge to the Commit entity was cleared.
func (m *FeatureMutation) CommitsCleared() bool {
	return m.clearedcommits
}

// RemoveCommitIDs removes the "commits" edge to the Commit entity by IDs.
func (m *FeatureMutation) RemoveCommitIDs(ids ...string) {
	if m.removedcommits == nil {
		m.removedcommits = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.commits, ids[i])
		m.removedcommits[ids[i]] = struct{}{}
	}
}

// RemovedCommits returns the removed IDs of the "commits" edge to the Commit entity.
func (m *FeatureMutation) RemovedCommitsIDs() (ids []string) {
	for id := range m.removedcommits {
		ids = append(ids, id)
	}
	return
}

// CommitsIDs returns the "commits" edge IDs in the mutation.
func (m *FeatureMutation) CommitsIDs() (ids []string) {
	for id := range m.commits {
		ids = append(ids, id)
	}
	return
}

// ResetCommits resets all changes to the "commits" edge.
func (m *FeatureMutation) ResetCommits() {
	m.commits = nil
	m.clearedcommits = false
	m.removedcommits = nil
}

// AddOutgoingDepIDs adds the "outgoing_deps" edge to the FeatureDependency entity by ids.
func (m *FeatureMutation) AddOutgoingDepIDs(ids ...string) {
	if m.outgoing_deps == nil {
		m.outgoing_deps = make(map[string]struct{})
	}
	for i := range ids {
		m.outgoing_deps[ids[i]] = struct{}{}
	}
}

// ClearOutgoingDeps clears the "outgoing_deps" edge to the FeatureDependency entity.
func (m *FeatureMutation) ClearOutgoingDeps() {
	m.clearedoutgoing_deps = true
}

// OutgoingDepsCleared reports if the "outgoing_deps" edge to the FeatureDependency entity was cleared.
func (m *FeatureMutation) OutgoingDepsCleared() bool {
	return m.clearedoutgoing_deps
}

// RemoveOutgoingDepIDs removes the "outgoing_deps" edge to the FeatureDependency entity by IDs.
func (m *FeatureMutation) RemoveOutgoingDepIDs(ids ...string) {
	if m.removedoutgoing_deps == nil {
		m.removedoutgoing_deps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outgoing_deps, ids[i])
		m.removedoutgoing_deps[ids[i]] = struct{}{}
	}
}

// RemovedOutgoingDeps returns the removed IDs of the "outgoing_deps" edge to the FeatureDependency entity.
func (m *FeatureMutation) RemovedOutgoingDepsIDs() (ids []string) {
	for id := range m.removedoutgoing_deps {
		ids = append(ids, id)
	}
	return
}

// OutgoingDepsIDs returns the "outgoing_deps" edge IDs in the mutation.
func (m *FeatureMutation) OutgoingDepsIDs() (ids []string) {
	for id := range m.outgoing_deps {
		ids = append(ids, id)
	}
	return
}

// ResetOutgoingDeps resets all changes to the "outgoing_deps" edge.
func (m *FeatureMutation) ResetOutgoingDeps() {
	m.outgoing_deps = nil
	m.clearedoutgoing_deps = false
	m.removedoutgoing_deps = nil
}

// AddIncomingDepIDs adds the "incoming_deps" edge to the FeatureDependency entity by ids.
func (m *FeatureMutation) AddIncomingDepIDs(ids ...string) {
	if m.incoming_deps == nil {
		m.incoming_deps = make(map[string]struct{})
	}
	for i := range ids {
		m.incoming_deps[ids[i]] = struct{}{}
	}
}

// ClearIncomingDeps clears the "incoming_deps" edge to the FeatureDependency entity.
func (m *FeatureMutation) ClearIncomingDeps() {
	m.clearedincoming_deps = true
}

// IncomingDepsCleared reports if the "incoming_deps" edge to the FeatureDependency entity was cleared.
func (m *FeatureMutation) IncomingDepsCleared() bool {
	return m.clearedincoming_deps
}

// RemoveIncomingDepIDs removes the "incoming_deps" edge to the FeatureDependency entity by IDs.
func (m *FeatureMutation) RemoveIncomingDepIDs(ids ...string) {
	if m.removedincoming_deps == nil {
		m.removedincoming_deps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.incoming_deps, ids[i])
		m.removedincoming_deps[ids[i]] = struct{}{}
	}
}

// RemovedIncomingDeps returns the removed IDs of the "incoming_deps" edge to the FeatureDependency entity.
func (m *FeatureMutation) RemovedIncomingDepsIDs() (ids []string) {
	for id := range m.removedincoming_deps {
		ids = append(ids, id)
	}
	return
}

// IncomingDepsIDs returns the "incoming_deps" edge IDs in the mutation.
func (m *FeatureMutation) IncomingDepsIDs() (ids []string) {
	for id := range m.incoming_deps {
		ids = append(ids, id)
	}
	return
}

// ResetIncomingDeps resets all changes to the "incoming_deps" edge.
func (m *FeatureMutation) ResetIncomingDeps() {
	m.incoming_deps = nil
	m.clearedincoming_deps = false
	m.removedincoming_deps = nil
}

// AddEventIDs adds the "events" edge to the HookEvent entity by ids.
func (m *FeatureMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the HookEvent entity.
func (m *FeatureMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the HookEvent entity was cleared.
func (m *FeatureMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the HookEvent entity by IDs.
func (m *FeatureMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the HookEvent entity.
func (m *FeatureMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *FeatureMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *FeatureMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the FeatureMutation builder.
func (m *FeatureMutation) Where(ps ...predicate.Feature) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeatureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeatureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Feature, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeatureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeatureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Feature).
func (m *FeatureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeatureMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.description != nil {
		fields = append(fields, feature.FieldDescription)
	}
	if m.category != nil {
		fields = append(fields, feature.FieldCategory)
	}
	if m._type != nil {
		fields = append(fields, feature.FieldType)
	}
	if m.status != nil {
		fields = append(fields, feature.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, feature.FieldPriority)
	}
	if m.file_patterns != nil {
		fields = append(fields, feature.FieldFilePatterns)
	}
	if m.branch_hint != nil {
		fields = append(fields, feature.FieldBranchHint)
	}
	if m.work_count != nil {
		fields = append(fields, feature.FieldWorkCount)
	}
	if m.assigned_agent != nil {
		fields = append(fields, feature.FieldAssignedAgent)
	}
	if m.claiming_session_id != nil {
		fields = append(fields, feature.FieldClaimingSessionID)
	}
	if m.claiming_agent != nil {
		fields = append(fields, feature.FieldClaimingAgent)
	}
	if m.claimed_at != nil {
		fields = append(fields, feature.FieldClaimedAt)
	}
	if m.block_reason != nil {
		fields = append(fields, feature.FieldBlockReason)
	}
	if m.is_primary != nil {
		fields = append(fields, feature.FieldIsPrimary)
	}
	if m.is_session_work != nil {
		fields = append(fields, feature.FieldIsSessionWork)
	}
	if m.completion_criteria != nil {
		fields = append(fields, feature.FieldCompletionCriteria)
	}
	if m.created_at != nil {
		fields = append(fields, feature.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, feature.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, feature.FieldCompletedAt)
	}
	if m.project != nil {
		fields = append(fields, feature.FieldProjectID)
	}
	if m.parent != nil {
		fields = append(fields, feature.FieldParentID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeatureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feature.FieldDescription:
		return m.Description()
	case feature.FieldCategory:
		return m.Category()
	case feature.FieldType:
		return m.GetType()
	case feature.FieldStatus:
		return m.Status()
	case feature.FieldPriority:
		return m.Priority()
	case feature.FieldFilePatterns:
		return m.FilePatterns()
	case feature.FieldBranchHint:
		return m.BranchHint()
	case feature.FieldWorkCount:
		return m.WorkCount()
	case feature.FieldAssignedAgent:
		return m.AssignedAgent()
	case feature.FieldClaimingSessionID:
		return m.ClaimingSessionID()
	case feature.FieldClaimingAgent:
		return m.ClaimingAgent()
	case feature.FieldClaimedAt:
		return m.ClaimedAt()
	case feature.FieldBlockReason:
		return m.BlockReason()
	case feature.FieldIsPrimary:
		return m.IsPrimary()
	case feature.FieldIsSessionWork:
		return m.IsSessionWork()
	case feature.FieldCompletionCriteria:
		return m.CompletionCriteria()
	case feature.FieldCreatedAt:
		return m.CreatedAt()
	case feature.FieldUpdatedAt:
		return m.UpdatedAt()
	case feature.FieldCompletedAt:
		return m.CompletedAt()
	case feature.FieldProjectID:
		return m.ProjectID()
	case feature.FieldParentID:
		return m.ParentID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeatureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feature.FieldDescription:
		return m.OldDescription(ctx)
	case feature.FieldCategory:
		return m.OldCategory(ctx)
	case feature.FieldType:
		return m.OldType(ctx)
	case feature.FieldStatus:
		return m.OldStatus(ctx)
	case feature.FieldPriority:
		return m.OldPriority(ctx)
	case feature.FieldFilePatterns:
		return m.OldFilePatterns(ctx)
	case feature.FieldBranchHint:
		return m.OldBranchHint(ctx)
	case feature.FieldWorkCount:
		return m.OldWorkCount(ctx)
	case feature.FieldAssignedAgent:
		return m.OldAssignedAgent(ctx)
	case feature.FieldClaimingSessionID:
		return m.OldClaimingSessionID(ctx)
	case feature.FieldClaimingAgent:
		return m.OldClaimingAgent(ctx)
	case feature.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case feature.FieldBlockReason:
		return m.OldBlockReason(ctx)
	case feature.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	case feature.FieldIsSessionWork:
		return m.OldIsSessionWork(ctx)
	case feature.FieldCompletionCriteria:
		return m.OldCompletionCriteria(ctx)
	case feature.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case feature.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case feature.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case feature.FieldProjectID:
		return m.OldProjectID(ctx)
	case feature.FieldParentID:
		return m.OldParentID(ctx)
	}
	return nil, fmt.Errorf("unknown Feature field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feature.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case feature.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case feature.FieldType:
		v, ok := value.(feature.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case feature.FieldStatus:
		v, ok := value.(feature.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case feature.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case feature.FieldFilePatterns:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePatterns(v)
		return nil
	case feature.FieldBranchHint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchHint(v)
		return nil
	case feature.FieldWorkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkCount(v)
		return nil
	case feature.FieldAssignedAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgent(v)
		return nil
	case feature.FieldClaimingSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimingSessionID(v)
		return nil
	case feature.FieldClaimingAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimingAgent(v)
		return nil
	case feature.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case feature.FieldBlockReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockReason(v)
		return nil
	case feature.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	case feature.FieldIsSessionWork:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSessionWork(v)
		return nil
	case feature.FieldCompletionCriteria:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionCriteria(v)
		return nil
	case feature.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case feature.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case feature.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case feature.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case feature.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	}
	return fmt.Errorf("unknown Feature field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeatureMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, feature.FieldPriority)
	}
	if m.addwork_count != nil {
		fields = append(fields, feature.FieldWorkCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeatureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feature.FieldPriority:
		return m.AddedPriority()
	case feature.FieldWorkCount:
		return m.AddedWorkCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feature.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case feature.FieldWorkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorkCount(v)
		return nil
	}
	return fmt.Errorf("unknown Feature numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeatureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feature.FieldFilePatterns) {
		fields = append(fields, feature.FieldFilePatterns)
	}
	if m.FieldCleared(feature.FieldBranchHint) {
		fields = append(fields, feature.FieldBranchHint)
	}
	if m.FieldCleared(feature.FieldAssignedAgent) {
		fields = append(fields, feature.FieldAssignedAgent)
	}
	if m.FieldCleared(feature.FieldClaimingSessionID) {
		fields = append(fields, feature.FieldClaimingSessionID)
	}
	if m.FieldCleared(feature.FieldClaimingAgent) {
		fields = append(fields, feature.FieldClaimingAgent)
	}
	if m.FieldCleared(feature.FieldClaimedAt) {
		fields = append(fields, feature.FieldClaimedAt)
	}
	if m.FieldCleared(feature.FieldBlockReason) {
		fields = append(fields, feature.FieldBlockReason)
	}
	if m.FieldCleared(feature.FieldCompletionCriteria) {
		fields = append(fields, feature.FieldCompletionCriteria)
	}
	if m.FieldCleared(feature.FieldCompletedAt) {
		fields = append(fields, feature.FieldCompletedAt)
	}
	if m.FieldCleared(feature.FieldParentID) {
		fields = append(fields, feature.FieldParentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeatureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeatureMutation) ClearField(name string) error {
	switch name {
	case feature.FieldFilePatterns:
		m.ClearFilePatterns()
		return nil
	case feature.FieldBranchHint:
		m.ClearBranchHint()
		return nil
	case feature.FieldAssignedAgent:
		m.ClearAssignedAgent()
		return nil
	case feature.FieldClaimingSessionID:
		m.ClearClaimingSessionID()
		return nil
	case feature.FieldClaimingAgent:
		m.ClearClaimingAgent()
		return nil
	case feature.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case feature.FieldBlockReason:
		m.ClearBlockReason()
		return nil
	case feature.FieldCompletionCriteria:
		m.ClearCompletionCriteria()
		return nil
	case feature.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case feature.FieldParentID:
		m.ClearParentID()
		return nil
	}
	return fmt.Errorf("unknown Feature nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeatureMutation) ResetField(name string) error {
	switch name {
	case feature.FieldDescription:
		m.ResetDescription()
		return nil
	case feature.FieldCategory:
		m.ResetCategory()
		return nil
	case feature.FieldType:
		m.ResetType()
		return nil
	case feature.FieldStatus:
		m.ResetStatus()
		return nil
	case feature.FieldPriority:
		m.ResetPriority()
		return nil
	case feature.FieldFilePatterns:
		m.ResetFilePatterns()
		return nil
	case feature.FieldBranchHint:
		m.ResetBranchHint()
		return nil
	case feature.FieldWorkCount:
		m.ResetWorkCount()
		return nil
	case feature.FieldAssignedAgent:
		m.ResetAssignedAgent()
		return nil
	case feature.FieldClaimingSessionID:
		m.ResetClaimingSessionID()
		return nil
	case feature.FieldClaimingAgent:
		m.ResetClaimingAgent()
		return nil
	case feature.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case feature.FieldBlockReason:
		m.ResetBlockReason()
		return nil
	case feature.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	case feature.FieldIsSessionWork:
		m.ResetIsSessionWork()
		return nil
	case feature.FieldCompletionCriteria:
		m.ResetCompletionCriteria()
		return nil
	case feature.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case feature.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case feature.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case feature.FieldProjectID:
		m.ResetProjectID()
		return nil
	case feature.FieldParentID:
		m.ResetParentID()
		return nil
	}
	return fmt.Errorf("unknown Feature field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeatureMutation) AddedEdges() []string {
	edges := make([]string, 0, 10)
	if m.project != nil {
		edges = append(edges, feature.EdgeProject)
	}
	if m.parent != nil {
		edges = append(edges, feature.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, feature.EdgeChildren)
	}
	if m.steps != nil {
		edges = append(edges, feature.EdgeSteps)
	}
	if m.status_events != nil {
		edges = append(edges, feature.EdgeStatusEvents)
	}
	if m.insights != nil {
		edges = append(edges, feature.EdgeInsights)
	}
	if m.commits != nil {
		edges = append(edges, feature.EdgeCommits)
	}
	if m.outgoing_deps != nil {
		edges = append(edges, feature.EdgeOutgoingDeps)
	}
	if m.incoming_deps != nil {
		edges = append(edges, feature.EdgeIncomingDeps)
	}
	if m.events != nil {
		edges = append(edges, feature.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeatureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feature.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case feature.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case feature.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeStatusEvents:
		ids := make([]ent.Value, 0, len(m.status_events))
		for id := range m.status_events {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeInsights:
		ids := make([]ent.Value, 0, len(m.insights))
		for id := range m.insights {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeCommits:
		ids := make([]ent.Value, 0, len(m.commits))
		for id := range m.commits {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeOutgoingDeps:
		ids := make([]ent.Value, 0, len(m.outgoing_deps))
		for id := range m.outgoing_deps {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeIncomingDeps:
		ids := make([]ent.Value, 0, len(m.incoming_deps))
		for id := range m.incoming_deps {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeatureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 10)
	if m.removedchildren != nil {
		edges = append(edges, feature.EdgeChildren)
	}
	if m.removedsteps != nil {
		edges = append(edges, feature.EdgeSteps)
	}
	if m.removedstatus_events != nil {
		edges = append(edges, feature.EdgeStatusEvents)
	}
	if m.removedinsights != nil {
		edges = append(edges, feature.EdgeInsights)
	}
	if m.removedcommits != nil {
		edges = append(edges, feature.EdgeCommits)
	}
	if m.removedoutgoing_deps != nil {
		edges = append(edges, feature.EdgeOutgoingDeps)
	}
	if m.removedincoming_deps != nil {
		edges = append(edges, feature.EdgeIncomingDeps)
	}
	if m.removedevents != nil {
		edges = append(edges, feature.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeatureMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case feature.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeStatusEvents:
		ids := make([]ent.Value, 0, len(m.removedstatus_events))
		for id := range m.removedstatus_events {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeInsights:
		ids := make([]ent.Value, 0, len(m.removedinsights))
		for id := range m.removedinsights {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeCommits:
		ids := make([]ent.Value, 0, len(m.removedcommits))
		for id := range m.removedcommits {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeOutgoingDeps:
		ids := make([]ent.Value, 0, len(m.removedoutgoing_deps))
		for id := range m.removedoutgoing_deps {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeIncomingDeps:
		ids := make([]ent.Value, 0, len(m.removedincoming_deps))
		for id := range m.removedincoming_deps {
			ids = append(ids, id)
		}
		return ids
	case feature.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeatureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 10)
	if m.clearedproject {
		edges = append(edges, feature.EdgeProject)
	}
	if m.clearedparent {
		edges = append(edges, feature.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, feature.EdgeChildren)
	}
	if m.clearedsteps {
		edges = append(edges, feature.EdgeSteps)
	}
	if m.clearedstatus_events {
		edges = append(edges, feature.EdgeStatusEvents)
	}
	if m.clearedinsights {
		edges = append(edges, feature.EdgeInsights)
	}
	if m.clearedcommits {
		edges = append(edges, feature.EdgeCommits)
	}
	if m.clearedoutgoing_deps {
		edges = append(edges, feature.EdgeOutgoingDeps)
	}
	if m.clearedincoming_deps {
		edges = append(edges, feature.EdgeIncomingDeps)
	}
	if m.clearedevents {
		edges = append(edges, feature.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeatureMutation) EdgeCleared(name string) bool {
	switch name {
	case feature.EdgeProject:
		return m.clearedproject
	case feature.EdgeParent:
		return m.clearedparent
	case feature.EdgeChildren:
		return m.clearedchildren
	case feature.EdgeSteps:
		return m.clearedsteps
	case feature.EdgeStatusEvents:
		return m.clearedstatus_events
	case feature.EdgeInsights:
		return m.clearedinsights
	case feature.EdgeCommits:
		return m.clearedcommits
	case feature.EdgeOutgoingDeps:
		return m.clearedoutgoing_deps
	case feature.EdgeIncomingDeps:
		return m.clearedincoming_deps
	case feature.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeatureMutation) ClearEdge(name string) error {
	switch name {
	case feature.EdgeProject:
		m.ClearProject()
		return nil
	case feature.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Feature unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeatureMutation) ResetEdge(name string) error {
	switch name {
	case feature.EdgeProject:
		m.ResetProject()
		return nil
	case feature.EdgeParent:
		m.ResetParent()
		return nil
	case feature.EdgeChildren:
		m.ResetChildren()
		return nil
	case feature.EdgeSteps:
		m.ResetSteps()
		return nil
	case feature.EdgeStatusEvents:
		m.ResetStatusEvents()
		return nil
	case feature.EdgeInsights:
		m.ResetInsights()
		return nil
	case feature.EdgeCommits:
		m.ResetCommits()
		return nil
	case feature.EdgeOutgoingDeps:
		m.ResetOutgoingDeps()
		return nil
	case feature.EdgeIncomingDeps:
		m.ResetIncomingDeps()
		return nil
	case feature.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Feature edge %s", name)
}

// FeatureDependencyMutation represents an operation that mutates the FeatureDependency nodes in the graph.
type FeatureDependencyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	kind          *featuredependency.Kind
	created_at    *time.Time
	clearedFields map[string]struct{}
	source        *string
	clearedsource bool
	target        *string
	clearedtarget bool
	done          bool
	oldValue      func(context.Context) (*FeatureDependency, error)
	predicates    []predicate.FeatureDependency
}

var _ ent.Mutation = (*FeatureDependencyMutation)(nil)

// featuredependencyOption allows management of the mutation configuration using functional options.
type featuredependencyOption func(*FeatureDependencyMutation)

// newFeatureDependencyMutation creates new mutation for the FeatureDependency entity.
func newFeatureDependencyMutation(c config, op Op, opts ...featuredependencyOption) *FeatureDependencyMutation {
	m := &FeatureDependencyMutation{
		config:        c,
		op:            op,
		typ:           TypeFeatureDependency,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeatureDependencyID sets the ID field of the mutation.
func withFeatureDependencyID(id string) featuredependencyOption {
	return func(m *FeatureDependencyMutation) {
		var (
			err   error
			once  sync.Once
			value *FeatureDependency
		)
		m.oldValue = func(ctx context.Context) (*FeatureDependency, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeatureDependency.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeatureDependency sets the old FeatureDependency of the mutation.
func withFeatureDependency(node *FeatureDependency) featuredependencyOption {
	return func(m *FeatureDependencyMutation) {
		m.oldValue = func(context.Context) (*FeatureDependency, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeatureDependencyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeatureDependencyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeatureDependency entities.
func (m *FeatureDependencyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeatureDependencyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeatureDependencyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeatureDependency.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *FeatureDependencyMutation) SetKind(f featuredependency.Kind) {
	m.kind = &f
}

// Kind returns the value of the "kind" field in the mutation.
func (m *FeatureDependencyMutation) Kind() (r featuredependency.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the FeatureDependency entity.
// If the FeatureDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureDependencyMutation) OldKind(ctx context.Context) (v featuredependency.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *FeatureDependencyMutation) ResetKind() {
	m.kind = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FeatureDependencyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeatureDependencyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FeatureDependency entity.
// If the FeatureDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureDependencyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeatureDependencyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSourceID sets the "source_id" field.
func (m *FeatureDependencyMutation) SetSourceID(s string) {
	m.source = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *FeatureDependencyMutation) SourceID() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the FeatureDependency entity.
// If the FeatureDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureDependencyMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *FeatureDependencyMutation) ResetSourceID() {
	m.source = nil
}

// SetTargetID sets the "target_id" field.
func (m *FeatureDependencyMutation) SetTargetID(s string) {
	m.target = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *FeatureDependencyMutation) TargetID() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the FeatureDependency entity.
// If the FeatureDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureDependencyMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *FeatureDependencyMutation) ResetTargetID() {
	m.target = nil
}

// ClearSource clears the "source" edge to the Feature entity.
func (m *FeatureDependencyMutation) ClearSource() {
	m.clearedsource = true
	m.clearedFields[featuredependency.FieldSourceID] = struct{}{}
}

// SourceCleared reports if the "source" edge to the Feature entity was cleared.
func (m *FeatureDependencyMutation) SourceCleared() bool {
	return m.clearedsource
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *FeatureDependencyMutation) SourceIDs() (ids []string) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *FeatureDependencyMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// ClearTarget clears the "target" edge to the Feature entity.
func (m *FeatureDependencyMutation) ClearTarget() {
	m.clearedtarget = true
	m.clearedFields[featuredependency.FieldTargetID] = struct{}{}
}

// TargetCleared reports if the "target" edge to the Feature entity was cleared.
func (m *FeatureDependencyMutation) TargetCleared() bool {
	return m.clearedtarget
}

// TargetIDs returns the "target" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TargetID instead. It exists only for internal usage by the builders.
func (m *FeatureDependencyMutation) TargetIDs() (ids []string) {
	if id := m.target; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTarget resets all changes to the "target" edge.
func (m *FeatureDependencyMutation) ResetTarget() {
	m.target = nil
	m.clearedtarget = false
}

// Where appends a list predicates to the FeatureDependencyMutation builder.
func (m *FeatureDependencyMutation) Where(ps ...predicate.FeatureDependency) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeatureDependencyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeatureDependencyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeatureDependency, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeatureDependencyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeatureDependencyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeatureDependency).
func (m *FeatureDependencyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeatureDependencyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.kind != nil {
		fields = append(fields, featuredependency.FieldKind)
	}
	if m.created_at != nil {
		fields = append(fields, featuredependency.FieldCreatedAt)
	}
	if m.source != nil {
		fields = append(fields, featuredependency.FieldSourceID)
	}
	if m.target != nil {
		fields = append(fields, featuredependency.FieldTargetID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeatureDependencyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case featuredependency.FieldKind:
		return m.Kind()
	case featuredependency.FieldCreatedAt:
		return m.CreatedAt()
	case featuredependency.FieldSourceID:
		return m.SourceID()
	case featuredependency.FieldTargetID:
		return m.TargetID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeatureDependencyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case featuredependency.FieldKind:
		return m.OldKind(ctx)
	case featuredependency.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case featuredependency.FieldSourceID:
		return m.OldSourceID(ctx)
	case featuredependency.FieldTargetID:
		return m.OldTargetID(ctx)
	}
	return nil, fmt.Errorf("unknown FeatureDependency field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureDependencyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case featuredependency.FieldKind:
		v, ok := value.(featuredependency.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case featuredependency.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case featuredependency.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case featuredependency.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	}
	return fmt.Errorf("unknown FeatureDependency field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeatureDependencyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeatureDependencyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureDependencyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FeatureDependency numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeatureDependencyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeatureDependencyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeatureDependencyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FeatureDependency nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeatureDependencyMutation) ResetField(name string) error {
	switch name {
	case featuredependency.FieldKind:
		m.ResetKind()
		return nil
	case featuredependency.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case featuredependency.FieldSourceID:
		m.ResetSourceID()
		return nil
	case featuredependency.FieldTargetID:
		m.ResetTargetID()
		return nil
	}
	return fmt.Errorf("unknown FeatureDependency field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeatureDependencyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.source != nil {
		edges = append(edges, featuredependency.EdgeSource)
	}
	if m.target != nil {
		edges = append(edges, featuredependency.EdgeTarget)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeatureDependencyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case featuredependency.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	case featuredependency.EdgeTarget:
		if id := m.target; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeatureDependencyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeatureDependencyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeatureDependencyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsource {
		edges = append(edges, featuredependency.EdgeSource)
	}
	if m.clearedtarget {
		edges = append(edges, featuredependency.EdgeTarget)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeatureDependencyMutation) EdgeCleared(name string) bool {
	switch name {
	case featuredependency.EdgeSource:
		return m.clearedsource
	case featuredependency.EdgeTarget:
		return m.clearedtarget
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeatureDependencyMutation) ClearEdge(name string) error {
	switch name {
	case featuredependency.EdgeSource:
		m.ClearSource()
		return nil
	case featuredependency.EdgeTarget:
		m.ClearTarget()
		return nil
	}
	return fmt.Errorf("unknown FeatureDependency unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeatureDependencyMutation) ResetEdge(name string) error {
	switch name {
	case featuredependency.EdgeSource:
		m.ResetSource()
		return nil
	case featuredependency.EdgeTarget:
		m.ResetTarget()
		return nil
	}
	return fmt.Errorf("unknown FeatureDependency edge %s", name)
}

// HookEventMutation represents an operation that mutates the HookEvent nodes in the graph.
type HookEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	event_type      *hookevent.EventType
	tool_name       *string
	payload         *map[string]interface{}
	timestamp       *time.Time
	source_agent    *string
	success         *bool
	summary         *string
	clearedFields   map[string]struct{}
	session         *string
	clearedsession  bool
	step            *string
	clearedstep     bool
	features        map[string]struct{}
	removedfeatures map[string]struct{}
	clearedfeatures bool
	done            bool
	oldValue        func(context.Context) (*HookEvent, error)
	predicates      []predicate.HookEvent
}

var _ ent.Mutation = (*HookEventMutation)(nil)

// hookeventOption allows management of the mutation configuration using functional options.
type hookeventOption func(*HookEventMutation)

// newHookEventMutation creates new mutation for the HookEvent entity.
func newHookEventMutation(c config, op Op, opts ...hookeventOption) *HookEventMutation {
	m := &HookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeHookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHookEventID sets the ID field of the mutation.
func withHookEventID(id string) hookeventOption {
	return func(m *HookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *HookEvent
		)
		m.oldValue = func(ctx context.Context) (*HookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHookEvent sets the old HookEvent of the mutation.
func withHookEvent(node *HookEvent) hookeventOption {
	return func(m *HookEventMutation) {
		m.oldValue = func(context.Context) (*HookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HookEvent entities.
func (m *HookEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HookEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HookEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *HookEventMutation) SetEventType(ht hookevent.EventType) {
	m.event_type = &ht
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *HookEventMutation) EventType() (r hookevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the HookEvent entity.
// If the HookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HookEventMutation) OldEventType(ctx context.Context) (v hookevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *HookEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetToolName sets the "tool_name" field.
func (m *HookEventMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *HookEventMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the HookEvent entity.
// If the HookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HookEventMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *HookEventMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[hookevent.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *HookEventMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[hookevent.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *HookEventMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, hookevent.FieldToolName)
}

// SetPayload sets the "payload" field.
func (m *HookEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *HookEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the HookEvent entity.
// If the HookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HookEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *HookEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[hookevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *HookEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[hookevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *HookEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, hookevent.FieldPayload)
}

// SetTimestamp sets the "timestamp" field.
func (m *HookEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *HookEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the HookEvent entity.
// If the HookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HookEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *HookEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSourceAgent sets the "source_agent" field.
func (m *HookEventMutation) SetSourceAgent(s string) {
	m.source_agent = &s
}

// SourceAgent returns the value of the "source_agent" field in the mutation.
func (m *HookEventMutation) SourceAgent() (r string, exists bool) {
	v := m.source_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAgent returns the old "source_agent" field's value of the HookEvent entity.
// If the HookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HookEventMutation) OldSourceAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAgent: %w", err)
	}
	return oldValue.SourceAgent, nil
}

// ResetSourceAgent resets all changes to the "source_agent" field.
func (m *HookEventMutation) ResetSourceAgent() {
	m.source_agent = nil
}

// SetSessionID sets the "session_id" field.
func (m *HookEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *HookEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the HookEvent entity.
// If the HookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HookEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *HookEventMutation) ResetSessionID() {
	m.session = nil
}

// SetSuccess sets the "success" field.
func (m *HookEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *HookEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the HookEvent entity.
// If the HookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HookEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *HookEventMutation) ResetSuccess() {
	m.success = nil
}

// SetSummary sets the "summary" field.
func (m *HookEventMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *HookEventMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the HookEvent entity.
// If the HookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HookEventMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *HookEventMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[hookevent.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *HookEventMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[hookevent.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *HookEventMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, hookevent.FieldSummary)
}

// SetStepID sets the "step_id" field.
func (m *HookEventMutation) SetStepID(s string) {
	m.step = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *HookEventMutation) StepID() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the HookEvent entity.
// If the HookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HookEventMutation) OldStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *HookEventMutation) ClearStepID() {
	m.step = nil
	m.clearedFields[hookevent.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *HookEventMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[hookevent.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *HookEventMutation) ResetStepID() {
	m.step = nil
	delete(m.clearedFields, hookevent.FieldStepID)
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (m *HookEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[hookevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AgentSession entity was cleared.
func (m *HookEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *HookEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *HookEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearStep clears the "step" edge to the Step entity.
func (m *HookEventMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[hookevent.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the Step entity was cleared.
func (m *HookEventMutation) StepCleared() bool {
	return m.StepIDCleared() || m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *HookEventMutation) StepIDs() (ids []string) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *HookEventMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// AddFeatureIDs adds the "features" edge to the Feature entity by ids.
func (m *HookEventMutation) AddFeatureIDs(ids ...string) {
	if m.features == nil {
		m.features = make(map[string]struct{})
	}
	for i := range ids {
		m.features[ids[i]] = struct{}{}
	}
}

// ClearFeatures clears the "features" edge to the Feature entity.
func (m *HookEventMutation) ClearFeatures() {
	m.clearedfeatures = true
}

// FeaturesCleared reports if the "features" edge to the Feature entity was cleared.
func (m *HookEventMutation) FeaturesCleared() bool {
	return m.clearedfeatures
}

// RemoveFeatureIDs removes the "features" edge to the Feature entity by IDs.
func (m *HookEventMutation) RemoveFeatureIDs(ids ...string) {
	if m.removedfeatures == nil {
		m.removedfeatures = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.features, ids[i])
		m.removedfeatures[ids[i]] = struct{}{}
	}
}

// RemovedFeatures returns the removed IDs of the "features" edge to the Feature entity.
func (m *HookEventMutation) RemovedFeaturesIDs() (ids []string) {
	for id := range m.removedfeatures {
		ids = append(ids, id)
	}
	return
}

// FeaturesIDs returns the "features" edge IDs in the mutation.
func (m *HookEventMutation) FeaturesIDs() (ids []string) {
	for id := range m.features {
		ids = append(ids, id)
	}
	return
}

// ResetFeatures resets all changes to the "features" edge.
func (m *HookEventMutation) ResetFeatures() {
	m.features = nil
	m.clearedfeatures = false
	m.removedfeatures = nil
}

// Where appends a list predicates to the HookEventMutation builder.
func (m *HookEventMutation) Where(ps ...predicate.HookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HookEvent).
func (m *HookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HookEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.event_type != nil {
		fields = append(fields, hookevent.FieldEventType)
	}
	if m.tool_name != nil {
		fields = append(fields, hookevent.FieldToolName)
	}
	if m.payload != nil {
		fields = append(fields, hookevent.FieldPayload)
	}
	if m.timestamp != nil {
		fields = append(fields, hookevent.FieldTimestamp)
	}
	if m.source_agent != nil {
		fields = append(fields, hookevent.FieldSourceAgent)
	}
	if m.session != nil {
		fields = append(fields, hookevent.FieldSessionID)
	}
	if m.success != nil {
		fields = append(fields, hookevent.FieldSuccess)
	}
	if m.summary != nil {
		fields = append(fields, hookevent.FieldSummary)
	}
	if m.step != nil {
		fields = append(fields, hookevent.FieldStepID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hookevent.FieldEventType:
		return m.EventType()
	case hookevent.FieldToolName:
		return m.ToolName()
	case hookevent.FieldPayload:
		return m.Payload()
	case hookevent.FieldTimestamp:
		return m.Timestamp()
	case hookevent.FieldSourceAgent:
		return m.SourceAgent()
	case hookevent.FieldSessionID:
		return m.SessionID()
	case hookevent.FieldSuccess:
		return m.Success()
	case hookevent.FieldSummary:
		return m.Summary()
	case hookevent.FieldStepID:
		return m.StepID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hookevent.FieldEventType:
		return m.OldEventType(ctx)
	case hookevent.FieldToolName:
		return m.OldToolName(ctx)
	case hookevent.FieldPayload:
		return m.OldPayload(ctx)
	case hookevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case hookevent.FieldSourceAgent:
		return m.OldSourceAgent(ctx)
	case hookevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case hookevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case hookevent.FieldSummary:
		return m.OldSummary(ctx)
	case hookevent.FieldStepID:
		return m.OldStepID(ctx)
	}
	return nil, fmt.Errorf("unknown HookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hookevent.FieldEventType:
		v, ok := value.(hookevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case hookevent.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case hookevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case hookevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case hookevent.FieldSourceAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAgent(v)
		return nil
	case hookevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case hookevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case hookevent.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case hookevent.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	}
	return fmt.Errorf("unknown HookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HookEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HookEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown HookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HookEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hookevent.FieldToolName) {
		fields = append(fields, hookevent.FieldToolName)
	}
	if m.FieldCleared(hookevent.FieldPayload) {
		fields = append(fields, hookevent.FieldPayload)
	}
	if m.FieldCleared(hookevent.FieldSummary) {
		fields = append(fields, hookevent.FieldSummary)
	}
	if m.FieldCleared(hookevent.FieldStepID) {
		fields = append(fields, hookevent.FieldStepID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HookEventMutation) ClearField(name string) error {
	switch name {
	case hookevent.FieldToolName:
		m.ClearToolName()
		return nil
	case hookevent.FieldPayload:
		m.ClearPayload()
		return nil
	case hookevent.FieldSummary:
		m.ClearSummary()
		return nil
	case hookevent.FieldStepID:
		m.ClearStepID()
		return nil
	}
	return fmt.Errorf("unknown HookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HookEventMutation) ResetField(name string) error {
	switch name {
	case hookevent.FieldEventType:
		m.ResetEventType()
		return nil
	case hookevent.FieldToolName:
		m.ResetToolName()
		return nil
	case hookevent.FieldPayload:
		m.ResetPayload()
		return nil
	case hookevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case hookevent.FieldSourceAgent:
		m.ResetSourceAgent()
		return nil
	case hookevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case hookevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case hookevent.FieldSummary:
		m.ResetSummary()
		return nil
	case hookevent.FieldStepID:
		m.ResetStepID()
		return nil
	}
	return fmt.Errorf("unknown HookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.session != nil {
		edges = append(edges, hookevent.EdgeSession)
	}
	if m.step != nil {
		edges = append(edges, hookevent.EdgeStep)
	}
	if m.features != nil {
		edges = append(edges, hookevent.EdgeFeatures)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HookEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hookevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case hookevent.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	case hookevent.EdgeFeatures:
		ids := make([]ent.Value, 0, len(m.features))
		for id := range m.features {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfeatures != nil {
		edges = append(edges, hookevent.EdgeFeatures)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HookEventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case hookevent.EdgeFeatures:
		ids := make([]ent.Value, 0, len(m.removedfeatures))
		for id := range m.removedfeatures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsession {
		edges = append(edges, hookevent.EdgeSession)
	}
	if m.clearedstep {
		edges = append(edges, hookevent.EdgeStep)
	}
	if m.clearedfeatures {
		edges = append(edges, hookevent.EdgeFeatures)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HookEventMutation) EdgeCleared(name string) bool {
	switch name {
	case hookevent.EdgeSession:
		return m.clearedsession
	case hookevent.EdgeStep:
		return m.clearedstep
	case hookevent.EdgeFeatures:
		return m.clearedfeatures
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HookEventMutation) ClearEdge(name string) error {
	switch name {
	case hookevent.EdgeSession:
		m.ClearSession()
		return nil
	case hookevent.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown HookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HookEventMutation) ResetEdge(name string) error {
	switch name {
	case hookevent.EdgeSession:
		m.ResetSession()
		return nil
	case hookevent.EdgeStep:
		m.ResetStep()
		return nil
	case hookevent.EdgeFeatures:
		m.ResetFeatures()
		return nil
	}
	return fmt.Errorf("unknown HookEvent edge %s", name)
}

// InsightMutation represents an operation that mutates the Insight nodes in the graph.
type InsightMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	description            *string
	pattern_type           *insight.PatternType
	tags                   *[]string
	appendtags             []string
	usage_count            *int
	addusage_count         *int
	effectiveness_score    *float64
	addeffectiveness_score *float64
	feedback_count         *int
	addfeedback_count      *int
	helpful_count          *int
	addhelpful_count       *int
	created_at             *time.Time
	clearedFields          map[string]struct{}
	feature                *string
	clearedfeature         bool
	done                   bool
	oldValue               func(context.Context) (*Insight, error)
	predicates             []predicate.Insight
}

var _ ent.Mutation = (*InsightMutation)(nil)

// insightOption allows management of the mutation configuration using functional options.
type insightOption func(*InsightMutation)

// newInsightMutation creates new mutation for the Insight entity.
func newInsightMutation(c config, op Op, opts ...insightOption) *InsightMutation {
	m := &InsightMutation{
		config:        c,
		op:            op,
		typ:           TypeInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsightID sets the ID field of the mutation.
func withInsightID(id string) insightOption {
	return func(m *InsightMutation) {
		var (
			err   error
			once  sync.Once
			value *Insight
		)
		m.oldValue = func(ctx context.Context) (*Insight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Insight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsight sets the old Insight of the mutation.
func withInsight(node *Insight) insightOption {
	return func(m *InsightMutation) {
		m.oldValue = func(context.Context) (*Insight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Insight entities.
func (m *InsightMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsightMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsightMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Insight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDescription sets the "description" field.
func (m *InsightMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InsightMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *InsightMutation) ResetDescription() {
	m.description = nil
}

// SetPatternType sets the "pattern_type" field.
func (m *InsightMutation) SetPatternType(it insight.PatternType) {
	m.pattern_type = &it
}

// PatternType returns the value of the "pattern_type" field in the mutation.
func (m *InsightMutation) PatternType() (r insight.PatternType, exists bool) {
	v := m.pattern_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternType returns the old "pattern_type" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldPatternType(ctx context.Context) (v insight.PatternType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternType: %w", err)
	}
	return oldValue.PatternType, nil
}

// ResetPatternType resets all changes to the "pattern_type" field.
func (m *InsightMutation) ResetPatternType() {
	m.pattern_type = nil
}

// SetTags sets the "tags" field.
func (m *InsightMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *InsightMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *InsightMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *InsightMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *InsightMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[insight.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *InsightMutation) TagsCleared() bool {
	_, ok := m.clearedFields[insight.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *InsightMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, insight.FieldTags)
}

// SetUsageCount sets the "usage_count" field.
func (m *InsightMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *InsightMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *InsightMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *InsightMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *InsightMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (m *InsightMutation) SetEffectivenessScore(f float64) {
	m.effectiveness_score = &f
	m.addeffectiveness_score = nil
}

// EffectivenessScore returns the value of the "effectiveness_score" field in the mutation.
func (m *InsightMutation) EffectivenessScore() (r float64, exists bool) {
	v := m.effectiveness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectivenessScore returns the old "effectiveness_score" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldEffectivenessScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectivenessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectivenessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectivenessScore: %w", err)
	}
	return oldValue.EffectivenessScore, nil
}

// AddEffectivenessScore adds f to the "effectiveness_score" field.
func (m *InsightMutation) AddEffectivenessScore(f float64) {
	if m.addeffectiveness_score != nil {
		*m.addeffectiveness_score += f
	} else {
		m.addeffectiveness_score = &f
	}
}

// AddedEffectivenessScore returns the value that was added to the "effectiveness_score" field in this mutation.
func (m *InsightMutation) AddedEffectivenessScore() (r float64, exists bool) {
	v := m.addeffectiveness_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearEffectivenessScore clears the value of the "effectiveness_score" field.
func (m *InsightMutation) ClearEffectivenessScore() {
	m.effectiveness_score = nil
	m.addeffectiveness_score = nil
	m.clearedFields[insight.FieldEffectivenessScore] = struct{}{}
}

// EffectivenessScoreCleared returns if the "effectiveness_score" field was cleared in this mutation.
func (m *InsightMutation) EffectivenessScoreCleared() bool {
	_, ok := m.clearedFields[insight.FieldEffectivenessScore]
	return ok
}

// ResetEffectivenessScore resets all changes to the "effectiveness_score" field.
func (m *InsightMutation) ResetEffectivenessScore() {
	m.effectiveness_score = nil
	m.addeffectiveness_score = nil
	delete(m.clearedFields, insight.FieldEffectivenessScore)
}

// SetFeedbackCount sets the "feedback_count" field.
func (m *InsightMutation) SetFeedbackCount(i int) {
	m.feedback_count = &i
	m.addfeedback_count = nil
}

// FeedbackCount returns the value of the "feedback_count" field in the mutation.
func (m *InsightMutation) FeedbackCount() (r int, exists bool) {
	v := m.feedback_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackCount returns the old "feedback_count" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldFeedbackCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackCount: %w", err)
	}
	return oldValue.FeedbackCount, nil
}

// AddFeedbackCount adds i to the "feedback_count" field.
func (m *InsightMutation) AddFeedbackCount(i int) {
	if m.addfeedback_count != nil {
		*m.addfeedback_count += i
	} else {
		m.addfeedback_count = &i
	}
}

// AddedFeedbackCount returns the value that was added to the "feedback_count" field in this mutation.
func (m *InsightMutation) AddedFeedbackCount() (r int, exists bool) {
	v := m.addfeedback_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFeedbackCount resets all changes to the "feedback_count" field.
func (m *InsightMutation) ResetFeedbackCount() {
	m.feedback_count = nil
	m.addfeedback_count = nil
}

// SetHelpfulCount sets the "helpful_count" field.
func (m *InsightMutation) SetHelpfulCount(i int) {
	m.helpful_count = &i
	m.addhelpful_count = nil
}

// HelpfulCount returns the value of the "helpful_count" field in the mutation.
func (m *InsightMutation) HelpfulCount() (r int, exists bool) {
	v := m.helpful_count
	if v == nil {
		return
	}
	return *v, true
}

// OldHelpfulCount returns the old "helpful_count" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldHelpfulCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHelpfulCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHelpfulCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHelpfulCount: %w", err)
	}
	return oldValue.HelpfulCount, nil
}

// AddHelpfulCount adds i to the "helpful_count" field.
func (m *InsightMutation) AddHelpfulCount(i int) {
	if m.addhelpful_count != nil {
		*m.addhelpful_count += i
	} else {
		m.addhelpful_count = &i
	}
}

// AddedHelpfulCount returns the value that was added to the "helpful_count" field in this mutation.
func (m *InsightMutation) AddedHelpfulCount() (r int, exists bool) {
	v := m.addhelpful_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetHelpfulCount resets all changes to the "helpful_count" field.
func (m *InsightMutation) ResetHelpfulCount() {
	m.helpful_count = nil
	m.addhelpful_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InsightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFeatureID sets the "feature_id" field.
func (m *InsightMutation) SetFeatureID(s string) {
	m.feature = &s
}

// FeatureID returns the value of the "feature_id" field in the mutation.
func (m *InsightMutation) FeatureID() (r string, exists bool) {
	v := m.feature
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureID returns the old "feature_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldFeatureID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureID: %w", err)
	}
	return oldValue.FeatureID, nil
}

// ClearFeatureID clears the value of the "feature_id" field.
func (m *InsightMutation) ClearFeatureID() {
	m.feature = nil
	m.clearedFields[insight.FieldFeatureID] = struct{}{}
}

// FeatureIDCleared returns if the "feature_id" field was cleared in this mutation.
func (m *InsightMutation) FeatureIDCleared() bool {
	_, ok := m.clearedFields[insight.FieldFeatureID]
	return ok
}

// ResetFeatureID resets all changes to the "feature_id" field.
func (m *InsightMutation) ResetFeatureID() {
	m.feature = nil
	delete(m.clearedFields, insight.FieldFeatureID)
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (m *InsightMutation) ClearFeature() {
	m.clearedfeature = true
	m.clearedFields[insight.FieldFeatureID] = struct{}{}
}

// FeatureCleared reports if the "feature" edge to the Feature entity was cleared.
func (m *InsightMutation) FeatureCleared() bool {
	return m.FeatureIDCleared() || m.clearedfeature
}

// FeatureIDs returns the "feature" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FeatureID instead. It exists only for internal usage by the builders.
func (m *InsightMutation) FeatureIDs() (ids []string) {
	if id := m.feature; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFeature resets all changes to the "feature" edge.
func (m *InsightMutation) ResetFeature() {
	m.feature = nil
	m.clearedfeature = false
}

// Where appends a list predicates to the InsightMutation builder.
func (m *InsightMutation) Where(ps ...predicate.Insight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Insight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Insight).
func (m *InsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsightMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.description != nil {
		fields = append(fields, insight.FieldDescription)
	}
	if m.pattern_type != nil {
		fields = append(fields, insight.FieldPatternType)
	}
	if m.tags != nil {
		fields = append(fields, insight.FieldTags)
	}
	if m.usage_count != nil {
		fields = append(fields, insight.FieldUsageCount)
	}
	if m.effectiveness_score != nil {
		fields = append(fields, insight.FieldEffectivenessScore)
	}
	if m.feedback_count != nil {
		fields = append(fields, insight.FieldFeedbackCount)
	}
	if m.helpful_count != nil {
		fields = append(fields, insight.FieldHelpfulCount)
	}
	if m.created_at != nil {
		fields = append(fields, insight.FieldCreatedAt)
	}
	if m.feature != nil {
		fields = append(fields, insight.FieldFeatureID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldDescription:
		return m.Description()
	case insight.FieldPatternType:
		return m.PatternType()
	case insight.FieldTags:
		return m.Tags()
	case insight.FieldUsageCount:
		return m.UsageCount()
	case insight.FieldEffectivenessScore:
		return m.EffectivenessScore()
	case insight.FieldFeedbackCount:
		return m.FeedbackCount()
	case insight.FieldHelpfulCount:
		return m.HelpfulCount()
	case insight.FieldCreatedAt:
		return m.CreatedAt()
	case insight.FieldFeatureID:
		return m.FeatureID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insight.FieldDescription:
		return m.OldDescription(ctx)
	case insight.FieldPatternType:
		return m.OldPatternType(ctx)
	case insight.FieldTags:
		return m.OldTags(ctx)
	case insight.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case insight.FieldEffectivenessScore:
		return m.OldEffectivenessScore(ctx)
	case insight.FieldFeedbackCount:
		return m.OldFeedbackCount(ctx)
	case insight.FieldHelpfulCount:
		return m.OldHelpfulCount(ctx)
	case insight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case insight.FieldFeatureID:
		return m.OldFeatureID(ctx)
	}
	return nil, fmt.Errorf("unknown Insight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insight.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case insight.FieldPatternType:
		v, ok := value.(insight.PatternType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternType(v)
		return nil
	case insight.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case insight.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case insight.FieldEffectivenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectivenessScore(v)
		return nil
	case insight.FieldFeedbackCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackCount(v)
		return nil
	case insight.FieldHelpfulCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHelpfulCount(v)
		return nil
	case insight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case insight.FieldFeatureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureID(v)
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsightMutation) AddedFields() []string {
	var fields []string
	if m.addusage_count != nil {
		fields = append(fields, insight.FieldUsageCount)
	}
	if m.addeffectiveness_score != nil {
		fields = append(fields, insight.FieldEffectivenessScore)
	}
	if m.addfeedback_count != nil {
		fields = append(fields, insight.FieldFeedbackCount)
	}
	if m.addhelpful_count != nil {
		fields = append(fields, insight.FieldHelpfulCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldUsageCount:
		return m.AddedUsageCount()
	case insight.FieldEffectivenessScore:
		return m.AddedEffectivenessScore()
	case insight.FieldFeedbackCount:
		return m.AddedFeedbackCount()
	case insight.FieldHelpfulCount:
		return m.AddedHelpfulCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case insight.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	case insight.FieldEffectivenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEffectivenessScore(v)
		return nil
	case insight.FieldFeedbackCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeedbackCount(v)
		return nil
	case insight.FieldHelpfulCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHelpfulCount(v)
		return nil
	}
	return fmt.Errorf("unknown Insight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(insight.FieldTags) {
		fields = append(fields, insight.FieldTags)
	}
	if m.FieldCleared(insight.FieldEffectivenessScore) {
		fields = append(fields, insight.FieldEffectivenessScore)
	}
	if m.FieldCleared(insight.FieldFeatureID) {
		fields = append(fields, insight.FieldFeatureID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsightMutation) ClearField(name string) error {
	switch name {
	case insight.FieldTags:
		m.ClearTags()
		return nil
	case insight.FieldEffectivenessScore:
		m.ClearEffectivenessScore()
		return nil
	case insight.FieldFeatureID:
		m.ClearFeatureID()
		return nil
	}
	return fmt.Errorf("unknown Insight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsightMutation) ResetField(name string) error {
	switch name {
	case insight.FieldDescription:
		m.ResetDescription()
		return nil
	case insight.FieldPatternType:
		m.ResetPatternType()
		return nil
	case insight.FieldTags:
		m.ResetTags()
		return nil
	case insight.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case insight.FieldEffectivenessScore:
		m.ResetEffectivenessScore()
		return nil
	case insight.FieldFeedbackCount:
		m.ResetFeedbackCount()
		return nil
	case insight.FieldHelpfulCount:
		m.ResetHelpfulCount()
		return nil
	case insight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case insight.FieldFeatureID:
		m.ResetFeatureID()
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.feature != nil {
		edges = append(edges, insight.EdgeFeature)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsightMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case insight.EdgeFeature:
		if id := m.feature; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfeature {
		edges = append(edges, insight.EdgeFeature)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsightMutation) EdgeCleared(name string) bool {
	switch name {
	case insight.EdgeFeature:
		return m.clearedfeature
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsightMutation) ClearEdge(name string) error {
	switch name {
	case insight.EdgeFeature:
		m.ClearFeature()
		return nil
	}
	return fmt.Errorf("unknown Insight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsightMutation) ResetEdge(name string) error {
	switch name {
	case insight.EdgeFeature:
		m.ResetFeature()
		return nil
	}
	return fmt.Errorf("unknown Insight edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op              Op
	typ             string
	id              *string
	_path           *string
	name            *string
	description     *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	sessions        map[string]struct{}
	removedsessions map[string]struct{}
	clearedsessions bool
	features        map[string]struct{}
	removedfeatures map[string]struct{}
	clearedfeatures bool
	done            bool
	oldValue        func(context.Context) (*Project, error)
	predicates      []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPath sets the "path" field.
func (m *ProjectMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ProjectMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ProjectMutation) ResetPath() {
	m._path = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSessionIDs adds the "sessions" edge to the AgentSession entity by ids.
func (m *ProjectMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AgentSession entity.
func (m *ProjectMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AgentSession entity was cleared.
func (m *ProjectMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AgentSession entity by IDs.
func (m *ProjectMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AgentSession entity.
func (m *ProjectMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ProjectMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ProjectMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddFeatureIDs adds the "features" edge to the Feature entity by ids.
func (m *ProjectMutation) AddFeatureIDs(ids ...string) {
	if m.features == nil {
		m.features = make(map[string]struct{})
	}
	for i := range ids {
		m.features[ids[i]] = struct{}{}
	}
}

// ClearFeatures clears the "features" edge to the Feature entity.
func (m *ProjectMutation) ClearFeatures() {
	m.clearedfeatures = true
}

// FeaturesCleared reports if the "features" edge to the Feature entity was cleared.
func (m *ProjectMutation) FeaturesCleared() bool {
	return m.clearedfeatures
}

// RemoveFeatureIDs removes the "features" edge to the Feature entity by IDs.
func (m *ProjectMutation) RemoveFeatureIDs(ids ...string) {
	if m.removedfeatures == nil {
		m.removedfeatures = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.features, ids[i])
		m.removedfeatures[ids[i]] = struct{}{}
	}
}

// RemovedFeatures returns the removed IDs of the "features" edge to the Feature entity.
func (m *ProjectMutation) RemovedFeaturesIDs() (ids []string) {
	for id := range m.removedfeatures {
		ids = append(ids, id)
	}
	return
}

// FeaturesIDs returns the "features" edge IDs in the mutation.
func (m *ProjectMutation) FeaturesIDs() (ids []string) {
	for id := range m.features {
		ids = append(ids, id)
	}
	return
}

// ResetFeatures resets all changes to the "features" edge.
func (m *ProjectMutation) ResetFeatures() {
	m.features = nil
	m.clearedfeatures = false
	m.removedfeatures = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m._path != nil {
		fields = append(fields, project.FieldPath)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldPath:
		return m.Path()
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldPath:
		return m.OldPath(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldPath:
		m.ResetPath()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.sessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	if m.features != nil {
		edges = append(edges, project.EdgeFeatures)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeFeatures:
		ids := make([]ent.Value, 0, len(m.features))
		for id := range m.features {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	if m.removedfeatures != nil {
		edges = append(edges, project.EdgeFeatures)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeFeatures:
		ids := make([]ent.Value, 0, len(m.removedfeatures))
		for id := range m.removedfeatures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsessions {
		edges = append(edges, project.EdgeSessions)
	}
	if m.clearedfeatures {
		edges = append(edges, project.EdgeFeatures)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeSessions:
		return m.clearedsessions
	case project.EdgeFeatures:
		return m.clearedfeatures
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeSessions:
		m.ResetSessions()
		return nil
	case project.EdgeFeatures:
		m.ResetFeatures()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// StatusEventMutation represents an operation that mutates the StatusEvent nodes in the graph.
type StatusEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	from_status    *string
	to_status      *string
	at             *time.Time
	by             *string
	session_id     *string
	reason         *string
	clearedFields  map[string]struct{}
	feature        *string
	clearedfeature bool
	done           bool
	oldValue       func(context.Context) (*StatusEvent, error)
	predicates     []predicate.StatusEvent
}

var _ ent.Mutation = (*StatusEventMutation)(nil)

// statuseventOption allows management of the mutation configuration using functional options.
type statuseventOption func(*StatusEventMutation)

// newStatusEventMutation creates new mutation for the StatusEvent entity.
func newStatusEventMutation(c config, op Op, opts ...statuseventOption) *StatusEventMutation {
	m := &StatusEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStatusEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatusEventID sets the ID field of the mutation.
func withStatusEventID(id string) statuseventOption {
	return func(m *StatusEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StatusEvent
		)
		m.oldValue = func(ctx context.Context) (*StatusEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatusEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatusEvent sets the old StatusEvent of the mutation.
func withStatusEvent(node *StatusEvent) statuseventOption {
	return func(m *StatusEventMutation) {
		m.oldValue = func(context.Context) (*StatusEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatusEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatusEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StatusEvent entities.
func (m *StatusEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatusEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatusEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatusEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFromStatus sets the "from_status" field.
func (m *StatusEventMutation) SetFromStatus(s string) {
	m.from_status = &s
}

// FromStatus returns the value of the "from_status" field in the mutation.
func (m *StatusEventMutation) FromStatus() (r string, exists bool) {
	v := m.from_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStatus returns the old "from_status" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldFromStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStatus: %w", err)
	}
	return oldValue.FromStatus, nil
}

// ResetFromStatus resets all changes to the "from_status" field.
func (m *StatusEventMutation) ResetFromStatus() {
	m.from_status = nil
}

// SetToStatus sets the "to_status" field.
func (m *StatusEventMutation) SetToStatus(s string) {
	m.to_status = &s
}

// ToStatus returns the value of the "to_status" field in the mutation.
func (m *StatusEventMutation) ToStatus() (r string, exists bool) {
	v := m.to_status
	if v == nil {
		return
	}
	return *v, true
}

// OldToStatus returns the old "to_status" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldToStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStatus: %w", err)
	}
	return oldValue.ToStatus, nil
}

// ResetToStatus resets all changes to the "to_status" field.
func (m *StatusEventMutation) ResetToStatus() {
	m.to_status = nil
}

// SetAt sets the "at" field.
func (m *StatusEventMutation) SetAt(t time.Time) {
	m.at = &t
}

// At returns the value of the "at" field in the mutation.
func (m *StatusEventMutation) At() (r time.Time, exists bool) {
	v := m.at
	if v == nil {
		return
	}
	return *v, true
}

// OldAt returns the old "at" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAt: %w", err)
	}
	return oldValue.At, nil
}

// ResetAt resets all changes to the "at" field.
func (m *StatusEventMutation) ResetAt() {
	m.at = nil
}

// SetBy sets the "by" field.
func (m *StatusEventMutation) SetBy(s string) {
	m.by = &s
}

// By returns the value of the "by" field in the mutation.
func (m *StatusEventMutation) By() (r string, exists bool) {
	v := m.by
	if v == nil {
		return
	}
	return *v, true
}

// OldBy returns the old "by" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBy: %w", err)
	}
	return oldValue.By, nil
}

// ResetBy resets all changes to the "by" field.
func (m *StatusEventMutation) ResetBy() {
	m.by = nil
}

// SetSessionID sets the "session_id" field.
func (m *StatusEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StatusEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *StatusEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[statusevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *StatusEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[statusevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StatusEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, statusevent.FieldSessionID)
}

// SetReason sets the "reason" field.
func (m *StatusEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *StatusEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *StatusEventMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[statusevent.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *StatusEventMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[statusevent.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *StatusEventMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, statusevent.FieldReason)
}

// SetFeatureID sets the "feature_id" field.
func (m *StatusEventMutation) SetFeatureID(s string) {
	m.feature = &s
}

// FeatureID returns the value of the "feature_id" field in the mutation.
func (m *StatusEventMutation) FeatureID() (r string, exists bool) {
	v := m.feature
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureID returns the old "feature_id" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldFeatureID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureID: %w", err)
	}
	return oldValue.FeatureID, nil
}

// ResetFeatureID resets all changes to the "feature_id" field.
func (m *StatusEventMutation) ResetFeatureID() {
	m.feature = nil
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (m *StatusEventMutation) ClearFeature() {
	m.clearedfeature = true
	m.clearedFields[statusevent.FieldFeatureID] = struct{}{}
}

// FeatureCleared reports if the "feature" edge to the Feature entity was cleared.
func (m *StatusEventMutation) FeatureCleared() bool {
	return m.clearedfeature
}

// FeatureIDs returns the "feature" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FeatureID instead. It exists only for internal usage by the builders.
func (m *StatusEventMutation) FeatureIDs() (ids []string) {
	if id := m.feature; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFeature resets all changes to the "feature" edge.
func (m *StatusEventMutation) ResetFeature() {
	m.feature = nil
	m.clearedfeature = false
}

// Where appends a list predicates to the StatusEventMutation builder.
func (m *StatusEventMutation) Where(ps ...predicate.StatusEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatusEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatusEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatusEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatusEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatusEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatusEvent).
func (m *StatusEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatusEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.from_status != nil {
		fields = append(fields, statusevent.FieldFromStatus)
	}
	if m.to_status != nil {
		fields = append(fields, statusevent.FieldToStatus)
	}
	if m.at != nil {
		fields = append(fields, statusevent.FieldAt)
	}
	if m.by != nil {
		fields = append(fields, statusevent.FieldBy)
	}
	if m.session_id != nil {
		fields = append(fields, statusevent.FieldSessionID)
	}
	if m.reason != nil {
		fields = append(fields, statusevent.FieldReason)
	}
	if m.feature != nil {
		fields = append(fields, statusevent.FieldFeatureID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatusEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statusevent.FieldFromStatus:
		return m.FromStatus()
	case statusevent.FieldToStatus:
		return m.ToStatus()
	case statusevent.FieldAt:
		return m.At()
	case statusevent.FieldBy:
		return m.By()
	case statusevent.FieldSessionID:
		return m.SessionID()
	case statusevent.FieldReason:
		return m.Reason()
	case statusevent.FieldFeatureID:
		return m.FeatureID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatusEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statusevent.FieldFromStatus:
		return m.OldFromStatus(ctx)
	case statusevent.FieldToStatus:
		return m.OldToStatus(ctx)
	case statusevent.FieldAt:
		return m.OldAt(ctx)
	case statusevent.FieldBy:
		return m.OldBy(ctx)
	case statusevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case statusevent.FieldReason:
		return m.OldReason(ctx)
	case statusevent.FieldFeatureID:
		return m.OldFeatureID(ctx)
	}
	return nil, fmt.Errorf("unknown StatusEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statusevent.FieldFromStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStatus(v)
		return nil
	case statusevent.FieldToStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStatus(v)
		return nil
	case statusevent.FieldAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAt(v)
		return nil
	case statusevent.FieldBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBy(v)
		return nil
	case statusevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case statusevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case statusevent.FieldFeatureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureID(v)
		return nil
	}
	return fmt.Errorf("unknown StatusEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatusEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatusEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StatusEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatusEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(statusevent.FieldSessionID) {
		fields = append(fields, statusevent.FieldSessionID)
	}
	if m.FieldCleared(statusevent.FieldReason) {
		fields = append(fields, statusevent.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatusEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatusEventMutation) ClearField(name string) error {
	switch name {
	case statusevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	case statusevent.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown StatusEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatusEventMutation) ResetField(name string) error {
	switch name {
	case statusevent.FieldFromStatus:
		m.ResetFromStatus()
		return nil
	case statusevent.FieldToStatus:
		m.ResetToStatus()
		return nil
	case statusevent.FieldAt:
		m.ResetAt()
		return nil
	case statusevent.FieldBy:
		m.ResetBy()
		return nil
	case statusevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case statusevent.FieldReason:
		m.ResetReason()
		return nil
	case statusevent.FieldFeatureID:
		m.ResetFeatureID()
		return nil
	}
	return fmt.Errorf("unknown StatusEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatusEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.feature != nil {
		edges = append(edges, statusevent.EdgeFeature)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatusEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case statusevent.EdgeFeature:
		if id := m.feature; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatusEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatusEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatusEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfeature {
		edges = append(edges, statusevent.EdgeFeature)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatusEventMutation) EdgeCleared(name string) bool {
	switch name {
	case statusevent.EdgeFeature:
		return m.clearedfeature
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatusEventMutation) ClearEdge(name string) error {
	switch name {
	case statusevent.EdgeFeature:
		m.ClearFeature()
		return nil
	}
	return fmt.Errorf("unknown StatusEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatusEventMutation) ResetEdge(name string) error {
	switch name {
	case statusevent.EdgeFeature:
		m.ResetFeature()
		return nil
	}
	return fmt.Errorf("unknown StatusEvent edge %s", name)
}

// StepMutation represents an operation that mutates the Step nodes in the graph.
type StepMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	description          *string
	status               *step.Status
	step_order           *int
	addstep_order        *int
	expected_tools       *[]string
	appendexpected_tools []string
	created_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	clearedFields        map[string]struct{}
	feature              *string
	clearedfeature       bool
	events               map[string]struct{}
	removedevents        map[string]struct{}
	clearedevents        bool
	done                 bool
	oldValue             func(context.Context) (*Step, error)
	predicates           []predicate.Step
}

var _ ent.Mutation = (*StepMutation)(nil)

// stepOption allows management of the mutation configuration using functional options.
type stepOption func(*StepMutation)

// newStepMutation creates new mutation for the Step entity.
func newStepMutation(c config, op Op, opts ...stepOption) *StepMutation {
	m := &StepMutation{
		config:        c,
		op:            op,
		typ:           TypeStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepID sets the ID field of the mutation.
func withStepID(id string) stepOption {
	return func(m *StepMutation) {
		var (
			err   error
			once  sync.Once
			value *Step
		)
		m.oldValue = func(ctx context.Context) (*Step, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Step.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStep sets the old Step of the mutation.
func withStep(node *Step) stepOption {
	return func(m *StepMutation) {
		m.oldValue = func(context.Context) (*Step, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Step entities.
func (m *StepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Step.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDescription sets the "description" field.
func (m *StepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *StepMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *StepMutation) SetStatus(s step.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepMutation) Status() (r step.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStatus(ctx context.Context) (v step.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepMutation) ResetStatus() {
	m.status = nil
}

// SetStepOrder sets the "step_order" field.
func (m *StepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *StepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *StepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *StepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *StepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetExpectedTools sets the "expected_tools" field.
func (m *StepMutation) SetExpectedTools(s []string) {
	m.expected_tools = &s
	m.appendexpected_tools = nil
}

// ExpectedTools returns the value of the "expected_tools" field in the mutation.
func (m *StepMutation) ExpectedTools() (r []string, exists bool) {
	v := m.expected_tools
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedTools returns the old "expected_tools" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldExpectedTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedTools: %w", err)
	}
	return oldValue.ExpectedTools, nil
}

// AppendExpectedTools adds s to the "expected_tools" field.
func (m *StepMutation) AppendExpectedTools(s []string) {
	m.appendexpected_tools = append(m.appendexpected_tools, s...)
}

// AppendedExpectedTools returns the list of values that were appended to the "expected_tools" field in this mutation.
func (m *StepMutation) AppendedExpectedTools() ([]string, bool) {
	if len(m.appendexpected_tools) == 0 {
		return nil, false
	}
	return m.appendexpected_tools, true
}

// ClearExpectedTools clears the value of the "expected_tools" field.
func (m *StepMutation) ClearExpectedTools() {
	m.expected_tools = nil
	m.appendexpected_tools = nil
	m.clearedFields[step.FieldExpectedTools] = struct{}{}
}

// ExpectedToolsCleared returns if the "expected_tools" field was cleared in this mutation.
func (m *StepMutation) ExpectedToolsCleared() bool {
	_, ok := m.clearedFields[step.FieldExpectedTools]
	return ok
}

// ResetExpectedTools resets all changes to the "expected_tools" field.
func (m *StepMutation) ResetExpectedTools() {
	m.expected_tools = nil
	m.appendexpected_tools = nil
	delete(m.clearedFields, step.FieldExpectedTools)
}

// SetCreatedAt sets the "created_at" field.
func (m *StepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[step.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, step.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[step.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, step.FieldCompletedAt)
}

// SetFeatureID sets the "feature_id" field.
func (m *StepMutation) SetFeatureID(s string) {
	m.feature = &s
}

// FeatureID returns the value of the "feature_id" field in the mutation.
func (m *StepMutation) FeatureID() (r string, exists bool) {
	v := m.feature
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureID returns the old "feature_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldFeatureID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureID: %w", err)
	}
	return oldValue.FeatureID, nil
}

// ResetFeatureID resets all changes to the "feature_id" field.
func (m *StepMutation) ResetFeatureID() {
	m.feature = nil
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (m *StepMutation) ClearFeature() {
	m.clearedfeature = true
	m.clearedFields[step.FieldFeatureID] = struct{}{}
}

// FeatureCleared reports if the "feature" edge to the Feature entity was cleared.
func (m *StepMutation) FeatureCleared() bool {
	return m.clearedfeature
}

// FeatureIDs returns the "feature" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FeatureID instead. It exists only for internal usage by the builders.
func (m *StepMutation) FeatureIDs() (ids []string) {
	if id := m.feature; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFeature resets all changes to the "feature" edge.
func (m *StepMutation) ResetFeature() {
	m.feature = nil
	m.clearedfeature = false
}

// AddEventIDs adds the "events" edge to the HookEvent entity by ids.
func (m *StepMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the HookEvent entity.
func (m *StepMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the HookEvent entity was cleared.
func (m *StepMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the HookEvent entity by IDs.
func (m *StepMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the HookEvent entity.
func (m *StepMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *StepMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *StepMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the StepMutation builder.
func (m *StepMutation) Where(ps ...predicate.Step) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Step, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Step).
func (m *StepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.description != nil {
		fields = append(fields, step.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, step.FieldStatus)
	}
	if m.step_order != nil {
		fields = append(fields, step.FieldStepOrder)
	}
	if m.expected_tools != nil {
		fields = append(fields, step.FieldExpectedTools)
	}
	if m.created_at != nil {
		fields = append(fields, step.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, step.FieldCompletedAt)
	}
	if m.feature != nil {
		fields = append(fields, step.FieldFeatureID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case step.FieldDescription:
		return m.Description()
	case step.FieldStatus:
		return m.Status()
	case step.FieldStepOrder:
		return m.StepOrder()
	case step.FieldExpectedTools:
		return m.ExpectedTools()
	case step.FieldCreatedAt:
		return m.CreatedAt()
	case step.FieldStartedAt:
		return m.StartedAt()
	case step.FieldCompletedAt:
		return m.CompletedAt()
	case step.FieldFeatureID:
		return m.FeatureID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case step.FieldDescription:
		return m.OldDescription(ctx)
	case step.FieldStatus:
		return m.OldStatus(ctx)
	case step.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case step.FieldExpectedTools:
		return m.OldExpectedTools(ctx)
	case step.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case step.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case step.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case step.FieldFeatureID:
		return m.OldFeatureID(ctx)
	}
	return nil, fmt.Errorf("unknown Step field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case step.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case step.FieldStatus:
		v, ok := value.(step.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case step.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case step.FieldExpectedTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedTools(v)
		return nil
	case step.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case step.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case step.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case step.FieldFeatureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureID(v)
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, step.FieldStepOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case step.FieldStepOrder:
		return m.AddedStepOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case step.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Step numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(step.FieldExpectedTools) {
		fields = append(fields, step.FieldExpectedTools)
	}
	if m.FieldCleared(step.FieldStartedAt) {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.FieldCleared(step.FieldCompletedAt) {
		fields = append(fields, step.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepMutation) ClearField(name string) error {
	switch name {
	case step.FieldExpectedTools:
		m.ClearExpectedTools()
		return nil
	case step.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case step.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Step nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepMutation) ResetField(name string) error {
	switch name {
	case step.FieldDescription:
		m.ResetDescription()
		return nil
	case step.FieldStatus:
		m.ResetStatus()
		return nil
	case step.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case step.FieldExpectedTools:
		m.ResetExpectedTools()
		return nil
	case step.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case step.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case step.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case step.FieldFeatureID:
		m.ResetFeatureID()
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.feature != nil {
		edges = append(edges, step.EdgeFeature)
	}
	if m.events != nil {
		edges = append(edges, step.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeFeature:
		if id := m.feature; id != nil {
			return []ent.Value{*id}
		}
	case step.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevents != nil {
		edges = append(edges, step.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfeature {
		edges = append(edges, step.EdgeFeature)
	}
	if m.clearedevents {
		edges = append(edges, step.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepMutation) EdgeCleared(name string) bool {
	switch name {
	case step.EdgeFeature:
		return m.clearedfeature
	case step.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepMutation) ClearEdge(name string) error {
	switch name {
	case step.EdgeFeature:
		m.ClearFeature()
		return nil
	}
	return fmt.Errorf("unknown Step unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepMutation) ResetEdge(name string) error {
	switch name {
	case step.EdgeFeature:
		m.ResetFeature()
		return nil
	case step.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Step edge %s", name)
}
