// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ijoka-ai/ijoka/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldID, id))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldAgent, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStartedAt, v))
}

// LastActivity applies equality check predicate on the "last_activity" field. It's identical to LastActivityEQ.
func LastActivity(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldLastActivity, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldEndedAt, v))
}

// EventCount applies equality check predicate on the "event_count" field. It's identical to EventCountEQ.
func EventCount(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldEventCount, v))
}

// IsSubagent applies equality check predicate on the "is_subagent" field. It's identical to IsSubagentEQ.
func IsSubagent(v bool) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldIsSubagent, v))
}

// StartCommit applies equality check predicate on the "start_commit" field. It's identical to StartCommitEQ.
func StartCommit(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStartCommit, v))
}

// ActiveFeatureID applies equality check predicate on the "active_feature_id" field. It's identical to ActiveFeatureIDEQ.
func ActiveFeatureID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldActiveFeatureID, v))
}

// ClassifiedAt applies equality check predicate on the "classified_at" field. It's identical to ClassifiedAtEQ.
func ClassifiedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldClassifiedAt, v))
}

// ClassificationSource applies equality check predicate on the "classification_source" field. It's identical to ClassificationSourceEQ.
func ClassificationSource(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldClassificationSource, v))
}

// LastPrompt applies equality check predicate on the "last_prompt" field. It's identical to LastPromptEQ.
func LastPrompt(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldLastPrompt, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldProjectID, v))
}

// ContinuedFromID applies equality check predicate on the "continued_from_id" field. It's identical to ContinuedFromIDEQ.
func ContinuedFromID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldContinuedFromID, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldAgent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldStartedAt, v))
}

// LastActivityEQ applies the EQ predicate on the "last_activity" field.
func LastActivityEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldLastActivity, v))
}

// LastActivityNEQ applies the NEQ predicate on the "last_activity" field.
func LastActivityNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldLastActivity, v))
}

// LastActivityIn applies the In predicate on the "last_activity" field.
func LastActivityIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldLastActivity, vs...))
}

// LastActivityNotIn applies the NotIn predicate on the "last_activity" field.
func LastActivityNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldLastActivity, vs...))
}

// LastActivityGT applies the GT predicate on the "last_activity" field.
func LastActivityGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldLastActivity, v))
}

// LastActivityGTE applies the GTE predicate on the "last_activity" field.
func LastActivityGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldLastActivity, v))
}

// LastActivityLT applies the LT predicate on the "last_activity" field.
func LastActivityLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldLastActivity, v))
}

// LastActivityLTE applies the LTE predicate on the "last_activity" field.
func LastActivityLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldLastActivity, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldEndedAt))
}

// EventCountEQ applies the EQ predicate on the "event_count" field.
func EventCountEQ(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldEventCount, v))
}

// EventCountNEQ applies the NEQ predicate on the "event_count" field.
func EventCountNEQ(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldEventCount, v))
}

// EventCountIn applies the In predicate on the "event_count" field.
func EventCountIn(vs ...int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldEventCount, vs...))
}

// EventCountNotIn applies the NotIn predicate on the "event_count" field.
func EventCountNotIn(vs ...int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldEventCount, vs...))
}

// EventCountGT applies the GT predicate on the "event_count" field.
func EventCountGT(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldEventCount, v))
}

// EventCountGTE applies the GTE predicate on the "event_count" field.
func EventCountGTE(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldEventCount, v))
}

// EventCountLT applies the LT predicate on the "event_count" field.
func EventCountLT(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldEventCount, v))
}

// EventCountLTE applies the LTE predicate on the "event_count" field.
func EventCountLTE(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldEventCount, v))
}

// IsSubagentEQ applies the EQ predicate on the "is_subagent" field.
func IsSubagentEQ(v bool) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldIsSubagent, v))
}

// IsSubagentNEQ applies the NEQ predicate on the "is_subagent" field.
func IsSubagentNEQ(v bool) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldIsSubagent, v))
}

// StartCommitEQ applies the EQ predicate on the "start_commit" field.
func StartCommitEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStartCommit, v))
}

// StartCommitNEQ applies the NEQ predicate on the "start_commit" field.
func StartCommitNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldStartCommit, v))
}

// StartCommitIn applies the In predicate on the "start_commit" field.
func StartCommitIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldStartCommit, vs...))
}

// StartCommitNotIn applies the NotIn predicate on the "start_commit" field.
func StartCommitNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldStartCommit, vs...))
}

// StartCommitGT applies the GT predicate on the "start_commit" field.
func StartCommitGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldStartCommit, v))
}

// StartCommitGTE applies the GTE predicate on the "start_commit" field.
func StartCommitGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldStartCommit, v))
}

// StartCommitLT applies the LT predicate on the "start_commit" field.
func StartCommitLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldStartCommit, v))
}

// StartCommitLTE applies the LTE predicate on the "start_commit" field.
func StartCommitLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldStartCommit, v))
}

// StartCommitContains applies the Contains predicate on the "start_commit" field.
func StartCommitContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldStartCommit, v))
}

// StartCommitHasPrefix applies the HasPrefix predicate on the "start_commit" field.
func StartCommitHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldStartCommit, v))
}

// StartCommitHasSuffix applies the HasSuffix predicate on the "start_commit" field.
func StartCommitHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldStartCommit, v))
}

// StartCommitIsNil applies the IsNil predicate on the "start_commit" field.
func StartCommitIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldStartCommit))
}

// StartCommitNotNil applies the NotNil predicate on the "start_commit" field.
func StartCommitNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldStartCommit))
}

// StartCommitEqualFold applies the EqualFold predicate on the "start_commit" field.
func StartCommitEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldStartCommit, v))
}

// StartCommitContainsFold applies the ContainsFold predicate on the "start_commit" field.
func StartCommitContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldStartCommit, v))
}

// ActiveFeatureIDEQ applies the EQ predicate on the "active_feature_id" field.
func ActiveFeatureIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldActiveFeatureID, v))
}

// ActiveFeatureIDNEQ applies the NEQ predicate on the "active_feature_id" field.
func ActiveFeatureIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldActiveFeatureID, v))
}

// ActiveFeatureIDIn applies the In predicate on the "active_feature_id" field.
func ActiveFeatureIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldActiveFeatureID, vs...))
}

// ActiveFeatureIDNotIn applies the NotIn predicate on the "active_feature_id" field.
func ActiveFeatureIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldActiveFeatureID, vs...))
}

// ActiveFeatureIDGT applies the GT predicate on the "active_feature_id" field.
func ActiveFeatureIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldActiveFeatureID, v))
}

// ActiveFeatureIDGTE applies the GTE predicate on the "active_feature_id" field.
func ActiveFeatureIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldActiveFeatureID, v))
}

// ActiveFeatureIDLT applies the LT predicate on the "active_feature_id" field.
func ActiveFeatureIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldActiveFeatureID, v))
}

// ActiveFeatureIDLTE applies the LTE predicate on the "active_feature_id" field.
func ActiveFeatureIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldActiveFeatureID, v))
}

// ActiveFeatureIDContains applies the Contains predicate on the "active_feature_id" field.
func ActiveFeatureIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldActiveFeatureID, v))
}

// ActiveFeatureIDHasPrefix applies the HasPrefix predicate on the "active_feature_id" field.
func ActiveFeatureIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldActiveFeatureID, v))
}

// ActiveFeatureIDHasSuffix applies the HasSuffix predicate on the "active_feature_id" field.
func ActiveFeatureIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldActiveFeatureID, v))
}

// ActiveFeatureIDIsNil applies the IsNil predicate on the "active_feature_id" field.
func ActiveFeatureIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldActiveFeatureID))
}

// ActiveFeatureIDNotNil applies the NotNil predicate on the "active_feature_id" field.
func ActiveFeatureIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldActiveFeatureID))
}

// ActiveFeatureIDEqualFold applies the EqualFold predicate on the "active_feature_id" field.
func ActiveFeatureIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldActiveFeatureID, v))
}

// ActiveFeatureIDContainsFold applies the ContainsFold predicate on the "active_feature_id" field.
func ActiveFeatureIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldActiveFeatureID, v))
}

// ClassifiedAtEQ applies the EQ predicate on the "classified_at" field.
func ClassifiedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldClassifiedAt, v))
}

// ClassifiedAtNEQ applies the NEQ predicate on the "classified_at" field.
func ClassifiedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldClassifiedAt, v))
}

// ClassifiedAtIn applies the In predicate on the "classified_at" field.
func ClassifiedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldClassifiedAt, vs...))
}

// ClassifiedAtNotIn applies the NotIn predicate on the "classified_at" field.
func ClassifiedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldClassifiedAt, vs...))
}

// ClassifiedAtGT applies the GT predicate on the "classified_at" field.
func ClassifiedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldClassifiedAt, v))
}

// ClassifiedAtGTE applies the GTE predicate on the "classified_at" field.
func ClassifiedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldClassifiedAt, v))
}

// ClassifiedAtLT applies the LT predicate on the "classified_at" field.
func ClassifiedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldClassifiedAt, v))
}

// ClassifiedAtLTE applies the LTE predicate on the "classified_at" field.
func ClassifiedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldClassifiedAt, v))
}

// ClassifiedAtIsNil applies the IsNil predicate on the "classified_at" field.
func ClassifiedAtIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldClassifiedAt))
}

// ClassifiedAtNotNil applies the NotNil predicate on the "classified_at" field.
func ClassifiedAtNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldClassifiedAt))
}

// ClassificationSourceEQ applies the EQ predicate on the "classification_source" field.
func ClassificationSourceEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldClassificationSource, v))
}

// ClassificationSourceNEQ applies the NEQ predicate on the "classification_source" field.
func ClassificationSourceNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldClassificationSource, v))
}

// ClassificationSourceIn applies the In predicate on the "classification_source" field.
func ClassificationSourceIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldClassificationSource, vs...))
}

// ClassificationSourceNotIn applies the NotIn predicate on the "classification_source" field.
func ClassificationSourceNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldClassificationSource, vs...))
}

// ClassificationSourceGT applies the GT predicate on the "classification_source" field.
func ClassificationSourceGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldClassificationSource, v))
}

// ClassificationSourceGTE applies the GTE predicate on the "classification_source" field.
func ClassificationSourceGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldClassificationSource, v))
}

// ClassificationSourceLT applies the LT predicate on the "classification_source" field.
func ClassificationSourceLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldClassificationSource, v))
}

// ClassificationSourceLTE applies the LTE predicate on the "classification_source" field.
func ClassificationSourceLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldClassificationSource, v))
}

// ClassificationSourceContains applies the Contains predicate on the "classification_source" field.
func ClassificationSourceContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldClassificationSource, v))
}

// ClassificationSourceHasPrefix applies the HasPrefix predicate on the "classification_source" field.
func ClassificationSourceHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldClassificationSource, v))
}

// ClassificationSourceHasSuffix applies the HasSuffix predicate on the "classification_source" field.
func ClassificationSourceHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldClassificationSource, v))
}

// ClassificationSourceIsNil applies the IsNil predicate on the "classification_source" field.
func ClassificationSourceIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldClassificationSource))
}

// ClassificationSourceNotNil applies the NotNil predicate on the "classification_source" field.
func ClassificationSourceNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldClassificationSource))
}

// ClassificationSourceEqualFold applies the EqualFold predicate on the "classification_source" field.
func ClassificationSourceEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldClassificationSource, v))
}

// ClassificationSourceContainsFold applies the ContainsFold predicate on the "classification_source" field.
func ClassificationSourceContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldClassificationSource, v))
}

// LastPromptEQ applies the EQ predicate on the "last_prompt" field.
func LastPromptEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldLastPrompt, v))
}

// LastPromptNEQ applies the NEQ predicate on the "last_prompt" field.
func LastPromptNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldLastPrompt, v))
}

// LastPromptIn applies the In predicate on the "last_prompt" field.
func LastPromptIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldLastPrompt, vs...))
}

// LastPromptNotIn applies the NotIn predicate on the "last_prompt" field.
func LastPromptNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldLastPrompt, vs...))
}

// LastPromptGT applies the GT predicate on the "last_prompt" field.
func LastPromptGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldLastPrompt, v))
}

// LastPromptGTE applies the GTE predicate on the "last_prompt" field.
func LastPromptGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldLastPrompt, v))
}

// LastPromptLT applies the LT predicate on the "last_prompt" field.
func LastPromptLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldLastPrompt, v))
}

// LastPromptLTE applies the LTE predicate on the "last_prompt" field.
func LastPromptLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldLastPrompt, v))
}

// LastPromptContains applies the Contains predicate on the "last_prompt" field.
func LastPromptContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldLastPrompt, v))
}

// LastPromptHasPrefix applies the HasPrefix predicate on the "last_prompt" field.
func LastPromptHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldLastPrompt, v))
}

// LastPromptHasSuffix applies the HasSuffix predicate on the "last_prompt" field.
func LastPromptHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldLastPrompt, v))
}

// LastPromptIsNil applies the IsNil predicate on the "last_prompt" field.
func LastPromptIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldLastPrompt))
}

// LastPromptNotNil applies the NotNil predicate on the "last_prompt" field.
func LastPromptNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldLastPrompt))
}

// LastPromptEqualFold applies the EqualFold predicate on the "last_prompt" field.
func LastPromptEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldLastPrompt, v))
}

// LastPromptContainsFold applies the ContainsFold predicate on the "last_prompt" field.
func LastPromptContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldLastPrompt, v))
}

// NudgesShownIsNil applies the IsNil predicate on the "nudges_shown" field.
func NudgesShownIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldNudgesShown))
}

// NudgesShownNotNil applies the NotNil predicate on the "nudges_shown" field.
func NudgesShownNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldNudgesShown))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldProjectID, v))
}

// ContinuedFromIDEQ applies the EQ predicate on the "continued_from_id" field.
func ContinuedFromIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldContinuedFromID, v))
}

// ContinuedFromIDNEQ applies the NEQ predicate on the "continued_from_id" field.
func ContinuedFromIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldContinuedFromID, v))
}

// ContinuedFromIDIn applies the In predicate on the "continued_from_id" field.
func ContinuedFromIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldContinuedFromID, vs...))
}

// ContinuedFromIDNotIn applies the NotIn predicate on the "continued_from_id" field.
func ContinuedFromIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldContinuedFromID, vs...))
}

// ContinuedFromIDGT applies the GT predicate on the "continued_from_id" field.
func ContinuedFromIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldContinuedFromID, v))
}

// ContinuedFromIDGTE applies the GTE predicate on the "continued_from_id" field.
func ContinuedFromIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldContinuedFromID, v))
}

// ContinuedFromIDLT applies the LT predicate on the "continued_from_id" field.
func ContinuedFromIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldContinuedFromID, v))
}

// ContinuedFromIDLTE applies the LTE predicate on the "continued_from_id" field.
func ContinuedFromIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldContinuedFromID, v))
}

// ContinuedFromIDContains applies the Contains predicate on the "continued_from_id" field.
func ContinuedFromIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldContinuedFromID, v))
}

// ContinuedFromIDHasPrefix applies the HasPrefix predicate on the "continued_from_id" field.
func ContinuedFromIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldContinuedFromID, v))
}

// ContinuedFromIDHasSuffix applies the HasSuffix predicate on the "continued_from_id" field.
func ContinuedFromIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldContinuedFromID, v))
}

// ContinuedFromIDIsNil applies the IsNil predicate on the "continued_from_id" field.
func ContinuedFromIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldContinuedFromID))
}

// ContinuedFromIDNotNil applies the NotNil predicate on the "continued_from_id" field.
func ContinuedFromIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldContinuedFromID))
}

// ContinuedFromIDEqualFold applies the EqualFold predicate on the "continued_from_id" field.
func ContinuedFromIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldContinuedFromID, v))
}

// ContinuedFromIDContainsFold applies the ContainsFold predicate on the "continued_from_id" field.
func ContinuedFromIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldContinuedFromID, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContinuedFrom applies the HasEdge predicate on the "continued_from" edge.
func HasContinuedFrom() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContinuedFromTable, ContinuedFromColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContinuedFromWith applies the HasEdge predicate on the "continued_from" edge with a given conditions (other predicates).
func HasContinuedFromWith(preds ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newContinuedFromStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContinuations applies the HasEdge predicate on the "continuations" edge.
func HasContinuations() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContinuationsTable, ContinuationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContinuationsWith applies the HasEdge predicate on the "continuations" edge with a given conditions (other predicates).
func HasContinuationsWith(preds ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newContinuationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.HookEvent) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCommits applies the HasEdge predicate on the "commits" edge.
func HasCommits() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommitsTable, CommitsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommitsWith applies the HasEdge predicate on the "commits" edge with a given conditions (other predicates).
func HasCommitsWith(preds ...predicate.Commit) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newCommitsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.NotPredicates(p))
}
