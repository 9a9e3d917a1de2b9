// Code generated by ent, DO NOT EDIT.

package hookevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ijoka-ai/ijoka/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContainsFold(FieldID, id))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldToolName, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SourceAgent applies equality check predicate on the "source_agent" field. It's identical to SourceAgentEQ.
func SourceAgent(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldSourceAgent, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldSessionID, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldSuccess, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldSummary, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldStepID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameIsNil applies the IsNil predicate on the "tool_name" field.
func ToolNameIsNil() predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIsNull(FieldToolName))
}

// ToolNameNotNil applies the NotNil predicate on the "tool_name" field.
func ToolNameNotNil() predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotNull(FieldToolName))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContainsFold(FieldToolName, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotNull(FieldPayload))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SourceAgentEQ applies the EQ predicate on the "source_agent" field.
func SourceAgentEQ(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldSourceAgent, v))
}

// SourceAgentNEQ applies the NEQ predicate on the "source_agent" field.
func SourceAgentNEQ(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNEQ(FieldSourceAgent, v))
}

// SourceAgentIn applies the In predicate on the "source_agent" field.
func SourceAgentIn(vs ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIn(FieldSourceAgent, vs...))
}

// SourceAgentNotIn applies the NotIn predicate on the "source_agent" field.
func SourceAgentNotIn(vs ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotIn(FieldSourceAgent, vs...))
}

// SourceAgentGT applies the GT predicate on the "source_agent" field.
func SourceAgentGT(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGT(FieldSourceAgent, v))
}

// SourceAgentGTE applies the GTE predicate on the "source_agent" field.
func SourceAgentGTE(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGTE(FieldSourceAgent, v))
}

// SourceAgentLT applies the LT predicate on the "source_agent" field.
func SourceAgentLT(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLT(FieldSourceAgent, v))
}

// SourceAgentLTE applies the LTE predicate on the "source_agent" field.
func SourceAgentLTE(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLTE(FieldSourceAgent, v))
}

// SourceAgentContains applies the Contains predicate on the "source_agent" field.
func SourceAgentContains(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContains(FieldSourceAgent, v))
}

// SourceAgentHasPrefix applies the HasPrefix predicate on the "source_agent" field.
func SourceAgentHasPrefix(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldHasPrefix(FieldSourceAgent, v))
}

// SourceAgentHasSuffix applies the HasSuffix predicate on the "source_agent" field.
func SourceAgentHasSuffix(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldHasSuffix(FieldSourceAgent, v))
}

// SourceAgentEqualFold applies the EqualFold predicate on the "source_agent" field.
func SourceAgentEqualFold(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEqualFold(FieldSourceAgent, v))
}

// SourceAgentContainsFold applies the ContainsFold predicate on the "source_agent" field.
func SourceAgentContainsFold(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContainsFold(FieldSourceAgent, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNEQ(FieldSuccess, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContainsFold(FieldSummary, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDIsNil applies the IsNil predicate on the "step_id" field.
func StepIDIsNil() predicate.HookEvent {
	return predicate.HookEvent(sql.FieldIsNull(FieldStepID))
}

// StepIDNotNil applies the NotNil predicate on the "step_id" field.
func StepIDNotNil() predicate.HookEvent {
	return predicate.HookEvent(sql.FieldNotNull(FieldStepID))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.HookEvent {
	return predicate.HookEvent(sql.FieldContainsFold(FieldStepID, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.HookEvent {
	return predicate.HookEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AgentSession) predicate.HookEvent {
	return predicate.HookEvent(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStep applies the HasEdge predicate on the "step" edge.
func HasStep() predicate.HookEvent {
	return predicate.HookEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepWith applies the HasEdge predicate on the "step" edge with a given conditions (other predicates).
func HasStepWith(preds ...predicate.Step) predicate.HookEvent {
	return predicate.HookEvent(func(s *sql.Selector) {
		step := newStepStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFeatures applies the HasEdge predicate on the "features" edge.
func HasFeatures() predicate.HookEvent {
	return predicate.HookEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, FeaturesTable, FeaturesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeaturesWith applies the HasEdge predicate on the "features" edge with a given conditions (other predicates).
func HasFeaturesWith(preds ...predicate.Feature) predicate.HookEvent {
	return predicate.HookEvent(func(s *sql.Selector) {
		step := newFeaturesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HookEvent) predicate.HookEvent {
	return predicate.HookEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HookEvent) predicate.HookEvent {
	return predicate.HookEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HookEvent) predicate.HookEvent {
	return predicate.HookEvent(sql.NotPredicates(p))
}
