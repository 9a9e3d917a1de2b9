// Code generated by ent, DO NOT EDIT.

package feature

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ijoka-ai/ijoka/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldID, id))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldDescription, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldCategory, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldPriority, v))
}

// BranchHint applies equality check predicate on the "branch_hint" field. It's identical to BranchHintEQ.
func BranchHint(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldBranchHint, v))
}

// WorkCount applies equality check predicate on the "work_count" field. It's identical to WorkCountEQ.
func WorkCount(v int) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldWorkCount, v))
}

// AssignedAgent applies equality check predicate on the "assigned_agent" field. It's identical to AssignedAgentEQ.
func AssignedAgent(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldAssignedAgent, v))
}

// ClaimingSessionID applies equality check predicate on the "claiming_session_id" field. It's identical to ClaimingSessionIDEQ.
func ClaimingSessionID(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldClaimingSessionID, v))
}

// ClaimingAgent applies equality check predicate on the "claiming_agent" field. It's identical to ClaimingAgentEQ.
func ClaimingAgent(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldClaimingAgent, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldClaimedAt, v))
}

// BlockReason applies equality check predicate on the "block_reason" field. It's identical to BlockReasonEQ.
func BlockReason(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldBlockReason, v))
}

// IsPrimary applies equality check predicate on the "is_primary" field. It's identical to IsPrimaryEQ.
func IsPrimary(v bool) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldIsPrimary, v))
}

// IsSessionWork applies equality check predicate on the "is_session_work" field. It's identical to IsSessionWorkEQ.
func IsSessionWork(v bool) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldIsSessionWork, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldCompletedAt, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldProjectID, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldParentID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldDescription, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldCategory, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldPriority, v))
}

// FilePatternsIsNil applies the IsNil predicate on the "file_patterns" field.
func FilePatternsIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldFilePatterns))
}

// FilePatternsNotNil applies the NotNil predicate on the "file_patterns" field.
func FilePatternsNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldFilePatterns))
}

// BranchHintEQ applies the EQ predicate on the "branch_hint" field.
func BranchHintEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldBranchHint, v))
}

// BranchHintNEQ applies the NEQ predicate on the "branch_hint" field.
func BranchHintNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldBranchHint, v))
}

// BranchHintIn applies the In predicate on the "branch_hint" field.
func BranchHintIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldBranchHint, vs...))
}

// BranchHintNotIn applies the NotIn predicate on the "branch_hint" field.
func BranchHintNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldBranchHint, vs...))
}

// BranchHintGT applies the GT predicate on the "branch_hint" field.
func BranchHintGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldBranchHint, v))
}

// BranchHintGTE applies the GTE predicate on the "branch_hint" field.
func BranchHintGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldBranchHint, v))
}

// BranchHintLT applies the LT predicate on the "branch_hint" field.
func BranchHintLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldBranchHint, v))
}

// BranchHintLTE applies the LTE predicate on the "branch_hint" field.
func BranchHintLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldBranchHint, v))
}

// BranchHintContains applies the Contains predicate on the "branch_hint" field.
func BranchHintContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldBranchHint, v))
}

// BranchHintHasPrefix applies the HasPrefix predicate on the "branch_hint" field.
func BranchHintHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldBranchHint, v))
}

// BranchHintHasSuffix applies the HasSuffix predicate on the "branch_hint" field.
func BranchHintHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldBranchHint, v))
}

// BranchHintIsNil applies the IsNil predicate on the "branch_hint" field.
func BranchHintIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldBranchHint))
}

// BranchHintNotNil applies the NotNil predicate on the "branch_hint" field.
func BranchHintNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldBranchHint))
}

// BranchHintEqualFold applies the EqualFold predicate on the "branch_hint" field.
func BranchHintEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldBranchHint, v))
}

// BranchHintContainsFold applies the ContainsFold predicate on the "branch_hint" field.
func BranchHintContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldBranchHint, v))
}

// WorkCountEQ applies the EQ predicate on the "work_count" field.
func WorkCountEQ(v int) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldWorkCount, v))
}

// WorkCountNEQ applies the NEQ predicate on the "work_count" field.
func WorkCountNEQ(v int) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldWorkCount, v))
}

// WorkCountIn applies the In predicate on the "work_count" field.
func WorkCountIn(vs ...int) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldWorkCount, vs...))
}

// WorkCountNotIn applies the NotIn predicate on the "work_count" field.
func WorkCountNotIn(vs ...int) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldWorkCount, vs...))
}

// WorkCountGT applies the GT predicate on the "work_count" field.
func WorkCountGT(v int) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldWorkCount, v))
}

// WorkCountGTE applies the GTE predicate on the "work_count" field.
func WorkCountGTE(v int) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldWorkCount, v))
}

// WorkCountLT applies the LT predicate on the "work_count" field.
func WorkCountLT(v int) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldWorkCount, v))
}

// WorkCountLTE applies the LTE predicate on the "work_count" field.
func WorkCountLTE(v int) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldWorkCount, v))
}

// AssignedAgentEQ applies the EQ predicate on the "assigned_agent" field.
func AssignedAgentEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldAssignedAgent, v))
}

// AssignedAgentNEQ applies the NEQ predicate on the "assigned_agent" field.
func AssignedAgentNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldAssignedAgent, v))
}

// AssignedAgentIn applies the In predicate on the "assigned_agent" field.
func AssignedAgentIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldAssignedAgent, vs...))
}

// AssignedAgentNotIn applies the NotIn predicate on the "assigned_agent" field.
func AssignedAgentNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldAssignedAgent, vs...))
}

// AssignedAgentGT applies the GT predicate on the "assigned_agent" field.
func AssignedAgentGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldAssignedAgent, v))
}

// AssignedAgentGTE applies the GTE predicate on the "assigned_agent" field.
func AssignedAgentGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldAssignedAgent, v))
}

// AssignedAgentLT applies the LT predicate on the "assigned_agent" field.
func AssignedAgentLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldAssignedAgent, v))
}

// AssignedAgentLTE applies the LTE predicate on the "assigned_agent" field.
func AssignedAgentLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldAssignedAgent, v))
}

// AssignedAgentContains applies the Contains predicate on the "assigned_agent" field.
func AssignedAgentContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldAssignedAgent, v))
}

// AssignedAgentHasPrefix applies the HasPrefix predicate on the "assigned_agent" field.
func AssignedAgentHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldAssignedAgent, v))
}

// AssignedAgentHasSuffix applies the HasSuffix predicate on the "assigned_agent" field.
func AssignedAgentHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldAssignedAgent, v))
}

// AssignedAgentIsNil applies the IsNil predicate on the "assigned_agent" field.
func AssignedAgentIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldAssignedAgent))
}

// AssignedAgentNotNil applies the NotNil predicate on the "assigned_agent" field.
func AssignedAgentNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldAssignedAgent))
}

// AssignedAgentEqualFold applies the EqualFold predicate on the "assigned_agent" field.
func AssignedAgentEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldAssignedAgent, v))
}

// AssignedAgentContainsFold applies the ContainsFold predicate on the "assigned_agent" field.
func AssignedAgentContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldAssignedAgent, v))
}

// ClaimingSessionIDEQ applies the EQ predicate on the "claiming_session_id" field.
func ClaimingSessionIDEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldClaimingSessionID, v))
}

// ClaimingSessionIDNEQ applies the NEQ predicate on the "claiming_session_id" field.
func ClaimingSessionIDNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldClaimingSessionID, v))
}

// ClaimingSessionIDIn applies the In predicate on the "claiming_session_id" field.
func ClaimingSessionIDIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldClaimingSessionID, vs...))
}

// ClaimingSessionIDNotIn applies the NotIn predicate on the "claiming_session_id" field.
func ClaimingSessionIDNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldClaimingSessionID, vs...))
}

// ClaimingSessionIDGT applies the GT predicate on the "claiming_session_id" field.
func ClaimingSessionIDGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldClaimingSessionID, v))
}

// ClaimingSessionIDGTE applies the GTE predicate on the "claiming_session_id" field.
func ClaimingSessionIDGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldClaimingSessionID, v))
}

// ClaimingSessionIDLT applies the LT predicate on the "claiming_session_id" field.
func ClaimingSessionIDLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldClaimingSessionID, v))
}

// ClaimingSessionIDLTE applies the LTE predicate on the "claiming_session_id" field.
func ClaimingSessionIDLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldClaimingSessionID, v))
}

// ClaimingSessionIDContains applies the Contains predicate on the "claiming_session_id" field.
func ClaimingSessionIDContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldClaimingSessionID, v))
}

// ClaimingSessionIDHasPrefix applies the HasPrefix predicate on the "claiming_session_id" field.
func ClaimingSessionIDHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldClaimingSessionID, v))
}

// ClaimingSessionIDHasSuffix applies the HasSuffix predicate on the "claiming_session_id" field.
func ClaimingSessionIDHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldClaimingSessionID, v))
}

// ClaimingSessionIDIsNil applies the IsNil predicate on the "claiming_session_id" field.
func ClaimingSessionIDIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldClaimingSessionID))
}

// ClaimingSessionIDNotNil applies the NotNil predicate on the "claiming_session_id" field.
func ClaimingSessionIDNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldClaimingSessionID))
}

// ClaimingSessionIDEqualFold applies the EqualFold predicate on the "claiming_session_id" field.
func ClaimingSessionIDEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldClaimingSessionID, v))
}

// ClaimingSessionIDContainsFold applies the ContainsFold predicate on the "claiming_session_id" field.
func ClaimingSessionIDContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldClaimingSessionID, v))
}

// ClaimingAgentEQ applies the EQ predicate on the "claiming_agent" field.
func ClaimingAgentEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldClaimingAgent, v))
}

// ClaimingAgentNEQ applies the NEQ predicate on the "claiming_agent" field.
func ClaimingAgentNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldClaimingAgent, v))
}

// ClaimingAgentIn applies the In predicate on the "claiming_agent" field.
func ClaimingAgentIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldClaimingAgent, vs...))
}

// ClaimingAgentNotIn applies the NotIn predicate on the "claiming_agent" field.
func ClaimingAgentNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldClaimingAgent, vs...))
}

// ClaimingAgentGT applies the GT predicate on the "claiming_agent" field.
func ClaimingAgentGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldClaimingAgent, v))
}

// ClaimingAgentGTE applies the GTE predicate on the "claiming_agent" field.
func ClaimingAgentGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldClaimingAgent, v))
}

// ClaimingAgentLT applies the LT predicate on the "claiming_agent" field.
func ClaimingAgentLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldClaimingAgent, v))
}

// ClaimingAgentLTE applies the LTE predicate on the "claiming_agent" field.
func ClaimingAgentLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldClaimingAgent, v))
}

// ClaimingAgentContains applies the Contains predicate on the "claiming_agent" field.
func ClaimingAgentContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldClaimingAgent, v))
}

// ClaimingAgentHasPrefix applies the HasPrefix predicate on the "claiming_agent" field.
func ClaimingAgentHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldClaimingAgent, v))
}

// ClaimingAgentHasSuffix applies the HasSuffix predicate on the "claiming_agent" field.
func ClaimingAgentHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldClaimingAgent, v))
}

// ClaimingAgentIsNil applies the IsNil predicate on the "claiming_agent" field.
func ClaimingAgentIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldClaimingAgent))
}

// ClaimingAgentNotNil applies the NotNil predicate on the "claiming_agent" field.
func ClaimingAgentNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldClaimingAgent))
}

// ClaimingAgentEqualFold applies the EqualFold predicate on the "claiming_agent" field.
func ClaimingAgentEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldClaimingAgent, v))
}

// ClaimingAgentContainsFold applies the ContainsFold predicate on the "claiming_agent" field.
func ClaimingAgentContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldClaimingAgent, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldClaimedAt))
}

// BlockReasonEQ applies the EQ predicate on the "block_reason" field.
func BlockReasonEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldBlockReason, v))
}

// BlockReasonNEQ applies the NEQ predicate on the "block_reason" field.
func BlockReasonNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldBlockReason, v))
}

// BlockReasonIn applies the In predicate on the "block_reason" field.
func BlockReasonIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldBlockReason, vs...))
}

// BlockReasonNotIn applies the NotIn predicate on the "block_reason" field.
func BlockReasonNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldBlockReason, vs...))
}

// BlockReasonGT applies the GT predicate on the "block_reason" field.
func BlockReasonGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldBlockReason, v))
}

// BlockReasonGTE applies the GTE predicate on the "block_reason" field.
func BlockReasonGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldBlockReason, v))
}

// BlockReasonLT applies the LT predicate on the "block_reason" field.
func BlockReasonLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldBlockReason, v))
}

// BlockReasonLTE applies the LTE predicate on the "block_reason" field.
func BlockReasonLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldBlockReason, v))
}

// BlockReasonContains applies the Contains predicate on the "block_reason" field.
func BlockReasonContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldBlockReason, v))
}

// BlockReasonHasPrefix applies the HasPrefix predicate on the "block_reason" field.
func BlockReasonHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldBlockReason, v))
}

// BlockReasonHasSuffix applies the HasSuffix predicate on the "block_reason" field.
func BlockReasonHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldBlockReason, v))
}

// BlockReasonIsNil applies the IsNil predicate on the "block_reason" field.
func BlockReasonIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldBlockReason))
}

// BlockReasonNotNil applies the NotNil predicate on the "block_reason" field.
func BlockReasonNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldBlockReason))
}

// BlockReasonEqualFold applies the EqualFold predicate on the "block_reason" field.
func BlockReasonEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldBlockReason, v))
}

// BlockReasonContainsFold applies the ContainsFold predicate on the "block_reason" field.
func BlockReasonContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldBlockReason, v))
}

// IsPrimaryEQ applies the EQ predicate on the "is_primary" field.
func IsPrimaryEQ(v bool) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldIsPrimary, v))
}

// IsPrimaryNEQ applies the NEQ predicate on the "is_primary" field.
func IsPrimaryNEQ(v bool) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldIsPrimary, v))
}

// IsSessionWorkEQ applies the EQ predicate on the "is_session_work" field.
func IsSessionWorkEQ(v bool) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldIsSessionWork, v))
}

// IsSessionWorkNEQ applies the NEQ predicate on the "is_session_work" field.
func IsSessionWorkNEQ(v bool) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldIsSessionWork, v))
}

// CompletionCriteriaIsNil applies the IsNil predicate on the "completion_criteria" field.
func CompletionCriteriaIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldCompletionCriteria))
}

// CompletionCriteriaNotNil applies the NotNil predicate on the "completion_criteria" field.
func CompletionCriteriaNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldCompletionCriteria))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldCompletedAt))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldProjectID, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.Feature {
	return predicate.Feature(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.Feature {
	return predicate.Feature(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.Feature {
	return predicate.Feature(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.Feature {
	return predicate.Feature(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Feature {
	return predicate.Feature(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Feature {
	return predicate.Feature(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.Feature {
	return predicate.Feature(sql.FieldContainsFold(FieldParentID, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Feature) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.Feature) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.Step) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStatusEvents applies the HasEdge predicate on the "status_events" edge.
func HasStatusEvents() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StatusEventsTable, StatusEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatusEventsWith applies the HasEdge predicate on the "status_events" edge with a given conditions (other predicates).
func HasStatusEventsWith(preds ...predicate.StatusEvent) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newStatusEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInsights applies the HasEdge predicate on the "insights" edge.
func HasInsights() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InsightsTable, InsightsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInsightsWith applies the HasEdge predicate on the "insights" edge with a given conditions (other predicates).
func HasInsightsWith(preds ...predicate.Insight) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newInsightsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCommits applies the HasEdge predicate on the "commits" edge.
func HasCommits() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommitsTable, CommitsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommitsWith applies the HasEdge predicate on the "commits" edge with a given conditions (other predicates).
func HasCommitsWith(preds ...predicate.Commit) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newCommitsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutgoingDeps applies the HasEdge predicate on the "outgoing_deps" edge.
func HasOutgoingDeps() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutgoingDepsTable, OutgoingDepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutgoingDepsWith applies the HasEdge predicate on the "outgoing_deps" edge with a given conditions (other predicates).
func HasOutgoingDepsWith(preds ...predicate.FeatureDependency) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newOutgoingDepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIncomingDeps applies the HasEdge predicate on the "incoming_deps" edge.
func HasIncomingDeps() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IncomingDepsTable, IncomingDepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIncomingDepsWith applies the HasEdge predicate on the "incoming_deps" edge with a given conditions (other predicates).
func HasIncomingDepsWith(preds ...predicate.FeatureDependency) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newIncomingDepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, EventsTable, EventsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.HookEvent) predicate.Feature {
	return predicate.Feature(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Feature) predicate.Feature {
	return predicate.Feature(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Feature) predicate.Feature {
	return predicate.Feature(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Feature) predicate.Feature {
	return predicate.Feature(sql.NotPredicates(p))
}
