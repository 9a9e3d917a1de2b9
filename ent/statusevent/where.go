// Code generated by ent, DO NOT EDIT.

package statusevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ijoka-ai/ijoka/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContainsFold(FieldID, id))
}

// FromStatus applies equality check predicate on the "from_status" field. It's identical to FromStatusEQ.
func FromStatus(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldFromStatus, v))
}

// ToStatus applies equality check predicate on the "to_status" field. It's identical to ToStatusEQ.
func ToStatus(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldToStatus, v))
}

// At applies equality check predicate on the "at" field. It's identical to AtEQ.
func At(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldAt, v))
}

// By applies equality check predicate on the "by" field. It's identical to ByEQ.
func By(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldBy, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldSessionID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldReason, v))
}

// FeatureID applies equality check predicate on the "feature_id" field. It's identical to FeatureIDEQ.
func FeatureID(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldFeatureID, v))
}

// FromStatusEQ applies the EQ predicate on the "from_status" field.
func FromStatusEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldFromStatus, v))
}

// FromStatusNEQ applies the NEQ predicate on the "from_status" field.
func FromStatusNEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldFromStatus, v))
}

// FromStatusIn applies the In predicate on the "from_status" field.
func FromStatusIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldFromStatus, vs...))
}

// FromStatusNotIn applies the NotIn predicate on the "from_status" field.
func FromStatusNotIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldFromStatus, vs...))
}

// FromStatusGT applies the GT predicate on the "from_status" field.
func FromStatusGT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldFromStatus, v))
}

// FromStatusGTE applies the GTE predicate on the "from_status" field.
func FromStatusGTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldFromStatus, v))
}

// FromStatusLT applies the LT predicate on the "from_status" field.
func FromStatusLT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldFromStatus, v))
}

// FromStatusLTE applies the LTE predicate on the "from_status" field.
func FromStatusLTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldFromStatus, v))
}

// FromStatusContains applies the Contains predicate on the "from_status" field.
func FromStatusContains(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContains(FieldFromStatus, v))
}

// FromStatusHasPrefix applies the HasPrefix predicate on the "from_status" field.
func FromStatusHasPrefix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasPrefix(FieldFromStatus, v))
}

// FromStatusHasSuffix applies the HasSuffix predicate on the "from_status" field.
func FromStatusHasSuffix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasSuffix(FieldFromStatus, v))
}

// FromStatusEqualFold applies the EqualFold predicate on the "from_status" field.
func FromStatusEqualFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEqualFold(FieldFromStatus, v))
}

// FromStatusContainsFold applies the ContainsFold predicate on the "from_status" field.
func FromStatusContainsFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContainsFold(FieldFromStatus, v))
}

// ToStatusEQ applies the EQ predicate on the "to_status" field.
func ToStatusEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldToStatus, v))
}

// ToStatusNEQ applies the NEQ predicate on the "to_status" field.
func ToStatusNEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldToStatus, v))
}

// ToStatusIn applies the In predicate on the "to_status" field.
func ToStatusIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldToStatus, vs...))
}

// ToStatusNotIn applies the NotIn predicate on the "to_status" field.
func ToStatusNotIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldToStatus, vs...))
}

// ToStatusGT applies the GT predicate on the "to_status" field.
func ToStatusGT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldToStatus, v))
}

// ToStatusGTE applies the GTE predicate on the "to_status" field.
func ToStatusGTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldToStatus, v))
}

// ToStatusLT applies the LT predicate on the "to_status" field.
func ToStatusLT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldToStatus, v))
}

// ToStatusLTE applies the LTE predicate on the "to_status" field.
func ToStatusLTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldToStatus, v))
}

// ToStatusContains applies the Contains predicate on the "to_status" field.
func ToStatusContains(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContains(FieldToStatus, v))
}

// ToStatusHasPrefix applies the HasPrefix predicate on the "to_status" field.
func ToStatusHasPrefix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasPrefix(FieldToStatus, v))
}

// ToStatusHasSuffix applies the HasSuffix predicate on the "to_status" field.
func ToStatusHasSuffix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasSuffix(FieldToStatus, v))
}

// ToStatusEqualFold applies the EqualFold predicate on the "to_status" field.
func ToStatusEqualFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEqualFold(FieldToStatus, v))
}

// ToStatusContainsFold applies the ContainsFold predicate on the "to_status" field.
func ToStatusContainsFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContainsFold(FieldToStatus, v))
}

// AtEQ applies the EQ predicate on the "at" field.
func AtEQ(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldAt, v))
}

// AtNEQ applies the NEQ predicate on the "at" field.
func AtNEQ(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldAt, v))
}

// AtIn applies the In predicate on the "at" field.
func AtIn(vs ...time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldAt, vs...))
}

// AtNotIn applies the NotIn predicate on the "at" field.
func AtNotIn(vs ...time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldAt, vs...))
}

// AtGT applies the GT predicate on the "at" field.
func AtGT(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldAt, v))
}

// AtGTE applies the GTE predicate on the "at" field.
func AtGTE(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldAt, v))
}

// AtLT applies the LT predicate on the "at" field.
func AtLT(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldAt, v))
}

// AtLTE applies the LTE predicate on the "at" field.
func AtLTE(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldAt, v))
}

// ByEQ applies the EQ predicate on the "by" field.
func ByEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldBy, v))
}

// ByNEQ applies the NEQ predicate on the "by" field.
func ByNEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldBy, v))
}

// ByIn applies the In predicate on the "by" field.
func ByIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldBy, vs...))
}

// ByNotIn applies the NotIn predicate on the "by" field.
func ByNotIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldBy, vs...))
}

// ByGT applies the GT predicate on the "by" field.
func ByGT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldBy, v))
}

// ByGTE applies the GTE predicate on the "by" field.
func ByGTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldBy, v))
}

// ByLT applies the LT predicate on the "by" field.
func ByLT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldBy, v))
}

// ByLTE applies the LTE predicate on the "by" field.
func ByLTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldBy, v))
}

// ByContains applies the Contains predicate on the "by" field.
func ByContains(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContains(FieldBy, v))
}

// ByHasPrefix applies the HasPrefix predicate on the "by" field.
func ByHasPrefix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasPrefix(FieldBy, v))
}

// ByHasSuffix applies the HasSuffix predicate on the "by" field.
func ByHasSuffix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasSuffix(FieldBy, v))
}

// ByEqualFold applies the EqualFold predicate on the "by" field.
func ByEqualFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEqualFold(FieldBy, v))
}

// ByContainsFold applies the ContainsFold predicate on the "by" field.
func ByContainsFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContainsFold(FieldBy, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContainsFold(FieldReason, v))
}

// FeatureIDEQ applies the EQ predicate on the "feature_id" field.
func FeatureIDEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldFeatureID, v))
}

// FeatureIDNEQ applies the NEQ predicate on the "feature_id" field.
func FeatureIDNEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldFeatureID, v))
}

// FeatureIDIn applies the In predicate on the "feature_id" field.
func FeatureIDIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldFeatureID, vs...))
}

// FeatureIDNotIn applies the NotIn predicate on the "feature_id" field.
func FeatureIDNotIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldFeatureID, vs...))
}

// FeatureIDGT applies the GT predicate on the "feature_id" field.
func FeatureIDGT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldFeatureID, v))
}

// FeatureIDGTE applies the GTE predicate on the "feature_id" field.
func FeatureIDGTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldFeatureID, v))
}

// FeatureIDLT applies the LT predicate on the "feature_id" field.
func FeatureIDLT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldFeatureID, v))
}

// FeatureIDLTE applies the LTE predicate on the "feature_id" field.
func FeatureIDLTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldFeatureID, v))
}

// FeatureIDContains applies the Contains predicate on the "feature_id" field.
func FeatureIDContains(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContains(FieldFeatureID, v))
}

// FeatureIDHasPrefix applies the HasPrefix predicate on the "feature_id" field.
func FeatureIDHasPrefix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasPrefix(FieldFeatureID, v))
}

// FeatureIDHasSuffix applies the HasSuffix predicate on the "feature_id" field.
func FeatureIDHasSuffix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasSuffix(FieldFeatureID, v))
}

// FeatureIDEqualFold applies the EqualFold predicate on the "feature_id" field.
func FeatureIDEqualFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEqualFold(FieldFeatureID, v))
}

// FeatureIDContainsFold applies the ContainsFold predicate on the "feature_id" field.
func FeatureIDContainsFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContainsFold(FieldFeatureID, v))
}

// HasFeature applies the HasEdge predicate on the "feature" edge.
func HasFeature() predicate.StatusEvent {
	return predicate.StatusEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FeatureTable, FeatureColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeatureWith applies the HasEdge predicate on the "feature" edge with a given conditions (other predicates).
func HasFeatureWith(preds ...predicate.Feature) predicate.StatusEvent {
	return predicate.StatusEvent(func(s *sql.Selector) {
		step := newFeatureStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StatusEvent) predicate.StatusEvent {
	return predicate.StatusEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StatusEvent) predicate.StatusEvent {
	return predicate.StatusEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StatusEvent) predicate.StatusEvent {
	return predicate.StatusEvent(sql.NotPredicates(p))
}
