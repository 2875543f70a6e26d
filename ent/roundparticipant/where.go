// Code generated by ent, DO NOT EDIT.

package roundparticipant

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldContainsFold(FieldID, id))
}

// RoundID applies equality check predicate on the "round_id" field. It's identical to RoundIDEQ.
func RoundID(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEQ(FieldRoundID, v))
}

// MembershipID applies equality check predicate on the "membership_id" field. It's identical to MembershipIDEQ.
func MembershipID(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEQ(FieldMembershipID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEQ(FieldPosition, v))
}

// RoundIDEQ applies the EQ predicate on the "round_id" field.
func RoundIDEQ(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEQ(FieldRoundID, v))
}

// RoundIDNEQ applies the NEQ predicate on the "round_id" field.
func RoundIDNEQ(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldNEQ(FieldRoundID, v))
}

// RoundIDIn applies the In predicate on the "round_id" field.
func RoundIDIn(vs ...string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldIn(FieldRoundID, vs...))
}

// RoundIDNotIn applies the NotIn predicate on the "round_id" field.
func RoundIDNotIn(vs ...string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldNotIn(FieldRoundID, vs...))
}

// RoundIDGT applies the GT predicate on the "round_id" field.
func RoundIDGT(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldGT(FieldRoundID, v))
}

// RoundIDGTE applies the GTE predicate on the "round_id" field.
func RoundIDGTE(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldGTE(FieldRoundID, v))
}

// RoundIDLT applies the LT predicate on the "round_id" field.
func RoundIDLT(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldLT(FieldRoundID, v))
}

// RoundIDLTE applies the LTE predicate on the "round_id" field.
func RoundIDLTE(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldLTE(FieldRoundID, v))
}

// RoundIDContains applies the Contains predicate on the "round_id" field.
func RoundIDContains(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldContains(FieldRoundID, v))
}

// RoundIDHasPrefix applies the HasPrefix predicate on the "round_id" field.
func RoundIDHasPrefix(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldHasPrefix(FieldRoundID, v))
}

// RoundIDHasSuffix applies the HasSuffix predicate on the "round_id" field.
func RoundIDHasSuffix(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldHasSuffix(FieldRoundID, v))
}

// RoundIDEqualFold applies the EqualFold predicate on the "round_id" field.
func RoundIDEqualFold(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEqualFold(FieldRoundID, v))
}

// RoundIDContainsFold applies the ContainsFold predicate on the "round_id" field.
func RoundIDContainsFold(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldContainsFold(FieldRoundID, v))
}

// MembershipIDEQ applies the EQ predicate on the "membership_id" field.
func MembershipIDEQ(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEQ(FieldMembershipID, v))
}

// MembershipIDNEQ applies the NEQ predicate on the "membership_id" field.
func MembershipIDNEQ(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldNEQ(FieldMembershipID, v))
}

// MembershipIDIn applies the In predicate on the "membership_id" field.
func MembershipIDIn(vs ...string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldIn(FieldMembershipID, vs...))
}

// MembershipIDNotIn applies the NotIn predicate on the "membership_id" field.
func MembershipIDNotIn(vs ...string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldNotIn(FieldMembershipID, vs...))
}

// MembershipIDGT applies the GT predicate on the "membership_id" field.
func MembershipIDGT(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldGT(FieldMembershipID, v))
}

// MembershipIDGTE applies the GTE predicate on the "membership_id" field.
func MembershipIDGTE(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldGTE(FieldMembershipID, v))
}

// MembershipIDLT applies the LT predicate on the "membership_id" field.
func MembershipIDLT(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldLT(FieldMembershipID, v))
}

// MembershipIDLTE applies the LTE predicate on the "membership_id" field.
func MembershipIDLTE(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldLTE(FieldMembershipID, v))
}

// MembershipIDContains applies the Contains predicate on the "membership_id" field.
func MembershipIDContains(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldContains(FieldMembershipID, v))
}

// MembershipIDHasPrefix applies the HasPrefix predicate on the "membership_id" field.
func MembershipIDHasPrefix(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldHasPrefix(FieldMembershipID, v))
}

// MembershipIDHasSuffix applies the HasSuffix predicate on the "membership_id" field.
func MembershipIDHasSuffix(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldHasSuffix(FieldMembershipID, v))
}

// MembershipIDEqualFold applies the EqualFold predicate on the "membership_id" field.
func MembershipIDEqualFold(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEqualFold(FieldMembershipID, v))
}

// MembershipIDContainsFold applies the ContainsFold predicate on the "membership_id" field.
func MembershipIDContainsFold(v string) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldContainsFold(FieldMembershipID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldLTE(FieldPosition, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.FieldNotIn(FieldStatus, vs...))
}

// HasRound applies the HasEdge predicate on the "round" edge.
func HasRound() predicate.RoundParticipant {
	return predicate.RoundParticipant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoundTable, RoundColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoundWith applies the HasEdge predicate on the "round" edge with a given conditions (other predicates).
func HasRoundWith(preds ...predicate.ConversationRound) predicate.RoundParticipant {
	return predicate.RoundParticipant(func(s *sql.Selector) {
		step := newRoundStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoundParticipant) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoundParticipant) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoundParticipant) predicate.RoundParticipant {
	return predicate.RoundParticipant(sql.NotPredicates(p))
}
