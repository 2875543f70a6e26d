// Code generated by ent, DO NOT EDIT.

package conversationround

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldConversationID, v))
}

// CurrentPosition applies equality check predicate on the "current_position" field. It's identical to CurrentPositionEQ.
func CurrentPosition(v int) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldCurrentPosition, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldCompletedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldContainsFold(FieldConversationID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNotIn(FieldStatus, vs...))
}

// SchedulingStateEQ applies the EQ predicate on the "scheduling_state" field.
func SchedulingStateEQ(v SchedulingState) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldSchedulingState, v))
}

// SchedulingStateNEQ applies the NEQ predicate on the "scheduling_state" field.
func SchedulingStateNEQ(v SchedulingState) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNEQ(FieldSchedulingState, v))
}

// SchedulingStateIn applies the In predicate on the "scheduling_state" field.
func SchedulingStateIn(vs ...SchedulingState) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldIn(FieldSchedulingState, vs...))
}

// SchedulingStateNotIn applies the NotIn predicate on the "scheduling_state" field.
func SchedulingStateNotIn(vs ...SchedulingState) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNotIn(FieldSchedulingState, vs...))
}

// CurrentPositionEQ applies the EQ predicate on the "current_position" field.
func CurrentPositionEQ(v int) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldCurrentPosition, v))
}

// CurrentPositionNEQ applies the NEQ predicate on the "current_position" field.
func CurrentPositionNEQ(v int) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNEQ(FieldCurrentPosition, v))
}

// CurrentPositionIn applies the In predicate on the "current_position" field.
func CurrentPositionIn(vs ...int) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldIn(FieldCurrentPosition, vs...))
}

// CurrentPositionNotIn applies the NotIn predicate on the "current_position" field.
func CurrentPositionNotIn(vs ...int) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNotIn(FieldCurrentPosition, vs...))
}

// CurrentPositionGT applies the GT predicate on the "current_position" field.
func CurrentPositionGT(v int) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldGT(FieldCurrentPosition, v))
}

// CurrentPositionGTE applies the GTE predicate on the "current_position" field.
func CurrentPositionGTE(v int) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldGTE(FieldCurrentPosition, v))
}

// CurrentPositionLT applies the LT predicate on the "current_position" field.
func CurrentPositionLT(v int) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldLT(FieldCurrentPosition, v))
}

// CurrentPositionLTE applies the LTE predicate on the "current_position" field.
func CurrentPositionLTE(v int) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldLTE(FieldCurrentPosition, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ConversationRound {
	return predicate.ConversationRound(sql.FieldNotNull(FieldCompletedAt))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.ConversationRound {
	return predicate.ConversationRound(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.ConversationRound {
	return predicate.ConversationRound(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipants applies the HasEdge predicate on the "participants" edge.
func HasParticipants() predicate.ConversationRound {
	return predicate.ConversationRound(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantsWith applies the HasEdge predicate on the "participants" edge with a given conditions (other predicates).
func HasParticipantsWith(preds ...predicate.RoundParticipant) predicate.ConversationRound {
	return predicate.ConversationRound(func(s *sql.Selector) {
		step := newParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversationRound) predicate.ConversationRound {
	return predicate.ConversationRound(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversationRound) predicate.ConversationRound {
	return predicate.ConversationRound(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversationRound) predicate.ConversationRound {
	return predicate.ConversationRound(sql.NotPredicates(p))
}
