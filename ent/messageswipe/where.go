// Code generated by ent, DO NOT EDIT.

package messageswipe

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldContainsFold(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldMessageID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldPosition, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldContent, v))
}

// TextContentID applies equality check predicate on the "text_content_id" field. It's identical to TextContentIDEQ.
func TextContentID(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldTextContentID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldRunID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldCreatedAt, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldContainsFold(FieldMessageID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLTE(FieldPosition, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldContainsFold(FieldContent, v))
}

// TextContentIDEQ applies the EQ predicate on the "text_content_id" field.
func TextContentIDEQ(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldTextContentID, v))
}

// TextContentIDNEQ applies the NEQ predicate on the "text_content_id" field.
func TextContentIDNEQ(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNEQ(FieldTextContentID, v))
}

// TextContentIDIn applies the In predicate on the "text_content_id" field.
func TextContentIDIn(vs ...string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldIn(FieldTextContentID, vs...))
}

// TextContentIDNotIn applies the NotIn predicate on the "text_content_id" field.
func TextContentIDNotIn(vs ...string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNotIn(FieldTextContentID, vs...))
}

// TextContentIDGT applies the GT predicate on the "text_content_id" field.
func TextContentIDGT(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGT(FieldTextContentID, v))
}

// TextContentIDGTE applies the GTE predicate on the "text_content_id" field.
func TextContentIDGTE(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGTE(FieldTextContentID, v))
}

// TextContentIDLT applies the LT predicate on the "text_content_id" field.
func TextContentIDLT(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLT(FieldTextContentID, v))
}

// TextContentIDLTE applies the LTE predicate on the "text_content_id" field.
func TextContentIDLTE(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLTE(FieldTextContentID, v))
}

// TextContentIDContains applies the Contains predicate on the "text_content_id" field.
func TextContentIDContains(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldContains(FieldTextContentID, v))
}

// TextContentIDHasPrefix applies the HasPrefix predicate on the "text_content_id" field.
func TextContentIDHasPrefix(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldHasPrefix(FieldTextContentID, v))
}

// TextContentIDHasSuffix applies the HasSuffix predicate on the "text_content_id" field.
func TextContentIDHasSuffix(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldHasSuffix(FieldTextContentID, v))
}

// TextContentIDIsNil applies the IsNil predicate on the "text_content_id" field.
func TextContentIDIsNil() predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldIsNull(FieldTextContentID))
}

// TextContentIDNotNil applies the NotNil predicate on the "text_content_id" field.
func TextContentIDNotNil() predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNotNull(FieldTextContentID))
}

// TextContentIDEqualFold applies the EqualFold predicate on the "text_content_id" field.
func TextContentIDEqualFold(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEqualFold(FieldTextContentID, v))
}

// TextContentIDContainsFold applies the ContainsFold predicate on the "text_content_id" field.
func TextContentIDContainsFold(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldContainsFold(FieldTextContentID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldContainsFold(FieldRunID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMessage applies the HasEdge predicate on the "message" edge.
func HasMessage() predicate.MessageSwipe {
	return predicate.MessageSwipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MessageTable, MessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessageWith applies the HasEdge predicate on the "message" edge with a given conditions (other predicates).
func HasMessageWith(preds ...predicate.Message) predicate.MessageSwipe {
	return predicate.MessageSwipe(func(s *sql.Selector) {
		step := newMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageSwipe) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageSwipe) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageSwipe) predicate.MessageSwipe {
	return predicate.MessageSwipe(sql.NotPredicates(p))
}
