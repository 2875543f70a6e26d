// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldConversationID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSeq, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// TextContentID applies equality check predicate on the "text_content_id" field. It's identical to TextContentIDEQ.
func TextContentID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTextContentID, v))
}

// ActiveSwipeID applies equality check predicate on the "active_swipe_id" field. It's identical to ActiveSwipeIDEQ.
func ActiveSwipeID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldActiveSwipeID, v))
}

// SwipesCount applies equality check predicate on the "swipes_count" field. It's identical to SwipesCountEQ.
func SwipesCount(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSwipesCount, v))
}

// SpeakerMembershipID applies equality check predicate on the "speaker_membership_id" field. It's identical to SpeakerMembershipIDEQ.
func SpeakerMembershipID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSpeakerMembershipID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRunID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldConversationID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSeq, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldRole, vs...))
}

// VisibilityEQ applies the EQ predicate on the "visibility" field.
func VisibilityEQ(v Visibility) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldVisibility, v))
}

// VisibilityNEQ applies the NEQ predicate on the "visibility" field.
func VisibilityNEQ(v Visibility) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldVisibility, v))
}

// VisibilityIn applies the In predicate on the "visibility" field.
func VisibilityIn(vs ...Visibility) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldVisibility, vs...))
}

// VisibilityNotIn applies the NotIn predicate on the "visibility" field.
func VisibilityNotIn(vs ...Visibility) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldVisibility, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldContent, v))
}

// TextContentIDEQ applies the EQ predicate on the "text_content_id" field.
func TextContentIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTextContentID, v))
}

// TextContentIDNEQ applies the NEQ predicate on the "text_content_id" field.
func TextContentIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldTextContentID, v))
}

// TextContentIDIn applies the In predicate on the "text_content_id" field.
func TextContentIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldTextContentID, vs...))
}

// TextContentIDNotIn applies the NotIn predicate on the "text_content_id" field.
func TextContentIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldTextContentID, vs...))
}

// TextContentIDGT applies the GT predicate on the "text_content_id" field.
func TextContentIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldTextContentID, v))
}

// TextContentIDGTE applies the GTE predicate on the "text_content_id" field.
func TextContentIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldTextContentID, v))
}

// TextContentIDLT applies the LT predicate on the "text_content_id" field.
func TextContentIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldTextContentID, v))
}

// TextContentIDLTE applies the LTE predicate on the "text_content_id" field.
func TextContentIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldTextContentID, v))
}

// TextContentIDContains applies the Contains predicate on the "text_content_id" field.
func TextContentIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldTextContentID, v))
}

// TextContentIDHasPrefix applies the HasPrefix predicate on the "text_content_id" field.
func TextContentIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldTextContentID, v))
}

// TextContentIDHasSuffix applies the HasSuffix predicate on the "text_content_id" field.
func TextContentIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldTextContentID, v))
}

// TextContentIDIsNil applies the IsNil predicate on the "text_content_id" field.
func TextContentIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldTextContentID))
}

// TextContentIDNotNil applies the NotNil predicate on the "text_content_id" field.
func TextContentIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldTextContentID))
}

// TextContentIDEqualFold applies the EqualFold predicate on the "text_content_id" field.
func TextContentIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldTextContentID, v))
}

// TextContentIDContainsFold applies the ContainsFold predicate on the "text_content_id" field.
func TextContentIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldTextContentID, v))
}

// ActiveSwipeIDEQ applies the EQ predicate on the "active_swipe_id" field.
func ActiveSwipeIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldActiveSwipeID, v))
}

// ActiveSwipeIDNEQ applies the NEQ predicate on the "active_swipe_id" field.
func ActiveSwipeIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldActiveSwipeID, v))
}

// ActiveSwipeIDIn applies the In predicate on the "active_swipe_id" field.
func ActiveSwipeIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldActiveSwipeID, vs...))
}

// ActiveSwipeIDNotIn applies the NotIn predicate on the "active_swipe_id" field.
func ActiveSwipeIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldActiveSwipeID, vs...))
}

// ActiveSwipeIDGT applies the GT predicate on the "active_swipe_id" field.
func ActiveSwipeIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldActiveSwipeID, v))
}

// ActiveSwipeIDGTE applies the GTE predicate on the "active_swipe_id" field.
func ActiveSwipeIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldActiveSwipeID, v))
}

// ActiveSwipeIDLT applies the LT predicate on the "active_swipe_id" field.
func ActiveSwipeIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldActiveSwipeID, v))
}

// ActiveSwipeIDLTE applies the LTE predicate on the "active_swipe_id" field.
func ActiveSwipeIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldActiveSwipeID, v))
}

// ActiveSwipeIDContains applies the Contains predicate on the "active_swipe_id" field.
func ActiveSwipeIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldActiveSwipeID, v))
}

// ActiveSwipeIDHasPrefix applies the HasPrefix predicate on the "active_swipe_id" field.
func ActiveSwipeIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldActiveSwipeID, v))
}

// ActiveSwipeIDHasSuffix applies the HasSuffix predicate on the "active_swipe_id" field.
func ActiveSwipeIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldActiveSwipeID, v))
}

// ActiveSwipeIDIsNil applies the IsNil predicate on the "active_swipe_id" field.
func ActiveSwipeIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldActiveSwipeID))
}

// ActiveSwipeIDNotNil applies the NotNil predicate on the "active_swipe_id" field.
func ActiveSwipeIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldActiveSwipeID))
}

// ActiveSwipeIDEqualFold applies the EqualFold predicate on the "active_swipe_id" field.
func ActiveSwipeIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldActiveSwipeID, v))
}

// ActiveSwipeIDContainsFold applies the ContainsFold predicate on the "active_swipe_id" field.
func ActiveSwipeIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldActiveSwipeID, v))
}

// SwipesCountEQ applies the EQ predicate on the "swipes_count" field.
func SwipesCountEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSwipesCount, v))
}

// SwipesCountNEQ applies the NEQ predicate on the "swipes_count" field.
func SwipesCountNEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSwipesCount, v))
}

// SwipesCountIn applies the In predicate on the "swipes_count" field.
func SwipesCountIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSwipesCount, vs...))
}

// SwipesCountNotIn applies the NotIn predicate on the "swipes_count" field.
func SwipesCountNotIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSwipesCount, vs...))
}

// SwipesCountGT applies the GT predicate on the "swipes_count" field.
func SwipesCountGT(v int) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSwipesCount, v))
}

// SwipesCountGTE applies the GTE predicate on the "swipes_count" field.
func SwipesCountGTE(v int) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSwipesCount, v))
}

// SwipesCountLT applies the LT predicate on the "swipes_count" field.
func SwipesCountLT(v int) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSwipesCount, v))
}

// SwipesCountLTE applies the LTE predicate on the "swipes_count" field.
func SwipesCountLTE(v int) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSwipesCount, v))
}

// SpeakerMembershipIDEQ applies the EQ predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDNEQ applies the NEQ predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDIn applies the In predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSpeakerMembershipID, vs...))
}

// SpeakerMembershipIDNotIn applies the NotIn predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSpeakerMembershipID, vs...))
}

// SpeakerMembershipIDGT applies the GT predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDGTE applies the GTE predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDLT applies the LT predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDLTE applies the LTE predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDContains applies the Contains predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDHasPrefix applies the HasPrefix predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDHasSuffix applies the HasSuffix predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDIsNil applies the IsNil predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldSpeakerMembershipID))
}

// SpeakerMembershipIDNotNil applies the NotNil predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldSpeakerMembershipID))
}

// SpeakerMembershipIDEqualFold applies the EqualFold predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDContainsFold applies the ContainsFold predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSpeakerMembershipID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldRunID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSwipes applies the HasEdge predicate on the "swipes" edge.
func HasSwipes() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SwipesTable, SwipesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSwipesWith applies the HasEdge predicate on the "swipes" edge with a given conditions (other predicates).
func HasSwipesWith(preds ...predicate.MessageSwipe) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newSwipesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
