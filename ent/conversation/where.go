// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldID, id))
}

// SpaceID applies equality check predicate on the "space_id" field. It's identical to SpaceIDEQ.
func SpaceID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSpaceID, v))
}

// ParentConversationID applies equality check predicate on the "parent_conversation_id" field. It's identical to ParentConversationIDEQ.
func ParentConversationID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParentConversationID, v))
}

// ForkedFromMessageID applies equality check predicate on the "forked_from_message_id" field. It's identical to ForkedFromMessageIDEQ.
func ForkedFromMessageID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldForkedFromMessageID, v))
}

// GroupQueueRevision applies equality check predicate on the "group_queue_revision" field. It's identical to GroupQueueRevisionEQ.
func GroupQueueRevision(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldGroupQueueRevision, v))
}

// AutoRoundsRemaining applies equality check predicate on the "auto_rounds_remaining" field. It's identical to AutoRoundsRemainingEQ.
func AutoRoundsRemaining(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldAutoRoundsRemaining, v))
}

// PromptTokensTotal applies equality check predicate on the "prompt_tokens_total" field. It's identical to PromptTokensTotalEQ.
func PromptTokensTotal(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldPromptTokensTotal, v))
}

// CompletionTokensTotal applies equality check predicate on the "completion_tokens_total" field. It's identical to CompletionTokensTotalEQ.
func CompletionTokensTotal(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCompletionTokensTotal, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// SpaceIDEQ applies the EQ predicate on the "space_id" field.
func SpaceIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSpaceID, v))
}

// SpaceIDNEQ applies the NEQ predicate on the "space_id" field.
func SpaceIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldSpaceID, v))
}

// SpaceIDIn applies the In predicate on the "space_id" field.
func SpaceIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldSpaceID, vs...))
}

// SpaceIDNotIn applies the NotIn predicate on the "space_id" field.
func SpaceIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldSpaceID, vs...))
}

// SpaceIDGT applies the GT predicate on the "space_id" field.
func SpaceIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldSpaceID, v))
}

// SpaceIDGTE applies the GTE predicate on the "space_id" field.
func SpaceIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldSpaceID, v))
}

// SpaceIDLT applies the LT predicate on the "space_id" field.
func SpaceIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldSpaceID, v))
}

// SpaceIDLTE applies the LTE predicate on the "space_id" field.
func SpaceIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldSpaceID, v))
}

// SpaceIDContains applies the Contains predicate on the "space_id" field.
func SpaceIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldSpaceID, v))
}

// SpaceIDHasPrefix applies the HasPrefix predicate on the "space_id" field.
func SpaceIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldSpaceID, v))
}

// SpaceIDHasSuffix applies the HasSuffix predicate on the "space_id" field.
func SpaceIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldSpaceID, v))
}

// SpaceIDEqualFold applies the EqualFold predicate on the "space_id" field.
func SpaceIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldSpaceID, v))
}

// SpaceIDContainsFold applies the ContainsFold predicate on the "space_id" field.
func SpaceIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldSpaceID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldKind, vs...))
}

// ParentConversationIDEQ applies the EQ predicate on the "parent_conversation_id" field.
func ParentConversationIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParentConversationID, v))
}

// ParentConversationIDNEQ applies the NEQ predicate on the "parent_conversation_id" field.
func ParentConversationIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldParentConversationID, v))
}

// ParentConversationIDIn applies the In predicate on the "parent_conversation_id" field.
func ParentConversationIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldParentConversationID, vs...))
}

// ParentConversationIDNotIn applies the NotIn predicate on the "parent_conversation_id" field.
func ParentConversationIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldParentConversationID, vs...))
}

// ParentConversationIDGT applies the GT predicate on the "parent_conversation_id" field.
func ParentConversationIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldParentConversationID, v))
}

// ParentConversationIDGTE applies the GTE predicate on the "parent_conversation_id" field.
func ParentConversationIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldParentConversationID, v))
}

// ParentConversationIDLT applies the LT predicate on the "parent_conversation_id" field.
func ParentConversationIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldParentConversationID, v))
}

// ParentConversationIDLTE applies the LTE predicate on the "parent_conversation_id" field.
func ParentConversationIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldParentConversationID, v))
}

// ParentConversationIDContains applies the Contains predicate on the "parent_conversation_id" field.
func ParentConversationIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldParentConversationID, v))
}

// ParentConversationIDHasPrefix applies the HasPrefix predicate on the "parent_conversation_id" field.
func ParentConversationIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldParentConversationID, v))
}

// ParentConversationIDHasSuffix applies the HasSuffix predicate on the "parent_conversation_id" field.
func ParentConversationIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldParentConversationID, v))
}

// ParentConversationIDIsNil applies the IsNil predicate on the "parent_conversation_id" field.
func ParentConversationIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldParentConversationID))
}

// ParentConversationIDNotNil applies the NotNil predicate on the "parent_conversation_id" field.
func ParentConversationIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldParentConversationID))
}

// ParentConversationIDEqualFold applies the EqualFold predicate on the "parent_conversation_id" field.
func ParentConversationIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldParentConversationID, v))
}

// ParentConversationIDContainsFold applies the ContainsFold predicate on the "parent_conversation_id" field.
func ParentConversationIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldParentConversationID, v))
}

// ForkedFromMessageIDEQ applies the EQ predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldForkedFromMessageID, v))
}

// ForkedFromMessageIDNEQ applies the NEQ predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldForkedFromMessageID, v))
}

// ForkedFromMessageIDIn applies the In predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldForkedFromMessageID, vs...))
}

// ForkedFromMessageIDNotIn applies the NotIn predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldForkedFromMessageID, vs...))
}

// ForkedFromMessageIDGT applies the GT predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldForkedFromMessageID, v))
}

// ForkedFromMessageIDGTE applies the GTE predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldForkedFromMessageID, v))
}

// ForkedFromMessageIDLT applies the LT predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldForkedFromMessageID, v))
}

// ForkedFromMessageIDLTE applies the LTE predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldForkedFromMessageID, v))
}

// ForkedFromMessageIDContains applies the Contains predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldForkedFromMessageID, v))
}

// ForkedFromMessageIDHasPrefix applies the HasPrefix predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldForkedFromMessageID, v))
}

// ForkedFromMessageIDHasSuffix applies the HasSuffix predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldForkedFromMessageID, v))
}

// ForkedFromMessageIDIsNil applies the IsNil predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldForkedFromMessageID))
}

// ForkedFromMessageIDNotNil applies the NotNil predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldForkedFromMessageID))
}

// ForkedFromMessageIDEqualFold applies the EqualFold predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldForkedFromMessageID, v))
}

// ForkedFromMessageIDContainsFold applies the ContainsFold predicate on the "forked_from_message_id" field.
func ForkedFromMessageIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldForkedFromMessageID, v))
}

// SchedulingStateEQ applies the EQ predicate on the "scheduling_state" field.
func SchedulingStateEQ(v SchedulingState) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldSchedulingState, v))
}

// SchedulingStateNEQ applies the NEQ predicate on the "scheduling_state" field.
func SchedulingStateNEQ(v SchedulingState) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldSchedulingState, v))
}

// SchedulingStateIn applies the In predicate on the "scheduling_state" field.
func SchedulingStateIn(vs ...SchedulingState) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldSchedulingState, vs...))
}

// SchedulingStateNotIn applies the NotIn predicate on the "scheduling_state" field.
func SchedulingStateNotIn(vs ...SchedulingState) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldSchedulingState, vs...))
}

// GroupQueueRevisionEQ applies the EQ predicate on the "group_queue_revision" field.
func GroupQueueRevisionEQ(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldGroupQueueRevision, v))
}

// GroupQueueRevisionNEQ applies the NEQ predicate on the "group_queue_revision" field.
func GroupQueueRevisionNEQ(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldGroupQueueRevision, v))
}

// GroupQueueRevisionIn applies the In predicate on the "group_queue_revision" field.
func GroupQueueRevisionIn(vs ...int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldGroupQueueRevision, vs...))
}

// GroupQueueRevisionNotIn applies the NotIn predicate on the "group_queue_revision" field.
func GroupQueueRevisionNotIn(vs ...int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldGroupQueueRevision, vs...))
}

// GroupQueueRevisionGT applies the GT predicate on the "group_queue_revision" field.
func GroupQueueRevisionGT(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldGroupQueueRevision, v))
}

// GroupQueueRevisionGTE applies the GTE predicate on the "group_queue_revision" field.
func GroupQueueRevisionGTE(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldGroupQueueRevision, v))
}

// GroupQueueRevisionLT applies the LT predicate on the "group_queue_revision" field.
func GroupQueueRevisionLT(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldGroupQueueRevision, v))
}

// GroupQueueRevisionLTE applies the LTE predicate on the "group_queue_revision" field.
func GroupQueueRevisionLTE(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldGroupQueueRevision, v))
}

// AutoRoundsRemainingEQ applies the EQ predicate on the "auto_rounds_remaining" field.
func AutoRoundsRemainingEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldAutoRoundsRemaining, v))
}

// AutoRoundsRemainingNEQ applies the NEQ predicate on the "auto_rounds_remaining" field.
func AutoRoundsRemainingNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldAutoRoundsRemaining, v))
}

// AutoRoundsRemainingIn applies the In predicate on the "auto_rounds_remaining" field.
func AutoRoundsRemainingIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldAutoRoundsRemaining, vs...))
}

// AutoRoundsRemainingNotIn applies the NotIn predicate on the "auto_rounds_remaining" field.
func AutoRoundsRemainingNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldAutoRoundsRemaining, vs...))
}

// AutoRoundsRemainingGT applies the GT predicate on the "auto_rounds_remaining" field.
func AutoRoundsRemainingGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldAutoRoundsRemaining, v))
}

// AutoRoundsRemainingGTE applies the GTE predicate on the "auto_rounds_remaining" field.
func AutoRoundsRemainingGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldAutoRoundsRemaining, v))
}

// AutoRoundsRemainingLT applies the LT predicate on the "auto_rounds_remaining" field.
func AutoRoundsRemainingLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldAutoRoundsRemaining, v))
}

// AutoRoundsRemainingLTE applies the LTE predicate on the "auto_rounds_remaining" field.
func AutoRoundsRemainingLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldAutoRoundsRemaining, v))
}

// PromptTokensTotalEQ applies the EQ predicate on the "prompt_tokens_total" field.
func PromptTokensTotalEQ(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldPromptTokensTotal, v))
}

// PromptTokensTotalNEQ applies the NEQ predicate on the "prompt_tokens_total" field.
func PromptTokensTotalNEQ(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldPromptTokensTotal, v))
}

// PromptTokensTotalIn applies the In predicate on the "prompt_tokens_total" field.
func PromptTokensTotalIn(vs ...int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldPromptTokensTotal, vs...))
}

// PromptTokensTotalNotIn applies the NotIn predicate on the "prompt_tokens_total" field.
func PromptTokensTotalNotIn(vs ...int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldPromptTokensTotal, vs...))
}

// PromptTokensTotalGT applies the GT predicate on the "prompt_tokens_total" field.
func PromptTokensTotalGT(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldPromptTokensTotal, v))
}

// PromptTokensTotalGTE applies the GTE predicate on the "prompt_tokens_total" field.
func PromptTokensTotalGTE(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldPromptTokensTotal, v))
}

// PromptTokensTotalLT applies the LT predicate on the "prompt_tokens_total" field.
func PromptTokensTotalLT(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldPromptTokensTotal, v))
}

// PromptTokensTotalLTE applies the LTE predicate on the "prompt_tokens_total" field.
func PromptTokensTotalLTE(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldPromptTokensTotal, v))
}

// CompletionTokensTotalEQ applies the EQ predicate on the "completion_tokens_total" field.
func CompletionTokensTotalEQ(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCompletionTokensTotal, v))
}

// CompletionTokensTotalNEQ applies the NEQ predicate on the "completion_tokens_total" field.
func CompletionTokensTotalNEQ(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCompletionTokensTotal, v))
}

// CompletionTokensTotalIn applies the In predicate on the "completion_tokens_total" field.
func CompletionTokensTotalIn(vs ...int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCompletionTokensTotal, vs...))
}

// CompletionTokensTotalNotIn applies the NotIn predicate on the "completion_tokens_total" field.
func CompletionTokensTotalNotIn(vs ...int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCompletionTokensTotal, vs...))
}

// CompletionTokensTotalGT applies the GT predicate on the "completion_tokens_total" field.
func CompletionTokensTotalGT(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCompletionTokensTotal, v))
}

// CompletionTokensTotalGTE applies the GTE predicate on the "completion_tokens_total" field.
func CompletionTokensTotalGTE(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCompletionTokensTotal, v))
}

// CompletionTokensTotalLT applies the LT predicate on the "completion_tokens_total" field.
func CompletionTokensTotalLT(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCompletionTokensTotal, v))
}

// CompletionTokensTotalLTE applies the LTE predicate on the "completion_tokens_total" field.
func CompletionTokensTotalLTE(v int64) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCompletionTokensTotal, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSpace applies the HasEdge predicate on the "space" edge.
func HasSpace() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SpaceTable, SpaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpaceWith applies the HasEdge predicate on the "space" edge with a given conditions (other predicates).
func HasSpaceWith(preds ...predicate.Space) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newSpaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.ConversationRun) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRounds applies the HasEdge predicate on the "rounds" edge.
func HasRounds() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RoundsTable, RoundsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoundsWith applies the HasEdge predicate on the "rounds" edge with a given conditions (other predicates).
func HasRoundsWith(preds ...predicate.ConversationRound) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newRoundsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
