// Code generated by ent, DO NOT EDIT.

package conversationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldConversationID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldReason, v))
}

// SpeakerMembershipID applies equality check predicate on the "speaker_membership_id" field. It's identical to SpeakerMembershipIDEQ.
func SpeakerMembershipID(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldSpeakerMembershipID, v))
}

// RoundID applies equality check predicate on the "round_id" field. It's identical to RoundIDEQ.
func RoundID(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldRoundID, v))
}

// RunAfter applies equality check predicate on the "run_after" field. It's identical to RunAfterEQ.
func RunAfter(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldRunAfter, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldFinishedAt, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldHeartbeatAt, v))
}

// CancelRequestedAt applies equality check predicate on the "cancel_requested_at" field. It's identical to CancelRequestedAtEQ.
func CancelRequestedAt(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldCancelRequestedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldPodID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContainsFold(FieldConversationID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContainsFold(FieldReason, v))
}

// SpeakerMembershipIDEQ applies the EQ predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDEQ(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDNEQ applies the NEQ predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDNEQ(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDIn applies the In predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDIn(vs ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldSpeakerMembershipID, vs...))
}

// SpeakerMembershipIDNotIn applies the NotIn predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDNotIn(vs ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldSpeakerMembershipID, vs...))
}

// SpeakerMembershipIDGT applies the GT predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDGT(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDGTE applies the GTE predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDGTE(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDLT applies the LT predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDLT(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDLTE applies the LTE predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDLTE(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDContains applies the Contains predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDContains(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContains(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDHasPrefix applies the HasPrefix predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDHasPrefix(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldHasPrefix(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDHasSuffix applies the HasSuffix predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDHasSuffix(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldHasSuffix(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDEqualFold applies the EqualFold predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDEqualFold(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEqualFold(FieldSpeakerMembershipID, v))
}

// SpeakerMembershipIDContainsFold applies the ContainsFold predicate on the "speaker_membership_id" field.
func SpeakerMembershipIDContainsFold(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContainsFold(FieldSpeakerMembershipID, v))
}

// RoundIDEQ applies the EQ predicate on the "round_id" field.
func RoundIDEQ(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldRoundID, v))
}

// RoundIDNEQ applies the NEQ predicate on the "round_id" field.
func RoundIDNEQ(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldRoundID, v))
}

// RoundIDIn applies the In predicate on the "round_id" field.
func RoundIDIn(vs ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldRoundID, vs...))
}

// RoundIDNotIn applies the NotIn predicate on the "round_id" field.
func RoundIDNotIn(vs ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldRoundID, vs...))
}

// RoundIDGT applies the GT predicate on the "round_id" field.
func RoundIDGT(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldRoundID, v))
}

// RoundIDGTE applies the GTE predicate on the "round_id" field.
func RoundIDGTE(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldRoundID, v))
}

// RoundIDLT applies the LT predicate on the "round_id" field.
func RoundIDLT(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldRoundID, v))
}

// RoundIDLTE applies the LTE predicate on the "round_id" field.
func RoundIDLTE(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldRoundID, v))
}

// RoundIDContains applies the Contains predicate on the "round_id" field.
func RoundIDContains(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContains(FieldRoundID, v))
}

// RoundIDHasPrefix applies the HasPrefix predicate on the "round_id" field.
func RoundIDHasPrefix(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldHasPrefix(FieldRoundID, v))
}

// RoundIDHasSuffix applies the HasSuffix predicate on the "round_id" field.
func RoundIDHasSuffix(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldHasSuffix(FieldRoundID, v))
}

// RoundIDIsNil applies the IsNil predicate on the "round_id" field.
func RoundIDIsNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIsNull(FieldRoundID))
}

// RoundIDNotNil applies the NotNil predicate on the "round_id" field.
func RoundIDNotNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotNull(FieldRoundID))
}

// RoundIDEqualFold applies the EqualFold predicate on the "round_id" field.
func RoundIDEqualFold(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEqualFold(FieldRoundID, v))
}

// RoundIDContainsFold applies the ContainsFold predicate on the "round_id" field.
func RoundIDContainsFold(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContainsFold(FieldRoundID, v))
}

// RunAfterEQ applies the EQ predicate on the "run_after" field.
func RunAfterEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldRunAfter, v))
}

// RunAfterNEQ applies the NEQ predicate on the "run_after" field.
func RunAfterNEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldRunAfter, v))
}

// RunAfterIn applies the In predicate on the "run_after" field.
func RunAfterIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldRunAfter, vs...))
}

// RunAfterNotIn applies the NotIn predicate on the "run_after" field.
func RunAfterNotIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldRunAfter, vs...))
}

// RunAfterGT applies the GT predicate on the "run_after" field.
func RunAfterGT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldRunAfter, v))
}

// RunAfterGTE applies the GTE predicate on the "run_after" field.
func RunAfterGTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldRunAfter, v))
}

// RunAfterLT applies the LT predicate on the "run_after" field.
func RunAfterLT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldRunAfter, v))
}

// RunAfterLTE applies the LTE predicate on the "run_after" field.
func RunAfterLTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldRunAfter, v))
}

// RunAfterIsNil applies the IsNil predicate on the "run_after" field.
func RunAfterIsNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIsNull(FieldRunAfter))
}

// RunAfterNotNil applies the NotNil predicate on the "run_after" field.
func RunAfterNotNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotNull(FieldRunAfter))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotNull(FieldFinishedAt))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldHeartbeatAt, v))
}

// HeartbeatAtIsNil applies the IsNil predicate on the "heartbeat_at" field.
func HeartbeatAtIsNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIsNull(FieldHeartbeatAt))
}

// HeartbeatAtNotNil applies the NotNil predicate on the "heartbeat_at" field.
func HeartbeatAtNotNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotNull(FieldHeartbeatAt))
}

// CancelRequestedAtEQ applies the EQ predicate on the "cancel_requested_at" field.
func CancelRequestedAtEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldCancelRequestedAt, v))
}

// CancelRequestedAtNEQ applies the NEQ predicate on the "cancel_requested_at" field.
func CancelRequestedAtNEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldCancelRequestedAt, v))
}

// CancelRequestedAtIn applies the In predicate on the "cancel_requested_at" field.
func CancelRequestedAtIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldCancelRequestedAt, vs...))
}

// CancelRequestedAtNotIn applies the NotIn predicate on the "cancel_requested_at" field.
func CancelRequestedAtNotIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldCancelRequestedAt, vs...))
}

// CancelRequestedAtGT applies the GT predicate on the "cancel_requested_at" field.
func CancelRequestedAtGT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldCancelRequestedAt, v))
}

// CancelRequestedAtGTE applies the GTE predicate on the "cancel_requested_at" field.
func CancelRequestedAtGTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldCancelRequestedAt, v))
}

// CancelRequestedAtLT applies the LT predicate on the "cancel_requested_at" field.
func CancelRequestedAtLT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldCancelRequestedAt, v))
}

// CancelRequestedAtLTE applies the LTE predicate on the "cancel_requested_at" field.
func CancelRequestedAtLTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldCancelRequestedAt, v))
}

// CancelRequestedAtIsNil applies the IsNil predicate on the "cancel_requested_at" field.
func CancelRequestedAtIsNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIsNull(FieldCancelRequestedAt))
}

// CancelRequestedAtNotNil applies the NotNil predicate on the "cancel_requested_at" field.
func CancelRequestedAtNotNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotNull(FieldCancelRequestedAt))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotNull(FieldError))
}

// DebugIsNil applies the IsNil predicate on the "debug" field.
func DebugIsNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIsNull(FieldDebug))
}

// DebugNotNil applies the NotNil predicate on the "debug" field.
func DebugNotNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotNull(FieldDebug))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldContainsFold(FieldPodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConversationRun {
	return predicate.ConversationRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.ConversationRun {
	return predicate.ConversationRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.ConversationRun {
	return predicate.ConversationRun(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSpeaker applies the HasEdge predicate on the "speaker" edge.
func HasSpeaker() predicate.ConversationRun {
	return predicate.ConversationRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SpeakerTable, SpeakerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpeakerWith applies the HasEdge predicate on the "speaker" edge with a given conditions (other predicates).
func HasSpeakerWith(preds ...predicate.SpaceMembership) predicate.ConversationRun {
	return predicate.ConversationRun(func(s *sql.Selector) {
		step := newSpeakerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversationRun) predicate.ConversationRun {
	return predicate.ConversationRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversationRun) predicate.ConversationRun {
	return predicate.ConversationRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversationRun) predicate.ConversationRun {
	return predicate.ConversationRun(sql.NotPredicates(p))
}
