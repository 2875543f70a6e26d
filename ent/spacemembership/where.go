// Code generated by ent, DO NOT EDIT.

package spacemembership

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldContainsFold(FieldID, id))
}

// SpaceID applies equality check predicate on the "space_id" field. It's identical to SpaceIDEQ.
func SpaceID(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldSpaceID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldDisplayName, v))
}

// AvatarURL applies equality check predicate on the "avatar_url" field. It's identical to AvatarURLEQ.
func AvatarURL(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldAvatarURL, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldPosition, v))
}

// Talkativeness applies equality check predicate on the "talkativeness" field. It's identical to TalkativenessEQ.
func Talkativeness(v float64) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldTalkativeness, v))
}

// CopilotRemainingSteps applies equality check predicate on the "copilot_remaining_steps" field. It's identical to CopilotRemainingStepsEQ.
func CopilotRemainingSteps(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldCopilotRemainingSteps, v))
}

// BoundCharacterID applies equality check predicate on the "bound_character_id" field. It's identical to BoundCharacterIDEQ.
func BoundCharacterID(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldBoundCharacterID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldUpdatedAt, v))
}

// SpaceIDEQ applies the EQ predicate on the "space_id" field.
func SpaceIDEQ(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldSpaceID, v))
}

// SpaceIDNEQ applies the NEQ predicate on the "space_id" field.
func SpaceIDNEQ(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldSpaceID, v))
}

// SpaceIDIn applies the In predicate on the "space_id" field.
func SpaceIDIn(vs ...string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldSpaceID, vs...))
}

// SpaceIDNotIn applies the NotIn predicate on the "space_id" field.
func SpaceIDNotIn(vs ...string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldSpaceID, vs...))
}

// SpaceIDGT applies the GT predicate on the "space_id" field.
func SpaceIDGT(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGT(FieldSpaceID, v))
}

// SpaceIDGTE applies the GTE predicate on the "space_id" field.
func SpaceIDGTE(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGTE(FieldSpaceID, v))
}

// SpaceIDLT applies the LT predicate on the "space_id" field.
func SpaceIDLT(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLT(FieldSpaceID, v))
}

// SpaceIDLTE applies the LTE predicate on the "space_id" field.
func SpaceIDLTE(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLTE(FieldSpaceID, v))
}

// SpaceIDContains applies the Contains predicate on the "space_id" field.
func SpaceIDContains(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldContains(FieldSpaceID, v))
}

// SpaceIDHasPrefix applies the HasPrefix predicate on the "space_id" field.
func SpaceIDHasPrefix(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldHasPrefix(FieldSpaceID, v))
}

// SpaceIDHasSuffix applies the HasSuffix predicate on the "space_id" field.
func SpaceIDHasSuffix(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldHasSuffix(FieldSpaceID, v))
}

// SpaceIDEqualFold applies the EqualFold predicate on the "space_id" field.
func SpaceIDEqualFold(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEqualFold(FieldSpaceID, v))
}

// SpaceIDContainsFold applies the ContainsFold predicate on the "space_id" field.
func SpaceIDContainsFold(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldContainsFold(FieldSpaceID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldKind, vs...))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldContainsFold(FieldDisplayName, v))
}

// AvatarURLEQ applies the EQ predicate on the "avatar_url" field.
func AvatarURLEQ(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldAvatarURL, v))
}

// AvatarURLNEQ applies the NEQ predicate on the "avatar_url" field.
func AvatarURLNEQ(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldAvatarURL, v))
}

// AvatarURLIn applies the In predicate on the "avatar_url" field.
func AvatarURLIn(vs ...string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldAvatarURL, vs...))
}

// AvatarURLNotIn applies the NotIn predicate on the "avatar_url" field.
func AvatarURLNotIn(vs ...string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldAvatarURL, vs...))
}

// AvatarURLGT applies the GT predicate on the "avatar_url" field.
func AvatarURLGT(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGT(FieldAvatarURL, v))
}

// AvatarURLGTE applies the GTE predicate on the "avatar_url" field.
func AvatarURLGTE(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGTE(FieldAvatarURL, v))
}

// AvatarURLLT applies the LT predicate on the "avatar_url" field.
func AvatarURLLT(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLT(FieldAvatarURL, v))
}

// AvatarURLLTE applies the LTE predicate on the "avatar_url" field.
func AvatarURLLTE(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLTE(FieldAvatarURL, v))
}

// AvatarURLContains applies the Contains predicate on the "avatar_url" field.
func AvatarURLContains(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldContains(FieldAvatarURL, v))
}

// AvatarURLHasPrefix applies the HasPrefix predicate on the "avatar_url" field.
func AvatarURLHasPrefix(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldHasPrefix(FieldAvatarURL, v))
}

// AvatarURLHasSuffix applies the HasSuffix predicate on the "avatar_url" field.
func AvatarURLHasSuffix(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldHasSuffix(FieldAvatarURL, v))
}

// AvatarURLIsNil applies the IsNil predicate on the "avatar_url" field.
func AvatarURLIsNil() predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIsNull(FieldAvatarURL))
}

// AvatarURLNotNil applies the NotNil predicate on the "avatar_url" field.
func AvatarURLNotNil() predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotNull(FieldAvatarURL))
}

// AvatarURLEqualFold applies the EqualFold predicate on the "avatar_url" field.
func AvatarURLEqualFold(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEqualFold(FieldAvatarURL, v))
}

// AvatarURLContainsFold applies the ContainsFold predicate on the "avatar_url" field.
func AvatarURLContainsFold(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldContainsFold(FieldAvatarURL, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLTE(FieldPosition, v))
}

// ParticipationEQ applies the EQ predicate on the "participation" field.
func ParticipationEQ(v Participation) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldParticipation, v))
}

// ParticipationNEQ applies the NEQ predicate on the "participation" field.
func ParticipationNEQ(v Participation) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldParticipation, v))
}

// ParticipationIn applies the In predicate on the "participation" field.
func ParticipationIn(vs ...Participation) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldParticipation, vs...))
}

// ParticipationNotIn applies the NotIn predicate on the "participation" field.
func ParticipationNotIn(vs ...Participation) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldParticipation, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldStatus, vs...))
}

// TalkativenessEQ applies the EQ predicate on the "talkativeness" field.
func TalkativenessEQ(v float64) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldTalkativeness, v))
}

// TalkativenessNEQ applies the NEQ predicate on the "talkativeness" field.
func TalkativenessNEQ(v float64) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldTalkativeness, v))
}

// TalkativenessIn applies the In predicate on the "talkativeness" field.
func TalkativenessIn(vs ...float64) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldTalkativeness, vs...))
}

// TalkativenessNotIn applies the NotIn predicate on the "talkativeness" field.
func TalkativenessNotIn(vs ...float64) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldTalkativeness, vs...))
}

// TalkativenessGT applies the GT predicate on the "talkativeness" field.
func TalkativenessGT(v float64) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGT(FieldTalkativeness, v))
}

// TalkativenessGTE applies the GTE predicate on the "talkativeness" field.
func TalkativenessGTE(v float64) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGTE(FieldTalkativeness, v))
}

// TalkativenessLT applies the LT predicate on the "talkativeness" field.
func TalkativenessLT(v float64) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLT(FieldTalkativeness, v))
}

// TalkativenessLTE applies the LTE predicate on the "talkativeness" field.
func TalkativenessLTE(v float64) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLTE(FieldTalkativeness, v))
}

// TalkativenessIsNil applies the IsNil predicate on the "talkativeness" field.
func TalkativenessIsNil() predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIsNull(FieldTalkativeness))
}

// TalkativenessNotNil applies the NotNil predicate on the "talkativeness" field.
func TalkativenessNotNil() predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotNull(FieldTalkativeness))
}

// CopilotModeEQ applies the EQ predicate on the "copilot_mode" field.
func CopilotModeEQ(v CopilotMode) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldCopilotMode, v))
}

// CopilotModeNEQ applies the NEQ predicate on the "copilot_mode" field.
func CopilotModeNEQ(v CopilotMode) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldCopilotMode, v))
}

// CopilotModeIn applies the In predicate on the "copilot_mode" field.
func CopilotModeIn(vs ...CopilotMode) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldCopilotMode, vs...))
}

// CopilotModeNotIn applies the NotIn predicate on the "copilot_mode" field.
func CopilotModeNotIn(vs ...CopilotMode) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldCopilotMode, vs...))
}

// CopilotRemainingStepsEQ applies the EQ predicate on the "copilot_remaining_steps" field.
func CopilotRemainingStepsEQ(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldCopilotRemainingSteps, v))
}

// CopilotRemainingStepsNEQ applies the NEQ predicate on the "copilot_remaining_steps" field.
func CopilotRemainingStepsNEQ(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldCopilotRemainingSteps, v))
}

// CopilotRemainingStepsIn applies the In predicate on the "copilot_remaining_steps" field.
func CopilotRemainingStepsIn(vs ...int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldCopilotRemainingSteps, vs...))
}

// CopilotRemainingStepsNotIn applies the NotIn predicate on the "copilot_remaining_steps" field.
func CopilotRemainingStepsNotIn(vs ...int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldCopilotRemainingSteps, vs...))
}

// CopilotRemainingStepsGT applies the GT predicate on the "copilot_remaining_steps" field.
func CopilotRemainingStepsGT(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGT(FieldCopilotRemainingSteps, v))
}

// CopilotRemainingStepsGTE applies the GTE predicate on the "copilot_remaining_steps" field.
func CopilotRemainingStepsGTE(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGTE(FieldCopilotRemainingSteps, v))
}

// CopilotRemainingStepsLT applies the LT predicate on the "copilot_remaining_steps" field.
func CopilotRemainingStepsLT(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLT(FieldCopilotRemainingSteps, v))
}

// CopilotRemainingStepsLTE applies the LTE predicate on the "copilot_remaining_steps" field.
func CopilotRemainingStepsLTE(v int) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLTE(FieldCopilotRemainingSteps, v))
}

// BoundCharacterIDEQ applies the EQ predicate on the "bound_character_id" field.
func BoundCharacterIDEQ(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldBoundCharacterID, v))
}

// BoundCharacterIDNEQ applies the NEQ predicate on the "bound_character_id" field.
func BoundCharacterIDNEQ(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldBoundCharacterID, v))
}

// BoundCharacterIDIn applies the In predicate on the "bound_character_id" field.
func BoundCharacterIDIn(vs ...string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldBoundCharacterID, vs...))
}

// BoundCharacterIDNotIn applies the NotIn predicate on the "bound_character_id" field.
func BoundCharacterIDNotIn(vs ...string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldBoundCharacterID, vs...))
}

// BoundCharacterIDGT applies the GT predicate on the "bound_character_id" field.
func BoundCharacterIDGT(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGT(FieldBoundCharacterID, v))
}

// BoundCharacterIDGTE applies the GTE predicate on the "bound_character_id" field.
func BoundCharacterIDGTE(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGTE(FieldBoundCharacterID, v))
}

// BoundCharacterIDLT applies the LT predicate on the "bound_character_id" field.
func BoundCharacterIDLT(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLT(FieldBoundCharacterID, v))
}

// BoundCharacterIDLTE applies the LTE predicate on the "bound_character_id" field.
func BoundCharacterIDLTE(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLTE(FieldBoundCharacterID, v))
}

// BoundCharacterIDContains applies the Contains predicate on the "bound_character_id" field.
func BoundCharacterIDContains(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldContains(FieldBoundCharacterID, v))
}

// BoundCharacterIDHasPrefix applies the HasPrefix predicate on the "bound_character_id" field.
func BoundCharacterIDHasPrefix(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldHasPrefix(FieldBoundCharacterID, v))
}

// BoundCharacterIDHasSuffix applies the HasSuffix predicate on the "bound_character_id" field.
func BoundCharacterIDHasSuffix(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldHasSuffix(FieldBoundCharacterID, v))
}

// BoundCharacterIDIsNil applies the IsNil predicate on the "bound_character_id" field.
func BoundCharacterIDIsNil() predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIsNull(FieldBoundCharacterID))
}

// BoundCharacterIDNotNil applies the NotNil predicate on the "bound_character_id" field.
func BoundCharacterIDNotNil() predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotNull(FieldBoundCharacterID))
}

// BoundCharacterIDEqualFold applies the EqualFold predicate on the "bound_character_id" field.
func BoundCharacterIDEqualFold(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEqualFold(FieldBoundCharacterID, v))
}

// BoundCharacterIDContainsFold applies the ContainsFold predicate on the "bound_character_id" field.
func BoundCharacterIDContainsFold(v string) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldContainsFold(FieldBoundCharacterID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSpace applies the HasEdge predicate on the "space" edge.
func HasSpace() predicate.SpaceMembership {
	return predicate.SpaceMembership(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SpaceTable, SpaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpaceWith applies the HasEdge predicate on the "space" edge with a given conditions (other predicates).
func HasSpaceWith(preds ...predicate.Space) predicate.SpaceMembership {
	return predicate.SpaceMembership(func(s *sql.Selector) {
		step := newSpaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.SpaceMembership {
	return predicate.SpaceMembership(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.ConversationRun) predicate.SpaceMembership {
	return predicate.SpaceMembership(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SpaceMembership) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SpaceMembership) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SpaceMembership) predicate.SpaceMembership {
	return predicate.SpaceMembership(sql.NotPredicates(p))
}
