// Code generated by ent, DO NOT EDIT.

package space

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Space {
	return predicate.Space(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Space {
	return predicate.Space(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Space {
	return predicate.Space(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Space {
	return predicate.Space(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Space {
	return predicate.Space(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Space {
	return predicate.Space(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldName, v))
}

// AllowSelfResponses applies equality check predicate on the "allow_self_responses" field. It's identical to AllowSelfResponsesEQ.
func AllowSelfResponses(v bool) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldAllowSelfResponses, v))
}

// AutoModeEnabled applies equality check predicate on the "auto_mode_enabled" field. It's identical to AutoModeEnabledEQ.
func AutoModeEnabled(v bool) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldAutoModeEnabled, v))
}

// AutoModeDelayMs applies equality check predicate on the "auto_mode_delay_ms" field. It's identical to AutoModeDelayMsEQ.
func AutoModeDelayMs(v int) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldAutoModeDelayMs, v))
}

// UserTurnDebounceMs applies equality check predicate on the "user_turn_debounce_ms" field. It's identical to UserTurnDebounceMsEQ.
func UserTurnDebounceMs(v int) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldUserTurnDebounceMs, v))
}

// CardHandlingMode applies equality check predicate on the "card_handling_mode" field. It's identical to CardHandlingModeEQ.
func CardHandlingMode(v string) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldCardHandlingMode, v))
}

// RelaxMessageTrim applies equality check predicate on the "relax_message_trim" field. It's identical to RelaxMessageTrimEQ.
func RelaxMessageTrim(v bool) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldRelaxMessageTrim, v))
}

// TokenLimit applies equality check predicate on the "token_limit" field. It's identical to TokenLimitEQ.
func TokenLimit(v int64) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldTokenLimit, v))
}

// PromptTokensTotal applies equality check predicate on the "prompt_tokens_total" field. It's identical to PromptTokensTotalEQ.
func PromptTokensTotal(v int64) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldPromptTokensTotal, v))
}

// CompletionTokensTotal applies equality check predicate on the "completion_tokens_total" field. It's identical to CompletionTokensTotalEQ.
func CompletionTokensTotal(v int64) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldCompletionTokensTotal, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Space {
	return predicate.Space(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Space {
	return predicate.Space(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Space {
	return predicate.Space(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Space {
	return predicate.Space(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Space {
	return predicate.Space(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Space {
	return predicate.Space(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Space {
	return predicate.Space(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Space {
	return predicate.Space(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Space {
	return predicate.Space(sql.FieldContainsFold(FieldName, v))
}

// ReplyOrderEQ applies the EQ predicate on the "reply_order" field.
func ReplyOrderEQ(v ReplyOrder) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldReplyOrder, v))
}

// ReplyOrderNEQ applies the NEQ predicate on the "reply_order" field.
func ReplyOrderNEQ(v ReplyOrder) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldReplyOrder, v))
}

// ReplyOrderIn applies the In predicate on the "reply_order" field.
func ReplyOrderIn(vs ...ReplyOrder) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldReplyOrder, vs...))
}

// ReplyOrderNotIn applies the NotIn predicate on the "reply_order" field.
func ReplyOrderNotIn(vs ...ReplyOrder) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldReplyOrder, vs...))
}

// AllowSelfResponsesEQ applies the EQ predicate on the "allow_self_responses" field.
func AllowSelfResponsesEQ(v bool) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldAllowSelfResponses, v))
}

// AllowSelfResponsesNEQ applies the NEQ predicate on the "allow_self_responses" field.
func AllowSelfResponsesNEQ(v bool) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldAllowSelfResponses, v))
}

// AutoModeEnabledEQ applies the EQ predicate on the "auto_mode_enabled" field.
func AutoModeEnabledEQ(v bool) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldAutoModeEnabled, v))
}

// AutoModeEnabledNEQ applies the NEQ predicate on the "auto_mode_enabled" field.
func AutoModeEnabledNEQ(v bool) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldAutoModeEnabled, v))
}

// AutoModeDelayMsEQ applies the EQ predicate on the "auto_mode_delay_ms" field.
func AutoModeDelayMsEQ(v int) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldAutoModeDelayMs, v))
}

// AutoModeDelayMsNEQ applies the NEQ predicate on the "auto_mode_delay_ms" field.
func AutoModeDelayMsNEQ(v int) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldAutoModeDelayMs, v))
}

// AutoModeDelayMsIn applies the In predicate on the "auto_mode_delay_ms" field.
func AutoModeDelayMsIn(vs ...int) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldAutoModeDelayMs, vs...))
}

// AutoModeDelayMsNotIn applies the NotIn predicate on the "auto_mode_delay_ms" field.
func AutoModeDelayMsNotIn(vs ...int) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldAutoModeDelayMs, vs...))
}

// AutoModeDelayMsGT applies the GT predicate on the "auto_mode_delay_ms" field.
func AutoModeDelayMsGT(v int) predicate.Space {
	return predicate.Space(sql.FieldGT(FieldAutoModeDelayMs, v))
}

// AutoModeDelayMsGTE applies the GTE predicate on the "auto_mode_delay_ms" field.
func AutoModeDelayMsGTE(v int) predicate.Space {
	return predicate.Space(sql.FieldGTE(FieldAutoModeDelayMs, v))
}

// AutoModeDelayMsLT applies the LT predicate on the "auto_mode_delay_ms" field.
func AutoModeDelayMsLT(v int) predicate.Space {
	return predicate.Space(sql.FieldLT(FieldAutoModeDelayMs, v))
}

// AutoModeDelayMsLTE applies the LTE predicate on the "auto_mode_delay_ms" field.
func AutoModeDelayMsLTE(v int) predicate.Space {
	return predicate.Space(sql.FieldLTE(FieldAutoModeDelayMs, v))
}

// InputPolicyEQ applies the EQ predicate on the "input_policy" field.
func InputPolicyEQ(v InputPolicy) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldInputPolicy, v))
}

// InputPolicyNEQ applies the NEQ predicate on the "input_policy" field.
func InputPolicyNEQ(v InputPolicy) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldInputPolicy, v))
}

// InputPolicyIn applies the In predicate on the "input_policy" field.
func InputPolicyIn(vs ...InputPolicy) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldInputPolicy, vs...))
}

// InputPolicyNotIn applies the NotIn predicate on the "input_policy" field.
func InputPolicyNotIn(vs ...InputPolicy) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldInputPolicy, vs...))
}

// UserTurnDebounceMsEQ applies the EQ predicate on the "user_turn_debounce_ms" field.
func UserTurnDebounceMsEQ(v int) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldUserTurnDebounceMs, v))
}

// UserTurnDebounceMsNEQ applies the NEQ predicate on the "user_turn_debounce_ms" field.
func UserTurnDebounceMsNEQ(v int) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldUserTurnDebounceMs, v))
}

// UserTurnDebounceMsIn applies the In predicate on the "user_turn_debounce_ms" field.
func UserTurnDebounceMsIn(vs ...int) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldUserTurnDebounceMs, vs...))
}

// UserTurnDebounceMsNotIn applies the NotIn predicate on the "user_turn_debounce_ms" field.
func UserTurnDebounceMsNotIn(vs ...int) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldUserTurnDebounceMs, vs...))
}

// UserTurnDebounceMsGT applies the GT predicate on the "user_turn_debounce_ms" field.
func UserTurnDebounceMsGT(v int) predicate.Space {
	return predicate.Space(sql.FieldGT(FieldUserTurnDebounceMs, v))
}

// UserTurnDebounceMsGTE applies the GTE predicate on the "user_turn_debounce_ms" field.
func UserTurnDebounceMsGTE(v int) predicate.Space {
	return predicate.Space(sql.FieldGTE(FieldUserTurnDebounceMs, v))
}

// UserTurnDebounceMsLT applies the LT predicate on the "user_turn_debounce_ms" field.
func UserTurnDebounceMsLT(v int) predicate.Space {
	return predicate.Space(sql.FieldLT(FieldUserTurnDebounceMs, v))
}

// UserTurnDebounceMsLTE applies the LTE predicate on the "user_turn_debounce_ms" field.
func UserTurnDebounceMsLTE(v int) predicate.Space {
	return predicate.Space(sql.FieldLTE(FieldUserTurnDebounceMs, v))
}

// CardHandlingModeEQ applies the EQ predicate on the "card_handling_mode" field.
func CardHandlingModeEQ(v string) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldCardHandlingMode, v))
}

// CardHandlingModeNEQ applies the NEQ predicate on the "card_handling_mode" field.
func CardHandlingModeNEQ(v string) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldCardHandlingMode, v))
}

// CardHandlingModeIn applies the In predicate on the "card_handling_mode" field.
func CardHandlingModeIn(vs ...string) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldCardHandlingMode, vs...))
}

// CardHandlingModeNotIn applies the NotIn predicate on the "card_handling_mode" field.
func CardHandlingModeNotIn(vs ...string) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldCardHandlingMode, vs...))
}

// CardHandlingModeGT applies the GT predicate on the "card_handling_mode" field.
func CardHandlingModeGT(v string) predicate.Space {
	return predicate.Space(sql.FieldGT(FieldCardHandlingMode, v))
}

// CardHandlingModeGTE applies the GTE predicate on the "card_handling_mode" field.
func CardHandlingModeGTE(v string) predicate.Space {
	return predicate.Space(sql.FieldGTE(FieldCardHandlingMode, v))
}

// CardHandlingModeLT applies the LT predicate on the "card_handling_mode" field.
func CardHandlingModeLT(v string) predicate.Space {
	return predicate.Space(sql.FieldLT(FieldCardHandlingMode, v))
}

// CardHandlingModeLTE applies the LTE predicate on the "card_handling_mode" field.
func CardHandlingModeLTE(v string) predicate.Space {
	return predicate.Space(sql.FieldLTE(FieldCardHandlingMode, v))
}

// CardHandlingModeContains applies the Contains predicate on the "card_handling_mode" field.
func CardHandlingModeContains(v string) predicate.Space {
	return predicate.Space(sql.FieldContains(FieldCardHandlingMode, v))
}

// CardHandlingModeHasPrefix applies the HasPrefix predicate on the "card_handling_mode" field.
func CardHandlingModeHasPrefix(v string) predicate.Space {
	return predicate.Space(sql.FieldHasPrefix(FieldCardHandlingMode, v))
}

// CardHandlingModeHasSuffix applies the HasSuffix predicate on the "card_handling_mode" field.
func CardHandlingModeHasSuffix(v string) predicate.Space {
	return predicate.Space(sql.FieldHasSuffix(FieldCardHandlingMode, v))
}

// CardHandlingModeIsNil applies the IsNil predicate on the "card_handling_mode" field.
func CardHandlingModeIsNil() predicate.Space {
	return predicate.Space(sql.FieldIsNull(FieldCardHandlingMode))
}

// CardHandlingModeNotNil applies the NotNil predicate on the "card_handling_mode" field.
func CardHandlingModeNotNil() predicate.Space {
	return predicate.Space(sql.FieldNotNull(FieldCardHandlingMode))
}

// CardHandlingModeEqualFold applies the EqualFold predicate on the "card_handling_mode" field.
func CardHandlingModeEqualFold(v string) predicate.Space {
	return predicate.Space(sql.FieldEqualFold(FieldCardHandlingMode, v))
}

// CardHandlingModeContainsFold applies the ContainsFold predicate on the "card_handling_mode" field.
func CardHandlingModeContainsFold(v string) predicate.Space {
	return predicate.Space(sql.FieldContainsFold(FieldCardHandlingMode, v))
}

// RelaxMessageTrimEQ applies the EQ predicate on the "relax_message_trim" field.
func RelaxMessageTrimEQ(v bool) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldRelaxMessageTrim, v))
}

// RelaxMessageTrimNEQ applies the NEQ predicate on the "relax_message_trim" field.
func RelaxMessageTrimNEQ(v bool) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldRelaxMessageTrim, v))
}

// TokenLimitEQ applies the EQ predicate on the "token_limit" field.
func TokenLimitEQ(v int64) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldTokenLimit, v))
}

// TokenLimitNEQ applies the NEQ predicate on the "token_limit" field.
func TokenLimitNEQ(v int64) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldTokenLimit, v))
}

// TokenLimitIn applies the In predicate on the "token_limit" field.
func TokenLimitIn(vs ...int64) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldTokenLimit, vs...))
}

// TokenLimitNotIn applies the NotIn predicate on the "token_limit" field.
func TokenLimitNotIn(vs ...int64) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldTokenLimit, vs...))
}

// TokenLimitGT applies the GT predicate on the "token_limit" field.
func TokenLimitGT(v int64) predicate.Space {
	return predicate.Space(sql.FieldGT(FieldTokenLimit, v))
}

// TokenLimitGTE applies the GTE predicate on the "token_limit" field.
func TokenLimitGTE(v int64) predicate.Space {
	return predicate.Space(sql.FieldGTE(FieldTokenLimit, v))
}

// TokenLimitLT applies the LT predicate on the "token_limit" field.
func TokenLimitLT(v int64) predicate.Space {
	return predicate.Space(sql.FieldLT(FieldTokenLimit, v))
}

// TokenLimitLTE applies the LTE predicate on the "token_limit" field.
func TokenLimitLTE(v int64) predicate.Space {
	return predicate.Space(sql.FieldLTE(FieldTokenLimit, v))
}

// TokenLimitIsNil applies the IsNil predicate on the "token_limit" field.
func TokenLimitIsNil() predicate.Space {
	return predicate.Space(sql.FieldIsNull(FieldTokenLimit))
}

// TokenLimitNotNil applies the NotNil predicate on the "token_limit" field.
func TokenLimitNotNil() predicate.Space {
	return predicate.Space(sql.FieldNotNull(FieldTokenLimit))
}

// PromptTokensTotalEQ applies the EQ predicate on the "prompt_tokens_total" field.
func PromptTokensTotalEQ(v int64) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldPromptTokensTotal, v))
}

// PromptTokensTotalNEQ applies the NEQ predicate on the "prompt_tokens_total" field.
func PromptTokensTotalNEQ(v int64) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldPromptTokensTotal, v))
}

// PromptTokensTotalIn applies the In predicate on the "prompt_tokens_total" field.
func PromptTokensTotalIn(vs ...int64) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldPromptTokensTotal, vs...))
}

// PromptTokensTotalNotIn applies the NotIn predicate on the "prompt_tokens_total" field.
func PromptTokensTotalNotIn(vs ...int64) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldPromptTokensTotal, vs...))
}

// PromptTokensTotalGT applies the GT predicate on the "prompt_tokens_total" field.
func PromptTokensTotalGT(v int64) predicate.Space {
	return predicate.Space(sql.FieldGT(FieldPromptTokensTotal, v))
}

// PromptTokensTotalGTE applies the GTE predicate on the "prompt_tokens_total" field.
func PromptTokensTotalGTE(v int64) predicate.Space {
	return predicate.Space(sql.FieldGTE(FieldPromptTokensTotal, v))
}

// PromptTokensTotalLT applies the LT predicate on the "prompt_tokens_total" field.
func PromptTokensTotalLT(v int64) predicate.Space {
	return predicate.Space(sql.FieldLT(FieldPromptTokensTotal, v))
}

// PromptTokensTotalLTE applies the LTE predicate on the "prompt_tokens_total" field.
func PromptTokensTotalLTE(v int64) predicate.Space {
	return predicate.Space(sql.FieldLTE(FieldPromptTokensTotal, v))
}

// CompletionTokensTotalEQ applies the EQ predicate on the "completion_tokens_total" field.
func CompletionTokensTotalEQ(v int64) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldCompletionTokensTotal, v))
}

// CompletionTokensTotalNEQ applies the NEQ predicate on the "completion_tokens_total" field.
func CompletionTokensTotalNEQ(v int64) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldCompletionTokensTotal, v))
}

// CompletionTokensTotalIn applies the In predicate on the "completion_tokens_total" field.
func CompletionTokensTotalIn(vs ...int64) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldCompletionTokensTotal, vs...))
}

// CompletionTokensTotalNotIn applies the NotIn predicate on the "completion_tokens_total" field.
func CompletionTokensTotalNotIn(vs ...int64) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldCompletionTokensTotal, vs...))
}

// CompletionTokensTotalGT applies the GT predicate on the "completion_tokens_total" field.
func CompletionTokensTotalGT(v int64) predicate.Space {
	return predicate.Space(sql.FieldGT(FieldCompletionTokensTotal, v))
}

// CompletionTokensTotalGTE applies the GTE predicate on the "completion_tokens_total" field.
func CompletionTokensTotalGTE(v int64) predicate.Space {
	return predicate.Space(sql.FieldGTE(FieldCompletionTokensTotal, v))
}

// CompletionTokensTotalLT applies the LT predicate on the "completion_tokens_total" field.
func CompletionTokensTotalLT(v int64) predicate.Space {
	return predicate.Space(sql.FieldLT(FieldCompletionTokensTotal, v))
}

// CompletionTokensTotalLTE applies the LTE predicate on the "completion_tokens_total" field.
func CompletionTokensTotalLTE(v int64) predicate.Space {
	return predicate.Space(sql.FieldLTE(FieldCompletionTokensTotal, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Space {
	return predicate.Space(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Space {
	return predicate.Space(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Space {
	return predicate.Space(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMemberships applies the HasEdge predicate on the "memberships" edge.
func HasMemberships() predicate.Space {
	return predicate.Space(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembershipsTable, MembershipsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembershipsWith applies the HasEdge predicate on the "memberships" edge with a given conditions (other predicates).
func HasMembershipsWith(preds ...predicate.SpaceMembership) predicate.Space {
	return predicate.Space(func(s *sql.Selector) {
		step := newMembershipsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConversations applies the HasEdge predicate on the "conversations" edge.
func HasConversations() predicate.Space {
	return predicate.Space(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationsWith applies the HasEdge predicate on the "conversations" edge with a given conditions (other predicates).
func HasConversationsWith(preds ...predicate.Conversation) predicate.Space {
	return predicate.Space(func(s *sql.Selector) {
		step := newConversationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Space) predicate.Space {
	return predicate.Space(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Space) predicate.Space {
	return predicate.Space(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Space) predicate.Space {
	return predicate.Space(sql.NotPredicates(p))
}
