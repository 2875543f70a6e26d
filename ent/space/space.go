// Code generated by ent, DO NOT EDIT.

package space

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the space type in the database.
	Label = "space"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "space_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldReplyOrder holds the string denoting the reply_order field in the database.
	FieldReplyOrder = "reply_order"
	// FieldAllowSelfResponses holds the string denoting the allow_self_responses field in the database.
	FieldAllowSelfResponses = "allow_self_responses"
	// FieldAutoModeEnabled holds the string denoting the auto_mode_enabled field in the database.
	FieldAutoModeEnabled = "auto_mode_enabled"
	// FieldAutoModeDelayMs holds the string denoting the auto_mode_delay_ms field in the database.
	FieldAutoModeDelayMs = "auto_mode_delay_ms"
	// FieldInputPolicy holds the string denoting the input_policy field in the database.
	FieldInputPolicy = "input_policy"
	// FieldUserTurnDebounceMs holds the string denoting the user_turn_debounce_ms field in the database.
	FieldUserTurnDebounceMs = "user_turn_debounce_ms"
	// FieldCardHandlingMode holds the string denoting the card_handling_mode field in the database.
	FieldCardHandlingMode = "card_handling_mode"
	// FieldRelaxMessageTrim holds the string denoting the relax_message_trim field in the database.
	FieldRelaxMessageTrim = "relax_message_trim"
	// FieldTokenLimit holds the string denoting the token_limit field in the database.
	FieldTokenLimit = "token_limit"
	// FieldPromptTokensTotal holds the string denoting the prompt_tokens_total field in the database.
	FieldPromptTokensTotal = "prompt_tokens_total"
	// FieldCompletionTokensTotal holds the string denoting the completion_tokens_total field in the database.
	FieldCompletionTokensTotal = "completion_tokens_total"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMemberships holds the string denoting the memberships edge name in mutations.
	EdgeMemberships = "memberships"
	// EdgeConversations holds the string denoting the conversations edge name in mutations.
	EdgeConversations = "conversations"
	// SpaceMembershipFieldID holds the string denoting the ID field of the SpaceMembership.
	SpaceMembershipFieldID = "membership_id"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// Table holds the table name of the space in the database.
	Table = "spaces"
	// MembershipsTable is the table that holds the memberships relation/edge.
	MembershipsTable = "space_memberships"
	// MembershipsInverseTable is the table name for the SpaceMembership entity.
	// It exists in this package in order to avoid circular dependency with the "spacemembership" package.
	MembershipsInverseTable = "space_memberships"
	// MembershipsColumn is the table column denoting the memberships relation/edge.
	MembershipsColumn = "space_id"
	// ConversationsTable is the table that holds the conversations relation/edge.
	ConversationsTable = "conversations"
	// ConversationsInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationsInverseTable = "conversations"
	// ConversationsColumn is the table column denoting the conversations relation/edge.
	ConversationsColumn = "space_id"
)

// Columns holds all SQL columns for space fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldReplyOrder,
	FieldAllowSelfResponses,
	FieldAutoModeEnabled,
	FieldAutoModeDelayMs,
	FieldInputPolicy,
	FieldUserTurnDebounceMs,
	FieldCardHandlingMode,
	FieldRelaxMessageTrim,
	FieldTokenLimit,
	FieldPromptTokensTotal,
	FieldCompletionTokensTotal,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAllowSelfResponses holds the default value on creation for the "allow_self_responses" field.
	DefaultAllowSelfResponses bool
	// DefaultAutoModeEnabled holds the default value on creation for the "auto_mode_enabled" field.
	DefaultAutoModeEnabled bool
	// DefaultAutoModeDelayMs holds the default value on creation for the "auto_mode_delay_ms" field.
	DefaultAutoModeDelayMs int
	// DefaultUserTurnDebounceMs holds the default value on creation for the "user_turn_debounce_ms" field.
	DefaultUserTurnDebounceMs int
	// DefaultRelaxMessageTrim holds the default value on creation for the "relax_message_trim" field.
	DefaultRelaxMessageTrim bool
	// DefaultPromptTokensTotal holds the default value on creation for the "prompt_tokens_total" field.
	DefaultPromptTokensTotal int64
	// DefaultCompletionTokensTotal holds the default value on creation for the "completion_tokens_total" field.
	DefaultCompletionTokensTotal int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ReplyOrder defines the type for the "reply_order" enum field.
type ReplyOrder string

// ReplyOrderNatural is the default value of the ReplyOrder enum.
const DefaultReplyOrder = ReplyOrderNatural

// ReplyOrder values.
const (
	ReplyOrderManual  ReplyOrder = "manual"
	ReplyOrderNatural ReplyOrder = "natural"
	ReplyOrderList    ReplyOrder = "list"
	ReplyOrderPooled  ReplyOrder = "pooled"
)

func (ro ReplyOrder) String() string {
	return string(ro)
}

// ReplyOrderValidator is a validator for the "reply_order" field enum values. It is called by the builders before save.
func ReplyOrderValidator(ro ReplyOrder) error {
	switch ro {
	case ReplyOrderManual, ReplyOrderNatural, ReplyOrderList, ReplyOrderPooled:
		return nil
	default:
		return fmt.Errorf("space: invalid enum value for reply_order field: %q", ro)
	}
}

// InputPolicy defines the type for the "input_policy" enum field.
type InputPolicy string

// InputPolicyQueue is the default value of the InputPolicy enum.
const DefaultInputPolicy = InputPolicyQueue

// InputPolicy values.
const (
	InputPolicyReject  InputPolicy = "reject"
	InputPolicyQueue   InputPolicy = "queue"
	InputPolicyRestart InputPolicy = "restart"
)

func (ip InputPolicy) String() string {
	return string(ip)
}

// InputPolicyValidator is a validator for the "input_policy" field enum values. It is called by the builders before save.
func InputPolicyValidator(ip InputPolicy) error {
	switch ip {
	case InputPolicyReject, InputPolicyQueue, InputPolicyRestart:
		return nil
	default:
		return fmt.Errorf("space: invalid enum value for input_policy field: %q", ip)
	}
}

// OrderOption defines the ordering options for the Space queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByReplyOrder orders the results by the reply_order field.
func ByReplyOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplyOrder, opts...).ToFunc()
}

// ByAllowSelfResponses orders the results by the allow_self_responses field.
func ByAllowSelfResponses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowSelfResponses, opts...).ToFunc()
}

// ByAutoModeEnabled orders the results by the auto_mode_enabled field.
func ByAutoModeEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoModeEnabled, opts...).ToFunc()
}

// ByAutoModeDelayMs orders the results by the auto_mode_delay_ms field.
func ByAutoModeDelayMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoModeDelayMs, opts...).ToFunc()
}

// ByInputPolicy orders the results by the input_policy field.
func ByInputPolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputPolicy, opts...).ToFunc()
}

// ByUserTurnDebounceMs orders the results by the user_turn_debounce_ms field.
func ByUserTurnDebounceMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserTurnDebounceMs, opts...).ToFunc()
}

// ByCardHandlingMode orders the results by the card_handling_mode field.
func ByCardHandlingMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardHandlingMode, opts...).ToFunc()
}

// ByRelaxMessageTrim orders the results by the relax_message_trim field.
func ByRelaxMessageTrim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelaxMessageTrim, opts...).ToFunc()
}

// ByTokenLimit orders the results by the token_limit field.
func ByTokenLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenLimit, opts...).ToFunc()
}

// ByPromptTokensTotal orders the results by the prompt_tokens_total field.
func ByPromptTokensTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTokensTotal, opts...).ToFunc()
}

// ByCompletionTokensTotal orders the results by the completion_tokens_total field.
func ByCompletionTokensTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTokensTotal, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMembershipsCount orders the results by memberships count.
func ByMembershipsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMembershipsStep(), opts...)
	}
}

// ByMemberships orders the results by memberships terms.
func ByMemberships(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMembershipsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConversationsCount orders the results by conversations count.
func ByConversationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConversationsStep(), opts...)
	}
}

// ByConversations orders the results by conversations terms.
func ByConversations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMembershipsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MembershipsInverseTable, SpaceMembershipFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MembershipsTable, MembershipsColumn),
	)
}
func newConversationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationsInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
	)
}
