// Code generated by ent, DO NOT EDIT.

package message

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the message type in the database.
	Label = "message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldVisibility holds the string denoting the visibility field in the database.
	FieldVisibility = "visibility"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldTextContentID holds the string denoting the text_content_id field in the database.
	FieldTextContentID = "text_content_id"
	// FieldActiveSwipeID holds the string denoting the active_swipe_id field in the database.
	FieldActiveSwipeID = "active_swipe_id"
	// FieldSwipesCount holds the string denoting the swipes_count field in the database.
	FieldSwipesCount = "swipes_count"
	// FieldSpeakerMembershipID holds the string denoting the speaker_membership_id field in the database.
	FieldSpeakerMembershipID = "speaker_membership_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// EdgeSwipes holds the string denoting the swipes edge name in mutations.
	EdgeSwipes = "swipes"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// MessageSwipeFieldID holds the string denoting the ID field of the MessageSwipe.
	MessageSwipeFieldID = "swipe_id"
	// Table holds the table name of the message in the database.
	Table = "messages"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "messages"
	// ConversationInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationInverseTable = "conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
	// SwipesTable is the table that holds the swipes relation/edge.
	SwipesTable = "message_swipes"
	// SwipesInverseTable is the table name for the MessageSwipe entity.
	// It exists in this package in order to avoid circular dependency with the "messageswipe" package.
	SwipesInverseTable = "message_swipes"
	// SwipesColumn is the table column denoting the swipes relation/edge.
	SwipesColumn = "message_id"
)

// Columns holds all SQL columns for message fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldSeq,
	FieldRole,
	FieldVisibility,
	FieldContent,
	FieldTextContentID,
	FieldActiveSwipeID,
	FieldSwipesCount,
	FieldSpeakerMembershipID,
	FieldRunID,
	FieldCreatedAt,
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
	// DefaultSwipesCount holds the default value on creation for the "swipes_count" field.
	DefaultSwipesCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for role field: %q", r)
	}
}

// Visibility defines the type for the "visibility" enum field.
type Visibility string

// VisibilityNormal is the default value of the Visibility enum.
const DefaultVisibility = VisibilityNormal

// Visibility values.
const (
	VisibilityNormal   Visibility = "normal"
	VisibilityExcluded Visibility = "excluded"
	VisibilityHidden   Visibility = "hidden"
)

func (v Visibility) String() string {
	return string(v)
}

// VisibilityValidator is a validator for the "visibility" field enum values. It is called by the builders before save.
func VisibilityValidator(v Visibility) error {
	switch v {
	case VisibilityNormal, VisibilityExcluded, VisibilityHidden:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for visibility field: %q", v)
	}
}

// OrderOption defines the ordering options for the Message queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByVisibility orders the results by the visibility field.
func ByVisibility(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisibility, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByTextContentID orders the results by the text_content_id field.
func ByTextContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextContentID, opts...).ToFunc()
}

// ByActiveSwipeID orders the results by the active_swipe_id field.
func ByActiveSwipeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveSwipeID, opts...).ToFunc()
}

// BySwipesCountField orders the results by the swipes_count field.
func BySwipesCountField(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSwipesCount, opts...).ToFunc()
}

// BySpeakerMembershipID orders the results by the speaker_membership_id field.
func BySpeakerMembershipID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeakerMembershipID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}

// BySwipesCount orders the results by swipes count.
func BySwipesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSwipesStep(), opts...)
	}
}

// BySwipes orders the results by swipes terms.
func BySwipes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSwipesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
	)
}
func newSwipesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SwipesInverseTable, MessageSwipeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SwipesTable, SwipesColumn),
	)
}
