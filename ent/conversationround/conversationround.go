// Code generated by ent, DO NOT EDIT.

package conversationround

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversationround type in the database.
	Label = "conversation_round"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "round_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSchedulingState holds the string denoting the scheduling_state field in the database.
	FieldSchedulingState = "scheduling_state"
	// FieldCurrentPosition holds the string denoting the current_position field in the database.
	FieldCurrentPosition = "current_position"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// EdgeParticipants holds the string denoting the participants edge name in mutations.
	EdgeParticipants = "participants"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// RoundParticipantFieldID holds the string denoting the ID field of the RoundParticipant.
	RoundParticipantFieldID = "participant_id"
	// Table holds the table name of the conversationround in the database.
	Table = "conversation_rounds"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "conversation_rounds"
	// ConversationInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationInverseTable = "conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
	// ParticipantsTable is the table that holds the participants relation/edge.
	ParticipantsTable = "round_participants"
	// ParticipantsInverseTable is the table name for the RoundParticipant entity.
	// It exists in this package in order to avoid circular dependency with the "roundparticipant" package.
	ParticipantsInverseTable = "round_participants"
	// ParticipantsColumn is the table column denoting the participants relation/edge.
	ParticipantsColumn = "round_id"
)

// Columns holds all SQL columns for conversationround fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldStatus,
	FieldSchedulingState,
	FieldCurrentPosition,
	FieldCreatedAt,
	FieldCompletedAt,
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
	// DefaultCurrentPosition holds the default value on creation for the "current_position" field.
	DefaultCurrentPosition int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCompleted, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("conversationround: invalid enum value for status field: %q", s)
	}
}

// SchedulingState defines the type for the "scheduling_state" enum field.
type SchedulingState string

// SchedulingStateAiGenerating is the default value of the SchedulingState enum.
const DefaultSchedulingState = SchedulingStateAiGenerating

// SchedulingState values.
const (
	SchedulingStateAiGenerating SchedulingState = "ai_generating"
	SchedulingStatePaused       SchedulingState = "paused"
	SchedulingStateFailed       SchedulingState = "failed"
	SchedulingStateIdle         SchedulingState = "idle"
)

func (ss SchedulingState) String() string {
	return string(ss)
}

// SchedulingStateValidator is a validator for the "scheduling_state" field enum values. It is called by the builders before save.
func SchedulingStateValidator(ss SchedulingState) error {
	switch ss {
	case SchedulingStateAiGenerating, SchedulingStatePaused, SchedulingStateFailed, SchedulingStateIdle:
		return nil
	default:
		return fmt.Errorf("conversationround: invalid enum value for scheduling_state field: %q", ss)
	}
}

// OrderOption defines the ordering options for the ConversationRound queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySchedulingState orders the results by the scheduling_state field.
func BySchedulingState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchedulingState, opts...).ToFunc()
}

// ByCurrentPosition orders the results by the current_position field.
func ByCurrentPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPosition, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}

// ByParticipantsCount orders the results by participants count.
func ByParticipantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newParticipantsStep(), opts...)
	}
}

// ByParticipants orders the results by participants terms.
func ByParticipants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParticipantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
	)
}
func newParticipantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParticipantsInverseTable, RoundParticipantFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
	)
}
