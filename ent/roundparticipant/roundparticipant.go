// Code generated by ent, DO NOT EDIT.

package roundparticipant

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the roundparticipant type in the database.
	Label = "round_participant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "participant_id"
	// FieldRoundID holds the string denoting the round_id field in the database.
	FieldRoundID = "round_id"
	// FieldMembershipID holds the string denoting the membership_id field in the database.
	FieldMembershipID = "membership_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// EdgeRound holds the string denoting the round edge name in mutations.
	EdgeRound = "round"
	// ConversationRoundFieldID holds the string denoting the ID field of the ConversationRound.
	ConversationRoundFieldID = "round_id"
	// Table holds the table name of the roundparticipant in the database.
	Table = "round_participants"
	// RoundTable is the table that holds the round relation/edge.
	RoundTable = "round_participants"
	// RoundInverseTable is the table name for the ConversationRound entity.
	// It exists in this package in order to avoid circular dependency with the "conversationround" package.
	RoundInverseTable = "conversation_rounds"
	// RoundColumn is the table column denoting the round relation/edge.
	RoundColumn = "round_id"
)

// Columns holds all SQL columns for roundparticipant fields.
var Columns = []string{
	FieldID,
	FieldRoundID,
	FieldMembershipID,
	FieldPosition,
	FieldStatus,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusSucceeded, StatusFailed, StatusSkipped, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("roundparticipant: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RoundParticipant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRoundID orders the results by the round_id field.
func ByRoundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundID, opts...).ToFunc()
}

// ByMembershipID orders the results by the membership_id field.
func ByMembershipID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMembershipID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRoundField orders the results by round field.
func ByRoundField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoundStep(), sql.OrderByField(field, opts...))
	}
}
func newRoundStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoundInverseTable, ConversationRoundFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RoundTable, RoundColumn),
	)
}
