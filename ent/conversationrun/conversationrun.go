// Code generated by ent, DO NOT EDIT.

package conversationrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversationrun type in the database.
	Label = "conversation_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldSpeakerMembershipID holds the string denoting the speaker_membership_id field in the database.
	FieldSpeakerMembershipID = "speaker_membership_id"
	// FieldRoundID holds the string denoting the round_id field in the database.
	FieldRoundID = "round_id"
	// FieldRunAfter holds the string denoting the run_after field in the database.
	FieldRunAfter = "run_after"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// FieldCancelRequestedAt holds the string denoting the cancel_requested_at field in the database.
	FieldCancelRequestedAt = "cancel_requested_at"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldDebug holds the string denoting the debug field in the database.
	FieldDebug = "debug"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// EdgeSpeaker holds the string denoting the speaker edge name in mutations.
	EdgeSpeaker = "speaker"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// SpaceMembershipFieldID holds the string denoting the ID field of the SpaceMembership.
	SpaceMembershipFieldID = "membership_id"
	// Table holds the table name of the conversationrun in the database.
	Table = "conversation_runs"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "conversation_runs"
	// ConversationInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationInverseTable = "conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
	// SpeakerTable is the table that holds the speaker relation/edge.
	SpeakerTable = "conversation_runs"
	// SpeakerInverseTable is the table name for the SpaceMembership entity.
	// It exists in this package in order to avoid circular dependency with the "spacemembership" package.
	SpeakerInverseTable = "space_memberships"
	// SpeakerColumn is the table column denoting the speaker relation/edge.
	SpeakerColumn = "speaker_membership_id"
)

// Columns holds all SQL columns for conversationrun fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldKind,
	FieldStatus,
	FieldReason,
	FieldSpeakerMembershipID,
	FieldRoundID,
	FieldRunAfter,
	FieldStartedAt,
	FieldFinishedAt,
	FieldHeartbeatAt,
	FieldCancelRequestedAt,
	FieldError,
	FieldDebug,
	FieldPodID,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindAutoResponse    Kind = "auto_response"
	KindRegenerate      Kind = "regenerate"
	KindForceTalk       Kind = "force_talk"
	KindCopilotStart    Kind = "copilot_start"
	KindCopilotFollowup Kind = "copilot_followup"
	KindCopilotContinue Kind = "copilot_continue"
	KindTranslation     Kind = "translation"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindAutoResponse, KindRegenerate, KindForceTalk, KindCopilotStart, KindCopilotFollowup, KindCopilotContinue, KindTranslation:
		return nil
	default:
		return fmt.Errorf("conversationrun: invalid enum value for kind field: %q", k)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCanceled  Status = "canceled"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusSucceeded, StatusFailed, StatusCanceled, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("conversationrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ConversationRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// BySpeakerMembershipID orders the results by the speaker_membership_id field.
func BySpeakerMembershipID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeakerMembershipID, opts...).ToFunc()
}

// ByRoundID orders the results by the round_id field.
func ByRoundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundID, opts...).ToFunc()
}

// ByRunAfter orders the results by the run_after field.
func ByRunAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunAfter, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}

// ByCancelRequestedAt orders the results by the cancel_requested_at field.
func ByCancelRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequestedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}

// BySpeakerField orders the results by speaker field.
func BySpeakerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpeakerStep(), sql.OrderByField(field, opts...))
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
	)
}
func newSpeakerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpeakerInverseTable, SpaceMembershipFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SpeakerTable, SpeakerColumn),
	)
}
