// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversation type in the database.
	Label = "conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conversation_id"
	// FieldSpaceID holds the string denoting the space_id field in the database.
	FieldSpaceID = "space_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldParentConversationID holds the string denoting the parent_conversation_id field in the database.
	FieldParentConversationID = "parent_conversation_id"
	// FieldForkedFromMessageID holds the string denoting the forked_from_message_id field in the database.
	FieldForkedFromMessageID = "forked_from_message_id"
	// FieldSchedulingState holds the string denoting the scheduling_state field in the database.
	FieldSchedulingState = "scheduling_state"
	// FieldGroupQueueRevision holds the string denoting the group_queue_revision field in the database.
	FieldGroupQueueRevision = "group_queue_revision"
	// FieldAutoRoundsRemaining holds the string denoting the auto_rounds_remaining field in the database.
	FieldAutoRoundsRemaining = "auto_rounds_remaining"
	// FieldPromptTokensTotal holds the string denoting the prompt_tokens_total field in the database.
	FieldPromptTokensTotal = "prompt_tokens_total"
	// FieldCompletionTokensTotal holds the string denoting the completion_tokens_total field in the database.
	FieldCompletionTokensTotal = "completion_tokens_total"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSpace holds the string denoting the space edge name in mutations.
	EdgeSpace = "space"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// EdgeRounds holds the string denoting the rounds edge name in mutations.
	EdgeRounds = "rounds"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// SpaceFieldID holds the string denoting the ID field of the Space.
	SpaceFieldID = "space_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// ConversationRunFieldID holds the string denoting the ID field of the ConversationRun.
	ConversationRunFieldID = "run_id"
	// ConversationRoundFieldID holds the string denoting the ID field of the ConversationRound.
	ConversationRoundFieldID = "round_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// Table holds the table name of the conversation in the database.
	Table = "conversations"
	// SpaceTable is the table that holds the space relation/edge.
	SpaceTable = "conversations"
	// SpaceInverseTable is the table name for the Space entity.
	// It exists in this package in order to avoid circular dependency with the "space" package.
	SpaceInverseTable = "spaces"
	// SpaceColumn is the table column denoting the space relation/edge.
	SpaceColumn = "space_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "conversation_id"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "conversation_runs"
	// RunsInverseTable is the table name for the ConversationRun entity.
	// It exists in this package in order to avoid circular dependency with the "conversationrun" package.
	RunsInverseTable = "conversation_runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "conversation_id"
	// RoundsTable is the table that holds the rounds relation/edge.
	RoundsTable = "conversation_rounds"
	// RoundsInverseTable is the table name for the ConversationRound entity.
	// It exists in this package in order to avoid circular dependency with the "conversationround" package.
	RoundsInverseTable = "conversation_rounds"
	// RoundsColumn is the table column denoting the rounds relation/edge.
	RoundsColumn = "conversation_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "conversation_id"
)

// Columns holds all SQL columns for conversation fields.
var Columns = []string{
	FieldID,
	FieldSpaceID,
	FieldKind,
	FieldParentConversationID,
	FieldForkedFromMessageID,
	FieldSchedulingState,
	FieldGroupQueueRevision,
	FieldAutoRoundsRemaining,
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
	// DefaultGroupQueueRevision holds the default value on creation for the "group_queue_revision" field.
	DefaultGroupQueueRevision int64
	// DefaultAutoRoundsRemaining holds the default value on creation for the "auto_rounds_remaining" field.
	DefaultAutoRoundsRemaining int
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

// Kind defines the type for the "kind" enum field.
type Kind string

// KindRoot is the default value of the Kind enum.
const DefaultKind = KindRoot

// Kind values.
const (
	KindRoot   Kind = "root"
	KindBranch Kind = "branch"
	KindThread Kind = "thread"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindRoot, KindBranch, KindThread:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for kind field: %q", k)
	}
}

// SchedulingState defines the type for the "scheduling_state" enum field.
type SchedulingState string

// SchedulingStateIdle is the default value of the SchedulingState enum.
const DefaultSchedulingState = SchedulingStateIdle

// SchedulingState values.
const (
	SchedulingStateIdle         SchedulingState = "idle"
	SchedulingStateAiGenerating SchedulingState = "ai_generating"
	SchedulingStatePaused       SchedulingState = "paused"
	SchedulingStateFailed       SchedulingState = "failed"
)

func (ss SchedulingState) String() string {
	return string(ss)
}

// SchedulingStateValidator is a validator for the "scheduling_state" field enum values. It is called by the builders before save.
func SchedulingStateValidator(ss SchedulingState) error {
	switch ss {
	case SchedulingStateIdle, SchedulingStateAiGenerating, SchedulingStatePaused, SchedulingStateFailed:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for scheduling_state field: %q", ss)
	}
}

// OrderOption defines the ordering options for the Conversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySpaceID orders the results by the space_id field.
func BySpaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpaceID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByParentConversationID orders the results by the parent_conversation_id field.
func ByParentConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentConversationID, opts...).ToFunc()
}

// ByForkedFromMessageID orders the results by the forked_from_message_id field.
func ByForkedFromMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForkedFromMessageID, opts...).ToFunc()
}

// BySchedulingState orders the results by the scheduling_state field.
func BySchedulingState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchedulingState, opts...).ToFunc()
}

// ByGroupQueueRevision orders the results by the group_queue_revision field.
func ByGroupQueueRevision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupQueueRevision, opts...).ToFunc()
}

// ByAutoRoundsRemaining orders the results by the auto_rounds_remaining field.
func ByAutoRoundsRemaining(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoRoundsRemaining, opts...).ToFunc()
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

// BySpaceField orders the results by space field.
func BySpaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpaceStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRunsCount orders the results by runs count.
func ByRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunsStep(), opts...)
	}
}

// ByRuns orders the results by runs terms.
func ByRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRoundsCount orders the results by rounds count.
func ByRoundsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRoundsStep(), opts...)
	}
}

// ByRounds orders the results by rounds terms.
func ByRounds(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoundsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSpaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpaceInverseTable, SpaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SpaceTable, SpaceColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, ConversationRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
func newRoundsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoundsInverseTable, ConversationRoundFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RoundsTable, RoundsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
