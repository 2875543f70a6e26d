// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/space"
)

// Conversation is the model entity for the Conversation schema.
type Conversation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SpaceID holds the value of the "space_id" field.
	SpaceID string `json:"space_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind conversation.Kind `json:"kind,omitempty"`
	// ParentConversationID holds the value of the "parent_conversation_id" field.
	ParentConversationID *string `json:"parent_conversation_id,omitempty"`
	// Branches: message the fork starts after
	ForkedFromMessageID *string `json:"forked_from_message_id,omitempty"`
	// Cached projection of the active round
	SchedulingState conversation.SchedulingState `json:"scheduling_state,omitempty"`
	// Monotone fence; clients discard updates at or below the last seen value
	GroupQueueRevision int64 `json:"group_queue_revision,omitempty"`
	// Auto-mode round budget left; decremented on round completion
	AutoRoundsRemaining int `json:"auto_rounds_remaining,omitempty"`
	// PromptTokensTotal holds the value of the "prompt_tokens_total" field.
	PromptTokensTotal int64 `json:"prompt_tokens_total,omitempty"`
	// CompletionTokensTotal holds the value of the "completion_tokens_total" field.
	CompletionTokensTotal int64 `json:"completion_tokens_total,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversationQuery when eager-loading is set.
	Edges        ConversationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversationEdges holds the relations/edges for other nodes in the graph.
type ConversationEdges struct {
	// Space holds the value of the space edge.
	Space *Space `json:"space,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*ConversationRun `json:"runs,omitempty"`
	// Rounds holds the value of the rounds edge.
	Rounds []*ConversationRound `json:"rounds,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SpaceOrErr returns the Space value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversationEdges) SpaceOrErr() (*Space, error) {
	if e.Space != nil {
		return e.Space, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: space.Label}
	}
	return nil, &NotLoadedError{edge: "space"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) RunsOrErr() ([]*ConversationRun, error) {
	if e.loadedTypes[2] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// RoundsOrErr returns the Rounds value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) RoundsOrErr() ([]*ConversationRound, error) {
	if e.loadedTypes[3] {
		return e.Rounds, nil
	}
	return nil, &NotLoadedError{edge: "rounds"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[4] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conversation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversation.FieldGroupQueueRevision, conversation.FieldAutoRoundsRemaining, conversation.FieldPromptTokensTotal, conversation.FieldCompletionTokensTotal:
			values[i] = new(sql.NullInt64)
		case conversation.FieldID, conversation.FieldSpaceID, conversation.FieldKind, conversation.FieldParentConversationID, conversation.FieldForkedFromMessageID, conversation.FieldSchedulingState:
			values[i] = new(sql.NullString)
		case conversation.FieldCreatedAt, conversation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conversation fields.
func (_m *Conversation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conversation.FieldSpaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field space_id", values[i])
			} else if value.Valid {
				_m.SpaceID = value.String
			}
		case conversation.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = conversation.Kind(value.String)
			}
		case conversation.FieldParentConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_conversation_id", values[i])
			} else if value.Valid {
				_m.ParentConversationID = new(string)
				*_m.ParentConversationID = value.String
			}
		case conversation.FieldForkedFromMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field forked_from_message_id", values[i])
			} else if value.Valid {
				_m.ForkedFromMessageID = new(string)
				*_m.ForkedFromMessageID = value.String
			}
		case conversation.FieldSchedulingState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scheduling_state", values[i])
			} else if value.Valid {
				_m.SchedulingState = conversation.SchedulingState(value.String)
			}
		case conversation.FieldGroupQueueRevision:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field group_queue_revision", values[i])
			} else if value.Valid {
				_m.GroupQueueRevision = value.Int64
			}
		case conversation.FieldAutoRoundsRemaining:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field auto_rounds_remaining", values[i])
			} else if value.Valid {
				_m.AutoRoundsRemaining = int(value.Int64)
			}
		case conversation.FieldPromptTokensTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens_total", values[i])
			} else if value.Valid {
				_m.PromptTokensTotal = value.Int64
			}
		case conversation.FieldCompletionTokensTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens_total", values[i])
			} else if value.Valid {
				_m.CompletionTokensTotal = value.Int64
			}
		case conversation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Conversation.
// This includes values selected through modifiers, order, etc.
func (_m *Conversation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySpace queries the "space" edge of the Conversation entity.
func (_m *Conversation) QuerySpace() *SpaceQuery {
	return NewConversationClient(_m.config).QuerySpace(_m)
}

// QueryMessages queries the "messages" edge of the Conversation entity.
func (_m *Conversation) QueryMessages() *MessageQuery {
	return NewConversationClient(_m.config).QueryMessages(_m)
}

// QueryRuns queries the "runs" edge of the Conversation entity.
func (_m *Conversation) QueryRuns() *ConversationRunQuery {
	return NewConversationClient(_m.config).QueryRuns(_m)
}

// QueryRounds queries the "rounds" edge of the Conversation entity.
func (_m *Conversation) QueryRounds() *ConversationRoundQuery {
	return NewConversationClient(_m.config).QueryRounds(_m)
}

// QueryEvents queries the "events" edge of the Conversation entity.
func (_m *Conversation) QueryEvents() *EventQuery {
	return NewConversationClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Conversation.
// Note that you need to call Conversation.Unwrap() before calling this method if this Conversation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conversation) Update() *ConversationUpdateOne {
	return NewConversationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conversation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conversation) Unwrap() *Conversation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Conversation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conversation) String() string {
	var builder strings.Builder
	builder.WriteString("Conversation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("space_id=")
	builder.WriteString(_m.SpaceID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	if v := _m.ParentConversationID; v != nil {
		builder.WriteString("parent_conversation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ForkedFromMessageID; v != nil {
		builder.WriteString("forked_from_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("scheduling_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchedulingState))
	builder.WriteString(", ")
	builder.WriteString("group_queue_revision=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupQueueRevision))
	builder.WriteString(", ")
	builder.WriteString("auto_rounds_remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoRoundsRemaining))
	builder.WriteString(", ")
	builder.WriteString("prompt_tokens_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptTokensTotal))
	builder.WriteString(", ")
	builder.WriteString("completion_tokens_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTokensTotal))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Conversations is a parsable slice of Conversation.
type Conversations []*Conversation
