// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationround"
)

// ConversationRound is the model entity for the ConversationRound schema.
type ConversationRound struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// Status holds the value of the "status" field.
	Status conversationround.Status `json:"status,omitempty"`
	// SchedulingState holds the value of the "scheduling_state" field.
	SchedulingState conversationround.SchedulingState `json:"scheduling_state,omitempty"`
	// CurrentPosition holds the value of the "current_position" field.
	CurrentPosition int `json:"current_position,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversationRoundQuery when eager-loading is set.
	Edges        ConversationRoundEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversationRoundEdges holds the relations/edges for other nodes in the graph.
type ConversationRoundEdges struct {
	// Conversation holds the value of the conversation edge.
	Conversation *Conversation `json:"conversation,omitempty"`
	// Participants holds the value of the participants edge.
	Participants []*RoundParticipant `json:"participants,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ConversationOrErr returns the Conversation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversationRoundEdges) ConversationOrErr() (*Conversation, error) {
	if e.Conversation != nil {
		return e.Conversation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversation.Label}
	}
	return nil, &NotLoadedError{edge: "conversation"}
}

// ParticipantsOrErr returns the Participants value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationRoundEdges) ParticipantsOrErr() ([]*RoundParticipant, error) {
	if e.loadedTypes[1] {
		return e.Participants, nil
	}
	return nil, &NotLoadedError{edge: "participants"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConversationRound) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversationround.FieldCurrentPosition:
			values[i] = new(sql.NullInt64)
		case conversationround.FieldID, conversationround.FieldConversationID, conversationround.FieldStatus, conversationround.FieldSchedulingState:
			values[i] = new(sql.NullString)
		case conversationround.FieldCreatedAt, conversationround.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConversationRound fields.
func (_m *ConversationRound) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversationround.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conversationround.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case conversationround.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = conversationround.Status(value.String)
			}
		case conversationround.FieldSchedulingState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scheduling_state", values[i])
			} else if value.Valid {
				_m.SchedulingState = conversationround.SchedulingState(value.String)
			}
		case conversationround.FieldCurrentPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_position", values[i])
			} else if value.Valid {
				_m.CurrentPosition = int(value.Int64)
			}
		case conversationround.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversationround.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConversationRound.
// This includes values selected through modifiers, order, etc.
func (_m *ConversationRound) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversation queries the "conversation" edge of the ConversationRound entity.
func (_m *ConversationRound) QueryConversation() *ConversationQuery {
	return NewConversationRoundClient(_m.config).QueryConversation(_m)
}

// QueryParticipants queries the "participants" edge of the ConversationRound entity.
func (_m *ConversationRound) QueryParticipants() *RoundParticipantQuery {
	return NewConversationRoundClient(_m.config).QueryParticipants(_m)
}

// Update returns a builder for updating this ConversationRound.
// Note that you need to call ConversationRound.Unwrap() before calling this method if this ConversationRound
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConversationRound) Update() *ConversationRoundUpdateOne {
	return NewConversationRoundClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConversationRound entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConversationRound) Unwrap() *ConversationRound {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConversationRound is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConversationRound) String() string {
	var builder strings.Builder
	builder.WriteString("ConversationRound(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("scheduling_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchedulingState))
	builder.WriteString(", ")
	builder.WriteString("current_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentPosition))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ConversationRounds is a parsable slice of ConversationRound.
type ConversationRounds []*ConversationRound
