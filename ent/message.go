// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/message"
)

// Message is the model entity for the Message schema.
type Message struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// Monotone per-conversation order
	Seq int `json:"seq,omitempty"`
	// Role holds the value of the "role" field.
	Role message.Role `json:"role,omitempty"`
	// Only normal|excluded traverse the prompt window
	Visibility message.Visibility `json:"visibility,omitempty"`
	// Mirror of the active swipe's text
	Content string `json:"content,omitempty"`
	// Shared blob reference for copy-on-write branching
	TextContentID *string `json:"text_content_id,omitempty"`
	// ActiveSwipeID holds the value of the "active_swipe_id" field.
	ActiveSwipeID *string `json:"active_swipe_id,omitempty"`
	// SwipesCount holds the value of the "swipes_count" field.
	SwipesCount int `json:"swipes_count,omitempty"`
	// SpeakerMembershipID holds the value of the "speaker_membership_id" field.
	SpeakerMembershipID *string `json:"speaker_membership_id,omitempty"`
	// Originating ConversationRun for assistant messages
	RunID *string `json:"run_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageQuery when eager-loading is set.
	Edges        MessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageEdges holds the relations/edges for other nodes in the graph.
type MessageEdges struct {
	// Conversation holds the value of the conversation edge.
	Conversation *Conversation `json:"conversation,omitempty"`
	// Swipes holds the value of the swipes edge.
	Swipes []*MessageSwipe `json:"swipes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ConversationOrErr returns the Conversation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageEdges) ConversationOrErr() (*Conversation, error) {
	if e.Conversation != nil {
		return e.Conversation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversation.Label}
	}
	return nil, &NotLoadedError{edge: "conversation"}
}

// SwipesOrErr returns the Swipes value or an error if the edge
// was not loaded in eager-loading.
func (e MessageEdges) SwipesOrErr() ([]*MessageSwipe, error) {
	if e.loadedTypes[1] {
		return e.Swipes, nil
	}
	return nil, &NotLoadedError{edge: "swipes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Message) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case message.FieldSeq, message.FieldSwipesCount:
			values[i] = new(sql.NullInt64)
		case message.FieldID, message.FieldConversationID, message.FieldRole, message.FieldVisibility, message.FieldContent, message.FieldTextContentID, message.FieldActiveSwipeID, message.FieldSpeakerMembershipID, message.FieldRunID:
			values[i] = new(sql.NullString)
		case message.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Message fields.
func (_m *Message) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case message.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case message.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case message.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case message.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = message.Role(value.String)
			}
		case message.FieldVisibility:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visibility", values[i])
			} else if value.Valid {
				_m.Visibility = message.Visibility(value.String)
			}
		case message.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case message.FieldTextContentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_content_id", values[i])
			} else if value.Valid {
				_m.TextContentID = new(string)
				*_m.TextContentID = value.String
			}
		case message.FieldActiveSwipeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_swipe_id", values[i])
			} else if value.Valid {
				_m.ActiveSwipeID = new(string)
				*_m.ActiveSwipeID = value.String
			}
		case message.FieldSwipesCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field swipes_count", values[i])
			} else if value.Valid {
				_m.SwipesCount = int(value.Int64)
			}
		case message.FieldSpeakerMembershipID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field speaker_membership_id", values[i])
			} else if value.Valid {
				_m.SpeakerMembershipID = new(string)
				*_m.SpeakerMembershipID = value.String
			}
		case message.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = new(string)
				*_m.RunID = value.String
			}
		case message.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Message.
// This includes values selected through modifiers, order, etc.
func (_m *Message) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversation queries the "conversation" edge of the Message entity.
func (_m *Message) QueryConversation() *ConversationQuery {
	return NewMessageClient(_m.config).QueryConversation(_m)
}

// QuerySwipes queries the "swipes" edge of the Message entity.
func (_m *Message) QuerySwipes() *MessageSwipeQuery {
	return NewMessageClient(_m.config).QuerySwipes(_m)
}

// Update returns a builder for updating this Message.
// Note that you need to call Message.Unwrap() before calling this method if this Message
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Message) Update() *MessageUpdateOne {
	return NewMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Message entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Message) Unwrap() *Message {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Message is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Message) String() string {
	var builder strings.Builder
	builder.WriteString("Message(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("visibility=")
	builder.WriteString(fmt.Sprintf("%v", _m.Visibility))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	if v := _m.TextContentID; v != nil {
		builder.WriteString("text_content_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActiveSwipeID; v != nil {
		builder.WriteString("active_swipe_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("swipes_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SwipesCount))
	builder.WriteString(", ")
	if v := _m.SpeakerMembershipID; v != nil {
		builder.WriteString("speaker_membership_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RunID; v != nil {
		builder.WriteString("run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Messages is a parsable slice of Message.
type Messages []*Message
