// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/messageswipe"
)

// MessageSwipe is the model entity for the MessageSwipe schema.
type MessageSwipe struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID string `json:"message_id,omitempty"`
	// 0-based; swipe 0 is the original generation
	Position int `json:"position,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// TextContentID holds the value of the "text_content_id" field.
	TextContentID *string `json:"text_content_id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID *string `json:"run_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageSwipeQuery when eager-loading is set.
	Edges        MessageSwipeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageSwipeEdges holds the relations/edges for other nodes in the graph.
type MessageSwipeEdges struct {
	// Message holds the value of the message edge.
	Message *Message `json:"message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MessageOrErr returns the Message value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageSwipeEdges) MessageOrErr() (*Message, error) {
	if e.Message != nil {
		return e.Message, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: message.Label}
	}
	return nil, &NotLoadedError{edge: "message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageSwipe) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messageswipe.FieldPosition:
			values[i] = new(sql.NullInt64)
		case messageswipe.FieldID, messageswipe.FieldMessageID, messageswipe.FieldContent, messageswipe.FieldTextContentID, messageswipe.FieldRunID:
			values[i] = new(sql.NullString)
		case messageswipe.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageSwipe fields.
func (_m *MessageSwipe) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messageswipe.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case messageswipe.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case messageswipe.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case messageswipe.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case messageswipe.FieldTextContentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_content_id", values[i])
			} else if value.Valid {
				_m.TextContentID = new(string)
				*_m.TextContentID = value.String
			}
		case messageswipe.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = new(string)
				*_m.RunID = value.String
			}
		case messageswipe.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MessageSwipe.
// This includes values selected through modifiers, order, etc.
func (_m *MessageSwipe) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessage queries the "message" edge of the MessageSwipe entity.
func (_m *MessageSwipe) QueryMessage() *MessageQuery {
	return NewMessageSwipeClient(_m.config).QueryMessage(_m)
}

// Update returns a builder for updating this MessageSwipe.
// Note that you need to call MessageSwipe.Unwrap() before calling this method if this MessageSwipe
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageSwipe) Update() *MessageSwipeUpdateOne {
	return NewMessageSwipeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageSwipe entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageSwipe) Unwrap() *MessageSwipe {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageSwipe is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageSwipe) String() string {
	var builder strings.Builder
	builder.WriteString("MessageSwipe(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	if v := _m.TextContentID; v != nil {
		builder.WriteString("text_content_id=")
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

// MessageSwipes is a parsable slice of MessageSwipe.
type MessageSwipes []*MessageSwipe
