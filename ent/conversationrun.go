// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
)

// ConversationRun is the model entity for the ConversationRun schema.
type ConversationRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind conversationrun.Kind `json:"kind,omitempty"`
	// Status holds the value of the "status" field.
	Status conversationrun.Status `json:"status,omitempty"`
	// Free-form trigger tag
	Reason string `json:"reason,omitempty"`
	// SpeakerMembershipID holds the value of the "speaker_membership_id" field.
	SpeakerMembershipID string `json:"speaker_membership_id,omitempty"`
	// RoundID holds the value of the "round_id" field.
	RoundID *string `json:"round_id,omitempty"`
	// Earliest execution time (debounce, auto-mode delay)
	RunAfter *time.Time `json:"run_after,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// For stale-run detection
	HeartbeatAt *time.Time `json:"heartbeat_at,omitempty"`
	// Sticky cooperative cancel; the executor observes it between chunks
	CancelRequestedAt *time.Time `json:"cancel_requested_at,omitempty"`
	// Structured {code, message, details} for terminal failures
	Error map[string]interface{} `json:"error,omitempty"`
	// Trigger context: expected_last_message_id, target_message_id, scheduled_by
	Debug map[string]interface{} `json:"debug,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversationRunQuery when eager-loading is set.
	Edges        ConversationRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversationRunEdges holds the relations/edges for other nodes in the graph.
type ConversationRunEdges struct {
	// Conversation holds the value of the conversation edge.
	Conversation *Conversation `json:"conversation,omitempty"`
	// Speaker holds the value of the speaker edge.
	Speaker *SpaceMembership `json:"speaker,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ConversationOrErr returns the Conversation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversationRunEdges) ConversationOrErr() (*Conversation, error) {
	if e.Conversation != nil {
		return e.Conversation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversation.Label}
	}
	return nil, &NotLoadedError{edge: "conversation"}
}

// SpeakerOrErr returns the Speaker value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversationRunEdges) SpeakerOrErr() (*SpaceMembership, error) {
	if e.Speaker != nil {
		return e.Speaker, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: spacemembership.Label}
	}
	return nil, &NotLoadedError{edge: "speaker"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConversationRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversationrun.FieldError, conversationrun.FieldDebug:
			values[i] = new([]byte)
		case conversationrun.FieldID, conversationrun.FieldConversationID, conversationrun.FieldKind, conversationrun.FieldStatus, conversationrun.FieldReason, conversationrun.FieldSpeakerMembershipID, conversationrun.FieldRoundID, conversationrun.FieldPodID:
			values[i] = new(sql.NullString)
		case conversationrun.FieldRunAfter, conversationrun.FieldStartedAt, conversationrun.FieldFinishedAt, conversationrun.FieldHeartbeatAt, conversationrun.FieldCancelRequestedAt, conversationrun.FieldCreatedAt, conversationrun.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConversationRun fields.
func (_m *ConversationRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversationrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conversationrun.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case conversationrun.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = conversationrun.Kind(value.String)
			}
		case conversationrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = conversationrun.Status(value.String)
			}
		case conversationrun.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case conversationrun.FieldSpeakerMembershipID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field speaker_membership_id", values[i])
			} else if value.Valid {
				_m.SpeakerMembershipID = value.String
			}
		case conversationrun.FieldRoundID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field round_id", values[i])
			} else if value.Valid {
				_m.RoundID = new(string)
				*_m.RoundID = value.String
			}
		case conversationrun.FieldRunAfter:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field run_after", values[i])
			} else if value.Valid {
				_m.RunAfter = new(time.Time)
				*_m.RunAfter = value.Time
			}
		case conversationrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case conversationrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case conversationrun.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = new(time.Time)
				*_m.HeartbeatAt = value.Time
			}
		case conversationrun.FieldCancelRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested_at", values[i])
			} else if value.Valid {
				_m.CancelRequestedAt = new(time.Time)
				*_m.CancelRequestedAt = value.Time
			}
		case conversationrun.FieldError:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Error); err != nil {
					return fmt.Errorf("unmarshal field error: %w", err)
				}
			}
		case conversationrun.FieldDebug:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field debug", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Debug); err != nil {
					return fmt.Errorf("unmarshal field debug: %w", err)
				}
			}
		case conversationrun.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case conversationrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversationrun.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ConversationRun.
// This includes values selected through modifiers, order, etc.
func (_m *ConversationRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversation queries the "conversation" edge of the ConversationRun entity.
func (_m *ConversationRun) QueryConversation() *ConversationQuery {
	return NewConversationRunClient(_m.config).QueryConversation(_m)
}

// QuerySpeaker queries the "speaker" edge of the ConversationRun entity.
func (_m *ConversationRun) QuerySpeaker() *SpaceMembershipQuery {
	return NewConversationRunClient(_m.config).QuerySpeaker(_m)
}

// Update returns a builder for updating this ConversationRun.
// Note that you need to call ConversationRun.Unwrap() before calling this method if this ConversationRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConversationRun) Update() *ConversationRunUpdateOne {
	return NewConversationRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConversationRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConversationRun) Unwrap() *ConversationRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConversationRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConversationRun) String() string {
	var builder strings.Builder
	builder.WriteString("ConversationRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("speaker_membership_id=")
	builder.WriteString(_m.SpeakerMembershipID)
	builder.WriteString(", ")
	if v := _m.RoundID; v != nil {
		builder.WriteString("round_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RunAfter; v != nil {
		builder.WriteString("run_after=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.HeartbeatAt; v != nil {
		builder.WriteString("heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CancelRequestedAt; v != nil {
		builder.WriteString("cancel_requested_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(fmt.Sprintf("%v", _m.Error))
	builder.WriteString(", ")
	builder.WriteString("debug=")
	builder.WriteString(fmt.Sprintf("%v", _m.Debug))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConversationRuns is a parsable slice of ConversationRun.
type ConversationRuns []*ConversationRun
