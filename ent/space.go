// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talkwheel/talkwheel/ent/space"
)

// Space is the model entity for the Space schema.
type Space struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// ReplyOrder holds the value of the "reply_order" field.
	ReplyOrder space.ReplyOrder `json:"reply_order,omitempty"`
	// AllowSelfResponses holds the value of the "allow_self_responses" field.
	AllowSelfResponses bool `json:"allow_self_responses,omitempty"`
	// AutoModeEnabled holds the value of the "auto_mode_enabled" field.
	AutoModeEnabled bool `json:"auto_mode_enabled,omitempty"`
	// Delay between auto-mode turns
	AutoModeDelayMs int `json:"auto_mode_delay_ms,omitempty"`
	// What happens to user input while a generation is running
	InputPolicy space.InputPolicy `json:"input_policy,omitempty"`
	// Debounce before the AI reply to a user message is executed
	UserTurnDebounceMs int `json:"user_turn_debounce_ms,omitempty"`
	// How character cards are merged into the prompt
	CardHandlingMode string `json:"card_handling_mode,omitempty"`
	// Disable group-chat truncation of non-speaker turns
	RelaxMessageTrim bool `json:"relax_message_trim,omitempty"`
	// Per-space token budget ceiling; nil means unlimited
	TokenLimit *int64 `json:"token_limit,omitempty"`
	// PromptTokensTotal holds the value of the "prompt_tokens_total" field.
	PromptTokensTotal int64 `json:"prompt_tokens_total,omitempty"`
	// CompletionTokensTotal holds the value of the "completion_tokens_total" field.
	CompletionTokensTotal int64 `json:"completion_tokens_total,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpaceQuery when eager-loading is set.
	Edges        SpaceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SpaceEdges holds the relations/edges for other nodes in the graph.
type SpaceEdges struct {
	// Memberships holds the value of the memberships edge.
	Memberships []*SpaceMembership `json:"memberships,omitempty"`
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MembershipsOrErr returns the Memberships value or an error if the edge
// was not loaded in eager-loading.
func (e SpaceEdges) MembershipsOrErr() ([]*SpaceMembership, error) {
	if e.loadedTypes[0] {
		return e.Memberships, nil
	}
	return nil, &NotLoadedError{edge: "memberships"}
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e SpaceEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[1] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Space) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case space.FieldAllowSelfResponses, space.FieldAutoModeEnabled, space.FieldRelaxMessageTrim:
			values[i] = new(sql.NullBool)
		case space.FieldAutoModeDelayMs, space.FieldUserTurnDebounceMs, space.FieldTokenLimit, space.FieldPromptTokensTotal, space.FieldCompletionTokensTotal:
			values[i] = new(sql.NullInt64)
		case space.FieldID, space.FieldName, space.FieldReplyOrder, space.FieldInputPolicy, space.FieldCardHandlingMode:
			values[i] = new(sql.NullString)
		case space.FieldCreatedAt, space.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Space fields.
func (_m *Space) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case space.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case space.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case space.FieldReplyOrder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reply_order", values[i])
			} else if value.Valid {
				_m.ReplyOrder = space.ReplyOrder(value.String)
			}
		case space.FieldAllowSelfResponses:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_self_responses", values[i])
			} else if value.Valid {
				_m.AllowSelfResponses = value.Bool
			}
		case space.FieldAutoModeEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_mode_enabled", values[i])
			} else if value.Valid {
				_m.AutoModeEnabled = value.Bool
			}
		case space.FieldAutoModeDelayMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field auto_mode_delay_ms", values[i])
			} else if value.Valid {
				_m.AutoModeDelayMs = int(value.Int64)
			}
		case space.FieldInputPolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_policy", values[i])
			} else if value.Valid {
				_m.InputPolicy = space.InputPolicy(value.String)
			}
		case space.FieldUserTurnDebounceMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_turn_debounce_ms", values[i])
			} else if value.Valid {
				_m.UserTurnDebounceMs = int(value.Int64)
			}
		case space.FieldCardHandlingMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_handling_mode", values[i])
			} else if value.Valid {
				_m.CardHandlingMode = value.String
			}
		case space.FieldRelaxMessageTrim:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field relax_message_trim", values[i])
			} else if value.Valid {
				_m.RelaxMessageTrim = value.Bool
			}
		case space.FieldTokenLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_limit", values[i])
			} else if value.Valid {
				_m.TokenLimit = new(int64)
				*_m.TokenLimit = value.Int64
			}
		case space.FieldPromptTokensTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens_total", values[i])
			} else if value.Valid {
				_m.PromptTokensTotal = value.Int64
			}
		case space.FieldCompletionTokensTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens_total", values[i])
			} else if value.Valid {
				_m.CompletionTokensTotal = value.Int64
			}
		case space.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case space.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Space.
// This includes values selected through modifiers, order, etc.
func (_m *Space) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMemberships queries the "memberships" edge of the Space entity.
func (_m *Space) QueryMemberships() *SpaceMembershipQuery {
	return NewSpaceClient(_m.config).QueryMemberships(_m)
}

// QueryConversations queries the "conversations" edge of the Space entity.
func (_m *Space) QueryConversations() *ConversationQuery {
	return NewSpaceClient(_m.config).QueryConversations(_m)
}

// Update returns a builder for updating this Space.
// Note that you need to call Space.Unwrap() before calling this method if this Space
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Space) Update() *SpaceUpdateOne {
	return NewSpaceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Space entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Space) Unwrap() *Space {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Space is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Space) String() string {
	var builder strings.Builder
	builder.WriteString("Space(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("reply_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReplyOrder))
	builder.WriteString(", ")
	builder.WriteString("allow_self_responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowSelfResponses))
	builder.WriteString(", ")
	builder.WriteString("auto_mode_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoModeEnabled))
	builder.WriteString(", ")
	builder.WriteString("auto_mode_delay_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoModeDelayMs))
	builder.WriteString(", ")
	builder.WriteString("input_policy=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputPolicy))
	builder.WriteString(", ")
	builder.WriteString("user_turn_debounce_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserTurnDebounceMs))
	builder.WriteString(", ")
	builder.WriteString("card_handling_mode=")
	builder.WriteString(_m.CardHandlingMode)
	builder.WriteString(", ")
	builder.WriteString("relax_message_trim=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelaxMessageTrim))
	builder.WriteString(", ")
	if v := _m.TokenLimit; v != nil {
		builder.WriteString("token_limit=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
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

// Spaces is a parsable slice of Space.
type Spaces []*Space
