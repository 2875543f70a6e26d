// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
)

// RoundParticipant is the model entity for the RoundParticipant schema.
type RoundParticipant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RoundID holds the value of the "round_id" field.
	RoundID string `json:"round_id,omitempty"`
	// MembershipID holds the value of the "membership_id" field.
	MembershipID string `json:"membership_id,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// Status holds the value of the "status" field.
	Status roundparticipant.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoundParticipantQuery when eager-loading is set.
	Edges        RoundParticipantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoundParticipantEdges holds the relations/edges for other nodes in the graph.
type RoundParticipantEdges struct {
	// Round holds the value of the round edge.
	Round *ConversationRound `json:"round,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RoundOrErr returns the Round value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoundParticipantEdges) RoundOrErr() (*ConversationRound, error) {
	if e.Round != nil {
		return e.Round, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversationround.Label}
	}
	return nil, &NotLoadedError{edge: "round"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoundParticipant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roundparticipant.FieldPosition:
			values[i] = new(sql.NullInt64)
		case roundparticipant.FieldID, roundparticipant.FieldRoundID, roundparticipant.FieldMembershipID, roundparticipant.FieldStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoundParticipant fields.
func (_m *RoundParticipant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roundparticipant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case roundparticipant.FieldRoundID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field round_id", values[i])
			} else if value.Valid {
				_m.RoundID = value.String
			}
		case roundparticipant.FieldMembershipID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field membership_id", values[i])
			} else if value.Valid {
				_m.MembershipID = value.String
			}
		case roundparticipant.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case roundparticipant.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = roundparticipant.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoundParticipant.
// This includes values selected through modifiers, order, etc.
func (_m *RoundParticipant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRound queries the "round" edge of the RoundParticipant entity.
func (_m *RoundParticipant) QueryRound() *ConversationRoundQuery {
	return NewRoundParticipantClient(_m.config).QueryRound(_m)
}

// Update returns a builder for updating this RoundParticipant.
// Note that you need to call RoundParticipant.Unwrap() before calling this method if this RoundParticipant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoundParticipant) Update() *RoundParticipantUpdateOne {
	return NewRoundParticipantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoundParticipant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoundParticipant) Unwrap() *RoundParticipant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoundParticipant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoundParticipant) String() string {
	var builder strings.Builder
	builder.WriteString("RoundParticipant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("round_id=")
	builder.WriteString(_m.RoundID)
	builder.WriteString(", ")
	builder.WriteString("membership_id=")
	builder.WriteString(_m.MembershipID)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// RoundParticipants is a parsable slice of RoundParticipant.
type RoundParticipants []*RoundParticipant
