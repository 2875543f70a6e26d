// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
)

// SpaceMembership is the model entity for the SpaceMembership schema.
type SpaceMembership struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SpaceID holds the value of the "space_id" field.
	SpaceID string `json:"space_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind spacemembership.Kind `json:"kind,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// AvatarURL holds the value of the "avatar_url" field.
	AvatarURL string `json:"avatar_url,omitempty"`
	// Ordered rotation slot within the space
	Position int `json:"position,omitempty"`
	// Participation holds the value of the "participation" field.
	Participation spacemembership.Participation `json:"participation,omitempty"`
	// Status holds the value of the "status" field.
	Status spacemembership.Status `json:"status,omitempty"`
	// Activation probability in [0.0, 1.0]; nil falls back to 0.5
	Talkativeness *float64 `json:"talkativeness,omitempty"`
	// Humans only: full means the scheduler auto-advances their turns
	CopilotMode spacemembership.CopilotMode `json:"copilot_mode,omitempty"`
	// Auto-advanced copilot turns left, in [0, COPILOT_MAX_STEPS]
	CopilotRemainingSteps int `json:"copilot_remaining_steps,omitempty"`
	// Humans only: character the copilot speaks as
	BoundCharacterID *string `json:"bound_character_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpaceMembershipQuery when eager-loading is set.
	Edges        SpaceMembershipEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SpaceMembershipEdges holds the relations/edges for other nodes in the graph.
type SpaceMembershipEdges struct {
	// Space holds the value of the space edge.
	Space *Space `json:"space,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*ConversationRun `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SpaceOrErr returns the Space value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpaceMembershipEdges) SpaceOrErr() (*Space, error) {
	if e.Space != nil {
		return e.Space, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: space.Label}
	}
	return nil, &NotLoadedError{edge: "space"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e SpaceMembershipEdges) RunsOrErr() ([]*ConversationRun, error) {
	if e.loadedTypes[1] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SpaceMembership) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case spacemembership.FieldTalkativeness:
			values[i] = new(sql.NullFloat64)
		case spacemembership.FieldPosition, spacemembership.FieldCopilotRemainingSteps:
			values[i] = new(sql.NullInt64)
		case spacemembership.FieldID, spacemembership.FieldSpaceID, spacemembership.FieldKind, spacemembership.FieldDisplayName, spacemembership.FieldAvatarURL, spacemembership.FieldParticipation, spacemembership.FieldStatus, spacemembership.FieldCopilotMode, spacemembership.FieldBoundCharacterID:
			values[i] = new(sql.NullString)
		case spacemembership.FieldCreatedAt, spacemembership.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SpaceMembership fields.
func (_m *SpaceMembership) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case spacemembership.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case spacemembership.FieldSpaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field space_id", values[i])
			} else if value.Valid {
				_m.SpaceID = value.String
			}
		case spacemembership.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = spacemembership.Kind(value.String)
			}
		case spacemembership.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case spacemembership.FieldAvatarURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar_url", values[i])
			} else if value.Valid {
				_m.AvatarURL = value.String
			}
		case spacemembership.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case spacemembership.FieldParticipation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participation", values[i])
			} else if value.Valid {
				_m.Participation = spacemembership.Participation(value.String)
			}
		case spacemembership.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = spacemembership.Status(value.String)
			}
		case spacemembership.FieldTalkativeness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field talkativeness", values[i])
			} else if value.Valid {
				_m.Talkativeness = new(float64)
				*_m.Talkativeness = value.Float64
			}
		case spacemembership.FieldCopilotMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field copilot_mode", values[i])
			} else if value.Valid {
				_m.CopilotMode = spacemembership.CopilotMode(value.String)
			}
		case spacemembership.FieldCopilotRemainingSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field copilot_remaining_steps", values[i])
			} else if value.Valid {
				_m.CopilotRemainingSteps = int(value.Int64)
			}
		case spacemembership.FieldBoundCharacterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bound_character_id", values[i])
			} else if value.Valid {
				_m.BoundCharacterID = new(string)
				*_m.BoundCharacterID = value.String
			}
		case spacemembership.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case spacemembership.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SpaceMembership.
// This includes values selected through modifiers, order, etc.
func (_m *SpaceMembership) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySpace queries the "space" edge of the SpaceMembership entity.
func (_m *SpaceMembership) QuerySpace() *SpaceQuery {
	return NewSpaceMembershipClient(_m.config).QuerySpace(_m)
}

// QueryRuns queries the "runs" edge of the SpaceMembership entity.
func (_m *SpaceMembership) QueryRuns() *ConversationRunQuery {
	return NewSpaceMembershipClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this SpaceMembership.
// Note that you need to call SpaceMembership.Unwrap() before calling this method if this SpaceMembership
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SpaceMembership) Update() *SpaceMembershipUpdateOne {
	return NewSpaceMembershipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SpaceMembership entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SpaceMembership) Unwrap() *SpaceMembership {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SpaceMembership is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SpaceMembership) String() string {
	var builder strings.Builder
	builder.WriteString("SpaceMembership(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("space_id=")
	builder.WriteString(_m.SpaceID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("avatar_url=")
	builder.WriteString(_m.AvatarURL)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("participation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Participation))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Talkativeness; v != nil {
		builder.WriteString("talkativeness=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("copilot_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.CopilotMode))
	builder.WriteString(", ")
	builder.WriteString("copilot_remaining_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.CopilotRemainingSteps))
	builder.WriteString(", ")
	if v := _m.BoundCharacterID; v != nil {
		builder.WriteString("bound_character_id=")
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

// SpaceMemberships is a parsable slice of SpaceMembership.
type SpaceMemberships []*SpaceMembership
