// Code generated by ent, DO NOT EDIT.

package spacemembership

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the spacemembership type in the database.
	Label = "space_membership"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "membership_id"
	// FieldSpaceID holds the string denoting the space_id field in the database.
	FieldSpaceID = "space_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldAvatarURL holds the string denoting the avatar_url field in the database.
	FieldAvatarURL = "avatar_url"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldParticipation holds the string denoting the participation field in the database.
	FieldParticipation = "participation"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTalkativeness holds the string denoting the talkativeness field in the database.
	FieldTalkativeness = "talkativeness"
	// FieldCopilotMode holds the string denoting the copilot_mode field in the database.
	FieldCopilotMode = "copilot_mode"
	// FieldCopilotRemainingSteps holds the string denoting the copilot_remaining_steps field in the database.
	FieldCopilotRemainingSteps = "copilot_remaining_steps"
	// FieldBoundCharacterID holds the string denoting the bound_character_id field in the database.
	FieldBoundCharacterID = "bound_character_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSpace holds the string denoting the space edge name in mutations.
	EdgeSpace = "space"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// SpaceFieldID holds the string denoting the ID field of the Space.
	SpaceFieldID = "space_id"
	// ConversationRunFieldID holds the string denoting the ID field of the ConversationRun.
	ConversationRunFieldID = "run_id"
	// Table holds the table name of the spacemembership in the database.
	Table = "space_memberships"
	// SpaceTable is the table that holds the space relation/edge.
	SpaceTable = "space_memberships"
	// SpaceInverseTable is the table name for the Space entity.
	// It exists in this package in order to avoid circular dependency with the "space" package.
	SpaceInverseTable = "spaces"
	// SpaceColumn is the table column denoting the space relation/edge.
	SpaceColumn = "space_id"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "conversation_runs"
	// RunsInverseTable is the table name for the ConversationRun entity.
	// It exists in this package in order to avoid circular dependency with the "conversationrun" package.
	RunsInverseTable = "conversation_runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "speaker_membership_id"
)

// Columns holds all SQL columns for spacemembership fields.
var Columns = []string{
	FieldID,
	FieldSpaceID,
	FieldKind,
	FieldDisplayName,
	FieldAvatarURL,
	FieldPosition,
	FieldParticipation,
	FieldStatus,
	FieldTalkativeness,
	FieldCopilotMode,
	FieldCopilotRemainingSteps,
	FieldBoundCharacterID,
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
	// DefaultCopilotRemainingSteps holds the default value on creation for the "copilot_remaining_steps" field.
	DefaultCopilotRemainingSteps int
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
	KindHuman     Kind = "human"
	KindCharacter Kind = "character"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindHuman, KindCharacter:
		return nil
	default:
		return fmt.Errorf("spacemembership: invalid enum value for kind field: %q", k)
	}
}

// Participation defines the type for the "participation" enum field.
type Participation string

// ParticipationActive is the default value of the Participation enum.
const DefaultParticipation = ParticipationActive

// Participation values.
const (
	ParticipationActive   Participation = "active"
	ParticipationMuted    Participation = "muted"
	ParticipationObserver Participation = "observer"
)

func (pa Participation) String() string {
	return string(pa)
}

// ParticipationValidator is a validator for the "participation" field enum values. It is called by the builders before save.
func ParticipationValidator(pa Participation) error {
	switch pa {
	case ParticipationActive, ParticipationMuted, ParticipationObserver:
		return nil
	default:
		return fmt.Errorf("spacemembership: invalid enum value for participation field: %q", pa)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive  Status = "active"
	StatusRemoved Status = "removed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusRemoved:
		return nil
	default:
		return fmt.Errorf("spacemembership: invalid enum value for status field: %q", s)
	}
}

// CopilotMode defines the type for the "copilot_mode" enum field.
type CopilotMode string

// CopilotModeNone is the default value of the CopilotMode enum.
const DefaultCopilotMode = CopilotModeNone

// CopilotMode values.
const (
	CopilotModeNone CopilotMode = "none"
	CopilotModeFull CopilotMode = "full"
)

func (cm CopilotMode) String() string {
	return string(cm)
}

// CopilotModeValidator is a validator for the "copilot_mode" field enum values. It is called by the builders before save.
func CopilotModeValidator(cm CopilotMode) error {
	switch cm {
	case CopilotModeNone, CopilotModeFull:
		return nil
	default:
		return fmt.Errorf("spacemembership: invalid enum value for copilot_mode field: %q", cm)
	}
}

// OrderOption defines the ordering options for the SpaceMembership queries.
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

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByAvatarURL orders the results by the avatar_url field.
func ByAvatarURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatarURL, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByParticipation orders the results by the participation field.
func ByParticipation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipation, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTalkativeness orders the results by the talkativeness field.
func ByTalkativeness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTalkativeness, opts...).ToFunc()
}

// ByCopilotMode orders the results by the copilot_mode field.
func ByCopilotMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCopilotMode, opts...).ToFunc()
}

// ByCopilotRemainingSteps orders the results by the copilot_remaining_steps field.
func ByCopilotRemainingSteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCopilotRemainingSteps, opts...).ToFunc()
}

// ByBoundCharacterID orders the results by the bound_character_id field.
func ByBoundCharacterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoundCharacterID, opts...).ToFunc()
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
func newSpaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpaceInverseTable, SpaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SpaceTable, SpaceColumn),
	)
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, ConversationRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
