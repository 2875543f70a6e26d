package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SpaceMembership holds the schema definition for the SpaceMembership entity.
// A membership is a participant slot within a space: either a human or a
// character. A human with a bound character is a copilot participant.
type SpaceMembership struct {
	ent.Schema
}

// Fields of the SpaceMembership.
func (SpaceMembership) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("membership_id").
			Unique().
			Immutable(),
		field.String("space_id").
			Immutable(),
		field.Enum("kind").
			Values("human", "character"),
		field.String("display_name"),
		field.String("avatar_url").
			Optional(),
		field.Int("position").
			Comment("Ordered rotation slot within the space"),
		field.Enum("participation").
			Values("active", "muted", "observer").
			Default("active"),
		field.Enum("status").
			Values("active", "removed").
			Default("active"),
		field.Float("talkativeness").
			Optional().
			Nillable().
			Comment("Activation probability in [0.0, 1.0]; nil falls back to 0.5"),
		field.Enum("copilot_mode").
			Values("none", "full").
			Default("none").
			Comment("Humans only: full means the scheduler auto-advances their turns"),
		field.Int("copilot_remaining_steps").
			Default(0).
			Comment("Auto-advanced copilot turns left, in [0, COPILOT_MAX_STEPS]"),
		field.String("bound_character_id").
			Optional().
			Nillable().
			Comment("Humans only: character the copilot speaks as"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SpaceMembership.
func (SpaceMembership) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("space", Space.Type).
			Ref("memberships").
			Field("space_id").
			Unique().
			Required().
			Immutable(),
		edge.To("runs", ConversationRun.Type),
	}
}

// Indexes of the SpaceMembership.
func (SpaceMembership) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("space_id", "position"),
		index.Fields("space_id", "status", "participation"),
	}
}
