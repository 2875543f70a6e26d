package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundParticipant holds the schema definition for the RoundParticipant
// entity: one slot in a round's materialized speaker queue.
type RoundParticipant struct {
	ent.Schema
}

// Fields of the RoundParticipant.
func (RoundParticipant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("participant_id").
			Unique().
			Immutable(),
		field.String("round_id").
			Immutable(),
		field.String("membership_id").
			Immutable(),
		field.Int("position").
			Immutable(),
		field.Enum("status").
			Values("pending", "succeeded", "failed", "skipped", "canceled").
			Default("pending"),
	}
}

// Edges of the RoundParticipant.
func (RoundParticipant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("round", ConversationRound.Type).
			Ref("participants").
			Field("round_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RoundParticipant.
func (RoundParticipant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_id", "position").
			Unique(),
	}
}
