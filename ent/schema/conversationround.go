package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationRound holds the schema definition for the ConversationRound
// entity: the ledger of one round of AI speech. The participant queue is
// materialized when the round opens and never mutated by membership changes.
type ConversationRound struct {
	ent.Schema
}

// Fields of the ConversationRound.
func (ConversationRound) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("round_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("status").
			Values("active", "completed", "canceled").
			Default("active"),
		field.Enum("scheduling_state").
			Values("ai_generating", "paused", "failed", "idle").
			Default("ai_generating"),
		field.Int("current_position").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ConversationRound.
func (ConversationRound) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("rounds").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
		edge.To("participants", RoundParticipant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ConversationRound.
func (ConversationRound) Indexes() []ent.Index {
	return []ent.Index{
		// One active round per conversation.
		index.Fields("conversation_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'active'")).
			StorageKey("uniq_round_active_per_conversation"),
		index.Fields("conversation_id", "created_at"),
	}
}
