package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// A conversation is a message timeline inside a space. The row doubles as
// the coarse-grained lock for seq allocation and scheduler state transitions.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("space_id").
			Immutable(),
		field.Enum("kind").
			Values("root", "branch", "thread").
			Default("root"),
		field.String("parent_conversation_id").
			Optional().
			Nillable(),
		field.String("forked_from_message_id").
			Optional().
			Nillable().
			Comment("Branches: message the fork starts after"),
		field.Enum("scheduling_state").
			Values("idle", "ai_generating", "paused", "failed").
			Default("idle").
			Comment("Cached projection of the active round"),
		field.Int64("group_queue_revision").
			Default(0).
			Comment("Monotone fence; clients discard updates at or below the last seen value"),
		field.Int("auto_rounds_remaining").
			Default(0).
			Comment("Auto-mode round budget left; decremented on round completion"),
		field.Int64("prompt_tokens_total").
			Default(0),
		field.Int64("completion_tokens_total").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("space", Space.Type).
			Ref("conversations").
			Field("space_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("runs", ConversationRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rounds", ConversationRound.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("space_id"),
		index.Fields("scheduling_state"),
	}
}
