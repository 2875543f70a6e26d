package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: persisted
// fan-out events for the timeline channel, kept for WebSocket catch-up.
// Ephemeral-channel events (typing, stream chunks) are never stored here.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Auto-increment int id (ent default); clients use it as the
		// monotone catch-up cursor per channel.
		field.String("conversation_id").
			Immutable(),
		field.String("channel").
			Immutable(),
		field.JSON("payload", map[string]any{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("events").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("conversation_id", "created_at"),
	}
}
