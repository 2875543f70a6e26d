package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageSwipe holds the schema definition for the MessageSwipe entity.
// A swipe is an alternative generated body for one assistant message.
type MessageSwipe struct {
	ent.Schema
}

// Fields of the MessageSwipe.
func (MessageSwipe) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("swipe_id").
			Unique().
			Immutable(),
		field.String("message_id").
			Immutable(),
		field.Int("position").
			Immutable().
			Comment("0-based; swipe 0 is the original generation"),
		field.Text("content"),
		field.String("text_content_id").
			Optional().
			Nillable(),
		field.String("run_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MessageSwipe.
func (MessageSwipe) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("message", Message.Type).
			Ref("swipes").
			Field("message_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MessageSwipe.
func (MessageSwipe) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "position").
			Unique(),
	}
}
