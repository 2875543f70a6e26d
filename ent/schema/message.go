package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Messages are strictly ordered per conversation by seq, allocated as
// max(seq)+1 under the conversation row lock. Content mirrors the active
// swipe and is stored by reference via a shared TextContent blob.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Monotone per-conversation order"),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.Enum("visibility").
			Values("normal", "excluded", "hidden").
			Default("normal").
			Comment("Only normal|excluded traverse the prompt window"),
		field.Text("content").
			Comment("Mirror of the active swipe's text"),
		field.String("text_content_id").
			Optional().
			Nillable().
			Comment("Shared blob reference for copy-on-write branching"),
		field.String("active_swipe_id").
			Optional().
			Nillable(),
		field.Int("swipes_count").
			Default(0),
		field.String("speaker_membership_id").
			Optional().
			Nillable(),
		field.String("run_id").
			Optional().
			Nillable().
			Comment("Originating ConversationRun for assistant messages"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
		edge.To("swipes", MessageSwipe.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "seq").
			Unique(),
		index.Fields("conversation_id", "visibility"),
	}
}
