package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Space holds the schema definition for the Space entity.
// A space is the configuration container for a set of conversations and
// their participants. The scheduler treats it as immutable-by-reference.
type Space struct {
	ent.Schema
}

// Fields of the Space.
func (Space) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("space_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Enum("reply_order").
			Values("manual", "natural", "list", "pooled").
			Default("natural"),
		field.Bool("allow_self_responses").
			Default(false),
		field.Bool("auto_mode_enabled").
			Default(false),
		field.Int("auto_mode_delay_ms").
			Default(0).
			Comment("Delay between auto-mode turns"),
		field.Enum("input_policy").
			Values("reject", "queue", "restart").
			Default("queue").
			Comment("What happens to user input while a generation is running"),
		field.Int("user_turn_debounce_ms").
			Default(0).
			Comment("Debounce before the AI reply to a user message is executed"),
		field.String("card_handling_mode").
			Optional().
			Comment("How character cards are merged into the prompt"),
		field.Bool("relax_message_trim").
			Default(false).
			Comment("Disable group-chat truncation of non-speaker turns"),
		field.Int64("token_limit").
			Optional().
			Nillable().
			Comment("Per-space token budget ceiling; nil means unlimited"),
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

// Edges of the Space.
func (Space) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("memberships", SpaceMembership.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
