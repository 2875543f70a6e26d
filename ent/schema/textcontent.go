package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TextContent holds the schema definition for the TextContent entity.
// Message and swipe bodies are stored by reference with a refcount so
// branching can share content copy-on-write.
type TextContent struct {
	ent.Schema
}

// Fields of the TextContent.
func (TextContent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("text_content_id").
			Unique().
			Immutable(),
		field.Text("body"),
		field.Int("ref_count").
			Default(1),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
