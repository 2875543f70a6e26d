package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationRun holds the schema definition for the ConversationRun entity.
// A run is a single generation attempt. The partial unique indexes below are
// the database-enforced single-slot invariants: at most one running and at
// most one queued run per conversation.
type ConversationRun struct {
	ent.Schema
}

// Fields of the ConversationRun.
func (ConversationRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("kind").
			Values("auto_response", "regenerate", "force_talk", "copilot_start", "copilot_followup", "copilot_continue", "translation"),
		field.Enum("status").
			Values("queued", "running", "succeeded", "failed", "canceled", "skipped").
			Default("queued"),
		field.String("reason").
			Optional().
			Comment("Free-form trigger tag"),
		field.String("speaker_membership_id"),
		field.String("round_id").
			Optional().
			Nillable(),
		field.Time("run_after").
			Optional().
			Nillable().
			Comment("Earliest execution time (debounce, auto-mode delay)"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For stale-run detection"),
		field.Time("cancel_requested_at").
			Optional().
			Nillable().
			Comment("Sticky cooperative cancel; the executor observes it between chunks"),
		field.JSON("error", map[string]any{}).
			Optional().
			Comment("Structured {code, message, details} for terminal failures"),
		field.JSON("debug", map[string]any{}).
			Optional().
			Comment("Trigger context: expected_last_message_id, target_message_id, scheduled_by"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ConversationRun.
func (ConversationRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("runs").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
		edge.From("speaker", SpaceMembership.Type).
			Ref("runs").
			Field("speaker_membership_id").
			Unique().
			Required(),
	}
}

// Indexes of the ConversationRun.
func (ConversationRun) Indexes() []ent.Index {
	return []ent.Index{
		// Database-enforced single-slot invariants.
		index.Fields("conversation_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'running'")).
			StorageKey("uniq_run_running_per_conversation"),
		index.Fields("conversation_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'queued'")).
			StorageKey("uniq_run_queued_per_conversation"),

		// Worker polling and reaper scans
		index.Fields("status", "run_after"),
		index.Fields("status", "heartbeat_at"),
		index.Fields("status", "updated_at"),

		// Dashboard queries
		index.Fields("speaker_membership_id", "status"),
	}
}
