// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"root", "branch", "thread"}, Default: "root"},
		{Name: "parent_conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "forked_from_message_id", Type: field.TypeString, Nullable: true},
		{Name: "scheduling_state", Type: field.TypeEnum, Enums: []string{"idle", "ai_generating", "paused", "failed"}, Default: "idle"},
		{Name: "group_queue_revision", Type: field.TypeInt64, Default: 0},
		{Name: "auto_rounds_remaining", Type: field.TypeInt, Default: 0},
		{Name: "prompt_tokens_total", Type: field.TypeInt64, Default: 0},
		{Name: "completion_tokens_total", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "space_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_spaces_conversations",
				Columns:    []*schema.Column{ConversationsColumns[11]},
				RefColumns: []*schema.Column{SpacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_space_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[11]},
			},
			{
				Name:    "conversation_scheduling_state",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[4]},
			},
		},
	}
	// ConversationRoundsColumns holds the columns for the "conversation_rounds" table.
	ConversationRoundsColumns = []*schema.Column{
		{Name: "round_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "canceled"}, Default: "active"},
		{Name: "scheduling_state", Type: field.TypeEnum, Enums: []string{"ai_generating", "paused", "failed", "idle"}, Default: "ai_generating"},
		{Name: "current_position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// ConversationRoundsTable holds the schema information for the "conversation_rounds" table.
	ConversationRoundsTable = &schema.Table{
		Name:       "conversation_rounds",
		Columns:    ConversationRoundsColumns,
		PrimaryKey: []*schema.Column{ConversationRoundsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_rounds_conversations_rounds",
				Columns:    []*schema.Column{ConversationRoundsColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uniq_round_active_per_conversation",
				Unique:  true,
				Columns: []*schema.Column{ConversationRoundsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'active'",
				},
			},
			{
				Name:    "conversationround_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationRoundsColumns[6], ConversationRoundsColumns[4]},
			},
		},
	}
	// ConversationRunsColumns holds the columns for the "conversation_runs" table.
	ConversationRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"auto_response", "regenerate", "force_talk", "copilot_start", "copilot_followup", "copilot_continue", "translation"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "succeeded", "failed", "canceled", "skipped"}, Default: "queued"},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "round_id", Type: field.TypeString, Nullable: true},
		{Name: "run_after", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_requested_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeJSON, Nullable: true},
		{Name: "debug", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "speaker_membership_id", Type: field.TypeString},
	}
	// ConversationRunsTable holds the schema information for the "conversation_runs" table.
	ConversationRunsTable = &schema.Table{
		Name:       "conversation_runs",
		Columns:    ConversationRunsColumns,
		PrimaryKey: []*schema.Column{ConversationRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_runs_conversations_runs",
				Columns:    []*schema.Column{ConversationRunsColumns[15]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "conversation_runs_space_memberships_runs",
				Columns:    []*schema.Column{ConversationRunsColumns[16]},
				RefColumns: []*schema.Column{SpaceMembershipsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uniq_run_running_per_conversation",
				Unique:  true,
				Columns: []*schema.Column{ConversationRunsColumns[15]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'running'",
				},
			},
			{
				Name:    "uniq_run_queued_per_conversation",
				Unique:  true,
				Columns: []*schema.Column{ConversationRunsColumns[15]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'queued'",
				},
			},
			{
				Name:    "conversationrun_status_run_after",
				Unique:  false,
				Columns: []*schema.Column{ConversationRunsColumns[2], ConversationRunsColumns[5]},
			},
			{
				Name:    "conversationrun_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationRunsColumns[2], ConversationRunsColumns[8]},
			},
			{
				Name:    "conversationrun_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationRunsColumns[2], ConversationRunsColumns[14]},
			},
			{
				Name:    "conversationrun_speaker_membership_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConversationRunsColumns[16], ConversationRunsColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_conversations_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "visibility", Type: field.TypeEnum, Enums: []string{"normal", "excluded", "hidden"}, Default: "normal"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "text_content_id", Type: field.TypeString, Nullable: true},
		{Name: "active_swipe_id", Type: field.TypeString, Nullable: true},
		{Name: "swipes_count", Type: field.TypeInt, Default: 0},
		{Name: "speaker_membership_id", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[11]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_seq",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[11], MessagesColumns[1]},
			},
			{
				Name:    "message_conversation_id_visibility",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[11], MessagesColumns[3]},
			},
		},
	}
	// MessageSwipesColumns holds the columns for the "message_swipes" table.
	MessageSwipesColumns = []*schema.Column{
		{Name: "swipe_id", Type: field.TypeString, Unique: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "text_content_id", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "message_id", Type: field.TypeString},
	}
	// MessageSwipesTable holds the schema information for the "message_swipes" table.
	MessageSwipesTable = &schema.Table{
		Name:       "message_swipes",
		Columns:    MessageSwipesColumns,
		PrimaryKey: []*schema.Column{MessageSwipesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "message_swipes_messages_swipes",
				Columns:    []*schema.Column{MessageSwipesColumns[6]},
				RefColumns: []*schema.Column{MessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "messageswipe_message_id_position",
				Unique:  true,
				Columns: []*schema.Column{MessageSwipesColumns[6], MessageSwipesColumns[1]},
			},
		},
	}
	// RoundParticipantsColumns holds the columns for the "round_participants" table.
	RoundParticipantsColumns = []*schema.Column{
		{Name: "participant_id", Type: field.TypeString, Unique: true},
		{Name: "membership_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "succeeded", "failed", "skipped", "canceled"}, Default: "pending"},
		{Name: "round_id", Type: field.TypeString},
	}
	// RoundParticipantsTable holds the schema information for the "round_participants" table.
	RoundParticipantsTable = &schema.Table{
		Name:       "round_participants",
		Columns:    RoundParticipantsColumns,
		PrimaryKey: []*schema.Column{RoundParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "round_participants_conversation_rounds_participants",
				Columns:    []*schema.Column{RoundParticipantsColumns[4]},
				RefColumns: []*schema.Column{ConversationRoundsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "roundparticipant_round_id_position",
				Unique:  true,
				Columns: []*schema.Column{RoundParticipantsColumns[4], RoundParticipantsColumns[2]},
			},
		},
	}
	// SpacesColumns holds the columns for the "spaces" table.
	SpacesColumns = []*schema.Column{
		{Name: "space_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "reply_order", Type: field.TypeEnum, Enums: []string{"manual", "natural", "list", "pooled"}, Default: "natural"},
		{Name: "allow_self_responses", Type: field.TypeBool, Default: false},
		{Name: "auto_mode_enabled", Type: field.TypeBool, Default: false},
		{Name: "auto_mode_delay_ms", Type: field.TypeInt, Default: 0},
		{Name: "input_policy", Type: field.TypeEnum, Enums: []string{"reject", "queue", "restart"}, Default: "queue"},
		{Name: "user_turn_debounce_ms", Type: field.TypeInt, Default: 0},
		{Name: "card_handling_mode", Type: field.TypeString, Nullable: true},
		{Name: "relax_message_trim", Type: field.TypeBool, Default: false},
		{Name: "token_limit", Type: field.TypeInt64, Nullable: true},
		{Name: "prompt_tokens_total", Type: field.TypeInt64, Default: 0},
		{Name: "completion_tokens_total", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SpacesTable holds the schema information for the "spaces" table.
	SpacesTable = &schema.Table{
		Name:       "spaces",
		Columns:    SpacesColumns,
		PrimaryKey: []*schema.Column{SpacesColumns[0]},
	}
	// SpaceMembershipsColumns holds the columns for the "space_memberships" table.
	SpaceMembershipsColumns = []*schema.Column{
		{Name: "membership_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"human", "character"}},
		{Name: "display_name", Type: field.TypeString},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "participation", Type: field.TypeEnum, Enums: []string{"active", "muted", "observer"}, Default: "active"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "removed"}, Default: "active"},
		{Name: "talkativeness", Type: field.TypeFloat64, Nullable: true},
		{Name: "copilot_mode", Type: field.TypeEnum, Enums: []string{"none", "full"}, Default: "none"},
		{Name: "copilot_remaining_steps", Type: field.TypeInt, Default: 0},
		{Name: "bound_character_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "space_id", Type: field.TypeString},
	}
	// SpaceMembershipsTable holds the schema information for the "space_memberships" table.
	SpaceMembershipsTable = &schema.Table{
		Name:       "space_memberships",
		Columns:    SpaceMembershipsColumns,
		PrimaryKey: []*schema.Column{SpaceMembershipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "space_memberships_spaces_memberships",
				Columns:    []*schema.Column{SpaceMembershipsColumns[13]},
				RefColumns: []*schema.Column{SpacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "spacemembership_space_id_position",
				Unique:  false,
				Columns: []*schema.Column{SpaceMembershipsColumns[13], SpaceMembershipsColumns[4]},
			},
			{
				Name:    "spacemembership_space_id_status_participation",
				Unique:  false,
				Columns: []*schema.Column{SpaceMembershipsColumns[13], SpaceMembershipsColumns[6], SpaceMembershipsColumns[5]},
			},
		},
	}
	// TextContentsColumns holds the columns for the "text_contents" table.
	TextContentsColumns = []*schema.Column{
		{Name: "text_content_id", Type: field.TypeString, Unique: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "ref_count", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TextContentsTable holds the schema information for the "text_contents" table.
	TextContentsTable = &schema.Table{
		Name:       "text_contents",
		Columns:    TextContentsColumns,
		PrimaryKey: []*schema.Column{TextContentsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversationsTable,
		ConversationRoundsTable,
		ConversationRunsTable,
		EventsTable,
		MessagesTable,
		MessageSwipesTable,
		RoundParticipantsTable,
		SpacesTable,
		SpaceMembershipsTable,
		TextContentsTable,
	}
)

func init() {
	ConversationsTable.ForeignKeys[0].RefTable = SpacesTable
	ConversationRoundsTable.ForeignKeys[0].RefTable = ConversationsTable
	ConversationRunsTable.ForeignKeys[0].RefTable = ConversationsTable
	ConversationRunsTable.ForeignKeys[1].RefTable = SpaceMembershipsTable
	EventsTable.ForeignKeys[0].RefTable = ConversationsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	MessageSwipesTable.ForeignKeys[0].RefTable = MessagesTable
	RoundParticipantsTable.ForeignKeys[0].RefTable = ConversationRoundsTable
	SpaceMembershipsTable.ForeignKeys[0].RefTable = SpacesTable
}
