package events

// BasePayload carries the fields common to every conversation event.
type BasePayload struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// TypingPayload is the payload for typing_start / typing_stop ephemeral
// events, carrying the speaker's display metadata for the typing bubble.
type TypingPayload struct {
	BasePayload
	MembershipID string `json:"membership_id"`
	DisplayName  string `json:"display_name"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	IsUser       bool   `json:"is_user"`
	RunID        string `json:"run_id"`
}

// StreamChunkPayload is the payload for stream_chunk ephemeral events.
// Content is cumulative, not a delta, so a dropped chunk self-heals on
// the next one.
type StreamChunkPayload struct {
	BasePayload
	RunID   string `json:"run_id"`
	Content string `json:"content"`
}

// StreamCompletePayload is the payload for stream_complete ephemeral events.
type StreamCompletePayload struct {
	BasePayload
	RunID string `json:"run_id"`
}

// RunNoticePayload is the payload for run_canceled / run_skipped /
// run_failed ephemeral events.
type RunNoticePayload struct {
	BasePayload
	RunID  string `json:"run_id"`
	Reason string `json:"reason,omitempty"`
	Code   string `json:"code,omitempty"`
}

// AutoModePayload is the payload for auto_disabled / auto_steps_updated
// ephemeral events.
type AutoModePayload struct {
	BasePayload
	MembershipID   string `json:"membership_id,omitempty"`
	RemainingSteps int    `json:"remaining_steps"`
}

// GroupQueuePayload is the payload for group_queue_updated ephemeral
// events. RenderSeq is the conversation's group_queue_revision; clients
// discard updates at or below the last value they observed.
type GroupQueuePayload struct {
	BasePayload
	RenderSeq       int64    `json:"render_seq"`
	SchedulingState string   `json:"scheduling_state"`
	QueuedIDs       []string `json:"queued_ids,omitempty"`
	CurrentPosition int      `json:"current_position"`
}

// MessageCreatedPayload is the payload for message.created timeline events.
// Published only after the commit transaction, keyed by a stable DOM id.
type MessageCreatedPayload struct {
	BasePayload
	MessageID    string `json:"message_id"`
	DOMID        string `json:"dom_id"`
	Seq          int    `json:"seq"`
	Role         string `json:"role"`
	Content      string `json:"content"`
	MembershipID string `json:"membership_id,omitempty"`
	RunID        string `json:"run_id,omitempty"`
}

// SwipeAddedPayload is the payload for message.swipe_added timeline events
// (regeneration commits).
type SwipeAddedPayload struct {
	BasePayload
	MessageID string `json:"message_id"`
	DOMID     string `json:"dom_id"`
	SwipeID   string `json:"swipe_id"`
	Position  int    `json:"position"`
	Content   string `json:"content"`
	RunID     string `json:"run_id,omitempty"`
}

// ConversationStatePayload is the payload for conversation.state timeline
// events (scheduling_state transitions worth persisting).
type ConversationStatePayload struct {
	BasePayload
	SchedulingState string `json:"scheduling_state"`
	RenderSeq       int64  `json:"render_seq"`
}

// MessageDOMID returns the stable DOM id for a message, used by the
// timeline channel to key append/replace operations.
func MessageDOMID(messageID string) string {
	return "message-" + messageID
}
