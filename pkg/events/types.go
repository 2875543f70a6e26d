// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Every conversation has two logical topics:
//
//   - the EPHEMERAL channel carries typing indicators, streaming previews,
//     and scheduler notices. Nothing is persisted; events lost on
//     disconnect are gone. Clients tolerate reordering via render_seq.
//
//   - the TIMELINE channel carries committed messages and swipe updates.
//     Events are stored in the events table before NOTIFY fires, so
//     reconnecting clients catch up from their last seen event id.
//
// A failed worker can therefore never leave a partial message in front of
// a client: it either saw the typing bubble (ephemeral) or the fully
// committed message (timeline).
package events

// Timeline event types (stored in DB + NOTIFY).
const (
	EventTypeMessageCreated    = "message.created"
	EventTypeSwipeAdded        = "message.swipe_added"
	EventTypeConversationState = "conversation.state"
)

// Ephemeral event types (NOTIFY only, no DB persistence).
const (
	EventTypeTypingStart      = "typing_start"
	EventTypeTypingStop       = "typing_stop"
	EventTypeStreamChunk      = "stream_chunk"
	EventTypeStreamComplete   = "stream_complete"
	EventTypeRunCanceled      = "run_canceled"
	EventTypeRunSkipped       = "run_skipped"
	EventTypeRunFailed        = "run_failed"
	EventTypeAutoDisabled     = "auto_disabled"
	EventTypeAutoStepsUpdated = "auto_steps_updated"
	EventTypeGroupQueue       = "group_queue_updated"
)

// EphemeralChannel returns the NOTIFY channel for a conversation's
// ephemeral topic. Format: "conversation:{conversation_id}".
func EphemeralChannel(conversationID string) string {
	return "conversation:" + conversationID
}

// TimelineChannel returns the NOTIFY channel for a conversation's
// persistent topic. Format: "timeline:{conversation_id}".
func TimelineChannel(conversationID string) string {
	return "timeline:" + conversationID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "timeline:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
