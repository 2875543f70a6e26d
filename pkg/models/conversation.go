package models

// CreateMessageRequest is the input for committing a message to a
// conversation timeline. Seq is allocated by the service, not the caller.
type CreateMessageRequest struct {
	ConversationID      string
	Role                string
	Content             string
	Visibility          string
	SpeakerMembershipID string
	RunID               string
}

// CommitAssistantRequest is the input for committing a completed
// generation. The message insert, swipe insert, token counter updates, and
// run finalization happen in one transaction.
type CommitAssistantRequest struct {
	ConversationID      string
	SpaceID             string
	RunID               string
	SpeakerMembershipID string
	Content             string
	Usage               TokenUsage
}

// CommitSwipeRequest is the input for committing a regeneration as a new
// active swipe on an existing assistant message.
type CommitSwipeRequest struct {
	ConversationID  string
	SpaceID         string
	RunID           string
	TargetMessageID string
	Content         string
	Usage           TokenUsage
}

// CreateSpaceRequest is the input for creating a space.
type CreateSpaceRequest struct {
	Name               string
	ReplyOrder         string
	AllowSelfResponses bool
	InputPolicy        string
	UserTurnDebounceMs int
	RelaxMessageTrim   bool
	TokenLimit         *int64
}

// AddMembershipRequest is the input for adding a participant to a space.
type AddMembershipRequest struct {
	SpaceID       string
	Kind          string
	DisplayName   string
	AvatarURL     string
	Position      int
	Talkativeness *float64
}

// HealthStatus values returned by the conversation health checker.
const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"
	HealthFailed   = "failed"
)

// Health actions suggested by the conversation health checker.
const (
	HealthActionNone     = "none"
	HealthActionRetry    = "retry"
	HealthActionGenerate = "generate"
	HealthActionAdvance  = "advance"
	HealthActionReap     = "reap"
)

// HealthReport is the pure inspection result for one conversation.
// The checker never mutates; the reaper acts on its findings.
type HealthReport struct {
	Status  string         `json:"status"`
	Action  string         `json:"action"`
	Details map[string]any `json:"details,omitempty"`
}
