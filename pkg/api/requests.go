package api

// CreateSpaceRequest is the body for POST /api/v1/spaces.
type CreateSpaceRequest struct {
	Name               string `json:"name" binding:"required"`
	ReplyOrder         string `json:"reply_order"`
	AllowSelfResponses bool   `json:"allow_self_responses"`
	InputPolicy        string `json:"input_policy"`
	UserTurnDebounceMs int    `json:"user_turn_debounce_ms"`
	RelaxMessageTrim   bool   `json:"relax_message_trim"`
	TokenLimit         *int64 `json:"token_limit,omitempty"`
}

// AddMembershipRequest is the body for POST /api/v1/spaces/:id/memberships.
type AddMembershipRequest struct {
	Kind          string   `json:"kind" binding:"required"`
	DisplayName   string   `json:"display_name" binding:"required"`
	AvatarURL     string   `json:"avatar_url"`
	Position      int      `json:"position"`
	Talkativeness *float64 `json:"talkativeness,omitempty"`
}

// SetParticipationRequest is the body for PATCH /api/v1/memberships/:id/participation.
type SetParticipationRequest struct {
	Participation string `json:"participation" binding:"required"`
}

// SetCopilotRequest is the body for POST /api/v1/memberships/:id/copilot.
type SetCopilotRequest struct {
	Mode  string `json:"mode" binding:"required"`
	Steps int    `json:"steps"`
}

// PostMessageRequest is the body for POST /api/v1/conversations/:id/messages.
type PostMessageRequest struct {
	MembershipID string `json:"membership_id"`
	Content      string `json:"content" binding:"required"`
}

// BranchRequest is the body for POST /api/v1/conversations/:id/branch.
type BranchRequest struct {
	ForkMessageID string `json:"fork_message_id" binding:"required"`
}

// ForceTalkRequest is the body for POST /api/v1/conversations/:id/force-talk.
type ForceTalkRequest struct {
	SpeakerMembershipID string `json:"speaker_membership_id" binding:"required"`
}

// RegenerateRequest is the body for POST /api/v1/conversations/:id/regenerate.
type RegenerateRequest struct {
	TargetMessageID string `json:"target_message_id" binding:"required"`
}

// CopilotStepRequest is the body for POST /api/v1/conversations/:id/copilot-step.
type CopilotStepRequest struct {
	MembershipID     string `json:"membership_id" binding:"required"`
	Kind             string `json:"kind" binding:"required"` // copilot_start, copilot_followup, copilot_continue
	TriggerMessageID string `json:"trigger_message_id"`
}

// AutoModeRequest is the body for POST /api/v1/conversations/:id/auto-mode.
type AutoModeRequest struct {
	Enabled bool `json:"enabled"`
	Rounds  int  `json:"rounds"`
}

// EditMessageRequest is the body for PATCH /api/v1/messages/:id.
type EditMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// MaintenanceRequest is the body for POST /api/v1/conversations/:id/maintenance.
type MaintenanceRequest struct {
	Action string `json:"action" binding:"required"` // reap_stale, retry_failed_run, cancel_stuck_run
}
