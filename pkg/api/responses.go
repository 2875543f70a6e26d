package api

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PostMessageResponse is returned after a user message commit. RunID is
// empty when no reply was scheduled (manual mode, no eligible speaker).
type PostMessageResponse struct {
	MessageID string `json:"message_id"`
	Seq       int    `json:"seq"`
	RunID     string `json:"run_id,omitempty"`
}

// ScheduledRunResponse is returned by trigger endpoints that enqueue a run.
type ScheduledRunResponse struct {
	RunID               string `json:"run_id"`
	Status              string `json:"status"`
	Kind                string `json:"kind"`
	SpeakerMembershipID string `json:"speaker_membership_id"`
}

// CancelRunResponse is returned by POST /api/v1/runs/:id/cancel.
type CancelRunResponse struct {
	RunID         string `json:"run_id"`
	CancelPending bool   `json:"cancel_pending"`
	LocalCancel   bool   `json:"local_cancel"`
}

// AutoModeResponse is returned by the auto-mode toggle.
type AutoModeResponse struct {
	Enabled           bool     `json:"enabled"`
	Rounds            int      `json:"rounds,omitempty"`
	DisabledCopilots []string `json:"disabled_copilot_memberships,omitempty"`
}

// MaintenanceResponse reports the outcome of a maintenance action.
type MaintenanceResponse struct {
	Action  string         `json:"action"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthCheck is one component's slice of the /health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
