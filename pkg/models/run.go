// Package models contains shared request/response structs and the
// structured run error/debug types persisted on ConversationRun rows.
package models

import "time"

// Run error codes. These are the only values written to RunError.Code.
const (
	ErrCodeExpectedLastMessage     = "expected_last_message_mismatch"
	ErrCodeTokenLimitExceeded      = "token_limit_exceeded"
	ErrCodeHTTPError               = "http_error"
	ErrCodeConnectionError         = "connection_error"
	ErrCodeTimeout                 = "timeout"
	ErrCodeProviderError           = "provider_error"
	ErrCodeUserCancel              = "user_cancel"
	ErrCodeRestartPolicy           = "restart_policy"
	ErrCodeSchedulerStop           = "scheduler_stop"
	ErrCodeStaleRunningRun         = "stale_running_run"
	ErrCodeHeartbeatTimeout        = "heartbeat_timeout"
	ErrCodePodRestart              = "pod_restart"
	ErrCodeInternal                = "internal_error"
)

// Trigger tags recorded in RunDebug.Trigger.
const (
	TriggerUserMessage     = "user_message"
	TriggerForceTalk       = "force_talk"
	TriggerRegenerate      = "regenerate"
	TriggerAutoFollowup    = "auto_followup"
	TriggerCopilotStart    = "copilot_start"
	TriggerCopilotFollowup = "copilot_followup"
	TriggerCopilotContinue = "copilot_continue"
	TriggerTurnScheduler   = "turn_scheduler"
	TriggerRetry           = "retry"
)

// ReasonMessageMismatch is the run_skipped notice reason when the
// expected-last-message guard fires.
const ReasonMessageMismatch = "message_mismatch"

// RunError is the structured error attached to a terminal run.
// Stored in the run's JSON error column.
type RunError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ToMap converts the error for storage in the ent JSON field.
func (e *RunError) ToMap() map[string]any {
	if e == nil {
		return nil
	}
	m := map[string]any{
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		m["details"] = e.Details
	}
	return m
}

// RunErrorFromMap reconstructs a RunError from the stored JSON field.
// Returns nil for empty input.
func RunErrorFromMap(m map[string]any) *RunError {
	if len(m) == 0 {
		return nil
	}
	e := &RunError{}
	if code, ok := m["code"].(string); ok {
		e.Code = code
	}
	if msg, ok := m["message"].(string); ok {
		e.Message = msg
	}
	if details, ok := m["details"].(map[string]any); ok {
		e.Details = details
	}
	return e
}

// RunDebug is the trigger context stored on a run for pollution protection
// and observability. Stored in the run's JSON debug column.
type RunDebug struct {
	Trigger string `json:"trigger,omitempty"`

	// ExpectedLastMessageID arms the expected-last-message guard: at claim
	// time the run is skipped if the prompt-visible tail has moved.
	ExpectedLastMessageID string `json:"expected_last_message_id,omitempty"`

	// TargetMessageID is set for regenerate runs: the assistant message
	// receiving the new swipe.
	TargetMessageID string `json:"target_message_id,omitempty"`

	// ScheduledBy identifies the component that enqueued the run
	// (e.g. "turn_scheduler").
	ScheduledBy string `json:"scheduled_by,omitempty"`

	// TriggerMessageID is the message that caused the run (user message or
	// auto-mode trigger).
	TriggerMessageID string `json:"trigger_message_id,omitempty"`

	// RetryOfRunID links a maintenance retry back to the failed run it
	// replaces.
	RetryOfRunID string `json:"retry_of_run_id,omitempty"`

	// CancelCause is recorded alongside cancel_requested_at and becomes the
	// RunError code when the worker observes the cancel (user_cancel,
	// restart_policy, scheduler_stop).
	CancelCause string `json:"cancel_cause,omitempty"`
}

// ToMap converts the debug context for storage in the ent JSON field.
func (d *RunDebug) ToMap() map[string]any {
	if d == nil {
		return nil
	}
	m := map[string]any{}
	if d.Trigger != "" {
		m["trigger"] = d.Trigger
	}
	if d.ExpectedLastMessageID != "" {
		m["expected_last_message_id"] = d.ExpectedLastMessageID
	}
	if d.TargetMessageID != "" {
		m["target_message_id"] = d.TargetMessageID
	}
	if d.ScheduledBy != "" {
		m["scheduled_by"] = d.ScheduledBy
	}
	if d.TriggerMessageID != "" {
		m["trigger_message_id"] = d.TriggerMessageID
	}
	if d.RetryOfRunID != "" {
		m["retry_of_run_id"] = d.RetryOfRunID
	}
	if d.CancelCause != "" {
		m["cancel_cause"] = d.CancelCause
	}
	return m
}

// RunDebugFromMap reconstructs a RunDebug from the stored JSON field.
func RunDebugFromMap(m map[string]any) *RunDebug {
	d := &RunDebug{}
	if len(m) == 0 {
		return d
	}
	str := func(key string) string {
		v, _ := m[key].(string)
		return v
	}
	d.Trigger = str("trigger")
	d.ExpectedLastMessageID = str("expected_last_message_id")
	d.TargetMessageID = str("target_message_id")
	d.ScheduledBy = str("scheduled_by")
	d.TriggerMessageID = str("trigger_message_id")
	d.RetryOfRunID = str("retry_of_run_id")
	d.CancelCause = str("cancel_cause")
	return d
}

// TokenUsage is the terminal usage record surfaced by the LLM transport.
// Providers without usage reporting leave both fields zero.
type TokenUsage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
}

// CreateQueuedRequest is the input for RunStore.CreateQueued and
// RunStore.UpsertQueued.
type CreateQueuedRequest struct {
	ConversationID      string
	Kind                string
	Reason              string
	SpeakerMembershipID string
	RoundID             string
	RunAfter            *time.Time
	Debug               *RunDebug
}
