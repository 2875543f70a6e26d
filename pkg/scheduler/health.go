package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/rounds"
)

// recentFailureWindow bounds how far back a failed run still warrants a
// retry hint.
const recentFailureWindow = 10 * time.Minute

// HealthChecker inspects a conversation's scheduling health without
// mutating anything. The reaper acts on its findings.
type HealthChecker struct {
	client *ent.Client
	ledger *rounds.Ledger
	sched  *Scheduler

	stuckThreshold time.Duration
}

// NewHealthChecker creates a health checker.
func NewHealthChecker(client *ent.Client, ledger *rounds.Ledger, sched *Scheduler, stuckThreshold time.Duration) *HealthChecker {
	return &HealthChecker{
		client:         client,
		ledger:         ledger,
		sched:          sched,
		stuckThreshold: stuckThreshold,
	}
}

// Check returns the conversation's health report. Pure: reads only.
func (h *HealthChecker) Check(ctx context.Context, conversationID string) (*models.HealthReport, error) {
	conv, err := h.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %s not found", conversationID)
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	sp, err := h.client.Space.Get(ctx, conv.SpaceID)
	if err != nil {
		return nil, fmt.Errorf("load space: %w", err)
	}

	now := time.Now()

	running, err := h.client.ConversationRun.Query().
		Where(
			conversationrun.ConversationIDEQ(conversationID),
			conversationrun.StatusEQ(conversationrun.StatusRunning),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query running run: %w", err)
	}

	// Stuck running: heartbeat expired, the worker is presumed dead.
	if running != nil && running.HeartbeatAt != nil && now.Sub(*running.HeartbeatAt) > h.stuckThreshold {
		return &models.HealthReport{
			Status: models.HealthFailed,
			Action: models.HealthActionReap,
			Details: map[string]any{
				"run_id":       running.ID,
				"heartbeat_at": running.HeartbeatAt.Format(time.RFC3339),
			},
		}, nil
	}

	// Recent failure: surface a retry hint.
	lastRun, err := h.client.ConversationRun.Query().
		Where(conversationrun.ConversationIDEQ(conversationID)).
		Order(ent.Desc(conversationrun.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query last run: %w", err)
	}
	if lastRun != nil && lastRun.Status == conversationrun.StatusFailed &&
		lastRun.FinishedAt != nil && now.Sub(*lastRun.FinishedAt) < recentFailureWindow {
		details := map[string]any{"run_id": lastRun.ID}
		if e := models.RunErrorFromMap(lastRun.Error); e != nil {
			details["code"] = e.Code
		}
		return &models.HealthReport{
			Status:  models.HealthDegraded,
			Action:  models.HealthActionRetry,
			Details: details,
		}, nil
	}

	queued, err := h.client.ConversationRun.Query().
		Where(
			conversationrun.ConversationIDEQ(conversationID),
			conversationrun.StatusEQ(conversationrun.StatusQueued),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query queued run: %w", err)
	}

	// Idle unexpected: auto-mode armed but nothing is scheduled.
	if conv.SchedulingState == conversation.SchedulingStateIdle &&
		sp.AutoModeEnabled && conv.AutoRoundsRemaining > 0 &&
		running == nil && queued == nil {
		details := map[string]any{}
		if speaker, err := h.sched.PickSpeakerForHealth(ctx, sp, conversationID); err == nil && speaker != nil {
			details["suggested_speaker_id"] = speaker.MembershipID
		}
		return &models.HealthReport{
			Status:  models.HealthDegraded,
			Action:  models.HealthActionGenerate,
			Details: details,
		}, nil
	}

	// Scheduler drift: the projection says a generation is in flight, but
	// no run backs it and the current slot's speaker already answered.
	if conv.SchedulingState == conversation.SchedulingStateAiGenerating &&
		running == nil && queued == nil {
		if drifted, details, err := h.checkDrift(ctx, conversationID); err == nil && drifted {
			return &models.HealthReport{
				Status:  models.HealthDegraded,
				Action:  models.HealthActionAdvance,
				Details: details,
			}, nil
		}
	}

	return &models.HealthReport{
		Status: models.HealthOK,
		Action: models.HealthActionNone,
	}, nil
}

// checkDrift reports whether the round cursor lags behind the timeline:
// the current slot's speaker already has a succeeded message newer than
// the round's opening.
func (h *HealthChecker) checkDrift(ctx context.Context, conversationID string) (bool, map[string]any, error) {
	round, err := h.ledger.GetActive(ctx, conversationID)
	if err != nil {
		if errors.Is(err, rounds.ErrNoActiveRound) {
			// ai_generating with no round at all is drift by definition.
			return true, map[string]any{"reason": "no active round"}, nil
		}
		return false, nil, err
	}

	slot := rounds.SlotAt(round, round.CurrentPosition)
	if slot == nil {
		return true, map[string]any{"reason": "cursor past queue tail", "round_id": round.ID}, nil
	}

	spoken, err := h.client.Message.Query().
		Where(
			message.ConversationIDEQ(conversationID),
			message.RoleEQ(message.RoleAssistant),
			message.SpeakerMembershipIDEQ(slot.MembershipID),
			message.CreatedAtGT(round.CreatedAt),
		).
		Exist(ctx)
	if err != nil {
		return false, nil, fmt.Errorf("query slot speaker messages: %w", err)
	}
	if spoken {
		return true, map[string]any{
			"reason":        "slot speaker already answered",
			"round_id":      round.ID,
			"position":      round.CurrentPosition,
			"membership_id": slot.MembershipID,
		}, nil
	}
	return false, nil, nil
}
