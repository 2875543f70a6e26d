package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/pkg/events"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/runstore"
)

// TurnCompleter receives terminal runs for round bookkeeping. Implemented
// by the scheduler; an interface here avoids the package cycle.
type TurnCompleter interface {
	OnTurnComplete(ctx context.Context, run *ent.ConversationRun)
}

// Reaper finalizes running runs whose worker stopped heartbeating. A
// reaped run goes through the same turn-completion path as a normal
// failure, so the round pauses and clients see the run notice.
type Reaper struct {
	client         *ent.Client
	store          *runstore.Store
	publisher      events.Publisher
	stuckThreshold time.Duration

	completer TurnCompleter

	mu          sync.Mutex
	lastScan    time.Time
	totalReaped int
}

// NewReaper creates a reaper. The stuck threshold should match the claim
// preemption threshold so both paths agree on what "dead" means.
func NewReaper(client *ent.Client, store *runstore.Store, publisher events.Publisher, stuckThreshold time.Duration) *Reaper {
	return &Reaper{
		client:         client,
		store:          store,
		publisher:      publisher,
		stuckThreshold: stuckThreshold,
	}
}

// SetTurnCompleter wires the scheduler in after construction.
func (r *Reaper) SetTurnCompleter(c TurnCompleter) {
	r.completer = c
}

// Sweep finds and finalizes stale running runs. Returns how many were
// reaped. Races with the claim-time preemption path are benign: whoever
// finalizes first wins, the loser observes ErrAlreadyFinal.
func (r *Reaper) Sweep(ctx context.Context) (int, error) {
	now := time.Now()
	cutoff := now.Add(-r.stuckThreshold)

	stale, err := r.client.ConversationRun.Query().
		Where(
			conversationrun.StatusEQ(conversationrun.StatusRunning),
			conversationrun.Or(
				conversationrun.HeartbeatAtLT(cutoff),
				conversationrun.And(
					conversationrun.HeartbeatAtIsNil(),
					conversationrun.StartedAtLT(cutoff),
				),
			),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale runs: %w", err)
	}

	reaped := 0
	for _, run := range stale {
		if r.reapRun(ctx, run) {
			reaped++
		}
	}

	r.mu.Lock()
	r.lastScan = now
	r.totalReaped += reaped
	r.mu.Unlock()

	if reaped > 0 {
		slog.Warn("Reaped stale running runs", "count", reaped)
	}
	return reaped, nil
}

func (r *Reaper) reapRun(ctx context.Context, run *ent.ConversationRun) bool {
	runErr := &models.RunError{
		Code:    models.ErrCodeHeartbeatTimeout,
		Message: "run heartbeat expired, worker presumed dead",
	}
	finalized, err := r.store.Finalize(ctx, run.ID, conversationrun.StatusFailed, runErr)
	if err != nil {
		if errors.Is(err, runstore.ErrAlreadyFinal) {
			return false
		}
		slog.Error("Failed to reap run", "run_id", run.ID, "error", err)
		return false
	}

	podID := ""
	if run.PodID != nil {
		podID = *run.PodID
	}
	slog.Warn("Reaped stale run",
		"run_id", run.ID,
		"conversation_id", run.ConversationID,
		"pod_id", podID)

	payload := events.RunNoticePayload{
		BasePayload: events.NewBasePayload(events.EventTypeRunFailed, run.ConversationID),
		RunID:       run.ID,
		Code:        runErr.Code,
		Reason:      runErr.Message,
	}
	events.LogPublishError("run_failed", run.ConversationID,
		r.publisher.PublishEphemeral(ctx, run.ConversationID, payload))

	if r.completer != nil {
		r.completer.OnTurnComplete(ctx, finalized)
	}
	return true
}

// Stats returns the last sweep time and total runs reaped since start.
func (r *Reaper) Stats() (time.Time, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastScan, r.totalReaped
}
