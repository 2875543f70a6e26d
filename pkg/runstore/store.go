// Package runstore persists conversation runs and enforces their state
// machine. The single-slot invariants (at most one queued and one running
// run per conversation) are guaranteed by partial unique indexes, so every
// transition here is a conditional update whose row count decides the
// outcome.
package runstore

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/pkg/models"
)

var (
	// ErrConflict is returned by CreateQueued when the conversation's
	// queued slot is already occupied.
	ErrConflict = errors.New("queued run already exists for conversation")

	// ErrNotClaimable is returned by ClaimAtomic when the run is no longer
	// queued, not yet due, or blocked by a live running run.
	ErrNotClaimable = errors.New("run is not claimable")

	// ErrAlreadyFinal is returned by Finalize when the run already reached
	// a terminal state. Terminal states are absorbing.
	ErrAlreadyFinal = errors.New("run is already in a terminal state")

	// ErrNotFound is returned when the run does not exist.
	ErrNotFound = errors.New("run not found")
)

const claimRetryAttempts = 3

// Store is the transactional API over ConversationRun rows.
type Store struct {
	client *ent.Client

	// staleThreshold decides when an existing running run may be preempted
	// during claim.
	staleThreshold time.Duration
}

// NewStore creates a run store. staleThreshold should match the reaper's
// stuck threshold.
func NewStore(client *ent.Client, staleThreshold time.Duration) *Store {
	return &Store{client: client, staleThreshold: staleThreshold}
}

// CreateQueued inserts a new queued run. Returns ErrConflict when the
// conversation already has a queued run; callers either upsert or back off.
func (s *Store) CreateQueued(ctx context.Context, req models.CreateQueuedRequest) (*ent.ConversationRun, error) {
	builder := s.client.ConversationRun.Create().
		SetID(uuid.New().String()).
		SetConversationID(req.ConversationID).
		SetKind(conversationrun.Kind(req.Kind)).
		SetSpeakerMembershipID(req.SpeakerMembershipID).
		SetReason(req.Reason)
	if req.RoundID != "" {
		builder.SetRoundID(req.RoundID)
	}
	if req.RunAfter != nil {
		builder.SetRunAfter(*req.RunAfter)
	}
	if req.Debug != nil {
		builder.SetDebug(req.Debug.ToMap())
	}

	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create queued run: %w", err)
	}
	return run, nil
}

// UpsertQueued creates or overwrites the conversation's single queued run
// under the conversation row lock. The last writer wins: an existing
// queued row keeps its identity but takes the new kind, reason, speaker,
// run_after, and debug context.
func (s *Store) UpsertQueued(ctx context.Context, req models.CreateQueuedRequest) (*ent.ConversationRun, error) {
	var run *ent.ConversationRun
	err := s.withRetry(ctx, func() error {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		if _, err := tx.Conversation.Query().
			Where(conversation.IDEQ(req.ConversationID)).
			ForUpdate().
			Only(ctx); err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock conversation: %w", err)
		}

		existing, err := tx.ConversationRun.Query().
			Where(
				conversationrun.ConversationIDEQ(req.ConversationID),
				conversationrun.StatusEQ(conversationrun.StatusQueued),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query queued run: %w", err)
		}

		if existing != nil {
			update := tx.ConversationRun.UpdateOneID(existing.ID).
				SetKind(conversationrun.Kind(req.Kind)).
				SetSpeakerMembershipID(req.SpeakerMembershipID).
				SetReason(req.Reason)
			if req.RoundID != "" {
				update.SetRoundID(req.RoundID)
			} else {
				update.ClearRoundID()
			}
			if req.RunAfter != nil {
				update.SetRunAfter(*req.RunAfter)
			} else {
				update.ClearRunAfter()
			}
			if req.Debug != nil {
				update.SetDebug(req.Debug.ToMap())
			} else {
				update.ClearDebug()
			}
			run, err = update.Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to overwrite queued run: %w", err)
			}
		} else {
			builder := tx.ConversationRun.Create().
				SetID(uuid.New().String()).
				SetConversationID(req.ConversationID).
				SetKind(conversationrun.Kind(req.Kind)).
				SetSpeakerMembershipID(req.SpeakerMembershipID).
				SetReason(req.Reason)
			if req.RoundID != "" {
				builder.SetRoundID(req.RoundID)
			}
			if req.RunAfter != nil {
				builder.SetRunAfter(*req.RunAfter)
			}
			if req.Debug != nil {
				builder.SetDebug(req.Debug.ToMap())
			}
			run, err = builder.Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create queued run: %w", err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit upsert: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ClaimAtomic transitions a queued run to running. The claim is a single
// conditional update; a second concurrent caller observes zero rows and
// gets ErrNotClaimable. A stale running run on the same conversation is
// preempted in the same transaction: finalized as failed with
// stale_running_run and its cancel_requested_at set so a still-alive
// worker bails out at the next chunk boundary. A fresh running run blocks
// the claim instead.
func (s *Store) ClaimAtomic(ctx context.Context, runID, podID string, now time.Time) (*ent.ConversationRun, error) {
	var claimed *ent.ConversationRun
	err := s.withRetry(ctx, func() error {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		run, err := tx.ConversationRun.Get(ctx, runID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get run: %w", err)
		}

		running, err := tx.ConversationRun.Query().
			Where(
				conversationrun.ConversationIDEQ(run.ConversationID),
				conversationrun.StatusEQ(conversationrun.StatusRunning),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query running run: %w", err)
		}

		if running != nil {
			if running.HeartbeatAt != nil && now.Sub(*running.HeartbeatAt) < s.staleThreshold {
				return ErrNotClaimable
			}
			staleErr := &models.RunError{
				Code:    models.ErrCodeStaleRunningRun,
				Message: "running run preempted by a new claim after heartbeat expiry",
			}
			if err := tx.ConversationRun.UpdateOneID(running.ID).
				SetStatus(conversationrun.StatusFailed).
				SetError(staleErr.ToMap()).
				SetFinishedAt(now).
				SetCancelRequestedAt(now).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to preempt stale running run: %w", err)
			}
		}

		n, err := tx.ConversationRun.Update().
			Where(
				conversationrun.IDEQ(runID),
				conversationrun.StatusEQ(conversationrun.StatusQueued),
				conversationrun.Or(
					conversationrun.RunAfterIsNil(),
					conversationrun.RunAfterLTE(now),
				),
			).
			SetStatus(conversationrun.StatusRunning).
			SetStartedAt(now).
			SetHeartbeatAt(now).
			SetPodID(podID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to claim run: %w", err)
		}
		if n == 0 {
			return ErrNotClaimable
		}

		claimed, err = tx.ConversationRun.Get(ctx, runID)
		if err != nil {
			return fmt.Errorf("failed to refetch claimed run: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit claim: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// RequestCancel sets the sticky cancel timestamp and records the cause
// (user_cancel, restart_policy, scheduler_stop) in the run's debug
// context. It never forces the transition; the executing worker observes
// the timestamp and finalizes as canceled with the recorded cause. The
// first request wins; requesting cancel on a terminal run is a no-op.
func (s *Store) RequestCancel(ctx context.Context, runID string, now time.Time, cause string) error {
	return s.withRetry(ctx, func() error {
		tx, err := s.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		run, err := tx.ConversationRun.Query().
			Where(conversationrun.IDEQ(runID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("failed to load run for cancel: %w", err)
		}
		if run.CancelRequestedAt != nil {
			return nil
		}
		switch run.Status {
		case conversationrun.StatusQueued, conversationrun.StatusRunning:
		default:
			return nil
		}

		debug := models.RunDebugFromMap(run.Debug)
		debug.CancelCause = cause
		if err := tx.ConversationRun.UpdateOneID(runID).
			SetCancelRequestedAt(now).
			SetDebug(debug.ToMap()).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to request cancel: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit cancel request: %w", err)
		}
		return nil
	})
}

// Finalize moves a run to a terminal state exactly once. Allowed sources
// are queued (to canceled or skipped) and running (to any terminal state);
// zero affected rows means the run was already terminal.
func (s *Store) Finalize(ctx context.Context, runID string, status conversationrun.Status, runErr *models.RunError) (*ent.ConversationRun, error) {
	sources := []conversationrun.Status{conversationrun.StatusRunning}
	if status == conversationrun.StatusCanceled || status == conversationrun.StatusSkipped {
		sources = append(sources, conversationrun.StatusQueued)
	}

	update := s.client.ConversationRun.Update().
		Where(
			conversationrun.IDEQ(runID),
			conversationrun.StatusIn(sources...),
		).
		SetStatus(status).
		SetFinishedAt(time.Now())
	if runErr != nil {
		update.SetError(runErr.ToMap())
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize run: %w", err)
	}
	if n == 0 {
		return nil, ErrAlreadyFinal
	}

	run, err := s.client.ConversationRun.Get(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch finalized run: %w", err)
	}
	return run, nil
}

// Heartbeat refreshes the running row's liveness timestamp.
func (s *Store) Heartbeat(ctx context.Context, runID string, now time.Time) error {
	_, err := s.client.ConversationRun.Update().
		Where(
			conversationrun.IDEQ(runID),
			conversationrun.StatusEQ(conversationrun.StatusRunning),
		).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	return nil
}

// IsCancelRequested re-reads the sticky cancel timestamp. Called at chunk
// boundaries during streaming.
func (s *Store) IsCancelRequested(ctx context.Context, runID string) (bool, error) {
	run, err := s.client.ConversationRun.Query().
		Where(conversationrun.IDEQ(runID)).
		Select(conversationrun.FieldCancelRequestedAt).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read cancel flag: %w", err)
	}
	return run.CancelRequestedAt != nil, nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(ctx context.Context, runID string) (*ent.ConversationRun, error) {
	run, err := s.client.ConversationRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// GetQueuedRun returns the conversation's queued run, or nil.
func (s *Store) GetQueuedRun(ctx context.Context, conversationID string) (*ent.ConversationRun, error) {
	run, err := s.client.ConversationRun.Query().
		Where(
			conversationrun.ConversationIDEQ(conversationID),
			conversationrun.StatusEQ(conversationrun.StatusQueued),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get queued run: %w", err)
	}
	return run, nil
}

// GetRunningRun returns the conversation's running run, or nil.
func (s *Store) GetRunningRun(ctx context.Context, conversationID string) (*ent.ConversationRun, error) {
	run, err := s.client.ConversationRun.Query().
		Where(
			conversationrun.ConversationIDEQ(conversationID),
			conversationrun.StatusEQ(conversationrun.StatusRunning),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get running run: %w", err)
	}
	return run, nil
}

// ListDueQueued returns queued runs whose run_after has elapsed, oldest
// first. Workers race to claim them; losers observe ErrNotClaimable.
func (s *Store) ListDueQueued(ctx context.Context, now time.Time, limit int) ([]*ent.ConversationRun, error) {
	runs, err := s.client.ConversationRun.Query().
		Where(
			conversationrun.StatusEQ(conversationrun.StatusQueued),
			conversationrun.Or(
				conversationrun.RunAfterIsNil(),
				conversationrun.RunAfterLTE(now),
			),
		).
		Order(ent.Asc(conversationrun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list due queued runs: %w", err)
	}
	return runs, nil
}

// withRetry retries the operation on deadlock or serialization failure,
// with jitter, up to claimRetryAttempts. Other errors pass through.
func (s *Store) withRetry(ctx context.Context, op func() error) error {
	var lastErr error
	for attempt := 0; attempt < claimRetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(10+rand.Intn(40)) * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		lastErr = op()
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

// isRetryable reports deadlock (40P01) and serialization failure (40001).
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40P01" || pgErr.Code == "40001"
	}
	return false
}
