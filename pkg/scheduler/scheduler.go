// Package scheduler owns the round lifecycle: it reconciles terminal run
// outcomes onto the round ledger and decides whether the next turn fires.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/pkg/config"
	"github.com/talkwheel/talkwheel/pkg/events"
	"github.com/talkwheel/talkwheel/pkg/planner"
	"github.com/talkwheel/talkwheel/pkg/rounds"
	"github.com/talkwheel/talkwheel/pkg/runstore"
	"github.com/talkwheel/talkwheel/pkg/selector"
	"github.com/talkwheel/talkwheel/pkg/services"
)

// Scheduler drives rounds forward on terminal run outcomes.
type Scheduler struct {
	client    *ent.Client
	store     *runstore.Store
	ledger    *rounds.Ledger
	planner   *planner.Planner
	spaces    *services.SpaceService
	messages  *services.MessageService
	publisher events.Publisher
	cfg       config.SchedulerConfig
}

// New creates a scheduler.
func New(
	client *ent.Client,
	store *runstore.Store,
	ledger *rounds.Ledger,
	pl *planner.Planner,
	spaces *services.SpaceService,
	messages *services.MessageService,
	publisher events.Publisher,
	cfg config.SchedulerConfig,
) *Scheduler {
	return &Scheduler{
		client:    client,
		store:     store,
		ledger:    ledger,
		planner:   pl,
		spaces:    spaces,
		messages:  messages,
		publisher: publisher,
		cfg:       cfg,
	}
}

// OnTurnComplete is the executor's hand-off callback. It must be safe to
// call for any terminal run, including ones outside an active round.
func (s *Scheduler) OnTurnComplete(ctx context.Context, run *ent.ConversationRun) {
	if err := s.handleTurnComplete(ctx, run); err != nil {
		slog.Error("Turn-complete handling failed",
			"run_id", run.ID,
			"conversation_id", run.ConversationID,
			"error", err)
	}
}

func (s *Scheduler) handleTurnComplete(ctx context.Context, run *ent.ConversationRun) error {
	conv, err := s.client.Conversation.Get(ctx, run.ConversationID)
	if err != nil {
		return fmt.Errorf("load conversation: %w", err)
	}
	sp, err := s.spaces.GetSpace(ctx, conv.SpaceID)
	if err != nil {
		return err
	}

	if run.Status == conversationrun.StatusSucceeded {
		if err := s.decrementCopilot(ctx, conv.ID, run.SpeakerMembershipID); err != nil {
			slog.Warn("Copilot decrement failed", "run_id", run.ID, "error", err)
		}
	}

	round, err := s.ledger.GetActive(ctx, conv.ID)
	if err != nil {
		if errors.Is(err, rounds.ErrNoActiveRound) {
			// Standalone run (user reply, force-talk, regenerate). Auto-mode
			// starts a round off a successful standalone turn.
			if run.Status == conversationrun.StatusSucceeded && sp.AutoModeEnabled && conv.AutoRoundsRemaining > 0 {
				return s.openRound(ctx, sp, conv.ID)
			}
			return nil
		}
		return err
	}

	return s.advanceRound(ctx, sp, conv.ID, round, run)
}

// advanceRound maps the outcome onto the current slot and either schedules
// the next speaker, pauses on failure, or closes the round.
func (s *Scheduler) advanceRound(ctx context.Context, sp *ent.Space, conversationID string, round *ent.ConversationRound, run *ent.ConversationRun) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer tx.Rollback()

	// Reload with the row lock; the unlocked read above was only a peek.
	locked, err := s.ledger.GetActiveTx(ctx, tx, conversationID)
	if err != nil {
		if errors.Is(err, rounds.ErrNoActiveRound) {
			return nil
		}
		return err
	}
	if locked.ID != round.ID {
		// A new round opened between the peek and the lock; this outcome
		// belongs to the previous round and is already accounted for.
		return nil
	}

	slotStatus := map[conversationrun.Status]roundparticipant.Status{
		conversationrun.StatusSucceeded: roundparticipant.StatusSucceeded,
		conversationrun.StatusFailed:    roundparticipant.StatusFailed,
		conversationrun.StatusCanceled:  roundparticipant.StatusSkipped,
		conversationrun.StatusSkipped:   roundparticipant.StatusSkipped,
	}[run.Status]
	if slotStatus == "" {
		return fmt.Errorf("run %s is not terminal (status %s)", run.ID, run.Status)
	}

	slot := rounds.SlotAt(locked, locked.CurrentPosition)
	if slot != nil && slot.Status == roundparticipant.StatusPending {
		if err := s.ledger.MarkSlot(ctx, tx, locked.ID, locked.CurrentPosition, slotStatus); err != nil {
			return err
		}
	}

	if run.Status == conversationrun.StatusFailed {
		// Pause the round; the reaper and health checker surface it.
		if err := s.ledger.SetFailed(ctx, tx, locked.ID, conversationID); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit round pause: %w", err)
		}
		s.publishQueueUpdate(ctx, conversationID)
		return nil
	}

	nextPos, err := s.nextEligiblePosition(ctx, tx, locked)
	if err != nil {
		return err
	}

	if nextPos >= 0 {
		if err := s.ledger.AdvanceCursor(ctx, tx, locked.ID, conversationID, nextPos); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit cursor advance: %w", err)
		}

		next := rounds.SlotAt(locked, nextPos)
		conv, err := s.client.Conversation.Get(ctx, conversationID)
		if err != nil {
			return fmt.Errorf("reload conversation: %w", err)
		}
		if _, err := s.planner.ScheduleSlot(ctx, conv, next.MembershipID, locked.ID); err != nil {
			return fmt.Errorf("schedule next slot: %w", err)
		}
		s.publishQueueUpdate(ctx, conversationID)
		return nil
	}

	// Round exhausted.
	reopen := sp.AutoModeEnabled
	if reopen {
		conv, err := tx.Conversation.Get(ctx, conversationID)
		if err != nil {
			return fmt.Errorf("load conversation in tx: %w", err)
		}
		// The budget decrements on round completion, so a budget of N
		// traverses all eligible speakers N times.
		if conv.AutoRoundsRemaining <= 0 {
			reopen = false
		} else {
			if err := tx.Conversation.UpdateOneID(conversationID).
				AddAutoRoundsRemaining(-1).
				Exec(ctx); err != nil {
				return fmt.Errorf("decrement auto round budget: %w", err)
			}
			if conv.AutoRoundsRemaining-1 <= 0 {
				reopen = false
			}
		}
	}

	if err := s.ledger.Complete(ctx, tx, locked.ID, conversationID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit round completion: %w", err)
	}

	if reopen {
		if err := s.openRound(ctx, sp, conversationID); err != nil {
			return err
		}
	} else if sp.AutoModeEnabled {
		// Budget exhausted: auto-mode winds down.
		payload := events.AutoModePayload{
			BasePayload:    events.NewBasePayload(events.EventTypeAutoDisabled, conversationID),
			RemainingSteps: 0,
		}
		events.LogPublishError("auto_disabled", conversationID,
			s.publisher.PublishEphemeral(ctx, conversationID, payload))
	}

	s.publishQueueUpdate(ctx, conversationID)
	return nil
}

// OpenRound materializes a fresh round from the predicted queue and
// enqueues its first speaker. Exposed for the auto-mode start trigger.
func (s *Scheduler) OpenRound(ctx context.Context, spaceID, conversationID string) error {
	sp, err := s.spaces.GetSpace(ctx, spaceID)
	if err != nil {
		return err
	}
	return s.openRound(ctx, sp, conversationID)
}

func (s *Scheduler) openRound(ctx context.Context, sp *ent.Space, conversationID string) error {
	queue, err := s.planner.RoundQueue(ctx, sp, conversationID)
	if err != nil {
		return err
	}
	if len(queue) == 0 {
		// Nothing to say (pooled exhaustion or no candidates); stay idle.
		return nil
	}
	ids := make([]string, len(queue))
	for i, p := range queue {
		ids[i] = p.MembershipID
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer tx.Rollback()

	round, err := s.ledger.Open(ctx, tx, conversationID, ids)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit round open: %w", err)
	}

	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("reload conversation: %w", err)
	}
	if _, err := s.planner.ScheduleSlot(ctx, conv, ids[0], round.ID); err != nil {
		return fmt.Errorf("schedule first slot: %w", err)
	}
	s.publishQueueUpdate(ctx, conversationID)
	return nil
}

// nextEligiblePosition walks forward from the cursor, skipping slots whose
// membership is no longer eligible (removed, muted, observer). Returns -1
// when the round is exhausted.
func (s *Scheduler) nextEligiblePosition(ctx context.Context, tx *ent.Tx, round *ent.ConversationRound) (int, error) {
	for pos := round.CurrentPosition + 1; ; pos++ {
		slot := rounds.SlotAt(round, pos)
		if slot == nil {
			return -1, nil
		}
		if slot.Status != roundparticipant.StatusPending {
			continue
		}
		eligible, err := s.isEligible(ctx, tx, slot.MembershipID)
		if err != nil {
			return -1, err
		}
		if eligible {
			return pos, nil
		}
		if err := s.ledger.MarkSlot(ctx, tx, round.ID, pos, roundparticipant.StatusSkipped); err != nil {
			return -1, err
		}
	}
}

func (s *Scheduler) isEligible(ctx context.Context, tx *ent.Tx, membershipID string) (bool, error) {
	m, err := tx.SpaceMembership.Get(ctx, membershipID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("load membership: %w", err)
	}
	return m.Status == spacemembership.StatusActive &&
		m.Participation == spacemembership.ParticipationActive, nil
}

// decrementCopilot consumes one copilot step after a successful turn and
// auto-disables copilot at zero.
func (s *Scheduler) decrementCopilot(ctx context.Context, conversationID, membershipID string) error {
	m, err := s.client.SpaceMembership.Get(ctx, membershipID)
	if err != nil {
		return fmt.Errorf("load membership: %w", err)
	}
	if m.CopilotMode != spacemembership.CopilotModeFull {
		return nil
	}

	remaining := m.CopilotRemainingSteps - 1
	update := s.client.SpaceMembership.UpdateOneID(membershipID)
	if remaining <= 0 {
		remaining = 0
		update.SetCopilotMode(spacemembership.CopilotModeNone)
	}
	if err := update.SetCopilotRemainingSteps(remaining).Exec(ctx); err != nil {
		return fmt.Errorf("update copilot steps: %w", err)
	}

	// Copilot exhaustion is a membership-level event; auto_disabled is
	// reserved for the conversation's round budget running out. Clients see
	// the mode change through RemainingSteps hitting zero.
	payload := events.AutoModePayload{
		BasePayload:    events.NewBasePayload(events.EventTypeAutoStepsUpdated, conversationID),
		MembershipID:   membershipID,
		RemainingSteps: remaining,
	}
	events.LogPublishError(events.EventTypeAutoStepsUpdated, conversationID,
		s.publisher.PublishEphemeral(ctx, conversationID, payload))
	return nil
}

// publishQueueUpdate broadcasts the group queue projection with the
// current revision fence.
func (s *Scheduler) publishQueueUpdate(ctx context.Context, conversationID string) {
	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		slog.Warn("Failed to load conversation for queue update", "conversation_id", conversationID, "error", err)
		return
	}

	payload := events.GroupQueuePayload{
		BasePayload:     events.NewBasePayload(events.EventTypeGroupQueue, conversationID),
		RenderSeq:       conv.GroupQueueRevision,
		SchedulingState: string(conv.SchedulingState),
	}
	round, err := s.ledger.GetActive(ctx, conversationID)
	if err == nil {
		payload.QueuedIDs = rounds.PendingSlots(round)
		payload.CurrentPosition = round.CurrentPosition
	}

	events.LogPublishError("group_queue", conversationID,
		s.publisher.PublishEphemeral(ctx, conversationID, payload))
}

// PickSpeakerForHealth exposes the planner's selection for the health
// checker's generate hint without creating a run.
func (s *Scheduler) PickSpeakerForHealth(ctx context.Context, sp *ent.Space, conversationID string) (*selector.Participant, error) {
	return s.planner.PickSpeaker(ctx, sp, conversationID)
}
