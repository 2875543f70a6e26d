// Package rounds maintains the round ledger: the materialized speaker
// queue for one round of AI speech, its cursor, and per-slot outcomes.
package rounds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
)

// ErrNoActiveRound is returned when a conversation has no active round.
var ErrNoActiveRound = errors.New("no active round for conversation")

// Ledger manages ConversationRound rows. Mutations that belong to a larger
// scheduler transaction take a *ent.Tx; standalone operations open their own.
type Ledger struct {
	client *ent.Client
}

// NewLedger creates a round ledger.
func NewLedger(client *ent.Client) *Ledger {
	return &Ledger{client: client}
}

// Open materializes a new active round with the given speaker queue inside
// the caller's transaction. The queue is frozen at this instant: later
// membership changes only affect the next round. The conversation's cached
// scheduling_state flips to ai_generating and the revision fence bumps.
func (l *Ledger) Open(ctx context.Context, tx *ent.Tx, conversationID string, queue []string) (*ent.ConversationRound, error) {
	if len(queue) == 0 {
		return nil, fmt.Errorf("cannot open round with empty queue")
	}

	round, err := tx.ConversationRound.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}

	for i, membershipID := range queue {
		if _, err := tx.RoundParticipant.Create().
			SetID(uuid.New().String()).
			SetRoundID(round.ID).
			SetMembershipID(membershipID).
			SetPosition(i).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create round slot %d: %w", i, err)
		}
	}

	if err := tx.Conversation.UpdateOneID(conversationID).
		SetSchedulingState(conversation.SchedulingStateAiGenerating).
		AddGroupQueueRevision(1).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to project round open: %w", err)
	}

	return round, nil
}

// GetActive returns the conversation's active round with participants in
// position order, or ErrNoActiveRound.
func (l *Ledger) GetActive(ctx context.Context, conversationID string) (*ent.ConversationRound, error) {
	return getActive(ctx, l.client.ConversationRound.Query(), conversationID)
}

// GetActiveTx is GetActive inside a transaction, with the round row locked.
func (l *Ledger) GetActiveTx(ctx context.Context, tx *ent.Tx, conversationID string) (*ent.ConversationRound, error) {
	query := tx.ConversationRound.Query().ForUpdate()
	return getActive(ctx, query, conversationID)
}

func getActive(ctx context.Context, query *ent.ConversationRoundQuery, conversationID string) (*ent.ConversationRound, error) {
	round, err := query.
		Where(
			conversationround.ConversationIDEQ(conversationID),
			conversationround.StatusEQ(conversationround.StatusActive),
		).
		WithParticipants(func(q *ent.RoundParticipantQuery) {
			q.Order(ent.Asc(roundparticipant.FieldPosition))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoActiveRound
		}
		return nil, fmt.Errorf("failed to get active round: %w", err)
	}
	return round, nil
}

// MarkSlot records a terminal outcome on one slot.
func (l *Ledger) MarkSlot(ctx context.Context, tx *ent.Tx, roundID string, position int, status roundparticipant.Status) error {
	n, err := tx.RoundParticipant.Update().
		Where(
			roundparticipant.RoundIDEQ(roundID),
			roundparticipant.PositionEQ(position),
			roundparticipant.StatusEQ(roundparticipant.StatusPending),
		).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark slot %d: %w", position, err)
	}
	if n == 0 {
		return fmt.Errorf("slot %d of round %s is not pending", position, roundID)
	}
	return nil
}

// AdvanceCursor moves the round's cursor and bumps the revision fence.
func (l *Ledger) AdvanceCursor(ctx context.Context, tx *ent.Tx, roundID, conversationID string, position int) error {
	if err := tx.ConversationRound.UpdateOneID(roundID).
		SetCurrentPosition(position).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to advance cursor: %w", err)
	}
	if err := tx.Conversation.UpdateOneID(conversationID).
		AddGroupQueueRevision(1).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to bump revision: %w", err)
	}
	return nil
}

// SetFailed pauses the round after a failed slot. The reaper and health
// checker surface it; the round stays active so a retry can resume it.
func (l *Ledger) SetFailed(ctx context.Context, tx *ent.Tx, roundID, conversationID string) error {
	if err := tx.ConversationRound.UpdateOneID(roundID).
		SetSchedulingState(conversationround.SchedulingStateFailed).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to set round failed: %w", err)
	}
	if err := tx.Conversation.UpdateOneID(conversationID).
		SetSchedulingState(conversation.SchedulingStateFailed).
		AddGroupQueueRevision(1).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to project round failure: %w", err)
	}
	return nil
}

// Resume puts a paused or failed round back into ai_generating.
func (l *Ledger) Resume(ctx context.Context, tx *ent.Tx, roundID, conversationID string) error {
	if err := tx.ConversationRound.UpdateOneID(roundID).
		SetSchedulingState(conversationround.SchedulingStateAiGenerating).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to resume round: %w", err)
	}
	if err := tx.Conversation.UpdateOneID(conversationID).
		SetSchedulingState(conversation.SchedulingStateAiGenerating).
		AddGroupQueueRevision(1).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to project round resume: %w", err)
	}
	return nil
}

// Complete closes the round and returns the conversation to idle inside
// the caller's transaction.
func (l *Ledger) Complete(ctx context.Context, tx *ent.Tx, roundID, conversationID string) error {
	if err := tx.ConversationRound.UpdateOneID(roundID).
		SetStatus(conversationround.StatusCompleted).
		SetSchedulingState(conversationround.SchedulingStateIdle).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete round: %w", err)
	}
	if err := tx.Conversation.UpdateOneID(conversationID).
		SetSchedulingState(conversation.SchedulingStateIdle).
		AddGroupQueueRevision(1).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to project round completion: %w", err)
	}
	return nil
}

// Cancel stops the active round, if any: pending slots become canceled and
// the conversation returns to idle. Safe to call when no round is active.
// Returns the canceled round's ID, or empty.
func (l *Ledger) Cancel(ctx context.Context, conversationID string) (string, error) {
	tx, err := l.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	round, err := l.GetActiveTx(ctx, tx, conversationID)
	if err != nil {
		if errors.Is(err, ErrNoActiveRound) {
			return "", nil
		}
		return "", err
	}

	if err := tx.RoundParticipant.Update().
		Where(
			roundparticipant.RoundIDEQ(round.ID),
			roundparticipant.StatusEQ(roundparticipant.StatusPending),
		).
		SetStatus(roundparticipant.StatusCanceled).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to cancel pending slots: %w", err)
	}

	if err := tx.ConversationRound.UpdateOneID(round.ID).
		SetStatus(conversationround.StatusCanceled).
		SetSchedulingState(conversationround.SchedulingStateIdle).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to cancel round: %w", err)
	}

	if err := tx.Conversation.UpdateOneID(conversationID).
		SetSchedulingState(conversation.SchedulingStateIdle).
		AddGroupQueueRevision(1).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to project round cancel: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit round cancel: %w", err)
	}
	return round.ID, nil
}

// PendingSlots returns the pending membership IDs from the cursor onward,
// for the group queue projection sent to clients.
func PendingSlots(round *ent.ConversationRound) []string {
	var ids []string
	for _, p := range round.Edges.Participants {
		if p.Position >= round.CurrentPosition && p.Status == roundparticipant.StatusPending {
			ids = append(ids, p.MembershipID)
		}
	}
	return ids
}

// SlotAt returns the participant at a position, or nil.
func SlotAt(round *ent.ConversationRound, position int) *ent.RoundParticipant {
	for _, p := range round.Edges.Participants {
		if p.Position == position {
			return p
		}
	}
	return nil
}
