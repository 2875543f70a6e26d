package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/pkg/models"
)

// MessageService manages the conversation timeline: seq allocation,
// message commits, and regeneration swipes.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// allocateSeq returns the next seq for a conversation. The caller must
// hold the conversation row lock in the same transaction as the insert.
func allocateSeq(ctx context.Context, tx *ent.Tx, conversationID string) (int, error) {
	last, err := tx.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Desc(message.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to query last seq: %w", err)
	}
	return last.Seq + 1, nil
}

// lockConversation takes the conversation row lock used for seq allocation
// and scheduler state transitions.
func lockConversation(ctx context.Context, tx *ent.Tx, conversationID string) (*ent.Conversation, error) {
	conv, err := tx.Conversation.Query().
		Where(conversation.IDEQ(conversationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock conversation: %w", err)
	}
	return conv, nil
}

// CommitMessage commits a user or system message to the timeline.
func (s *MessageService) CommitMessage(_ context.Context, req models.CreateMessageRequest) (*ent.Message, error) {
	if req.ConversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockConversation(ctx, tx, req.ConversationID); err != nil {
		return nil, err
	}
	seq, err := allocateSeq(ctx, tx, req.ConversationID)
	if err != nil {
		return nil, err
	}

	tc, err := tx.TextContent.Create().
		SetID(uuid.New().String()).
		SetBody(req.Content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create text content: %w", err)
	}

	builder := tx.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(req.ConversationID).
		SetSeq(seq).
		SetRole(message.Role(req.Role)).
		SetContent(req.Content).
		SetTextContentID(tc.ID)
	if req.Visibility != "" {
		builder.SetVisibility(message.Visibility(req.Visibility))
	}
	if req.SpeakerMembershipID != "" {
		builder.SetSpeakerMembershipID(req.SpeakerMembershipID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message: %w", err)
	}
	return msg, nil
}

// CommitAssistant commits a completed generation: the assistant message,
// its swipe #0, token counters, and the run's succeeded finalization all
// land in one transaction. No client ever observes one without the others.
func (s *MessageService) CommitAssistant(_ context.Context, req models.CommitAssistantRequest) (*ent.Message, error) {
	if req.ConversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockConversation(ctx, tx, req.ConversationID); err != nil {
		return nil, err
	}
	seq, err := allocateSeq(ctx, tx, req.ConversationID)
	if err != nil {
		return nil, err
	}

	tc, err := tx.TextContent.Create().
		SetID(uuid.New().String()).
		SetBody(req.Content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create text content: %w", err)
	}

	messageID := uuid.New().String()
	swipeID := uuid.New().String()

	msgBuilder := tx.Message.Create().
		SetID(messageID).
		SetConversationID(req.ConversationID).
		SetSeq(seq).
		SetRole(message.RoleAssistant).
		SetContent(req.Content).
		SetTextContentID(tc.ID).
		SetActiveSwipeID(swipeID).
		SetSwipesCount(1).
		SetRunID(req.RunID)
	if req.SpeakerMembershipID != "" {
		msgBuilder.SetSpeakerMembershipID(req.SpeakerMembershipID)
	}
	msg, err := msgBuilder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant message: %w", err)
	}

	if _, err := tx.MessageSwipe.Create().
		SetID(swipeID).
		SetMessageID(messageID).
		SetPosition(0).
		SetContent(req.Content).
		SetTextContentID(tc.ID).
		SetRunID(req.RunID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create swipe: %w", err)
	}

	if err := addTokenTotals(ctx, tx, req.ConversationID, req.SpaceID, req.Usage); err != nil {
		return nil, err
	}
	if err := finalizeRunSucceeded(ctx, tx, req.RunID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit assistant message: %w", err)
	}
	return msg, nil
}

// CommitRegenSwipe commits a regeneration as a new active swipe on the
// target message, mirroring its content and finalizing the run, in one
// transaction.
func (s *MessageService) CommitRegenSwipe(_ context.Context, req models.CommitSwipeRequest) (*ent.MessageSwipe, error) {
	if req.TargetMessageID == "" {
		return nil, NewValidationError("target_message_id", "required")
	}
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockConversation(ctx, tx, req.ConversationID); err != nil {
		return nil, err
	}

	target, err := tx.Message.Query().
		Where(message.IDEQ(req.TargetMessageID), message.ConversationIDEQ(req.ConversationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get target message: %w", err)
	}

	tc, err := tx.TextContent.Create().
		SetID(uuid.New().String()).
		SetBody(req.Content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create text content: %w", err)
	}

	swipe, err := tx.MessageSwipe.Create().
		SetID(uuid.New().String()).
		SetMessageID(target.ID).
		SetPosition(target.SwipesCount).
		SetContent(req.Content).
		SetTextContentID(tc.ID).
		SetRunID(req.RunID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create swipe: %w", err)
	}

	if err := tx.Message.UpdateOneID(target.ID).
		SetActiveSwipeID(swipe.ID).
		AddSwipesCount(1).
		SetContent(req.Content).
		SetTextContentID(tc.ID).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to activate swipe: %w", err)
	}

	if err := addTokenTotals(ctx, tx, req.ConversationID, req.SpaceID, req.Usage); err != nil {
		return nil, err
	}
	if err := finalizeRunSucceeded(ctx, tx, req.RunID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit regen swipe: %w", err)
	}
	return swipe, nil
}

// addTokenTotals folds a usage record into conversation and space counters
// with additive updates.
func addTokenTotals(ctx context.Context, tx *ent.Tx, conversationID, spaceID string, usage models.TokenUsage) error {
	if usage.PromptTokens == 0 && usage.CompletionTokens == 0 {
		return nil
	}
	if err := tx.Conversation.UpdateOneID(conversationID).
		AddPromptTokensTotal(usage.PromptTokens).
		AddCompletionTokensTotal(usage.CompletionTokens).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update conversation token totals: %w", err)
	}
	if spaceID != "" {
		if err := tx.Space.UpdateOneID(spaceID).
			AddPromptTokensTotal(usage.PromptTokens).
			AddCompletionTokensTotal(usage.CompletionTokens).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to update space token totals: %w", err)
		}
	}
	return nil
}

// finalizeRunSucceeded flips the run from running to succeeded inside the
// commit transaction. Zero rows means the run was finalized concurrently
// (reaper or cancel); the commit must then be abandoned.
func finalizeRunSucceeded(ctx context.Context, tx *ent.Tx, runID string) error {
	n, err := tx.ConversationRun.Update().
		Where(
			conversationrun.IDEQ(runID),
			conversationrun.StatusEQ(conversationrun.StatusRunning),
		).
		SetStatus(conversationrun.StatusSucceeded).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize run: %w", err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// GetConversationMessages retrieves the full timeline in seq order.
func (s *MessageService) GetConversationMessages(ctx context.Context, conversationID string) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Asc(message.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation messages: %w", err)
	}
	return msgs, nil
}

// HistoryWindow returns the prompt-traversable timeline: everything except
// hidden messages, in seq order.
func (s *MessageService) HistoryWindow(ctx context.Context, conversationID string) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(
			message.ConversationIDEQ(conversationID),
			message.VisibilityNEQ(message.VisibilityHidden),
		).
		Order(ent.Asc(message.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get history window: %w", err)
	}
	return msgs, nil
}

// PromptVisibleTail returns the newest message with visibility normal or
// excluded, or nil for an empty timeline. This is the basis for the
// expected-last-message guard.
func (s *MessageService) PromptVisibleTail(ctx context.Context, conversationID string) (*ent.Message, error) {
	msg, err := s.client.Message.Query().
		Where(
			message.ConversationIDEQ(conversationID),
			message.VisibilityNEQ(message.VisibilityHidden),
		).
		Order(ent.Desc(message.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prompt-visible tail: %w", err)
	}
	return msg, nil
}

// EpochSnapshot describes the timeline suffix after the most recent user
// message, used by the pooled strategy and natural activation.
type EpochSnapshot struct {
	// ActivationText is the most recent non-system message's content.
	ActivationText string

	// SpokenInEpoch marks memberships with an assistant message in the epoch.
	SpokenInEpoch map[string]bool

	// PreviousSpeakerID is the speaker of the newest assistant message.
	PreviousSpeakerID string
}

// GetEpochSnapshot computes the selection inputs from the current timeline.
func (s *MessageService) GetEpochSnapshot(ctx context.Context, conversationID string) (*EpochSnapshot, error) {
	msgs, err := s.HistoryWindow(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	snap := &EpochSnapshot{SpokenInEpoch: make(map[string]bool)}

	lastUserSeq := -1
	for _, m := range msgs {
		if m.Role == message.RoleUser {
			lastUserSeq = m.Seq
		}
	}
	for _, m := range msgs {
		if m.Role != message.RoleSystem {
			snap.ActivationText = m.Content
		}
		if m.Role == message.RoleAssistant {
			if m.SpeakerMembershipID != nil {
				snap.PreviousSpeakerID = *m.SpeakerMembershipID
				if m.Seq > lastUserSeq {
					snap.SpokenInEpoch[*m.SpeakerMembershipID] = true
				}
			}
		}
	}
	return snap, nil
}
