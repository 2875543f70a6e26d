package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/textcontent"
	"github.com/talkwheel/talkwheel/pkg/models"
)

// ConversationService manages conversation lifecycle and branching
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// CreateConversation creates a root conversation in a space
func (s *ConversationService) CreateConversation(_ context.Context, spaceID string) (*ent.Conversation, error) {
	if spaceID == "" {
		return nil, NewValidationError("space_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conv, err := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetSpaceID(spaceID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// GetConversation retrieves a conversation by ID
func (s *ConversationService) GetConversation(ctx context.Context, conversationID string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// SetSchedulingState writes the cached scheduling projection and bumps the
// revision fence so clients can discard stale realtime updates.
func (s *ConversationService) SetSchedulingState(ctx context.Context, conversationID string, state conversation.SchedulingState) (int64, error) {
	conv, err := s.client.Conversation.UpdateOneID(conversationID).
		SetSchedulingState(state).
		AddGroupQueueRevision(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to set scheduling state: %w", err)
	}
	return conv.GroupQueueRevision, nil
}

// BumpRevision increments the group queue revision and returns the new value.
func (s *ConversationService) BumpRevision(ctx context.Context, conversationID string) (int64, error) {
	conv, err := s.client.Conversation.UpdateOneID(conversationID).
		AddGroupQueueRevision(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to bump revision: %w", err)
	}
	return conv.GroupQueueRevision, nil
}

// Branch forks a conversation at a message. The branch shares TextContent
// rows with the parent by reference count; bodies are only duplicated when
// a shared message is later edited (copy-on-write).
func (s *ConversationService) Branch(_ context.Context, parentID, forkMessageID string) (*ent.Conversation, error) {
	if parentID == "" {
		return nil, NewValidationError("parent_conversation_id", "required")
	}
	if forkMessageID == "" {
		return nil, NewValidationError("forked_from_message_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	parent, err := tx.Conversation.Get(ctx, parentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get parent conversation: %w", err)
	}

	forkMsg, err := tx.Message.Query().
		Where(message.IDEQ(forkMessageID), message.ConversationIDEQ(parentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get fork message: %w", err)
	}

	branch, err := tx.Conversation.Create().
		SetID(uuid.New().String()).
		SetSpaceID(parent.SpaceID).
		SetKind(conversation.KindBranch).
		SetParentConversationID(parentID).
		SetForkedFromMessageID(forkMessageID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	// Copy the timeline prefix. Seqs are preserved so the branch reads
	// identically up to the fork point.
	msgs, err := tx.Message.Query().
		Where(message.ConversationIDEQ(parentID), message.SeqLTE(forkMsg.Seq)).
		Order(ent.Asc(message.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query parent messages: %w", err)
	}

	for _, m := range msgs {
		create := tx.Message.Create().
			SetID(uuid.New().String()).
			SetConversationID(branch.ID).
			SetSeq(m.Seq).
			SetRole(m.Role).
			SetVisibility(m.Visibility).
			SetContent(m.Content)
		if m.SpeakerMembershipID != nil {
			create.SetSpeakerMembershipID(*m.SpeakerMembershipID)
		}
		if m.TextContentID != nil {
			create.SetTextContentID(*m.TextContentID)
			if err := tx.TextContent.Update().
				Where(textcontent.IDEQ(*m.TextContentID)).
				AddRefCount(1).
				Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to bump text content refcount: %w", err)
			}
		}
		if _, err := create.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to copy message seq %d: %w", m.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit branch: %w", err)
	}
	return branch, nil
}

// EditMessageContent rewrites a message's body with copy-on-write: a
// TextContent shared with a branch is split before the edit so the other
// timeline keeps the original text.
func (s *ConversationService) EditMessageContent(_ context.Context, messageID, newContent string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	msg, err := tx.Message.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get message: %w", err)
	}

	update := tx.Message.UpdateOneID(messageID).SetContent(newContent)

	if msg.TextContentID != nil {
		tc, err := tx.TextContent.Query().
			Where(textcontent.IDEQ(*msg.TextContentID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			return fmt.Errorf("failed to lock text content: %w", err)
		}
		if tc.RefCount > 1 {
			// Shared with a branch: split off a private copy.
			newTC, err := tx.TextContent.Create().
				SetID(uuid.New().String()).
				SetBody(newContent).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create text content copy: %w", err)
			}
			if err := tx.TextContent.UpdateOneID(tc.ID).
				AddRefCount(-1).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to release shared text content: %w", err)
			}
			update.SetTextContentID(newTC.ID)
		} else {
			if err := tx.TextContent.UpdateOneID(tc.ID).
				SetBody(newContent).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to update text content: %w", err)
			}
		}
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit edit: %w", err)
	}
	return nil
}

// DeleteMessage removes a message, its swipes, and releases text content
// references. Content blobs are deleted once their refcount reaches zero.
func (s *ConversationService) DeleteMessage(_ context.Context, messageID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	msg, err := tx.Message.Query().
		Where(message.IDEQ(messageID)).
		WithSwipes().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get message: %w", err)
	}

	release := func(textContentID *string) error {
		if textContentID == nil {
			return nil
		}
		tc, err := tx.TextContent.Query().
			Where(textcontent.IDEQ(*textContentID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("failed to lock text content: %w", err)
		}
		if tc.RefCount <= 1 {
			return tx.TextContent.DeleteOneID(tc.ID).Exec(ctx)
		}
		return tx.TextContent.UpdateOneID(tc.ID).AddRefCount(-1).Exec(ctx)
	}

	for _, sw := range msg.Edges.Swipes {
		if err := release(sw.TextContentID); err != nil {
			return err
		}
	}
	if err := release(msg.TextContentID); err != nil {
		return err
	}

	// Swipe rows cascade with the message.
	if err := tx.Message.DeleteOneID(messageID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// AddTokenUsage folds a terminal usage record into the conversation and
// space counters. Counters use additive updates, never read-then-write.
func (s *ConversationService) AddTokenUsage(ctx context.Context, conversationID, spaceID string, usage models.TokenUsage) error {
	if usage.PromptTokens == 0 && usage.CompletionTokens == 0 {
		return nil
	}
	if err := s.client.Conversation.UpdateOneID(conversationID).
		AddPromptTokensTotal(usage.PromptTokens).
		AddCompletionTokensTotal(usage.CompletionTokens).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update conversation token totals: %w", err)
	}
	if err := s.client.Space.UpdateOneID(spaceID).
		AddPromptTokensTotal(usage.PromptTokens).
		AddCompletionTokensTotal(usage.CompletionTokens).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update space token totals: %w", err)
	}
	return nil
}
