package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/pkg/models"
)

// SpaceService manages spaces and their memberships
type SpaceService struct {
	client *ent.Client
}

// NewSpaceService creates a new SpaceService
func NewSpaceService(client *ent.Client) *SpaceService {
	return &SpaceService{client: client}
}

// CreateSpace creates a new space
func (s *SpaceService) CreateSpace(_ context.Context, req models.CreateSpaceRequest) (*ent.Space, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Space.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetAllowSelfResponses(req.AllowSelfResponses).
		SetUserTurnDebounceMs(req.UserTurnDebounceMs).
		SetRelaxMessageTrim(req.RelaxMessageTrim)

	if req.ReplyOrder != "" {
		builder.SetReplyOrder(space.ReplyOrder(req.ReplyOrder))
	}
	if req.InputPolicy != "" {
		builder.SetInputPolicy(space.InputPolicy(req.InputPolicy))
	}
	if req.TokenLimit != nil {
		builder.SetTokenLimit(*req.TokenLimit)
	}

	sp, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create space: %w", err)
	}
	return sp, nil
}

// GetSpace retrieves a space by ID
func (s *SpaceService) GetSpace(ctx context.Context, spaceID string) (*ent.Space, error) {
	sp, err := s.client.Space.Get(ctx, spaceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get space: %w", err)
	}
	return sp, nil
}

// AddMembership adds a participant slot to a space
func (s *SpaceService) AddMembership(_ context.Context, req models.AddMembershipRequest) (*ent.SpaceMembership, error) {
	if req.SpaceID == "" {
		return nil, NewValidationError("space_id", "required")
	}
	if req.Kind == "" {
		return nil, NewValidationError("kind", "required")
	}
	if req.DisplayName == "" {
		return nil, NewValidationError("display_name", "required")
	}
	if req.Talkativeness != nil && (*req.Talkativeness < 0 || *req.Talkativeness > 1) {
		return nil, NewValidationError("talkativeness", "must be in [0.0, 1.0]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.SpaceMembership.Create().
		SetID(uuid.New().String()).
		SetSpaceID(req.SpaceID).
		SetKind(spacemembership.Kind(req.Kind)).
		SetDisplayName(req.DisplayName).
		SetPosition(req.Position)

	if req.AvatarURL != "" {
		builder.SetAvatarURL(req.AvatarURL)
	}
	if req.Talkativeness != nil {
		builder.SetTalkativeness(*req.Talkativeness)
	}

	m, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}
	return m, nil
}

// GetMembership retrieves a membership by ID
func (s *SpaceService) GetMembership(ctx context.Context, membershipID string) (*ent.SpaceMembership, error) {
	m, err := s.client.SpaceMembership.Get(ctx, membershipID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return m, nil
}

// ActiveParticipants returns the space's active, non-muted participants in
// position order. This is the selector candidate set plus the active humans.
func (s *SpaceService) ActiveParticipants(ctx context.Context, spaceID string) ([]*ent.SpaceMembership, error) {
	members, err := s.client.SpaceMembership.Query().
		Where(
			spacemembership.SpaceIDEQ(spaceID),
			spacemembership.StatusEQ(spacemembership.StatusActive),
			spacemembership.ParticipationEQ(spacemembership.ParticipationActive),
		).
		Order(ent.Asc(spacemembership.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active participants: %w", err)
	}
	return members, nil
}

// SetParticipation updates a member's participation (active, muted, observer).
// Takes effect on the next round; the current round's persisted queue skips
// the slot when the cursor reaches it.
func (s *SpaceService) SetParticipation(ctx context.Context, membershipID string, participation spacemembership.Participation) error {
	err := s.client.SpaceMembership.UpdateOneID(membershipID).
		SetParticipation(participation).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update participation: %w", err)
	}
	return nil
}

// RemoveMembership marks a membership removed without deleting the row, so
// historical messages keep their speaker reference.
func (s *SpaceService) RemoveMembership(ctx context.Context, membershipID string) error {
	err := s.client.SpaceMembership.UpdateOneID(membershipID).
		SetStatus(spacemembership.StatusRemoved).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to remove membership: %w", err)
	}
	return nil
}

// EnableAutoMode enables auto-mode on a space with a round budget, and
// atomically disables any full-copilot memberships. Auto-mode and copilot
// are mutually exclusive drivers of the turn loop.
func (s *SpaceService) EnableAutoMode(_ context.Context, spaceID, conversationID string, rounds int) ([]string, error) {
	if rounds < 1 || rounds > 10 {
		return nil, NewValidationError("rounds", "must be in [1, 10]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.Space.UpdateOneID(spaceID).
		SetAutoModeEnabled(true).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to enable auto mode: %w", err)
	}

	if err := tx.Conversation.UpdateOneID(conversationID).
		SetAutoRoundsRemaining(rounds).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to set auto round budget: %w", err)
	}

	// Collect affected copilots before clearing so callers can broadcast
	// the change.
	copilots, err := tx.SpaceMembership.Query().
		Where(
			spacemembership.SpaceIDEQ(spaceID),
			spacemembership.CopilotModeEQ(spacemembership.CopilotModeFull),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query copilot memberships: %w", err)
	}

	disabled := make([]string, 0, len(copilots))
	for _, c := range copilots {
		if err := tx.SpaceMembership.UpdateOneID(c.ID).
			SetCopilotMode(spacemembership.CopilotModeNone).
			SetCopilotRemainingSteps(0).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to disable copilot membership %s: %w", c.ID, err)
		}
		disabled = append(disabled, c.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit auto mode enable: %w", err)
	}
	return disabled, nil
}

// DisableAutoMode turns auto-mode off and zeroes the conversation's
// remaining round budget.
func (s *SpaceService) DisableAutoMode(_ context.Context, spaceID, conversationID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.Space.UpdateOneID(spaceID).
		SetAutoModeEnabled(false).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to disable auto mode: %w", err)
	}

	if err := tx.Conversation.Update().
		Where(conversation.IDEQ(conversationID)).
		SetAutoRoundsRemaining(0).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear auto round budget: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit auto mode disable: %w", err)
	}
	return nil
}

// SetCopilotMode configures copilot for a human membership. Steps are
// clamped by the caller's configuration.
func (s *SpaceService) SetCopilotMode(ctx context.Context, membershipID string, mode spacemembership.CopilotMode, steps int) error {
	if steps < 0 {
		return NewValidationError("steps", "must be non-negative")
	}
	m, err := s.client.SpaceMembership.Get(ctx, membershipID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}
	if m.Kind != spacemembership.KindHuman {
		return NewValidationError("membership_id", "copilot applies to human memberships only")
	}

	if mode == spacemembership.CopilotModeNone {
		steps = 0
	}
	err = s.client.SpaceMembership.UpdateOneID(membershipID).
		SetCopilotMode(mode).
		SetCopilotRemainingSteps(steps).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set copilot mode: %w", err)
	}
	return nil
}
