package services

import (
	"context"
	"fmt"
	"time"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/event"
	"github.com/talkwheel/talkwheel/pkg/events"
)

// EventService queries and prunes stored timeline events
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetCatchupEvents returns events on a channel after sinceID, oldest first.
// Implements the WebSocket manager's catchup query.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	rows, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	out := make([]events.CatchupEvent, len(rows))
	for i, row := range rows {
		out[i] = events.CatchupEvent{ID: row.ID, Payload: row.Payload}
	}
	return out, nil
}

// CleanupConversationEvents deletes a conversation's stored events older
// than the grace period. Called after terminal runs to keep the events
// table from growing unboundedly.
func (s *EventService) CleanupConversationEvents(ctx context.Context, conversationID string, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := s.client.Event.Delete().
		Where(
			event.ConversationIDEQ(conversationID),
			event.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup events: %w", err)
	}
	return n, nil
}

// CleanupOldEvents deletes stored events older than the retention period
// across all conversations. Used by the background retention sweep.
func (s *EventService) CleanupOldEvents(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}
	return n, nil
}
