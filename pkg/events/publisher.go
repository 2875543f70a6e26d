package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Publisher is the interface the scheduler components publish through.
// Implemented by EventPublisher; tests substitute a recorder.
type Publisher interface {
	// PublishEphemeral broadcasts to the conversation's ephemeral channel
	// without persistence.
	PublishEphemeral(ctx context.Context, conversationID string, payload any) error

	// PublishTimeline persists the event and broadcasts it on the
	// conversation's timeline channel in one transaction.
	PublishTimeline(ctx context.Context, conversationID string, payload any) error
}

// EventPublisher publishes events for WebSocket delivery. Timeline events
// are stored in the events table then broadcast via NOTIFY; ephemeral
// events are broadcast via NOTIFY only.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher. The db parameter should
// be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// NewBasePayload builds the common payload header.
func NewBasePayload(eventType, conversationID string) BasePayload {
	return BasePayload{
		Type:           eventType,
		ConversationID: conversationID,
		Timestamp:      time.Now().Format(time.RFC3339Nano),
	}
}

// PublishEphemeral broadcasts a payload on the conversation's ephemeral
// channel. No database row is written.
func (p *EventPublisher) PublishEphemeral(ctx context.Context, conversationID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ephemeral payload: %w", err)
	}
	return p.notifyOnly(ctx, EphemeralChannel(conversationID), payloadJSON)
}

// PublishTimeline persists a payload to the events table and broadcasts it
// on the conversation's timeline channel within a single transaction.
func (p *EventPublisher) PublishTimeline(ctx context.Context, conversationID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal timeline payload: %w", err)
	}
	return p.persistAndNotify(ctx, conversationID, TimelineChannel(conversationID), payloadJSON)
}

// persistAndNotify persists a pre-marshaled event and broadcasts via NOTIFY
// in a single transaction (pg_notify is transactional, held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, conversationID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (conversation_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		conversationID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// The NOTIFY copy carries db_event_id so clients can track their
	// catch-up cursor.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise a minimal truncation
// envelope with only routing fields. Clients fetch the full event from
// the database via catchup.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type           string `json:"type"`
		ConversationID string `json:"conversation_id"`
		DBEventID      *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":            routing.Type,
		"conversation_id": routing.ConversationID,
		"truncated":       true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}

// LogPublishError logs a failed best-effort publish. Fan-out failures
// never fail the surrounding scheduler operation.
func LogPublishError(op, conversationID string, err error) {
	if err != nil {
		slog.Warn("Failed to publish event", "op", op, "conversation_id", conversationID, "error", err)
	}
}
