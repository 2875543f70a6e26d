// Package cleanup provides data retention for persisted event rows.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/talkwheel/talkwheel/pkg/config"
	"github.com/talkwheel/talkwheel/pkg/services"
)

// Service periodically removes timeline event rows past their TTL. Events
// exist only for WebSocket catch-up; clients that stayed away longer than
// the TTL do a full REST reload anyway. Idempotent and safe to run from
// multiple pods.
type Service struct {
	config       *config.RetentionConfig
	eventService *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, eventService *services.EventService) *Service {
	return &Service{
		config:       cfg,
		eventService: eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.cleanupEvents(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupEvents(ctx)
		}
	}
}

// cleanupEvents deletes event rows older than the TTL.
func (s *Service) cleanupEvents(ctx context.Context) {
	deleted, err := s.eventService.CleanupOldEvents(ctx, s.config.EventTTL)
	if err != nil {
		slog.Error("Event cleanup failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Cleaned up expired events", "deleted", deleted)
	}
}
