// Package api exposes the HTTP and WebSocket surface: conversation
// triggers, space management, maintenance operations, and health.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talkwheel/talkwheel/pkg/database"
	"github.com/talkwheel/talkwheel/pkg/events"
	"github.com/talkwheel/talkwheel/pkg/planner"
	"github.com/talkwheel/talkwheel/pkg/queue"
	"github.com/talkwheel/talkwheel/pkg/rounds"
	"github.com/talkwheel/talkwheel/pkg/runstore"
	"github.com/talkwheel/talkwheel/pkg/scheduler"
	"github.com/talkwheel/talkwheel/pkg/services"
)

// Server holds the wired components behind the HTTP handlers.
type Server struct {
	db            *database.Client
	spaces        *services.SpaceService
	conversations *services.ConversationService
	messages      *services.MessageService
	store         *runstore.Store
	ledger        *rounds.Ledger
	planner       *planner.Planner
	scheduler     *scheduler.Scheduler
	health        *scheduler.HealthChecker
	pool          *queue.WorkerPool
	reaper        *queue.Reaper
	connManager   *events.ConnectionManager
	publisher     events.Publisher

	httpServer *http.Server
}

// Deps bundles the server's collaborators; all fields are required except
// ConnManager, without which the WebSocket endpoint returns 503.
type Deps struct {
	DB            *database.Client
	Spaces        *services.SpaceService
	Conversations *services.ConversationService
	Messages      *services.MessageService
	Store         *runstore.Store
	Ledger        *rounds.Ledger
	Planner       *planner.Planner
	Scheduler     *scheduler.Scheduler
	Health        *scheduler.HealthChecker
	Pool          *queue.WorkerPool
	Reaper        *queue.Reaper
	ConnManager   *events.ConnectionManager
	Publisher     events.Publisher
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		db:            deps.DB,
		spaces:        deps.Spaces,
		conversations: deps.Conversations,
		messages:      deps.Messages,
		store:         deps.Store,
		ledger:        deps.Ledger,
		planner:       deps.Planner,
		scheduler:     deps.Scheduler,
		health:        deps.Health,
		pool:          deps.Pool,
		reaper:        deps.Reaper,
		connManager:   deps.ConnManager,
		publisher:     deps.Publisher,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	router.GET("/health", s.healthHandler)
	router.GET("/ws", s.wsHandler)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/queue/health", s.queueHealthHandler)

		v1.POST("/spaces", s.createSpaceHandler)
		v1.GET("/spaces/:id", s.getSpaceHandler)
		v1.POST("/spaces/:id/memberships", s.addMembershipHandler)
		v1.POST("/spaces/:id/conversations", s.createConversationHandler)

		v1.PATCH("/memberships/:id/participation", s.setParticipationHandler)
		v1.POST("/memberships/:id/copilot", s.setCopilotModeHandler)
		v1.DELETE("/memberships/:id", s.removeMembershipHandler)

		v1.GET("/conversations/:id", s.getConversationHandler)
		v1.GET("/conversations/:id/messages", s.listMessagesHandler)
		v1.POST("/conversations/:id/messages", s.postUserMessageHandler)
		v1.POST("/conversations/:id/branch", s.branchHandler)
		v1.POST("/conversations/:id/force-talk", s.forceTalkHandler)
		v1.POST("/conversations/:id/regenerate", s.regenerateHandler)
		v1.POST("/conversations/:id/copilot-step", s.copilotStepHandler)
		v1.POST("/conversations/:id/auto-mode", s.autoModeHandler)
		v1.GET("/conversations/:id/health", s.conversationHealthHandler)
		v1.POST("/conversations/:id/maintenance", s.maintenanceHandler)

		v1.PATCH("/messages/:id", s.editMessageHandler)
		v1.DELETE("/messages/:id", s.deleteMessageHandler)

		v1.GET("/runs/:id", s.getRunHandler)
		v1.POST("/runs/:id/cancel", s.cancelRunHandler)
	}

	return router
}

// Start begins serving on addr. Blocks until the listener fails or Stop is
// called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
