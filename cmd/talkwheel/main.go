// Talkwheel server: schedules and executes AI conversation turns, serves
// the HTTP API, and fans events out over WebSocket.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/talkwheel/talkwheel/pkg/api"
	"github.com/talkwheel/talkwheel/pkg/cleanup"
	"github.com/talkwheel/talkwheel/pkg/config"
	"github.com/talkwheel/talkwheel/pkg/database"
	"github.com/talkwheel/talkwheel/pkg/events"
	"github.com/talkwheel/talkwheel/pkg/executor"
	"github.com/talkwheel/talkwheel/pkg/llm"
	"github.com/talkwheel/talkwheel/pkg/planner"
	"github.com/talkwheel/talkwheel/pkg/queue"
	"github.com/talkwheel/talkwheel/pkg/rounds"
	"github.com/talkwheel/talkwheel/pkg/runstore"
	"github.com/talkwheel/talkwheel/pkg/scheduler"
	"github.com/talkwheel/talkwheel/pkg/services"
	"github.com/talkwheel/talkwheel/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting talkwheel",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID)

	ctx := context.Background()

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Domain services
	spaceService := services.NewSpaceService(dbClient.Client)
	conversationService := services.NewConversationService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// Streaming infrastructure: publisher, WebSocket manager, PG listener
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, 10*time.Second)
	notifyListener := events.NewNotifyListener(dbConfig.ConnString(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// Scheduling core
	store := runstore.NewStore(dbClient.Client, cfg.Scheduler.StuckThreshold)
	ledger := rounds.NewLedger(dbClient.Client)
	llmClient := llm.NewOpenAIClient(*cfg.LLM)

	exec := executor.New(dbClient.Client, store, spaceService, messageService,
		eventPublisher, llmClient, *cfg.Scheduler, podID)
	reaper := queue.NewReaper(dbClient.Client, store, eventPublisher, cfg.Scheduler.StuckThreshold)
	pool := queue.NewWorkerPool(dbClient.Client, store, exec, reaper, cfg.Queue, podID)

	pl := planner.New(dbClient.Client, store, ledger, spaceService, messageService,
		eventPublisher, pool, *cfg.Scheduler, nil)
	sched := scheduler.New(dbClient.Client, store, ledger, pl, spaceService,
		messageService, eventPublisher, *cfg.Scheduler)
	exec.SetTurnCompleteCallback(sched.OnTurnComplete)
	reaper.SetTurnCompleter(sched)

	healthChecker := scheduler.NewHealthChecker(dbClient.Client, ledger, sched, cfg.Scheduler.StuckThreshold)

	// Runs this pod left running before a restart are failed before any
	// claiming starts.
	if _, err := queue.CleanupStartupOrphans(ctx, dbClient.Client, store, sched, podID); err != nil {
		slog.Error("Startup orphan cleanup failed", "error", err)
	}

	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	cleanupService := cleanup.NewService(cfg.Retention, eventService)
	cleanupService.Start(ctx)

	// HTTP server
	server := api.NewServer(api.Deps{
		DB:            dbClient,
		Spaces:        spaceService,
		Conversations: conversationService,
		Messages:      messageService,
		Store:         store,
		Ledger:        ledger,
		Planner:       pl,
		Scheduler:     sched,
		Health:        healthChecker,
		Pool:          pool,
		Reaper:        reaper,
		ConnManager:   connManager,
		Publisher:     eventPublisher,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(":" + httpPort); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Talkwheel started", "pod_id", podID, "workers", cfg.Queue.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop accepting work, let in-flight runs finish.
	cleanupService.Stop()
	pool.Stop()

	httpCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Stop(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
