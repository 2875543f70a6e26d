// Package queue provides the worker pool that consumes queued runs, plus
// the reaper that recovers from worker death.
package queue

import (
	"context"
	"errors"
	"time"
)

// ErrAtCapacity indicates the global concurrent run limit has been reached.
var ErrAtCapacity = errors.New("at capacity")

// RunExecutor processes a single claimed run to a terminal state. The
// worker only handles polling and capacity; claiming happens inside
// Execute so losing a race is silent.
type RunExecutor interface {
	Execute(ctx context.Context, runID string) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	PodID          string         `json:"pod_id"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	ActiveRuns     int            `json:"active_runs"`
	MaxConcurrent  int            `json:"max_concurrent"`
	QueueDepth     int            `json:"queue_depth"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LastReaperScan time.Time      `json:"last_reaper_scan"`
	RunsReaped     int            `json:"runs_reaped"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
