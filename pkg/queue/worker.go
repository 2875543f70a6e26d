package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	workerStatusIdle    = "idle"
	workerStatusWorking = "working"

	// listBatchSize bounds one poll's due-run fetch. Workers loop until the
	// queue drains, so the batch size only shapes query granularity.
	listBatchSize = 10
)

// worker polls for due queued runs and executes them one at a time.
// Claiming happens inside the executor; this layer only handles pacing,
// capacity, and shutdown.
type worker struct {
	id   string
	pool *WorkerPool

	mu            sync.Mutex
	status        string
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

func newWorker(id string, pool *WorkerPool) *worker {
	return &worker{
		id:           id,
		pool:         pool,
		status:       workerStatusIdle,
		lastActivity: time.Now(),
	}
}

// run is the worker's main loop. Wakes on the jittered poll interval or a
// kick, whichever comes first.
func (w *worker) run(ctx context.Context) {
	defer w.pool.wg.Done()

	slog.Debug("Worker started", "worker_id", w.id)
	for {
		timer := time.NewTimer(w.pool.pollInterval())
		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Debug("Worker stopped", "worker_id", w.id)
			return
		case <-w.pool.kickCh:
			timer.Stop()
		case <-timer.C:
		}
		w.processDueRuns(ctx)
	}
}

// processDueRuns drains the due queue. Execution is synchronous, so a
// worker holds at most one run; concurrency comes from the worker count.
func (w *worker) processDueRuns(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		if err := w.pool.checkCapacity(ctx); err != nil {
			if err != ErrAtCapacity {
				slog.Error("Capacity check failed", "worker_id", w.id, "error", err)
			}
			return
		}

		runs, err := w.pool.store.ListDueQueued(ctx, time.Now(), listBatchSize)
		if err != nil {
			slog.Error("Failed to list due runs", "worker_id", w.id, "error", err)
			return
		}
		if len(runs) == 0 {
			return
		}

		processed := false
		for _, run := range runs {
			if ctx.Err() != nil {
				return
			}
			if w.processRun(run.ID) {
				processed = true
			}
		}
		if !processed {
			// Every listed run was already held by a sibling worker on this
			// pod; let them finish instead of spinning.
			return
		}
	}
}

// processRun executes one run under its own timeout context. The context
// deliberately does not descend from the pool context: shutdown lets
// in-flight runs finish, with a forced cancel only after the grace period.
// Returns false when the run was already held locally.
func (w *worker) processRun(runID string) bool {
	runCtx, cancel := context.WithTimeout(context.Background(), w.pool.cfg.RunTimeout)
	defer cancel()

	if !w.pool.registerRun(runID, cancel) {
		return false
	}
	defer w.pool.unregisterRun(runID)

	w.setWorking(runID)
	defer w.setIdle()

	if err := w.pool.executor.Execute(runCtx, runID); err != nil {
		slog.Error("Run execution failed", "worker_id", w.id, "run_id", runID, "error", err)
	}
	return true
}

func (w *worker) setWorking(runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = workerStatusWorking
	w.currentRunID = runID
	w.lastActivity = time.Now()
}

func (w *worker) setIdle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = workerStatusIdle
	w.currentRunID = ""
	w.runsProcessed++
	w.lastActivity = time.Now()
}

func (w *worker) health() WorkerHealth {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}
