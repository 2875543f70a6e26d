package queue

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/pkg/config"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/runstore"
)

// WorkerPool manages a set of workers that poll for due queued runs and
// hand them to the executor, plus the reaper loop that recovers runs
// orphaned by dead workers.
//
// The pool implements planner.Kicker: committing a user message or
// scheduling a slot kicks an idle worker so the run starts without
// waiting out the poll interval.
type WorkerPool struct {
	client   *ent.Client
	store    *runstore.Store
	executor RunExecutor
	reaper   *Reaper
	cfg      *config.QueueConfig
	podID    string

	workers []*worker
	kickCh  chan struct{}

	// activeRuns maps run ID to the cancel func of its execution context.
	// Entries exist from just before claim until Execute returns; the map
	// doubles as a same-pod guard so two local workers never chase the
	// same run.
	mu         sync.Mutex
	activeRuns map[string]context.CancelFunc

	wg       sync.WaitGroup
	cancelFn context.CancelFunc
	started  bool
}

// NewWorkerPool creates a worker pool. Call Start to begin processing.
func NewWorkerPool(client *ent.Client, store *runstore.Store, executor RunExecutor, reaper *Reaper, cfg *config.QueueConfig, podID string) *WorkerPool {
	return &WorkerPool{
		client:     client,
		store:      store,
		executor:   executor,
		reaper:     reaper,
		cfg:        cfg,
		podID:      podID,
		kickCh:     make(chan struct{}, 1),
		activeRuns: make(map[string]context.CancelFunc),
	}
}

// Start launches the workers and the reaper loop.
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return fmt.Errorf("worker pool already started")
	}
	p.started = true
	p.mu.Unlock()

	poolCtx, cancel := context.WithCancel(ctx)
	p.cancelFn = cancel

	for i := 0; i < p.cfg.WorkerCount; i++ {
		w := newWorker(fmt.Sprintf("%s-worker-%d", p.podID, i), p)
		p.workers = append(p.workers, w)
		p.wg.Add(1)
		go w.run(poolCtx)
	}

	p.wg.Add(1)
	go p.reaperLoop(poolCtx)

	slog.Info("Worker pool started",
		"pod_id", p.podID,
		"workers", p.cfg.WorkerCount,
		"max_concurrent_runs", p.cfg.MaxConcurrentRuns)
	return nil
}

// Stop shuts the pool down: polling stops immediately, in-flight runs get
// GracefulShutdownTimeout to finish, then their contexts are canceled.
func (p *WorkerPool) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.mu.Unlock()

	p.cancelFn()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped", "pod_id", p.podID)
	case <-time.After(p.cfg.GracefulShutdownTimeout):
		p.mu.Lock()
		remaining := len(p.activeRuns)
		for runID, cancel := range p.activeRuns {
			slog.Warn("Forcing cancel of in-flight run during shutdown", "run_id", runID)
			// Record the cause first so the finalized run reads
			// scheduler_stop, not user_cancel.
			if err := p.store.RequestCancel(context.Background(), runID, time.Now(), models.ErrCodeSchedulerStop); err != nil {
				slog.Warn("Failed to record shutdown cancel", "run_id", runID, "error", err)
			}
			cancel()
		}
		p.mu.Unlock()
		<-done
		slog.Warn("Worker pool stopped after forced cancel", "pod_id", p.podID, "forced", remaining)
	}
}

// Kick wakes one idle worker. Non-blocking: a pending kick is enough, the
// woken worker drains everything due.
func (p *WorkerPool) Kick() {
	select {
	case p.kickCh <- struct{}{}:
	default:
	}
}

// CancelRun cancels a run's execution context if this pod is executing it.
// Returns false when the run is not local; cross-pod cancellation rides on
// the sticky cancel_requested_at flag instead.
func (p *WorkerPool) CancelRun(runID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	cancel, ok := p.activeRuns[runID]
	if !ok {
		return false
	}
	cancel()
	return true
}

// registerRun reserves the run for one local worker. Returns false when
// another worker on this pod already holds it.
func (p *WorkerPool) registerRun(runID string, cancel context.CancelFunc) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.activeRuns[runID]; exists {
		return false
	}
	p.activeRuns[runID] = cancel
	return true
}

func (p *WorkerPool) unregisterRun(runID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRuns, runID)
}

// checkCapacity enforces the global concurrent run limit with a database
// count, so the limit holds across replicas.
func (p *WorkerPool) checkCapacity(ctx context.Context) error {
	count, err := p.client.ConversationRun.Query().
		Where(conversationrun.StatusEQ(conversationrun.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count running runs: %w", err)
	}
	if count >= p.cfg.MaxConcurrentRuns {
		return ErrAtCapacity
	}
	return nil
}

// pollInterval returns the base poll interval with jitter applied, so
// workers across replicas spread their queries.
func (p *WorkerPool) pollInterval() time.Duration {
	jitter := p.cfg.PollIntervalJitter
	if jitter <= 0 {
		return p.cfg.PollInterval
	}
	offset := time.Duration(rand.Int64N(int64(2*jitter))) - jitter
	interval := p.cfg.PollInterval + offset
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return interval
}

func (p *WorkerPool) reaperLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reaped, err := p.reaper.Sweep(ctx)
			if err != nil {
				slog.Error("Reaper sweep failed", "error", err)
				continue
			}
			if reaped > 0 {
				// Reaped runs may have released a conversation's running
				// slot; wake a worker for any queued successor.
				p.Kick()
			}
		}
	}
}

// Health returns a snapshot of pool health, including database
// reachability and queue depth.
func (p *WorkerPool) Health(ctx context.Context) PoolHealth {
	health := PoolHealth{
		PodID:         p.podID,
		TotalWorkers:  len(p.workers),
		MaxConcurrent: p.cfg.MaxConcurrentRuns,
	}

	p.mu.Lock()
	health.ActiveRuns = len(p.activeRuns)
	p.mu.Unlock()

	for _, w := range p.workers {
		stat := w.health()
		if stat.Status == workerStatusWorking {
			health.ActiveWorkers++
		}
		health.WorkerStats = append(health.WorkerStats, stat)
	}

	dbCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	depth, err := p.client.ConversationRun.Query().
		Where(conversationrun.StatusEQ(conversationrun.StatusQueued)).
		Count(dbCtx)
	if err != nil {
		health.DBReachable = false
		health.DBError = err.Error()
	} else {
		health.DBReachable = true
		health.QueueDepth = depth
	}

	lastScan, reaped := p.reaper.Stats()
	health.LastReaperScan = lastScan
	health.RunsReaped = reaped

	health.IsHealthy = health.DBReachable
	return health
}
