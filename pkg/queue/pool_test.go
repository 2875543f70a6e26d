package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talkwheel/talkwheel/pkg/config"
)

func testPool(cfg *config.QueueConfig) *WorkerPool {
	if cfg == nil {
		cfg = config.DefaultQueueConfig()
	}
	return NewWorkerPool(nil, nil, nil, nil, cfg, "test-pod")
}

func TestPollIntervalStaysWithinJitterBounds(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 500 * time.Millisecond
	cfg.PollIntervalJitter = 250 * time.Millisecond
	p := testPool(cfg)

	for i := 0; i < 1000; i++ {
		iv := p.pollInterval()
		assert.GreaterOrEqual(t, iv, 250*time.Millisecond)
		assert.Less(t, iv, 750*time.Millisecond)
	}
}

func TestPollIntervalWithoutJitter(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 200 * time.Millisecond
	cfg.PollIntervalJitter = 0
	p := testPool(cfg)

	assert.Equal(t, 200*time.Millisecond, p.pollInterval())
}

func TestPollIntervalNeverBelowMinimum(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 5 * time.Millisecond
	cfg.PollIntervalJitter = 100 * time.Millisecond
	p := testPool(cfg)

	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, p.pollInterval(), time.Millisecond)
	}
}

func TestKickNeverBlocks(t *testing.T) {
	p := testPool(nil)
	// A kick with nobody listening coalesces into the buffered slot; further
	// kicks are dropped rather than blocking the caller.
	for i := 0; i < 10; i++ {
		p.Kick()
	}
	select {
	case <-p.kickCh:
	default:
		t.Fatal("expected a pending kick")
	}
}

func TestRegisterRunGuardsDuplicates(t *testing.T) {
	p := testPool(nil)
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.True(t, p.registerRun("run-1", cancel))
	assert.False(t, p.registerRun("run-1", cancel), "second local claim must be refused")

	p.unregisterRun("run-1")
	assert.True(t, p.registerRun("run-1", cancel))
}

func TestCancelRun(t *testing.T) {
	p := testPool(nil)

	assert.False(t, p.CancelRun("unknown"), "non-local run is not cancelable here")

	ctx, cancel := context.WithCancel(context.Background())
	p.registerRun("run-1", cancel)

	assert.True(t, p.CancelRun("run-1"))
	select {
	case <-ctx.Done():
	default:
		t.Fatal("expected run context to be canceled")
	}
}
