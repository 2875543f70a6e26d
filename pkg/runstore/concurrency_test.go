package runstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/pkg/runstore"
	testdb "github.com/talkwheel/talkwheel/test/database"
	"github.com/talkwheel/talkwheel/test/util"
)

// Races several pods, each with its own connection pool to the same schema,
// on one queued run. Exactly one claim may win.
func TestClaimAtomicConcurrentPods(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	const pods = 4
	stores := make([]*runstore.Store, pods)
	for i := range stores {
		stores[i] = runstore.NewStore(shared.NewClient(t).Client, staleThreshold)
	}

	fx := util.CreateSpaceFixture(t, shared.NewClient(t).Client, util.SpaceOpts{Characters: 2})
	req := queuedReq(fx)
	queued, err := stores[0].CreateQueued(ctx, req)
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []string
		losers  int
	)
	start := make(chan struct{})
	for i, store := range stores {
		wg.Add(1)
		go func(podID string, s *runstore.Store) {
			defer wg.Done()
			<-start
			run, err := s.ClaimAtomic(ctx, queued.ID, podID, time.Now())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, *run.PodID)
			default:
				assert.ErrorIs(t, err, runstore.ErrNotClaimable)
				losers++
			}
		}(fmt.Sprintf("pod-%d", i), store)
	}
	close(start)
	wg.Wait()

	require.Len(t, winners, 1, "exactly one pod may claim the run")
	assert.Equal(t, pods-1, losers)

	run, err := stores[0].GetRun(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusRunning, run.Status)
	require.NotNil(t, run.PodID)
	assert.Equal(t, winners[0], *run.PodID)
}

// Two replicas planning the same conversation concurrently still converge on
// a single queued slot.
func TestUpsertQueuedConcurrentReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	clientA := shared.NewClient(t).Client
	a := runstore.NewStore(clientA, staleThreshold)
	b := runstore.NewStore(shared.NewClient(t).Client, staleThreshold)
	fx := util.CreateSpaceFixture(t, shared.NewClient(t).Client, util.SpaceOpts{Characters: 2})

	var wg sync.WaitGroup
	start := make(chan struct{})
	for _, store := range []*runstore.Store{a, b} {
		wg.Add(1)
		go func(s *runstore.Store) {
			defer wg.Done()
			<-start
			_, err := s.UpsertQueued(ctx, queuedReq(fx))
			assert.NoError(t, err)
		}(store)
	}
	close(start)
	wg.Wait()

	count, err := clientA.ConversationRun.Query().
		Where(
			conversationrun.ConversationIDEQ(fx.Conversation.ID),
			conversationrun.StatusEQ(conversationrun.StatusQueued),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
