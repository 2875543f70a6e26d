package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRand is a scripted Rand: each Float64/Intn call pops the next value.
type fakeRand struct {
	floats []float64
	ints   []int
}

func (f *fakeRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 1.0
	}
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func (f *fakeRand) Intn(n int) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func ptr(f float64) *float64 { return &f }

func candidates() []Participant {
	return []Participant{
		{MembershipID: "m-alice", DisplayName: "Alice", Position: 0, Talkativeness: ptr(0.9)},
		{MembershipID: "m-bob", DisplayName: "Bob", Position: 1, Talkativeness: ptr(0.3)},
		{MembershipID: "m-carol", DisplayName: "Carol Jones", Position: 2},
	}
}

func TestSelectManualReturnsNil(t *testing.T) {
	snap := Snapshot{Strategy: StrategyManual, Candidates: candidates()}
	assert.Nil(t, Select(snap, &fakeRand{}))
}

func TestSelectListRotation(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		expected string
	}{
		{"no previous starts at first", "", "m-alice"},
		{"rotates after previous", "m-alice", "m-bob"},
		{"wraps around", "m-carol", "m-alice"},
		{"unknown previous starts at first", "m-gone", "m-alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{
				Strategy:          StrategyList,
				PreviousSpeakerID: tt.previous,
				Candidates:        candidates(),
			}
			got := Select(snap, &fakeRand{})
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got.MembershipID)
		})
	}
}

func TestSelectListSingleCandidateSelfResponse(t *testing.T) {
	single := []Participant{{MembershipID: "m-solo", DisplayName: "Solo", Position: 0}}

	// With self-responses disallowed, a sole previous speaker yields nobody.
	snap := Snapshot{Strategy: StrategyList, PreviousSpeakerID: "m-solo", Candidates: single}
	assert.Nil(t, Select(snap, &fakeRand{}))

	snap.AllowSelf = true
	got := Select(snap, &fakeRand{})
	require.NotNil(t, got)
	assert.Equal(t, "m-solo", got.MembershipID)
}

func TestSelectListEmptyCandidates(t *testing.T) {
	snap := Snapshot{Strategy: StrategyList}
	assert.Nil(t, Select(snap, &fakeRand{}))
}

func TestSelectNaturalMentionWins(t *testing.T) {
	snap := Snapshot{
		Strategy:       StrategyNatural,
		Candidates:     candidates(),
		ActivationText: "what do you think, Bob?",
	}
	// Draws fail for everyone else; the mention alone populates the pool.
	rng := &fakeRand{floats: []float64{1.0, 1.0}, ints: []int{0}}
	got := Select(snap, rng)
	require.NotNil(t, got)
	assert.Equal(t, "m-bob", got.MembershipID)
}

func TestSelectNaturalMentionMatchesNamePart(t *testing.T) {
	// "jones" is one word of "Carol Jones"; partial words must not match.
	snap := Snapshot{
		Strategy:       StrategyNatural,
		Candidates:     candidates(),
		ActivationText: "ask jones about it",
	}
	rng := &fakeRand{floats: []float64{1.0, 1.0}, ints: []int{0}}
	got := Select(snap, rng)
	require.NotNil(t, got)
	assert.Equal(t, "m-carol", got.MembershipID)

	snap.ActivationText = "the bobsled race"
	rng = &fakeRand{floats: []float64{1.0, 1.0, 1.0}}
	got = Select(snap, rng)
	require.NotNil(t, got)
	assert.NotEqual(t, "m-bob", got.MembershipID, "substring must not count as a mention")
}

func TestSelectNaturalTalkativenessDraw(t *testing.T) {
	snap := Snapshot{Strategy: StrategyNatural, Candidates: candidates()}
	// Alice (0.9) passes a 0.5 draw, Bob (0.3) fails 0.5, Carol (default 0.5)
	// passes 0.5. Uniform pick index 1 lands on Carol.
	rng := &fakeRand{floats: []float64{0.5, 0.5, 0.5}, ints: []int{1}}
	got := Select(snap, rng)
	require.NotNil(t, got)
	assert.Equal(t, "m-carol", got.MembershipID)
}

func TestSelectNaturalFallbackToTalkers(t *testing.T) {
	snap := Snapshot{Strategy: StrategyNatural, Candidates: candidates()}
	// Every draw fails; fall back to uniform over nonzero talkativeness.
	rng := &fakeRand{floats: []float64{1.0, 1.0, 1.0}, ints: []int{2}}
	got := Select(snap, rng)
	require.NotNil(t, got)
	assert.Equal(t, "m-carol", got.MembershipID)
}

func TestSelectNaturalAllMutedFallsBackToRotation(t *testing.T) {
	muted := []Participant{
		{MembershipID: "m-a", DisplayName: "A", Position: 0, Talkativeness: ptr(0.0)},
		{MembershipID: "m-b", DisplayName: "B", Position: 1, Talkativeness: ptr(0.0)},
	}
	snap := Snapshot{Strategy: StrategyNatural, PreviousSpeakerID: "m-a", Candidates: muted}
	rng := &fakeRand{floats: []float64{1.0, 1.0}}
	got := Select(snap, rng)
	require.NotNil(t, got)
	assert.Equal(t, "m-b", got.MembershipID)
}

func TestSelectNaturalExcludesPreviousSpeaker(t *testing.T) {
	snap := Snapshot{
		Strategy:          StrategyNatural,
		PreviousSpeakerID: "m-alice",
		Candidates:        candidates(),
		ActivationText:    "alice should answer",
	}
	// Alice is mentioned but ineligible; with all draws failing the fallback
	// picks among the remaining talkers.
	rng := &fakeRand{floats: []float64{1.0, 1.0}, ints: []int{0}}
	got := Select(snap, rng)
	require.NotNil(t, got)
	assert.NotEqual(t, "m-alice", got.MembershipID)
}

func TestSelectPooledSkipsSpoken(t *testing.T) {
	snap := Snapshot{
		Strategy:          StrategyPooled,
		PreviousSpeakerID: "m-alice",
		Candidates:        candidates(),
		SpokenInEpoch:     map[string]bool{"m-alice": true, "m-bob": true},
	}
	got := Select(snap, &fakeRand{})
	require.NotNil(t, got)
	assert.Equal(t, "m-carol", got.MembershipID)
}

func TestSelectPooledExhaustedReturnsNil(t *testing.T) {
	snap := Snapshot{
		Strategy:          StrategyPooled,
		PreviousSpeakerID: "m-carol",
		Candidates:        candidates(),
		SpokenInEpoch: map[string]bool{
			"m-alice": true, "m-bob": true, "m-carol": true,
		},
	}
	assert.Nil(t, Select(snap, &fakeRand{}))
}

func TestPredictedQueueList(t *testing.T) {
	snap := Snapshot{
		Strategy:          StrategyList,
		PreviousSpeakerID: "m-bob",
		Candidates:        candidates(),
	}
	queue := PredictedQueue(snap, 4)
	require.Len(t, queue, 4)
	assert.Equal(t, "m-carol", queue[0].MembershipID)
	assert.Equal(t, "m-alice", queue[1].MembershipID)
	assert.Equal(t, "m-bob", queue[2].MembershipID)
	assert.Equal(t, "m-carol", queue[3].MembershipID)
}

func TestPredictedQueueNaturalOrdersByTalkativeness(t *testing.T) {
	snap := Snapshot{Strategy: StrategyNatural, Candidates: candidates()}
	queue := PredictedQueue(snap, 10)
	require.Len(t, queue, 3)
	assert.Equal(t, "m-alice", queue[0].MembershipID) // 0.9
	assert.Equal(t, "m-carol", queue[1].MembershipID) // default 0.5
	assert.Equal(t, "m-bob", queue[2].MembershipID)   // 0.3
}

func TestPredictedQueuePooledStopsAtExhaustion(t *testing.T) {
	snap := Snapshot{
		Strategy:      StrategyPooled,
		Candidates:    candidates(),
		SpokenInEpoch: map[string]bool{"m-alice": true},
	}
	queue := PredictedQueue(snap, 10)
	require.Len(t, queue, 2)
	assert.Equal(t, "m-bob", queue[0].MembershipID)
	assert.Equal(t, "m-carol", queue[1].MembershipID)
	// The prediction must not mutate the caller's epoch map.
	assert.False(t, snap.SpokenInEpoch["m-bob"])
}

func TestPredictedQueueManualIsEmpty(t *testing.T) {
	snap := Snapshot{Strategy: StrategyManual, Candidates: candidates()}
	assert.Nil(t, PredictedQueue(snap, 5))
}

func TestPredictedQueueZeroLimit(t *testing.T) {
	snap := Snapshot{Strategy: StrategyList, Candidates: candidates()}
	assert.Nil(t, PredictedQueue(snap, 0))
}
