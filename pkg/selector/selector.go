// Package selector implements speaker selection for group conversations.
// All strategies are pure functions over a Snapshot; randomness is injected
// so tests are deterministic.
package selector

import (
	"sort"
	"strings"
)

// Strategy names, matching the space's reply_order setting.
const (
	StrategyManual  = "manual"
	StrategyList    = "list"
	StrategyNatural = "natural"
	StrategyPooled  = "pooled"
)

// defaultTalkativeness applies when a participant has no explicit factor.
const defaultTalkativeness = 0.5

// Rand is the source of randomness for the natural strategy.
// math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Participant is one selectable group member. Candidates are the active,
// non-muted character memberships, ordered by position.
type Participant struct {
	MembershipID  string
	DisplayName   string
	Position      int
	Talkativeness *float64
}

func (p Participant) talkativeness() float64 {
	if p.Talkativeness == nil {
		return defaultTalkativeness
	}
	return *p.Talkativeness
}

// Snapshot is the full selection input, captured at one instant.
type Snapshot struct {
	Strategy          string
	AllowSelf         bool
	PreviousSpeakerID string

	// Candidates in position order.
	Candidates []Participant

	// ActivationText is the most recent non-system message's text, used by
	// the natural strategy's mention phase.
	ActivationText string

	// SpokenInEpoch marks memberships with at least one assistant message
	// since the most recent user message. Used by the pooled strategy.
	SpokenInEpoch map[string]bool
}

// Select returns the next speaker, or nil when the strategy yields none.
// A nil result from the pooled strategy terminates auto-mode.
func Select(snap Snapshot, rng Rand) *Participant {
	switch snap.Strategy {
	case StrategyList:
		return selectList(snap)
	case StrategyNatural:
		return selectNatural(snap, rng)
	case StrategyPooled:
		return selectPooled(snap)
	default: // manual
		return nil
	}
}

// PredictedQueue returns the sequence the strategy would select, up to
// limit entries, for UI display. Deterministic: the natural strategy is
// predicted by talkativeness rather than by random draw.
func PredictedQueue(snap Snapshot, limit int) []Participant {
	if limit <= 0 || len(snap.Candidates) == 0 {
		return nil
	}
	switch snap.Strategy {
	case StrategyList:
		return predictList(snap, limit)
	case StrategyNatural:
		return predictNatural(snap, limit)
	case StrategyPooled:
		return predictPooled(snap, limit)
	default:
		return nil
	}
}

// selectList walks the rotation starting after the previous speaker.
func selectList(snap Snapshot) *Participant {
	n := len(snap.Candidates)
	if n == 0 {
		return nil
	}
	start := (indexOf(snap.Candidates, snap.PreviousSpeakerID) + 1) % n
	for i := 0; i < n; i++ {
		c := snap.Candidates[(start+i)%n]
		if !snap.AllowSelf && c.MembershipID == snap.PreviousSpeakerID {
			continue
		}
		return &c
	}
	return nil
}

func predictList(snap Snapshot, limit int) []Participant {
	queue := make([]Participant, 0, limit)
	prev := snap.PreviousSpeakerID
	for len(queue) < limit {
		next := selectList(Snapshot{
			Strategy:          StrategyList,
			AllowSelf:         snap.AllowSelf,
			PreviousSpeakerID: prev,
			Candidates:        snap.Candidates,
		})
		if next == nil {
			break
		}
		queue = append(queue, *next)
		prev = next.MembershipID
	}
	return queue
}

// selectNatural implements the three-phase activation: mention, then
// talkativeness draw, then uniform pick over the union, with fallbacks.
func selectNatural(snap Snapshot, rng Rand) *Participant {
	candidates := eligibleCandidates(snap)
	if len(candidates) == 0 {
		return nil
	}

	words := tokenizeWords(snap.ActivationText)
	activated := make([]Participant, 0, len(candidates))
	inSet := make(map[string]bool, len(candidates))

	for _, c := range candidates {
		if isMentioned(c.DisplayName, words) {
			activated = append(activated, c)
			inSet[c.MembershipID] = true
		}
	}
	for _, c := range candidates {
		if inSet[c.MembershipID] {
			continue
		}
		if c.talkativeness() >= rng.Float64() {
			activated = append(activated, c)
			inSet[c.MembershipID] = true
		}
	}

	if len(activated) > 0 {
		pick := activated[rng.Intn(len(activated))]
		return &pick
	}

	// Nobody activated: any candidate with nonzero talkativeness.
	talkers := make([]Participant, 0, len(candidates))
	for _, c := range candidates {
		if c.talkativeness() > 0 {
			talkers = append(talkers, c)
		}
	}
	if len(talkers) > 0 {
		pick := talkers[rng.Intn(len(talkers))]
		return &pick
	}

	return selectList(snap)
}

func predictNatural(snap Snapshot, limit int) []Participant {
	candidates := eligibleCandidates(snap)
	sorted := make([]Participant, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].talkativeness(), sorted[j].talkativeness()
		if ti != tj {
			return ti > tj
		}
		return sorted[i].Position < sorted[j].Position
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// selectPooled picks the first participant in rotation order that has not
// spoken this epoch. Returns nil when the pool is exhausted.
func selectPooled(snap Snapshot) *Participant {
	n := len(snap.Candidates)
	if n == 0 {
		return nil
	}
	start := (indexOf(snap.Candidates, snap.PreviousSpeakerID) + 1) % n
	for i := 0; i < n; i++ {
		c := snap.Candidates[(start+i)%n]
		if snap.SpokenInEpoch[c.MembershipID] {
			continue
		}
		if !snap.AllowSelf && c.MembershipID == snap.PreviousSpeakerID {
			continue
		}
		return &c
	}
	return nil
}

func predictPooled(snap Snapshot, limit int) []Participant {
	queue := make([]Participant, 0, limit)
	spoken := make(map[string]bool, len(snap.SpokenInEpoch))
	for k, v := range snap.SpokenInEpoch {
		spoken[k] = v
	}
	prev := snap.PreviousSpeakerID
	for len(queue) < limit {
		next := selectPooled(Snapshot{
			Strategy:          StrategyPooled,
			AllowSelf:         snap.AllowSelf,
			PreviousSpeakerID: prev,
			Candidates:        snap.Candidates,
			SpokenInEpoch:     spoken,
		})
		if next == nil {
			break
		}
		queue = append(queue, *next)
		spoken[next.MembershipID] = true
		prev = next.MembershipID
	}
	return queue
}

// eligibleCandidates filters out the previous speaker when self-responses
// are disallowed.
func eligibleCandidates(snap Snapshot) []Participant {
	if snap.AllowSelf || snap.PreviousSpeakerID == "" {
		return snap.Candidates
	}
	out := make([]Participant, 0, len(snap.Candidates))
	for _, c := range snap.Candidates {
		if c.MembershipID != snap.PreviousSpeakerID {
			out = append(out, c)
		}
	}
	return out
}

func indexOf(candidates []Participant, membershipID string) int {
	for i, c := range candidates {
		if c.MembershipID == membershipID {
			return i
		}
	}
	return -1
}

// tokenizeWords splits text into lowercased whole words.
func tokenizeWords(text string) map[string]bool {
	words := make(map[string]bool)
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			words[b.String()] = true
			b.Reset()
		}
	}
	for _, r := range strings.ToLower(text) {
		if isWordRune(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return words
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		r > 127 // non-ASCII letters count as word characters
}

// isMentioned reports whether any whole word of the display name appears in
// the activation text's word set.
func isMentioned(displayName string, words map[string]bool) bool {
	for _, part := range strings.FieldsFunc(strings.ToLower(displayName), func(r rune) bool {
		return !isWordRune(r)
	}) {
		if words[part] {
			return true
		}
	}
	return false
}
