// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"math/rand/v2"

	"github.com/danielhkuo/name-picker/models"
)

var (
	// ErrInvalidState is returned when a vote is cast with no name presented,
	// or a draw is requested while one is.
	ErrInvalidState = errors.New("invalid session state")
	// ErrInvalidVote is returned for vote tags other than "up" and "down".
	ErrInvalidVote = errors.New("vote must be \"up\" or \"down\"")
)

// Picker returns an index in [0, n). n is always > 0.
type Picker func(n int) int

// RandomPicker picks uniformly using math/rand/v2
func RandomPicker() Picker {
	return rand.IntN
}

// Snapshot is what was read back from persistence. HasPool distinguishes an
// absent namePool key from a stored empty pool.
type Snapshot struct {
	NamePool    []models.NameRecord
	HasPool     bool
	CurrentName *models.NameRecord
	Votes       models.Tally
}

// NewState returns the initial state: full pool, nothing presented, no votes
func NewState(dataset []models.NameRecord) models.SessionState {
	return models.SessionState{
		NamePool: cloneRecords(dataset),
	}
}

// Initialize builds the starting state from what was persisted.
//
// A persisted non-empty pool is used as-is. An empty or absent pool falls back
// to the full dataset; persisted votes are kept either way. A persisted current
// name is restored and dropped from the pool so it is not presented twice.
func Initialize(persisted *Snapshot, dataset []models.NameRecord) models.SessionState {
	state := NewState(dataset)
	if persisted == nil {
		return state
	}

	restoredPool := persisted.HasPool && len(persisted.NamePool) > 0
	if restoredPool {
		state.NamePool = cloneRecords(persisted.NamePool)
	}

	state.Votes = persisted.Votes

	if persisted.CurrentName != nil {
		current := *persisted.CurrentName
		state.CurrentName = &current
		state.NamePool = withoutKey(state.NamePool, current.Key())
	}

	return state
}

// DrawNext removes a uniformly chosen record from the pool and presents it.
// Returns false with the state unchanged when the pool is empty or a name is
// already presented.
func DrawNext(state models.SessionState, pick Picker) (models.NameRecord, bool, models.SessionState) {
	n := len(state.NamePool)
	if state.CurrentName != nil || n == 0 {
		return models.NameRecord{}, false, state
	}

	// out-of-range picks wrap
	i := ((pick(n) % n) + n) % n
	chosen := state.NamePool[i]

	pool := make([]models.NameRecord, 0, n-1)
	pool = append(pool, state.NamePool[:i]...)
	pool = append(pool, state.NamePool[i+1:]...)

	return chosen, true, models.SessionState{
		NamePool:    pool,
		CurrentName: &chosen,
		Votes:       state.Votes,
	}
}

// CastVote records vote against the presented name and draws the next one.
// When the pool is empty the result has no current name.
func CastVote(state models.SessionState, vote models.Vote, pick Picker) (models.SessionState, error) {
	if state.CurrentName == nil {
		return state, ErrInvalidState
	}
	if !vote.Valid() {
		return state, ErrInvalidVote
	}

	next := models.SessionState{
		NamePool: state.NamePool,
		Votes: state.Votes.With(models.VoteEntry{
			NameRecord: *state.CurrentName,
			Vote:       vote,
		}),
	}

	_, _, next = DrawNext(next, pick)
	return next, nil
}

// Results partitions votes by tag, in insertion order
func Results(state models.SessionState) (liked, disliked []models.VoteEntry) {
	liked = []models.VoteEntry{}
	disliked = []models.VoteEntry{}

	for _, e := range state.Votes.Entries() {
		switch e.Vote {
		case models.VoteUp:
			liked = append(liked, e)
		case models.VoteDown:
			disliked = append(disliked, e)
		}
	}
	return liked, disliked
}

// CurrentPhase derives the presentation phase
func CurrentPhase(state models.SessionState, reviewing bool) models.Phase {
	switch {
	case reviewing:
		return models.PhaseReviewing
	case state.CurrentName == nil && len(state.NamePool) == 0:
		return models.PhaseExhausted
	default:
		return models.PhaseVoting
	}
}

func cloneRecords(records []models.NameRecord) []models.NameRecord {
	out := make([]models.NameRecord, len(records))
	copy(out, records)
	return out
}

func withoutKey(records []models.NameRecord, key string) []models.NameRecord {
	for i, r := range records {
		if r.Key() == key {
			out := make([]models.NameRecord, 0, len(records)-1)
			out = append(out, records[:i]...)
			return append(out, records[i+1:]...)
		}
	}
	return records
}
