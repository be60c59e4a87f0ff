// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"sync"

	"github.com/danielhkuo/name-picker/models"
	"github.com/danielhkuo/name-picker/store"
)

// Manager owns the live session. Every mutation is written through to the
// store before the method returns. Methods are serialized by mu, so callers
// see one event at a time.
type Manager struct {
	mu        sync.Mutex
	store     store.Store
	dataset   []models.NameRecord
	pick      Picker
	state     models.SessionState
	reviewing bool
}

// NewManager restores the session from s (or starts fresh) and presents a
// name if none is presented. A nil pick uses RandomPicker.
func NewManager(s store.Store, dataset []models.NameRecord, pick Picker) *Manager {
	if pick == nil {
		pick = RandomPicker()
	}

	m := &Manager{
		store:   s,
		dataset: cloneRecords(dataset),
		pick:    pick,
	}

	persisted := Load(s)
	m.state = Initialize(persisted, m.dataset)
	m.present()
	m.persist()

	slog.Info("session ready",
		"restored", persisted != nil,
		"remaining", len(m.state.NamePool),
		"votes", m.state.Votes.Len(),
	)
	return m
}

// State returns the current state. The returned value must not be modified.
func (m *Manager) State() models.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Status summarizes the session for display
func (m *Manager) Status() models.SessionResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status()
}

func (m *Manager) status() models.SessionResponse {
	var current *models.NameRecord
	if m.state.CurrentName != nil {
		c := *m.state.CurrentName
		current = &c
	}
	return models.SessionResponse{
		Phase:       CurrentPhase(m.state, m.reviewing),
		CurrentName: current,
		Remaining:   len(m.state.NamePool),
		VoteCount:   m.state.Votes.Len(),
	}
}

// Draw presents the next name. Returns ErrInvalidState if one is already
// presented; an exhausted pool is not an error and leaves nothing presented.
func (m *Manager) Draw() (models.SessionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.CurrentName != nil {
		return m.status(), ErrInvalidState
	}

	if _, ok, next := DrawNext(m.state, m.pick); ok {
		m.state = next
		m.persist()
	}
	return m.status(), nil
}

// Vote records a vote on the presented name and presents the next one
func (m *Manager) Vote(vote models.Vote) (models.SessionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := CastVote(m.state, vote, m.pick)
	if err != nil {
		return m.status(), err
	}

	voted := *m.state.CurrentName
	m.state = next
	m.persist()

	slog.Debug("vote recorded", "key", voted.Key(), "vote", vote, "remaining", len(next.NamePool))
	return m.status(), nil
}

// Results returns the liked and disliked entries in insertion order
func (m *Manager) Results() (liked, disliked []models.VoteEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Results(m.state)
}

// SetReviewing toggles between the voting and results views
func (m *Manager) SetReviewing(reviewing bool) models.SessionResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviewing = reviewing
	return m.status()
}

// Reset clears persisted storage and starts over with a freshly drawn name
func (m *Manager) Reset() models.SessionResponse {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := Reset(m.store, m.dataset)
	if err != nil {
		slog.Error("failed to clear persisted session", "error", err)
	}

	m.state = state
	m.reviewing = false
	m.present()
	m.persist()

	slog.Info("session reset", "remaining", len(m.state.NamePool))
	return m.status()
}

// present draws a name when none is presented. Caller holds mu.
func (m *Manager) present() {
	if _, ok, next := DrawNext(m.state, m.pick); ok {
		m.state = next
	}
}

// persist writes the state through. Failures are logged; the in-memory
// session keeps running. Caller holds mu.
func (m *Manager) persist() {
	if err := Save(m.store, m.state); err != nil {
		slog.Error("failed to persist session", "error", err)
	}
}
