// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/name-picker/models"
	"github.com/danielhkuo/name-picker/store"
)

// Persistence keys
const (
	KeyVotes       = "votes"
	KeyNamePool    = "namePool"
	KeyCurrentName = "currentName"
)

// Load reads the persisted session. Returns nil when nothing was stored.
// Unreadable or malformed values are logged and treated as absent.
func Load(s store.Store) *Snapshot {
	var snap Snapshot
	found := false

	if raw, ok := read(s, KeyNamePool); ok {
		var pool []models.NameRecord
		if err := json.Unmarshal([]byte(raw), &pool); err != nil {
			slog.Warn("discarding malformed persisted value", "key", KeyNamePool, "error", err)
		} else {
			snap.NamePool = pool
			snap.HasPool = true
			found = true
		}
	}

	if raw, ok := read(s, KeyCurrentName); ok {
		var current *models.NameRecord
		if err := json.Unmarshal([]byte(raw), &current); err != nil {
			slog.Warn("discarding malformed persisted value", "key", KeyCurrentName, "error", err)
		} else if current != nil {
			snap.CurrentName = current
			found = true
		}
	}

	if raw, ok := read(s, KeyVotes); ok {
		var votes models.Tally
		if err := json.Unmarshal([]byte(raw), &votes); err != nil {
			slog.Warn("discarding malformed persisted value", "key", KeyVotes, "error", err)
		} else {
			snap.Votes = votes
			found = true
		}
	}

	if !found {
		return nil
	}
	return &snap
}

func read(s store.Store, key string) (string, bool) {
	raw, ok, err := s.Get(key)
	if err != nil {
		slog.Warn("failed to read persisted value", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

// Save writes all three keys. An absent current name deletes its key.
func Save(s store.Store, state models.SessionState) error {
	pool := state.NamePool
	if pool == nil {
		pool = []models.NameRecord{}
	}
	poolJSON, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("failed to encode name pool: %w", err)
	}
	if err := s.Set(KeyNamePool, string(poolJSON)); err != nil {
		return fmt.Errorf("failed to save name pool: %w", err)
	}

	votesJSON, err := json.Marshal(state.Votes)
	if err != nil {
		return fmt.Errorf("failed to encode votes: %w", err)
	}
	if err := s.Set(KeyVotes, string(votesJSON)); err != nil {
		return fmt.Errorf("failed to save votes: %w", err)
	}

	if state.CurrentName == nil {
		if err := s.Delete(KeyCurrentName); err != nil {
			return fmt.Errorf("failed to clear current name: %w", err)
		}
		return nil
	}

	currentJSON, err := json.Marshal(state.CurrentName)
	if err != nil {
		return fmt.Errorf("failed to encode current name: %w", err)
	}
	if err := s.Set(KeyCurrentName, string(currentJSON)); err != nil {
		return fmt.Errorf("failed to save current name: %w", err)
	}
	return nil
}

// Clear deletes every persisted key
func Clear(s store.Store) error {
	for _, key := range []string{KeyVotes, KeyNamePool, KeyCurrentName} {
		if err := s.Delete(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

// Reset clears persisted storage and returns the initial state
func Reset(s store.Store, dataset []models.NameRecord) (models.SessionState, error) {
	if err := Clear(s); err != nil {
		return NewState(dataset), err
	}
	return NewState(dataset), nil
}
