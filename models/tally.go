// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Tally maps "year-gender-name" keys to vote entries, keeping first-insertion order.
// The zero value is an empty tally. Tally values are never mutated in place;
// With returns a new Tally.
type Tally struct {
	keys    []string
	entries map[string]VoteEntry
}

// NewTally builds a tally from entries in order. Later duplicates overwrite earlier ones.
func NewTally(entries ...VoteEntry) Tally {
	t := Tally{entries: make(map[string]VoteEntry, len(entries))}
	for _, e := range entries {
		t.put(e.Key(), e)
	}
	return t
}

func (t Tally) Len() int {
	return len(t.keys)
}

func (t Tally) Get(key string) (VoteEntry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Entries returns all entries in insertion order
func (t Tally) Entries() []VoteEntry {
	out := make([]VoteEntry, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.entries[k])
	}
	return out
}

// With returns a copy of t with entry inserted or overwritten.
// An overwritten key keeps its original position.
func (t Tally) With(entry VoteEntry) Tally {
	out := Tally{
		keys:    make([]string, len(t.keys), len(t.keys)+1),
		entries: make(map[string]VoteEntry, len(t.entries)+1),
	}
	copy(out.keys, t.keys)
	for k, v := range t.entries {
		out.entries[k] = v
	}
	out.put(entry.Key(), entry)
	return out
}

func (t *Tally) put(key string, entry VoteEntry) {
	if t.entries == nil {
		t.entries = make(map[string]VoteEntry)
	}
	if _, exists := t.entries[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = entry
}

// MarshalJSON writes the tally as a JSON object in insertion order
func (t Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t.entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping document order. null yields an empty tally.
// Every key must be its entry's Key and every vote must be up or down.
func (t *Tally) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*t = Tally{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("votes must be a JSON object")
	}

	var out Tally
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		var entry VoteEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("failed to decode vote %q: %w", key, err)
		}
		if key != entry.Key() {
			return fmt.Errorf("vote key %q does not match record %q", key, entry.Key())
		}
		if !entry.Vote.Valid() {
			return fmt.Errorf("vote %q has unknown tag %q", key, entry.Vote)
		}
		out.put(key, entry)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*t = out
	return nil
}
