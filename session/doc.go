// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the name voting session.

# Transitions

Transitions are pure: each takes a models.SessionState and returns a new one.

	state := session.Initialize(session.Load(kv), dataset)
	_, _, state = session.DrawNext(state, pick)
	state, err := session.CastVote(state, models.VoteUp, pick)
	liked, disliked := session.Results(state)

A name leaves the pool when it is drawn and enters the tally when voted on, so
len(pool) + votes + (1 if a name is presented) always equals the dataset size.

# Randomness

DrawNext takes a Picker, a func(n int) int returning an index in [0, n).
RandomPicker uses math/rand/v2; tests pass fixed pickers.

# Persistence

Load, Save and Clear map the state onto three store keys:

	votes       -> JSON object keyed by "year-gender-name"
	namePool    -> JSON array of records
	currentName -> JSON record, deleted when nothing is presented

Malformed stored values are logged and treated as absent. A stored empty pool
restarts presentation from the full dataset while keeping votes.

# Manager

Manager owns the live state for the HTTP layer. It auto-draws on startup and
after reset, writes through after every mutation, and serializes callers.

	m := session.NewManager(kv, dataset, nil)
	status, err := m.Vote(models.VoteDown)

# Errors

  - ErrInvalidState: vote with nothing presented, or draw while presenting
  - ErrInvalidVote: vote tag other than "up"/"down"
*/
package session
