// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ann = NameRecord{Name: "Ann", Gender: GenderGirl, Year: 2020}
	bo  = NameRecord{Name: "Bo", Gender: GenderBoy, Year: 2021}
	cy  = NameRecord{Name: "Cy", Gender: GenderBoy, Year: 2019}
)

func TestNameRecordKey(t *testing.T) {
	assert.Equal(t, "2020-Girl-Ann", ann.Key())
	assert.Equal(t, "2021-Boy-Bo", bo.Key())
}

func TestTally_WithDoesNotMutate(t *testing.T) {
	base := NewTally(VoteEntry{NameRecord: ann, Vote: VoteUp})
	next := base.With(VoteEntry{NameRecord: bo, Vote: VoteDown})

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, next.Len())

	_, ok := base.Get(bo.Key())
	assert.False(t, ok)
}

func TestTally_OverwriteKeepsPosition(t *testing.T) {
	tally := NewTally(
		VoteEntry{NameRecord: ann, Vote: VoteUp},
		VoteEntry{NameRecord: bo, Vote: VoteUp},
	)
	tally = tally.With(VoteEntry{NameRecord: ann, Vote: VoteDown})

	entries := tally.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, ann, entries[0].NameRecord)
	assert.Equal(t, VoteDown, entries[0].Vote)
	assert.Equal(t, bo, entries[1].NameRecord)
}

func TestTally_JSONPreservesOrder(t *testing.T) {
	tally := NewTally(
		VoteEntry{NameRecord: cy, Vote: VoteDown},
		VoteEntry{NameRecord: ann, Vote: VoteUp},
		VoteEntry{NameRecord: bo, Vote: VoteUp},
	)

	data, err := json.Marshal(tally)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"2019-Boy-Cy": {"name":"Cy","gender":"Boy","year":2019,"vote":"down"},
		"2020-Girl-Ann": {"name":"Ann","gender":"Girl","year":2020,"vote":"up"},
		"2021-Boy-Bo": {"name":"Bo","gender":"Boy","year":2021,"vote":"up"}
	}`, string(data))

	var decoded Tally
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tally.Entries(), decoded.Entries())
}

func TestTally_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{"empty object", `{}`, 0, false},
		{"null", `null`, 0, false},
		{"one entry", `{"2020-Girl-Ann":{"name":"Ann","gender":"Girl","year":2020,"vote":"up"}}`, 1, false},
		{"array", `[]`, 0, true},
		{"bad entry", `{"k": 5}`, 0, true},
		{"truncated", `{"k": {"name":"Ann"}`, 0, true},
		{"key does not match record", `{"legacy":{"name":"Ann","gender":"Girl","year":2020,"vote":"up"}}`, 0, true},
		{"unknown vote tag", `{"2021-Boy-Bo":{"name":"Bo","gender":"Boy","year":2021,"vote":"sideways"}}`, 0, true},
		{"missing vote tag", `{"2021-Boy-Bo":{"name":"Bo","gender":"Boy","year":2021}}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tally Tally
			err := json.Unmarshal([]byte(tt.input), &tally)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, tally.Len())
		})
	}
}

func TestSessionStateJSON(t *testing.T) {
	state := SessionState{
		NamePool:    []NameRecord{bo},
		CurrentName: &ann,
		Votes:       NewTally(VoteEntry{NameRecord: cy, Vote: VoteUp}),
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded SessionState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state.NamePool, decoded.NamePool)
	assert.Equal(t, *state.CurrentName, *decoded.CurrentName)
	assert.Equal(t, state.Votes.Entries(), decoded.Votes.Entries())
}

func TestVoteLabel(t *testing.T) {
	assert.Equal(t, "Liked", VoteUp.Label())
	assert.Equal(t, "Disliked", VoteDown.Label())
	assert.True(t, VoteUp.Valid())
	assert.False(t, Vote("sideways").Valid())
	assert.True(t, GenderBoy.Valid())
	assert.False(t, Gender("Other").Valid())
}
