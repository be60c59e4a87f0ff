package models

import (
	"fmt"
	"strconv"
)

// Gender constants
const (
	GenderGirl Gender = "Girl"
	GenderBoy  Gender = "Boy"
)

// Vote constants
const (
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// Presentation phase constants
const (
	PhaseVoting    Phase = "voting"
	PhaseReviewing Phase = "reviewing"
	PhaseExhausted Phase = "exhausted"
)

// View constants for SetViewRequest
const (
	ViewVoting  = "voting"
	ViewResults = "results"
)

// Gender is the dataset gender tag
type Gender string

// Valid reports whether g is Girl or Boy
func (g Gender) Valid() bool {
	return g == GenderGirl || g == GenderBoy
}

// Vote is a thumbs-up or thumbs-down on one name
type Vote string

// Valid reports whether v is up or down
func (v Vote) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// Label returns the export label for a vote ("Liked" or "Disliked")
func (v Vote) Label() string {
	if v == VoteUp {
		return "Liked"
	}
	return "Disliked"
}

// Phase is the presentation state of the session
type Phase string

// Domain types

type NameRecord struct {
	Name   string `json:"name" yaml:"name"`
	Gender Gender `json:"gender" yaml:"gender"`
	Year   int    `json:"year" yaml:"year"`
}

// Key returns the composite "year-gender-name" identity of a record
func (n NameRecord) Key() string {
	return strconv.Itoa(n.Year) + "-" + string(n.Gender) + "-" + n.Name
}

func (n NameRecord) String() string {
	return fmt.Sprintf("%s (%s, %d)", n.Name, n.Gender, n.Year)
}

// VoteEntry is a NameRecord with the vote cast on it.
// JSON form is the flattened record plus a "vote" field.
type VoteEntry struct {
	NameRecord
	Vote Vote `json:"vote"`
}

// SessionState is the unit of persistence.
// CurrentName is never a member of NamePool.
type SessionState struct {
	NamePool    []NameRecord `json:"namePool"`
	CurrentName *NameRecord  `json:"currentName"`
	Votes       Tally        `json:"votes"`
}

// Request types

type CastVoteRequest struct {
	Vote Vote `json:"vote"`
}

type SetViewRequest struct {
	View string `json:"view"`
}

// Response types

type SessionResponse struct {
	Phase       Phase       `json:"phase"`
	CurrentName *NameRecord `json:"current_name"`
	Remaining   int         `json:"remaining"`
	VoteCount   int         `json:"vote_count"`
}

type ResultsResponse struct {
	Liked    []VoteEntry `json:"liked"`
	Disliked []VoteEntry `json:"disliked"`
}

type MailResponse struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	MailtoURL string `json:"mailto_url"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
