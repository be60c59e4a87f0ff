// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the service.

# Domain Types

  - NameRecord: name, gender, year; keyed by "year-gender-name"
  - VoteEntry: a NameRecord plus its vote
  - Tally: ordered key -> VoteEntry mapping
  - SessionState: namePool, currentName, votes (the unit of persistence)

# Request Types

  - CastVoteRequest: vote ("up" or "down")
  - SetViewRequest: view ("voting" or "results")

# Response Types

  - SessionResponse: phase, current_name, remaining, vote_count
  - ResultsResponse: liked, disliked
  - MailResponse: subject, body, mailto_url
  - ErrorResponse: error, message

# Constants

Genders:

	GenderGirl = "Girl"
	GenderBoy  = "Boy"

Votes:

	VoteUp   = "up"
	VoteDown = "down"

Phases:

	PhaseVoting    = "voting"
	PhaseReviewing = "reviewing"
	PhaseExhausted = "exhausted"
*/
package models
