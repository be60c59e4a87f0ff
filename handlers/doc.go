// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the name-picker API.

# Handler Types

Each handler is a struct over a shared *session.Manager:

  - VotingHandler: Session status, drawing, voting, view switching and reset
  - ResultsHandler: Results lists, CSV export and mail rendering

	votingHandler := handlers.NewVotingHandler(mgr)

# Session Flow

A session presents one name at a time until the pool is exhausted:

	GET  /session        → GetSession
	POST /session/votes  → CastVote (records the vote, presents the next name)
	POST /session/draw   → Draw (only when no name is presented)
	POST /session/reset  → Reset (clears votes, refills the pool)

Voting without a presented name and drawing while one is presented both
return 409 Conflict. An unknown vote value returns 400.

# Results

Results are derived from the vote tally in insertion order:

	GET /results             → GetResults
	GET /results/export.csv  → ExportCSV
	GET /results/mail?to=    → GetMail

# Error Responses

All errors use a consistent JSON format:

	{"error": "Conflict", "message": "no name is currently presented"}
*/
package handlers
