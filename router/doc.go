// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the name-picker API.

# Route Registration

NewRouter creates a configured http.ServeMux over a session manager:

	mux := router.NewRouter(mgr)

# Endpoints

Health:

	GET /health

Session:

	GET  /session        - Phase, presented name, remaining, vote count
	POST /session/draw   - Present the next name (409 if one is presented)
	POST /session/votes  - {"vote":"up"|"down"}
	POST /session/view   - {"view":"results"|"voting"}
	POST /session/reset  - Clear votes and start over

Results:

	GET /results             - Liked and disliked lists
	GET /results/export.csv  - Name,Gender,Year,Vote table
	GET /results/mail?to=    - Subject, body and mailto: link

All routes except /health and / are wrapped with middleware.WithLogging.
*/
package router
