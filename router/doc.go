// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the candidate scoring API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Public:

	GET /health
	GET /

Identified (SSO headers, or query parameters in dev identity mode):

	GET  /me                        - Current user
	GET  /positions                 - List positions
	POST /positions                 - Create position
	GET  /positions/{id}            - Position with ranked candidates
	POST /positions/{id}/candidates - Add candidate
	GET  /candidates/{id}           - Candidate, own score, statistics
	PUT  /candidates/{id}/score     - Submit or update own score
	PUT  /candidates/{id}/feedback  - Set student feedback

Identified routes are wrapped with middleware.WithLogging and
middleware.RequireUser, which upserts the user on first sight.
*/
package router
