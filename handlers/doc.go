// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the candidate scoring API.

# Handler Types

Each handler wraps a *scoring.Store:

  - PositionHandler: position listing and creation, ranked position detail,
    adding candidates
  - CandidateHandler: candidate detail, score submission, student feedback

Handlers are created via constructor functions:

	positionHandler := handlers.NewPositionHandler(store)

The acting user is read from the request context, where
middleware.RequireUser places it. Handlers never resolve identity
themselves.

# Error Mapping

Store errors are translated to status codes in one place:

	*scoring.ValidationError → 400
	scoring.ErrNotFound      → 404
	anything else            → 500 (logged)

# Scoring Flow

	PUT /candidates/{id}/score → SubmitScore ("Score saved" or "Score updated")
	GET /candidates/{id}       → GetCandidate (my_score and aggregate stats)
	GET /positions/{id}        → GetPosition (ranked candidates)
*/
package handlers
