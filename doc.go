// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Candidate Scoring API server.

Candidate Scoring records interviewer evaluations of job candidates per open
position. Each interviewer rates a candidate on two dimensions (hand gestures
and stayed awake, 1-5); candidates are ranked by the average of all
interviewers' scores.

# Starting the Server

With no configuration the server stores data in candidate_scoring.db:

	go run .

Or with PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 5000 -t sqlite -d ./data/scores.db

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DEV_IDENTITY (-dev-identity): accept identity from query parameters

Variables may also be placed in a .env file.

# Identity

Users are identified by the X-SSO-User-ID, X-SSO-Email and X-SSO-Name
headers set by an SSO proxy. A user row is created the first time an id is
seen and never changed afterwards.

# Architecture

  - handlers: HTTP request handlers (positions, candidates, scores)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, current user
  - scoring: score upserts, aggregation, ranking, registry
  - models: Request/response and domain types
  - auth: Identity resolution from trusted headers
  - db: Connections and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
