// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open accepts a database type and URL:

	conn, err := db.Open(ctx, db.TypeSQLite, "candidate_scoring.db")
	conn, err := db.Open(ctx, db.TypePostgres, "postgres://...")

SQLite connections always enable foreign keys and a busy timeout, and the
pool is limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: interviewer identities
  - positions: open roles
  - candidates: people evaluated for a position
  - scores: one row per (candidate, interviewer)

# Relationships

	users 1──* positions (created_by)
	positions 1──* candidates
	candidates 1──* scores
	users 1──* scores (interviewer_id)

Candidates and scores use ON DELETE CASCADE. Scores carry a
UNIQUE (candidate_id, interviewer_id) constraint and CHECK constraints
keeping both dimensions in 1..5.

# Indexes

  - candidates.position_id
  - scores.candidate_id
  - scores.interviewer_id
  - positions.created_by
*/
package db
