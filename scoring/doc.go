// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring records interviewer scores and ranks candidates.

A Store wraps the database and exposes every operation the HTTP layer
needs:

	store := scoring.NewStore(conn)
	result, err := store.SubmitScore(ctx, candidateID, userID, 4, 5)

# Scores

Each interviewer holds at most one score per candidate. Hand gestures and
stayed awake are integers from 1 to 5; anything else fails with a
*ValidationError and nothing is written. A resubmission overwrites the
previous row in place, keeping its id.

# Statistics

Aggregate and ComputeStatistics report the score count and the mean of
each dimension, rounded to two decimals. The total is the mean of the two
unrounded dimension means, rounded once. With no scores every average is
nil.

# Ranking

RankCandidates orders a position's candidates by:

 1. Candidates with scores before candidates without
 2. Higher average total
 3. Name, ascending (case-sensitive)
 4. Candidate ID, ascending

# Errors

  - *ValidationError: empty title or name, score out of range
  - ErrNotFound (wrapped): missing position, candidate, or score

Database failures are wrapped with context and returned as-is.
*/
package scoring
