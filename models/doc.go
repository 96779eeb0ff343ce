// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePositionRequest: title
  - CreateCandidateRequest: name
  - SubmitScoreRequest: hand_gestures, stayed_awake (integers 1-5)
  - SetFeedbackRequest: student_feedback

# Response Types

  - SubmitScoreResponse: score_id, message
  - PositionDetailResponse: position plus ranked candidates
  - CandidateDetailResponse: candidate, the caller's own score, statistics
  - ErrorResponse: error, message

# Domain Types

  - User: interviewer identity, created on first request
  - Position: an open role
  - Candidate: a person evaluated for a position
  - Score: one interviewer's two-dimension rating of one candidate
  - Statistics: per-candidate count and averages
  - RankedCandidate: candidate, statistics, and 1-indexed rank

# Null Averages

Statistics averages are pointers. A candidate without scores reports
num_scores 0 and null averages, never zero:

	{"num_scores": 0, "avg_hand_gestures": null, "avg_stayed_awake": null, "avg_total": null}

# Constants

Score bounds:

	MinScore = 1
	MaxScore = 5
*/
package models
