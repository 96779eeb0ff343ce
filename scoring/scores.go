// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/candidate-scoring/models"
)

type scoreInput struct {
	HandGestures int `json:"hand_gestures" validate:"min=1,max=5"`
	StayedAwake  int `json:"stayed_awake" validate:"min=1,max=5"`
}

// SubmitResult identifies the score row that now holds the submission.
type SubmitResult struct {
	ScoreID string
	Updated bool // true when an earlier submission was overwritten
}

// ValidateScore checks both dimensions are within [MinScore, MaxScore].
func ValidateScore(handGestures, stayedAwake int) error {
	in := scoreInput{HandGestures: handGestures, StayedAwake: stayedAwake}
	if err := validate.Struct(in); err != nil {
		return toValidationError(err)
	}
	return nil
}

// SubmitScore records an interviewer's score for a candidate, replacing the
// interviewer's previous score for that candidate if there is one. The row
// keeps its id on replacement and updated_at is refreshed.
func (s *Store) SubmitScore(ctx context.Context, candidateID, interviewerID string, handGestures, stayedAwake int) (SubmitResult, error) {
	if err := ValidateScore(handGestures, stayedAwake); err != nil {
		return SubmitResult{}, err
	}

	var result SubmitResult
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := candidateExists(ctx, tx, candidateID); err != nil {
			return err
		}

		// The unique (candidate_id, interviewer_id) constraint makes this a
		// single atomic insert-or-update, so two concurrent first submissions
		// from one interviewer still leave one row.
		freshID := newID()
		now := s.now()
		err := tx.QueryRowContext(ctx, `
			INSERT INTO scores (id, candidate_id, interviewer_id, hand_gestures, stayed_awake, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			ON CONFLICT (candidate_id, interviewer_id) DO UPDATE
			SET hand_gestures = excluded.hand_gestures,
			    stayed_awake = excluded.stayed_awake,
			    updated_at = excluded.updated_at
			RETURNING id
		`, freshID, candidateID, interviewerID, handGestures, stayedAwake, now).Scan(&result.ScoreID)
		if err != nil {
			return fmt.Errorf("failed to upsert score: %w", err)
		}

		result.Updated = result.ScoreID != freshID
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}

	slog.Info("score submitted",
		"candidate_id", candidateID,
		"interviewer_id", interviewerID,
		"score_id", result.ScoreID,
		"is_update", result.Updated,
	)
	return result, nil
}

// GetScore returns the score the interviewer gave the candidate.
func (s *Store) GetScore(ctx context.Context, candidateID, interviewerID string) (models.Score, error) {
	var score models.Score
	err := s.db.QueryRowContext(ctx, `
		SELECT id, candidate_id, interviewer_id, hand_gestures, stayed_awake, created_at, updated_at
		FROM scores
		WHERE candidate_id = $1 AND interviewer_id = $2
	`, candidateID, interviewerID).Scan(
		&score.ID, &score.CandidateID, &score.InterviewerID,
		&score.HandGestures, &score.StayedAwake, &score.CreatedAt, &score.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Score{}, fmt.Errorf("score for candidate %s: %w", candidateID, ErrNotFound)
	}
	if err != nil {
		return models.Score{}, fmt.Errorf("failed to query score: %w", err)
	}
	return score, nil
}
