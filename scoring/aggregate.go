// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/danielhkuo/candidate-scoring/models"
)

// Aggregate computes the statistics over every score recorded for the
// candidate. A candidate without scores yields NumScores 0 and nil averages.
func (s *Store) Aggregate(ctx context.Context, candidateID string) (models.Statistics, error) {
	scores, err := s.candidateScores(ctx, candidateID)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("failed to get candidate scores: %w", err)
	}
	return ComputeStatistics(scores), nil
}

// ComputeStatistics averages each dimension and the two together.
// The total is taken from the unrounded dimension means and rounded once.
func ComputeStatistics(scores []models.Score) models.Statistics {
	stats := models.Statistics{NumScores: len(scores)}
	if len(scores) == 0 {
		return stats
	}

	var sumHand, sumAwake int
	for _, sc := range scores {
		sumHand += sc.HandGestures
		sumAwake += sc.StayedAwake
	}

	n := float64(len(scores))
	meanHand := float64(sumHand) / n
	meanAwake := float64(sumAwake) / n

	stats.AvgHandGestures = ptr(round2(meanHand))
	stats.AvgStayedAwake = ptr(round2(meanAwake))
	stats.AvgTotal = ptr(round2((meanHand + meanAwake) / 2))
	return stats
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr(v float64) *float64 {
	return &v
}

func (s *Store) candidateScores(ctx context.Context, candidateID string) ([]models.Score, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT hand_gestures, stayed_awake
		FROM scores
		WHERE candidate_id = $1
	`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []models.Score
	for rows.Next() {
		sc := models.Score{CandidateID: candidateID}
		if err := rows.Scan(&sc.HandGestures, &sc.StayedAwake); err != nil {
			return nil, err
		}
		scores = append(scores, sc)
	}

	return scores, rows.Err()
}
