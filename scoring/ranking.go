// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/danielhkuo/candidate-scoring/models"
)

// RankCandidates returns every candidate of the position paired with its
// statistics, best first.
func (s *Store) RankCandidates(ctx context.Context, positionID string) ([]models.RankedCandidate, error) {
	if err := positionExists(ctx, s.db, positionID); err != nil {
		return nil, err
	}

	candidates, scores, err := s.positionScores(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get position scores: %w", err)
	}

	ranked := make([]models.RankedCandidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = models.RankedCandidate{
			Candidate: c,
			Stats:     ComputeStatistics(scores[c.ID]),
		}
	}

	SortRankings(ranked)
	return ranked, nil
}

// SortRankings orders candidates and assigns 1-indexed ranks.
func SortRankings(ranked []models.RankedCandidate) {
	sort.Slice(ranked, func(i, j int) bool {
		return rankedBefore(ranked[i], ranked[j])
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
}

// rankedBefore is a strict total order over candidates.
func rankedBefore(a, b models.RankedCandidate) bool {
	at, bt := a.Stats.AvgTotal, b.Stats.AvgTotal

	// 1. Candidates with scores come before candidates without
	if (at == nil) != (bt == nil) {
		return at != nil
	}

	// 2. Higher average total wins
	if at != nil && *at != *bt {
		return *at > *bt
	}

	// 3. Name, ascending and case-sensitive
	if a.Candidate.Name != b.Candidate.Name {
		return a.Candidate.Name < b.Candidate.Name
	}

	// 4. Stable tie-breaking by candidate ID (ascending)
	return a.Candidate.ID < b.Candidate.ID
}

// positionScores loads the position's candidates and their scores in one
// query, so the ranking reflects a single snapshot.
func (s *Store) positionScores(ctx context.Context, positionID string) ([]models.Candidate, map[string][]models.Score, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.position_id, c.name, COALESCE(c.student_feedback, ''), c.created_at,
		       s.hand_gestures, s.stayed_awake
		FROM candidates c
		LEFT JOIN scores s ON s.candidate_id = c.id
		WHERE c.position_id = $1
		ORDER BY c.id
	`, positionID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var candidates []models.Candidate
	scores := make(map[string][]models.Score)
	for rows.Next() {
		var c models.Candidate
		var hand, awake sql.NullInt64
		if err := rows.Scan(&c.ID, &c.PositionID, &c.Name, &c.StudentFeedback, &c.CreatedAt, &hand, &awake); err != nil {
			return nil, nil, err
		}

		// Rows arrive grouped by candidate id
		if len(candidates) == 0 || candidates[len(candidates)-1].ID != c.ID {
			candidates = append(candidates, c)
		}
		if hand.Valid && awake.Valid {
			scores[c.ID] = append(scores[c.ID], models.Score{
				CandidateID:  c.ID,
				HandGestures: int(hand.Int64),
				StayedAwake:  int(awake.Int64),
			})
		}
	}

	return candidates, scores, rows.Err()
}
