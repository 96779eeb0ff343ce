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

// CreatePosition stores a new position with a trimmed, non-empty title.
func (s *Store) CreatePosition(ctx context.Context, title, createdBy string) (models.Position, error) {
	title, err := requireText("title", title)
	if err != nil {
		return models.Position{}, err
	}

	position := models.Position{
		ID:        newID(),
		Title:     title,
		CreatedBy: createdBy,
		CreatedAt: s.now(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO positions (id, title, created_by, created_at)
		VALUES ($1, $2, $3, $4)
	`, position.ID, position.Title, position.CreatedBy, position.CreatedAt)
	if err != nil {
		return models.Position{}, fmt.Errorf("failed to insert position: %w", err)
	}

	slog.Info("position created", "position_id", position.ID, "created_by", createdBy)
	return position, nil
}

// GetPosition looks up a single position.
func (s *Store) GetPosition(ctx context.Context, positionID string) (models.Position, error) {
	var p models.Position
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, created_by, created_at
		FROM positions
		WHERE id = $1
	`, positionID).Scan(&p.ID, &p.Title, &p.CreatedBy, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Position{}, fmt.Errorf("position %s: %w", positionID, ErrNotFound)
	}
	if err != nil {
		return models.Position{}, fmt.Errorf("failed to query position: %w", err)
	}
	return p, nil
}

// ListPositions returns all positions, newest first, with the creator's
// display name and the number of candidates.
func (s *Store) ListPositions(ctx context.Context) ([]models.PositionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.created_by, p.created_at,
		       u.display_name, COUNT(c.id)
		FROM positions p
		JOIN users u ON p.created_by = u.id
		LEFT JOIN candidates c ON c.position_id = p.id
		GROUP BY p.id, p.title, p.created_by, p.created_at, u.display_name
		ORDER BY p.created_at DESC, p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	positions := []models.PositionSummary{}
	for rows.Next() {
		var p models.PositionSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.CreatedBy, &p.CreatedAt, &p.CreatorName, &p.CandidateCount); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read positions: %w", err)
	}
	return positions, nil
}

// CreateCandidate adds a candidate to an existing position. A missing
// position is reported before an empty name.
func (s *Store) CreateCandidate(ctx context.Context, positionID, name string) (models.Candidate, error) {
	var candidate models.Candidate
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := positionExists(ctx, tx, positionID); err != nil {
			return err
		}

		trimmed, err := requireText("name", name)
		if err != nil {
			return err
		}

		candidate = models.Candidate{
			ID:         newID(),
			PositionID: positionID,
			Name:       trimmed,
			CreatedAt:  s.now(),
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO candidates (id, position_id, name, created_at)
			VALUES ($1, $2, $3, $4)
		`, candidate.ID, candidate.PositionID, candidate.Name, candidate.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert candidate: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Candidate{}, err
	}

	slog.Info("candidate created", "candidate_id", candidate.ID, "position_id", positionID)
	return candidate, nil
}

// GetCandidate looks up a candidate together with its position title.
func (s *Store) GetCandidate(ctx context.Context, candidateID string) (models.CandidateWithPosition, error) {
	var c models.CandidateWithPosition
	err := s.db.QueryRowContext(ctx, `
		SELECT c.id, c.position_id, c.name, COALESCE(c.student_feedback, ''), c.created_at, p.title
		FROM candidates c
		JOIN positions p ON c.position_id = p.id
		WHERE c.id = $1
	`, candidateID).Scan(
		&c.ID, &c.PositionID, &c.Name, &c.StudentFeedback, &c.CreatedAt, &c.PositionTitle,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CandidateWithPosition{}, fmt.Errorf("candidate %s: %w", candidateID, ErrNotFound)
	}
	if err != nil {
		return models.CandidateWithPosition{}, fmt.Errorf("failed to query candidate: %w", err)
	}
	return c, nil
}

// SetFeedback overwrites the candidate's feedback. An empty string clears it.
func (s *Store) SetFeedback(ctx context.Context, candidateID, text string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE candidates SET student_feedback = $1 WHERE id = $2
	`, text, candidateID)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("candidate %s: %w", candidateID, ErrNotFound)
	}

	slog.Info("feedback saved", "candidate_id", candidateID)
	return nil
}
