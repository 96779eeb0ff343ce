// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/candidate-scoring/models"
)

// EnsureUser creates the user on first sight and returns the stored row.
// An existing user is never rewritten, even if email or name differ.
func (s *Store) EnsureUser(ctx context.Context, u models.User) (models.User, error) {
	if _, err := requireText("user_id", u.ID); err != nil {
		return models.User{}, err
	}

	var stored models.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, email, display_name, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING
		`, u.ID, u.Email, u.DisplayName, s.now())
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}

		err = tx.QueryRowContext(ctx, `
			SELECT id, email, display_name, created_at FROM users WHERE id = $1
		`, u.ID).Scan(&stored.ID, &stored.Email, &stored.DisplayName, &stored.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user %s: %w", u.ID, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to query user: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return stored, nil
}
