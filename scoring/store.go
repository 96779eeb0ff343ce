// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store runs the scoring, aggregation, ranking and registry operations
// against a SQLite or PostgreSQL database created by db.CreateSchema.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func newID() string {
	return uuid.NewString()
}

// withTx runs fn inside a transaction. The transaction is rolled back on
// any error and the connection is always returned to the pool.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func exists(ctx context.Context, q queryRower, query, id string) (bool, error) {
	var found bool
	if err := q.QueryRowContext(ctx, query, id).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func positionExists(ctx context.Context, q queryRower, positionID string) error {
	found, err := exists(ctx, q, `SELECT EXISTS(SELECT 1 FROM positions WHERE id = $1)`, positionID)
	if err != nil {
		return fmt.Errorf("failed to query position: %w", err)
	}
	if !found {
		return fmt.Errorf("position %s: %w", positionID, ErrNotFound)
	}
	return nil
}

func candidateExists(ctx context.Context, q queryRower, candidateID string) error {
	found, err := exists(ctx, q, `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`, candidateID)
	if err != nil {
		return fmt.Errorf("failed to query candidate: %w", err)
	}
	if !found {
		return fmt.Errorf("candidate %s: %w", candidateID, ErrNotFound)
	}
	return nil
}
