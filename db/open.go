// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// sqlitePragmas are applied to every pooled connection.
// foreign_keys is off by default in SQLite, which would disable the cascades.
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch dbType {
	case TypeSQLite:
		conn, err = sql.Open("sqlite", SQLiteDSN(url))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// SQLite allows a single writer; one connection serializes
		// transactions instead of failing them with SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
	case TypePostgres:
		conn, err = sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// SQLiteDSN turns a file path or file: URI into a DSN carrying the
// connection pragmas.
func SQLiteDSN(path string) string {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(sqlitePragmas, "&")
}
