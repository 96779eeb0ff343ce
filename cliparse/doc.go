// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: candidate_scoring.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DevIdentity: accept identity from query parameters (default: false)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-dev-identity  Development identity fallback

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	DEV_IDENTITY  → -dev-identity

CLI flags take precedence over environment variables. The server loads a
.env file from the working directory before parsing.

# Validation

ParseFlags returns an error for a non-numeric PORT, a database type other
than sqlite or postgres, or a DEV_IDENTITY that is not a boolean.
*/
package cliparse
