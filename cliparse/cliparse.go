package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/danielhkuo/candidate-scoring/db"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DevIdentity  bool
}

// ParseFlags parses CLI flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("candidate-scoring", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	devIdentity := fs.String("dev-identity", "", "Accept identity from query parameters when SSO headers are absent (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "candidate_scoring.db"
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = db.TypeSQLite
		}
	}
	if cfg.DatabaseType != db.TypeSQLite && cfg.DatabaseType != db.TypePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if *devIdentity == "" {
		*devIdentity = os.Getenv("DEV_IDENTITY")
	}
	if *devIdentity != "" {
		enabled, err := strconv.ParseBool(*devIdentity)
		if err != nil {
			return Config{}, errors.New("invalid DEV_IDENTITY value")
		}
		cfg.DevIdentity = enabled
	}

	return cfg, nil
}
