// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/candidate-scoring/auth"
	"github.com/danielhkuo/candidate-scoring/cliparse"
	"github.com/danielhkuo/candidate-scoring/handlers"
	"github.com/danielhkuo/candidate-scoring/middleware"
	"github.com/danielhkuo/candidate-scoring/scoring"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	store := scoring.NewStore(db)
	resolver := auth.HeaderResolver{DevFallback: cfg.DevIdentity}
	withUser := middleware.RequireUser(resolver, store)

	// Every API route logs and resolves the acting user
	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(withUser(h)))
	}

	// Initialize handlers
	positionHandler := handlers.NewPositionHandler(store)
	candidateHandler := handlers.NewCandidateHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	route("GET /me", handlers.Me)

	// Positions
	route("GET /positions", positionHandler.ListPositions)
	route("POST /positions", positionHandler.CreatePosition)
	route("GET /positions/{id}", positionHandler.GetPosition)
	route("POST /positions/{id}/candidates", positionHandler.CreateCandidate)

	// Candidates and scoring
	route("GET /candidates/{id}", candidateHandler.GetCandidate)
	route("PUT /candidates/{id}/score", candidateHandler.SubmitScore)
	route("PUT /candidates/{id}/feedback", candidateHandler.SetFeedback)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("candidate-scoring API v1"))
	})

	return mux
}
