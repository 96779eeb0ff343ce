// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/candidate-scoring/middleware"
	"github.com/danielhkuo/candidate-scoring/models"
	"github.com/danielhkuo/candidate-scoring/scoring"
)

// writeStoreError maps a scoring error onto a status code.
// notFound is the message used when the referenced record is missing.
func writeStoreError(w http.ResponseWriter, err error, notFound, failure string) {
	var verr *scoring.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, scoring.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFound)
	default:
		slog.Error(failure, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// currentUser returns the user placed in the context by RequireUser.
func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "User required")
	}
	return user, ok
}
