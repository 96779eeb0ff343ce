// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/candidate-scoring/auth"
	"github.com/danielhkuo/candidate-scoring/models"
)

type userKey struct{}

// UserStore creates users on first sight.
type UserStore interface {
	EnsureUser(ctx context.Context, u models.User) (models.User, error)
}

// RequireUser resolves the acting user, makes sure a row exists for it, and
// stores it in the request context. Requests without an identity get 401.
func RequireUser(resolver auth.Resolver, users UserStore) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolver.Resolve(r)
			if errors.Is(err, auth.ErrNoIdentity) {
				ErrorResponse(w, http.StatusUnauthorized, auth.HeaderUserID+" header required")
				return
			}
			if err != nil {
				slog.Error("failed to resolve identity", "error", err)
				ErrorResponse(w, http.StatusInternalServerError, "Failed to resolve user")
				return
			}

			user, err := users.EnsureUser(r.Context(), identity.User())
			if err != nil {
				slog.Error("failed to ensure user", "error", err, "user_id", identity.UserID)
				ErrorResponse(w, http.StatusInternalServerError, "Database error")
				return
			}

			next(w, r.WithContext(WithUser(r.Context(), user)))
		}
	}
}

// WithUser returns a copy of ctx carrying the user.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the user stored by RequireUser.
func UserFromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey{}).(models.User)
	return u, ok
}
