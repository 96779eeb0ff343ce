// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielhkuo/candidate-scoring/models"
)

// Headers set by the SSO proxy in front of the service
const (
	HeaderUserID = "X-SSO-User-ID"
	HeaderEmail  = "X-SSO-Email"
	HeaderName   = "X-SSO-Name"
)

// Development identity used when no header or query parameter is given
const (
	DevUserID = "dev-user-1"
	DevEmail  = "dev@university.edu"
	DevName   = "Dev User"
)

var ErrNoIdentity = errors.New("no identity on request")

// Identity is the acting user as reported by the identity provider.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}

// User converts the identity into the row stored on first sight.
func (i Identity) User() models.User {
	return models.User{
		ID:          i.UserID,
		Email:       i.Email,
		DisplayName: i.DisplayName,
	}
}

// Resolver finds the acting user for a request.
type Resolver interface {
	Resolve(r *http.Request) (Identity, error)
}

// HeaderResolver trusts the SSO headers. With DevFallback set, requests
// without headers take user_id, email and name from the query string,
// defaulting to the development identity.
type HeaderResolver struct {
	DevFallback bool
}

func (h HeaderResolver) Resolve(r *http.Request) (Identity, error) {
	if id := strings.TrimSpace(r.Header.Get(HeaderUserID)); id != "" {
		return Identity{
			UserID:      id,
			Email:       r.Header.Get(HeaderEmail),
			DisplayName: r.Header.Get(HeaderName),
		}, nil
	}

	if !h.DevFallback {
		return Identity{}, ErrNoIdentity
	}

	q := r.URL.Query()
	return Identity{
		UserID:      queryOr(q.Get("user_id"), DevUserID),
		Email:       queryOr(q.Get("email"), DevEmail),
		DisplayName: queryOr(q.Get("name"), DevName),
	}, nil
}

func queryOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
