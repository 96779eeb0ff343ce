// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth resolves the acting user of a request.

The service does not verify identities itself. An SSO proxy in front of it
authenticates the user and forwards three trusted headers:

	X-SSO-User-ID  stable user id (required)
	X-SSO-Email    email address
	X-SSO-Name     display name

# Resolvers

Resolver is the pluggable capability the rest of the service depends on:

	var r auth.Resolver = auth.HeaderResolver{}
	id, err := r.Resolve(req)

HeaderResolver returns ErrNoIdentity when X-SSO-User-ID is missing.

# Development Fallback

With DevFallback enabled, requests without SSO headers read the identity
from the query string instead:

	GET /positions?user_id=alice&email=alice@example.edu&name=Alice

Missing parameters default to dev-user-1, dev@university.edu and Dev User.
Never enable this behind a real proxy.
*/
package auth
