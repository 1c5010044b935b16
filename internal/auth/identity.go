package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Identity is the authenticated caller as decoded from a verified token.
type Identity struct {
	ProfileID uuid.UUID
	Roles     []string
	TokenID   string
	IssuedAt  time.Time
	// ExpiresAt is zero for tokens without expiry.
	ExpiresAt time.Time
}

type identityKey struct{}

// echo context key; handlers normally use IdentityFrom instead.
const contextKey = "identity"

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext extracts the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}

// IdentityFrom returns the identity the auth middleware attached to c.
func IdentityFrom(c echo.Context) (Identity, bool) {
	if identity, ok := c.Get(contextKey).(Identity); ok {
		return identity, true
	}
	return IdentityFromContext(c.Request().Context())
}

// remainingTTL is how long a revocation of this token must be kept.
func (i Identity) remainingTTL(now time.Time) time.Duration {
	if i.ExpiresAt.IsZero() {
		return 0
	}
	return i.ExpiresAt.Sub(now)
}
