package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"sharecircle/internal/cache"
)

const (
	revokedTokenKeyPrefix   = "revoked_token:"
	revokedProfileKeyPrefix = "revoked_profile:"
)

// TokenStoreInterface defines the interface for token revocation.
type TokenStoreInterface interface {
	Revoke(ctx context.Context, identity Identity) error
	RevokeProfile(ctx context.Context, profileID uuid.UUID) error
	IsRevoked(ctx context.Context, identity Identity) bool
}

// TokenStore keeps revoked token ids and per-profile revocation markers in
// Redis until the tokens they cover expire.
type TokenStore struct {
	cache    *cache.Client
	tokenTTL time.Duration
	now      func() time.Time
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store. tokenTTL is the lifetime of issued
// tokens; zero means tokens never expire.
func NewTokenStore(cache *cache.Client, tokenTTL time.Duration) *TokenStore {
	return &TokenStore{cache: cache, tokenTTL: tokenTTL, now: time.Now}
}

// Revoke denylists the token behind identity. Tokens without an expiry are
// denylisted forever; already expired tokens need no entry.
func (s *TokenStore) Revoke(ctx context.Context, identity Identity) error {
	if identity.TokenID == "" {
		return nil
	}
	ttl := identity.remainingTTL(s.now())
	if ttl < 0 {
		return nil
	}
	s.cache.Set(ctx, revokedTokenKeyPrefix+identity.TokenID, []byte("1"), ttl)
	return nil
}

// RevokeProfile invalidates every token issued to profileID up to now. The
// marker lives as long as the longest token it can cover.
func (s *TokenStore) RevokeProfile(ctx context.Context, profileID uuid.UUID) error {
	issuedBefore := strconv.FormatInt(s.now().Unix(), 10)
	s.cache.Set(ctx, revokedProfileKeyPrefix+profileID.String(), []byte(issuedBefore), s.tokenTTL)
	return nil
}

// IsRevoked reports whether the token was revoked on its own or issued no
// later than its profile's revocation marker. An unreachable Redis reports
// false.
func (s *TokenStore) IsRevoked(ctx context.Context, identity Identity) bool {
	if identity.TokenID != "" && s.cache.Exists(ctx, revokedTokenKeyPrefix+identity.TokenID) {
		return true
	}
	if identity.ProfileID == uuid.Nil {
		return false
	}
	marker := s.cache.Get(ctx, revokedProfileKeyPrefix+identity.ProfileID.String())
	if marker == nil {
		return false
	}
	revokedAt, err := strconv.ParseInt(string(marker), 10, 64)
	if err != nil {
		return true
	}
	// iat has second precision, so a token from the revocation second is covered
	return identity.IssuedAt.Unix() <= revokedAt
}
