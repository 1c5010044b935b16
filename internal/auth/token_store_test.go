package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharecircle/internal/cache"
)

func TestTokenStore_RevokeUntilExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := NewTokenStore(cache.New(mr.Addr(), "", 0), time.Hour)
	ctx := context.Background()

	identity := Identity{TokenID: "jti-1", ExpiresAt: time.Now().Add(10 * time.Minute)}
	require.NoError(t, store.Revoke(ctx, identity))

	assert.True(t, store.IsRevoked(ctx, Identity{TokenID: "jti-1"}))
	assert.False(t, store.IsRevoked(ctx, Identity{TokenID: "jti-2"}))

	ttl := mr.TTL(revokedTokenKeyPrefix + "jti-1")
	assert.True(t, ttl > 9*time.Minute && ttl <= 10*time.Minute, "ttl was %s", ttl)

	mr.FastForward(11 * time.Minute)
	assert.False(t, store.IsRevoked(ctx, Identity{TokenID: "jti-1"}))
}

func TestTokenStore_NonExpiringTokenStaysRevoked(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := NewTokenStore(cache.New(mr.Addr(), "", 0), time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, Identity{TokenID: "forever"}))
	assert.Equal(t, time.Duration(0), mr.TTL(revokedTokenKeyPrefix+"forever"))
	assert.True(t, store.IsRevoked(ctx, Identity{TokenID: "forever"}))
}

func TestTokenStore_IgnoresExpiredAndAnonymousTokens(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := NewTokenStore(cache.New(mr.Addr(), "", 0), time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, Identity{TokenID: "old", ExpiresAt: time.Now().Add(-time.Minute)}))
	require.NoError(t, store.Revoke(ctx, Identity{}))

	assert.False(t, mr.Exists(revokedTokenKeyPrefix+"old"))
	assert.False(t, store.IsRevoked(ctx, Identity{}))
}

func TestTokenStore_RevokeProfileCoversEarlierTokens(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := NewTokenStore(cache.New(mr.Addr(), "", 0), time.Hour)
	revokedAt := time.Unix(1700000000, 0)
	store.now = func() time.Time { return revokedAt }
	ctx := context.Background()

	jon, dany := uuid.New(), uuid.New()
	require.NoError(t, store.RevokeProfile(ctx, jon))

	ttl := mr.TTL(revokedProfileKeyPrefix + jon.String())
	assert.Equal(t, time.Hour, ttl)

	tests := []struct {
		name     string
		identity Identity
		want     bool
	}{
		{name: "earlier session", identity: Identity{ProfileID: jon, TokenID: "a", IssuedAt: revokedAt.Add(-time.Minute)}, want: true},
		{name: "same second", identity: Identity{ProfileID: jon, TokenID: "b", IssuedAt: revokedAt.Add(500 * time.Millisecond)}, want: true},
		{name: "issued afterwards", identity: Identity{ProfileID: jon, TokenID: "c", IssuedAt: revokedAt.Add(time.Second)}, want: false},
		{name: "other profile", identity: Identity{ProfileID: dany, TokenID: "d", IssuedAt: revokedAt.Add(-time.Minute)}, want: false},
		{name: "no profile", identity: Identity{TokenID: "e"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.IsRevoked(ctx, tt.identity))
		})
	}

	mr.FastForward(61 * time.Minute)
	assert.False(t, store.IsRevoked(ctx, Identity{ProfileID: jon, IssuedAt: revokedAt.Add(-time.Minute)}))
}

func TestTokenStore_RevokeProfileWithoutTokenExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := NewTokenStore(cache.New(mr.Addr(), "", 0), 0)
	ctx := context.Background()
	jon := uuid.New()

	require.NoError(t, store.RevokeProfile(ctx, jon))
	assert.Equal(t, time.Duration(0), mr.TTL(revokedProfileKeyPrefix+jon.String()))
	assert.True(t, store.IsRevoked(ctx, Identity{ProfileID: jon, IssuedAt: time.Now().Add(-time.Hour)}))

	mr.Set(revokedProfileKeyPrefix+jon.String(), "garbled")
	assert.True(t, store.IsRevoked(ctx, Identity{ProfileID: jon, IssuedAt: time.Now()}))
}
