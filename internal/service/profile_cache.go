package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sharecircle/internal/cache"
	"sharecircle/internal/model"
)

const profileCacheTTL = 5 * time.Minute

// ProfileCache is the cache-aside layer for full profile documents. Every
// service that mutates a profile, its links or its shareables invalidates the
// affected entries.
type ProfileCache struct {
	cache *cache.Client
}

// NewProfileCache wraps c. A nil client disables caching.
func NewProfileCache(c *cache.Client) *ProfileCache {
	return &ProfileCache{cache: c}
}

func profileCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id.String())
}

// Get returns the cached profile for id, if any.
func (p *ProfileCache) Get(ctx context.Context, id uuid.UUID) (*model.Profile, bool) {
	if p == nil {
		return nil, false
	}
	var cached model.Profile
	if !p.cache.GetJSON(ctx, profileCacheKey(id), &cached) {
		return nil, false
	}
	cached.Normalize()
	return &cached, true
}

// Set caches profile under its id.
func (p *ProfileCache) Set(ctx context.Context, profile *model.Profile) {
	if p == nil || profile == nil {
		return
	}
	p.cache.SetJSON(ctx, profileCacheKey(profile.ID), profile, profileCacheTTL)
}

// Invalidate drops the cached profiles for ids.
func (p *ProfileCache) Invalidate(ctx context.Context, ids ...uuid.UUID) {
	if p == nil || len(ids) == 0 {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, profileCacheKey(id))
	}
	p.cache.Delete(ctx, keys...)
}
