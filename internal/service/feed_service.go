package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sharecircle/internal/metrics"
	"sharecircle/internal/model"
	"sharecircle/internal/repository"
)

// FeedService aggregates what a profile's friends are giving or asking for.
type FeedService interface {
	GetFeed(ctx context.Context, userID uuid.UUID) ([]model.FeedItem, error)
}

type feedService struct {
	profiles   repository.ProfileRepository
	shareables repository.ShareableRepository
	metrics    *metrics.Metrics
}

// NewFeedService creates a new feed service.
func NewFeedService(profiles repository.ProfileRepository, shareables repository.ShareableRepository, m *metrics.Metrics) FeedService {
	return &feedService{profiles: profiles, shareables: shareables, metrics: m}
}

// GetFeed returns, friend by friend in friend-list order, each friend's
// high-priority giving and requesting shareables in creation order.
func (s *feedService) GetFeed(ctx context.Context, userID uuid.UUID) ([]model.FeedItem, error) {
	feed := []model.FeedItem{}

	friends, err := s.profiles.FriendSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	if len(friends) == 0 {
		s.metrics.FeedServed(0)
		return feed, nil
	}

	ids := make([]uuid.UUID, 0, len(friends))
	for _, f := range friends {
		ids = append(ids, f.ID)
	}

	candidates, err := s.shareables.ListFeedCandidates(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list feed shareables: %w", err)
	}

	byOwner := make(map[uuid.UUID][]model.Shareable, len(friends))
	for _, sh := range candidates {
		if !sh.InFeed() {
			continue
		}
		sh.Normalize()
		byOwner[sh.OwnerID] = append(byOwner[sh.OwnerID], sh)
	}

	for _, f := range friends {
		for _, sh := range byOwner[f.ID] {
			feed = append(feed, model.FeedItem{Shareable: sh, Owner: f.FirstName})
		}
	}

	s.metrics.FeedServed(len(feed))
	return feed, nil
}
