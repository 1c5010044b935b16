package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sharecircle/internal/errors"
	"sharecircle/internal/metrics"
	"sharecircle/internal/model"
	"sharecircle/internal/repository"
)

// FriendLists is the response of ListFriends.
type FriendLists struct {
	Friends        []model.FriendSummary `json:"friends"`
	PendingFriends []model.FriendSummary `json:"pendingFriends"`
}

// RelationshipService drives the friend request lifecycle
// (none -> pending -> friends) and owner-checked shareable mutations.
type RelationshipService interface {
	SendRequest(ctx context.Context, requesterID uuid.UUID, targetEmail string) error
	ConfirmRequest(ctx context.Context, confirmerID, requesterID uuid.UUID) (*model.Profile, error)
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error
	ListFriends(ctx context.Context, userID uuid.UUID) (*FriendLists, error)
	GetFriendProfile(ctx context.Context, userID, friendID uuid.UUID) (*model.FriendProfile, error)

	AddShareable(ctx context.Context, ownerID uuid.UUID, in ShareableInput) (*model.Shareable, error)
	ListShareables(ctx context.Context, ownerID uuid.UUID) ([]model.Shareable, error)
	UpdateShareable(ctx context.Context, userID, shareableID uuid.UUID, patch ShareablePatch) (*model.Shareable, error)
	DeleteShareable(ctx context.Context, userID, shareableID uuid.UUID) error
}

type relationshipService struct {
	profiles   repository.ProfileRepository
	shareables repository.ShareableRepository
	tx         repository.Transactor
	cache      *ProfileCache
	metrics    *metrics.Metrics
	log        logrus.FieldLogger
}

// NewRelationshipService creates a new relationship service.
func NewRelationshipService(
	profiles repository.ProfileRepository,
	shareables repository.ShareableRepository,
	tx repository.Transactor,
	cache *ProfileCache,
	m *metrics.Metrics,
	log logrus.FieldLogger,
) RelationshipService {
	return &relationshipService{
		profiles:   profiles,
		shareables: shareables,
		tx:         tx,
		cache:      cache,
		metrics:    m,
		log:        log,
	}
}

// SendRequest adds requesterID to the pending list of the profile owning
// targetEmail. Repeating a request is a no-op.
func (s *relationshipService) SendRequest(ctx context.Context, requesterID uuid.UUID, targetEmail string) error {
	email := strings.TrimSpace(targetEmail)
	if email == "" {
		return errors.NewValidationError("email is required")
	}

	target, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			s.metrics.FriendRequest(metrics.ResultRejected)
			return errors.ErrProfileNotFound
		}
		return fmt.Errorf("find target profile: %w", err)
	}

	if target.ID == requesterID {
		s.metrics.FriendRequest(metrics.ResultRejected)
		return errors.ErrSelfRequest
	}

	already, err := s.profiles.IsFriend(ctx, target.ID, requesterID)
	if err != nil {
		return fmt.Errorf("check friendship: %w", err)
	}
	if already {
		s.metrics.FriendRequest(metrics.ResultRejected)
		return errors.ErrAlreadyFriends
	}

	if err := s.profiles.AddPending(ctx, target.ID, requesterID); err != nil {
		if isMissingReference(err) {
			s.metrics.FriendRequest(metrics.ResultRejected)
			return errors.ErrProfileNotFound
		}
		return fmt.Errorf("add pending request: %w", err)
	}

	s.cache.Invalidate(ctx, target.ID)
	s.metrics.FriendRequest(metrics.ResultSent)
	return nil
}

// ConfirmRequest turns a pending request into a friendship on both sides.
func (s *relationshipService) ConfirmRequest(ctx context.Context, confirmerID, requesterID uuid.UUID) (*model.Profile, error) {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		pending, err := repos.Profiles.HasPending(ctx, confirmerID, requesterID)
		if err != nil {
			return fmt.Errorf("check pending request: %w", err)
		}
		if !pending {
			return errors.ErrNoPendingRequest
		}

		if err := repos.Profiles.AddFriend(ctx, confirmerID, requesterID); err != nil {
			if isMissingReference(err) {
				return errors.ErrProfileNotFound
			}
			return fmt.Errorf("add friend: %w", err)
		}
		if err := repos.Profiles.AddFriend(ctx, requesterID, confirmerID); err != nil {
			if isMissingReference(err) {
				return errors.ErrProfileNotFound
			}
			return fmt.Errorf("add reverse friend: %w", err)
		}
		if err := repos.Profiles.RemovePending(ctx, confirmerID, requesterID); err != nil {
			return fmt.Errorf("remove pending request: %w", err)
		}
		// a crossed request in the other direction is settled too
		return repos.Profiles.RemovePending(ctx, requesterID, confirmerID)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, confirmerID, requesterID)
	s.metrics.FriendRequest(metrics.ResultConfirmed)

	profile, err := s.profiles.FindByID(ctx, confirmerID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	return profile, nil
}

// RemoveFriend deletes the friendship in both directions.
func (s *relationshipService) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		removed, err := repos.Profiles.RemoveFriend(ctx, userID, friendID)
		if err != nil {
			return fmt.Errorf("remove friend: %w", err)
		}
		if removed == 0 {
			return errors.ErrNotFriends
		}

		reverse, err := repos.Profiles.RemoveFriend(ctx, friendID, userID)
		if err != nil {
			return fmt.Errorf("remove reverse friend: %w", err)
		}
		if reverse == 0 {
			s.metrics.IntegrityViolation()
			s.log.WithFields(logrus.Fields{
				"profile_id": userID,
				"friend_id":  friendID,
			}).Warn("friendship was one-sided")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, userID, friendID)
	return nil
}

func (s *relationshipService) ListFriends(ctx context.Context, userID uuid.UUID) (*FriendLists, error) {
	friends, err := s.profiles.FriendSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	pending, err := s.profiles.PendingSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pending friends: %w", err)
	}
	return &FriendLists{Friends: friends, PendingFriends: pending}, nil
}

// GetFriendProfile returns what userID may see of friendID. Private
// shareables are left out.
func (s *relationshipService) GetFriendProfile(ctx context.Context, userID, friendID uuid.UUID) (*model.FriendProfile, error) {
	ok, err := s.profiles.IsFriend(ctx, userID, friendID)
	if err != nil {
		return nil, fmt.Errorf("check friendship: %w", err)
	}
	if !ok {
		return nil, errors.ErrNotYourFriend
	}

	friend, err := s.profiles.FindByID(ctx, friendID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find friend profile: %w", err)
	}

	visible := make([]model.Shareable, 0, len(friend.Shareables))
	for _, sh := range friend.Shareables {
		if sh.Priority > model.PriorityPrivate {
			visible = append(visible, sh)
		}
	}

	return &model.FriendProfile{
		ID:           friend.ID,
		FirstName:    friend.FirstName,
		LastName:     friend.LastName,
		PictureURL:   friend.PictureURL,
		Email:        friend.Email,
		Contact:      friend.Contact,
		Availability: friend.Availability,
		Shareables:   visible,
	}, nil
}
