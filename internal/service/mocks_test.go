package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sharecircle/internal/auth"
	"sharecircle/internal/model"
	"sharecircle/internal/repository"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileRepository) AddPending(ctx context.Context, profileID, requesterID uuid.UUID) error {
	args := m.Called(ctx, profileID, requesterID)
	return args.Error(0)
}

func (m *MockProfileRepository) HasPending(ctx context.Context, profileID, requesterID uuid.UUID) (bool, error) {
	args := m.Called(ctx, profileID, requesterID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) RemovePending(ctx context.Context, profileID, requesterID uuid.UUID) error {
	args := m.Called(ctx, profileID, requesterID)
	return args.Error(0)
}

func (m *MockProfileRepository) AddFriend(ctx context.Context, profileID, friendID uuid.UUID) error {
	args := m.Called(ctx, profileID, friendID)
	return args.Error(0)
}

func (m *MockProfileRepository) IsFriend(ctx context.Context, profileID, friendID uuid.UUID) (bool, error) {
	args := m.Called(ctx, profileID, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) RemoveFriend(ctx context.Context, profileID, friendID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID, friendID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) FriendIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockProfileRepository) PendingIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockProfileRepository) FriendSummaries(ctx context.Context, profileID uuid.UUID) ([]model.FriendSummary, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]model.FriendSummary), args.Error(1)
}

func (m *MockProfileRepository) PendingSummaries(ctx context.Context, profileID uuid.UUID) ([]model.FriendSummary, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]model.FriendSummary), args.Error(1)
}

func (m *MockProfileRepository) RelatedIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockProfileRepository) Unlink(ctx context.Context, profileID uuid.UUID) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

// MockTransactor runs the callback directly against the mocks it holds.
type MockTransactor struct {
	repos repository.Repositories
	calls int
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	m.calls++
	return fn(ctx, m.repos)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, identity auth.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockTokenStore) RevokeProfile(ctx context.Context, profileID uuid.UUID) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, identity auth.Identity) bool {
	args := m.Called(ctx, identity)
	return args.Bool(0)
}
