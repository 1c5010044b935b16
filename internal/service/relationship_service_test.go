package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sharecircle/internal/errors"
	"sharecircle/internal/logging"
	"sharecircle/internal/metrics"
	"sharecircle/internal/model"
	"sharecircle/internal/repository"
)

func TestRelationship_RequestConfirmLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	jon := h.signup(t, "Jon", "jon@snow.com")
	dany := h.signup(t, "Dany", "dany@dragon.com")

	require.NoError(t, h.rel.SendRequest(ctx, jon, "DANY@dragon.com"))
	// repeated requests do not duplicate
	require.NoError(t, h.rel.SendRequest(ctx, jon, "dany@dragon.com"))

	danyProfile, err := h.profiles.Get(ctx, dany)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{jon}, danyProfile.PendingFriends)
	assert.Empty(t, danyProfile.Friends)

	confirmed, err := h.rel.ConfirmRequest(ctx, dany, jon)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{jon}, confirmed.Friends)
	assert.Empty(t, confirmed.PendingFriends)

	// the cached copy of dany was invalidated
	danyProfile, err = h.profiles.Get(ctx, dany)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{jon}, danyProfile.Friends)

	jonProfile, err := h.profiles.Get(ctx, jon)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{dany}, jonProfile.Friends)

	err = h.rel.SendRequest(ctx, jon, "dany@dragon.com")
	assert.ErrorIs(t, err, errors.ErrAlreadyFriends)

	lists, err := h.rel.ListFriends(ctx, jon)
	require.NoError(t, err)
	require.Len(t, lists.Friends, 1)
	assert.Equal(t, "Dany", lists.Friends[0].FirstName)
	assert.Empty(t, lists.PendingFriends)

	assert.Equal(t, float64(2), h.counterValue(t, "sharecircle_friend_requests_total", metrics.ResultSent))
	assert.Equal(t, float64(1), h.counterValue(t, "sharecircle_friend_requests_total", metrics.ResultConfirmed))
	assert.Equal(t, float64(1), h.counterValue(t, "sharecircle_friend_requests_total", metrics.ResultRejected))
}

func TestRelationship_SendRequestErrors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	jon := h.signup(t, "Jon", "jon@snow.com")

	tests := []struct {
		name  string
		email string
		want  error
	}{
		{name: "unknown email", email: "nobody@wall.com", want: errors.ErrProfileNotFound},
		{name: "self request", email: "jon@snow.com", want: errors.ErrSelfRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, h.rel.SendRequest(ctx, jon, tt.email), tt.want)
		})
	}

	var verr *errors.ValidationError
	assert.ErrorAs(t, h.rel.SendRequest(ctx, jon, "  "), &verr)
}

func TestRelationship_ConfirmWithoutRequest(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	jon := h.signup(t, "Jon", "jon@snow.com")
	dany := h.signup(t, "Dany", "dany@dragon.com")

	_, err := h.rel.ConfirmRequest(ctx, dany, jon)
	assert.ErrorIs(t, err, errors.ErrNoPendingRequest)

	ok, err := h.repos.Profiles.IsFriend(ctx, dany, jon)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRelationship_ConfirmSettlesCrossedRequests(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	jon := h.signup(t, "Jon", "jon@snow.com")
	dany := h.signup(t, "Dany", "dany@dragon.com")

	require.NoError(t, h.rel.SendRequest(ctx, jon, "dany@dragon.com"))
	require.NoError(t, h.rel.SendRequest(ctx, dany, "jon@snow.com"))

	_, err := h.rel.ConfirmRequest(ctx, dany, jon)
	require.NoError(t, err)

	jonProfile, err := h.profiles.Get(ctx, jon)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{dany}, jonProfile.Friends)
	assert.Empty(t, jonProfile.PendingFriends)
}

func TestRelationship_RemoveFriend(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	jon := h.signup(t, "Jon", "jon@snow.com")
	dany := h.signup(t, "Dany", "dany@dragon.com")
	h.befriend(t, jon, dany, "dany@dragon.com")

	require.NoError(t, h.rel.RemoveFriend(ctx, jon, dany))

	for _, pair := range [][2]uuid.UUID{{jon, dany}, {dany, jon}} {
		ok, err := h.repos.Profiles.IsFriend(ctx, pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, ok)
	}

	assert.ErrorIs(t, h.rel.RemoveFriend(ctx, jon, dany), errors.ErrNotFriends)
	assert.Equal(t, float64(0), h.counterValue(t, "sharecircle_friendship_integrity_violations_total", ""))
}

func TestRelationship_RemoveOneSidedFriend(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	jon := h.signup(t, "Jon", "jon@snow.com")
	dany := h.signup(t, "Dany", "dany@dragon.com")

	require.NoError(t, h.repos.Profiles.AddFriend(ctx, jon, dany))

	require.NoError(t, h.rel.RemoveFriend(ctx, jon, dany))
	assert.Equal(t, float64(1), h.counterValue(t, "sharecircle_friendship_integrity_violations_total", ""))
}

func TestRelationship_GetFriendProfile(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	jon := h.signup(t, "Jon", "jon@snow.com")
	dany := h.signup(t, "Dany", "dany@dragon.com")
	arya := h.signup(t, "Arya", "arya@stark.com")
	h.befriend(t, jon, dany, "dany@dragon.com")

	h.share(t, dany, "dragonglass", model.PriorityHigh, model.ShareableTypeGiving)
	h.share(t, dany, "secret plans", model.PriorityPrivate, model.ShareableTypePlans)
	h.share(t, dany, "ships", model.PriorityLow, model.ShareableTypeRequesting)

	friend, err := h.rel.GetFriendProfile(ctx, jon, dany)
	require.NoError(t, err)
	assert.Equal(t, "Dany", friend.FirstName)
	assert.Equal(t, "dany@dragon.com", friend.Email)
	require.Len(t, friend.Shareables, 2)
	assert.Equal(t, "dragonglass", friend.Shareables[0].Name)
	assert.Equal(t, "ships", friend.Shareables[1].Name)

	_, err = h.rel.GetFriendProfile(ctx, arya, dany)
	assert.ErrorIs(t, err, errors.ErrNotYourFriend)
}

func TestRelationship_Shareables(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	jon := h.signup(t, "Jon", "jon@snow.com")
	dany := h.signup(t, "Dany", "dany@dragon.com")

	sword := h.share(t, jon, "sword", model.PriorityHigh, model.ShareableTypeGiving)
	assert.Equal(t, model.DefaultGroupSize, sword.GroupSize)
	assert.Equal(t, jon, sword.OwnerID)
	assert.JSONEq(t, `[]`, string(sword.Participants))

	profile, err := h.profiles.Get(ctx, jon)
	require.NoError(t, err)
	require.Len(t, profile.Shareables, 1)

	name := "longclaw"
	_, err = h.rel.UpdateShareable(ctx, dany, sword.ID, ShareablePatch{Name: &name})
	assert.ErrorIs(t, err, errors.ErrNotOwner)
	_, err = h.rel.UpdateShareable(ctx, jon, uuid.New(), ShareablePatch{Name: &name})
	assert.ErrorIs(t, err, errors.ErrNotOwner)

	confirmed := true
	updated, err := h.rel.UpdateShareable(ctx, jon, sword.ID, ShareablePatch{Name: &name, Confirmed: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, "longclaw", updated.Name)
	assert.True(t, updated.Confirmed)
	assert.Equal(t, model.PriorityHigh, updated.Priority)

	// the owner's cached profile sees the edit
	profile, err = h.profiles.Get(ctx, jon)
	require.NoError(t, err)
	assert.Equal(t, "longclaw", profile.Shareables[0].Name)

	assert.ErrorIs(t, h.rel.DeleteShareable(ctx, dany, sword.ID), errors.ErrNotOwner)
	require.NoError(t, h.rel.DeleteShareable(ctx, jon, sword.ID))

	list, err := h.rel.ListShareables(ctx, jon)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRelationship_ShareableValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	jon := h.signup(t, "Jon", "jon@snow.com")

	bad := 7
	negative := -1
	_, err := h.rel.AddShareable(ctx, jon, ShareableInput{
		Type:         "borrowing",
		Priority:     &bad,
		Repeats:      &negative,
		Participants: []byte(`{"not":"a list"}`),
	})

	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"name is required",
		"type must be one of giving, requesting, plans",
		"priority must be between 0 and 2",
		"repeats must not be negative",
		"participants must be a list",
	}, verr.Messages)
}

func TestRelationship_RemoveFriendStoreFailure(t *testing.T) {
	profiles := new(MockProfileRepository)
	jon, dany := uuid.New(), uuid.New()
	profiles.On("RemoveFriend", mock.Anything, jon, dany).Return(int64(0), assert.AnError)

	svc := NewRelationshipService(profiles, nil,
		&MockTransactor{repos: repository.Repositories{Profiles: profiles}},
		nil, nil, logging.Discard())

	err := svc.RemoveFriend(context.Background(), jon, dany)
	assert.ErrorIs(t, err, assert.AnError)
	profiles.AssertExpectations(t)
}

func TestRelationship_UpdateShareableClearsNullableFields(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	jon := h.signup(t, "Jon", "jon@snow.com")

	date := time.Date(2026, 12, 21, 18, 0, 0, 0, time.UTC)
	weekly := 3
	feast, err := h.rel.AddShareable(ctx, jon, ShareableInput{
		Name: "feast", Type: model.ShareableTypePlans, Date: &date, Expiration: &date, Repeats: &weekly,
	})
	require.NoError(t, err)

	// absent fields stay untouched
	name := "winter feast"
	updated, err := h.rel.UpdateShareable(ctx, jon, feast.ID, ShareablePatch{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated.Repeats)
	assert.Equal(t, 3, *updated.Repeats)
	require.NotNil(t, updated.Date)
	assert.True(t, date.Equal(*updated.Date))

	updated, err = h.rel.UpdateShareable(ctx, jon, feast.ID, ShareablePatch{
		Repeats: Null[int](),
		Date:    Null[time.Time](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Repeats)
	assert.Nil(t, updated.Date)
	require.NotNil(t, updated.Expiration)
	assert.Equal(t, "winter feast", updated.Name)

	updated, err = h.rel.UpdateShareable(ctx, jon, feast.ID, ShareablePatch{Repeats: Some(1), Expiration: Null[time.Time]()})
	require.NoError(t, err)
	require.NotNil(t, updated.Repeats)
	assert.Equal(t, 1, *updated.Repeats)
	assert.Nil(t, updated.Expiration)

	_, err = h.rel.UpdateShareable(ctx, jon, feast.ID, ShareablePatch{Repeats: Some(-2)})
	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"repeats must not be negative"}, verr.Messages)
}

func TestRelationship_ShareableKeepsZeroGroupSize(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	jon := h.signup(t, "Jon", "jon@snow.com")

	zero := 0
	solo, err := h.rel.AddShareable(ctx, jon, ShareableInput{Name: "solo ride", Type: model.ShareableTypeGiving, GroupSize: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, solo.GroupSize)

	stored, err := h.repos.Shareables.FindOwned(ctx, solo.ID, jon)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.GroupSize)

	// a missing groupSize still defaults
	pair, err := h.rel.AddShareable(ctx, jon, ShareableInput{Name: "duet", Type: model.ShareableTypeGiving})
	require.NoError(t, err)
	stored, err = h.repos.Shareables.FindOwned(ctx, pair.ID, jon)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultGroupSize, stored.GroupSize)

	// and zero survives an update from another size
	updated, err := h.rel.UpdateShareable(ctx, jon, pair.ID, ShareablePatch{GroupSize: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.GroupSize)
}
