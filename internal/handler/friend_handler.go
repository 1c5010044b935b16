package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sharecircle/internal/service"
)

// FriendHandler drives friend requests and friend views.
type FriendHandler struct {
	rel service.RelationshipService
}

// NewFriendHandler creates a new friend handler.
func NewFriendHandler(rel service.RelationshipService) *FriendHandler {
	return &FriendHandler{rel: rel}
}

// FriendRequest names the profile to befriend.
type FriendRequest struct {
	Email string `json:"email" validate:"required"`
}

// SendRequest godoc
// @Summary Send a friend request by email
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FriendRequest true "Target email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/friends [put]
func (h *FriendHandler) SendRequest(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req FriendRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.rel.SendRequest(c.Request().Context(), identity.ProfileID, req.Email); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "friend request sent"})
}

// ConfirmRequest godoc
// @Summary Confirm a pending friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path string true "Requester profile ID"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/friends/confirm/{id} [put]
func (h *FriendHandler) ConfirmRequest(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	requesterID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	profile, err := h.rel.ConfirmRequest(c.Request().Context(), identity.ProfileID, requesterID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// ListFriends godoc
// @Summary List friends and pending requests
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.FriendLists
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/friends [get]
func (h *FriendHandler) ListFriends(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	lists, err := h.rel.ListFriends(c.Request().Context(), identity.ProfileID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, lists)
}

// GetFriend godoc
// @Summary View a friend's profile
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path string true "Friend profile ID"
// @Success 200 {object} model.FriendProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /profile/friends/{id} [get]
func (h *FriendHandler) GetFriend(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	friendID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	friend, err := h.rel.GetFriendProfile(c.Request().Context(), identity.ProfileID, friendID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, friend)
}

// RemoveFriend godoc
// @Summary Remove a friendship
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path string true "Friend profile ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /profile/friends/{id} [delete]
func (h *FriendHandler) RemoveFriend(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	friendID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.rel.RemoveFriend(c.Request().Context(), identity.ProfileID, friendID); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "friend removed"})
}
