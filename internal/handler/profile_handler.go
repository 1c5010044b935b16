package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"sharecircle/internal/service"
)

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profiles service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// UpdateProfileRequest lists the editable fields. Empty fields are ignored.
type UpdateProfileRequest struct {
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	PictureURL   string          `json:"pictureUrl"`
	Email        string          `json:"email"`
	Contact      json.RawMessage `json:"contact" swaggertype:"array,string"`
	Availability json.RawMessage `json:"availability" swaggertype:"object"`
}

// GetProfile godoc
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	profile, err := h.profiles.Get(c.Request().Context(), identity.ProfileID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, err := h.profiles.Update(c.Request().Context(), identity.ProfileID, service.ProfilePatch{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PictureURL:   req.PictureURL,
		Email:        req.Email,
		Contact:      req.Contact,
		Availability: req.Availability,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteProfile godoc
// @Summary Delete own profile, its shareables and friendships
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [delete]
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.profiles.Delete(c.Request().Context(), identity); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "profile deleted"})
}
