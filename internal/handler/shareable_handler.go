package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sharecircle/internal/model"
	"sharecircle/internal/service"
)

// ShareableHandler manages the caller's shareables.
type ShareableHandler struct {
	rel service.RelationshipService
}

// NewShareableHandler creates a new shareable handler.
func NewShareableHandler(rel service.RelationshipService) *ShareableHandler {
	return &ShareableHandler{rel: rel}
}

// ShareableRequest is the body for creating or editing a shareable. On edit
// only the fields present are changed; date, expiration and repeats accept
// null to clear them.
type ShareableRequest struct {
	Name         *string                     `json:"name"`
	Type         *model.ShareableType        `json:"type" enums:"giving,requesting,plans"`
	Priority     *int                        `json:"priority" enums:"0,1,2"`
	GroupSize    *int                        `json:"groupSize"`
	Participants json.RawMessage             `json:"participants" swaggertype:"array,string"`
	Date         service.Optional[time.Time] `json:"date" swaggertype:"string" format:"date-time"`
	Expiration   service.Optional[time.Time] `json:"expiration" swaggertype:"string" format:"date-time"`
	Confirmed    *bool                       `json:"confirmed"`
	Archived     *bool                       `json:"archived"`
	Repeats      service.Optional[int]       `json:"repeats" swaggertype:"integer"`
}

func (r ShareableRequest) input() service.ShareableInput {
	in := service.ShareableInput{
		Priority:     r.Priority,
		GroupSize:    r.GroupSize,
		Participants: r.Participants,
		Date:         r.Date.Value,
		Expiration:   r.Expiration.Value,
		Confirmed:    r.Confirmed,
		Archived:     r.Archived,
		Repeats:      r.Repeats.Value,
	}
	if r.Name != nil {
		in.Name = *r.Name
	}
	if r.Type != nil {
		in.Type = *r.Type
	}
	return in
}

func (r ShareableRequest) patch() service.ShareablePatch {
	return service.ShareablePatch{
		Name:         r.Name,
		Type:         r.Type,
		Priority:     r.Priority,
		GroupSize:    r.GroupSize,
		Participants: r.Participants,
		Date:         r.Date,
		Expiration:   r.Expiration,
		Confirmed:    r.Confirmed,
		Archived:     r.Archived,
		Repeats:      r.Repeats,
	}
}

// CreateShareable godoc
// @Summary Post a shareable
// @Tags shareables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ShareableRequest true "Shareable"
// @Success 201 {object} model.Shareable
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/shareables [post]
func (h *ShareableHandler) CreateShareable(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req ShareableRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	shareable, err := h.rel.AddShareable(c.Request().Context(), identity.ProfileID, req.input())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, shareable)
}

// ListShareables godoc
// @Summary List own shareables
// @Tags shareables
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Shareable
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/shareables [get]
func (h *ShareableHandler) ListShareables(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	shareables, err := h.rel.ListShareables(c.Request().Context(), identity.ProfileID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, shareables)
}

// UpdateShareable godoc
// @Summary Edit an owned shareable
// @Tags shareables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shareable ID"
// @Param request body ShareableRequest true "Fields to change"
// @Success 200 {object} model.Shareable
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /profile/shareables/{id} [put]
func (h *ShareableHandler) UpdateShareable(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req ShareableRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	shareable, err := h.rel.UpdateShareable(c.Request().Context(), identity.ProfileID, id, req.patch())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, shareable)
}

// DeleteShareable godoc
// @Summary Delete an owned shareable
// @Tags shareables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shareable ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /profile/shareables/{id} [delete]
func (h *ShareableHandler) DeleteShareable(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.rel.DeleteShareable(c.Request().Context(), identity.ProfileID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "shareable deleted"})
}
