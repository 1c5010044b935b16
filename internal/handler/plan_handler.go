package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sharecircle/internal/service"
)

// PlanHandler handles plan endpoints.
type PlanHandler struct {
	plans service.PlanService
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(plans service.PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// PlanRequest is the body for creating a plan.
type PlanRequest struct {
	Name         string          `json:"name" validate:"required"`
	Priorities   []int           `json:"priorities"`
	GroupSize    *int            `json:"groupSize"`
	Participants json.RawMessage `json:"participants" swaggertype:"array,string"`
	Date         *time.Time      `json:"date"`
	Expiration   *time.Time      `json:"expiration"`
	Confirmed    bool            `json:"confirmed"`
	Archived     bool            `json:"archived"`
	Repeats      *int            `json:"repeats"`
}

// CreatePlan godoc
// @Summary Create a plan
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlanRequest true "Plan"
// @Success 201 {object} model.Plan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req PlanRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	plan, err := h.plans.Create(c.Request().Context(), identity.ProfileID, service.PlanInput{
		Name:         req.Name,
		Priorities:   req.Priorities,
		GroupSize:    req.GroupSize,
		Participants: req.Participants,
		Date:         req.Date,
		Expiration:   req.Expiration,
		Confirmed:    req.Confirmed,
		Archived:     req.Archived,
		Repeats:      req.Repeats,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// GetPlan godoc
// @Summary Get a plan owned by the caller or one of their friends
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} model.Plan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	plan, err := h.plans.Get(c.Request().Context(), identity.ProfileID, id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plan)
}
