package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sharecircle/internal/service"
)

// FeedHandler serves the aggregated friends feed.
type FeedHandler struct {
	feed service.FeedService
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(feed service.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// GetFeed godoc
// @Summary Friends' high-priority giving and requesting shareables
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.FeedItem
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/feed [get]
func (h *FeedHandler) GetFeed(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	feed, err := h.feed.GetFeed(c.Request().Context(), identity.ProfileID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, feed)
}
