package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sharecircle/internal/auth"
	"sharecircle/internal/errors"
)

// MessageResponse is returned by endpoints that have nothing else to say.
type MessageResponse struct {
	Message string `json:"message"`
}

// fail maps err onto the error taxonomy and keeps the cause for logging.
func fail(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// bind decodes and validates the request body into dst.
func bind(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		}).SetInternal(err)
	}
	if err := c.Validate(dst); err != nil {
		return fail(err)
	}
	return nil
}

// pathID parses the uuid path parameter name.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fail(errors.ErrInvalidID)
	}
	return id, nil
}

// caller returns the authenticated identity attached by the auth middleware.
func caller(c echo.Context) (auth.Identity, error) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return auth.Identity{}, fail(errors.ErrUnauthorized)
	}
	return identity, nil
}
