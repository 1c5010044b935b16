package router

import (
	stderrors "errors"
	"net/http"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"sharecircle/internal/errors"
)

// NewHTTPErrorHandler renders every error as {error, code}. Server-side
// failures are logged and reported with their cause, which never reaches
// the client.
func NewHTTPErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body, cause := render(err)

		if status >= http.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":     c.Request().Method,
				"uri":        c.Request().RequestURI,
			}).WithError(cause).Error("request failed")
			if hub := sentryecho.GetHubFromContext(c); hub != nil {
				hub.CaptureException(cause)
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.WithError(err).Warn("write error response")
		}
	}
}

func render(err error) (int, errors.ErrorResponse, error) {
	var he *echo.HTTPError
	if !stderrors.As(err, &he) {
		mapped := errors.MapErrorToHTTP(err)
		return mapped.StatusCode, mapped.ToErrorResponse(), err
	}

	cause := err
	if he.Internal != nil {
		cause = he.Internal
	}

	if he.Code >= http.StatusInternalServerError {
		return he.Code, errors.ErrorResponse{
			Error: "internal server error",
			Code:  errors.CodeForStatus(he.Code),
		}, cause
	}

	switch msg := he.Message.(type) {
	case errors.ErrorResponse:
		return he.Code, msg, cause
	case string:
		return he.Code, errors.ErrorResponse{Error: msg, Code: errors.CodeForStatus(he.Code)}, cause
	}
	return he.Code, errors.ErrorResponse{
		Error: http.StatusText(he.Code),
		Code:  errors.CodeForStatus(he.Code),
	}, cause
}
