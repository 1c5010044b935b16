package auth

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"sharecircle/internal/errors"
)

// Middleware guards protected routes. It verifies the bearer token with the
// token service, rejects revoked tokens and attaches the decoded Identity to
// the echo context and the request context. No store lookup happens here:
// the signed claim is trusted.
func Middleware(tokens *JWTService, store TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  contextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			identity, err := tokens.Verify(token)
			if err != nil {
				return nil, err
			}
			if store != nil && store.IsRevoked(c.Request().Context(), identity) {
				return nil, ErrInvalidSignature
			}
			return identity, nil
		},
		SuccessHandler: func(c echo.Context) {
			identity := c.Get(contextKey).(Identity)
			c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			cause := errors.ErrInvalidToken
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				cause = errors.ErrUnauthorized
			}
			httpErr := errors.MapErrorToHTTP(cause)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
		},
	})
}
