package router

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	sentryecho "github.com/getsentry/sentry-go/echo"

	"sharecircle/internal/auth"
	"sharecircle/internal/handler"
	"sharecircle/internal/logging"
	"sharecircle/internal/metrics"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Auth       *handler.AuthHandler
	Profile    *handler.ProfileHandler
	Friends    *handler.FriendHandler
	Shareables *handler.ShareableHandler
	Feed       *handler.FeedHandler
	Plans      *handler.PlanHandler
	Health     *handler.HealthHandler
}

// Options carries the cross-cutting pieces the router wires in.
type Options struct {
	Log     *logrus.Logger
	Metrics *metrics.Metrics
	Tokens  *auth.JWTService
	Revoked auth.TokenStoreInterface
	// Sentry enables the sentry request middleware; sentry.Init must have
	// been called.
	Sentry bool
}

// Register wires routes and middleware.
func Register(e *echo.Echo, opts Options, h Handlers) {
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)
	e.Validator = NewValidator()

	e.Use(middleware.RequestID())
	if opts.Sentry {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(middleware.Recover())
	e.Use(logging.RequestLogger(opts.Log))
	e.Use(opts.Metrics.Middleware())
	e.Use(middleware.BodyLimit("1M"))

	e.GET("/healthz", h.Health.Healthz)
	e.GET("/metrics", opts.Metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/signin", h.Auth.Signin)

	// Secured routes (require a bearer token)
	secured := api.Group("", auth.Middleware(opts.Tokens, opts.Revoked))

	secured.GET("/auth/verify", h.Auth.Verify)
	secured.POST("/auth/signout", h.Auth.Signout)

	secured.GET("/profile", h.Profile.GetProfile)
	secured.PUT("/profile", h.Profile.UpdateProfile)
	secured.DELETE("/profile", h.Profile.DeleteProfile)

	secured.GET("/profile/friends", h.Friends.ListFriends)
	secured.PUT("/profile/friends", h.Friends.SendRequest)
	secured.PUT("/profile/friends/confirm/:id", h.Friends.ConfirmRequest)
	secured.GET("/profile/friends/:id", h.Friends.GetFriend)
	secured.DELETE("/profile/friends/:id", h.Friends.RemoveFriend)

	secured.POST("/profile/shareables", h.Shareables.CreateShareable)
	secured.GET("/profile/shareables", h.Shareables.ListShareables)
	secured.PUT("/profile/shareables/:id", h.Shareables.UpdateShareable)
	secured.DELETE("/profile/shareables/:id", h.Shareables.DeleteShareable)

	secured.GET("/profile/feed", h.Feed.GetFeed)

	secured.POST("/plans", h.Plans.CreatePlan)
	secured.GET("/plans/:id", h.Plans.GetPlan)
}
