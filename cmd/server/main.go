package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"

	"sharecircle/docs" // swagger docs

	"sharecircle/internal/auth"
	"sharecircle/internal/cache"
	"sharecircle/internal/config"
	"sharecircle/internal/db"
	"sharecircle/internal/handler"
	"sharecircle/internal/logging"
	"sharecircle/internal/metrics"
	"sharecircle/internal/repository"
	"sharecircle/internal/router"
	"sharecircle/internal/service"
)

// @title ShareCircle API
// @version 1.0
// @description Social sharing API: profiles, friend requests, shareables and a friends feed.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").WithError(err).Fatal("load config")
	}

	log := logging.New(cfg.LogLevel)

	sentryEnabled := false
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Env,
		}); err != nil {
			log.WithError(err).Error("sentry init failed")
		} else {
			sentryEnabled = true
			defer sentry.Flush(2 * time.Second)
		}
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.WithError(err).Fatal("database init")
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.WithError(err).Fatal("reset database")
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.WithError(err).Fatal("migrate database")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.WithError(err).Warn("redis unreachable, running without cache and token revocation")
	}

	m := metrics.New()

	// Initialize repositories
	repos := repository.New(gormDB)
	tx := repository.NewTransactor(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.AppSecret, cfg.TokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient, cfg.TokenTTL)

	// Initialize services
	profileCache := service.NewProfileCache(cacheClient)
	authService := service.NewAuthService(repos.Accounts, repos.Profiles, tx, jwtService, tokenStore)
	profileService := service.NewProfileService(repos.Profiles, repos.Accounts, tx, profileCache, tokenStore, log)
	relationshipService := service.NewRelationshipService(repos.Profiles, repos.Shareables, tx, profileCache, m, log)
	feedService := service.NewFeedService(repos.Profiles, repos.Shareables, m)
	planService := service.NewPlanService(repos.Plans, repos.Profiles)

	e := echo.New()
	router.Register(e, router.Options{
		Log:     log,
		Metrics: m,
		Tokens:  jwtService,
		Revoked: tokenStore,
		Sentry:  sentryEnabled,
	}, router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Profile:    handler.NewProfileHandler(profileService),
		Friends:    handler.NewFriendHandler(relationshipService),
		Shareables: handler.NewShareableHandler(relationshipService),
		Feed:       handler.NewFeedHandler(feedService),
		Plans:      handler.NewPlanHandler(planService),
		Health:     handler.NewHealthHandler(gormDB, cacheClient),
	})

	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include a scheme
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
	}
	log.Infof("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	go func() {
		addr := ":" + cfg.ServerPort
		log.WithField("addr", addr).Info("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown")
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
