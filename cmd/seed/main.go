package main

import (
	"context"
	"flag"
	"time"

	"sharecircle/internal/auth"
	"sharecircle/internal/cache"
	"sharecircle/internal/config"
	"sharecircle/internal/db"
	"sharecircle/internal/logging"
	"sharecircle/internal/metrics"
	"sharecircle/internal/repository"
	"sharecircle/internal/seed"
	"sharecircle/internal/service"
)

func main() {
	numProfiles := flag.Int("profiles", 20, "Number of profiles to create")
	friendsPer := flag.Int("friends", 3, "Friends linked to each profile")
	shareablesPer := flag.Int("shareables", 5, "Shareables posted by each profile")
	clean := flag.Bool("clean", false, "Drop all tables before seeding")
	randSeed := flag.Int64("seed", 0, "Fixed random seed (0 = random)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info").WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.LogLevel)

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.WithError(err).Fatal("database init")
	}
	if *clean {
		log.Warn("dropping all tables before seeding")
		if err := db.Reset(gormDB); err != nil {
			log.WithError(err).Fatal("reset database")
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.WithError(err).Fatal("migrate database")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	repos := repository.New(gormDB)
	tx := repository.NewTransactor(gormDB)
	tokenStore := auth.NewTokenStore(cacheClient, cfg.TokenTTL)
	profileCache := service.NewProfileCache(cacheClient)

	authService := service.NewAuthService(repos.Accounts, repos.Profiles, tx, auth.NewJWTService(cfg.AppSecret, cfg.TokenTTL), tokenStore)
	relationshipService := service.NewRelationshipService(repos.Profiles, repos.Shareables, tx, profileCache, metrics.New(), log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	_, err = seed.NewSeeder(authService, relationshipService, repos.Profiles, log).Run(ctx, seed.Options{
		Profiles:      *numProfiles,
		FriendsPer:    *friendsPer,
		ShareablesPer: *shareablesPer,
		Seed:          *randSeed,
	})
	if err != nil {
		log.WithError(err).Fatal("seed failed")
	}
	log.Infof("all seeded accounts use the password %q", seed.DefaultPassword)
}
