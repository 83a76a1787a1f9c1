package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/brightweb/agency-api/internal/api"
	"github.com/brightweb/agency-api/internal/infrastructure/config"
	mongodb "github.com/brightweb/agency-api/internal/infrastructure/db/mongo"
	redisdb "github.com/brightweb/agency-api/internal/infrastructure/db/redis"
	"github.com/brightweb/agency-api/internal/infrastructure/queue"
	"github.com/brightweb/agency-api/internal/infrastructure/seed"
	"github.com/brightweb/agency-api/internal/notification"
	"github.com/brightweb/agency-api/pkg/logger"
)

const mailWorkers = 4

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokenTTL, err := time.ParseDuration(cfg.JWTTTL)
	if err != nil {
		logg.Fatal().Err(err).Str("jwt_ttl", cfg.JWTTTL).Msg("invalid JWT_TTL")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := requestRepo.EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("failed to create request indexes")
	}

	fixtures := &seed.Fixtures{
		Users:         userRepo,
		Services:      mongodb.NewServiceRepository(db),
		Portfolio:     mongodb.NewPortfolioRepository(db),
		AdminEmail:    cfg.Admin.Email,
		AdminPassword: cfg.Admin.SeedPassword,
		Log:           logg,
	}
	if err := fixtures.Apply(ctx); err != nil {
		logg.Fatal().Err(err).Msg("fixture bootstrap failed")
	}

	sender := notification.NewSMTPSender(notification.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	dispatcher := queue.NewDispatcher(mailWorkers, sender, logg)
	dispatcher.Start(ctx)
	notifier := notification.NewNotifier(dispatcher, cfg.Admin.Email, logg)

	e := api.NewRouter(cfg, tokenTTL, db, rdb, notifier, logg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logg.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("agency API listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Fatal().Err(err).Msg("server error")
	}
}
