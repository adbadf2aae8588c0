package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/household-store/admin-api/internal/api"
	"github.com/household-store/admin-api/internal/core/service"
	"github.com/household-store/admin-api/internal/infrastructure/bootstrap"
	"github.com/household-store/admin-api/internal/infrastructure/config"
	mongodb "github.com/household-store/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/household-store/admin-api/internal/infrastructure/db/redis"
	"github.com/household-store/admin-api/pkg/logger"
)

// @title           Household Store Admin API
// @version         1.0
// @description     Authentication and user management API for the household store back office.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	loadLocalEnv()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		zl.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			zl.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		zl.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		zl.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			zl.Warn().Err(err).Msg("redis close")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := bootstrap.SeedDefaultAccounts(ctx, userRepo, service.NewBcryptHasher(), cfg.Bootstrap, zl); err != nil {
		zl.Fatal().Err(err).Msg("default account seeding failed")
	}

	e := api.NewRouter(db, rdb, cfg, zl)

	go func() {
		zl.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zl.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error().Err(err).Msg("graceful shutdown error")
	}
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
