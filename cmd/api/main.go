package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/craftfolio/portfolio-system/internal/api"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
	"github.com/craftfolio/portfolio-system/internal/core/service"
	"github.com/craftfolio/portfolio-system/internal/export"
	"github.com/craftfolio/portfolio-system/internal/infrastructure/db/memory"
	mongostore "github.com/craftfolio/portfolio-system/internal/infrastructure/db/mongo"
	redisstore "github.com/craftfolio/portfolio-system/internal/infrastructure/db/redis"
	"github.com/craftfolio/portfolio-system/internal/infrastructure/queue"
	"github.com/craftfolio/portfolio-system/internal/pkg/config"
	"github.com/craftfolio/portfolio-system/pkg/logger"

	redisdrv "github.com/redis/go-redis/v9"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// @title        Portfolio System API
// @version      1.0
// @description  Portfolio builder API: accounts, portfolios, sections, templates, and static exports.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "portfolio-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		portfolioRepo ports.PortfolioRepository
		authRepo      ports.AuthRepository
		mongoDB       *mongodrv.Database
		redisClient   *redisdrv.Client
	)

	switch cfg.StoreMode {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()
		mongoDB = db

		pRepo := mongostore.NewPortfolioRepository(db)
		if err := pRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("portfolio index creation failed")
		}
		aRepo := mongostore.NewAuthRepository(db)
		if err := aRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("user index creation failed")
		}
		portfolioRepo = pRepo
		authRepo = aRepo

		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = rdb.Close()
		}()
		redisClient = rdb

	case "memory":
		seeded, err := memory.NewSeededAuthRepository()
		if err != nil {
			log.Fatal().Err(err).Msg("demo account seeding failed")
		}
		authRepo = seeded
		portfolioRepo = memory.NewSeededPortfolioRepository(memory.DemoUser().ID)
		log.Info().
			Str("email", memory.DemoEmail).
			Msg("memory mode: demo account available")

	default:
		log.Fatal().Str("store_mode", cfg.StoreMode).Msg("unknown store mode")
	}

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)
	portfolioService := service.NewPortfolioService(portfolioRepo, log)

	renderer, err := export.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("export renderer init failed")
	}
	exporter := export.NewExporter(portfolioRepo, renderer, cfg.Export.Dir, log)
	dispatcher := queue.NewDispatcher(cfg.Export.Workers, exporter, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		AuthService:      authService,
		PortfolioService: portfolioService,
		ExportQueue:      dispatcher,
		Mongo:            mongoDB,
		Redis:            redisClient,
		JWTSecret:        cfg.JWTSecret,
		Log:              log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("store_mode", cfg.StoreMode).
		Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
