package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/mongodb"
	"go-portfolio-backend/internal/repository/postgres"
	"go-portfolio-backend/internal/repository/unconfigured"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Select storage backend. Fixed for the process lifetime.
	var portfolioRepo domain.PortfolioRepository
	var contactRepo domain.ContactRepository
	var shutdownStore func()

	switch {
	case cfg.UsesPostgres():
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		portfolioRepo = postgres.NewPortfolioRepository(dbPool)
		contactRepo = postgres.NewContactRepository(dbPool)
		shutdownStore = dbPool.Close
		logger.Log.Info("Using Postgres backend")
	case cfg.UsesMongo():
		db, disconnect, err := database.NewMongoConnection(cfg.MongoURL, cfg.MongoDBName)
		if err != nil {
			logger.Log.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		portfolioRepo = mongodb.NewPortfolioRepository(db)
		contactRepo = mongodb.NewContactRepository(db)
		shutdownStore = func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = disconnect(ctx)
		}
		logger.Log.Info("Using MongoDB backend")
	default:
		// Serve anyway; every data operation fails per-request.
		portfolioRepo = unconfigured.NewPortfolioRepository()
		contactRepo = unconfigured.NewContactRepository()
		shutdownStore = func() {}
		logger.Log.Warn("No storage backend configured")
	}
	defer shutdownStore()

	// 4. Setup Redis (optional, rate limiting only)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact notifications disabled")
	}

	// 6. Setup UseCases. The maintenance lock keeps reseed exclusive against
	// user-facing bulk writes.
	validate := validator.New()
	var maint sync.RWMutex
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo, validate, &maint)
	contactUC := usecase.NewContactUsecase(contactRepo, emailService)
	seedUC := usecase.NewSeedUsecase(portfolioRepo, validate, &maint)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		PortfolioUC: portfolioUC,
		ContactUC:   contactUC,
		SeedUC:      seedUC,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
