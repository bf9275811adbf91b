package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/catalog-api/internal/audit"
	"github.com/BruksfildServices01/catalog-api/internal/auth"
	"github.com/BruksfildServices01/catalog-api/internal/config"
	dbpkg "github.com/BruksfildServices01/catalog-api/internal/db"
	infraRepo "github.com/BruksfildServices01/catalog-api/internal/infra/repository"
	"github.com/BruksfildServices01/catalog-api/internal/logger"
	"github.com/BruksfildServices01/catalog-api/internal/pagination"
	"github.com/BruksfildServices01/catalog-api/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// run returns only after its deferred cleanup has happened.
	if err := run(cfg, sigChan); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

func run(cfg *config.Config, stop <-chan os.Signal) error {
	log := logger.Get()

	if cfg.LogLevel != "debug" && cfg.LogLevel != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	repo := infraRepo.NewGormRepository(db)

	var throttle auth.Throttle = auth.NoopThrottle{}
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := auth.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		cancel()
		if err != nil {
			return fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		defer rdb.Close()
		throttle = auth.NewRedisThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttle enabled")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(repo), cfg.AuditQueueSize)

	r := routes.NewRouter(routes.Deps{
		Products:  repo,
		Users:     repo,
		Clients:   repo,
		AuditLogs: repo,

		Tokens:      auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		Credentials: auth.NewBcryptValidator(repo),
		Throttle:    throttle,
		Audit:       auditDispatcher,
		Pager:       pagination.New(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit),

		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Health:             sqlDB,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-stop:
		log.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		runErr = fmt.Errorf("serve: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := auditDispatcher.Close(ctx); err != nil {
		log.Error().Err(err).Msg("audit queue not drained")
	}

	log.Info().Msg("server stopped")
	return runErr
}
