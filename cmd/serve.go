package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"

	"ysocial/internal/app/db"
	"ysocial/internal/app/storage"
	"ysocial/internal/app/user"
	"ysocial/internal/configs"
	"ysocial/internal/handler"
	"ysocial/internal/pkg/auth/jwt"
	"ysocial/internal/pkg/auth/password"
	"ysocial/internal/pkg/logx"
	"ysocial/internal/pkg/metrics"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the HTTP API server (default)",
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	cfg, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Bool("media_storage", cfg.StorageEnabled()).
		Msg("Configuration loaded successfully")

	issuer, err := jwt.NewIssuer(cfg.JWTSecret)
	if err != nil {
		return err
	}

	hasher, err := password.NewHasher(password.DefaultCost)
	if err != nil {
		return err
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	users, err := user.NewService(user.NewPostgresStore(pool), hasher, issuer)
	if err != nil {
		return err
	}

	var storageService storage.StorageService
	if cfg.StorageEnabled() {
		storageService, err = storage.NewStorageService(ctx, storage.ServiceConfig{
			S3BucketName:      cfg.S3BucketName,
			S3Endpoint:        cfg.S3Endpoint,
			S3AccessKeyID:     cfg.S3AccessKeyID,
			S3SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize media storage: %w", err)
		}
	} else {
		logx.Warn("S3 settings are empty, avatar uploads are disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := handler.Router(&handler.AppDeps{
		Config:         cfg,
		Users:          users,
		Tokens:         issuer,
		StorageService: storageService,
		Metrics:        metrics.NewCollector(registry),
	})

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logx.Info(fmt.Sprintf("ysocial server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logx.Info("Server gracefully stopped.")
	return nil
}
