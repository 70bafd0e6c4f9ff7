package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crediya/loan-service/internal/application/usecase"
	"github.com/crediya/loan-service/internal/infrastructure/config"
	"github.com/crediya/loan-service/internal/infrastructure/kafka"
	pgRepo "github.com/crediya/loan-service/internal/infrastructure/postgres"
	"github.com/crediya/loan-service/internal/infrastructure/userapi"
	"github.com/crediya/loan-service/internal/presentation/rest"
	"github.com/crediya/loan-service/pkg/auth"
	pkgkafka "github.com/crediya/loan-service/pkg/kafka"
	"github.com/crediya/loan-service/pkg/observability"
	pkgpostgres "github.com/crediya/loan-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Service: cfg.ServiceName,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting loan-service", "http_port", cfg.HTTPPort)

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(cfg.DB.DSN(), "file://internal/infrastructure/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	appRepo := pgRepo.NewApplicationRepo(pool)
	loanTypeRepo := pgRepo.NewLoanTypeRepo(pool)
	statesRepo := pgRepo.NewStatesRepo(pool)
	userGateway := userapi.NewClient(cfg.UserAPI.BaseURL, cfg.UserAPI.ServiceToken)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	// Wire use cases.
	verifyUserUC := usecase.NewVerifyUserUseCase(userGateway)
	generateRequestUC := usecase.NewGenerateRequestUseCase(
		appRepo, statesRepo, loanTypeRepo, verifyUserUC, publisher, logger)
	pendingUC := usecase.NewGetPendingApplicationsUseCase(appRepo, userGateway, logger)

	// JWT service (public key preferred, HMAC secret as fallback).
	jwtCfg := auth.JWTConfig{Issuer: cfg.Auth.Issuer}
	if cfg.Auth.PublicKeyPath != "" {
		keyData, loadErr := auth.LoadKeyFromFile(cfg.Auth.PublicKeyPath)
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	} else {
		jwtCfg.Secret = cfg.Auth.Secret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// HTTP server.
	mux := http.NewServeMux()
	rest.NewHealthHandler(logger, func(ctx context.Context) error {
		return pkgpostgres.HealthCheck(ctx, pool)
	}).RegisterRoutes(mux)
	rest.NewApplicationHandler(generateRequestUC, pendingUC, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", observability.Handler())

	metrics := observability.NewHTTPMetrics(cfg.ServiceName)
	authMiddleware := auth.Middleware(jwtSvc, []string{"/healthz", "/readyz", "/metrics"})
	handler := metrics.Middleware(authMiddleware(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("loan-service stopped")
}
