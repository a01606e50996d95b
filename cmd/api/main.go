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

	"tx-composer/config"
	"tx-composer/internal/adapter/chain"
	httpHandler "tx-composer/internal/adapter/http/handler"
	"tx-composer/internal/adapter/monitor"
	"tx-composer/internal/adapter/storage/memory"
	pgStorage "tx-composer/internal/adapter/storage/postgres"
	redisStorage "tx-composer/internal/adapter/storage/redis"
	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/ports"
	"tx-composer/internal/service"
	"tx-composer/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load(os.Getenv("TXC_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	chainInfo := domain.Chain{
		ChainID:        cfg.Chain.ID,
		Name:           cfg.Chain.Name,
		AddressPrefix:  cfg.Chain.AddressPrefix,
		AssetSymbol:    cfg.Chain.AssetSymbol,
		AssetPrecision: cfg.Chain.AssetPrecision,
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("chain", chainInfo.Name).
		Msg("Starting tx-composer")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Directory
	walletRepo := pgStorage.NewWalletRepo(pool)
	accountRepo := pgStorage.NewAccountRepo(pool)
	operatorRepo := pgStorage.NewOperatorRepo(pool)

	sessions := memory.NewSessionStore(cfg.Session.TTL, cfg.Session.CleanupInterval, logger.Component(log, "sessions"))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := monitor.New(registry, func() float64 { return float64(sessions.Len()) })

	// Chain access: sidecar, guarded by a circuit breaker, constants cached in redis
	chainLog := logger.Component(log, "chain")
	encoder := chain.NewEncoderClient(cfg.Chain.EncoderURL, cfg.Chain.RequestTimeout)
	sidecar := chain.NewSidecarClient(cfg.Chain.SidecarURL, cfg.Chain.RequestTimeout, encoder, chainLog).
		WithEraPeriod(cfg.Chain.EraPeriod)
	chainQuery := chain.NewCachedQuery(
		chain.NewBreakerQuery(chain.NewMeteredQuery(sidecar, metrics), chainLog),
		redisStorage.NewConstantsCache(rdb),
		chainInfo.ChainID,
		cfg.Chain.ConstantsTTL,
		chainLog,
	)

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(operatorRepo, hashSvc, tokenSvc, logger.Component(log, "auth"))
	sessionSvc := service.NewSigningSessionService(
		walletRepo,
		accountRepo,
		sessions,
		chainQuery,
		chainInfo,
		logger.Component(log, "signing"),
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		SessionSvc:     sessionSvc,
		TokenSvc:       tokenSvc,
		Chain:          chainInfo,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
			sidecar,
		},
		Metrics:        metrics,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
