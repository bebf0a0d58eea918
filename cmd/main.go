package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-top-workplaces/internal/config"
	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
	"github.com/KasumiMercury/primind-top-workplaces/internal/handler"
	"github.com/KasumiMercury/primind-top-workplaces/internal/health"
	"github.com/KasumiMercury/primind-top-workplaces/internal/infra/rankingrecorder"
	"github.com/KasumiMercury/primind-top-workplaces/internal/infra/repository"
	"github.com/KasumiMercury/primind-top-workplaces/internal/infra/shiftsapi"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/logging"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/metrics"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/middleware"
	"github.com/KasumiMercury/primind-top-workplaces/internal/service/topworkplaces"
)

// Version is set via ldflags at build time
var Version = "dev"

const serviceModule = logging.Module("top-workplaces")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg.LogLevel)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	collectionMetrics, err := metrics.NewCollectionMetrics()
	if err != nil {
		slog.Error("failed to initialize collection metrics", slog.String("error", err.Error()))
		return 1
	}

	rankingMetrics, err := metrics.NewRankingMetrics()
	if err != nil {
		slog.Error("failed to initialize ranking metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local, BigQuery for gcloud
	resultRecorder, err := rankingrecorder.NewRecorder(ctx, rankingrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize ranking result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close ranking result recorder", slog.String("error", err.Error()))
		}
	}()

	apiClient := shiftsapi.NewClient(cfg.API.Timeout)
	source := shiftsapi.NewRepository(apiClient, cfg.API.BaseURL, collectionMetrics)

	var redisClient *redis.Client
	var history domain.RankingRepository
	if cfg.Redis.Enabled() {
		redisClient, err = newRedisClient(ctx, cfg.Redis)
		if err != nil {
			slog.Error("failed to connect redis",
				slog.String("event", "redis.connect.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()

		slog.Info("redis connected", slog.String("addr", cfg.Redis.Addr))
		history = repository.NewRankingRepository(redisClient, cfg.Ranking.HistoryTTL)
	} else {
		slog.Warn("REDIS_ADDR not set, ranking history disabled")
	}

	svc := topworkplaces.NewService(source, history, resultRecorder, rankingMetrics)

	switch cfg.RunMode {
	case config.RunModeServer:
		return runServer(ctx, cfg, svc, apiClient, redisClient)
	default:
		return runReport(ctx, svc, cfg.Ranking.Limit, os.Stdout)
	}
}

func runServer(
	ctx context.Context,
	cfg *config.Config,
	svc *topworkplaces.Service,
	apiClient *shiftsapi.Client,
	redisClient *redis.Client,
) int {
	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      serviceModule,
		TracerName:  "github.com/KasumiMercury/primind-top-workplaces/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	deps := []health.Dependency{upstreamDependency(apiClient, cfg.API.BaseURL)}
	if redisClient != nil {
		deps = append(deps, health.RedisDependency(redisClient))
	}
	healthChecker := health.NewChecker(Version, deps...)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	handler.NewRankingHandler(svc, cfg.Ranking).Register(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("api_base_url", cfg.API.BaseURL),
			slog.Int("default_limit", cfg.Ranking.Limit),
			slog.Int("max_limit", cfg.Ranking.MaxLimit),
		)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

func newRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(client); err != nil {
		_ = client.Close()
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(client); err != nil {
		_ = client.Close()
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// upstreamDependency checks that the first workplaces page is reachable.
func upstreamDependency(fetcher shiftsapi.PageFetcher, baseURL string) health.Dependency {
	target := shiftsapi.ResourceURL(baseURL, shiftsapi.ResourceWorkplaces)
	return health.Dependency{
		Name: "upstream",
		Probe: func(ctx context.Context) error {
			_, err := fetcher.FetchPage(ctx, target)
			return err
		},
	}
}
