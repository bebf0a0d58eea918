package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/logging"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/middleware"
	"github.com/KasumiMercury/primind-top-workplaces/loadtest/internal/stub"
)

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(logging.NewHandler(os.Stdout, logging.HandlerConfig{
		Level:         slog.LevelInfo,
		ServiceInfo:   logging.ServiceInfo{Name: "shifts-api-stub"},
		Environment:   logging.EnvDev,
		DefaultModule: logging.Module("stub"),
	})))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	pageSize := envInt("STUB_PAGE_SIZE", 10)

	storage := stub.NewDatasetStorage()

	// Optional dataset generated at boot under the default run id.
	if gen := (stub.GenerateRequest{
		Workplaces:      envInt("STUB_WORKPLACES", 0),
		Workers:         envInt("STUB_WORKERS", 0),
		Shifts:          envInt("STUB_SHIFTS", 0),
		InactiveEvery:   envInt("STUB_INACTIVE_EVERY", 0),
		CancelEvery:     envInt("STUB_CANCEL_EVERY", 0),
		UnassignedEvery: envInt("STUB_UNASSIGNED_EVERY", 0),
	}); gen.Workplaces > 0 || gen.Workers > 0 {
		storage.Append("default", stub.Generate("default", gen))
		slog.Info("generated boot dataset",
			slog.Int("workplaces", gen.Workplaces),
			slog.Int("workers", gen.Workers),
			slog.Int("shifts", gen.Shifts),
		)
	}

	r := gin.New()
	r.Use(middleware.PanicRecoveryGin())
	stub.NewHandler(storage, pageSize).Register(r)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting stub server",
			slog.String("port", port),
			slog.Int("page_size", pageSize),
		)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown stub server", slog.String("error", err.Error()))
			return 1
		}
		return 0
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("stub server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return fallback
}
