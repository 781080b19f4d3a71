package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/restroboost-backend/api/routes"
	"github.com/angelmondragon/restroboost-backend/internal/app"
	"github.com/angelmondragon/restroboost-backend/internal/records"
	"github.com/angelmondragon/restroboost-backend/pkg/config"
	"github.com/angelmondragon/restroboost-backend/pkg/ids"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
	"github.com/angelmondragon/restroboost-backend/pkg/metrics"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Console:     cfg.App.LogFormat == "console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := app.OpenBackend(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to open storage backend", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := records.Deps{
		Backend: backend,
		IDs:     ids.NewGenerator(nil),
		Logger:  logg,
		Metrics: metrics.NewStoreMetrics(reg),
	}
	application, err := app.New(cfg, deps)
	if err != nil {
		logg.Error(ctx, "failed to wire services", err)
		os.Exit(1)
	}

	if cfg.Seed.OnStart {
		if _, err := application.Seeder.Seed(ctx); err != nil {
			logg.Error(ctx, "failed to seed demo data", err)
			os.Exit(1)
		}
	}
	if cfg.Auth.DemoMode {
		logg.Warn(ctx, "demo mode enabled: any password is accepted for a known email")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"storage": cfg.Storage.Kind(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, backend, reg, metrics.NewHTTPMetrics(reg), routes.Services{
			Auth:      application.Auth,
			Inventory: application.Inventory,
			Menu:      application.Menu,
			Feedback:  application.Feedback,
			Orders:    application.Orders,
			Analytics: application.Analytics,
			Demo:      application.Seeder,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := multierr.Combine(server.Shutdown(shutdownCtx), backend.Close()); err != nil {
		logg.Error(ctx, "error during shutdown", err)
		exitCode = 1
	}
	logg.Info(ctx, "api server stopped")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
