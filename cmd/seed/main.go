package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/angelmondragon/restroboost-backend/internal/app"
	"github.com/angelmondragon/restroboost-backend/internal/demo"
	"github.com/angelmondragon/restroboost-backend/internal/records"
	"github.com/angelmondragon/restroboost-backend/pkg/config"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
)

type demoData interface {
	Seed(ctx context.Context) (demo.Result, error)
	Reset(ctx context.Context) error
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "seed", "demo data command: seed|reset")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(context.Background(), logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Console:     cfg.App.LogFormat == "console",
	})
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"cmd":     *cmd,
		"storage": cfg.Storage.Kind(),
	})

	if cfg.Storage.Kind() == config.StorageBackendMemory {
		fmt.Fprintln(os.Stderr, "the memory backend does not outlive this process; set RESTROBOOST_STORAGE_BACKEND to redis or sql")
		os.Exit(1)
	}

	backend, err := app.OpenBackend(ctx, cfg, logg)
	requireResource(ctx, logg, "storage backend", err)

	if err := runAndClose(ctx, backend, logg, *cmd, os.Stdout); err != nil {
		logg.Error(ctx, "seed command failed", err)
		os.Exit(1)
	}
}

// runAndClose runs cmd against backend and always releases the backend,
// combining a close failure with the command's error.
func runAndClose(ctx context.Context, backend *app.Backend, logg *logger.Logger, cmd string, out io.Writer) error {
	err := seedWithBackend(ctx, backend, logg, cmd, out)
	if closeErr := backend.Close(); closeErr != nil {
		err = multierr.Append(err, fmt.Errorf("close storage backend: %w", closeErr))
	}
	return err
}

func seedWithBackend(ctx context.Context, backend *app.Backend, logg *logger.Logger, cmd string, out io.Writer) error {
	deps := records.Deps{Backend: backend, Logger: logg}
	repos, err := app.NewRepositories(deps)
	if err != nil {
		return fmt.Errorf("repositories: %w", err)
	}
	seeder, err := app.NewSeeder(repos, deps)
	if err != nil {
		return fmt.Errorf("seeder: %w", err)
	}
	return run(ctx, seeder, cmd, out)
}

// run executes one demo data command and reports the outcome on out.
func run(ctx context.Context, data demoData, cmd string, out io.Writer) error {
	switch cmd {
	case "seed":
		res, err := data.Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Fprintf(out, "seeded inventory=%d menu=%d feedback=%d orders=%d\n", res.Inventory, res.Menu, res.Feedback, res.Orders)
		return nil

	case "reset":
		if err := data.Reset(ctx); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Fprintln(out, "cleared business collections")
		return nil

	default:
		return fmt.Errorf("unknown -cmd value %q", cmd)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
