// Command cleanup purges DONE tasks whose completion is older than
// tasks.completed_retention_days. It runs once and exits, for cron.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/leadflow-backend/internal/app"
	"github.com/heartmarshall/leadflow-backend/internal/config"
)

const runTimeout = 5 * time.Minute

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("task cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	days := cfg.Tasks.CompletedRetentionDays

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	deleted, err := task.New(pool).DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("delete tasks completed before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("task cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
		slog.Int("retention_days", days),
	)
	return nil
}
