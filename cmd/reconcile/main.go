// Command reconcile recomputes the denormalized job and user application
// counters from the applications table. It is intended to be invoked by an
// external cron job when the in-process schedule is disabled.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres/counter"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/app"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/config"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/service/reconcile"
)

const runTimeout = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := reconcile.NewService(logger, counter.New(pool), postgres.NewTxManager(pool))

	start := time.Now()
	result, err := svc.RecomputeCounters(ctx)
	if err != nil {
		logger.Error("counter reconciliation failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("counter reconciliation completed",
		slog.Int64("jobs_corrected", result.JobsCorrected),
		slog.Int64("users_corrected", result.UsersCorrected),
		slog.Duration("took", time.Since(start)),
	)
}
