// Command migrate applies or rolls back the embedded goose migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// Requires DATABASE_DSN (or the database section of the config file).
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/app"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/config"
	"github.com/Immonkei/Backend-Mobile-MAD/migrations"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	if err := run(command, cfg.Database.DSN, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(command, dsn string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// goose requires *sql.DB.
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("took", r.Duration))
		}
		if len(results) == 0 {
			logger.Info("schema is up to date")
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logger.Info("migration rolled back", slog.Int64("version", r.Source.Version))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("state", string(s.State)),
				slog.String("path", s.Source.Path))
		}
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
