package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"natrix-bank/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// slogGooseLogger adapts goose's logger interface onto slog.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Default().Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Default().Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

// RunMigrations applies the embedded goose migrations for one service
// (accounts, cards or loans) against its backing database.
func RunMigrations(ctx context.Context, cfg config.DatabaseConfig, service string, logger *slog.Logger) error {
	if cfg.URL == "" {
		return fmt.Errorf("database URL is empty in configuration")
	}

	logger.Info("Running database migrations...", "service", service)

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer db.Close()

	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations/"+service); err != nil {
		return fmt.Errorf("failed to apply migrations for %s: %w", service, err)
	}

	logger.Info("Database migrations applied.", "service", service)
	return nil
}
