package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"ledger-analytics/internal/config"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner handles database migrations and seeding
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seed           bool
}

func NewMigrationRunner(db *sql.DB, cfg config.MigrationsConfig) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: cfg.MigrationsPath,
		seedsPath:      cfg.SeedsPath,
		seed:           cfg.Seed,
	}
}

// WaitForDatabase pings until the database answers, the retries run out or ctx ends.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	slog.Info("waiting for database")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.PingContext(ctx)
		if err == nil {
			slog.Info("database is ready")
			return nil
		}

		slog.Warn("database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		slog.Warn("migrations directory not found, skipping migrations", "path", mr.migrationsPath)
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("no new migrations to apply", "version", version)
		return nil
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("applied migrations", "from_version", version, "to_version", newVersion)
	return nil
}

// LoadSeeds executes every *.sql file of the seeds directory in name order.
// A failing file is logged and skipped.
func (mr *MigrationRunner) LoadSeeds() error {
	if !mr.seed {
		slog.Info("seed data loading disabled")
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		slog.Warn("seeds directory not found, skipping seed data", "path", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	if len(files) == 0 {
		slog.Info("no seed files found", "path", mr.seedsPath)
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			slog.Warn("failed to execute seed file", "file", filepath.Base(file), "error", err)
			continue
		}

		slog.Info("executed seed file", "file", filepath.Base(file))
	}

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

// RunMigrationsIfEnabled runs migrations and seeds when cfg.AutoMigrate is set.
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, cfg config.MigrationsConfig) error {
	if !cfg.AutoMigrate {
		slog.Info("auto-migration disabled")
		return nil
	}

	runner := NewMigrationRunner(db, cfg)

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(); err != nil {
		slog.Warn("seed data loading failed", "error", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		slog.Warn("failed to get migration status", "error", err)
	} else {
		slog.Info("migration status", "version", version, "dirty", dirty)
	}

	return nil
}
