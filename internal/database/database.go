package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ledger-analytics/internal/config"
	"ledger-analytics/internal/models"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// AutoMigrate creates the tables the analytics engine reads and writes.
// The ledger tables are owned by the bookkeeping service in production and
// are only migrated here for development and tests.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Category{},
		&models.LedgerEntry{},
		&models.GoalDefinition{},
		&models.ViewSnapshotRecord{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_occurred_at ON ledger_entries(occurred_at)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_currency_occurred_at ON ledger_entries(currency, occurred_at)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_category_id ON ledger_entries(category_id) WHERE category_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_categories_parent_id ON categories(parent_id) WHERE parent_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_goals_target_date ON goals(target_date)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize connects, runs SQL migrations when enabled and falls back to
// gorm AutoMigrate if the migration runner fails.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(ctx, sqlDB, cfg.Migrations); err != nil {
		slog.Warn("migration runner failed, falling back to gorm AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)

	return db, nil
}
