package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ledger-analytics/internal/config"
	"ledger-analytics/internal/models"
)

// SetupTestDB opens a migrated in-memory sqlite database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Each new connection to ":memory:" is a fresh database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestCategory(t *testing.T, db *DB, name string, parent *models.Category) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if parent != nil {
		category.ParentID = &parent.ID
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestEntry(t *testing.T, db *DB, occurredAt time.Time, amount float64, currency string, category *models.Category) *models.LedgerEntry {
	t.Helper()

	entry := &models.LedgerEntry{
		OccurredAt:  occurredAt,
		Amount:      decimal.NewFromFloat(amount),
		Currency:    currency,
		Description: fmt.Sprintf("test entry %.2f", amount),
	}
	if category != nil {
		entry.CategoryID = &category.ID
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test ledger entry: %v", err)
	}

	return entry
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"view_snapshots",
		"goals",
		"ledger_entries",
		"categories",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}

	if sqlDB, err := db.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
