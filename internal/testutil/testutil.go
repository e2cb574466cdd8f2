package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dileepkhanna/jobportal/config"
	"github.com/dileepkhanna/jobportal/internal/db"
	"github.com/dileepkhanna/jobportal/internal/seed"
)

// SQLiteConfig returns a config pointing at a fresh database file inside
// the test's temp dir.
func SQLiteConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Session: config.SessionConfig{SecretKey: "test-secret"},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "jobportal.db"),
		},
	}
}

// OpenMigratedDB migrates a fresh SQLite database and opens it.
// The DB is closed via t.Cleanup.
func OpenMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	return OpenMigratedDBWithConfig(t, SQLiteConfig(t))
}

// OpenMigratedDBWithConfig migrates and opens the database described by cfg.
func OpenMigratedDBWithConfig(t *testing.T, cfg config.Config) *sql.DB {
	t.Helper()
	if err := db.MigrateUp(cfg); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	d, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// OpenSeededDB is OpenMigratedDB plus the default catalog.
func OpenSeededDB(t *testing.T) *sql.DB {
	t.Helper()
	d := OpenMigratedDB(t)
	if _, err := seed.Seed(context.Background(), d); err != nil {
		t.Fatalf("seed test db: %v", err)
	}
	return d
}
