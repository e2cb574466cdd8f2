package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/dileepkhanna/jobportal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite3/*.sql
var migrationsFS embed.FS

// NewMigrator builds a migrator over the embedded migrations for the
// configured driver. Callers must Close it.
func NewMigrator(cfg config.Config) (*migrate.Migrate, error) {
	driver := cfg.Database.Driver
	if driver == "" {
		driver = config.DriverPostgres
	}

	var databaseURL string
	switch driver {
	case config.DriverPostgres:
		databaseURL = buildPostgresURL(cfg)
	case config.DriverSQLite:
		databaseURL = "sqlite3://" + cfg.Database.Path
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	source, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("init migrator failed: %w", err)
	}
	return migrator, nil
}

// MigrateUp applies every pending up migration.
func MigrateUp(cfg config.Config) error {
	migrator, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("migrate up failed: %w", err)
	}
	return nil
}

// MigrateDown reverts the most recent migration.
func MigrateDown(cfg config.Config) error {
	migrator, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("migrate down failed: %w", err)
	}
	return nil
}
