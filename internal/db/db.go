package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/dileepkhanna/jobportal/config"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	defaultPingTimeout  = 5 * time.Second
	defaultConnMaxIdle  = 2 * time.Minute
	defaultConnMaxLife  = 30 * time.Minute
	defaultMaxIdleConns = 5
	defaultMaxOpenConns = 25
	sqliteBusyTimeoutMS = 5000
)

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	driver := cfg.Database.Driver
	if driver == "" {
		driver = config.DriverPostgres
	}

	db, err := sql.Open(driver, DSN(cfg))
	if err != nil {
		return nil, err
	}

	switch driver {
	case config.DriverSQLite:
		// SQLite allows a single writer; one connection avoids SQLITE_BUSY
		// between the pool's own connections.
		db.SetMaxOpenConns(1)
	default:
		db.SetConnMaxIdleTime(defaultConnMaxIdle)
		db.SetConnMaxLifetime(defaultConnMaxLife)
		db.SetMaxIdleConns(defaultMaxIdleConns)
		db.SetMaxOpenConns(defaultMaxOpenConns)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// DSN returns the driver-specific data source name for cfg.
func DSN(cfg config.Config) string {
	if cfg.Database.Driver == config.DriverSQLite {
		return fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=%d", cfg.Database.Path, sqliteBusyTimeoutMS)
	}
	return buildPostgresURL(cfg)
}

func buildPostgresURL(cfg config.Config) string {
	sslmode := "disable"
	if cfg.Database.UseSSL {
		sslmode = "require"
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", cfg.Database.Host, cfg.Database.Port),
		User:   url.UserPassword(cfg.Database.User, cfg.Database.Password),
		Path:   cfg.Database.DBName,
	}
	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}
