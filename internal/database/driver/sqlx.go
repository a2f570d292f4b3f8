package driver

import (
	"context"
	"examadmin/pkg/lib/sl"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const defaultPingTimeout = 5 * time.Second

// PostgresDSN builds a lib/pq key/value connection string.
func PostgresDSN(host string, port int, user, password, dbname, sslmode string) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)
}

type SQLXConfig struct {
	DriverName     string
	DataSourceName string
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    time.Duration
	PingTimeout    time.Duration
}

// Connect opens the pool, applies its limits and waits for the first ping.
// The pool is closed again when the database is unreachable.
func (c *SQLXConfig) Connect(ctx context.Context, log *slog.Logger) (*sqlx.DB, error) {
	const op = "database.driver.Connect"

	log = log.With(
		slog.String("op", op),
		slog.String("driver", c.DriverName),
	)

	db, err := sqlx.Open(c.DriverName, c.DataSourceName)
	if err != nil {
		log.Error("failed to open database", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.configure(db)

	log.Info(
		"connection pool configured",
		slog.Int("max_open", c.MaxOpenConns),
		slog.Int("max_idle", c.MaxIdleConns),
		slog.Duration("max_lifetime", c.MaxLifetime),
	)

	timeout := c.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		log.Error("database is unreachable", sl.Err(err))
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return db, nil
}

func (c *SQLXConfig) configure(db *sqlx.DB) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.MaxLifetime > 0 {
		db.SetConnMaxLifetime(c.MaxLifetime)
	}
}
