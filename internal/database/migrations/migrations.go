package migrations

import (
	"context"
	"embed"
	"examadmin/pkg/lib/sl"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var fs embed.FS

// Up applies every pending migration.
func Up(ctx context.Context, log *slog.Logger, db *sqlx.DB) error {
	const op = "database.migrations.Up"

	log = log.With(
		slog.String("op", op),
	)

	goose.SetBaseFS(fs)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("migrations applied")

	return nil
}
