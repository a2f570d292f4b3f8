package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	storage "examadmin/internal/database"
	"examadmin/internal/database/driver"
	"examadmin/internal/database/model"
	"examadmin/internal/database/repository"

	"github.com/jmoiron/sqlx"
)

const bannerColumns = "id, title, image_url, link_url, is_active, sort_order, create_time, update_time, is_deleted"

var _ repository.BannerRepository = (*BannerRepository)(nil)

type BannerRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewBannerRepository(db *sqlx.DB) *BannerRepository {
	return &BannerRepository{db: db, now: time.Now}
}

func (b *BannerRepository) Save(ctx context.Context, banner *model.Banner) error {
	const op = "repository.pgsql.SaveBanner"

	banner.StampCreated(b.now())
	banner.IsDeleted = model.NotDeleted

	err := driver.Executor(ctx, b.db).QueryRowxContext(ctx,
		`INSERT INTO banners (title, image_url, link_url, is_active, sort_order, create_time, update_time, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		banner.Title, banner.ImageURL, banner.LinkURL, banner.IsActive, banner.SortOrder,
		banner.CreatedAt, banner.UpdatedAt, banner.IsDeleted,
	).Scan(&banner.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (b *BannerRepository) BannerByID(ctx context.Context, id int64) (*model.Banner, error) {
	const op = "repository.pgsql.BannerByID"

	var banner model.Banner
	err := sqlx.GetContext(ctx, driver.Executor(ctx, b.db), &banner,
		"SELECT "+bannerColumns+" FROM banners WHERE id = $1 AND is_deleted = 0", id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBannerNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &banner, nil
}

func (b *BannerRepository) Banners(ctx context.Context, activeOnly bool) ([]model.Banner, error) {
	const op = "repository.pgsql.Banners"

	query := "SELECT " + bannerColumns + " FROM banners WHERE is_deleted = 0"
	if activeOnly {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY sort_order ASC, create_time DESC"

	banners := make([]model.Banner, 0)
	if err := sqlx.SelectContext(ctx, driver.Executor(ctx, b.db), &banners, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return banners, nil
}

func (b *BannerRepository) UpdateByID(ctx context.Context, id int64, patch model.BannerPatch) error {
	const op = "repository.pgsql.UpdateBanner"

	var set assignments
	setIf(&set, "title", patch.Title)
	setIf(&set, "image_url", patch.ImageURL)
	setIf(&set, "link_url", patch.LinkURL)
	setIf(&set, "is_active", patch.IsActive)
	setIf(&set, "sort_order", patch.SortOrder)

	updatedAt := patch.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = b.now()
	}
	set.set("update_time", updatedAt)

	query := fmt.Sprintf("UPDATE banners SET %s WHERE id = %s AND is_deleted = 0", set.String(), set.next())

	return execAffecting(ctx, driver.Executor(ctx, b.db), op, storage.ErrBannerNotFound, query, append(set.args, id)...)
}

func (b *BannerRepository) RemoveByID(ctx context.Context, id int64) error {
	const op = "repository.pgsql.RemoveBanner"

	return execAffecting(ctx, driver.Executor(ctx, b.db), op, storage.ErrBannerNotFound,
		"UPDATE banners SET is_deleted = 1, update_time = $1 WHERE id = $2 AND is_deleted = 0",
		b.now(), id,
	)
}

// execAffecting runs a write and maps zero affected rows to errNotFound.
func execAffecting(ctx context.Context, exec sqlx.ExecerContext, op string, errNotFound error, query string, args ...any) error {
	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, errNotFound)
	}

	return nil
}
