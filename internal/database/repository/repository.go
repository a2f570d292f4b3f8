package repository

import (
	"context"
	"examadmin/internal/database/model"
)

// Update and remove calls report a missing or logically deleted row through
// the storage not-found errors.
type BannerRepository interface {
	Save(ctx context.Context, banner *model.Banner) error
	UpdateByID(ctx context.Context, id int64, patch model.BannerPatch) error
	RemoveByID(ctx context.Context, id int64) error
	BannerByID(ctx context.Context, id int64) (*model.Banner, error)
	Banners(ctx context.Context, activeOnly bool) ([]model.Banner, error)
}

type NoticeRepository interface {
	Save(ctx context.Context, notice *model.Notice) error
	UpdateByID(ctx context.Context, id int64, patch model.NoticePatch) error
	RemoveByID(ctx context.Context, id int64) error
	PurgeByID(ctx context.Context, id int64) error
	NoticeByID(ctx context.Context, id int64) (*model.Notice, error)
	Notices(ctx context.Context, query model.NoticeQuery) ([]model.Notice, error)
}
