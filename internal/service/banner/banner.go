package banner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	storage "examadmin/internal/database"
	"examadmin/internal/database/driver"
	"examadmin/internal/database/model"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/filetype"
	"examadmin/pkg/lib/sl"
)

type Repository interface {
	Save(ctx context.Context, banner *model.Banner) error
	UpdateByID(ctx context.Context, id int64, patch model.BannerPatch) error
	RemoveByID(ctx context.Context, id int64) error
	BannerByID(ctx context.Context, id int64) (*model.Banner, error)
	Banners(ctx context.Context, activeOnly bool) ([]model.Banner, error)
}

type Transactor interface {
	WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error
}

type Service struct {
	log     *slog.Logger
	repo    Repository
	storage ImageStorage
	tx      Transactor
	policy  UploadPolicy
	now     func() time.Time
	detect  func(io.Reader) (string, error)
}

func New(log *slog.Logger, repo Repository, storage ImageStorage, tx Transactor, policy UploadPolicy) *Service {
	return &Service{
		log:     log,
		repo:    repo,
		storage: storage,
		tx:      tx,
		policy:  policy.withDefaults(),
		now:     time.Now,
		detect:  filetype.Detect,
	}
}

type CreateInput struct {
	Title     string
	ImageURL  string
	LinkURL   string
	IsActive  *bool
	SortOrder *int
}

type UpdateInput struct {
	Title     *string
	ImageURL  *string
	LinkURL   *string
	IsActive  *bool
	SortOrder *int
}

func (s *Service) AddBanner(ctx context.Context, in CreateInput) response.Result[model.Banner] {
	const op = "service.banner.AddBanner"

	log := s.log.With(
		slog.String("op", op),
	)

	banner := model.Banner{
		Title:     in.Title,
		ImageURL:  in.ImageURL,
		LinkURL:   in.LinkURL,
		IsActive:  true,
		SortOrder: 0,
	}
	if in.IsActive != nil {
		banner.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		banner.SortOrder = *in.SortOrder
	}

	err := s.tx.WithinTx(ctx, nil, func(ctx context.Context) error {
		return s.repo.Save(ctx, &banner)
	})
	if err != nil {
		log.Error("failed to save banner", sl.Err(err))
		return response.Fail[model.Banner](err, "failed to save banner")
	}

	log.Info("banner saved", slog.Int64("id", banner.ID))

	return response.Success(banner, "banner saved")
}

func (s *Service) UpdateBanner(ctx context.Context, id int64, in UpdateInput) response.Result[string] {
	return s.update(ctx, "service.banner.UpdateBanner", id, model.BannerPatch{
		Title:     in.Title,
		ImageURL:  in.ImageURL,
		LinkURL:   in.LinkURL,
		IsActive:  in.IsActive,
		SortOrder: in.SortOrder,
	}, "banner updated", "failed to update banner")
}

func (s *Service) ToggleBannerStatus(ctx context.Context, id int64, active bool) response.Result[string] {
	okMsg := "banner disabled"
	if active {
		okMsg = "banner enabled"
	}

	return s.update(ctx, "service.banner.ToggleBannerStatus", id, model.BannerPatch{
		IsActive: &active,
	}, okMsg, "failed to update banner status")
}

func (s *Service) update(ctx context.Context, op string, id int64, patch model.BannerPatch, okMsg, failMsg string) response.Result[string] {
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", id),
	)

	patch.UpdatedAt = s.now()

	err := s.tx.WithinTx(ctx, nil, func(ctx context.Context) error {
		return s.repo.UpdateByID(ctx, id, patch)
	})
	if err != nil {
		if errors.Is(err, storage.ErrBannerNotFound) {
			log.Warn("banner not updated", sl.Err(err))
		} else {
			log.Error("failed to update banner", sl.Err(err))
		}
		return response.Fail[string](err, failMsg)
	}

	log.Info(okMsg)

	return response.Success(okMsg, okMsg)
}

func (s *Service) DeleteBanner(ctx context.Context, id int64) response.Result[string] {
	const op = "service.banner.DeleteBanner"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", id),
	)

	err := s.tx.WithinTx(ctx, nil, func(ctx context.Context) error {
		return s.repo.RemoveByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, storage.ErrBannerNotFound) {
			log.Warn("banner not deleted", sl.Err(err))
		} else {
			log.Error("failed to delete banner", sl.Err(err))
		}
		return response.Fail[string](err, "failed to delete banner")
	}

	log.Info("banner deleted")

	return response.Success("banner deleted", "banner deleted")
}

func (s *Service) Banner(ctx context.Context, id int64) response.Result[model.Banner] {
	const op = "service.banner.Banner"

	var banner *model.Banner
	err := s.tx.WithinTx(ctx, driver.ReadOnly, func(ctx context.Context) error {
		var err error
		banner, err = s.repo.BannerByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrBannerNotFound) {
			s.log.Info("banner not found", slog.String("op", op), slog.Int64("id", id))
		} else {
			s.log.Error("failed to get banner", slog.String("op", op), sl.Err(err))
		}
		return response.Fail[model.Banner](err, "failed to get banner")
	}

	return response.Success(*banner, "")
}

func (s *Service) Banners(ctx context.Context, activeOnly bool) response.Result[[]model.Banner] {
	const op = "service.banner.Banners"

	var banners []model.Banner
	err := s.tx.WithinTx(ctx, driver.ReadOnly, func(ctx context.Context) error {
		var err error
		banners, err = s.repo.Banners(ctx, activeOnly)
		return err
	})
	if err != nil {
		s.log.Error("failed to list banners", slog.String("op", op), sl.Err(err))
		return response.Fail[[]model.Banner](fmt.Errorf("%s: %w", op, err), "failed to list banners")
	}

	return response.Success(banners, "")
}
