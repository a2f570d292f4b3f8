package notice

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	storage "examadmin/internal/database"
	"examadmin/internal/database/driver"
	"examadmin/internal/database/model"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
)

const (
	DefaultLatestLimit = 5
	MaxLatestLimit     = 50
)

type Repository interface {
	Save(ctx context.Context, notice *model.Notice) error
	UpdateByID(ctx context.Context, id int64, patch model.NoticePatch) error
	RemoveByID(ctx context.Context, id int64) error
	PurgeByID(ctx context.Context, id int64) error
	NoticeByID(ctx context.Context, id int64) (*model.Notice, error)
	Notices(ctx context.Context, query model.NoticeQuery) ([]model.Notice, error)
}

type Transactor interface {
	WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error
}

type Service struct {
	log  *slog.Logger
	repo Repository
	tx   Transactor
	now  func() time.Time
}

func New(log *slog.Logger, repo Repository, tx Transactor) *Service {
	return &Service{
		log:  log,
		repo: repo,
		tx:   tx,
		now:  time.Now,
	}
}

type CreateInput struct {
	Title    string
	Content  string
	Type     *string
	Priority *int
	IsActive *bool
}

type UpdateInput struct {
	Title    *string
	Content  *string
	Type     *string
	Priority *int
	IsActive *bool
}

func (s *Service) ActiveNotices(ctx context.Context) response.Result[[]model.Notice] {
	return s.list(ctx, "service.notice.ActiveNotices", model.NoticeQuery{
		ActiveOnly: true,
		Order:      model.OrderByPriority,
	}, "failed to get active notices")
}

// LatestNotices returns the newest active notices; limit is clamped to
// [1, MaxLatestLimit] and defaults to DefaultLatestLimit.
func (s *Service) LatestNotices(ctx context.Context, limit int) response.Result[[]model.Notice] {
	switch {
	case limit <= 0:
		limit = DefaultLatestLimit
	case limit > MaxLatestLimit:
		limit = MaxLatestLimit
	}

	return s.list(ctx, "service.notice.LatestNotices", model.NoticeQuery{
		ActiveOnly: true,
		Limit:      limit,
		Order:      model.OrderByRecency,
	}, "failed to get latest notices")
}

func (s *Service) AllNotices(ctx context.Context) response.Result[[]model.Notice] {
	return s.list(ctx, "service.notice.AllNotices", model.NoticeQuery{
		Order: model.OrderByPriority,
	}, "failed to get notices")
}

func (s *Service) list(ctx context.Context, op string, q model.NoticeQuery, failMsg string) response.Result[[]model.Notice] {
	var notices []model.Notice
	err := s.tx.WithinTx(ctx, driver.ReadOnly, func(ctx context.Context) error {
		var err error
		notices, err = s.repo.Notices(ctx, q)
		return err
	})
	if err != nil {
		s.log.Error(failMsg, slog.String("op", op), sl.Err(err))
		return response.Fail[[]model.Notice](err, failMsg)
	}

	return response.Success(notices, "")
}

func (s *Service) Notice(ctx context.Context, id int64) response.Result[model.Notice] {
	const op = "service.notice.Notice"

	var notice *model.Notice
	err := s.tx.WithinTx(ctx, driver.ReadOnly, func(ctx context.Context) error {
		var err error
		notice, err = s.repo.NoticeByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNoticeNotFound) {
			s.log.Info("notice not found", slog.String("op", op), slog.Int64("id", id))
		} else {
			s.log.Error("failed to get notice", slog.String("op", op), sl.Err(err))
		}
		return response.Fail[model.Notice](err, "failed to get notice")
	}

	return response.Success(*notice, "")
}

func (s *Service) AddNotice(ctx context.Context, in CreateInput) response.Result[model.Notice] {
	const op = "service.notice.AddNotice"

	log := s.log.With(
		slog.String("op", op),
	)

	now := s.now()
	notice := model.Notice{
		Audited: model.Audited{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:    in.Title,
		Content:  in.Content,
		Type:     model.DefaultNoticeType,
		Priority: 0,
		IsActive: true,
	}
	if in.Type != nil {
		notice.Type = *in.Type
	}
	if in.Priority != nil {
		notice.Priority = *in.Priority
	}
	if in.IsActive != nil {
		notice.IsActive = *in.IsActive
	}

	err := s.tx.WithinTx(ctx, nil, func(ctx context.Context) error {
		return s.repo.Save(ctx, &notice)
	})
	if err != nil {
		log.Error("failed to add notice", sl.Err(err), slog.Any("notice", notice))
		return response.Fail[model.Notice](err, "failed to add notice")
	}

	log.Info("notice added", slog.Int64("id", notice.ID))

	return response.Success(notice, "notice added")
}

func (s *Service) UpdateNotice(ctx context.Context, id int64, in UpdateInput) response.Result[string] {
	return s.update(ctx, "service.notice.UpdateNotice", id, model.NoticePatch{
		Title:    in.Title,
		Content:  in.Content,
		Type:     in.Type,
		Priority: in.Priority,
		IsActive: in.IsActive,
	}, "notice updated", "failed to update notice")
}

func (s *Service) ToggleNoticeStatus(ctx context.Context, id int64, active bool) response.Result[string] {
	okMsg := "notice disabled"
	if active {
		okMsg = "notice enabled"
	}

	return s.update(ctx, "service.notice.ToggleNoticeStatus", id, model.NoticePatch{
		IsActive: &active,
	}, okMsg, "failed to update notice status")
}

func (s *Service) update(ctx context.Context, op string, id int64, patch model.NoticePatch, okMsg, failMsg string) response.Result[string] {
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", id),
	)

	patch.UpdatedAt = s.now()

	err := s.tx.WithinTx(ctx, nil, func(ctx context.Context) error {
		return s.repo.UpdateByID(ctx, id, patch)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNoticeNotFound) {
			log.Warn("notice not updated", sl.Err(err))
		} else {
			log.Error(failMsg, sl.Err(err))
		}
		return response.Fail[string](err, failMsg)
	}

	log.Info(okMsg)

	return response.Success(okMsg, okMsg)
}

// DeleteNotice hides the notice; hard removes the row instead.
func (s *Service) DeleteNotice(ctx context.Context, id int64, hard bool) response.Result[string] {
	const op = "service.notice.DeleteNotice"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", id),
		slog.Bool("hard", hard),
	)

	err := s.tx.WithinTx(ctx, nil, func(ctx context.Context) error {
		if hard {
			return s.repo.PurgeByID(ctx, id)
		}
		return s.repo.RemoveByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNoticeNotFound) {
			log.Warn("notice not deleted", sl.Err(err))
		} else {
			log.Error("failed to delete notice", sl.Err(err))
		}
		return response.Fail[string](err, "failed to delete notice")
	}

	log.Info("notice deleted")

	return response.Success("notice deleted", "notice deleted")
}
