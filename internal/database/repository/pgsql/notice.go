package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	storage "examadmin/internal/database"
	"examadmin/internal/database/driver"
	"examadmin/internal/database/model"
	"examadmin/internal/database/repository"

	"github.com/jmoiron/sqlx"
)

const noticeColumns = "id, title, content, type, priority, is_active, create_time, update_time, is_deleted"

var _ repository.NoticeRepository = (*NoticeRepository)(nil)

type NoticeRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewNoticeRepository(db *sqlx.DB) *NoticeRepository {
	return &NoticeRepository{db: db, now: time.Now}
}

func (n *NoticeRepository) Save(ctx context.Context, notice *model.Notice) error {
	const op = "repository.pgsql.SaveNotice"

	notice.StampCreated(n.now())
	notice.IsDeleted = model.NotDeleted

	err := driver.Executor(ctx, n.db).QueryRowxContext(ctx,
		`INSERT INTO notices (title, content, type, priority, is_active, create_time, update_time, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		notice.Title, notice.Content, notice.Type, notice.Priority, notice.IsActive,
		notice.CreatedAt, notice.UpdatedAt, notice.IsDeleted,
	).Scan(&notice.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (n *NoticeRepository) NoticeByID(ctx context.Context, id int64) (*model.Notice, error) {
	const op = "repository.pgsql.NoticeByID"

	var notice model.Notice
	err := sqlx.GetContext(ctx, driver.Executor(ctx, n.db), &notice,
		"SELECT "+noticeColumns+" FROM notices WHERE id = $1 AND is_deleted = 0", id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNoticeNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &notice, nil
}

func (n *NoticeRepository) Notices(ctx context.Context, q model.NoticeQuery) ([]model.Notice, error) {
	const op = "repository.pgsql.Notices"

	var sb strings.Builder
	sb.WriteString("SELECT " + noticeColumns + " FROM notices WHERE is_deleted = 0")
	if q.ActiveOnly {
		sb.WriteString(" AND is_active = TRUE")
	}

	switch q.Order {
	case model.OrderByPriority:
		sb.WriteString(" ORDER BY priority DESC, create_time DESC")
	default:
		sb.WriteString(" ORDER BY create_time DESC")
	}

	var args []any
	if q.Limit > 0 {
		sb.WriteString(" LIMIT $1")
		args = append(args, q.Limit)
	}

	notices := make([]model.Notice, 0)
	if err := sqlx.SelectContext(ctx, driver.Executor(ctx, n.db), &notices, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notices, nil
}

func (n *NoticeRepository) UpdateByID(ctx context.Context, id int64, patch model.NoticePatch) error {
	const op = "repository.pgsql.UpdateNotice"

	var set assignments
	setIf(&set, "title", patch.Title)
	setIf(&set, "content", patch.Content)
	setIf(&set, "type", patch.Type)
	setIf(&set, "priority", patch.Priority)
	setIf(&set, "is_active", patch.IsActive)

	updatedAt := patch.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = n.now()
	}
	set.set("update_time", updatedAt)

	query := fmt.Sprintf("UPDATE notices SET %s WHERE id = %s AND is_deleted = 0", set.String(), set.next())

	return execAffecting(ctx, driver.Executor(ctx, n.db), op, storage.ErrNoticeNotFound, query, append(set.args, id)...)
}

func (n *NoticeRepository) RemoveByID(ctx context.Context, id int64) error {
	const op = "repository.pgsql.RemoveNotice"

	return execAffecting(ctx, driver.Executor(ctx, n.db), op, storage.ErrNoticeNotFound,
		"UPDATE notices SET is_deleted = 1, update_time = $1 WHERE id = $2 AND is_deleted = 0",
		n.now(), id,
	)
}

func (n *NoticeRepository) PurgeByID(ctx context.Context, id int64) error {
	const op = "repository.pgsql.PurgeNotice"

	return execAffecting(ctx, driver.Executor(ctx, n.db), op, storage.ErrNoticeNotFound,
		"DELETE FROM notices WHERE id = $1", id,
	)
}
