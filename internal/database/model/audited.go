package model

import "time"

const (
	NotDeleted int8 = 0
	Deleted    int8 = 1
)

// Audited holds the identity, audit timestamps and logical-delete flag shared
// by every persisted entity.
type Audited struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"create_time"`
	UpdatedAt time.Time `db:"update_time"`
	IsDeleted int8      `db:"is_deleted"`
}

// StampCreated fills timestamps the caller left unset.
func (a *Audited) StampCreated(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
}
