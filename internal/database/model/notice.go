package model

import "time"

const DefaultNoticeType = "NOTICE"

type Notice struct {
	Audited
	Title    string `db:"title"`
	Content  string `db:"content"`
	Type     string `db:"type"`
	Priority int    `db:"priority"`
	IsActive bool   `db:"is_active"`
}

type NoticePatch struct {
	Title     *string
	Content   *string
	Type      *string
	Priority  *int
	IsActive  *bool
	UpdatedAt time.Time
}

type NoticeOrder int

const (
	// OrderByRecency sorts newest first.
	OrderByRecency NoticeOrder = iota
	// OrderByPriority sorts by priority, newest first within equal priority.
	OrderByPriority
)

type NoticeQuery struct {
	ActiveOnly bool
	Limit      int
	Order      NoticeOrder
}
