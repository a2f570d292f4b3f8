package model

import (
	"examadmin/internal/database/model"
	"time"
)

type Notice struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Priority  int       `json:"priority"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NoticeDBtoNoticeHTTP(notice model.Notice) *Notice {
	return &Notice{
		ID:        notice.ID,
		Title:     notice.Title,
		Content:   notice.Content,
		Type:      notice.Type,
		Priority:  notice.Priority,
		IsActive:  notice.IsActive,
		CreatedAt: notice.CreatedAt,
		UpdatedAt: notice.UpdatedAt,
	}
}

func NoticesDBtoNoticesHTTP(notices []model.Notice) []Notice {
	out := make([]Notice, 0, len(notices))
	for _, n := range notices {
		out = append(out, *NoticeDBtoNoticeHTTP(n))
	}
	return out
}
