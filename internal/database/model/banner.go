package model

import (
	"time"
)

type Banner struct {
	Audited
	Title     string `db:"title"`
	ImageURL  string `db:"image_url"`
	LinkURL   string `db:"link_url"`
	IsActive  bool   `db:"is_active"`
	SortOrder int    `db:"sort_order"`
}

// BannerPatch lists the columns to overwrite; nil fields are left untouched.
type BannerPatch struct {
	Title     *string
	ImageURL  *string
	LinkURL   *string
	IsActive  *bool
	SortOrder *int
	UpdatedAt time.Time
}
