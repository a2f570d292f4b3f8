package model

import (
	"examadmin/internal/database/model"
	"time"
)

type Banner struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func BannerDBtoBannerHTTP(banner model.Banner) *Banner {
	return &Banner{
		ID:        banner.ID,
		Title:     banner.Title,
		ImageURL:  banner.ImageURL,
		LinkURL:   banner.LinkURL,
		IsActive:  banner.IsActive,
		SortOrder: banner.SortOrder,
		CreatedAt: banner.CreatedAt,
		UpdatedAt: banner.UpdatedAt,
	}
}

func BannersDBtoBannersHTTP(banners []model.Banner) []Banner {
	out := make([]Banner, 0, len(banners))
	for _, b := range banners {
		out = append(out, *BannerDBtoBannerHTTP(b))
	}
	return out
}
