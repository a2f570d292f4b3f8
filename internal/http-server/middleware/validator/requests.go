package validator

type CreateBannerRequest struct {
	Title     string `json:"title" validate:"max=128"`
	ImageURL  string `json:"image_url" validate:"required,url,max=1024"`
	LinkURL   string `json:"link_url" validate:"omitempty,url,max=1024"`
	IsActive  *bool  `json:"is_active"`
	SortOrder *int   `json:"sort_order" validate:"omitempty,gte=0"`
}

type UpdateBannerRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=128"`
	ImageURL  *string `json:"image_url" validate:"omitempty,url,max=1024"`
	LinkURL   *string `json:"link_url" validate:"omitempty,url,max=1024"`
	IsActive  *bool   `json:"is_active"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
}

type CreateNoticeRequest struct {
	Title    string  `json:"title" validate:"max=256"`
	Content  string  `json:"content" validate:"required"`
	Type     *string `json:"type" validate:"omitempty,max=32"`
	Priority *int    `json:"priority"`
	IsActive *bool   `json:"is_active"`
}

type UpdateNoticeRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=256"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Type     *string `json:"type" validate:"omitempty,max=32"`
	Priority *int    `json:"priority"`
	IsActive *bool   `json:"is_active"`
}
