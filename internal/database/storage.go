package storage

import "errors"

var (
	ErrBannerNotFound = errors.New("banner not found")
	ErrNoticeNotFound = errors.New("notice not found")
)
