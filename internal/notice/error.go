package notice

import "errors"

var (
	ErrNoticeNotFound     = errors.New("notice not found")
	ErrEmptyTitle         = errors.New("notice title is required")
	ErrFailedCreateNotice = errors.New("failed to create notice")
	ErrFailedUpdateNotice = errors.New("failed to update notice")
	ErrFailedDeleteNotice = errors.New("failed to delete notice")
)
