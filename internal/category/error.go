package category

import "errors"

var (
	ErrEmptyName            = errors.New("category name cannot be empty")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrFailedListCategories = errors.New("failed to list categories")
	ErrFailedCreate         = errors.New("failed to create category")
	ErrFailedDelete         = errors.New("failed to delete category")
)
