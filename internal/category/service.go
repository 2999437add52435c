package category

import (
	"context"
	"strings"

	"toolorder-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	ListCategories(ctx context.Context) ([]Category, error)
	AddCategory(ctx context.Context, name string) (Category, error)
	AddSubcategory(ctx context.Context, categoryID, name string) (Subcategory, error)
	DeleteCategory(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListCategories returns every parent with its children attached, fetched
// in two queries rather than one per parent.
func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list categories", zap.Error(err))
		return nil, ErrFailedListCategories
	}
	if len(categories) == 0 {
		return []Category{}, nil
	}

	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	byParent, err := s.repo.GetSubcategoriesByCategoryIDs(ctx, ids)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list subcategories", zap.Error(err))
		return nil, ErrFailedListCategories
	}

	for i := range categories {
		categories[i].Children = byParent[categories[i].ID]
	}
	return categories, nil
}

func (s *service) AddCategory(ctx context.Context, name string) (Category, error) {
	if strings.TrimSpace(name) == "" {
		return Category{}, ErrEmptyName
	}

	c, err := s.repo.AddCategory(ctx, name)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create category", zap.String("name", name), zap.Error(err))
		return Category{}, ErrFailedCreate
	}
	return c, nil
}

func (s *service) AddSubcategory(ctx context.Context, categoryID, name string) (Subcategory, error) {
	if strings.TrimSpace(name) == "" {
		return Subcategory{}, ErrEmptyName
	}

	sub, err := s.repo.AddSubcategory(ctx, categoryID, name)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create subcategory",
			zap.String("category_id", categoryID), zap.String("name", name), zap.Error(err))
		return Subcategory{}, ErrFailedCreate
	}
	return sub, nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	err := s.repo.DeleteCategory(ctx, id)
	if err == ErrCategoryNotFound {
		return err
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete category", zap.String("category_id", id), zap.Error(err))
		return ErrFailedDelete
	}
	return nil
}
