package catalog

import (
	"context"

	"toolorder-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, q SearchQuery) ([]Product, error)
	CreateProduct(ctx context.Context, p Product) (Product, error)
	UpdateProduct(ctx context.Context, p Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListProducts returns the catalog narrowed by the search form: keyword
// over name and supplier, exact category, inclusive price bounds.
func (s *service) ListProducts(ctx context.Context, q SearchQuery) ([]Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(products, q.Predicate()), nil
}

func (s *service) CreateProduct(ctx context.Context, p Product) (Product, error) {
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create product", zap.Error(err))
		return Product{}, ErrFailedCreateProduct
	}
	return created, nil
}

func (s *service) UpdateProduct(ctx context.Context, p Product) error {
	err := s.repo.Update(ctx, p)
	if err == ErrProductNotFound {
		return err
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update product", zap.String("product_id", p.ID), zap.Error(err))
		return ErrFailedUpdateProduct
	}
	return nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err == ErrProductNotFound {
		return err
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete product", zap.String("product_id", id), zap.Error(err))
		return ErrFailedDeleteProduct
	}
	return nil
}
