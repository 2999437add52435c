package order

import (
	"context"
	"errors"
	"fmt"

	"toolorder-be/internal/cart"
	"toolorder-be/internal/catalog"
	"toolorder-be/internal/logger"

	"go.uber.org/zap"
)

// CatalogReader is the slice of the catalog the builder needs: current
// product records by id.
type CatalogReader interface {
	GetByID(ctx context.Context, id string) (*catalog.Product, error)
}

type SubmitInput struct {
	UserID           string
	CompanyName      string
	DeliveryLocation string
	SiteName         string
	PersonName       string
}

type Service interface {
	Submit(ctx context.Context, input SubmitInput, c *cart.Cart) (string, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	GetOrderForUser(ctx context.Context, userID, id string, isAdmin bool) (*Order, error)
	SearchByUser(ctx context.Context, userID string, q SearchQuery) ([]Order, error)
	SearchAll(ctx context.Context, q SearchQuery) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type service struct {
	store   Store
	catalog CatalogReader
}

func NewService(store Store, catalogReader CatalogReader) Service {
	return &service{store: store, catalog: catalogReader}
}

// Submit turns a cart snapshot into a persisted order. Each line is
// re-priced from the catalog at this moment; a product that no longer
// resolves degrades to the cart's snapshot price with empty supplier fields
// instead of failing the whole order. On success the cart is cleared; on
// store failure the cart is left untouched so the user can retry.
func (s *service) Submit(ctx context.Context, input SubmitInput, c *cart.Cart) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("user_id", input.UserID),
		zap.Int("line_count", len(c.Lines)),
	)

	if c.IsEmpty() {
		return "", ErrEmptyCart
	}

	items := make([]LineItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		item := LineItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
		}

		p, err := s.catalog.GetByID(ctx, line.ProductID)
		switch {
		case err == nil:
			item.Price = p.Price
			item.Name = p.Name
			item.Supplier = p.Supplier
			item.SupplierPrice = p.SupplierPrice
		case errors.Is(err, catalog.ErrProductNotFound):
			log.Warn("product missing at order time, using cart snapshot price",
				zap.String("product_id", line.ProductID))
		default:
			log.Error("failed to fetch product for re-pricing", zap.Error(err))
			return "", fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
		}

		items = append(items, item)
	}

	o := &Order{
		CompanyName:      input.CompanyName,
		UserID:           input.UserID,
		DeliveryLocation: input.DeliveryLocation,
		SiteName:         input.SiteName,
		PersonName:       input.PersonName,
		Items:            items,
		Status:           StatusReceived,
	}

	id, err := s.store.Create(ctx, o)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	c.Clear()

	log.Info("order created",
		zap.String("order_id", id),
		zap.Int("total", o.Total()),
	)
	return id, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.store.GetByID(ctx, id)
}

// GetOrderForUser returns the order only when it belongs to the caller,
// unless the caller is an admin.
func (s *service) GetOrderForUser(ctx context.Context, userID, id string, isAdmin bool) (*Order, error) {
	o, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != userID {
		return nil, ErrUnauthorized
	}
	return o, nil
}

func (s *service) SearchByUser(ctx context.Context, userID string, q SearchQuery) ([]Order, error) {
	orders, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Filter(orders, q.Predicate()), nil
}

func (s *service) SearchAll(ctx context.Context, q SearchQuery) ([]Order, error) {
	orders, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(orders, q.Predicate()), nil
}

// UpdateStatus is the only mutation allowed after creation; the value must
// be one of the five lifecycle labels.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	err := s.store.UpdateStatus(ctx, id, status)
	if errors.Is(err, ErrOrderNotFound) {
		return err
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update order status",
			zap.String("order_id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return ErrFailedUpdateStatus
	}
	return nil
}
