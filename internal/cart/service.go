package cart

import (
	"context"

	"toolorder-be/internal/catalog"
	"toolorder-be/internal/logger"

	"go.uber.org/zap"
)

// Service wraps every session mutation in a load-mutate-save cycle so the
// stored state always reflects the last operation.
type Service interface {
	GetSession(ctx context.Context, userID string) (*Session, error)
	AddToCart(ctx context.Context, userID, productID string, quantity int) (*Session, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (*Session, error)
	RemoveFromCart(ctx context.Context, userID, productID string) (*Session, error)
	ToggleFavorite(ctx context.Context, userID, productID string) (*Session, error)
	SaveForLater(ctx context.Context, userID, productID string) (*Session, error)
	MoveToCart(ctx context.Context, userID, productID string) (*Session, error)
}

type service struct {
	store       Store
	catalogRepo catalog.Repository
}

func NewService(store Store, catalogRepo catalog.Repository) Service {
	return &service{store: store, catalogRepo: catalogRepo}
}

func (s *service) GetSession(ctx context.Context, userID string) (*Session, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}
	sess, err := s.store.Load(ctx, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load session", zap.String("user_id", userID), zap.Error(err))
		return nil, ErrFailedLoadSession
	}
	return sess, nil
}

func (s *service) AddToCart(ctx context.Context, userID, productID string, quantity int) (*Session, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, func(sess *Session) {
		sess.Cart.Add(*product, quantity)
	})
}

func (s *service) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*Session, error) {
	return s.mutate(ctx, userID, func(sess *Session) {
		sess.Cart.SetQuantity(productID, quantity)
	})
}

func (s *service) RemoveFromCart(ctx context.Context, userID, productID string) (*Session, error) {
	return s.mutate(ctx, userID, func(sess *Session) {
		sess.Cart.Remove(productID)
	})
}

func (s *service) ToggleFavorite(ctx context.Context, userID, productID string) (*Session, error) {
	return s.mutate(ctx, userID, func(sess *Session) {
		sess.ToggleFavorite(productID)
	})
}

func (s *service) SaveForLater(ctx context.Context, userID, productID string) (*Session, error) {
	return s.mutate(ctx, userID, func(sess *Session) {
		sess.SaveForLater(productID)
	})
}

func (s *service) MoveToCart(ctx context.Context, userID, productID string) (*Session, error) {
	return s.mutate(ctx, userID, func(sess *Session) {
		sess.MoveToCart(productID)
	})
}

func (s *service) mutate(ctx context.Context, userID string, fn func(*Session)) (*Session, error) {
	sess, err := s.GetSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	fn(sess)

	if err := s.store.Save(ctx, sess); err != nil {
		logger.FromCtx(ctx).Error("failed to save session", zap.String("user_id", userID), zap.Error(err))
		return nil, ErrFailedSaveSession
	}
	return sess, nil
}
