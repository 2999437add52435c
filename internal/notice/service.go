package notice

import (
	"context"
	"strings"

	"toolorder-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	ListNotices(ctx context.Context) ([]Notice, error)
	CreateNotice(ctx context.Context, title, body string) (Notice, error)
	UpdateNotice(ctx context.Context, n Notice) error
	DeleteNotice(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListNotices(ctx context.Context) ([]Notice, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateNotice(ctx context.Context, title, body string) (Notice, error) {
	if strings.TrimSpace(title) == "" {
		return Notice{}, ErrEmptyTitle
	}

	n, err := s.repo.Create(ctx, Notice{Title: title, Body: body})
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create notice", zap.Error(err))
		return Notice{}, ErrFailedCreateNotice
	}
	return n, nil
}

func (s *service) UpdateNotice(ctx context.Context, n Notice) error {
	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyTitle
	}

	err := s.repo.Update(ctx, n)
	if err == ErrNoticeNotFound {
		return err
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update notice", zap.String("notice_id", n.ID), zap.Error(err))
		return ErrFailedUpdateNotice
	}
	return nil
}

func (s *service) DeleteNotice(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err == ErrNoticeNotFound {
		return err
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete notice", zap.String("notice_id", id), zap.Error(err))
		return ErrFailedDeleteNotice
	}
	return nil
}
