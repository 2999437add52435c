package user

import (
	"context"

	"toolorder-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, companyCode, password, userID string) (string, User, error)
	GetUser(ctx context.Context, userID string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Login authenticates a company code against the auth master, records the
// device's user profile and returns a signed token. Bad company codes and
// bad passwords both come back as ErrInvalidCredentials.
func (s *service) Login(ctx context.Context, companyCode, password, userID string) (string, User, error) {
	log := logger.FromCtx(ctx).With(zap.String("company_code", companyCode))

	auth, err := s.repo.FindAuthByCompanyCode(ctx, companyCode)
	if err != nil {
		log.Error("failed to look up auth master", zap.Error(err))
		return "", User{}, err
	}
	if auth == nil || !CheckPasswordHash(password, auth.PasswordHash) {
		log.Warn("login rejected")
		return "", User{}, ErrInvalidCredentials
	}

	u := User{
		UserID:      userID,
		CompanyCode: auth.CompanyCode,
		CompanyName: auth.CompanyName,
		Address:     auth.Address,
		Tel:         auth.Tel,
	}
	if err := s.repo.UpsertUser(ctx, u); err != nil {
		log.Error("failed to upsert user", zap.Error(err))
		return "", User{}, ErrFailedSaveUser
	}

	token, err := GenerateJWT(userID, auth.CompanyCode, auth.CompanyName, auth.Role)
	if err != nil {
		log.Error("failed to generate jwt", zap.Error(err))
		return "", User{}, err
	}

	log.Info("login completed", zap.String("user_id", userID))
	return token, u, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetUser(ctx, userID)
}
