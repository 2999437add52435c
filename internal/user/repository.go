package user

import (
	"context"
	"database/sql"
)

type Repository interface {
	FindAuthByCompanyCode(ctx context.Context, companyCode string) (*AuthMaster, error)
	UpsertUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, userID string) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAuthByCompanyCode(ctx context.Context, companyCode string) (*AuthMaster, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT company_code, password_hash, company_name, address, tel, role
		FROM auth_master
		WHERE company_code = $1`,
		companyCode,
	)

	var a AuthMaster
	err := row.Scan(&a.CompanyCode, &a.PasswordHash, &a.CompanyName, &a.Address, &a.Tel, &a.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) UpsertUser(ctx context.Context, u User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (user_id, company_code, company_name, address, tel, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET company_code = EXCLUDED.company_code,
		    company_name = EXCLUDED.company_name,
		    address = EXCLUDED.address,
		    tel = EXCLUDED.tel`,
		u.UserID, u.CompanyCode, u.CompanyName, u.Address, u.Tel,
	)
	return err
}

func (r *repository) GetUser(ctx context.Context, userID string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, company_code, company_name, address, tel, created_at
		FROM users
		WHERE user_id = $1`,
		userID,
	)

	var u User
	err := row.Scan(&u.UserID, &u.CompanyCode, &u.CompanyName, &u.Address, &u.Tel, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
