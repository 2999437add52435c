package notice

import (
	"context"
	"database/sql"
)

type Repository interface {
	List(ctx context.Context) ([]Notice, error)
	Create(ctx context.Context, n Notice) (Notice, error)
	Update(ctx context.Context, n Notice) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Notice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, body, created_at
		FROM notices
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []Notice
	for rows.Next() {
		var n Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.CreatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

func (r *repository) Create(ctx context.Context, n Notice) (Notice, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO notices (title, body, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at`,
		n.Title, n.Body,
	).Scan(&n.ID, &n.CreatedAt)
	return n, err
}

func (r *repository) Update(ctx context.Context, n Notice) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notices SET title = $1, body = $2 WHERE id = $3`,
		n.Title, n.Body, n.ID,
	)
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return ErrNoticeNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return ErrNoticeNotFound
	}
	return nil
}
