package category

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type Repository interface {
	GetCategories(ctx context.Context) ([]Category, error)
	GetSubcategoriesByCategoryIDs(ctx context.Context, categoryIDs []string) (map[string][]Subcategory, error)
	AddCategory(ctx context.Context, name string) (Category, error)
	AddSubcategory(ctx context.Context, categoryID, name string) (Subcategory, error)
	DeleteCategory(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name
		FROM categories
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetSubcategoriesByCategoryIDs fetches the children of every given parent
// in a single query, keyed by parent id.
func (r *repository) GetSubcategoriesByCategoryIDs(ctx context.Context, categoryIDs []string) (map[string][]Subcategory, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category_id, name
		FROM subcategories
		WHERE category_id = ANY($1)
		ORDER BY name`,
		pq.Array(categoryIDs),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byParent := make(map[string][]Subcategory)
	for rows.Next() {
		var s Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name); err != nil {
			return nil, err
		}
		byParent[s.CategoryID] = append(byParent[s.CategoryID], s)
	}

	return byParent, rows.Err()
}

func (r *repository) AddCategory(ctx context.Context, name string) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name`,
		name,
	).Scan(&c.ID, &c.Name)
	return c, err
}

func (r *repository) AddSubcategory(ctx context.Context, categoryID, name string) (Subcategory, error) {
	var s Subcategory
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO subcategories (category_id, name)
		VALUES ($1, $2)
		RETURNING id, category_id, name`,
		categoryID, name,
	).Scan(&s.ID, &s.CategoryID, &s.Name)
	return s, err
}

// DeleteCategory removes a parent and, via FK cascade, its children.
func (r *repository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
