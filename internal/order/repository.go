package order

import (
	"context"
	"database/sql"
	"fmt"
)

// Store is the durable side of the order pipeline: append-create, reads,
// and the single status-update mutation. Everything else on an order is
// immutable once written.
type Store interface {
	Create(ctx context.Context, o *Order) (string, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

// Create writes the order header and its items in one transaction. The id
// and ordered_at timestamp are assigned by the database, never the client.
func (s *store) Create(ctx context.Context, o *Order) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (company_name, user_id, delivery_location, site_name, person_name, status, ordered_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, ordered_at`,
		o.CompanyName, o.UserID, o.DeliveryLocation, o.SiteName, o.PersonName, o.Status,
	).Scan(&o.ID, &o.OrderedAt)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	for i, it := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, line_no, product_id, name, quantity, price, supplier, supplier_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			o.ID, i, it.ProductID, it.Name, it.Quantity, it.Price, it.Supplier, it.SupplierPrice,
		)
		if err != nil {
			return "", fmt.Errorf("insert order item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return o.ID, nil
}

func (s *store) GetByID(ctx context.Context, id string) (*Order, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, company_name, user_id, delivery_location, site_name, person_name, status, ordered_at
		FROM orders
		WHERE id = $1`,
		id,
	)

	var o Order
	err := row.Scan(&o.ID, &o.CompanyName, &o.UserID, &o.DeliveryLocation, &o.SiteName, &o.PersonName, &o.Status, &o.OrderedAt)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.Items, err = s.loadItems(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *store) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, company_name, user_id, delivery_location, site_name, person_name, status, ordered_at
		FROM orders
		WHERE user_id = $1
		ORDER BY ordered_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return s.scanOrders(ctx, rows)
}

func (s *store) List(ctx context.Context) ([]Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, company_name, user_id, delivery_location, site_name, person_name, status, ordered_at
		FROM orders
		ORDER BY ordered_at DESC`)
	if err != nil {
		return nil, err
	}
	return s.scanOrders(ctx, rows)
}

func (s *store) UpdateStatus(ctx context.Context, id string, status Status) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE orders SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *store) scanOrders(ctx context.Context, rows *sql.Rows) ([]Order, error) {
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CompanyName, &o.UserID, &o.DeliveryLocation, &o.SiteName, &o.PersonName, &o.Status, &o.OrderedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := s.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (s *store) loadItems(ctx context.Context, orderID string) ([]LineItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, name, quantity, price, supplier, supplier_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY line_no`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LineItem
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &it.Price, &it.Supplier, &it.SupplierPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
