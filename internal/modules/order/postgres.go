package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `id, user_id, address, city, phone_no, postal_code, country,
	items_price, tax_price, shipping_price, total_price,
	payment_id, payment_status, order_status, unique_code,
	paid_at, delivered_at, returned_at, created_at`

// CreateOrder inserts the order and all its items inside a single transaction.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
		  (id, user_id, address, city, phone_no, postal_code, country,
		   items_price, tax_price, shipping_price, total_price,
		   payment_id, payment_status, order_status, unique_code, paid_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		o.ID, o.UserID,
		o.ShippingInfo.Address, o.ShippingInfo.City, o.ShippingInfo.PhoneNo,
		o.ShippingInfo.PostalCode, o.ShippingInfo.Country,
		o.ItemsPrice, o.TaxPrice, o.ShippingPrice, o.TotalPrice,
		o.PaymentInfo.ID, o.PaymentInfo.Status,
		o.OrderStatus, o.UniqueCode, o.PaidAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.OrderItems {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, quantity, price)
			VALUES ($1,$2,$3,$4,$5)`,
			o.ID, item.ProductID, item.Name, item.Quantity, item.Price)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, uid))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	o.OrderItems, err = r.listItems(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID string) ([]*Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`, userID)
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]*Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o *Order) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE orders SET order_status=$1, delivered_at=$2, returned_at=$3 WHERE id=$4`,
		o.OrderStatus, o.DeliveredAt, o.ReturnedAt, o.ID)
	return err
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrOrderNotFound
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id=$1`, uid); err != nil {
		return fmt.Errorf("delete order_items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id=$1`, uid); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return tx.Commit()
}

// ── helpers ──────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	var deliveredAt, returnedAt sql.NullTime
	err := row.Scan(
		&o.ID, &o.UserID,
		&o.ShippingInfo.Address, &o.ShippingInfo.City, &o.ShippingInfo.PhoneNo,
		&o.ShippingInfo.PostalCode, &o.ShippingInfo.Country,
		&o.ItemsPrice, &o.TaxPrice, &o.ShippingPrice, &o.TotalPrice,
		&o.PaymentInfo.ID, &o.PaymentInfo.Status,
		&o.OrderStatus, &o.UniqueCode,
		&o.PaidAt, &deliveredAt, &returnedAt, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		o.DeliveredAt = &t
	}
	if returnedAt.Valid {
		t := returnedAt.Time
		o.ReturnedAt = &t
	}
	return o, nil
}

func (r *postgresRepo) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.OrderItems, err = r.listItems(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *postgresRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, name, quantity, price
		FROM order_items WHERE order_id=$1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*OrderItem
	for rows.Next() {
		item := &OrderItem{}
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
