package repository

import (
	"context"
	"time"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

// CreateOrder inserts the order header and its line items in one transaction
// so a failed item insert never leaves a partial order behind.
func (r *Repository) CreateOrder(order *domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO orders (number, customer_name, customer_email, status, total_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`
	args := []any{order.Number, order.CustomerName, order.CustomerEmail, order.Status, order.TotalCents}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&order.ID, &order.CreatedAt, &order.Version); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		query := `
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		args := []any{order.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPriceCents}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) GetOrderByID(id int64) (*domain.Order, error) {
	query := `
		SELECT number, customer_name, customer_email, status, total_cents, created_at, version
		FROM orders WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	order := &domain.Order{
		ID: id,
	}

	dst := []any{&order.Number, &order.CustomerName, &order.CustomerEmail, &order.Status, &order.TotalCents, &order.CreatedAt, &order.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	itemsQuery := `
		SELECT id, product_id, product_name, quantity, unit_price_cents
		FROM order_items WHERE order_id = $1
		ORDER BY id
	`
	rows, err := r.dbpool.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		dst := []any{&item.ID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPriceCents}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) GetAllOrders() ([]*domain.Order, error) {
	query := `
		SELECT id, number, customer_name, customer_email, status, total_cents, created_at, version
		FROM orders
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{}
		dst := []any{&order.ID, &order.Number, &order.CustomerName, &order.CustomerEmail, &order.Status, &order.TotalCents, &order.CreatedAt, &order.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *Repository) UpdateOrderStatus(order *domain.Order) error {
	query := `
		UPDATE orders
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, order.Status, order.ID, order.Version).Scan(&order.Version); err != nil {
		return err
	}

	return nil
}
