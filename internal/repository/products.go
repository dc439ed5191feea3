package repository

import (
	"context"
	"time"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func (r *Repository) CreateProduct(product *domain.Product) error {
	query := `
		INSERT INTO products (name, category, unit, price_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{product.Name, product.Category, product.Unit, product.PriceCents}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&product.ID, &product.IsActive, &product.CreatedAt, &product.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetProductByID(id int64) (*domain.Product, error) {
	query := `
		SELECT name, category, unit, price_cents, is_active, created_at, version
		FROM products WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	product := &domain.Product{
		ID: id,
	}

	dst := []any{&product.Name, &product.Category, &product.Unit, &product.PriceCents, &product.IsActive, &product.CreatedAt, &product.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *Repository) GetAllProducts() ([]*domain.Product, error) {
	query := `
		SELECT id, name, category, unit, price_cents, is_active, created_at, version FROM products
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		dst := []any{&product.ID, &product.Name, &product.Category, &product.Unit, &product.PriceCents, &product.IsActive, &product.CreatedAt, &product.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *Repository) UpdateProduct(product *domain.Product) error {
	query := `
		UPDATE products
		SET
			name = $1,
			category = $2,
			unit = $3,
			price_cents = $4,
			is_active = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{product.Name, product.Category, product.Unit, product.PriceCents, product.IsActive, product.ID, product.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&product.CreatedAt, &product.Version); err != nil {
		return err
	}

	return nil
}
