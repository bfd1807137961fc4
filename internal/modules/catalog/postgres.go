package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateProduct(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, price, stock, ratings, num_of_reviews)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.Ratings, p.NumOfReviews)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetProductByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	p := &Product{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, stock, ratings, num_of_reviews, created_at, updated_at
		FROM products WHERE id=$1`, uid).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.Ratings, &p.NumOfReviews, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Reviews, err = r.listReviews(ctx, uid)
	return p, err
}

func (r *postgresRepo) ListProducts(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, stock, ratings, num_of_reviews, created_at, updated_at
		FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.Ratings, &p.NumOfReviews, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE products SET stock=$1, updated_at=$2 WHERE id=$3`,
		stock, time.Now(), id)
	return err
}

// UpdateReviews rewrites the review rows and the denormalised aggregates
// inside a single transaction.
func (r *postgresRepo) UpdateReviews(ctx context.Context, p *Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM product_reviews WHERE product_id=$1`, p.ID); err != nil {
		return fmt.Errorf("clear reviews: %w", err)
	}
	for _, rev := range p.Reviews {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO product_reviews (id, product_id, user_id, name, rating, comment)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			rev.ID, p.ID, rev.UserID, rev.Name, rev.Rating, rev.Comment); err != nil {
			return fmt.Errorf("insert review: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE products SET ratings=$1, num_of_reviews=$2, updated_at=$3 WHERE id=$4`,
		p.Ratings, p.NumOfReviews, time.Now(), p.ID); err != nil {
		return fmt.Errorf("update product aggregates: %w", err)
	}
	return tx.Commit()
}

func (r *postgresRepo) listReviews(ctx context.Context, productID uuid.UUID) ([]*Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, rating, comment
		FROM product_reviews WHERE product_id=$1`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var reviews []*Review
	for rows.Next() {
		rev := &Review{}
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.Name, &rev.Rating, &rev.Comment); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
