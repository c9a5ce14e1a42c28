package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
)

// ErrProductNotFound is returned when no product matches the given ID.
var ErrProductNotFound = errors.New("product not found")

// ProductReadRepository handles product read operations
type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

// GetByID returns the product with the given ID.
func (r *ProductReadRepository) GetByID(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error) {
	const query = `
		SELECT product_id, name, description, price, image, created_at, updated_at
		FROM products
		WHERE product_id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var product models.ProductDB
	err := r.db.GetContext(ctx, &product, query, productID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, storageErr("get product", err)
	}

	return &product, nil
}

// List returns all products, newest first.
func (r *ProductReadRepository) List(ctx context.Context) ([]models.ProductDB, error) {
	const query = `
		SELECT product_id, name, description, price, image, created_at, updated_at
		FROM products
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var products []models.ProductDB
	err := r.db.SelectContext(ctx, &products, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(products),
		"error", err,
	)

	if err != nil {
		return nil, storageErr("list products", err)
	}

	return products, nil
}

// ProductWriteRepository handles product write operations
type ProductWriteRepository struct {
	db *sqlx.DB
}

func NewProductWriteRepository(db *sqlx.DB) *ProductWriteRepository {
	return &ProductWriteRepository{db: db}
}

// Save inserts a new product and returns its generated ID.
func (r *ProductWriteRepository) Save(ctx context.Context, name, description string, price float64, image *string) (uuid.UUID, error) {
	const query = `
		INSERT INTO products (name, description, price, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING product_id
	`
	args := []any{name, description, price, image}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var productID uuid.UUID
	err := r.db.GetContext(ctx, &productID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", productID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, storageErr("save product", err)
	}

	return productID, nil
}

// Update rewrites a product's fields. Reports ErrProductNotFound when the
// row does not exist.
func (r *ProductWriteRepository) Update(ctx context.Context, productID uuid.UUID, name, description string, price float64, image *string) error {
	const query = `
		UPDATE products
		SET name = $2, description = $3, price = $4, image = $5, updated_at = NOW()
		WHERE product_id = $1
	`
	args := []any{productID, name, description, price, image}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return storageErr("update product", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product row. Reports ErrProductNotFound when the row
// does not exist.
func (r *ProductWriteRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	const query = `DELETE FROM products WHERE product_id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, productID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return storageErr("delete product", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
