package services

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/rentmart/rentmart/internal/repositories"
)

var (
	// ErrProductNotFound is returned when no product matches the given ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProduct is returned when required product fields are missing.
	ErrInvalidProduct = errors.New("product name and description are required")
	// ErrInvalidPrice is returned when the price is not a positive finite number.
	ErrInvalidPrice = errors.New("price must be a positive number")
)

// ProductReader defines read operations for products.
type ProductReader interface {
	GetByID(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error)
	List(ctx context.Context) ([]models.ProductDB, error)
}

// ProductWriter defines write operations for products.
type ProductWriter interface {
	Save(ctx context.Context, name, description string, price float64, image *string) (uuid.UUID, error)
	Update(ctx context.Context, productID uuid.UUID, name, description string, price float64, image *string) error
	Delete(ctx context.Context, productID uuid.UUID) error
}

// ProductCache caches product rows.
type ProductCache interface {
	Get(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error)
	Set(ctx context.Context, product *models.ProductDB) error
	Delete(ctx context.Context, productID uuid.UUID) error
}

// ImageRemover deletes stored image files that are no longer referenced.
type ImageRemover interface {
	Remove(name string) error
}

// ProductService handles the product catalog.
type ProductService struct {
	reader ProductReader
	writer ProductWriter
	cache  ProductCache
	images ImageRemover
}

// NewProductService creates a new ProductService.
func NewProductService(reader ProductReader, writer ProductWriter, cache ProductCache, images ImageRemover) *ProductService {
	return &ProductService{
		reader: reader,
		writer: writer,
		cache:  cache,
		images: images,
	}
}

func validateProduct(name, description string, price float64) error {
	if name == "" || description == "" {
		return ErrInvalidProduct
	}
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrInvalidPrice
	}
	return nil
}

// Create validates and stores a new product.
func (svc *ProductService) Create(ctx context.Context, name, description string, price float64, image *string) (uuid.UUID, error) {
	if err := validateProduct(name, description, price); err != nil {
		return uuid.Nil, err
	}

	productID, err := svc.writer.Save(ctx, name, description, price, image)
	if err != nil {
		logger.Log.Errorw("failed to save product", "name", name, "error", err)
		return uuid.Nil, err
	}

	return productID, nil
}

// Get returns a product by ID, serving from the cache when possible.
func (svc *ProductService) Get(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, productID)
		if err != nil {
			logger.Log.Warnw("product cache read failed", "productID", productID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	product, err := svc.reader.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Log.Errorw("failed to get product", "productID", productID, "error", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, product); err != nil {
			logger.Log.Warnw("product cache write failed", "productID", productID, "error", err)
		}
	}

	return product, nil
}

// List returns all products.
func (svc *ProductService) List(ctx context.Context) ([]models.ProductDB, error) {
	products, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list products", "error", err)
		return nil, err
	}
	return products, nil
}

// Update validates and rewrites a product. When a new image replaces an old
// one, the previously stored file is deleted so orphaned uploads do not
// accumulate. A nil image keeps the current one.
func (svc *ProductService) Update(ctx context.Context, productID uuid.UUID, name, description string, price float64, newImage *string) error {
	if err := validateProduct(name, description, price); err != nil {
		return err
	}

	existing, err := svc.reader.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	image := existing.Image
	if newImage != nil {
		image = newImage
	}

	if err := svc.writer.Update(ctx, productID, name, description, price, image); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return ErrProductNotFound
		}
		logger.Log.Errorw("failed to update product", "productID", productID, "error", err)
		return err
	}

	if newImage != nil && existing.Image != nil && *existing.Image != *newImage {
		if err := svc.images.Remove(*existing.Image); err != nil {
			logger.Log.Warnw("failed to remove replaced image", "image", *existing.Image, "error", err)
		}
	}

	svc.invalidate(ctx, productID)
	return nil
}

// Delete removes a product, its stored image file and its cache entry.
func (svc *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	existing, err := svc.reader.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := svc.writer.Delete(ctx, productID); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return ErrProductNotFound
		}
		logger.Log.Errorw("failed to delete product", "productID", productID, "error", err)
		return err
	}

	if existing.Image != nil {
		if err := svc.images.Remove(*existing.Image); err != nil {
			logger.Log.Warnw("failed to remove image of deleted product", "image", *existing.Image, "error", err)
		}
	}

	svc.invalidate(ctx, productID)
	return nil
}

func (svc *ProductService) invalidate(ctx context.Context, productID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Delete(ctx, productID); err != nil {
		logger.Log.Warnw("product cache invalidation failed", "productID", productID, "error", err)
	}
}
