package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/rentmart/rentmart/internal/services"
)

// ProductGetter defines the interface that the catalog service must implement.
type ProductGetter interface {
	Get(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error)
}

// ProductResponse represents a single product
// swagger:model ProductResponse
type ProductResponse struct {
	// The product
	Product *models.ProductDB `json:"product"`
}

// ProductErrorResponse represents an error response for product lookup
// swagger:model ProductErrorResponse
type ProductErrorResponse struct {
	// Error message
	// default: Product not found
	Error string `json:"error"`
}

// NewProductHandler returns an HTTP handler for viewing one product.
// @Summary View a product
// @Description Returns a single product by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} handlers.ProductResponse "The product"
// @Failure 400 {object} handlers.ProductErrorResponse "Invalid product ID"
// @Failure 404 {object} handlers.ProductErrorResponse "Product not found"
// @Router /product/{id} [get]
func NewProductHandler(svc ProductGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Invalid product ID"})
			return
		}

		product, err := svc.Get(r.Context(), productID)
		if err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Product not found"})
				return
			}
			logger.Log.Errorw("failed to get product", "productID", productID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProductResponse{Product: product})
	}
}
