package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/services"
)

// ProductDeleter defines the interface that the catalog service must implement.
type ProductDeleter interface {
	Delete(ctx context.Context, productID uuid.UUID) error
}

// DeleteProductResponse represents a successful product deletion response
// swagger:model DeleteProductResponse
type DeleteProductResponse struct {
	// Success message
	// default: Product deleted successfully
	Message string `json:"message"`
}

// NewDeleteProductHandler returns an HTTP handler for deleting a product.
// @Summary Delete a product
// @Description Deletes a product, its stored image file and its cache entry. Requires the admin role.
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} handlers.DeleteProductResponse "Product deleted"
// @Failure 404 {object} handlers.ProductErrorResponse "Product not found"
// @Router /deleteProduct/{id} [get]
// @Security BearerAuth
func NewDeleteProductHandler(svc ProductDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Invalid product ID"})
			return
		}

		if err := svc.Delete(r.Context(), productID); err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Product not found"})
				return
			}
			logger.Log.Errorw("failed to delete product", "productID", productID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteProductResponse{
			Message: "Product deleted successfully",
		})
	}
}
