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

// ProductUpdater defines the interface that the catalog service must implement.
type ProductUpdater interface {
	Update(ctx context.Context, productID uuid.UUID, name, description string, price float64, image *string) error
}

// EditProductResponse represents a successful product update response
// swagger:model EditProductResponse
type EditProductResponse struct {
	// Success message
	// default: Product updated successfully
	Message string `json:"message"`
}

// NewEditProductFormHandler returns the current product for the edit form.
// @Summary Product edit form
// @Description Returns the product to pre-fill the edit form. Requires the admin role.
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} handlers.ProductResponse "The product"
// @Failure 404 {object} handlers.ProductErrorResponse "Product not found"
// @Router /editProduct/{id} [get]
// @Security BearerAuth
func NewEditProductFormHandler(svc ProductGetter) http.HandlerFunc {
	return NewProductHandler(svc)
}

// NewEditProductHandler returns an HTTP handler for updating a product. A
// newly uploaded image replaces the stored one; omitting the image keeps it.
// @Summary Edit a product
// @Description Updates a product from a multipart form with an optional replacement image. Requires the admin role.
// @Tags catalog
// @Accept mpfd
// @Produce json
// @Param id path string true "Product ID"
// @Param name formData string true "Product name"
// @Param description formData string true "Product description"
// @Param price formData number true "Rental price, positive"
// @Param image formData file false "Replacement product image"
// @Success 200 {object} handlers.EditProductResponse "Product updated"
// @Failure 400 {object} handlers.AddProductErrorResponse "Invalid form data"
// @Failure 404 {object} handlers.ProductErrorResponse "Product not found"
// @Router /editProduct/{id} [post]
// @Security BearerAuth
func NewEditProductHandler(svc ProductUpdater, images ImageSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Invalid product ID"})
			return
		}

		form, clientMsg, err := parseProductForm(r, images)
		if err != nil {
			logger.Log.Errorw("failed to store uploaded image", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AddProductErrorResponse{Error: "Internal server error"})
			return
		}
		if clientMsg != "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddProductErrorResponse{Error: clientMsg})
			return
		}

		err = svc.Update(r.Context(), productID, form.name, form.description, form.price, form.image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProductErrorResponse{Error: "Product not found"})
			case errors.Is(err, services.ErrInvalidProduct), errors.Is(err, services.ErrInvalidPrice):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddProductErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("failed to update product", "productID", productID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddProductErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EditProductResponse{
			Message: "Product updated successfully",
		})
	}
}
