package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
)

// ProductLister defines the interface that the catalog service must implement.
type ProductLister interface {
	List(ctx context.Context) ([]models.ProductDB, error)
}

// DashboardResponse represents the product listing for authenticated users
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Products available for rent
	Products []models.ProductDB `json:"products"`
}

// DashboardErrorResponse represents an error response for the dashboard
// swagger:model DashboardErrorResponse
type DashboardErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewDashboardHandler returns an HTTP handler listing all products.
// @Summary Product dashboard
// @Description Lists all products available for rent
// @Tags catalog
// @Produce json
// @Success 200 {object} handlers.DashboardResponse "Product list"
// @Failure 500 {object} handlers.DashboardErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list products", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DashboardErrorResponse{Error: "Internal server error"})
			return
		}

		if products == nil {
			products = []models.ProductDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DashboardResponse{Products: products})
	}
}
