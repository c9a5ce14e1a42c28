package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
)

// AdminDashboardResponse represents the product listing for administrators
// swagger:model AdminDashboardResponse
type AdminDashboardResponse struct {
	// Products in the catalog
	Products []models.ProductDB `json:"products"`

	// Total number of products
	// default: 0
	Total int `json:"total"`
}

// NewAdminDashboardHandler returns an HTTP handler listing all products for
// the admin view.
// @Summary Admin product dashboard
// @Description Lists all catalog products with totals. Requires the admin role.
// @Tags catalog
// @Produce json
// @Success 200 {object} handlers.AdminDashboardResponse "Product list"
// @Failure 403 {object} handlers.DashboardErrorResponse "Admin access required"
// @Failure 500 {object} handlers.DashboardErrorResponse "Internal server error"
// @Router /admin [get]
// @Security BearerAuth
func NewAdminDashboardHandler(svc ProductLister) http.HandlerFunc {
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
		json.NewEncoder(w).Encode(AdminDashboardResponse{
			Products: products,
			Total:    len(products),
		})
	}
}
