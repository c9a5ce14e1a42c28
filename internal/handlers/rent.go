package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/middlewares"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/rentmart/rentmart/internal/services"
)

// BalanceGetter defines the interface that the wallet service must implement.
type BalanceGetter interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (float64, error)
}

// RentConfirmationResponse represents the rental confirmation data
// swagger:model RentConfirmationResponse
type RentConfirmationResponse struct {
	// The product to rent
	Product *models.ProductDB `json:"product"`

	// The user's current balance
	Balance float64 `json:"balance"`

	// Whether the balance covers the price right now. The debit re-checks
	// this at confirmation time.
	Affordable bool `json:"affordable"`
}

// RentErrorResponse represents an error response for the rental flow
// swagger:model RentErrorResponse
type RentErrorResponse struct {
	// Error message
	// default: Insufficient balance
	Error string `json:"error"`
}

// NewRentHandler returns an HTTP handler for the rental confirmation step:
// the product and the user's balance side by side before committing.
// @Summary Rental confirmation data
// @Description Returns the product and the authenticated user's balance ahead of confirmation
// @Tags rental
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} handlers.RentConfirmationResponse "Confirmation data"
// @Failure 401 {object} handlers.RentErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.RentErrorResponse "Product not found"
// @Router /rent/{id} [get]
// @Security BearerAuth
func NewRentHandler(products ProductGetter, wallet BalanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RentErrorResponse{Error: "Unauthorized"})
			return
		}

		productID, err := productIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RentErrorResponse{Error: "Invalid product ID"})
			return
		}

		product, err := products.Get(r.Context(), productID)
		if err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RentErrorResponse{Error: "Product not found"})
				return
			}
			logger.Log.Errorw("failed to get product", "productID", productID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RentErrorResponse{Error: "Internal server error"})
			return
		}

		balance, err := wallet.GetBalance(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RentErrorResponse{Error: "User not found"})
				return
			}
			logger.Log.Errorw("failed to get balance", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RentErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RentConfirmationResponse{
			Product:    product,
			Balance:    balance,
			Affordable: balance >= product.Price,
		})
	}
}
