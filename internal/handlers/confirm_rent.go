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

// Renter defines the interface that the rental service must implement.
type Renter interface {
	Rent(ctx context.Context, userID, productID uuid.UUID) (*models.RentalReceipt, error)
}

// ConfirmRentResponse represents a successful rental response
// swagger:model ConfirmRentResponse
type ConfirmRentResponse struct {
	// Success message
	// default: Product rented successfully
	Message string `json:"message"`

	// The rental receipt
	Receipt *models.RentalReceipt `json:"receipt"`
}

// NewConfirmRentHandler returns an HTTP handler that commits the rental:
// the product price is debited and the ledger row written atomically.
// @Summary Confirm a rental
// @Description Debits the product price from the authenticated user's balance and records the rental. The debit and the ledger row commit together.
// @Tags rental
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} handlers.ConfirmRentResponse "Rental committed"
// @Failure 400 {object} handlers.RentErrorResponse "Insufficient balance"
// @Failure 401 {object} handlers.RentErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.RentErrorResponse "Product not found"
// @Router /confirmRent/{id} [post]
// @Security BearerAuth
func NewConfirmRentHandler(svc Renter) http.HandlerFunc {
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

		receipt, err := svc.Rent(r.Context(), claims.UserID, productID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientBalance):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RentErrorResponse{Error: "Insufficient balance"})
			case errors.Is(err, services.ErrProductNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RentErrorResponse{Error: "Product not found"})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RentErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to rent product", "userID", claims.UserID, "productID", productID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RentErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConfirmRentResponse{
			Message: "Product rented successfully",
			Receipt: receipt,
		})
	}
}
