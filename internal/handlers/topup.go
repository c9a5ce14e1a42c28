package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/middlewares"
	"github.com/rentmart/rentmart/internal/services"
)

// TopUpper defines the interface that the wallet service must implement.
type TopUpper interface {
	TopUp(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
}

// TopUpRequest represents the top-up payload. Card details are validated for
// presence only and never stored or charged.
// swagger:model TopUpRequest
type TopUpRequest struct {
	// Amount to add to the balance, positive
	// example: 500
	Amount float64 `json:"amount"`

	// Card type
	// example: visa
	CardType string `json:"card_type"`

	// Card number
	// example: 4111111111111111
	CardNumber string `json:"card_number"`

	// Card expiry date
	// example: 12/28
	ExpiryDate string `json:"expiry_date"`

	// Card verification value
	// example: 123
	CVV string `json:"cvv"`
}

// TopUpResponse represents a successful top-up response
// swagger:model TopUpResponse
type TopUpResponse struct {
	// Success message
	// default: Balance topped up successfully
	Message string `json:"message"`

	// Balance after the top-up
	NewBalance float64 `json:"new_balance"`
}

// TopUpErrorResponse represents an error response for top-up
// swagger:model TopUpErrorResponse
type TopUpErrorResponse struct {
	// Error message
	// default: Amount must be a positive number
	Error string `json:"error"`
}

// NewTopUpHandler returns an HTTP handler for adding funds to the
// authenticated user's balance.
// @Summary Top up balance
// @Description Adds funds to the authenticated user's balance. Card details are checked for presence only, no payment processor is involved.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.TopUpRequest true "Top-up details"
// @Success 200 {object} handlers.TopUpResponse "Balance updated"
// @Failure 400 {object} handlers.TopUpErrorResponse "Invalid payload"
// @Failure 401 {object} handlers.TopUpErrorResponse "Unauthorized"
// @Router /topup [post]
// @Security BearerAuth
func NewTopUpHandler(svc TopUpper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "Unauthorized"})
			return
		}

		var req TopUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "Invalid request payload"})
			return
		}

		if strings.TrimSpace(req.CardType) == "" ||
			strings.TrimSpace(req.CardNumber) == "" ||
			strings.TrimSpace(req.ExpiryDate) == "" ||
			strings.TrimSpace(req.CVV) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "All card details are required"})
			return
		}

		newBalance, err := svc.TopUp(r.Context(), claims.UserID, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "Amount must be a positive number"})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to top up balance", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TopUpErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TopUpResponse{
			Message:    "Balance topped up successfully",
			NewBalance: newBalance,
		})
	}
}
