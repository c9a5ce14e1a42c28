package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/jwt"
	"github.com/rentmart/rentmart/internal/middlewares"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/rentmart/rentmart/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestConfirmRentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRenter(ctrl)
	userID := uuid.New()
	productID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Role: models.RoleUser}

	receipt := &models.RentalReceipt{
		ProductID:  productID,
		Amount:     40,
		NewBalance: 60,
	}

	tests := []struct {
		name         string
		url          string
		claims       *jwt.Claims
		mockSetup    func()
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "success",
			url:    "/confirmRent/" + productID.String(),
			claims: claims,
			mockSetup: func() {
				mockSvc.EXPECT().
					Rent(gomock.Any(), userID, productID).
					Return(receipt, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "no claims",
			url:          "/confirmRent/" + productID.String(),
			claims:       nil,
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
		{
			name:         "invalid product ID",
			url:          "/confirmRent/not-a-uuid",
			claims:       claims,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid product ID",
		},
		{
			name:   "insufficient balance",
			url:    "/confirmRent/" + productID.String(),
			claims: claims,
			mockSetup: func() {
				mockSvc.EXPECT().
					Rent(gomock.Any(), userID, productID).
					Return(nil, services.ErrInsufficientBalance)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Insufficient balance",
		},
		{
			name:   "product not found",
			url:    "/confirmRent/" + productID.String(),
			claims: claims,
			mockSetup: func() {
				mockSvc.EXPECT().
					Rent(gomock.Any(), userID, productID).
					Return(nil, services.ErrProductNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Product not found",
		},
		{
			name:   "internal error",
			url:    "/confirmRent/" + productID.String(),
			claims: claims,
			mockSetup: func() {
				mockSvc.EXPECT().
					Rent(gomock.Any(), userID, productID).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			router := chi.NewRouter()
			router.Post("/confirmRent/{id}", NewConfirmRentHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, tt.url, nil)
			if tt.claims != nil {
				req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), tt.claims))
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var respBody ConfirmRentResponse
				err := json.Unmarshal(w.Body.Bytes(), &respBody)
				assert.NoError(t, err)
				assert.Equal(t, "Product rented successfully", respBody.Message)
				assert.Equal(t, productID, respBody.Receipt.ProductID)
				assert.Equal(t, 40.0, respBody.Receipt.Amount)
				assert.Equal(t, 60.0, respBody.Receipt.NewBalance)
			} else {
				var respBody RentErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &respBody)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedErr, respBody.Error)
			}
		})
	}
}
