package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/jwt"
	"github.com/rentmart/rentmart/internal/middlewares"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHistoryLister(ctrl)
	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Role: models.RoleUser}

	transactions := []models.TransactionDB{
		{TransactionID: uuid.New(), UserID: userID, Amount: -40, Kind: models.TransactionKindRental},
		{TransactionID: uuid.New(), UserID: userID, Amount: 100, Kind: models.TransactionKindTopUp},
	}

	tests := []struct {
		name          string
		claims        *jwt.Claims
		mockSetup     func()
		expectedCode  int
		expectedCount int
	}{
		{
			name:   "success",
			claims: claims,
			mockSetup: func() {
				mockSvc.EXPECT().
					History(gomock.Any(), userID).
					Return(transactions, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name:   "empty history",
			claims: claims,
			mockSetup: func() {
				mockSvc.EXPECT().
					History(gomock.Any(), userID).
					Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 0,
		},
		{
			name:         "no claims",
			claims:       nil,
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "internal error",
			claims: claims,
			mockSetup: func() {
				mockSvc.EXPECT().
					History(gomock.Any(), userID).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/history", nil)
			if tt.claims != nil {
				req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), tt.claims))
			}
			w := httptest.NewRecorder()

			handler := NewHistoryHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var respBody HistoryResponse
				err := json.Unmarshal(w.Body.Bytes(), &respBody)
				assert.NoError(t, err)
				assert.NotNil(t, respBody.Transactions)
				assert.Len(t, respBody.Transactions, tt.expectedCount)
			}
		})
	}
}
