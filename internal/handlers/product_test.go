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
	"github.com/rentmart/rentmart/internal/models"
	"github.com/rentmart/rentmart/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProductGetter(ctrl)
	productID := uuid.New()
	product := &models.ProductDB{
		ProductID:   productID,
		Name:        "Mountain Bike",
		Description: "Hardtail, size M",
		Price:       40,
	}

	tests := []struct {
		name         string
		url          string
		mockSetup    func()
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			url:  "/product/" + productID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), productID).
					Return(product, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid product ID",
			url:          "/product/not-a-uuid",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid product ID",
		},
		{
			name: "not found",
			url:  "/product/" + productID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), productID).
					Return(nil, services.ErrProductNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Product not found",
		},
		{
			name: "internal error",
			url:  "/product/" + productID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), productID).
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
			router.Get("/product/{id}", NewProductHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var respBody ProductResponse
				err := json.Unmarshal(w.Body.Bytes(), &respBody)
				assert.NoError(t, err)
				assert.Equal(t, productID, respBody.Product.ProductID)
				assert.Equal(t, "Mountain Bike", respBody.Product.Name)
			} else {
				var respBody ProductErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &respBody)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedErr, respBody.Error)
			}
		})
	}
}
