package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProductLister(ctrl)

	products := []models.ProductDB{
		{ProductID: uuid.New(), Name: "Mountain Bike", Price: 40},
		{ProductID: uuid.New(), Name: "Tent", Price: 25},
	}

	tests := []struct {
		name          string
		mockSetup     func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockSvc.EXPECT().
					List(gomock.Any()).
					Return(products, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name: "empty catalog",
			mockSetup: func() {
				mockSvc.EXPECT().
					List(gomock.Any()).
					Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 0,
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockSvc.EXPECT().
					List(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			w := httptest.NewRecorder()

			NewDashboardHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var respBody DashboardResponse
				err := json.Unmarshal(w.Body.Bytes(), &respBody)
				assert.NoError(t, err)
				assert.NotNil(t, respBody.Products)
				assert.Len(t, respBody.Products, tt.expectedCount)
			}
		})
	}
}

func TestAdminDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProductLister(ctrl)

	products := []models.ProductDB{
		{ProductID: uuid.New(), Name: "Mountain Bike", Price: 40},
	}

	mockSvc.EXPECT().
		List(gomock.Any()).
		Return(products, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()

	NewAdminDashboardHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var respBody AdminDashboardResponse
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	assert.NoError(t, err)
	assert.Len(t, respBody.Products, 1)
	assert.Equal(t, 1, respBody.Total)
}
