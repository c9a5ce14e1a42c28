package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	mockRevocations := NewMockRevocationChecker(ctrl)

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Role: "user"}

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		wantClaims   bool
	}{
		{
			name: "valid token",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("JWT_TOKEN", nil)
				mockRevocations.EXPECT().
					IsRevoked(gomock.Any(), "JWT_TOKEN").
					Return(false, nil)
				mockTokener.EXPECT().
					GetClaims(gomock.Any(), "JWT_TOKEN").
					Return(claims, nil)
			},
			expectedCode: http.StatusOK,
			wantClaims:   true,
		},
		{
			name: "missing token",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "revoked token",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("JWT_TOKEN", nil)
				mockRevocations.EXPECT().
					IsRevoked(gomock.Any(), "JWT_TOKEN").
					Return(true, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "revocation check failure",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("JWT_TOKEN", nil)
				mockRevocations.EXPECT().
					IsRevoked(gomock.Any(), "JWT_TOKEN").
					Return(false, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "invalid token",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("JWT_TOKEN", nil)
				mockRevocations.EXPECT().
					IsRevoked(gomock.Any(), "JWT_TOKEN").
					Return(false, nil)
				mockTokener.EXPECT().
					GetClaims(gomock.Any(), "JWT_TOKEN").
					Return(nil, errors.New("token is malformed"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var gotClaims *jwt.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims = GetClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			w := httptest.NewRecorder()

			AuthMiddleware(mockTokener, mockRevocations)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.wantClaims {
				assert.Equal(t, claims, gotClaims)
			} else {
				assert.Nil(t, gotClaims)
			}
		})
	}
}

func TestAuthMiddlewareNilRevocationChecker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	claims := &jwt.Claims{UserID: uuid.New(), Role: "user"}

	mockTokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("JWT_TOKEN", nil)
	mockTokener.EXPECT().
		GetClaims(gomock.Any(), "JWT_TOKEN").
		Return(claims, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()

	AuthMiddleware(mockTokener, nil)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
