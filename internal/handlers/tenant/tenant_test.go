package tenant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/dto"
	"github.com/GlebRadaev/tienda/pkg/auth"
)

func NewMock(t *testing.T) (*TenantHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.TenantIDKey, 1)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().Account(ctx, 1).Return(&domain.Tenant{
					ID:            1,
					WalletBalance: decimal.RequireFromString("1500.2"),
					CreditScore:   15,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{WalletBalance: "1500.20", CreditScore: 15},
		},
		{
			name: "Tenant not found",
			prepareMock: func() {
				service.EXPECT().Account(ctx, 1).Return(nil, domain.ErrTenantNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().Account(ctx, 1).Return(nil, domain.ErrTransaction)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/tenant/balance", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetBalanceHandler_NoTenantInContext(t *testing.T) {
	handler, _ := NewMock(t)
	r := httptest.NewRequest(http.MethodGet, "/api/tenant/balance", nil)
	w := httptest.NewRecorder()

	handler.GetBalance(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
