package sales

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/dto"
	"github.com/GlebRadaev/tienda/pkg/auth"
)

func NewMock(t *testing.T) (*SalesHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

// cartMatcher compares carts by value, since decimals decoded from JSON
// are not reflect-equal to ones built in code.
type cartMatcher []domain.CartItem

func (c cartMatcher) Matches(x any) bool {
	items, ok := x.([]domain.CartItem)
	if !ok || len(items) != len(c) {
		return false
	}
	for i := range c {
		if items[i].ProductID != c[i].ProductID || items[i].Quantity != c[i].Quantity || !items[i].UnitPrice.Equal(c[i].UnitPrice) {
			return false
		}
	}
	return true
}

func (c cartMatcher) String() string {
	return fmt.Sprintf("cart %v", []domain.CartItem(c))
}

func TestSettleHandler(t *testing.T) {
	handler, service := NewMock(t)
	cart := cartMatcher{{ProductID: 7, Quantity: 2, UnitPrice: decimal.RequireFromString("100.00")}}
	validBody := `{"items":[{"productId":7,"quantity":2,"unitPrice":"100.00"}]}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Sale booked",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Settle(gomock.Any(), 1, cart).Return(&domain.Sale{
					ID:         42,
					Total:      decimal.RequireFromString("200"),
					ItemsCount: 2,
					Status:     domain.SaleCompleted,
					Date:       time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC),
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"items":[`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Empty cart",
			body:          `{"items":[]}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "items",
		},
		{
			name:          "Price with fractions of a cent",
			body:          `{"items":[{"productId":7,"quantity":1,"unitPrice":"1.001"}]}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "unitPrice",
		},
		{
			name: "Insufficient stock",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Settle(gomock.Any(), 1, cart).Return(nil, fmt.Errorf("%w: product 7", domain.ErrInsufficientStock))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "insufficient stock",
		},
		{
			name: "Product not found",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Settle(gomock.Any(), 1, cart).Return(nil, domain.ErrProductNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Transaction failure",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Settle(gomock.Any(), 1, cart).Return(nil, domain.ErrTransaction)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.TenantIDKey, 1))
			w := httptest.NewRecorder()

			handler.Settle(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.SaleResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 42, body.ID)
				assert.Equal(t, "200.00", body.Total)
			}
		})
	}
}
