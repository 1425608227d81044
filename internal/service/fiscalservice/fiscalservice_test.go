package fiscalservice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tienda/internal/domain"
)

type mocks struct {
	tenantRepo   *MockTenantRepo
	saleRepo     *MockSaleRepo
	purchaseRepo *MockPurchaseRepo
	archiveRepo  *MockArchiveRepo
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		tenantRepo:   NewMockTenantRepo(ctrl),
		saleRepo:     NewMockSaleRepo(ctrl),
		purchaseRepo: NewMockPurchaseRepo(ctrl),
		archiveRepo:  NewMockArchiveRepo(ctrl),
	}
	return New(m.tenantRepo, m.saleRepo, m.purchaseRepo, m.archiveRepo, time.UTC), m
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		sales     domain.SalesAggregate
		purchases domain.PurchasesAggregate
		expected  map[string]string
	}{
		{
			name:      "Sales only",
			sales:     domain.SalesAggregate{Total: d("1150"), Count: 3},
			purchases: domain.PurchasesAggregate{Total: decimal.Zero, Tax: decimal.Zero},
			expected: map[string]string{
				"totalSales":        "1150.00",
				"salesNetasSinIVA":  "1000.00",
				"totalIVACollected": "150.00",
				"ivaNeto":           "150.00",
				"ivaCredito":        "0.00",
				"anticipoIR":        "10.00",
				"imiAlcaldia":       "10.00",
				"totalToPay":        "170.00",
			},
		},
		{
			name:      "Purchases exceed collected IVA",
			sales:     domain.SalesAggregate{Total: d("115"), Count: 1},
			purchases: domain.PurchasesAggregate{Total: d("230"), Tax: d("30")},
			expected: map[string]string{
				"salesNetasSinIVA":  "100.00",
				"totalIVACollected": "15.00",
				"totalPurchases":    "230.00",
				"totalIVAPaid":      "30.00",
				"ivaNeto":           "0.00",
				"ivaCredito":        "15.00",
				"anticipoIR":        "1.00",
				"imiAlcaldia":       "1.00",
				"totalToPay":        "2.00",
			},
		},
		{
			name:      "Empty period",
			sales:     domain.SalesAggregate{Total: decimal.Zero},
			purchases: domain.PurchasesAggregate{Total: decimal.Zero, Tax: decimal.Zero},
			expected: map[string]string{
				"totalSales": "0.00",
				"ivaNeto":    "0.00",
				"ivaCredito": "0.00",
				"totalToPay": "0.00",
			},
		},
		{
			name:      "Rounding happens at each step",
			sales:     domain.SalesAggregate{Total: d("100"), Count: 1},
			purchases: domain.PurchasesAggregate{Total: decimal.Zero, Tax: decimal.Zero},
			expected: map[string]string{
				"salesNetasSinIVA":  "86.96",
				"totalIVACollected": "13.04",
				"anticipoIR":        "0.87",
				"imiAlcaldia":       "0.87",
				"totalToPay":        "14.78",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Calculate(3, 2025, tt.sales, tt.purchases)

			raw, err := json.Marshal(report)
			require.NoError(t, err)
			var fields map[string]any
			require.NoError(t, json.Unmarshal(raw, &fields))

			for key, want := range tt.expected {
				got, err := decimal.NewFromString(fields[key].(string))
				require.NoError(t, err, key)
				assert.Equal(t, want, got.StringFixed(2), key)
			}
			assert.True(t, report.IvaNeto.IsZero() || report.IvaCredito.IsZero())
		})
	}
}

func TestVetSummary(t *testing.T) {
	report := Calculate(3, 2025, domain.SalesAggregate{Total: d("1150")}, domain.PurchasesAggregate{Total: decimal.Zero, Tax: decimal.Zero})

	assert.True(t, strings.HasPrefix(report.VetSummary, "Declaración mensual Marzo 2025"))
	assert.Contains(t, report.VetSummary, "Ventas netas sin IVA: C$ 1000.00")
	assert.Contains(t, report.VetSummary, "IVA cobrado (15%): C$ 150.00")
	assert.Contains(t, report.VetSummary, "TOTAL A PAGAR: C$ 170.00")
}

func TestPeriod(t *testing.T) {
	managua, err := time.LoadLocation("America/Managua")
	require.NoError(t, err)

	start, end := Period(2, 2024, managua)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, managua), start)
	assert.Equal(t, 29, end.Day())
	assert.Equal(t, time.February, end.Month())
	assert.Equal(t, time.March, end.Add(time.Nanosecond).Month())
	assert.Equal(t, "2024-02-01T06:00:00Z", start.UTC().Format(time.RFC3339))
}

func TestGenerateMonthlyReport(t *testing.T) {
	start, end := Period(3, 2025, time.UTC)

	tests := []struct {
		name          string
		month         int
		prepareMock   func(m mocks)
		expectedError error
		expectedTotal string
	}{
		{
			name:  "Report generated",
			month: 3,
			prepareMock: func(m mocks) {
				m.tenantRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Tenant{ID: 1}, nil)
				m.saleRepo.EXPECT().AggregateByTenantAndRange(gomock.Any(), 1, start, end).
					Return(domain.SalesAggregate{Total: d("1150"), Count: 2}, nil)
				m.purchaseRepo.EXPECT().AggregateByTenantAndRangeAndStatus(gomock.Any(), 1, start, end, DeductiblePurchases).
					Return(domain.PurchasesAggregate{Total: decimal.Zero, Tax: decimal.Zero}, nil)
			},
			expectedTotal: "170.00",
		},
		{
			name:  "Unknown tenant",
			month: 3,
			prepareMock: func(m mocks) {
				m.tenantRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrTenantNotFound,
		},
		{
			name:          "Month out of range",
			month:         13,
			prepareMock:   func(m mocks) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:  "Aggregate failure",
			month: 3,
			prepareMock: func(m mocks) {
				m.tenantRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Tenant{ID: 1}, nil)
				m.saleRepo.EXPECT().AggregateByTenantAndRange(gomock.Any(), 1, start, end).
					Return(domain.SalesAggregate{}, errors.New("db error"))
				m.purchaseRepo.EXPECT().AggregateByTenantAndRangeAndStatus(gomock.Any(), 1, start, end, DeductiblePurchases).
					Return(domain.PurchasesAggregate{}, nil).AnyTimes()
			},
			expectedError: domain.ErrTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			report, err := service.GenerateMonthlyReport(context.Background(), 1, tt.month, 2025)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, report)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, report.TotalToPay.StringFixed(2))
			assert.Equal(t, 3, report.Month)
		})
	}
}

func TestGenerateMonthlyReport_Idempotent(t *testing.T) {
	service, m := NewMock(t)
	m.tenantRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Tenant{ID: 1}, nil).Times(2)
	m.saleRepo.EXPECT().AggregateByTenantAndRange(gomock.Any(), 1, gomock.Any(), gomock.Any()).
		Return(domain.SalesAggregate{Total: d("987.65"), Count: 5}, nil).Times(2)
	m.purchaseRepo.EXPECT().AggregateByTenantAndRangeAndStatus(gomock.Any(), 1, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.PurchasesAggregate{Total: d("321.00"), Tax: d("41.87")}, nil).Times(2)

	first, err := service.GenerateMonthlyReport(context.Background(), 1, 6, 2025)
	require.NoError(t, err)
	second, err := service.GenerateMonthlyReport(context.Background(), 1, 6, 2025)
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.Equal(t, string(a), string(b))
}

func TestListArchived(t *testing.T) {
	service, m := NewMock(t)
	m.archiveRepo.EXPECT().ListByTenant(gomock.Any(), 1).Return([]domain.FiscalReportSnapshot{{ID: 1, Month: 2}}, nil)
	m.archiveRepo.EXPECT().ListByTenant(gomock.Any(), 2).Return(nil, errors.New("db error"))

	snapshots, err := service.ListArchived(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, snapshots, 1)

	_, err = service.ListArchived(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrTransaction)
}
