package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/tienda/internal/domain"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.PutTenant(domain.Tenant{ID: 1, Name: "Pulpería", WalletBalance: decimal.Zero, SubscriptionStatus: domain.SubscriptionActive})
	s.PutTenant(domain.Tenant{ID: 2, Name: "Ferretería", WalletBalance: decimal.Zero, SubscriptionStatus: domain.SubscriptionCanceled})
	s.PutTenant(domain.Tenant{ID: 3, Name: "Farmacia", WalletBalance: decimal.Zero, SubscriptionStatus: domain.SubscriptionTrialing})
	s.PutProduct(domain.Product{ID: 10, TenantID: 1, SKU: "ARROZ", Price: decimal.RequireFromString("35.00"), Stock: 5})
	return s
}

func TestStore_BeginRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)
	boom := errors.New("boom")

	err := s.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.Products().DecrementIfSufficient(ctx, 10, 3)
		require.NoError(t, err)
		require.True(t, ok)
		_, err = s.SalesRepo().Insert(ctx, &domain.Sale{TenantID: 1, Total: decimal.RequireFromString("105.00"), Status: domain.SaleCompleted})
		require.NoError(t, err)
		require.NoError(t, s.Tenants().AtomicIncrement(ctx, 1, decimal.RequireFromString("105.00"), 1))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	p, _ := s.Products().GetByID(ctx, 10)
	assert.Equal(t, 5, p.Stock)
	tenant, _ := s.Tenants().GetByID(ctx, 1)
	assert.True(t, tenant.WalletBalance.IsZero())
	assert.Empty(t, s.Sales())
}

func TestStore_NestedBeginJoins(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	err := s.Begin(ctx, func(ctx context.Context) error {
		return s.Begin(ctx, func(ctx context.Context) error {
			_, err := s.Products().Increment(ctx, 10, 2)
			return err
		})
	})

	assert.NoError(t, err)
	p, _ := s.Products().GetByID(ctx, 10)
	assert.Equal(t, 7, p.Stock)
}

func TestProductRepo_DecrementIfSufficient(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	ok, err := s.Products().DecrementIfSufficient(ctx, 10, 6)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Products().DecrementIfSufficient(ctx, 10, 5)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = s.Products().DecrementIfSufficient(ctx, 99, 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestTenantRepo_ListActiveIDs(t *testing.T) {
	ids, err := seeded(t).Tenants().ListActiveIDs(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)
}

func TestAggregates(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	for _, sale := range []domain.Sale{
		{TenantID: 1, Total: decimal.RequireFromString("1000.00"), Status: domain.SaleCompleted, Date: start},
		{TenantID: 1, Total: decimal.RequireFromString("150.00"), Status: domain.SaleCompleted, Date: end},
		{TenantID: 1, Total: decimal.RequireFromString("99.00"), Status: domain.SaleVoid, Date: start},
		{TenantID: 1, Total: decimal.RequireFromString("77.00"), Status: domain.SaleCompleted, Date: end.Add(time.Nanosecond)},
		{TenantID: 3, Total: decimal.RequireFromString("500.00"), Status: domain.SaleCompleted, Date: start},
	} {
		sale := sale
		_, err := s.SalesRepo().Insert(ctx, &sale)
		require.NoError(t, err)
	}
	s.PutPurchase(domain.Purchase{TenantID: 1, Total: decimal.RequireFromString("115.00"), Tax: decimal.RequireFromString("15.00"), Status: domain.PurchaseCompleted, Date: start})
	s.PutPurchase(domain.Purchase{TenantID: 1, Total: decimal.RequireFromString("230.00"), Tax: decimal.RequireFromString("30.00"), Status: domain.PurchasePendingPayment, Date: end})
	s.PutPurchase(domain.Purchase{TenantID: 1, Total: decimal.RequireFromString("46.00"), Tax: decimal.RequireFromString("6.00"), Status: domain.PurchaseCancelled, Date: start})

	sales, err := s.SalesRepo().AggregateByTenantAndRange(ctx, 1, start, end)
	assert.NoError(t, err)
	assert.Equal(t, "1150.00", sales.Total.StringFixed(2))
	assert.Equal(t, 2, sales.Count)

	purchases, err := s.Purchases().AggregateByTenantAndRangeAndStatus(ctx, 1, start, end,
		[]domain.PurchaseStatus{domain.PurchaseCompleted, domain.PurchasePendingPayment})
	assert.NoError(t, err)
	assert.Equal(t, "345.00", purchases.Total.StringFixed(2))
	assert.Equal(t, "45.00", purchases.Tax.StringFixed(2))
}

func TestReportRepo_SaveKeepsFirstSnapshot(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)
	first := &domain.FiscalReportSnapshot{TenantID: 1, Year: 2025, Month: 2, Report: domain.MonthlyTaxReport{VetSummary: "first"}}
	second := &domain.FiscalReportSnapshot{TenantID: 1, Year: 2025, Month: 2, Report: domain.MonthlyTaxReport{VetSummary: "second"}}
	older := &domain.FiscalReportSnapshot{TenantID: 1, Year: 2025, Month: 1}

	require.NoError(t, s.Reports().Save(ctx, first))
	require.NoError(t, s.Reports().Save(ctx, second))
	require.NoError(t, s.Reports().Save(ctx, older))

	exists, err := s.Reports().Exists(ctx, 1, 2025, 2)
	assert.NoError(t, err)
	assert.True(t, exists)

	list, err := s.Reports().ListByTenant(ctx, 1)
	assert.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Report.VetSummary)
	assert.Equal(t, 1, list[1].Month)
}
