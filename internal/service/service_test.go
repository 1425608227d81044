package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/repo"
	"github.com/GlebRadaev/tienda/internal/repo/memory"
	"github.com/GlebRadaev/tienda/internal/service/fiscalservice"
	"github.com/GlebRadaev/tienda/internal/service/inventoryservice"
	"github.com/GlebRadaev/tienda/internal/service/settlementservice"
)

func TestNew(t *testing.T) {
	store := memory.NewStore()
	services := New(repo.NewInMemory(store), store, time.UTC)

	assert.IsType(t, &settlementservice.Service{}, services.SettlementService)
	assert.IsType(t, &fiscalservice.Service{}, services.FiscalService)
	assert.IsType(t, &inventoryservice.Service{}, services.InventoryService)
}

func TestServicesShareStorage(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.PutTenant(domain.Tenant{ID: 1, Name: "Pulpería La Esquina", SubscriptionStatus: domain.SubscriptionActive})
	store.PutProduct(domain.Product{ID: 7, TenantID: 1, Price: decimal.RequireFromString("115"), Stock: 5})

	services := New(repo.NewInMemory(store), store, time.UTC)

	_, err := services.InventoryService.Restock(ctx, 1, 7, 5)
	require.NoError(t, err)

	sale, err := services.SettlementService.Settle(ctx, 1, []domain.CartItem{
		{ProductID: 7, Quantity: 10, UnitPrice: decimal.RequireFromString("115")},
	})
	require.NoError(t, err)

	tenant, err := services.SettlementService.Account(ctx, 1)
	require.NoError(t, err)
	assert.True(t, tenant.WalletBalance.Equal(decimal.RequireFromString("1150")))

	date := sale.Date.In(time.UTC)
	report, err := services.FiscalService.GenerateMonthlyReport(ctx, 1, int(date.Month()), date.Year())
	require.NoError(t, err)
	assert.Equal(t, "1000.00", report.SalesNetasSinIVA.StringFixed(2))
	assert.Equal(t, "150.00", report.TotalIVACollected.StringFixed(2))
}
