//go:build integration

package repo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/pg"
	"github.com/GlebRadaev/tienda/internal/repo"
	"github.com/GlebRadaev/tienda/internal/service"
)

func newPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("tienda"),
		tcpostgres.WithUsername("tienda"),
		tcpostgres.WithPassword("tienda"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.MaxConns = 20
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.RunMigrations(pool))
	return pool
}

func seed(t *testing.T, pool *pgxpool.Pool, stock int) (tenantID, productID int) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO tenants (name, subscription_status) VALUES ('Pulpería La Esquina', 'ACTIVE') RETURNING id`,
	).Scan(&tenantID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO products (tenant_id, sku, name, price, stock) VALUES ($1, 'GASEOSA-355', 'Gaseosa 355ml', 10, $2) RETURNING id`,
		tenantID, stock,
	).Scan(&productID))
	return tenantID, productID
}

func TestConcurrentSettlementAgainstPostgres(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	tenantID, productID := seed(t, pool, 30)

	txManager := pg.NewTXManager(pool, pg.WithMaxRetries(5))
	repos := repo.New(pg.New(pool), txManager)
	services := service.New(repos, txManager, time.UTC)

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
		unexpected   []error
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := services.SettlementService.Settle(ctx, tenantID, []domain.CartItem{
				{ProductID: productID, Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrInsufficientStock):
				insufficient++
			default:
				unexpected = append(unexpected, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, unexpected)
	assert.Equal(t, 30, succeeded)
	assert.Equal(t, 20, insufficient)

	product, err := repos.ProductRepo.GetByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)

	tenant, err := repos.TenantRepo.GetByID(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, "300.00", tenant.WalletBalance.StringFixed(2))
	assert.Equal(t, int64(0), tenant.CreditScore)

	now := time.Now().UTC()
	report, err := services.FiscalService.GenerateMonthlyReport(ctx, tenantID, int(now.Month()), now.Year())
	require.NoError(t, err)
	assert.Equal(t, "300.00", report.TotalSales.StringFixed(2))
}

func TestReportArchiveKeepsFirstSnapshot(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	tenantID, _ := seed(t, pool, 1)

	repos := repo.New(pg.New(pool), pg.NewTXManager(pool))

	first := &domain.FiscalReportSnapshot{
		TenantID: tenantID, Year: 2025, Month: 3, GeneratedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Report: domain.MonthlyTaxReport{Month: 3, Year: 2025, TotalToPay: decimal.RequireFromString("170")},
	}
	second := *first
	second.Report.TotalToPay = decimal.RequireFromString("999")

	require.NoError(t, repos.ReportRepo.Save(ctx, first))
	require.NoError(t, repos.ReportRepo.Save(ctx, &second))

	exists, err := repos.ReportRepo.Exists(ctx, tenantID, 2025, 3)
	require.NoError(t, err)
	assert.True(t, exists)

	snapshots, err := repos.ReportRepo.ListByTenant(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "170.00", snapshots[0].Report.TotalToPay.StringFixed(2))
}
