package closing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tienda/internal/config"
	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/repo/memory"
	"github.com/GlebRadaev/tienda/internal/service/fiscalservice"
)

var aprilTenth = time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)

type mocks struct {
	tenants    *MockTenantLister
	reports    *MockReportStore
	generator  *MockReportGenerator
	workerPool *MockWorkerPoolI
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		tenants:    NewMockTenantLister(ctrl),
		reports:    NewMockReportStore(ctrl),
		generator:  NewMockReportGenerator(ctrl),
		workerPool: NewMockWorkerPoolI(ctrl),
	}
	m.workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task Task) error { return task() }).
		AnyTimes()

	service := &Service{
		tenants:        m.tenants,
		reports:        m.reports,
		generator:      m.generator,
		workerPool:     m.workerPool,
		location:       time.UTC,
		updateInterval: time.Hour,
		now:            func() time.Time { return aprilTenth },
	}
	return service, m
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		now   time.Time
		year  int
		month int
	}{
		{time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), 2024, 12},
		{time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC), 2025, 2},
		{time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 2024, 11},
	}
	for _, tt := range tests {
		t.Run(tt.now.Format(time.DateOnly), func(t *testing.T) {
			year, month := PreviousPeriod(tt.now)
			assert.Equal(t, tt.year, year)
			assert.Equal(t, tt.month, month)
		})
	}
}

func TestService_closePeriod(t *testing.T) {
	report := &domain.MonthlyTaxReport{Month: 3, Year: 2025, TotalToPay: decimal.RequireFromString("170.00")}

	tests := []struct {
		name        string
		prepareMock func(m mocks)
		expectedErr bool
	}{
		{
			name: "Archives tenants not yet closed",
			prepareMock: func(m mocks) {
				m.tenants.EXPECT().ListActiveIDs(gomock.Any()).Return([]int{1, 2}, nil)
				m.reports.EXPECT().Exists(gomock.Any(), 1, 2025, 3).Return(false, nil)
				m.reports.EXPECT().Exists(gomock.Any(), 2, 2025, 3).Return(true, nil)
				m.generator.EXPECT().GenerateMonthlyReport(gomock.Any(), 1, 3, 2025).Return(report, nil)
				m.reports.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *domain.FiscalReportSnapshot) error {
					assert.Equal(t, 1, s.TenantID)
					assert.Equal(t, 2025, s.Year)
					assert.Equal(t, 3, s.Month)
					assert.Equal(t, aprilTenth, s.GeneratedAt)
					return nil
				})
			},
		},
		{
			name: "Tenant removed meanwhile",
			prepareMock: func(m mocks) {
				m.tenants.EXPECT().ListActiveIDs(gomock.Any()).Return([]int{1}, nil)
				m.reports.EXPECT().Exists(gomock.Any(), 1, 2025, 3).Return(false, nil)
				m.generator.EXPECT().GenerateMonthlyReport(gomock.Any(), 1, 3, 2025).Return(nil, domain.ErrTenantNotFound)
			},
		},
		{
			name: "Listing tenants fails",
			prepareMock: func(m mocks) {
				m.tenants.EXPECT().ListActiveIDs(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: true,
		},
		{
			name: "Saving fails",
			prepareMock: func(m mocks) {
				m.tenants.EXPECT().ListActiveIDs(gomock.Any()).Return([]int{1}, nil)
				m.reports.EXPECT().Exists(gomock.Any(), 1, 2025, 3).Return(false, nil)
				m.generator.EXPECT().GenerateMonthlyReport(gomock.Any(), 1, 3, 2025).Return(report, nil)
				m.reports.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.closePeriod(context.Background())

			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_closePeriodSkipsInFlight(t *testing.T) {
	service, m := NewMock(t)
	m.tenants.EXPECT().ListActiveIDs(gomock.Any()).Return([]int{1}, nil)
	service.inFlight.Store(periodKey{tenantID: 1, year: 2025, month: 3}, struct{}{})

	assert.NoError(t, service.closePeriod(context.Background()))
}

func TestService_ArchivesWithStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.PutTenant(domain.Tenant{ID: 1, WalletBalance: decimal.Zero, SubscriptionStatus: domain.SubscriptionActive})
	store.PutTenant(domain.Tenant{ID: 2, WalletBalance: decimal.Zero, SubscriptionStatus: domain.SubscriptionCanceled})
	_, err := store.SalesRepo().Insert(ctx, &domain.Sale{
		TenantID: 1,
		Total:    decimal.RequireFromString("1150.00"),
		Status:   domain.SaleCompleted,
		Date:     time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	generator := fiscalservice.New(store.Tenants(), store.SalesRepo(), store.Purchases(), store.Reports(), time.UTC)
	cfg := &config.Config{ClosingWorkers: 2, ClosingInterval: time.Hour}
	service := New(cfg, time.UTC, store.Tenants(), store.Reports(), generator)
	service.now = func() time.Time { return aprilTenth }
	defer service.workerPool.Close()

	require.NoError(t, service.closePeriod(ctx))
	require.NoError(t, service.closePeriod(ctx))

	archived, err := store.Reports().ListByTenant(ctx, 1)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, 3, archived[0].Month)
	assert.Equal(t, "170.00", archived[0].Report.TotalToPay.StringFixed(2))

	skipped, err := store.Reports().Exists(ctx, 2, 2025, 3)
	require.NoError(t, err)
	assert.False(t, skipped)
}

func TestService_Start(t *testing.T) {
	service, m := NewMock(t)
	m.tenants.EXPECT().ListActiveIDs(gomock.Any()).Return(nil, nil).AnyTimes()
	m.workerPool.EXPECT().Close().Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.run(ctx)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("closing loop did not stop")
	}
}
