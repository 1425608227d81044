// Package closing archives the fiscal report of every active tenant once a
// month has ended.
package closing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/tienda/internal/config"
	"github.com/GlebRadaev/tienda/internal/domain"
)

//go:generate mockgen -source=closing.go -destination=mock_closing.go -package=closing

type TenantLister interface {
	ListActiveIDs(ctx context.Context) ([]int, error)
}

type ReportStore interface {
	Save(ctx context.Context, snapshot *domain.FiscalReportSnapshot) error
	Exists(ctx context.Context, tenantID, year, month int) (bool, error)
}

type ReportGenerator interface {
	GenerateMonthlyReport(ctx context.Context, tenantID, month, year int) (*domain.MonthlyTaxReport, error)
}

type periodKey struct {
	tenantID, year, month int
}

type Service struct {
	tenants        TenantLister
	reports        ReportStore
	generator      ReportGenerator
	workerPool     WorkerPoolI
	location       *time.Location
	updateInterval time.Duration
	now            func() time.Time
	inFlight       sync.Map
}

func New(cfg *config.Config, location *time.Location, tenants TenantLister, reports ReportStore, generator ReportGenerator) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		tenants:        tenants,
		reports:        reports,
		generator:      generator,
		workerPool:     NewWorkerPool(cfg.ClosingWorkers),
		location:       location,
		updateInterval: cfg.ClosingInterval,
		now:            time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("fiscal closing started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	defer s.workerPool.Close()

	if err := s.closePeriod(ctx); err != nil {
		zap.L().Error("fiscal closing failed", zap.Error(err))
	}

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping fiscal closing")
			return
		case <-ticker.C:
			if err := s.closePeriod(ctx); err != nil {
				zap.L().Error("fiscal closing failed", zap.Error(err))
			}
		}
	}
}

// closePeriod archives the previous month for every active tenant and
// returns the first failure, if any.
func (s *Service) closePeriod(ctx context.Context) error {
	year, month := PreviousPeriod(s.now().In(s.location))

	ids, err := s.tenants.ListActiveIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active tenants: %w", err)
	}

	var g errgroup.Group
	for _, id := range ids {
		id := id
		key := periodKey{tenantID: id, year: year, month: month}
		if _, loaded := s.inFlight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			done := make(chan error, 1)
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(key)
				err := s.archive(ctx, id, year, month)
				done <- err
				return err
			})
			if err != nil {
				s.inFlight.Delete(key)
				return err
			}
			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	return g.Wait()
}

func (s *Service) archive(ctx context.Context, tenantID, year, month int) error {
	exists, err := s.reports.Exists(ctx, tenantID, year, month)
	if err != nil {
		return fmt.Errorf("tenant %d: %w", tenantID, err)
	}
	if exists {
		return nil
	}

	report, err := s.generator.GenerateMonthlyReport(ctx, tenantID, month, year)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			zap.L().Warn("tenant vanished before closing", zap.Int("tenantID", tenantID))
			return nil
		}
		return fmt.Errorf("tenant %d: %w", tenantID, err)
	}

	snapshot := &domain.FiscalReportSnapshot{
		TenantID:    tenantID,
		Year:        year,
		Month:       month,
		Report:      *report,
		GeneratedAt: s.now(),
	}
	if err := s.reports.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("tenant %d: %w", tenantID, err)
	}

	zap.L().Info("fiscal period archived",
		zap.Int("tenantID", tenantID),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.String("totalToPay", report.TotalToPay.StringFixed(2)),
	)
	return nil
}

// PreviousPeriod returns the year and month before the one containing now.
func PreviousPeriod(now time.Time) (int, int) {
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	return prev.Year(), int(prev.Month())
}
