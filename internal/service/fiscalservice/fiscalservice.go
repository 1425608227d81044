package fiscalservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/pkg/money"
)

//go:generate mockgen -source=fiscalservice.go -destination=mock_fiscalservice.go -package=fiscalservice

type TenantRepo interface {
	GetByID(ctx context.Context, tenantID int) (*domain.Tenant, error)
}

type SaleRepo interface {
	AggregateByTenantAndRange(ctx context.Context, tenantID int, start, end time.Time) (domain.SalesAggregate, error)
}

type PurchaseRepo interface {
	AggregateByTenantAndRangeAndStatus(ctx context.Context, tenantID int, start, end time.Time, statuses []domain.PurchaseStatus) (domain.PurchasesAggregate, error)
}

type ArchiveRepo interface {
	ListByTenant(ctx context.Context, tenantID int) ([]domain.FiscalReportSnapshot, error)
}

var (
	ivaDivisor = decimal.RequireFromString("1.15")
	irRate     = decimal.RequireFromString("0.01")
	imiRate    = decimal.RequireFromString("0.01")
)

// DeductiblePurchases are the purchase states that carry creditable IVA.
var DeductiblePurchases = []domain.PurchaseStatus{domain.PurchaseCompleted, domain.PurchasePendingPayment}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

type Service struct {
	tenantRepo   TenantRepo
	saleRepo     SaleRepo
	purchaseRepo PurchaseRepo
	archiveRepo  ArchiveRepo
	location     *time.Location
}

func New(tenantRepo TenantRepo, saleRepo SaleRepo, purchaseRepo PurchaseRepo, archiveRepo ArchiveRepo, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		tenantRepo:   tenantRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		archiveRepo:  archiveRepo,
		location:     location,
	}
}

// GenerateMonthlyReport computes the tax obligations of one calendar month
// from committed sales and purchases. It has no side effects.
func (s *Service) GenerateMonthlyReport(ctx context.Context, tenantID, month, year int) (*domain.MonthlyTaxReport, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, fmt.Errorf("%w: invalid period %d/%d", domain.ErrValidation, month, year)
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		zap.L().Error("failed to get tenant", zap.Int("tenantID", tenantID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrTransaction, err)
	}
	if tenant == nil {
		return nil, domain.ErrTenantNotFound
	}

	start, end := Period(month, year, s.location)

	var (
		sales     domain.SalesAggregate
		purchases domain.PurchasesAggregate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.AggregateByTenantAndRange(gctx, tenantID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		purchases, err = s.purchaseRepo.AggregateByTenantAndRangeAndStatus(gctx, tenantID, start, end, DeductiblePurchases)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to aggregate period", zap.Int("tenantID", tenantID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrTransaction, err)
	}

	report := Calculate(month, year, sales, purchases)
	return &report, nil
}

func (s *Service) ListArchived(ctx context.Context, tenantID int) ([]domain.FiscalReportSnapshot, error) {
	snapshots, err := s.archiveRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		zap.L().Error("failed to list archived reports", zap.Int("tenantID", tenantID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrTransaction, err)
	}
	return snapshots, nil
}

// Period returns the first and last instant of the month in loc.
func Period(month, year int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Calculate derives the report from period aggregates. Every figure is
// rounded to cents before it feeds the next step.
func Calculate(month, year int, sales domain.SalesAggregate, purchases domain.PurchasesAggregate) domain.MonthlyTaxReport {
	totalSales := money.Round2(sales.Total)
	netSales := money.Round2(totalSales.Div(ivaDivisor))
	ivaCollected := money.Round2(totalSales.Sub(netSales))

	totalPurchases := money.Round2(purchases.Total)
	ivaPaid := money.Round2(purchases.Tax)

	ivaRaw := ivaCollected.Sub(ivaPaid)
	ivaNeto := decimal.Max(decimal.Zero, money.Round2(ivaRaw))
	ivaCredito := decimal.Zero
	if ivaRaw.IsNegative() {
		ivaCredito = money.Round2(ivaRaw.Abs())
	}

	anticipoIR := money.Round2(netSales.Mul(irRate))
	imi := money.Round2(netSales.Mul(imiRate))

	report := domain.MonthlyTaxReport{
		Month:             month,
		Year:              year,
		TotalSales:        totalSales,
		SalesNetasSinIVA:  netSales,
		TotalIVACollected: ivaCollected,
		TotalPurchases:    totalPurchases,
		TotalIVAPaid:      ivaPaid,
		IvaNeto:           ivaNeto,
		IvaCredito:        ivaCredito,
		AnticipoIR:        anticipoIR,
		ImiAlcaldia:       imi,
		TotalToPay:        money.Round2(ivaNeto.Add(anticipoIR).Add(imi)),
	}
	report.VetSummary = VetSummary(report)
	return report
}

// VetSummary renders the breakdown in the order the filing portal asks for it.
func VetSummary(r domain.MonthlyTaxReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Declaración mensual %s %d\n", MonthName(r.Month), r.Year)
	line := func(label string, d decimal.Decimal) {
		fmt.Fprintf(&b, "%s: C$ %s\n", label, money.Format(d))
	}
	line("Ventas totales (IVA incluido)", r.TotalSales)
	line("Ventas netas sin IVA", r.SalesNetasSinIVA)
	line("IVA cobrado (15%)", r.TotalIVACollected)
	line("Compras totales", r.TotalPurchases)
	line("IVA pagado (crédito fiscal)", r.TotalIVAPaid)
	line("IVA neto a pagar", r.IvaNeto)
	line("Saldo a favor de IVA", r.IvaCredito)
	line("Anticipo IR (1%)", r.AnticipoIR)
	line("IMI Alcaldía (1%)", r.ImiAlcaldia)
	fmt.Fprintf(&b, "TOTAL A PAGAR: C$ %s", money.Format(r.TotalToPay))
	return b.String()
}

func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}
