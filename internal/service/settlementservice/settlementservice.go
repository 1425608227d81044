package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/pg"
	"github.com/GlebRadaev/tienda/pkg/money"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

type TenantRepo interface {
	GetByID(ctx context.Context, tenantID int) (*domain.Tenant, error)
	AtomicIncrement(ctx context.Context, tenantID int, walletDelta decimal.Decimal, creditDelta int64) error
}

type ProductRepo interface {
	GetByID(ctx context.Context, productID int) (*domain.Product, error)
	DecrementIfSufficient(ctx context.Context, productID, quantity int) (bool, error)
}

type SaleRepo interface {
	Insert(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
}

type Service struct {
	tenantRepo  TenantRepo
	productRepo ProductRepo
	saleRepo    SaleRepo
	txManager   pg.TXManager
	now         func() time.Time
}

func New(tenantRepo TenantRepo, productRepo ProductRepo, saleRepo SaleRepo, txManager pg.TXManager) *Service {
	return &Service{
		tenantRepo:  tenantRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		txManager:   txManager,
		now:         time.Now,
	}
}

// Settle applies a cart against the tenant's inventory and books the sale.
// Either every step succeeds or nothing is visible: stock, sale and tenant
// account change in one transaction.
func (s *Service) Settle(ctx context.Context, tenantID int, items []domain.CartItem) (*domain.Sale, error) {
	if err := ValidateCart(items); err != nil {
		return nil, err
	}

	var sale *domain.Sale
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			return domain.ErrTenantNotFound
		}

		for _, item := range lockOrder(items) {
			if err := s.reserve(ctx, tenantID, item); err != nil {
				return err
			}
		}

		sale, err = s.saleRepo.Insert(ctx, buildSale(tenantID, items, s.now()))
		if err != nil {
			return err
		}
		return s.tenantRepo.AtomicIncrement(ctx, tenantID, sale.Total, money.CreditScoreDelta(sale.Total))
	})
	if err != nil {
		err = categorize(err)
		if errors.Is(err, domain.ErrTransaction) {
			zap.L().Error("settlement failed", zap.Int("tenantID", tenantID), zap.Error(err))
		} else {
			zap.L().Info("settlement rejected", zap.Int("tenantID", tenantID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("sale settled",
		zap.Int("tenantID", tenantID),
		zap.Int("saleID", sale.ID),
		zap.String("total", money.Format(sale.Total)),
	)
	return sale, nil
}

// Account returns the tenant's wallet balance and credit score as committed.
func (s *Service) Account(ctx context.Context, tenantID int) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		zap.L().Error("failed to get tenant", zap.Int("tenantID", tenantID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrTransaction, err)
	}
	if tenant == nil {
		return nil, domain.ErrTenantNotFound
	}
	return tenant, nil
}

func (s *Service) reserve(ctx context.Context, tenantID int, item domain.CartItem) error {
	product, err := s.productRepo.GetByID(ctx, item.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: id %d", domain.ErrProductNotFound, item.ProductID)
	}
	if product.TenantID != tenantID {
		return fmt.Errorf("%w: product %d belongs to another tenant", domain.ErrValidation, item.ProductID)
	}

	ok, err := s.productRepo.DecrementIfSufficient(ctx, item.ProductID, item.Quantity)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: product %d", domain.ErrInsufficientStock, item.ProductID)
	}
	return nil
}

// ValidateCart checks the cart shape before any storage is touched.
func ValidateCart(items []domain.CartItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: cart is empty", domain.ErrValidation)
	}
	var (
		total decimal.Decimal
		count int64
	)
	for i, item := range items {
		switch {
		case item.ProductID <= 0:
			return fmt.Errorf("%w: item %d: product id must be positive", domain.ErrValidation, i)
		case item.Quantity <= 0:
			return fmt.Errorf("%w: item %d: quantity must be positive", domain.ErrValidation, i)
		case item.Quantity > math.MaxInt32:
			return fmt.Errorf("%w: item %d: quantity exceeds %d", domain.ErrValidation, i, math.MaxInt32)
		case !item.UnitPrice.IsPositive():
			return fmt.Errorf("%w: item %d: unit price must be positive", domain.ErrValidation, i)
		case !money.IsCents(item.UnitPrice):
			return fmt.Errorf("%w: item %d: unit price has more than %d decimals", domain.ErrValidation, i, money.Places)
		}

		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if !money.Fits(line) {
			return fmt.Errorf("%w: item %d: line total exceeds %s", domain.ErrValidation, i, money.Format(money.MaxAmount))
		}
		total = total.Add(line)
		count += int64(item.Quantity)
	}
	if !money.Fits(total) {
		return fmt.Errorf("%w: cart total exceeds %s", domain.ErrValidation, money.Format(money.MaxAmount))
	}
	if count > math.MaxInt32 {
		return fmt.Errorf("%w: cart holds more than %d units", domain.ErrValidation, math.MaxInt32)
	}
	return nil
}

// lockOrder returns the items sorted by product id, so concurrent carts
// touching the same products take row locks in the same order.
func lockOrder(items []domain.CartItem) []domain.CartItem {
	ordered := make([]domain.CartItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ProductID < ordered[j].ProductID
	})
	return ordered
}

func buildSale(tenantID int, items []domain.CartItem, date time.Time) *domain.Sale {
	sale := &domain.Sale{
		TenantID: tenantID,
		Total:    decimal.Zero,
		Status:   domain.SaleCompleted,
		Date:     date,
		Items:    make([]domain.SaleItem, 0, len(items)),
	}
	for _, item := range items {
		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		sale.Total = sale.Total.Add(line)
		sale.ItemsCount += item.Quantity
		sale.Items = append(sale.Items, domain.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	sale.Total = money.Round2(sale.Total)
	return sale
}

// categorize keeps business failures as they are and folds everything
// else into ErrTransaction. A value the schema cannot hold, such as a
// wallet past NUMERIC(14,2), fails the same way on every attempt.
func categorize(err error) error {
	switch {
	case pg.IsOutOfRange(err):
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrTransaction):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrTransaction, err)
	}
}
