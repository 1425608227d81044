package inventoryservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tienda/internal/domain"
)

//go:generate mockgen -source=inventoryservice.go -destination=mock_inventoryservice.go -package=inventoryservice

type ProductRepo interface {
	GetByID(ctx context.Context, productID int) (*domain.Product, error)
	Increment(ctx context.Context, productID, quantity int) (*domain.Product, error)
}

type Service struct {
	productRepo ProductRepo
}

func New(productRepo ProductRepo) *Service {
	return &Service{
		productRepo: productRepo,
	}
}

// GetProduct returns the product only when it belongs to tenantID.
func (s *Service) GetProduct(ctx context.Context, tenantID, productID int) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		zap.L().Error("failed to get product", zap.Int("productID", productID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrTransaction, err)
	}
	if product == nil || product.TenantID != tenantID {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *Service) Restock(ctx context.Context, tenantID, productID, quantity int) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if _, err := s.GetProduct(ctx, tenantID, productID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Increment(ctx, productID, quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		zap.L().Error("failed to restock product", zap.Int("productID", productID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrTransaction, err)
	}

	zap.L().Info("product restocked",
		zap.Int("tenantID", tenantID),
		zap.Int("productID", productID),
		zap.Int("quantity", quantity),
		zap.Int("stock", product.Stock),
	)
	return product, nil
}
