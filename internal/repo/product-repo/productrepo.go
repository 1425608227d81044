package productrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, productID int) (*domain.Product, error) {
	query := `
        SELECT id, tenant_id, sku, name, price, cost, stock
        FROM products
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, productID)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get product", zap.Int("productID", productID), zap.Error(err))
		return nil, err
	}
	return product, nil
}

// DecrementIfSufficient takes quantity units off the stock in one statement.
// It reports false, without touching the row, when stock is lower than quantity.
func (r *Repository) DecrementIfSufficient(ctx context.Context, productID, quantity int) (bool, error) {
	query := `
		UPDATE products
		SET stock = stock - $1
		WHERE id = $2 AND stock >= $1
		RETURNING stock
	`
	var remaining int
	err := r.db.QueryRow(ctx, query, quantity, productID).Scan(&remaining)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to decrement stock", zap.Int("productID", productID), zap.Error(err))
		return false, err
	}

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check product", zap.Int("productID", productID), zap.Error(err))
		return false, err
	}
	if !exists {
		return false, domain.ErrProductNotFound
	}
	return false, nil
}

func (r *Repository) Increment(ctx context.Context, productID, quantity int) (*domain.Product, error) {
	query := `
		UPDATE products
		SET stock = stock + $1
		WHERE id = $2
		RETURNING id, tenant_id, sku, name, price, cost, stock
	`
	product, err := scanProduct(r.db.QueryRow(ctx, query, quantity, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		zap.L().Error("failed to increment stock", zap.Int("productID", productID), zap.Error(err))
		return nil, err
	}
	return product, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.TenantID, &p.SKU, &p.Name, &p.Price, &p.Cost, &p.Stock)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
