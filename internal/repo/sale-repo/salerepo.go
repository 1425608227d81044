package salerepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Insert stores the sale header and its lines together.
func (r *Repository) Insert(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	saleQuery := `
		INSERT INTO sales (tenant_id, total, items_count, status, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	itemQuery := `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, saleQuery, sale.TenantID, sale.Total, sale.ItemsCount, string(sale.Status), sale.Date).Scan(&sale.ID)
		if err != nil {
			zap.L().Error("can't save sale", zap.Error(err))
			return err
		}
		for i := range sale.Items {
			item := &sale.Items[i]
			item.SaleID = sale.ID
			err := r.db.QueryRow(ctx, itemQuery, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.ID)
			if err != nil {
				zap.L().Error("can't save sale item", zap.Int("saleID", sale.ID), zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// AggregateByTenantAndRange sums COMPLETED sales dated within [start, end].
func (r *Repository) AggregateByTenantAndRange(ctx context.Context, tenantID int, start, end time.Time) (domain.SalesAggregate, error) {
	query := `
        SELECT COALESCE(SUM(total), 0), COUNT(*)
        FROM sales
        WHERE tenant_id = $1 AND status = $2 AND date BETWEEN $3 AND $4
    `
	var agg domain.SalesAggregate
	err := r.db.QueryRow(ctx, query, tenantID, string(domain.SaleCompleted), start, end).Scan(&agg.Total, &agg.Count)
	if err != nil {
		zap.L().Error("can't aggregate sales", zap.Int("tenantID", tenantID), zap.Error(err))
		return domain.SalesAggregate{}, err
	}
	return agg, nil
}
