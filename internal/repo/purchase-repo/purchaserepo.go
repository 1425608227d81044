package purchaserepo

import (
	"context"
	"time"

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

func (r *Repository) AggregateByTenantAndRangeAndStatus(
	ctx context.Context,
	tenantID int,
	start, end time.Time,
	statuses []domain.PurchaseStatus,
) (domain.PurchasesAggregate, error) {
	query := `
        SELECT COALESCE(SUM(total), 0), COALESCE(SUM(tax), 0)
        FROM purchases
        WHERE tenant_id = $1 AND status = ANY($2) AND date BETWEEN $3 AND $4
    `
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	var agg domain.PurchasesAggregate
	err := r.db.QueryRow(ctx, query, tenantID, names, start, end).Scan(&agg.Total, &agg.Tax)
	if err != nil {
		zap.L().Error("can't aggregate purchases", zap.Int("tenantID", tenantID), zap.Error(err))
		return domain.PurchasesAggregate{}, err
	}
	return agg, nil
}
