package tenantrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

func (r *Repository) GetByID(ctx context.Context, tenantID int) (*domain.Tenant, error) {
	query := `
        SELECT id, name, wallet_balance, credit_score, subscription_status
        FROM tenants
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, tenantID)
	var tenant domain.Tenant
	var status string
	err := row.Scan(&tenant.ID, &tenant.Name, &tenant.WalletBalance, &tenant.CreditScore, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get tenant", zap.Int("tenantID", tenantID), zap.Error(err))
		return nil, err
	}
	tenant.SubscriptionStatus = domain.SubscriptionStatus(status)
	return &tenant, nil
}

// AtomicIncrement adds the deltas in place, so concurrent settlements never
// overwrite each other's balance.
func (r *Repository) AtomicIncrement(ctx context.Context, tenantID int, walletDelta decimal.Decimal, creditDelta int64) error {
	query := `
		UPDATE tenants
		SET wallet_balance = wallet_balance + $1,
			credit_score = credit_score + $2
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, walletDelta, creditDelta, tenantID)
	if err != nil {
		zap.L().Error("failed to increment tenant account", zap.Int("tenantID", tenantID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

func (r *Repository) ListActiveIDs(ctx context.Context) ([]int, error) {
	query := `
        SELECT id
        FROM tenants
        WHERE subscription_status = ANY($1)
        ORDER BY id
    `
	statuses := []string{string(domain.SubscriptionActive), string(domain.SubscriptionTrialing)}
	rows, err := r.db.Query(ctx, query, statuses)
	if err != nil {
		zap.L().Error("can't list active tenants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan tenant id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
