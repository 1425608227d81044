package reportrepo

import (
	"context"
	"encoding/json"
	"fmt"

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

// Save archives a closed period. An existing snapshot for the same period is kept.
func (r *Repository) Save(ctx context.Context, snapshot *domain.FiscalReportSnapshot) error {
	query := `
		INSERT INTO fiscal_reports (tenant_id, year, month, total_to_pay, payload, vet_summary, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id, year, month) DO NOTHING
	`
	payload, err := json.Marshal(snapshot.Report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = r.db.Exec(ctx, query,
		snapshot.TenantID, snapshot.Year, snapshot.Month,
		snapshot.Report.TotalToPay, payload, snapshot.Report.VetSummary, snapshot.GeneratedAt,
	)
	if err != nil {
		zap.L().Error("can't save fiscal report", zap.Int("tenantID", snapshot.TenantID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Exists(ctx context.Context, tenantID, year, month int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM fiscal_reports
            WHERE tenant_id = $1 AND year = $2 AND month = $3
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, tenantID, year, month).Scan(&exists); err != nil {
		zap.L().Error("can't check fiscal report", zap.Int("tenantID", tenantID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) ListByTenant(ctx context.Context, tenantID int) ([]domain.FiscalReportSnapshot, error) {
	query := `
        SELECT id, tenant_id, year, month, payload, generated_at
        FROM fiscal_reports
        WHERE tenant_id = $1
        ORDER BY year DESC, month DESC
    `
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		zap.L().Error("can't list fiscal reports", zap.Int("tenantID", tenantID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var snapshots []domain.FiscalReportSnapshot
	for rows.Next() {
		var s domain.FiscalReportSnapshot
		var payload []byte
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Year, &s.Month, &payload, &s.GeneratedAt); err != nil {
			zap.L().Error("can't scan fiscal report row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(payload, &s.Report); err != nil {
			return nil, fmt.Errorf("failed to decode report %d: %w", s.ID, err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
