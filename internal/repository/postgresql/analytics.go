package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/repository"
)

// AnalyticsRepo holds the read-only aggregate queries behind the dashboard.
// Every query tolerates empty tables by construction: aggregates over zero
// rows yield zero-valued rows, never errors.
type AnalyticsRepo struct {
	db db.DB
}

func NewAnalyticsRepo(db db.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

func (r *AnalyticsRepo) ShipmentCountsByStatus(ctx context.Context, companyID int64, since time.Time) ([]*repository.StatusCount, error) {
	var counts []*repository.StatusCount
	err := r.db.Select(ctx, &counts, `
        SELECT status, COUNT(*) AS count
        FROM shipments
        WHERE company_id = $1 AND created_at >= $2
        GROUP BY status
    `, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count shipments by status: %w", err)
	}
	return counts, nil
}

func (r *AnalyticsRepo) QuoteFunnel(ctx context.Context, companyID int64, since time.Time) ([]*repository.StatusCount, error) {
	var counts []*repository.StatusCount
	err := r.db.Select(ctx, &counts, `
        SELECT status, COUNT(*) AS count
        FROM quote_requests
        WHERE company_id = $1 AND created_at >= $2
        GROUP BY status
    `, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count quote requests: %w", err)
	}
	return counts, nil
}

func (r *AnalyticsRepo) InvoiceTotalsByStatus(ctx context.Context, companyID int64) ([]*repository.InvoiceTotal, error) {
	var totals []*repository.InvoiceTotal
	err := r.db.Select(ctx, &totals, `
        SELECT status, COUNT(*) AS count, COALESCE(SUM(grand_total), 0) AS total
        FROM invoices
        WHERE company_id = $1
        GROUP BY status
    `, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to total invoices: %w", err)
	}
	return totals, nil
}

// VendorRollups joins from vendors so that vendors with no shipments still
// produce a zero-valued row.
func (r *AnalyticsRepo) VendorRollups(ctx context.Context, companyID int64) ([]*repository.VendorRollup, error) {
	var rollups []*repository.VendorRollup
	err := r.db.Select(ctx, &rollups, `
        SELECT
            v.id AS vendor_id,
            v.name,
            v.rating,
            v.is_active,
            COUNT(s.id) AS total_shipments,
            COUNT(s.id) FILTER (WHERE s.status = 'DELIVERED') AS delivered,
            COALESCE(AVG(s.cost), 0) AS avg_cost
        FROM vendors v
        LEFT JOIN shipments s ON s.vendor_id = v.id
        WHERE v.company_id = $1
        GROUP BY v.id, v.name, v.rating, v.is_active
        ORDER BY total_shipments DESC, v.id ASC
    `, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to roll up vendors: %w", err)
	}
	return rollups, nil
}

func (r *AnalyticsRepo) VendorCounts(ctx context.Context, companyID int64) (total, active int64, err error) {
	err = r.db.ExecQueryRow(ctx, `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
        FROM vendors
        WHERE company_id = $1
    `, companyID).Scan(&total, &active)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count vendors: %w", err)
	}
	return total, active, nil
}
