package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/repository"
)

type QuoteRequestRepo struct {
	db db.DB
}

func NewQuoteRequestRepo(db db.DB) *QuoteRequestRepo {
	return &QuoteRequestRepo{db: db}
}

func (r *QuoteRequestRepo) Create(ctx context.Context, q *repository.QuoteRequest) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO quote_requests (
            user_id, company_id, from_location, to_location, weight,
            shipment_type, urgency, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `, q.UserID, q.CompanyID, q.FromLocation, q.ToLocation, q.Weight,
		q.ShipmentType, q.Urgency, q.Status, q.CreatedAt, q.UpdatedAt).Scan(&id)
	return id, err
}

// MarkApprovedTx flips a funnel record to APPROVED inside the booking
// transaction. A vanished row is not an error: the funnel is best-effort.
func (r *QuoteRequestRepo) MarkApprovedTx(ctx context.Context, tx db.Tx, id int64) error {
	_, err := tx.Exec(ctx, `
        UPDATE quote_requests
        SET status = $1, updated_at = $2
        WHERE id = $3
    `, repository.QuoteApproved, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to approve quote request %d: %w", id, err)
	}
	return nil
}

func (r *QuoteRequestRepo) ListForExport(ctx context.Context, companyID int64) ([]*repository.QuoteRequest, error) {
	var quotes []*repository.QuoteRequest
	err := r.db.Select(ctx, &quotes, `
        SELECT * FROM quote_requests
        WHERE company_id = $1
        ORDER BY created_at DESC
    `, companyID)
	return quotes, err
}
