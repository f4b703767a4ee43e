package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/repository"
)

type ShipmentRepo struct {
	db db.DB
}

func NewShipmentRepo(db db.DB) *ShipmentRepo {
	return &ShipmentRepo{db: db}
}

const shipmentColumns = `
        id, tracking_number, from_location, to_location,
        from_lat, from_lng, to_lat, to_lng,
        weight, shipment_type, urgency, cost, distance, estimated_delivery,
        status, user_id, company_id, vendor_id, quote_request_id, source,
        created_at, updated_at`

func (r *ShipmentRepo) CreateTx(ctx context.Context, tx db.Tx, s *repository.Shipment) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO shipments (`+shipmentColumns+`
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
    `, s.ID, s.TrackingNumber, s.FromLocation, s.ToLocation,
		s.FromLat, s.FromLng, s.ToLat, s.ToLng,
		s.Weight, s.ShipmentType, s.Urgency, s.Cost, s.Distance, s.EstimatedDelivery,
		s.Status, s.UserID, s.CompanyID, s.VendorID, s.QuoteRequestID, s.Source,
		s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *ShipmentRepo) GetByID(ctx context.Context, id string) (*repository.Shipment, error) {
	var s repository.Shipment
	err := r.db.Get(ctx, &s, "SELECT * FROM shipments WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetByIDTx locks the row for the duration of the transaction so concurrent
// status updates serialize.
func (r *ShipmentRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Shipment, error) {
	var s repository.Shipment
	err := tx.Get(ctx, &s, "SELECT * FROM shipments WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShipmentRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*repository.Shipment, error) {
	var s repository.Shipment
	err := r.db.Get(ctx, &s, "SELECT * FROM shipments WHERE tracking_number = $1", trackingNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShipmentRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, s *repository.Shipment) error {
	_, err := tx.Exec(ctx, `
        UPDATE shipments
        SET status = $1, updated_at = $2
        WHERE id = $3
    `, s.Status, s.UpdatedAt, s.ID)
	return err
}

// GetByUserID lists a user's shipments newest-first with offset pagination.
func (r *ShipmentRepo) GetByUserID(ctx context.Context, userID int64, page, limit int) ([]*repository.Shipment, error) {
	var shipments []*repository.Shipment
	err := r.db.Select(ctx, &shipments, `
        SELECT * FROM shipments
        WHERE user_id = $1
        ORDER BY created_at DESC
        OFFSET $2 LIMIT $3
    `, userID, (page-1)*limit, limit)
	return shipments, err
}

func (r *ShipmentRepo) GetByCompanyID(ctx context.Context, companyID int64, page, limit int) ([]*repository.Shipment, error) {
	var shipments []*repository.Shipment
	err := r.db.Select(ctx, &shipments, `
        SELECT * FROM shipments
        WHERE company_id = $1
        ORDER BY created_at DESC
        OFFSET $2 LIMIT $3
    `, companyID, (page-1)*limit, limit)
	return shipments, err
}

func (r *ShipmentRepo) ListForExport(ctx context.Context, companyID int64) ([]*repository.Shipment, error) {
	var shipments []*repository.Shipment
	err := r.db.Select(ctx, &shipments, `
        SELECT * FROM shipments
        WHERE company_id = $1
        ORDER BY created_at DESC
    `, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments for export: %w", err)
	}
	return shipments, nil
}
