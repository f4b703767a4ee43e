package postgresql

import (
	"context"

	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/repository"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// CreateTx appends one history entry. There is deliberately no update or
// delete: the log is append-only.
func (r *HistoryRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.StatusHistoryEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO shipment_status_history (
            shipment_id, status, notes, location, updated_by, timestamp
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, entry.ShipmentID, entry.Status, entry.Notes, entry.Location, entry.UpdatedBy, entry.Timestamp)
	return err
}

// GetByShipmentID returns the history newest-first, the display order.
func (r *HistoryRepo) GetByShipmentID(ctx context.Context, shipmentID string) ([]*repository.StatusHistoryEntry, error) {
	var entries []*repository.StatusHistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM shipment_status_history
        WHERE shipment_id = $1
        ORDER BY timestamp DESC
    `, shipmentID)
	return entries, err
}
