//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/repository"
)

type ShipmentRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, s *repository.Shipment) error
	GetByID(ctx context.Context, id string) (*repository.Shipment, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*repository.Shipment, error)
	UpdateStatusTx(ctx context.Context, tx db.Tx, s *repository.Shipment) error
	GetByUserID(ctx context.Context, userID int64, page, limit int) ([]*repository.Shipment, error)
	GetByCompanyID(ctx context.Context, companyID int64, page, limit int) ([]*repository.Shipment, error)
}

type HistoryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.StatusHistoryEntry) error
	GetByShipmentID(ctx context.Context, shipmentID string) ([]*repository.StatusHistoryEntry, error)
}

type QuoteRequestRepository interface {
	MarkApprovedTx(ctx context.Context, tx db.Tx, id int64) error
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

// ShipmentStorage owns every multi-write operation on shipments. Each write
// couples the shipment row, the history append and the outbox event in one
// transaction: all land or none do.
type ShipmentStorage struct {
	db          db.DB
	shipments   ShipmentRepository
	history     HistoryRepository
	quotes      QuoteRequestRepository
	outbox      OutboxTaskRepository
	outboxTopic string
}

func NewShipmentStorage(
	database db.DB,
	shipments ShipmentRepository,
	history HistoryRepository,
	quotes QuoteRequestRepository,
	outbox OutboxTaskRepository,
	outboxTopic string,
) *ShipmentStorage {
	return &ShipmentStorage{
		db:          database,
		shipments:   shipments,
		history:     history,
		quotes:      quotes,
		outbox:      outbox,
		outboxTopic: outboxTopic,
	}
}

// ShipmentDetail pairs a shipment with its history, newest entry first.
type ShipmentDetail struct {
	Shipment *repository.Shipment             `json:"shipment"`
	History  []*repository.StatusHistoryEntry `json:"statusHistory"`
}

// NewShipment carries everything needed to book a shipment.
type NewShipment struct {
	FromLocation      string
	ToLocation        string
	FromLat           *float64
	FromLng           *float64
	ToLat             *float64
	ToLng             *float64
	Weight            float64
	ShipmentType      string
	Urgency           string
	Cost              float64
	Distance          float64
	EstimatedDelivery time.Time
	UserID            int64
	CompanyID         int64
	VendorID          int64
	QuoteRequestID    *int64
	TrackingNumber    string
	Source            string
	InitialNotes      string
}
