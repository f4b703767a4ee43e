package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/repository"
)

type shipmentEvent struct {
	Event          string    `json:"event"`
	ShipmentID     string    `json:"shipment_id"`
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// CreateShipment books a shipment: the shipment row, the initial history
// entry, the outbox event and (when linked) the quote-request approval are
// committed atomically.
func (s *ShipmentStorage) CreateShipment(ctx context.Context, req NewShipment) (*repository.Shipment, error) {
	trackingNumber := req.TrackingNumber
	if trackingNumber == "" {
		var err error
		trackingNumber, err = NewTrackingNumber()
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	shipment := &repository.Shipment{
		ID:                uuid.NewString(),
		TrackingNumber:    trackingNumber,
		FromLocation:      req.FromLocation,
		ToLocation:        req.ToLocation,
		FromLat:           req.FromLat,
		FromLng:           req.FromLng,
		ToLat:             req.ToLat,
		ToLng:             req.ToLng,
		Weight:            req.Weight,
		ShipmentType:      req.ShipmentType,
		Urgency:           req.Urgency,
		Cost:              req.Cost,
		Distance:          req.Distance,
		EstimatedDelivery: req.EstimatedDelivery,
		Status:            initialStatus(req.Source),
		UserID:            req.UserID,
		CompanyID:         req.CompanyID,
		VendorID:          req.VendorID,
		QuoteRequestID:    req.QuoteRequestID,
		Source:            req.Source,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	notes := req.InitialNotes
	if notes == "" {
		notes = "Shipment created and awaiting assignment."
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.shipments.CreateTx(ctx, tx, shipment); err != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", err)
	}

	entry := &repository.StatusHistoryEntry{
		ShipmentID: shipment.ID,
		Status:     shipment.Status,
		Notes:      notes,
		UpdatedBy:  req.UserID,
		Timestamp:  now,
	}
	if err := s.history.CreateTx(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("failed to append status history: %w", err)
	}

	if req.QuoteRequestID != nil {
		if err := s.quotes.MarkApprovedTx(ctx, tx, *req.QuoteRequestID); err != nil {
			return nil, err
		}
	}

	if err := s.enqueueEventTx(ctx, tx, "shipment_created", shipment); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit shipment creation: %w", err)
	}

	return shipment, nil
}

// UpdateStatus applies one lifecycle transition. The shipment row is locked
// for the transaction, the transition validated against the state machine,
// and the history append rides the same commit.
func (s *ShipmentStorage) UpdateStatus(ctx context.Context, shipmentID string, status repository.ShipmentStatus, notes, location string, actorID int64) (*repository.Shipment, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	shipment, err := s.shipments.GetByIDTx(ctx, tx, shipmentID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(shipment.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, shipment.Status, status)
	}

	now := time.Now().UTC()
	shipment.Status = status
	shipment.UpdatedAt = now

	if err := s.shipments.UpdateStatusTx(ctx, tx, shipment); err != nil {
		return nil, fmt.Errorf("failed to update shipment status: %w", err)
	}

	entry := &repository.StatusHistoryEntry{
		ShipmentID: shipment.ID,
		Status:     status,
		Notes:      notes,
		Location:   location,
		UpdatedBy:  actorID,
		Timestamp:  now,
	}
	if err := s.history.CreateTx(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("failed to append status history: %w", err)
	}

	if err := s.enqueueEventTx(ctx, tx, "shipment_status_changed", shipment); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	return shipment, nil
}

func (s *ShipmentStorage) GetShipment(ctx context.Context, id string) (*ShipmentDetail, error) {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withHistory(ctx, shipment)
}

// GetByTracking serves the public tracking endpoint.
func (s *ShipmentStorage) GetByTracking(ctx context.Context, trackingNumber string) (*ShipmentDetail, error) {
	shipment, err := s.shipments.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	return s.withHistory(ctx, shipment)
}

func (s *ShipmentStorage) ListUserShipments(ctx context.Context, userID int64, page, limit int) ([]*repository.Shipment, error) {
	return s.shipments.GetByUserID(ctx, userID, page, limit)
}

func (s *ShipmentStorage) ListCompanyShipments(ctx context.Context, companyID int64, page, limit int) ([]*repository.Shipment, error) {
	return s.shipments.GetByCompanyID(ctx, companyID, page, limit)
}

func (s *ShipmentStorage) withHistory(ctx context.Context, shipment *repository.Shipment) (*ShipmentDetail, error) {
	history, err := s.history.GetByShipmentID(ctx, shipment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load status history: %w", err)
	}
	return &ShipmentDetail{Shipment: shipment, History: history}, nil
}

func (s *ShipmentStorage) enqueueEventTx(ctx context.Context, tx db.Tx, event string, shipment *repository.Shipment) error {
	payload, err := json.Marshal(shipmentEvent{
		Event:          event,
		ShipmentID:     shipment.ID,
		TrackingNumber: shipment.TrackingNumber,
		Status:         string(shipment.Status),
		OccurredAt:     shipment.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}

	task := &repository.OutboxTask{Topic: s.outboxTopic, Payload: payload}
	if err := s.outbox.CreateTx(ctx, tx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s event: %w", event, err)
	}
	return nil
}

func initialStatus(source string) repository.ShipmentStatus {
	if source == "erp" {
		return repository.StatusRequested
	}
	return repository.StatusPending
}
