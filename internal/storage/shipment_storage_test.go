package storage_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/freightworks/freight-backend/internal/db/mocks"
	"github.com/freightworks/freight-backend/internal/repository"
	"github.com/freightworks/freight-backend/internal/storage"
	mock_storage "github.com/freightworks/freight-backend/internal/storage/mocks"
)

type storageMocks struct {
	db        *mock_database.MockDB
	tx        *mock_database.MockTx
	shipments *mock_storage.MockShipmentRepository
	history   *mock_storage.MockHistoryRepository
	quotes    *mock_storage.MockQuoteRequestRepository
	outbox    *mock_storage.MockOutboxTaskRepository
}

func newStorage(t *testing.T) (*storage.ShipmentStorage, storageMocks) {
	ctrl := gomock.NewController(t)

	m := storageMocks{
		db:        mock_database.NewMockDB(ctrl),
		tx:        mock_database.NewMockTx(ctrl),
		shipments: mock_storage.NewMockShipmentRepository(ctrl),
		history:   mock_storage.NewMockHistoryRepository(ctrl),
		quotes:    mock_storage.NewMockQuoteRequestRepository(ctrl),
		outbox:    mock_storage.NewMockOutboxTaskRepository(ctrl),
	}

	stg := storage.NewShipmentStorage(m.db, m.shipments, m.history, m.quotes, m.outbox, "shipment_events")
	return stg, m
}

func TestCreateShipment(t *testing.T) {
	ctx := context.Background()

	newShipmentReq := func() storage.NewShipment {
		return storage.NewShipment{
			FromLocation:      "Bangalore, KA, India",
			ToLocation:        "Chennai, TN, India",
			Weight:            250,
			ShipmentType:      "STANDARD",
			Urgency:           "MEDIUM",
			Cost:              4537.50,
			Distance:          330,
			EstimatedDelivery: time.Now().UTC().Add(29 * time.Hour),
			UserID:            7,
			CompanyID:         3,
			VendorID:          11,
			Source:            "api",
		}
	}

	t.Run("books shipment with history and outbox event in one tx", func(t *testing.T) {
		stg, m := newStorage(t)

		var created *repository.Shipment
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.shipments.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, s *repository.Shipment) error {
				created = s
				return nil
			})
		m.history.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, entry *repository.StatusHistoryEntry) error {
				assert.Equal(t, repository.StatusPending, entry.Status)
				assert.Equal(t, "Shipment created and awaiting assignment.", entry.Notes)
				assert.Equal(t, int64(7), entry.UpdatedBy)
				return nil
			})
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				assert.Equal(t, "shipment_events", task.Topic)
				assert.Contains(t, string(task.Payload), "shipment_created")
				return nil
			})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(errors.New("tx closed")).AnyTimes()

		shipment, err := stg.CreateShipment(ctx, newShipmentReq())
		require.NoError(t, err)
		require.NotNil(t, shipment)
		assert.Same(t, created, shipment)

		assert.Equal(t, repository.StatusPending, shipment.Status)
		assert.NotEmpty(t, shipment.ID)
		assert.True(t, strings.HasPrefix(shipment.TrackingNumber, "FR"))
		assert.Len(t, shipment.TrackingNumber, 12)
	})

	t.Run("erp source starts at REQUESTED and keeps the given tracking number", func(t *testing.T) {
		stg, m := newStorage(t)

		req := newShipmentReq()
		req.Source = "erp"
		req.TrackingNumber = "ERP-2025-0042"

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.shipments.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.history.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(errors.New("tx closed")).AnyTimes()

		shipment, err := stg.CreateShipment(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, repository.StatusRequested, shipment.Status)
		assert.Equal(t, "ERP-2025-0042", shipment.TrackingNumber)
	})

	t.Run("approves the linked quote request in the same tx", func(t *testing.T) {
		stg, m := newStorage(t)

		quoteID := int64(99)
		req := newShipmentReq()
		req.QuoteRequestID = &quoteID

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.shipments.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.history.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.quotes.EXPECT().MarkApprovedTx(gomock.Any(), m.tx, quoteID).Return(nil)
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(errors.New("tx closed")).AnyTimes()

		_, err := stg.CreateShipment(ctx, req)
		require.NoError(t, err)
	})

	t.Run("insert failure rolls back, nothing committed", func(t *testing.T) {
		stg, m := newStorage(t)

		expectedErr := errors.New("insert failed")
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.shipments.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(expectedErr)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := stg.CreateShipment(ctx, newShipmentReq())
		assert.ErrorIs(t, err, expectedErr)
	})

	t.Run("history failure rolls back the shipment insert", func(t *testing.T) {
		stg, m := newStorage(t)

		expectedErr := errors.New("history insert failed")
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.shipments.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.history.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(expectedErr)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := stg.CreateShipment(ctx, newShipmentReq())
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	current := func(status repository.ShipmentStatus) *repository.Shipment {
		return &repository.Shipment{
			ID:             "ship-1",
			TrackingNumber: "FR12345ABCDE",
			Status:         status,
			UserID:         7,
			CompanyID:      3,
		}
	}

	t.Run("legal transition updates row and appends history", func(t *testing.T) {
		stg, m := newStorage(t)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.shipments.EXPECT().GetByIDTx(gomock.Any(), m.tx, "ship-1").Return(current(repository.StatusPending), nil)
		m.shipments.EXPECT().UpdateStatusTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, s *repository.Shipment) error {
				assert.Equal(t, repository.StatusAssigned, s.Status)
				return nil
			})
		m.history.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, entry *repository.StatusHistoryEntry) error {
				assert.Equal(t, repository.StatusAssigned, entry.Status)
				assert.Equal(t, "assigned to vendor", entry.Notes)
				assert.Equal(t, "Bangalore hub", entry.Location)
				assert.Equal(t, int64(42), entry.UpdatedBy)
				return nil
			})
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				assert.Contains(t, string(task.Payload), "shipment_status_changed")
				return nil
			})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(errors.New("tx closed")).AnyTimes()

		shipment, err := stg.UpdateStatus(ctx, "ship-1", repository.StatusAssigned, "assigned to vendor", "Bangalore hub", 42)
		require.NoError(t, err)
		assert.Equal(t, repository.StatusAssigned, shipment.Status)
	})

	t.Run("illegal transition is rejected before any write", func(t *testing.T) {
		stg, m := newStorage(t)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.shipments.EXPECT().GetByIDTx(gomock.Any(), m.tx, "ship-1").Return(current(repository.StatusDelivered), nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := stg.UpdateStatus(ctx, "ship-1", repository.StatusInTransit, "", "", 42)
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	})

	t.Run("unknown status is rejected without touching the database", func(t *testing.T) {
		stg, _ := newStorage(t)

		_, err := stg.UpdateStatus(ctx, "ship-1", repository.ShipmentStatus("LOST"), "", "", 42)
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	})

	t.Run("unknown shipment bubbles up not found", func(t *testing.T) {
		stg, m := newStorage(t)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.shipments.EXPECT().GetByIDTx(gomock.Any(), m.tx, "missing").Return(nil, repository.ErrObjectNotFound)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := stg.UpdateStatus(ctx, "missing", repository.StatusAssigned, "", "", 42)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestGetShipment(t *testing.T) {
	ctx := context.Background()

	t.Run("pairs shipment with newest-first history", func(t *testing.T) {
		stg, m := newStorage(t)

		shipment := &repository.Shipment{ID: "ship-1", Status: repository.StatusInTransit}
		history := []*repository.StatusHistoryEntry{
			{ShipmentID: "ship-1", Status: repository.StatusInTransit},
			{ShipmentID: "ship-1", Status: repository.StatusPickedUp},
			{ShipmentID: "ship-1", Status: repository.StatusPending},
		}

		m.shipments.EXPECT().GetByID(gomock.Any(), "ship-1").Return(shipment, nil)
		m.history.EXPECT().GetByShipmentID(gomock.Any(), "ship-1").Return(history, nil)

		detail, err := stg.GetShipment(ctx, "ship-1")
		require.NoError(t, err)
		assert.Same(t, shipment, detail.Shipment)
		assert.Len(t, detail.History, 3)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		stg, m := newStorage(t)

		m.shipments.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, repository.ErrObjectNotFound)

		_, err := stg.GetShipment(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestGetByTracking(t *testing.T) {
	ctx := context.Background()
	stg, m := newStorage(t)

	shipment := &repository.Shipment{ID: "ship-1", TrackingNumber: "FR12345ABCDE"}
	m.shipments.EXPECT().GetByTrackingNumber(gomock.Any(), "FR12345ABCDE").Return(shipment, nil)
	m.history.EXPECT().GetByShipmentID(gomock.Any(), "ship-1").
		Return([]*repository.StatusHistoryEntry{{ShipmentID: "ship-1"}}, nil)

	detail, err := stg.GetByTracking(ctx, "FR12345ABCDE")
	require.NoError(t, err)
	assert.Equal(t, "FR12345ABCDE", detail.Shipment.TrackingNumber)
}
