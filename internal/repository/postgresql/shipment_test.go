package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/freightworks/freight-backend/internal/db/mocks"
	"github.com/freightworks/freight-backend/internal/repository"
	"github.com/freightworks/freight-backend/internal/repository/postgresql"
)

func TestShipmentRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewShipmentRepo(mockDB)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		shipment := &repository.Shipment{
			ID:                "5f0c1a3e-0000-4000-8000-000000000001",
			TrackingNumber:    "FR12345ABCDE",
			FromLocation:      "Bangalore, KA, India",
			ToLocation:        "Chennai, TN, India",
			Weight:            250,
			ShipmentType:      "STANDARD",
			Urgency:           "MEDIUM",
			Cost:              4537.50,
			Distance:          330,
			EstimatedDelivery: now.Add(29 * time.Hour),
			Status:            repository.StatusPending,
			UserID:            7,
			CompanyID:         3,
			VendorID:          11,
			Source:            "api",
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(shipment.ID),
			gomock.Eq(shipment.TrackingNumber),
			gomock.Eq(shipment.FromLocation),
			gomock.Eq(shipment.ToLocation),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Eq(shipment.Weight),
			gomock.Eq(shipment.ShipmentType),
			gomock.Eq(shipment.Urgency),
			gomock.Eq(shipment.Cost),
			gomock.Eq(shipment.Distance),
			gomock.Eq(shipment.EstimatedDelivery),
			gomock.Eq(shipment.Status),
			gomock.Eq(shipment.UserID),
			gomock.Eq(shipment.CompanyID),
			gomock.Eq(shipment.VendorID),
			gomock.Any(),
			gomock.Eq(shipment.Source),
			gomock.Eq(shipment.CreatedAt),
			gomock.Eq(shipment.UpdatedAt),
		).Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, shipment)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewShipmentRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any()).Return(nil, expectedErr)

		err := repo.CreateTx(ctx, mockTx, &repository.Shipment{ID: "ship-1"})
		assert.Equal(t, expectedErr, err)
	})
}

func TestShipmentRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewShipmentRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("ship-1")).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				s := dest.(*repository.Shipment)
				s.ID = "ship-1"
				s.TrackingNumber = "FR12345ABCDE"
				s.Status = repository.StatusInTransit
				return nil
			})

		shipment, err := repo.GetByID(ctx, "ship-1")
		require.NoError(t, err)
		assert.Equal(t, "ship-1", shipment.ID)
		assert.Equal(t, repository.StatusInTransit, shipment.Status)
	})

	t.Run("not found maps pgx.ErrNoRows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewShipmentRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestShipmentRepo_GetByTrackingNumber(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewShipmentRepo(mockDB)

	mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("FR12345ABCDE")).
		DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			s := dest.(*repository.Shipment)
			s.ID = "ship-1"
			s.TrackingNumber = "FR12345ABCDE"
			return nil
		})

	shipment, err := repo.GetByTrackingNumber(ctx, "FR12345ABCDE")
	require.NoError(t, err)
	assert.Equal(t, "FR12345ABCDE", shipment.TrackingNumber)

	mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgx.ErrNoRows)

	_, err = repo.GetByTrackingNumber(ctx, "FRNOPE000000")
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
}

func TestShipmentRepo_GetByUserID(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewShipmentRepo(mockDB)

	// page 3 with limit 10 means offset 20
	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Eq(int64(7)), gomock.Eq(20), gomock.Eq(10)).
		DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			list := dest.(*[]*repository.Shipment)
			*list = []*repository.Shipment{{ID: "ship-21"}, {ID: "ship-22"}}
			return nil
		})

	shipments, err := repo.GetByUserID(ctx, 7, 3, 10)
	require.NoError(t, err)
	assert.Len(t, shipments, 2)
}
