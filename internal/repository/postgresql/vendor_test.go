package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/freightworks/freight-backend/internal/db/mocks"
	"github.com/freightworks/freight-backend/internal/repository"
	"github.com/freightworks/freight-backend/internal/repository/postgresql"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

func TestVendorRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("returns generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVendorRepo(mockDB)

		vendor := &repository.Vendor{
			Name:      "Budget Freight",
			Email:     "ops@budgetfreight.example",
			BaseRate:  12.5,
			Rating:    4.2,
			Speed:     55,
			IsActive:  true,
			CompanyID: 3,
		}

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(),
			gomock.Eq(vendor.Name), gomock.Eq(vendor.Email), gomock.Any(),
			gomock.Eq(vendor.BaseRate), gomock.Eq(vendor.Rating), gomock.Eq(vendor.Speed),
			gomock.Eq(vendor.IsActive), gomock.Eq(vendor.CompanyID),
			gomock.Any(), gomock.Any()).
			Return(fakeRow{id: 42})

		id, err := repo.Create(ctx, vendor)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("scan error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVendorRepo(mockDB)

		expectedErr := errors.New("insert failed")
		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any()).
			Return(fakeRow{err: expectedErr})

		_, err := repo.Create(ctx, &repository.Vendor{Name: "X"})
		assert.Equal(t, expectedErr, err)
	})
}

func TestVendorRepo_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVendorRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(42))).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.Update(ctx, &repository.Vendor{ID: 42, Name: "Budget Freight", Speed: 55})
		assert.NoError(t, err)
	})

	t.Run("zero rows affected means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVendorRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.Update(ctx, &repository.Vendor{ID: 404, Name: "Gone", Speed: 55})
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestVendorRepo_GetActive(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewVendorRepo(mockDB)

	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(3))).
		DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			list := dest.(*[]*repository.Vendor)
			*list = []*repository.Vendor{
				{ID: 1, Name: "A", IsActive: true},
				{ID: 2, Name: "B", IsActive: true},
			}
			return nil
		})

	vendors, err := repo.GetActive(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, vendors, 2)
}

func TestVendorRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewVendorRepo(mockDB)

	mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgx.ErrNoRows)

	_, err := repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
}
