package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/pgtest"
)

func TestSettingsFindByName(t *testing.T) {
	db, mock := pgtest.MockDB(t)
	repo := NewDefaultSettingsRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "settings" WHERE name = \$1`).
		WithArgs("search_radius", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).AddRow("search_radius", "7.5"))

	setting, err := repo.FindByName(context.Background(), "search_radius")
	require.NoError(t, err)
	assert.Equal(t, "7.5", setting.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsFindByNameMissing(t *testing.T) {
	db, mock := pgtest.MockDB(t)
	repo := NewDefaultSettingsRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "settings" WHERE name = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}))

	_, err := repo.FindByName(context.Background(), "search_radius")
	assert.ErrorIs(t, err, domain.ErrSettingNotFound)
}

func TestPriceBandMissingIsNil(t *testing.T) {
	db, mock := pgtest.MockDB(t)
	repo := NewDefaultPriceBandRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "price_bands" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "min_price", "max_price"}))

	band, err := repo.GetPriceBandByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, band)
}

func TestPriceBandFound(t *testing.T) {
	db, mock := pgtest.MockDB(t)
	repo := NewDefaultPriceBandRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "price_bands" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "min_price", "max_price"}).AddRow("b-1", "cheap", 0, 25000))

	band, err := repo.GetPriceBandByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, 25000.0, band.MaxPrice)
}

func TestSetStoreOpen(t *testing.T) {
	db, mock := pgtest.MockDB(t)
	repo := NewDefaultStoreAvailabilityRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "stores" SET "is_store_open"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SetStoreOpen(context.Background(), "s-1", true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStoreStatusUnknownStore(t *testing.T) {
	db, mock := pgtest.MockDB(t)
	repo := NewDefaultStoreAvailabilityRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "stores" SET "status"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.SetStoreStatus(context.Background(), "missing", domain.StoreStatusSuspended)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}
