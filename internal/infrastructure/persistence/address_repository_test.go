package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormAddressRepository_FindByID(t *testing.T) {
	t.Run("finds existing address", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAddressRepository(gormDB)

		addressID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "line_1", "line_2"}).
			AddRow(addressID, now, now, 1, "1 Main Street", "Westminster")

		mock.ExpectQuery(`SELECT \* FROM "addresses" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(addressID, 1).
			WillReturnRows(rows)

		address, err := repo.FindByID(context.Background(), addressID)

		assert.NoError(t, err)
		assert.NotNil(t, address)
		assert.Equal(t, addressID, address.ID)
		assert.Equal(t, "1 Main Street", address.Line1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing address", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAddressRepository(gormDB)

		addressID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "addresses" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(addressID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		address, err := repo.FindByID(context.Background(), addressID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, address)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormAddressRepository_Delete(t *testing.T) {
	t.Run("deletes existing address", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAddressRepository(gormDB)

		addressID := uuid.New()

		mock.ExpectExec(`DELETE FROM "addresses" WHERE id = \$1`).
			WithArgs(addressID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), addressID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAddressRepository(gormDB)

		addressID := uuid.New()

		mock.ExpectExec(`DELETE FROM "addresses" WHERE id = \$1`).
			WithArgs(addressID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), addressID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormAddressRepository_Save(t *testing.T) {
	t.Run("persists a new address", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAddressRepository(gormDB)

		address, err := advisory.NewAddress("1 Main Street", "Westminster", "London", "", "")
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "addresses" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), address)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormAssociationRepository_FindByPair(t *testing.T) {
	t.Run("finds junction record by pair", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAssociationRepository(gormDB)

		junctionID := uuid.New()
		groupID := uuid.New()
		ownerID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "client_group_id", "product_owner_id"}).
			AddRow(junctionID, now, now, 1, groupID, ownerID)

		mock.ExpectQuery(`SELECT \* FROM "client_group_product_owners" WHERE client_group_id = \$1 AND product_owner_id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(groupID, ownerID, 1).
			WillReturnRows(rows)

		junction, err := repo.FindByPair(context.Background(), groupID, ownerID)

		assert.NoError(t, err)
		assert.NotNil(t, junction)
		assert.Equal(t, groupID, junction.ClientGroupID)
		assert.Equal(t, ownerID, junction.ProductOwnerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when pair is not linked", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAssociationRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "client_group_product_owners" WHERE client_group_id = \$1 AND product_owner_id = \$2 ORDER BY .* LIMIT .*`).
			WillReturnError(gorm.ErrRecordNotFound)

		junction, err := repo.FindByPair(context.Background(), uuid.New(), uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, junction)
	})
}

func TestGormProductOwnerRepository_ExistsByAddressID(t *testing.T) {
	t.Run("true when an owner references the address", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductOwnerRepository(gormDB)

		addressID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "product_owners" WHERE address_id = \$1`).
			WithArgs(addressID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		exists, err := repo.ExistsByAddressID(context.Background(), addressID)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("false when no owner references the address", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductOwnerRepository(gormDB)

		addressID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "product_owners" WHERE address_id = \$1`).
			WithArgs(addressID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByAddressID(context.Background(), addressID)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
