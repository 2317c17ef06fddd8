package integration

import (
	"context"
	"testing"

	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/advisory/backend/internal/infrastructure/logger"
	"github.com/advisory/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepository_Integration(t *testing.T) {
	db := NewTestDB(t)
	repo := persistence.NewGormAddressRepository(db)
	ctx := context.Background()

	address, err := advisory.NewAddress("12 King Street", "Mayfair", "London", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, address))

	t.Run("round trips through the database", func(t *testing.T) {
		found, err := repo.FindByID(ctx, address.ID)
		require.NoError(t, err)
		assert.Equal(t, address.ID, found.ID)
		assert.Equal(t, "12 King Street", found.Line1)
		assert.Equal(t, "Mayfair", found.Line2)
	})

	t.Run("lists and counts", func(t *testing.T) {
		second, err := advisory.NewAddress("3 Harbour Way", "", "Bristol", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, second))

		addresses, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, addresses, 2)

		total, err := repo.Count(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, address.ID))

		_, err := repo.FindByID(ctx, address.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, address.ID), shared.ErrNotFound)
	})
}

func TestProductOwnerRepository_Integration(t *testing.T) {
	db := NewTestDB(t)
	addressRepo := persistence.NewGormAddressRepository(db)
	ownerRepo := persistence.NewGormProductOwnerRepository(db)
	ctx := context.Background()

	address, err := advisory.NewAddress("12 King Street", "", "London", "", "")
	require.NoError(t, err)
	require.NoError(t, addressRepo.Save(ctx, address))

	owner, err := advisory.NewProductOwner("Margaret", "Holt")
	require.NoError(t, err)
	require.NoError(t, owner.SetContact("", "margaret.holt@example.com"))
	owner.SetAddressID(&address.ID)
	require.NoError(t, ownerRepo.Save(ctx, owner))

	t.Run("round trips with the address reference", func(t *testing.T) {
		found, err := ownerRepo.FindByID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Margaret", found.Firstname)
		assert.Equal(t, "margaret.holt@example.com", found.Email)
		require.NotNil(t, found.AddressID)
		assert.Equal(t, address.ID, *found.AddressID)
	})

	t.Run("reports address references", func(t *testing.T) {
		inUse, err := ownerRepo.ExistsByAddressID(ctx, address.ID)
		require.NoError(t, err)
		assert.True(t, inUse)

		inUse, err = ownerRepo.ExistsByAddressID(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, inUse)
	})
}

func TestAssociationRepository_Integration(t *testing.T) {
	db := NewTestDB(t)
	ownerRepo := persistence.NewGormProductOwnerRepository(db)
	groupRepo := persistence.NewGormClientGroupRepository(db)
	junctionRepo := persistence.NewGormAssociationRepository(db)
	ctx := context.Background()

	owner, err := advisory.NewProductOwner("Margaret", "Holt")
	require.NoError(t, err)
	require.NoError(t, ownerRepo.Save(ctx, owner))

	group, err := advisory.NewClientGroup("Holt Family", advisory.ClientGroupTypeFamily)
	require.NoError(t, err)
	require.NoError(t, groupRepo.Save(ctx, group))

	junction, err := advisory.NewClientGroupProductOwner(group.ID, owner.ID)
	require.NoError(t, err)
	require.NoError(t, junctionRepo.Save(ctx, junction))

	t.Run("finds the pair", func(t *testing.T) {
		found, err := junctionRepo.FindByPair(ctx, group.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, junction.ID, found.ID)

		_, err = junctionRepo.FindByPair(ctx, group.ID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("reports membership references", func(t *testing.T) {
		linked, err := junctionRepo.ExistsByClientGroupID(ctx, group.ID)
		require.NoError(t, err)
		assert.True(t, linked)

		linked, err = junctionRepo.ExistsByProductOwnerID(ctx, owner.ID)
		require.NoError(t, err)
		assert.True(t, linked)
	})

	t.Run("delete unlinks the pair", func(t *testing.T) {
		require.NoError(t, junctionRepo.Delete(ctx, junction.ID))

		linked, err := junctionRepo.ExistsByClientGroupID(ctx, group.ID)
		require.NoError(t, err)
		assert.False(t, linked)
	})
}

func TestDatabaseUsesZapGormLogger(t *testing.T) {
	db := NewTestDB(t)

	_, ok := db.Config.Logger.(*logger.GormLogger)
	assert.True(t, ok)
}
