package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-grooming-api/internal/domain/pets"
)

func TestPetsRepo_InsertAssignsIncrementalIDs(t *testing.T) {
	repo := NewPetsRepo()
	ctx := context.Background()

	first, err := repo.Insert(ctx, pets.Pet{OwnerID: "owner-1", Name: "Rex"})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, pets.Pet{OwnerID: "owner-1", Name: "Mia"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first[0].ID)
	assert.Equal(t, int64(2), second[0].ID)
}

func TestPetsRepo_InsertRequiresOwner(t *testing.T) {
	repo := NewPetsRepo()

	_, err := repo.Insert(context.Background(), pets.Pet{Name: "Rex"})
	assert.Error(t, err)
}

func TestPetsRepo_FindByOwnerIsSortedAndIsolated(t *testing.T) {
	repo := NewPetsRepo()
	ctx := context.Background()

	_, err := repo.Insert(ctx, pets.Pet{OwnerID: "owner-1", Name: "Rex"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, pets.Pet{OwnerID: "owner-2", Name: "Ajeno"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, pets.Pet{OwnerID: "owner-1", Name: "Mia"})
	require.NoError(t, err)

	rows, err := repo.FindByOwnerID(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Orden por id asc, sin filas de otros owners
	assert.Equal(t, "Rex", rows[0].Name)
	assert.Equal(t, "Mia", rows[1].Name)
}

func TestPetsRepo_FindByIDAndOwnerRequiresBothToMatch(t *testing.T) {
	repo := NewPetsRepo()
	ctx := context.Background()

	created, err := repo.Insert(ctx, pets.Pet{OwnerID: "owner-1", Name: "Rex"})
	require.NoError(t, err)
	id := created[0].ID

	rows, err := repo.FindByIDAndOwner(ctx, id, "owner-1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = repo.FindByIDAndOwner(ctx, id, "owner-2")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPetsRepo_UpdateScopedByOwner(t *testing.T) {
	repo := NewPetsRepo()
	ctx := context.Background()

	created, err := repo.Insert(ctx, pets.Pet{OwnerID: "owner-1", Name: "Rex"})
	require.NoError(t, err)
	id := created[0].ID

	rows, err := repo.Update(ctx, id, "owner-2", pets.Pet{Name: "Hijacked"})
	require.NoError(t, err)
	assert.Empty(t, rows, "cross-owner update must not match")

	rows, err = repo.Update(ctx, id, "owner-1", pets.Pet{Name: "Rex II"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, "owner-1", rows[0].OwnerID)
	assert.Equal(t, "Rex II", rows[0].Name)
}

func TestPetsRepo_DeleteReturnsAffectedCount(t *testing.T) {
	repo := NewPetsRepo()
	ctx := context.Background()

	created, err := repo.Insert(ctx, pets.Pet{OwnerID: "owner-1", Name: "Rex"})
	require.NoError(t, err)
	id := created[0].ID

	count, err := repo.Delete(ctx, id, "owner-2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = repo.Delete(ctx, id, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	rows, err := repo.FindByIDAndOwner(ctx, id, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
