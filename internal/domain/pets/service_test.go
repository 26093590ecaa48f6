package pets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Pet
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) FindByOwnerID(ctx context.Context, ownerID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) FindByIDAndOwner(ctx context.Context, id int64, ownerID string) ([]Pet, error) {
	out := make([]Pet, 0, 1)
	if p, ok := r.byID[id]; ok && p.OwnerID == ownerID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Insert(ctx context.Context, p Pet) ([]Pet, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return []Pet{p}, nil
}

func (r *testRepo) Update(ctx context.Context, id int64, ownerID string, p Pet) ([]Pet, error) {
	existing, ok := r.byID[id]
	if !ok || existing.OwnerID != ownerID {
		return []Pet{}, nil
	}
	p.ID = id
	p.OwnerID = ownerID
	r.byID[id] = p
	return []Pet{p}, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64, ownerID string) (int64, error) {
	existing, ok := r.byID[id]
	if !ok || existing.OwnerID != ownerID {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

// -------------------------
// Tests
// -------------------------

func TestCreate_AssignsOwnerFromPathAndStoreID(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	rows, err := svc.Create(context.Background(), "owner-1", Fields{
		Name:  "  Rex ",
		Type:  "dog",
		Shots: true,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, "owner-1", rows[0].OwnerID)
	assert.Equal(t, "Rex", rows[0].Name)
	assert.True(t, rows[0].Shots)
}

func TestCreate_RequiresNameAndOwner(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), "owner-1", Fields{Type: "dog"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), "  ", Fields{Name: "Rex"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_ScopesByOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "owner-1", Fields{Name: "Rex"})
	require.NoError(t, err)
	petID := created[0].ID

	// El dueño lo ve
	rows, err := svc.GetByID(context.Background(), "owner-1", petID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// Otro owner con el mismo id numérico no ve nada
	rows, err = svc.GetByID(context.Background(), "owner-2", petID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpdate_MissingPetIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), "owner-1", 42, Fields{Name: "Rex"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_CannotCrossOwners(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "owner-1", Fields{Name: "Rex"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "owner-2", created[0].ID, Fields{Name: "Hijacked"})
	assert.ErrorIs(t, err, ErrNotFound)

	rows, err := svc.GetByID(context.Background(), "owner-1", created[0].ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rex", rows[0].Name)
}

func TestUpdate_ReplacesMutableFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "owner-1", Fields{Name: "Rex", Shots: true})
	require.NoError(t, err)

	rows, err := svc.Update(context.Background(), "owner-1", created[0].ID, Fields{
		Name: "Rex II",
		Type: "dog",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Devuelve los valores nuevos, id y owner intactos
	assert.Equal(t, created[0].ID, rows[0].ID)
	assert.Equal(t, "owner-1", rows[0].OwnerID)
	assert.Equal(t, "Rex II", rows[0].Name)
	assert.False(t, rows[0].Shots)
}

func TestDelete_ScopedByIDAndOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "owner-1", Fields{Name: "Rex"})
	require.NoError(t, err)
	petID := created[0].ID

	// Otro owner no puede borrarlo aunque adivine el id
	_, err = svc.Delete(context.Background(), "owner-2", petID)
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := svc.Delete(context.Background(), "owner-1", petID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	rows, err := svc.GetByID(context.Background(), "owner-1", petID)
	require.NoError(t, err)
	assert.Empty(t, rows, "deleted pet must be gone")
}
