package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-grooming-api/internal/domain/pets"
)

type petsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]pets.Pet
	nextID int64
}

func NewPetsRepo() pets.Repository {
	return &petsRepo{byID: make(map[int64]pets.Pet)}
}

func (r *petsRepo) FindByOwnerID(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}

	// Orden estable por id asc, igual que el ORDER BY del repo de Postgres.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *petsRepo) FindByIDAndOwner(ctx context.Context, id int64, ownerID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, 1)
	if p, ok := r.byID[id]; ok && p.OwnerID == ownerID {
		out = append(out, p)
	}
	return out, nil
}

func (r *petsRepo) Insert(ctx context.Context, p pets.Pet) ([]pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.OwnerID) == "" {
		return nil, errors.New("pet owner id required")
	}

	// Autoincremental, como la secuencia de la tabla.
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p

	return []pets.Pet{p}, nil
}

func (r *petsRepo) Update(ctx context.Context, id int64, ownerID string, p pets.Pet) ([]pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok || existing.OwnerID != ownerID {
		return []pets.Pet{}, nil
	}

	p.ID = id
	p.OwnerID = ownerID
	r.byID[id] = p

	return []pets.Pet{p}, nil
}

func (r *petsRepo) Delete(ctx context.Context, id int64, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok || existing.OwnerID != ownerID {
		return 0, nil
	}

	delete(r.byID, id)
	return 1, nil
}
