package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-grooming-api/internal/domain/locations"
)

type locationsRepo struct {
	mu   sync.RWMutex
	rows []locations.Location
}

func NewLocationsRepo() locations.Repository {
	return &locationsRepo{rows: make([]locations.Location, 0)}
}

func (r *locationsRepo) FindAll(ctx context.Context) ([]locations.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]locations.Location, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *locationsRepo) FindByGroomerID(ctx context.Context, groomerID string) ([]locations.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]locations.Location, 0)
	for _, loc := range r.rows {
		if loc.GroomerID == groomerID {
			out = append(out, loc)
		}
	}
	return out, nil
}

func (r *locationsRepo) Insert(ctx context.Context, loc locations.Location) ([]locations.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(loc.ID) == "" {
		return nil, errors.New("location id required")
	}
	for _, existing := range r.rows {
		if existing.ID == loc.ID {
			return nil, errors.New("location already exists")
		}
	}

	r.rows = append(r.rows, loc)
	return []locations.Location{loc}, nil
}

// Update replica la semántica del UPDATE ... WHERE groomer_id: toca todas
// las filas del groomer (el schema no fuerza una sola) preservando cada id.
func (r *locationsRepo) Update(ctx context.Context, groomerID string, loc locations.Location) ([]locations.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]locations.Location, 0)
	for i, existing := range r.rows {
		if existing.GroomerID != groomerID {
			continue
		}
		updated := loc
		updated.ID = existing.ID
		r.rows[i] = updated
		out = append(out, updated)
	}
	return out, nil
}

func (r *locationsRepo) DeleteByGroomerID(ctx context.Context, groomerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	kept := r.rows[:0]
	for _, existing := range r.rows {
		if existing.GroomerID == groomerID {
			count++
			continue
		}
		kept = append(kept, existing)
	}
	r.rows = kept
	return count, nil
}
