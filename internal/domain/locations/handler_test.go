package locations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Repo donde el pre-check ve la fila pero el delete no afecta nada, como si
// otra transacción la hubiera borrado en el medio.
type vanishingLocationRepo struct{}

func (vanishingLocationRepo) FindAll(ctx context.Context) ([]Location, error) {
	return []Location{}, nil
}

func (vanishingLocationRepo) FindByGroomerID(ctx context.Context, groomerID string) ([]Location, error) {
	return []Location{{ID: "loc-1", GroomerID: groomerID}}, nil
}

func (vanishingLocationRepo) Insert(ctx context.Context, loc Location) ([]Location, error) {
	return []Location{loc}, nil
}

func (vanishingLocationRepo) Update(ctx context.Context, groomerID string, loc Location) ([]Location, error) {
	return []Location{loc}, nil
}

func (vanishingLocationRepo) DeleteByGroomerID(ctx context.Context, groomerID string) (int64, error) {
	return 0, nil
}

func TestDeleteLocation_ZeroRowsAfterPreCheckIs500(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(vanishingLocationRepo{}), zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/locations/groomer-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	// Existencia confirmada y count cero: 500, nunca 404 ni 200.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unexpected error deleting the location for groomer groomer-1", body["message"])
	assert.Equal(t, []any{}, body["validation"])
	assert.Equal(t, map[string]any{}, body["data"])
}
