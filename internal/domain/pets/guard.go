package pets

import (
	"fmt"
	"net/http"

	"pet-grooming-api/internal/middleware"
	"pet-grooming-api/internal/respond"

	"github.com/go-chi/chi/v5"
)

// ownerGuard compara el auth id del caller contra el {id} del path
// (match exacto, case-sensitive) y corta con 401 si no coinciden.
// Aplica solo a las rutas de pets: locations confía únicamente en la
// autenticación upstream, una inconsistencia intencional del diseño.
// Exponer ambos ids en validation es parte del contrato: es un boundary
// interno de confianza y sirve para diagnosticar el mismatch.
func ownerGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		routeID := chi.URLParam(r, "id")

		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.UserID != routeID {
			respond.AccessDenied(w, fmt.Sprintf(
				"Your auth id %s and the route profile id %s don't match",
				claims.UserID, routeID,
			))
			return
		}

		next.ServeHTTP(w, r)
	})
}
