package middleware

import (
	"net/http"
	"strings"

	"pet-grooming-api/internal/respond"
)

// RequireAuth corta con 401 (envelope estándar) cualquier request que llegue
// sin claims. Todos los endpoints de recursos lo usan; /health no.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.JSON(w, http.StatusUnauthorized, respond.Envelope{
				Message:    "Authentication Required",
				Validation: []string{"You must provide a valid bearer credential"},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
