package auth

import "context"

// AuthVerifier verifica un bearer token y devuelve claims o error.
// Su único contrato con el resto del sistema es poblar Claims.UserID,
// que es lo que consume el guard de ownership en pets.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
