package auth

// Claims representa la información extraída del token del identity provider.
// UserID es el id opaco del profile (sub en el token de Okta).
type Claims struct {
	UserID string
	Email  string
}
