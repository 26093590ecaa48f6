package okta

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-grooming-api/internal/ports/auth"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty    = errors.New("token is empty")
	ErrNotConfigured = errors.New("okta verifier not configured")
)

// Verifier implementa auth.AuthVerifier contra Okta.
// Verifica la firma del access token localmente contra el JWKS del issuer;
// no hay introspección remota por request.
type Verifier struct {
	jwks     keyfunc.Keyfunc
	issuer   string
	audience string
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// NewVerifier arma el verifier para un issuer de Okta
// (p.ej. https://dev-123456.okta.com/oauth2/default). El keyfunc cachea y
// refresca las keys del endpoint /v1/keys por su cuenta.
func NewVerifier(ctx context.Context, issuer, audience string) (*Verifier, error) {
	issuer = strings.TrimRight(strings.TrimSpace(issuer), "/")
	if issuer == "" {
		return nil, ErrNotConfigured
	}

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{issuer + "/v1/keys"})
	if err != nil {
		return nil, fmt.Errorf("loading jwks for %s: %w", issuer, err)
	}

	return &Verifier{
		jwks:     jwks,
		issuer:   issuer,
		audience: audience,
	}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.jwks == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := jwt.ParseWithClaims(
		token,
		&tokenClaims{},
		v.jwks.KeyfuncCtx(ctx),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithValidMethods([]string{"RS256"}),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("okta verify failed: %w", err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return auth.Claims{}, errors.New("okta token has unexpected claims")
	}

	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return auth.Claims{}, errors.New("okta claims missing subject")
	}

	return auth.Claims{
		UserID: userID,
		Email:  strings.TrimSpace(claims.Email),
	}, nil
}
