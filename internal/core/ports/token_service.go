package ports

import "github.com/quickshop/store-api/internal/core/domain"

// TokenService mints and verifies signed access tokens. Verify is fully
// self-contained: no store or network call happens on the request path.
type TokenService interface {
	// Issue resolves the user's scopes from its role and signs a token
	// carrying subject, scopes, and expiry. The scope set is a snapshot;
	// role changes after issuance do not affect outstanding tokens.
	Issue(user *domain.User) (string, error)
	// Verify checks signature and expiry and extracts the identity.
	// Expired tokens return domain.ErrTokenExpired; anything else wrong
	// with the token returns domain.ErrTokenInvalid.
	Verify(raw string) (*domain.Identity, error)
}
