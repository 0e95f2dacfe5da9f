package ports

import (
	"context"

	"github.com/quickshop/store-api/internal/core/domain"
)

// RegisterInput carries the registration payload. Admin=true grants the admin
// role; this is a bootstrap mechanism, not suitable for production use.
type RegisterInput struct {
	Username string
	Password string
	Admin    bool
	Email    string
	FullName string
}

// AuthService handles registration and credential-based token issuance.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login validates credentials and returns a signed access token. Unknown
	// usernames and wrong passwords both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
