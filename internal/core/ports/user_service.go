package ports

import (
	"context"

	"github.com/quickshop/store-api/internal/core/domain"
)

// UpdateUserInput is the self-update payload. Username is structurally
// excluded; handlers additionally reject raw payloads that attempt to set it.
type UpdateUserInput struct {
	Password *string
	Email    *string
	FullName *string
}

// UserService defines account use-cases. Ownership checks (self-only rules)
// run inside the service via the authz engine; admin-only operations are
// gated by the scope middleware at the route level.
type UserService interface {
	// Get returns the named user's record when the identity is the user
	// itself or carries the admin scope.
	Get(ctx context.Context, id domain.Identity, username string) (*domain.User, error)
	List(ctx context.Context, id domain.Identity) ([]*domain.User, error)
	// Update applies a partial update to the identity's own record.
	Update(ctx context.Context, id domain.Identity, username string, input UpdateUserInput) (*domain.User, error)
	// Delete removes the identity's own record (self scope) or any record
	// (admin scope).
	Delete(ctx context.Context, id domain.Identity, username string) error
}
