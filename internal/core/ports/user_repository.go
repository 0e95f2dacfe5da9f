package ports

import (
	"context"

	"github.com/quickshop/store-api/internal/core/domain"
)

// UserUpdate carries the mutable user fields for a partial update. Username
// is deliberately absent: the document key cannot be represented here, which
// makes the forbidden mutation unexpressible at the type level.
type UserUpdate struct {
	PasswordHash *string
	Email        *string
	FullName     *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// username is already taken.
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update applies the non-nil fields of upd to the named user.
	Update(ctx context.Context, username string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}
