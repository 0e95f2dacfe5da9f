package ports

import (
	"context"

	"github.com/quickshop/store-api/internal/core/domain"
)

// CartRepository defines persistence operations for carts. Every query is
// filtered by owner in addition to the cart id, mirroring the owner-only
// policy at the storage layer: a cart id belonging to another user behaves
// exactly like a missing cart.
type CartRepository interface {
	Create(ctx context.Context, owner string) (*domain.Cart, error)
	FindByID(ctx context.Context, owner, cartID string) (*domain.Cart, error)
	AddItem(ctx context.Context, owner, cartID, productID string) error
	RemoveItem(ctx context.Context, owner, cartID, productID string) error
	ClearItems(ctx context.Context, owner, cartID string) error
	Delete(ctx context.Context, owner, cartID string) error
}
