package ports

import (
	"context"

	"github.com/quickshop/store-api/internal/core/domain"
)

// CartService defines cart use-cases. Every method takes the claimed owner
// from the route and the verified identity; the service denies with
// domain.ErrNotOwner whenever they differ, admin scopes included.
type CartService interface {
	Create(ctx context.Context, id domain.Identity, owner string) (*domain.Cart, error)
	Get(ctx context.Context, id domain.Identity, owner, cartID string) (*domain.Cart, error)
	AddItem(ctx context.Context, id domain.Identity, owner, cartID, productID string) (*domain.Cart, error)
	RemoveItem(ctx context.Context, id domain.Identity, owner, cartID, productID string) (*domain.Cart, error)
	ClearItems(ctx context.Context, id domain.Identity, owner, cartID string) (*domain.Cart, error)
	Delete(ctx context.Context, id domain.Identity, owner, cartID string) error
}
