package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quickshop/store-api/internal/core/authz"
	"github.com/quickshop/store-api/internal/core/domain"
	"github.com/quickshop/store-api/internal/core/ports"
)

// CartService implements cart use-cases. Access is owner-only without
// exception: the admin scopes are never consulted here, so an admin token
// acting on another user's cart is denied the same way any other token is.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, log zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, log: log}
}

func (s *CartService) Create(ctx context.Context, id domain.Identity, owner string) (*domain.Cart, error) {
	if err := authz.Decide(id, domain.ScopeCartsSelf, owner); err != nil {
		return nil, err
	}
	cart, err := s.carts.Create(ctx, owner)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("cart_id", cart.ID).Str("owner", owner).Msg("cart created")
	return cart, nil
}

func (s *CartService) Get(ctx context.Context, id domain.Identity, owner, cartID string) (*domain.Cart, error) {
	if err := authz.Decide(id, domain.ScopeCartsSelf, owner); err != nil {
		return nil, err
	}
	return s.carts.FindByID(ctx, owner, cartID)
}

// AddItem appends a product to the cart after confirming the product exists.
func (s *CartService) AddItem(ctx context.Context, id domain.Identity, owner, cartID, productID string) (*domain.Cart, error) {
	if err := authz.Decide(id, domain.ScopeCartsSelf, owner); err != nil {
		return nil, err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.carts.AddItem(ctx, owner, cartID, productID); err != nil {
		return nil, err
	}
	return s.carts.FindByID(ctx, owner, cartID)
}

func (s *CartService) RemoveItem(ctx context.Context, id domain.Identity, owner, cartID, productID string) (*domain.Cart, error) {
	if err := authz.Decide(id, domain.ScopeCartsSelf, owner); err != nil {
		return nil, err
	}
	cart, err := s.carts.FindByID(ctx, owner, cartID)
	if err != nil {
		return nil, err
	}
	if !cart.Contains(productID) {
		return nil, domain.ErrItemNotInCart
	}
	if err := s.carts.RemoveItem(ctx, owner, cartID, productID); err != nil {
		return nil, err
	}
	return s.carts.FindByID(ctx, owner, cartID)
}

func (s *CartService) ClearItems(ctx context.Context, id domain.Identity, owner, cartID string) (*domain.Cart, error) {
	if err := authz.Decide(id, domain.ScopeCartsSelf, owner); err != nil {
		return nil, err
	}
	if err := s.carts.ClearItems(ctx, owner, cartID); err != nil {
		return nil, err
	}
	return s.carts.FindByID(ctx, owner, cartID)
}

func (s *CartService) Delete(ctx context.Context, id domain.Identity, owner, cartID string) error {
	if err := authz.Decide(id, domain.ScopeCartsSelf, owner); err != nil {
		return err
	}
	if err := s.carts.Delete(ctx, owner, cartID); err != nil {
		return err
	}
	s.log.Info().Str("cart_id", cartID).Str("owner", owner).Msg("cart deleted")
	return nil
}
