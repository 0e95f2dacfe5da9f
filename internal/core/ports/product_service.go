package ports

import (
	"context"

	"github.com/quickshop/store-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
}

// ProductListResult is the paginated listing envelope.
type ProductListResult struct {
	Skip         int
	Limit        int
	TotalResults int64
	Products     []*domain.Product
}

// ProductService defines catalog use-cases. Reads are public; writes require
// the products:admin scope, enforced by the scope middleware before the
// handler runs.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductListFilter) (*ProductListResult, error)
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	Replace(ctx context.Context, id string, input CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
