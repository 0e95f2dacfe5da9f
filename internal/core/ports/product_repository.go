package ports

import (
	"context"

	"github.com/quickshop/store-api/internal/core/domain"
)

// ProductListFilter carries the validated sort/filter/pagination parameters
// for a product listing. The API edge guarantees the pairing rules: Sort and
// Ascending are set together, PriceOp and PriceValue are set together.
type ProductListFilter struct {
	Sort      string // "" = no sort; otherwise "name" or "price"
	Ascending bool
	PriceOp   string // "" = no filter; otherwise gt/lt/gte/lte
	PriceVal  float64
	Skip      int
	Limit     int
}

// ProductUpdate carries mutable product fields for a partial update.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
}

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of products matching filter and the total count
	// before pagination.
	List(ctx context.Context, filter ProductListFilter) ([]*domain.Product, int64, error)
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	// Replace overwrites the whole document, preserving the id.
	Replace(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
