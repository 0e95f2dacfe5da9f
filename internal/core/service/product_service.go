package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quickshop/store-api/internal/core/domain"
	"github.com/quickshop/store-api/internal/core/ports"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ProductService implements catalog use-cases. Write operations reach this
// service only through routes gated on the products:admin scope.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product, err := s.repo.Create(ctx, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of products. The filter arrives pre-validated from the
// API edge; only pagination bounds are normalized here.
func (s *ProductService) List(ctx context.Context, filter ports.ProductListFilter) (*ports.ProductListResult, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ProductListResult{
		Skip:         filter.Skip,
		Limit:        filter.Limit,
		TotalResults: total,
		Products:     products,
	}, nil
}

func (s *ProductService) Update(ctx context.Context, id string, upd ports.ProductUpdate) (*domain.Product, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *ProductService) Replace(ctx context.Context, id string, input ports.CreateProductInput) (*domain.Product, error) {
	return s.repo.Replace(ctx, id, &domain.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	})
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
