package services

import (
	"context"

	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/repository"
)

// CatalogService serves the public, read-only product catalog.
type CatalogService struct {
	products repository.ProductRepository
}

func NewCatalogService(products repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.products.ListCategories(ctx)
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return categories, nil
}

// Products lists active, in-stock products, newest first.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.ListAvailable(ctx)
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return products, nil
}

// ProductsByCategory lists the active products of a category. Sold-out
// products are included.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	products, err := s.products.ListActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return products, nil
}

func (s *CatalogService) Product(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.FindActiveByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, ErrStorage.Wrap(err)
	}
	return product, nil
}
