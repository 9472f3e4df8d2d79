package services

import (
	"context"
	"fmt"

	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/repository"
)

type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

func (s *CartService) List(ctx context.Context, userID uint) ([]models.CartLine, error) {
	lines, err := s.carts.ListLines(ctx, userID)
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return lines, nil
}

// Add puts quantity units of a product into the caller's cart, summing with
// any existing row. created reports whether a new row was inserted.
func (s *CartService) Add(ctx context.Context, userID uint, data models.CartItemData) (created bool, err error) {
	if data.ProductID == 0 || data.Quantity < 1 {
		return false, ErrInvalidQuantity
	}

	product, err := s.sellableProduct(ctx, data.ProductID)
	if err != nil {
		return false, err
	}
	if product.Stock < data.Quantity {
		return false, outOfStock(product.Stock)
	}

	existing, err := s.carts.Find(ctx, userID, data.ProductID)
	switch {
	case err == nil:
		total := existing.Quantity + data.Quantity
		if product.Stock < total {
			return false, outOfStock(product.Stock)
		}
		if err := s.carts.UpdateQuantity(ctx, userID, data.ProductID, total); err != nil {
			return false, ErrStorage.Wrap(err)
		}
		return false, nil
	case repository.IsNotFound(err):
	default:
		return false, ErrStorage.Wrap(err)
	}

	item := &models.CartItem{UserID: userID, ProductID: data.ProductID, Quantity: data.Quantity}
	if err := s.carts.Create(ctx, item); err != nil {
		return false, ErrStorage.Wrap(err)
	}
	return true, nil
}

// Update sets the quantity of a product already in the caller's cart.
func (s *CartService) Update(ctx context.Context, userID uint, data models.CartItemData) error {
	if data.ProductID == 0 || data.Quantity < 1 {
		return ErrInvalidQuantity.WithMessage("Valid productId and quantity required")
	}

	product, err := s.sellableProduct(ctx, data.ProductID)
	if err != nil {
		return err
	}
	if data.Quantity > product.Stock {
		return outOfStock(product.Stock)
	}

	if _, err := s.carts.Find(ctx, userID, data.ProductID); err != nil {
		if repository.IsNotFound(err) {
			return ErrCartItemNotFound
		}
		return ErrStorage.Wrap(err)
	}

	if err := s.carts.UpdateQuantity(ctx, userID, data.ProductID, data.Quantity); err != nil {
		return ErrStorage.Wrap(err)
	}
	return nil
}

// Remove deletes one product from the cart. Removing an absent row succeeds.
func (s *CartService) Remove(ctx context.Context, userID, productID uint) error {
	if err := s.carts.Delete(ctx, userID, productID); err != nil {
		return ErrStorage.Wrap(err)
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	if err := s.carts.Clear(ctx, userID); err != nil {
		return ErrStorage.Wrap(err)
	}
	return nil
}

func (s *CartService) sellableProduct(ctx context.Context, productID uint) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, ErrStorage.Wrap(err)
	}
	if !product.IsActive {
		return nil, ErrInactive
	}
	return product, nil
}

func outOfStock(stock int) *ServiceError {
	return ErrInsufficientStock.WithMessage(fmt.Sprintf("Only %d items in stock", stock))
}
