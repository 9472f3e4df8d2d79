package services

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/repository"
)

// ImageUploader stores a product image and returns its public URL.
type ImageUploader interface {
	UploadProductImage(ctx context.Context, productID uint, filename, contentType string, body io.Reader) (string, error)
}

// ProductImage is an image file received from a seller.
type ProductImage struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type SellerService struct {
	products repository.ProductRepository
	uploader ImageUploader
}

// NewSellerService builds the seller service. A nil uploader disables image
// uploads.
func NewSellerService(products repository.ProductRepository, uploader ImageUploader) *SellerService {
	return &SellerService{products: products, uploader: uploader}
}

func (s *SellerService) CreateProduct(ctx context.Context, sellerID uint, data models.ProductData) (*models.Product, error) {
	if err := validateProductData(data); err != nil {
		return nil, err
	}

	product := &models.Product{SellerID: sellerID}
	applyProductData(product, data)
	if err := s.products.Create(ctx, product); err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return product, nil
}

// Authorize fails with ErrNotAuthorized unless the product belongs to the
// seller. Absent products are reported the same way.
func (s *SellerService) Authorize(ctx context.Context, sellerID, productID uint) (*models.Product, error) {
	product, err := s.products.FindByIDAndSeller(ctx, productID, sellerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotAuthorized
		}
		return nil, ErrStorage.Wrap(err)
	}
	return product, nil
}

func (s *SellerService) UpdateProduct(ctx context.Context, sellerID, productID uint, data models.ProductData) (*models.Product, error) {
	product, err := s.Authorize(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}
	if err := validateProductData(data); err != nil {
		return nil, err
	}

	applyProductData(product, data)
	if err := s.products.Update(ctx, product); err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return product, nil
}

func (s *SellerService) DeleteProduct(ctx context.Context, sellerID, productID uint) error {
	if _, err := s.Authorize(ctx, sellerID, productID); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, productID); err != nil {
		return ErrStorage.Wrap(err)
	}
	return nil
}

func (s *SellerService) Products(ctx context.Context, sellerID uint) ([]models.Product, error) {
	products, err := s.products.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return products, nil
}

// Search filters the seller's products. A non-blank id is an exact match and
// the name is ignored; otherwise a non-blank name matches case-insensitively.
func (s *SellerService) Search(ctx context.Context, sellerID uint, rawID, name string) ([]models.Product, error) {
	filter := repository.ProductSearch{Name: name}
	if rawID = strings.TrimSpace(rawID); rawID != "" {
		id, err := strconv.ParseUint(rawID, 10, strconv.IntSize)
		if err != nil || id == 0 {
			return []models.Product{}, nil
		}
		filter = repository.ProductSearch{ID: uint(id)}
	}

	products, err := s.products.SearchBySeller(ctx, sellerID, filter)
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return products, nil
}

// UploadImage stores image for one of the seller's products and points the
// product at it.
func (s *SellerService) UploadImage(ctx context.Context, sellerID, productID uint, image ProductImage) (*models.Product, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}
	product, err := s.Authorize(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.UploadProductImage(ctx, productID, image.Filename, image.ContentType, image.Body)
	if err != nil {
		return nil, ErrUploadFailed.Wrap(err)
	}
	if err := s.products.UpdateImageURL(ctx, productID, url); err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	product.ImageURL = url
	return product, nil
}

func validateProductData(data models.ProductData) error {
	switch {
	case strings.TrimSpace(data.Name) == "":
		return ErrMissingFields.WithMessage("Name is required")
	case data.Price == nil || data.Price.IsNegative():
		return ErrMissingFields.WithMessage("A valid price is required")
	case data.CategoryID == 0:
		return ErrMissingFields.WithMessage("Category is required")
	case data.Stock == nil || *data.Stock < 0:
		return ErrMissingFields.WithMessage("A valid stock count is required")
	}
	return nil
}

func applyProductData(product *models.Product, data models.ProductData) {
	product.Name = strings.TrimSpace(data.Name)
	product.Description = data.Description
	product.Price = data.Price.Round(2)
	product.CategoryID = data.CategoryID
	product.Stock = *data.Stock
	product.ImageURL = data.ImageURL
	product.Size = data.Size
	product.Color = data.Color
	product.TargetAudience = data.TargetAudience
	product.IsActive = data.IsActive == nil || *data.IsActive
}
