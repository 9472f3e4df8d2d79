package repository

import (
	"context"
	"strings"

	"github.com/vasthra/vasthra-api/models"
	"gorm.io/gorm"
)

type ProductRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	ListAvailable(ctx context.Context) ([]models.Product, error)
	ListActiveByCategory(ctx context.Context, categoryID uint) ([]models.Product, error)
	FindActiveByID(ctx context.Context, id uint) (*models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindByIDAndSeller(ctx context.Context, id, sellerID uint) (*models.Product, error)
	ListBySeller(ctx context.Context, sellerID uint) ([]models.Product, error)
	SearchBySeller(ctx context.Context, sellerID uint, filter ProductSearch) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	UpdateImageURL(ctx context.Context, id uint, url string) error
	Delete(ctx context.Context, id uint) error
}

// ProductSearch narrows a seller's products. A non-zero ID wins over Name.
type ProductSearch struct {
	ID   uint
	Name string
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) withCategory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id")
}

func (r *GormProductRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

func (r *GormProductRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// ListAvailable returns active, in-stock products, newest first.
func (r *GormProductRepository) ListAvailable(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := r.withCategory(ctx).
		Where("products.is_active = ? AND products.stock > 0", true).
		Order("products.created_at DESC").
		Find(&products).Error
	return products, err
}

// ListActiveByCategory does not filter on stock.
func (r *GormProductRepository) ListActiveByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	products := []models.Product{}
	err := r.withCategory(ctx).
		Where("products.category_id = ? AND products.is_active = ?", categoryID, true).
		Order("products.created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindActiveByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.withCategory(ctx).
		Where("products.id = ? AND products.is_active = ?", id, true).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByIDAndSeller(ctx context.Context, id, sellerID uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", id, sellerID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) ListBySeller(ctx context.Context, sellerID uint) ([]models.Product, error) {
	products := []models.Product{}
	err := r.withCategory(ctx).
		Where("products.seller_id = ?", sellerID).
		Order("products.created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) SearchBySeller(ctx context.Context, sellerID uint, filter ProductSearch) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Where("seller_id = ?", sellerID)

	if filter.ID != 0 {
		query = query.Where("id = ?", filter.ID)
	} else if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	products := []models.Product{}
	err := query.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update replaces the seller-editable columns. Zero values are written too.
func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "category_id", "stock", "image_url", "size", "color", "target_audience", "is_active").
		Updates(product).Error
}

func (r *GormProductRepository) UpdateImageURL(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Update("image_url", url).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}
