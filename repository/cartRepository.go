package repository

import (
	"context"

	"github.com/vasthra/vasthra-api/models"
	"gorm.io/gorm"
)

type CartRepository interface {
	Find(ctx context.Context, userID, productID uint) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) error
	Delete(ctx context.Context, userID, productID uint) error
	Clear(ctx context.Context, userID uint) error
	ListLines(ctx context.Context, userID uint) ([]models.CartLine, error)
}

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Find(ctx context.Context, userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	return translateWriteError(r.db.WithContext(ctx).Create(item).Error)
}

func (r *GormCartRepository) UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
}

func (r *GormCartRepository) Delete(ctx context.Context, userID, productID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

func (r *GormCartRepository) Clear(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// ListLines joins the caller's cart with live product data. Rows whose
// product is inactive are left out but not removed.
func (r *GormCartRepository) ListLines(ctx context.Context, userID uint) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	err := r.db.WithContext(ctx).
		Table("carts").
		Select("carts.id AS cart_id, carts.quantity, products.id AS product_id, products.name, products.price, products.image_url, products.stock").
		Joins("JOIN products ON products.id = carts.product_id").
		Where("carts.user_id = ? AND products.is_active = ?", userID, true).
		Order("carts.id ASC").
		Scan(&lines).Error
	return lines, err
}
