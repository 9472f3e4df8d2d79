package repository

import (
	"context"

	"github.com/vasthra/vasthra-api/models"
	"gorm.io/gorm"
)

type AddressRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Address, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Address, error)
	Create(ctx context.Context, address *models.Address) error
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id, userID uint) (bool, error)
}

type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) ListByUser(ctx context.Context, userID uint) ([]models.Address, error) {
	addresses := []models.Address{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&addresses).Error
	return addresses, err
}

func (r *GormAddressRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *GormAddressRepository) Create(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

// Update rewrites every field of an address the caller already owns.
func (r *GormAddressRepository) Update(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Model(&models.Address{}).
		Where("id = ? AND user_id = ?", address.ID, address.UserID).
		Updates(map[string]any{
			"street":      address.Street,
			"city":        address.City,
			"state":       address.State,
			"country":     address.Country,
			"postal_code": address.PostalCode,
			"landmark":    address.Landmark,
		}).Error
}

func (r *GormAddressRepository) Delete(ctx context.Context, id, userID uint) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	return result.RowsAffected > 0, result.Error
}
