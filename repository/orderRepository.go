package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vasthra/vasthra-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderRepository interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Order, error)
}

// PlaceOrderParams carries an already validated cart snapshot.
type PlaceOrderParams struct {
	UserID        uint
	AddressID     uint
	PaymentMethod string
	Total         decimal.Decimal
	Items         []models.OrderItem
}

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// PlaceOrder writes the order, its items, the stock decrements and the cart
// deletions in one transaction. Nothing persists unless every step succeeds.
func (r *GormOrderRepository) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*models.Order, error) {
	var order models.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.Where("id = ? AND user_id = ?", params.AddressID, params.UserID).
			First(&address).Error; err != nil {
			if IsNotFound(err) {
				return ErrAddressNotFound
			}
			return err
		}

		order = models.Order{
			UserID:        params.UserID,
			Address:       datatypes.NewJSONType(address.Snapshot()),
			PaymentMethod: params.PaymentMethod,
			IsPaid:        false,
			TotalAmount:   params.Total,
			OrderStatus:   models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(params.Items))
		for _, item := range params.Items {
			item.OrderID = order.ID
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrStockUnavailable
			}

			if err := tx.Where("user_id = ? AND product_id = ?", params.UserID, item.ProductID).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			items = append(items, item)
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.OrderID = models.FormatOrderID(order.ID)
	return &order, nil
}

func (r *GormOrderRepository) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("placed_at DESC").
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].OrderID = models.FormatOrderID(orders[i].ID)
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	order.OrderID = models.FormatOrderID(order.ID)
	return &order, nil
}
