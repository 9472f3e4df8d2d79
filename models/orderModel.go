package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID            uint                                 `json:"id" gorm:"primaryKey"`
	OrderID       string                               `json:"order_id" gorm:"-"`
	UserID        uint                                 `json:"user_id" gorm:"index;not null"`
	Address       datatypes.JSONType[AddressSnapshot] `json:"address"`
	PaymentMethod string                               `json:"payment_method" gorm:"size:50;not null"`
	IsPaid        bool                                 `json:"is_paid" gorm:"not null"`
	TotalAmount   decimal.Decimal                      `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	OrderStatus   OrderStatus                          `json:"order_status" gorm:"type:varchar(20);not null"`
	PlacedAt      time.Time                            `json:"placed_at" gorm:"autoCreateTime;index"`
	Items         []OrderItem                          `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID              uint            `json:"-" gorm:"primaryKey"`
	OrderID         uint            `json:"-" gorm:"index;not null"`
	ProductID       uint            `json:"product_id" gorm:"not null"`
	ProductName     string          `json:"product_name" gorm:"not null"`
	ImageURL        string          `json:"image_url" gorm:"column:image_url"`
	Size            string          `json:"size,omitempty" gorm:"size:20"`
	Color           string          `json:"color,omitempty" gorm:"size:50"`
	Quantity        int             `json:"quantity" gorm:"not null"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase" gorm:"type:decimal(10,2);not null"`
}

// FormatOrderID renders the external order reference, e.g. O-0007.
func FormatOrderID(id uint) string {
	return fmt.Sprintf("O-%04d", id)
}

// OrderItemData is one line of the cart snapshot sent by the client.
type OrderItemData struct {
	ProductID uint             `json:"product_id"`
	Name      string           `json:"name"`
	ImageURL  string           `json:"image_url"`
	Size      string           `json:"size"`
	Color     string           `json:"color"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
}

type PlaceOrderData struct {
	Items         []OrderItemData `json:"items"`
	AddressID     uint            `json:"addressId"`
	PaymentMethod string          `json:"paymentMethod"`
}
