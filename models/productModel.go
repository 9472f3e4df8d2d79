package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description"`
}

type Product struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	SellerID       uint            `json:"seller_id" gorm:"index;not null"`
	CategoryID     uint            `json:"category_id" gorm:"index;not null"`
	Name           string          `json:"name" gorm:"not null"`
	Description    string          `json:"description" gorm:"type:text"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock          int             `json:"stock" gorm:"not null;check:stock >= 0"`
	Size           string          `json:"size" gorm:"size:20"`
	Color          string          `json:"color" gorm:"size:50"`
	ImageURL       string          `json:"image_url" gorm:"column:image_url"`
	TargetAudience string          `json:"target_audience" gorm:"size:50"`
	IsActive       bool            `json:"is_active" gorm:"not null"`
	CategoryName   string          `json:"category_name,omitempty" gorm:"->;-:migration"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductData is the seller-supplied body for creating or replacing a product.
type ProductData struct {
	Name           string           `json:"name" binding:"required"`
	Description    string           `json:"description"`
	Price          *decimal.Decimal `json:"price" binding:"required"`
	CategoryID     uint             `json:"category_id" binding:"required"`
	Stock          *int             `json:"stock" binding:"required,min=0"`
	ImageURL       string           `json:"image_url"`
	Size           string           `json:"size"`
	Color          string           `json:"color"`
	TargetAudience string           `json:"target_audience"`
	IsActive       *bool            `json:"is_active"`
}
