package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProductStatusActive  = "active"
	ProductStatusRetired = "retired"
)

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"uniqueIndex;size:191;not null" json:"name" binding:"required"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	Barcode     string          `gorm:"uniqueIndex;size:64" json:"barcode"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	BuyPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"buy_price"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	Status      string          `gorm:"size:16;default:'active'" json:"status"`
	ImageURL    *string         `json:"image_url,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
