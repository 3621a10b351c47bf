package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BillStatusActive = "active"
	BillStatusVoided = "voided"
)

const (
	PaymentCash = "CASH"
	PaymentCard = "CARD"
	PaymentUPI  = "UPI"
	PaymentCOD  = "COD"
)

type Bill struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	BillNo        string          `gorm:"uniqueIndex;size:36" json:"bill_no"`
	CustomerName  string          `gorm:"size:191;default:'--'" json:"customer_name"`
	PaymentMethod string          `gorm:"size:8;not null" json:"payment_method"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	Status        string          `gorm:"size:16;default:'active'" json:"status"`
	Items         []BillItem      `json:"items"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BillItem is a point-in-time snapshot: product name and price are copied at
// sale time so the row stays meaningful if the product is renamed or retired.
// ProductID is kept only for analytics joins, never for integrity.
type BillItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	BillID      uint            `gorm:"index;not null" json:"bill_id"`
	ProductID   *uint           `json:"product_id,omitempty"`
	ProductName string          `gorm:"size:191;not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentCOD:
		return true
	}
	return false
}
