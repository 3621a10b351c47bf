package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashSession struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	UserID       uint             `gorm:"index;not null" json:"user_id"`
	OpeningCash  decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"opening_cash"`
	TotalCashIn  decimal.Decimal  `gorm:"type:decimal(12,2);default:0" json:"total_cash_in"`
	ExpectedCash decimal.Decimal  `gorm:"type:decimal(12,2);default:0" json:"expected_cash"`
	ClosingCash  *decimal.Decimal `gorm:"type:decimal(12,2)" json:"closing_cash,omitempty"`
	Difference   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"difference,omitempty"`
	Status       string           `gorm:"size:16;default:'open'" json:"status"`
	OpenedAt     time.Time        `json:"opened_at"`
	ClosedAt     *time.Time       `json:"closed_at,omitempty"`
}
