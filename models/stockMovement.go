package models

import "time"

const (
	MovementSale    = "sale"
	MovementRestock = "restock"
	MovementVoid    = "void"
)

// StockMovement is an append-only ledger of every stock adjustment. Rows are
// written in the same transaction as the adjustment itself.
type StockMovement struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ProductID   uint    `gorm:"index;not null" json:"product_id"`
	ProductName string  `gorm:"size:191;not null" json:"product_name"`
	QtyDelta    int     `gorm:"not null" json:"qty_delta"`
	Reason      string  `gorm:"size:16;not null" json:"reason"`
	BillID      *uint   `gorm:"index" json:"bill_id,omitempty"`
	Note        *string `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
