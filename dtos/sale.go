package dtos

import "github.com/shopspring/decimal"

type SaleItemInput struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type SubmitSaleInput struct {
	CustomerName  string          `json:"customer_name"`
	PaymentMethod string          `json:"payment_method"`
	Items         []SaleItemInput `json:"items"`
}

// SaleLine is a validated line with its computed subtotal.
type SaleLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// SaleTransaction is the in-memory, not-yet-persisted output of the builder.
// The total is computed server-side; any client-supplied total is ignored.
type SaleTransaction struct {
	CustomerName  string
	PaymentMethod string
	Total         decimal.Decimal
	Items         []SaleLine
}
