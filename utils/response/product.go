package response

import (
	"github.com/shopspring/decimal"

	"bakepos-api/models"
	"bakepos-api/utils/common"
)

type ProductCashier struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Barcode     string          `json:"barcode"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	ImageURL    string          `json:"image_url"`
}

// FilterProductForRole hides the buy price from cashiers.
func FilterProductForRole(p models.Product, role string) interface{} {
	if role == "cashier" {
		return ProductCashier{
			ID:          p.ID,
			Name:        p.Name,
			Description: common.GetStringValue(p.Description),
			Barcode:     p.Barcode,
			Stock:       p.Stock,
			Price:       p.Price,
			Status:      p.Status,
			ImageURL:    common.GetStringValue(p.ImageURL),
		}
	}
	return p
}

func FilterProductsForRole(products []models.Product, role string) []interface{} {
	out := make([]interface{}, 0, len(products))
	for _, p := range products {
		out = append(out, FilterProductForRole(p, role))
	}
	return out
}
