package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bakepos-api/dtos"
	"bakepos-api/metrics"
	"bakepos-api/models"
	"bakepos-api/utils/log"
)

// DefaultCustomerName stands in for walk-in customers who give no name.
const DefaultCustomerName = "--"

type SaleService interface {
	// BuildTransaction validates raw input and computes the authoritative
	// total. Pure: no I/O, deterministic, safe to call repeatedly.
	BuildTransaction(input dtos.SubmitSaleInput) (*dtos.SaleTransaction, error)

	// CommitSale persists the bill header, its line items, and the stock
	// decrements as one database transaction. Any failure rolls the whole
	// sale back; a bill is never partially visible.
	CommitSale(txn *dtos.SaleTransaction) (uint, error)

	VoidBill(billID uint, userID *uint, ipAddress string) (*models.Bill, error)
}

type saleService struct {
	db        *gorm.DB
	inventory InventoryService
}

func NewSaleService(db *gorm.DB) SaleService {
	return &saleService{
		db:        db,
		inventory: NewInventoryService(db),
	}
}

func (s *saleService) BuildTransaction(input dtos.SubmitSaleInput) (*dtos.SaleTransaction, error) {
	if len(input.Items) == 0 {
		return nil, &ValidationError{Reason: "no items provided"}
	}

	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return nil, &ValidationError{Reason: "unknown payment method '" + input.PaymentMethod + "'"}
	}

	customer := strings.TrimSpace(input.CustomerName)
	if customer == "" {
		customer = DefaultCustomerName
	}

	total := decimal.Zero
	lines := make([]dtos.SaleLine, 0, len(input.Items))

	for _, item := range input.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			return nil, &ValidationError{Reason: "item is missing a product name"}
		}
		if item.Quantity <= 0 {
			return nil, &ValidationError{Reason: "invalid quantity for '" + item.ProductName + "'"}
		}
		if item.UnitPrice.IsNegative() {
			return nil, &ValidationError{Reason: "negative unit price for '" + item.ProductName + "'"}
		}

		subtotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)

		lines = append(lines, dtos.SaleLine{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    subtotal,
		})
	}

	return &dtos.SaleTransaction{
		CustomerName:  customer,
		PaymentMethod: input.PaymentMethod,
		Total:         total,
		Items:         lines,
	}, nil
}

func (s *saleService) CommitSale(txn *dtos.SaleTransaction) (uint, error) {
	defer metrics.TrackDBOperation("commit_sale")(time.Now())

	var billID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		bill := models.Bill{
			BillNo:        uuid.NewString(),
			CustomerName:  txn.CustomerName,
			PaymentMethod: txn.PaymentMethod,
			Total:         txn.Total,
			Status:        models.BillStatusActive,
		}

		items := make([]models.BillItem, 0, len(txn.Items))
		for _, line := range txn.Items {
			item := models.BillItem{
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
				Subtotal:    line.Subtotal,
			}
			// Analytics back-reference only; a missing product is fine.
			var product models.Product
			if err := tx.Where("name = ?", line.ProductName).First(&product).Error; err == nil {
				id := product.ID
				item.ProductID = &id
			}
			items = append(items, item)
		}
		bill.Items = items

		if err := tx.Create(&bill).Error; err != nil {
			return &StorageError{Err: err}
		}

		// Stock last: never decrement for a sale whose header or lines
		// failed to persist. Errors here roll everything back.
		for _, line := range txn.Items {
			if err := s.inventory.ReserveStock(tx, line.ProductName, line.Quantity, &bill.ID); err != nil {
				return err
			}
		}

		billID = bill.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return billID, nil
}

// VoidBill soft-voids a committed bill and returns its quantities to stock.
// The audit row is written in the same transaction so void and audit trail
// commit or roll back together.
func (s *saleService) VoidBill(billID uint, userID *uint, ipAddress string) (*models.Bill, error) {
	defer metrics.TrackDBOperation("void_bill")(time.Now())

	var bill models.Bill

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&bill, billID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ValidationError{Reason: "bill not found"}
			}
			return &StorageError{Err: err}
		}

		if bill.Status != models.BillStatusActive {
			return &ValidationError{Reason: "only active bills can be voided"}
		}

		for _, item := range bill.Items {
			if err := s.inventory.ReturnStock(tx, item.ProductName, item.Quantity, &bill.ID); err != nil {
				return err
			}
		}

		bill.Status = models.BillStatusVoided
		if err := tx.Save(&bill).Error; err != nil {
			return &StorageError{Err: err}
		}

		description := "Bill '" + bill.BillNo + "' voided"
		if err := log.CreateBillAuditLog(tx, "void", bill.ID, nil, &bill, userID, ipAddress, description); err != nil {
			return &StorageError{Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

// BillDateRange parses a YYYY-MM-DD filter into a [start, end) day window.
func BillDateRange(date string) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, start.Add(24 * time.Hour), true
}
