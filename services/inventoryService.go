package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"bakepos-api/dtos"
	"bakepos-api/metrics"
	"bakepos-api/models"
	"bakepos-api/utils/pagination"
)

type InventoryService interface {
	// ReserveStock atomically decrements stock for the named active product,
	// failing without any change if the remaining stock would go negative.
	// It runs on the *gorm.DB it is given so callers can join it into a
	// larger transaction.
	ReserveStock(db *gorm.DB, productName string, quantity int, billID *uint) error

	Restock(input dtos.RestockInput) (*models.Product, error)
	ReturnStock(db *gorm.DB, productName string, quantity int, billID *uint) error
	GetMovements(filter dtos.InventoryFilter) (map[string]interface{}, error)
}

type inventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) InventoryService {
	return &inventoryService{db: db}
}

// The read and write are a single conditional UPDATE so two concurrent sales
// of the same product can never both pass the stock check (lost update).
func (s *inventoryService) ReserveStock(db *gorm.DB, productName string, quantity int, billID *uint) error {
	if quantity <= 0 {
		return &ValidationError{Reason: "quantity must be positive"}
	}

	res := db.Model(&models.Product{}).
		Where("name = ? AND status = ? AND stock >= ?", productName, models.ProductStatusActive, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return &StorageError{Err: res.Error}
	}

	if res.RowsAffected == 0 {
		// Distinguish a missing product from a short one.
		var product models.Product
		err := db.Where("name = ? AND status = ?", productName, models.ProductStatusActive).
			First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ProductNotFoundError{Product: productName}
		}
		if err != nil {
			return &StorageError{Err: err}
		}
		return &InsufficientStockError{Product: productName, Available: product.Stock}
	}

	return s.recordMovement(db, productName, -quantity, models.MovementSale, billID, nil)
}

// ReturnStock adds quantities back when a bill is voided.
func (s *inventoryService) ReturnStock(db *gorm.DB, productName string, quantity int, billID *uint) error {
	res := db.Model(&models.Product{}).
		Where("name = ?", productName).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return &StorageError{Err: res.Error}
	}
	if res.RowsAffected == 0 {
		// Product was hard-removed since the sale; the snapshot on the bill
		// item stays valid, there is just no row to credit.
		return nil
	}

	return s.recordMovement(db, productName, quantity, models.MovementVoid, billID, nil)
}

func (s *inventoryService) Restock(input dtos.RestockInput) (*models.Product, error) {
	defer metrics.TrackDBOperation("restock")(time.Now())

	var product models.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("name = ? AND status = ?", input.ProductName, models.ProductStatusActive).
			UpdateColumn("stock", gorm.Expr("stock + ?", input.Quantity))
		if res.Error != nil {
			return &StorageError{Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return &ProductNotFoundError{Product: input.ProductName}
		}

		if err := s.recordMovement(tx, input.ProductName, input.Quantity, models.MovementRestock, nil, input.Note); err != nil {
			return err
		}

		return tx.Where("name = ?", input.ProductName).First(&product).Error
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *inventoryService) recordMovement(db *gorm.DB, productName string, delta int, reason string, billID *uint, note *string) error {
	var product models.Product
	if err := db.Unscoped().Where("name = ?", productName).First(&product).Error; err != nil {
		return &StorageError{Err: err}
	}

	movement := models.StockMovement{
		ProductID:   product.ID,
		ProductName: productName,
		QtyDelta:    delta,
		Reason:      reason,
		BillID:      billID,
		Note:        note,
	}
	if err := db.Create(&movement).Error; err != nil {
		return &StorageError{Err: err}
	}
	return nil
}

func (s *inventoryService) GetMovements(filter dtos.InventoryFilter) (map[string]interface{}, error) {
	p := pagination.New(filter.Page, filter.PageSize)

	query := s.db.Model(&models.StockMovement{})
	if filter.ProductName != "" {
		query = query.Where("product_name = ?", filter.ProductName)
	}
	if filter.Reason != "" {
		query = query.Where("reason = ?", filter.Reason)
	}
	if filter.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", filter.DateFrom); err == nil {
			query = query.Where("created_at >= ?", from)
		}
	}
	if filter.DateTo != "" {
		if to, err := time.Parse("2006-01-02", filter.DateTo); err == nil {
			query = query.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, &StorageError{Err: err}
	}

	var movements []models.StockMovement
	if err := query.
		Order("created_at DESC").
		Offset(p.Offset).
		Limit(p.PageSize).
		Find(&movements).Error; err != nil {
		return nil, &StorageError{Err: err}
	}

	return map[string]interface{}{
		"data": movements,
		"meta": pagination.BuildMeta(p.Page, p.PageSize, total),
	}, nil
}
