package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakepos-api/dtos"
	"bakepos-api/models"
)

func TestReserveStockDecrements(t *testing.T) {
	db := setupTestDB(t)
	createProduct(t, db, "Croissant", 10, "35.00")

	inv := NewInventoryService(db)

	require.NoError(t, inv.ReserveStock(db, "Croissant", 3, nil))
	assert.Equal(t, 7, productStock(t, db, "Croissant"))

	// movement row recorded alongside the decrement
	var movement models.StockMovement
	require.NoError(t, db.Where("product_name = ?", "Croissant").First(&movement).Error)
	assert.Equal(t, -3, movement.QtyDelta)
	assert.Equal(t, models.MovementSale, movement.Reason)
}

func TestReserveStockNeverGoesNegative(t *testing.T) {
	db := setupTestDB(t)
	createProduct(t, db, "Rusk Pack", 5, "45.00")

	inv := NewInventoryService(db)

	// Drain in steps; any call that would go negative must fail and leave
	// stock untouched.
	require.NoError(t, inv.ReserveStock(db, "Rusk Pack", 2, nil))
	require.NoError(t, inv.ReserveStock(db, "Rusk Pack", 2, nil))

	err := inv.ReserveStock(db, "Rusk Pack", 2, nil)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Rusk Pack", stockErr.Product)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 1, productStock(t, db, "Rusk Pack"))

	require.NoError(t, inv.ReserveStock(db, "Rusk Pack", 1, nil))
	assert.Equal(t, 0, productStock(t, db, "Rusk Pack"))
}

func TestReserveStockUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	inv := NewInventoryService(db)

	err := inv.ReserveStock(db, "Nonexistent", 1, nil)
	var notFoundErr *ProductNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Nonexistent", notFoundErr.Product)
}

func TestReserveStockRetiredProduct(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Old Cake", 10, "60.00")

	require.NoError(t, db.Model(&product).Update("status", models.ProductStatusRetired).Error)

	inv := NewInventoryService(db)

	err := inv.ReserveStock(db, "Old Cake", 1, nil)
	var notFoundErr *ProductNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, 10, productStock(t, db, "Old Cake"))
}

func TestReserveStockRejectsNonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	createProduct(t, db, "Cream Bun", 10, "20.00")

	inv := NewInventoryService(db)

	var validationErr *ValidationError
	require.ErrorAs(t, inv.ReserveStock(db, "Cream Bun", 0, nil), &validationErr)
	require.ErrorAs(t, inv.ReserveStock(db, "Cream Bun", -2, nil), &validationErr)
	assert.Equal(t, 10, productStock(t, db, "Cream Bun"))
}

// Two concurrent reservations of 3 from a stock of 5: exactly one must win.
func TestReserveStockConcurrentRace(t *testing.T) {
	db := setupTestDB(t)
	createProduct(t, db, "Milk 1L", 5, "52.00")

	inv := NewInventoryService(db)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = inv.ReserveStock(db, "Milk 1L", 3, nil)
		}(i)
	}
	wg.Wait()

	var successes, stockFailures int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var stockErr *InsufficientStockError
		if assert.ErrorAs(t, err, &stockErr) {
			assert.Equal(t, 2, stockErr.Available)
			stockFailures++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, stockFailures)
	assert.Equal(t, 2, productStock(t, db, "Milk 1L"))
}

func TestRestock(t *testing.T) {
	db := setupTestDB(t)
	createProduct(t, db, "White Bread", 4, "40.00")

	inv := NewInventoryService(db)

	product, err := inv.Restock(dtos.RestockInput{ProductName: "White Bread", Quantity: 20})
	require.NoError(t, err)
	assert.Equal(t, 24, product.Stock)

	var movement models.StockMovement
	require.NoError(t, db.Where("product_name = ? AND reason = ?", "White Bread", models.MovementRestock).
		First(&movement).Error)
	assert.Equal(t, 20, movement.QtyDelta)
}

func TestRestockUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	inv := NewInventoryService(db)

	_, err := inv.Restock(dtos.RestockInput{ProductName: "Ghost", Quantity: 5})
	var notFoundErr *ProductNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestGetMovementsFiltered(t *testing.T) {
	db := setupTestDB(t)
	createProduct(t, db, "Veg Puff", 30, "18.00")
	createProduct(t, db, "Cookies Box", 30, "120.00")

	inv := NewInventoryService(db)
	require.NoError(t, inv.ReserveStock(db, "Veg Puff", 2, nil))
	require.NoError(t, inv.ReserveStock(db, "Cookies Box", 1, nil))
	_, err := inv.Restock(dtos.RestockInput{ProductName: "Veg Puff", Quantity: 10})
	require.NoError(t, err)

	result, err := inv.GetMovements(dtos.InventoryFilter{ProductName: "Veg Puff", Page: 1, PageSize: 10})
	require.NoError(t, err)

	movements := result["data"].([]models.StockMovement)
	assert.Len(t, movements, 2)
	for _, m := range movements {
		assert.Equal(t, "Veg Puff", m.ProductName)
	}

	result, err = inv.GetMovements(dtos.InventoryFilter{Reason: models.MovementRestock, Page: 1, PageSize: 10})
	require.NoError(t, err)
	movements = result["data"].([]models.StockMovement)
	assert.Len(t, movements, 1)
	assert.Equal(t, 10, movements[0].QtyDelta)
}
