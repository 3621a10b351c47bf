package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bakepos-api/config"
	"bakepos-api/models"
)

// setupTestDB opens an in-memory SQLite database. The pool is capped at one
// connection so every goroutine sees the same in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name string, stock int, price string) models.Product {
	t.Helper()

	product := models.Product{
		Name:    name,
		Barcode: "BKP-" + name,
		Stock:   stock,
		Price:   decimal.RequireFromString(price),
		Status:  models.ProductStatusActive,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func productStock(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()

	var product models.Product
	require.NoError(t, db.Where("name = ?", name).First(&product).Error)
	return product.Stock
}
