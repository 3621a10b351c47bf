package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bakepos-api/config"
	"bakepos-api/models"
)

type TopProduct struct {
	ProductID *uint  `json:"product_id,omitempty"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

func GetDashboard(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	// Today's revenue over active bills
	var todayBills []models.Bill
	if err := config.DB.Preload("Items").
		Where("status = ? AND DATE(created_at) = ?", models.BillStatusActive, today).
		Find(&todayBills).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	todayRevenue := decimal.Zero
	for _, b := range todayBills {
		todayRevenue = todayRevenue.Add(b.Total)
	}

	var todayBillCount int64
	if err := config.DB.Model(&models.Bill{}).
		Where("status = ? AND DATE(created_at) = ?", models.BillStatusActive, today).
		Count(&todayBillCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Low stock count (<5)
	var lowStock int64
	if err := config.DB.Model(&models.Product{}).
		Where("stock < ? AND status = ?", 5, models.ProductStatusActive).
		Count(&lowStock).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Top selling products (top 5), by snapshot name since line items do not
	// hold a hard product reference
	var topProducts []TopProduct
	if err := config.DB.Model(&models.BillItem{}).
		Select("product_id, product_name as name, SUM(quantity) as quantity").
		Joins("JOIN bills ON bills.id = bill_items.bill_id").
		Where("bills.status = ?", models.BillStatusActive).
		Group("product_id, product_name").
		Order("quantity desc").
		Limit(5).
		Scan(&topProducts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today_revenue":        todayRevenue,
		"today_bills":          todayBillCount,
		"low_stock":            lowStock,
		"top_selling_products": topProducts,
	})
}
