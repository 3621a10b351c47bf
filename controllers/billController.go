package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bakepos-api/config"
	"bakepos-api/models"
	"bakepos-api/services"
	"bakepos-api/utils/common"
	"bakepos-api/utils/pagination"
)

// Get all bills with pagination, newest first. Optional ?date=YYYY-MM-DD
// narrows to one day, ?status=active|voided narrows by status.
func GetBills(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	p := pagination.New(page, pageSize)

	db := config.DB.Model(&models.Bill{})

	if filterDate := c.Query("date"); filterDate != "" {
		if start, end, ok := services.BillDateRange(filterDate); ok {
			db = db.Where("created_at >= ? AND created_at < ?", start, end)
		}
	}

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var bills []models.Bill
	if err := db.Preload("Items").
		Order("created_at DESC").
		Offset(p.Offset).
		Limit(p.PageSize).
		Find(&bills).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": bills,
		"meta": pagination.BuildMeta(p.Page, p.PageSize, total),
	})
}

// Get bill by ID
func GetBillByID(c *gin.Context) {
	var bill models.Bill
	if err := config.DB.Preload("Items").First(&bill, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		return
	}
	c.JSON(http.StatusOK, bill)
}

// Void bill (active -> voided, restore stock)
func VoidBill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bill id"})
		return
	}

	service := services.NewSaleService(config.DB)
	bill, err := service.VoidBill(uint(id), common.GetUserID(c), c.ClientIP())
	if err != nil {
		respondSaleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bill)
}
