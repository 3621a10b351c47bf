package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakepos-api/config"
	"bakepos-api/dtos"
	"bakepos-api/services"
)

func GetStockMovements(c *gin.Context) {
	var filter dtos.InventoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewInventoryService(config.DB)
	result, err := service.GetMovements(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RestockProduct increments stock for an active product and records the
// movement.
func RestockProduct(c *gin.Context) {
	var input dtos.RestockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewInventoryService(config.DB)
	product, err := service.Restock(input)
	if err != nil {
		respondSaleError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
