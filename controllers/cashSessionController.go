package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bakepos-api/config"
	"bakepos-api/models"
)

func OpenCashSession(c *gin.Context) {
	db := config.DB

	userID := c.MustGet("user_id").(uint)

	var input struct {
		OpeningCash decimal.Decimal `json:"opening_cash" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.CashSession
	if err := db.Where("user_id = ? AND status = 'open'", userID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A cash session is still open"})
		return
	}

	session := models.CashSession{
		UserID:      userID,
		OpeningCash: input.OpeningCash,
		Status:      "open",
		OpenedAt:    time.Now(),
	}

	if err := db.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

func GetCurrentCashSession(c *gin.Context) {
	db := config.DB
	userID := c.MustGet("user_id").(uint)

	var session models.CashSession
	if err := db.Where("user_id = ? AND status = 'open'", userID).
		First(&session).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open cash session"})
		return
	}

	c.JSON(http.StatusOK, session)
}

func CloseCashSession(c *gin.Context) {
	db := config.DB
	userID := c.MustGet("user_id").(uint)

	var input struct {
		ClosingCash decimal.Decimal `json:"closing_cash" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var session models.CashSession
	if err := db.Where("user_id = ? AND status = 'open'", userID).
		First(&session).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No open cash session"})
		return
	}

	// Sum CASH bills taken during the session window
	var totalCashIn decimal.NullDecimal
	if err := db.Model(&models.Bill{}).
		Select("SUM(total)").
		Where("payment_method = ? AND status = ? AND created_at BETWEEN ? AND ?",
			models.PaymentCash, models.BillStatusActive, session.OpenedAt, time.Now()).
		Scan(&totalCashIn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cashIn := decimal.Zero
	if totalCashIn.Valid {
		cashIn = totalCashIn.Decimal
	}

	expected := session.OpeningCash.Add(cashIn)
	diff := input.ClosingCash.Sub(expected)

	session.TotalCashIn = cashIn
	session.ExpectedCash = expected
	session.ClosingCash = &input.ClosingCash
	session.Difference = &diff
	session.Status = "closed"
	now := time.Now()
	session.ClosedAt = &now

	if err := db.Save(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}
