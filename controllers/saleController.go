package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bakepos-api/config"
	"bakepos-api/dtos"
	"bakepos-api/metrics"
	"bakepos-api/services"
	"bakepos-api/utils/log"
)

// SubmitSale validates, builds, and commits a sale in one request. The
// response always tells the caller unambiguously whether the sale was
// recorded: 201 means fully committed, anything else means nothing persisted.
func SubmitSale(c *gin.Context) {
	var input dtos.SubmitSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"kind": services.KindValidation, "detail": err.Error()})
		return
	}

	service := services.NewSaleService(config.DB)

	txn, err := service.BuildTransaction(input)
	if err != nil {
		respondSaleError(c, err)
		return
	}

	billID, err := service.CommitSale(txn)
	if err != nil {
		respondSaleError(c, err)
		return
	}

	metrics.SalesCommittedTotal.Inc()
	log.GetLogger().Info("sale committed",
		zap.Uint("bill_id", billID),
		zap.String("payment_method", txn.PaymentMethod),
		zap.String("total", txn.Total.String()),
		zap.Int("items", len(txn.Items)),
	)

	c.JSON(http.StatusCreated, gin.H{"bill_id": billID})
}

func respondSaleError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.ProductNotFoundError
	var stockErr *services.InsufficientStockError

	switch {
	case errors.As(err, &validationErr):
		metrics.SaleCommitFailuresTotal.WithLabelValues(services.KindValidation).Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"kind":   services.KindValidation,
			"detail": validationErr.Reason,
		})
	case errors.As(err, &notFoundErr):
		metrics.SaleCommitFailuresTotal.WithLabelValues(services.KindProductNotFound).Inc()
		c.JSON(http.StatusNotFound, gin.H{
			"kind":    services.KindProductNotFound,
			"detail":  notFoundErr.Error(),
			"product": notFoundErr.Product,
		})
	case errors.As(err, &stockErr):
		metrics.SaleCommitFailuresTotal.WithLabelValues(services.KindInsufficientStock).Inc()
		c.JSON(http.StatusConflict, gin.H{
			"kind":      services.KindInsufficientStock,
			"detail":    stockErr.Error(),
			"product":   stockErr.Product,
			"available": stockErr.Available,
		})
	default:
		metrics.SaleCommitFailuresTotal.WithLabelValues(services.KindStorage).Inc()
		log.GetLogger().Error("sale commit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"kind":   services.KindStorage,
			"detail": err.Error(),
		})
	}
}
