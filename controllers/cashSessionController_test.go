package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cashSessionRouter stubs the auth middleware so the handlers see a user_id.
func cashSessionRouter(t *testing.T) (*gin.Engine, *gin.Engine) {
	t.Helper()

	sales := setupTestRouter(t)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Next()
	})
	r.POST("/cash-sessions", OpenCashSession)
	r.GET("/cash-sessions/current", GetCurrentCashSession)
	r.POST("/cash-sessions/close", CloseCashSession)
	return r, sales
}

func TestCashSessionCloseSumsCashBills(t *testing.T) {
	r, sales := cashSessionRouter(t)
	seedProduct(t, "Milk 1L", 10, "52.00")

	w := postJSON(t, r, "/cash-sessions", gin.H{"opening_cash": "500.00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// a CASH sale inside the session window
	w = postJSON(t, sales, "/sales", gin.H{
		"customer_name":  "Alice",
		"payment_method": "CASH",
		"items": []gin.H{
			{"product_name": "Milk 1L", "quantity": 3, "unit_price": "52.00"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postJSON(t, r, "/cash-sessions/close", gin.H{"closing_cash": "656.00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session struct {
		Status       string          `json:"status"`
		TotalCashIn  decimal.Decimal `json:"total_cash_in"`
		ExpectedCash decimal.Decimal `json:"expected_cash"`
		Difference   decimal.Decimal `json:"difference"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "closed", session.Status)
	assert.True(t, session.TotalCashIn.Equal(decimal.RequireFromString("156.00")),
		"total_cash_in = %s", session.TotalCashIn)
	assert.True(t, session.ExpectedCash.Equal(decimal.RequireFromString("656.00")),
		"expected_cash = %s", session.ExpectedCash)
	assert.True(t, session.Difference.IsZero(), "difference = %s", session.Difference)
}

func TestCashSessionCloseWithoutOpen(t *testing.T) {
	r, _ := cashSessionRouter(t)

	w := postJSON(t, r, "/cash-sessions/close", gin.H{"closing_cash": "100.00"})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}
