package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"bakepos-api/config"
	"bakepos-api/models"
	"bakepos-api/utils/common"
	"bakepos-api/utils/log"
	"bakepos-api/utils/pagination"
	"bakepos-api/utils/response"
)

func formatProductCSVRow(product models.Product, role string) []string {
	desc := common.GetStringValue(product.Description)

	if role == "cashier" {
		return []string{
			fmt.Sprintf("%d", product.ID),
			product.Name,
			desc,
			product.Barcode,
			fmt.Sprintf("%d", product.Stock),
			product.Price.StringFixed(2),
			product.Status,
		}
	}

	return []string{
		fmt.Sprintf("%d", product.ID),
		product.Name,
		desc,
		product.Barcode,
		fmt.Sprintf("%d", product.Stock),
		product.BuyPrice.StringFixed(2),
		product.Price.StringFixed(2),
		product.Status,
	}
}

func getProductCSVHeaders(role string) []string {
	if role == "cashier" {
		return []string{"id", "name", "description", "barcode", "stock", "price", "status"}
	}
	return []string{"id", "name", "description", "barcode", "stock", "buy_price", "price", "status"}
}

func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	p := pagination.New(page, pageSize)

	var products []models.Product
	var total int64

	if err := config.DB.Model(&models.Product{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.
		Offset(p.Offset).
		Limit(p.PageSize).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	meta := pagination.BuildMeta(p.Page, p.PageSize, total)

	c.JSON(http.StatusOK, gin.H{
		"data": response.FilterProductsForRole(products, common.GetUserRole(c)),
		"meta": meta,
	})
}

func GetProductsByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name parameter is required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	p := pagination.New(page, pageSize)

	var products []models.Product
	var total int64

	query := config.DB.Model(&models.Product{})
	for _, term := range strings.Fields(strings.ToLower(strings.TrimSpace(name))) {
		query = query.Where("LOWER(name) LIKE ?", "%"+term+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := query.
		Offset(p.Offset).
		Limit(p.PageSize).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	meta := pagination.BuildMeta(p.Page, p.PageSize, total)

	c.JSON(http.StatusOK, gin.H{
		"data": response.FilterProductsForRole(products, common.GetUserRole(c)),
		"meta": meta,
	})
}

func GetProductByID(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, response.FilterProductForRole(product, common.GetUserRole(c)))
}

// GetProductByBarcode resolves a scanned barcode at checkout.
func GetProductByBarcode(c *gin.Context) {
	var product models.Product
	if err := config.DB.Where("barcode = ?", c.Param("barcode")).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, response.FilterProductForRole(product, common.GetUserRole(c)))
}

// GetProductQR renders the product barcode as a PNG QR sticker.
func GetProductQR(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	if size < 64 || size > 1024 {
		size = 256
	}

	png, err := qrcode.Encode(product.Barcode, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="product-%d-qr.png"`, product.ID))
	c.Data(http.StatusOK, "image/png", png)
}

func CreateProduct(c *gin.Context) {
	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
		return
	}
	if input.Price.IsNegative() || input.BuyPrice.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
		return
	}

	var existing models.Product
	if err := config.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A product with this name already exists"})
		return
	}

	if input.Barcode == "" {
		input.Barcode = fmt.Sprintf("BKP-%s", strings.ToUpper(strings.ReplaceAll(input.Name, " ", "-")))
	}
	input.Status = models.ProductStatusActive

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&input).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Product '%s' created", input.Name)
		return log.CreateProductAuditLog(
			tx,
			"create",
			input.ID,
			nil,
			&input,
			common.GetUserID(c),
			c.ClientIP(),
			description,
		)
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.FilterProductForRole(input, common.GetUserRole(c)))
}

func UpdateProduct(c *gin.Context) {
	var oldProduct models.Product
	if err := config.DB.First(&oldProduct, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Product
	if err := config.DB.Where("name = ? AND id != ?", input.Name, oldProduct.ID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A product with this name already exists"})
		return
	}

	oldCopy := oldProduct

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		oldProduct.Name = input.Name
		oldProduct.Description = input.Description
		oldProduct.BuyPrice = input.BuyPrice
		oldProduct.Price = input.Price
		oldProduct.ImageURL = input.ImageURL
		if input.Barcode != "" {
			oldProduct.Barcode = input.Barcode
		}

		if err := tx.Save(&oldProduct).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Product '%s' updated", oldProduct.Name)
		return log.CreateProductAuditLog(
			tx,
			"update",
			oldProduct.ID,
			&oldCopy,
			&oldProduct,
			common.GetUserID(c),
			c.ClientIP(),
			description,
		)
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.FilterProductForRole(oldProduct, common.GetUserRole(c)))
}

// RetireProduct flips a product to retired. Products are never hard-deleted;
// bill line items keep their own snapshot of name and price anyway.
func RetireProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if product.Status == models.ProductStatusRetired {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product already retired"})
		return
	}

	oldCopy := product

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		product.Status = models.ProductStatusRetired
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Product '%s' retired", product.Name)
		return log.CreateProductAuditLog(
			tx,
			"update",
			product.ID,
			&oldCopy,
			&product,
			common.GetUserID(c),
			c.ClientIP(),
			description,
		)
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product retired successfully"})
}

func BulkCreateProducts(c *gin.Context) {
	var inputs []models.Product
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for i := range inputs {
		if inputs[i].Description != nil && *inputs[i].Description == "" {
			inputs[i].Description = nil
		}
		if inputs[i].ImageURL != nil && *inputs[i].ImageURL == "" {
			inputs[i].ImageURL = nil
		}
		if inputs[i].Barcode == "" {
			inputs[i].Barcode = fmt.Sprintf("BKP-%s", strings.ToUpper(strings.ReplaceAll(inputs[i].Name, " ", "-")))
		}
		inputs[i].Status = models.ProductStatusActive
	}

	userID := common.GetUserID(c)
	ipAddress := c.ClientIP()

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inputs).Error; err != nil {
			return err
		}

		for _, product := range inputs {
			description := fmt.Sprintf("Product '%s' created via bulk import", product.Name)
			if err := log.CreateProductAuditLog(
				tx,
				"create",
				product.ID,
				nil,
				&product,
				userID,
				ipAddress,
				description,
			); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.FilterProductsForRole(inputs, common.GetUserRole(c)))
}

func ExportProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	role := common.GetUserRole(c)
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	writer.Write(getProductCSVHeaders(role))
	for _, product := range products {
		writer.Write(formatProductCSVRow(product, role))
	}
	writer.Flush()

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	c.Data(http.StatusOK, "text/csv", buffer.Bytes())
}
