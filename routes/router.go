package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bakepos-api/controllers"
	"bakepos-api/middlewares"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/login", controllers.Login)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public products for the storefront display
	r.GET("/public/products", controllers.GetProducts)
	r.GET("/public/products/:id", controllers.GetProductByID)

	// Products
	products := r.Group("/products")
	products.Use(middlewares.AuthMiddleware())
	{
		products.GET("/", controllers.GetProducts)
		products.GET("/search", controllers.GetProductsByName)
		products.GET("/:id", controllers.GetProductByID)
		products.GET("/:id/qr", controllers.GetProductQR)
		products.GET("/barcode/:barcode", controllers.GetProductByBarcode)
		products.POST("/", middlewares.RoleMiddleware("admin", "cashier"), controllers.CreateProduct)
		products.PUT("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.UpdateProduct)
		products.DELETE("/:id", middlewares.RoleMiddleware("admin"), controllers.RetireProduct)
		products.POST("/bulk", middlewares.RoleMiddleware("admin", "cashier"), controllers.BulkCreateProducts)
		products.GET("/export", middlewares.RoleMiddleware("admin", "cashier"), controllers.ExportProducts)
	}

	// Sales & bills
	sales := r.Group("/sales")
	sales.Use(middlewares.AuthMiddleware())
	{
		sales.POST("/", controllers.SubmitSale)
	}

	bills := r.Group("/bills")
	bills.Use(middlewares.AuthMiddleware())
	{
		bills.GET("/", controllers.GetBills)
		bills.GET("/:id", controllers.GetBillByID)
		bills.POST("/:id/void", middlewares.RoleMiddleware("admin"), controllers.VoidBill)
	}

	// Inventory
	inventory := r.Group("/inventory")
	inventory.Use(middlewares.AuthMiddleware())
	{
		inventory.GET("/movements", controllers.GetStockMovements)
		inventory.POST("/restock", middlewares.RoleMiddleware("admin", "cashier"), controllers.RestockProduct)
	}

	// Dashboard
	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/", controllers.GetDashboard)
	}

	// Cash sessions
	cash := r.Group("/cash-sessions")
	cash.Use(middlewares.AuthMiddleware())
	{
		cash.POST("/", controllers.OpenCashSession)
		cash.GET("/current", controllers.GetCurrentCashSession)
		cash.POST("/close", controllers.CloseCashSession)
	}

	// Attendance (admin only)
	attendance := r.Group("/attendance")
	attendance.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		attendance.GET("/", controllers.GetAttendances)
		attendance.POST("/", controllers.CreateAttendance)
		attendance.GET("/today", controllers.GetTodayAttendance)
		attendance.GET("/history", controllers.GetAttendanceHistory)
	}

	// Users (admin only)
	users := r.Group("/users")
	users.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		users.GET("/", controllers.GetUsers)
	}
}
