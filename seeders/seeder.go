package seeders

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bakepos-api/config"
	"bakepos-api/models"
	"bakepos-api/utils/log"
)

func ptrString(s string) *string {
	return &s
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Seed() {
	// ============= Seed Users =============
	users := []models.User{
		{Username: "admin", Password: "admin123", Role: "admin"},
		{Username: "cashier1", Password: "cashier123", Role: "cashier"},
	}

	for _, user := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			continue
		}
		user.Password = string(hashed)
		config.DB.FirstOrCreate(&user, models.User{Username: user.Username})
	}

	// ============= Seed Products =============
	products := []models.Product{
		{Name: "Milk 1L", Description: ptrString("Full cream milk, 1 litre"), Barcode: "BKP-MILK-1L", Stock: 40, BuyPrice: price("44.00"), Price: price("52.00")},
		{Name: "White Bread", Description: ptrString("Sandwich loaf, 400g"), Barcode: "BKP-WHITE-BREAD", Stock: 30, BuyPrice: price("28.00"), Price: price("40.00")},
		{Name: "Croissant", Description: ptrString("Butter croissant"), Barcode: "BKP-CROISSANT", Stock: 25, BuyPrice: price("22.00"), Price: price("35.00")},
		{Name: "Chocolate Cake Slice", Description: ptrString("Dark chocolate truffle slice"), Barcode: "BKP-CHOCO-SLICE", Stock: 18, BuyPrice: price("45.00"), Price: price("75.00")},
		{Name: "Rusk Pack", Description: ptrString("Wheat rusk, 200g pack"), Barcode: "BKP-RUSK", Stock: 50, BuyPrice: price("30.00"), Price: price("45.00")},
		{Name: "Cream Bun", Description: ptrString("Vanilla cream filled bun"), Barcode: "BKP-CREAM-BUN", Stock: 35, BuyPrice: price("12.00"), Price: price("20.00")},
		{Name: "Veg Puff", Description: ptrString("Spiced vegetable puff"), Barcode: "BKP-VEG-PUFF", Stock: 45, BuyPrice: price("10.00"), Price: price("18.00")},
		{Name: "Cookies Box", Description: ptrString("Assorted butter cookies, 250g"), Barcode: "BKP-COOKIES", Stock: 22, BuyPrice: price("80.00"), Price: price("120.00")},
	}

	for _, product := range products {
		product.Status = models.ProductStatusActive
		config.DB.FirstOrCreate(&product, models.Product{Name: product.Name})
	}

	log.GetLogger().Info("seeding done",
		zap.Int("users", len(users)),
		zap.Int("products", len(products)),
	)
}
