package seeders

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bakepos-api/config"
	"bakepos-api/models"
)

func TestSeedIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db

	Seed()
	Seed()

	var userCount, productCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Product{}).Count(&productCount)
	assert.Equal(t, int64(2), userCount)
	assert.Equal(t, int64(8), productCount)

	// seeded passwords are stored hashed
	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.NotEqual(t, "admin123", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))
}
