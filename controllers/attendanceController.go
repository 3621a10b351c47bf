package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bakepos-api/config"
	"bakepos-api/models"
)

// Admin: record attendance manually
func CreateAttendance(c *gin.Context) {
	var input struct {
		UserID uint   `json:"user_id" binding:"required"`
		Status string `json:"status" binding:"required,oneof=present absent off"`
		Note   string `json:"note"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().Truncate(24 * time.Hour)

	// one record per user per day
	var existing models.Attendance
	if err := config.DB.Where("user_id = ? AND date = ?", input.UserID, today).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Attendance already recorded for today"})
		return
	}

	attendance := models.Attendance{
		UserID: input.UserID,
		Date:   today,
		Status: input.Status,
		Note:   &input.Note,
	}

	if err := config.DB.Create(&attendance).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Preload("User").First(&attendance, attendance.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, attendance)
}

// Today's attendance for all staff
func GetTodayAttendance(c *gin.Context) {
	var attendances []models.Attendance
	today := time.Now().Truncate(24 * time.Hour)

	if err := config.DB.Preload("User").Where("date = ?", today).Find(&attendances).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, attendances)
}

func GetAttendanceHistory(c *gin.Context) {
	var attendances []models.Attendance
	if err := config.DB.Preload("User").Order("date DESC").Find(&attendances).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attendances)
}

func GetAttendances(c *gin.Context) {
	var attendances []models.Attendance

	if err := config.DB.Preload("User").Find(&attendances).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, attendances)
}
