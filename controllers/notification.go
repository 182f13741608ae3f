// controllers/notification.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recheck-api/config"
	"recheck-api/models"
)

// GetNotifications lists the caller's notifications, newest first:
// broadcasts plus rows addressed to their email.
func GetNotifications(c *gin.Context) {
	email := c.GetString("email")

	var notifications []models.Notification
	err := config.DB.
		Where("broadcast = ? OR recipient = ?", true, email).
		Order("create_at DESC").
		Find(&notifications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    notifications,
		"count":   len(notifications),
	})
}
