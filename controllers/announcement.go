// controllers/announcement.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recheck-api/config"
	"recheck-api/models"
	"recheck-api/utils"
)

// CreateAnnouncement publishes a new announcement to the selected
// audience. Staff only. Every attachment is validated before anything
// is written, so one bad file reports alongside the others instead of
// failing the batch piecemeal.
func CreateAnnouncement(c *gin.Context) {
	userID := c.GetInt("userID")
	email := c.GetString("email")

	title := utils.SanitizeInput(c.PostForm("title"))
	description := utils.SanitizeInput(c.PostForm("description"))
	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	audience := c.DefaultPostForm("audience", models.AudienceAll)
	switch audience {
	case models.AudienceAll, models.AudienceStudents, models.AudienceCommittee:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audience must be all, students or committee"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	files := form.File["attachments"]

	var fileErrors []string
	for _, fh := range files {
		if ok, msg := utils.ValidateUpload(fh, utils.MaxAnnouncementFileSize); !ok {
			fileErrors = append(fileErrors, msg)
		}
	}
	if len(fileErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Some attachments were rejected",
			"details": fileErrors,
		})
		return
	}

	var attachments []string
	if len(files) > 0 {
		attachments, err = saveUploadedFiles(c, files, "announcements", utils.MaxAnnouncementFileSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	announcement := models.Announcement{
		Title:          title,
		Description:    description,
		Audience:       audience,
		Attachments:    attachments,
		CreatedBy:      userID,
		CreatedByEmail: email,
		CreateAt:       time.Now(),
	}
	if err := config.DB.Create(&announcement).Error; err != nil {
		removeStoredFiles(diskPathsFor(attachments))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    announcement,
	})
}

// GetAnnouncements lists announcements visible to the caller's role,
// newest first.
func GetAnnouncements(c *gin.Context) {
	role := c.GetString("role")

	var announcements []models.Announcement
	err := config.DB.
		Where("audience IN ?", models.AudiencesForRole(role)).
		Order("create_at DESC").
		Find(&announcements).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    announcements,
		"count":   len(announcements),
	})
}
