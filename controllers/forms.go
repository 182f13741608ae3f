// controllers/forms.go - form catalog and submissions
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recheck-api/config"
	"recheck-api/forms"
	"recheck-api/models"
)

// GetForms returns the form catalog grouped metadata: every definition
// plus the distinct category list for the picker.
func GetForms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       forms.Catalog,
		"categories": forms.Categories(),
		"count":      len(forms.Catalog),
	})
}

// GetForm returns one form definition by id.
func GetForm(c *gin.Context) {
	def, ok := forms.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    def,
	})
}

type FormSubmissionRequest struct {
	Values map[string]interface{} `json:"values" binding:"required"`
}

// SubmitForm validates a submission against its definition and persists
// it. Hidden conditional answers are stripped before storage; the
// response reports field-level errors on failure and completion figures
// on success.
func SubmitForm(c *gin.Context) {
	def, ok := forms.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}

	var req FormSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := forms.Validate(def, req.Values); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	payload := forms.BuildPayload(def, req.Values)
	submission := models.FormSubmission{
		FormID:      def.ID,
		Values:      payload,
		SubmittedBy: c.GetInt("userID"),
		SubmittedAt: time.Now(),
	}
	if err := config.DB.Create(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
		return
	}

	done, total, percent := forms.Completion(def, payload)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    submission,
		"completion": gin.H{
			"filled":  done,
			"total":   total,
			"percent": percent,
		},
	})
}

// GetFormSubmissionCounts aggregates submissions per form server side.
// Every catalog form appears in the result, zero counts included.
func GetFormSubmissionCounts(c *gin.Context) {
	var rows []models.FormSubmissionCount
	err := config.DB.Model(&models.FormSubmission{}).
		Select("form_id, COUNT(*) AS count").
		Group("form_id").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submission counts"})
		return
	}

	byForm := make(map[string]int64, len(rows))
	for _, r := range rows {
		byForm[r.FormID] = r.Count
	}

	counts := make([]models.FormSubmissionCount, 0, len(forms.Catalog))
	for _, def := range forms.Catalog {
		counts = append(counts, models.FormSubmissionCount{FormID: def.ID, Count: byForm[def.ID]})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    counts,
	})
}
