// controllers/resolution.go - researcher resolution and staff closure
package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recheck-api/config"
	"recheck-api/models"
	"recheck-api/realtime"
	"recheck-api/services"
	"recheck-api/utils"
)

// SubmitResolution records the researcher's response to staff feedback.
// Eligibility is re-checked server side; a report whose severity
// requires supporting documents rejects the submission before any file
// or row is written.
func SubmitResolution(c *gin.Context) {
	id := c.Param("id")

	var report models.DeviationReport
	if err := config.DB.Where("id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deviation report not found"})
		return
	}

	if !reportBelongsTo(&report, c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}
	if !report.CanResolve() {
		c.JSON(http.StatusConflict, gin.H{"error": "This report is not awaiting a resolution"})
		return
	}

	response := utils.SanitizeInput(c.PostForm("researcher_response"))
	if response == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Researcher response is required"})
		return
	}
	actionsTaken := utils.SanitizeInput(c.PostForm("resolution_actions_taken"))
	notes := utils.SanitizeInput(c.PostForm("resolution_notes"))

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	files := form.File["resolution_supporting_documents"]

	if report.RequiresResolutionDocs() && len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one supporting document is required for this resolution"})
		return
	}

	var docs []string
	if len(files) > 0 {
		docs, err = saveUploadedFiles(c, files, "resolutions", utils.MaxReportFileSize)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	now := time.Now()
	updates := map[string]interface{}{
		"resolution_status":          models.ResolutionInProgress,
		"researcher_response":        response,
		"resolution_actions_taken":   actionsTaken,
		"resolution_notes":           notes,
		"resolution_submission_date": now,
		"update_at":                  now,
	}
	// A resubmission without new files keeps the documents already on
	// the report.
	if len(docs) > 0 {
		updates["resolution_supporting_documents"] = models.StringList(docs)
	}
	if err := config.DB.Model(&report).Updates(updates).Error; err != nil {
		removeStoredFiles(diskPathsFor(docs))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit resolution"})
		return
	}

	if err := config.DB.Where("id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload report"})
		return
	}

	realtime.Reports.PublishUpdate(&report)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

type AcknowledgmentRequest struct {
	Decision string `json:"decision" binding:"required"`
	Remarks  string `json:"remarks" binding:"required"`
}

// Acknowledgment decisions.
const (
	DecisionApprove  = "approve"
	DecisionRevision = "revision"
)

// AcknowledgeResolution closes or reopens a submitted resolution:
// approve marks the report resolved, revision sends it back to the
// researcher as rejected.
func AcknowledgeResolution(c *gin.Context) {
	id := c.Param("id")

	var req AcknowledgmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Decision != DecisionApprove && req.Decision != DecisionRevision {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Decision must be approve or revision"})
		return
	}

	var report models.DeviationReport
	if err := config.DB.Where("id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deviation report not found"})
		return
	}
	if report.ResolutionStatus != models.ResolutionInProgress {
		c.JSON(http.StatusConflict, gin.H{"error": "This report has no resolution awaiting acknowledgment"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"staff_acknowledgment":      utils.SanitizeInput(req.Remarks),
		"staff_acknowledgment_date": now,
		"update_at":                 now,
	}
	if req.Decision == DecisionApprove {
		updates["resolution_status"] = models.ResolutionResolved
	} else {
		updates["resolution_status"] = models.ResolutionRejected
	}

	if err := config.DB.Model(&report).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record acknowledgment"})
		return
	}

	if err := config.DB.Where("id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload report"})
		return
	}

	if email := reporterEmail(&report); email != "" {
		if err := services.NotifyResolutionDecision(&report, email); err != nil {
			log.Printf("failed to notify reporter for report %d: %v", report.ID, err)
		}
	}

	realtime.Reports.PublishUpdate(&report)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}
