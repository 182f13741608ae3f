// controllers/assessment.go - staff severity assessment
package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"recheck-api/config"
	"recheck-api/models"
	"recheck-api/realtime"
	"recheck-api/services"
)

type AssessmentRequest struct {
	Severity string `json:"severity" binding:"required"`

	// Minor path.
	Review string `json:"review"`

	// Major path.
	CorrectiveActionFeedback    string `json:"corrective_action_feedback"`
	CorrectiveActionRequired    string `json:"corrective_action_required"`
	CorrectiveActionDetails     string `json:"corrective_action_details"`
	CorrectiveActionDocs        string `json:"corrective_action_docs"`
	CorrectiveActionDocsDetails string `json:"corrective_action_docs_details"`
	CorrectiveActionDeadline    string `json:"corrective_action_deadline"`
}

// SubmitAssessment records a staff severity assessment as one update:
// the severity, the path-specific feedback fields and the Reviewed
// status land together, so a reader never observes a report with a
// severity but no feedback.
func SubmitAssessment(c *gin.Context) {
	id := c.Param("id")

	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Severity != models.SeverityMinor && req.Severity != models.SeverityMajor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Severity must be Minor or Major"})
		return
	}

	updates := map[string]interface{}{
		"severity":  req.Severity,
		"status":    models.StatusReviewed,
		"update_at": time.Now(),
	}

	switch req.Severity {
	case models.SeverityMinor:
		if req.Review == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Review feedback is required for Minor severity"})
			return
		}
		updates["review"] = req.Review
	case models.SeverityMajor:
		if req.CorrectiveActionFeedback == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Corrective action feedback is required for Major severity"})
			return
		}
		if req.CorrectiveActionDeadline != "" {
			if _, err := time.Parse("2006-01-02", req.CorrectiveActionDeadline); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Corrective action deadline must be in YYYY-MM-DD format"})
				return
			}
		}
		updates["corrective_action_feedback"] = req.CorrectiveActionFeedback
		updates["corrective_action_required"] = req.CorrectiveActionRequired
		updates["corrective_action_details"] = req.CorrectiveActionDetails
		updates["corrective_action_docs"] = req.CorrectiveActionDocs
		updates["corrective_action_docs_details"] = req.CorrectiveActionDocsDetails
		updates["corrective_action_deadline"] = req.CorrectiveActionDeadline
	}

	var report models.DeviationReport
	if err := config.DB.Where("id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deviation report not found"})
		return
	}

	// Once a resolution cycle is underway (or closed), only the staff
	// acknowledgment path may change the report's state. Re-assessing
	// here would orphan the researcher's submitted resolution.
	switch report.ResolutionStatus {
	case "", models.ResolutionPending:
	default:
		c.JSON(http.StatusConflict, gin.H{"error": "This report is already in a resolution cycle"})
		return
	}
	if report.ResolutionStatus == "" {
		updates["resolution_status"] = models.ResolutionPending
	}

	if err := config.DB.Model(&report).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save assessment"})
		return
	}

	if err := config.DB.Where("id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload report"})
		return
	}

	if email := reporterEmail(&report); email != "" {
		if err := services.NotifyReportAssessed(&report, email); err != nil {
			log.Printf("failed to notify reporter for report %d: %v", report.ID, err)
		}
	}

	realtime.Reports.PublishUpdate(&report)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

// reporterEmail resolves the email to notify: the canonical user row
// when linked, otherwise the stored identifier if it is an address.
func reporterEmail(report *models.DeviationReport) string {
	if report.ReporterUserID != nil {
		var user models.User
		if err := config.DB.Where("user_id = ?", *report.ReporterUserID).First(&user).Error; err == nil {
			return user.Email
		}
	}
	if strings.Contains(report.ReportedBy, "@") {
		return report.ReportedBy
	}
	return ""
}
