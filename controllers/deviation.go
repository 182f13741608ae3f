// controllers/deviation.go - deviation report intake and listing
package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"recheck-api/config"
	"recheck-api/models"
	"recheck-api/realtime"
	"recheck-api/services"
	"recheck-api/utils"
)

// deviationRequiredFields maps multipart field names to the labels used
// in validation messages.
var deviationRequiredFields = []struct{ field, label string }{
	{"protocol_title", "Protocol title"},
	{"protocol_code", "Protocol code"},
	{"type", "Deviation type"},
	{"deviation_date", "Deviation date"},
	{"deviation_description", "Deviation description"},
	{"rationale", "Rationale"},
	{"impact", "Impact assessment"},
	{"corrective_action", "Corrective action"},
}

// SubmitDeviationReport creates a new report from a researcher multipart
// submission. Attachments are stored before the insert; a failed insert
// removes them again. Severity, status and the resolution fields start
// unset so the report enters the queue as unassessed.
func SubmitDeviationReport(c *gin.Context) {
	userID := c.GetInt("userID")
	email := c.GetString("email")

	var missing []string
	values := make(map[string]string, len(deviationRequiredFields))
	for _, f := range deviationRequiredFields {
		v := utils.SanitizeInput(c.PostForm(f.field))
		if v == "" {
			missing = append(missing, f.label)
			continue
		}
		values[f.field] = v
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"details": missing,
		})
		return
	}

	if _, err := time.Parse("2006-01-02", values["deviation_date"]); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deviation date must be in YYYY-MM-DD format"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	var docs []string
	if files := form.File["supporting_documents"]; len(files) > 0 {
		docs, err = saveUploadedFiles(c, files, "deviations", utils.MaxReportFileSize)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	now := time.Now()
	report := models.DeviationReport{
		ProtocolTitle:        values["protocol_title"],
		ProtocolCode:         values["protocol_code"],
		Type:                 values["type"],
		DeviationDate:        values["deviation_date"],
		DeviationDescription: values["deviation_description"],
		Rationale:            values["rationale"],
		Impact:               values["impact"],
		CorrectiveAction:     values["corrective_action"],
		SupportingDocuments:  docs,
		ReportedBy:           email,
		ReporterUserID:       &userID,
		ReportSubmissionDate: now.Format("2006-01-02"),
		CreateAt:             &now,
	}

	if err := config.DB.Create(&report).Error; err != nil {
		removeStoredFiles(diskPathsFor(docs))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit deviation report"})
		return
	}

	realtime.Reports.PublishInsert(&report)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    report,
	})
}

// GetDeviationReports lists reports for staff, newest submission first,
// with optional severity, status and search filters.
func GetDeviationReports(c *gin.Context) {
	query := config.DB.Model(&models.DeviationReport{})

	if severity := c.Query("severity"); severity != "" {
		query = query.Where("severity = ?", severity)
	}
	if resolution := c.Query("resolution_status"); resolution != "" {
		query = query.Where("resolution_status = ?", resolution)
	}
	switch c.Query("status") {
	case models.StatusReviewed:
		query = query.Where("severity IS NOT NULL AND severity != ''")
	case models.StatusPendingView:
		query = query.Where("severity IS NULL OR severity = ''")
	}
	if search := utils.SanitizeInput(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("protocol_title LIKE ? OR protocol_code LIKE ? OR reported_by LIKE ?", like, like, like)
	}

	var reports []models.DeviationReport
	if err := query.Order("report_submission_date DESC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deviation reports"})
		return
	}

	items := make([]models.DeviationListItem, 0, len(reports))
	for i := range reports {
		items = append(items, reports[i].ToListItem())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

// GetMyDeviationReports lists the signed-in researcher's own reports,
// including legacy rows recorded under older identifier forms.
func GetMyDeviationReports(c *gin.Context) {
	userID := c.GetInt("userID")

	var user models.User
	if err := config.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	reports, err := services.ResolveReporterReports(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deviation reports"})
		return
	}

	items := make([]models.DeviationListItem, 0, len(reports))
	for i := range reports {
		items = append(items, reports[i].ToListItem())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

// GetDeviationReport returns one report. Staff see any report; a
// researcher only their own.
func GetDeviationReport(c *gin.Context) {
	id := c.Param("id")

	var report models.DeviationReport
	if err := config.DB.Where("id = ?", id).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deviation report not found"})
		return
	}

	role := c.GetString("role")
	if role != models.RoleStaff && !reportBelongsTo(&report, c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"report":                   report,
			"display_status":           report.DisplayStatus(),
			"action_needed":            report.ActionNeeded(),
			"can_resolve":              report.CanResolve(),
			"requires_resolution_docs": report.RequiresResolutionDocs(),
			"feedback":                 report.FeedbackText(),
		},
	})
}

func reportBelongsTo(report *models.DeviationReport, c *gin.Context) bool {
	userID := c.GetInt("userID")
	if report.ReporterUserID != nil {
		return *report.ReporterUserID == userID
	}

	var user models.User
	if err := config.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return false
	}
	reported := strings.ToLower(strings.TrimSpace(report.ReportedBy))
	for _, cand := range user.ReporterCandidates() {
		if strings.EqualFold(reported, cand) {
			return true
		}
	}
	return false
}

// StreamDeviationReports pushes report change events to staff clients
// over server-sent events. Clients fold each event into their loaded
// page and re-query when the event changes page membership.
func StreamDeviationReports(c *gin.Context) {
	events, cancel := realtime.Reports.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			c.Writer.Flush()
		case e, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(string(e.Type), e)
			c.Writer.Flush()
		}
	}
}
