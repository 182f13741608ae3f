package services

import (
	"fmt"
	"log"
	"time"

	"recheck-api/config"
	"recheck-api/models"
)

// CreateNotification persists a notification row. CreateAt is stamped
// here so callers only fill the content fields.
func CreateNotification(n *models.Notification) error {
	if n.CreateAt.IsZero() {
		n.CreateAt = time.Now()
	}
	if err := config.DB.Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// NotifyReportAssessed records a notification for the reporter after a
// staff severity assessment and sends a best-effort email. Email
// failures are logged, never returned: the assessment itself already
// committed.
func NotifyReportAssessed(report *models.DeviationReport, recipientEmail string) error {
	title := fmt.Sprintf("Deviation Report Reviewed: %s", report.ProtocolTitle)
	description := fmt.Sprintf("Your deviation report for %s (%s) has been assessed as %s severity.",
		report.ProtocolTitle, report.ProtocolCode, report.Severity)

	n := &models.Notification{
		Title:           title,
		Description:     description,
		Type:            models.NotificationReviewed,
		Recipient:       recipientEmail,
		RelatedReportID: &report.ID,
	}
	if err := CreateNotification(n); err != nil {
		return err
	}

	if recipientEmail != "" {
		body := fmt.Sprintf(
			"<p>Your deviation report has been reviewed.</p>"+
				"<p><strong>Protocol:</strong> %s (%s)<br>"+
				"<strong>Severity:</strong> %s</p>"+
				"<p>Please sign in to view the feedback and any required corrective actions.</p>",
			report.ProtocolTitle, report.ProtocolCode, report.Severity)
		if err := config.SendMail([]string{recipientEmail}, title, body); err != nil {
			log.Printf("assessment email to %s failed: %v", recipientEmail, err)
		}
	}
	return nil
}

// NotifyResolutionDecision records a notification for the reporter after
// staff acknowledge or reject a submitted resolution.
func NotifyResolutionDecision(report *models.DeviationReport, recipientEmail string) error {
	var title, detail string
	switch report.ResolutionStatus {
	case models.ResolutionResolved:
		title = fmt.Sprintf("Resolution Accepted: %s", report.ProtocolTitle)
		detail = "Your resolution has been accepted and the report is now closed."
	default:
		title = fmt.Sprintf("Revision Requested: %s", report.ProtocolTitle)
		detail = "Staff have requested a revision of your resolution. Please review the feedback and resubmit."
	}

	n := &models.Notification{
		Title:           title,
		Description:     detail,
		Type:            models.NotificationDecision,
		Recipient:       recipientEmail,
		RelatedReportID: &report.ID,
	}
	if err := CreateNotification(n); err != nil {
		return err
	}

	if recipientEmail != "" {
		body := fmt.Sprintf("<p>%s</p><p><strong>Protocol:</strong> %s (%s)</p>",
			detail, report.ProtocolTitle, report.ProtocolCode)
		if err := config.SendMail([]string{recipientEmail}, title, body); err != nil {
			log.Printf("resolution email to %s failed: %v", recipientEmail, err)
		}
	}
	return nil
}
