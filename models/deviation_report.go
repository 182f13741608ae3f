package models

import (
	"strings"
	"time"
)

// Severity values assigned by staff during assessment.
const (
	SeverityMinor = "Minor"
	SeverityMajor = "Major"
)

// Resolution status values. An empty string means no resolution cycle has
// started yet; "pending" is treated the same way for eligibility checks.
const (
	ResolutionPending    = "pending"
	ResolutionInProgress = "in_progress"
	ResolutionResolved   = "resolved"
	ResolutionRejected   = "rejected"
)

// Corrective action flag values on the major path.
const (
	CorrectiveChangesRequired = "changes"
	CorrectiveDocsRequired    = "docs"
	CorrectiveNone            = "none"
)

// DeviationReport represents the deviation_reports table. A row moves
// through: researcher submission -> staff severity assessment ->
// researcher resolution -> staff acknowledgment.
type DeviationReport struct {
	ID                   int        `gorm:"primaryKey;column:id" json:"id"`
	ProtocolTitle        string     `gorm:"column:protocol_title" json:"protocol_title"`
	ProtocolCode         string     `gorm:"column:protocol_code" json:"protocol_code"`
	Type                 string     `gorm:"column:type" json:"type"`
	DeviationDate        string     `gorm:"column:deviation_date" json:"deviation_date"`
	DeviationDescription string     `gorm:"column:deviation_description" json:"deviation_description"`
	Rationale            string     `gorm:"column:rationale" json:"rationale"`
	Impact               string     `gorm:"column:impact" json:"impact"`
	CorrectiveAction     string     `gorm:"column:corrective_action" json:"corrective_action"`
	SupportingDocuments  StringList `gorm:"column:supporting_documents;type:json" json:"supporting_documents"`

	// Provenance. ReportedBy historically holds an email, a full name or a
	// local-part depending on the insert path; ReporterUserID is the
	// canonical key recorded on every new submission.
	ReportedBy           string `gorm:"column:reported_by" json:"reported_by"`
	ReporterUserID       *int   `gorm:"column:reporter_user_id" json:"reporter_user_id,omitempty"`
	ReportSubmissionDate string `gorm:"column:report_submission_date" json:"report_submission_date"`

	// Staff assessment.
	Severity                    string `gorm:"column:severity" json:"severity"`
	Status                      string `gorm:"column:status" json:"status"`
	Review                      string `gorm:"column:review" json:"review"`
	CorrectiveActionFeedback    string `gorm:"column:corrective_action_feedback" json:"corrective_action_feedback"`
	CorrectiveActionRequired    string `gorm:"column:corrective_action_required" json:"corrective_action_required"`
	CorrectiveActionDetails     string `gorm:"column:corrective_action_details" json:"corrective_action_details"`
	CorrectiveActionDocs        string `gorm:"column:corrective_action_docs" json:"corrective_action_docs"`
	CorrectiveActionDocsDetails string `gorm:"column:corrective_action_docs_details" json:"corrective_action_docs_details"`
	CorrectiveActionDeadline    string `gorm:"column:corrective_action_deadline" json:"corrective_action_deadline"`

	// Researcher resolution.
	ResolutionStatus              string     `gorm:"column:resolution_status" json:"resolution_status"`
	ResearcherResponse            string     `gorm:"column:researcher_response" json:"researcher_response"`
	ResolutionActionsTaken        string     `gorm:"column:resolution_actions_taken" json:"resolution_actions_taken"`
	ResolutionNotes               string     `gorm:"column:resolution_notes" json:"resolution_notes"`
	ResolutionSupportingDocuments StringList `gorm:"column:resolution_supporting_documents;type:json" json:"resolution_supporting_documents"`
	ResolutionSubmissionDate      *time.Time `gorm:"column:resolution_submission_date" json:"resolution_submission_date,omitempty"`

	// Staff closure.
	StaffAcknowledgment     string     `gorm:"column:staff_acknowledgment" json:"staff_acknowledgment"`
	StaffAcknowledgmentDate *time.Time `gorm:"column:staff_acknowledgment_date" json:"staff_acknowledgment_date,omitempty"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at,omitempty"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

func (DeviationReport) TableName() string {
	return "deviation_reports"
}

// Display statuses derived for list views. Never stored.
const (
	StatusReviewed    = "Reviewed"
	StatusPendingView = "Pending / View"
)

// Researcher action-needed labels derived for researcher views.
const (
	ActionCompleted      = "Completed"
	ActionReviewResponse = "Review Response"
	ActionRequired       = "Action Required"
	ActionViewFeedback   = "View Feedback"
)

// IsAssessed reports whether staff have assigned a severity.
func (r *DeviationReport) IsAssessed() bool {
	return strings.TrimSpace(r.Severity) != ""
}

// DisplayStatus derives the list-view status: "Reviewed" iff a severity
// has been assigned, otherwise "Pending / View".
func (r *DeviationReport) DisplayStatus() string {
	if r.IsAssessed() {
		return StatusReviewed
	}
	return StatusPendingView
}

// FeedbackText returns the staff feedback relevant to this report's
// severity path: corrective-action feedback for Major, review otherwise.
func (r *DeviationReport) FeedbackText() string {
	if r.Severity == SeverityMajor {
		return r.CorrectiveActionFeedback
	}
	return r.Review
}

// HasFeedback reports whether any staff feedback text exists, on either
// path. Eligibility accepts whichever is populated.
func (r *DeviationReport) HasFeedback() bool {
	return strings.TrimSpace(r.Review) != "" || strings.TrimSpace(r.CorrectiveActionFeedback) != ""
}

// CanResolve reports whether the researcher may submit (or resubmit) a
// resolution: severity assigned, resolution not already in flight or
// closed, and staff feedback present.
func (r *DeviationReport) CanResolve() bool {
	if !r.IsAssessed() {
		return false
	}
	switch r.ResolutionStatus {
	case "", ResolutionPending, ResolutionRejected:
	default:
		return false
	}
	return r.HasFeedback()
}

// RequiresResolutionDocs reports whether a resolution submission must
// attach at least one document.
func (r *DeviationReport) RequiresResolutionDocs() bool {
	return r.Severity == SeverityMajor && r.CorrectiveActionDocs == CorrectiveDocsRequired
}

// ActionNeeded derives the researcher-facing call to action.
func (r *DeviationReport) ActionNeeded() string {
	switch r.ResolutionStatus {
	case ResolutionResolved:
		return ActionCompleted
	case ResolutionInProgress:
		return ActionReviewResponse
	}
	if r.HasFeedback() && (r.ResolutionStatus == "" || r.ResolutionStatus == ResolutionPending) {
		return ActionRequired
	}
	return ActionViewFeedback
}

// DeviationListItem is the row shape used by list endpoints, carrying the
// derived statuses alongside the raw fields the tables show.
type DeviationListItem struct {
	ID                   int    `json:"id"`
	ProtocolTitle        string `json:"protocol_title"`
	ReportedBy           string `json:"reported_by"`
	ReportSubmissionDate string `json:"report_submission_date"`
	Type                 string `json:"type"`
	Severity             string `json:"severity"`
	Status               string `json:"status"`
	ActionNeeded         string `json:"action_needed"`
	HasFeedback          bool   `json:"has_feedback"`
	ResolutionStatus     string `json:"resolution_status"`
	AttachmentCount      int    `json:"attachment_count"`
}

func (r *DeviationReport) ToListItem() DeviationListItem {
	return DeviationListItem{
		ID:                   r.ID,
		ProtocolTitle:        r.ProtocolTitle,
		ReportedBy:           r.ReportedBy,
		ReportSubmissionDate: r.ReportSubmissionDate,
		Type:                 r.Type,
		Severity:             r.Severity,
		Status:               r.DisplayStatus(),
		ActionNeeded:         r.ActionNeeded(),
		HasFeedback:          r.IsAssessed() && r.HasFeedback(),
		ResolutionStatus:     r.ResolutionStatus,
		AttachmentCount:      len(r.ResolutionSupportingDocuments),
	}
}
