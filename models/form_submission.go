package models

import "time"

// FormSubmission represents the form_submissions table: one captured
// submission of a catalog form. Per-form counts are aggregated from these
// rows on demand rather than tracked in a client-side counter.
type FormSubmission struct {
	SubmissionID int       `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	FormID       string    `gorm:"column:form_id" json:"form_id"`
	Values       JSONMap   `gorm:"column:values;type:json" json:"values"`
	SubmittedBy  int       `gorm:"column:submitted_by" json:"submitted_by"`
	SubmittedAt  time.Time `gorm:"column:submitted_at" json:"submitted_at"`

	Submitter User `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}

// FormSubmissionCount is the aggregate row for GET /forms/submission-counts.
type FormSubmissionCount struct {
	FormID string `gorm:"column:form_id" json:"form_id"`
	Count  int64  `gorm:"column:count" json:"count"`
}
