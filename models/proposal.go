package models

import "time"

// Proposal represents the proposals table (read-mostly; proposals are
// created through the main submission intake, not this API).
type Proposal struct {
	ID          int        `gorm:"primaryKey;column:id" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Status      string     `gorm:"column:status" json:"status"`
	SubmittedBy int        `gorm:"column:submitted_by" json:"submitted_by"`
	SubmittedAt *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	CreateAt    time.Time  `gorm:"column:create_at" json:"create_at"`

	Submitter User `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
}

func (Proposal) TableName() string {
	return "proposals"
}

// Review statuses used by reviewer dashboards.
const (
	ReviewCompleted = "Completed"
)

// Review represents the reviews table: a reviewer's evaluation of one
// proposal.
type Review struct {
	ID             int        `gorm:"primaryKey;column:id" json:"id"`
	ProposalID     int        `gorm:"column:proposal_id" json:"proposal_id"`
	ReviewerID     int        `gorm:"column:reviewer_id" json:"reviewer_id"`
	Status         string     `gorm:"column:status" json:"status"`
	Comments       string     `gorm:"column:comments" json:"comments"`
	Recommendation string     `gorm:"column:recommendation" json:"recommendation"`
	DueDate        string     `gorm:"column:due_date" json:"due_date"`
	SubmittedAt    *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"create_at"`

	Proposal Proposal `gorm:"foreignKey:ProposalID" json:"proposal,omitempty"`
	Reviewer User     `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

// AssignedReview represents the assigned_reviews table linking a reviewer
// to a proposal with an assignment window.
type AssignedReview struct {
	ID         int       `gorm:"primaryKey;column:id" json:"id"`
	ReviewerID int       `gorm:"column:reviewer_id" json:"reviewer_id"`
	ProposalID int       `gorm:"column:proposal_id" json:"proposal_id"`
	Status     string    `gorm:"column:status" json:"status"`
	AssignedAt time.Time `gorm:"column:assigned_at" json:"assigned_at"`
	DueDate    string    `gorm:"column:due_date" json:"due_date"`

	Proposal Proposal `gorm:"foreignKey:ProposalID" json:"proposal,omitempty"`
	Reviewer User     `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

func (AssignedReview) TableName() string {
	return "assigned_reviews"
}

// AssignedReviewItem is the flattened row the assigned-reviews table
// renders: proposal title joined with the assignment window.
type AssignedReviewItem struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	DateAssigned time.Time `json:"date_assigned"`
	DueDate      string    `json:"due_date"`
	Researcher   string    `json:"researcher"`
	Status       string    `json:"status"`
}

func (a *AssignedReview) ToItem() AssignedReviewItem {
	item := AssignedReviewItem{
		ID:           a.ID,
		Title:        "Untitled Proposal",
		DateAssigned: a.AssignedAt,
		DueDate:      a.DueDate,
		Researcher:   "Unknown",
		Status:       a.Status,
	}
	if item.Status == "" {
		item.Status = "pending"
	}
	if a.Proposal.Title != "" {
		item.Title = a.Proposal.Title
	}
	if a.Proposal.Submitter.FullName != "" {
		item.Researcher = a.Proposal.Submitter.FullName
	}
	return item
}
