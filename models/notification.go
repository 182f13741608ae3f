package models

import (
	"strings"
	"time"
)

// Notification types surfaced in activity feeds.
const (
	NotificationReviewed  = "reviewed"
	NotificationDecision  = "decision"
	NotificationClearance = "clearance"
)

type Notification struct {
	NotificationID  int       `gorm:"primaryKey;column:notification_id" json:"id"`
	Title           string    `gorm:"column:title" json:"title"`
	Description     string    `gorm:"column:description" json:"description"`
	Type            string    `gorm:"column:type" json:"type"`
	Recipient       string    `gorm:"column:recipient" json:"recipient"`
	Broadcast       bool      `gorm:"column:broadcast" json:"broadcast"`
	RelatedReportID *int      `gorm:"column:related_report_id" json:"related_report_id,omitempty"`
	CreateAt        time.Time `gorm:"column:create_at" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// VisibleTo reports whether the notification should reach the given
// email: broadcasts reach everyone, otherwise the recipient must match
// case-insensitively.
func (n *Notification) VisibleTo(email string) bool {
	if n.Broadcast {
		return true
	}
	return n.Recipient != "" && strings.EqualFold(n.Recipient, email)
}
