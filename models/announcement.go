package models

import "time"

// Announcement audiences.
const (
	AudienceAll       = "all"
	AudienceStudents  = "students"
	AudienceCommittee = "committee"
)

// Announcement represents the announcements table. Announcements are
// immutable once created; there is no update or delete path.
type Announcement struct {
	AnnouncementID int        `gorm:"primaryKey;column:announcement_id" json:"announcement_id"`
	Title          string     `gorm:"column:title" json:"title"`
	Description    string     `gorm:"column:description" json:"description"`
	Audience       string     `gorm:"column:audience;type:enum('all','students','committee');default:'all'" json:"audience"`
	Attachments    StringList `gorm:"column:attachments;type:json" json:"attachments"`
	CreatedBy      int        `gorm:"column:created_by" json:"created_by"`
	CreatedByEmail string     `gorm:"column:created_by_email" json:"created_by_email"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"created_at"`

	Creator User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// AudiencesForRole returns the announcement audiences visible to a role:
// "all" always, "students" for researchers, "committee" for reviewers
// and staff.
func AudiencesForRole(role string) []string {
	audiences := []string{AudienceAll}
	switch NormalizeRole(role) {
	case RoleResearcher:
		audiences = append(audiences, AudienceStudents)
	case RoleReviewer, RoleStaff:
		audiences = append(audiences, AudienceCommittee)
	}
	return audiences
}

// VisibleTo reports whether the announcement targets the given role.
func (a *Announcement) VisibleTo(role string) bool {
	for _, aud := range AudiencesForRole(role) {
		if a.Audience == aud {
			return true
		}
	}
	return a.Audience == AudienceAll
}
