package models

import (
	"strings"
	"time"
)

// Role names as used across route gating and dashboards.
const (
	RoleStaff      = "Staff"
	RoleReviewer   = "Reviewer"
	RoleResearcher = "Researcher"
)

type User struct {
	UserID    int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	FullName  string     `gorm:"column:full_name" json:"full_name"`
	ShortName *string    `gorm:"column:short_name" json:"short_name,omitempty"`
	Email     string     `gorm:"column:email;unique" json:"email"`
	Password  string     `gorm:"column:password" json:"-"`
	Role      string     `gorm:"column:role" json:"role"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// NormalizeRole maps a stored role value onto the canonical Title Case
// names. Unknown or empty values yield "" (treated as no role).
func NormalizeRole(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "staff":
		return RoleStaff
	case "reviewer":
		return RoleReviewer
	case "researcher":
		return RoleResearcher
	default:
		return ""
	}
}

// DashboardPath returns the canonical dashboard route for a role, used
// when redirecting a user away from a route their role cannot access.
func DashboardPath(role string) string {
	switch NormalizeRole(role) {
	case RoleStaff:
		return "/staff/dashboard"
	case RoleReviewer:
		return "/reviewer/dashboard"
	case RoleResearcher:
		return "/researcher/dashboard"
	default:
		return ""
	}
}

// ReporterCandidates returns the alternate identifier strings under which
// this user's deviation reports may have been recorded: email, full name,
// short name and the email local-part. Historical rows used any of these.
func (u *User) ReporterCandidates() []string {
	candidates := make([]string, 0, 4)
	seen := make(map[string]struct{})
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, v)
	}

	add(u.Email)
	add(u.FullName)
	if u.ShortName != nil {
		add(*u.ShortName)
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		add(u.Email[:at])
	}
	return candidates
}
