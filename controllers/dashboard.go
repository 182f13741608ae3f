// controllers/dashboard.go - role dashboards
package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"recheck-api/config"
	"recheck-api/models"
	"recheck-api/services"
)

// FeedItem is one entry in the merged announcement/notification feed.
type FeedItem struct {
	Kind        string    `json:"kind"`
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func buildFeed(role, email string) ([]FeedItem, error) {
	var announcements []models.Announcement
	err := config.DB.
		Where("audience IN ?", models.AudiencesForRole(role)).
		Order("create_at DESC").Limit(20).
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}

	var notifications []models.Notification
	err = config.DB.
		Where("broadcast = ? OR recipient = ?", true, email).
		Order("create_at DESC").Limit(20).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	feed := make([]FeedItem, 0, len(announcements)+len(notifications))
	for _, a := range announcements {
		feed = append(feed, FeedItem{
			Kind:        "announcement",
			ID:          a.AnnouncementID,
			Title:       a.Title,
			Description: a.Description,
			Date:        a.CreateAt,
		})
	}
	for _, n := range notifications {
		feed = append(feed, FeedItem{
			Kind:        "notification",
			ID:          n.NotificationID,
			Title:       n.Title,
			Description: n.Description,
			Date:        n.CreateAt,
		})
	}
	sort.Slice(feed, func(i, j int) bool { return feed[i].Date.After(feed[j].Date) })
	return feed, nil
}

// GetResearcherDashboard returns the researcher's report summary plus
// the merged announcement and notification feed.
func GetResearcherDashboard(c *gin.Context) {
	userID := c.GetInt("userID")
	email := c.GetString("email")

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

	var actionRequired, resolved int
	items := make([]models.DeviationListItem, 0, len(reports))
	for i := range reports {
		item := reports[i].ToListItem()
		items = append(items, item)
		switch item.ActionNeeded {
		case models.ActionRequired:
			actionRequired++
		case models.ActionCompleted:
			resolved++
		}
	}

	feed, err := buildFeed(models.RoleResearcher, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"stats": gin.H{
				"total_reports":   len(reports),
				"action_required": actionRequired,
				"resolved":        resolved,
			},
			"reports": items,
			"feed":    feed,
		},
	})
}

// GetStaffDashboard returns queue counts, recent activity and the open
// corrective-action deadlines.
func GetStaffDashboard(c *gin.Context) {
	email := c.GetString("email")

	type countRow struct{ N int64 }
	counts := gin.H{}
	queries := []struct {
		key   string
		where string
		args  []interface{}
	}{
		{"total_reports", "1 = 1", nil},
		{"pending_review", "severity IS NULL OR severity = ''", nil},
		{"awaiting_acknowledgment", "resolution_status = ?", []interface{}{models.ResolutionInProgress}},
		{"resolved", "resolution_status = ?", []interface{}{models.ResolutionResolved}},
	}
	for _, q := range queries {
		var row countRow
		err := config.DB.Model(&models.DeviationReport{}).
			Select("COUNT(*) AS n").
			Where(q.where, q.args...).
			Scan(&row).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard counts"})
			return
		}
		counts[q.key] = row.N
	}

	var totalProposals, approvedProposals, pendingReviews int64
	if err := config.DB.Model(&models.Proposal{}).Count(&totalProposals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard counts"})
		return
	}
	if err := config.DB.Model(&models.Proposal{}).Where("status = ?", "approved").Count(&approvedProposals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard counts"})
		return
	}
	if err := config.DB.Model(&models.AssignedReview{}).Where("status != ?", models.ReviewCompleted).Count(&pendingReviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard counts"})
		return
	}
	counts["total_proposals"] = totalProposals
	counts["approved_proposals"] = approvedProposals
	counts["pending_reviews"] = pendingReviews

	var recent []models.DeviationReport
	err := config.DB.Order("report_submission_date DESC").Limit(10).Find(&recent).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent reports"})
		return
	}
	activities := make([]models.DeviationListItem, 0, len(recent))
	for i := range recent {
		activities = append(activities, recent[i].ToListItem())
	}

	var withDeadline []models.DeviationReport
	err = config.DB.
		Where("corrective_action_deadline != '' AND resolution_status NOT IN ?",
			[]string{models.ResolutionResolved}).
		Order("corrective_action_deadline ASC").
		Find(&withDeadline).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deadlines"})
		return
	}
	type deadlineItem struct {
		ID            int    `json:"id"`
		ProtocolTitle string `json:"protocol_title"`
		ReportedBy    string `json:"reported_by"`
		Deadline      string `json:"deadline"`
		Overdue       bool   `json:"overdue"`
	}
	today := time.Now().Format("2006-01-02")
	deadlines := make([]deadlineItem, 0, len(withDeadline))
	for _, r := range withDeadline {
		deadlines = append(deadlines, deadlineItem{
			ID:            r.ID,
			ProtocolTitle: r.ProtocolTitle,
			ReportedBy:    r.ReportedBy,
			Deadline:      r.CorrectiveActionDeadline,
			Overdue:       r.CorrectiveActionDeadline < today,
		})
	}

	feed, err := buildFeed(models.RoleStaff, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"stats":      counts,
			"activities": activities,
			"deadlines":  deadlines,
			"feed":       feed,
		},
	})
}

// GetReviewerDashboard returns assignment stats, recent assignments and
// upcoming review due dates for the signed-in reviewer.
func GetReviewerDashboard(c *gin.Context) {
	userID := c.GetInt("userID")
	email := c.GetString("email")

	var assigned []models.AssignedReview
	err := config.DB.
		Preload("Proposal").Preload("Proposal.Submitter").
		Where("reviewer_id = ?", userID).
		Order("assigned_at DESC").
		Find(&assigned).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assigned reviews"})
		return
	}

	var completed int64
	err = config.DB.Model(&models.Review{}).
		Where("reviewer_id = ? AND status = ?", userID, models.ReviewCompleted).
		Count(&completed).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count completed reviews"})
		return
	}

	today := time.Now().Format("2006-01-02")
	var overdue int
	items := make([]models.AssignedReviewItem, 0, len(assigned))
	for i := range assigned {
		item := assigned[i].ToItem()
		items = append(items, item)
		if item.Status != models.ReviewCompleted && item.DueDate != "" && item.DueDate < today {
			overdue++
		}
	}

	feed, err := buildFeed(models.RoleReviewer, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"stats": gin.H{
				"assigned":  len(assigned),
				"completed": completed,
				"overdue":   overdue,
			},
			"assignments": items,
			"feed":        feed,
		},
	})
}
