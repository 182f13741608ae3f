// controllers/reviewer.go - reviewer workflow
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"recheck-api/config"
	"recheck-api/models"
	"recheck-api/utils"
)

// GetAssignedReviews lists the signed-in reviewer's assignments as the
// flattened table rows, newest assignment first.
func GetAssignedReviews(c *gin.Context) {
	userID := c.GetInt("userID")

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

	items := make([]models.AssignedReviewItem, 0, len(assigned))
	for i := range assigned {
		items = append(items, assigned[i].ToItem())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

// GetAssignedReview returns one assignment with its proposal, for the
// review workspace. Reviewers only see their own assignments.
func GetAssignedReview(c *gin.Context) {
	userID := c.GetInt("userID")
	id := c.Param("id")

	var assignment models.AssignedReview
	err := config.DB.
		Preload("Proposal").Preload("Proposal.Submitter").
		Where("id = ? AND reviewer_id = ?", id, userID).
		First(&assignment).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assigned review not found"})
		return
	}

	var review models.Review
	hasReview := config.DB.
		Where("proposal_id = ? AND reviewer_id = ?", assignment.ProposalID, userID).
		First(&review).Error == nil

	payload := gin.H{"assignment": assignment}
	if hasReview {
		payload["review"] = review
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payload,
	})
}

type ReviewSubmissionRequest struct {
	Comments       string `json:"comments" binding:"required"`
	Recommendation string `json:"recommendation" binding:"required"`
}

// SubmitReview records the reviewer's evaluation and marks the
// assignment completed.
func SubmitReview(c *gin.Context) {
	userID := c.GetInt("userID")
	id := c.Param("id")

	var req ReviewSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var assignment models.AssignedReview
	err := config.DB.
		Where("id = ? AND reviewer_id = ?", id, userID).
		First(&assignment).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assigned review not found"})
		return
	}
	if assignment.Status == models.ReviewCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "This review has already been submitted"})
		return
	}

	now := time.Now()
	review := models.Review{
		ProposalID:     assignment.ProposalID,
		ReviewerID:     userID,
		Status:         models.ReviewCompleted,
		Comments:       utils.SanitizeInput(req.Comments),
		Recommendation: utils.SanitizeInput(req.Recommendation),
		DueDate:        assignment.DueDate,
		SubmittedAt:    &now,
		CreateAt:       now,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return tx.Model(&assignment).Update("status", models.ReviewCompleted).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    review,
	})
}
