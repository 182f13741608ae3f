package routes

import (
	"os"

	"github.com/gin-gonic/gin"

	"recheck-api/controllers"
	"recheck-api/middleware"
	"recheck-api/models"
)

func SetupRoutes(router *gin.Engine) {
	// Uploaded files are served statically under the same paths stored
	// on the report and announcement rows.
	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	router.Static("/files", uploadPath)

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)
			public.POST("/register", controllers.Register)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "RECheck API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Shared surfaces (all roles)
			protected.GET("/announcements", controllers.GetAnnouncements)
			protected.GET("/notifications", controllers.GetNotifications)
			protected.GET("/forms", controllers.GetForms)
			protected.GET("/forms/:id", controllers.GetForm)
			protected.GET("/forms/submission-counts", controllers.GetFormSubmissionCounts)

			// Researcher workflow
			researcher := protected.Group("/researcher")
			researcher.Use(middleware.RequireRole(models.RoleResearcher))
			{
				researcher.GET("/dashboard", controllers.GetResearcherDashboard)
				researcher.GET("/deviations", controllers.GetMyDeviationReports)
				researcher.POST("/deviations", controllers.SubmitDeviationReport)
				researcher.GET("/deviations/:id", controllers.GetDeviationReport)
				researcher.POST("/deviations/:id/resolution", controllers.SubmitResolution)
				researcher.POST("/forms/:id/submissions", controllers.SubmitForm)
			}

			// Staff workflow
			staff := protected.Group("/staff")
			staff.Use(middleware.RequireRole(models.RoleStaff))
			{
				staff.GET("/dashboard", controllers.GetStaffDashboard)
				staff.GET("/deviations", controllers.GetDeviationReports)
				staff.GET("/deviations/stream", controllers.StreamDeviationReports)
				staff.GET("/deviations/:id", controllers.GetDeviationReport)
				staff.POST("/deviations/:id/assessment", controllers.SubmitAssessment)
				staff.POST("/deviations/:id/acknowledgment", controllers.AcknowledgeResolution)
				staff.POST("/announcements", controllers.CreateAnnouncement)
				staff.DELETE("/files/*path", controllers.DeleteStoredFile)
			}

			// Reviewer workflow
			reviewer := protected.Group("/reviewer")
			reviewer.Use(middleware.RequireRole(models.RoleReviewer))
			{
				reviewer.GET("/dashboard", controllers.GetReviewerDashboard)
				reviewer.GET("/assigned-reviews", controllers.GetAssignedReviews)
				reviewer.GET("/reviews/:id", controllers.GetAssignedReview)
				reviewer.PUT("/reviews/:id", controllers.SubmitReview)
			}
		}
	}
}
