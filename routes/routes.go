package routes

import (
	"research-archive-api/controllers"
	"research-archive-api/middleware"
	"research-archive-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Research Archive API is running",
				})
			})
		}

		// Protected routes (require a token from the identity provider)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Category catalog (read-only)
			protected.GET("/categories", controllers.GetCategories)

			// Own submissions
			protected.GET("/my-papers", controllers.GetMyPapers)

			// Papers and the review workflow
			papers := protected.Group("/papers")
			{
				papers.POST("", controllers.SubmitPaper)
				papers.GET("/:id", controllers.GetPaper)

				// Role checks for reviews happen in the workflow service so
				// precondition ordering stays intact.
				papers.POST("/:id/reviews", controllers.SubmitReview)

				// Submitter-only (enforced against the paper record)
				papers.POST("/:id/resubmit", controllers.ResubmitPaper)
				papers.DELETE("/:id", controllers.DeletePaper)
			}

			// Role-specific dashboards
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/officer", middleware.RequireRole(models.RoleOfficer), controllers.GetOfficerDashboard)
				dashboard.GET("/staff", middleware.RequireRole(models.RoleStaff), controllers.GetStaffDashboard)
				dashboard.GET("/student", middleware.RequireRole(models.RoleStudent), controllers.GetStudentDashboard)
			}
		}
	}
}
