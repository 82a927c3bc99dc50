package controllers

import (
	"net/http"

	"research-archive-api/config"
	"research-archive-api/services"

	"github.com/gin-gonic/gin"
)

// GetOfficerDashboard lists papers awaiting an officer decision, split into
// staff-authored papers and staff-approved student papers.
func GetOfficerDashboard(c *gin.Context) {
	svc := services.NewWorkflowService(config.DB)
	dashboard, err := svc.GetOfficerDashboard()
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetStaffDashboard lists student papers awaiting staff review plus the
// staff member's own submissions.
func GetStaffDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	svc := services.NewWorkflowService(config.DB)
	dashboard, err := svc.GetStaffDashboard(userID)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetStudentDashboard lists the student's own papers with their reviews.
func GetStudentDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	svc := services.NewWorkflowService(config.DB)
	papers, err := svc.GetStudentDashboard(userID)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, papers)
}
